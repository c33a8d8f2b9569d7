package main

import (
	"fmt"
	"os"

	"github.com/op/go-logging"

	"github.com/theflywheel/uhash"
)

var log = logging.MustGetLogger("example")

func main() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	logging.SetBackend(logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{time:15:04:05.000} [%{module}] [%{level}] %{message}`,
	)))
	logging.SetLevel(logging.DEBUG, "uhash")

	// Create a table keyed by uint64 with the default capacity and load factor
	ht, err := uhash.New[uint64, uint64](uhash.Uint64)
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}

	fmt.Println("Hash table created:", ht.Stats())

	// Insert some data, enough to cross the load factor once
	for i := uint64(0); i < 10; i++ {
		ht.Insert(i, i*100)
	}

	fmt.Println("Inserted 10 key-value pairs:", ht.Stats())

	// Retrieve and display some values
	for i := uint64(0); i < 15; i += 2 {
		value, found := ht.Search(i)
		if found {
			fmt.Printf("Key %d => Value %d\n", i, value)
		} else {
			fmt.Printf("Key %d not found\n", i)
		}
	}

	// Update a value
	ht.Insert(2, 999)
	if value, found := ht.Search(2); found {
		fmt.Printf("Updated key 2 => Value %d\n", value)
	}

	// Delete a value, twice
	fmt.Println("Delete key 4:", ht.Delete(4))
	fmt.Println("Delete key 4 again:", ht.Delete(4))

	// The example table is always a new instance
	fruit, err := uhash.NewExample()
	if err != nil {
		log.Fatalf("Failed to build example table: %v", err)
	}
	fruit.Range(func(k string, v int) bool {
		fmt.Printf("%s => %d\n", k, v)
		return true
	})

	fmt.Println("Final state:", ht.Stats())
	fmt.Println("Example completed successfully")
}
