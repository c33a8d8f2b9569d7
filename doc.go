/*
Package uhash provides an in-memory hash table built on separate chaining and
a randomized universal hash function.

Table maps comparable keys to values. Each key is first reduced to an integer
by a Hasher, then spread over the buckets with a randomly chosen member of the
universal family

	h(k) = ((a*raw(k) + b) mod p) mod capacity

where p is the prime 1,000,000,007. Because a and b are drawn per table, and
again on every resize, no fixed set of keys can force long chains.

Basic usage:

	import "github.com/theflywheel/uhash"

	t, err := uhash.NewStringTable[int]() // capacity 10, load factor 0.7
	if err != nil {
		log.Fatal(err)
	}

	t.Insert("apple", 10)
	t.Insert("apple", 11) // replaces the value, size stays 1

	if v, ok := t.Search("apple"); ok {
		fmt.Println("Value:", v)
	}

	t.Delete("apple")
	fmt.Println(t.Stats())

Features:

  - Generic keys and values; string and integer hashers included
  - Universal hashing with coefficients redrawn on every resize
  - Automatic doubling when the load factor reaches the threshold (0.7 by default)
  - Deterministic coefficient draws with WithSeed, for tests
  - Not safe for concurrent use

Implementation Details:

The bucket array is a slice of chains, each chain a slice of key/value entries.
Before a new key is placed, Insert checks size/capacity against the threshold;
if it has been reached, every entry is rehashed into a fresh array of twice the
capacity under new coefficients, and only then is the old array replaced. The
table never shrinks: Delete only removes the entry from its chain.

Resizes are logged at DEBUG level through the "uhash" go-logging module.
*/
package uhash
