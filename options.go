package uhash

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/op/go-logging"
)

const (
	// DefaultCapacity is the number of buckets a table starts with.
	DefaultCapacity = 10
	// DefaultLoadFactor is the size/capacity ratio at which the next insert
	// of a new key grows the table.
	DefaultLoadFactor = 0.7
)

type config struct {
	capacity   int
	loadFactor float64
	seed       uint64
	seeded     bool
	logger     *logging.Logger
}

// Option configures a Table at construction time.
type Option func(*config)

// WithCapacity sets the initial number of buckets. It must be at least 1.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithLoadFactor sets the resize threshold. It must lie strictly between 0 and 1.
func WithLoadFactor(f float64) Option {
	return func(c *config) {
		c.loadFactor = f
	}
}

// WithSeed makes the coefficient draws of a table reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithLogger replaces the package logger for a single table.
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts []Option) config {
	c := config{
		capacity:   DefaultCapacity,
		loadFactor: DefaultLoadFactor,
		logger:     log,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if !c.seeded {
		c.seed = randomSeed()
	}
	return c
}

func randomSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf[:])
}
