package uhash

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("uhash")

var (
	// ErrInvalidCapacity is returned when the initial capacity is below 1.
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
	// ErrInvalidLoadFactor is returned when the threshold is not in (0, 1).
	ErrInvalidLoadFactor = errors.New("load factor must be between 0 and 1 exclusive")
	// ErrNilHasher is returned when no raw hasher is supplied.
	ErrNilHasher = errors.New("hasher must not be nil")
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// chain holds the entries of one bucket. Order inside a chain carries no meaning.
type chain[K comparable, V any] []entry[K, V]

// Table is a separately chained hash table whose bucket index comes from a
// universal hash family. The coefficients are redrawn every time the bucket
// array grows. A Table is not safe for concurrent use.
type Table[K comparable, V any] struct {
	hasher     Hasher[K]
	rng        *rand.Rand
	log        *logging.Logger
	buckets    []chain[K, V]
	hash       universal
	size       int
	loadFactor float64
	resizes    int
}

// Stats is a point-in-time snapshot of a table.
type Stats struct {
	Size       int
	Capacity   int
	LoadFactor float64
}

func (s Stats) String() string {
	return fmt.Sprintf("size=%d capacity=%d load_factor=%.2f", s.Size, s.Capacity, s.LoadFactor)
}

// New creates an empty table using hasher as the raw key encoding.
func New[K comparable, V any](hasher Hasher[K], opts ...Option) (*Table[K, V], error) {
	if hasher == nil {
		return nil, ErrNilHasher
	}
	cfg := newConfig(opts)
	if cfg.capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", cfg.capacity)
	}
	if math.IsNaN(cfg.loadFactor) || cfg.loadFactor <= 0 || cfg.loadFactor >= 1 {
		return nil, errors.Wrapf(ErrInvalidLoadFactor, "got %v", cfg.loadFactor)
	}
	if cfg.logger == nil {
		cfg.logger = log
	}

	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0x9e3779b97f4a7c15))
	return &Table[K, V]{
		hasher:     hasher,
		rng:        rng,
		log:        cfg.logger,
		buckets:    make([]chain[K, V], cfg.capacity),
		hash:       drawUniversal(rng),
		loadFactor: cfg.loadFactor,
	}, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew[K comparable, V any](hasher Hasher[K], opts ...Option) *Table[K, V] {
	t, err := New[K, V](hasher, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// NewStringTable creates a table keyed by strings.
func NewStringTable[V any](opts ...Option) (*Table[string, V], error) {
	return New[string, V](String, opts...)
}

// Insert adds key or replaces its value. When the table is already at or
// above its load factor the bucket array doubles before the key is placed.
func (t *Table[K, V]) Insert(key K, value V) {
	if t.overloaded() {
		t.resize(2 * len(t.buckets))
	}
	if place(t.buckets, t.hash, t.hasher(key), key, value) {
		t.size++
	}
}

func (t *Table[K, V]) overloaded() bool {
	return float64(t.size)/float64(len(t.buckets)) >= t.loadFactor
}

// place stores key in buckets under h and reports whether a new entry was added.
func place[K comparable, V any](buckets []chain[K, V], h universal, raw uint64, key K, value V) bool {
	idx := h.index(raw, len(buckets))
	c := buckets[idx]
	for i := range c {
		if c[i].key == key {
			c[i].value = value
			return false
		}
	}
	buckets[idx] = append(c, entry[K, V]{key: key, value: value})
	return true
}

// resize rehashes every entry into a fresh array of n buckets under newly
// drawn coefficients. The table is only updated once the new array is full.
func (t *Table[K, V]) resize(n int) {
	t.log.Debugf("resizing from %d to %d buckets (size=%d)", len(t.buckets), n, t.size)

	buckets := make([]chain[K, V], n)
	h := drawUniversal(t.rng)
	size := 0
	for _, c := range t.buckets {
		for _, e := range c {
			if place(buckets, h, t.hasher(e.key), e.key, e.value) {
				size++
			}
		}
	}

	t.buckets = buckets
	t.hash = h
	t.size = size
	t.resizes++
}

// Search returns the value stored for key.
func (t *Table[K, V]) Search(key K) (V, bool) {
	c := t.buckets[t.index(key)]
	for i := range c {
		if c[i].key == key {
			return c[i].value, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes key and reports whether it was present. The table never shrinks.
func (t *Table[K, V]) Delete(key K) bool {
	idx := t.index(key)
	c := t.buckets[idx]
	for i := range c {
		if c[i].key != key {
			continue
		}
		last := len(c) - 1
		c[i] = c[last]
		c[last] = entry[K, V]{}
		if last == 0 {
			t.buckets[idx] = nil
		} else {
			t.buckets[idx] = c[:last]
		}
		t.size--
		return true
	}
	return false
}

func (t *Table[K, V]) index(key K) int {
	return t.hash.index(t.hasher(key), len(t.buckets))
}

// Stats returns the current size, capacity and load factor.
func (t *Table[K, V]) Stats() Stats {
	return Stats{
		Size:       t.size,
		Capacity:   len(t.buckets),
		LoadFactor: float64(t.size) / float64(len(t.buckets)),
	}
}

// Len returns the number of keys stored.
func (t *Table[K, V]) Len() int { return t.size }

// Cap returns the number of buckets.
func (t *Table[K, V]) Cap() int { return len(t.buckets) }

// Resizes returns how many times the bucket array has grown.
func (t *Table[K, V]) Resizes() int { return t.resizes }

// Range calls fn for every entry, bucket by bucket, until fn returns false.
// fn must not modify the table.
func (t *Table[K, V]) Range(fn func(key K, value V) bool) {
	for _, c := range t.buckets {
		for _, e := range c {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// Chains returns the length of every bucket's chain, indexed by bucket.
func (t *Table[K, V]) Chains() []int {
	lens := make([]int, len(t.buckets))
	for i, c := range t.buckets {
		lens[i] = len(c)
	}
	return lens
}
