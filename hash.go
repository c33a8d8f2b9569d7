package uhash

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// prime is the modulus p of the universal family. Any reduced raw hash is
// below p, so a*raw+b stays below p*p and never overflows a uint64.
const prime uint64 = 1_000_000_007

// Hasher reduces a key to a fixed, deterministic integer. It does not have
// to be uniform: the table mixes it with its own random coefficients.
type Hasher[K comparable] func(key K) uint64

// String hashes a string key with xxhash.
func String(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Uint64 is the identity encoding for unsigned integer keys.
func Uint64(key uint64) uint64 {
	return key
}

// Int64 is the identity encoding for signed integer keys.
func Int64(key int64) uint64 {
	return uint64(key)
}

// Int is the identity encoding for int keys.
func Int(key int) uint64 {
	return uint64(key)
}

// universal holds one member of the family h(k) = ((a*k + b) mod p) mod m.
type universal struct {
	a, b uint64
}

// drawUniversal picks a in [1, p-1] and b in [0, p-1].
func drawUniversal(rng *rand.Rand) universal {
	return universal{
		a: 1 + rng.Uint64N(prime-1),
		b: rng.Uint64N(prime),
	}
}

// index maps a raw hash to a bucket in [0, buckets).
func (u universal) index(raw uint64, buckets int) int {
	return int(((u.a*(raw%prime) + u.b) % prime) % uint64(buckets))
}
