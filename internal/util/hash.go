// Package util contains internal helpers (hashing, table sizing).
//
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

import "hash/maphash"

// Hasher produces stable 64-bit hashes for comparable keys.
// Strings and integer-like keys take an allocation-free FNV-1a fast path;
// every other comparable type goes through hash/maphash.Comparable.
//
// The seed is drawn per Hasher, so two Hasher values hash the same key
// differently. Callers must keep one Hasher per table.
type Hasher[K comparable] struct {
	seed maphash.Seed
}

// NewHasher returns a Hasher with a fresh random seed.
func NewHasher[K comparable]() Hasher[K] {
	return Hasher[K]{seed: maphash.MakeSeed()}
}

// Hash returns the 64-bit hash of k.
func (h Hasher[K]) Hash(k K) uint64 {
	switch v := any(k).(type) {
	case string:
		return fnv64aString(v)

	// Integer-like keys: hash the little-endian bytes of the value.
	case uint8:
		return fnv64aUint64(uint64(v))
	case uint16:
		return fnv64aUint64(uint64(v))
	case uint32:
		return fnv64aUint64(uint64(v))
	case uint64:
		return fnv64aUint64(v)
	case uint:
		return fnv64aUint64(uint64(v))
	case uintptr:
		return fnv64aUint64(uint64(v))
	case int8:
		return fnv64aUint64(uint64(uint8(v)))
	case int16:
		return fnv64aUint64(uint64(uint16(v)))
	case int32:
		return fnv64aUint64(uint64(uint32(v)))
	case int64:
		return fnv64aUint64(uint64(v))
	case int:
		return fnv64aUint64(uint64(v))

	default:
		// Structs, arrays, pointers: anything else comparable.
		return maphash.Comparable(h.seed, k)
	}
}

const (
	fnvOffset64 = 1469598103934665603
	fnvPrime64  = 1099511628211
)

func fnv64aString(s string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}

func fnv64aUint64(u uint64) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < 8; i++ {
		h ^= uint64(byte(u))
		h *= fnvPrime64
		u >>= 8
	}
	return h
}
