// Package rng draws random integers from an inclusive range.
package rng

import (
	"errors"
	"math/rand/v2"
)

var ErrInvalidRange = errors.New("minimum can't be greater than maximum")

// Intn returns a uniformly random integer in [lo, hi].
func Intn(lo, hi int) (int, error) {
	return IntnFrom(uint64N, lo, hi)
}

func uint64N(k uint64) uint64 {
	if k == 0 {
		return rand.Uint64()
	}
	return rand.Uint64N(k)
}

// IntnFrom is Intn with the source of randomness supplied. n(k) must return a
// value in [0, k), or any uint64 when k is 0 (a span covering every int).
func IntnFrom(n func(uint64) uint64, lo, hi int) (int, error) {
	if lo > hi {
		return 0, ErrInvalidRange
	}
	// modular arithmetic keeps the span exact even when hi-lo overflows int
	span := uint64(hi) - uint64(lo) + 1
	return int(uint64(lo) + n(span)), nil
}
