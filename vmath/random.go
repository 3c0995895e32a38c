package vmath

import (
	"math"
	"math/bits"
)

// Random is a xoroshiro128+ sequence: two 64-bit words, rotate-xor-shift update
// Same seed yields the same sequence on every run
type Random struct {
	s0, s1 uint64
}

// NewRandom seeds a sequence; second word is seed squared
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = 1
	}
	return Random{s0: seed, s1: seed * seed}
}

// Next returns the next raw 64-bit value
func (r *Random) Next() uint64 {
	s0 := r.s0
	s1 := r.s1
	result := s0 + s1
	s1 ^= s0
	r.s0 = bits.RotateLeft64(s0, 24) ^ s1 ^ (s1 << 16)
	r.s1 = bits.RotateLeft64(s1, 37)
	return result
}

// Float returns a uniform value in [0, 1)
func (r *Random) Float() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Bilateral returns a uniform value in [-1, 1)
func (r *Random) Bilateral() float64 {
	return r.Float()*2 - 1
}

// Range returns a uniform value between min and max; min > max is allowed
func (r *Random) Range(min, max float64) float64 {
	return r.Float()*(max-min) + min
}

// RangeInt returns a rounded value in [min, max]
func (r *Random) RangeInt(min, max int) int {
	return int(math.Round(r.Range(float64(min), float64(max))))
}

// Intn returns a value in [0, n), 0 for n <= 0
func (r *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Coin returns true with probability one half
func (r *Random) Coin() bool {
	return r.Float() > 0.5
}
