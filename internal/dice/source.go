// Package dice provides the random sources used by game rules.
package dice

import (
	"math/rand"
	"time"
)

// Source is the randomness consumed by combat and wandering.
// *rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n). Panics if n <= 0.
	Intn(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Perm returns a random permutation of [0, n).
	Perm(n int) []int
}

// NewSource returns a seeded source. A seed of 0 uses the current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Between returns a uniform value in [lo, hi], inclusive on both ends.
// If hi < lo, lo is returned.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Chance returns true with probability p, comparing a [0,1) roll against p
// inclusively.
func Chance(src Source, p float64) bool {
	return src.Float64() <= p
}
