package world

import (
	"math/rand"
	"time"
)

// Random is the source of randomness for generation. Float64 returns a
// value in [0, 1). *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// NewRandom returns a seeded generator. A seed of 0 means a random seed
// based on the current time.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// randomInRange returns an integer in [lo, hi].
func randomInRange(r Random, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return int(r.Float64()*float64(hi-lo+1)) + lo
}

// randomSign returns +1 or -1 with equal probability.
func randomSign(r Random) int {
	if r.Float64() > 0.5 {
		return 1
	}
	return -1
}

// clamp restricts v to [lo, hi]. When the range is empty hi wins.
func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
