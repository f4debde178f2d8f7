package testcase

import (
	"math/rand/v2"
	"time"
)

// Package-level default RNG used when callers pass a nil source
var defaultRNG = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

// NewRand returns a PCG source for seed. A zero seed means unseeded: the
// source is derived from the clock and runs are not reproducible.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}
