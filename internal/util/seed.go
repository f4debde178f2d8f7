package util

import (
	"fmt"
	"hash/fnv"
	"time"
)

// ResolveSeed returns seed unchanged when it is set, or a clock-derived seed
// otherwise. auto reports whether the seed was generated.
func ResolveSeed(seed int64) (resolved int64, auto bool) {
	if seed != 0 {
		return seed, false
	}
	s := time.Now().UnixNano()
	if s == 0 {
		s = 1
	}
	return s, true
}

// CaseSeed derives a per-case seed so that a case's operands depend only on
// the run seed and its index, never on the order workers pick tasks up.
func CaseSeed(seed int64, index int) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d_case_%d", seed, index)
	s := h.Sum64()
	if s == 0 {
		s = 1
	}
	return s
}
