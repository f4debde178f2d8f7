package testcase

import (
	"math/big"
	"math/rand/v2"
)

// RandomBlockBits is the width step between consecutive random cases
const RandomBlockBits = 128

// RandomBounds returns the inclusive sampling range for the k-th random case:
// [2^(128(k-1)) - 1, 2^(128k) - 1]. The lower bound is one below the power of
// two on purpose; consumers rely on that exact boundary.
func RandomBounds(k int) (lo, hi *big.Int) {
	one := big.NewInt(1)
	lo = new(big.Int).Sub(PowerOfTwo(uint(RandomBlockBits*(k-1))), one)
	hi = new(big.Int).Sub(PowerOfTwo(uint(RandomBlockBits*k)), one)
	return lo, hi
}

// UniformInRange draws an integer uniformly from [lo, hi], both inclusive.
// It panics if hi < lo.
func UniformInRange(rng *rand.Rand, lo, hi *big.Int) *big.Int {
	span := new(big.Int).Sub(hi, lo)
	if span.Sign() < 0 {
		panic("testcase: UniformInRange called with hi < lo")
	}
	bits := span.BitLen()
	if bits == 0 {
		return new(big.Int).Set(lo)
	}

	nbytes := (bits + 7) / 8
	topMask := byte(0xFF >> (8*nbytes - bits))
	buf := make([]byte, nbytes)
	v := new(big.Int)
	// Rejection sampling: each draw is accepted with probability > 1/2.
	for {
		fillBytes(rng, buf)
		buf[0] &= topMask
		v.SetBytes(buf)
		if v.Cmp(span) <= 0 {
			return v.Add(v, lo)
		}
	}
}

func fillBytes(rng *rand.Rand, buf []byte) {
	for i := 0; i < len(buf); i += 8 {
		w := rng.Uint64()
		for j := 0; j < 8 && i+j < len(buf); j++ {
			buf[i+j] = byte(w >> (8 * j))
		}
	}
}
