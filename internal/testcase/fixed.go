package testcase

import (
	"math/big"
	"strings"
)

// Kind names the family a case belongs to
type Kind string

const (
	OneTimesPower     Kind = "one-times-power"
	ZeroTimesPower    Kind = "zero-times-power"
	SmallTimesRepunit Kind = "small-times-repunit"
	RepunitTimesSmall Kind = "repunit-times-small"
	Random            Kind = "random"
)

// RepunitDigits is the length of the repunit used by the fixed cases
const RepunitDigits = 200

// NumFixed is the number of fixed cases; indices above it are random.
const NumFixed = 4

// fixedCase describes one of the deterministic cases
type fixedCase struct {
	kind Kind
	x, y func() *big.Int
}

var fixedCases = [NumFixed]fixedCase{
	{OneTimesPower, func() *big.Int { return big.NewInt(1) }, func() *big.Int { return PowerOfTwo(200) }},
	{ZeroTimesPower, func() *big.Int { return big.NewInt(0) }, func() *big.Int { return PowerOfTwo(211) }},
	{SmallTimesRepunit, func() *big.Int { return big.NewInt(4) }, func() *big.Int { return Repunit(RepunitDigits) }},
	{RepunitTimesSmall, func() *big.Int { return Repunit(RepunitDigits) }, func() *big.Int { return big.NewInt(5) }},
}

// AllKinds returns every case kind, fixed ones first
func AllKinds() []Kind {
	kinds := make([]Kind, 0, NumFixed+1)
	for _, fc := range fixedCases {
		kinds = append(kinds, fc.kind)
	}
	return append(kinds, Random)
}

// PowerOfTwo returns 2^n
func PowerOfTwo(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

// Repunit returns the decimal number made of n ones
func Repunit(n int) *big.Int {
	if n <= 0 {
		return new(big.Int)
	}
	r, _ := new(big.Int).SetString(strings.Repeat("1", n), 10)
	return r
}
