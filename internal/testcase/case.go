// Package testcase selects big-integer operand pairs by test index and
// computes the expected result of multiplying or subtracting them.
package testcase

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"
)

// ErrInvalidIndex is returned for test indices below 1
var ErrInvalidIndex = errors.New("invalid test index")

// Case is an operand pair selected for a test index
type Case struct {
	Index int
	Kind  Kind
	X     *big.Int
	Y     *big.Int
}

// Outcome holds the operands as they should be printed together with the
// expected result. In Subtract mode X >= Y always holds.
type Outcome struct {
	Case  Case
	Mode  Mode
	X     *big.Int
	Y     *big.Int
	Value *big.Int
}

// Select returns the operand pair for index. Indices 1 to NumFixed are fixed
// edge cases; higher indices sample both operands from RandomBounds(index-NumFixed).
func Select(index int, rng *rand.Rand) (Case, error) {
	if index < 1 {
		return Case{}, fmt.Errorf("%w %d: must be >= 1", ErrInvalidIndex, index)
	}
	if index <= NumFixed {
		fc := fixedCases[index-1]
		return Case{Index: index, Kind: fc.kind, X: fc.x(), Y: fc.y()}, nil
	}
	if rng == nil {
		rng = defaultRNG
	}
	lo, hi := RandomBounds(index - NumFixed)
	return Case{
		Index: index,
		Kind:  Random,
		X:     UniformInRange(rng, lo, hi),
		Y:     UniformInRange(rng, lo, hi),
	}, nil
}

// Compute applies mode to the case. Subtract swaps the operands first when
// X < Y so the result is never negative. The case operands are not modified.
func (c Case) Compute(mode Mode) Outcome {
	x, y := c.X, c.Y
	value := new(big.Int)
	switch mode {
	case Subtract:
		if x.Cmp(y) < 0 {
			x, y = y, x
		}
		value.Sub(x, y)
	default:
		value.Mul(x, y)
	}
	return Outcome{Case: c, Mode: mode, X: x, Y: y, Value: value}
}

// Generate selects the case for index and computes it in one step
func Generate(index int, mode Mode, rng *rand.Rand) (Outcome, error) {
	c, err := Select(index, rng)
	if err != nil {
		return Outcome{}, err
	}
	return c.Compute(mode), nil
}
