package testcase

import (
	"math/big"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "not a decimal integer: %q", s)
	return v
}

func TestSelect_FixedCases(t *testing.T) {
	repunit := mustInt(t, strings.Repeat("1", 200))
	tests := []struct {
		index int
		kind  Kind
		x, y  *big.Int
	}{
		{1, OneTimesPower, big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), 200)},
		{2, ZeroTimesPower, big.NewInt(0), new(big.Int).Lsh(big.NewInt(1), 211)},
		{3, SmallTimesRepunit, big.NewInt(4), repunit},
		{4, RepunitTimesSmall, repunit, big.NewInt(5)},
	}

	for _, tc := range tests {
		c, err := Select(tc.index, nil)
		require.NoError(t, err)
		assert.Equal(t, tc.index, c.Index)
		assert.Equal(t, tc.kind, c.Kind)
		assert.Zero(t, c.X.Cmp(tc.x), "index %d: x = %s", tc.index, c.X)
		assert.Zero(t, c.Y.Cmp(tc.y), "index %d: y = %s", tc.index, c.Y)
	}
}

func TestSelect_FixedCasesAreIdempotent(t *testing.T) {
	for index := 1; index <= NumFixed; index++ {
		a, err := Select(index, NewRand(1))
		require.NoError(t, err)
		b, err := Select(index, NewRand(2))
		require.NoError(t, err)
		assert.Equal(t, a.X.String(), b.X.String())
		assert.Equal(t, a.Y.String(), b.Y.String())
	}
}

func TestSelect_InvalidIndex(t *testing.T) {
	for _, index := range []int{0, -1, -100} {
		_, err := Select(index, nil)
		require.ErrorIs(t, err, ErrInvalidIndex)
	}
}

func TestSelect_RandomWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	for index := NumFixed + 1; index <= NumFixed+8; index++ {
		lo, hi := RandomBounds(index - NumFixed)
		for i := 0; i < 50; i++ {
			c, err := Select(index, rng)
			require.NoError(t, err)
			assert.Equal(t, Random, c.Kind)
			for _, v := range []*big.Int{c.X, c.Y} {
				assert.True(t, v.Cmp(lo) >= 0, "index %d: %s below %s", index, v, lo)
				assert.True(t, v.Cmp(hi) <= 0, "index %d: %s above %s", index, v, hi)
			}
		}
	}
}

func TestSelect_RandomIsReproducibleWithSeed(t *testing.T) {
	a, err := Select(9, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	b, err := Select(9, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	assert.Equal(t, a.X.String(), b.X.String())
	assert.Equal(t, a.Y.String(), b.Y.String())

	c, err := Select(9, rand.New(rand.NewPCG(8, 8)))
	require.NoError(t, err)
	assert.NotEqual(t, a.X.String(), c.X.String())
}

func TestCompute_Multiply(t *testing.T) {
	repunit := Repunit(200)

	c, err := Select(2, nil)
	require.NoError(t, err)
	assert.Zero(t, c.Compute(Multiply).Value.Sign())

	c, err = Select(3, nil)
	require.NoError(t, err)
	o := c.Compute(Multiply)
	want := new(big.Int).Mul(big.NewInt(4), repunit)
	assert.Zero(t, o.Value.Cmp(want))
	assert.Equal(t, "4"+strings.Repeat("4", 199), o.Value.String())
	assert.Same(t, c.X, o.X)
}

func TestCompute_SubtractNoSwap(t *testing.T) {
	c, err := Select(4, nil)
	require.NoError(t, err)
	o := c.Compute(Subtract)

	assert.Equal(t, strings.Repeat("1", 198)+"06", o.Value.String())
	assert.Zero(t, o.X.Cmp(c.X))
	assert.Zero(t, o.Y.Cmp(big.NewInt(5)))
}

func TestCompute_SubtractSwapsSmallerFirst(t *testing.T) {
	c, err := Select(1, nil)
	require.NoError(t, err)
	o := c.Compute(Subtract)

	assert.Zero(t, o.X.Cmp(PowerOfTwo(200)))
	assert.Zero(t, o.Y.Cmp(big.NewInt(1)))
	assert.Zero(t, o.Value.Cmp(new(big.Int).Sub(PowerOfTwo(200), big.NewInt(1))))
	// the case itself keeps its original order
	assert.Zero(t, c.X.Cmp(big.NewInt(1)))
}

func TestCompute_RandomProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		index := NumFixed + 1 + rng.IntN(6)

		sub, err := Generate(index, Subtract, rng)
		require.NoError(t, err)
		assert.True(t, sub.X.Cmp(sub.Y) >= 0)
		assert.True(t, sub.Value.Sign() >= 0)
		diff := new(big.Int).Sub(sub.Case.X, sub.Case.Y)
		assert.Zero(t, sub.Value.Cmp(diff.Abs(diff)))

		mul, err := Generate(index, Multiply, rng)
		require.NoError(t, err)
		x := mustInt(t, mul.X.String())
		y := mustInt(t, mul.Y.String())
		assert.Zero(t, mul.Value.Cmp(new(big.Int).Mul(x, y)))
	}
}
