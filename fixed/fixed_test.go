// SPDX-License-Identifier: MIT

package fixed_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/fixed"
	"github.com/katalvlaran/fixedpoint/width"
)

type (
	q8_8   = fixed.Fixed[width.W8, width.W8]
	q16_16 = fixed.Fixed[width.W16, width.W16]
)

func q88(v float64) q8_8     { return fixed.FromFloat64[width.W8, width.W8](v) }
func raw88(r int32) q8_8     { return fixed.FromRaw[width.W8, width.W8](r) }
func q1616(v float64) q16_16 { return fixed.FromFloat64[width.W16, width.W16](v) }

// TestFixed_Scenarios pins the canonical Q8.8 and Q16.16 examples.
func TestFixed_Scenarios(t *testing.T) {
	x := q88(1.5)
	assert.Equal(t, int32(384), x.Raw())
	assert.Equal(t, 1.5, x.Float64())
	assert.Equal(t, float32(1.5), x.Float32())

	assert.Equal(t, int32(65536), fixed.One[width.W16, width.W16]().Raw())
	assert.Equal(t, int32(256), fixed.One[width.W8, width.W8]().Raw())
	assert.Equal(t, int32(1), fixed.Epsilon[width.W8, width.W8]().Raw())

	_, err := fixed.One[width.W16, width.W16]().Div(fixed.Zero[width.W16, width.W16]())
	require.ErrorIs(t, err, fixedpoint.ErrDivisionByZero)

	assert.Equal(t, uint(16), x.Bits())
	assert.Equal(t, uint(8), x.IntBits())
	assert.Equal(t, uint(8), x.FracBits())
}

// TestFixed_ZeroIsIdentity checks Zero + x == x over random raw values.
func TestFixed_ZeroIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	zero := fixed.Zero[width.W16, width.W16]()
	for k := 0; k < 1000; k++ {
		x := fixed.FromRaw[width.W16, width.W16](int32(rng.Uint32()))
		require.Equal(t, x, zero.Add(x))
	}
}

func TestFixed_Construction(t *testing.T) {
	assert.Equal(t, int32(1), q88(0.001953125).Raw(), "half an ulp rounds away from zero")
	assert.Equal(t, int32(-1), q88(-0.001953125).Raw())
	assert.Equal(t, -128.0, q88(128).Float64(), "overflow wraps silently")
	assert.Equal(t, int32(0), q88(math.NaN()).Raw())
	assert.Equal(t, fixed.MaxValue[width.W8, width.W8](), q88(math.Inf(1)))
	assert.Equal(t, fixed.MinValue[width.W8, width.W8](), q88(math.Inf(-1)))
	assert.Equal(t, int32(384), fixed.FromFloat32[width.W8, width.W8](1.5).Raw())

	assert.Equal(t, int32(768), fixed.FromInt[width.W8, width.W8](3).Raw())
	assert.Equal(t, -56.0, fixed.FromInt[width.W8, width.W8](200).Float64())

	assert.Equal(t, int32(math.MinInt16), fixed.MinValue[width.W8, width.W8]().Raw())
	assert.Equal(t, int32(math.MaxInt16), fixed.MaxValue[width.W8, width.W8]().Raw())

	// Q0.32: zero integer bits, value in [-0.5, 0.5).
	q := fixed.FromFloat64[width.W0, width.W32](0.25)
	assert.Equal(t, int32(1<<30), q.Raw())
	assert.Equal(t, 0.25, q.Float64())
}

func TestFixed_OversizedPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, fixedpoint.ErrNotSupported)
	}()
	_ = fixed.One[width.W16, width.W17]()
}

func TestFixed_Arithmetic(t *testing.T) {
	assert.Equal(t, q88(3.75), q88(1.5).Add(q88(2.25)))
	assert.Equal(t, q88(-0.75), q88(1.5).Sub(q88(2.25)))
	assert.Equal(t, q88(3.375), q88(1.5).Mul(q88(2.25)))
	assert.Equal(t, raw88(-2), q88(-1.5).Mul(raw88(1)), "Mul floors")
	assert.Equal(t, q88(-127.5), q88(127.5).Neg())
	assert.Equal(t, fixed.MinValue[width.W8, width.W8](), fixed.MinValue[width.W8, width.W8]().Abs())
	assert.Equal(t, q88(1.5), q88(-1.5).Abs())
	assert.Equal(t, q88(-128), q88(127).Add(q88(1)))

	d, err := q88(1).Div(q88(3))
	require.NoError(t, err)
	assert.Equal(t, int32(85), d.Raw())

	d, err = q88(-1).Div(q88(3))
	require.NoError(t, err)
	assert.Equal(t, int32(-85), d.Raw(), "Div truncates toward zero")

	m, err := q88(5.5).Mod(q88(2))
	require.NoError(t, err)
	assert.Equal(t, q88(1.5), m)

	m, err = q88(-5.5).Mod(q88(2))
	require.NoError(t, err)
	assert.Equal(t, q88(-1.5), m)

	_, err = q88(1).Mod(q88(0))
	require.ErrorIs(t, err, fixedpoint.ErrDivisionByZero)

	p := q1616(-2.5).Mul(q1616(4))
	assert.Equal(t, -10.0, p.Float64())
}

func TestFixed_Rounding(t *testing.T) {
	cases := []struct {
		in                              float64
		floor, ceil, round, trunc, frac float64
	}{
		{1.5, 1, 2, 2, 1, 0.5},
		{1.25, 1, 2, 1, 1, 0.25},
		{2, 2, 2, 2, 2, 0},
		{-1.5, -2, -2, -2, -1, 0.5},
		{-1.25, -2, -2, -2, -1, 0.75},
		{-1.75, -2, -2, -3, -1, 0.25},
		{-0.25, -1, -1, -1, 0, 0.75},
		{-0.5, -1, -1, -1, 0, 0.5},
		{0.00390625, 0, 1, 0, 0, 0.00390625},
	}
	for _, tc := range cases {
		x := q88(tc.in)
		assert.Equal(t, tc.floor, x.Floor().Float64(), "Floor(%v)", tc.in)
		assert.Equal(t, tc.ceil, x.Ceil().Float64(), "Ceil(%v)", tc.in)
		assert.Equal(t, tc.round, x.Round().Float64(), "Round(%v)", tc.in)
		assert.Equal(t, tc.trunc, x.Trunc().Float64(), "Trunc(%v)", tc.in)
		assert.Equal(t, tc.frac, x.Frac().Float64(), "Frac(%v)", tc.in)
	}
}

func TestFixed_Convert(t *testing.T) {
	x := q88(1.75)
	assert.Equal(t, int32(28), fixed.ConvertFrac[width.W4](x).Raw())
	assert.Equal(t, int32(7168), fixed.ConvertFrac[width.W12](x).Raw())
	assert.Equal(t, 1.75, fixed.ConvertFrac[width.W12](x).Float64())

	assert.Equal(t, -1.5, fixed.Convert[width.W4, width.W4](q88(-1.5)).Float64())
	assert.Equal(t, -6.0, fixed.Convert[width.W4, width.W4](q88(10)).Float64(), "narrowing wraps")
	assert.Equal(t, 1.5, fixed.Convert[width.W16, width.W16](q88(1.5)).Float64())
	assert.Equal(t, -0.0078125, fixed.ConvertFrac[width.W7](raw88(-1)).Float64(), "dropping bits floors")
}

func TestFixed_Saturating(t *testing.T) {
	lo, hi := fixed.MinValue[width.W8, width.W8](), fixed.MaxValue[width.W8, width.W8]()
	eps := fixed.Epsilon[width.W8, width.W8]()
	assert.Equal(t, hi, hi.AddSat(eps))
	assert.Equal(t, lo, lo.SubSat(eps))
	assert.Equal(t, hi, q88(100).MulSat(q88(100)))
	assert.Equal(t, lo, q88(-100).MulSat(q88(100)))
	assert.Equal(t, q88(6), q88(2).MulSat(q88(3)))

	assert.Equal(t, q88(1), q88(3).Clamp01())
	assert.Equal(t, q88(0), q88(-2).Clamp01())
	assert.Equal(t, q88(0.5), q88(0.5).Clamp01())

	// Q1.7 cannot hold 1.0; Clamp01 stops at MaxValue.
	q17 := fixed.MaxValue[width.W1, width.W7]()
	assert.Equal(t, q17, q17.Clamp01())
	assert.Equal(t, int32(127), q17.Clamp01().Raw())

	assert.Equal(t, q88(1), q88(3).Clamp(q88(-1), q88(1)))
	assert.Equal(t, q88(1.5), q88(3).ClampWithOffset(q88(-1), q88(1), q88(0), q88(0.5)))
	assert.Equal(t, hi, hi.ClampWithOffset(q88(0), q88(100), q88(0), q88(100)))
	assert.Equal(t, q88(2), q88(9).ClampWithOffset(q88(1), q88(-1), q88(1), q88(0.5)))
}

func TestFixed_Compare(t *testing.T) {
	assert.Equal(t, -1, q88(-1).Cmp(q88(1)))
	assert.True(t, q88(-1).Less(q88(1)))
	assert.True(t, q88(1).Equal(raw88(256)))
	assert.Equal(t, q88(-1), q88(-1).Min(q88(1)))
	assert.Equal(t, q88(1), q88(-1).Max(q88(1)))
	assert.Equal(t, -1, q88(-0.5).Sign())
	assert.True(t, q88(0).IsZero())
}
