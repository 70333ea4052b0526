// SPDX-License-Identifier: MIT

package fixed_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/fixed"
	"github.com/katalvlaran/fixedpoint/width"
)

type uq8_8 = fixed.UFixed[width.W8, width.W8]

func uq88(v float64) uq8_8  { return fixed.UFromFloat64[width.W8, width.W8](v) }
func uraw88(r uint32) uq8_8 { return fixed.UFromRaw[width.W8, width.W8](r) }

func TestUFixed_Construction(t *testing.T) {
	assert.Equal(t, uint32(384), uq88(1.5).Raw())
	assert.Equal(t, uint32(0xFF00), uq88(-1).Raw(), "negative values keep their pattern")
	assert.Equal(t, uint32(0), uq88(math.NaN()).Raw())
	assert.Equal(t, fixed.UMaxValue[width.W8, width.W8](), uq88(math.Inf(1)))
	assert.Equal(t, uint32(0xFF00), uraw88(0x1_FF00).Raw(), "FromRaw truncates")

	assert.Equal(t, uint32(256), fixed.UOne[width.W8, width.W8]().Raw())
	assert.Equal(t, uint32(0), fixed.UOne[width.W0, width.W8]().Raw(), "UQ0.8 cannot hold 1.0")
	assert.Equal(t, uint32(1), fixed.UEpsilon[width.W8, width.W8]().Raw())
	assert.Equal(t, uint32(0), fixed.UMinValue[width.W8, width.W8]().Raw())
	assert.Equal(t, uint32(0xFFFF), fixed.UMaxValue[width.W8, width.W8]().Raw())
	assert.Equal(t, uint32(math.MaxUint32), fixed.UMaxValue[width.W0, width.W32]().Raw())

	assert.Equal(t, 4.0, fixed.UFromInt[width.W8, width.W8](260).Float64())
	assert.Equal(t, float32(1.5), fixed.UFromFloat32[width.W8, width.W8](1.5).Float32())

	x := uq88(2)
	assert.Equal(t, uint(16), x.Bits())
	assert.Equal(t, uint(8), x.IntBits())
	assert.Equal(t, uint(8), x.FracBits())
}

func TestUFixed_Arithmetic(t *testing.T) {
	assert.Equal(t, uq88(3.75), uq88(1.5).Add(uq88(2.25)))
	assert.Equal(t, uint32(0xFF00), uq88(1).Sub(uq88(2)).Raw())
	assert.Equal(t, uq88(3.375), uq88(1.5).Mul(uq88(2.25)))
	assert.Equal(t, uint32(0xFF00), uq88(1).Neg().Raw())
	assert.Equal(t, uq88(7), uq88(7).Abs())

	d, err := uq88(1).Div(uq88(3))
	require.NoError(t, err)
	assert.Equal(t, uint32(85), d.Raw())

	_, err = uq88(1).Div(uq88(0))
	require.ErrorIs(t, err, fixedpoint.ErrDivisionByZero)

	m, err := uq88(5.5).Mod(uq88(2))
	require.NoError(t, err)
	assert.Equal(t, uq88(1.5), m)

	_, err = uq88(5.5).Mod(uq88(0))
	require.ErrorIs(t, err, fixedpoint.ErrDivisionByZero)
}

func TestUFixed_Rounding(t *testing.T) {
	assert.Equal(t, uq88(1), uq88(1.75).Floor())
	assert.Equal(t, uq88(2), uq88(1.25).Ceil())
	assert.Equal(t, uq88(2), uq88(1.5).Round())
	assert.Equal(t, uq88(1), uq88(1.25).Round())
	assert.Equal(t, uq88(1), uq88(1.75).Trunc())
	assert.Equal(t, uq88(0.75), uq88(1.75).Frac())
	assert.Equal(t, uq88(0), fixed.UMaxValue[width.W8, width.W8]().Ceil(), "Ceil past the top wraps")
}

func TestUFixed_Convert(t *testing.T) {
	assert.Equal(t, uint32(28), fixed.UConvertFrac[width.W4](uq88(1.75)).Raw())
	assert.Equal(t, 10.5, fixed.UConvert[width.W4, width.W4](uq88(10.5)).Float64())
	assert.Equal(t, 4.0, fixed.UConvert[width.W4, width.W4](uq88(20)).Float64(), "narrowing wraps")
	assert.Equal(t, 200.25, fixed.UConvert[width.W16, width.W16](uq88(200.25)).Float64())
}

func TestUFixed_Saturating(t *testing.T) {
	hi := fixed.UMaxValue[width.W8, width.W8]()
	eps := fixed.UEpsilon[width.W8, width.W8]()
	assert.Equal(t, hi, hi.AddSat(eps))
	assert.Equal(t, uq88(0), uq88(0).SubSat(eps))
	assert.Equal(t, hi, uq88(100).MulSat(uq88(100)))

	assert.Equal(t, uq88(1), uq88(3).Clamp01())
	assert.Equal(t, uq88(0.5), uq88(0.5).Clamp01())
	small := fixed.UFromRaw[width.W0, width.W8](255)
	assert.Equal(t, small, small.Clamp01(), "UQ0.8 clamps at its max")

	assert.Equal(t, uq88(2), uq88(3).Clamp(uq88(1), uq88(2)))
	assert.Equal(t, uq88(3), uq88(5).ClampWithOffset(uq88(1), uq88(2), -512, 256))
	assert.Equal(t, uq88(0), uq88(0).ClampWithOffset(uq88(1), uq88(2), -512, 256))

	// Extreme deltas pin both bounds to the register's ends.
	assert.Equal(t, fixed.UMaxValue[width.W8, width.W8](), uq88(0).ClampWithOffset(uq88(1), uq88(2), math.MaxInt32, math.MaxInt32))
	assert.Equal(t, uq88(0), uq88(5).ClampWithOffset(uq88(1), uq88(2), math.MinInt32, math.MinInt32))
	q32 := fixed.UFromRaw[width.W16, width.W16](7)
	assert.Equal(t, fixed.UMaxValue[width.W16, width.W16](), q32.ClampWithOffset(q32, q32, math.MaxInt32, math.MaxInt32))
}

func TestUFixed_Compare(t *testing.T) {
	assert.Equal(t, 1, uq88(2).Cmp(uq88(1)))
	assert.True(t, uq88(1).Less(uq88(2)))
	assert.True(t, uq88(1).Equal(uraw88(256)))
	assert.Equal(t, uq88(1), uq88(1).Min(uq88(2)))
	assert.Equal(t, uq88(2), uq88(1).Max(uq88(2)))
	assert.Equal(t, 0, uq88(0).Sign())
	assert.Equal(t, 1, uq88(0.25).Sign())
	assert.True(t, uq88(0).IsZero())
}
