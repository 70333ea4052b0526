// SPDX-License-Identifier: MIT

package intn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/intn"
	"github.com/katalvlaran/fixedpoint/width"
)

// TestInt_Trig uses 8-bit binary angles: 64 is a quarter turn and Q6
// ratios make 64 equal to 1.0.
func TestInt_Trig(t *testing.T) {
	s, err := n8(32).Sin()
	require.NoError(t, err)
	assert.Equal(t, n8(45), s)

	c, err := n8(64).Cos()
	require.NoError(t, err)
	assert.Equal(t, n8(0), c)

	tn, err := n8(64).Tan()
	require.NoError(t, err)
	assert.Equal(t, intn.MaxInt[width.W8](), tn, "90° is the max sentinel")

	tn, err = n8(-64).Tan()
	require.NoError(t, err)
	assert.Equal(t, intn.MinInt[width.W8](), tn)

	a, err := n8(0).Atan2(n8(-1))
	require.NoError(t, err)
	assert.Equal(t, n8(-128), a, "a half turn wraps to MinInt")

	a, err = n8(64).Asin()
	require.NoError(t, err)
	assert.Equal(t, n8(64), a)

	a, err = n8(64).Acos()
	require.NoError(t, err)
	assert.Equal(t, n8(0), a)

	a, err = n8(64).Atan()
	require.NoError(t, err)
	assert.Equal(t, n8(32), a)

	s16, err := intn.New[width.W16](0x2000).Sin()
	require.NoError(t, err)
	assert.Equal(t, int32(11585), s16.Raw())
}

func TestInt_TrigUnsupportedWidths(t *testing.T) {
	_, err := intn.New[width.W1](0).Sin()
	require.ErrorIs(t, err, fixedpoint.ErrNotSupported)
	_, err = intn.New[width.W32](0).Cos()
	require.ErrorIs(t, err, fixedpoint.ErrNotSupported)
	_, err = intn.NewUint[width.W0](0).Tan()
	require.ErrorIs(t, err, fixedpoint.ErrNotSupported)
	_, err = intn.NewUint[width.W32](0).Atan2(intn.NewUint[width.W32](1))
	require.ErrorIs(t, err, fixedpoint.ErrNotSupported)
}

func TestInt_TanSentinelAcrossWidths(t *testing.T) {
	checkTan := func(got intn.Int[width.W13], err error) {
		require.NoError(t, err)
		assert.Equal(t, intn.MaxInt[width.W13](), got)
	}
	checkTan(intn.New[width.W13](1 << 11).Tan())

	v, err := intn.New[width.W20](1 << 18).Tan()
	require.NoError(t, err)
	assert.Equal(t, intn.MaxInt[width.W20](), v)

	w, err := intn.New[width.W31](1 << 29).Tan()
	require.NoError(t, err)
	assert.Equal(t, intn.MaxInt[width.W31](), w)
}

func TestUint_Trig(t *testing.T) {
	s, err := u8(192).Sin()
	require.NoError(t, err)
	assert.Equal(t, u8(192), s, "-64 comes back as its 8-bit pattern")

	a, err := u8(1).Atan2(u8(1))
	require.NoError(t, err)
	assert.Equal(t, u8(32), a)

	a, err = u8(5).Atan2(u8(0))
	require.NoError(t, err)
	assert.Equal(t, u8(64), a)

	a, err = u8(32).Asin()
	require.NoError(t, err)
	assert.Equal(t, u8(21), a)

	a, err = u8(64).Acos()
	require.NoError(t, err)
	assert.Equal(t, u8(0), a)

	a, err = u8(0).Atan()
	require.NoError(t, err)
	assert.Equal(t, u8(0), a)

	c, err := u8(0).Cos()
	require.NoError(t, err)
	assert.Equal(t, u8(64), c)

	tn, err := u8(0).Tan()
	require.NoError(t, err)
	assert.Equal(t, u8(0), tn)
}

func TestInt_Scalar(t *testing.T) {
	assert.Equal(t, n8(10), n8(-100).Sqrt())
	assert.Equal(t, n8(64), n8(6).Exp2())
	assert.Equal(t, n8(127), n8(7).Exp2(), "saturates")
	assert.Equal(t, n8(16), n8(3).Exp())
	assert.Equal(t, n8(6), n8(100).Log2())
	assert.Equal(t, n8(4), n8(100).Log())
	assert.Equal(t, n8(-128), n8(0).Log2())
	assert.Equal(t, n8(-128), n8(-3).Log())

	assert.Equal(t, u8(128), u8(7).Exp2())
	assert.Equal(t, u8(255), u8(8).Exp2())
	assert.Equal(t, u8(15), u8(255).Sqrt())
	assert.Equal(t, u8(0), u8(0).Log2())
	assert.Equal(t, u8(7), u8(255).Log2())
	assert.Equal(t, u8(1), u8(0).Exp())
	assert.Equal(t, u8(0), u8(1).Log())
}
