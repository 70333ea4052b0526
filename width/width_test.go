// SPDX-License-Identifier: MIT

package width_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/width"
)

// TestTables_KnownRows pins the degenerate, typical and full-width rows.
func TestTables_KnownRows(t *testing.T) {
	assert.Equal(t, uint32(0), width.Mask(0))
	assert.Equal(t, int32(0), width.SignedMin(0))
	assert.Equal(t, int32(0), width.SignedMax(0))
	assert.Equal(t, uint32(0), width.SignBit(0))

	assert.Equal(t, uint32(1), width.Mask(1))
	assert.Equal(t, int32(-1), width.SignedMin(1))
	assert.Equal(t, int32(0), width.SignedMax(1))

	assert.Equal(t, uint32(0xFF), width.Mask(8))
	assert.Equal(t, int32(-128), width.SignedMin(8))
	assert.Equal(t, int32(127), width.SignedMax(8))
	assert.Equal(t, uint32(255), width.UnsignedMax(8))
	assert.Equal(t, uint32(0x80), width.SignBit(8))

	assert.Equal(t, uint32(math.MaxUint32), width.Mask(32))
	assert.Equal(t, int32(math.MinInt32), width.SignedMin(32))
	assert.Equal(t, int32(math.MaxInt32), width.SignedMax(32))
	assert.Equal(t, uint32(0x80000000), width.SignBit(32))
}

// TestTables_Consistency checks the relations between the tables for every width.
func TestTables_Consistency(t *testing.T) {
	for n := uint(1); n <= width.MaxBits; n++ {
		assert.Equal(t, width.Mask(n), width.UnsignedMax(n), "n=%d", n)
		assert.Equal(t, int64(width.SignedMax(n))+1, -int64(width.SignedMin(n)), "n=%d", n)
		assert.Equal(t, width.SignBit(n), uint32(width.SignedMin(n))&width.Mask(n), "n=%d", n)
	}
}

// TestSignExtend_Idempotent re-wraps random patterns for all widths.
func TestSignExtend_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := uint(1); n <= width.MaxBits; n++ {
		for k := 0; k < 256; k++ {
			v := int32(rng.Uint32())
			once := width.SignExtend(int32(uint32(v)&width.Mask(n)), n)
			require.Equal(t, once, width.SignExtend(once, n), "n=%d v=%d", n, v)
			require.GreaterOrEqual(t, once, width.SignedMin(n))
			require.LessOrEqual(t, once, width.SignedMax(n))
		}
	}
}

// TestWrap_Scenarios covers the canonical 8-bit wraparound examples.
func TestWrap_Scenarios(t *testing.T) {
	assert.Equal(t, int64(-56), width.Wrap(200, 8, true))
	assert.Equal(t, int64(44), width.Wrap(300, 8, false))
	assert.Equal(t, int64(0), width.Wrap(12345, 0, true))
	assert.Equal(t, int64(-1), width.Wrap(1, 1, true))
	assert.Equal(t, int64(math.MaxUint32), width.Wrap(-1, 32, false))
	assert.Equal(t, int64(math.MinInt32), width.Wrap(1<<31, 32, true))
}

// TestSaturate clamps into the signed and unsigned ranges.
func TestSaturate(t *testing.T) {
	assert.Equal(t, int64(127), width.Saturate(1000, 8, true))
	assert.Equal(t, int64(-128), width.Saturate(-1000, 8, true))
	assert.Equal(t, int64(0), width.Saturate(-5, 8, false))
	assert.Equal(t, int64(255), width.Saturate(256, 8, false))
	assert.Equal(t, int64(17), width.Saturate(17, 8, false))
}

// TestFloat_Truncation verifies truncation toward zero and modular wrap.
func TestFloat_Truncation(t *testing.T) {
	assert.Equal(t, int32(1), width.SignedFromFloat(1.9, 8))
	assert.Equal(t, int32(-1), width.SignedFromFloat(-1.9, 8))
	assert.Equal(t, int32(-56), width.SignedFromFloat(200.7, 8))
	assert.Equal(t, uint32(44), width.UnsignedFromFloat(300.2, 8))
	assert.Equal(t, uint32(0xFF), width.UnsignedFromFloat(-1, 8))
	// 2^40 + 5 keeps only its low bits.
	assert.Equal(t, int32(5), width.SignedFromFloat(math.Ldexp(1, 40)+5, 16))
	// Beyond the int64 range the reduction is still exact: 2^70 ≡ 0 mod 2^32.
	assert.Equal(t, uint32(0), width.UnsignedFromFloat(math.Ldexp(1, 70), 32))
}

// TestFloat_EdgeMappings pins the NaN and ±Inf mappings.
func TestFloat_EdgeMappings(t *testing.T) {
	nan, pinf, ninf := math.NaN(), math.Inf(1), math.Inf(-1)

	assert.Equal(t, uint32(0), width.UnsignedFromFloat(nan, 16))
	assert.Equal(t, uint32(0xFFFF), width.UnsignedFromFloat(pinf, 16))
	assert.Equal(t, uint32(0x8000), width.UnsignedFromFloat(ninf, 16))
	assert.Equal(t, uint32(0x80000000), width.UnsignedFromFloat(ninf, 32))

	assert.Equal(t, int32(0), width.SignedFromFloat(nan, 16))
	assert.Equal(t, int32(32767), width.SignedFromFloat(pinf, 16))
	assert.Equal(t, int32(-32768), width.SignedFromFloat(ninf, 16))
}

// TestParseRaw_Formats accepts decimal, hex and binary in any case.
func TestParseRaw_Formats(t *testing.T) {
	cases := []struct {
		in     string
		n      uint
		signed bool
		want   int64
	}{
		{"42", 8, true, 42},
		{"-42", 8, true, -42},
		{"+7", 8, true, 7},
		{"200", 8, true, -56},
		{"300", 8, false, 44},
		{"0x7f", 8, true, 127},
		{"0XFF", 8, true, -1},
		{"0xfF", 8, false, 255},
		{"0b1010", 4, false, 10},
		{"0B1111", 4, true, -1},
		{"-0x1", 8, false, 255},
		{"99999999999999999999999", 32, false, int64(uint32(99999999999999999999999 % (1 << 32)))},
		{"4294967296", 32, false, 0},
	}
	for _, c := range cases {
		got, err := width.ParseRaw(c.in, c.n, c.signed)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

// TestParseRaw_Malformed rejects every malformed literal with ErrFormat.
func TestParseRaw_Malformed(t *testing.T) {
	for _, in := range []string{"", "-", "+", "0x", "0b", "12a", "0x1g", "0b102", " 1", "1 ", "1_000", "--1"} {
		_, err := width.ParseRaw(in, 16, true)
		assert.ErrorIs(t, err, fixedpoint.ErrFormat, "input %q", in)
	}
}

// TestFormat_HexBinary renders fixed-width patterns.
func TestFormat_HexBinary(t *testing.T) {
	assert.Equal(t, "0xc8", width.FormatHex(-56, 8))
	assert.Equal(t, "0x00ff", width.FormatHex(255, 16))
	assert.Equal(t, "0x7", width.FormatHex(7, 3))
	assert.Equal(t, "0x0", width.FormatHex(0, 0))
	assert.Equal(t, "0b11001000", width.FormatBinary(-56, 8))
	assert.Equal(t, "0b0101", width.FormatBinary(5, 4))
	assert.Equal(t, "0b0", width.FormatBinary(0, 0))
}

// TestBytes_LittleEndian checks layout, truncation and byte replacement.
func TestBytes_LittleEndian(t *testing.T) {
	assert.Equal(t, []byte{0x34, 0x12}, width.PutBytes(0x1234, 16))
	assert.Equal(t, []byte{0xFF, 0xFF, 0x0F}, width.PutBytes(-1, 20))
	assert.Empty(t, width.PutBytes(0, 0))

	assert.Equal(t, uint32(0x1234), width.ReadBytes([]byte{0x34, 0x12, 0x99}, 16))
	assert.Equal(t, uint32(0x0FFFFF), width.ReadBytes([]byte{0xFF, 0xFF, 0xFF}, 20))

	assert.Equal(t, byte(0x12), width.ByteAt(0x1234, 16, 1))
	assert.Equal(t, uint32(0xAB34), width.WithByte(0x1234, 16, 1, 0xAB))
	assert.Equal(t, uint32(0x0F), width.WithByte(0, 4, 0, 0xFF))
	assert.Equal(t, 3, width.ByteCount(17))
	assert.Equal(t, 0, width.ByteCount(0))
}

// TestValidators_Domains verifies every validator boundary.
func TestValidators_Domains(t *testing.T) {
	require.NoError(t, width.ValidateShift("Shl", 0, 8))
	require.NoError(t, width.ValidateShift("Shl", 7, 8))
	assert.ErrorIs(t, width.ValidateShift("Shl", 8, 8), fixedpoint.ErrRange)
	assert.ErrorIs(t, width.ValidateShift("Shl", -1, 8), fixedpoint.ErrRange)
	assert.ErrorIs(t, width.ValidateShift("Shl", 0, 0), fixedpoint.ErrRange)

	require.NoError(t, width.ValidateModShift("ModPow2", 8, 8))
	assert.ErrorIs(t, width.ValidateModShift("ModPow2", 9, 8), fixedpoint.ErrRange)

	require.NoError(t, width.ValidateBitIndex("Bit", 31, 32))
	assert.ErrorIs(t, width.ValidateBitIndex("Bit", 32, 32), fixedpoint.ErrRange)

	require.NoError(t, width.ValidateByteIndex("GetByte", 2, 17))
	assert.ErrorIs(t, width.ValidateByteIndex("GetByte", 3, 17), fixedpoint.ErrRange)

	require.NoError(t, width.ValidateAngleBits("Sin", 2))
	require.NoError(t, width.ValidateAngleBits("Sin", 31))
	assert.ErrorIs(t, width.ValidateAngleBits("Sin", 1), fixedpoint.ErrNotSupported)
	assert.ErrorIs(t, width.ValidateAngleBits("Sin", 32), fixedpoint.ErrNotSupported)

	err := width.ValidateShift("Shr", 9, 8)
	assert.Contains(t, err.Error(), "Shr")
}

// TestOf_Markers resolves marker types to their widths.
func TestOf_Markers(t *testing.T) {
	assert.Equal(t, uint(0), width.Of[width.W0]())
	assert.Equal(t, uint(8), width.Of[width.W8]())
	assert.Equal(t, uint(17), width.Of[width.W17]())
	assert.Equal(t, uint(32), width.Of[width.W32]())
}

// TestClampOffset walks the four steps: offset, re-clamp, swap, clamp.
func TestClampOffset(t *testing.T) {
	assert.Equal(t, int64(15), width.ClampOffset(20, 0, 10, 0, 5, 8, true))
	// hi+dhi overflows the register and is pulled back to 127.
	assert.Equal(t, int64(127), width.ClampOffset(127, 0, 100, 0, 100, 8, true))
	// Inverted bounds are swapped before clamping.
	assert.Equal(t, int64(30), width.ClampOffset(50, 10, 0, 20, -5, 8, true))
	assert.Equal(t, int64(3), width.ClampOffset(3, 5, 9, -20, 0, 8, false))
	assert.Equal(t, int64(0), width.ClampOffset(200, 5, 9, -20, -50, 8, false))

	// Offsets that overflow int64 saturate instead of wrapping to the far end.
	assert.Equal(t, int64(65535), width.ClampOffset(0, 1, 2, math.MaxInt64, math.MaxInt64, 16, false))
	assert.Equal(t, int64(0), width.ClampOffset(9, 1, 2, math.MinInt64, math.MinInt64, 16, false))
	assert.Equal(t, int64(math.MinInt32), width.ClampOffset(0, -5, -1, math.MinInt64, math.MinInt64, 32, true))
	assert.Equal(t, int64(math.MaxInt32), width.ClampOffset(0, math.MaxInt64, 1, 1, math.MaxInt64, 32, true))
}

// TestJSONLiteral accepts strings and bare integers only.
func TestJSONLiteral(t *testing.T) {
	s, err := width.JSONLiteral("T", []byte(`"0x7f"`))
	require.NoError(t, err)
	assert.Equal(t, "0x7f", s)

	s, err = width.JSONLiteral("T", []byte(`-12`))
	require.NoError(t, err)
	assert.Equal(t, "-12", s)

	_, err = width.JSONLiteral("T", []byte(`{"raw":1}`))
	require.ErrorIs(t, err, fixedpoint.ErrFormat)
}
