// SPDX-License-Identifier: MIT

package fxmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/fxmath"
)

var (
	int8Fmt   = fxmath.IntFormat(8, true)
	int16Fmt  = fxmath.IntFormat(16, true)
	uint16Fmt = fxmath.IntFormat(16, false)
	q16       = fxmath.FixedFormat(16, 16, true)
	uq16      = fxmath.FixedFormat(16, 16, false)
)

type unaryFn func(fxmath.Format, int64) (int64, error)

func eval(t *testing.T, fn unaryFn, f fxmath.Format, in []int64) []int64 {
	t.Helper()
	out := make([]int64, len(in))
	for i, v := range in {
		r, err := fn(f, v)
		require.NoError(t, err, "input %d", v)
		out[i] = r
	}

	return out
}

func TestFormats(t *testing.T) {
	f := fxmath.IntFormat(16, true)
	assert.Equal(t, uint(14), f.Frac)
	assert.True(t, f.Binary)
	assert.Equal(t, uint(0), fxmath.IntFormat(1, true).Frac)

	s := fxmath.ScalarFormat(8, false)
	assert.Equal(t, uint(0), s.Frac)

	x := fxmath.FixedFormat(16, 16, true)
	assert.Equal(t, uint(32), x.Bits)
	assert.False(t, x.Binary)
	assert.Equal(t, uint(31), x.AngleBits(), "radian formats cap the angle resolution")
	assert.Equal(t, uint(24), fxmath.FixedFormat(8, 16, true).AngleBits())

	lo, hi := int8Fmt.Range()
	assert.Equal(t, int64(-128), lo)
	assert.Equal(t, int64(127), hi)
}

func TestAngleBits_NotSupported(t *testing.T) {
	for _, f := range []fxmath.Format{
		fxmath.IntFormat(0, true),
		fxmath.IntFormat(1, true),
		fxmath.IntFormat(32, true),
		fxmath.IntFormat(32, false),
		fxmath.FixedFormat(1, 0, true),
	} {
		for name, fn := range map[string]unaryFn{
			"sin": fxmath.Sin, "cos": fxmath.Cos, "tan": fxmath.Tan,
			"asin": fxmath.Asin, "acos": fxmath.Acos, "atan": fxmath.Atan,
		} {
			_, err := fn(f, 0)
			require.ErrorIs(t, err, fixedpoint.ErrNotSupported, "%s bits=%d", name, f.Bits)
		}
		_, err := fxmath.Atan2(f, 0, 1)
		require.ErrorIs(t, err, fixedpoint.ErrNotSupported)
	}
}

func TestSin_RetroInt8(t *testing.T) {
	// 64 is a quarter turn; ratios are Q6 so 64 is 1.0.
	in := []int64{0, 32, 64, 96, 128, -64, -32}
	assert.Equal(t, []int64{0, 45, 64, 45, 0, -64, -45}, eval(t, fxmath.Sin, int8Fmt, in))
	assert.Equal(t, []int64{64, 45, 0, -64}, eval(t, fxmath.Cos, int8Fmt, []int64{0, 32, 64, 128}))
}

func TestSin_InterpolatedInt16(t *testing.T) {
	in := []int64{0, 0x1000, 0x2000, 0x4000, -0x2000, 1234}
	assert.Equal(t, []int64{0, 6270, 11585, 16384, -11585, 1934}, eval(t, fxmath.Sin, int16Fmt, in))

	// Unsigned callers receive the signed ratio and wrap it themselves.
	assert.Equal(t, []int64{11585, 16384, -16384}, eval(t, fxmath.Sin, uint16Fmt, []int64{0x2000, 0x4000, 0xC000}))
}

func TestSin_Radians(t *testing.T) {
	in := []int64{0, 65536, 102944, 205887, -65536, 32768}
	assert.Equal(t, []int64{0, 55145, 65536, 0, -55145, 31419}, eval(t, fxmath.Sin, q16, in))
	assert.Equal(t, []int64{65536, 35408, -65536}, eval(t, fxmath.Cos, q16, []int64{0, 65536, 205887}))
}

func TestSinCos_PythagoreanBand(t *testing.T) {
	const band = 8
	for raw := int64(-4 * 205887); raw < 4*205887; raw += 997 {
		s, err := fxmath.Sin(q16, raw)
		require.NoError(t, err)
		c, err := fxmath.Cos(q16, raw)
		require.NoError(t, err)
		d := (s*s+c*c)>>16 - 65536
		require.LessOrEqual(t, d, int64(band), "raw %d", raw)
		require.GreaterOrEqual(t, d, int64(-band), "raw %d", raw)
	}
}

// Integer angle formats above the nearest-neighbour band carry F = N-2
// fraction bits. The engine works in Q16.16, so the band is 6 output LSB up
// to F = 16 and doubles with every further fraction bit.
func TestSinCos_PythagoreanBandIntWidths(t *testing.T) {
	for n := uint(fxmath.SinRetroMaxBits + 1); n <= 31; n++ {
		frac := n - 2
		one := int64(1) << frac
		band := int64(6)
		if frac > 16 {
			band <<= frac - 16
		}
		step := (int64(1) << n) / 4096
		for _, signed := range []bool{true, false} {
			f := fxmath.IntFormat(n, signed)
			for k := int64(0); k < 4096; k++ {
				raw := k*step + k%step
				if signed {
					raw -= int64(1) << (n - 1)
				}
				s, err := fxmath.Sin(f, raw)
				require.NoError(t, err)
				c, err := fxmath.Cos(f, raw)
				require.NoError(t, err)
				d := (s*s + c*c - one*one) / one
				require.LessOrEqual(t, d, band, "n=%d signed=%v raw %d", n, signed, raw)
				require.GreaterOrEqual(t, d, -band, "n=%d signed=%v raw %d", n, signed, raw)
			}
		}
	}
}

func TestTan_Buckets(t *testing.T) {
	assert.Equal(t,
		[]int64{0, 26, 64, 127, 127, 127, -128, -64, -128},
		eval(t, fxmath.Tan, int8Fmt, []int64{0, 16, 32, 48, 63, 64, 65, 96, 192}))

	int14 := fxmath.IntFormat(14, true)
	assert.Equal(t, []int64{0, 4096, 1697, 8191, -8192}, eval(t, fxmath.Tan, int14, []int64{0, 0x800, 0x400, 0x1000, 0x3000}))

	assert.Equal(t,
		[]int64{0, 16384, 6787, 32767, 32767, -32768},
		eval(t, fxmath.Tan, int16Fmt, []int64{0, 0x2000, 0x1000, 0x3FFF, 0x4000, 0xC000}))

	assert.Equal(t, []int64{0, 65536, 102066, -65536}, eval(t, fxmath.Tan, q16, []int64{0, 51472, 65536, -51472}))

	q88 := fxmath.FixedFormat(8, 8, true)
	assert.Equal(t, []int64{0, 256, 399, 32767}, eval(t, fxmath.Tan, q88, []int64{0, 201, 256, 402}))
}

func TestTan_SentinelEveryWidth(t *testing.T) {
	for n := uint(2); n <= 31; n++ {
		f := fxmath.IntFormat(n, true)
		lo, hi := f.Range()
		quarter := int64(1) << (n - 2)

		v, err := fxmath.Tan(f, quarter)
		require.NoError(t, err)
		assert.Equal(t, hi, v, "90° at %d bits", n)

		v, err = fxmath.Tan(f, 3*quarter)
		require.NoError(t, err)
		assert.Equal(t, lo, v, "270° at %d bits", n)

		v, err = fxmath.Tan(f, 0)
		require.NoError(t, err)
		assert.Zero(t, v)
	}
}

func TestAsin(t *testing.T) {
	assert.Equal(t,
		[]int64{0, 5461, 16384, -16384, -5461, 14121, 16384},
		eval(t, fxmath.Asin, int16Fmt, []int64{0, 8192, 16384, -16384, -8192, 16000, 20000}))

	// Unsigned binary angles lift negatives by a full turn.
	assert.Equal(t, []int64{5461, 16384, 60075}, eval(t, fxmath.Asin, uint16Fmt, []int64{8192, 16384, -8192}))

	// Nearest-neighbour lookups at six bits and below.
	assert.Equal(t, []int64{0, 5, 16, -16}, eval(t, fxmath.Asin, fxmath.IntFormat(6, true), []int64{0, 8, 16, -16}))

	// The tail table serves |x| >= sin 75°; beyond ±1 clamps.
	assert.Equal(t,
		[]int64{0, 34314, 102944, -102944, 85787, 88726, 102589, -88726, 102944},
		eval(t, fxmath.Asin, q16, []int64{0, 32768, 65536, -65536, 63303, 64000, 65535, -64000, 70000}))
}

func TestAcos(t *testing.T) {
	assert.Equal(t,
		[]int64{102944, 68630, 0, 205888, 205888},
		eval(t, fxmath.Acos, q16, []int64{0, 32768, 65536, -65536, -70000}))

	// A half turn is not representable as a signed 16-bit binary angle; it
	// clamps to Max instead of wrapping negative.
	assert.Equal(t, []int64{16384, 0, 32767, 10922}, eval(t, fxmath.Acos, int16Fmt, []int64{0, 16384, -16384, 8192}))

	assert.Equal(t, []int64{102944, 0}, eval(t, fxmath.Acos, uq16, []int64{0, 65536}))

	// Nearest-neighbour band: acos(0) is exactly a quarter turn.
	for n := uint(2); n <= fxmath.AsinRetroMaxBits+1; n++ {
		for _, signed := range []bool{true, false} {
			f := fxmath.IntFormat(n, signed)
			a, err := fxmath.Acos(f, 0)
			require.NoError(t, err)
			assert.Equal(t, int64(1)<<(n-2), a, "acos(0) at %d bits, signed=%v", n, signed)
			s, err := fxmath.Asin(f, 0)
			require.NoError(t, err)
			assert.Zero(t, s, "asin(0) at %d bits, signed=%v", n, signed)
		}
	}
	assert.Equal(t, []int64{4, 0, 7, 2}, eval(t, fxmath.Acos, fxmath.IntFormat(4, true), []int64{0, 4, -4, 2}))
	assert.Equal(t, []int64{16, 0, 31, 10}, eval(t, fxmath.Acos, fxmath.IntFormat(6, true), []int64{0, 16, -16, 8}))
}

func TestAtan(t *testing.T) {
	assert.Equal(t,
		[]int64{0, 51472, -51472, 72559, 102689, 30385},
		eval(t, fxmath.Atan, q16, []int64{0, 65536, -65536, 131072, 1 << 24, 32768}))
	assert.Equal(t, []int64{0, 8192, -8192, 11548}, eval(t, fxmath.Atan, int16Fmt, []int64{0, 16384, -16384, 32767}))
}

func TestAtan2_Quadrants(t *testing.T) {
	cases := []struct {
		name string
		f    fxmath.Format
		y, x int64
		want int64
	}{
		{"origin", q16, 0, 0, 0},
		{"+x", q16, 0, 1, 0},
		{"+y", q16, 1, 0, 102944},
		{"-x", q16, 0, -1, 205887},
		{"-y", q16, -1, 0, -102944},
		{"q1", q16, 1, 1, 51472},
		{"q2", q16, 1, -1, 154415},
		{"q3", q16, -1, -1, -154415},
		{"q4", q16, -1, 1, -51472},
		{"3-4-5", q16, 3, 4, 42172},

		{"int16 +x", int16Fmt, 0, 1, 0},
		{"int16 +y", int16Fmt, 1, 0, 16384},
		{"int16 -x wraps to -π", int16Fmt, 0, -1, -32768},
		{"int16 -y", int16Fmt, -1, 0, -16384},
		{"int16 q1", int16Fmt, 1, 1, 8192},
		{"int16 q3", int16Fmt, -1, -1, -24576},

		{"uint16 -x", uint16Fmt, 0, -1, 32768},
		{"uint16 -y", uint16Fmt, -1, 0, 49152},
		{"uint16 q3", uint16Fmt, -1, -1, 40960},

		{"ufixed -x", uq16, 0, -1, 205887},
		{"ufixed -y folds", uq16, -1, 0, 308831},
		{"ufixed q3 folds", uq16, -1, -1, 257360},
		{"ufixed q4 folds", uq16, -1, 1, 360303},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := fxmath.Atan2(tc.f, tc.y, tc.x)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestSqrt(t *testing.T) {
	for _, tc := range []struct{ in, want int64 }{
		{0, 0}, {65536, 65536}, {4 * 65536, 131072}, {2 * 65536, 92681},
		{-4 * 65536, 131072}, {32768, 46340},
	} {
		assert.Equal(t, tc.want, fxmath.Sqrt(q16, tc.in), "sqrt(%d)", tc.in)
	}

	s16 := fxmath.ScalarFormat(16, true)
	for _, tc := range []struct{ in, want int64 }{
		{0, 0}, {1, 1}, {2, 1}, {15, 3}, {16, 4}, {17, 4}, {32767, 181},
	} {
		assert.Equal(t, tc.want, fxmath.Sqrt(s16, tc.in), "isqrt(%d)", tc.in)
	}
}

func TestExp2(t *testing.T) {
	for _, tc := range []struct{ in, want int64 }{
		{0, 65536},
		{65536, 131072},
		{-65536, 32768},
		{32768, 88249},
		{10 * 65536, 67108864},
		{15 * 65536, 2147483647},
		{16 * 65536, 2147483647},
		{-17 * 65536, 0},
		{-(40 << 16), 0},
	} {
		assert.Equal(t, tc.want, fxmath.Exp2(q16, tc.in), "exp2(%d)", tc.in)
	}

	s16 := fxmath.ScalarFormat(16, true)
	for _, tc := range []struct{ in, want int64 }{
		{0, 1}, {1, 2}, {3, 8}, {14, 16384}, {15, 32767}, {16, 32767}, {-1, 0},
	} {
		assert.Equal(t, tc.want, fxmath.Exp2(s16, tc.in), "exp2(%d)", tc.in)
	}

	u8 := fxmath.ScalarFormat(8, false)
	assert.Equal(t, int64(128), fxmath.Exp2(u8, 7))
	assert.Equal(t, int64(255), fxmath.Exp2(u8, 8))
}

func TestExp(t *testing.T) {
	for _, tc := range []struct{ in, want int64 }{
		{0, 65536}, {65536, 171290}, {-65536, 22712}, {2 * 65536, 423020},
	} {
		assert.Equal(t, tc.want, fxmath.Exp(q16, tc.in), "exp(%d)", tc.in)
	}
}

func TestLog2(t *testing.T) {
	for _, tc := range []struct{ in, want int64 }{
		{65536, 0}, {131072, 65536}, {32768, -65536}, {3 * 65536, 98304},
		{1, -1048576}, {0, -2147483648}, {-5, -2147483648},
	} {
		assert.Equal(t, tc.want, fxmath.Log2(q16, tc.in), "log2(%d)", tc.in)
	}

	s16 := fxmath.ScalarFormat(16, true)
	assert.Equal(t, int64(10), fxmath.Log2(s16, 1024))
	assert.Equal(t, int64(1), fxmath.Log2(s16, 3))
	assert.Equal(t, int64(-32768), fxmath.Log2(s16, 0))

	u8 := fxmath.ScalarFormat(8, false)
	assert.Equal(t, int64(0), fxmath.Log2(u8, 0), "unsigned minimum")
	assert.Equal(t, int64(7), fxmath.Log2(u8, 255))
}

func TestLog(t *testing.T) {
	for _, tc := range []struct{ in, want int64 }{
		{65536, 0}, {131072, 45426}, {3 * 65536, 68139}, {178145, 61740},
		{0, -2147483648}, {-1, -2147483648},
	} {
		assert.Equal(t, tc.want, fxmath.Log(q16, tc.in), "ln(%d)", tc.in)
	}
}
