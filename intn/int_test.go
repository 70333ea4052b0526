// SPDX-License-Identifier: MIT

package intn_test

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/intn"
	"github.com/katalvlaran/fixedpoint/width"
)

type i8 = intn.Int[width.W8]

func n8(v int32) i8 { return intn.New[width.W8](v) }

// TestInt_ConstructionWraps covers the canonical wraparound scenarios.
func TestInt_ConstructionWraps(t *testing.T) {
	assert.Equal(t, int32(-56), intn.From[width.W8](200).Raw())
	assert.Equal(t, int32(-56), intn.From[width.W8](uint64(200)).Raw())
	assert.Equal(t, int32(0), intn.From[width.W0](123).Raw())
	assert.Equal(t, int32(-1), intn.From[width.W1](1).Raw())
	assert.Equal(t, int32(math.MinInt32), intn.From[width.W32](int64(1)<<31).Raw())
	assert.Equal(t, int32(-1), intn.From[width.W12](0xFFF).Raw())

	assert.Equal(t, int32(-128), intn.MinInt[width.W8]().Raw())
	assert.Equal(t, int32(127), intn.MaxInt[width.W8]().Raw())
	assert.Equal(t, int32(1), intn.OneInt[width.W8]().Raw())
	assert.True(t, intn.ZeroInt[width.W8]().IsZero())
	assert.Equal(t, uint(8), n8(0).Bits())
}

func checkIdempotent[W width.Bits](t *testing.T, rng *rand.Rand) {
	t.Helper()
	n := width.Of[W]()
	for k := 0; k < 200; k++ {
		v := int32(rng.Uint32())
		once := intn.New[W](v)
		require.Equal(t, once, intn.New[W](once.Raw()), "n=%d v=%d", n, v)
		require.Equal(t, once, intn.New[W](int32(uint32(v)&width.Mask(n))), "n=%d v=%d", n, v)
	}
}

// TestInt_WrapIdempotent re-wraps random patterns at several widths.
func TestInt_WrapIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	checkIdempotent[width.W1](t, rng)
	checkIdempotent[width.W7](t, rng)
	checkIdempotent[width.W8](t, rng)
	checkIdempotent[width.W13](t, rng)
	checkIdempotent[width.W24](t, rng)
	checkIdempotent[width.W31](t, rng)
	checkIdempotent[width.W32](t, rng)
}

func TestInt_FromFloat(t *testing.T) {
	assert.Equal(t, int32(-3), intn.FromFloat64[width.W8](-3.9).Raw())
	assert.Equal(t, int32(3), intn.FromFloat32[width.W8](3.9).Raw())
	assert.Equal(t, int32(-56), intn.FromFloat64[width.W8](200.7).Raw())
	assert.Equal(t, int32(0), intn.FromFloat64[width.W8](math.NaN()).Raw())
	assert.Equal(t, int32(127), intn.FromFloat64[width.W8](math.Inf(1)).Raw())
	assert.Equal(t, int32(-128), intn.FromFloat64[width.W8](math.Inf(-1)).Raw())
	assert.Equal(t, -56.0, n8(-56).Float64())
	assert.Equal(t, float32(-56), n8(-56).Float32())
	assert.Equal(t, int64(-56), n8(-56).Int64())
}

func TestInt_Arithmetic(t *testing.T) {
	assert.Equal(t, n8(-128), n8(127).Add(n8(1)))
	assert.Equal(t, n8(127), n8(-128).Sub(n8(1)))
	assert.Equal(t, n8(-56), n8(20).Mul(n8(10)))
	assert.Equal(t, n8(-128), n8(-128).Neg())
	assert.Equal(t, n8(-128), n8(-128).Abs())
	assert.Equal(t, n8(5), n8(-5).Abs())
	assert.Equal(t, n8(-128), n8(127).Inc())
	assert.Equal(t, n8(127), n8(-128).Dec())

	q, err := n8(-7).Div(n8(2))
	require.NoError(t, err)
	assert.Equal(t, n8(-3), q)

	r, err := n8(-7).Mod(n8(2))
	require.NoError(t, err)
	assert.Equal(t, n8(-1), r)

	q, err = n8(-128).Div(n8(-1))
	require.NoError(t, err)
	assert.Equal(t, n8(-128), q, "MinInt / -1 wraps")

	_, err = n8(1).Div(n8(0))
	require.ErrorIs(t, err, fixedpoint.ErrDivisionByZero)
	_, err = n8(1).Mod(n8(0))
	require.ErrorIs(t, err, fixedpoint.ErrDivisionByZero)

	_, err = intn.From[width.W0](5).Div(intn.From[width.W0](5))
	require.ErrorIs(t, err, fixedpoint.ErrDivisionByZero, "a 0-bit register is always zero")
}

func checkSaturation[W width.Bits](t *testing.T) {
	t.Helper()
	lo, hi, one := intn.MinInt[W](), intn.MaxInt[W](), intn.New[W](1)
	assert.Equal(t, hi, hi.AddSat(one.Abs()), "n=%d", width.Of[W]())
	assert.Equal(t, lo, lo.SubSat(one.Abs()), "n=%d", width.Of[W]())
}

// TestInt_Saturating pins AddSat(Max, 1) == Max and SubSat(Min, 1) == Min.
func TestInt_Saturating(t *testing.T) {
	checkSaturation[width.W2](t)
	checkSaturation[width.W8](t)
	checkSaturation[width.W16](t)
	checkSaturation[width.W32](t)

	assert.Equal(t, n8(127), n8(100).AddSat(n8(100)))
	assert.Equal(t, n8(-128), n8(-100).SubSat(n8(100)))
	assert.Equal(t, n8(127), n8(-128).MulSat(n8(-1)))
	assert.Equal(t, n8(-128), n8(64).MulSat(n8(-3)))
	assert.Equal(t, n8(-60), n8(20).MulSat(n8(-3)))

	max32 := intn.MaxInt[width.W32]()
	assert.Equal(t, max32, max32.MulSat(intn.New[width.W32](2)))
}

func TestInt_Clamp(t *testing.T) {
	assert.Equal(t, n8(10), n8(50).Clamp(n8(0), n8(10)))
	assert.Equal(t, n8(0), n8(-50).Clamp(n8(0), n8(10)))
	assert.Equal(t, n8(1), n8(5).Clamp01())
	assert.Equal(t, n8(0), n8(-5).Clamp01())
	assert.Equal(t, int32(0), intn.New[width.W1](-1).Clamp01().Raw(), "a 1-bit register cannot hold 1")

	assert.Equal(t, n8(15), n8(20).ClampWithOffset(n8(0), n8(10), 0, 5))
	assert.Equal(t, n8(127), n8(127).ClampWithOffset(n8(0), n8(100), 0, 100))
	assert.Equal(t, n8(30), n8(50).ClampWithOffset(n8(10), n8(0), 20, -5))
}

func TestInt_Compare(t *testing.T) {
	assert.Equal(t, -1, n8(-1).Cmp(n8(0)))
	assert.Equal(t, 1, n8(3).Cmp(n8(2)))
	assert.Equal(t, 0, n8(3).Cmp(n8(3)))
	assert.True(t, n8(-1).Less(n8(0)))
	assert.True(t, n8(4).Equal(intn.From[width.W8](260)))
	assert.Equal(t, n8(-1), n8(-1).Min(n8(3)))
	assert.Equal(t, n8(3), n8(-1).Max(n8(3)))
	assert.Equal(t, -1, n8(-9).Sign())
	assert.Equal(t, 0, n8(0).Sign())
	assert.Equal(t, 1, n8(9).Sign())
}

func TestInt_Bitwise(t *testing.T) {
	assert.Equal(t, n8(0x0C), n8(0x0E).And(n8(0x1C)))
	assert.Equal(t, n8(0x1E), n8(0x0E).Or(n8(0x1C)))
	assert.Equal(t, n8(0x12), n8(0x0E).Xor(n8(0x1C)))
	assert.Equal(t, n8(0x02), n8(0x0E).AndNot(n8(0x1C)))
	assert.Equal(t, n8(-1), n8(0).Not())
	assert.Equal(t, int32(-7), intn.New[width.W4](6).Not().Raw())
	assert.Equal(t, int32(0), intn.New[width.W0](0).Not().Raw())
}

func TestInt_Shifts(t *testing.T) {
	v, err := n8(0x41).Shl(1)
	require.NoError(t, err)
	assert.Equal(t, n8(-126), v)

	v, err = n8(-7).Shr(1)
	require.NoError(t, err)
	assert.Equal(t, n8(-4), v, "arithmetic shift floors")

	v, err = n8(-7).DivPow2(1)
	require.NoError(t, err)
	assert.Equal(t, n8(-3), v, "DivPow2 truncates")

	v, err = n8(100).MulPow2(1)
	require.NoError(t, err)
	assert.Equal(t, n8(-56), v)

	v, err = n8(-1).ModPow2(4)
	require.NoError(t, err)
	assert.Equal(t, n8(15), v)

	v, err = n8(-1).ModPow2(8)
	require.NoError(t, err)
	assert.Equal(t, n8(-1), v, "s == N keeps the value")

	v, err = n8(-1).ModPow2(0)
	require.NoError(t, err)
	assert.Equal(t, n8(0), v)

	for _, s := range []int{-1, 8, 32} {
		_, err = n8(1).Shl(s)
		require.ErrorIs(t, err, fixedpoint.ErrRange, "Shl(%d)", s)
		_, err = n8(1).Shr(s)
		require.ErrorIs(t, err, fixedpoint.ErrRange)
		_, err = n8(1).MulPow2(s)
		require.ErrorIs(t, err, fixedpoint.ErrRange)
		_, err = n8(1).DivPow2(s)
		require.ErrorIs(t, err, fixedpoint.ErrRange)
	}
	_, err = n8(1).ModPow2(9)
	require.ErrorIs(t, err, fixedpoint.ErrRange)
}

func TestInt_Rotate(t *testing.T) {
	assert.Equal(t, n8(3), n8(-127).Rol(1))
	assert.Equal(t, n8(-64), n8(-127).Ror(1))
	assert.Equal(t, n8(-127).Ror(1), n8(-127).Rol(-1))
	assert.Equal(t, n8(-127).Rol(1), n8(-127).Rol(9))
	assert.Equal(t, n8(-127), n8(-127).Rol(8))
	assert.Equal(t, int32(-7), intn.New[width.W4](6).Rol(2).Raw())
	assert.Equal(t, int32(0), intn.New[width.W0](0).Rol(3).Raw())
}

func TestInt_BitScan(t *testing.T) {
	assert.Equal(t, 8, n8(-1).PopCount(), "counts N bits, not 32")
	assert.Equal(t, 1, n8(7).Parity())
	assert.Equal(t, 0, n8(3).Parity())
	assert.Equal(t, 7, n8(1).LeadingZeros())
	assert.Equal(t, 8, n8(0).LeadingZeros())
	assert.Equal(t, 0, n8(-1).LeadingZeros())
	assert.Equal(t, 8, n8(0).TrailingZeros())
	assert.Equal(t, 2, n8(12).TrailingZeros())
	assert.Equal(t, -1, n8(0).Bsr())
	assert.Equal(t, 7, n8(-128).Bsr())
	assert.Equal(t, -1, n8(0).Bsf())
	assert.Equal(t, 2, n8(12).Bsf())
}

func TestInt_BitAccess(t *testing.T) {
	b, err := n8(-128).Bit(7)
	require.NoError(t, err)
	assert.True(t, b)

	v, err := n8(0).SetBit(7)
	require.NoError(t, err)
	assert.Equal(t, n8(-128), v)

	v, err = n8(-1).ClearBit(7)
	require.NoError(t, err)
	assert.Equal(t, n8(127), v)

	v, err = n8(0).ToggleBit(0)
	require.NoError(t, err)
	assert.Equal(t, n8(1), v)

	_, err = n8(0).Bit(8)
	require.ErrorIs(t, err, fixedpoint.ErrRange)
	_, err = n8(0).SetBit(-1)
	require.ErrorIs(t, err, fixedpoint.ErrRange)
	_, err = n8(0).ClearBit(8)
	require.ErrorIs(t, err, fixedpoint.ErrRange)
	_, err = n8(0).ToggleBit(8)
	require.ErrorIs(t, err, fixedpoint.ErrRange)
}

func TestInt_Bytes(t *testing.T) {
	x := intn.New[width.W12](-1)
	assert.Equal(t, 2, x.ByteCount())
	assert.Equal(t, []byte{0xFF, 0x0F}, x.ToBytes())

	y, err := intn.FromBytes[width.W12]([]byte{0xFF, 0x0F, 0x99})
	require.NoError(t, err, "extra bytes are ignored")
	assert.Equal(t, x, y)

	_, err = intn.FromBytes[width.W12]([]byte{0xFF})
	require.ErrorIs(t, err, fixedpoint.ErrFormat)

	_, err = x.GetByte(2)
	require.ErrorIs(t, err, fixedpoint.ErrRange)

	z, err := intn.New[width.W12](0).SetByte(1, 0x07)
	require.NoError(t, err)
	assert.Equal(t, int32(0x700), z.Raw())

	z, err = intn.New[width.W12](0).SetByte(1, 0xFF)
	require.NoError(t, err)
	assert.Equal(t, int32(-256), z.Raw(), "bits above N are dropped")

	w, old, err := intn.New[width.W16](0x1234).ReplaceByte(0, 0xAB)
	require.NoError(t, err)
	assert.Equal(t, int32(0x12AB), w.Raw())
	assert.Equal(t, byte(0x34), old)

	assert.Empty(t, intn.New[width.W0](0).ToBytes())
}

func TestInt_BytesRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for k := 0; k < 500; k++ {
		x := intn.New[width.W21](int32(rng.Uint32()))
		y, err := intn.FromBytes[width.W21](x.ToBytes())
		require.NoError(t, err)
		require.Equal(t, x, y)
	}
}

func TestInt_Strings(t *testing.T) {
	assert.Equal(t, "-1", n8(-1).String())
	assert.Equal(t, "0xff", n8(-1).Hex())
	assert.Equal(t, "0b11111111", n8(-1).Binary())
	assert.Equal(t, "0xfff", intn.New[width.W12](-1).Hex())
	assert.Equal(t, "0x0", intn.New[width.W0](0).Hex())
	assert.Equal(t, "0b0", intn.New[width.W0](0).Binary())

	for in, want := range map[string]int32{
		"0xFF": -1, "0Xff": -1, "300": 44, "-129": 127, "0b1000": 8, "+5": 5, "-0x1": -1,
	} {
		v, err := intn.Parse[width.W8](in)
		require.NoError(t, err, in)
		assert.Equal(t, want, v.Raw(), in)
	}

	for _, in := range []string{"", "-", "0x", "0b102", "1_000", " 1", "1.5", "0xg"} {
		_, err := intn.Parse[width.W8](in)
		require.ErrorIs(t, err, fixedpoint.ErrFormat, "%q", in)
		_, ok := intn.TryParse[width.W8](in)
		assert.False(t, ok, "%q", in)
	}

	v, ok := intn.TryParse[width.W8]("0b11")
	assert.True(t, ok)
	assert.Equal(t, n8(3), v)
}

func TestInt_JSON(t *testing.T) {
	data, err := json.Marshal(n8(-56))
	require.NoError(t, err)
	assert.JSONEq(t, `"-56"`, string(data))

	data, err = n8(-56).ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `"-56"`, string(data))

	v, err := intn.FromJSON[width.W8]([]byte(`"0x80"`))
	require.NoError(t, err)
	assert.Equal(t, n8(-128), v)

	v, err = intn.FromJSON[width.W8]([]byte(`12`))
	require.NoError(t, err)
	assert.Equal(t, n8(12), v)

	for _, bad := range []string{`true`, `"1.5"`, `{`, `null`} {
		_, err = intn.FromJSON[width.W8]([]byte(bad))
		require.ErrorIs(t, err, fixedpoint.ErrFormat, bad)
	}

	type doc struct {
		A i8                  `json:"a"`
		B intn.Int[width.W20] `json:"b"`
	}
	in := doc{A: n8(-3), B: intn.New[width.W20](-500000)}
	data, err = json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"-3","b":"-500000"}`, string(data))

	var out doc
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestInt_Conversions(t *testing.T) {
	assert.Equal(t, int32(-1), intn.Resize[width.W16](n8(-1)).Raw())
	assert.Equal(t, int32(7), intn.Resize[width.W4](n8(0x17)).Raw())
	assert.Equal(t, int32(-1), intn.Resize[width.W4](n8(0x1F)).Raw())
	assert.Equal(t, uint32(255), n8(-1).AsUint().Raw())
	assert.Equal(t, n8(-56), intn.NewUint[width.W8](200).AsInt())
}
