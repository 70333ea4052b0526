// SPDX-License-Identifier: MIT
// Package intn: signed N-bit register.
//
// Invariant: the storage cell always equals width.SignExtend(raw, N), so an
// Int never holds an out-of-range bit pattern. All arithmetic computes on
// 64-bit intermediates and re-wraps.

package intn

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/width"
)

// Int is a signed two's-complement integer of width W (0..32 bits).
// The zero value is 0.
type Int[W width.Bits] struct {
	v int32
}

func (Int[W]) bits() uint { return width.Of[W]() }

// wrapInt truncates a 64-bit intermediate to W bits.
func wrapInt[W width.Bits](v int64) Int[W] {
	return Int[W]{v: int32(width.Wrap(v, width.Of[W](), true))}
}

// New returns v wrapped to W bits.
func New[W width.Bits](v int32) Int[W] {
	return Int[W]{v: width.SignExtend(v, width.Of[W]())}
}

// From returns any Go integer wrapped to W bits (only its low 32 bits take
// part, as in a hardware register).
func From[W width.Bits, T constraints.Integer](v T) Int[W] {
	return wrapInt[W](int64(v))
}

// FromFloat64 truncates f toward zero and wraps it to W bits.
// NaN maps to 0, +Inf to MaxInt and -Inf to MinInt.
func FromFloat64[W width.Bits](f float64) Int[W] {
	return Int[W]{v: width.SignedFromFloat(f, width.Of[W]())}
}

// FromFloat32 is FromFloat64 for float32 inputs.
func FromFloat32[W width.Bits](f float32) Int[W] {
	return FromFloat64[W](float64(f))
}

// MinInt returns the smallest value of an Int[W].
func MinInt[W width.Bits]() Int[W] { return Int[W]{v: width.SignedMin(width.Of[W]())} }

// MaxInt returns the largest value of an Int[W].
func MaxInt[W width.Bits]() Int[W] { return Int[W]{v: width.SignedMax(width.Of[W]())} }

// ZeroInt returns 0.
func ZeroInt[W width.Bits]() Int[W] { return Int[W]{} }

// OneInt returns 1 wrapped to W bits (-1 for a 1-bit register, 0 for W0).
func OneInt[W width.Bits]() Int[W] { return New[W](1) }

// Raw returns the sign-extended storage cell.
func (x Int[W]) Raw() int32 { return x.v }

// Int64 returns x as an int64.
func (x Int[W]) Int64() int64 { return int64(x.v) }

// Float64 returns x as a float64 (exact).
func (x Int[W]) Float64() float64 { return float64(x.v) }

// Float32 returns x as a float32 (rounded to nearest for |x| > 2^24).
func (x Int[W]) Float32() float32 { return float32(x.v) }

// Bits returns the register width N.
func (x Int[W]) Bits() uint { return x.bits() }

// ---------- arithmetic ----------

// Add returns x + y, wrapped.
func (x Int[W]) Add(y Int[W]) Int[W] { return wrapInt[W](int64(x.v) + int64(y.v)) }

// Sub returns x - y, wrapped.
func (x Int[W]) Sub(y Int[W]) Int[W] { return wrapInt[W](int64(x.v) - int64(y.v)) }

// Mul returns x · y, wrapped.
func (x Int[W]) Mul(y Int[W]) Int[W] { return wrapInt[W](int64(x.v) * int64(y.v)) }

// Div returns x / y truncated toward zero and wrapped (MinInt / -1 wraps
// back to MinInt).
func (x Int[W]) Div(y Int[W]) (Int[W], error) {
	if y.v == 0 {
		return Int[W]{}, fmt.Errorf("Div: %s / 0: %w", x, fixedpoint.ErrDivisionByZero)
	}

	return wrapInt[W](int64(x.v) / int64(y.v)), nil
}

// Mod returns the truncated remainder of x / y; its sign follows x.
func (x Int[W]) Mod(y Int[W]) (Int[W], error) {
	if y.v == 0 {
		return Int[W]{}, fmt.Errorf("Mod: %s %% 0: %w", x, fixedpoint.ErrDivisionByZero)
	}

	return wrapInt[W](int64(x.v) % int64(y.v)), nil
}

// Neg returns -x wrapped (-MinInt == MinInt).
func (x Int[W]) Neg() Int[W] { return wrapInt[W](-int64(x.v)) }

// Abs returns |x| wrapped (Abs(MinInt) == MinInt).
func (x Int[W]) Abs() Int[W] {
	if x.v < 0 {
		return x.Neg()
	}

	return x
}

// Inc returns x + 1, wrapped.
func (x Int[W]) Inc() Int[W] { return wrapInt[W](int64(x.v) + 1) }

// Dec returns x - 1, wrapped.
func (x Int[W]) Dec() Int[W] { return wrapInt[W](int64(x.v) - 1) }

// ---------- saturating ----------

// saturate stores an already-clamped value without re-wrapping.
func (x Int[W]) saturate(v int64) Int[W] {
	return Int[W]{v: int32(width.Saturate(v, x.bits(), true))}
}

// AddSat returns x + y clamped to [MinInt, MaxInt].
func (x Int[W]) AddSat(y Int[W]) Int[W] { return x.saturate(int64(x.v) + int64(y.v)) }

// SubSat returns x - y clamped to [MinInt, MaxInt].
func (x Int[W]) SubSat(y Int[W]) Int[W] { return x.saturate(int64(x.v) - int64(y.v)) }

// MulSat returns x * y clamped to [MinInt, MaxInt].
func (x Int[W]) MulSat(y Int[W]) Int[W] { return x.saturate(int64(x.v) * int64(y.v)) }

// Clamp returns x limited to [lo, hi].
func (x Int[W]) Clamp(lo, hi Int[W]) Int[W] {
	if x.v < lo.v {
		return lo
	}
	if x.v > hi.v {
		return hi
	}

	return x
}

// Clamp01 returns x limited to [0, min(1, MaxInt)].
func (x Int[W]) Clamp01() Int[W] {
	hi := MaxInt[W]().Min(OneInt[W]())
	if hi.v < 0 {
		hi = Int[W]{}
	}

	return x.Clamp(Int[W]{}, hi)
}

// ClampWithOffset clamps x to [lo+dlo, hi+dhi]. The offset bounds are first
// pulled back into the register's range and swapped if inverted.
func (x Int[W]) ClampWithOffset(lo, hi Int[W], dlo, dhi int32) Int[W] {
	return Int[W]{v: int32(width.ClampOffset(int64(x.v), int64(lo.v), int64(hi.v), int64(dlo), int64(dhi), x.bits(), true))}
}

// ---------- comparison ----------

// Cmp returns -1, 0 or +1.
func (x Int[W]) Cmp(y Int[W]) int {
	switch {
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	}

	return 0
}

// Equal reports whether x == y.
func (x Int[W]) Equal(y Int[W]) bool { return x.v == y.v }

// Less reports whether x < y.
func (x Int[W]) Less(y Int[W]) bool { return x.v < y.v }

// IsZero reports whether x is zero.
func (x Int[W]) IsZero() bool { return x.v == 0 }

// Min returns the smaller of x and y.
func (x Int[W]) Min(y Int[W]) Int[W] {
	if y.v < x.v {
		return y
	}

	return x
}

// Max returns the larger of x and y.
func (x Int[W]) Max(y Int[W]) Int[W] {
	if y.v > x.v {
		return y
	}

	return x
}

// Sign returns -1, 0 or +1.
func (x Int[W]) Sign() int { return x.Cmp(Int[W]{}) }

// ---------- strings ----------

// String returns the decimal value.
func (x Int[W]) String() string { return strconv.FormatInt(int64(x.v), 10) }

// Hex returns the N-bit pattern as "0x…".
func (x Int[W]) Hex() string { return width.FormatHex(int64(x.v), x.bits()) }

// Binary returns the N-bit pattern as "0b…" with exactly N digits.
func (x Int[W]) Binary() string { return width.FormatBinary(int64(x.v), x.bits()) }

// Parse reads a decimal, 0x-hex or 0b-binary literal (case-insensitive,
// optional sign). Out-of-range values wrap.
func Parse[W width.Bits](s string) (Int[W], error) {
	v, err := width.ParseRaw(s, width.Of[W](), true)
	if err != nil {
		return Int[W]{}, err
	}

	return Int[W]{v: int32(v)}, nil
}

// TryParse is Parse reporting failure as a flag. It never returns an error.
func TryParse[W width.Bits](s string) (Int[W], bool) {
	x, err := Parse[W](s)

	return x, err == nil
}
