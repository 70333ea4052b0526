// SPDX-License-Identifier: MIT
// Package intn: unsigned N-bit register.
//
// Invariant: the storage cell always lies in [0, 2^N-1].

package intn

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/width"
)

// Uint is an unsigned integer of width W (0..32 bits). The zero value is 0.
type Uint[W width.Bits] struct {
	v uint32
}

func (Uint[W]) bits() uint { return width.Of[W]() }

func wrapUint[W width.Bits](v int64) Uint[W] {
	return Uint[W]{v: uint32(width.Wrap(v, width.Of[W](), false))}
}

// NewUint returns v truncated to W bits.
func NewUint[W width.Bits](v uint32) Uint[W] {
	return Uint[W]{v: width.WrapUnsigned(v, width.Of[W]())}
}

// UintFrom returns any Go integer truncated to W bits; negative values keep
// their two's-complement pattern.
func UintFrom[W width.Bits, T constraints.Integer](v T) Uint[W] {
	return wrapUint[W](int64(v))
}

// UintFromFloat64 truncates f toward zero and wraps it to W bits.
// NaN maps to 0, +Inf to MaxUint and -Inf to the pattern of the signed
// minimum (the sign bit alone).
func UintFromFloat64[W width.Bits](f float64) Uint[W] {
	return Uint[W]{v: width.UnsignedFromFloat(f, width.Of[W]())}
}

// UintFromFloat32 is UintFromFloat64 for float32 inputs.
func UintFromFloat32[W width.Bits](f float32) Uint[W] {
	return UintFromFloat64[W](float64(f))
}

// MinUint returns 0.
func MinUint[W width.Bits]() Uint[W] { return Uint[W]{} }

// MaxUint returns 2^N - 1.
func MaxUint[W width.Bits]() Uint[W] { return Uint[W]{v: width.UnsignedMax(width.Of[W]())} }

// ZeroUint returns 0.
func ZeroUint[W width.Bits]() Uint[W] { return Uint[W]{} }

// OneUint returns 1 (0 for W0).
func OneUint[W width.Bits]() Uint[W] { return NewUint[W](1) }

// Raw returns the storage cell.
func (x Uint[W]) Raw() uint32 { return x.v }

// Int64 returns x as an int64.
func (x Uint[W]) Int64() int64 { return int64(x.v) }

// Float64 returns x as a float64.
func (x Uint[W]) Float64() float64 { return float64(x.v) }

// Float32 returns x as a float32.
func (x Uint[W]) Float32() float32 { return float32(x.v) }

// Bits returns the register width N.
func (x Uint[W]) Bits() uint { return x.bits() }

// ---------- arithmetic ----------

// Add returns x + y, wrapped.
func (x Uint[W]) Add(y Uint[W]) Uint[W] { return wrapUint[W](int64(x.v) + int64(y.v)) }

// Sub returns x - y, wrapped.
func (x Uint[W]) Sub(y Uint[W]) Uint[W] { return wrapUint[W](int64(x.v) - int64(y.v)) }

// Mul returns x · y, wrapped.
func (x Uint[W]) Mul(y Uint[W]) Uint[W] { return Uint[W]{v: width.WrapUnsigned(x.v*y.v, x.bits())} }

// Div returns x / y.
func (x Uint[W]) Div(y Uint[W]) (Uint[W], error) {
	if y.v == 0 {
		return Uint[W]{}, fmt.Errorf("Div: %s / 0: %w", x, fixedpoint.ErrDivisionByZero)
	}

	return Uint[W]{v: x.v / y.v}, nil
}

// Mod returns x % y.
func (x Uint[W]) Mod(y Uint[W]) (Uint[W], error) {
	if y.v == 0 {
		return Uint[W]{}, fmt.Errorf("Mod: %s %% 0: %w", x, fixedpoint.ErrDivisionByZero)
	}

	return Uint[W]{v: x.v % y.v}, nil
}

// Neg returns the two's-complement negation 2^N - x.
func (x Uint[W]) Neg() Uint[W] { return wrapUint[W](-int64(x.v)) }

// Abs returns x.
func (x Uint[W]) Abs() Uint[W] { return x }

// Inc returns x + 1, wrapped.
func (x Uint[W]) Inc() Uint[W] { return wrapUint[W](int64(x.v) + 1) }

// Dec returns x - 1, wrapped.
func (x Uint[W]) Dec() Uint[W] { return wrapUint[W](int64(x.v) - 1) }

// ---------- saturating ----------

func (x Uint[W]) saturate(v int64) Uint[W] {
	return Uint[W]{v: uint32(width.Saturate(v, x.bits(), false))}
}

// AddSat returns x + y clamped to MaxUint.
func (x Uint[W]) AddSat(y Uint[W]) Uint[W] { return x.saturate(int64(x.v) + int64(y.v)) }

// SubSat returns x - y clamped to 0.
func (x Uint[W]) SubSat(y Uint[W]) Uint[W] { return x.saturate(int64(x.v) - int64(y.v)) }

// MulSat returns x * y clamped to MaxUint. The 64-bit product of two 32-bit
// cells cannot overflow uint64.
func (x Uint[W]) MulSat(y Uint[W]) Uint[W] {
	p := uint64(x.v) * uint64(y.v)
	if hi := uint64(width.UnsignedMax(x.bits())); p > hi {
		return Uint[W]{v: uint32(hi)}
	}

	return Uint[W]{v: uint32(p)}
}

// Clamp returns x limited to [lo, hi].
func (x Uint[W]) Clamp(lo, hi Uint[W]) Uint[W] {
	if x.v < lo.v {
		return lo
	}
	if x.v > hi.v {
		return hi
	}

	return x
}

// Clamp01 returns x limited to [0, min(1, MaxUint)].
func (x Uint[W]) Clamp01() Uint[W] { return x.Min(OneUint[W]()) }

// ClampWithOffset clamps x to [lo+dlo, hi+dhi]. The offset bounds are first
// pulled back into [0, MaxUint] and swapped if inverted.
func (x Uint[W]) ClampWithOffset(lo, hi Uint[W], dlo, dhi int32) Uint[W] {
	return Uint[W]{v: uint32(width.ClampOffset(int64(x.v), int64(lo.v), int64(hi.v), int64(dlo), int64(dhi), x.bits(), false))}
}

// ---------- comparison ----------

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Uint[W]) Cmp(y Uint[W]) int {
	switch {
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	}

	return 0
}

// Equal reports whether x == y.
func (x Uint[W]) Equal(y Uint[W]) bool { return x.v == y.v }

// Less reports whether x < y.
func (x Uint[W]) Less(y Uint[W]) bool { return x.v < y.v }

// IsZero reports whether x is zero.
func (x Uint[W]) IsZero() bool { return x.v == 0 }

// Min returns the smaller of x and y.
func (x Uint[W]) Min(y Uint[W]) Uint[W] {
	if y.v < x.v {
		return y
	}

	return x
}

// Max returns the larger of x and y.
func (x Uint[W]) Max(y Uint[W]) Uint[W] {
	if y.v > x.v {
		return y
	}

	return x
}

// Sign returns 0 for zero and +1 otherwise.
func (x Uint[W]) Sign() int {
	if x.v == 0 {
		return 0
	}

	return 1
}

// ---------- strings ----------

// String returns the decimal value.
func (x Uint[W]) String() string { return strconv.FormatUint(uint64(x.v), 10) }

// Hex returns the raw pattern in hexadecimal, zero-padded to N bits.
func (x Uint[W]) Hex() string { return width.FormatHex(int64(x.v), x.bits()) }

// Binary returns the raw pattern in binary, zero-padded to N bits.
func (x Uint[W]) Binary() string { return width.FormatBinary(int64(x.v), x.bits()) }

// ParseUint reads a decimal, 0x-hex or 0b-binary literal. Out-of-range and
// negative values wrap modulo 2^N.
func ParseUint[W width.Bits](s string) (Uint[W], error) {
	v, err := width.ParseRaw(s, width.Of[W](), false)
	if err != nil {
		return Uint[W]{}, err
	}

	return Uint[W]{v: uint32(v)}, nil
}

// TryParseUint is ParseUint reporting failure as a flag.
func TryParseUint[W width.Bits](s string) (Uint[W], bool) {
	x, err := ParseUint[W](s)

	return x, err == nil
}
