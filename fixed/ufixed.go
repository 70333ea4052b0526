// SPDX-License-Identifier: MIT

package fixed

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/width"
)

// UFixed is an unsigned Q(I).(F) fixed-point number. The zero value is 0.
type UFixed[I, F width.Bits] struct {
	v uint32
}

func wrapUFixed[I, F width.Bits](v int64) UFixed[I, F] {
	n, _ := layout[I, F]()

	return UFixed[I, F]{v: uint32(width.Wrap(v, n, false))}
}

// UFromRaw truncates a raw pattern to I+F bits.
func UFromRaw[I, F width.Bits](raw uint32) UFixed[I, F] { return wrapUFixed[I, F](int64(raw)) }

// UFromFloat64 returns round(v·2^F) half away from zero, wrapped silently;
// negative values keep their two's-complement pattern.
// NaN maps to 0, +Inf to UMaxValue and -Inf to the sign-bit pattern.
func UFromFloat64[I, F width.Bits](v float64) UFixed[I, F] {
	n, f := layout[I, F]()

	return UFixed[I, F]{v: width.UnsignedFromFloat(math.Round(v*scaleOf(f)), n)}
}

// UFromFloat32 is UFromFloat64 for float32 inputs.
func UFromFloat32[I, F width.Bits](v float32) UFixed[I, F] { return UFromFloat64[I, F](float64(v)) }

// UFromInt returns v·2^F wrapped.
func UFromInt[I, F width.Bits, T constraints.Integer](v T) UFixed[I, F] {
	_, f := layout[I, F]()

	return wrapUFixed[I, F](int64(v) << f)
}

// UZero returns 0.
func UZero[I, F width.Bits]() UFixed[I, F] { return UFixed[I, F]{} }

// UOne returns 1.0 (raw 1<<F), wrapped if the format cannot hold it.
func UOne[I, F width.Bits]() UFixed[I, F] {
	_, f := layout[I, F]()

	return wrapUFixed[I, F](int64(1) << f)
}

// UEpsilon returns the smallest positive value, 2^-F.
func UEpsilon[I, F width.Bits]() UFixed[I, F] { return wrapUFixed[I, F](1) }

// UMinValue returns 0.
func UMinValue[I, F width.Bits]() UFixed[I, F] { return UFixed[I, F]{} }

// UMaxValue returns the largest value, raw 2^(I+F) - 1.
func UMaxValue[I, F width.Bits]() UFixed[I, F] {
	n, _ := layout[I, F]()

	return UFixed[I, F]{v: width.UnsignedMax(n)}
}

// Raw returns the storage cell.
func (x UFixed[I, F]) Raw() uint32 { return x.v }

// Bits returns the storage width I+F.
func (x UFixed[I, F]) Bits() uint {
	n, _ := layout[I, F]()

	return n
}

// IntBits returns I.
func (x UFixed[I, F]) IntBits() uint { return width.Of[I]() }

// FracBits returns F.
func (x UFixed[I, F]) FracBits() uint { return width.Of[F]() }

// Float64 returns x as a float64.
func (x UFixed[I, F]) Float64() float64 {
	_, f := layout[I, F]()

	return float64(x.v) / scaleOf(f)
}

// Float32 returns x as a float32.
func (x UFixed[I, F]) Float32() float32 { return float32(x.Float64()) }

// ---------- arithmetic ----------

// Add returns x + y, wrapped.
func (x UFixed[I, F]) Add(y UFixed[I, F]) UFixed[I, F] { return wrapUFixed[I, F](int64(x.v) + int64(y.v)) }

// Sub returns x - y, wrapped.
func (x UFixed[I, F]) Sub(y UFixed[I, F]) UFixed[I, F] { return wrapUFixed[I, F](int64(x.v) - int64(y.v)) }

// Mul returns (x·y) >> F wrapped.
func (x UFixed[I, F]) Mul(y UFixed[I, F]) UFixed[I, F] {
	_, f := layout[I, F]()

	return wrapUFixed[I, F](int64((uint64(x.v) * uint64(y.v)) >> f))
}

// Div returns (x << F) / y wrapped.
func (x UFixed[I, F]) Div(y UFixed[I, F]) (UFixed[I, F], error) {
	if y.v == 0 {
		return UFixed[I, F]{}, fmt.Errorf("Div: %s / 0: %w", x, fixedpoint.ErrDivisionByZero)
	}
	_, f := layout[I, F]()

	return wrapUFixed[I, F](int64((uint64(x.v) << f) / uint64(y.v))), nil
}

// Mod returns the remainder of x / y.
func (x UFixed[I, F]) Mod(y UFixed[I, F]) (UFixed[I, F], error) {
	if y.v == 0 {
		return UFixed[I, F]{}, fmt.Errorf("Mod: %s %% 0: %w", x, fixedpoint.ErrDivisionByZero)
	}

	return UFixed[I, F]{v: x.v % y.v}, nil
}

// Neg returns the two's-complement negation 2^(I+F) - raw.
func (x UFixed[I, F]) Neg() UFixed[I, F] { return wrapUFixed[I, F](-int64(x.v)) }

// Abs returns x; unsigned values are already non-negative.
func (x UFixed[I, F]) Abs() UFixed[I, F] { return x }

// ---------- rounding ----------

// Floor clears the fractional bits.
func (x UFixed[I, F]) Floor() UFixed[I, F] {
	_, f := layout[I, F]()

	return UFixed[I, F]{v: uint32(floorRaw(int64(x.v), f))}
}

// Ceil rounds up; past UMaxValue's integer part it wraps to 0.
func (x UFixed[I, F]) Ceil() UFixed[I, F] {
	_, f := layout[I, F]()

	return wrapUFixed[I, F](ceilRaw(int64(x.v), f))
}

// Round rounds half up (away from zero).
func (x UFixed[I, F]) Round() UFixed[I, F] {
	_, f := layout[I, F]()

	return wrapUFixed[I, F](roundRaw(int64(x.v), f))
}

// Trunc equals Floor for unsigned values.
func (x UFixed[I, F]) Trunc() UFixed[I, F] { return x.Floor() }

// Frac returns the fractional part.
func (x UFixed[I, F]) Frac() UFixed[I, F] {
	_, f := layout[I, F]()

	return UFixed[I, F]{v: uint32(int64(x.v) & fracMask(f))}
}

// UConvertFrac changes the number of fractional bits, keeping I.
func UConvertFrac[F2, I, F width.Bits](x UFixed[I, F]) UFixed[I, F2] {
	_, f := layout[I, F]()
	_, f2 := layout[I, F2]()

	return wrapUFixed[I, F2](rescale(int64(x.v), f, f2))
}

// UConvert changes both the integer and fractional bits.
func UConvert[I2, F2, I, F width.Bits](x UFixed[I, F]) UFixed[I2, F2] {
	_, f := layout[I, F]()
	_, f2 := layout[I2, F2]()

	return wrapUFixed[I2, F2](rescale(int64(x.v), f, f2))
}

// ---------- saturating ----------

func (x UFixed[I, F]) saturate(v int64) UFixed[I, F] {
	n, _ := layout[I, F]()

	return UFixed[I, F]{v: uint32(width.Saturate(v, n, false))}
}

// AddSat returns x + y clamped to [UMinValue, UMaxValue].
func (x UFixed[I, F]) AddSat(y UFixed[I, F]) UFixed[I, F] { return x.saturate(int64(x.v) + int64(y.v)) }

// SubSat returns x - y clamped to [UMinValue, UMaxValue].
func (x UFixed[I, F]) SubSat(y UFixed[I, F]) UFixed[I, F] { return x.saturate(int64(x.v) - int64(y.v)) }

// MulSat returns (x·y) >> F clamped to UMaxValue.
func (x UFixed[I, F]) MulSat(y UFixed[I, F]) UFixed[I, F] {
	_, f := layout[I, F]()

	return x.saturate(int64((uint64(x.v) * uint64(y.v)) >> f))
}

// Clamp returns x limited to [lo, hi].
func (x UFixed[I, F]) Clamp(lo, hi UFixed[I, F]) UFixed[I, F] {
	if x.v < lo.v {
		return lo
	}
	if x.v > hi.v {
		return hi
	}

	return x
}

// Clamp01 returns x limited to [0, min(1, UMaxValue)].
func (x UFixed[I, F]) Clamp01() UFixed[I, F] {
	n, f := layout[I, F]()
	hi := min(uint64(1)<<f, uint64(width.UnsignedMax(n)))
	if uint64(x.v) > hi {
		return UFixed[I, F]{v: uint32(hi)}
	}

	return x
}

// ClampWithOffset clamps x to [lo+dlo, hi+dhi]. The deltas are signed raw
// offsets, as for intn.Uint; bounds are pulled back into [0, UMaxValue] and
// swapped if inverted, in that order.
func (x UFixed[I, F]) ClampWithOffset(lo, hi UFixed[I, F], dlo, dhi int32) UFixed[I, F] {
	n, _ := layout[I, F]()

	return UFixed[I, F]{v: uint32(width.ClampOffset(int64(x.v), int64(lo.v), int64(hi.v), int64(dlo), int64(dhi), n, false))}
}

// ---------- comparison ----------

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x UFixed[I, F]) Cmp(y UFixed[I, F]) int {
	switch {
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	}

	return 0
}

// Equal reports whether x == y.
func (x UFixed[I, F]) Equal(y UFixed[I, F]) bool { return x.v == y.v }

// Less reports whether x < y.
func (x UFixed[I, F]) Less(y UFixed[I, F]) bool { return x.v < y.v }

// IsZero reports whether x is zero.
func (x UFixed[I, F]) IsZero() bool { return x.v == 0 }

// Sign returns -1, 0 or +1 by the sign of x.
func (x UFixed[I, F]) Sign() int {
	if x.v == 0 {
		return 0
	}

	return 1
}

// Min returns the smaller of x and y.
func (x UFixed[I, F]) Min(y UFixed[I, F]) UFixed[I, F] {
	if y.v < x.v {
		return y
	}

	return x
}

// Max returns the larger of x and y.
func (x UFixed[I, F]) Max(y UFixed[I, F]) UFixed[I, F] {
	if y.v > x.v {
		return y
	}

	return x
}
