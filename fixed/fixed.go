// SPDX-License-Identifier: MIT

package fixed

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/width"
)

// Fixed is a signed Q(I).(F) fixed-point number. The zero value is 0.
type Fixed[I, F width.Bits] struct {
	v int32
}

func wrapFixed[I, F width.Bits](v int64) Fixed[I, F] {
	n, _ := layout[I, F]()

	return Fixed[I, F]{v: int32(width.Wrap(v, n, true))}
}

// FromRaw wraps a raw pattern into the (I+F)-bit register.
func FromRaw[I, F width.Bits](raw int32) Fixed[I, F] { return wrapFixed[I, F](int64(raw)) }

// FromFloat64 returns round(v·2^F) half away from zero, wrapped silently.
// NaN maps to 0, +Inf to MaxValue and -Inf to MinValue.
func FromFloat64[I, F width.Bits](v float64) Fixed[I, F] {
	n, f := layout[I, F]()

	return Fixed[I, F]{v: width.SignedFromFloat(math.Round(v*scaleOf(f)), n)}
}

// FromFloat32 is FromFloat64 for float32 inputs.
func FromFloat32[I, F width.Bits](v float32) Fixed[I, F] { return FromFloat64[I, F](float64(v)) }

// FromInt returns v·2^F wrapped.
func FromInt[I, F width.Bits, T constraints.Integer](v T) Fixed[I, F] {
	_, f := layout[I, F]()

	return wrapFixed[I, F](int64(v) << f)
}

// Zero returns 0.
func Zero[I, F width.Bits]() Fixed[I, F] { return Fixed[I, F]{} }

// One returns 1.0 (raw 1<<F), wrapped if the format cannot hold it.
func One[I, F width.Bits]() Fixed[I, F] {
	_, f := layout[I, F]()

	return wrapFixed[I, F](int64(1) << f)
}

// Epsilon returns the smallest positive value (raw 1).
func Epsilon[I, F width.Bits]() Fixed[I, F] { return wrapFixed[I, F](1) }

// MinValue returns the most negative representable value.
func MinValue[I, F width.Bits]() Fixed[I, F] {
	n, _ := layout[I, F]()

	return Fixed[I, F]{v: width.SignedMin(n)}
}

// MaxValue returns the largest representable value.
func MaxValue[I, F width.Bits]() Fixed[I, F] {
	n, _ := layout[I, F]()

	return Fixed[I, F]{v: width.SignedMax(n)}
}

// Raw returns the sign-extended storage cell.
func (x Fixed[I, F]) Raw() int32 { return x.v }

// Bits returns the storage width I+F.
func (x Fixed[I, F]) Bits() uint {
	n, _ := layout[I, F]()

	return n
}

// IntBits returns I.
func (x Fixed[I, F]) IntBits() uint { return width.Of[I]() }

// FracBits returns F.
func (x Fixed[I, F]) FracBits() uint { return width.Of[F]() }

// Float64 returns raw/2^F (exact).
func (x Fixed[I, F]) Float64() float64 {
	_, f := layout[I, F]()

	return float64(x.v) / scaleOf(f)
}

// Float32 returns the value rounded to float32.
func (x Fixed[I, F]) Float32() float32 { return float32(x.Float64()) }

// ---------- arithmetic ----------

// Add returns x + y, wrapped.
func (x Fixed[I, F]) Add(y Fixed[I, F]) Fixed[I, F] { return wrapFixed[I, F](int64(x.v) + int64(y.v)) }

// Sub returns x - y, wrapped.
func (x Fixed[I, F]) Sub(y Fixed[I, F]) Fixed[I, F] { return wrapFixed[I, F](int64(x.v) - int64(y.v)) }

// Mul returns (x·y) >> F wrapped; the shift truncates toward -∞.
func (x Fixed[I, F]) Mul(y Fixed[I, F]) Fixed[I, F] {
	_, f := layout[I, F]()

	return wrapFixed[I, F]((int64(x.v) * int64(y.v)) >> f)
}

// Div returns (x << F) / y truncated toward zero and wrapped.
func (x Fixed[I, F]) Div(y Fixed[I, F]) (Fixed[I, F], error) {
	if y.v == 0 {
		return Fixed[I, F]{}, fmt.Errorf("Div: %s / 0: %w", x, fixedpoint.ErrDivisionByZero)
	}
	_, f := layout[I, F]()

	return wrapFixed[I, F]((int64(x.v) << f) / int64(y.v)), nil
}

// Mod returns the remainder of x / y with the sign of x. Both operands
// share the same scale, so the raw remainder is already in Q(F).
func (x Fixed[I, F]) Mod(y Fixed[I, F]) (Fixed[I, F], error) {
	if y.v == 0 {
		return Fixed[I, F]{}, fmt.Errorf("Mod: %s %% 0: %w", x, fixedpoint.ErrDivisionByZero)
	}

	return wrapFixed[I, F](int64(x.v) % int64(y.v)), nil
}

// Neg returns -x wrapped (-MinValue == MinValue).
func (x Fixed[I, F]) Neg() Fixed[I, F] { return wrapFixed[I, F](-int64(x.v)) }

// Abs returns |x| wrapped (Abs(MinValue) == MinValue).
func (x Fixed[I, F]) Abs() Fixed[I, F] {
	if x.v < 0 {
		return x.Neg()
	}

	return x
}

// ---------- rounding ----------

// Floor rounds toward -∞.
func (x Fixed[I, F]) Floor() Fixed[I, F] {
	_, f := layout[I, F]()

	return wrapFixed[I, F](floorRaw(int64(x.v), f))
}

// Ceil rounds non-negative values up. Negative values are floored, not
// ceiled: -1.5 becomes -2.
func (x Fixed[I, F]) Ceil() Fixed[I, F] {
	_, f := layout[I, F]()

	return wrapFixed[I, F](ceilRaw(int64(x.v), f))
}

// Round biases x by half toward its sign and floors. Non-negative values
// round half up; negative values become floor(x - 0.5), so -1.5 and -1.25
// both become -2 and -1.75 becomes -3.
func (x Fixed[I, F]) Round() Fixed[I, F] {
	_, f := layout[I, F]()

	return wrapFixed[I, F](roundRaw(int64(x.v), f))
}

// Trunc rounds toward zero.
func (x Fixed[I, F]) Trunc() Fixed[I, F] {
	_, f := layout[I, F]()

	return wrapFixed[I, F](truncRaw(int64(x.v), f))
}

// Frac returns x - Floor(x), always in [0, 1).
func (x Fixed[I, F]) Frac() Fixed[I, F] {
	_, f := layout[I, F]()

	return wrapFixed[I, F](int64(x.v) & fracMask(f))
}

// ConvertFrac changes the number of fractional bits, keeping I. Dropping
// bits shifts right (floor); adding bits shifts left. No rounding.
func ConvertFrac[F2, I, F width.Bits](x Fixed[I, F]) Fixed[I, F2] {
	_, f := layout[I, F]()
	_, f2 := layout[I, F2]()

	return wrapFixed[I, F2](rescale(int64(x.v), f, f2))
}

// Convert changes both the integer and fractional bits; the raw value is
// rescaled like ConvertFrac and wrapped into the target width.
func Convert[I2, F2, I, F width.Bits](x Fixed[I, F]) Fixed[I2, F2] {
	_, f := layout[I, F]()
	_, f2 := layout[I2, F2]()

	return wrapFixed[I2, F2](rescale(int64(x.v), f, f2))
}

// ---------- saturating ----------

func (x Fixed[I, F]) saturate(v int64) Fixed[I, F] {
	n, _ := layout[I, F]()

	return Fixed[I, F]{v: int32(width.Saturate(v, n, true))}
}

// AddSat returns x + y clamped to [MinValue, MaxValue].
func (x Fixed[I, F]) AddSat(y Fixed[I, F]) Fixed[I, F] { return x.saturate(int64(x.v) + int64(y.v)) }

// SubSat returns x - y clamped to [MinValue, MaxValue].
func (x Fixed[I, F]) SubSat(y Fixed[I, F]) Fixed[I, F] { return x.saturate(int64(x.v) - int64(y.v)) }

// MulSat returns (x·y) >> F clamped to [MinValue, MaxValue].
func (x Fixed[I, F]) MulSat(y Fixed[I, F]) Fixed[I, F] {
	_, f := layout[I, F]()

	return x.saturate((int64(x.v) * int64(y.v)) >> f)
}

// Clamp returns x limited to [lo, hi].
func (x Fixed[I, F]) Clamp(lo, hi Fixed[I, F]) Fixed[I, F] {
	if x.v < lo.v {
		return lo
	}
	if x.v > hi.v {
		return hi
	}

	return x
}

// Clamp01 returns x limited to [0, min(1, MaxValue)].
func (x Fixed[I, F]) Clamp01() Fixed[I, F] {
	n, f := layout[I, F]()
	hi := min(int64(1)<<f, int64(width.SignedMax(n)))

	return Fixed[I, F]{v: int32(width.ClampOffset(int64(x.v), 0, hi, 0, 0, n, true))}
}

// ClampWithOffset clamps x to [lo+dlo, hi+dhi]; the offset bounds are pulled
// back into [MinValue, MaxValue] and swapped if inverted, in that order.
func (x Fixed[I, F]) ClampWithOffset(lo, hi, dlo, dhi Fixed[I, F]) Fixed[I, F] {
	n, _ := layout[I, F]()

	return Fixed[I, F]{v: int32(width.ClampOffset(int64(x.v), int64(lo.v), int64(hi.v), int64(dlo.v), int64(dhi.v), n, true))}
}

// ---------- comparison ----------

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Fixed[I, F]) Cmp(y Fixed[I, F]) int {
	switch {
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	}

	return 0
}

// Equal reports whether x == y.
func (x Fixed[I, F]) Equal(y Fixed[I, F]) bool { return x.v == y.v }

// Less reports whether x < y.
func (x Fixed[I, F]) Less(y Fixed[I, F]) bool { return x.v < y.v }

// IsZero reports whether x is zero.
func (x Fixed[I, F]) IsZero() bool { return x.v == 0 }

// Sign returns -1, 0 or +1 by the sign of x.
func (x Fixed[I, F]) Sign() int { return x.Cmp(Fixed[I, F]{}) }

// Min returns the smaller of x and y.
func (x Fixed[I, F]) Min(y Fixed[I, F]) Fixed[I, F] {
	if y.v < x.v {
		return y
	}

	return x
}

// Max returns the larger of x and y.
func (x Fixed[I, F]) Max(y Fixed[I, F]) Fixed[I, F] {
	if y.v > x.v {
		return y
	}

	return x
}
