// SPDX-License-Identifier: MIT

package fxmath

import (
	"github.com/katalvlaran/fixedpoint/lut"
	"github.com/katalvlaran/fixedpoint/width"
)

// Format describes the storage of a caller's value.
type Format struct {
	// Bits is the total storage width (N for integers, I+F for fixed).
	Bits uint

	// Frac is the number of fractional bits of ratios and results.
	Frac uint

	// Signed selects two's-complement storage.
	Signed bool

	// Binary selects binary angles (1<<Bits == one turn) instead of radians.
	Binary bool
}

// IntFormat is the trig format of an n-bit integer: binary angles in, and
// ratios in Q(n-2) so that ±1.0 is exactly representable.
func IntFormat(n uint, signed bool) Format {
	var frac uint
	if n >= 2 {
		frac = n - 2
	}

	return Format{Bits: n, Frac: frac, Signed: signed, Binary: true}
}

// ScalarFormat is the format of an n-bit integer for sqrt/exp/log: no
// fractional bits.
func ScalarFormat(n uint, signed bool) Format {
	return Format{Bits: n, Signed: signed, Binary: true}
}

// FixedFormat is the format of a Q(intBits).(frac) number with angles in
// radians.
func FixedFormat(intBits, frac uint, signed bool) Format {
	return Format{Bits: intBits + frac, Frac: frac, Signed: signed}
}

// AngleBits returns the binary-angle resolution used for the quadrant/phase
// split. Radian formats are capped at width.MaxAngleBits.
func (f Format) AngleBits() uint {
	if f.Binary || f.Bits <= width.MaxAngleBits {
		return f.Bits
	}

	return width.MaxAngleBits
}

// Range returns the inclusive raw bounds of the format.
func (f Format) Range() (lo, hi int64) {
	return width.Range(f.Bits, f.Signed)
}

// binaryAngle converts a raw input to an n-bit binary angle.
// Radians go through Q16.16 and a Q48 turn count; the uint64 product wraps
// away whole turns, which is exactly the periodicity we want.
func (f Format) binaryAngle(raw int64) (uint32, uint) {
	n := f.AngleBits()
	if f.Binary {
		return uint32(raw) & width.Mask(n), n
	}
	rad := toQ16(raw, f.Frac)
	turns := uint32((uint64(rad) * lut.InvTwoPiQ32) >> 16)

	return turns >> (width.MaxBits - n), n
}

// toQ16 rescales a Q(frac) raw value to Q16.16 (floor when narrowing).
func toQ16(raw int64, frac uint) int64 {
	if frac <= lut.FracBits {
		return raw << (lut.FracBits - frac)
	}

	return raw >> (frac - lut.FracBits)
}

// fromQ16 rescales a Q16.16 value to Q(frac), rounding half up.
func fromQ16(v int64, frac uint) int64 {
	return roundHalfUp(v, lut.FracBits-int(frac))
}

// floorShift divides by 2^s rounding toward -∞; s <= 0 shifts left.
func floorShift(v int64, s int) int64 {
	if s <= 0 {
		return v << uint(-s)
	}

	return v >> uint(s)
}

// truncShift divides by 2^s rounding toward zero; s <= 0 shifts left.
func truncShift(v int64, s int) int64 {
	if s <= 0 {
		return v << uint(-s)
	}
	if v >= 0 {
		return v >> uint(s)
	}

	return -((-v) >> uint(s))
}

// roundHalfUp divides by 2^s rounding to nearest, ties toward +∞.
func roundHalfUp(v int64, s int) int64 {
	if s <= 0 {
		return v << uint(-s)
	}

	return (v + int64(1)<<uint(s-1)) >> uint(s)
}

// roundHalfAway divides by 2^s rounding to nearest, ties away from zero.
func roundHalfAway(v int64, s int) int64 {
	if s <= 0 {
		return v << uint(-s)
	}
	half := int64(1) << uint(s-1)
	if v >= 0 {
		return (v + half) >> uint(s)
	}

	return -((-v + half) >> uint(s))
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
