// SPDX-License-Identifier: MIT

package fxmath

import (
	"github.com/katalvlaran/fixedpoint/lut"
	"github.com/katalvlaran/fixedpoint/width"
)

// asinCore returns asin(x) in Q16.16 radians for a Q16.16 ratio x, clamping
// |x| to 1. n is the caller's angle resolution and selects the fidelity mode.
func asinCore(x int64, n uint) int64 {
	x = clamp(x, -lut.One, lut.One)

	// Position on the [-1,1] grid: (x+1)/2 · 4095 in Q16.
	pos := ((x + lut.One) * lut.IndexMask) >> 1
	if n <= AsinRetroMaxBits {
		// The grid has no zero sample: x == 0 falls exactly between the two
		// centre entries, which cancel.
		if pos&(lut.One-1) == lut.One/2 {
			i := int(pos >> lut.FracBits)
			return (lut.Asin.At(i) + lut.Asin.At(i+1)) / 2
		}

		return lut.Asin.At(int((pos + lut.One/2) >> lut.FracBits))
	}

	ax := abs64(x)
	if ax >= lut.TailStart {
		// The derivative diverges near |x| == 1; the tail table is twice as
		// dense over a twelfth of the domain. Sample j lives at storage j+1.
		tpos := ((ax - lut.TailStart) * (lut.TailSize - 1) << lut.FracBits) / (lut.One - lut.TailStart)
		j := int(tpos >> lut.FracBits)
		t := tpos & (lut.One - 1)
		v := lut.CatmullRom(lut.AsinTail.At(j), lut.AsinTail.At(j+1), lut.AsinTail.At(j+2), lut.AsinTail.At(j+3), t)
		if x < 0 {
			v = -v
		}

		return v
	}

	return lut.Asin.Spline(int(pos>>lut.FracBits), pos&(lut.One-1))
}

// atanCore returns atan(r) in Q16.16 radians for a Q16.16 ratio r ∈ [0,1].
func atanCore(r int64) int64 {
	pos := r * lut.IndexMask

	return lut.Atan.Spline(int(pos>>lut.FracBits), pos&(lut.One-1))
}

// atanQ16 extends atanCore to any Q16.16 ratio with
// atan(x) = π/2 - atan(1/x) for |x| > 1 and odd symmetry.
func atanQ16(x int64) int64 {
	a := abs64(x)

	var v int64
	if a > lut.One {
		v = lut.HalfPi - atanCore((int64(1)<<(2*lut.FracBits))/a)
	} else {
		v = atanCore(a)
	}
	if x < 0 {
		v = -v
	}

	return v
}

// atan2Q16 returns atan2(y, x) in Q16.16 radians within [-π, π].
// Only the ratio of y and x matters, so both are used in their raw units.
func atan2Q16(y, x int64) int64 {
	if x == 0 && y == 0 {
		return 0
	}
	ax, ay := abs64(x), abs64(y)

	var a int64
	if ax >= ay {
		a = atanCore((ay << lut.FracBits) / ax)
	} else {
		a = lut.HalfPi - atanCore((ax<<lut.FracBits)/ay)
	}
	if x < 0 {
		a = lut.Pi - a
	}
	if y < 0 {
		a = -a
	}

	return a
}

// Asin returns asin of the ratio raw (Q(f.Frac)) as an angle in f's units.
// Inputs beyond ±1 are clamped.
func Asin(f Format, raw int64) (int64, error) {
	n := f.AngleBits()
	if err := width.ValidateAngleBits("Asin", n); err != nil {
		return 0, err
	}

	return requantHalfRange(asinCore(toQ16(raw, f.Frac), n), f), nil
}

// Acos returns acos(raw) = π/2 - asin(raw) through the shared asin core.
func Acos(f Format, raw int64) (int64, error) {
	n := f.AngleBits()
	if err := width.ValidateAngleBits("Acos", n); err != nil {
		return 0, err
	}

	return requantAcos(lut.HalfPi-asinCore(toQ16(raw, f.Frac), n), f), nil
}

// Atan returns atan of the ratio raw as an angle in f's units.
func Atan(f Format, raw int64) (int64, error) {
	if err := width.ValidateAngleBits("Atan", f.AngleBits()); err != nil {
		return 0, err
	}

	return requantHalfRange(atanQ16(toQ16(raw, f.Frac)), f), nil
}

// Atan2 returns the angle of the vector (x, y) in f's units: [-π, π) for
// signed binary angles, [0, 2π) for unsigned ones.
func Atan2(f Format, y, x int64) (int64, error) {
	if err := width.ValidateAngleBits("Atan2", f.AngleBits()); err != nil {
		return 0, err
	}

	return requantFullRange(atan2Q16(y, x), f), nil
}
