// SPDX-License-Identifier: MIT

package fxmath

import (
	"github.com/katalvlaran/fixedpoint/lut"
	"github.com/katalvlaran/fixedpoint/width"
)

// Fidelity thresholds. Each function owns its own threshold; they are not
// interchangeable.
const (
	// SinRetroMaxBits is the widest angle served by direct sin/cos lookups.
	SinRetroMaxBits = 14

	// TanDirectMaxBits is the widest angle served by the scaled direct tan
	// lookup (bucket 3..13 bits).
	TanDirectMaxBits = 13

	// TanDedicatedBits is the angle width whose phase is exactly a tan index.
	TanDedicatedBits = 14

	// AsinRetroMaxBits is the widest input served by nearest-neighbour asin.
	AsinRetroMaxBits = 6
)

// indexBits is log2(lut.Size).
const indexBits = 12

// split returns the 2-bit quadrant and the (n-2)-bit phase of an angle.
func split(ang uint32, n uint) (quad, phase uint32) {
	quad = ang >> (n - 2) & 3
	phase = ang & (1<<(n-2) - 1)

	return quad, phase
}

// sinCore evaluates sin of an n-bit binary angle in Q16.16.
// The sign flips on the quadrant's high bit; the table is mirrored on its
// low bit.
func sinCore(ang uint32, n uint) int64 {
	quad, phase := split(ang, n)

	var v int64
	if n <= SinRetroMaxBits {
		idx := int(phase << (indexBits + 2 - n))
		if quad&1 == 1 {
			idx = lut.IndexMask - idx
		}
		v = lut.Sin.At(idx)
	} else {
		pos := (uint64(phase) * lut.IndexMask << lut.FracBits) >> (n - 2)
		if quad&1 == 1 {
			pos = lut.IndexMask<<lut.FracBits - pos
		}
		v = lut.Sin.Spline(int(pos>>lut.FracBits), int64(pos&(lut.One-1)))
	}
	if quad&2 != 0 {
		v = -v
	}

	return v
}

// Sin returns sin(raw) in f's ratio units (Q(f.Frac)), rounded half up.
func Sin(f Format, raw int64) (int64, error) {
	if err := width.ValidateAngleBits("Sin", f.AngleBits()); err != nil {
		return 0, err
	}
	ang, n := f.binaryAngle(raw)

	return fromQ16(sinCore(ang, n), f.Frac), nil
}

// Cos returns cos(raw) as Sin(raw + quarter turn); there is no cosine table.
func Cos(f Format, raw int64) (int64, error) {
	if err := width.ValidateAngleBits("Cos", f.AngleBits()); err != nil {
		return 0, err
	}
	ang, n := f.binaryAngle(raw)
	ang = (ang + 1<<(n-2)) & width.Mask(n)

	return fromQ16(sinCore(ang, n), f.Frac), nil
}

// Tan returns tan(raw) in f's ratio units.
//
// Exactly 90° yields the format's maximum and exactly 270° its minimum.
// Other results saturate to the signed range of f.Bits (unsigned callers
// then wrap that pattern). Buckets by angle width n:
//
//	n == 2       0, Max, 0, Min by quadrant
//	3 <= n <= 13 direct index phase<<(14-n), output truncated toward zero
//	n == 14      direct index == phase, output rounded half away from zero
//	n >= 15      Catmull-Rom over a Q16.16 index, output rounded half up
func Tan(f Format, raw int64) (int64, error) {
	if err := width.ValidateAngleBits("Tan", f.AngleBits()); err != nil {
		return 0, err
	}
	ang, n := f.binaryAngle(raw)
	lo, hi := f.Range()
	quad, phase := split(ang, n)

	sentinel := func() int64 {
		if quad == 1 {
			return hi
		}
		return lo
	}

	if n == 2 {
		switch quad {
		case 1, 3:
			return sentinel(), nil
		default:
			return 0, nil
		}
	}

	odd := quad&1 == 1
	shift := lut.FracBits - int(f.Frac)

	var v int64
	switch {
	case n <= TanDirectMaxBits:
		idx := int(phase << (indexBits + 2 - n))
		if odd {
			idx = lut.Size - idx
		}
		if idx == lut.Size {
			return sentinel(), nil
		}
		v = truncShift(lut.Tan.At(idx), shift)

	case n == TanDedicatedBits:
		idx := int(phase)
		if odd {
			idx = lut.Size - idx
		}
		if idx == lut.Size {
			return sentinel(), nil
		}
		v = roundHalfAway(lut.Tan.At(idx), shift)

	default:
		pos := uint64(phase) << (indexBits + lut.FracBits) >> (n - 2)
		if odd {
			pos = lut.Size<<lut.FracBits - pos
		}
		if pos == lut.Size<<lut.FracBits {
			return sentinel(), nil
		}
		v = roundHalfUp(lut.Tan.Spline(int(pos>>lut.FracBits), int64(pos&(lut.One-1))), shift)
	}
	if odd {
		v = -v
	}
	slo, shi := width.Range(f.Bits, true)

	return clamp(v, slo, shi), nil
}
