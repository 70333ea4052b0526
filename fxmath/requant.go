// SPDX-License-Identifier: MIT
// Package fxmath: angle requantization.
//
// Inverse trig results are produced in Q16.16 radians and converted to the
// caller's angle units by one of three rules. They look alike but differ at
// the edges and must not be merged:
//
//	requantHalfRange  asin/atan   round half away from zero; unsigned formats
//	                              lift negatives by a full turn; clamp.
//	requantFullRange  atan2       round half up; binary angles wrap modulo a
//	                              turn (+π becomes -π when signed); radians
//	                              fold into [0, 2π) when unsigned, then clamp.
//	requantAcos       acos        round toward -∞; clamp to [0, Max], never
//	                              wrapping π to a negative angle.

package fxmath

import (
	"github.com/katalvlaran/fixedpoint/lut"
	"github.com/katalvlaran/fixedpoint/width"
)

// angleScale expresses a Q16.16 radian value in the output unit as
// num / 2^shift. Binary angles go through the Q48 turn count.
func angleScale(rad int64, f Format) (num int64, shift int) {
	if f.Binary {
		return rad * lut.InvTwoPiQ32, 3*lut.FracBits - int(f.AngleBits())
	}

	return rad, lut.FracBits - int(f.Frac)
}

// fullTurn is 2π in the output unit.
func fullTurn(f Format) int64 {
	if f.Binary {
		return int64(1) << f.Bits
	}

	return roundHalfAway(lut.TwoPi, lut.FracBits-int(f.Frac))
}

func requantHalfRange(rad int64, f Format) int64 {
	num, s := angleScale(rad, f)
	v := roundHalfAway(num, s)
	if !f.Signed && v < 0 {
		v += fullTurn(f)
	}
	lo, hi := f.Range()

	return clamp(v, lo, hi)
}

func requantFullRange(rad int64, f Format) int64 {
	num, s := angleScale(rad, f)
	v := roundHalfUp(num, s)
	if f.Binary {
		return width.Wrap(v, f.Bits, f.Signed)
	}
	if !f.Signed {
		turn := fullTurn(f)
		if v < 0 {
			v += turn
		}
		if v >= turn {
			v -= turn
		}
	}
	lo, hi := f.Range()

	return clamp(v, lo, hi)
}

func requantAcos(rad int64, f Format) int64 {
	num, s := angleScale(rad, f)
	_, hi := f.Range()

	return clamp(floorShift(num, s), 0, hi)
}
