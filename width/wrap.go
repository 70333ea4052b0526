// SPDX-License-Identifier: MIT

package width

import "math"

// SignExtend truncates v to its low n bits and sign-extends bit n-1.
// n==0 always yields 0 and n==32 is the identity, so no shift ever reaches
// the full register width.
func SignExtend(v int32, n uint) int32 {
	switch n {
	case 0:
		return 0
	case MaxBits:
		return v
	}
	s := MaxBits - n

	return (v << s) >> s
}

// WrapUnsigned truncates v to its low n bits. n==32 is the identity.
func WrapUnsigned(v uint32, n uint) uint32 {
	if n >= MaxBits {
		return v
	}

	return v & tables.mask[n]
}

// Wrap truncates a 64-bit intermediate to an n-bit register of the given
// signedness. Only the low 32 bits of v take part, which is exactly the
// modular reduction real hardware performs.
func Wrap(v int64, n uint, signed bool) int64 {
	if signed {
		return int64(SignExtend(int32(v), n))
	}

	return int64(WrapUnsigned(uint32(v), n))
}

// Saturate clamps a widened intermediate into the n-bit range.
// The result is already in range and needs no further wrap.
func Saturate(v int64, n uint, signed bool) int64 {
	lo, hi := Range(n, signed)
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Pattern returns the n-bit two's-complement bit pattern of v.
func Pattern(v int64, n uint) uint32 {
	return WrapUnsigned(uint32(v), n)
}

// ClampOffset clamps v in four ordered steps: offset the bounds by dlo/dhi,
// pull both offset bounds back into the n-bit range, swap them if inverted,
// then clamp v. The order is part of the contract.
func ClampOffset(v, lo, hi, dlo, dhi int64, n uint, signed bool) int64 {
	lo = Saturate(addSat64(lo, dlo), n, signed)
	hi = Saturate(addSat64(hi, dhi), n, signed)
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// addSat64 is a + b pinned to the int64 range.
func addSat64(a, b int64) int64 {
	s := a + b
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		if a < 0 {
			return math.MinInt64
		}

		return math.MaxInt64
	}

	return s
}
