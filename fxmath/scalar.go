// SPDX-License-Identifier: MIT

package fxmath

import (
	"math/bits"

	"github.com/katalvlaran/fixedpoint/lut"
)

// isqrt64 is the binary non-restoring shift-and-subtract square root:
// floor(sqrt(v)) with one bit of result per iteration.
func isqrt64(v uint64) uint64 {
	var res uint64
	bit := uint64(1) << 62
	for bit > v {
		bit >>= 2
	}
	for bit != 0 {
		if v >= res+bit {
			v -= res + bit
			res = res>>1 + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}

	return res
}

// Sqrt returns sqrt(|raw|) in the same Q-format: the fractional bits are
// folded in first (|raw| << f.Frac), so the integer root lands at Q(f.Frac).
// It never fails and never returns a negative value.
func Sqrt(f Format, raw int64) int64 {
	u := uint64(abs64(raw)) << f.Frac

	return int64(isqrt64(u))
}

// Exp2 returns 2^raw for a Q(f.Frac) exponent:
//
//	2^x = 2^intPart · 2^fracPart,  2^f ≈ 1 + f·ln2
//
// The integer part is a shift; the fraction uses the first-order term with
// ln2 in Q32. Results above the format's maximum saturate to it; tiny
// results underflow to 0.
func Exp2(f Format, raw int64) int64 {
	_, hi := f.Range()
	ip := raw >> f.Frac
	fp := uint64(raw) & (uint64(1)<<f.Frac - 1)
	term := int64(1)<<f.Frac + int64(fp*lut.Ln2Q32>>32)

	if ip >= 0 {
		if ip >= int64(63-bits.Len64(uint64(term))) {
			return hi
		}
		v := term << uint(ip)
		if v > hi {
			return hi
		}

		return v
	}
	if -ip >= 64 {
		return 0
	}

	return term >> uint(-ip)
}

// Exp returns e^raw = Exp2(raw · log2(e)) with log2(e) in Q30, floored.
func Exp(f Format, raw int64) int64 {
	return Exp2(f, (raw*lut.Log2EQ30)>>30)
}

// Log2 returns log2(raw) in Q(f.Frac): the most significant bit gives the
// integer part and the mantissa below it a linear fractional correction,
// log2(1+m) ≈ m. Non-positive inputs return the format's minimum.
func Log2(f Format, raw int64) int64 {
	if raw <= 0 {
		lo, _ := f.Range()
		return lo
	}
	msb := uint(bits.Len64(uint64(raw)) - 1)
	ip := int64(msb) - int64(f.Frac)
	mant := uint64(raw) - uint64(1)<<msb
	fq := int64((mant << f.Frac) >> msb)

	return ip<<f.Frac + fq
}

// Log returns ln(raw) = Log2(raw) · ln2 with ln2 in Q24, floored.
// Non-positive inputs return the format's minimum.
func Log(f Format, raw int64) int64 {
	if raw <= 0 {
		lo, _ := f.Range()
		return lo
	}

	return (Log2(f, raw) * lut.Ln2Q24) >> 24
}
