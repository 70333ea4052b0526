// SPDX-License-Identifier: MIT

package width

import "math"

// twoPow32 is the modulus of the native 32-bit cell.
const twoPow32 = 1 << 32

// truncPattern truncates a finite f toward zero and reduces it modulo 2^32.
// Values beyond the int64 range are reduced with math.Mod, which is exact
// for integral operands, so huge inputs wrap exactly like small ones.
func truncPattern(f float64) uint32 {
	t := math.Trunc(f)
	if t >= -(1<<63) && t < 1<<63 {
		return uint32(int64(t))
	}

	return uint32(int64(math.Mod(t, twoPow32)))
}

// SignedFromFloat narrows f to an n-bit signed register, truncating toward
// zero and wrapping out-of-range finite values.
// Edge mappings: NaN → 0, +Inf → SignedMax(n), -Inf → SignedMin(n).
func SignedFromFloat(f float64, n uint) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case math.IsInf(f, 1):
		return tables.signedMax[n]
	case math.IsInf(f, -1):
		return tables.signedMin[n]
	}

	return SignExtend(int32(truncPattern(f)), n)
}

// UnsignedFromFloat narrows f to an n-bit unsigned register, truncating
// toward zero and wrapping out-of-range finite values (negative values keep
// their two's-complement pattern).
// Edge mappings: NaN → 0, +Inf → UnsignedMax(n), -Inf → SignBit(n), the bit
// pattern of the signed minimum.
func UnsignedFromFloat(f float64, n uint) uint32 {
	switch {
	case math.IsNaN(f):
		return 0
	case math.IsInf(f, 1):
		return tables.unsignedMax[n]
	case math.IsInf(f, -1):
		return tables.signBit[n]
	}

	return WrapUnsigned(truncPattern(f), n)
}
