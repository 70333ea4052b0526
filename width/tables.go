// SPDX-License-Identifier: MIT
// Package width: width tables.
//
// Purpose:
//   - Single source of truth for per-width constants, indexed 0..32.
//   - Built once in package init (safe publication by the Go memory model)
//     and read-only afterwards.
//
// Conventions:
//   - Width 0 is a degenerate register that always holds zero: every bound
//     and mask is 0.
//   - Width 32 uses the full native cell: Mask[32] = 0xFFFFFFFF.

package width

// MaxBits is the widest register the module emulates.
const MaxBits = 32

// tableSize is the number of entries in each width table (0..MaxBits).
const tableSize = MaxBits + 1

type widthTables struct {
	mask        [tableSize]uint32
	unsignedMax [tableSize]uint32
	signBit     [tableSize]uint32
	signedMin   [tableSize]int32
	signedMax   [tableSize]int32
}

var tables = buildTables()

// buildTables computes every per-width constant once.
// 64-bit intermediates keep the n==32 row free of shift-by-width edge cases.
func buildTables() widthTables {
	var t widthTables
	for n := 1; n < tableSize; n++ {
		full := uint64(1)<<uint(n) - 1
		t.mask[n] = uint32(full)
		t.unsignedMax[n] = uint32(full)
		t.signBit[n] = uint32(uint64(1) << uint(n-1))
		t.signedMin[n] = int32(-(int64(1) << uint(n-1)))
		t.signedMax[n] = int32(int64(1)<<uint(n-1) - 1)
	}

	return t
}

// Mask returns the n-bit mask (1<<n)-1.
func Mask(n uint) uint32 { return tables.mask[n] }

// UnsignedMax returns the largest value of an n-bit unsigned register.
func UnsignedMax(n uint) uint32 { return tables.unsignedMax[n] }

// SignBit returns the bit pattern of the sign bit of an n-bit register,
// which is also the pattern of the signed minimum.
func SignBit(n uint) uint32 { return tables.signBit[n] }

// SignedMin returns the smallest value of an n-bit signed register.
func SignedMin(n uint) int32 { return tables.signedMin[n] }

// SignedMax returns the largest value of an n-bit signed register.
func SignedMax(n uint) int32 { return tables.signedMax[n] }

// ByteCount returns ceil(n/8): the number of bytes in the little-endian
// encoding of an n-bit register.
func ByteCount(n uint) int { return int(n+7) / 8 }

// Range returns the inclusive bounds of an n-bit register as int64.
func Range(n uint, signed bool) (lo, hi int64) {
	if signed {
		return int64(tables.signedMin[n]), int64(tables.signedMax[n])
	}

	return 0, int64(tables.unsignedMax[n])
}
