// SPDX-License-Identifier: MIT
// Package intn: pattern kernels shared by Int and Uint.
//
// Every helper works on an n-bit pattern p (bits above n are zero), so the
// signed and unsigned families agree bit for bit and only differ in how the
// result is read back.

package intn

import (
	"math/bits"

	"github.com/katalvlaran/fixedpoint/width"
)

// rotateLeft rotates p left by k within n bits. k is reduced modulo n, so
// negative k rotates right.
func rotateLeft(p uint32, n uint, k int) uint32 {
	if n == 0 {
		return 0
	}
	s := uint(((k % int(n)) + int(n)) % int(n))
	if s == 0 {
		return p
	}

	return (p<<s | p>>(n-s)) & width.Mask(n)
}

func leadingZeros(p uint32, n uint) int {
	return bits.LeadingZeros32(p) - int(width.MaxBits-n)
}

func trailingZeros(p uint32, n uint) int {
	if p == 0 {
		return int(n)
	}

	return bits.TrailingZeros32(p)
}

// bsr returns the index of the highest set bit, or -1.
func bsr(p uint32) int {
	if p == 0 {
		return -1
	}

	return bits.Len32(p) - 1
}

// bsf returns the index of the lowest set bit, or -1.
func bsf(p uint32) int {
	if p == 0 {
		return -1
	}

	return bits.TrailingZeros32(p)
}

func parity(p uint32) int {
	return bits.OnesCount32(p) & 1
}

// divPow2Signed divides v by 2^s rounding toward zero.
func divPow2Signed(v int64, s uint) int64 {
	if v >= 0 {
		return v >> s
	}

	return -((-v) >> s)
}
