// SPDX-License-Identifier: MIT

package intn

import (
	"math/bits"

	"github.com/katalvlaran/fixedpoint/width"
)

// And returns the bitwise AND of x and y.
func (x Uint[W]) And(y Uint[W]) Uint[W] { return Uint[W]{v: x.v & y.v} }

// Or returns the bitwise OR of x and y.
func (x Uint[W]) Or(y Uint[W]) Uint[W] { return Uint[W]{v: x.v | y.v} }

// Xor returns the bitwise XOR of x and y.
func (x Uint[W]) Xor(y Uint[W]) Uint[W] { return Uint[W]{v: x.v ^ y.v} }

// AndNot returns x AND NOT y.
func (x Uint[W]) AndNot(y Uint[W]) Uint[W] { return Uint[W]{v: x.v &^ y.v} }

// Not returns the bitwise complement of x within N bits.
func (x Uint[W]) Not() Uint[W] { return NewUint[W](^x.v) }

// Shl shifts left by s ∈ [0, N), discarding bits shifted past N.
func (x Uint[W]) Shl(s int) (Uint[W], error) {
	if err := width.ValidateShift("Shl", s, x.bits()); err != nil {
		return Uint[W]{}, err
	}

	return NewUint[W](x.v << uint(s)), nil
}

// Shr shifts right logically by s ∈ [0, N).
func (x Uint[W]) Shr(s int) (Uint[W], error) {
	if err := width.ValidateShift("Shr", s, x.bits()); err != nil {
		return Uint[W]{}, err
	}

	return Uint[W]{v: x.v >> uint(s)}, nil
}

// MulPow2 returns x·2^s, s ∈ [0, N), wrapped.
func (x Uint[W]) MulPow2(s int) (Uint[W], error) {
	if err := width.ValidateShift("MulPow2", s, x.bits()); err != nil {
		return Uint[W]{}, err
	}

	return NewUint[W](x.v << uint(s)), nil
}

// DivPow2 returns x / 2^s, s ∈ [0, N).
func (x Uint[W]) DivPow2(s int) (Uint[W], error) {
	if err := width.ValidateShift("DivPow2", s, x.bits()); err != nil {
		return Uint[W]{}, err
	}

	return Uint[W]{v: x.v >> uint(s)}, nil
}

// ModPow2 returns x mod 2^s, s ∈ [0, N].
func (x Uint[W]) ModPow2(s int) (Uint[W], error) {
	if err := width.ValidateModShift("ModPow2", s, x.bits()); err != nil {
		return Uint[W]{}, err
	}

	return Uint[W]{v: x.v & width.Mask(uint(s))}, nil
}

// Rol rotates the N-bit pattern left by k; negative k rotates right.
func (x Uint[W]) Rol(k int) Uint[W] { return Uint[W]{v: rotateLeft(x.v, x.bits(), k)} }

// Ror rotates the N-bit pattern right by k; negative k rotates left.
func (x Uint[W]) Ror(k int) Uint[W] { return Uint[W]{v: rotateLeft(x.v, x.bits(), -k)} }

// PopCount returns the number of set bits.
func (x Uint[W]) PopCount() int { return bits.OnesCount32(x.v) }

// Parity returns 1 if an odd number of bits are set, 0 otherwise.
func (x Uint[W]) Parity() int { return parity(x.v) }

// LeadingZeros counts the zero bits above the highest set bit within N bits.
func (x Uint[W]) LeadingZeros() int { return leadingZeros(x.v, x.bits()) }

// TrailingZeros counts the zero bits below the lowest set bit; N for zero.
func (x Uint[W]) TrailingZeros() int { return trailingZeros(x.v, x.bits()) }

// Bsr returns the index of the highest set bit, or -1 for zero.
func (x Uint[W]) Bsr() int { return bsr(x.v) }

// Bsf returns the index of the lowest set bit, or -1 for zero.
func (x Uint[W]) Bsf() int { return bsf(x.v) }

// Bit reports whether bit i ∈ [0, N) is set.
func (x Uint[W]) Bit(i int) (bool, error) {
	if err := width.ValidateBitIndex("Bit", i, x.bits()); err != nil {
		return false, err
	}

	return x.v>>uint(i)&1 == 1, nil
}

// SetBit returns x with bit i ∈ [0, N) set.
func (x Uint[W]) SetBit(i int) (Uint[W], error) {
	if err := width.ValidateBitIndex("SetBit", i, x.bits()); err != nil {
		return Uint[W]{}, err
	}

	return Uint[W]{v: x.v | 1<<uint(i)}, nil
}

// ClearBit returns x with bit i ∈ [0, N) cleared.
func (x Uint[W]) ClearBit(i int) (Uint[W], error) {
	if err := width.ValidateBitIndex("ClearBit", i, x.bits()); err != nil {
		return Uint[W]{}, err
	}

	return Uint[W]{v: x.v &^ (1 << uint(i))}, nil
}

// ToggleBit returns x with bit i ∈ [0, N) flipped.
func (x Uint[W]) ToggleBit(i int) (Uint[W], error) {
	if err := width.ValidateBitIndex("ToggleBit", i, x.bits()); err != nil {
		return Uint[W]{}, err
	}

	return Uint[W]{v: x.v ^ 1<<uint(i)}, nil
}
