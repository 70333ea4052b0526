// SPDX-License-Identifier: MIT

package intn

import (
	"math/bits"

	"github.com/katalvlaran/fixedpoint/width"
)

// pattern returns the N-bit two's-complement pattern of x.
func (x Int[W]) pattern() uint32 { return width.Pattern(int64(x.v), x.bits()) }

func fromPattern[W width.Bits](p uint32) Int[W] {
	return Int[W]{v: width.SignExtend(int32(p), width.Of[W]())}
}

// And returns the bitwise AND of x and y.
func (x Int[W]) And(y Int[W]) Int[W] { return Int[W]{v: x.v & y.v} }

// Or returns the bitwise OR of x and y.
func (x Int[W]) Or(y Int[W]) Int[W] { return Int[W]{v: x.v | y.v} }

// Xor returns the bitwise XOR of x and y.
func (x Int[W]) Xor(y Int[W]) Int[W] { return Int[W]{v: x.v ^ y.v} }

// AndNot returns x AND NOT y.
func (x Int[W]) AndNot(y Int[W]) Int[W] { return Int[W]{v: x.v &^ y.v} }

// Not returns the bitwise complement of x within N bits.
func (x Int[W]) Not() Int[W] { return New[W](^x.v) }

// Shl shifts left by s ∈ [0, N), discarding bits shifted past N.
func (x Int[W]) Shl(s int) (Int[W], error) {
	if err := width.ValidateShift("Shl", s, x.bits()); err != nil {
		return Int[W]{}, err
	}

	return fromPattern[W](x.pattern() << uint(s)), nil
}

// Shr shifts right arithmetically by s ∈ [0, N) (rounds toward -∞).
func (x Int[W]) Shr(s int) (Int[W], error) {
	if err := width.ValidateShift("Shr", s, x.bits()); err != nil {
		return Int[W]{}, err
	}

	return Int[W]{v: x.v >> uint(s)}, nil
}

// MulPow2 returns x * 2^s wrapped, s ∈ [0, N).
func (x Int[W]) MulPow2(s int) (Int[W], error) {
	if err := width.ValidateShift("MulPow2", s, x.bits()); err != nil {
		return Int[W]{}, err
	}

	return wrapInt[W](int64(x.v) << uint(s)), nil
}

// DivPow2 returns x / 2^s truncated toward zero, s ∈ [0, N).
func (x Int[W]) DivPow2(s int) (Int[W], error) {
	if err := width.ValidateShift("DivPow2", s, x.bits()); err != nil {
		return Int[W]{}, err
	}

	return wrapInt[W](divPow2Signed(int64(x.v), uint(s))), nil
}

// ModPow2 keeps the low s bits of the pattern and re-sign-extends, s ∈ [0, N].
// s == 0 yields zero and s == N yields x.
func (x Int[W]) ModPow2(s int) (Int[W], error) {
	if err := width.ValidateModShift("ModPow2", s, x.bits()); err != nil {
		return Int[W]{}, err
	}

	return fromPattern[W](x.pattern() & width.Mask(uint(s))), nil
}

// Rol rotates the N-bit pattern left by k (mod N; negative k rotates right).
func (x Int[W]) Rol(k int) Int[W] { return fromPattern[W](rotateLeft(x.pattern(), x.bits(), k)) }

// Ror rotates the N-bit pattern right by k (mod N; negative k rotates left).
func (x Int[W]) Ror(k int) Int[W] { return fromPattern[W](rotateLeft(x.pattern(), x.bits(), -k)) }

// PopCount counts the set bits among the N bits of x.
func (x Int[W]) PopCount() int { return bits.OnesCount32(x.pattern()) }

// Parity returns 1 when an odd number of the N bits is set, else 0.
func (x Int[W]) Parity() int { return parity(x.pattern()) }

// LeadingZeros counts zero bits above the highest set bit, within N bits.
func (x Int[W]) LeadingZeros() int { return leadingZeros(x.pattern(), x.bits()) }

// TrailingZeros counts zero bits below the lowest set bit; N for zero.
func (x Int[W]) TrailingZeros() int { return trailingZeros(x.pattern(), x.bits()) }

// Bsr returns the index of the highest set bit of the pattern, or -1.
func (x Int[W]) Bsr() int { return bsr(x.pattern()) }

// Bsf returns the index of the lowest set bit, or -1.
func (x Int[W]) Bsf() int { return bsf(x.pattern()) }

// Bit reports whether bit i ∈ [0, N) is set.
func (x Int[W]) Bit(i int) (bool, error) {
	if err := width.ValidateBitIndex("Bit", i, x.bits()); err != nil {
		return false, err
	}

	return x.pattern()>>uint(i)&1 == 1, nil
}

// SetBit returns x with bit i ∈ [0, N) set.
func (x Int[W]) SetBit(i int) (Int[W], error) {
	if err := width.ValidateBitIndex("SetBit", i, x.bits()); err != nil {
		return Int[W]{}, err
	}

	return fromPattern[W](x.pattern() | 1<<uint(i)), nil
}

// ClearBit returns x with bit i ∈ [0, N) cleared.
func (x Int[W]) ClearBit(i int) (Int[W], error) {
	if err := width.ValidateBitIndex("ClearBit", i, x.bits()); err != nil {
		return Int[W]{}, err
	}

	return fromPattern[W](x.pattern() &^ (1 << uint(i))), nil
}

// ToggleBit returns x with bit i ∈ [0, N) flipped.
func (x Int[W]) ToggleBit(i int) (Int[W], error) {
	if err := width.ValidateBitIndex("ToggleBit", i, x.bits()); err != nil {
		return Int[W]{}, err
	}

	return fromPattern[W](x.pattern() ^ 1<<uint(i)), nil
}
