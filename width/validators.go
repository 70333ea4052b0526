// SPDX-License-Identifier: MIT
// Package width: domain validators.
//
// Purpose:
//   - Provide a single, canonical source of truth for domain checks on shift
//     counts, bit indices, byte indices and angle resolutions.
//   - Keep the typed packages minimal by delegating guard logic here.
//
// Determinism & Performance:
//   - All checks are pure, allocate nothing on success and run in O(1).
//
// Note:
//   - Every failure wraps a fixedpoint sentinel with the operation tag, so
//     callers match with errors.Is and still see which operation failed.

package width

import (
	"fmt"

	"github.com/katalvlaran/fixedpoint"
)

// Angle resolution bounds for the trig engine.
const (
	// MinAngleBits is the smallest binary angle that still has a quadrant.
	MinAngleBits = 2

	// MaxAngleBits is the widest binary angle the engine accepts.
	MaxAngleBits = 31
)

// validatorErrorf wraps an underlying sentinel with the given operation tag.
func validatorErrorf(op string, format string, err error, args ...any) error {
	return fmt.Errorf("%s: "+format+": %w", append(append([]any{op}, args...), err)...)
}

// ValidateShift checks that shift count s lies in [0, n).
// Used by Shl, Shr, MulPow2 and DivPow2.
func ValidateShift(op string, s int, n uint) error {
	if s < 0 || s >= int(n) {
		return validatorErrorf(op, "shift %d outside [0,%d)", fixedpoint.ErrRange, s, n)
	}

	return nil
}

// ValidateModShift checks that s lies in [0, n]. ModPow2 accepts s == n.
func ValidateModShift(op string, s int, n uint) error {
	if s < 0 || s > int(n) {
		return validatorErrorf(op, "shift %d outside [0,%d]", fixedpoint.ErrRange, s, n)
	}

	return nil
}

// ValidateBitIndex checks that bit index i lies in [0, n).
func ValidateBitIndex(op string, i int, n uint) error {
	if i < 0 || i >= int(n) {
		return validatorErrorf(op, "bit index %d outside [0,%d)", fixedpoint.ErrRange, i, n)
	}

	return nil
}

// ValidateByteIndex checks that byte index i lies in [0, ceil(n/8)).
func ValidateByteIndex(op string, i int, n uint) error {
	if i < 0 || i >= ByteCount(n) {
		return validatorErrorf(op, "byte index %d outside [0,%d)", fixedpoint.ErrRange, i, ByteCount(n))
	}

	return nil
}

// ValidateAngleBits checks that an angle resolution lies in
// [MinAngleBits, MaxAngleBits].
func ValidateAngleBits(op string, n uint) error {
	if n < MinAngleBits || n > MaxAngleBits {
		return validatorErrorf(op, "angle resolution %d outside [%d,%d]", fixedpoint.ErrNotSupported, n, MinAngleBits, MaxAngleBits)
	}

	return nil
}
