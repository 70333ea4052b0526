// SPDX-License-Identifier: MIT
// Package fixedpoint: sentinel error set shared by every sub-package.
// All fallible operations MUST return one of these sentinels (possibly wrapped
// with call-site context) and tests MUST match them via errors.Is.
// Wraparound in constructors and casts is intentional and is never reported
// as an error.

package fixedpoint

import "errors"

// NOTE ON WRAPPING
// ----------------
// Every message is prefixed with "fixedpoint: ..." for easy grepping. Call
// sites add the operation name with fmt.Errorf("Op: detail: %w", ErrX);
// callers still match with errors.Is.

var (
	// ErrDivisionByZero is returned by Div/Mod when the raw denominator is zero.
	ErrDivisionByZero = errors.New("fixedpoint: division by zero")

	// ErrRange indicates a shift, rotate, bit index or byte index outside the
	// operation's domain.
	ErrRange = errors.New("fixedpoint: argument out of range")

	// ErrFormat indicates malformed parse input, a byte slice of the wrong
	// length, or a self-describing JSON document whose widths do not match
	// the target type.
	ErrFormat = errors.New("fixedpoint: malformed input")

	// ErrNotSupported indicates a bit width outside the range an operation
	// supports (angle functions require an angle resolution in [2,31]).
	ErrNotSupported = errors.New("fixedpoint: bit width not supported")
)
