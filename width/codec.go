// SPDX-License-Identifier: MIT
// Package width: string and byte codec kernels.
//
// Purpose:
//   - One parser for decimal, 0x-hex and 0b-binary literals used by every
//     N-bit type, so all of them agree on syntax and wraparound.
//   - Little-endian byte layout of ceil(n/8) bytes.
//
// Syntax accepted by ParseRaw:
//   - optional sign ('+' or '-'), then
//   - "0x"/"0X" followed by hex digits, or "0b"/"0B" followed by binary
//     digits, or decimal digits.
//   - letters are case-insensitive; no whitespace, no separators.
//
// Out-of-range literals wrap modulo 2^n, mirroring hardware truncation.

package width

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/fixedpoint"
)

// ParseRaw parses a decimal, hex or binary literal and wraps it into an
// n-bit register of the given signedness.
// Returns a wrapped fixedpoint.ErrFormat on malformed input.
func ParseRaw(s string, n uint, signed bool) (int64, error) {
	u, err := parseBits(s)
	if err != nil {
		return 0, err
	}

	return Wrap(int64(u), n, signed), nil
}

// parseBits accumulates the literal modulo 2^64. Every register is at most
// 32 bits wide, so the low bits that survive the final wrap are exact even
// when the literal itself overflows.
func parseBits(s string) (uint64, error) {
	orig := s
	if s == "" {
		return 0, fmt.Errorf("ParseRaw: empty input: %w", fixedpoint.ErrFormat)
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}

	base := uint64(10)
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] | 0x20 {
		case 'x':
			base, s = 16, s[2:]
		case 'b':
			base, s = 2, s[2:]
		}
	}
	if s == "" {
		return 0, fmt.Errorf("ParseRaw: %q has no digits: %w", orig, fixedpoint.ErrFormat)
	}

	var acc uint64
	for i := 0; i < len(s); i++ {
		d, ok := digitValue(s[i])
		if !ok || d >= base {
			return 0, fmt.Errorf("ParseRaw: %q: invalid digit %q: %w", orig, s[i], fixedpoint.ErrFormat)
		}
		acc = acc*base + d
	}
	if neg {
		acc = -acc
	}

	return acc, nil
}

// digitValue maps an ASCII digit or letter to its value (letters are 10..35).
func digitValue(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 10, true
	}

	return 0, false
}

// FormatHex renders the n-bit pattern of v as "0x" plus ceil(n/4) lowercase
// hex digits (at least one).
func FormatHex(v int64, n uint) string {
	digits := int(n+3) / 4
	if digits == 0 {
		digits = 1
	}

	return fmt.Sprintf("0x%0*x", digits, Pattern(v, n))
}

// FormatBinary renders the n-bit pattern of v as "0b" plus exactly n binary
// digits (at least one).
func FormatBinary(v int64, n uint) string {
	if n == 0 {
		return "0b0"
	}
	p := Pattern(v, n)
	var b strings.Builder
	b.Grow(int(n) + 2)
	b.WriteString("0b")
	for i := int(n) - 1; i >= 0; i-- {
		if p>>uint(i)&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}

// PutBytes encodes the n-bit pattern of v as ByteCount(n) little-endian bytes.
func PutBytes(v int64, n uint) []byte {
	p := Pattern(v, n)
	out := make([]byte, ByteCount(n))
	for i := range out {
		out[i] = byte(p >> (8 * uint(i)))
	}

	return out
}

// ReadBytes decodes the first ByteCount(n) bytes of b as a little-endian
// pattern, truncated to n bits. The caller validates len(b).
func ReadBytes(b []byte, n uint) uint32 {
	var p uint32
	for i := 0; i < ByteCount(n); i++ {
		p |= uint32(b[i]) << (8 * uint(i))
	}

	return WrapUnsigned(p, n)
}

// ByteAt returns byte i of the little-endian encoding of v.
// The caller validates i with ValidateByteIndex.
func ByteAt(v int64, n uint, i int) byte {
	return byte(Pattern(v, n) >> (8 * uint(i)))
}

// WithByte returns the n-bit pattern of v with byte i replaced by b,
// truncated to n bits. The caller validates i.
func WithByte(v int64, n uint, i int, b byte) uint32 {
	shift := 8 * uint(i)
	p := Pattern(v, n)&^(0xFF<<shift) | uint32(b)<<shift

	return WrapUnsigned(p, n)
}

// JSONLiteral extracts the literal of a compact JSON value: either a JSON
// string holding a decimal, hex or binary literal, or a bare JSON integer.
func JSONLiteral(op string, data []byte) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s, nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		return num.String(), nil
	}

	return "", fmt.Errorf("%s: %s is not a string or number: %w", op, data, fixedpoint.ErrFormat)
}
