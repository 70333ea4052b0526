// SPDX-License-Identifier: MIT

package fixed

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/width"
)

// ByteCount returns ceil((I+F)/8).
func (x Fixed[I, F]) ByteCount() int { return width.ByteCount(x.Bits()) }

// ToBytes returns the little-endian encoding of the raw pattern.
func (x Fixed[I, F]) ToBytes() []byte { return width.PutBytes(int64(x.v), x.Bits()) }

// FromBytes decodes exactly ceil((I+F)/8) little-endian bytes; any other
// length is a fixedpoint.ErrFormat.
func FromBytes[I, F width.Bits](b []byte) (Fixed[I, F], error) {
	n, _ := layout[I, F]()
	if len(b) != width.ByteCount(n) {
		return Fixed[I, F]{}, fmt.Errorf("FromBytes: need exactly %d bytes, got %d: %w", width.ByteCount(n), len(b), fixedpoint.ErrFormat)
	}

	return Fixed[I, F]{v: width.SignExtend(int32(width.ReadBytes(b, n)), n)}, nil
}

// GetByte returns byte i of the little-endian encoding.
func (x Fixed[I, F]) GetByte(i int) (byte, error) {
	if err := width.ValidateByteIndex("GetByte", i, x.Bits()); err != nil {
		return 0, err
	}

	return width.ByteAt(int64(x.v), x.Bits(), i), nil
}

// SetByte returns x with byte i of its little-endian encoding replaced by b.
func (x Fixed[I, F]) SetByte(i int, b byte) (Fixed[I, F], error) {
	if err := width.ValidateByteIndex("SetByte", i, x.Bits()); err != nil {
		return Fixed[I, F]{}, err
	}

	return wrapFixed[I, F](int64(width.WithByte(int64(x.v), x.Bits(), i, b))), nil
}

// ReplaceByte returns x with byte i replaced by b, and the previous byte.
func (x Fixed[I, F]) ReplaceByte(i int, b byte) (Fixed[I, F], byte, error) {
	old, err := x.GetByte(i)
	if err != nil {
		return Fixed[I, F]{}, 0, err
	}
	y, err := x.SetByte(i, b)

	return y, old, err
}

// String returns the shortest decimal that reads back to the same value.
// raw/2^F is exactly representable as a float64, so the text is exact.
func (x Fixed[I, F]) String() string { return strconv.FormatFloat(x.Float64(), 'f', -1, 64) }

// Hex returns the raw pattern as "0x…".
func (x Fixed[I, F]) Hex() string { return width.FormatHex(int64(x.v), x.Bits()) }

// isRawLiteral reports whether s (after an optional sign) has a 0x or 0b
// prefix, i.e. spells a raw pattern rather than a value.
func isRawLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")

	return len(s) >= 2 && s[0] == '0' && (s[1]|0x20 == 'x' || s[1]|0x20 == 'b')
}

// parseValue reads a finite decimal value for FromFloat64 semantics.
func parseValue(op, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%s: %q is not a finite decimal: %w", op, s, fixedpoint.ErrFormat)
	}

	return v, nil
}

// Parse reads a decimal value ("1.5", "-0.25", "3") rounded like
// FromFloat64, or a raw pattern with a 0x/0b prefix ("0x180" is 1.5 in Q8.8).
func Parse[I, F width.Bits](s string) (Fixed[I, F], error) {
	n, _ := layout[I, F]()
	if isRawLiteral(s) {
		raw, err := width.ParseRaw(s, n, true)
		if err != nil {
			return Fixed[I, F]{}, err
		}

		return Fixed[I, F]{v: int32(raw)}, nil
	}
	v, err := parseValue("Parse", s)
	if err != nil {
		return Fixed[I, F]{}, err
	}

	return FromFloat64[I, F](v), nil
}

// TryParse is Parse reporting failure as a flag.
func TryParse[I, F width.Bits](s string) (Fixed[I, F], bool) {
	x, err := Parse[I, F](s)

	return x, err == nil
}

// MarshalJSON encodes the raw value as a decimal string, e.g. "384".
func (x Fixed[I, F]) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(x.v), 10))
}

// UnmarshalJSON reads a raw value: a string holding a decimal, hex or
// binary literal, or a bare JSON integer.
func (x *Fixed[I, F]) UnmarshalJSON(data []byte) error {
	s, err := width.JSONLiteral("Fixed.UnmarshalJSON", data)
	if err != nil {
		return err
	}
	n, _ := layout[I, F]()
	raw, err := width.ParseRaw(s, n, true)
	if err != nil {
		return err
	}
	x.v = int32(raw)

	return nil
}

// ToJSON returns the compact JSON form.
func (x Fixed[I, F]) ToJSON() ([]byte, error) { return json.Marshal(x) }

// FromJSON decodes the compact form.
func FromJSON[I, F width.Bits](data []byte) (Fixed[I, F], error) {
	var x Fixed[I, F]
	if err := json.Unmarshal(data, &x); err != nil {
		return Fixed[I, F]{}, jsonError("FromJSON", err)
	}

	return x, nil
}

// ToJSONWithMeta encodes {"intBits":I,"fracBits":F,"raw":R}.
func (x Fixed[I, F]) ToJSONWithMeta() ([]byte, error) {
	return encodeMeta(x.IntBits(), x.FracBits(), true, int64(x.v))
}

// FromJSONWithMeta decodes a self-describing document, which must describe
// exactly Q(I).(F) signed.
func FromJSONWithMeta[I, F width.Bits](data []byte) (Fixed[I, F], error) {
	layout[I, F]()
	raw, err := decodeMeta("FromJSONWithMeta", data, width.Of[I](), width.Of[F](), true)
	if err != nil {
		return Fixed[I, F]{}, err
	}

	return Fixed[I, F]{v: int32(raw)}, nil
}

func jsonError(op string, err error) error {
	if errors.Is(err, fixedpoint.ErrFormat) {
		return err
	}

	return fmt.Errorf("%s: %v: %w", op, err, fixedpoint.ErrFormat)
}
