// SPDX-License-Identifier: MIT

package fixed

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/width"
)

// ByteCount returns ceil(N/8), the length of ToBytes.
func (x UFixed[I, F]) ByteCount() int { return width.ByteCount(x.Bits()) }

// ToBytes returns the little-endian encoding in ByteCount bytes.
func (x UFixed[I, F]) ToBytes() []byte { return width.PutBytes(int64(x.v), x.Bits()) }

// UFromBytes decodes exactly ceil((I+F)/8) little-endian bytes.
func UFromBytes[I, F width.Bits](b []byte) (UFixed[I, F], error) {
	n, _ := layout[I, F]()
	if len(b) != width.ByteCount(n) {
		return UFixed[I, F]{}, fmt.Errorf("UFromBytes: need exactly %d bytes, got %d: %w", width.ByteCount(n), len(b), fixedpoint.ErrFormat)
	}

	return UFixed[I, F]{v: width.ReadBytes(b, n)}, nil
}

// GetByte returns byte i of the little-endian encoding.
func (x UFixed[I, F]) GetByte(i int) (byte, error) {
	if err := width.ValidateByteIndex("GetByte", i, x.Bits()); err != nil {
		return 0, err
	}

	return width.ByteAt(int64(x.v), x.Bits(), i), nil
}

// SetByte returns x with byte i of its little-endian encoding replaced by b.
func (x UFixed[I, F]) SetByte(i int, b byte) (UFixed[I, F], error) {
	if err := width.ValidateByteIndex("SetByte", i, x.Bits()); err != nil {
		return UFixed[I, F]{}, err
	}

	return UFixed[I, F]{v: width.WithByte(int64(x.v), x.Bits(), i, b)}, nil
}

// ReplaceByte is SetByte that also returns the byte it replaced.
func (x UFixed[I, F]) ReplaceByte(i int, b byte) (UFixed[I, F], byte, error) {
	old, err := x.GetByte(i)
	if err != nil {
		return UFixed[I, F]{}, 0, err
	}
	y, err := x.SetByte(i, b)

	return y, old, err
}

// String returns the shortest decimal that reads back to the same value.
func (x UFixed[I, F]) String() string { return strconv.FormatFloat(x.Float64(), 'f', -1, 64) }

// Hex returns the raw pattern in hexadecimal, zero-padded to N bits.
func (x UFixed[I, F]) Hex() string { return width.FormatHex(int64(x.v), x.Bits()) }

// UParse reads a decimal value or a 0x/0b raw pattern, as Parse does.
func UParse[I, F width.Bits](s string) (UFixed[I, F], error) {
	n, _ := layout[I, F]()
	if isRawLiteral(s) {
		raw, err := width.ParseRaw(s, n, false)
		if err != nil {
			return UFixed[I, F]{}, err
		}

		return UFixed[I, F]{v: uint32(raw)}, nil
	}
	v, err := parseValue("UParse", s)
	if err != nil {
		return UFixed[I, F]{}, err
	}

	return UFromFloat64[I, F](v), nil
}

// UTryParse is UParse that reports failure instead of returning an error.
func UTryParse[I, F width.Bits](s string) (UFixed[I, F], bool) {
	x, err := UParse[I, F](s)

	return x, err == nil
}

// MarshalJSON encodes the raw value as a JSON string.
func (x UFixed[I, F]) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(x.v), 10))
}

// UnmarshalJSON accepts a JSON string (decimal, 0x or 0b) or a bare integer.
func (x *UFixed[I, F]) UnmarshalJSON(data []byte) error {
	s, err := width.JSONLiteral("UFixed.UnmarshalJSON", data)
	if err != nil {
		return err
	}
	n, _ := layout[I, F]()
	raw, err := width.ParseRaw(s, n, false)
	if err != nil {
		return err
	}
	x.v = uint32(raw)

	return nil
}

// ToJSON returns the compact JSON form.
func (x UFixed[I, F]) ToJSON() ([]byte, error) { return json.Marshal(x) }

// UFromJSON decodes the compact JSON form.
func UFromJSON[I, F width.Bits](data []byte) (UFixed[I, F], error) {
	var x UFixed[I, F]
	if err := json.Unmarshal(data, &x); err != nil {
		return UFixed[I, F]{}, jsonError("UFromJSON", err)
	}

	return x, nil
}

// ToJSONWithMeta encodes {"uintBits":I,"fracBits":F,"raw":R}.
func (x UFixed[I, F]) ToJSONWithMeta() ([]byte, error) {
	return encodeMeta(x.IntBits(), x.FracBits(), false, int64(x.v))
}

// UFromJSONWithMeta decodes a self-describing document, which must describe
// exactly Q(I).(F) unsigned.
func UFromJSONWithMeta[I, F width.Bits](data []byte) (UFixed[I, F], error) {
	layout[I, F]()
	raw, err := decodeMeta("UFromJSONWithMeta", data, width.Of[I](), width.Of[F](), false)
	if err != nil {
		return UFixed[I, F]{}, err
	}

	return UFixed[I, F]{v: uint32(raw)}, nil
}
