// SPDX-License-Identifier: MIT

package intn

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/width"
)

// ByteCount returns ceil(N/8), the length of ToBytes.
func (x Uint[W]) ByteCount() int { return width.ByteCount(x.bits()) }

// ToBytes returns the little-endian encoding in ByteCount bytes.
func (x Uint[W]) ToBytes() []byte { return width.PutBytes(int64(x.v), x.bits()) }

// UintFromBytes decodes the first ceil(N/8) bytes of b (little-endian).
// Shorter slices fail with fixedpoint.ErrFormat.
func UintFromBytes[W width.Bits](b []byte) (Uint[W], error) {
	n := width.Of[W]()
	if len(b) < width.ByteCount(n) {
		return Uint[W]{}, fmt.Errorf("UintFromBytes: need at least %d bytes, got %d: %w", width.ByteCount(n), len(b), fixedpoint.ErrFormat)
	}

	return Uint[W]{v: width.ReadBytes(b, n)}, nil
}

// GetByte returns byte i of the little-endian encoding.
func (x Uint[W]) GetByte(i int) (byte, error) {
	if err := width.ValidateByteIndex("GetByte", i, x.bits()); err != nil {
		return 0, err
	}

	return width.ByteAt(int64(x.v), x.bits(), i), nil
}

// SetByte returns x with byte i of its little-endian encoding replaced by b.
func (x Uint[W]) SetByte(i int, b byte) (Uint[W], error) {
	if err := width.ValidateByteIndex("SetByte", i, x.bits()); err != nil {
		return Uint[W]{}, err
	}

	return Uint[W]{v: width.WithByte(int64(x.v), x.bits(), i, b)}, nil
}

// ReplaceByte returns x with byte i replaced by b, and the previous byte.
func (x Uint[W]) ReplaceByte(i int, b byte) (Uint[W], byte, error) {
	old, err := x.GetByte(i)
	if err != nil {
		return Uint[W]{}, 0, err
	}
	y, err := x.SetByte(i, b)

	return y, old, err
}

// MarshalJSON encodes the raw value as a JSON string.
func (x Uint[W]) MarshalJSON() ([]byte, error) { return json.Marshal(x.String()) }

// UnmarshalJSON accepts a JSON string (decimal, 0x or 0b) or a bare integer.
func (x *Uint[W]) UnmarshalJSON(data []byte) error {
	s, err := width.JSONLiteral("Uint.UnmarshalJSON", data)
	if err != nil {
		return err
	}
	v, err := ParseUint[W](s)
	if err != nil {
		return err
	}
	*x = v

	return nil
}

// ToJSON returns the compact JSON form.
func (x Uint[W]) ToJSON() ([]byte, error) { return json.Marshal(x) }

// UintFromJSON decodes a compact JSON value into a Uint[W].
func UintFromJSON[W width.Bits](data []byte) (Uint[W], error) {
	var x Uint[W]
	if err := json.Unmarshal(data, &x); err != nil {
		return Uint[W]{}, jsonError("UintFromJSON", err)
	}

	return x, nil
}
