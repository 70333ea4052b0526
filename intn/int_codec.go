// SPDX-License-Identifier: MIT

package intn

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/width"
)

// ByteCount returns ceil(N/8).
func (x Int[W]) ByteCount() int { return width.ByteCount(x.bits()) }

// ToBytes returns the little-endian encoding of the N-bit pattern.
func (x Int[W]) ToBytes() []byte { return width.PutBytes(int64(x.v), x.bits()) }

// FromBytes decodes the first ceil(N/8) bytes of b (little-endian). Longer
// slices are accepted; shorter ones fail with fixedpoint.ErrFormat.
func FromBytes[W width.Bits](b []byte) (Int[W], error) {
	n := width.Of[W]()
	if len(b) < width.ByteCount(n) {
		return Int[W]{}, fmt.Errorf("FromBytes: need at least %d bytes, got %d: %w", width.ByteCount(n), len(b), fixedpoint.ErrFormat)
	}

	return fromPattern[W](width.ReadBytes(b, n)), nil
}

// GetByte returns byte i of the little-endian encoding.
func (x Int[W]) GetByte(i int) (byte, error) {
	if err := width.ValidateByteIndex("GetByte", i, x.bits()); err != nil {
		return 0, err
	}

	return width.ByteAt(int64(x.v), x.bits(), i), nil
}

// SetByte returns x with byte i replaced by b; bits above N are dropped.
func (x Int[W]) SetByte(i int, b byte) (Int[W], error) {
	if err := width.ValidateByteIndex("SetByte", i, x.bits()); err != nil {
		return Int[W]{}, err
	}

	return fromPattern[W](width.WithByte(int64(x.v), x.bits(), i, b)), nil
}

// ReplaceByte is SetByte that also returns the byte it replaced.
func (x Int[W]) ReplaceByte(i int, b byte) (Int[W], byte, error) {
	old, err := x.GetByte(i)
	if err != nil {
		return Int[W]{}, 0, err
	}
	y, err := x.SetByte(i, b)

	return y, old, err
}

// MarshalJSON encodes the value as a decimal string, e.g. "-56".
func (x Int[W]) MarshalJSON() ([]byte, error) { return json.Marshal(x.String()) }

// UnmarshalJSON accepts a string holding a decimal, hex or binary literal,
// or a bare JSON integer.
func (x *Int[W]) UnmarshalJSON(data []byte) error {
	s, err := width.JSONLiteral("Int.UnmarshalJSON", data)
	if err != nil {
		return err
	}
	v, err := Parse[W](s)
	if err != nil {
		return err
	}
	*x = v

	return nil
}

// ToJSON returns the compact JSON encoding of x.
func (x Int[W]) ToJSON() ([]byte, error) { return json.Marshal(x) }

// FromJSON decodes a compact JSON value into an Int[W].
func FromJSON[W width.Bits](data []byte) (Int[W], error) {
	var x Int[W]
	if err := json.Unmarshal(data, &x); err != nil {
		return Int[W]{}, jsonError("FromJSON", err)
	}

	return x, nil
}

// jsonError makes sure a decoding failure matches fixedpoint.ErrFormat.
func jsonError(op string, err error) error {
	if errors.Is(err, fixedpoint.ErrFormat) {
		return err
	}

	return fmt.Errorf("%s: %v: %w", op, err, fixedpoint.ErrFormat)
}
