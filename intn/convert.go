// SPDX-License-Identifier: MIT

package intn

import "github.com/katalvlaran/fixedpoint/width"

// Resize converts between signed widths: widening sign-extends, narrowing
// wraps.
func Resize[To, From width.Bits](x Int[From]) Int[To] { return New[To](x.v) }

// ResizeUint converts between unsigned widths: widening zero-extends,
// narrowing truncates.
func ResizeUint[To, From width.Bits](x Uint[From]) Uint[To] { return NewUint[To](x.v) }

// AsUint reinterprets the N-bit pattern of x as unsigned.
func (x Int[W]) AsUint() Uint[W] { return Uint[W]{v: x.pattern()} }

// AsInt reinterprets the N-bit pattern of x as signed.
func (x Uint[W]) AsInt() Int[W] { return fromPattern[W](x.v) }
