// Package fixed provides Q-format fixed-point numbers of up to 32 raw bits.
//
// Fixed[I, F] is a signed Q(I).(F) number: I integer bits (sign bit
// included) and F fractional bits, stored as an (I+F)-bit two's-complement
// register. UFixed[I, F] is its unsigned counterpart. The value is
// raw / 2^F:
//
//	x := fixed.FromFloat64[width.W8, width.W8](1.5) // Q8.8, x.Raw() == 384
//	y := fixed.One[width.W16, width.W16]()          // Q16.16, y.Raw() == 65536
//
// I+F must not exceed 32. The Go type system cannot express that bound, so
// the first use of an oversized instantiation panics with
// fixedpoint.ErrNotSupported.
//
// 🚀 Arithmetic
//
//   - Add/Sub wrap. Mul widens to 64 bits, shifts right by F (truncating
//     toward -∞) and wraps. Div pre-shifts the numerator by F.
//   - Floor rounds toward -∞, Round half away from zero, Trunc toward zero.
//     Ceil of a negative value behaves like Floor.
//   - Saturating ops and the Clamp family clamp against MinValue/MaxValue.
//
// ✨ Codecs
//
//	Little-endian bytes (FromBytes wants exactly ceil((I+F)/8) bytes),
//	decimal strings, compact JSON (the raw value as a string) and the
//	self-describing {"intBits":I,"fracBits":F,"raw":R} form, which is
//	checked against the target type on decode.
//
// 📐 Math
//
//	Sin/Cos/Tan take radians, Asin/Acos/Atan/Atan2 return radians, and
//	Sqrt/Exp2/Exp/Log2/Log stay in the same Q-format. See package fxmath.
//
// Int26_6/Int52_12 convert to golang.org/x/image/math/fixed for font and
// rasterizer code.
package fixed
