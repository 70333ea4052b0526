// Package width holds the process-wide width tables and the runtime kernels
// that every N-bit type in this module is built on.
//
// The tables (Mask, SignedMin, SignedMax, UnsignedMax, SignBit) are indexed
// by bit width 0..32, computed once during package initialization and never
// mutated afterwards, so concurrent readers need no synchronization.
//
// Kernels:
//
//   - SignExtend / WrapUnsigned / Wrap: two's-complement register wraparound.
//   - SignedFromFloat / UnsignedFromFloat: narrowing casts toward zero with the
//     documented NaN/±Inf edge mappings.
//   - ParseRaw / FormatHex / FormatBinary / PutBytes / ReadBytes: the string and
//     byte codecs shared by intn and fixed.
//
// Bit widths used as type parameters come from the sealed set W0 … W32; the
// Bits constraint cannot be satisfied by any other type, which bounds every
// generic instantiation to 0 ≤ N ≤ 32 at compile time.
package width
