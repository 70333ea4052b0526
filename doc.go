// SPDX-License-Identifier: MIT

// Package fixedpoint is a deterministic fixed-point numeric core: arbitrary
// bit-width integers, Q-format fixed-point numbers and a table-driven
// transcendental engine, with no floating point in the computational path.
//
// 🚀 What is fixedpoint?
//
//	A pure-Go, dependency-light library that reproduces the wraparound and
//	rounding behavior of real N-bit hardware registers for any N in [0,32]:
//		• width/        width tables (masks, signed/unsigned bounds) + kernels
//		• intn/         Int[W] / Uint[W]: N-bit integers with wrap, saturation,
//		                bit manipulation and byte/string/JSON codecs
//		• fixed/        Fixed[I,F] / UFixed[I,F]: Q-format numbers on top of
//		                the integer kernels
//		• lut/          Q16.16 lookup tables and Catmull-Rom interpolation
//		• fxmath/       sin/cos/tan/asin/acos/atan/atan2/sqrt/exp/log engine
//		• conformance/  cross-platform determinism digests
//
// ✨ Why fixedpoint?
//
//   - Bit-for-bit reproducible results across platforms and compilers
//   - Retro-faithful low-resolution trig (≤14-bit angles use direct table
//     lookups) next to spline-interpolated high-resolution trig
//   - Immutable values: every operation returns a new value, so any number
//     of goroutines may share them without locks
//
// Widths are type parameters drawn from the sealed set width.W0 … width.W32:
//
//	x := intn.New[width.W8](200)   // raw == -56 (wraps like an 8-bit register)
//	q := fixed.FromFloat64[width.W8, width.W8](1.5)
//	fmt.Println(q.Raw())           // 384
//
// Errors are returned as wrapped sentinels (ErrDivisionByZero, ErrRange,
// ErrFormat, ErrNotSupported); match them with errors.Is.
package fixedpoint
