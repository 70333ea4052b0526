// Package intn provides fixed-width two's-complement integers of any width
// from 0 to 32 bits.
//
// Int[W] is a signed N-bit register and Uint[W] an unsigned one, where W is
// one of the width markers width.W0 … width.W32:
//
//	var a = intn.From[width.W8](200)    // a.Raw() == -56
//	var b = intn.UintFrom[width.W8](300) // b.Raw() == 44
//
// 🚀 Semantics
//
//   - Every constructor and operation wraps its result to N bits exactly like
//     an N-bit hardware register; overflow is intentional and never an error.
//   - AddSat, SubSat and MulSat widen to 64 bits and clamp instead.
//   - Shifts, bit and byte accessors validate their index and return a
//     wrapped fixedpoint.ErrRange outside the domain; Div and Mod return
//     fixedpoint.ErrDivisionByZero; Parse returns fixedpoint.ErrFormat.
//   - Bit scans (PopCount, LeadingZeros, Bsr, …) look at exactly N bits.
//
// ✨ Math
//
//	Sin/Cos/Tan take binary angles (1<<N is one full turn) and return ratios
//	in Q(N-2), so 1.0 is exactly representable. Asin/Acos/Atan/Atan2 take
//	Q(N-2) ratios and return binary angles. Sqrt/Exp2/Exp/Log2/Log treat the
//	register as a plain integer. See package fxmath for the engine.
//
// Values are immutable and safe to share between goroutines.
package intn
