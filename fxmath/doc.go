// Package fxmath is the table-driven transcendental engine: sin, cos, tan,
// asin, acos, atan, atan2, sqrt, exp2, exp, log2 and log without any floating
// point in the computational path.
//
// 🚀 How it works
//
//	Every entry point takes a runtime Format describing the caller's storage
//	(total bits, fractional bits, signedness, angle unit) and a raw value.
//	Inputs are rescaled into a common Q16.16 intermediate, evaluated against
//	the lut tables, and rescaled back to the caller's units. One table set
//	serves every instantiation of intn and fixed.
//
// ✨ Fidelity modes
//
//   - Sin/Cos/Tan: angles of at most 14 bits use a direct scaled table index
//     ("retro" mode, reproducing low-resolution hardware quantization);
//     wider angles use a Q16.16 index and Catmull-Rom interpolation.
//   - Tan splits further into four buckets: 2-bit, 3..13-bit direct,
//     14-bit dedicated and ≥15-bit spline, each with its own output rounding.
//   - Asin/Acos: inputs of at most 6 bits use nearest-neighbour lookup;
//     otherwise Catmull-Rom, with |x| ≥ sin 75° served by a denser tail table.
//   - Exp2/Exp/Log2/Log are deliberate first-order approximations; their
//     results are a bit-exact contract, not an approximation of math.Exp.
//
// Angle units: integer formats use binary angles (1<<Bits is a full turn),
// fixed formats use radians. Angle functions require an angle resolution in
// [2,31] and return fixedpoint.ErrNotSupported otherwise.
//
// All functions are pure and safe for concurrent use.
package fxmath
