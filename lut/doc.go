// Package lut provides the Q16.16 lookup tables and the integer Catmull-Rom
// spline used by the transcendental engine.
//
// Tables (one quarter wave or one monotone branch each, 2^16 == 1.0):
//
//	Sin       4096 entries over [0, π/2], both ends inclusive
//	Tan       4096 entries over [0, π/2), the asymptote is excluded
//	Atan      4096 entries over ratios [0, 1]
//	Asin      4096 entries over [-1, 1]
//	AsinTail  2048 samples over |x| ∈ [sin 75°, 1] plus one padding sample
//	          on each side, so spline access near the ends never leaves
//	          the table
//
// The data is generated offline by internal/lutgen and committed; its shape is
// part of the contract. Tables are read-only values: Table exposes reads only.
package lut
