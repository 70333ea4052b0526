// SPDX-License-Identifier: MIT
// Package intn: transcendental wrappers.
//
// Pure delegation to fxmath plus a wrap back into the register. Angles are
// binary (1<<N is one full turn), ratios are Q(N-2). Angle functions fail
// with fixedpoint.ErrNotSupported unless 2 <= N <= 31.

package intn

import "github.com/katalvlaran/fixedpoint/fxmath"

type engineFn = func(fxmath.Format, int64) (int64, error)
type scalarFn = func(fxmath.Format, int64) int64

func (x Int[W]) trig(fn engineFn) (Int[W], error) {
	r, err := fn(fxmath.IntFormat(x.bits(), true), int64(x.v))
	if err != nil {
		return Int[W]{}, err
	}

	return wrapInt[W](r), nil
}

func (x Int[W]) scalar(fn scalarFn) Int[W] {
	return wrapInt[W](fn(fxmath.ScalarFormat(x.bits(), true), int64(x.v)))
}

// Sin returns sin(x) for a binary angle x, as a Q(N-2) ratio.
func (x Int[W]) Sin() (Int[W], error) { return x.trig(fxmath.Sin) }

// Cos returns cos(x) for a binary angle x, as a Q(N-2) ratio.
func (x Int[W]) Cos() (Int[W], error) { return x.trig(fxmath.Cos) }

// Tan returns tan(x); exactly 90° and 270° yield MaxInt and MinInt.
func (x Int[W]) Tan() (Int[W], error) { return x.trig(fxmath.Tan) }

// Asin returns asin of a Q(N-2) ratio as a binary angle.
func (x Int[W]) Asin() (Int[W], error) { return x.trig(fxmath.Asin) }

// Acos returns acos of a Q(N-2) ratio as a binary angle, clamped to MaxInt.
func (x Int[W]) Acos() (Int[W], error) { return x.trig(fxmath.Acos) }

// Atan returns atan of a Q(N-2) ratio as a binary angle.
func (x Int[W]) Atan() (Int[W], error) { return x.trig(fxmath.Atan) }

// Atan2 returns the binary angle of the vector (x, y) where y is the
// receiver; the half turn wraps to MinInt.
func (y Int[W]) Atan2(x Int[W]) (Int[W], error) {
	r, err := fxmath.Atan2(fxmath.IntFormat(y.bits(), true), int64(y.v), int64(x.v))
	if err != nil {
		return Int[W]{}, err
	}

	return wrapInt[W](r), nil
}

// Sqrt returns floor(sqrt(|x|)).
func (x Int[W]) Sqrt() Int[W] { return x.scalar(fxmath.Sqrt) }

// Exp2 returns 2^x, saturating at MaxInt.
func (x Int[W]) Exp2() Int[W] { return x.scalar(fxmath.Exp2) }

// Exp returns e^x via Exp2(x·log2 e), saturating at MaxInt.
func (x Int[W]) Exp() Int[W] { return x.scalar(fxmath.Exp) }

// Log2 returns floor(log2(x)); MinInt for x <= 0.
func (x Int[W]) Log2() Int[W] { return x.scalar(fxmath.Log2) }

// Log returns ln(x) via Log2; MinInt for x <= 0.
func (x Int[W]) Log() Int[W] { return x.scalar(fxmath.Log) }

func (x Uint[W]) trig(fn engineFn) (Uint[W], error) {
	r, err := fn(fxmath.IntFormat(x.bits(), false), int64(x.v))
	if err != nil {
		return Uint[W]{}, err
	}

	return wrapUint[W](r), nil
}

func (x Uint[W]) scalar(fn scalarFn) Uint[W] {
	return wrapUint[W](fn(fxmath.ScalarFormat(x.bits(), false), int64(x.v)))
}

// Sin returns sin(x) as a Q(N-2) ratio. Negative ratios come back as their
// N-bit two's-complement pattern.
func (x Uint[W]) Sin() (Uint[W], error) { return x.trig(fxmath.Sin) }

// Cos returns cos(x).
func (x Uint[W]) Cos() (Uint[W], error) { return x.trig(fxmath.Cos) }

// Tan returns tan(x), saturated to the register range.
func (x Uint[W]) Tan() (Uint[W], error) { return x.trig(fxmath.Tan) }

// Asin returns asin of a Q(N-2) ratio as a binary angle in [0, 2π).
func (x Uint[W]) Asin() (Uint[W], error) { return x.trig(fxmath.Asin) }

// Acos returns acos(x) = π/2 - asin(x).
func (x Uint[W]) Acos() (Uint[W], error) { return x.trig(fxmath.Acos) }

// Atan returns atan(x).
func (x Uint[W]) Atan() (Uint[W], error) { return x.trig(fxmath.Atan) }

// Atan2 returns the binary angle of the vector (x, y). Both components are
// non-negative, so the result lies in the first quadrant.
func (y Uint[W]) Atan2(x Uint[W]) (Uint[W], error) {
	r, err := fxmath.Atan2(fxmath.IntFormat(y.bits(), false), int64(y.v), int64(x.v))
	if err != nil {
		return Uint[W]{}, err
	}

	return wrapUint[W](r), nil
}

// Sqrt returns the integer square root.
func (x Uint[W]) Sqrt() Uint[W] { return x.scalar(fxmath.Sqrt) }

// Exp2 returns 2^x, saturating at the maximum.
func (x Uint[W]) Exp2() Uint[W] { return x.scalar(fxmath.Exp2) }

// Exp returns e^x, saturating at the maximum.
func (x Uint[W]) Exp() Uint[W] { return x.scalar(fxmath.Exp) }

// Log2 returns floor(log2(x)); 0 for x == 0.
func (x Uint[W]) Log2() Uint[W] { return x.scalar(fxmath.Log2) }

// Log returns ln(x); zero input gives the minimum.
func (x Uint[W]) Log() Uint[W] { return x.scalar(fxmath.Log) }
