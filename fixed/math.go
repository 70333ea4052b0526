// SPDX-License-Identifier: MIT
// Package fixed: transcendental wrappers.
//
// Pure delegation to fxmath plus a wrap back into the register. Angles are
// radians in the receiver's own Q-format; the angle resolution used by the
// engine is min(I+F, 31) and must be at least 2.

package fixed

import "github.com/katalvlaran/fixedpoint/fxmath"

type engineFn = func(fxmath.Format, int64) (int64, error)
type scalarFn = func(fxmath.Format, int64) int64

func (x Fixed[I, F]) format() fxmath.Format {
	n, f := layout[I, F]()

	return fxmath.FixedFormat(n-f, f, true)
}

func (x Fixed[I, F]) trig(fn engineFn) (Fixed[I, F], error) {
	r, err := fn(x.format(), int64(x.v))
	if err != nil {
		return Fixed[I, F]{}, err
	}

	return wrapFixed[I, F](r), nil
}

// Sin returns sin(x) for x in radians.
func (x Fixed[I, F]) Sin() (Fixed[I, F], error) { return x.trig(fxmath.Sin) }

// Cos returns cos(x) for x in radians.
func (x Fixed[I, F]) Cos() (Fixed[I, F], error) { return x.trig(fxmath.Cos) }

// Tan returns tan(x), saturated to the register's range.
func (x Fixed[I, F]) Tan() (Fixed[I, F], error) { return x.trig(fxmath.Tan) }

// Asin returns asin(x) in radians; |x| > 1 is clamped.
func (x Fixed[I, F]) Asin() (Fixed[I, F], error) { return x.trig(fxmath.Asin) }

// Acos returns acos(x) in radians, clamped to [0, MaxValue].
func (x Fixed[I, F]) Acos() (Fixed[I, F], error) { return x.trig(fxmath.Acos) }

// Atan returns atan(x) in radians.
func (x Fixed[I, F]) Atan() (Fixed[I, F], error) { return x.trig(fxmath.Atan) }

// Atan2 returns the angle of the vector (x, y) in [-π, π], where y is the
// receiver.
func (y Fixed[I, F]) Atan2(x Fixed[I, F]) (Fixed[I, F], error) {
	r, err := fxmath.Atan2(y.format(), int64(y.v), int64(x.v))
	if err != nil {
		return Fixed[I, F]{}, err
	}

	return wrapFixed[I, F](r), nil
}

func (x Fixed[I, F]) scalar(fn scalarFn) Fixed[I, F] {
	return wrapFixed[I, F](fn(x.format(), int64(x.v)))
}

// Sqrt returns sqrt(|x|).
func (x Fixed[I, F]) Sqrt() Fixed[I, F] { return x.scalar(fxmath.Sqrt) }

// Exp2 returns 2^x, saturating at MaxValue.
func (x Fixed[I, F]) Exp2() Fixed[I, F] { return x.scalar(fxmath.Exp2) }

// Exp returns e^x, saturating at MaxValue.
func (x Fixed[I, F]) Exp() Fixed[I, F] { return x.scalar(fxmath.Exp) }

// Log2 returns log2(x); MinValue for x <= 0.
func (x Fixed[I, F]) Log2() Fixed[I, F] { return x.scalar(fxmath.Log2) }

// Log returns ln(x); MinValue for x <= 0.
func (x Fixed[I, F]) Log() Fixed[I, F] { return x.scalar(fxmath.Log) }

func (x UFixed[I, F]) format() fxmath.Format {
	n, f := layout[I, F]()

	return fxmath.FixedFormat(n-f, f, false)
}

func (x UFixed[I, F]) trig(fn engineFn) (UFixed[I, F], error) {
	r, err := fn(x.format(), int64(x.v))
	if err != nil {
		return UFixed[I, F]{}, err
	}

	return wrapUFixed[I, F](r), nil
}

// Sin returns sin(x); negative results come back as their raw pattern.
func (x UFixed[I, F]) Sin() (UFixed[I, F], error) { return x.trig(fxmath.Sin) }

// Cos returns cos(x) for x in radians.
func (x UFixed[I, F]) Cos() (UFixed[I, F], error) { return x.trig(fxmath.Cos) }

// Tan returns tan(x), saturated to the register range.
func (x UFixed[I, F]) Tan() (UFixed[I, F], error) { return x.trig(fxmath.Tan) }

// Asin returns asin(x) in radians; x > 1 is clamped.
func (x UFixed[I, F]) Asin() (UFixed[I, F], error) { return x.trig(fxmath.Asin) }

// Acos returns acos(x) in radians.
func (x UFixed[I, F]) Acos() (UFixed[I, F], error) { return x.trig(fxmath.Acos) }

// Atan returns atan(x) in radians.
func (x UFixed[I, F]) Atan() (UFixed[I, F], error) { return x.trig(fxmath.Atan) }

// Atan2 returns the angle of the vector (x, y) in [0, 2π).
func (y UFixed[I, F]) Atan2(x UFixed[I, F]) (UFixed[I, F], error) {
	r, err := fxmath.Atan2(y.format(), int64(y.v), int64(x.v))
	if err != nil {
		return UFixed[I, F]{}, err
	}

	return wrapUFixed[I, F](r), nil
}

func (x UFixed[I, F]) scalar(fn scalarFn) UFixed[I, F] {
	return wrapUFixed[I, F](fn(x.format(), int64(x.v)))
}

// Sqrt returns sqrt(x).
func (x UFixed[I, F]) Sqrt() UFixed[I, F] { return x.scalar(fxmath.Sqrt) }

// Exp2 returns 2^x, saturating at the maximum.
func (x UFixed[I, F]) Exp2() UFixed[I, F] { return x.scalar(fxmath.Exp2) }

// Exp returns e^x, saturating at the maximum.
func (x UFixed[I, F]) Exp() UFixed[I, F] { return x.scalar(fxmath.Exp) }

// Log2 returns log2(x); 0 for x == 0. Negative results for x < 1 come
// back as their raw pattern.
func (x UFixed[I, F]) Log2() UFixed[I, F] { return x.scalar(fxmath.Log2) }

// Log returns ln(x); 0 for x == 0. Negative results for x < 1 come back
// as their raw pattern.
func (x UFixed[I, F]) Log() UFixed[I, F] { return x.scalar(fxmath.Log) }
