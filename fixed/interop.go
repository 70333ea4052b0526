// SPDX-License-Identifier: MIT
// Package fixed: golang.org/x/image/math/fixed interop.
//
// Int26_6 and Int52_12 are the fixed-point types of the x/image font and
// vector rasterizers. Conversions rescale the raw value by a shift (right
// shifts floor, no rounding) and wrap into the target register.

package fixed

import (
	xfixed "golang.org/x/image/math/fixed"

	"github.com/katalvlaran/fixedpoint/width"
)

const (
	frac26_6  = 6
	frac52_12 = 12
)

// Int26_6 converts x to a 26.6 value; bits beyond 32 are dropped.
func (x Fixed[I, F]) Int26_6() xfixed.Int26_6 {
	_, f := layout[I, F]()

	return xfixed.Int26_6(int32(rescale(int64(x.v), f, frac26_6)))
}

// Int52_12 converts x to a 52.12 value. Every Q(I).(F) value fits.
func (x Fixed[I, F]) Int52_12() xfixed.Int52_12 {
	_, f := layout[I, F]()

	return xfixed.Int52_12(rescale(int64(x.v), f, frac52_12))
}

// FromInt26_6 converts a 26.6 value, wrapping into Q(I).(F).
func FromInt26_6[I, F width.Bits](v xfixed.Int26_6) Fixed[I, F] {
	_, f := layout[I, F]()

	return wrapFixed[I, F](rescale(int64(v), frac26_6, f))
}

// FromInt52_12 converts a 52.12 value, wrapping into Q(I).(F).
func FromInt52_12[I, F width.Bits](v xfixed.Int52_12) Fixed[I, F] {
	_, f := layout[I, F]()

	return wrapFixed[I, F](rescale(int64(v), frac52_12, f))
}

// Point26_6 converts the vector (x, y) to an x/image point.
func Point26_6[I, F width.Bits](x, y Fixed[I, F]) xfixed.Point26_6 {
	return xfixed.Point26_6{X: x.Int26_6(), Y: y.Int26_6()}
}
