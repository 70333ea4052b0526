// SPDX-License-Identifier: MIT
// Package fixed: raw layout and rounding kernels.
//
// The kernels work on 64-bit raw values with f fractional bits and are
// shared by the signed and unsigned families; callers wrap the result into
// their register.

package fixed

import (
	"fmt"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/width"
)

// layout returns the storage width I+F and the fractional bits F.
// It panics if I+F exceeds 32 bits: such a type cannot exist.
func layout[I, F width.Bits]() (n, f uint) {
	i, f := width.Of[I](), width.Of[F]()
	if i+f > width.MaxBits {
		panic(fmt.Errorf("fixed: Q%d.%d needs %d bits: %w", i, f, i+f, fixedpoint.ErrNotSupported))
	}

	return i + f, f
}

// fracMask is 2^f - 1.
func fracMask(f uint) int64 { return int64(1)<<f - 1 }

func floorRaw(v int64, f uint) int64 { return v &^ fracMask(f) }

// ceilRaw adds the rounding term only for non-negative v.
func ceilRaw(v int64, f uint) int64 {
	if v < 0 {
		return floorRaw(v, f)
	}

	return (v + fracMask(f)) &^ fracMask(f)
}

// roundRaw adds half for v >= 0 and subtracts it for v < 0, then
// floor-masks. Negative values land on floor(x - 0.5): ties move away from
// zero and -1.25 becomes -2.
func roundRaw(v int64, f uint) int64 {
	if f == 0 {
		return v
	}
	half := int64(1) << (f - 1)
	if v < 0 {
		return (v - half) &^ fracMask(f)
	}

	return (v + half) &^ fracMask(f)
}

// truncRaw rounds toward zero.
func truncRaw(v int64, f uint) int64 {
	if v < 0 {
		return -((-v) &^ fracMask(f))
	}

	return v &^ fracMask(f)
}

// rescale converts a raw value from f1 to f2 fractional bits: right shifts
// floor, left shifts are exact.
func rescale(v int64, f1, f2 uint) int64 {
	if f1 >= f2 {
		return v >> (f1 - f2)
	}

	return v << (f2 - f1)
}

// scaleOf is 2^f as a float64 (exact for f <= 32).
func scaleOf(f uint) float64 { return float64(uint64(1) << f) }
