// SPDX-License-Identifier: MIT

package lut

import (
	"fmt"

	"github.com/katalvlaran/fixedpoint"
)

//go:generate go run ../cmd/lutgen -o tables_gen.go

// Table shapes.
const (
	// Size is the number of entries in each quarter-wave table.
	Size = 4096

	// IndexMask is the largest index of a quarter-wave table (Size-1).
	IndexMask = Size - 1

	// TailSize is the number of real samples in the asin tail table.
	TailSize = 2048
)

// Q16.16 constants shared by the engine.
const (
	// FracBits is the number of fractional bits of every table entry.
	FracBits = 16

	// One is 1.0 in Q16.16.
	One = 1 << FracBits

	// HalfPi is round(π/2 · 2^16).
	HalfPi = 102944

	// Pi is round(π · 2^16).
	Pi = 205887

	// QuarterPi is round(π/4 · 2^16), the last entry of the atan table.
	QuarterPi = 51472

	// TwoPi is round(2π · 2^16).
	TwoPi = 411775

	// InvTwoPiQ32 is round(2^32 / 2π): radians in Q16.16 times this constant
	// gives turns in Q48.
	InvTwoPiQ32 = 683565276

	// TailStart is round(sin 75° · 2^16); |x| at or above it is served by the
	// asin tail table.
	TailStart = 63303

	// Ln2Q32 is round(ln 2 · 2^32).
	Ln2Q32 = 2977044472

	// Log2EQ30 is round(log2(e) · 2^30).
	Log2EQ30 = 1549082005

	// Ln2Q24 is round(ln 2 · 2^24).
	Ln2Q24 = 11629080
)

// Table is a read-only view of one lookup table.
type Table struct {
	name string
	data []int32
}

// The committed tables.
var (
	Sin      = Table{name: "sin", data: sinData[:]}
	Tan      = Table{name: "tan", data: tanData[:]}
	Atan     = Table{name: "atan", data: atanData[:]}
	Asin     = Table{name: "asin", data: asinData[:]}
	AsinTail = Table{name: "asin-tail", data: asinTailData[:]}
)

// Name returns the table's short name.
func (t Table) Name() string { return t.name }

// Len returns the number of stored entries (padding included).
func (t Table) Len() int { return len(t.data) }

// At returns entry i, clamping i to the table bounds.
func (t Table) At(i int) int64 {
	if i < 0 {
		i = 0
	}
	if i >= len(t.data) {
		i = len(t.data) - 1
	}

	return int64(t.data[i])
}

// Spline evaluates the Catmull-Rom spline between entries i and i+1 at the
// Q16 fraction frac ∈ [0, 2^16). Neighbours outside the table are clamped
// to the edge entries.
func (t Table) Spline(i int, frac int64) int64 {
	return CatmullRom(t.At(i-1), t.At(i), t.At(i+1), t.At(i+2), frac)
}

// CatmullRom interpolates between p1 and p2 with the uniform Catmull-Rom
// cubic at Q16 parameter t. All steps are arithmetic shifts (floor), so the
// result is bit-exact on every platform. t == 0 returns p1 exactly.
//
//	v = p1 + ½·(c·t + b·t² + a·t³)
//	a = -p0 + 3p1 - 3p2 + p3
//	b = 2p0 - 5p1 + 4p2 - p3
//	c = p2 - p0
func CatmullRom(p0, p1, p2, p3, t int64) int64 {
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2*p0 - 5*p1 + 4*p2 - p3
	c := p2 - p0

	h := ((a*t)>>FracBits + b) * t >> FracBits
	h = (h + c) * t >> FracBits

	return p1 + h>>1
}

// Validate checks the shape and monotonicity of every table and logs the
// outcome through fixedpoint.Logger. It returns a wrapped
// fixedpoint.ErrFormat describing the first violation.
func Validate() error {
	log := fixedpoint.Logger()
	checks := []struct {
		t     Table
		size  int
		first int64
		last  int64
	}{
		{Sin, Size, 0, One},
		{Tan, Size, 0, int64(tanData[IndexMask])},
		{Atan, Size, 0, QuarterPi},
		{Asin, Size, -HalfPi, HalfPi},
		{AsinTail, TailSize + 2, int64(asinTailData[0]), int64(asinTailData[TailSize+1])},
	}
	for _, c := range checks {
		if c.t.Len() != c.size {
			err := fmt.Errorf("Validate: %s: %d entries, want %d: %w", c.t.name, c.t.Len(), c.size, fixedpoint.ErrFormat)
			log.Warn("lut validation failed", "table", c.t.name, "err", err)
			return err
		}
		if c.t.At(0) != c.first || c.t.At(c.size-1) != c.last {
			err := fmt.Errorf("Validate: %s: endpoints %d..%d, want %d..%d: %w",
				c.t.name, c.t.At(0), c.t.At(c.size-1), c.first, c.last, fixedpoint.ErrFormat)
			log.Warn("lut validation failed", "table", c.t.name, "err", err)
			return err
		}
		for i := 1; i < c.size; i++ {
			if c.t.At(i) < c.t.At(i-1) {
				err := fmt.Errorf("Validate: %s: not monotone at %d: %w", c.t.name, i, fixedpoint.ErrFormat)
				log.Warn("lut validation failed", "table", c.t.name, "err", err)
				return err
			}
		}
		log.Debug("lut table ok", "table", c.t.name, "entries", c.size)
	}

	return nil
}
