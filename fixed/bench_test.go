// SPDX-License-Identifier: MIT

package fixed_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fixedpoint/fixed"
	"github.com/katalvlaran/fixedpoint/width"
)

var (
	sinkQ16 q16_16
	sinkErr error
)

// randomQ16 returns n raw Q16.16 values from a fixed seed.
func randomQ16(n int, seed int64) []q16_16 {
	r := rand.New(rand.NewSource(seed))
	out := make([]q16_16, n)
	for i := range out {
		out[i] = fixed.FromRaw[width.W16, width.W16](int32(r.Uint32()))
	}

	return out
}

// BenchmarkFixed measures the Q16.16 arithmetic and math paths on one
// shared input set.
func BenchmarkFixed(b *testing.B) {
	xs := randomQ16(1024, 42)
	ops := []struct {
		name string
		fn   func(x, y q16_16) q16_16
	}{
		{"Mul", func(x, y q16_16) q16_16 { return x.Mul(y) }},
		{"MulSat", func(x, y q16_16) q16_16 { return x.MulSat(y) }},
		{"Round", func(x, _ q16_16) q16_16 { return x.Round() }},
		{"Sqrt", func(x, _ q16_16) q16_16 { return x.Sqrt() }},
		{"Log", func(x, _ q16_16) q16_16 { return x.Log() }},
		{"Sin", func(x, _ q16_16) q16_16 {
			s, err := x.Sin()
			sinkErr = err
			return s
		}},
		{"Atan2", func(x, y q16_16) q16_16 {
			a, err := y.Atan2(x)
			sinkErr = err
			return a
		}},
	}

	for _, op := range ops {
		b.Run(op.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				j := i & 1023
				sinkQ16 = op.fn(xs[j], xs[(j+1)&1023])
			}
		})
	}
}
