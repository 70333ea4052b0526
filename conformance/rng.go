// SPDX-License-Identifier: MIT

// Package conformance - RNG streams for the digest sweep.
//
// Goals:
//   - Determinism: same seed ⇒ identical inputs on every platform.
//   - Independence: each (function, format) pair draws from its own stream,
//     so restricting the sweep with WithFunctions or WithWidths leaves the
//     inputs of the remaining pairs unchanged.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every stream is created and
//     consumed by a single sweep step.
package conformance

import (
	"hash/fnv"
	"math/rand"
)

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with the SplitMix64 finalizer, so neighbouring stream ids give
// unrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamID packs a function name and a format identity into one id. The name
// is folded with FNV-1a so the id does not depend on sweep order.
func streamID(name string, bits uint, kind formatKind) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))

	return h.Sum64() ^ uint64(bits)<<8 ^ uint64(kind)
}

// deriveRNG returns the stream for one (function, format) pair.
func deriveRNG(seed int64, name string, bits uint, kind formatKind) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, streamID(name, bits, kind))))
}

// uniform draws a raw value in [lo, hi].
func uniform(r *rand.Rand, lo, hi int64) int64 {
	return lo + r.Int63n(hi-lo+1)
}
