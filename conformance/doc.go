// SPDX-License-Identifier: MIT

// Package conformance computes a reproducible digest of the transcendental
// engine.
//
// The engine is integer-only, so every build on every platform must produce
// the same raw results. Run sweeps each function over edge and seeded random
// inputs for a range of widths and hashes the results with SHA-256; two
// machines agree on the engine exactly when their reports carry the same
// Digest.
//
//	rep, err := conformance.Run(ctx,
//	    conformance.WithWidths(8, 16, 31),
//	    conformance.WithSamples(4096),
//	)
//	fmt.Println(rep.Digest)
//
// The fixpt command exposes the sweep as "fixpt digest".
package conformance
