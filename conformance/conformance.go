// SPDX-License-Identifier: MIT

package conformance

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"time"

	"github.com/katalvlaran/fixedpoint/fxmath"
	"github.com/katalvlaran/fixedpoint/width"
)

// formatKind selects how a width is interpreted during the sweep.
type formatKind uint8

const (
	kindInt formatKind = iota
	kindUint
	kindFixed
)

var kindNames = [...]string{kindInt: "int", kindUint: "uint", kindFixed: "fixed"}

func (k formatKind) String() string { return kindNames[k] }

// function is one swept entry point. Exactly one of unary, binary and
// scalar is set; angle functions use the trig format, scalar functions the
// scalar format.
type function struct {
	name   string
	unary  func(fxmath.Format, int64) (int64, error)
	binary func(fxmath.Format, int64, int64) (int64, error)
	scalar func(fxmath.Format, int64) int64
}

// registry lists every function in its default sweep order.
var registry = []function{
	{name: "sin", unary: fxmath.Sin},
	{name: "cos", unary: fxmath.Cos},
	{name: "tan", unary: fxmath.Tan},
	{name: "asin", unary: fxmath.Asin},
	{name: "acos", unary: fxmath.Acos},
	{name: "atan", unary: fxmath.Atan},
	{name: "atan2", binary: fxmath.Atan2},
	{name: "sqrt", scalar: fxmath.Sqrt},
	{name: "exp2", scalar: fxmath.Exp2},
	{name: "exp", scalar: fxmath.Exp},
	{name: "log2", scalar: fxmath.Log2},
	{name: "log", scalar: fxmath.Log},
}

// Functions returns the names of all swept functions in default order.
func Functions() []string {
	names := make([]string, len(registry))
	for i, fn := range registry {
		names[i] = fn.name
	}

	return names
}

func lookup(name string) (function, bool) {
	for _, fn := range registry {
		if fn.name == name {
			return fn, true
		}
	}

	return function{}, false
}

// FunctionDigest is the SHA-256 of every (input, output) pair one function
// produced across all swept formats.
type FunctionDigest struct {
	Name        string `json:"name"`
	Evaluations int    `json:"evaluations"`
	Sum         string `json:"sha256"`
}

// Report summarizes a sweep. Two reports from the same options are equal on
// every platform; Digest folds the per-function sums in sweep order.
type Report struct {
	Seed      int64            `json:"seed"`
	Samples   int              `json:"samples"`
	Widths    []uint           `json:"widths"`
	Functions []FunctionDigest `json:"functions"`
	Digest    string           `json:"sha256"`
}

// Evaluations returns the total number of engine calls behind the report.
func (r Report) Evaluations() int {
	total := 0
	for _, fd := range r.Functions {
		total += fd.Evaluations
	}

	return total
}

// Run sweeps the transcendental engine and returns the digest report.
//
// For every selected function and width it evaluates three formats (signed
// integer, unsigned integer, signed fixed Q(n-n/2).(n/2)) over the edge
// inputs (0, ±1 ulp, one unit, the format bounds) followed by the
// configured number of random inputs. Every input and output is hashed as
// little-endian int64.
//
// Errors:
//   - ctx.Err() if ctx is cancelled between two (function, format) steps.
//   - any engine error, wrapped with the function and format; with widths
//     restricted to [2,31] none is expected.
func Run(ctx context.Context, opts ...Option) (Report, error) {
	o := gatherOptions(opts...)
	start := time.Now()

	rep := Report{
		Seed:      o.seed,
		Samples:   o.samples,
		Widths:    append([]uint(nil), o.widths...),
		Functions: make([]FunctionDigest, 0, len(o.functions)),
	}
	total := sha256.New()

	for _, name := range o.functions {
		fn, _ := lookup(name)
		h := sha256.New()
		evals := 0
		for _, n := range o.widths {
			for _, kind := range []formatKind{kindInt, kindUint, kindFixed} {
				if err := ctx.Err(); err != nil {
					return Report{}, err
				}
				c, err := sweep(h, fn, n, kind, o)
				if err != nil {
					return Report{}, err
				}
				evals += c
			}
		}
		sum := h.Sum(nil)
		total.Write(sum)
		rep.Functions = append(rep.Functions, FunctionDigest{
			Name:        name,
			Evaluations: evals,
			Sum:         hex.EncodeToString(sum),
		})
		o.logger.Debug("conformance function digest", "function", name, "evaluations", evals, "sha256", hex.EncodeToString(sum))
	}
	rep.Digest = hex.EncodeToString(total.Sum(nil))

	o.logger.Info("conformance sweep",
		"functions", len(rep.Functions),
		"widths", len(rep.Widths),
		"evaluations", rep.Evaluations(),
		"sha256", rep.Digest,
		"elapsed", time.Since(start))

	return rep, nil
}

// formats returns the trig and scalar formats of width n for kind.
func formats(n uint, kind formatKind) (trig, scalar fxmath.Format) {
	switch kind {
	case kindUint:
		return fxmath.IntFormat(n, false), fxmath.ScalarFormat(n, false)
	case kindFixed:
		f := fxmath.FixedFormat(n-n/2, n/2, true)
		return f, f
	default:
		return fxmath.IntFormat(n, true), fxmath.ScalarFormat(n, true)
	}
}

// edgeInputs returns the deterministic inputs swept before the random ones.
func edgeInputs(f fxmath.Format) []int64 {
	lo, hi := f.Range()
	one := int64(1) << f.Frac
	in := []int64{0, 1, lo, hi}
	if one <= hi {
		in = append(in, one)
	}
	if f.Signed {
		in = append(in, -1)
		if -one >= lo {
			in = append(in, -one)
		}
	}

	return in
}

// sweep hashes one (function, format) step and returns its evaluation count.
func sweep(h hash.Hash, fn function, n uint, kind formatKind, o Options) (int, error) {
	trig, scalar := formats(n, kind)
	f := trig
	if fn.scalar != nil {
		f = scalar
	}
	lo, hi := f.Range()

	r := deriveRNG(o.seed, fn.name, n, kind)
	inputs := edgeInputs(f)
	for i := 0; i < o.samples; i++ {
		inputs = append(inputs, uniform(r, lo, hi))
	}

	var buf [8]byte
	write := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	write(int64(n))
	write(int64(kind))

	for _, x := range inputs {
		var (
			out int64
			err error
		)
		switch {
		case fn.unary != nil:
			out, err = fn.unary(f, x)
		case fn.binary != nil:
			y := uniform(r, lo, hi)
			write(y)
			out, err = fn.binary(f, y, x)
		default:
			out = fn.scalar(f, x)
		}
		if err != nil {
			return 0, fmt.Errorf("conformance: %s %s%d: %w", fn.name, kind, n, err)
		}
		write(x)
		write(width.Wrap(out, n, f.Signed))
	}

	return len(inputs), nil
}
