// SPDX-License-Identifier: MIT
// Package fixed: self-describing JSON.
//
// The document carries the layout next to the raw value:
//
//	{"intBits":8,"fracBits":8,"raw":384}    signed Q8.8
//	{"uintBits":8,"fracBits":8,"raw":384}   unsigned Q8.8
//
// Decoding fails closed: a missing or mismatched width field, a key of the
// wrong signedness or a raw value outside the register is a
// fixedpoint.ErrFormat and yields no value.

package fixed

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/katalvlaran/fixedpoint"
	"github.com/katalvlaran/fixedpoint/width"
)

type metaDoc struct {
	IntBits  *uint       `json:"intBits,omitempty"`
	UintBits *uint       `json:"uintBits,omitempty"`
	FracBits *uint       `json:"fracBits"`
	Raw      json.Number `json:"raw"`
}

func encodeMeta(i, f uint, signed bool, raw int64) ([]byte, error) {
	doc := metaDoc{FracBits: &f, Raw: json.Number(strconv.FormatInt(raw, 10))}
	if signed {
		doc.IntBits = &i
	} else {
		doc.UintBits = &i
	}

	return json.Marshal(doc)
}

func metaErrorf(op, format string, args ...any) error {
	return fmt.Errorf("%s: "+format+": %w", append(append([]any{op}, args...), fixedpoint.ErrFormat)...)
}

// decodeMeta validates a self-describing document against the target
// layout and returns its raw value.
func decodeMeta(op string, data []byte, i, f uint, signed bool) (int64, error) {
	var doc metaDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, metaErrorf(op, "%v", err)
	}

	got, wrongKey := doc.IntBits, doc.UintBits
	key := "intBits"
	if !signed {
		got, wrongKey = doc.UintBits, doc.IntBits
		key = "uintBits"
	}
	switch {
	case wrongKey != nil:
		return 0, metaErrorf(op, "document has the wrong signedness, want %q", key)
	case got == nil || doc.FracBits == nil:
		return 0, metaErrorf(op, "missing %q or \"fracBits\"", key)
	case *got != i || *doc.FracBits != f:
		fixedpoint.Logger().Debug("json meta width mismatch",
			"op", op, "want_int", i, "want_frac", f, "got_int", *got, "got_frac", *doc.FracBits)

		return 0, metaErrorf(op, "layout Q%d.%d does not match Q%d.%d", *got, *doc.FracBits, i, f)
	}

	raw, err := strconv.ParseInt(doc.Raw.String(), 10, 64)
	if err != nil {
		return 0, metaErrorf(op, "raw %q", doc.Raw)
	}
	lo, hi := width.Range(i+f, signed)
	if raw < lo || raw > hi {
		return 0, metaErrorf(op, "raw %d outside [%d,%d]", raw, lo, hi)
	}

	return raw, nil
}
