// SPDX-License-Identifier: MIT

// Command lutgen regenerates lut/tables_gen.go. It is run by go generate in
// package lut:
//
//	go run ../cmd/lutgen -o tables_gen.go
//
// With -check it compares instead of writing and exits non-zero when the
// committed file is stale.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/fixedpoint/internal/lutgen"
)

func main() {
	out := pflag.StringP("output", "o", "tables_gen.go", "file to write")
	check := pflag.Bool("check", false, "compare with the existing file instead of writing")
	pflag.Parse()

	if err := run(*out, *check); err != nil {
		fmt.Fprintln(os.Stderr, "lutgen:", err)
		os.Exit(1)
	}
}

func run(out string, check bool) error {
	src, err := lutgen.Render(lutgen.Build())
	if err != nil {
		return err
	}
	if !check {
		return os.WriteFile(out, src, 0o644)
	}

	old, err := os.ReadFile(out)
	if err != nil {
		return err
	}
	if !bytes.Equal(old, src) {
		return fmt.Errorf("%s is stale; run go generate ./lut", out)
	}

	return nil
}
