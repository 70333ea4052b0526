// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fixedpoint/conformance"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse TYPE VALUE",
		Short: "Parse a literal and print its encodings",
		Long:  "Parse a literal into TYPE and print its value, raw pattern, little-endian bytes and JSON.\n\n" + typeHelp(),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseAs(args[0], args[1])
			if err != nil {
				return err
			}
			printNumber(cmd, args[0], x)

			return nil
		},
	}
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval FUNC TYPE VALUE [X]",
		Short: "Evaluate an engine function",
		Long:  evalHelp(),
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, typ := args[0], args[1]
			y, err := parseAs(typ, args[2])
			if err != nil {
				return err
			}
			var x number
			if len(args) == 4 {
				if x, err = parseAs(typ, args[3]); err != nil {
					return err
				}
			}
			r, err := y.apply(fn, x)
			if err != nil {
				return fmt.Errorf("%s: %w", fn, err)
			}
			printNumber(cmd, typ, r)

			return nil
		},
	}
}

func evalHelp() string {
	return "Evaluate FUNC on VALUE of TYPE. atan2 takes a second operand X and computes atan2(VALUE, X).\n\n" +
		"functions: " + strings.Join(conformance.Functions(), ", ") + "\n" + typeHelp()
}

func printNumber(cmd *cobra.Command, typ string, x number) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "type   %s\n", typ)
	fmt.Fprintf(out, "value  %s\n", x)
	fmt.Fprintf(out, "raw    %s\n", x.Hex())
	fmt.Fprintf(out, "bytes  % x\n", x.ToBytes())
	if data, err := x.ToJSON(); err == nil {
		fmt.Fprintf(out, "json   %s\n", data)
	}
}
