// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fixedpoint/conformance"
)

func newDigestCmd() *cobra.Command {
	var (
		widths    []uint
		functions []string
		samples   int
		seed      int64
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Sweep the engine and print a reproducible SHA-256 digest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			// Option constructors panic on nonsensical values; report those
			// as flag errors.
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%v", r)
				}
			}()

			opts := []conformance.Option{conformance.WithSamples(samples), conformance.WithSeed(seed)}
			if cmd.Flags().Changed("widths") {
				opts = append(opts, conformance.WithWidths(widths...))
			}
			if cmd.Flags().Changed("functions") {
				opts = append(opts, conformance.WithFunctions(functions...))
			}

			rep, err := conformance.Run(cmd.Context(), opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")

				return enc.Encode(rep)
			}
			for _, fd := range rep.Functions {
				fmt.Fprintf(out, "%-6s %9d  %s\n", fd.Name, fd.Evaluations, fd.Sum)
			}
			fmt.Fprintf(out, "digest %s\n", rep.Digest)

			return nil
		},
	}

	f := cmd.Flags()
	f.UintSliceVar(&widths, "widths", nil, "widths to sweep, each in [2,31] (default all)")
	f.StringSliceVar(&functions, "functions", nil, "functions to sweep (default all)")
	f.IntVar(&samples, "samples", conformance.DefaultSamples, "random inputs per function and format")
	f.Int64Var(&seed, "seed", conformance.DefaultSeed, "base seed; 0 selects the default")
	f.BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}
