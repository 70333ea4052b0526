// SPDX-License-Identifier: MIT

package main

import (
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/fixedpoint/lut"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print table sizes, engine constants and CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := message.NewPrinter(language.English)
			out := cmd.OutOrStdout()

			p.Fprintf(out, "platform  %s/%s, %d CPUs\n", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
			switch runtime.GOARCH {
			case "amd64", "386":
				p.Fprintf(out, "cpu       popcnt=%v bmi2=%v avx2=%v\n", cpu.X86.HasPOPCNT, cpu.X86.HasBMI2, cpu.X86.HasAVX2)
			case "arm64":
				p.Fprintf(out, "cpu       asimd=%v atomics=%v\n", cpu.ARM64.HasASIMD, cpu.ARM64.HasATOMICS)
			}
			p.Fprintln(out, "engine    integer-only; results do not depend on CPU features")
			p.Fprintln(out)

			for _, t := range []lut.Table{lut.Sin, lut.Tan, lut.Atan, lut.Asin, lut.AsinTail} {
				p.Fprintf(out, "table     %-10s %6d entries  [%d, %d]\n", t.Name(), t.Len(), t.At(0), t.At(t.Len()-1))
			}
			p.Fprintln(out)

			for _, c := range []struct {
				name  string
				value int64
			}{
				{"HalfPi", lut.HalfPi},
				{"Pi", lut.Pi},
				{"TwoPi", lut.TwoPi},
				{"InvTwoPiQ32", lut.InvTwoPiQ32},
				{"TailStart", lut.TailStart},
				{"Ln2Q32", lut.Ln2Q32},
				{"Log2EQ30", lut.Log2EQ30},
				{"Ln2Q24", lut.Ln2Q24},
			} {
				p.Fprintf(out, "const     %-12s %14d\n", c.name, c.value)
			}

			if err := lut.Validate(); err != nil {
				return err
			}
			p.Fprintln(out, "\ntables    ok")

			return nil
		},
	}
}
