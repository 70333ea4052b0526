// SPDX-License-Identifier: MIT

// Command fixpt inspects fixed-point values and the transcendental engine.
//
//	fixpt parse q8.8 1.5            raw pattern, bytes and JSON forms
//	fixpt eval sin q16.16 1         evaluate one engine function
//	fixpt eval atan2 int16 100 -50  atan2(y, x)
//	fixpt digest --widths 8,16      reproducible engine digest
//	fixpt info                      tables, constants and CPU features
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fixedpoint"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "fixpt",
		Short:        "Inspect fixed-point values and the transcendental engine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			fixedpoint.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})))

			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newParseCmd(),
		newEvalCmd(),
		newDigestCmd(),
		newInfoCmd(),
	)

	return root
}

func typeHelp() string {
	return "types: " + strings.Join(typeNames(), ", ")
}
