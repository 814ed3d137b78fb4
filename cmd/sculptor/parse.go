package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/7even/clj-sculptor/internal/ast"
	"github.com/7even/clj-sculptor/internal/diagfmt"
	"github.com/7even/clj-sculptor/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.clj",
	Short: "Print the syntax tree of a Clojure source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("noise", false, "include whitespace, newline and comma nodes")
	parseCmd.Flags().Bool("spans", false, "print byte spans next to nodes")
}

func runParse(cmd *cobra.Command, args []string) error {
	noise, err := cmd.Flags().GetBool("noise")
	if err != nil {
		return fmt.Errorf("failed to get noise flag: %w", err)
	}
	spans, err := cmd.Flags().GetBool("spans")
	if err != nil {
		return fmt.Errorf("failed to get spans flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(args[0], maxDiagnostics)
	if err != nil {
		return usageError(fmt.Errorf("parse failed: %w", err))
	}
	if result.Bag.HasErrors() {
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   2,
			ShowNotes: true,
		})
		return errReported
	}
	return ast.Dump(cmd.OutOrStdout(), result.Root, ast.DumpOptions{Noise: noise, Spans: spans})
}
