package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/7even/clj-sculptor/internal/diagfmt"
	"github.com/7even/clj-sculptor/internal/driver"
)

// runRoot formats a single input. "-" reads stdin.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	input := args[0]
	data, err := readInput(cmd, input)
	if err != nil {
		return usageError(err)
	}

	res := driver.FormatBytes(cmd.Context(), input, data, driver.FormatOptions{
		Stdout:         true,
		MaxDiagnostics: maxDiagnostics,
		Timer:          timer,
	})
	if res.Err != nil {
		if res.Bag != nil {
			diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, res.FileSet, diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				Context:   2,
				ShowNotes: true,
			})
			return errReported
		}
		return res.Err
	}

	if len(args) == 2 && args[1] != "-" {
		if err := os.WriteFile(args[1], res.Formatted, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[1], err)
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write(res.Formatted)
	return err
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("input file %s does not exist", path)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory (use \"sculptor fmt\")", path)
	}
	return os.ReadFile(path)
}
