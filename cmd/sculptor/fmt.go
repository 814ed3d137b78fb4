package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/7even/clj-sculptor/internal/diag"
	"github.com/7even/clj-sculptor/internal/diagfmt"
	"github.com/7even/clj-sculptor/internal/driver"
	"github.com/7even/clj-sculptor/internal/ui"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path>...",
	Short: "Format Clojure source files in place",
	Long: `Format Clojure source files and directories in place.

Directories are walked recursively; files are picked by the extensions and
exclude rules of .sculptor.toml.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "report files that would be reformatted without writing")
	fmtCmd.Flags().Bool("diff", false, "print a unified diff instead of writing")
	fmtCmd.Flags().Bool("stdout", false, "print formatted sources to stdout")
	fmtCmd.Flags().String("format", "text", "report format (text|short|json)")
	fmtCmd.Flags().Int("jobs", 0, "max parallel files (0=auto)")
	fmtCmd.Flags().String("ui", "auto", "progress UI mode (auto|on|off)")
	fmtCmd.Flags().Bool("no-cache", false, "disable the on-disk format cache")
}

func runFmt(cmd *cobra.Command, args []string) error {
	checkOnly, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}
	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return fmt.Errorf("failed to get diff flag: %w", err)
	}
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return fmt.Errorf("failed to get stdout flag: %w", err)
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch outputFormat {
	case "text", "short", "json":
	default:
		return usageError(fmt.Errorf("fmt: unknown format %q (expected text|short|json)", outputFormat))
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return usageError(err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	if checkOnly && toStdout {
		return usageError(errors.New("fmt: --check and --stdout are mutually exclusive"))
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("jobs") {
		jobs = cfg.Format.Jobs
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	opts := driver.FormatOptions{
		Check:          checkOnly,
		Diff:           showDiff,
		Stdout:         toStdout,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		Config:         &cfg,
		Timer:          timer,
	}
	if cfg.Cache.Enabled && !noCache {
		cache, cacheErr := driver.OpenDiskCache(cfg.Cache.Dir)
		if cacheErr != nil {
			if !quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: format cache disabled: %v\n", cacheErr)
			}
		} else {
			opts.Cache = cache
		}
	}

	ctx := cmd.Context()
	files, err := driver.CollectFiles(ctx, args, &cfg)
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}
	if len(files) == 0 {
		return usageError(fmt.Errorf("fmt: %w", driver.ErrNoFiles))
	}

	var progress *ui.Progress
	if !quiet && !toStdout && outputFormat != "json" && shouldUseTUI(mode) {
		progress = ui.StartProgress("formatting", files, os.Stderr)
		opts.Progress = progress.Sink()
	}
	results, err := driver.FormatPaths(ctx, files, opts)
	if progress != nil {
		if uiErr := progress.Wait(); uiErr != nil && !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: progress view: %v\n", uiErr)
		}
	}
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case toStdout:
		err = renderFmtStdout(out, results)
	case outputFormat == "json":
		err = renderFmtJSON(out, results, checkOnly)
	default:
		err = renderFmtText(cmd, results, checkOnly, showDiff, quiet, outputFormat == "short")
	}
	if err != nil {
		return err
	}
	return fmtOutcome(results, checkOnly)
}

// fmtOutcome maps per-file results to the command error.
func fmtOutcome(results []driver.FormatResult, checkOnly bool) error {
	var failed, changed int
	for _, res := range results {
		if res.Err != nil {
			failed++
		} else if res.Changed {
			changed++
		}
	}
	switch {
	case failed > 0:
		return errReported
	case checkOnly && changed > 0:
		return &exitError{code: 1, err: fmt.Errorf("fmt: %d file(s) need formatting", changed)}
	}
	return nil
}

func renderFmtStdout(out io.Writer, results []driver.FormatResult) error {
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if _, err := out.Write(res.Formatted); err != nil {
			return err
		}
	}
	return nil
}

func renderFmtText(cmd *cobra.Command, results []driver.FormatResult, checkOnly, showDiff, quiet, short bool) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	colorOut := useColor(cmd, os.Stdout)
	colorErr := useColor(cmd, os.Stderr)

	for _, res := range results {
		if res.Err != nil {
			switch {
			case res.Bag != nil && short:
				fmt.Fprintln(errOut, diag.FormatShortDiagnostics(res.Bag.Items(), res.FileSet, false))
			case res.Bag != nil:
				diagfmt.Pretty(errOut, res.Bag, res.FileSet, diagfmt.PrettyOpts{
					Color:     colorErr,
					Context:   2,
					PathMode:  diagfmt.PathModeAuto,
					ShowNotes: true,
				})
			default:
				fmt.Fprintf(errOut, "%s: %v\n", res.Path, res.Err)
			}
			continue
		}
		if !res.Changed {
			continue
		}
		switch {
		case showDiff:
			if err := writeDiff(out, res.Diff, colorOut); err != nil {
				return err
			}
		case checkOnly:
			fmt.Fprintln(out, res.Path)
		case !quiet:
			fmt.Fprintf(out, "reformatted %s\n", res.Path)
		}
	}
	return nil
}

type fmtFileJSON struct {
	Path        string                   `json:"path"`
	Changed     bool                     `json:"changed"`
	Cached      bool                     `json:"cached,omitempty"`
	Error       string                   `json:"error,omitempty"`
	Diff        string                   `json:"diff,omitempty"`
	Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics,omitempty"`
}

type fmtReportJSON struct {
	Check   bool          `json:"check"`
	Files   []fmtFileJSON `json:"files"`
	Changed int           `json:"changed"`
	Failed  int           `json:"failed"`
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, checkOnly bool) error {
	report := fmtReportJSON{Check: checkOnly, Files: make([]fmtFileJSON, 0, len(results))}
	for _, res := range results {
		entry := fmtFileJSON{
			Path:    res.Path,
			Changed: res.Changed,
			Cached:  res.Cached,
			Diff:    res.Diff,
		}
		if res.Err != nil {
			report.Failed++
			entry.Error = res.Err.Error()
			if res.Bag != nil {
				diags := diagfmt.BuildDiagnosticsOutput(res.Bag, res.FileSet, diagfmt.JSONOpts{
					IncludePositions: true,
					IncludeNotes:     true,
				})
				entry.Diagnostics = diags.Diagnostics
			}
		} else if res.Changed {
			report.Changed++
		}
		report.Files = append(report.Files, entry)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
