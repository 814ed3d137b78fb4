package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/7even/clj-sculptor/internal/observ"
	"github.com/7even/clj-sculptor/internal/project"
)

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on", "always":
		return colorOn, nil
	case "off", "never":
		return colorOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// run-wide state set up in setupRun
var (
	cleanups []func()
	timer    *observ.Timer
)

func setupRun(cmd *cobra.Command, _ []string) error {
	root := cmd.Root()
	colorFlag, err := root.PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	mode, err := readColorMode(colorFlag)
	if err != nil {
		return usageError(err)
	}
	switch mode {
	case colorOn:
		color.NoColor = false
	case colorOff:
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout) || os.Getenv("NO_COLOR") != ""
	}

	if showTimings, _ := root.PersistentFlags().GetBool("timings"); showTimings {
		timer = observ.NewTimer()
	}

	stopProf, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, stopProf)

	stopTrace, err := setupTracing(cmd)
	if err != nil {
		return usageError(err)
	}
	cleanups = append(cleanups, stopTrace)
	return nil
}

// teardownRun stops profilers and tracing and prints timings. It runs after
// every execution, failed ones included.
func teardownRun(errOut io.Writer) {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	cleanups = nil
	if timer != nil {
		fmt.Fprint(errOut, timer.Summary())
		timer = nil
	}
}

// useColor reports whether output to f should be colorized.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	mode, err := readColorMode(colorFlag)
	if err != nil {
		return false
	}
	switch mode {
	case colorOn:
		return true
	case colorOff:
		return false
	default:
		return isTerminal(f) && os.Getenv("NO_COLOR") == ""
	}
}

// loadConfig reads --config, or discovers .sculptor.toml from the working
// directory.
func loadConfig(cmd *cobra.Command) (project.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return project.Config{}, err
	}
	if path != "" {
		cfg, err := project.Load(path)
		if err != nil {
			return project.Config{}, usageError(err)
		}
		return cfg, nil
	}
	cfg, err := project.Discover(".")
	if err != nil {
		return project.Config{}, usageError(err)
	}
	return cfg, nil
}
