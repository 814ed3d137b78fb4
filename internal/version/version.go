package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Version information for the sculptor CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Engine identifies the layout rules. Bump it whenever formatter output
// changes for some input: cached results keyed by an older engine are
// ignored.
const Engine = "sculptor-layout/1"

// Colored renders Version with each numeric component highlighted.
// Colors follow color.NoColor, so piped output stays plain.
func Colored() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Describe returns the multi-line text printed by `sculptor version`.
func Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "sculptor %s\n", Colored())
	fmt.Fprintf(&sb, "engine:  %s\n", Engine)
	if GitCommit != "" {
		fmt.Fprintf(&sb, "commit:  %s\n", GitCommit)
	}
	if BuildDate != "" {
		fmt.Fprintf(&sb, "built:   %s\n", BuildDate)
	}
	return sb.String()
}
