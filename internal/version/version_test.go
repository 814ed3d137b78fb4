package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestColoredPlain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	tests := []struct {
		version string
		want    string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"weird", "weird"},
	}
	orig := Version
	defer func() { Version = orig }()
	for _, tt := range tests {
		Version = tt.version
		if got := Colored(); got != tt.want {
			t.Errorf("Colored() with %q = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestDescribeOptionalFields(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	origCommit, origDate := GitCommit, BuildDate
	defer func() { GitCommit, BuildDate = origCommit, origDate }()

	GitCommit, BuildDate = "", ""
	out := Describe()
	if strings.Contains(out, "commit:") || strings.Contains(out, "built:") {
		t.Errorf("empty fields should be omitted:\n%s", out)
	}
	if !strings.Contains(out, Engine) {
		t.Errorf("engine missing:\n%s", out)
	}

	GitCommit, BuildDate = "abc123", "2024-01-15T10:30:00Z"
	out = Describe()
	if !strings.Contains(out, "commit:  abc123") || !strings.Contains(out, "built:   2024-01-15T10:30:00Z") {
		t.Errorf("unexpected describe output:\n%s", out)
	}
}
