package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMergesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[format]
jobs = 4
exclude = ["target/", "*.generated.clj"]

[cache]
dir = ".cache"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := FormatConfig{
		Jobs:       4,
		Extensions: DefaultExtensions,
		Exclude:    []string{"target/", "*.generated.clj"},
	}
	if diff := cmp.Diff(want, cfg.Format); diff != "" {
		t.Errorf("format section mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Cache.Enabled {
		t.Error("cache should stay enabled by default")
	}
	if cfg.Cache.Dir != filepath.Join(dir, ".cache") {
		t.Errorf("cache dir = %q, want it resolved against %q", cfg.Cache.Dir, dir)
	}
	if cfg.Root != dir {
		t.Errorf("root = %q, want %q", cfg.Root, dir)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"unknown key", "[format]\nwidth = 80\n", ErrUnknownKey},
		{"negative jobs", "[format]\njobs = -1\n", ErrInvalidValue},
		{"empty extensions", "[format]\nextensions = []\n", ErrInvalidValue},
		{"bad glob", "[format]\nexclude = [\"[\"]\n", ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := Load(path)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load error = %v, want %v", err, tt.want)
			}
		})
	}

	path := writeConfig(t, t.TempDir(), "[format\n")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed TOML")
	}
}

func TestExtensionsNormalised(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[format]\nextensions = [\"clj\", \".bb\"]\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{"a/core.clj", "script.bb"} {
		if !cfg.HasExtension(p) {
			t.Errorf("HasExtension(%q) = false", p)
		}
	}
	if cfg.HasExtension("core.cljs") {
		t.Error("cljs should not match a custom extension list")
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[cache]\nenabled = false\n")
	nested := filepath.Join(root, "src", "app")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Cache.Enabled {
		t.Error("cache setting from the parent config was not applied")
	}
	if cfg.Path != filepath.Join(root, ConfigName) {
		t.Errorf("config path = %q", cfg.Path)
	}

	gotRoot, ok, err := FindProjectRoot(nested)
	if err != nil || !ok || gotRoot != root {
		t.Errorf("FindProjectRoot = %q, %v, %v", gotRoot, ok, err)
	}
}

func TestExcluded(t *testing.T) {
	cfg := Default()
	cfg.Format.Exclude = []string{"target/", "*.generated.clj", "resources/*.edn"}
	tests := []struct {
		rel   string
		isDir bool
		want  bool
	}{
		{"target", true, true},
		{"target", false, false},
		{"src/target", true, true},
		{"src/a.generated.clj", false, true},
		{"resources/config.edn", false, true},
		{"resources/nested/config.edn", false, false},
		{"src/core.clj", false, false},
	}
	for _, tt := range tests {
		if got := cfg.Excluded(tt.rel, tt.isDir); got != tt.want {
			t.Errorf("Excluded(%q, %v) = %v, want %v", tt.rel, tt.isDir, got, tt.want)
		}
	}
}

func TestCombineIsOrderSensitive(t *testing.T) {
	a, b := HashBytes([]byte("a")), HashBytes([]byte("b"))
	if Combine(a, b) == Combine(b, a) {
		t.Error("Combine should depend on argument order")
	}
	if Combine(a, b) != Combine(a, b) {
		t.Error("Combine should be deterministic")
	}
}
