package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultExtensions are the file suffixes formatted when a directory is walked.
var DefaultExtensions = []string{".clj", ".cljs", ".cljc", ".edn"}

// FormatConfig is the [format] section.
type FormatConfig struct {
	Jobs       int      `toml:"jobs"` // 0: one worker per CPU
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
}

// CacheConfig is the [cache] section.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // пусто: $XDG_CACHE_HOME/sculptor
}

// Config is the decoded .sculptor.toml.
type Config struct {
	Format FormatConfig `toml:"format"`
	Cache  CacheConfig  `toml:"cache"`

	// Root is the directory holding the config file, or the start
	// directory when none was found. Relative paths resolve against it.
	Root string `toml:"-"`
	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

var (
	// ErrUnknownKey is returned for keys the config schema does not have.
	ErrUnknownKey = errors.New("unknown key")
	// ErrInvalidValue wraps validation failures.
	ErrInvalidValue = errors.New("invalid value")
)

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Format: FormatConfig{Extensions: slices.Clone(DefaultExtensions)},
		Cache:  CacheConfig{Enabled: true},
	}
}

// Load parses a .sculptor.toml. Keys that are absent keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: %w %q", path, ErrUnknownKey, undecoded[0].String())
	}
	if meta.IsDefined("format", "extensions") && len(cfg.Format.Extensions) == 0 {
		return Config{}, fmt.Errorf("%s: %w: [format].extensions is empty", path, ErrInvalidValue)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	cfg.Root = filepath.Dir(path)
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(cfg.Root, cfg.Cache.Dir)
	}
	return cfg, nil
}

// Discover loads the nearest .sculptor.toml above startDir, or returns
// Default rooted at startDir.
func Discover(startDir string) (Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		cfg := Default()
		root, err := filepath.Abs(startDir)
		if err != nil {
			return Config{}, fmt.Errorf("failed to resolve start directory: %w", err)
		}
		cfg.Root = root
		return cfg, nil
	}
	return Load(path)
}

func (c *Config) validate() error {
	if c.Format.Jobs < 0 {
		return fmt.Errorf("%w: [format].jobs must be >= 0, got %d", ErrInvalidValue, c.Format.Jobs)
	}
	for i, ext := range c.Format.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return fmt.Errorf("%w: [format].extensions[%d] is empty", ErrInvalidValue, i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Format.Extensions[i] = ext
	}
	for _, pattern := range c.Format.Exclude {
		if _, err := filepath.Match(strings.TrimSuffix(pattern, "/"), ""); err != nil {
			return fmt.Errorf("%w: [format].exclude pattern %q: %w", ErrInvalidValue, pattern, err)
		}
	}
	return nil
}

// HasExtension reports whether path ends in one of the configured extensions.
func (c *Config) HasExtension(path string) bool {
	ext := filepath.Ext(path)
	return ext != "" && slices.Contains(c.Format.Extensions, ext)
}

// Excluded reports whether rel (a slash-separated path relative to Root)
// matches an exclude pattern. A pattern matches the whole path, its base
// name, or any leading directory; a trailing "/" restricts it to directories.
func (c *Config) Excluded(rel string, isDir bool) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range c.Format.Exclude {
		dirOnly := strings.HasSuffix(pattern, "/")
		pattern = strings.TrimSuffix(pattern, "/")
		if dirOnly && !isDir {
			continue
		}
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if ok, _ := filepath.Match(pattern, pathBase(rel)); ok {
				return true
			}
		}
	}
	return false
}

func pathBase(rel string) string {
	if i := strings.LastIndexByte(rel, '/'); i >= 0 {
		return rel[i+1:]
	}
	return rel
}
