package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const configFileName = "cssvalue.toml"

type projectConfig struct {
	Path   string       `toml:"-"`
	Output outputConfig `toml:"output"`
	Check  checkConfig  `toml:"check"`
}

type outputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type checkConfig struct {
	Jobs           int      `toml:"jobs"`
	Extensions     []string `toml:"extensions"`
	MaxDiagnostics *int     `toml:"max_diagnostics"`
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfig(path string) (*projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	cfg.Path = path

	if f := strings.TrimSpace(cfg.Output.Format); f != "" {
		if _, ok := parseFormats[f]; !ok {
			return nil, fmt.Errorf("%s: [output].format must be pretty, tree, json or msgpack, got %q", path, f)
		}
	}
	if c := strings.TrimSpace(cfg.Output.Color); c != "" {
		if _, err := readToggle("color", c); err != nil {
			return nil, fmt.Errorf("%s: [output].color: %w", path, err)
		}
	}
	if cfg.Check.Jobs < 0 {
		return nil, fmt.Errorf("%s: [check].jobs must not be negative", path)
	}
	if m := cfg.Check.MaxDiagnostics; m != nil && *m < 0 {
		return nil, fmt.Errorf("%s: [check].max_diagnostics must not be negative", path)
	}
	for i, ext := range cfg.Check.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			return nil, fmt.Errorf("%s: [check].extensions contains an empty entry", path)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.Check.Extensions[i] = ext
	}
	return &cfg, nil
}

// resolveConfig loads the explicit --config file, or the nearest
// cssvalue.toml above startDir. A missing implicit config is not an error.
func resolveConfig(explicit, startDir string) (*projectConfig, error) {
	if explicit != "" {
		return loadConfig(explicit)
	}
	path, ok, err := findConfig(startDir)
	if err != nil || !ok {
		return &projectConfig{}, err
	}
	return loadConfig(path)
}
