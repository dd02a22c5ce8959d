// Package config loads swimlane.yaml. The file is optional; every key has a
// default and command-line flags override whatever the file says.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/swimlane/internal/ui"
)

// FileName is looked up in the working directory when no path is given.
const FileName = "swimlane.yaml"

const defaultConfigYAML = `# swimlane configuration

# Seed rows to load instead of the built-in client list (.yaml or .json).
# seed: clients.yaml

# classic, neon or mono
theme: classic

# Append JSON log records here. Empty disables logging.
# log_file: swimlane.log

# Drag cards with the mouse.
mouse: true
`

// Config models swimlane.yaml.
type Config struct {
	Seed    string `yaml:"seed,omitempty"`
	Theme   string `yaml:"theme"`
	LogFile string `yaml:"log_file,omitempty"`
	Mouse   *bool  `yaml:"mouse,omitempty"`

	// Path is the file the config was read from, "" for defaults.
	Path string `yaml:"-"`
}

func Default() Config {
	on := true
	return Config{Theme: ui.Themes[0], Mouse: &on}
}

// Load reads the config at path. With an empty path it tries FileName in the
// working directory and returns defaults if that is absent. Relative seed
// and log paths are resolved against the config file's directory.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, FileName)
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Path = path

	dir := filepath.Dir(path)
	cfg.Seed = resolve(dir, cfg.Seed)
	cfg.LogFile = resolve(dir, cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate checks values that would otherwise fail later, mid-session.
func (c Config) Validate() error {
	if !ui.ValidTheme(c.Theme) {
		return fmt.Errorf("unknown theme %q (want one of %v)", c.Theme, ui.Themes)
	}
	return nil
}

// MouseEnabled defaults to true when the key is absent.
func (c Config) MouseEnabled() bool { return c.Mouse == nil || *c.Mouse }

// WriteDefault creates a commented config file at path unless one exists.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return false, fmt.Errorf("config: write %s: %w", path, err)
	}
	return true, nil
}
