package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/cruciblehq/cruxpack/internal/deps"
	"github.com/cruciblehq/cruxpack/internal/paths"
	"gopkg.in/yaml.v3"
)

const (

	// Product name used in archive names.
	DefaultProduct = "NotPong"

	// Compiles the release helper and runs its release target.
	DefaultCommand = "rustc dev_util.rs -o dev_util && ./dev_util --release"

	// Windows variant of [DefaultCommand].
	DefaultWindowsCommand = "rustc dev_util.rs -o dev_util.exe && dev_util --release"
)

// Settings for a packaging run.
type Config struct {
	Product        string   `yaml:"product"         env:"CRUXPACK_PRODUCT"`
	Command        string   `yaml:"command"         env:"CRUXPACK_COMMAND"`
	WindowsCommand string   `yaml:"windows_command" env:"CRUXPACK_WINDOWS_COMMAND"`
	Packages       []string `yaml:"packages"        env:"CRUXPACK_PACKAGES"`
	SkipDeps       bool     `yaml:"skip_deps"       env:"CRUXPACK_SKIP_DEPS"`
	Dist           string   `yaml:"dist"`
	Staging        string   `yaml:"staging"`
	Publish        string   `yaml:"publish"`
	Bundle         string   `yaml:"bundle"`
}

// Returns the built-in configuration.
func Default() Config {
	return Config{
		Product:        DefaultProduct,
		Command:        DefaultCommand,
		WindowsCommand: DefaultWindowsCommand,
		Packages:       append([]string(nil), deps.DefaultPackages...),
		Dist:           paths.Dist,
		Staging:        paths.Staging,
		Publish:        paths.Publish,
		Bundle:         paths.Bundle,
	}
}

// Resolves the configuration from defaults, the file at path, and the
// environment.
//
// An empty path skips the file layer. A path that does not exist is not an
// error. The result is validated before it is returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Overlays the YAML file at path onto cfg.
func (cfg *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no configuration file", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	slog.Debug("loading configuration", "path", path)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	return nil
}

// Reports the first missing required setting.
func (cfg Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"product", cfg.Product},
		{"command", cfg.Command},
		{"windows_command", cfg.WindowsCommand},
		{"dist", cfg.Dist},
		{"staging", cfg.Staging},
		{"publish", cfg.Publish},
		{"bundle", cfg.Bundle},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, r.name)
		}
	}
	return nil
}
