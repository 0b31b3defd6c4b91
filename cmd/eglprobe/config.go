// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"gioui.org/x/eglreplay/platform"
)

// Config is the probe configuration, read from a YAML file.
type Config struct {
	// Backend names the platform backend.
	Backend string `yaml:"backend"`
	// Libraries overrides the driver library candidates of the egl backend.
	Libraries []string `yaml:"libraries"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// OutputContext also creates and measures a headless output context
	// sharing with the replay context.
	OutputContext bool `yaml:"output_context"`
	// Functions are driver functions to resolve through the replay context.
	Functions []string `yaml:"functions"`
}

func defaultConfig() Config {
	return Config{
		Backend:  platform.DefaultBackend,
		LogLevel: "warn",
		Functions: []string{
			"glGetString",
			"glDebugMessageCallback",
		},
	}
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if _, err := cfg.level(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return l, nil
}
