// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader assembles configuration with precedence ENV > file > defaults.
type Loader struct {
	path    string // optional YAML file; empty skips the file layer
	version string
}

// NewLoader creates a Loader. path may be empty.
func NewLoader(path, version string) *Loader {
	return &Loader{path: path, version: version}
}

// Load produces a validated Config.
func (l *Loader) Load() (Config, error) {
	cfg := Defaults()
	cfg.Version = l.version

	if l.path != "" {
		if err := applyFile(&cfg, l.path); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config: file %s does not exist", path)
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}
