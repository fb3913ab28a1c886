// Package config loads the .qlcheck.yml tool configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up when none is given
const DefaultFile = ".qlcheck.yml"

// Format selects how diagnostics are printed
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// IsValid reports whether the format is recognised.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Config controls which passes run and how results are reported
type Config struct {
	Format           Format `yaml:"format"`
	Lint             bool   `yaml:"lint"`
	WarningsAsErrors bool   `yaml:"warnings_as_errors"`
}

// Effective applies command-line overrides and checks the settings that
// depend on each other. The receiver is not modified.
func (c *Config) Effective(lint, json bool) (*Config, error) {
	out := *c
	out.Lint = out.Lint || lint
	if json {
		out.Format = FormatJSON
	}
	if out.WarningsAsErrors && !out.Lint {
		return nil, &ValidationError{Issues: []string{"warnings_as_errors requires lint to be enabled"}}
	}
	return &out, nil
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{Format: FormatText}
}

// ValidationError aggregates configuration validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Load reads the configuration at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs ValidationError
	if c.Format == "" {
		c.Format = FormatText
	}
	if !c.Format.IsValid() {
		errs.Issues = append(errs.Issues, fmt.Sprintf("format %q is not supported (use text or json)", c.Format))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}
