// ============================================================================
// chemformula - Chemical formula toolkit
// ============================================================================
//
// Package:     config
// Description: Typed configuration loaded from TOML or YAML files
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/chemformula/foundation/core/error"
	mdwlog "github.com/msto63/chemformula/foundation/core/log"
	"github.com/msto63/chemformula/internal/formula"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "CHEMFORMULA_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Render   RenderConfig   `toml:"render" yaml:"render"`
	Elements ElementsConfig `toml:"elements" yaml:"elements"`
	Catalog  CatalogConfig  `toml:"catalog" yaml:"catalog"`
	Mass     MassConfig     `toml:"mass" yaml:"mass"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// RenderConfig holds the defaults of the render command and the explorer
type RenderConfig struct {
	Renderer string `toml:"renderer" yaml:"renderer"`
	Mode     string `toml:"mode" yaml:"mode"`
	// nil means true
	IncludeCharge *bool `toml:"include_charge" yaml:"include_charge"`
}

// ElementsConfig selects the atomic weight table
type ElementsConfig struct {
	// TablePath is a TOML or YAML table; empty uses the embedded IUPAC table
	TablePath string `toml:"table_path" yaml:"table_path"`
}

// CatalogConfig locates the formula catalog database
type CatalogConfig struct {
	Path        string   `toml:"path" yaml:"path"`
	BusyTimeout Duration `toml:"busy_timeout" yaml:"busy_timeout"`
}

// MassConfig holds mass calculation settings
type MassConfig struct {
	Propagation string `toml:"propagation" yaml:"propagation"`
}

// Duration wraps time.Duration for text based config formats
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML accepts "5s" style scalars
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// Load reads the configuration file at path. The extension selects TOML
// (.toml) or YAML (.yaml, .yml).
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "cannot read config file").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, mdwerror.Newf("unsupported config format %q", filepath.Ext(path)).
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, mdwerror.Wrap(err, "invalid config").
			WithDetail("path", path)
	}

	return &cfg, nil
}

// Resolve returns the first existing config file among explicit,
// $CHEMFORMULA_CONFIG, ./chemformula.toml and
// ~/.config/chemformula/config.toml. An explicit path that does not exist
// is an error; otherwise "" means no file was found.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", mdwerror.Wrap(err, "config file not found").
				WithCode(mdwerror.CodeConfigError).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	candidates := []string{
		os.Getenv(EnvConfigPath),
		"./chemformula.toml",
		filepath.Join(os.Getenv("HOME"), ".config/chemformula/config.toml"),
	}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// LoadFromEnv resolves the config file as Resolve does and loads it. When
// no file exists the defaults are returned with an empty path.
func LoadFromEnv(explicit string) (*Config, string, error) {
	path, err := Resolve(explicit)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Render
	if c.Render.Renderer == "" {
		c.Render.Renderer = "text"
	}
	if c.Render.Mode == "" {
		c.Render.Mode = "formula"
	}
	if c.Render.IncludeCharge == nil {
		include := true
		c.Render.IncludeCharge = &include
	}

	// Catalog
	if c.Catalog.Path == "" {
		c.Catalog.Path = "$HOME/.local/share/chemformula/catalog.db"
	}
	if c.Catalog.BusyTimeout.Duration == 0 {
		c.Catalog.BusyTimeout.Duration = 5 * time.Second
	}

	// Mass
	if c.Mass.Propagation == "" {
		c.Mass.Propagation = "linear"
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.Elements.TablePath = os.ExpandEnv(c.Elements.TablePath)
	c.Catalog.Path = os.ExpandEnv(c.Catalog.Path)
}

// Validate checks that every enumerated value is known
func (c *Config) Validate() error {
	invalid := func(err error, key, value string) error {
		return mdwerror.Wrap(err, "invalid value for "+key).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("key", key).
			WithDetail("value", value)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid(err, "general.log_level", c.General.LogLevel)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid(err, "general.log_format", c.General.LogFormat)
	}
	if _, err := formula.ParseRenderer(c.Render.Renderer); err != nil {
		return invalid(err, "render.renderer", c.Render.Renderer)
	}
	if _, err := formula.ParseMode(c.Render.Mode); err != nil {
		return invalid(err, "render.mode", c.Render.Mode)
	}
	if _, err := formula.ParsePropagation(c.Mass.Propagation); err != nil {
		return invalid(err, "mass.propagation", c.Mass.Propagation)
	}
	if c.Catalog.BusyTimeout.Duration < 0 {
		return invalid(mdwerror.New("negative duration"), "catalog.busy_timeout", c.Catalog.BusyTimeout.String())
	}
	return nil
}

// RenderOptions returns the configured renderer and render options
func (c *Config) RenderOptions() (formula.Renderer, formula.RenderOptions, error) {
	r, err := formula.ParseRenderer(c.Render.Renderer)
	if err != nil {
		return 0, formula.RenderOptions{}, err
	}
	mode, err := formula.ParseMode(c.Render.Mode)
	if err != nil {
		return 0, formula.RenderOptions{}, err
	}
	include := c.Render.IncludeCharge == nil || *c.Render.IncludeCharge
	return r, formula.RenderOptions{Mode: mode, IncludeCharge: include}, nil
}

// Propagation returns the configured uncertainty propagation
func (c *Config) Propagation() (formula.Propagation, error) {
	return formula.ParsePropagation(c.Mass.Propagation)
}
