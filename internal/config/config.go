// Package config handles grub's configuration, the built in defaults, an optional
// config file and command line overrides, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"go.followtheprocess.codes/grub/internal/catalog"
	"go.followtheprocess.codes/grub/internal/persist"
	"go.followtheprocess.codes/grub/internal/postcode"
	"go.yaml.in/yaml/v4"
)

// DefaultPostcode is the postcode searched automatically when grub starts.
const DefaultPostcode = "EC4M7RF"

// Config is grub's complete configuration.
type Config struct {
	// BaseURL is the catalog endpoint, the postcode is appended to it
	BaseURL string `toml:"base_url" yaml:"base_url"`

	// DefaultPostcode is searched once on startup before prompting
	DefaultPostcode string `toml:"default_postcode" yaml:"default_postcode"`

	// OutputDir is where result files are saved
	OutputDir string `toml:"output_dir" yaml:"output_dir"`

	// Timeout bounds each catalog request
	Timeout time.Duration `toml:"timeout" yaml:"timeout"`

	// ConnectionTimeout bounds connecting to the catalog
	ConnectionTimeout time.Duration `toml:"connection_timeout" yaml:"connection_timeout"`
}

// Default returns the built in [Config].
func Default() Config {
	return Config{
		BaseURL:           catalog.DefaultBaseURL,
		DefaultPostcode:   DefaultPostcode,
		OutputDir:         persist.DefaultDir,
		Timeout:           catalog.DefaultTimeout,
		ConnectionTimeout: catalog.DefaultConnectionTimeout,
	}
}

// Load returns the [Default] config with any values set in the file at path
// laid over the top.
//
// The format is chosen by extension, ".toml", ".yaml" or ".yml". An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if err := toml.Unmarshal(contents, &cfg); err != nil {
			return Config{}, fmt.Errorf("invalid TOML in %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(contents, &cfg); err != nil {
			return Config{}, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config file extension %q, allowed values are '.toml', '.yaml', '.yml'", ext)
	}

	return cfg, nil
}

// Overrides are values set on the command line, zero values are left alone.
type Overrides struct {
	BaseURL           string
	DefaultPostcode   string
	OutputDir         string
	Timeout           time.Duration
	ConnectionTimeout time.Duration
}

// Override returns a copy of c with every non-zero value in o applied.
func (c Config) Override(o Overrides) Config {
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}

	if o.DefaultPostcode != "" {
		c.DefaultPostcode = o.DefaultPostcode
	}

	if o.OutputDir != "" {
		c.OutputDir = o.OutputDir
	}

	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}

	if o.ConnectionTimeout != 0 {
		c.ConnectionTimeout = o.ConnectionTimeout
	}

	return c
}

// Validate reports whether the Config is valid, returning an error
// if it's not.
//
// nil means the config is valid.
func (c Config) Validate() error {
	switch {
	case c.BaseURL == "":
		return errors.New("base url cannot be empty")
	case c.OutputDir == "":
		return errors.New("output dir cannot be empty")
	case c.Timeout <= 0:
		return errors.New("timeout must be positive")
	case c.ConnectionTimeout <= 0:
		return errors.New("connection-timeout must be positive")
	case c.ConnectionTimeout > c.Timeout:
		return fmt.Errorf("connection-timeout (%s) cannot be larger than timeout (%s)", c.ConnectionTimeout, c.Timeout)
	}

	if err := postcode.Validate(c.DefaultPostcode); err != nil {
		return fmt.Errorf("bad default postcode: %w", err)
	}

	return nil
}
