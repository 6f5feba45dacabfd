package grub

import (
	"time"

	"go.followtheprocess.codes/grub/internal/catalog"
	"go.followtheprocess.codes/grub/internal/config"
)

// Options are the options shared by every grub command.
type Options struct {
	// ConfigFile is the path to an optional .toml or .yaml config file.
	ConfigFile string

	// URL overrides the catalog base URL.
	URL string

	// Postcode overrides the postcode searched on startup.
	Postcode string

	// Output overrides the directory results are saved in.
	Output string

	// Timeout overrides the per-request timeout.
	Timeout time.Duration

	// ConnectionTimeout overrides the per-request connection timeout.
	ConnectionTimeout time.Duration

	// Debug enables debug logging.
	Debug bool
}

// Config resolves the complete configuration: defaults, then the config file (if any),
// then the command line, returning an error if the result is invalid.
func (o Options) Config() (config.Config, error) {
	cfg, err := config.Load(o.ConfigFile)
	if err != nil {
		return config.Config{}, err
	}

	cfg = cfg.Override(config.Overrides{
		BaseURL:           o.URL,
		DefaultPostcode:   o.Postcode,
		OutputDir:         o.Output,
		Timeout:           o.Timeout,
		ConnectionTimeout: o.ConnectionTimeout,
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// Fetcher returns the catalog client described by cfg.
func (g Grub) Fetcher(cfg config.Config) catalog.Client {
	return catalog.New(cfg.BaseURL, g.version, catalog.NewHTTPClient(cfg.Timeout, cfg.ConnectionTimeout), g.logger)
}
