package grub

import (
	"context"
	"fmt"
	"log/slog"

	"go.followtheprocess.codes/grub/internal/catalog"
	"go.followtheprocess.codes/grub/internal/config"
	"go.followtheprocess.codes/grub/internal/format"
	"go.followtheprocess.codes/grub/internal/persist"
	"go.followtheprocess.codes/grub/internal/postcode"
	"go.followtheprocess.codes/grub/internal/render"
	"go.followtheprocess.codes/grub/internal/restaurant"
	"go.followtheprocess.codes/msg"
)

// SearchOptions are the options passed to the search subcommand.
type SearchOptions struct {
	// Postcode is the UK postcode to search.
	Postcode string

	// Format is the output format, one of text, json, yaml or toml.
	Format string

	// Save, if true, also saves the text listing to the output directory.
	Save bool

	// Debug enables debug logging.
	Debug bool
}

// Search implements the search subcommand, a single non-interactive search whose
// results are written to stdout in the requested format.
//
// Unlike the interactive loop there's nothing to carry on with so every failure,
// including a malformed catalog response, is returned.
func (g Grub) Search(ctx context.Context, fetcher catalog.Fetcher, cfg config.Config, options SearchOptions) error {
	logger := g.logger.Prefixed("search")

	logger.Debug("Search configuration", slog.String("options", fmt.Sprintf("%+v", options)))

	if err := postcode.Validate(options.Postcode); err != nil {
		return err
	}

	exporter, err := format.New(options.Format)
	if err != nil {
		return err
	}

	restaurants, err := g.lookup(ctx, logger, fetcher, options.Postcode)
	if err != nil {
		return fmt.Errorf("could not get restaurants for %s: %w", options.Postcode, err)
	}

	if restaurants == nil {
		restaurants = []restaurant.Restaurant{}
	}

	results := restaurant.Results{
		Postcode:    options.Postcode,
		Restaurants: restaurants,
	}

	if err := exporter.Export(g.stdout, results); err != nil {
		return fmt.Errorf("could not export results as %s: %w", options.Format, err)
	}

	if !options.Save || len(restaurants) == 0 {
		return nil
	}

	path, err := persist.New(cfg.OutputDir).Save(render.File(restaurants, options.Postcode), options.Postcode)
	if err != nil {
		return err
	}

	msg.Fsuccess(g.stderr, "Results saved to %s", path)

	return nil
}
