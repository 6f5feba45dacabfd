package grub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.followtheprocess.codes/grub/internal/catalog"
	"go.followtheprocess.codes/grub/internal/persist"
	"go.followtheprocess.codes/grub/internal/render"
	"go.followtheprocess.codes/grub/internal/restaurant"
	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/msg"
)

// lookup fetches, parses and ranks the restaurants for a single postcode.
//
// A malformed catalog response is returned as an error wrapping [restaurant.ErrMalformed],
// whether that means no results or a failure is up to the caller.
func (g Grub) lookup(ctx context.Context, logger *log.Logger, fetcher catalog.Fetcher, code string) ([]restaurant.Restaurant, error) {
	logger = logger.With(slog.String("postcode", code))

	start := time.Now()

	body, err := fetcher.Fetch(ctx, code)
	if err != nil {
		return nil, err
	}

	logger.Debug("Fetched catalog response", slog.Int("bytes", len(body)), slog.Duration("took", time.Since(start)))

	restaurants, err := restaurant.Parse(body)
	if err != nil {
		return nil, err
	}

	ranked := restaurant.Rank(restaurants)

	logger.Debug("Parsed and ranked restaurants", slog.Int("count", len(ranked)))

	return ranked, nil
}

// show runs the full pipeline for code, printing the listing and saving the results file.
//
// Nothing here is fatal, failures are reported to the user and show returns so
// the interactive loop can carry on.
func (g Grub) show(ctx context.Context, logger *log.Logger, fetcher catalog.Fetcher, persister persist.Persister, code string) {
	restaurants, err := g.lookup(ctx, logger, fetcher, code)

	switch {
	case errors.Is(err, restaurant.ErrMalformed):
		logger.Debug("Catalog response was malformed", slog.String("postcode", code), slog.String("error", err.Error()))
		msg.Fwarn(g.stdout, "Could not parse restaurants for %s, treating as no results", code)

		restaurants = nil
	case err != nil:
		msg.Ferror(g.stdout, "Could not fetch restaurants for %s: %v", code, err)
		return
	}

	if len(restaurants) == 0 {
		fmt.Fprintln(g.stdout, render.NoResults(code))
		fmt.Fprintln(g.stdout)

		return
	}

	fmt.Fprintln(g.stdout)
	fmt.Fprint(g.stdout, render.Console(restaurants, code, g.palette()))

	path, err := persister.Save(render.File(restaurants, code), code)
	if err != nil {
		msg.Ferror(g.stdout, "Failed to save results: %v", err)
		return
	}

	logger.Debug("Saved results", slog.String("path", path))
	msg.Fsuccess(g.stdout, "Results saved to %s", path)
	fmt.Fprintln(g.stdout)
}
