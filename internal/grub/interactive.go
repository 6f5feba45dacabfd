package grub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.followtheprocess.codes/grub/internal/catalog"
	"go.followtheprocess.codes/grub/internal/config"
	"go.followtheprocess.codes/grub/internal/persist"
	"go.followtheprocess.codes/grub/internal/postcode"
	"go.followtheprocess.codes/msg"
)

// exitCommand ends the interactive loop, matched case insensitively.
const exitCommand = "exit"

// maxReadFailures is how many reads in a row may fail before stdin is treated as closed.
const maxReadFailures = 3

// Interactive implements the root command: search the default postcode then keep
// asking for postcodes and searching them until the user types "exit" or input ends.
//
// Invalid postcodes, unreadable input, fetch, parse and save failures are all
// reported and the loop carries on, only cancellation of ctx is returned as an error.
func (g Grub) Interactive(ctx context.Context, fetcher catalog.Fetcher, cfg config.Config) error {
	logger := g.logger.Prefixed("interactive")

	logger.Debug("Interactive configuration", slog.String("config", fmt.Sprintf("%+v", cfg)))

	persister := persist.New(cfg.OutputDir)
	prompter := NewPrompter(g.stdin, g.stdout)

	g.banner()

	fmt.Fprintf(g.stdout, "Fetching restaurants for default postcode: %s\n", cfg.DefaultPostcode)
	g.show(ctx, logger, fetcher, persister, cfg.DefaultPostcode)

	failures := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		input, err := prompter.Prompt(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debug("No more input", slog.String("reason", err.Error()))
				break
			}

			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			failures++
			msg.Ferror(g.stdout, "Input failed: %v", err)

			if failures >= maxReadFailures {
				logger.Debug("Giving up on input", slog.Int("failures", failures))
				break
			}

			continue
		}

		failures = 0

		input = strings.TrimSpace(input)

		if strings.EqualFold(input, exitCommand) {
			break
		}

		if err := postcode.Validate(input); err != nil {
			logger.Debug("Rejected input", slog.String("input", input))
			msg.Ferror(g.stdout, "Invalid postcode format %q, try again", input)
			fmt.Fprintln(g.stdout)

			continue
		}

		g.show(ctx, logger, fetcher, persister, input)
	}

	fmt.Fprintln(g.stdout, "Goodbye")

	return nil
}
