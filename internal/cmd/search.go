package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/grub/internal/grub"
)

const searchLong = `
The search command looks up a single postcode without prompting and writes the
ranked results to stdout, by default in the same layout as the saved text files.

Pass '--format' to get machine readable output instead, and '--save' to also
save the text listing to the output directory as the interactive mode does.
`

// search returns the grub search subcommand.
func search() (*cli.Command, error) {
	var (
		options       grub.Options
		searchOptions grub.SearchOptions
	)

	return cli.New(
		"search",
		cli.Short("Search a single postcode and print the results"),
		cli.Long(searchLong),
		cli.Example("Print the top restaurants for a postcode", "grub search EC4M7RF"),
		cli.Example("Export as YAML and keep a copy", "grub search 'W1A 1AA' --format yaml --save"),
		cli.Arg(&searchOptions.Postcode, "postcode", "UK postcode to search"),
		cli.Flag(
			&searchOptions.Format,
			"format",
			'f',
			"Output format, one of (text|json|yaml|toml)",
			cli.FlagDefault("text"),
		),
		cli.Flag(&searchOptions.Save, "save", 's', "Also save the results to the output directory"),
		cli.Flag(&options.ConfigFile, "config", 'c', "Path to a .toml or .yaml config file"),
		cli.Flag(&options.URL, "url", flag.NoShortHand, "Base URL of the restaurant catalog (default: Just Eat UK)"),
		cli.Flag(&options.Output, "output", 'o', "Directory to save results in (default: FetchedRestaurants)"),
		cli.Flag(&options.Timeout, "timeout", flag.NoShortHand, "Timeout for the catalog request (default: 30s)"),
		cli.Flag(
			&options.ConnectionTimeout,
			"connection-timeout",
			flag.NoShortHand,
			"Connection timeout for the catalog request (default: 10s)",
		),
		cli.Flag(&searchOptions.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := options.Config()
			if err != nil {
				return err
			}

			app := grub.New(searchOptions.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())

			return app.Search(ctx, app.Fetcher(cfg), cfg, searchOptions)
		}),
	)
}
