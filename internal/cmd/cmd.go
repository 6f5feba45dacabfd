// Package cmd implements grub's CLI.
package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/grub/internal/grub"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

const long = `
grub searches the default postcode straight away, then asks for more
postcodes one at a time until you type 'exit'.

For each postcode the top 10 restaurants from the catalog are shown best
rated first, and saved to a timestamped text file under the output directory
(FetchedRestaurants by default).

Settings may also be given in a config file with '--config', either TOML
or YAML. Flags take precedence over the file.
`

// Build builds and returns the grub CLI.
func Build() (*cli.Command, error) {
	var options grub.Options

	return cli.New(
		"grub",
		cli.Short("Find the best rated takeaways near a UK postcode"),
		cli.Long(long),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Search interactively, starting with the default postcode", "grub"),
		cli.Example("Start with a different postcode", "grub --postcode 'W1A 1AA'"),
		cli.Example("Save results somewhere else", "grub --output ./results"),
		cli.Example("Search once and print JSON", "grub search EC4M7RF --format json"),
		cli.Flag(&options.ConfigFile, "config", 'c', "Path to a .toml or .yaml config file"),
		cli.Flag(&options.URL, "url", flag.NoShortHand, "Base URL of the restaurant catalog (default: Just Eat UK)"),
		cli.Flag(&options.Postcode, "postcode", 'p', "Postcode to search on startup (default: EC4M7RF)"),
		cli.Flag(&options.Output, "output", 'o', "Directory to save results in (default: FetchedRestaurants)"),
		cli.Flag(&options.Timeout, "timeout", flag.NoShortHand, "Timeout for each catalog request (default: 30s)"),
		cli.Flag(
			&options.ConnectionTimeout,
			"connection-timeout",
			flag.NoShortHand,
			"Connection timeout for each catalog request (default: 10s)",
		),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.SubCommands(search),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := options.Config()
			if err != nil {
				return err
			}

			app := grub.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())

			return app.Interactive(ctx, app.Fetcher(cfg), cfg)
		}),
	)
}
