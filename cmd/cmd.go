// submodule cmd contains command definitions
package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/setlistx/internal/shared"
	"github.com/urfave/cli/v3"
)

func (r *Runner) app() *cli.Command {
	root := &cli.Command{
		Name:    "setlistx",
		Usage:   "Turn a concert setlist into a YouTube Music playlist",
		Version: "0.1.0",
		Flags:   append(fileFlags(), createFlags()...),
		Before:  r.before,
		Action:  r.Create,
		Commands: []*cli.Command{
			createCommand(r),
			setupCommand(r),
			setlistCommand(r),
			searchCommand(r),
			authCommand(r),
		},
	}
	withBefore(root.Commands, r.before)
	return root
}

// withBefore installs fn on every subcommand so flags given after the command name still apply.
func withBefore(commands []*cli.Command, fn cli.BeforeFunc) {
	for _, cmd := range commands {
		if cmd.Before == nil {
			cmd.Before = fn
		}
		withBefore(cmd.Commands, fn)
	}
}

// before applies the global --verbose flag.
func (r *Runner) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}
	return ctx, nil
}

// fileFlags locate the setlist, capture and credentials files. Empty values fall back to config.toml.
func fileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
		&cli.StringFlag{
			Name:    "setlist",
			Aliases: []string{"s"},
			Usage:   "Setlist file, one \"Artist - Song\" per line",
		},
		&cli.StringFlag{
			Name:  "capture",
			Usage: "File holding a \"Copy as cURL\" capture from music.youtube.com",
		},
		&cli.StringFlag{
			Name:  "headers",
			Usage: "Credentials file generated from the capture",
		},
	}
}

func createFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   "Playlist name (skips the prompt)",
		},
		&cli.StringFlag{
			Name:    "description",
			Aliases: []string{"d"},
			Usage:   "Playlist description",
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "Create without asking for confirmation",
		},
		&cli.BoolFlag{
			Name:  "open",
			Usage: "Open the playlist in a browser when done",
		},
		&cli.StringFlag{
			Name:    "report",
			Aliases: []string{"o"},
			Usage:   "Write a report of every song (.csv, .md or .txt)",
		},
	}
}

// createCommand runs the full flow; it is also the root action
func createCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "create",
		Usage:  "Create a playlist from the setlist",
		Action: r.Create,
	}
}

// setupCommand only refreshes the credentials file from the capture
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Parse the cURL capture and write the credentials file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Also create a configuration file from the template at this path",
			},
		},
		Action: r.Setup,
	}
}

// setlistCommand previews the parsed setlist
func setlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setlist",
		Usage: "Show the songs that would be searched",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Setlist,
	}
}

// searchCommand shows the candidates a query resolves to
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search YouTube Music for a single song",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results",
				Value: 5,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Search,
	}
}

// authCommand handles authentication checks
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authentication helpers",
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Check the proxy and the local credentials file",
				Action: r.AuthStatus,
			},
		},
	}
}
