package main

import (
	"context"
	"os"

	"github.com/desertthunder/setlistx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup parses the cURL capture and writes the credentials file without touching YouTube Music.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	p := r.paths(cmd)

	if configPath := cmd.String("config"); configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			r.logger.Info("config file already exists", "path", configPath)
		} else if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file", "path", configPath, "error", err)
		} else {
			r.logger.Info("config file created", "path", configPath)
			r.writePlain("✓ Configuration written to %s\n", configPath)
		}
	}

	r.logger.Info("parsing cURL capture", "path", p.capture)

	headers, err := r.bootstrapper(p.capture, p.headers).Refresh()
	if err != nil {
		return r.handle(err, p)
	}

	r.writePlain("✓ Headers processed successfully (%d total)\n", len(headers))
	r.writePlain("Credentials saved to: %s\n", p.headers)
	r.writePlainln("Next steps:")
	r.writePlain("1. Run 'setlistx auth status' to check the proxy\n")
	r.writePlain("2. Run 'setlistx search \"Oasis - Wonderwall\"' to test authentication\n")

	return nil
}
