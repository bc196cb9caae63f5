package main

import (
	"context"

	"github.com/desertthunder/setlistx/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthStatus checks the proxy's /health endpoint and validates the local credentials file.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	p := r.paths(cmd)

	r.logger.Info("checking auth status", "proxy", r.config.Credentials.YouTube.ProxyURL)

	health, err := r.api.Health(ctx)
	if err != nil {
		return r.handle(err, p)
	}

	r.writePlain("✓ Service is healthy\n")
	r.writePlain("Status: %s\n", health.Status)
	if health.Authenticated {
		r.writePlain("Authentication: ✓ Authenticated\n")
	} else {
		r.writePlain("Authentication: ✗ Not authenticated\n")
	}

	if headers, err := shared.LoadHeaders(p.headers); err != nil {
		r.logger.Debug("credentials file unusable", "path", p.headers, "error", err)
		r.writePlain("Credentials: ✗ %s missing or invalid (run 'setlistx setup')\n", p.headers)
	} else {
		r.writePlain("Credentials: ✓ %s (%d headers)\n", p.headers, len(headers))
	}

	return nil
}
