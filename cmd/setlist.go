package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/setlistx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setlist prints every query the setlist resolves to.
func (r *Runner) Setlist(ctx context.Context, cmd *cli.Command) error {
	p := r.paths(cmd)

	queries, err := shared.ReadSetlist(p.setlist)
	if err != nil {
		return r.handle(err, p)
	}

	if cmd.Bool("json") {
		return r.writeJSON(struct {
			File  string   `json:"file"`
			Count int      `json:"count"`
			Songs []string `json:"songs"`
		}{p.setlist, len(queries), queries}, true)
	}

	if len(queries) == 0 {
		r.writePlain("No songs found in %s\n", p.setlist)
		r.writeSetlistGuide(p.setlist)
		return nil
	}

	r.writePlain("%d songs in %s:\n\n", len(queries), p.setlist)
	for i, query := range queries {
		r.writePlain("%3d. %s\n", i+1, query)
	}
	return nil
}

// Search opens a session and shows the candidates for one query, first result marked.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	p := r.paths(cmd)

	query := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("%w: search query is required", shared.ErrMissingArgument)
	}

	limit := int(cmd.Int("limit"))
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be positive", shared.ErrInvalidArgument)
	}

	svc, err := r.sessionFor(p.capture, p.headers).Open(ctx)
	if err != nil {
		return r.handle(err, p)
	}

	r.logger.Info("searching youtube music", "query", query, "limit", limit)

	tracks, err := svc.Search(ctx, query, limit)
	if err != nil {
		return r.handle(fmt.Errorf("%w: %v", shared.ErrSearchFailed, err), p)
	}

	if cmd.Bool("json") {
		return r.writeJSON(tracks, true)
	}

	if len(tracks) == 0 {
		r.writePlain("✗ Not found: %s\n", query)
		return nil
	}

	r.writePlain("Results for %q:\n\n", query)
	for i, track := range tracks {
		marker := " "
		if i == 0 {
			marker = "*"
		}
		line := fmt.Sprintf("%s %d. %s - %s", marker, i+1, track.Artist, track.Title)
		if track.Album != "" {
			line += fmt.Sprintf(" (%s)", track.Album)
		}
		r.writePlain("%s [%s]\n", line, track.ID)
	}
	r.writePlainln("* is the result setlistx would add")
	return nil
}
