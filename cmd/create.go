package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/desertthunder/setlistx/internal/formatter"
	"github.com/desertthunder/setlistx/internal/shared"
	"github.com/desertthunder/setlistx/internal/tasks"
	"github.com/desertthunder/setlistx/internal/ui"
	"github.com/urfave/cli/v3"
)

const previewSize = 5

// filePaths are the input and output files of a run, resolved from flags then config.
type filePaths struct {
	setlist string
	capture string
	headers string
}

func (r *Runner) paths(cmd *cli.Command) filePaths {
	p := filePaths{
		setlist: cmd.String("setlist"),
		capture: cmd.String("capture"),
		headers: cmd.String("headers"),
	}
	if p.setlist == "" {
		p.setlist = r.config.Files.Setlist
	}
	if p.capture == "" {
		p.capture = r.config.Files.Capture
	}
	if p.headers == "" {
		p.headers = r.config.Files.Headers
	}
	return p
}

// Create reads the setlist, asks for a name and confirmation, then builds the playlist.
func (r *Runner) Create(ctx context.Context, cmd *cli.Command) error {
	p := r.paths(cmd)

	queries, err := shared.ReadSetlist(p.setlist)
	if err != nil {
		return r.handle(err, p)
	}
	if len(queries) == 0 {
		r.writePlain("%s\n", ui.Styles.Err(fmt.Sprintf("✗ No songs found in %s", p.setlist)))
		r.writeSetlistGuide(p.setlist)
		return nil
	}

	r.logger.Info("setlist loaded", "path", p.setlist, "songs", len(queries))
	r.writePlain("Read %d songs from %s\n", len(queries), p.setlist)
	r.writePreview(queries)

	if r.session == nil {
		if _, err := os.Stat(p.capture); errors.Is(err, os.ErrNotExist) {
			return r.handle(fmt.Errorf("%w: %s", shared.ErrCaptureNotFound, p.capture), p)
		}
	}

	name := cmd.String("name")
	if name == "" {
		if name, err = r.prompter.Ask("Playlist name", r.config.Playlist.DefaultName); err != nil {
			return r.handle(err, p)
		}
	}

	description := cmd.String("description")
	if description == "" {
		description = fmt.Sprintf("Setlist with %d songs imported from %s", len(queries), filepath.Base(p.setlist))
	}

	if !cmd.Bool("yes") {
		ok, err := r.prompter.Confirm(fmt.Sprintf("Create playlist '%s' with %d songs?", name, len(queries)))
		if err != nil {
			return r.handle(err, p)
		}
		if !ok {
			r.writePlain("Operation cancelled\n")
			return nil
		}
	}

	result, err := r.build(ctx, r.sessionFor(p.capture, p.headers), queries, name, description)
	if err != nil {
		return r.handle(err, p)
	}

	r.writeResult(result, p)

	if report := cmd.String("report"); report != "" {
		if format, err := formatter.WriteReport(result, report); err != nil {
			r.logger.Warn("failed to write report", "path", report, "error", err)
		} else {
			r.writePlain("Report written to %s (%s)\n", report, format)
		}
	}

	if cmd.Bool("open") {
		if err := r.openURL(shared.PlaylistURL(result.PlaylistID)); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
		}
	}

	return nil
}

// build runs the builder while a goroutine drains its progress updates into the logger.
func (r *Runner) build(ctx context.Context, session tasks.SessionProvider, queries []string, name, description string) (*tasks.BuildResult, error) {
	builder := tasks.NewPlaylistBuilder(session, r.config.Playlist.Privacy)

	progress := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.logProgress(progress)
	}()

	result, err := builder.Build(ctx, queries, name, description, progress)
	close(progress)
	<-done

	return result, err
}

func (r *Runner) logProgress(progress <-chan tasks.ProgressUpdate) {
	for update := range progress {
		if outcome, ok := update.Data.(tasks.SongOutcome); ok && outcome.Status != tasks.SongAdded {
			r.logger.Warn(update.Message)
			continue
		}
		r.logger.Info(update.Message, "phase", update.Phase)
	}
}

func (r *Runner) writePreview(queries []string) {
	r.writePlainln("Setlist preview:")
	for i, query := range queries {
		if i == previewSize {
			r.writePlain("   ... and %d more songs\n", len(queries)-previewSize)
			break
		}
		r.writePlain("   %d. %s\n", i+1, query)
	}
	r.writePlain("\n")
}

func (r *Runner) writeResult(result *tasks.BuildResult, p filePaths) {
	r.writePlain("\n%s\n", formatter.RenderSummary(result))

	r.writePlainln("%s", ui.Styles.OK(fmt.Sprintf("✓ Playlist '%s' created successfully!", result.PlaylistName)))
	r.writePlain("Songs added: %d/%d\n", result.Added, result.Attempted)

	if len(result.Failed) > 0 {
		r.writePlain("%s\n", ui.Styles.Warn("✗ Songs not added:"))
		for _, query := range result.Failed {
			r.writePlain("   - %s\n", query)
		}
	}

	r.writePlainln("Playlist URL: %s", shared.PlaylistURL(result.PlaylistID))
	r.writePlainln("To use again:")
	r.writePlain("   1. Update %s with new songs\n", p.setlist)
	r.writePlain("   2. Run: setlistx\n")
}
