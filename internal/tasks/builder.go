package tasks

import (
	"context"
	"fmt"

	"github.com/desertthunder/setlistx/internal/services"
	"github.com/desertthunder/setlistx/internal/shared"
)

// SearchLimit is the number of candidates requested per song; only the first is used.
const SearchLimit = 5

// SongStatus is the terminal state of a single song in a build.
type SongStatus int

const (
	SongAdded SongStatus = iota
	SongNotFound
	SongFailed
)

func (s SongStatus) String() string {
	switch s {
	case SongAdded:
		return "added"
	case SongNotFound:
		return "not_found"
	case SongFailed:
		return "failed"
	default:
		return ""
	}
}

// SongOutcome records what happened to one song query.
type SongOutcome struct {
	Query  string          // Query as read from the setlist
	Track  *services.Track // First search result (nil if none)
	Status SongStatus      // Terminal state
	Err    error           // Search or add error for [SongFailed]
}

// BuildResult summarizes a playlist build. Added + len(Failed) always equals Attempted.
type BuildResult struct {
	PlaylistID   string        // Remote playlist ID
	PlaylistName string        // Name the playlist was created with
	Attempted    int           // Songs processed
	Added        int           // Songs added to the playlist
	Failed       []string      // Queries not added, in setlist order
	Outcomes     []SongOutcome // Per-song outcomes, in setlist order
}

// SuccessRate returns the share of attempted songs that were added, as a percentage.
func (r *BuildResult) SuccessRate() float64 {
	if r.Attempted == 0 {
		return 0
	}
	return float64(r.Added) / float64(r.Attempted) * 100
}

func (r *BuildResult) record(outcome SongOutcome) {
	r.Attempted++
	r.Outcomes = append(r.Outcomes, outcome)
	if outcome.Status == SongAdded {
		r.Added++
	} else {
		r.Failed = append(r.Failed, outcome.Query)
	}
}

// SessionProvider opens an authenticated music service session.
type SessionProvider interface {
	Open(ctx context.Context) (services.Service, error)
}

// PlaylistBuilder creates a playlist from a setlist on a single service session.
type PlaylistBuilder struct {
	session SessionProvider
	privacy string
}

// NewPlaylistBuilder creates a PlaylistBuilder. Playlists are created with the given privacy status.
func NewPlaylistBuilder(session SessionProvider, privacy string) *PlaylistBuilder {
	return &PlaylistBuilder{session: session, privacy: privacy}
}

// sendProgress sends a progress update through the channel without blocking.
func (b *PlaylistBuilder) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Build opens a session, creates the playlist, and adds the first search result for every query.
//
// Session and creation failures are returned as errors with a nil result. Per-song failures never
// abort the loop; they are recorded in the result. Cancelling ctx marks the remaining songs failed.
func (b *PlaylistBuilder) Build(ctx context.Context, queries []string, name, description string, progress chan<- ProgressUpdate) (*BuildResult, error) {
	if len(queries) == 0 {
		return nil, fmt.Errorf("%w: setlist is empty", shared.ErrInvalidInput)
	}
	if b.session == nil {
		return nil, fmt.Errorf("%w: no session provider", shared.ErrSessionUnavailable)
	}

	b.sendProgress(progress, bootstrapUpdate())
	svc, err := b.session.Open(ctx)
	if err != nil {
		return nil, err
	}

	b.sendProgress(progress, createPlaylistUpdate(name))
	playlist, err := svc.CreatePlaylist(ctx, services.Playlist{
		Name:        name,
		Description: description,
		Privacy:     b.privacy,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create playlist: %v", shared.ErrAPIRequest, err)
	}
	b.sendProgress(progress, playlistCreatedUpdate(playlist))

	result := &BuildResult{
		PlaylistID:   playlist.ID,
		PlaylistName: name,
		Failed:       []string{},
		Outcomes:     make([]SongOutcome, 0, len(queries)),
	}

	total := len(queries)
	for i, query := range queries {
		var outcome SongOutcome
		if err := ctx.Err(); err != nil {
			outcome = SongOutcome{Query: query, Status: SongFailed, Err: err}
		} else {
			b.sendProgress(progress, searchTrackUpdate(i+1, total, query))
			outcome = b.addSong(ctx, svc, playlist.ID, query)
		}

		result.record(outcome)
		b.sendProgress(progress, songOutcomeUpdate(i+1, total, outcome))
	}

	b.sendProgress(progress, summaryUpdate(result))
	return result, nil
}

// addSong searches for query and adds the first result to the playlist.
func (b *PlaylistBuilder) addSong(ctx context.Context, svc services.Service, playlistID, query string) SongOutcome {
	outcome := SongOutcome{Query: query}

	tracks, err := svc.Search(ctx, query, SearchLimit)
	if err != nil {
		outcome.Status = SongFailed
		outcome.Err = err
		return outcome
	}
	if len(tracks) == 0 {
		outcome.Status = SongNotFound
		outcome.Err = shared.ErrTrackNotFound
		return outcome
	}

	track := tracks[0]
	outcome.Track = &track
	if track.ID == "" {
		outcome.Status = SongFailed
		outcome.Err = fmt.Errorf("%w: first result has no video ID", shared.ErrTrackNotFound)
		return outcome
	}

	if err := svc.AddPlaylistItems(ctx, playlistID, []string{track.ID}); err != nil {
		outcome.Status = SongFailed
		outcome.Err = err
		return outcome
	}

	outcome.Status = SongAdded
	return outcome
}
