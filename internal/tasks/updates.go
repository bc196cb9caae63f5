package tasks

import (
	"fmt"

	"github.com/desertthunder/setlistx/internal/services"
)

// ProgressUpdate represents a progress event during a playlist build.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data ([*services.Playlist], [SongOutcome], [*BuildResult])
}

// Operation phase enumeration
type Phase int

const (
	Bootstrap Phase = iota
	CreatePlaylist
	SearchTracks
	AddTrack
	Summarize
)

func (p Phase) String() string {
	switch p {
	case Bootstrap:
		return "bootstrap"
	case CreatePlaylist:
		return "create_playlist"
	case SearchTracks:
		return "search_tracks"
	case AddTrack:
		return "add_track"
	case Summarize:
		return "summarize"
	default:
		return ""
	}
}

func bootstrapUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   Bootstrap,
		Step:    1,
		Total:   1,
		Message: "Opening YouTube Music session...",
	}
}

func createPlaylistUpdate(name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CreatePlaylist,
		Step:    0,
		Total:   1,
		Message: fmt.Sprintf("Creating playlist: %s", name),
	}
}

func playlistCreatedUpdate(pl *services.Playlist) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CreatePlaylist,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Playlist created with ID: %s", pl.ID),
		Data:    pl,
	}
}

func searchTrackUpdate(step, total int, query string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SearchTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Searching: %s", step, total, query),
	}
}

func songOutcomeUpdate(step, total int, outcome SongOutcome) ProgressUpdate {
	var msg string
	switch outcome.Status {
	case SongAdded:
		msg = fmt.Sprintf("[%d/%d] ✓ Added: %s - %s", step, total, outcome.Track.Artist, outcome.Track.Title)
	case SongNotFound:
		msg = fmt.Sprintf("[%d/%d] ✗ Not found: %s", step, total, outcome.Query)
	default:
		msg = fmt.Sprintf("[%d/%d] ✗ Error with '%s': %v", step, total, outcome.Query, outcome.Err)
	}

	return ProgressUpdate{
		Phase:   AddTrack,
		Step:    step,
		Total:   total,
		Message: msg,
		Data:    outcome,
	}
}

func summaryUpdate(result *BuildResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Summarize,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Songs added: %d/%d", result.Added, result.Attempted),
		Data:    result,
	}
}
