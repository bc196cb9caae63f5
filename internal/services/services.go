// package services defines interface Service for interacting with HTTP APIs
//
// YouTube Music (via proxy)
package services

import (
	"context"
)

// SearchFilter restricts search results to songs, matching the proxy's "songs" filter.
const SearchFilter = "songs"

// Service defines the interface for a music service that can create and populate playlists.
type Service interface {
	// Authenticate prepares the service for authenticated calls.
	// Returns an error if the credentials are unusable.
	Authenticate(ctx context.Context, credentials map[string]string) error

	// CreatePlaylist creates an empty playlist and returns it with its remote ID set.
	CreatePlaylist(ctx context.Context, playlist Playlist) (*Playlist, error)

	// Search returns up to limit candidate tracks for a free-text query, in service order.
	Search(ctx context.Context, query string, limit int) ([]Track, error)

	// AddPlaylistItems appends tracks to an existing playlist.
	AddPlaylistItems(ctx context.Context, playlistID string, trackIDs []string) error

	// Name returns the name of the service (e.g., "YouTube Music")
	Name() string
}

// Playlist represents a music playlist on a service
type Playlist struct {
	ID          string
	Name        string
	Description string
	Privacy     string // PRIVATE, PUBLIC or UNLISTED
}

// Track represents a search candidate returned by a service
type Track struct {
	ID     string
	Title  string
	Artist string
	Album  string
}
