// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/desertthunder/setlistx/internal/services"
	"github.com/desertthunder/setlistx/internal/shared"
)

// Capture is a minimal "Copy as cURL" capture carrying both required credentials.
const Capture = `curl 'https://music.youtube.com/youtubei/v1/browse' \
  -H 'authorization: SAPISIDHASH 1700000000_abc' \
  -b 'SAPISID=abc; __Secure-3PAPISID=abc' \
  --data-raw '{}'`

// MockService is a test double for [services.Service].
//
// Search answers from Results keyed by query; queries in SearchErrs fail, as do adds of IDs in AddErrs.
type MockService struct {
	mu sync.Mutex

	Results    map[string][]services.Track
	SearchErrs map[string]error
	AddErrs    map[string]error
	CreateErr  error
	AuthErr    error
	PlaylistID string

	Created      []services.Playlist
	Searches     []string
	SearchLimits []int
	Added        []string
	AuthFile     string
}

func (m *MockService) Authenticate(ctx context.Context, credentials map[string]string) error {
	if m.AuthErr != nil {
		return m.AuthErr
	}
	m.AuthFile = credentials["auth_file"]
	return nil
}

func (m *MockService) CreatePlaylist(ctx context.Context, playlist services.Playlist) (*services.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.Created = append(m.Created, playlist)

	playlist.ID = m.PlaylistID
	if playlist.ID == "" {
		playlist.ID = "PLmock"
	}
	return &playlist, nil
}

func (m *MockService) Search(ctx context.Context, query string, limit int) ([]services.Track, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Searches = append(m.Searches, query)
	m.SearchLimits = append(m.SearchLimits, limit)
	if err, ok := m.SearchErrs[query]; ok {
		return nil, err
	}
	return m.Results[query], nil
}

func (m *MockService) AddPlaylistItems(ctx context.Context, playlistID string, trackIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range trackIDs {
		if err, ok := m.AddErrs[id]; ok {
			return err
		}
	}
	m.Added = append(m.Added, trackIDs...)
	return nil
}

func (m *MockService) Name() string { return "mock" }

// MockSession is a test double for tasks.SessionProvider.
type MockSession struct {
	Service services.Service
	Err     error
	Opened  int
}

func (m *MockSession) Open(ctx context.Context) (services.Service, error) {
	m.Opened++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Service, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// WriteHeadersFile writes a valid credentials file into a temp dir and returns its path.
func WriteHeadersFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "headers_auth.json")
	headers := shared.HeaderMap{"authorization": "SAPISIDHASH test", "cookie": "SAPISID=test"}
	if err := shared.WriteHeaders(path, headers); err != nil {
		t.Fatalf("Failed to write headers file: %v", err)
	}
	return path
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("File should not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
