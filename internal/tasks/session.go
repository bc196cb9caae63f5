package tasks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/setlistx/internal/services"
	"github.com/desertthunder/setlistx/internal/shared"
	"github.com/gofrs/flock"
)

// Connector builds an authenticated service from a credentials file.
type Connector func(ctx context.Context, artifactPath string) (services.Service, error)

// YouTubeConnector returns a [Connector] that authenticates a [services.YouTubeService] against the proxy at proxyURL.
func YouTubeConnector(proxyURL string, client *http.Client) Connector {
	return func(ctx context.Context, artifactPath string) (services.Service, error) {
		svc := services.NewYouTubeService(proxyURL, client)
		if err := svc.Authenticate(ctx, map[string]string{"auth_file": artifactPath}); err != nil {
			return nil, err
		}
		return svc, nil
	}
}

// SessionOpts configures a [SessionBootstrapper].
type SessionOpts struct {
	CapturePath  string    // cURL capture to read (paste.txt)
	ArtifactPath string    // credentials file to write (headers_auth.json)
	Connector    Connector // defaults to YouTubeConnector("", nil)
	Logger       *log.Logger
}

// SessionBootstrapper turns a cURL capture into a credentials file and an authenticated service.
//
// It implements [SessionProvider].
type SessionBootstrapper struct {
	capturePath  string
	artifactPath string
	connect      Connector
	logger       *log.Logger
}

// NewSessionBootstrapper creates a SessionBootstrapper from opts.
func NewSessionBootstrapper(opts SessionOpts) *SessionBootstrapper {
	if opts.Connector == nil {
		opts.Connector = YouTubeConnector("", nil)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &SessionBootstrapper{
		capturePath:  opts.CapturePath,
		artifactPath: opts.ArtifactPath,
		connect:      opts.Connector,
		logger:       opts.Logger,
	}
}

// Refresh parses the capture and overwrites the credentials file with the extracted headers.
//
// Errors wrap [shared.ErrSessionUnavailable] together with the underlying cause
// ([shared.ErrCaptureNotFound], [shared.ErrMissingCredentials], [shared.ErrArtifactLocked], ...).
func (s *SessionBootstrapper) Refresh() (shared.HeaderMap, error) {
	headers, err := shared.ParseCaptureFile(s.capturePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrSessionUnavailable, err)
	}

	s.logger.Debug("headers found", "keys", headers.Keys())
	s.logger.Info("headers processed", "capture", s.capturePath, "total", len(headers))

	if err := s.persist(headers); err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrSessionUnavailable, err)
	}

	s.logger.Info("credentials saved", "path", s.artifactPath)
	return headers, nil
}

// persist writes headers to the credentials file while holding an exclusive lock beside it.
func (s *SessionBootstrapper) persist(headers shared.HeaderMap) error {
	if err := os.MkdirAll(filepath.Dir(s.artifactPath), 0755); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	lock := flock.New(s.artifactPath + ".lock")

	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock credentials file: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrArtifactLocked, s.artifactPath)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Warn("failed to release credentials lock", "error", err)
		}
	}()

	return shared.WriteHeaders(s.artifactPath, headers)
}

// Open refreshes the credentials file from the capture and connects a service with it.
func (s *SessionBootstrapper) Open(ctx context.Context) (services.Service, error) {
	if _, err := s.Refresh(); err != nil {
		return nil, err
	}

	svc, err := s.connect(ctx, s.artifactPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrSessionUnavailable, err)
	}

	s.logger.Debug("session established", "service", svc.Name())
	return svc, nil
}
