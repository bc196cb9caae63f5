package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")

	// Capture and session errors
	ErrCaptureNotFound    = fmt.Errorf("capture file not found")
	ErrSessionUnavailable = fmt.Errorf("session unavailable")
	ErrArtifactLocked     = fmt.Errorf("credentials file is locked by another process")
	ErrNotAuthenticated   = fmt.Errorf("not authenticated")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrTrackNotFound      = fmt.Errorf("track not found")
	ErrSearchFailed       = fmt.Errorf("search failed")

	// Input validation errors
	ErrSetlistNotFound   = fmt.Errorf("setlist file not found")
	ErrSetlistUnreadable = fmt.Errorf("setlist file unreadable")
	ErrInvalidInput      = fmt.Errorf("invalid input")
	ErrMissingArgument   = fmt.Errorf("missing required argument")
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
	ErrCancelled         = fmt.Errorf("cancelled by user")
)
