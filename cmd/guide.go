package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/desertthunder/setlistx/internal/shared"
	"github.com/desertthunder/setlistx/internal/ui"
)

// handle prints guidance for expected failures and returns nil for them.
// Anything else is returned unchanged for main to report.
func (r *Runner) handle(err error, p filePaths) error {
	if !r.explain(err, p) {
		return err
	}
	r.logger.Debug("handled error", "error", err)
	return nil
}

func (r *Runner) explain(err error, p filePaths) bool {
	var missing *shared.MissingHeadersError

	switch {
	case errors.Is(err, shared.ErrCancelled):
		r.writePlain("Operation cancelled\n")
	case errors.Is(err, shared.ErrSetlistNotFound):
		r.writeError("File '%s' not found", p.setlist)
		r.writeSetlistGuide(p.setlist)
	case errors.Is(err, shared.ErrSetlistUnreadable):
		r.writeError("Error reading file: %v", err)
		r.writeHint("'%s' must be a readable text file", p.setlist)
	case errors.Is(err, shared.ErrCaptureNotFound):
		r.writeError("No valid headers found!")
		r.writeCaptureGuide(p.capture)
	case errors.As(err, &missing):
		r.writeError("Missing critical headers: %s", strings.Join(missing.Missing, ", "))
		r.writeHint("Make sure the cURL command in %s is complete", p.capture)
	case errors.Is(err, shared.ErrArtifactLocked):
		r.writeError("%s is being written by another setlistx process", p.headers)
		r.writeHint("Wait for it to finish and run setlistx again")
	case errors.Is(err, shared.ErrSessionUnavailable):
		r.writeError("Could not open a YouTube Music session: %v", err)
		r.writeHint("Verify %s contains a valid cURL command", p.capture)
	case errors.Is(err, shared.ErrSearchFailed):
		r.writeError("Error searching YouTube Music: %v", err)
		r.writeHint("Check the proxy with 'setlistx auth status' and refresh %s if the session expired", p.capture)
	case errors.Is(err, shared.ErrAPIRequest):
		r.writeError("Error creating playlist: %v", err)
		r.writeHint("Check the proxy with 'setlistx auth status' and refresh %s if the session expired", p.capture)
	case errors.Is(err, shared.ErrServiceUnavailable):
		r.writeError("YouTube Music proxy unavailable at %s", r.config.Credentials.YouTube.ProxyURL)
		r.writeHint("Start the proxy or set credentials.youtube.proxy_url in config.toml")
	default:
		return false
	}
	return true
}

func (r *Runner) writeError(format string, args ...any) {
	r.writePlain("%s\n", ui.Styles.Err("✗ "+fmt.Sprintf(format, args...)))
}

func (r *Runner) writeHint(format string, args ...any) {
	r.writePlain("%s\n", ui.Styles.Help(fmt.Sprintf(format, args...)))
}

func (r *Runner) writeCaptureGuide(capturePath string) {
	r.writePlainln("To get started:")
	r.writePlain("1. Go to https://music.youtube.com in Chrome\n")
	r.writePlain("2. Open DevTools (F12) → Network tab\n")
	r.writePlain("3. Find any POST request to 'browse?key='\n")
	r.writePlain("4. Right-click → Copy → Copy as cURL\n")
	r.writePlain("5. Paste the entire cURL command into '%s'\n", capturePath)
	r.writePlain("6. Run setlistx again\n")
}

func (r *Runner) writeSetlistGuide(setlistPath string) {
	r.writeHint("Create a '%s' file with format:", setlistPath)
	r.writePlain("   Artist - Song\n")
	r.writePlain("   Oasis - Wonderwall\n")
	r.writePlain("   Billy Idol - White Wedding\n")
}
