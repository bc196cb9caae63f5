// Package tasks turns a setlist into a YouTube Music playlist with real-time progress reporting.
//
// # Session Bootstrap
//
// [SessionBootstrapper] reads the user's "Copy as cURL" capture, writes the extracted headers to the
// credentials file under a file lock, and connects a [services.Service] with that file.
// A missing or incomplete capture yields an error wrapping [shared.ErrSessionUnavailable];
// callers turn it into instructions rather than a crash.
//
// # Playlist Build
//
// [PlaylistBuilder.Build] runs Idle → SessionEstablished → PlaylistCreated → per-song → Summarized:
//   - Opens a session through a [SessionProvider]
//   - Creates the playlist (failure here is fatal)
//   - Searches each query with [SearchLimit] and adds the first result
//   - Records every song as added, not found, or failed without aborting the batch
//
// # Progress Reporting
//
// Operations send [ProgressUpdate] values on an optional channel.
// Updates use select with default to prevent blocking; the [BuildResult] is the authoritative record.
package tasks
