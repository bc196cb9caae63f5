// Package services defines the [Service] interface for music streaming providers and implements it for YouTube Music.
//
// # YouTube Music Implementation
//
// [YouTubeService] communicates with the FastAPI proxy server wrapping ytmusicapi.
//
// The proxy handles YouTube Music request signing.
// The credentials file path is sent via X-Auth-File header on each request.
// All operations are synchronous HTTP calls to the proxy endpoints.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [shared.ErrNotAuthenticated] : Authenticate() not called
//   - [shared.ErrAPIRequest] : HTTP request failed or returned a non-2xx status
//
// # API Mappings
//
// Search results are decoded into [Track] at the boundary; callers never see the proxy's JSON shape.
package services
