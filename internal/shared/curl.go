// Utilities for parsing browser "Copy as cURL" captures.
package shared

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"
)

// HeaderMap maps lower-cased header names to values for an authenticated browser session.
type HeaderMap map[string]string

// RequiredHeaders lists the keys a capture must provide for the session to be usable.
var RequiredHeaders = []string{"authorization", "cookie"}

// DefaultHeaders are applied to a parsed capture for every key it does not set explicitly.
var DefaultHeaders = map[string]string{
	"accept":                        "*/*",
	"accept-language":               "en-US,en;q=0.9",
	"content-type":                  "application/json",
	"origin":                        "https://music.youtube.com",
	"referer":                       "https://music.youtube.com/",
	"x-origin":                      "https://music.youtube.com",
	"x-youtube-bootstrap-logged-in": "true",
	"x-youtube-client-name":         "67",
	"x-youtube-client-version":      "1.20250811.03.00",
}

// MissingHeadersError reports which required headers were absent from a capture.
type MissingHeadersError struct {
	Missing []string
}

func (e *MissingHeadersError) Error() string {
	return fmt.Sprintf("%v: capture is missing %s", ErrMissingCredentials, strings.Join(e.Missing, ", "))
}

func (e *MissingHeadersError) Unwrap() error {
	return ErrMissingCredentials
}

type tokenKind int

const (
	headerToken tokenKind = iota
	cookieToken
)

// captureToken is a single quoted flag argument found in a capture fragment.
type captureToken struct {
	kind  tokenKind
	value string
}

var flagRegex = regexp.MustCompile(`(?:^|\s)(-H|--header|-b|--cookie)\s+(['"])`)

// tokenize extracts every header and cookie argument from one logical fragment.
//
// A value runs to the matching closing quote; an unterminated value takes the rest of the fragment.
func tokenize(fragment string) []captureToken {
	var tokens []captureToken
	rest := fragment

	for {
		loc := flagRegex.FindStringSubmatchIndex(rest)
		if loc == nil {
			return tokens
		}

		flag := rest[loc[2]:loc[3]]
		quote := rest[loc[4]]
		rest = rest[loc[1]:]

		kind := headerToken
		if flag == "-b" || flag == "--cookie" {
			kind = cookieToken
		}

		end := strings.IndexByte(rest, quote)
		if end == -1 {
			return append(tokens, captureToken{kind: kind, value: rest})
		}

		tokens = append(tokens, captureToken{kind: kind, value: rest[:end]})
		rest = rest[end+1:]
	}
}

// ParseCaptureFile reads a file containing a cURL capture and extracts its headers.
func ParseCaptureFile(path string) (HeaderMap, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCaptureNotFound, path)
		}
		return nil, fmt.Errorf("failed to read capture file: %w", err)
	}

	return ParseCapture(content)
}

// ParseCapture extracts authentication headers from a line-continued cURL command.
//
// Header names are lower-cased and later values overwrite earlier ones. Cookies passed with -b are
// stored under "cookie". If any of [RequiredHeaders] is absent a [*MissingHeadersError] is returned
// and no defaults are applied; otherwise [DefaultHeaders] fill in every key not already present.
func ParseCapture(data []byte) (HeaderMap, error) {
	headers := make(HeaderMap)

	for _, fragment := range strings.Split(string(data), `\`) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		for _, tok := range tokenize(fragment) {
			switch tok.kind {
			case cookieToken:
				headers["cookie"] = tok.value
			case headerToken:
				name, value, ok := strings.Cut(tok.value, ":")
				if !ok {
					continue
				}
				headers[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(value)
			}
		}
	}

	if missing := headers.Missing(RequiredHeaders...); len(missing) > 0 {
		return nil, &MissingHeadersError{Missing: missing}
	}

	headers.applyDefaults()
	return headers, nil
}

// Missing returns the keys that are not present in h, in the order given.
func (h HeaderMap) Missing(keys ...string) []string {
	var missing []string
	for _, key := range keys {
		if _, ok := h[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// Keys returns the header names in sorted order.
func (h HeaderMap) Keys() []string {
	return slices.Sorted(maps.Keys(h))
}

// applyDefaults sets every default header that h does not already contain.
func (h HeaderMap) applyDefaults() {
	for key, value := range DefaultHeaders {
		if _, ok := h[key]; !ok {
			h[key] = value
		}
	}
}
