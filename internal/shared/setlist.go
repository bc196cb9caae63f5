package shared

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const commentMarker = "#"

// ReadSetlist reads song queries ("Artist - Song") from the file at path.
//
// A missing file yields an empty setlist and an error wrapping [ErrSetlistNotFound].
// Any other I/O failure yields an empty setlist and an error wrapping [ErrSetlistUnreadable].
func ReadSetlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, fmt.Errorf("%w: %s", ErrSetlistNotFound, path)
		}
		return []string{}, fmt.Errorf("%w: %w", ErrSetlistUnreadable, err)
	}
	defer f.Close()

	songs, err := ParseSetlist(f)
	if err != nil {
		return []string{}, fmt.Errorf("%w: %s: %w", ErrSetlistUnreadable, path, err)
	}
	return songs, nil
}

// ParseSetlist returns the non-blank, non-comment lines of r in order, trimmed and NFC-normalized.
func ParseSetlist(r io.Reader) ([]string, error) {
	songs := []string{}
	scanner := bufio.NewScanner(r)

	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}

		line = strings.TrimSpace(norm.NFC.String(line))
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		songs = append(songs, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return songs, nil
}
