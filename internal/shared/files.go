package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// VerifyAndReadFile checks that path names a regular file and returns its contents.
func VerifyAndReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: file path is required", ErrMissingArgument)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: file not found: %s", ErrInvalidArgument, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidArgument, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// ValidateJSON returns an error if data is not a JSON object.
func ValidateJSON(data []byte) error {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%w: not a JSON object: %v", ErrInvalidInput, err)
	}
	return nil
}

// WriteHeaders writes h to path as indented JSON, replacing any previous contents.
func WriteHeaders(path string, h HeaderMap) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal headers: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write headers file: %w", err)
	}
	return nil
}

// LoadHeaders reads a credentials file written by [WriteHeaders].
//
// The file must contain every key in [RequiredHeaders].
func LoadHeaders(path string) (HeaderMap, error) {
	data, err := VerifyAndReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := ValidateJSON(data); err != nil {
		return nil, err
	}

	var h HeaderMap
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("%w: header values must be strings: %v", ErrInvalidCredentials, err)
	}

	if missing := h.Missing(RequiredHeaders...); len(missing) > 0 {
		return nil, &MissingHeadersError{Missing: missing}
	}
	return h, nil
}
