package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Files       FilesConfig       `toml:"files"`
	Playlist    PlaylistConfig    `toml:"playlist"`
	Credentials CredentialsConfig `toml:"credentials"`
}

// FilesConfig locates the setlist, the cURL capture, and the generated credentials file.
type FilesConfig struct {
	Setlist string `toml:"setlist"`
	Capture string `toml:"capture"`
	Headers string `toml:"headers"`
}

// PlaylistConfig contains defaults for created playlists.
type PlaylistConfig struct {
	DefaultName string `toml:"default_name"`
	Privacy     string `toml:"privacy"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	YouTube YouTubeConfig `toml:"youtube"`
}

// YouTubeConfig contains YouTube Music proxy settings.
type YouTubeConfig struct {
	ProxyURL string `toml:"proxy_url"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys absent from the file keep their default values. A missing file returns [ErrMissingConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingConfig, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	switch strings.ToUpper(c.Playlist.Privacy) {
	case "PRIVATE", "PUBLIC", "UNLISTED":
		c.Playlist.Privacy = strings.ToUpper(c.Playlist.Privacy)
	default:
		return fmt.Errorf("%w: playlist.privacy must be PRIVATE, PUBLIC or UNLISTED, got %q", ErrInvalidConfig, c.Playlist.Privacy)
	}

	if c.Files.Setlist == "" || c.Files.Capture == "" || c.Files.Headers == "" {
		return fmt.Errorf("%w: files.setlist, files.capture and files.headers must not be empty", ErrInvalidConfig)
	}
	return nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: config file already exists at %s", ErrInvalidArgument, path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
