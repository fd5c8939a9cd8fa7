// Package file provides the TOML-backed application configuration.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied when the config file is absent or fields are unset.
const (
	DefaultServerURL      = "http://localhost:8000"
	DefaultRequestTimeout = 120 * time.Second
)

// Config holds the persisted application configuration.
type Config struct {
	// ServerURL is the base URL of the question-answering service.
	ServerURL string `toml:"server_url"`

	// DataDir is the directory holding the local database. Empty means
	// the default (~/.docchat/data).
	DataDir string `toml:"data_dir"`

	// RequestTimeoutSeconds bounds each QA request. Zero means the
	// default (120 seconds).
	RequestTimeoutSeconds int `toml:"request_timeout_seconds"`
}

// RequestTimeout returns the configured timeout as a duration.
func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return DefaultRequestTimeout
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// ConfigStore reads and writes the TOML config file.
type ConfigStore struct {
	filePath string
}

// NewConfigStore creates a config store. If configDir is empty,
// defaults to ~/.docchat.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".docchat")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Path returns the config file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// Load reads the config, applying defaults for an absent file and for
// unset fields.
func (s *ConfigStore) Load() (Config, error) {
	cfg := Config{ServerURL: DefaultServerURL}

	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	return cfg, nil
}

// Save writes the config atomically (write temp file, then rename).
func (s *ConfigStore) Save(cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		return fmt.Errorf("replacing config: %w", err)
	}
	return nil
}
