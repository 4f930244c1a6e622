// Package file provides the TOML-backed settings store.
// Settings cover how to reach the server and where artifacts land;
// registry state is deliberately never persisted.
package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// Default settings values.
const (
	DefaultServerURL      = "http://localhost:5000"
	DefaultOutputDir      = "translations"
	DefaultTimeoutSeconds = 120
	DefaultTargetExt      = ".xlsx"
)

// fileSettings is the on-disk TOML shape.
type fileSettings struct {
	ServerURL      string `toml:"server_url"`
	OutputDir      string `toml:"output_dir"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	TargetExt      string `toml:"target_ext"`
}

// SettingsStore is a file-based implementation of driven.SettingsStore
// using TOML. Settings live in a single file under the polyglot config
// directory.
type SettingsStore struct {
	mu       sync.RWMutex
	filePath string
	settings driven.Settings
}

// NewSettingsStore creates a TOML-based settings store.
// If configDir is empty, it defaults to ~/.polyglot/config.toml.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".polyglot")
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &SettingsStore{
		filePath: filepath.Join(configDir, "config.toml"),
		settings: defaults(),
	}
	if err := s.load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return s, nil
}

// Get returns the current settings.
func (s *SettingsStore) Get() driven.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Set replaces and persists the settings. Zero-valued fields fall back
// to their defaults.
func (s *SettingsStore) Set(settings driven.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = applyDefaults(settings)

	data, err := toml.Marshal(fileSettings{
		ServerURL:      s.settings.ServerURL,
		OutputDir:      s.settings.OutputDir,
		TimeoutSeconds: s.settings.TimeoutSeconds,
		TargetExt:      s.settings.TargetExt,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// load reads the settings file if it exists.
func (s *SettingsStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var fset fileSettings
	if err := toml.Unmarshal(data, &fset); err != nil {
		return err
	}
	s.settings = applyDefaults(driven.Settings{
		ServerURL:      fset.ServerURL,
		OutputDir:      fset.OutputDir,
		TimeoutSeconds: fset.TimeoutSeconds,
		TargetExt:      fset.TargetExt,
	})
	return nil
}

func defaults() driven.Settings {
	return driven.Settings{
		ServerURL:      DefaultServerURL,
		OutputDir:      DefaultOutputDir,
		TimeoutSeconds: DefaultTimeoutSeconds,
		TargetExt:      DefaultTargetExt,
	}
}

func applyDefaults(s driven.Settings) driven.Settings {
	d := defaults()
	if s.ServerURL == "" {
		s.ServerURL = d.ServerURL
	}
	if s.OutputDir == "" {
		s.OutputDir = d.OutputDir
	}
	if s.TimeoutSeconds <= 0 {
		s.TimeoutSeconds = d.TimeoutSeconds
	}
	if s.TargetExt == "" {
		s.TargetExt = d.TargetExt
	}
	return s
}
