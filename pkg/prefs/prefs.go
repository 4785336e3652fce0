// Package prefs persists user preferences for the CLI.
//
// Preferences are stored as a single JSON document in the user's config
// directory (~/.config/toolverse/prefs.json by default). A missing file
// yields the defaults; the file is created on the first Save.
//
// # Usage
//
//	store, err := prefs.NewFileStore("")
//	if err != nil {
//	    return err
//	}
//	p, err := store.Load()
//	if err != nil {
//	    return err
//	}
//	p.Theme = "dark"
//	return store.Save(p)
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/matzehuels/toolverse/pkg/errors"
	"github.com/matzehuels/toolverse/pkg/sunburst/styles"
)

const fileName = "prefs.json"

// Prefs holds persisted user preferences.
type Prefs struct {
	Theme     string    `json:"theme"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// Defaults returns the preferences used when nothing has been saved.
func Defaults() Prefs {
	return Prefs{Theme: styles.Light.Name}
}

// ThemeValue returns the parsed theme, falling back to light for an
// unreadable value.
func (p Prefs) ThemeValue() styles.Theme {
	t, err := styles.ParseTheme(p.Theme)
	if err != nil {
		return styles.Light
	}
	return t
}

// FileStore is a file-based preference store.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// DefaultDir returns ~/.config/toolverse.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "toolverse"), nil
}

// NewFileStore creates a store rooted at baseDir.
// If baseDir is empty, defaults to ~/.config/toolverse/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		baseDir = dir
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create prefs dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Path returns the preference file path.
func (s *FileStore) Path() string {
	return filepath.Join(s.baseDir, fileName)
}

// Load reads the stored preferences, or the defaults when none exist.
func (s *FileStore) Load() (Prefs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Prefs{}, fmt.Errorf("read prefs file: %w", err)
	}

	p := Defaults()
	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", s.Path())
	}
	return p, nil
}

// Save validates and writes p.
func (s *FileStore) Save(p Prefs) error {
	if _, err := styles.ParseTheme(p.Theme); err != nil {
		return err
	}
	p.UpdatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(s.Path(), data, 0600); err != nil {
		return fmt.Errorf("write prefs file: %w", err)
	}
	return nil
}

// SetTheme stores theme and returns the updated preferences.
// The value "toggle" flips the stored theme.
func (s *FileStore) SetTheme(theme string) (Prefs, error) {
	p, err := s.Load()
	if err != nil {
		return Prefs{}, err
	}
	if theme == "toggle" {
		p.Theme = p.ThemeValue().Toggle().Name
	} else {
		t, err := styles.ParseTheme(theme)
		if err != nil {
			return Prefs{}, err
		}
		p.Theme = t.Name
	}
	if err := s.Save(p); err != nil {
		return Prefs{}, err
	}
	return p, nil
}

// Reset removes the preference file.
func (s *FileStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove prefs file: %w", err)
	}
	return nil
}
