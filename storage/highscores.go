// Package storage persists the high-score table as a JSON file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorrupt is returned when the high-score file exists but cannot be parsed
var ErrCorrupt = errors.New("high score file is corrupt")

// FileStore reads and writes the high-score list at Path
type FileStore struct {
	Path string
}

// NewFileStore creates a store for path
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load returns the stored scores. A missing file is an empty table.
func (s *FileStore) Load() ([]int, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read high scores: %w", err)
	}

	var scores []int
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.Path, err)
	}
	return scores, nil
}

// Save replaces the stored scores. The file is written next to the target
// and renamed into place so a crash never leaves half a table.
func (s *FileStore) Save(scores []int) error {
	if scores == nil {
		scores = []int{}
	}
	data, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("failed to encode high scores: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create high score directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".highscores-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write high scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write high scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("failed to replace high scores: %w", err)
	}
	return nil
}
