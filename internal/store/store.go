// Package store persists the whole dataset as a single JSON document.
//
// There is no incremental update path: every mutation loads the file,
// changes the dataset in memory and replaces the file with a fresh
// snapshot. Saves go through a temp file followed by an atomic rename, so
// a reader never observes a half-written dataset and a crash mid-write
// leaves the previous version intact.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ridepoolhq/carpool-backend/internal/models"
)

// Store serializes all mutations through a per-store mutex held across the
// whole load-mutate-save cycle. That is the single-writer serialization
// point the design needs: without it, two concurrent joins racing
// load-mutate-save could both observe a free seat and over-book the ride,
// with the later save silently overwriting the earlier one. The mutex only
// covers this process; a second process writing the same file is still
// unsynchronized.
type Store struct {
	mu   sync.Mutex
	path string
}

func Open(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted dataset, or an empty dataset when no state has
// been saved yet. Malformed content is an error; no repair is attempted.
func (s *Store) Load() (*models.Dataset, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.NewDataset(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var ds models.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", s.path, err)
	}
	ds.Normalize()
	return &ds, nil
}

// Update runs fn against the current dataset and, if fn succeeds, replaces
// the persisted state with the mutated dataset. On any error the in-memory
// mutation is discarded and the file on disk is left untouched.
func (s *Store) Update(fn func(*models.Dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(ds); err != nil {
		return err
	}
	return s.save(ds)
}

func (s *Store) save(ds *models.Dataset) error {
	ds.Normalize()
	raw, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp dataset: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close dataset: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace dataset: %w", err)
	}
	return nil
}
