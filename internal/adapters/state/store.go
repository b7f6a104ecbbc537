// Package state persists per-root run records in a flat JSON file inside the
// cache root.
package state

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cargotags/cargotags/internal/core/domain"
	"github.com/cargotags/cargotags/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RunInfoStore = (*Store)(nil)

// Store implements ports.RunInfoStore using a flat JSON file. Concurrent
// creation of sibling cache entries is tolerated; the store itself is guarded
// by a mutex within the process.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.RunInfo
}

// NewStore creates a store backed by the file at the given path, loading any
// existing records.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.RunInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read run info store")
	}
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal run info store")
	}
	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal run info store")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory for run info store")
	}
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write run info store")
	}
	return nil
}

// Get retrieves the run info for a root key.
func (s *Store) Get(rootKey string) (*domain.RunInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[rootKey]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the run info and flushes to disk.
func (s *Store) Put(info domain.RunInfo) error {
	s.mu.Lock()
	s.cache[info.RootKey] = info
	s.mu.Unlock()

	return s.save()
}
