package linestore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Overland-East-Bay/name-sorter/internal/ports/out/linestore"
)

// Store is an in-memory implementation of linestore.Store keyed by path.
// It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	files map[string][]string
}

func NewStore() *Store {
	return &Store{files: make(map[string][]string)}
}

// Seed places a file in the store, replacing any existing content.
func (s *Store) Seed(path string, lines ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = cloneLines(lines)
}

func (s *Store) ReadLines(ctx context.Context, path string) ([]string, error) {
	_ = ctx
	if path == "" {
		return nil, errors.New("linestore: file path is required")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", linestore.ErrNotFound, path)
	}
	return cloneLines(lines), nil
}

func (s *Store) WriteLines(ctx context.Context, path string, lines []string) error {
	_ = ctx
	if path == "" {
		return errors.New("linestore: file path is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = cloneLines(lines)
	return nil
}

func cloneLines(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}
