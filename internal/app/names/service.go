package names

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Overland-East-Bay/name-sorter/internal/domain"
	"github.com/Overland-East-Bay/name-sorter/internal/ports/out/linestore"
)

// DefaultOutputPath is where the CLI writes the sorted list, relative to the working directory.
const DefaultOutputPath = "sorted-names-list.txt"

type Service struct {
	files linestore.Store
	log   *zap.Logger
}

func NewService(files linestore.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{files: files, log: log}
}

// ReadNames loads every non-blank line of path as a name, in file order.
func (s *Service) ReadNames(ctx context.Context, path string) ([]domain.Name, error) {
	lines, err := s.files.ReadLines(ctx, path)
	if err != nil {
		if errors.Is(err, linestore.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return nil, fmt.Errorf("read names from %s: %w", path, err)
	}

	ns := ParseLines(lines)
	s.log.Debug("names read",
		zap.String("path", path),
		zap.Int("lines", len(lines)),
		zap.Int("names", len(ns)),
	)
	return ns, nil
}

// WriteNames writes one name per line to path, replacing any existing file.
func (s *Service) WriteNames(ctx context.Context, path string, ns []domain.Name) error {
	if err := s.files.WriteLines(ctx, path, FormatNames(ns)); err != nil {
		return fmt.Errorf("write names to %s: %w", path, err)
	}
	s.log.Debug("names written", zap.String("path", path), zap.Int("names", len(ns)))
	return nil
}

// SortFile reads inPath, sorts the names and writes them to outPath.
// It returns the sorted names so callers can echo them.
func (s *Service) SortFile(ctx context.Context, inPath, outPath string) ([]domain.Name, error) {
	ns, err := s.ReadNames(ctx, inPath)
	if err != nil {
		return nil, err
	}
	sorted := SortNames(ns)
	if err := s.WriteNames(ctx, outPath, sorted); err != nil {
		return nil, err
	}
	s.log.Info("names sorted",
		zap.String("input", inPath),
		zap.String("output", outPath),
		zap.Int("count", len(sorted)),
	)
	return sorted, nil
}
