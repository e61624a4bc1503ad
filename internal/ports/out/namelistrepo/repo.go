package namelistrepo

import (
	"context"

	"github.com/Overland-East-Bay/name-sorter/internal/domain"
)

// Repository provides access to persisted name lists.
//
// Result ordering expectations:
// - Names within a list are returned in the order they were stored.
// - List returns name lists ordered by CreatedAt ascending, then ID, to keep behavior deterministic.
type Repository interface {
	Create(ctx context.Context, nl domain.NameList) error
	GetByID(ctx context.Context, id domain.NameListID) (domain.NameList, error)
	List(ctx context.Context) ([]domain.NameList, error)
}
