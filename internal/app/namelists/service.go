package namelists

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Overland-East-Bay/name-sorter/internal/app/names"
	"github.com/Overland-East-Bay/name-sorter/internal/domain"
	clockport "github.com/Overland-East-Bay/name-sorter/internal/ports/out/clock"
	"github.com/Overland-East-Bay/name-sorter/internal/ports/out/namelistrepo"
)

type Service struct {
	repo namelistrepo.Repository
	clk  clockport.Clock
	log  *zap.Logger

	newNameListID func() domain.NameListID

	// MaxNames bounds how many names a single list may hold.
	MaxNames int
}

func NewService(repo namelistrepo.Repository, clk clockport.Clock, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo: repo,
		clk:  clk,
		log:  log,
		newNameListID: func() domain.NameListID {
			return domain.NameListID(uuid.NewString())
		},
		MaxNames: 10000,
	}
}

func (s *Service) CreateNameList(ctx context.Context, in CreateNameListInput) (domain.NameList, error) {
	parsed := names.ParseLines(in.Names)
	if len(parsed) == 0 {
		return domain.NameList{}, &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid names",
			Details: map[string]any{"names": "must contain at least one non-blank name"},
		}
	}
	if s.MaxNames > 0 && len(parsed) > s.MaxNames {
		return domain.NameList{}, &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid names",
			Details: map[string]any{"names": "too many names", "max": s.MaxNames},
		}
	}

	nl := domain.NameList{
		ID:        s.newNameListID(),
		Label:     normalizeLabel(in.Label),
		Names:     names.SortNames(parsed),
		CreatedAt: s.clk.Now(),
	}
	if err := s.repo.Create(ctx, nl); err != nil {
		if errors.Is(err, namelistrepo.ErrAlreadyExists) {
			return domain.NameList{}, &Error{
				Status:  409,
				Code:    "NAME_LIST_ALREADY_EXISTS",
				Message: "a name list with this id already exists",
			}
		}
		return domain.NameList{}, err
	}

	s.log.Info("name list created", zap.String("nameListId", string(nl.ID)), zap.Int("names", len(nl.Names)))
	return nl, nil
}

func (s *Service) GetNameList(ctx context.Context, id domain.NameListID) (domain.NameList, error) {
	nl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, namelistrepo.ErrNotFound) {
			return domain.NameList{}, &Error{
				Status:  404,
				Code:    "NAME_LIST_NOT_FOUND",
				Message: "No name list exists with the provided id.",
			}
		}
		return domain.NameList{}, err
	}
	return nl, nil
}

func (s *Service) ListNameLists(ctx context.Context) ([]domain.NameList, error) {
	return s.repo.List(ctx)
}

func normalizeLabel(p *string) *string {
	if p == nil {
		return nil
	}
	v := domain.NormalizeHumanName(*p)
	if v == "" {
		return nil
	}
	return &v
}
