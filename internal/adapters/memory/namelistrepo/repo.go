package namelistrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/Overland-East-Bay/name-sorter/internal/domain"
	"github.com/Overland-East-Bay/name-sorter/internal/ports/out/namelistrepo"
)

// Repo is an in-memory implementation of namelistrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byID map[domain.NameListID]domain.NameList
}

func NewRepo() *Repo {
	return &Repo{
		byID: make(map[domain.NameListID]domain.NameList),
	}
}

func (r *Repo) Create(ctx context.Context, nl domain.NameList) error {
	_ = ctx
	if nl.ID == "" {
		return namelistrepo.ErrAlreadyExists // treat empty ID as invalid; the app layer always assigns one
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[nl.ID]; ok {
		return namelistrepo.ErrAlreadyExists
	}
	r.byID[nl.ID] = cloneNameList(nl)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.NameListID) (domain.NameList, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	nl, ok := r.byID[id]
	if !ok {
		return domain.NameList{}, namelistrepo.ErrNotFound
	}
	return cloneNameList(nl), nil
}

func (r *Repo) List(ctx context.Context) ([]domain.NameList, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.NameList, 0, len(r.byID))
	for _, nl := range r.byID {
		out = append(out, cloneNameList(nl))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func cloneNameList(nl domain.NameList) domain.NameList {
	out := nl
	if nl.Label != nil {
		v := *nl.Label
		out.Label = &v
	}
	out.Names = make([]domain.Name, len(nl.Names))
	copy(out.Names, nl.Names)
	return out
}
