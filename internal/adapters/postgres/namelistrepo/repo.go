package namelistrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Overland-East-Bay/name-sorter/internal/adapters/postgres"
	"github.com/Overland-East-Bay/name-sorter/internal/domain"
	"github.com/Overland-East-Bay/name-sorter/internal/ports/out/namelistrepo"
)

// Repo is a Postgres implementation of namelistrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, nl domain.NameList) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	id, err := uuid.Parse(string(nl.ID))
	if err != nil {
		return fmt.Errorf("invalid name list id: %w", err)
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO name_lists (id, label, created_at)
			VALUES ($1, $2, $3)
		`, id, nl.Label, nl.CreatedAt.UTC())
		if err != nil {
			if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
				return namelistrepo.ErrAlreadyExists
			}
			return err
		}

		if len(nl.Names) == 0 {
			return nil
		}
		rows := make([][]any, 0, len(nl.Names))
		for i, n := range nl.Names {
			rows = append(rows, []any{id, int32(i), n.FirstName, n.MiddleNames, n.LastName})
		}
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"name_list_entries"},
			[]string{"name_list_id", "position", "first_name", "middle_names", "last_name"},
			pgx.CopyFromRows(rows),
		)
		return err
	})
}

func (r *Repo) GetByID(ctx context.Context, id domain.NameListID) (domain.NameList, error) {
	if r.pool == nil {
		return domain.NameList{}, errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		// A malformed id cannot match any stored list.
		return domain.NameList{}, namelistrepo.ErrNotFound
	}

	var (
		label     *string
		createdAt time.Time
	)
	err = r.pool.QueryRow(ctx, `
		SELECT label, created_at FROM name_lists WHERE id = $1
	`, uid).Scan(&label, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NameList{}, namelistrepo.ErrNotFound
		}
		return domain.NameList{}, err
	}

	entries, err := r.loadEntries(ctx, []uuid.UUID{uid})
	if err != nil {
		return domain.NameList{}, err
	}
	ns := entries[uid]
	if ns == nil {
		ns = []domain.Name{}
	}
	return domain.NameList{
		ID:        domain.NameListID(uid.String()),
		Label:     label,
		Names:     ns,
		CreatedAt: createdAt.UTC(),
	}, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.NameList, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, label, created_at FROM name_lists ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	type header struct {
		id        uuid.UUID
		label     *string
		createdAt time.Time
	}
	headers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (header, error) {
		var h header
		err := row.Scan(&h.id, &h.label, &h.createdAt)
		return h, err
	})
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(headers))
	for _, h := range headers {
		ids = append(ids, h.id)
	}
	entries, err := r.loadEntries(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.NameList, 0, len(headers))
	for _, h := range headers {
		ns := entries[h.id]
		if ns == nil {
			ns = []domain.Name{}
		}
		out = append(out, domain.NameList{
			ID:        domain.NameListID(h.id.String()),
			Label:     h.label,
			Names:     ns,
			CreatedAt: h.createdAt.UTC(),
		})
	}
	return out, nil
}

func (r *Repo) loadEntries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.Name, error) {
	out := make(map[uuid.UUID][]domain.Name, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT name_list_id, first_name, middle_names, last_name
		FROM name_list_entries
		WHERE name_list_id = ANY($1)
		ORDER BY name_list_id, position
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id uuid.UUID
			n  domain.Name
		)
		if err := rows.Scan(&id, &n.FirstName, &n.MiddleNames, &n.LastName); err != nil {
			return nil, err
		}
		out[id] = append(out[id], n)
	}
	return out, rows.Err()
}
