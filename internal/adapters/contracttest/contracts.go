package contracttest

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/Overland-East-Bay/name-sorter/internal/domain"
	linestoreport "github.com/Overland-East-Bay/name-sorter/internal/ports/out/linestore"
	namelistrepoport "github.com/Overland-East-Bay/name-sorter/internal/ports/out/namelistrepo"
)

type CleanupFunc = func()

// LineStoreFactory returns a store and a directory under which the suite may create files.
type LineStoreFactory func(t *testing.T) (linestoreport.Store, string, CleanupFunc)
type NameListRepoFactory func(t *testing.T) (namelistrepoport.Repository, CleanupFunc)

func RunLineStore(t *testing.T, newStore LineStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, dir, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	// Missing file.
	_, err := store.ReadLines(ctx, filepath.Join(dir, "missing.txt"))
	if !errors.Is(err, linestoreport.ErrNotFound) {
		t.Fatalf("ReadLines(missing) err=%v, want %v", err, linestoreport.ErrNotFound)
	}

	// Write then read.
	path := filepath.Join(dir, "names.txt")
	want := []string{"Janet Parsons", "Vaughn Lewis", "Adonis Julius Archer"}
	if err := store.WriteLines(ctx, path, want); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}
	got, err := store.ReadLines(ctx, path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ReadLines mismatch (-want +got):\n%s", diff)
	}

	// Overwrite semantics.
	if err := store.WriteLines(ctx, path, []string{"Leo Gardner"}); err != nil {
		t.Fatalf("WriteLines overwrite: %v", err)
	}
	got, err = store.ReadLines(ctx, path)
	if err != nil {
		t.Fatalf("ReadLines after overwrite: %v", err)
	}
	if diff := cmp.Diff([]string{"Leo Gardner"}, got); diff != "" {
		t.Fatalf("ReadLines after overwrite mismatch (-want +got):\n%s", diff)
	}

	// Blank lines survive the store; filtering belongs to the caller.
	blanks := []string{"Janet Parsons", "", " ", "Vaughn Lewis"}
	if err := store.WriteLines(ctx, path, blanks); err != nil {
		t.Fatalf("WriteLines blanks: %v", err)
	}
	got, err = store.ReadLines(ctx, path)
	if err != nil {
		t.Fatalf("ReadLines blanks: %v", err)
	}
	if diff := cmp.Diff(blanks, got); diff != "" {
		t.Fatalf("ReadLines blanks mismatch (-want +got):\n%s", diff)
	}

	// Empty file.
	empty := filepath.Join(dir, "empty.txt")
	if err := store.WriteLines(ctx, empty, nil); err != nil {
		t.Fatalf("WriteLines empty: %v", err)
	}
	got, err = store.ReadLines(ctx, empty)
	if err != nil {
		t.Fatalf("ReadLines empty: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ReadLines empty=%q, want none", got)
	}
}

func RunNameListRepo(t *testing.T, newRepo NameListRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	label := "staff roster"
	now := time.Unix(1000, 0).UTC()
	a := domain.NameList{
		ID:    domain.NameListID(uuid.NewString()),
		Label: &label,
		Names: []domain.Name{
			{FirstName: "Marin", LastName: "Alvarez"},
			{FirstName: "Adonis", MiddleNames: "Julius", LastName: "Archer"},
			{FirstName: "Hunter", MiddleNames: "Uriah Mathew", LastName: "Clarke"},
		},
		CreatedAt: now.Add(time.Second),
	}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create a: %v", err)
	}

	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if diff := cmp.Diff(a, got); diff != "" {
		t.Fatalf("GetByID mismatch (-want +got):\n%s", diff)
	}

	// ID uniqueness.
	if err := repo.Create(ctx, a); !errors.Is(err, namelistrepoport.ErrAlreadyExists) {
		t.Fatalf("Create duplicate err=%v, want %v", err, namelistrepoport.ErrAlreadyExists)
	}

	// Unknown ID.
	if _, err := repo.GetByID(ctx, domain.NameListID(uuid.NewString())); !errors.Is(err, namelistrepoport.ErrNotFound) {
		t.Fatalf("GetByID(unknown) err=%v, want %v", err, namelistrepoport.ErrNotFound)
	}

	// Unlabeled, empty, and created earlier: must list before a.
	b := domain.NameList{
		ID:        domain.NameListID(uuid.NewString()),
		Names:     []domain.Name{},
		CreatedAt: now,
	}
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create b: %v", err)
	}
	gotB, err := repo.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID b: %v", err)
	}
	if gotB.Label != nil || len(gotB.Names) != 0 {
		t.Fatalf("GetByID b=%+v, want no label and no names", gotB)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	posA, posB := -1, -1
	for i, nl := range all {
		switch nl.ID {
		case a.ID:
			posA = i
		case b.ID:
			posB = i
		}
	}
	if posA < 0 || posB < 0 || posB > posA {
		t.Fatalf("unexpected ordering: a at %d, b at %d", posA, posB)
	}
}
