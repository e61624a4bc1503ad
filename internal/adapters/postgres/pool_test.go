package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestAsPgError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: UniqueViolationCode, ConstraintName: "name_lists_pkey"})
	pe, ok := AsPgError(wrapped)
	if !ok || pe.Code != UniqueViolationCode {
		t.Fatalf("AsPgError()=(%v, %v), want unique violation", pe, ok)
	}

	if _, ok := AsPgError(errors.New("plain")); ok {
		t.Fatalf("AsPgError(plain) ok=true, want false")
	}
}

func TestNewPool_RequiresDSN(t *testing.T) {
	t.Parallel()

	if _, err := NewPool(context.Background(), "", PoolOptions{}); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}

func TestNewPool_RejectsMalformedDSN(t *testing.T) {
	t.Parallel()

	if _, err := NewPool(context.Background(), "postgres://%zz", PoolOptions{}); err == nil {
		t.Fatalf("expected error for malformed dsn")
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	t.Parallel()

	data, err := migrationFiles.ReadFile("migrations/0001_name_lists.sql")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty migration")
	}
}
