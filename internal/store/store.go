package store

import (
	"context"
	"errors"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound covers both a genuinely absent row and a row owned by
	// another tenant; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned on unique-constraint violations.
	ErrConflict = errors.New("already exists")

	// ErrRestricted is returned when a delete is blocked by dependent
	// rows (restrict foreign keys).
	ErrRestricted = errors.New("has dependent records")
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// NewPool opens a pgx pool with the shopspring decimal codec registered,
// so NUMERIC columns scan directly into decimal.Decimal.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	return pgxpool.NewWithConfig(ctx, cfg)
}

// constraintErr maps postgres constraint violations onto the store's
// sentinel errors; anything else passes through unchanged.
func constraintErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return ErrRestricted
		case pgUniqueViolation:
			return ErrConflict
		}
	}
	return err
}
