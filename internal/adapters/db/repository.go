// internal/adapters/db/repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

var (
	_ ports.Database  = (*Database)(nil)
	_ ports.TxManager = (*Database)(nil)
)

// psql builds $n placeholder queries
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// querier is the part of pgxpool.Pool and pgx.Tx the repositories use.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type txKey struct{}

func contextWithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// conn returns the transaction carried by ctx, or the pool.
func (db *Database) conn(ctx context.Context) querier {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return db.pool
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
)

// mapPgError translates constraint violations into domain errors.
func mapPgError(err error, what string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s already exists (%s)", domain.ErrConflict, what, pgErr.ConstraintName)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: %s references a missing or still referenced row (%s)", domain.ErrConflict, what, pgErr.ConstraintName)
	case pgCheckViolation:
		return fmt.Errorf("%w: %s violates %s", domain.ErrValidation, what, pgErr.ConstraintName)
	case pgNumericOutOfRange:
		return fmt.Errorf("%w: %s has a value out of range", domain.ErrValidation, what)
	}
	return err
}

// likePattern escapes LIKE wildcards and wraps q for substring matching.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(q) + "%"
}

func notFound(what string, id any) error {
	return fmt.Errorf("%w: %s %v", domain.ErrNotFound, what, id)
}
