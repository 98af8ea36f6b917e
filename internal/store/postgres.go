package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/logger"
	"github.com/dmatushkin/shoppingmaniac-sync/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewPostgresTokenStore connects to Postgres at dsn, applies pending
// migrations and returns a TokenStore over the connection. Used by
// server-side deployments of the engine; devices use the SQLite backend.
func NewPostgresTokenStore(ctx context.Context, dsn string, log *logger.Logger) (TokenStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres token store: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(4)

	if err = db.PingContext(ctx); err != nil {
		log.Err(err).Msg("error connecting postgres token store (ping)")
		return nil, fmt.Errorf("ping postgres token store: %w", err)
	}

	if err = migrations.Migrate(db, "pgx"); err != nil {
		return nil, fmt.Errorf("migrate postgres token store: %w", err)
	}
	log.Info().Msg("postgres token store ready")

	return newSQLTokenStore(db, sq.Dollar), nil
}

// postgresErrorCode extracts the SQLSTATE code from a pgx error, or "" when
// err is not a Postgres error.
func postgresErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// IsRetryableStoreError reports whether a token store failure is a transient
// connection-class problem worth retrying on the next sync pass rather than
// surfacing as fatal.
func IsRetryableStoreError(err error) bool {
	code := postgresErrorCode(err)
	if code == "" {
		return false
	}
	return pgerrcode.IsConnectionException(code) ||
		code == pgerrcode.SerializationFailure ||
		code == pgerrcode.DeadlockDetected
}
