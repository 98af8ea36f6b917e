package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/logger"
	"github.com/dmatushkin/shoppingmaniac-sync/migrations"
	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteTokenStore opens (or creates) the on-device SQLite database at
// dsn, applies pending migrations and returns a TokenStore over it.
func NewSQLiteTokenStore(dsn string, log *logger.Logger) (TokenStore, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite token store: %w", err)
	}

	// a single writer avoids SQLITE_BUSY between concurrent scope passes
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite token store: %w", err)
	}

	if err = migrations.Migrate(db, "sqlite3"); err != nil {
		return nil, fmt.Errorf("migrate sqlite token store: %w", err)
	}
	log.Info().Str("dsn", dsn).Msg("sqlite token store ready")

	return newSQLTokenStore(db, sq.Question), nil
}
