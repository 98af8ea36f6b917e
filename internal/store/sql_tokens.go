package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmatushkin/shoppingmaniac-sync/models"
)

// sqlTokenStore keeps change tokens in a relational table shared by the
// SQLite and Postgres backends. Database-level tokens are rows with an empty
// zone name; clearing a token deletes its row.
type sqlTokenStore struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

func newSQLTokenStore(db *sql.DB, placeholder sq.PlaceholderFormat) *sqlTokenStore {
	return &sqlTokenStore{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

func (s *sqlTokenStore) DatabaseToken(ctx context.Context, scope models.Scope) (models.ChangeToken, error) {
	return s.getToken(ctx, scope, models.ZoneID{})
}

func (s *sqlTokenStore) SetDatabaseToken(ctx context.Context, scope models.Scope, token models.ChangeToken) error {
	return s.setToken(ctx, scope, models.ZoneID{}, token)
}

func (s *sqlTokenStore) ZoneToken(ctx context.Context, zone models.ZoneID, scope models.Scope) (models.ChangeToken, error) {
	return s.getToken(ctx, scope, zone)
}

func (s *sqlTokenStore) SetZoneToken(ctx context.Context, zone models.ZoneID, scope models.Scope, token models.ChangeToken) error {
	return s.setToken(ctx, scope, zone, token)
}

// tokenKeyClause keeps the WHERE argument order fixed (scope, zone, owner)
// regardless of squirrel's map-key sorting.
func tokenKeyClause(scope models.Scope, zone models.ZoneID) sq.Sqlizer {
	return sq.And{
		sq.Eq{"scope": string(scope)},
		sq.Eq{"zone_name": zone.ZoneName},
		sq.Eq{"owner_name": zone.OwnerName},
	}
}

func (s *sqlTokenStore) getToken(ctx context.Context, scope models.Scope, zone models.ZoneID) (models.ChangeToken, error) {
	query, args, err := s.sb.
		Select("token").
		From("change_tokens").
		Where(tokenKeyClause(scope, zone)).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build token select: %w", err)
	}

	var token string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("select change token: %w", err)
	}

	return models.ChangeToken(token), nil
}

func (s *sqlTokenStore) setToken(ctx context.Context, scope models.Scope, zone models.ZoneID, token models.ChangeToken) error {
	if token == "" {
		return s.clearToken(ctx, scope, zone)
	}

	query, args, err := s.sb.
		Insert("change_tokens").
		Columns("scope", "zone_name", "owner_name", "token", "updated_at").
		Values(string(scope), zone.ZoneName, zone.OwnerName, string(token), time.Now().UTC()).
		Suffix("ON CONFLICT (scope, zone_name, owner_name) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build token upsert: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert change token: %w", err)
	}
	return nil
}

func (s *sqlTokenStore) clearToken(ctx context.Context, scope models.Scope, zone models.ZoneID) error {
	query, args, err := s.sb.
		Delete("change_tokens").
		Where(tokenKeyClause(scope, zone)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build token delete: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear change token: %w", err)
	}
	return nil
}
