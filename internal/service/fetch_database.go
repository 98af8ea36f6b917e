// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package service

import (
	"context"
	"fmt"

	"github.com/dmatushkin/shoppingmaniac-sync/models"
)

// fetchChangedZones walks the database-level change feed for scope and
// returns the ordered, deduplicated set of zone identifiers reported since
// the stored token. The token is persisted after every completed round so a
// later failure resumes from the last round, not from scratch.
//
// Zones already collected survive retries and token resets: the remote does
// not re-report them after an invalidated token is cleared, so discarding
// them would lose changes.
func (e *Engine) fetchChangedZones(ctx context.Context, scope models.Scope) ([]models.ZoneID, error) {
	token, err := e.tokens.DatabaseToken(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("read database token: %w", err)
	}

	var (
		zones []models.ZoneID
		seen  = make(map[string]struct{})
	)
	collect := func(ids []models.ZoneID) {
		for _, id := range ids {
			if _, ok := seen[id.Key()]; ok {
				continue
			}
			seen[id.Key()] = struct{}{}
			zones = append(zones, id)
		}
	}

	op := func(ctx context.Context) error {
		for {
			page, err := e.remote.FetchDatabaseChanges(ctx, scope, token)
			collect(page.ChangedZones)
			if err != nil {
				return err
			}

			if page.Token == "" {
				return ErrMissingSyncToken
			}
			token = page.Token
			if err = e.tokens.SetDatabaseToken(ctx, scope, token); err != nil {
				return fmt.Errorf("persist database token: %w", err)
			}

			if !page.MoreComing {
				return nil
			}
		}
	}

	onTokenExpired := func(ctx context.Context) error {
		token = ""
		return e.tokens.SetDatabaseToken(ctx, scope, "")
	}

	if err = e.retry.run(ctx, "fetchDatabaseChanges", op, onTokenExpired); err != nil {
		// A stale cursor after an unrecoverable failure is worse than a full
		// refetch: drop it so the next pass starts from empty token.
		if clearErr := e.tokens.SetDatabaseToken(ctx, scope, ""); clearErr != nil {
			e.log.Warn().Err(clearErr).Str("scope", string(scope)).Msg("failed to clear database token after fatal fetch error")
		}
		return nil, err
	}

	e.log.Debug().
		Str("scope", string(scope)).
		Int("zones", len(zones)).
		Msg("database change feed exhausted")

	return zones, nil
}
