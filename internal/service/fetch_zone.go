// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package service

import (
	"context"
	"fmt"

	"github.com/dmatushkin/shoppingmaniac-sync/internal/adapter"
	"github.com/dmatushkin/shoppingmaniac-sync/models"
)

// fetchZoneRecords enumerates changed records across zones in multi-zone
// rounds, resuming each zone from its stored token. Returns the accumulated
// record list; an empty zone set short-circuits with no remote call.
//
// Per-zone failures never abort the round: an invalidated zone token is
// cleared so the zone refetches from the beginning, any other per-zone error
// is logged and the zone's token left untouched. Only the call-level
// completion governs whether the round is retried or the fetch fails.
func (e *Engine) fetchZoneRecords(ctx context.Context, zones []models.ZoneID, scope models.Scope) ([]models.Record, error) {
	if len(zones) == 0 {
		return nil, nil
	}

	var records []models.Record
	active := zones

	op := func(ctx context.Context) error {
		for len(active) > 0 {
			configs := make([]adapter.ZoneFetchConfig, 0, len(active))
			for _, zone := range active {
				token, err := e.tokens.ZoneToken(ctx, zone, scope)
				if err != nil {
					return fmt.Errorf("read zone token %s: %w", zone.Key(), err)
				}
				configs = append(configs, adapter.ZoneFetchConfig{Zone: zone, Token: token})
			}

			page, err := e.remote.FetchZoneChanges(ctx, scope, configs)
			records = append(records, page.Records...)
			if zErr := e.applyZoneCompletions(ctx, scope, page.Zones); zErr != nil {
				return zErr
			}
			if err != nil {
				return err
			}

			// Only a successful call narrows the working set; a retried round
			// re-requests every zone it covered.
			var pending []models.ZoneID
			for _, zr := range page.Zones {
				if zr.MoreComing {
					pending = append(pending, zr.Zone)
				}
			}
			active = pending
		}
		return nil
	}

	// Call-level token invalidation retries immediately: the stale per-zone
	// tokens were already cleared by their own completions.
	onTokenExpired := func(ctx context.Context) error { return nil }

	if err := e.retry.run(ctx, "fetchZoneChanges", op, onTokenExpired); err != nil {
		return nil, err
	}

	e.log.Debug().
		Str("scope", string(scope)).
		Int("records", len(records)).
		Msg("zone change feeds exhausted")

	return records, nil
}

// applyZoneCompletions persists per-zone token updates from one round. A
// completion reporting an invalidated token clears that zone's cursor; other
// per-zone errors are logged and skipped.
func (e *Engine) applyZoneCompletions(ctx context.Context, scope models.Scope, results []adapter.ZoneFetchResult) error {
	for _, zr := range results {
		switch outcome := Classify(zr.Err); outcome.Class {
		case ClassificationNone:
			if zr.Token == "" {
				continue
			}
			if err := e.tokens.SetZoneToken(ctx, zr.Zone, scope, zr.Token); err != nil {
				return fmt.Errorf("persist zone token %s: %w", zr.Zone.Key(), err)
			}

		case ClassificationTokenExpired:
			if err := e.tokens.SetZoneToken(ctx, zr.Zone, scope, ""); err != nil {
				return fmt.Errorf("clear zone token %s: %w", zr.Zone.Key(), err)
			}

		default:
			e.log.Warn().
				Str("zone", zr.Zone.Key()).
				Err(zr.Err).
				Msg("zone reported an error, skipping its token update")
		}
	}
	return nil
}
