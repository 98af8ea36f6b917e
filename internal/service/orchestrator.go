// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package service

import (
	"context"
	"fmt"

	"github.com/dmatushkin/shoppingmaniac-sync/internal/adapter"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/utils"
	"github.com/dmatushkin/shoppingmaniac-sync/models"
)

// FetchChanges implements SyncEngine. The pull pipeline is strictly
// sequential: database change feed, then the changed zones' record feeds,
// then materialization; a stage failure aborts the stages after it.
func (e *Engine) FetchChanges(ctx context.Context, scope models.Scope, desc *models.EntityDescriptor) ([]models.SyncableItem, error) {
	if desc == nil {
		return nil, ErrNilDescriptor
	}

	zones, err := e.fetchChangedZones(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("fetch changed zones: %w", err)
	}

	records, err := e.fetchZoneRecords(ctx, zones, scope)
	if err != nil {
		return nil, fmt.Errorf("fetch zone records: %w", err)
	}

	entities, err := e.materialize(ctx, records, desc, true)
	if err != nil {
		return nil, fmt.Errorf("materialize records: %w", err)
	}

	evt := e.log.Info().
		Str("scope", string(scope)).
		Str("recordType", desc.RecordType).
		Int("roots", len(entities))
	if passID, ok := utils.GetPassIDFromContext(ctx); ok {
		evt = evt.Str("passID", passID)
	}
	evt.Msg("pull completed")

	return entities, nil
}

// LoadShare implements SyncEngine. After accepting the invitation the shared
// hierarchy is fetched generation by generation, following each record's
// dependent-reference list, then materialized as one record set.
func (e *Engine) LoadShare(ctx context.Context, meta models.ShareMetadata, desc *models.EntityDescriptor) (models.SyncableItem, error) {
	if desc == nil {
		return nil, ErrNilDescriptor
	}

	accepted, err := e.remote.AcceptShare(ctx, meta)
	if err != nil {
		return nil, fmt.Errorf("accept share: %w", err)
	}

	rootRecords, err := e.remote.FetchRecords(ctx, []models.RecordID{accepted.RootRecordID}, models.ScopeShared)
	if err != nil {
		return nil, fmt.Errorf("fetch share root: %w", err)
	}
	if len(rootRecords) == 0 {
		return nil, fmt.Errorf("share root record %q not found", accepted.RootRecordID.RecordName)
	}

	all := rootRecords
	level := rootRecords
	for d := desc; d.Dependent != nil && len(level) > 0; d = d.Dependent {
		var ids []models.RecordID
		for i := range level {
			for _, ref := range level[i].ReferenceListField(d.DependentField) {
				ids = append(ids, ref.Record)
			}
		}
		if len(ids) == 0 {
			break
		}

		children, err := e.remote.FetchRecords(ctx, ids, models.ScopeShared)
		if err != nil {
			return nil, fmt.Errorf("fetch shared dependents: %w", err)
		}
		all = append(all, children...)
		level = children
	}

	entities, err := e.materialize(ctx, all, desc, true)
	if err != nil {
		return nil, fmt.Errorf("materialize share: %w", err)
	}
	if len(entities) == 0 {
		return nil, fmt.Errorf("share root record %q has type %q, want %q", accepted.RootRecordID.RecordName, rootRecords[0].RecordType, desc.RecordType)
	}

	e.log.Info().
		Str("root", accepted.RootRecordID.RecordName).
		Msg("share loaded")

	return entities[0], nil
}

// ShareItem implements SyncEngine. The root and its new share record go out
// in the first mutation batch so the share metadata exists before any
// dependent referencing the root does; dependents follow in a second batch.
func (e *Engine) ShareItem(ctx context.Context, item models.SyncableItem, desc *models.EntityDescriptor, title, shareType string) (*models.Record, error) {
	scope := pushScope(item)

	root, dependents, err := e.decompose(ctx, item, desc, scope)
	if err != nil {
		return nil, fmt.Errorf("decompose entity: %w", err)
	}

	share := models.NewShareRecord(root.ID, title, shareType)
	root.Share = &models.Reference{Record: share.ID, Action: models.ReferenceActionNone}

	saved, err := e.remote.ModifyRecords(ctx, []models.Record{root, share}, scope)
	if err != nil {
		return nil, fmt.Errorf("save root and share: %w", err)
	}
	for i := range saved {
		if saved[i].RecordType == models.RecordTypeShare {
			share = saved[i]
		}
	}

	if err = e.pushDependents(ctx, dependents, scope); err != nil {
		return nil, err
	}

	e.log.Info().
		Str("root", root.ID.RecordName).
		Str("share", share.ID.RecordName).
		Msg("entity shared")

	return &share, nil
}

// UpdateItem implements SyncEngine. When the root carries a share reference
// the share record is re-fetched and pushed in the same batch as the root so
// its title, type and permission travel with every update. A shared-in entity
// must have been synced before; there is no remote identity to push to in
// another owner's zone otherwise.
func (e *Engine) UpdateItem(ctx context.Context, item models.SyncableItem, desc *models.EntityDescriptor) error {
	scope := pushScope(item)
	if scope == models.ScopeShared && item.RecordName() == "" {
		return ErrNoRecordName
	}

	root, dependents, err := e.decompose(ctx, item, desc, scope)
	if err != nil {
		return fmt.Errorf("decompose entity: %w", err)
	}

	first := []models.Record{root}
	if root.Share != nil {
		shares, err := e.remote.FetchRecords(ctx, []models.RecordID{root.Share.Record}, scope)
		if err != nil {
			return fmt.Errorf("fetch share record: %w", err)
		}
		first = append(first, shares...)
	}

	if _, err = e.remote.ModifyRecords(ctx, first, scope); err != nil {
		return fmt.Errorf("save root: %w", err)
	}

	if err = e.pushDependents(ctx, dependents, scope); err != nil {
		return err
	}

	e.log.Info().
		Str("root", root.ID.RecordName).
		Int("dependents", len(dependents)).
		Msg("entity pushed")

	return nil
}

// pushDependents sends the dependent batch after the root batch succeeded. A
// failure here leaves the root updated and the dependents stale; the next
// pull reconciles them, no rollback is attempted.
func (e *Engine) pushDependents(ctx context.Context, dependents []models.Record, scope models.Scope) error {
	if len(dependents) == 0 {
		return nil
	}
	if _, err := e.remote.ModifyRecords(ctx, dependents, scope); err != nil {
		return fmt.Errorf("save dependents: %w", err)
	}
	return nil
}

// EnsureSubscriptions implements SyncEngine.
func (e *Engine) EnsureSubscriptions(ctx context.Context, scope models.Scope) error {
	sub := adapter.Subscription{
		SubscriptionID: "database-changes-" + string(scope),
		Type:           adapter.SubscriptionTypeDatabase,
	}
	if err := e.remote.UpdateSubscriptions(ctx, []adapter.Subscription{sub}, scope); err != nil {
		return fmt.Errorf("update subscriptions: %w", err)
	}

	e.log.Debug().Str("scope", string(scope)).Msg("database subscription ensured")
	return nil
}

// pushScope picks the database scope an entity's records live in: entities
// shared in by another owner push to the shared database, everything else to
// the caller's own.
func pushScope(item models.SyncableItem) models.Scope {
	if item.Zone().OwnerName != "" {
		return models.ScopeShared
	}
	return models.ScopePrivate
}
