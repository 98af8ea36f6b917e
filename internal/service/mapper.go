// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package service

import (
	"context"
	"fmt"

	"github.com/dmatushkin/shoppingmaniac-sync/models"
)

// materialize turns a flat changed-record list into local entities rooted at
// desc's kind: root-level records are matched by record type alone, dependent
// levels by record type plus a parent reference pointing at the entity being
// filled. The same record list is walked once per hierarchy level, so it may
// contain records of unrelated types without harm.
//
// Materialized entities are created-or-found by record name through the
// entity store, updated in place and saved. Materialization is idempotent:
// duplicate record names collapse to their latest version, and a child a
// prior pull already attached to its parent is updated in place, not
// attached again.
func (e *Engine) materialize(ctx context.Context, records []models.Record, desc *models.EntityDescriptor, remoteOrigin bool) ([]models.SyncableItem, error) {
	if desc == nil {
		return nil, ErrNilDescriptor
	}
	return e.materializeLevel(ctx, dedupeRecords(records), desc, "", nil, remoteOrigin)
}

// dedupeRecords collapses duplicate record names, keeping the latest version
// at the first-seen position. Retried zone rounds re-deliver records that
// were already accumulated.
func dedupeRecords(records []models.Record) []models.Record {
	out := make([]models.Record, 0, len(records))
	at := make(map[string]int, len(records))
	for i := range records {
		name := records[i].ID.RecordName
		if j, ok := at[name]; ok {
			out[j] = records[i]
			continue
		}
		at[name] = len(out)
		out = append(out, records[i])
	}
	return out
}

func (e *Engine) materializeLevel(ctx context.Context, records []models.Record, desc *models.EntityDescriptor, parentName string, parent models.SyncableItem, remoteOrigin bool) ([]models.SyncableItem, error) {
	var level []models.SyncableItem

	for i := range records {
		rec := &records[i]
		if rec.RecordType != desc.RecordType {
			continue
		}
		if parent != nil && !referencesParent(rec, parentName) {
			continue
		}

		entity, err := e.entities.FindOrCreate(ctx, desc, rec.ID.RecordName)
		if err != nil {
			return nil, fmt.Errorf("find or create %s %q: %w", desc.RecordType, rec.ID.RecordName, err)
		}

		entity.ApplyRecord(rec)
		entity.SetZone(rec.ID.Zone)
		entity.SetRemoteOrigin(remoteOrigin)
		if parent != nil {
			attachDependent(parent, entity)
		}

		if desc.Dependent != nil {
			if _, err = e.materializeLevel(ctx, records, desc.Dependent, rec.ID.RecordName, entity, remoteOrigin); err != nil {
				return nil, err
			}
		}

		if err = e.entities.Save(ctx, entity); err != nil {
			return nil, fmt.Errorf("save %s %q: %w", desc.RecordType, rec.ID.RecordName, err)
		}

		level = append(level, entity)
	}

	return level, nil
}

func referencesParent(rec *models.Record, parentName string) bool {
	return rec.Parent != nil && rec.Parent.Record.RecordName == parentName
}

// attachDependent links a materialized child to its parent unless an earlier
// pull already did. The entity store hands back the same instance per record
// name, so the attached child is the one ApplyRecord just updated.
func attachDependent(parent, child models.SyncableItem) {
	for _, dep := range parent.Dependents() {
		if dep.RecordName() == child.RecordName() {
			return
		}
	}
	parent.AppendDependent(child)
}

// decompose builds the remote records for an entity hierarchy: the root
// record plus every dependent record at any depth, in root-first order within
// each branch. Entities synced before are re-fetched in one lookup so fields
// this engine does not own survive the update; never-synced entities get a
// freshly minted record name and a blank record.
//
// Dependents carry a cascade-delete parent reference and the owning record
// lists them under the descriptor's dependent field.
func (e *Engine) decompose(ctx context.Context, item models.SyncableItem, desc *models.EntityDescriptor, scope models.Scope) (models.Record, []models.Record, error) {
	if desc == nil {
		return models.Record{}, nil, ErrNilDescriptor
	}

	existing := collectExistingIDs(item, desc)
	fetched := make(map[string]models.Record, len(existing))
	if len(existing) > 0 {
		recs, err := e.remote.FetchRecords(ctx, existing, scope)
		if err != nil {
			return models.Record{}, nil, err
		}
		for _, rec := range recs {
			fetched[rec.ID.RecordName] = rec
		}
	}

	root, dependents := e.buildRecords(item, desc, nil, fetched)
	return root, dependents, nil
}

// collectExistingIDs walks the hierarchy and returns the record identifiers
// of entities that were synced before.
func collectExistingIDs(item models.SyncableItem, desc *models.EntityDescriptor) []models.RecordID {
	var ids []models.RecordID
	if name := item.RecordName(); name != "" {
		ids = append(ids, models.RecordID{RecordName: name, Zone: entityZone(item, desc)})
	}
	if desc.Dependent != nil {
		for _, child := range item.Dependents() {
			ids = append(ids, collectExistingIDs(child, desc.Dependent)...)
		}
	}
	return ids
}

// entityZone prefers the zone stamped on the entity (shared-in entities carry
// the owner's zone) over the descriptor's default zone.
func entityZone(item models.SyncableItem, desc *models.EntityDescriptor) models.ZoneID {
	if zone := item.Zone(); zone.ZoneName != "" {
		return zone
	}
	return models.ZoneID{ZoneName: desc.ZoneName}
}

func (e *Engine) buildRecords(item models.SyncableItem, desc *models.EntityDescriptor, parent *models.Reference, fetched map[string]models.Record) (models.Record, []models.Record) {
	zone := entityZone(item, desc)
	item.SetZone(zone)

	name := item.RecordName()
	fresh := name == ""
	if fresh {
		name = e.uuid.Generate()
		item.SetRecordName(name)
	}
	id := models.RecordID{RecordName: name, Zone: zone}

	rec, ok := fetched[name]
	if fresh || !ok {
		rec = models.NewRecord(desc.RecordType, id)
	}
	item.PopulateRecord(&rec)
	rec.Parent = parent

	var dependents []models.Record
	if desc.Dependent != nil {
		children := item.Dependents()
		if len(children) > 0 {
			parentRef := &models.Reference{Record: id, Action: models.ReferenceActionDeleteSelf}
			refs := make([]models.Reference, 0, len(children))
			for _, child := range children {
				childRec, grandchildren := e.buildRecords(child, desc.Dependent, parentRef, fetched)
				refs = append(refs, models.Reference{Record: childRec.ID, Action: models.ReferenceActionDeleteSelf})
				dependents = append(dependents, childRec)
				dependents = append(dependents, grandchildren...)
			}
			rec.SetField(desc.DependentField, models.ReferenceListValue(refs))
		}
	}

	return rec, dependents
}
