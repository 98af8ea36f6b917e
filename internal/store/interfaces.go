// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package store

import (
	"context"

	"github.com/dmatushkin/shoppingmaniac-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenStore persists opaque change tokens: one database-level token per
// scope and one token per (zone, scope). An empty token means "no cursor,
// fetch from the beginning of history"; setting an empty token clears the
// stored cursor.
//
// Implementations must make reads and replacements for different scopes safe
// to run concurrently. Two concurrent sync passes for the same scope are not
// supported; callers serialize per scope.
type TokenStore interface {
	DatabaseToken(ctx context.Context, scope models.Scope) (models.ChangeToken, error)
	SetDatabaseToken(ctx context.Context, scope models.Scope, token models.ChangeToken) error
	ZoneToken(ctx context.Context, zone models.ZoneID, scope models.Scope) (models.ChangeToken, error)
	SetZoneToken(ctx context.Context, zone models.ZoneID, scope models.Scope, token models.ChangeToken) error
}

// EntityStore is the local persistence boundary the record mapper talks to.
// The application supplies its own implementation; the in-memory one in this
// package backs tests and the demo CLI.
type EntityStore interface {
	// FindOrCreate returns the entity of the descriptor's kind carrying the
	// given record name, creating an empty one via the descriptor when no
	// such entity exists yet.
	FindOrCreate(ctx context.Context, desc *models.EntityDescriptor, recordName string) (models.SyncableItem, error)

	// Save persists the given entities.
	Save(ctx context.Context, items ...models.SyncableItem) error
}
