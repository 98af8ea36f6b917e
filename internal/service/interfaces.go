// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package service

import (
	"context"
	"time"

	"github.com/dmatushkin/shoppingmaniac-sync/models"
)

// Scheduler inserts delays between retry attempts. Injected so tests can
// substitute an instant implementation for wall-clock waiting.
type Scheduler interface {
	// ScheduleAfter returns after d has elapsed or ctx is done, whichever
	// comes first. A non-positive d returns immediately (after a ctx
	// cancellation check). Returns ctx.Err() when cancelled.
	ScheduleAfter(ctx context.Context, d time.Duration) error
}

// SyncEngine is the surface the application layer consumes: incremental
// pulls, share loading, pushes and the one-time permission/zone setup.
type SyncEngine interface {
	// FetchChanges performs one incremental pull for scope: walks the
	// database change feed, then the changed zones' record feeds, then
	// materializes local entities rooted at desc. Entities are resolved and
	// saved through the engine's entity store; the returned slice holds the
	// root-level entities touched by the pull.
	FetchChanges(ctx context.Context, scope models.Scope, desc *models.EntityDescriptor) ([]models.SyncableItem, error)

	// LoadShare accepts an incoming share and materializes the shared root
	// entity with its dependent closure, one record fetch per hierarchy
	// level.
	LoadShare(ctx context.Context, meta models.ShareMetadata, desc *models.EntityDescriptor) (models.SyncableItem, error)

	// ShareItem pushes the entity hierarchy and wraps its root in a new
	// share record carrying title and shareType. Returns the share record.
	ShareItem(ctx context.Context, item models.SyncableItem, desc *models.EntityDescriptor, title, shareType string) (*models.Record, error)

	// UpdateItem pushes the entity hierarchy to the remote store, keeping
	// an existing share record travelling with the root.
	UpdateItem(ctx context.Context, item models.SyncableItem, desc *models.EntityDescriptor) error

	// SetupUserPermissions runs the account/permission/zone provisioning
	// workflow for desc's entity kind. Runs once at application start; a
	// failure leaves the kind unsynced but is not fatal to the app.
	SetupUserPermissions(ctx context.Context, desc *models.EntityDescriptor) error

	// EnsureSubscriptions registers the database-changes subscription for
	// scope so pushed notifications can trigger sync passes.
	EnsureSubscriptions(ctx context.Context, scope models.Scope) error
}
