// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package adapter

import (
	"context"

	"github.com/dmatushkin/shoppingmaniac-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteStore is the abstract remote record store capability the sync engine
// calls. Any store exposing change-token pagination, zone-scoped records and
// record sharing can implement it; the engine never sees transport details.
//
// Call-level failures are returned as the error result and may carry a
// classification payload (*RemoteError). Pages returned alongside a non-nil
// error still contain whatever was observed before the failure, so callers
// can preserve partial progress across retries.
type RemoteStore interface {
	// FetchRecords fetches records by identifier. Records that individually
	// fail to load are omitted from the result; only call-level failures
	// produce an error.
	FetchRecords(ctx context.Context, ids []models.RecordID, scope models.Scope) ([]models.Record, error)

	// ModifyRecords creates or updates the given records in one batch and
	// returns the stored versions.
	ModifyRecords(ctx context.Context, records []models.Record, scope models.Scope) ([]models.Record, error)

	// FetchDatabaseChanges enumerates zone-level changes of the database
	// starting at token (empty = from the beginning of history).
	FetchDatabaseChanges(ctx context.Context, scope models.Scope, token models.ChangeToken) (DatabaseChangePage, error)

	// FetchZoneChanges enumerates changed records for the configured zones
	// in one multi-zone call.
	FetchZoneChanges(ctx context.Context, scope models.Scope, configs []ZoneFetchConfig) (ZoneChangePage, error)

	// AcceptShare accepts an incoming share invitation and resolves its
	// metadata to the shared root record identifier and the share record.
	AcceptShare(ctx context.Context, meta models.ShareMetadata) (models.ShareMetadata, error)

	// AccountStatus reports the caller's account state.
	AccountStatus(ctx context.Context) (models.AccountStatus, error)

	// PermissionStatus reports the current state of the given permission.
	PermissionStatus(ctx context.Context, kind models.PermissionKind) (models.PermissionStatus, error)

	// RequestPermission asks the user to grant the given permission and
	// reports the resulting state.
	RequestPermission(ctx context.Context, kind models.PermissionKind) (models.PermissionStatus, error)

	// SaveZone creates the zone if it does not exist and returns the stored
	// zone identifier.
	SaveZone(ctx context.Context, zone models.ZoneID, scope models.Scope) (models.ZoneID, error)

	// UpdateSubscriptions replaces the caller's change subscriptions for the
	// given scope.
	UpdateSubscriptions(ctx context.Context, subs []Subscription, scope models.Scope) error
}

// ZoneFetchConfig pairs a zone with the change token to resume its record
// feed from. An empty token fetches the zone's history from the beginning.
type ZoneFetchConfig struct {
	Zone  models.ZoneID      `json:"zone"`
	Token models.ChangeToken `json:"token,omitempty"`
}

// DatabaseChangePage is one round of the database-level change feed.
type DatabaseChangePage struct {
	// ChangedZones are the zone identifiers reported during this round.
	ChangedZones []models.ZoneID
	// Token is the updated database-level token, empty when the remote
	// failed before issuing one.
	Token models.ChangeToken
	// MoreComing signals that another round must be fetched with Token.
	MoreComing bool
}

// ZoneFetchResult is the per-zone completion of a multi-zone change call.
// Completions may arrive in any order relative to the request's zone list.
type ZoneFetchResult struct {
	Zone       models.ZoneID
	Token      models.ChangeToken
	MoreComing bool
	// Err is the per-zone failure, nil on success. A per-zone error does not
	// by itself fail the call.
	Err error
}

// ZoneChangePage is one round of a multi-zone record change feed.
type ZoneChangePage struct {
	// Records are all changed records observed during the round, across
	// every requested zone.
	Records []models.Record
	// Zones holds one completion per requested zone.
	Zones []ZoneFetchResult
}

// SubscriptionType discriminates what a subscription watches.
type SubscriptionType string

// SubscriptionTypeDatabase watches all zone changes of one database scope.
const SubscriptionTypeDatabase SubscriptionType = "database"

// Subscription registers interest in remote changes so the store can push a
// notification that triggers a sync pass.
type Subscription struct {
	SubscriptionID string           `json:"subscriptionID"`
	Type           SubscriptionType `json:"type"`
}
