// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package service

import (
	"context"
	"testing"
	"time"

	"github.com/dmatushkin/shoppingmaniac-sync/internal/adapter"
	"github.com/dmatushkin/shoppingmaniac-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	zoneZ1 = models.ZoneID{ZoneName: "Z1"}
	zoneZ2 = models.ZoneID{ZoneName: "Z2"}
	zoneZ3 = models.ZoneID{ZoneName: "Z3"}
)

func TestFetchChangedZones_PaginationAccumulates(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()

	gomock.InOrder(
		te.remote.EXPECT().
			FetchDatabaseChanges(gomock.Any(), models.ScopePrivate, models.ChangeToken("")).
			Return(adapter.DatabaseChangePage{ChangedZones: []models.ZoneID{zoneZ1}, Token: "t1", MoreComing: true}, nil),
		te.remote.EXPECT().
			FetchDatabaseChanges(gomock.Any(), models.ScopePrivate, models.ChangeToken("t1")).
			Return(adapter.DatabaseChangePage{ChangedZones: []models.ZoneID{zoneZ2}, Token: "t2", MoreComing: true}, nil),
		te.remote.EXPECT().
			FetchDatabaseChanges(gomock.Any(), models.ScopePrivate, models.ChangeToken("t2")).
			Return(adapter.DatabaseChangePage{ChangedZones: []models.ZoneID{zoneZ2, zoneZ3}, Token: "t3"}, nil),
	)

	zones, err := te.engine.fetchChangedZones(ctx, models.ScopePrivate)
	require.NoError(t, err)
	assert.Equal(t, []models.ZoneID{zoneZ1, zoneZ2, zoneZ3}, zones, "union of all rounds, deduplicated, in first-seen order")

	stored, err := te.tokens.DatabaseToken(ctx, models.ScopePrivate)
	require.NoError(t, err)
	assert.Equal(t, models.ChangeToken("t3"), stored)
}

func TestFetchChangedZones_RetryKeepsCollectedZones(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()

	gomock.InOrder(
		te.remote.EXPECT().
			FetchDatabaseChanges(gomock.Any(), models.ScopePrivate, models.ChangeToken("")).
			Return(adapter.DatabaseChangePage{ChangedZones: []models.ZoneID{zoneZ1}},
				&adapter.RemoteError{Code: adapter.CodeThrottled, RetryAfter: time.Second}),
		te.remote.EXPECT().
			FetchDatabaseChanges(gomock.Any(), models.ScopePrivate, models.ChangeToken("")).
			Return(adapter.DatabaseChangePage{ChangedZones: []models.ZoneID{zoneZ2}, Token: "t1"}, nil),
	)

	zones, err := te.engine.fetchChangedZones(ctx, models.ScopePrivate)
	require.NoError(t, err)
	assert.Equal(t, []models.ZoneID{zoneZ1, zoneZ2}, zones, "zones observed before the transient failure are not re-reported and must be kept")
	assert.Equal(t, []time.Duration{time.Second}, te.sched.delays)
}

func TestFetchChangedZones_TokenResetRestart(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, te.tokens.SetDatabaseToken(ctx, models.ScopePrivate, "stale"))

	gomock.InOrder(
		te.remote.EXPECT().
			FetchDatabaseChanges(gomock.Any(), models.ScopePrivate, models.ChangeToken("stale")).
			Return(adapter.DatabaseChangePage{}, &adapter.RemoteError{Code: adapter.CodeTokenExpired}),
		te.remote.EXPECT().
			FetchDatabaseChanges(gomock.Any(), models.ScopePrivate, models.ChangeToken("")).
			Return(adapter.DatabaseChangePage{ChangedZones: []models.ZoneID{zoneZ1}, Token: "fresh"}, nil),
	)

	zones, err := te.engine.fetchChangedZones(ctx, models.ScopePrivate)
	require.NoError(t, err)
	assert.Equal(t, []models.ZoneID{zoneZ1}, zones)
	assert.Empty(t, te.sched.delays, "invalidation restarts without delay")

	stored, err := te.tokens.DatabaseToken(ctx, models.ScopePrivate)
	require.NoError(t, err)
	assert.Equal(t, models.ChangeToken("fresh"), stored)
}

func TestFetchChangedZones_MissingTokenIsProtocolViolation(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, te.tokens.SetDatabaseToken(ctx, models.ScopePrivate, "old"))

	te.remote.EXPECT().
		FetchDatabaseChanges(gomock.Any(), models.ScopePrivate, models.ChangeToken("old")).
		Return(adapter.DatabaseChangePage{ChangedZones: []models.ZoneID{zoneZ1}}, nil)

	_, err := te.engine.fetchChangedZones(ctx, models.ScopePrivate)
	assert.ErrorIs(t, err, ErrMissingSyncToken)

	stored, err := te.tokens.DatabaseToken(ctx, models.ScopePrivate)
	require.NoError(t, err)
	assert.Empty(t, stored, "fatal failure clears the stored cursor")
}

func TestFetchChangedZones_FatalClearsToken(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, te.tokens.SetDatabaseToken(ctx, models.ScopePrivate, "old"))

	remoteErr := &adapter.RemoteError{Code: adapter.CodePermissionDenied}
	te.remote.EXPECT().
		FetchDatabaseChanges(gomock.Any(), models.ScopePrivate, models.ChangeToken("old")).
		Return(adapter.DatabaseChangePage{}, remoteErr)

	_, err := te.engine.fetchChangedZones(ctx, models.ScopePrivate)
	assert.ErrorIs(t, err, remoteErr)

	stored, err := te.tokens.DatabaseToken(ctx, models.ScopePrivate)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestFetchChangedZones_TokenPersistedPerRound(t *testing.T) {
	te := newTestEngine(t)
	ctx := context.Background()

	gomock.InOrder(
		te.remote.EXPECT().
			FetchDatabaseChanges(gomock.Any(), models.ScopeShared, models.ChangeToken("")).
			Return(adapter.DatabaseChangePage{ChangedZones: []models.ZoneID{zoneZ1}, Token: "t1", MoreComing: true}, nil),
		te.remote.EXPECT().
			FetchDatabaseChanges(gomock.Any(), models.ScopeShared, models.ChangeToken("t1")).
			DoAndReturn(func(ctx context.Context, _ models.Scope, _ models.ChangeToken) (adapter.DatabaseChangePage, error) {
				stored, err := te.tokens.DatabaseToken(ctx, models.ScopeShared)
				require.NoError(t, err)
				assert.Equal(t, models.ChangeToken("t1"), stored, "round 1 token persisted before round 2 is issued")
				return adapter.DatabaseChangePage{Token: "t2"}, nil
			}),
	)

	_, err := te.engine.fetchChangedZones(ctx, models.ScopeShared)
	require.NoError(t, err)
}
