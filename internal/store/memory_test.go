package store

import (
	"context"
	"sync"
	"testing"

	"github.com/dmatushkin/shoppingmaniac-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStore_DatabaseTokenLifecycle(t *testing.T) {
	s := NewMemoryTokenStore()
	ctx := context.Background()

	token, err := s.DatabaseToken(ctx, models.ScopePrivate)
	require.NoError(t, err)
	assert.Empty(t, token, "fresh store starts without a cursor")

	require.NoError(t, s.SetDatabaseToken(ctx, models.ScopePrivate, "tok-1"))
	token, err = s.DatabaseToken(ctx, models.ScopePrivate)
	require.NoError(t, err)
	assert.Equal(t, models.ChangeToken("tok-1"), token)

	// scopes are independent
	token, err = s.DatabaseToken(ctx, models.ScopeShared)
	require.NoError(t, err)
	assert.Empty(t, token)

	// clearing resets to "from the beginning"
	require.NoError(t, s.SetDatabaseToken(ctx, models.ScopePrivate, ""))
	token, err = s.DatabaseToken(ctx, models.ScopePrivate)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestMemoryTokenStore_ZoneTokensArePartitioned(t *testing.T) {
	s := NewMemoryTokenStore()
	ctx := context.Background()

	ownZone := models.ZoneID{ZoneName: "Z1"}
	sharedZone := models.ZoneID{ZoneName: "Z1", OwnerName: "alice"}

	require.NoError(t, s.SetZoneToken(ctx, ownZone, models.ScopePrivate, "own"))
	require.NoError(t, s.SetZoneToken(ctx, sharedZone, models.ScopeShared, "shared"))

	token, err := s.ZoneToken(ctx, ownZone, models.ScopePrivate)
	require.NoError(t, err)
	assert.Equal(t, models.ChangeToken("own"), token)

	token, err = s.ZoneToken(ctx, sharedZone, models.ScopeShared)
	require.NoError(t, err)
	assert.Equal(t, models.ChangeToken("shared"), token)

	// same zone name in the other scope has no cursor
	token, err = s.ZoneToken(ctx, ownZone, models.ScopeShared)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestMemoryTokenStore_ConcurrentScopes(t *testing.T) {
	s := NewMemoryTokenStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, scope := range []models.Scope{models.ScopePrivate, models.ScopeShared} {
		wg.Add(1)
		go func(scope models.Scope) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = s.SetDatabaseToken(ctx, scope, models.ChangeToken(scope))
				_, _ = s.DatabaseToken(ctx, scope)
			}
		}(scope)
	}
	wg.Wait()

	token, err := s.DatabaseToken(ctx, models.ScopePrivate)
	require.NoError(t, err)
	assert.Equal(t, models.ChangeToken(models.ScopePrivate), token)
}

func TestMemoryEntityStore_FindOrCreate(t *testing.T) {
	s := NewMemoryEntityStore()
	ctx := context.Background()
	desc := models.ShoppingListDescriptor()

	first, err := s.FindOrCreate(ctx, desc, "rec-1")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "rec-1", first.RecordName())

	second, err := s.FindOrCreate(ctx, desc, "rec-1")
	require.NoError(t, err)
	assert.Same(t, first, second, "same record name must resolve to the same entity")

	other, err := s.FindOrCreate(ctx, desc.Dependent, "rec-1")
	require.NoError(t, err)
	assert.NotSame(t, first, other, "entity identity is per record type")
}

func TestMemoryEntityStore_NilDescriptor(t *testing.T) {
	s := NewMemoryEntityStore()

	_, err := s.FindOrCreate(context.Background(), nil, "rec-1")
	assert.ErrorIs(t, err, ErrNilDescriptor)
}
