// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmatushkin/shoppingmaniac-sync/internal/logger"
	"github.com/dmatushkin/shoppingmaniac-sync/models"
	"github.com/stretchr/testify/assert"
)

// stubEngine implements the subset of the sync engine the worker uses and
// signals every pull pass on a channel.
type stubEngine struct {
	calls  atomic.Int64
	passed chan models.Scope
}

func newStubEngine() *stubEngine {
	return &stubEngine{passed: make(chan models.Scope, 64)}
}

func (s *stubEngine) FetchChanges(_ context.Context, scope models.Scope, _ *models.EntityDescriptor) ([]models.SyncableItem, error) {
	s.calls.Add(1)
	select {
	case s.passed <- scope:
	default: // a test that stopped draining must not block the worker
	}
	return nil, nil
}

func (s *stubEngine) LoadShare(context.Context, models.ShareMetadata, *models.EntityDescriptor) (models.SyncableItem, error) {
	return nil, nil
}

func (s *stubEngine) ShareItem(context.Context, models.SyncableItem, *models.EntityDescriptor, string, string) (*models.Record, error) {
	return nil, nil
}

func (s *stubEngine) UpdateItem(context.Context, models.SyncableItem, *models.EntityDescriptor) error {
	return nil
}

func (s *stubEngine) SetupUserPermissions(context.Context, *models.EntityDescriptor) error {
	return nil
}

func (s *stubEngine) EnsureSubscriptions(context.Context, models.Scope) error {
	return nil
}

func waitForScope(t *testing.T, ch chan models.Scope) models.Scope {
	t.Helper()
	select {
	case scope := <-ch:
		return scope
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a sync pass")
		return ""
	}
}

func TestSyncWorker_PullsBothScopesPeriodically(t *testing.T) {
	engine := newStubEngine()
	w := NewSyncWorker(engine, models.ShoppingListDescriptor(), 10*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	defer w.Stop()

	assert.Equal(t, models.ScopePrivate, waitForScope(t, engine.passed))
	assert.Equal(t, models.ScopeShared, waitForScope(t, engine.passed))
	assert.Equal(t, models.ScopePrivate, waitForScope(t, engine.passed), "next tick starts over with the private scope")
}

func TestSyncWorker_StopHaltsPasses(t *testing.T) {
	engine := newStubEngine()
	w := NewSyncWorker(engine, models.ShoppingListDescriptor(), 10*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	waitForScope(t, engine.passed)
	w.Stop()

	// Drain anything in flight, then verify no new passes arrive.
	for len(engine.passed) > 0 {
		<-engine.passed
	}
	count := engine.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, count, engine.calls.Load())
}

func TestSyncWorker_StopWithoutStart(t *testing.T) {
	w := NewSyncWorker(newStubEngine(), models.ShoppingListDescriptor(), time.Minute, logger.Nop())
	w.Stop()
}

func TestWorkers_RunAll(t *testing.T) {
	ran := 0
	w := NewWorkers(workerFunc(func() { ran++ }), workerFunc(func() { ran++ }))
	w.Run()
	assert.Equal(t, 2, ran)
}

type workerFunc func()

func (f workerFunc) Run() { f() }
