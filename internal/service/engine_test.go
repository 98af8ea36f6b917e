// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package service

import (
	"testing"

	"github.com/dmatushkin/shoppingmaniac-sync/internal/logger"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/mock"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/store"
	"go.uber.org/mock/gomock"
)

// testEngine bundles an Engine with its mocked remote store, real in-memory
// token/entity stores and an instant scheduler.
type testEngine struct {
	engine   *Engine
	remote   *mock.MockRemoteStore
	tokens   store.TokenStore
	entities store.EntityStore
	sched    *instantScheduler
}

func newTestEngine(t *testing.T) *testEngine {
	t.Helper()

	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	tokens := store.NewMemoryTokenStore()
	entities := store.NewMemoryEntityStore()
	sched := &instantScheduler{}

	return &testEngine{
		engine:   NewEngine(remote, tokens, entities, sched, logger.Nop()),
		remote:   remote,
		tokens:   tokens,
		entities: entities,
		sched:    sched,
	}
}
