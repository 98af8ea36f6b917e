// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

// Package service implements the incremental synchronization engine: change
// fetchers walking token-paginated feeds, a hierarchical record mapper, a
// push/pull orchestrator and the account/permission/zone provisioning
// workflow. All remote access goes through adapter.RemoteStore, all token and
// entity persistence through the store interfaces.
package service

import (
	"github.com/dmatushkin/shoppingmaniac-sync/internal/adapter"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/logger"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/store"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/utils"
)

// Engine is the concrete SyncEngine implementation.
type Engine struct {
	remote   adapter.RemoteStore
	tokens   store.TokenStore
	entities store.EntityStore
	retry    *retrier
	uuid     *utils.UUIDGenerator
	log      *logger.Logger
}

var _ SyncEngine = (*Engine)(nil)

// NewEngine wires the sync engine from its collaborators. A nil scheduler
// falls back to wall-clock waiting.
func NewEngine(remote adapter.RemoteStore, tokens store.TokenStore, entities store.EntityStore, scheduler Scheduler, log *logger.Logger) *Engine {
	if scheduler == nil {
		scheduler = RealScheduler{}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Engine{
		remote:   remote,
		tokens:   tokens,
		entities: entities,
		retry:    &retrier{scheduler: scheduler, log: log},
		uuid:     utils.NewUUIDGenerator(),
		log:      log,
	}
}
