// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dmatushkin/shoppingmaniac-sync/internal/logger"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/service"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/utils"
	"github.com/dmatushkin/shoppingmaniac-sync/models"
)

const defaultSyncInterval = 5 * time.Minute

// syncWorker runs periodic incremental pulls for one entity kind across the
// private and shared database scopes.
type syncWorker struct {
	engine   service.SyncEngine
	desc     *models.EntityDescriptor
	interval time.Duration
	uuid     *utils.UUIDGenerator
	log      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncWorker creates a worker that calls engine.FetchChanges on a ticker.
// The worker is idle until Start (or Run) is called. A non-positive interval
// defaults to 5 minutes.
func NewSyncWorker(engine service.SyncEngine, desc *models.EntityDescriptor, interval time.Duration, log *logger.Logger) *syncWorker {
	if log == nil {
		log = logger.Nop()
	}
	return &syncWorker{
		engine:   engine,
		desc:     desc,
		interval: interval,
		uuid:     utils.NewUUIDGenerator(),
		log:      log,
	}
}

// Run implements Worker.
func (w *syncWorker) Run() {
	w.Start(context.Background())
}

// Start stops any previously running job, then launches a background
// goroutine that runs a sync pass every interval. The goroutine exits when
// ctx is cancelled or Stop is called.
func (w *syncWorker) Start(ctx context.Context) {
	interval := w.interval
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.syncPass(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. Safe to call when the worker is not running.
func (w *syncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// syncPass pulls both database scopes sequentially; sync passes for the same
// scope must never overlap, which the single worker goroutine guarantees.
func (w *syncWorker) syncPass(ctx context.Context) {
	passID := w.uuid.Generate()
	ctx = utils.WithPassID(ctx, passID)

	for _, scope := range []models.Scope{models.ScopePrivate, models.ScopeShared} {
		entities, err := w.engine.FetchChanges(ctx, scope, w.desc)
		if err != nil {
			w.log.Warn().
				Str("passID", passID).
				Str("scope", string(scope)).
				Str("recordType", w.desc.RecordType).
				Err(err).
				Msg("background sync pass failed")
			continue
		}
		w.log.Debug().
			Str("passID", passID).
			Str("scope", string(scope)).
			Int("roots", len(entities)).
			Msg("background sync pass completed")
	}
}
