// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package service

import (
	"context"
	"time"

	"github.com/dmatushkin/shoppingmaniac-sync/internal/logger"
)

// RealScheduler waits on the wall clock. Used outside of tests.
type RealScheduler struct{}

// ScheduleAfter implements Scheduler.
func (RealScheduler) ScheduleAfter(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// retrier re-issues a remote operation according to its classified outcome:
// transient failures wait out the recommended delay, token invalidation runs
// the caller's reset hook and retries immediately, fatal failures stop.
type retrier struct {
	scheduler Scheduler
	log       *logger.Logger
}

// run executes op until it succeeds or fails fatally. onTokenExpired, when
// non-nil, is invoked before the immediate retry that follows a token
// invalidation; its error aborts the loop. A nil hook turns invalidation into
// a fatal failure.
func (r *retrier) run(ctx context.Context, opName string, op func(ctx context.Context) error, onTokenExpired func(ctx context.Context) error) error {
	for {
		outcome := Classify(op(ctx))

		switch outcome.Class {
		case ClassificationNone:
			return nil

		case ClassificationRetry:
			r.log.Warn().
				Str("op", opName).
				Dur("delay", outcome.Delay).
				Err(outcome.Err).
				Msg("transient remote failure, retrying")
			if err := r.scheduler.ScheduleAfter(ctx, outcome.Delay); err != nil {
				return err
			}

		case ClassificationTokenExpired:
			if onTokenExpired == nil {
				return outcome.Err
			}
			r.log.Warn().
				Str("op", opName).
				Msg("change token invalidated, restarting from empty token")
			if err := onTokenExpired(ctx); err != nil {
				return err
			}

		default:
			return outcome.Err
		}
	}
}
