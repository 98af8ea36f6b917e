// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmatushkin/shoppingmaniac-sync/internal/adapter"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantClass Classification
		wantDelay time.Duration
	}{
		{
			name:      "nil error",
			err:       nil,
			wantClass: ClassificationNone,
		},
		{
			name:      "throttled with server delay",
			err:       &adapter.RemoteError{Code: adapter.CodeThrottled, RetryAfter: 5 * time.Second},
			wantClass: ClassificationRetry,
			wantDelay: 5 * time.Second,
		},
		{
			name:      "throttled without delay falls back to default",
			err:       &adapter.RemoteError{Code: adapter.CodeThrottled},
			wantClass: ClassificationRetry,
			wantDelay: defaultRetryDelay,
		},
		{
			name:      "service unavailable",
			err:       &adapter.RemoteError{Code: adapter.CodeServiceUnavailable, RetryAfter: time.Second},
			wantClass: ClassificationRetry,
			wantDelay: time.Second,
		},
		{
			name:      "zone busy",
			err:       &adapter.RemoteError{Code: adapter.CodeZoneBusy},
			wantClass: ClassificationRetry,
			wantDelay: defaultRetryDelay,
		},
		{
			name:      "expired change token",
			err:       &adapter.RemoteError{Code: adapter.CodeTokenExpired},
			wantClass: ClassificationTokenExpired,
		},
		{
			name:      "wrapped remote error is unwrapped",
			err:       fmt.Errorf("fetch zone records: %w", &adapter.RemoteError{Code: adapter.CodeZoneBusy}),
			wantClass: ClassificationRetry,
			wantDelay: defaultRetryDelay,
		},
		{
			name:      "transient token store failure is retried",
			err:       fmt.Errorf("persist database token: %w", &pgconn.PgError{Code: pgerrcode.SerializationFailure}),
			wantClass: ClassificationRetry,
			wantDelay: defaultRetryDelay,
		},
		{
			name:      "token store constraint violation is fatal",
			err:       &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			wantClass: ClassificationFatal,
		},
		{
			name:      "permission denied is fatal",
			err:       &adapter.RemoteError{Code: adapter.CodePermissionDenied},
			wantClass: ClassificationFatal,
		},
		{
			name:      "plain error is fatal",
			err:       errors.New("connection reset"),
			wantClass: ClassificationFatal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			assert.Equal(t, tt.wantClass, got.Class)
			assert.Equal(t, tt.wantDelay, got.Delay)
			if tt.err == nil {
				assert.NoError(t, got.Err)
			} else {
				assert.Error(t, got.Err)
			}
		})
	}
}

func TestClassify_Stable(t *testing.T) {
	err := &adapter.RemoteError{Code: adapter.CodeThrottled, RetryAfter: 2 * time.Second}

	first := Classify(err)
	second := Classify(err)
	assert.Equal(t, first, second)
}
