package service

import (
	"errors"
	"time"

	"github.com/dmatushkin/shoppingmaniac-sync/internal/adapter"
	"github.com/dmatushkin/shoppingmaniac-sync/internal/store"
)

// Classification buckets a remote failure into the recovery strategy the
// engine applies.
type Classification int

const (
	// ClassificationNone: the operation succeeded.
	ClassificationNone Classification = iota
	// ClassificationRetry: transient throttling/unavailability; re-issue the
	// identical operation after the recommended delay.
	ClassificationRetry
	// ClassificationTokenExpired: the supplied change token is too old;
	// clear the stored token and restart the fetch from empty token.
	ClassificationTokenExpired
	// ClassificationFatal: not retried, surfaced to the caller.
	ClassificationFatal
)

func (c Classification) String() string {
	switch c {
	case ClassificationNone:
		return "none"
	case ClassificationRetry:
		return "retry"
	case ClassificationTokenExpired:
		return "tokenExpired"
	case ClassificationFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// defaultRetryDelay is used when a retryable failure arrives without a
// server-recommended delay.
const defaultRetryDelay = 3 * time.Second

// Outcome is the result of classifying one remote operation.
type Outcome struct {
	Class Classification
	// Delay is the wait before re-issuing, set only for ClassificationRetry.
	Delay time.Duration
	// Err is the original error, nil for ClassificationNone.
	Err error
}

// Classify maps a raw failure to its recovery strategy. Pure: no side
// effects, and the same input always yields the same outcome. Transient
// token-store failures classify as retryable alongside remote throttling.
func Classify(err error) Outcome {
	if err == nil {
		return Outcome{Class: ClassificationNone}
	}

	var remoteErr *adapter.RemoteError
	if !errors.As(err, &remoteErr) {
		if store.IsRetryableStoreError(err) {
			return Outcome{Class: ClassificationRetry, Delay: defaultRetryDelay, Err: err}
		}
		return Outcome{Class: ClassificationFatal, Err: err}
	}

	switch remoteErr.Code {
	case adapter.CodeThrottled, adapter.CodeServiceUnavailable, adapter.CodeZoneBusy:
		delay := remoteErr.RetryAfter
		if delay <= 0 {
			delay = defaultRetryDelay
		}
		return Outcome{Class: ClassificationRetry, Delay: delay, Err: err}
	case adapter.CodeTokenExpired:
		return Outcome{Class: ClassificationTokenExpired, Err: err}
	default:
		return Outcome{Class: ClassificationFatal, Err: err}
	}
}
