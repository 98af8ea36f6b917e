package adapter

import (
	"fmt"
	"time"
)

// ErrorCode is the machine-readable failure code reported by the remote
// record store.
type ErrorCode string

const (
	// CodeThrottled: the store asked the caller to slow down; RetryAfter
	// carries the recommended delay.
	CodeThrottled ErrorCode = "THROTTLED"
	// CodeServiceUnavailable: transient outage, retry after RetryAfter.
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// CodeZoneBusy: the zone is temporarily locked by another operation.
	CodeZoneBusy ErrorCode = "ZONE_BUSY"
	// CodeTokenExpired: the supplied change token is too old; the caller
	// must clear it and restart the fetch from the beginning of history.
	CodeTokenExpired ErrorCode = "CHANGE_TOKEN_EXPIRED"
	// CodeNotFound: the addressed record or zone does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodePermissionDenied: the caller may not access the addressed data.
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"
	// CodeAuthFailed: the request token was rejected.
	CodeAuthFailed ErrorCode = "AUTH_FAILED"
	// CodeBadRequest: the request was malformed.
	CodeBadRequest ErrorCode = "BAD_REQUEST"
	// CodeInternal: unclassified server-side failure.
	CodeInternal ErrorCode = "INTERNAL_ERROR"
)

// RemoteError is the classification payload of a failed remote operation.
// The sync engine's error classifier branches on Code and RetryAfter; all
// transport details stay behind this type.
type RemoteError struct {
	Code       ErrorCode
	Message    string
	RetryAfter time.Duration
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote error %s", e.Code)
	}
	return fmt.Sprintf("remote error %s: %s", e.Code, e.Message)
}
