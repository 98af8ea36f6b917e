// Package utils provides small helpers shared across the sync engine:
// UUID record-name generation, request-token JWT handling and typed
// context keys.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// string-based keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// PassIDCtxKey stores the identifier of the current sync pass in the context
// so that log entries from all pipeline stages of one pass can be correlated.
var PassIDCtxKey = contextKey("syncPassID")

// WithPassID attaches a sync-pass identifier to ctx.
func WithPassID(ctx context.Context, passID string) context.Context {
	return context.WithValue(ctx, PassIDCtxKey, passID)
}

// GetPassIDFromContext retrieves the sync-pass identifier from the context.
// ok is false when no pass identifier is attached.
func GetPassIDFromContext(ctx context.Context) (string, bool) {
	passID, ok := ctx.Value(PassIDCtxKey).(string)
	return passID, ok
}
