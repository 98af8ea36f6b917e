package service

import "errors"

var (
	// ErrMissingSyncToken is returned when the remote store completes a
	// change fetch without supplying an updated token. Treated as a
	// protocol violation rather than an empty result.
	ErrMissingSyncToken = errors.New("missing sync token in change response")

	// ErrAccountUnavailable is returned by the permission workflow when the
	// remote account is restricted, absent or undeterminable.
	ErrAccountUnavailable = errors.New("remote account unavailable")

	// ErrPermissionDenied is returned by the permission workflow when the
	// discoverability permission is denied or cannot be obtained.
	ErrPermissionDenied = errors.New("user permission denied")

	// ErrNilDescriptor is returned when an operation is invoked without an
	// entity descriptor.
	ErrNilDescriptor = errors.New("nil entity descriptor")

	// ErrNoRecordName is returned when a push targets another owner's shared
	// zone but the entity carries no record name from a previous sync, so
	// there is no remote identity to address.
	ErrNoRecordName = errors.New("entity has no remote record name")
)
