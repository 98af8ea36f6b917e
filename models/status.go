// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package models

// AccountStatus is the remote account state reported by the record store.
type AccountStatus string

const (
	AccountStatusAvailable         AccountStatus = "available"
	AccountStatusRestricted        AccountStatus = "restricted"
	AccountStatusNoAccount         AccountStatus = "noAccount"
	AccountStatusCouldNotDetermine AccountStatus = "couldNotDetermine"
)

// PermissionKind names a user permission the engine may need to check or
// request before zone provisioning.
type PermissionKind string

// PermissionUserDiscoverability lets other users of the record store discover
// the caller by identity, a precondition for sharing.
const PermissionUserDiscoverability PermissionKind = "userDiscoverability"

// PermissionStatus is the state of a permission check or request.
type PermissionStatus string

const (
	PermissionStatusInitialState     PermissionStatus = "initialState"
	PermissionStatusGranted          PermissionStatus = "granted"
	PermissionStatusDenied           PermissionStatus = "denied"
	PermissionStatusCouldNotComplete PermissionStatus = "couldNotComplete"
)
