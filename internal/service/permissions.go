// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package service

import (
	"context"
	"fmt"

	"github.com/dmatushkin/shoppingmaniac-sync/models"
)

// setupState is the phase of the account/permission/zone provisioning
// workflow.
type setupState int

const (
	stateCheckingAccount setupState = iota
	stateCheckingPermission
	stateRequestingPermission
	stateProvisioningZone
	stateReady
)

func (s setupState) String() string {
	switch s {
	case stateCheckingAccount:
		return "checkingAccount"
	case stateCheckingPermission:
		return "checkingPermission"
	case stateRequestingPermission:
		return "requestingPermission"
	case stateProvisioningZone:
		return "provisioningZone"
	case stateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// SetupUserPermissions implements SyncEngine. The workflow advances through
// account check, discoverability permission check (requesting the permission
// when it was never asked for), and zone provisioning; any step can fail the
// whole workflow. Runs once per entity kind at application start.
func (e *Engine) SetupUserPermissions(ctx context.Context, desc *models.EntityDescriptor) error {
	if desc == nil {
		return ErrNilDescriptor
	}

	state := stateCheckingAccount
	for state != stateReady {
		next, err := e.setupStep(ctx, state, desc)
		if err != nil {
			e.log.Warn().
				Str("state", state.String()).
				Str("recordType", desc.RecordType).
				Err(err).
				Msg("permission workflow failed")
			return err
		}
		state = next
	}

	e.log.Info().
		Str("recordType", desc.RecordType).
		Str("zone", desc.ZoneName).
		Msg("permission workflow completed")

	return nil
}

// setupStep is the single transition function of the workflow state machine.
func (e *Engine) setupStep(ctx context.Context, state setupState, desc *models.EntityDescriptor) (setupState, error) {
	switch state {
	case stateCheckingAccount:
		status, err := e.remote.AccountStatus(ctx)
		if err != nil {
			return state, fmt.Errorf("check account status: %w", err)
		}
		if status != models.AccountStatusAvailable {
			return state, fmt.Errorf("%w: account status %q", ErrAccountUnavailable, status)
		}
		return stateCheckingPermission, nil

	case stateCheckingPermission:
		status, err := e.remote.PermissionStatus(ctx, models.PermissionUserDiscoverability)
		if err != nil {
			return state, fmt.Errorf("check discoverability permission: %w", err)
		}
		switch status {
		case models.PermissionStatusGranted:
			return stateProvisioningZone, nil
		case models.PermissionStatusInitialState:
			return stateRequestingPermission, nil
		default:
			return state, fmt.Errorf("%w: permission status %q", ErrPermissionDenied, status)
		}

	case stateRequestingPermission:
		status, err := e.remote.RequestPermission(ctx, models.PermissionUserDiscoverability)
		if err != nil {
			return state, fmt.Errorf("request discoverability permission: %w", err)
		}
		if status != models.PermissionStatusGranted {
			return state, fmt.Errorf("%w: permission request answered %q", ErrPermissionDenied, status)
		}
		return stateProvisioningZone, nil

	case stateProvisioningZone:
		zone := models.ZoneID{ZoneName: desc.ZoneName}
		if _, err := e.remote.SaveZone(ctx, zone, models.ScopePrivate); err != nil {
			return state, fmt.Errorf("provision zone %q: %w", desc.ZoneName, err)
		}
		return stateReady, nil

	default:
		return state, fmt.Errorf("unexpected workflow state %q", state)
	}
}
