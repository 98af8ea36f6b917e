// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the sync client needs at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Remote.Address == "" || cfg.Remote.Container == "" {
		return ErrInvalidRemoteConfigs
	}

	switch cfg.Storage.DB.Driver {
	case "", "memory":
	case "sqlite3", "pgx":
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
