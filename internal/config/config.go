// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matushkin

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the sync
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Remote holds the remote record store endpoint and credentials.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds configuration for the local persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for the background sync worker.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote holds the remote record store connection settings.
type Remote struct {
	// Address is the base URL of the record store web service
	// (e.g. "https://records.example.com").
	// Env: REMOTE_ADDRESS
	Address string `env:"ADDRESS"`

	// Container is the record store container identifier the client's data
	// lives in.
	// Env: REMOTE_CONTAINER
	Container string `env:"CONTAINER"`

	// APIKeyID is the identifier of the server-to-server key used to sign
	// request tokens.
	// Env: REMOTE_API_KEY_ID
	APIKeyID string `env:"API_KEY_ID"`

	// APIKeySecret is the signing secret paired with APIKeyID. Must be kept
	// confidential.
	// Env: REMOTE_API_KEY_SECRET
	APIKeySecret string `env:"API_KEY_SECRET"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the transport cancels it (e.g. "30s", "1m").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the change-token database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the change-token store.
type DB struct {
	// Driver selects the token store backend: "memory", "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string for the selected driver
	// (e.g. "file:tokens.db" for SQLite or a postgres:// URI for pgx).
	// Ignored by the memory driver.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for the background sync worker.
type Workers struct {
	// SyncInterval defines how often the periodic sync worker runs a pull
	// pass (e.g. "1m", "30s").
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetSyncConfig loads, merges, and validates the sync client configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetSyncConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
