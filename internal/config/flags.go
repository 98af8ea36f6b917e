package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote record store base URL
//	-container record store container identifier
//	-api-key-id server-to-server key identifier
//	-api-key-secret server-to-server key secret
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-driver token store driver (memory, sqlite3, pgx)
//	-d token store DSN
//	-sync-interval background sync interval (e.g., "1m", "30s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var remoteAddress string
	var container string
	var apiKeyID string
	var apiKeySecret string
	var requestTimeout time.Duration
	var dbDriver string
	var databaseDSN string
	var syncInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&remoteAddress, "a", "", "Remote record store base URL")
	flag.StringVar(&container, "container", "", "Record store container identifier")
	flag.StringVar(&apiKeyID, "api-key-id", "", "Server-to-server key identifier")
	flag.StringVar(&apiKeySecret, "api-key-secret", "", "Server-to-server key secret")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&dbDriver, "driver", "", "Token store driver (memory, sqlite3, pgx)")
	flag.StringVar(&databaseDSN, "d", "", "Token store DSN")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 1m, 30s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Remote: Remote{
			Address:        remoteAddress,
			Container:      container,
			APIKeyID:       apiKeyID,
			APIKeySecret:   apiKeySecret,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
