package config

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDatabase opens the local cache database described by the config.
// A postgres:// URL opens a PostgreSQL connection (server-side cache
// deployments); anything else is treated as a sqlite file path, which
// is the normal on-device setup. The handle is returned to the caller
// for injection; this package keeps no global state.
func OpenDatabase(cfg *Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	if strings.HasPrefix(cfg.DatabaseURL, "postgres://") || strings.HasPrefix(cfg.DatabaseURL, "postgresql://") {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
