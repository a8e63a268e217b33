// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/danielhkuo/crowdvote/cliparse"
)

// Open connects to the database selected by cfg.DatabaseType.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DatabaseType, err)
	}

	if driver == "sqlite" {
		// SQLite serializes writers anyway; a single connection avoids
		// SQLITE_BUSY under concurrent requests.
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}
