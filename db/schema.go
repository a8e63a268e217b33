// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is restricted to types and defaults that behave identically on
// SQLite and PostgreSQL.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Persistent key/value settings (voting_open, check_repeated_votes)
CREATE TABLE IF NOT EXISTS setting (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

-- Voter registry: dense index per opaque user id, assigned once, never reused
CREATE TABLE IF NOT EXISTS voter (
    id TEXT PRIMARY KEY,
    idx INTEGER NOT NULL UNIQUE
);

-- Current-round vote ledger, ordered by seq, bulk-cleared on open and close
CREATE TABLE IF NOT EXISTS vote (
    seq INTEGER NOT NULL,
    voter_id TEXT NOT NULL REFERENCES voter(id),
    value DOUBLE PRECISION NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_voter_id ON vote(voter_id);

-- Completed rounds, oldest evicted first when the retention cap is exceeded.
-- vote_values and voter_indices are comma-joined, equal length, same order.
CREATE TABLE IF NOT EXISTS round (
    seq INTEGER PRIMARY KEY,
    recorded_at TEXT NOT NULL,
    avg DOUBLE PRECISION NOT NULL,
    sdev DOUBLE PRECISION NOT NULL,
    median DOUBLE PRECISION NOT NULL,
    vote_values TEXT NOT NULL,
    voter_indices TEXT NOT NULL
);
`
