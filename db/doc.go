// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and the SQL-backed store.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL runs unmodified on both SQLite and PostgreSQL.

# Tables

The schema includes:

  - setting: persistent key/value configuration (voting_open,
    check_repeated_votes)
  - voter: opaque user id → dense integer index, assigned once
  - vote: the current-round ledger, ordered by seq
  - round: completed round history, FIFO-capped

# Store

Store implements the service.Store interface:

	store := db.NewStore(conn)
	svc, err := service.New(store, cfg.MaxRounds)

Multi-step operations (voter index allocation, round append + retention
trim) run in transactions so partial updates are never visible.

# Drivers

Open selects the driver from Config.DatabaseType:

  - sqlite: modernc.org/sqlite (pure Go, default)
  - postgres: github.com/lib/pq

All statements use $N placeholders in ascending order, which both drivers
bind positionally.
*/
package db
