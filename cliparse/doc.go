// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8741)
  - DatabaseURL: SQLite file path or PostgreSQL connection string
    (default: ./data/crowdvote.db)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - MaxRounds: History retention cap (default: 100)

# CLI Flags

	-p  Server port
	-d  Database URL or SQLite file path
	-t  Database type
	-m  Max stored voting rounds

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	MAX_ROUNDS    → -m

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if DATABASE_TYPE is not sqlite or postgres, if a
postgres deployment has no DATABASE_URL, or if a numeric value fails to
parse.
*/
package cliparse
