// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Crowdvote API server.

Crowdvote is a live audience-voting service: an administrator opens and
closes discrete voting rounds, participants submit one numeric vote per
round, and the server aggregates each round into mean / standard deviation /
median and keeps a capped history for download.

# Starting the Server

The server runs on SQLite out of the box:

	go run main.go

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

A .env file in the working directory is loaded automatically.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 8741)
  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
    (default: ./data/crowdvote.db)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - MAX_ROUNDS (-m): History retention cap, oldest rounds evicted first
    (default: 100)
  - LOG_LEVEL: debug, info, warn, error (default: info)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - service: round state machine, vote ledger, user registry, statistics
  - db: schema creation and the SQL-backed store
  - handlers: HTTP request handlers (rounds, votes, history, events, pages)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - metrics: Prometheus instrumentation
  - logging: Structured logging setup
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
