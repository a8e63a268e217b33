// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Crowdvote API.

# Route Registration

NewRouter creates a configured handler with all endpoints, wrapped in CORS:

	handler := router.NewRouter(svc, cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Round lifecycle (admin):

	POST /rounds/open   - Open a voting round (idempotent)
	POST /rounds/close  - Close and record statistics
	GET  /rounds/status - Current open/closed state

Voting (public):

	POST /votes              - Submit a vote
	GET  /votes/count        - Current round vote count
	GET  /votes/check        - Duplicate-check flag
	POST /votes/check/toggle - Flip the duplicate-check flag

History:

	GET  /history        - Count + last 10 rounds
	GET  /history/export - CSV download
	POST /history/clear  - Delete all history

Events:

	GET /events - SSE stream of open/closed changes

Pages:

	GET /      - Voting page
	GET /admin - Admin page

# Handler Initialization

The router creates handler instances with dependency injection:

	roundHandler := handlers.NewRoundHandler(svc)
	voteHandler := handlers.NewVoteHandler(svc)
	historyHandler := handlers.NewHistoryHandler(svc)
	eventsHandler := handlers.NewEventsHandler(svc)
	pageHandler := handlers.NewPageHandler(svc)

All handlers receive the voting service.
*/
package router
