// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Crowdvote API.

# Handler Types

Each handler is a struct holding the voting service:

  - RoundHandler: round lifecycle (open, close, status)
  - VoteHandler: vote submission, count, duplicate-check flag
  - HistoryHandler: round history summary, CSV export, clear
  - EventsHandler: state-change event stream
  - PageHandler: embedded HTML pages

Handlers are created via constructor functions that accept *service.Service:

	roundHandler := handlers.NewRoundHandler(svc)

# Round Lifecycle

One round is open at a time; both transitions are valid from any state:

	POST /rounds/open   → Open (idempotent, clears the ledger)
	POST /rounds/close  → Close (returns avg/sdev/median or nulls)
	GET  /rounds/status → Status

# Voting Flow

	POST /votes       → Submit ({user_id, vote_value})
	GET  /votes/count → Count

Rejections return an ErrorResponse with a stable code: round_closed (409),
invalid_value (400), or duplicate_vote (409). Store failures are 500s
without a code.

# History

	GET  /history        → Summary (count + last 10 rounds)
	GET  /history/export → Export (CSV download)
	POST /history/clear  → Clear (irreversible)

# Events

GET /events is a server-sent-events stream that emits the open/closed
boolean on connect and then only on change, per connection, until the
client disconnects.
*/
package handlers
