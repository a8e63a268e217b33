// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package service implements the voting core: the round state machine, the
vote ledger, the voter registry, round statistics, and history.

# Round Lifecycle

A single round is open at a time. Both transitions are valid from any
state:

	svc.OpenRound(ctx)          // clear ledger, accept votes; idempotent
	rec, err := svc.CloseRound(ctx) // seal, compute stats, record history

CloseRound flips the state before reading the ledger, so votes arriving
during statistics computation are rejected. A close with zero votes
returns (nil, nil) and records nothing.

# Voting

	err := svc.SubmitVote(ctx, userID, rawValue)

Rejections are the sentinel errors ErrRoundClosed, ErrInvalidValue, and
ErrDuplicateVote; anything else is a store failure. Duplicate checking is a
persisted, toggleable policy (default on), scoped to the current round.

# Voter Registry

Each distinct user id gets a dense integer index, assigned on its first
accepted vote, stable for the lifetime of the database, never reused.
History records reference voters by index only.

# Statistics

On close the ledger is reduced to mean, population standard deviation, and
median, each rounded to two decimal places.

# Concurrency

A single RWMutex serializes all mutations; status and count reads take the
read lock, so they observe only committed transitions. State-change
subscribers get a per-connection channel:

	ch := svc.Subscribe(r.Context())

which carries the current state immediately and then one value per
transition, coalescing when the subscriber lags.

# Storage

The Store interface abstracts persistence (see the db package for the SQL
implementation). Multi-step store operations are transactional, so the
service's critical sections hold across store-level retries.
*/
package service
