// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitVoteRequest: user_id, vote_value (raw string, parsed server-side)

# Response Types

Types for JSON responses:

  - StatusResponse: status
  - VotingStatusResponse: voting_open
  - VoteCountResponse: count
  - CloseRoundResponse: status, avg, sdev, median, votes (stats are null
    when the round closed with no votes)
  - HistoryResponse: count, last_rounds
  - DuplicateCheckResponse: enabled, status
  - ErrorResponse: error, code, message

# Domain Types

Internal data structures:

  - Round: one completed voting round with statistics and the raw
    (vote value, user index) pairing
  - Vote: a single entry of the currently open round's ledger

# Constants

Rejection codes carried in ErrorResponse.Code:

	CodeRoundClosed   = "round_closed"
	CodeInvalidValue  = "invalid_value"
	CodeDuplicateVote = "duplicate_vote"
*/
package models
