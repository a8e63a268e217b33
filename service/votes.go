// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"strconv"
)

// SubmitVote validates and records one vote for the open round.
//
// Rejection order: ErrRoundClosed when no round is open, ErrInvalidValue
// when rawValue does not parse as a float (no range check - range policy is
// a UI concern), ErrDuplicateVote when checking is enabled and userID
// already voted this round. The duplicate check and the insert run under
// the service mutex, so the check-then-act window is closed in-process.
func (s *Service) SubmitVote(ctx context.Context, userID, rawValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.votingOpen {
		return ErrRoundClosed
	}

	value, err := strconv.ParseFloat(rawValue, 64)
	if err != nil {
		return ErrInvalidValue
	}

	if s.checkDupes {
		voted, err := s.store.HasVote(ctx, userID)
		if err != nil {
			return err
		}
		if voted {
			return ErrDuplicateVote
		}
	}

	// Resolve the stable dense index before recording, registering the
	// voter on their first ever vote.
	if _, err := s.store.EnsureVoter(ctx, userID); err != nil {
		return err
	}

	return s.store.InsertVote(ctx, userID, value)
}

// VoteCount returns the number of votes recorded in the current round.
func (s *Service) VoteCount(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.CountVotes(ctx)
}

// DuplicateCheck reports whether repeated votes per user are rejected.
func (s *Service) DuplicateCheck() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checkDupes
}

// ToggleDuplicateCheck flips the persisted duplicate-vote flag and returns
// the new value. Affects only subsequent submissions.
func (s *Service) ToggleDuplicateCheck(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := !s.checkDupes
	if err := s.store.SetSetting(ctx, settingCheckRepeated, strconv.FormatBool(next)); err != nil {
		return s.checkDupes, err
	}
	s.checkDupes = next
	return next, nil
}
