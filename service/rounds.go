// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/crowdvote/models"
)

const timestampFormat = "2006-01-02 15:04:05"

// OpenRound transitions to OPEN. Valid from any state: the ledger is
// cleared first (discarding leftovers from an already-closed round), so
// opening an already-open round is an idempotent re-clear.
func (s *Service) OpenRound(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ClearVotes(ctx); err != nil {
		return err
	}
	return s.setVotingOpen(ctx, true)
}

// CloseRound transitions to CLOSED and drains the ledger. The state flips
// before the ledger is read so late votes are rejected while statistics
// are computed. With no votes it returns (nil, nil) and writes nothing;
// otherwise it appends one history record (with retention trim) and clears
// the ledger. If the append fails the service stays CLOSED with the ledger
// intact, so the close can be retried without losing votes.
func (s *Service) CloseRound(ctx context.Context) (*models.Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setVotingOpen(ctx, false); err != nil {
		return nil, err
	}

	votes, err := s.store.ListVotes(ctx)
	if err != nil {
		return nil, err
	}
	if len(votes) == 0 {
		return nil, nil
	}

	values := make([]float64, len(votes))
	users := make([]int, len(votes))
	for i, v := range votes {
		values[i] = v.Value
		users[i] = v.UserIndex
	}

	avg, sdev, median := computeStats(values)
	rec := models.Round{
		Timestamp: time.Now().Format(timestampFormat),
		Avg:       avg,
		Sdev:      sdev,
		Median:    median,
		Votes:     values,
		Users:     users,
	}

	if err := s.store.AppendRound(ctx, rec, s.maxRounds); err != nil {
		return nil, err
	}
	if err := s.store.ClearVotes(ctx); err != nil {
		return nil, fmt.Errorf("round recorded but ledger not cleared: %w", err)
	}

	return &rec, nil
}

// VotingOpen reports the current round state. Reads the cached flag, which
// reflects the latest committed transition.
func (s *Service) VotingOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.votingOpen
}

// Subscribe registers a state-change listener. The channel immediately
// carries the current state, then a value per transition. Sends coalesce to
// the latest state, so a subscriber that lags through a rapid close/open
// flap sees only the final state - the same guarantee the one-second
// polling loop this replaces gave. The subscription ends when ctx is
// cancelled; the channel is never closed.
func (s *Service) Subscribe(ctx context.Context) <-chan bool {
	ch := make(chan bool, 1)
	id := uuid.NewString()

	s.mu.Lock()
	s.subs[id] = ch
	ch <- s.votingOpen
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}()

	return ch
}

// broadcast pushes a transition to every subscriber. Callers hold s.mu, so
// the drain-then-send below cannot race another sender and all subscribers
// observe transitions in the same relative order.
func (s *Service) broadcast(open bool) {
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- open
	}
}
