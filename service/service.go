// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/danielhkuo/crowdvote/models"
)

// Persisted setting keys. Upserted with their defaults on startup so both
// keys always exist after initialization.
const (
	settingVotingOpen    = "voting_open"
	settingCheckRepeated = "check_repeated_votes"
)

// Vote rejections. Policy outcomes, not failures: handlers map these to 4xx
// responses while anything else from Submit is a store error (5xx).
var (
	ErrRoundClosed   = errors.New("voting round is closed")
	ErrInvalidValue  = errors.New("invalid vote value")
	ErrDuplicateVote = errors.New("user already voted in this round")
)

// Store is the persistence contract the service runs on. Implementations
// must make multi-step methods (EnsureVoter, AppendRound) atomic.
type Store interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error

	// EnsureVoter returns the stable dense index for userID, allocating
	// the next sequential one on first sight.
	EnsureVoter(ctx context.Context, userID string) (int, error)

	InsertVote(ctx context.Context, userID string, value float64) error
	HasVote(ctx context.Context, userID string) (bool, error)
	CountVotes(ctx context.Context) (int, error)
	ListVotes(ctx context.Context) ([]models.Vote, error)
	ClearVotes(ctx context.Context) error

	// AppendRound adds rec to history and evicts the oldest rounds beyond
	// max atomically.
	AppendRound(ctx context.Context, rec models.Round, max int) error
	LastRounds(ctx context.Context, n int) ([]models.Round, error)
	AllRounds(ctx context.Context) ([]models.Round, error)
	CountRounds(ctx context.Context) (int, error)
	ClearRounds(ctx context.Context) error
}

// Service owns the round state machine and the vote ledger. One mutex
// serializes every mutation (open, close, submit, toggle, clear); the
// open/duplicate-check flags are cached under it so status reads never see
// half-committed transitions.
type Service struct {
	store     Store
	maxRounds int

	mu         sync.RWMutex
	votingOpen bool
	checkDupes bool
	subs       map[string]chan bool
}

// New loads persisted settings (writing defaults on first run: closed,
// duplicate checking on) and returns a ready Service.
func New(store Store, maxRounds int) (*Service, error) {
	s := &Service{
		store:     store,
		maxRounds: maxRounds,
		subs:      make(map[string]chan bool),
	}

	ctx := context.Background()

	open, err := s.loadBoolSetting(ctx, settingVotingOpen, false)
	if err != nil {
		return nil, err
	}
	s.votingOpen = open

	check, err := s.loadBoolSetting(ctx, settingCheckRepeated, true)
	if err != nil {
		return nil, err
	}
	s.checkDupes = check

	return s, nil
}

func (s *Service) loadBoolSetting(ctx context.Context, key string, def bool) (bool, error) {
	raw, ok, err := s.store.GetSetting(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok {
		if err := s.store.SetSetting(ctx, key, strconv.FormatBool(def)); err != nil {
			return false, fmt.Errorf("failed to initialize %s: %w", key, err)
		}
		return def, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("corrupt %s setting %q: %w", key, raw, err)
	}
	return val, nil
}

// setVotingOpen persists and caches a state transition, notifying
// subscribers. No-op (and no broadcast) when the state is unchanged.
// Callers must hold s.mu.
func (s *Service) setVotingOpen(ctx context.Context, open bool) error {
	if s.votingOpen == open {
		return nil
	}
	if err := s.store.SetSetting(ctx, settingVotingOpen, strconv.FormatBool(open)); err != nil {
		return fmt.Errorf("failed to persist voting state: %w", err)
	}
	s.votingOpen = open
	s.broadcast(open)
	return nil
}
