// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"

	"github.com/danielhkuo/crowdvote/models"
)

// LastRounds returns the n most recent completed rounds in chronological
// order (or all of them if fewer exist).
func (s *Service) LastRounds(ctx context.Context, n int) ([]models.Round, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.LastRounds(ctx, n)
}

// AllRounds returns the full retained history in chronological order.
func (s *Service) AllRounds(ctx context.Context) ([]models.Round, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.AllRounds(ctx)
}

// RoundCount returns the number of retained rounds.
func (s *Service) RoundCount(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.CountRounds(ctx)
}

// ClearHistory deletes all round history. Irreversible.
func (s *Service) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ClearRounds(ctx)
}
