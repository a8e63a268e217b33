// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/crowdvote/models"
)

// Store implements service.Store on top of database/sql. All statements use
// $N placeholders in ascending order, which both lib/pq and modernc sqlite
// bind positionally.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetSetting returns the value for key, and whether the key exists.
func (s *Store) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM setting WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, true, nil
}

// SetSetting upserts a key/value pair.
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO setting (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

// EnsureVoter returns the dense index for userID, allocating the next
// sequential index (= current voter count) on first sight. Lookup and
// insert run in one transaction so two racing first votes from the same
// id cannot split into two indices.
func (s *Store) EnsureVoter(ctx context.Context, userID string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var idx int
	err = tx.QueryRowContext(ctx, `SELECT idx FROM voter WHERE id = $1`, userID).Scan(&idx)
	if err == nil {
		return idx, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up voter: %w", err)
	}

	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM voter`).Scan(&idx); err != nil {
		return 0, fmt.Errorf("failed to count voters: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO voter (id, idx) VALUES ($1, $2)`, userID, idx); err != nil {
		return 0, fmt.Errorf("failed to insert voter: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit voter: %w", err)
	}

	return idx, nil
}

// InsertVote appends a vote to the current-round ledger. The sequence number
// is assigned in the same statement so ledger order matches arrival order.
func (s *Store) InsertVote(ctx context.Context, userID string, value float64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vote (seq, voter_id, value)
		SELECT COALESCE(MAX(seq), 0) + 1, $1, $2 FROM vote
	`, userID, value)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

// HasVote reports whether userID already has a vote in the current round.
func (s *Store) HasVote(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM vote WHERE voter_id = $1)
	`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return exists, nil
}

// CountVotes returns the number of votes in the current-round ledger.
func (s *Store) CountVotes(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vote`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}

// ListVotes returns the ledger as (value, user index) pairs in arrival order.
func (s *Store) ListVotes(ctx context.Context) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.value, u.idx
		FROM vote v
		JOIN voter u ON u.id = v.voter_id
		ORDER BY v.seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	var votes []models.Vote
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.Value, &v.UserIndex); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read votes: %w", err)
	}

	return votes, nil
}

// ClearVotes empties the current-round ledger.
func (s *Store) ClearVotes(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM vote`); err != nil {
		return fmt.Errorf("failed to clear votes: %w", err)
	}
	return nil
}
