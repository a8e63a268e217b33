// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/danielhkuo/crowdvote/models"
)

// AppendRound appends a completed round to history and evicts the oldest
// rounds beyond max in the same transaction, so a retention trim can never
// be observed without its append.
func (s *Store) AppendRound(ctx context.Context, rec models.Round, max int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM round`).Scan(&seq); err != nil {
		return fmt.Errorf("failed to allocate round seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO round (seq, recorded_at, avg, sdev, median, vote_values, voter_indices)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, seq, rec.Timestamp, rec.Avg, rec.Sdev, rec.Median, joinFloats(rec.Votes), joinInts(rec.Users))
	if err != nil {
		return fmt.Errorf("failed to insert round: %w", err)
	}

	if max > 0 {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM round`).Scan(&count); err != nil {
			return fmt.Errorf("failed to count rounds: %w", err)
		}
		if count > max {
			_, err = tx.ExecContext(ctx, `
				DELETE FROM round WHERE seq IN (
					SELECT seq FROM round ORDER BY seq ASC LIMIT $1
				)
			`, count-max)
			if err != nil {
				return fmt.Errorf("failed to evict old rounds: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit round: %w", err)
	}

	return nil
}

// LastRounds returns the n most recent rounds in chronological order, or all
// rounds if fewer exist.
func (s *Store) LastRounds(ctx context.Context, n int) ([]models.Round, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT recorded_at, avg, sdev, median, vote_values, voter_indices
		FROM round ORDER BY seq DESC LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds: %w", err)
	}
	defer rows.Close()

	rounds, err := scanRounds(rows)
	if err != nil {
		return nil, err
	}

	// Query returned newest first; history is chronological
	for i, j := 0, len(rounds)-1; i < j; i, j = i+1, j-1 {
		rounds[i], rounds[j] = rounds[j], rounds[i]
	}

	return rounds, nil
}

// AllRounds returns the full retained history in chronological order.
func (s *Store) AllRounds(ctx context.Context) ([]models.Round, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT recorded_at, avg, sdev, median, vote_values, voter_indices
		FROM round ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds: %w", err)
	}
	defer rows.Close()

	return scanRounds(rows)
}

// CountRounds returns the number of retained rounds.
func (s *Store) CountRounds(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM round`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rounds: %w", err)
	}
	return count, nil
}

// ClearRounds deletes all round history. Irreversible.
func (s *Store) ClearRounds(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM round`); err != nil {
		return fmt.Errorf("failed to clear rounds: %w", err)
	}
	return nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanRounds(rows rowScanner) ([]models.Round, error) {
	var rounds []models.Round
	for rows.Next() {
		var rec models.Round
		var values, indices string
		if err := rows.Scan(&rec.Timestamp, &rec.Avg, &rec.Sdev, &rec.Median, &values, &indices); err != nil {
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}

		var err error
		if rec.Votes, err = splitFloats(values); err != nil {
			return nil, fmt.Errorf("corrupt vote_values column: %w", err)
		}
		if rec.Users, err = splitInts(indices); err != nil {
			return nil, fmt.Errorf("corrupt voter_indices column: %w", err)
		}

		rounds = append(rounds, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rounds: %w", err)
	}

	return rounds, nil
}

func joinFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func splitFloats(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func splitInts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	values := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
