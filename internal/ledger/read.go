package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/oldpence/tally/internal/money"
)

// Entry is one recorded credit or debit.
type Entry struct {
	ID          string    `json:"id"`
	Seq         int64     `json:"seq"`
	CreatedAt   time.Time `json:"created_at"`
	Description string    `json:"description"`
	System      string    `json:"system"`
	Direction   Direction `json:"direction"`
	Minor       int64     `json:"minor"`
}

// Amount reconstitutes the entry's amount in its system.
func (e Entry) Amount(sys *money.System) (money.Amount, error) {
	if sys.Name != e.System {
		return money.Amount{}, fmt.Errorf("entry is in %s, not %s", e.System, sys.Name)
	}
	return money.FromMinor(sys, e.Minor)
}

// Balance returns the running balance for a system: credits minus debits.
// An empty book has a zero balance.
func (s *Store) Balance(ctx context.Context, sys *money.System) (money.Amount, error) {
	var total int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(CASE direction WHEN 'credit' THEN minor ELSE -minor END), 0)
		FROM entries
		WHERE system = ?
	`, sys.Name).Scan(&total)
	if err != nil {
		return money.Amount{}, fmt.Errorf("query balance: %w", err)
	}
	return money.FromMinor(sys, total)
}

// List returns a system's entries, newest first. A non-positive limit
// returns every entry.
//
// Returns an empty slice (not nil) if the book has no entries.
func (s *Store) List(ctx context.Context, system string, limit int) ([]Entry, error) {
	query := `
		SELECT id, seq, created_at, description, system, direction, minor
		FROM entries
		WHERE system = ?
		ORDER BY seq DESC
	`
	args := []any{system}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var created string
		if err := rows.Scan(&e.ID, &e.Seq, &created, &e.Description, &e.System, &e.Direction, &e.Minor); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse entry timestamp: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}
