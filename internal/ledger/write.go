package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oldpence/tally/internal/money"
)

// Direction marks an entry as money in or money out.
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// Append records an entry. Debits are checked against the system's running
// balance first: the book never goes negative, matching the amounts it
// stores.
//
// The balance check and insert run in one transaction; with the store's
// single-writer connection the balance cannot move between them.
func (s *Store) Append(ctx context.Context, dir Direction, description string, amount money.Amount) (Entry, error) {
	if dir != DirectionCredit && dir != DirectionDebit {
		return Entry{}, &Error{
			Code:    ErrCodeBadDirection,
			Message: fmt.Sprintf("direction must be credit or debit, got %q", dir),
		}
	}

	sys := amount.System()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("append entry: %w", err)
	}
	defer tx.Rollback()

	if dir == DirectionDebit {
		var balance int64
		err := tx.QueryRowContext(ctx, `
			SELECT COALESCE(SUM(CASE direction WHEN 'credit' THEN minor ELSE -minor END), 0)
			FROM entries
			WHERE system = ?
		`, sys.Name).Scan(&balance)
		if err != nil {
			return Entry{}, fmt.Errorf("append entry: %w", err)
		}
		if balance < amount.Minor() {
			have, _ := money.FromMinor(sys, balance)
			return Entry{}, &Error{
				Code:    ErrCodeInsufficientBalance,
				Message: fmt.Sprintf("debit of %s exceeds balance of %s", amount, have),
				System:  sys.Name,
			}
		}
	}

	entry := Entry{
		ID:          uuid.NewString(),
		Seq:         s.clock.Next(),
		CreatedAt:   time.Now().UTC(),
		Description: description,
		System:      sys.Name,
		Direction:   dir,
		Minor:       amount.Minor(),
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO entries (id, seq, created_at, description, system, direction, minor)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		entry.ID,
		entry.Seq,
		entry.CreatedAt.Format(time.RFC3339Nano),
		entry.Description,
		entry.System,
		string(entry.Direction),
		entry.Minor,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("append entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Entry{}, fmt.Errorf("append entry: %w", err)
	}
	return entry, nil
}
