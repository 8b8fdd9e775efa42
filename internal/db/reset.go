package db

import (
	"context"
	"fmt"
)

// Reset empties every table, children first, keeping only the user rows named keepUsername
// so an administrator can still log in afterwards.
func (s *Store) Reset(ctx context.Context, keepUsername string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmts := []string{
		`DELETE FROM collection`,
		`DELETE FROM comic`,
		`DELETE FROM series`,
		`DELETE FROM volume`,
		`DELETE FROM publisher`,
	}
	for i, q := range stmts {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("reset stmt %d: %w", i, err)
		}
	}
	if _, err := tx.ExecContext(ctx, s.Rebind(`DELETE FROM "user" WHERE username <> ?`), keepUsername); err != nil {
		return fmt.Errorf("reset users: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
