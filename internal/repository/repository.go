// Package repository provides SQL persistence for the comic catalog, user
// accounts and collections. Queries are written with '?' placeholders and
// rebound for the store's dialect.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/atinyakov/ComicKeeper/internal/db"
	"github.com/atinyakov/ComicKeeper/internal/models"
)

// base holds what every repository needs: the store and its dialect.
type base struct {
	store *db.Store
}

func (b base) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return b.store.DB.ExecContext(ctx, b.store.Rebind(query), args...)
}

func (b base) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return b.store.DB.QueryContext(ctx, b.store.Rebind(query), args...)
}

func (b base) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return b.store.DB.QueryRowContext(ctx, b.store.Rebind(query), args...)
}

// insert runs an INSERT ... RETURNING statement and scans the generated key.
func (b base) insert(ctx context.Context, op, query string, args ...any) (int64, error) {
	var id int64
	if err := b.queryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, writeErr(op, err)
	}
	return id, nil
}

// column is one "column = value" pair of an UPDATE.
type column struct {
	name  string
	value any
}

// update writes all given columns of one row in a single statement.
// Returns models.ErrNotFound when no row has the id.
func (b base) update(ctx context.Context, op, table, key string, id int64, cols []column) error {
	if len(cols) == 0 {
		return nil
	}
	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for _, c := range cols {
		sets = append(sets, c.name+" = ?")
		args = append(args, c.value)
	}
	args = append(args, id)

	q := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = ?`, table, strings.Join(sets, ", "), key)
	res, err := b.exec(ctx, q, args...)
	if err != nil {
		return writeErr(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return nil
}

// deleteByID removes one row by primary key. A missing id is not an error.
func (b base) deleteByID(ctx context.Context, op, table, key string, id int64) error {
	_, err := b.exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, table, key), id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return fmt.Errorf("%s: %w", op, models.ErrReferenced)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// writeErr maps foreign key failures of inserts and updates onto ErrInvalidReference.
func writeErr(op string, err error) error {
	if db.IsForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w", op, models.ErrInvalidReference)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// readErr maps sql.ErrNoRows onto ErrNotFound.
func readErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
