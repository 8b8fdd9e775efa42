package repository

import (
	"context"
	"fmt"

	"github.com/atinyakov/ComicKeeper/internal/db"
	"github.com/atinyakov/ComicKeeper/internal/models"
)

// UserRepository persists user accounts.
type UserRepository struct {
	base
}

// NewUserRepository creates a UserRepository on top of store.
func NewUserRepository(store *db.Store) *UserRepository {
	return &UserRepository{base{store: store}}
}

// Create inserts a user with an already hashed password and returns its id.
// Usernames are not checked for uniqueness.
func (r *UserRepository) Create(ctx context.Context, username string, passwordHash []byte, clearance models.Clearance) (int64, error) {
	return r.insert(ctx, "create user",
		`INSERT INTO "user" (username, password_hash, clearance_level) VALUES (?, ?, ?) RETURNING user_id`,
		username, string(passwordHash), int(clearance))
}

// FindByUsername returns every user with exactly that username, oldest first.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) ([]models.User, error) {
	rows, err := r.query(ctx, `
		SELECT user_id, username, password_hash, clearance_level
		FROM "user" WHERE username = ? ORDER BY user_id`, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var (
			u    models.User
			hash string
		)
		if err := rows.Scan(&u.ID, &u.Username, &hash, &u.Clearance); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		u.PasswordHash = []byte(hash)
		users = append(users, u)
	}
	return users, rows.Err()
}
