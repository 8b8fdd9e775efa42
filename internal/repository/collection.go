package repository

import (
	"context"
	"fmt"

	"github.com/atinyakov/ComicKeeper/internal/db"
	"github.com/atinyakov/ComicKeeper/internal/models"
)

// CollectionRepository persists the per-user comic collections.
type CollectionRepository struct {
	base
}

// NewCollectionRepository creates a CollectionRepository on top of store.
func NewCollectionRepository(store *db.Store) *CollectionRepository {
	return &CollectionRepository{base{store: store}}
}

// Add links a comic to a user. The same comic may be added more than once.
func (r *CollectionRepository) Add(ctx context.Context, userID, comicID int64) (int64, error) {
	return r.insert(ctx, "add to collection",
		`INSERT INTO collection (user_id, comic_id) VALUES (?, ?) RETURNING collection_id`,
		userID, comicID)
}

// ListByUser returns the user's collection in insertion order.
func (r *CollectionRepository) ListByUser(ctx context.Context, userID int64) ([]models.CollectionItem, error) {
	rows, err := r.query(ctx, `
		SELECT co.collection_id, c.comic_id, s.name, c.issue_num
		FROM collection co
		INNER JOIN comic c ON c.comic_id = co.comic_id
		INNER JOIN series s ON s.series_id = c.series_id
		WHERE co.user_id = ?
		ORDER BY co.collection_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list collection: %w", err)
	}
	defer rows.Close()

	var items []models.CollectionItem
	for rows.Next() {
		var it models.CollectionItem
		if err := rows.Scan(&it.EntryID, &it.ComicID, &it.SeriesName, &it.IssueNum); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Remove deletes one of the user's collection entries. Entries of other users
// and unknown ids are left alone.
func (r *CollectionRepository) Remove(ctx context.Context, userID, entryID int64) error {
	_, err := r.exec(ctx, `DELETE FROM collection WHERE collection_id = ? AND user_id = ?`, entryID, userID)
	if err != nil {
		return fmt.Errorf("remove from collection: %w", err)
	}
	return nil
}
