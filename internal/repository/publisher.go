package repository

import (
	"context"
	"fmt"

	"github.com/atinyakov/ComicKeeper/internal/db"
	"github.com/atinyakov/ComicKeeper/internal/models"
)

// PublisherRepository persists publishers.
type PublisherRepository struct {
	base
}

// NewPublisherRepository creates a PublisherRepository on top of store.
func NewPublisherRepository(store *db.Store) *PublisherRepository {
	return &PublisherRepository{base{store: store}}
}

// Create inserts a publisher and returns its generated id.
func (r *PublisherRepository) Create(ctx context.Context, name string) (int64, error) {
	return r.insert(ctx, "create publisher",
		`INSERT INTO publisher (name) VALUES (?) RETURNING publisher_id`, name)
}

// List returns every publisher ordered by id.
func (r *PublisherRepository) List(ctx context.Context) ([]models.Publisher, error) {
	rows, err := r.query(ctx, `SELECT publisher_id, name FROM publisher ORDER BY publisher_id`)
	if err != nil {
		return nil, fmt.Errorf("list publishers: %w", err)
	}
	defer rows.Close()

	var publishers []models.Publisher
	for rows.Next() {
		var p models.Publisher
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		publishers = append(publishers, p)
	}
	return publishers, rows.Err()
}

// GetByID returns one publisher or models.ErrNotFound.
func (r *PublisherRepository) GetByID(ctx context.Context, id int64) (*models.Publisher, error) {
	var p models.Publisher
	err := r.queryRow(ctx, `SELECT publisher_id, name FROM publisher WHERE publisher_id = ?`, id).
		Scan(&p.ID, &p.Name)
	if err != nil {
		return nil, readErr("get publisher", err)
	}
	return &p, nil
}

// Update writes the supplied fields of a publisher.
func (r *PublisherRepository) Update(ctx context.Context, id int64, patch models.PublisherPatch) error {
	var cols []column
	if patch.Name != nil {
		cols = append(cols, column{"name", *patch.Name})
	}
	return r.update(ctx, "update publisher", "publisher", "publisher_id", id, cols)
}

// Delete removes a publisher. Fails with models.ErrReferenced while series use it.
func (r *PublisherRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "delete publisher", "publisher", "publisher_id", id)
}
