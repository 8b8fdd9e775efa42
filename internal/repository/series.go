package repository

import (
	"context"
	"fmt"

	"github.com/atinyakov/ComicKeeper/internal/db"
	"github.com/atinyakov/ComicKeeper/internal/models"
)

// SeriesRepository persists series.
type SeriesRepository struct {
	base
}

// NewSeriesRepository creates a SeriesRepository on top of store.
func NewSeriesRepository(store *db.Store) *SeriesRepository {
	return &SeriesRepository{base{store: store}}
}

// Create inserts a series. Missing volume or publisher rows yield models.ErrInvalidReference.
func (r *SeriesRepository) Create(ctx context.Context, name string, volumeID, publisherID int64) (int64, error) {
	return r.insert(ctx, "create series",
		`INSERT INTO series (name, volume_id, publisher_id) VALUES (?, ?, ?) RETURNING series_id`,
		name, volumeID, publisherID)
}

// List returns every series ordered by id.
func (r *SeriesRepository) List(ctx context.Context) ([]models.Series, error) {
	rows, err := r.query(ctx, `SELECT series_id, name, volume_id, publisher_id FROM series ORDER BY series_id`)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	defer rows.Close()

	var list []models.Series
	for rows.Next() {
		var s models.Series
		if err := rows.Scan(&s.ID, &s.Name, &s.VolumeID, &s.PublisherID); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByID returns one series or models.ErrNotFound.
func (r *SeriesRepository) GetByID(ctx context.Context, id int64) (*models.Series, error) {
	var s models.Series
	err := r.queryRow(ctx, `SELECT series_id, name, volume_id, publisher_id FROM series WHERE series_id = ?`, id).
		Scan(&s.ID, &s.Name, &s.VolumeID, &s.PublisherID)
	if err != nil {
		return nil, readErr("get series", err)
	}
	return &s, nil
}

// Update writes the supplied fields of a series.
func (r *SeriesRepository) Update(ctx context.Context, id int64, patch models.SeriesPatch) error {
	var cols []column
	if patch.Name != nil {
		cols = append(cols, column{"name", *patch.Name})
	}
	if patch.VolumeID != nil {
		cols = append(cols, column{"volume_id", *patch.VolumeID})
	}
	if patch.PublisherID != nil {
		cols = append(cols, column{"publisher_id", *patch.PublisherID})
	}
	return r.update(ctx, "update series", "series", "series_id", id, cols)
}

// Delete removes a series. Fails with models.ErrReferenced while comics belong to it.
func (r *SeriesRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "delete series", "series", "series_id", id)
}
