package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atinyakov/ComicKeeper/internal/db"
	"github.com/atinyakov/ComicKeeper/internal/models"
)

// ComicRepository persists comics.
type ComicRepository struct {
	base
}

// NewComicRepository creates a ComicRepository on top of store.
func NewComicRepository(store *db.Store) *ComicRepository {
	return &ComicRepository{base{store: store}}
}

// Create inserts a comic. A missing series yields models.ErrInvalidReference.
func (r *ComicRepository) Create(ctx context.Context, c models.NewComic) (int64, error) {
	return r.insert(ctx, "create comic", `
		INSERT INTO comic (image_url, description, series_id, current_price, issue_num, cover_price)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING comic_id`,
		c.ImageURL, c.Description, c.SeriesID, c.CurrentPrice, c.IssueNum, c.CoverPrice)
}

// List returns every comic joined with its series name, ordered by comic id.
// An empty catalog yields models.ErrNotFound rather than an empty slice.
func (r *ComicRepository) List(ctx context.Context) ([]models.ComicListing, error) {
	rows, err := r.query(ctx, `
		SELECT c.comic_id, s.name, c.issue_num
		FROM comic c
		INNER JOIN series s ON s.series_id = c.series_id
		ORDER BY c.comic_id`)
	if err != nil {
		return nil, fmt.Errorf("list comics: %w", err)
	}
	defer rows.Close()

	var comics []models.ComicListing
	for rows.Next() {
		var c models.ComicListing
		if err := rows.Scan(&c.ComicID, &c.SeriesName, &c.IssueNum); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		comics = append(comics, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comics: %w", err)
	}
	if len(comics) == 0 {
		return nil, fmt.Errorf("list comics: %w", models.ErrNotFound)
	}
	return comics, nil
}

// GetByID returns one comic with all its columns or models.ErrNotFound.
func (r *ComicRepository) GetByID(ctx context.Context, id int64) (*models.Comic, error) {
	var (
		c            models.Comic
		imageURL     sql.NullString
		description  sql.NullString
		currentPrice sql.NullFloat64
	)
	err := r.queryRow(ctx, `
		SELECT comic_id, image_url, description, series_id, current_price, issue_num, cover_price
		FROM comic WHERE comic_id = ?`, id).
		Scan(&c.ID, &imageURL, &description, &c.SeriesID, &currentPrice, &c.IssueNum, &c.CoverPrice)
	if err != nil {
		return nil, readErr("get comic", err)
	}
	if imageURL.Valid {
		c.ImageURL = &imageURL.String
	}
	if description.Valid {
		c.Description = &description.String
	}
	if currentPrice.Valid {
		c.CurrentPrice = &currentPrice.Float64
	}
	return &c, nil
}

// Update writes the supplied fields of a comic.
func (r *ComicRepository) Update(ctx context.Context, id int64, patch models.ComicPatch) error {
	var cols []column
	if patch.ImageURL != nil {
		cols = append(cols, column{"image_url", *patch.ImageURL})
	}
	if patch.Description != nil {
		cols = append(cols, column{"description", *patch.Description})
	}
	if patch.SeriesID != nil {
		cols = append(cols, column{"series_id", *patch.SeriesID})
	}
	if patch.CurrentPrice != nil {
		cols = append(cols, column{"current_price", *patch.CurrentPrice})
	}
	if patch.IssueNum != nil {
		cols = append(cols, column{"issue_num", *patch.IssueNum})
	}
	if patch.CoverPrice != nil {
		cols = append(cols, column{"cover_price", *patch.CoverPrice})
	}
	return r.update(ctx, "update comic", "comic", "comic_id", id, cols)
}

// Delete removes a comic together with the collection entries that track it.
func (r *ComicRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "delete comic", "comic", "comic_id", id)
}
