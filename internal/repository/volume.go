package repository

import (
	"context"
	"fmt"

	"github.com/atinyakov/ComicKeeper/internal/db"
	"github.com/atinyakov/ComicKeeper/internal/models"
)

// VolumeRepository persists volumes.
type VolumeRepository struct {
	base
}

// NewVolumeRepository creates a VolumeRepository on top of store.
func NewVolumeRepository(store *db.Store) *VolumeRepository {
	return &VolumeRepository{base{store: store}}
}

// Create inserts a volume with an already formatted name and returns its id.
func (r *VolumeRepository) Create(ctx context.Context, name string) (int64, error) {
	return r.insert(ctx, "create volume",
		`INSERT INTO volume (name) VALUES (?) RETURNING volume_id`, name)
}

// List returns every volume ordered by id.
func (r *VolumeRepository) List(ctx context.Context) ([]models.Volume, error) {
	rows, err := r.query(ctx, `SELECT volume_id, name FROM volume ORDER BY volume_id`)
	if err != nil {
		return nil, fmt.Errorf("list volumes: %w", err)
	}
	defer rows.Close()

	var volumes []models.Volume
	for rows.Next() {
		var v models.Volume
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		volumes = append(volumes, v)
	}
	return volumes, rows.Err()
}

// GetByID returns one volume or models.ErrNotFound.
func (r *VolumeRepository) GetByID(ctx context.Context, id int64) (*models.Volume, error) {
	var v models.Volume
	err := r.queryRow(ctx, `SELECT volume_id, name FROM volume WHERE volume_id = ?`, id).
		Scan(&v.ID, &v.Name)
	if err != nil {
		return nil, readErr("get volume", err)
	}
	return &v, nil
}

// Rename sets the stored name of a volume.
func (r *VolumeRepository) Rename(ctx context.Context, id int64, name string) error {
	return r.update(ctx, "update volume", "volume", "volume_id", id, []column{{"name", name}})
}

// Delete removes a volume. Fails with models.ErrReferenced while series use it.
func (r *VolumeRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "delete volume", "volume", "volume_id", id)
}
