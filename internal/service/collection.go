package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/atinyakov/ComicKeeper/internal/models"
)

// CollectionRepository persists per-user collection entries.
type CollectionRepository interface {
	// Add links a comic to a user and returns the entry id.
	Add(ctx context.Context, userID, comicID int64) (int64, error)
	// ListByUser returns the user's entries in insertion order.
	ListByUser(ctx context.Context, userID int64) ([]models.CollectionItem, error)
	// Remove deletes one of the user's entries; other users' entries are left alone.
	Remove(ctx context.Context, userID, entryID int64) error
}

// CollectionService manages the comics the logged-in user tracks.
// Every operation is scoped to the session's own user.
type CollectionService struct {
	gate
	repo CollectionRepository
}

// NewCollectionService constructs a CollectionService using the provided repository.
func NewCollectionService(repo CollectionRepository, log *zap.Logger) *CollectionService {
	return &CollectionService{gate: gate{log: orNop(log)}, repo: repo}
}

// Add puts a comic into the session user's collection. Adding the same comic
// twice creates two entries. Requires insert clearance.
func (c *CollectionService) Add(ctx context.Context, s models.Session, comicID int64) (int64, error) {
	const action = "add to collection"
	if err := c.check(s, models.InsertClearance, action); err != nil {
		return 0, err
	}
	id, err := c.repo.Add(ctx, s.UserID, comicID)
	c.audit(s, action, id, err)
	return id, err
}

// List returns the session user's collection in insertion order. Requires view clearance.
func (c *CollectionService) List(ctx context.Context, s models.Session) ([]models.CollectionItem, error) {
	if err := c.check(s, models.ViewClearance, "list collection"); err != nil {
		return nil, err
	}
	return c.repo.ListByUser(ctx, s.UserID)
}

// Remove deletes one entry of the session user's collection. Unknown entries
// and entries of other users are left untouched. Requires delete clearance.
func (c *CollectionService) Remove(ctx context.Context, s models.Session, entryID int64) error {
	const action = "remove from collection"
	if err := c.check(s, models.DeleteClearance, action); err != nil {
		return err
	}
	err := c.repo.Remove(ctx, s.UserID, entryID)
	c.audit(s, action, entryID, err)
	return err
}
