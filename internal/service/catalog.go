package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/atinyakov/ComicKeeper/internal/models"
)

// PublisherRepository persists publishers.
type PublisherRepository interface {
	// Create stores a publisher and returns its id.
	Create(ctx context.Context, name string) (int64, error)
	// List returns every publisher ordered by id.
	List(ctx context.Context) ([]models.Publisher, error)
	// GetByID returns one publisher or models.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Publisher, error)
	// Update applies the non-nil patch fields.
	Update(ctx context.Context, id int64, patch models.PublisherPatch) error
	// Delete removes a publisher; models.ErrReferenced while series use it.
	Delete(ctx context.Context, id int64) error
}

// VolumeRepository persists volumes.
type VolumeRepository interface {
	// Create stores a volume under its formatted name and returns its id.
	Create(ctx context.Context, name string) (int64, error)
	// List returns every volume ordered by id.
	List(ctx context.Context) ([]models.Volume, error)
	// GetByID returns one volume or models.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Volume, error)
	// Rename replaces the stored volume name.
	Rename(ctx context.Context, id int64, name string) error
	// Delete removes a volume; models.ErrReferenced while series use it.
	Delete(ctx context.Context, id int64) error
}

// SeriesRepository persists series.
type SeriesRepository interface {
	// Create stores a series under an existing volume and publisher.
	Create(ctx context.Context, name string, volumeID, publisherID int64) (int64, error)
	// List returns every series ordered by id.
	List(ctx context.Context) ([]models.Series, error)
	// GetByID returns one series or models.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Series, error)
	// Update applies the non-nil patch fields.
	Update(ctx context.Context, id int64, patch models.SeriesPatch) error
	// Delete removes a series; models.ErrReferenced while comics use it.
	Delete(ctx context.Context, id int64) error
}

// ComicRepository persists comics.
type ComicRepository interface {
	// Create stores a comic under an existing series and returns its id.
	Create(ctx context.Context, c models.NewComic) (int64, error)
	// List returns every comic with its series name, or models.ErrNotFound when there are none.
	List(ctx context.Context) ([]models.ComicListing, error)
	// GetByID returns one comic or models.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Comic, error)
	// Update applies the non-nil patch fields.
	Update(ctx context.Context, id int64, patch models.ComicPatch) error
	// Delete removes a comic together with its collection entries.
	Delete(ctx context.Context, id int64) error
}

// CatalogService manages publishers, volumes, series and comics.
type CatalogService struct {
	gate
	publishers PublisherRepository
	volumes    VolumeRepository
	series     SeriesRepository
	comics     ComicRepository
}

// NewCatalogService wires the catalog repositories into one service.
func NewCatalogService(p PublisherRepository, v VolumeRepository, s SeriesRepository, c ComicRepository, log *zap.Logger) *CatalogService {
	return &CatalogService{
		gate:       gate{log: orNop(log)},
		publishers: p,
		volumes:    v,
		series:     s,
		comics:     c,
	}
}

func requireName(action, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%s: name is required: %w", action, models.ErrInvalidInput)
	}
	return name, nil
}

func requireVolumeNumber(action string, n int) error {
	if n < 1 {
		return fmt.Errorf("%s: volume number must be positive: %w", action, models.ErrInvalidInput)
	}
	return nil
}

func requireIssueNumber(action string, n *int) error {
	if n != nil && *n < 1 {
		return fmt.Errorf("%s: issue number must be positive: %w", action, models.ErrInvalidInput)
	}
	return nil
}

func requireNonNegative(action, field string, v *float64) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%s: %s must not be negative: %w", action, field, models.ErrInvalidInput)
	}
	return nil
}

// AddPublisher creates a publisher. Requires insert clearance.
func (c *CatalogService) AddPublisher(ctx context.Context, s models.Session, name string) (int64, error) {
	const action = "add publisher"
	if err := c.check(s, models.InsertClearance, action); err != nil {
		return 0, err
	}
	name, err := requireName(action, name)
	if err != nil {
		return 0, err
	}
	id, err := c.publishers.Create(ctx, name)
	c.audit(s, action, id, err)
	return id, err
}

// Publishers lists every publisher. Requires view clearance.
func (c *CatalogService) Publishers(ctx context.Context, s models.Session) ([]models.Publisher, error) {
	if err := c.check(s, models.ViewClearance, "list publishers"); err != nil {
		return nil, err
	}
	return c.publishers.List(ctx)
}

// Publisher returns one publisher. Requires view clearance.
func (c *CatalogService) Publisher(ctx context.Context, s models.Session, id int64) (*models.Publisher, error) {
	if err := c.check(s, models.ViewClearance, "get publisher"); err != nil {
		return nil, err
	}
	return c.publishers.GetByID(ctx, id)
}

// UpdatePublisher applies the supplied fields. Requires update clearance.
func (c *CatalogService) UpdatePublisher(ctx context.Context, s models.Session, id int64, patch models.PublisherPatch) error {
	const action = "update publisher"
	if err := c.check(s, models.UpdateClearance, action); err != nil {
		return err
	}
	if patch.Name != nil {
		name, err := requireName(action, *patch.Name)
		if err != nil {
			return err
		}
		patch.Name = &name
	}
	err := c.publishers.Update(ctx, id, patch)
	c.audit(s, action, id, err)
	return err
}

// DeletePublisher removes a publisher that no series uses. Requires delete clearance.
func (c *CatalogService) DeletePublisher(ctx context.Context, s models.Session, id int64) error {
	const action = "delete publisher"
	if err := c.check(s, models.DeleteClearance, action); err != nil {
		return err
	}
	err := c.publishers.Delete(ctx, id)
	c.audit(s, action, id, err)
	return err
}

// AddVolume creates a volume named after its number. Requires insert clearance.
func (c *CatalogService) AddVolume(ctx context.Context, s models.Session, number int) (int64, error) {
	const action = "add volume"
	if err := c.check(s, models.InsertClearance, action); err != nil {
		return 0, err
	}
	if err := requireVolumeNumber(action, number); err != nil {
		return 0, err
	}
	id, err := c.volumes.Create(ctx, models.VolumeName(number))
	c.audit(s, action, id, err)
	return id, err
}

// Volumes lists every volume. Requires view clearance.
func (c *CatalogService) Volumes(ctx context.Context, s models.Session) ([]models.Volume, error) {
	if err := c.check(s, models.ViewClearance, "list volumes"); err != nil {
		return nil, err
	}
	return c.volumes.List(ctx)
}

// Volume returns one volume. Requires view clearance.
func (c *CatalogService) Volume(ctx context.Context, s models.Session, id int64) (*models.Volume, error) {
	if err := c.check(s, models.ViewClearance, "get volume"); err != nil {
		return nil, err
	}
	return c.volumes.GetByID(ctx, id)
}

// UpdateVolume renumbers a volume. Requires update clearance.
func (c *CatalogService) UpdateVolume(ctx context.Context, s models.Session, id int64, patch models.VolumePatch) error {
	const action = "update volume"
	if err := c.check(s, models.UpdateClearance, action); err != nil {
		return err
	}
	if patch.Empty() {
		return nil
	}
	if err := requireVolumeNumber(action, *patch.Number); err != nil {
		return err
	}
	err := c.volumes.Rename(ctx, id, models.VolumeName(*patch.Number))
	c.audit(s, action, id, err)
	return err
}

// DeleteVolume removes a volume that no series uses. Requires delete clearance.
func (c *CatalogService) DeleteVolume(ctx context.Context, s models.Session, id int64) error {
	const action = "delete volume"
	if err := c.check(s, models.DeleteClearance, action); err != nil {
		return err
	}
	err := c.volumes.Delete(ctx, id)
	c.audit(s, action, id, err)
	return err
}

// AddSeries creates a series under an existing volume and publisher. Requires insert clearance.
func (c *CatalogService) AddSeries(ctx context.Context, s models.Session, name string, volumeID, publisherID int64) (int64, error) {
	const action = "add series"
	if err := c.check(s, models.InsertClearance, action); err != nil {
		return 0, err
	}
	name, err := requireName(action, name)
	if err != nil {
		return 0, err
	}
	id, err := c.series.Create(ctx, name, volumeID, publisherID)
	c.audit(s, action, id, err)
	return id, err
}

// SeriesList lists every series. Requires view clearance.
func (c *CatalogService) SeriesList(ctx context.Context, s models.Session) ([]models.Series, error) {
	if err := c.check(s, models.ViewClearance, "list series"); err != nil {
		return nil, err
	}
	return c.series.List(ctx)
}

// Series returns one series. Requires view clearance.
func (c *CatalogService) Series(ctx context.Context, s models.Session, id int64) (*models.Series, error) {
	if err := c.check(s, models.ViewClearance, "get series"); err != nil {
		return nil, err
	}
	return c.series.GetByID(ctx, id)
}

// UpdateSeries applies the supplied fields. Requires update clearance.
func (c *CatalogService) UpdateSeries(ctx context.Context, s models.Session, id int64, patch models.SeriesPatch) error {
	const action = "update series"
	if err := c.check(s, models.UpdateClearance, action); err != nil {
		return err
	}
	if patch.Name != nil {
		name, err := requireName(action, *patch.Name)
		if err != nil {
			return err
		}
		patch.Name = &name
	}
	err := c.series.Update(ctx, id, patch)
	c.audit(s, action, id, err)
	return err
}

// DeleteSeries removes a series without comics. Requires delete clearance.
func (c *CatalogService) DeleteSeries(ctx context.Context, s models.Session, id int64) error {
	const action = "delete series"
	if err := c.check(s, models.DeleteClearance, action); err != nil {
		return err
	}
	err := c.series.Delete(ctx, id)
	c.audit(s, action, id, err)
	return err
}

// AddComic creates a comic under an existing series. Requires insert clearance.
func (c *CatalogService) AddComic(ctx context.Context, s models.Session, comic models.NewComic) (int64, error) {
	const action = "add comic"
	if err := c.check(s, models.InsertClearance, action); err != nil {
		return 0, err
	}
	if err := requireIssueNumber(action, &comic.IssueNum); err != nil {
		return 0, err
	}
	if err := requireNonNegative(action, "cover price", &comic.CoverPrice); err != nil {
		return 0, err
	}
	if err := requireNonNegative(action, "current price", comic.CurrentPrice); err != nil {
		return 0, err
	}
	id, err := c.comics.Create(ctx, comic)
	c.audit(s, action, id, err)
	return id, err
}

// Comics lists every comic with its series name. An empty catalog yields
// models.ErrNotFound. Requires view clearance.
func (c *CatalogService) Comics(ctx context.Context, s models.Session) ([]models.ComicListing, error) {
	if err := c.check(s, models.ViewClearance, "list comics"); err != nil {
		return nil, err
	}
	return c.comics.List(ctx)
}

// Comic returns one comic. Requires view clearance.
func (c *CatalogService) Comic(ctx context.Context, s models.Session, id int64) (*models.Comic, error) {
	if err := c.check(s, models.ViewClearance, "get comic"); err != nil {
		return nil, err
	}
	return c.comics.GetByID(ctx, id)
}

// UpdateComic applies the supplied fields. Requires update clearance.
func (c *CatalogService) UpdateComic(ctx context.Context, s models.Session, id int64, patch models.ComicPatch) error {
	const action = "update comic"
	if err := c.check(s, models.UpdateClearance, action); err != nil {
		return err
	}
	if err := requireIssueNumber(action, patch.IssueNum); err != nil {
		return err
	}
	if err := requireNonNegative(action, "cover price", patch.CoverPrice); err != nil {
		return err
	}
	if err := requireNonNegative(action, "current price", patch.CurrentPrice); err != nil {
		return err
	}
	err := c.comics.Update(ctx, id, patch)
	c.audit(s, action, id, err)
	return err
}

// DeleteComic removes a comic and drops it from every collection. Requires delete clearance.
func (c *CatalogService) DeleteComic(ctx context.Context, s models.Session, id int64) error {
	const action = "delete comic"
	if err := c.check(s, models.DeleteClearance, action); err != nil {
		return err
	}
	err := c.comics.Delete(ctx, id)
	c.audit(s, action, id, err)
	return err
}
