package models

// A nil field in a patch means "leave unchanged". Any non-nil value is written,
// including empty strings and zero numbers.

// PublisherPatch lists the publisher fields to change.
type PublisherPatch struct {
	Name *string
}

// VolumePatch lists the volume fields to change. Number is formatted with VolumeName.
type VolumePatch struct {
	Number *int
}

// SeriesPatch lists the series fields to change.
type SeriesPatch struct {
	Name        *string
	VolumeID    *int64
	PublisherID *int64
}

// ComicPatch lists the comic fields to change.
type ComicPatch struct {
	ImageURL     *string
	Description  *string
	SeriesID     *int64
	CurrentPrice *float64
	IssueNum     *int
	CoverPrice   *float64
}

// Empty reports whether the patch changes nothing.
func (p PublisherPatch) Empty() bool { return p.Name == nil }

// Empty reports whether the patch changes nothing.
func (p VolumePatch) Empty() bool { return p.Number == nil }

// Empty reports whether the patch changes nothing.
func (p SeriesPatch) Empty() bool {
	return p.Name == nil && p.VolumeID == nil && p.PublisherID == nil
}

// Empty reports whether the patch changes nothing.
func (p ComicPatch) Empty() bool {
	return p.ImageURL == nil && p.Description == nil && p.SeriesID == nil &&
		p.CurrentPrice == nil && p.IssueNum == nil && p.CoverPrice == nil
}

// Ptr returns a pointer to v. Handy for building patches.
func Ptr[T any](v T) *T { return &v }
