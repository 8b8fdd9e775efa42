// Package models defines the core data structures for the comic catalog,
// user accounts and per-user collections.
package models

import "fmt"

// Publisher is a company that publishes series.
type Publisher struct {
	// ID is the surrogate key of the publisher row.
	ID int64 `json:"id"`
	// Name is the publisher's display name. Never empty.
	Name string `json:"name"`
}

// Volume groups a run of a series, stored with a display name such as "Vol. 2".
type Volume struct {
	// ID is the surrogate key of the volume row.
	ID int64 `json:"id"`
	// Name is the formatted volume label, see VolumeName.
	Name string `json:"name"`
}

// Series is a named comic title that belongs to one volume and one publisher.
type Series struct {
	// ID is the surrogate key of the series row.
	ID int64 `json:"id"`
	// Name is the title of the series.
	Name string `json:"name"`
	// VolumeID references the volume the series belongs to.
	VolumeID int64 `json:"volume_id"`
	// PublisherID references the publisher of the series.
	PublisherID int64 `json:"publisher_id"`
}

// Comic is a single issue of a series. Fields are ordered as the comic table declares them.
type Comic struct {
	// ID is the surrogate key of the comic row.
	ID int64 `json:"id"`
	// ImageURL optionally points at a cover image.
	ImageURL *string `json:"image_url,omitempty"`
	// Description is an optional free-form note.
	Description *string `json:"description,omitempty"`
	// SeriesID references the series the issue belongs to.
	SeriesID int64 `json:"series_id"`
	// CurrentPrice is the optional current market price.
	CurrentPrice *float64 `json:"current_price,omitempty"`
	// IssueNum is the issue number within the series.
	IssueNum int `json:"issue_num"`
	// CoverPrice is the printed cover price.
	CoverPrice float64 `json:"cover_price"`
}

// NewComic carries the fields accepted when a comic is created.
type NewComic struct {
	SeriesID     int64
	IssueNum     int
	CoverPrice   float64
	ImageURL     *string
	Description  *string
	CurrentPrice *float64
}

// ComicListing is one row of the catalog-wide comic listing: the comic joined with its series name.
type ComicListing struct {
	ComicID    int64  `json:"comic_id"`
	SeriesName string `json:"series_name"`
	IssueNum   int    `json:"issue_num"`
}

// User represents an application account.
type User struct {
	// ID is the surrogate key of the user row.
	ID int64
	// Username is the login name. Not guaranteed to be unique.
	Username string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash []byte
	// Clearance is the authorization tier of the account.
	Clearance Clearance
}

// CollectionEntry links one user to one comic they track.
type CollectionEntry struct {
	ID      int64 `json:"id"`
	UserID  int64 `json:"user_id"`
	ComicID int64 `json:"comic_id"`
}

// CollectionItem is one comic of a user's collection as shown to that user.
type CollectionItem struct {
	// EntryID identifies the collection row, used to remove the item again.
	EntryID    int64  `json:"entry_id"`
	ComicID    int64  `json:"comic_id"`
	SeriesName string `json:"series_name"`
	IssueNum   int    `json:"issue_num"`
}

// VolumeName formats a volume number the way volumes are stored.
func VolumeName(number int) string {
	return fmt.Sprintf("Vol. %d", number)
}
