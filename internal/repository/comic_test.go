package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/atinyakov/ComicKeeper/internal/db"
	"github.com/atinyakov/ComicKeeper/internal/models"
)

func TestComicCreate_NullableColumns(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.SQLite)
	defer cleanup()
	repo := NewComicRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO comic (image_url, description, series_id, current_price, issue_num, cover_price)`)).
		WithArgs(nil, nil, int64(1), nil, 1, 2.99).
		WillReturnRows(sqlmock.NewRows([]string{"comic_id"}).AddRow(1))

	id, err := repo.Create(context.Background(), models.NewComic{SeriesID: 1, IssueNum: 1, CoverPrice: 2.99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d; want 1", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestComicCreate_MissingSeries(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.Postgres)
	defer cleanup()
	repo := NewComicRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO comic`)).
		WillReturnError(&pq.Error{Code: "23503", Message: "insert or update on table \"comic\" violates foreign key constraint"})

	_, err := repo.Create(context.Background(), models.NewComic{SeriesID: 42, IssueNum: 1, CoverPrice: 1})
	if !errors.Is(err, models.ErrInvalidReference) {
		t.Fatalf("error = %v; want ErrInvalidReference", err)
	}
}

func TestComicList(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.SQLite)
	defer cleanup()
	repo := NewComicRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT c.comic_id, s.name, c.issue_num FROM comic c INNER JOIN series s ON s.series_id = c.series_id ORDER BY c.comic_id`)).
		WillReturnRows(sqlmock.NewRows([]string{"comic_id", "name", "issue_num"}).
			AddRow(1, "Test", 1).
			AddRow(2, "Test", 2))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d; want 2", len(got))
	}
	if got[0] != (models.ComicListing{ComicID: 1, SeriesName: "Test", IssueNum: 1}) {
		t.Errorf("first listing = %+v", got[0])
	}
}

func TestComicList_EmptyIsNotFound(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.SQLite)
	defer cleanup()
	repo := NewComicRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM comic c INNER JOIN series s`)).
		WillReturnRows(sqlmock.NewRows([]string{"comic_id", "name", "issue_num"}))

	_, err := repo.List(context.Background())
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("error = %v; want ErrNotFound", err)
	}
}

func TestComicGetByID_Nulls(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.SQLite)
	defer cleanup()
	repo := NewComicRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM comic WHERE comic_id = ?`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"comic_id", "image_url", "description", "series_id", "current_price", "issue_num", "cover_price"}).
			AddRow(5, nil, "first print", 2, nil, 12, 3.5))

	c, err := repo.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ImageURL != nil || c.CurrentPrice != nil {
		t.Errorf("NULL columns scanned as values: %+v", c)
	}
	if c.Description == nil || *c.Description != "first print" {
		t.Errorf("description = %v; want first print", c.Description)
	}
	if c.IssueNum != 12 || c.CoverPrice != 3.5 || c.SeriesID != 2 {
		t.Errorf("comic = %+v", c)
	}
}

func TestComicUpdate_ZeroValuesAreWritten(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.Postgres)
	defer cleanup()
	repo := NewComicRepository(store)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE comic SET current_price = $1, issue_num = $2 WHERE comic_id = $3`)).
		WithArgs(0.0, 0, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	patch := models.ComicPatch{CurrentPrice: models.Ptr(0.0), IssueNum: models.Ptr(0)}
	if err := repo.Update(context.Background(), 1, patch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestSeriesUpdate_AllFieldsOneStatement(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.SQLite)
	defer cleanup()
	repo := NewSeriesRepository(store)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE series SET name = ?, volume_id = ?, publisher_id = ? WHERE series_id = ?`)).
		WithArgs("Renamed", int64(2), int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	patch := models.SeriesPatch{Name: models.Ptr("Renamed"), VolumeID: models.Ptr(int64(2)), PublisherID: models.Ptr(int64(3))}
	if err := repo.Update(context.Background(), 1, patch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestSeriesCreate(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.SQLite)
	defer cleanup()
	repo := NewSeriesRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO series (name, volume_id, publisher_id) VALUES (?, ?, ?) RETURNING series_id`)).
		WithArgs("Test", int64(1), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"series_id"}).AddRow(1))

	id, err := repo.Create(context.Background(), "Test", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d; want 1", id)
	}
}

func TestVolumeRename(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.SQLite)
	defer cleanup()
	repo := NewVolumeRepository(store)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE volume SET name = ? WHERE volume_id = ?`)).
		WithArgs("Vol. 2", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Rename(context.Background(), 1, models.VolumeName(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
