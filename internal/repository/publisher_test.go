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

func setupMock(t *testing.T, dialect db.Dialect) (*db.Store, sqlmock.Sqlmock, func()) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	store := &db.Store{DB: conn, Dialect: dialect}
	cleanup := func() { conn.Close() }
	return store, mock, cleanup
}

func TestPublisherCreate_Success(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.SQLite)
	defer cleanup()
	repo := NewPublisherRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO publisher (name) VALUES (?) RETURNING publisher_id`)).
		WithArgs("Acme").
		WillReturnRows(sqlmock.NewRows([]string{"publisher_id"}).AddRow(7))

	id, err := repo.Create(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("id = %d; want 7", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPublisherCreate_PostgresPlaceholders(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.Postgres)
	defer cleanup()
	repo := NewPublisherRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO publisher (name) VALUES ($1) RETURNING publisher_id`)).
		WithArgs("Acme").
		WillReturnRows(sqlmock.NewRows([]string{"publisher_id"}).AddRow(1))

	if _, err := repo.Create(context.Background(), "Acme"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPublisherList(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.SQLite)
	defer cleanup()
	repo := NewPublisherRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT publisher_id, name FROM publisher ORDER BY publisher_id`)).
		WillReturnRows(sqlmock.NewRows([]string{"publisher_id", "name"}).
			AddRow(1, "Acme").
			AddRow(2, "Globex"))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []models.Publisher{{ID: 1, Name: "Acme"}, {ID: 2, Name: "Globex"}}
	if len(got) != len(want) {
		t.Fatalf("len = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("publisher[%d] = %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestPublisherList_Empty(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.SQLite)
	defer cleanup()
	repo := NewPublisherRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT publisher_id, name FROM publisher`)).
		WillReturnRows(sqlmock.NewRows([]string{"publisher_id", "name"}))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d publishers; want 0", len(got))
	}
}

func TestPublisherGetByID_NotFound(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.SQLite)
	defer cleanup()
	repo := NewPublisherRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT publisher_id, name FROM publisher WHERE publisher_id = ?`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"publisher_id", "name"}))

	_, err := repo.GetByID(context.Background(), 9)
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("error = %v; want ErrNotFound", err)
	}
}

func TestPublisherUpdate_EmptyStringIsWritten(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.SQLite)
	defer cleanup()
	repo := NewPublisherRepository(store)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE publisher SET name = ? WHERE publisher_id = ?`)).
		WithArgs("", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), 3, models.PublisherPatch{Name: models.Ptr("")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPublisherUpdate_NothingSupplied(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.SQLite)
	defer cleanup()
	repo := NewPublisherRepository(store)

	if err := repo.Update(context.Background(), 3, models.PublisherPatch{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected sql calls: %v", err)
	}
}

func TestPublisherUpdate_NotFound(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.SQLite)
	defer cleanup()
	repo := NewPublisherRepository(store)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE publisher SET name = ? WHERE publisher_id = ?`)).
		WithArgs("Acme", int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 404, models.PublisherPatch{Name: models.Ptr("Acme")})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("error = %v; want ErrNotFound", err)
	}
}

func TestPublisherDelete_Referenced(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.Postgres)
	defer cleanup()
	repo := NewPublisherRepository(store)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM publisher WHERE publisher_id = $1`)).
		WithArgs(int64(1)).
		WillReturnError(&pq.Error{Code: "23503"})

	err := repo.Delete(context.Background(), 1)
	if !errors.Is(err, models.ErrReferenced) {
		t.Fatalf("error = %v; want ErrReferenced", err)
	}
}

func TestPublisherDelete_Error(t *testing.T) {
	store, mock, cleanup := setupMock(t, db.SQLite)
	defer cleanup()
	repo := NewPublisherRepository(store)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM publisher WHERE publisher_id = ?`)).
		WithArgs(int64(1)).
		WillReturnError(errors.New("disk I/O error"))

	err := repo.Delete(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, models.ErrReferenced) {
		t.Errorf("plain failure mapped to ErrReferenced")
	}
}
