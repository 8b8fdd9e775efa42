package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestRebind(t *testing.T) {
	q := `UPDATE comic SET issue_num = ?, cover_price = ? WHERE comic_id = ?`

	if got := SQLite.Rebind(q); got != q {
		t.Errorf("SQLite.Rebind = %q; want unchanged", got)
	}
	want := `UPDATE comic SET issue_num = $1, cover_price = $2 WHERE comic_id = $3`
	if got := Postgres.Rebind(q); got != want {
		t.Errorf("Postgres.Rebind = %q; want %q", got, want)
	}
}

func TestParseDialect(t *testing.T) {
	cases := map[string]Dialect{
		"":           SQLite,
		"sqlite":     SQLite,
		"SQLite3":    SQLite,
		"postgres":   Postgres,
		"postgresql": Postgres,
	}
	for in, want := range cases {
		got, err := ParseDialect(in)
		if err != nil {
			t.Errorf("ParseDialect(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDialect(%q) = %q; want %q", in, got, want)
		}
	}
	if _, err := ParseDialect("mysql"); err == nil {
		t.Error("ParseDialect(mysql) did not return error")
	}
}

func TestIsForeignKeyViolation_Postgres(t *testing.T) {
	fk := fmt.Errorf("delete: %w", &pq.Error{Code: "23503"})
	if !IsForeignKeyViolation(fk) {
		t.Error("wrapped 23503 not recognised")
	}
	unique := &pq.Error{Code: "23505"}
	if IsForeignKeyViolation(unique) {
		t.Error("23505 treated as foreign key violation")
	}
	if IsForeignKeyViolation(errors.New("boom")) {
		t.Error("plain error treated as foreign key violation")
	}
}
