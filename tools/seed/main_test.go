package main

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/atinyakov/ComicKeeper/internal/db"
	"github.com/atinyakov/ComicKeeper/internal/repository"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store, err := db.OpenSQLite(ctx, filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer store.Close()

	n, err := seed(ctx, store, "admin", "admin", zap.NewNop())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 6 {
		t.Errorf("seeded %d comics; want 6", n)
	}

	comics, err := repository.NewComicRepository(store).List(ctx)
	if err != nil {
		t.Fatalf("list comics: %v", err)
	}
	if len(comics) != 6 {
		t.Errorf("store holds %d comics; want 6", len(comics))
	}
	if comics[0].SeriesName != "Saga" || comics[0].IssueNum != 1 {
		t.Errorf("first comic = %+v; want Saga #1", comics[0])
	}

	publishers, err := repository.NewPublisherRepository(store).List(ctx)
	if err != nil {
		t.Fatalf("list publishers: %v", err)
	}
	if len(publishers) != 2 {
		t.Errorf("store holds %d publishers; want 2", len(publishers))
	}

	volumes, err := repository.NewVolumeRepository(store).List(ctx)
	if err != nil {
		t.Fatalf("list volumes: %v", err)
	}
	if len(volumes) != 2 {
		t.Errorf("store holds %d volumes; want 2", len(volumes))
	}

	users, err := repository.NewUserRepository(store).FindByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("find admin: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("found %d admins; want 1", len(users))
	}
	items, err := repository.NewCollectionRepository(store).ListByUser(ctx, users[0].ID)
	if err != nil {
		t.Fatalf("list collection: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("admin collection holds %d comics; want 3", len(items))
	}
}
