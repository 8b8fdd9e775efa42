// Package main fills a comic store with a small demo catalog: an administrator,
// two publishers, volumes, series and a handful of issues collected by the admin.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/atinyakov/ComicKeeper/internal/db"
	"github.com/atinyakov/ComicKeeper/internal/logger"
	"github.com/atinyakov/ComicKeeper/internal/models"
	"github.com/atinyakov/ComicKeeper/internal/repository"
	"github.com/atinyakov/ComicKeeper/internal/service"
)

type sampleSeries struct {
	name      string
	publisher string
	volume    int
	issues    []float64 // cover price per issue, issue numbers start at 1
}

var samples = []sampleSeries{
	{name: "Saga", publisher: "Image", volume: 1, issues: []float64{2.99, 2.99, 2.99}},
	{name: "Sandman", publisher: "Vertigo", volume: 1, issues: []float64{1.50, 1.50}},
	{name: "Sandman", publisher: "Vertigo", volume: 2, issues: []float64{3.99}},
}

func main() {
	driver := flag.String("driver", "sqlite", "database driver: sqlite | postgres")
	file := flag.String("d", "comicdb.db", "sqlite database file")
	dsn := flag.String("dsn", "", "postgres connection string")
	login := flag.String("login", "admin", "administrator username")
	password := flag.String("password", "admin", "administrator password")
	flag.Parse()

	l := logger.New()
	if err := l.Init("info", ""); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	log := l.Log
	defer func() { _ = log.Sync() }()

	dialect, err := db.ParseDialect(*driver)
	if err != nil {
		log.Fatal("bad driver", zap.Error(err))
	}
	target := *file
	if dialect == db.Postgres {
		target = *dsn
	}

	ctx := context.Background()
	store, err := db.Open(ctx, dialect, target)
	if err != nil {
		log.Fatal("cannot open store", zap.Error(err))
	}
	defer store.Close()

	n, err := seed(ctx, store, *login, *password, log)
	if err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	fmt.Printf("Seeded %d comics into %s\n", n, target)
}

// seed creates the schema, the administrator and the sample catalog and
// returns the number of comics added.
func seed(ctx context.Context, store *db.Store, login, password string, log *zap.Logger) (int, error) {
	if err := store.Init(ctx); err != nil {
		return 0, err
	}

	auth := service.NewAuthService(repository.NewUserRepository(store), log)
	if _, err := auth.EnsureAdmin(ctx, login, password); err != nil {
		return 0, err
	}
	admin, err := auth.Login(ctx, login, password)
	if err != nil {
		return 0, fmt.Errorf("log in as %s: %w", login, err)
	}

	catalog := service.NewCatalogService(
		repository.NewPublisherRepository(store),
		repository.NewVolumeRepository(store),
		repository.NewSeriesRepository(store),
		repository.NewComicRepository(store),
		log,
	)
	collection := service.NewCollectionService(repository.NewCollectionRepository(store), log)

	publishers := map[string]int64{}
	volumes := map[int]int64{}
	count := 0
	for _, smp := range samples {
		pid, ok := publishers[smp.publisher]
		if !ok {
			if pid, err = catalog.AddPublisher(ctx, admin, smp.publisher); err != nil {
				return count, err
			}
			publishers[smp.publisher] = pid
		}
		vid, ok := volumes[smp.volume]
		if !ok {
			if vid, err = catalog.AddVolume(ctx, admin, smp.volume); err != nil {
				return count, err
			}
			volumes[smp.volume] = vid
		}
		sid, err := catalog.AddSeries(ctx, admin, smp.name, vid, pid)
		if err != nil {
			return count, err
		}
		for i, price := range smp.issues {
			cid, err := catalog.AddComic(ctx, admin, models.NewComic{SeriesID: sid, IssueNum: i + 1, CoverPrice: price})
			if err != nil {
				return count, err
			}
			count++
			if i == 0 {
				if _, err := collection.Add(ctx, admin, cid); err != nil {
					return count, err
				}
			}
		}
	}
	return count, nil
}
