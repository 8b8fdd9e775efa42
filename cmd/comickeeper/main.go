// Package main wires configuration, logging, the store, repositories and
// services together and runs the selected command: the interactive shell,
// administrator bootstrap or a data reset.
package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/atinyakov/ComicKeeper/internal/config"
	"github.com/atinyakov/ComicKeeper/internal/console"
	"github.com/atinyakov/ComicKeeper/internal/db"
	"github.com/atinyakov/ComicKeeper/internal/logger"
	"github.com/atinyakov/ComicKeeper/internal/repository"
	"github.com/atinyakov/ComicKeeper/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line, dotenv, config file and environment configuration.
	options := config.Parse()

	if options.ShowVersion {
		fmt.Printf("ComicKeeper\nVersion: %s\nBuild Date: %s\n", cmp.Or(version, "N/A"), cmp.Or(buildDate, "N/A"))
		return
	}

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel, options.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), options, os.Stdin, os.Stdout, log.Log); err != nil {
		log.Log.Fatal("comickeeper failed", zap.String("command", options.Command), zap.Error(err))
	}
}

// run opens the store and executes options.Command.
func run(ctx context.Context, options *config.Options, in io.Reader, out io.Writer, log *zap.Logger) error {
	dialect, err := db.ParseDialect(options.Driver)
	if err != nil {
		return err
	}
	dsn := options.DatabaseFile
	if dialect == db.Postgres {
		dsn = options.DatabaseDSN
	}

	store, err := db.Open(ctx, dialect, dsn)
	if err != nil {
		return fmt.Errorf("cannot init database: %w", err)
	}
	defer store.Close()
	if err := store.Init(ctx); err != nil {
		return err
	}
	log.Debug("store ready", zap.String("driver", string(dialect)))

	auth := service.NewAuthService(repository.NewUserRepository(store), log)

	switch options.Command {
	case config.CommandAddAdmin:
		created, err := auth.EnsureAdmin(ctx, options.AdminUsername, options.AdminPassword)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(out, "Administrator %q created\n", options.AdminUsername)
		} else {
			fmt.Fprintf(out, "Administrator %q already exists\n", options.AdminUsername)
		}
		return nil

	case config.CommandReset:
		if err := store.Reset(ctx, options.AdminUsername); err != nil {
			return err
		}
		log.Info("data reset", zap.String("kept_username", options.AdminUsername))
		fmt.Fprintf(out, "All data removed; accounts named %q were kept\n", options.AdminUsername)
		return nil

	case config.CommandShell:
		if options.AdminPassword != "" {
			if _, err := auth.EnsureAdmin(ctx, options.AdminUsername, options.AdminPassword); err != nil {
				return err
			}
		}
		catalog := service.NewCatalogService(
			repository.NewPublisherRepository(store),
			repository.NewVolumeRepository(store),
			repository.NewSeriesRepository(store),
			repository.NewComicRepository(store),
			log,
		)
		collection := service.NewCollectionService(repository.NewCollectionRepository(store), log)
		return console.New(in, out, auth, catalog, collection, log).Run(ctx)

	default:
		return fmt.Errorf("unknown command: %s", options.Command)
	}
}
