// Package console implements the interactive text frontend: numbered menus
// read from an input stream and dispatched to the services.
package console

import (
	"bufio"
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/atinyakov/ComicKeeper/internal/models"
)

// AuthService registers accounts and logs users in.
type AuthService interface {
	Register(ctx context.Context, username, password string) (int64, error)
	Login(ctx context.Context, username, password string) (models.Session, error)
}

// CatalogService is the catalog surface the menus use.
type CatalogService interface {
	AddPublisher(ctx context.Context, s models.Session, name string) (int64, error)
	Publishers(ctx context.Context, s models.Session) ([]models.Publisher, error)
	UpdatePublisher(ctx context.Context, s models.Session, id int64, patch models.PublisherPatch) error
	DeletePublisher(ctx context.Context, s models.Session, id int64) error

	AddVolume(ctx context.Context, s models.Session, number int) (int64, error)
	Volumes(ctx context.Context, s models.Session) ([]models.Volume, error)
	UpdateVolume(ctx context.Context, s models.Session, id int64, patch models.VolumePatch) error
	DeleteVolume(ctx context.Context, s models.Session, id int64) error

	AddSeries(ctx context.Context, s models.Session, name string, volumeID, publisherID int64) (int64, error)
	SeriesList(ctx context.Context, s models.Session) ([]models.Series, error)
	Series(ctx context.Context, s models.Session, id int64) (*models.Series, error)
	UpdateSeries(ctx context.Context, s models.Session, id int64, patch models.SeriesPatch) error
	DeleteSeries(ctx context.Context, s models.Session, id int64) error

	AddComic(ctx context.Context, s models.Session, comic models.NewComic) (int64, error)
	Comics(ctx context.Context, s models.Session) ([]models.ComicListing, error)
	Comic(ctx context.Context, s models.Session, id int64) (*models.Comic, error)
	UpdateComic(ctx context.Context, s models.Session, id int64, patch models.ComicPatch) error
	DeleteComic(ctx context.Context, s models.Session, id int64) error
}

// CollectionService manages the logged-in user's collection.
type CollectionService interface {
	Add(ctx context.Context, s models.Session, comicID int64) (int64, error)
	List(ctx context.Context, s models.Session) ([]models.CollectionItem, error)
	Remove(ctx context.Context, s models.Session, entryID int64) error
}

// Console reads menu selections from in and writes menus and results to out.
type Console struct {
	in         *bufio.Scanner
	out        io.Writer
	auth       AuthService
	catalog    CatalogService
	collection CollectionService
	log        *zap.Logger
}

// New builds a Console over the given streams and services.
func New(in io.Reader, out io.Writer, auth AuthService, catalog CatalogService, collection CollectionService, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	return &Console{
		in:         bufio.NewScanner(in),
		out:        out,
		auth:       auth,
		catalog:    catalog,
		collection: collection,
		log:        log,
	}
}

const (
	msgClearance = "You do not have the required clearance level for this action"
	topMenu      = "\n1.) Login\n2.) Register\n3.) Exit\n"
	actionMenu   = "1.) Select\n2.) Insert\n3.) Delete\n4.) Update\n5.) Return to Menu"
)

// Run loops over the top menu until the user exits, input ends or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	err := c.run(ctx)
	if errors.Is(err, errQuit) {
		c.println("Bye")
		return nil
	}
	return err
}

func (c *Console) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printf("%s\n", topMenu)
		choice, err := c.prompt("Please Select an option: ")
		if err != nil {
			return err
		}

		var (
			s  models.Session
			ok bool
		)
		switch choice {
		case "1":
			s, ok, err = c.login(ctx)
		case "2":
			s, ok, err = c.register(ctx)
		case "3":
			return errQuit
		default:
			c.println(msgInvalidRange)
			continue
		}
		if err != nil {
			return err
		}
		if ok {
			if err := c.actions(ctx, s); err != nil {
				return err
			}
			c.log.Info("logged out", zap.String("session", s.ID), zap.String("username", s.Username))
		}
	}
}

// login asks for credentials until they match or the user returns to the menu.
func (c *Console) login(ctx context.Context) (models.Session, bool, error) {
	for {
		username, err := c.prompt("Please enter your username: ")
		if err != nil {
			return models.Session{}, false, err
		}
		password, err := c.prompt("Please enter your password: ")
		if err != nil {
			return models.Session{}, false, err
		}

		s, err := c.auth.Login(ctx, username, password)
		if err == nil {
			c.printf("\nWelcome, %s\n\n", s.Username)
			return s, true, nil
		}
		if !errors.Is(err, models.ErrInvalidCredentials) {
			c.report(err)
		} else {
			c.println("Invalid username or password")
		}

		c.println("1.) Try again\n2.) Return to Menu")
		choice, err := c.prompt("Please Select an option: ")
		if err != nil {
			return models.Session{}, false, err
		}
		if choice == "2" {
			return models.Session{}, false, nil
		}
	}
}

// register creates a normal account and then asks the user to log in with it.
func (c *Console) register(ctx context.Context) (models.Session, bool, error) {
	username, err := c.prompt("Please enter your username: ")
	if err != nil {
		return models.Session{}, false, err
	}
	password, err := c.prompt("Please enter your password: ")
	if err != nil {
		return models.Session{}, false, err
	}
	if _, err := c.auth.Register(ctx, username, password); err != nil {
		c.report(err)
		return models.Session{}, false, nil
	}
	c.println("\nAccount created. Please log in.")
	return c.login(ctx)
}

// actions runs the logged-in menu until the user returns to the top menu.
func (c *Console) actions(ctx context.Context, s models.Session) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.println("What would you like to do?")
		c.println(actionMenu)
		choice, err := c.prompt("Please Select An option: ")
		if err != nil {
			return err
		}

		var (
			required models.Clearance
			run      func(context.Context, models.Session) error
		)
		switch choice {
		case "1":
			required, run = models.ViewClearance, c.selectMenu
		case "2":
			required, run = models.InsertClearance, c.insertMenu
		case "3":
			required, run = models.DeleteClearance, c.deleteMenu
		case "4":
			required, run = models.UpdateClearance, c.updateMenu
		case "5":
			return nil
		default:
			c.println(msgInvalidRange)
			continue
		}
		if !s.Can(required) {
			c.println(msgClearance)
			continue
		}
		if err := run(ctx, s); err != nil {
			return err
		}
	}
}

// report prints a service error in user terms. Only unexpected failures are logged.
func (c *Console) report(err error) {
	switch {
	case errors.Is(err, models.ErrForbidden):
		c.println(msgClearance)
	case errors.Is(err, models.ErrInvalidInput):
		c.printf("Invalid input: %v\n", err)
	case errors.Is(err, models.ErrReferenced):
		c.println("That record is still in use and cannot be deleted")
	case errors.Is(err, models.ErrInvalidReference):
		c.println("That record refers to something that no longer exists")
	case errors.Is(err, models.ErrNotFound):
		c.println("That record no longer exists")
	default:
		c.log.Error("operation failed", zap.Error(err))
		c.printf("Something went wrong: %v\n", err)
	}
}
