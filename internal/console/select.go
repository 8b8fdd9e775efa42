package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/atinyakov/ComicKeeper/internal/models"
)

func publisherNames(ps []models.Publisher) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func volumeNames(vs []models.Volume) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name
	}
	return out
}

func seriesNames(ss []models.Series) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.Name
	}
	return out
}

func comicLabels(cs []models.ComicListing) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = fmt.Sprintf("%s #%d", c.SeriesName, c.IssueNum)
	}
	return out
}

func collectionLabels(items []models.CollectionItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = fmt.Sprintf("%s #%d", it.SeriesName, it.IssueNum)
	}
	return out
}

// comics lists the catalog, treating an empty catalog as an empty list.
func (c *Console) comics(ctx context.Context, s models.Session) ([]models.ComicListing, error) {
	cs, err := c.catalog.Comics(ctx, s)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	return cs, err
}

// selectMenu shows the user's collection or one of the catalog listings.
func (c *Console) selectMenu(ctx context.Context, s models.Session) error {
	c.println("What would you like to view?")
	c.println("1.) My Collection\n2.) Comics\n3.) Series\n4.) Publishers\n5.) Volumes")
	choice, err := c.prompt("Please Select an Option: ")
	if err != nil {
		return err
	}

	var (
		lines []string
		empty string
	)
	switch choice {
	case "1":
		items, err := c.collection.List(ctx, s)
		if err != nil {
			c.report(err)
			return nil
		}
		lines, empty = collectionLabels(items), "Your collection is empty"
	case "2":
		cs, err := c.comics(ctx, s)
		if err != nil {
			c.report(err)
			return nil
		}
		lines, empty = comicLabels(cs), "There are no comics yet"
	case "3":
		ss, err := c.catalog.SeriesList(ctx, s)
		if err != nil {
			c.report(err)
			return nil
		}
		lines, empty = seriesNames(ss), "There are no series yet"
	case "4":
		ps, err := c.catalog.Publishers(ctx, s)
		if err != nil {
			c.report(err)
			return nil
		}
		lines, empty = publisherNames(ps), "There are no publishers yet"
	case "5":
		vs, err := c.catalog.Volumes(ctx, s)
		if err != nil {
			c.report(err)
			return nil
		}
		lines, empty = volumeNames(vs), "There are no volumes yet"
	default:
		c.println(msgInvalidRange)
		return nil
	}

	if len(lines) == 0 {
		c.println(empty)
	}
	for i, l := range lines {
		c.printf("%d.) %s\n", i+1, l)
	}
	_, err = c.prompt("Hit Enter to continue")
	return err
}
