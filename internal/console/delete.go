package console

import (
	"context"

	"github.com/atinyakov/ComicKeeper/internal/models"
)

func (c *Console) deleteMenu(ctx context.Context, s models.Session) error {
	c.println("What would you like to Delete?")
	c.println("1.) Volume\n2.) Publisher\n3.) Series\n4.) Comic\n5.) Delete From Collection")
	choice, err := c.prompt("Please Select an Option: ")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		return c.deleteVolume(ctx, s)
	case "2":
		return c.deletePublisher(ctx, s)
	case "3":
		return c.deleteSeries(ctx, s)
	case "4":
		return c.deleteComic(ctx, s)
	case "5":
		return c.removeFromCollection(ctx, s)
	default:
		c.println(msgInvalidRange)
		return nil
	}
}

// pickAndDelete lets the user pick one of labels and runs del with its index.
func (c *Console) pickAndDelete(label, empty, done string, labels []string, del func(i int) error) error {
	if len(labels) == 0 {
		c.println(empty)
		return nil
	}
	idx, err := c.choose(label, labels)
	if err != nil {
		return err
	}
	if err := del(idx); err != nil {
		c.report(err)
		return nil
	}
	c.success(done)
	return nil
}

func (c *Console) deleteVolume(ctx context.Context, s models.Session) error {
	c.println("Delete Volume")
	volumes, err := c.catalog.Volumes(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	return c.pickAndDelete("Please Choose a Volume: ", "Please Enter a Volume First", "Volume Successfully Deleted",
		volumeNames(volumes), func(i int) error {
			return c.catalog.DeleteVolume(ctx, s, volumes[i].ID)
		})
}

func (c *Console) deletePublisher(ctx context.Context, s models.Session) error {
	c.println("Delete Publisher")
	publishers, err := c.catalog.Publishers(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	return c.pickAndDelete("Please select a publisher name: ", "Please Enter a Publisher First", "Publisher Successfully Deleted",
		publisherNames(publishers), func(i int) error {
			return c.catalog.DeletePublisher(ctx, s, publishers[i].ID)
		})
}

func (c *Console) deleteSeries(ctx context.Context, s models.Session) error {
	c.println("Delete Series")
	series, err := c.catalog.SeriesList(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	return c.pickAndDelete("Please Select a number: ", "Please Enter a Series First", "Series Successfully Deleted",
		seriesNames(series), func(i int) error {
			return c.catalog.DeleteSeries(ctx, s, series[i].ID)
		})
}

func (c *Console) deleteComic(ctx context.Context, s models.Session) error {
	c.println("Delete Comic")
	comics, err := c.comics(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	return c.pickAndDelete("Please Choose a Comic: ", "Please Enter a Comic First", "Comic Successfully Deleted",
		comicLabels(comics), func(i int) error {
			return c.catalog.DeleteComic(ctx, s, comics[i].ComicID)
		})
}

func (c *Console) removeFromCollection(ctx context.Context, s models.Session) error {
	c.println("Delete From Collection")
	items, err := c.collection.List(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	return c.pickAndDelete("Please Choose a Comic: ", "Please Enter a Comic to Collection First", "Comic Successfully Removed",
		collectionLabels(items), func(i int) error {
			return c.collection.Remove(ctx, s, items[i].EntryID)
		})
}
