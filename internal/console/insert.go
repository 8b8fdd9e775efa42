package console

import (
	"context"

	"github.com/atinyakov/ComicKeeper/internal/models"
)

func (c *Console) insertMenu(ctx context.Context, s models.Session) error {
	c.println("What would you like to Insert?")
	c.println("1.) Volume\n2.) Publisher\n3.) Series\n4.) Comic\n5.) Add to Collection")
	choice, err := c.prompt("Please Select an Option: ")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		return c.insertVolume(ctx, s)
	case "2":
		return c.insertPublisher(ctx, s)
	case "3":
		return c.insertSeries(ctx, s)
	case "4":
		return c.insertComic(ctx, s)
	case "5":
		return c.addToCollection(ctx, s)
	default:
		c.println(msgInvalidRange)
		return nil
	}
}

func (c *Console) insertVolume(ctx context.Context, s models.Session) error {
	c.println("Enter Volume")
	n, err := c.promptInt("Please Enter a Volume Number: ")
	if err != nil {
		return err
	}
	if _, err := c.catalog.AddVolume(ctx, s, n); err != nil {
		c.report(err)
		return nil
	}
	c.success("Volume Successfully Added")
	return nil
}

func (c *Console) insertPublisher(ctx context.Context, s models.Session) error {
	c.println("Enter Publisher")
	name, err := c.prompt("Please enter a publisher name: ")
	if err != nil {
		return err
	}
	if _, err := c.catalog.AddPublisher(ctx, s, name); err != nil {
		c.report(err)
		return nil
	}
	c.success("Publisher Successfully Added")
	return nil
}

func (c *Console) insertSeries(ctx context.Context, s models.Session) error {
	c.println("Enter Series")
	publishers, err := c.catalog.Publishers(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	volumes, err := c.catalog.Volumes(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(publishers) == 0 || len(volumes) == 0 {
		c.println("Please add a publisher and volume first")
		return nil
	}

	c.println("Please select a publisher:")
	p, err := c.choose("Please Select a number: ", publisherNames(publishers))
	if err != nil {
		return err
	}
	c.println("Please select a Volume")
	v, err := c.choose("Please Select a number: ", volumeNames(volumes))
	if err != nil {
		return err
	}
	name, err := c.prompt("Please enter the series name: ")
	if err != nil {
		return err
	}

	if _, err := c.catalog.AddSeries(ctx, s, name, volumes[v].ID, publishers[p].ID); err != nil {
		c.report(err)
		return nil
	}
	c.success("Series Successfully Added")
	return nil
}

func (c *Console) insertComic(ctx context.Context, s models.Session) error {
	c.println("Enter Comic")
	series, err := c.catalog.SeriesList(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(series) == 0 {
		c.println("Please add a Series")
		return nil
	}

	issue, err := c.promptInt("Please enter an issue number: ")
	if err != nil {
		return err
	}
	c.println("Cover Price Example: 2.99")
	cover, err := c.promptPrice("Please enter a Cover Price: ")
	if err != nil {
		return err
	}
	c.println("\nPlease Pick a Series")
	idx, err := c.choose("Please Choose a Series: ", seriesNames(series))
	if err != nil {
		return err
	}

	comic := models.NewComic{SeriesID: series[idx].ID, IssueNum: issue, CoverPrice: cover}
	if _, err := c.catalog.AddComic(ctx, s, comic); err != nil {
		c.report(err)
		return nil
	}
	c.success("Comic Successfully Added")
	return nil
}

func (c *Console) addToCollection(ctx context.Context, s models.Session) error {
	c.println("Enter Collection")
	comics, err := c.comics(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(comics) == 0 {
		c.println("Please Add A Comic Before Adding to Collection")
		return nil
	}

	idx, err := c.choose("Please choose a Comic: ", comicLabels(comics))
	if err != nil {
		return err
	}
	if _, err := c.collection.Add(ctx, s, comics[idx].ComicID); err != nil {
		c.report(err)
		return nil
	}
	c.success("Comic Successfully Added")
	return nil
}
