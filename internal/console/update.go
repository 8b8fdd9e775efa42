package console

import (
	"context"
	"strconv"

	"github.com/atinyakov/ComicKeeper/internal/models"
)

const keep = " (blank keeps current)"

func (c *Console) updateMenu(ctx context.Context, s models.Session) error {
	c.println("What would you like to Update?")
	c.println("1.) Volume\n2.) Publisher\n3.) Series\n4.) Comic")
	choice, err := c.prompt("Please Select an Option: ")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		return c.updateVolume(ctx, s)
	case "2":
		return c.updatePublisher(ctx, s)
	case "3":
		return c.updateSeries(ctx, s)
	case "4":
		return c.updateComic(ctx, s)
	default:
		c.println(msgInvalidRange)
		return nil
	}
}

func (c *Console) updateVolume(ctx context.Context, s models.Session) error {
	c.println("Update Volume")
	volumes, err := c.catalog.Volumes(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(volumes) == 0 {
		c.println("Please Enter a Volume First")
		return nil
	}
	idx, err := c.choose("Please Choose a Volume: ", volumeNames(volumes))
	if err != nil {
		return err
	}
	n, err := c.promptOptionalInt("Please Enter a Volume Number" + keep + ": ")
	if err != nil {
		return err
	}
	if err := c.catalog.UpdateVolume(ctx, s, volumes[idx].ID, models.VolumePatch{Number: n}); err != nil {
		c.report(err)
		return nil
	}
	c.success("Volume Successfully Updated")
	return nil
}

func (c *Console) updatePublisher(ctx context.Context, s models.Session) error {
	c.println("Update Publisher")
	publishers, err := c.catalog.Publishers(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(publishers) == 0 {
		c.println("Please Enter a Publisher First")
		return nil
	}
	idx, err := c.choose("Please Choose a Publisher: ", publisherNames(publishers))
	if err != nil {
		return err
	}
	name, err := c.promptOptional("Please enter a publisher name" + keep + ": ")
	if err != nil {
		return err
	}
	if err := c.catalog.UpdatePublisher(ctx, s, publishers[idx].ID, models.PublisherPatch{Name: name}); err != nil {
		c.report(err)
		return nil
	}
	c.success("Publisher Successfully Updated")
	return nil
}

func (c *Console) updateSeries(ctx context.Context, s models.Session) error {
	c.println("Update Series")
	series, err := c.catalog.SeriesList(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(series) == 0 {
		c.println("Please Enter a Series First")
		return nil
	}
	volumes, err := c.catalog.Volumes(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	publishers, err := c.catalog.Publishers(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(volumes) == 0 || len(publishers) == 0 {
		c.println("Please Add a Publisher and Volume First")
		return nil
	}

	idx, err := c.choose("Please Choose a Series: ", seriesNames(series))
	if err != nil {
		return err
	}
	current, err := c.catalog.Series(ctx, s, series[idx].ID)
	if err != nil {
		c.report(err)
		return nil
	}
	c.printf("Current: %s (volume %d, publisher %d)\n", current.Name, current.VolumeID, current.PublisherID)

	var patch models.SeriesPatch
	v, err := c.chooseOptional("Please select a Volume"+keep+": ", volumeNames(volumes))
	if err != nil {
		return err
	}
	if v != nil {
		patch.VolumeID = &volumes[*v].ID
	}
	p, err := c.chooseOptional("Please select a Publisher"+keep+": ", publisherNames(publishers))
	if err != nil {
		return err
	}
	if p != nil {
		patch.PublisherID = &publishers[*p].ID
	}
	if patch.Name, err = c.promptOptional("Please enter the series name" + keep + ": "); err != nil {
		return err
	}

	if err := c.catalog.UpdateSeries(ctx, s, current.ID, patch); err != nil {
		c.report(err)
		return nil
	}
	c.success("Series Successfully Updated")
	return nil
}

func (c *Console) updateComic(ctx context.Context, s models.Session) error {
	c.println("Update Comic")
	comics, err := c.comics(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(comics) == 0 {
		c.println("Please Add a Comic First")
		return nil
	}
	series, err := c.catalog.SeriesList(ctx, s)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(series) == 0 {
		c.println("Please Add a Series First")
		return nil
	}

	idx, err := c.choose("Please Choose a Comic: ", comicLabels(comics))
	if err != nil {
		return err
	}
	current, err := c.catalog.Comic(ctx, s, comics[idx].ComicID)
	if err != nil {
		c.report(err)
		return nil
	}
	c.printf("Current: #%d, cover %.2f, current price %s\n", current.IssueNum, current.CoverPrice, priceOrDash(current.CurrentPrice))

	var patch models.ComicPatch
	if patch.IssueNum, err = c.promptOptionalInt("Please enter an issue number" + keep + ": "); err != nil {
		return err
	}
	c.println("Cover Price Example: 2.99")
	if patch.CoverPrice, err = c.promptOptionalPrice("Please enter a Cover Price" + keep + ": "); err != nil {
		return err
	}
	if patch.CurrentPrice, err = c.promptOptionalPrice("Please enter a Current Price" + keep + ": "); err != nil {
		return err
	}
	if patch.Description, err = c.promptClearable("Please enter a description"); err != nil {
		return err
	}
	if patch.ImageURL, err = c.promptClearable("Please enter an image URL"); err != nil {
		return err
	}
	sr, err := c.chooseOptional("Please Pick a Series"+keep+": ", seriesNames(series))
	if err != nil {
		return err
	}
	if sr != nil {
		patch.SeriesID = &series[*sr].ID
	}

	if err := c.catalog.UpdateComic(ctx, s, current.ID, patch); err != nil {
		c.report(err)
		return nil
	}
	c.success("Comic Successfully Updated")
	return nil
}

// promptClearable reads an optional text field where "-" stores an empty value.
func (c *Console) promptClearable(label string) (*string, error) {
	v, err := c.promptOptional(label + " (blank keeps current, - clears): ")
	if err != nil || v == nil {
		return nil, err
	}
	if *v == "-" {
		empty := ""
		return &empty, nil
	}
	return v, nil
}

func priceOrDash(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}
