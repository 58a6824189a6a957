package main

import (
	"context"
	"fmt"

	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/shared"
	"github.com/urfave/cli/v3"
)

// Browse lists trending titles for a media type.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	mediaType := models.MediaType(cmd.String("type"))
	endpoint := cmd.String("endpoint")

	if !mediaType.Valid() {
		return fmt.Errorf("%w: type must be movie or tv", shared.ErrInvalidArgument)
	}

	r.logger.Info("fetching titles", "type", mediaType, "endpoint", endpoint)

	titles, err := r.catalog.Trending(ctx, mediaType, endpoint)
	if err != nil {
		return fmt.Errorf("failed to fetch titles: %w", err)
	}

	if limit := cmd.Int("limit"); limit > 0 && limit < len(titles) {
		titles = titles[:limit]
	}

	if cmd.Bool("json") {
		return r.writeJSON(titles, true)
	}

	r.writePlainHeader(fmt.Sprintf("%s (%s)", endpoint, mediaType))
	for i, title := range titles {
		if year := title.Year(); year != "" {
			r.writePlain("%d. %s (%s) ★%.1f\n", i+1, title.Title, year, title.VoteAverage)
		} else {
			r.writePlain("%d. %s ★%.1f\n", i+1, title.Title, title.VoteAverage)
		}
	}

	return nil
}
