package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/cinevault/cinevault/internal/interact"
	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/shared"
	"github.com/urfave/cli/v3"
)

// Details loads one title's full record and prints it.
func (r *Runner) Details(ctx context.Context, cmd *cli.Command) error {
	mediaType := models.MediaType(cmd.StringArg("type"))
	tmdbID := cmd.StringArg("id")

	if !mediaType.Valid() {
		return fmt.Errorf("%w: type must be movie or tv", shared.ErrInvalidArgument)
	}
	if tmdbID == "" {
		return fmt.Errorf("%w: id", shared.ErrMissingArgument)
	}

	r.logger.Info("loading details", "type", mediaType, "id", tmdbID)

	result, err := r.details.Load(ctx, nil, mediaType, tmdbID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, true)
	}

	detail := result.Detail
	r.writePlainHeader(detail.DisplayTitle())

	if detail.Tagline != "" {
		r.writePlain("%s\n\n", detail.Tagline)
	}

	facts := []string{}
	if date := detail.Date(); date != "" {
		facts = append(facts, date)
	}
	if detail.Runtime > 0 {
		facts = append(facts, fmt.Sprintf("%dm", detail.Runtime))
	}
	if detail.Status != "" {
		facts = append(facts, detail.Status)
	}
	facts = append(facts, fmt.Sprintf("★%.1f (%d votes)", detail.VoteAverage, detail.VoteCount))
	r.writePlain("%s\n", strings.Join(facts, " | "))

	if len(detail.Genres) > 0 {
		names := make([]string, len(detail.Genres))
		for i, genre := range detail.Genres {
			names[i] = genre.Name
		}
		r.writePlain("Genres: %s\n", strings.Join(names, ", "))
	}

	if detail.Overview != "" {
		r.writePlain("\n%s\n", detail.Overview)
	}

	if director := result.Credits.Director(); director != "" {
		r.writePlain("\nDirector: %s\n", director)
	}
	if len(result.Credits.Cast) > 0 {
		cast := result.Credits.Cast
		if len(cast) > 5 {
			cast = cast[:5]
		}
		names := make([]string, len(cast))
		for i, member := range cast {
			names[i] = member.Name
		}
		r.writePlain("Cast: %s\n", strings.Join(names, ", "))
	}

	if keywords := result.Keywords.All(); len(keywords) > 0 {
		names := make([]string, len(keywords))
		for i, keyword := range keywords {
			names[i] = keyword.Name
		}
		r.writePlain("Keywords: %s\n", strings.Join(names, ", "))
	}

	if us, ok := result.Providers.Results["US"]; ok && len(us.Flatrate) > 0 {
		names := make([]string, len(us.Flatrate))
		for i, provider := range us.Flatrate {
			names[i] = provider.ProviderName
		}
		r.writePlain("Streaming (US): %s\n", strings.Join(names, ", "))
	}

	trailer := result.Videos.Trailer()
	if trailer != nil {
		r.writePlain("Trailer: https://www.youtube.com/watch?v=%s\n", trailer.Key)
	}

	if userID, err := r.requireLogin(); err == nil {
		toggles := interact.NewController(r.tracker, r.store, r.logger, userID, mediaType, tmdbID, nil)
		toggles.Fetch(ctx)
		state := toggles.State()

		marks := make([]string, 0, len(models.Actions))
		for _, action := range models.Actions {
			mark := "✗"
			if state.Get(action) {
				mark = "✓"
			}
			marks = append(marks, fmt.Sprintf("%s %s", mark, action))
		}
		r.writePlain("\n%s\n", strings.Join(marks, "  "))

		rating := interact.NewRatingController(r.tracker, r.store, r.logger, userID, mediaType, tmdbID)
		rating.Fetch(ctx)
		if value := rating.Value(); value > 0 {
			r.writePlain("Your rating: %.1f/5\n", float64(value))
		}
	}

	if cmd.Bool("open") {
		if trailer == nil {
			return fmt.Errorf("%w: no trailer to open", shared.ErrTitleNotFound)
		}
		return shared.OpenBrowser("https://www.youtube.com/watch?v=" + trailer.Key)
	}

	return nil
}
