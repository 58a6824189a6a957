package main

import (
	"context"
	"fmt"

	"github.com/cinevault/cinevault/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search runs a paged multi-search and prints one page of results.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	page := cmd.Int("page")
	filter := cmd.String("filter")

	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}
	switch filter {
	case "all", "movie", "tv":
	default:
		return fmt.Errorf("%w: filter must be all, movie, or tv", shared.ErrInvalidArgument)
	}

	r.logger.Info("searching", "query", query, "page", page, "filter", filter)

	// Filter first: with no query yet this only records it, so the
	// search below is the single fetch for page one.
	if err := r.searcher.SetFilter(ctx, nil, filter); err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if err := r.searcher.Search(ctx, nil, query); err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if page > 1 {
		if err := r.searcher.GoToPage(ctx, nil, page); err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
	}

	state := r.searcher.State()

	if cmd.Bool("json") {
		return r.writeJSON(state, true)
	}

	r.writePlainHeader(fmt.Sprintf("Search: %s", state.Query))
	if len(state.Results) == 0 {
		return r.writePlain("No results\n")
	}

	for i, result := range state.Results {
		date := result.ReleaseDate
		if date == "" {
			date = result.FirstAirDate
		}
		year := ""
		if len(date) >= 4 {
			year = " (" + date[:4] + ")"
		}
		r.writePlain("%d. %s%s [%s] ★%.1f\n", i+1, result.DisplayTitle(), year, result.Category(), result.VoteAverage)
	}
	r.writePlain("\nPage %d of %d (%d results)\n", state.Page, state.TotalPages, state.TotalResults)

	return nil
}
