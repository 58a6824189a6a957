package main

import (
	"context"
	"fmt"

	"github.com/cinevault/cinevault/internal/formatter"
	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/shared"
	"github.com/cinevault/cinevault/internal/tasks"
	"github.com/urfave/cli/v3"
)

// ProfileShow loads the account record and all three collections, resolves
// every entry to display metadata, and prints them.
func (r *Runner) ProfileShow(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireLogin(); err != nil {
		return err
	}

	filter := cmd.String("filter")
	switch filter {
	case "all", "movie", "tv":
	default:
		return fmt.Errorf("%w: filter must be all, movie, or tv", shared.ErrInvalidArgument)
	}

	r.logger.Info("loading profile")

	result, err := r.collections.Load(ctx, nil)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, true)
	}

	r.writePlainHeader(fmt.Sprintf("%s (%s)", result.User.Name, result.User.Email))

	for _, collection := range models.CollectionTypes {
		items := tasks.FilterItems(result.Items[collection], filter)
		r.writePlainln("%s (%d)", collection, len(items))
		for i, item := range items {
			if item.Title == nil {
				r.writePlain("%d. %s [%s] (unavailable)\n", i+1, item.Entry.TmdbID, item.Entry.MediaType)
				continue
			}
			if year := item.Title.Year(); year != "" {
				r.writePlain("%d. %s (%s) [%s]\n", i+1, item.Title.Title, year, item.Title.MediaType)
			} else {
				r.writePlain("%d. %s [%s]\n", i+1, item.Title.Title, item.Title.MediaType)
			}
		}
	}

	return nil
}

// ProfileExport writes one resolved collection to a file.
func (r *Runner) ProfileExport(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireLogin(); err != nil {
		return err
	}

	collection := models.CollectionType(cmd.String("collection"))
	if !collection.Valid() {
		return fmt.Errorf("%w: collection must be watched, liked, or watchlisted", shared.ErrInvalidArgument)
	}

	result, err := r.collections.Load(ctx, nil)
	if err != nil {
		return err
	}

	titles := []models.Title{}
	for _, item := range result.Items[collection] {
		if item.Title != nil {
			titles = append(titles, *item.Title)
		}
	}

	export := &formatter.CollectionExport{
		Collection: collection,
		User:       result.User,
		Titles:     titles,
	}

	path, err := formatter.WriteExport(export, cmd.String("format"), cmd.String("output"))
	if err != nil {
		return err
	}

	return r.writePlain("✓ Exported %d titles to %s\n", len(titles), path)
}

// ProfileRemove removes a title from a collection.
func (r *Runner) ProfileRemove(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.requireLogin(); err != nil {
		return err
	}

	collection := models.CollectionType(cmd.StringArg("collection"))
	tmdbID := cmd.StringArg("id")
	if tmdbID == "" {
		return fmt.Errorf("%w: id", shared.ErrMissingArgument)
	}

	r.logger.Info("removing entry", "collection", collection, "id", tmdbID)

	if err := r.collections.Remove(ctx, nil, collection, tmdbID); err != nil {
		return err
	}

	return r.writePlain("✓ Removed %s from %s\n", tmdbID, collection)
}
