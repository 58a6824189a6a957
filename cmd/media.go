package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cinevault/cinevault/internal/interact"
	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/shared"
	"github.com/urfave/cli/v3"
)

func parseMediaArgs(cmd *cli.Command) (models.MediaType, string, error) {
	mediaType := models.MediaType(cmd.StringArg("type"))
	tmdbID := cmd.StringArg("id")

	if !mediaType.Valid() {
		return "", "", fmt.Errorf("%w: type must be movie or tv", shared.ErrInvalidArgument)
	}
	if tmdbID == "" {
		return "", "", fmt.Errorf("%w: id", shared.ErrMissingArgument)
	}
	return mediaType, tmdbID, nil
}

// MediaToggle flips one of watched, liked, or watchlisted for a title.
func (r *Runner) MediaToggle(ctx context.Context, cmd *cli.Command) error {
	userID, err := r.requireLogin()
	if err != nil {
		return err
	}

	mediaType, tmdbID, err := parseMediaArgs(cmd)
	if err != nil {
		return err
	}

	action := models.Action(cmd.StringArg("action"))
	if !action.Valid() {
		return fmt.Errorf("%w: action must be watched, liked, or watchlisted", shared.ErrInvalidArgument)
	}

	r.logger.Info("toggling interaction", "type", mediaType, "id", tmdbID, "action", action)

	controller := interact.NewController(r.tracker, r.store, r.logger, userID, mediaType, tmdbID, nil)
	controller.Fetch(ctx)

	state, err := controller.Toggle(ctx, action)
	if err != nil {
		return fmt.Errorf("failed to toggle %s: %w", action, err)
	}

	marks := make([]string, 0, len(models.Actions))
	for _, a := range models.Actions {
		mark := "✗"
		if state.Get(a) {
			mark = "✓"
		}
		marks = append(marks, fmt.Sprintf("%s %s", mark, a))
	}
	return r.writePlain("%s\n", strings.Join(marks, "  "))
}

// MediaRate sets or clears the user's rating for a title.
func (r *Runner) MediaRate(ctx context.Context, cmd *cli.Command) error {
	userID, err := r.requireLogin()
	if err != nil {
		return err
	}

	mediaType, tmdbID, err := parseMediaArgs(cmd)
	if err != nil {
		return err
	}

	raw := cmd.StringArg("value")
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", shared.ErrInvalidArgument, raw)
	}
	value := models.Rating(parsed)

	r.logger.Info("rating title", "type", mediaType, "id", tmdbID, "value", value)

	rating := interact.NewRatingController(r.tracker, r.store, r.logger, userID, mediaType, tmdbID)
	if err := rating.Rate(ctx, value); err != nil {
		return err
	}

	if value == 0 {
		return r.writePlain("✓ Rating cleared\n")
	}
	return r.writePlain("✓ Rated %.1f/5\n", float64(value))
}

// MediaRating prints the user's stored rating for a title.
func (r *Runner) MediaRating(ctx context.Context, cmd *cli.Command) error {
	userID, err := r.requireLogin()
	if err != nil {
		return err
	}

	mediaType, tmdbID, err := parseMediaArgs(cmd)
	if err != nil {
		return err
	}

	value, err := r.tracker.Rating(ctx, userID, mediaType, tmdbID)
	if err != nil {
		return fmt.Errorf("failed to fetch rating: %w", err)
	}

	if value == 0 {
		return r.writePlain("Not rated\n")
	}
	return r.writePlain("Your rating: %.1f/5\n", float64(value))
}
