package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cinevault/cinevault/internal/shared"
	"github.com/cinevault/cinevault/internal/tasks"
	"github.com/cinevault/cinevault/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.tracker == nil || r.catalog == nil {
		return fmt.Errorf("%w: backend clients not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	logPath := r.config.TUI.LogPath
	if logPath == "" {
		logPath = "./tmp/cinevault-tui.log"
	}
	fileLogger, err := shared.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.store, r.tracker, r.catalog, fileLogger)
	if r.cache != nil {
		model.SetCollectionEngine(tasks.NewCollectionEngine(r.tracker, r.catalog, r.cache, fileLogger, tasks.CollectionOpts{
			RateLimit: r.config.Catalog.RateLimit,
		}))
	}

	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
