package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/cinevault/cinevault/internal/repositories"
	"github.com/cinevault/cinevault/internal/services"
	"github.com/cinevault/cinevault/internal/session"
	"github.com/cinevault/cinevault/internal/shared"
	"github.com/cinevault/cinevault/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	db      *sql.DB
	store   *session.Store
	tracker services.Tracker
	catalog services.Catalog
	api     *services.RawAPIService
	cache   *repositories.TitleCacheRepository
	logger  *log.Logger
	output  io.Writer

	details     *tasks.DetailEngine
	collections *tasks.CollectionEngine
	searcher    *tasks.SearchEngine
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	DB      *sql.DB
	Store   *session.Store
	Tracker services.Tracker
	Catalog services.Catalog
	API     *services.RawAPIService
	Cache   *repositories.TitleCacheRepository
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	r := &Runner{
		config:  opts.Config,
		db:      opts.DB,
		store:   opts.Store,
		tracker: opts.Tracker,
		catalog: opts.Catalog,
		api:     opts.API,
		cache:   opts.Cache,
		logger:  opts.Logger,
		output:  opts.Output,
	}

	r.details = tasks.NewDetailEngine(opts.Catalog, opts.Logger)
	r.searcher = tasks.NewSearchEngine(opts.Catalog, opts.Logger)

	var cache tasks.TitleCache
	if opts.Cache != nil {
		cache = opts.Cache
	}
	r.collections = tasks.NewCollectionEngine(opts.Tracker, opts.Catalog, cache, opts.Logger, tasks.CollectionOpts{
		RateLimit: opts.Config.Catalog.RateLimit,
	})

	return r
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, browseCommand, searchCommand, detailsCommand, mediaCommand, profileCommand, apiCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// requireLogin returns the current user id or an error for commands that
// only make sense with a session.
func (r *Runner) requireLogin() (string, error) {
	if r.store == nil || !r.store.IsLoggedIn() {
		return "", fmt.Errorf("%w: run 'cinevault auth login' first", shared.ErrNotAuthenticated)
	}
	return r.store.UserID(), nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
