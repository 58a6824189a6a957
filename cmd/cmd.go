// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand initializes the local database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize local database and configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.BoolFlag{
				Name:  "rollback",
				Usage: "Roll back the most recent migration",
			},
		},
		Action: r.Setup,
	}
}

// authCommand handles session operations against the backend.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authenticate with the CineVault backend",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Log in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Account password (prompted when omitted)",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Clear the stored session",
				Action: r.AuthLogout,
			},
			{
				Name:  "register",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Account password (prompted when omitted)",
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:   "status",
				Usage:  "Show the current session",
				Action: r.AuthStatus,
			},
		},
	}
}

// browseCommand lists trending titles.
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Browse popular movies and shows",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Media type: movie or tv",
				Value:   "movie",
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "Listing endpoint (popular, top_rated, upcoming)",
				Value: "popular",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "Maximum number of titles to print",
				Value:   20,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Browse,
	}
}

// searchCommand runs the paged multi-search.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search for movies and TV shows",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "page",
				Usage: "Result page",
				Value: 1,
			},
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "Category filter: all, movie, or tv",
				Value:   "all",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Search,
	}
}

// detailsCommand shows one title's full record.
func detailsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "details",
		Usage: "Show one title with credits, providers, and your state",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "type",
			},
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the trailer in the browser",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Details,
	}
}

// mediaCommand mutates per-title interaction state.
func mediaCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "media",
		Usage: "Toggle and rate titles",
		Commands: []*cli.Command{
			{
				Name:  "toggle",
				Usage: "Flip watched, liked, or watchlisted for a title",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "type",
					},
					&cli.StringArg{
						Name: "id",
					},
					&cli.StringArg{
						Name: "action",
					},
				},
				Action: r.MediaToggle,
			},
			{
				Name:  "rate",
				Usage: "Rate a title (0-5 in half steps; 0 clears)",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "type",
					},
					&cli.StringArg{
						Name: "id",
					},
					&cli.StringArg{
						Name: "value",
					},
				},
				Action: r.MediaRate,
			},
			{
				Name:  "rating",
				Usage: "Show your rating for a title",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "type",
					},
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.MediaRating,
			},
		},
	}
}

// profileCommand reads and exports the collection page.
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Your collections: watched, liked, watchlist",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the resolved collections",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "filter",
						Aliases: []string{"f"},
						Usage:   "Category filter: all, movie, or tv",
						Value:   "all",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ProfileShow,
			},
			{
				Name:  "export",
				Usage: "Export one collection to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "collection",
						Usage: "Collection: watched, liked, or watchlisted",
						Value: "watched",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format: json, csv, markdown, txt",
						Value: "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.ProfileExport,
			},
			{
				Name:  "remove",
				Usage: "Remove a title from a collection",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "collection",
					},
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.ProfileRemove,
			},
		},
	}
}

// apiCommand handles direct (proxy) API calls
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls to the backend",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET to the backend, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST to the backend with a JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "data",
						Aliases: []string{"d"},
						Usage:   "JSON request body",
					},
				},
				Action: r.APIPost,
			},
		},
	}
}

// tuiCommand launches the interactive terminal UI.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive terminal UI",
		Action: r.TUI,
	}
}
