// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing and tracking titles:
//  1. [HomeView] : Browse trending movies and shows
//  2. [LoginView] : Authenticate against the backend
//  3. [SearchView] : Paged multi-search with a category filter
//  4. [DetailView] : One title with credits, providers, toggles, and stars
//  5. [ProfileView] : The three collections with filter and removal
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View
// pattern. Collection resolution progress flows through a channel from the
// CollectionEngine, providing non-blocking status reporting.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
