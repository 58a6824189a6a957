package ui

import (
	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/tasks"
)

// trendingFetchedMsg carries the home page listing rows.
type trendingFetchedMsg struct {
	movies []models.Title
	shows  []models.Title
	err    error
}

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	session *models.Session
	err     error
}

// searchDoneMsg carries the search state after one fetch.
type searchDoneMsg struct {
	state tasks.SearchState
	err   error
}

// detailLoadedMsg carries the six-fetch join result plus the per-title
// interaction and rating state.
type detailLoadedMsg struct {
	result *tasks.DetailResult
	state  models.InteractionState
	rating models.Rating
	err    error
}

// profileLoadedMsg carries the resolved collection page.
type profileLoadedMsg struct {
	result *tasks.CollectionResult
	err    error
}

// progressUpdateMsg relays one engine progress event.
type progressUpdateMsg tasks.ProgressUpdate

// progressDoneMsg signals the progress channel closed.
type progressDoneMsg struct{}

// toggledMsg carries the server-confirmed interaction state.
type toggledMsg struct {
	state models.InteractionState
	err   error
}

// ratedMsg carries the outcome of a rating submission.
type ratedMsg struct {
	err error
}

// successExpiredMsg hides the transient rating confirmation.
type successExpiredMsg struct{}

// removedMsg carries the outcome of a collection removal.
type removedMsg struct {
	collection models.CollectionType
	tmdbID     string
	err        error
}
