package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/cinevault/cinevault/internal/interact"
	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/services"
	"github.com/cinevault/cinevault/internal/session"
	"github.com/cinevault/cinevault/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	HomeView ViewState = iota
	LoginView
	SearchView
	DetailView
	ProfileView
)

// mediaFilters cycles through the client-side category filter states.
var mediaFilters = []string{"all", "movie", "tv"}

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	store   *session.Store
	tracker services.Tracker
	catalog services.Catalog
	logger  *log.Logger

	details     *tasks.DetailEngine
	collections *tasks.CollectionEngine
	searcher    *tasks.SearchEngine

	width  int
	height int

	trendingList list.Model
	homeReady    bool

	emailInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    int
	loginErr      string
	loggingIn     bool

	searchInput textinput.Model
	resultList  list.Model
	searchState tasks.SearchState
	searchErr   error

	detail    *tasks.DetailResult
	toggles   *interact.Controller
	rating    *interact.RatingController
	detailErr error
	prevView  ViewState

	profile      *tasks.CollectionResult
	profileErr   error
	profileBusy  bool
	profileList  list.Model
	activeTab    int
	mediaFilter  string
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate

	err  error
	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, store *session.Store, tracker services.Tracker, catalog services.Catalog, logger *log.Logger) *Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128

	search := textinput.New()
	search.Placeholder = "search titles"
	search.CharLimit = 128

	return &Model{
		ctx:           ctx,
		view:          HomeView,
		store:         store,
		tracker:       tracker,
		catalog:       catalog,
		logger:        logger,
		details:       tasks.NewDetailEngine(catalog, logger),
		collections:   tasks.NewCollectionEngine(tracker, catalog, nil, logger, tasks.CollectionOpts{}),
		searcher:      tasks.NewSearchEngine(catalog, logger),
		emailInput:    email,
		passwordInput: password,
		searchInput:   search,
		mediaFilter:   "all",
		help:          help.New(),
		keys:          newKeyMap(),
	}
}

// SetCollectionEngine replaces the default collection engine, wiring in
// the title cache built at startup.
func (m *Model) SetCollectionEngine(engine *tasks.CollectionEngine) {
	m.collections = engine
}

// Init initializes the TUI by fetching the trending rows.
func (m *Model) Init() tea.Cmd {
	return m.fetchTrending()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.trendingList.Width() == 0 {
			m.trendingList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.resultList.Width() == 0 {
			m.resultList.SetSize(msg.Width-4, msg.Height-10)
		}
		if m.profileList.Width() == 0 {
			m.profileList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case HomeView:
			return m.handleHomeKeys(msg)
		case LoginView:
			return m.handleLoginKeys(msg)
		case SearchView:
			return m.handleSearchKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case ProfileView:
			return m.handleProfileKeys(msg)
		}

	case trendingFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		titles := append(append([]models.Title{}, msg.movies...), msg.shows...)
		items := make([]list.Item, len(titles))
		for i, title := range titles {
			items[i] = titleItem{title: title}
		}
		m.trendingList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.trendingList.Title = "Trending"
		m.trendingList.SetSize(m.width-4, m.height-8)
		m.homeReady = true
		return m, nil

	case loginResultMsg:
		m.loggingIn = false
		if msg.err != nil {
			m.loginErr = "Invalid credentials."
			return m, nil
		}
		if err := m.store.Login(msg.session); err != nil {
			m.loginErr = err.Error()
			return m, nil
		}
		m.loginErr = ""
		m.view = HomeView
		return m, nil

	case searchDoneMsg:
		m.searchErr = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.searchState = msg.state
		items := make([]list.Item, len(msg.state.Results))
		for i, result := range msg.state.Results {
			items[i] = resultItem{result: result}
		}
		m.resultList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.resultList.Title = fmt.Sprintf("Results for %q (page %d/%d)", msg.state.Query, msg.state.Page, msg.state.TotalPages)
		m.resultList.SetSize(m.width-4, m.height-10)
		return m, nil

	case detailLoadedMsg:
		m.detailErr = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.detail = msg.result
		return m, nil

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case progressDoneMsg:
		m.progressChan = nil
		return m, nil

	case profileLoadedMsg:
		m.profileBusy = false
		m.profileErr = msg.err
		if msg.err == nil && msg.result != nil {
			m.profile = msg.result
			m.rebuildProfileList()
		}
		return m, nil

	case toggledMsg:
		// a failed toggle leaves the stored state untouched; just repaint
		return m, nil

	case ratedMsg:
		if msg.err == nil {
			return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
				return successExpiredMsg{}
			})
		}
		return m, nil

	case successExpiredMsg:
		return m, nil

	case removedMsg:
		if msg.err != nil {
			m.profileErr = msg.err
			return m, nil
		}
		m.rebuildProfileList()
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case HomeView:
		return m.renderHome()
	case LoginView:
		return m.renderLogin()
	case SearchView:
		return m.renderSearch()
	case DetailView:
		return m.renderDetail()
	case ProfileView:
		return m.renderProfile()
	default:
		return ""
	}
}

func (m *Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.view = SearchView
		m.searchInput.Focus()
		return m, textinput.Blink
	case "p":
		if !m.store.IsLoggedIn() {
			m.view = LoginView
			m.emailInput.Focus()
			return m, textinput.Blink
		}
		m.view = ProfileView
		return m, m.startProfileLoad()
	case "L":
		if !m.store.IsLoggedIn() {
			m.view = LoginView
			m.emailInput.Focus()
			return m, textinput.Blink
		}
		return m, nil
	case "enter":
		if selected, ok := m.trendingList.SelectedItem().(titleItem); ok {
			m.prevView = HomeView
			return m, m.openDetail(selected.title.MediaType, selected.title.TmdbID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.trendingList, cmd = m.trendingList.Update(msg)
	return m, cmd
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = HomeView
		m.emailInput.Blur()
		m.passwordInput.Blur()
		return m, nil
	case "tab", "shift+tab":
		m.loginFocus = (m.loginFocus + 1) % 2
		if m.loginFocus == 0 {
			m.passwordInput.Blur()
			m.emailInput.Focus()
		} else {
			m.emailInput.Blur()
			m.passwordInput.Focus()
		}
		return m, textinput.Blink
	case "enter":
		if m.loggingIn {
			return m, nil
		}
		email := strings.TrimSpace(m.emailInput.Value())
		password := m.passwordInput.Value()
		if email == "" || password == "" {
			m.loginErr = "Email and password are required."
			return m, nil
		}
		m.loggingIn = true
		m.loginErr = ""
		return m, m.login(email, password)
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchInput.Focused() {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.searchInput.Blur()
			if m.searchState.Query == "" {
				m.view = HomeView
			}
			return m, nil
		case "enter":
			query := strings.TrimSpace(m.searchInput.Value())
			m.searchInput.Blur()
			return m, m.runSearch(func() error {
				return m.searcher.Search(m.ctx, nil, query)
			})
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = HomeView
		return m, nil
	case "/":
		m.searchInput.Focus()
		return m, textinput.Blink
	case "f":
		next := nextFilter(m.searchState.Filter)
		return m, m.runSearch(func() error {
			return m.searcher.SetFilter(m.ctx, nil, next)
		})
	case "right", "n":
		return m, m.runSearch(func() error {
			return m.searcher.NextPage(m.ctx, nil)
		})
	case "left", "N":
		return m, m.runSearch(func() error {
			return m.searcher.PrevPage(m.ctx, nil)
		})
	case "enter":
		if selected, ok := m.resultList.SelectedItem().(resultItem); ok {
			m.prevView = SearchView
			mediaType := models.MediaTypeFromCategory(selected.result.Category())
			return m, m.openDetail(mediaType, fmt.Sprintf("%d", selected.result.ID))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.resultList, cmd = m.resultList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = m.prevView
		m.detailErr = nil
		return m, nil
	case "w":
		return m, m.toggle(models.ActionWatched)
	case "l":
		return m, m.toggle(models.ActionLiked)
	case "b":
		return m, m.toggle(models.ActionWatchlisted)
	case "1", "2", "3", "4", "5":
		if !m.store.IsLoggedIn() || m.rating == nil {
			return m, nil
		}
		star := int(msg.String()[0] - '0')
		if _, ok := m.rating.Click(star); !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return ratedMsg{err: m.rating.Submit(m.ctx)}
		}
	}
	return m, nil
}

func (m *Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = HomeView
		return m, nil
	case "tab":
		m.activeTab = (m.activeTab + 1) % len(models.CollectionTypes)
		m.rebuildProfileList()
		return m, nil
	case "f":
		m.mediaFilter = nextFilter(m.mediaFilter)
		m.rebuildProfileList()
		return m, nil
	case "x":
		if selected, ok := m.profileList.SelectedItem().(collectionItem); ok {
			collection := models.CollectionTypes[m.activeTab]
			return m, m.removeEntry(collection, selected.item.Entry.TmdbID)
		}
		return m, nil
	case "enter":
		if selected, ok := m.profileList.SelectedItem().(collectionItem); ok {
			m.prevView = ProfileView
			return m, m.openDetail(selected.item.Entry.MediaType, selected.item.Entry.TmdbID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.profileList, cmd = m.profileList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case HomeView:
		m.trendingList, cmd = m.trendingList.Update(msg)
	case SearchView:
		m.resultList, cmd = m.resultList.Update(msg)
	case ProfileView:
		m.profileList, cmd = m.profileList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchTrending() tea.Cmd {
	return func() tea.Msg {
		movies, err := m.catalog.Trending(m.ctx, models.MediaMovie, "popular")
		if err != nil {
			return trendingFetchedMsg{err: err}
		}
		shows, err := m.catalog.Trending(m.ctx, models.MediaTV, "popular")
		if err != nil {
			return trendingFetchedMsg{err: err}
		}
		return trendingFetchedMsg{movies: movies, shows: shows}
	}
}

func (m *Model) login(email, password string) tea.Cmd {
	return func() tea.Msg {
		sess, err := m.tracker.Login(m.ctx, email, password)
		return loginResultMsg{session: sess, err: err}
	}
}

func (m *Model) runSearch(run func() error) tea.Cmd {
	return func() tea.Msg {
		err := run()
		return searchDoneMsg{state: m.searcher.State(), err: err}
	}
}

// openDetail builds fresh per-title controllers and starts the fan-out.
func (m *Model) openDetail(mediaType models.MediaType, tmdbID string) tea.Cmd {
	m.view = DetailView
	m.detail = nil
	m.detailErr = nil
	m.toggles = interact.NewController(m.tracker, m.store, m.logger, m.store.UserID(), mediaType, tmdbID, nil)
	m.rating = interact.NewRatingController(m.tracker, m.store, m.logger, m.store.UserID(), mediaType, tmdbID)

	toggles, rating := m.toggles, m.rating
	return func() tea.Msg {
		result, err := m.details.Load(m.ctx, nil, mediaType, tmdbID)
		if err != nil {
			return detailLoadedMsg{err: err}
		}
		toggles.Fetch(m.ctx)
		rating.Fetch(m.ctx)
		return detailLoadedMsg{result: result, state: toggles.State(), rating: rating.Value()}
	}
}

func (m *Model) toggle(action models.Action) tea.Cmd {
	if !m.store.IsLoggedIn() || m.toggles == nil {
		return nil
	}
	return func() tea.Msg {
		state, err := m.toggles.Toggle(m.ctx, action)
		return toggledMsg{state: state, err: err}
	}
}

func (m *Model) startProfileLoad() tea.Cmd {
	m.profileBusy = true
	m.profileErr = nil
	m.progressChan = make(chan tasks.ProgressUpdate, 50)

	return tea.Batch(m.loadProfile(m.progressChan), m.waitForProgress())
}

// loadProfile runs the collection load off the event loop and hands the
// outcome back as a message; the model is only written from Update.
func (m *Model) loadProfile(progress chan tasks.ProgressUpdate) tea.Cmd {
	return func() tea.Msg {
		result, err := m.collections.Load(m.ctx, progress)
		close(progress)
		return profileLoadedMsg{result: result, err: err}
	}
}

func (m *Model) waitForProgress() tea.Cmd {
	progress := m.progressChan
	return func() tea.Msg {
		if progress == nil {
			return progressDoneMsg{}
		}
		update, ok := <-progress
		if !ok {
			return progressDoneMsg{}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) removeEntry(collection models.CollectionType, tmdbID string) tea.Cmd {
	return func() tea.Msg {
		err := m.collections.Remove(m.ctx, nil, collection, tmdbID)
		return removedMsg{collection: collection, tmdbID: tmdbID, err: err}
	}
}

// rebuildProfileList repopulates the visible list from the loaded state,
// the active tab, and the media filter. Never touches the network.
func (m *Model) rebuildProfileList() {
	if m.profile == nil {
		return
	}

	collection := models.CollectionTypes[m.activeTab]
	filtered := tasks.FilterItems(m.profile.Items[collection], m.mediaFilter)

	items := make([]list.Item, len(filtered))
	for i, item := range filtered {
		items[i] = collectionItem{item: item}
	}

	m.profileList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.profileList.Title = fmt.Sprintf("%s (%s)", collectionHeading(collection), m.mediaFilter)
	m.profileList.SetSize(m.width-4, m.height-10)
}

func nextFilter(current string) string {
	for i, f := range mediaFilters {
		if f == current {
			return mediaFilters[(i+1)%len(mediaFilters)]
		}
	}
	return mediaFilters[0]
}

func collectionHeading(c models.CollectionType) string {
	switch c {
	case models.CollectionLiked:
		return "Liked"
	case models.CollectionWatchlisted:
		return "Watchlist"
	default:
		return "Watched"
	}
}

func (m *Model) renderHome() string {
	var header string
	if user := m.store.User(); user != nil {
		header = styles.help.Render(fmt.Sprintf("signed in as %s", user.Name))
	} else {
		header = styles.help.Render("not signed in • press L to log in")
	}

	if !m.homeReady {
		return fmt.Sprintf("%s\n\n%s", styles.title.Render("CineVault"), "Loading trending titles...")
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.search, m.keys.profile, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", header, m.trendingList.View(), helpView)
}

func (m *Model) renderLogin() string {
	title := styles.title.Render("Sign in to CineVault")

	var errLine string
	if m.loginErr != "" {
		errLine = "\n" + styles.err.Render(m.loginErr)
	}

	status := ""
	if m.loggingIn {
		status = "\nSigning in..."
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s%s%s\n\n%s", title, m.emailInput.View(), m.passwordInput.View(), errLine, status, helpView)
}

func (m *Model) renderSearch() string {
	var body string
	switch {
	case m.searchErr != nil:
		body = styles.err.Render(fmt.Sprintf("Search failed: %v", m.searchErr))
	case m.searchState.Query == "":
		body = styles.help.Render("Type a query and press enter.")
	default:
		body = m.resultList.View()
	}

	filterLine := styles.help.Render(fmt.Sprintf("filter: %s", displayFilter(m.searchState.Filter)))

	helpKeys := []key.Binding{m.keys.enter, m.keys.filter, m.keys.nextPage, m.keys.prevPage, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", m.searchInput.View(), filterLine, body, helpView)
}

func displayFilter(filter string) string {
	if filter == "" {
		return "all"
	}
	return filter
}

func (m *Model) renderDetail() string {
	if m.detailErr != nil {
		return styles.err.Render(fmt.Sprintf("Failed to load title: %v\n\nPress esc to go back", m.detailErr))
	}
	if m.detail == nil || m.detail.Detail == nil {
		return "Loading title..."
	}

	detail := m.detail.Detail
	var b strings.Builder

	b.WriteString(styles.title.Render(detail.DisplayTitle()))
	b.WriteString("\n")

	if detail.Tagline != "" {
		b.WriteString(styles.help.Render(detail.Tagline))
		b.WriteString("\n")
	}

	facts := []string{}
	if detail.Date() != "" {
		facts = append(facts, detail.Date())
	}
	if detail.Runtime > 0 {
		facts = append(facts, fmt.Sprintf("%d min", detail.Runtime))
	}
	if detail.VoteAverage > 0 {
		facts = append(facts, fmt.Sprintf("%.1f/10 (%d votes)", detail.VoteAverage, detail.VoteCount))
	}
	if len(facts) > 0 {
		b.WriteString(strings.Join(facts, " • "))
		b.WriteString("\n")
	}

	if len(detail.Genres) > 0 {
		names := make([]string, len(detail.Genres))
		for i, g := range detail.Genres {
			names[i] = g.Name
		}
		b.WriteString(styles.help.Render(strings.Join(names, ", ")))
		b.WriteString("\n")
	}

	if detail.Overview != "" {
		b.WriteString("\n")
		b.WriteString(detail.Overview)
		b.WriteString("\n")
	}

	if m.detail.Credits != nil {
		if director := m.detail.Credits.Director(); director != "" {
			b.WriteString(fmt.Sprintf("\nDirector: %s\n", director))
		}
		if len(m.detail.Credits.Cast) > 0 {
			names := []string{}
			for i, member := range m.detail.Credits.Cast {
				if i == 5 {
					break
				}
				names = append(names, member.Name)
			}
			b.WriteString(fmt.Sprintf("Cast: %s\n", strings.Join(names, ", ")))
		}
	}

	if m.detail.Videos != nil {
		if trailer := m.detail.Videos.Trailer(); trailer != nil {
			b.WriteString(fmt.Sprintf("Trailer: https://www.youtube.com/watch?v=%s\n", trailer.Key))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderInteractions())

	helpKeys := []key.Binding{m.keys.watched, m.keys.liked, m.keys.watchlist, m.keys.stars, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	b.WriteString("\n")
	b.WriteString(helpView)

	return b.String()
}

func (m *Model) renderInteractions() string {
	if !m.store.IsLoggedIn() {
		return styles.help.Render("Sign in to track this title.") + "\n"
	}

	var b strings.Builder
	state := m.toggles.State()

	mark := func(on bool) string {
		if on {
			return styles.ok.Render("✓")
		}
		return "·"
	}
	b.WriteString(fmt.Sprintf("[%s] watched  [%s] liked  [%s] watchlist\n", mark(state.Watched), mark(state.Liked), mark(state.Watchlisted)))

	b.WriteString(fmt.Sprintf("Rating: %s", RenderStars(m.rating.Value(), m.rating.Hovered())))
	if m.rating.Submitting() {
		b.WriteString("  saving...")
	} else if m.rating.SuccessVisible() {
		b.WriteString("  " + styles.ok.Render("saved"))
	}
	if msg := m.rating.Error(); msg != "" {
		b.WriteString("  " + styles.err.Render(msg))
	}
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderProfile() string {
	if m.profileErr != nil {
		return styles.err.Render(fmt.Sprintf("Failed to load profile: %v\n\nPress esc to go back", m.profileErr))
	}
	if m.profileBusy {
		return fmt.Sprintf("%s\n\n%s", styles.title.Render("Profile"), m.progress.Message)
	}
	if m.profile == nil {
		return "Loading profile..."
	}

	var header string
	if m.profile.User != nil {
		header = styles.title.Render(m.profile.User.Name)
	} else {
		header = styles.title.Render("Profile")
	}

	tabs := make([]string, len(models.CollectionTypes))
	for i, collection := range models.CollectionTypes {
		label := fmt.Sprintf("%s (%d)", collectionHeading(collection), len(m.profile.Items[collection]))
		if i == m.activeTab {
			label = styles.ok.Render(label)
		}
		tabs[i] = label
	}

	helpKeys := []key.Binding{m.keys.filter, m.keys.remove, m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, strings.Join(tabs, "  "), m.profileList.View(), helpView)
}
