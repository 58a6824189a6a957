package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	back      key.Binding
	search    key.Binding
	profile   key.Binding
	login     key.Binding
	filter    key.Binding
	nextPage  key.Binding
	prevPage  key.Binding
	watched   key.Binding
	liked     key.Binding
	watchlist key.Binding
	stars     key.Binding
	remove    key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		profile:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
		login:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "login")),
		filter:    key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "filter")),
		nextPage:  key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "next page")),
		prevPage:  key.NewBinding(key.WithKeys("left", "N"), key.WithHelp("←/N", "prev page")),
		watched:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "watched")),
		liked:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "like")),
		watchlist: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "watchlist")),
		stars:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "rate")),
		remove:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.search, k.profile, k.filter},
		{k.watched, k.liked, k.watchlist, k.stars},
		{k.remove, k.quit},
	}
}
