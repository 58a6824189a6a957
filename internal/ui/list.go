package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/tasks"
)

var (
	_ list.Item = titleItem{}
	_ list.Item = resultItem{}
	_ list.Item = collectionItem{}
)

// titleItem wraps [models.Title] to implement [list.Item].
type titleItem struct {
	title models.Title
}

func (i titleItem) FilterValue() string { return i.title.Title }
func (i titleItem) Title() string       { return i.title.Title }
func (i titleItem) Description() string {
	desc := fmt.Sprintf("%.1f", i.title.VoteAverage)
	if i.title.Year() != "" {
		desc = fmt.Sprintf("%s • %s", i.title.Year(), desc)
	}
	return desc
}

// resultItem wraps [models.SearchResult] to implement [list.Item].
type resultItem struct {
	result models.SearchResult
}

func (i resultItem) FilterValue() string { return i.result.DisplayTitle() }
func (i resultItem) Title() string       { return i.result.DisplayTitle() }
func (i resultItem) Description() string {
	return fmt.Sprintf("%s • %.1f", i.result.Category(), i.result.VoteAverage)
}

// collectionItem wraps [tasks.CollectionItem] to implement [list.Item].
type collectionItem struct {
	item tasks.CollectionItem
}

func (i collectionItem) FilterValue() string { return i.Title() }

func (i collectionItem) Title() string {
	if i.item.Title != nil {
		return i.item.Title.Title
	}
	return i.item.Entry.TmdbID
}

func (i collectionItem) Description() string {
	if i.item.Err != nil {
		return fmt.Sprintf("%s • unavailable", i.item.Entry.MediaType)
	}
	if i.item.Title != nil && i.item.Title.Year() != "" {
		return fmt.Sprintf("%s • %s", i.item.Entry.MediaType, i.item.Title.Year())
	}
	return string(i.item.Entry.MediaType)
}
