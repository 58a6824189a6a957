// package formatter provides functions to export collection data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/shared"
)

// CollectionExport is one named collection resolved to display records.
type CollectionExport struct {
	Collection models.CollectionType `json:"collection"`
	User       *models.User          `json:"user,omitempty"`
	Titles     []models.Title        `json:"titles"`
}

// ExportToCSV converts a CollectionExport to CSV format with columns: ID, Type, Title, Year, Score, Poster
func ExportToCSV(export *CollectionExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Type", "Title", "Year", "Score", "Poster"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, title := range export.Titles {
		record := []string{
			title.TmdbID,
			string(title.MediaType),
			title.Title,
			title.Year(),
			strconv.FormatFloat(title.VoteAverage, 'f', 1, 64),
			title.PosterPath,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a CollectionExport to Markdown format
func ExportToMarkdown(export *CollectionExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", collectionHeading(export.Collection)))

	if export.User != nil && export.User.Name != "" {
		buf.WriteString(fmt.Sprintf("**Account**: %s\n", export.User.Name))
	}
	buf.WriteString(fmt.Sprintf("**Titles**: %d\n\n", len(export.Titles)))

	buf.WriteString("## Titles\n\n")
	for i, title := range export.Titles {
		yearPart := ""
		if title.Year() != "" {
			yearPart = fmt.Sprintf(" (%s)", title.Year())
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s [%s, %.1f]\n", i+1, title.Title, yearPart, title.MediaType, title.VoteAverage))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a CollectionExport to plain text format
func ExportToText(export *CollectionExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Collection: %s\n", export.Collection))
	if export.User != nil && export.User.Name != "" {
		buf.WriteString(fmt.Sprintf("Account: %s\n", export.User.Name))
	}
	buf.WriteString(fmt.Sprintf("Titles: %d\n\n", len(export.Titles)))

	for i, title := range export.Titles {
		buf.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, title.Title, title.MediaType))
	}

	return buf.Bytes(), nil
}

// ToJSON generates an indented JSON representation of the export.
func ToJSON(export *CollectionExport) ([]byte, error) {
	return shared.MarshalJSON(export, true)
}

// WriteExport writes one collection in the given format.
//
// Defaults to {collection}.{ext} as the filename. Supported formats are
// json, csv, markdown (md), and txt.
func WriteExport(export *CollectionExport, format, filepath string) (string, error) {
	var (
		data []byte
		ext  string
		err  error
	)

	switch format {
	case "csv":
		data, err = ExportToCSV(export)
		ext = "csv"
	case "markdown", "md":
		data, err = ExportToMarkdown(export)
		ext = "md"
	case "txt", "text":
		data, err = ExportToText(export)
		ext = "txt"
	case "json", "":
		data, err = ToJSON(export)
		ext = "json"
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", format, err)
	}

	if filepath == "" {
		filepath = fmt.Sprintf("%s.%s", export.Collection, ext)
	}
	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return filepath, nil
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
