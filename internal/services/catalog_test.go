package services

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/shared"
	tu "github.com/cinevault/cinevault/internal/testing"
)

func newCatalogFixture(t *testing.T) (*tu.StubBackend, *CatalogClient) {
	t.Helper()
	stub := tu.NewStubBackend()
	server := httptest.NewServer(stub.Handler())
	t.Cleanup(server.Close)
	return stub, NewCatalogClient(server.URL, nil, 0, 0)
}

func TestCatalogClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Details", func(t *testing.T) {
		t.Run("returns the primary record", func(t *testing.T) {
			stub, client := newCatalogFixture(t)
			stub.Details["movie/550"] = models.TitleDetail{
				ID:          550,
				Title:       "Fight Club",
				ReleaseDate: "1999-10-15",
				VoteAverage: 8.4,
			}

			detail, err := client.Details(ctx, models.MediaMovie, "550")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if detail.DisplayTitle() != "Fight Club" {
				t.Errorf("expected Fight Club, got %q", detail.DisplayTitle())
			}
			if detail.Date() != "1999-10-15" {
				t.Errorf("expected release date, got %q", detail.Date())
			}
		})

		t.Run("surfaces a missing title as an API error", func(t *testing.T) {
			_, client := newCatalogFixture(t)

			_, err := client.Details(ctx, models.MediaMovie, "999999")
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})
	})

	t.Run("sub-resources decode for a known title", func(t *testing.T) {
		stub, client := newCatalogFixture(t)
		stub.Details["tv/1399"] = models.TitleDetail{ID: 1399, Name: "Game of Thrones"}

		if _, err := client.Credits(ctx, models.MediaTV, "1399"); err != nil {
			t.Errorf("credits: expected no error, got %v", err)
		}
		if _, err := client.Keywords(ctx, models.MediaTV, "1399"); err != nil {
			t.Errorf("keywords: expected no error, got %v", err)
		}
		if _, err := client.WatchProviders(ctx, models.MediaTV, "1399"); err != nil {
			t.Errorf("providers: expected no error, got %v", err)
		}
		if videos, err := client.Videos(ctx, models.MediaTV, "1399"); err != nil {
			t.Errorf("videos: expected no error, got %v", err)
		} else if videos.Trailer() != nil {
			t.Error("expected no trailer in empty video list")
		}
		if _, err := client.Images(ctx, models.MediaTV, "1399"); err != nil {
			t.Errorf("images: expected no error, got %v", err)
		}
	})

	t.Run("Search", func(t *testing.T) {
		t.Run("passes the page inside the result parameter", func(t *testing.T) {
			stub, client := newCatalogFixture(t)
			stub.SearchPages[2] = models.SearchPage{
				Results: []models.SearchResult{
					{ID: 550, MediaType: "movie", Title: "Fight Club"},
				},
				Page:         2,
				TotalPages:   3,
				TotalResults: 41,
			}

			page, err := client.Search(ctx, "fight club", 2, "")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if page.Page != 2 || page.TotalPages != 3 {
				t.Errorf("expected page 2 of 3, got %d of %d", page.Page, page.TotalPages)
			}
			if len(page.Results) != 1 || page.Results[0].DisplayTitle() != "Fight Club" {
				t.Errorf("unexpected results: %+v", page.Results)
			}
		})

		t.Run("clamps page to one", func(t *testing.T) {
			stub, client := newCatalogFixture(t)
			stub.SearchPages[1] = models.SearchPage{Page: 1, TotalPages: 1}

			page, err := client.Search(ctx, "anything", 0, "")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if page.Page != 1 {
				t.Errorf("expected page 1, got %d", page.Page)
			}
		})

		t.Run("the all filter travels as an empty value", func(t *testing.T) {
			stub, client := newCatalogFixture(t)
			stub.SearchPages[1] = models.SearchPage{Page: 1, TotalPages: 1}

			if _, err := client.Search(ctx, "fight club", 1, "all"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if stub.LastSearchFilter != "" {
				t.Errorf("expected empty filter on the wire, got %q", stub.LastSearchFilter)
			}

			if _, err := client.Search(ctx, "fight club", 1, "movie"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if stub.LastSearchFilter != "movie" {
				t.Errorf("expected movie filter on the wire, got %q", stub.LastSearchFilter)
			}
		})

		t.Run("normalizes a missing total page count", func(t *testing.T) {
			stub, client := newCatalogFixture(t)
			stub.SearchPages[1] = models.SearchPage{Page: 1}

			page, err := client.Search(ctx, "anything", 1, "")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if page.TotalPages != 1 {
				t.Errorf("expected total pages normalized to 1, got %d", page.TotalPages)
			}
		})
	})

	t.Run("Trending returns display records", func(t *testing.T) {
		_, client := newCatalogFixture(t)

		titles, err := client.Trending(ctx, models.MediaMovie, "popular")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if titles == nil {
			t.Error("expected an empty slice, not nil")
		}
	})
}

func TestTitleFromResult(t *testing.T) {
	t.Run("movie uses the release date", func(t *testing.T) {
		title := titleFromResult(models.SearchResult{
			ID:          550,
			Title:       "Fight Club",
			ReleaseDate: "1999-10-15",
		}, models.MediaMovie)

		if title.TmdbID != "550" {
			t.Errorf("expected id 550, got %q", title.TmdbID)
		}
		if title.ReleaseDate != "1999-10-15" {
			t.Errorf("expected release date, got %q", title.ReleaseDate)
		}
		if title.Year() != "1999" {
			t.Errorf("expected year 1999, got %q", title.Year())
		}
	})

	t.Run("tv uses the first air date", func(t *testing.T) {
		title := titleFromResult(models.SearchResult{
			ID:           1399,
			Name:         "Game of Thrones",
			FirstAirDate: "2011-04-17",
		}, models.MediaTV)

		if title.Title != "Game of Thrones" {
			t.Errorf("expected name fallback, got %q", title.Title)
		}
		if title.ReleaseDate != "2011-04-17" {
			t.Errorf("expected first air date, got %q", title.ReleaseDate)
		}
	})

	t.Run("falls back to whichever date is set", func(t *testing.T) {
		title := titleFromResult(models.SearchResult{
			ID:           7,
			Title:        "Mislabeled",
			FirstAirDate: "2020-01-01",
		}, models.MediaMovie)

		if title.ReleaseDate != "2020-01-01" {
			t.Errorf("expected fallback date, got %q", title.ReleaseDate)
		}
	})
}
