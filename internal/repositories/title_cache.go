package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cinevault/cinevault/internal/models"
)

// TitleCacheRepository caches resolved display metadata for titles
// referenced by collection id-lists.
//
// Duplicate inserts are silently ignored (UNIQUE constraint on
// media_type + tmdb_id); the profile page consults the cache before
// asking the metadata proxy again.
type TitleCacheRepository struct {
	db *sql.DB
}

// NewTitleCacheRepository creates a new [TitleCacheRepository] with the given database connection
func NewTitleCacheRepository(db *sql.DB) *TitleCacheRepository {
	return &TitleCacheRepository{db: db}
}

// Put caches one resolved title. Returns nil when the title is already cached.
func (r *TitleCacheRepository) Put(title models.Title) error {
	if title.TmdbID == "" || !title.MediaType.Valid() {
		return fmt.Errorf("title must carry a tmdb id and media type")
	}

	query := `
		INSERT INTO title_cache (media_type, tmdb_id, title, poster_path, release_date, vote_average, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, string(title.MediaType), title.TmdbID, title.Title, title.PosterPath, title.ReleaseDate, title.VoteAverage, time.Now())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil
		}
		return fmt.Errorf("failed to cache title: %w", err)
	}

	return nil
}

// Get looks up one cached title. Returns (nil, nil) on a cache miss.
func (r *TitleCacheRepository) Get(mediaType models.MediaType, tmdbID string) (*models.Title, error) {
	query := `
		SELECT title, poster_path, release_date, vote_average
		FROM title_cache
		WHERE media_type = ? AND tmdb_id = ?
	`

	var (
		name        string
		posterPath  string
		releaseDate string
		voteAverage float64
	)

	err := r.db.QueryRow(query, string(mediaType), tmdbID).Scan(&name, &posterPath, &releaseDate, &voteAverage)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query title cache: %w", err)
	}

	return &models.Title{
		TmdbID:      tmdbID,
		MediaType:   mediaType,
		Title:       name,
		PosterPath:  posterPath,
		ReleaseDate: releaseDate,
		VoteAverage: voteAverage,
	}, nil
}
