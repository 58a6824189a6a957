package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/cinevault/cinevault/internal/models"
)

// SessionRepository persists the single session row (id = 1).
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new [SessionRepository] with the given database connection
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Save replaces the persisted session wholesale.
func (r *SessionRepository) Save(session *models.Session) error {
	if session == nil || session.User == nil || session.Token == "" {
		return fmt.Errorf("session must carry a user and a token")
	}

	now := time.Now()
	query := `
		INSERT INTO sessions (id, user_id, email, name, token, created_at, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id,
			email = excluded.email,
			name = excluded.name,
			token = excluded.token,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.Exec(query, session.User.ID, session.User.Email, session.User.Name, session.Token, now, now); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load reads the persisted session. Returns (nil, nil) when no session is stored.
func (r *SessionRepository) Load() (*models.Session, error) {
	query := `SELECT user_id, email, name, token FROM sessions WHERE id = 1`

	var (
		userID string
		email  string
		name   string
		token  string
	)

	err := r.db.QueryRow(query).Scan(&userID, &email, &name, &token)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	return &models.Session{
		User:       &models.User{ID: userID, Email: email, Name: name},
		Token:      token,
		IsLoggedIn: true,
	}, nil
}

// Clear deletes the persisted session. Clearing an empty table is not an error.
func (r *SessionRepository) Clear() error {
	if _, err := r.db.Exec(`DELETE FROM sessions WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
