package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents one play session in the database.
type Session struct {
	SessionID    string
	StartedAt    time.Time
	EndedAt      *time.Time
	DurationMs   *int64
	ScrambleText *string
	Notes        *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(scramble, notes string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr, notesPtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, scramble_text, notes)
		VALUES (?, ?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), scramblePtr, notesPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// SetScramble stores the scramble applied at the start of a session.
func (r *SessionRepository) SetScramble(sessionID, scramble string) error {
	_, err := r.db.Exec(
		"UPDATE sessions SET scramble_text = ? WHERE session_id = ?", scramble, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to set scramble: %w", err)
	}
	return nil
}

// End marks a session as complete.
func (r *SessionRepository) End(sessionID string) error {
	endedAt := time.Now().UTC()

	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM sessions WHERE session_id = ?", sessionID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to get session start time: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}

	durationMs := endedAt.Sub(startedAt).Milliseconds()

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), durationMs, sessionID)

	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID. Returns nil when the session does not exist.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString

	err := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, duration_ms, scramble_text, notes
		FROM sessions
		WHERE session_id = ?
	`, sessionID).Scan(
		&s.SessionID, &startedAtStr, &endedAtStr,
		&s.DurationMs, &s.ScrambleText, &s.Notes,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	s.StartedAt, err = time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start time: %w", err)
	}
	if endedAtStr.Valid {
		t, err := time.Parse(time.RFC3339, endedAtStr.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end time: %w", err)
		}
		s.EndedAt = &t
	}

	return &s, nil
}

// List retrieves the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, duration_ms, scramble_text, notes
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var startedAtStr string
		var endedAtStr sql.NullString
		err := rows.Scan(&s.SessionID, &startedAtStr, &endedAtStr, &s.DurationMs, &s.ScrambleText, &s.Notes)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.StartedAt, err = time.Parse(time.RFC3339, startedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start time: %w", err)
		}
		if endedAtStr.Valid {
			t, err := time.Parse(time.RFC3339, endedAtStr.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse end time: %w", err)
			}
			s.EndedAt = &t
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// Delete removes a session and its moves.
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
