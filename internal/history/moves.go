package history

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"rubik3d/internal/cube"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Face      string
	Turn      int
	Notation  string
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create stores one move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, m cube.Move) (int64, error) {
	tsMs := m.Time.UnixMilli()
	result, err := r.db.Exec(`
		INSERT INTO moves (session_id, move_index, ts_ms, face, turn, notation)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sessionID, moveIndex, tsMs, string(m.Face), int(m.Turn), m.Notation())

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch stores multiple moves in a single transaction.
func (r *MoveRepository) CreateBatch(sessionID string, moves []cube.Move, startIndex int) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, m := range moves {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, ts_ms, face, turn, notation)
				VALUES (?, ?, ?, ?, ?, ?)
			`, sessionID, startIndex+i, m.Time.UnixMilli(), string(m.Face), int(m.Turn), m.Notation())
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, face, turn, notation
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Face, &m.Turn, &m.Notation)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMoves converts MoveRecords to cube.Move slice.
func ToMoves(records []MoveRecord) []cube.Move {
	moves := make([]cube.Move, len(records))
	for i, r := range records {
		moves[i] = cube.Move{
			Face: cube.Face(r.Face),
			Turn: cube.Turn(r.Turn),
			Time: time.UnixMilli(r.TsMs),
		}
	}
	return moves
}

// SessionRecorder streams completed moves into one session. It satisfies
// the engine's recorder interface; a write failure is logged and dropped so
// persistence problems never stall the render loop.
type SessionRecorder struct {
	moves     *MoveRepository
	sessionID string
	nextIndex int
}

// NewSessionRecorder creates a recorder bound to a session.
func NewSessionRecorder(db *DB, sessionID string) *SessionRecorder {
	return &SessionRecorder{
		moves:     NewMoveRepository(db),
		sessionID: sessionID,
	}
}

// RecordMove implements cube.Recorder.
func (r *SessionRecorder) RecordMove(m cube.Move) {
	if _, err := r.moves.Create(r.sessionID, r.nextIndex, m); err != nil {
		log.Printf("history: failed to record move %s: %v", m.Notation(), err)
		return
	}
	r.nextIndex++
}
