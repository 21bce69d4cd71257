package history

import (
	"path/filepath"
	"testing"
	"time"

	"rubik3d/internal/cube"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)
	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("expected schema version %d, got %d", len(migrations), version)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	db.Close()
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create("R U R' U'", "test run")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("expected a non-empty session id")
	}

	s, err := sessions.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s == nil {
		t.Fatal("session not found")
	}
	if s.ScrambleText == nil || *s.ScrambleText != "R U R' U'" {
		t.Errorf("unexpected scramble %v", s.ScrambleText)
	}
	if s.EndedAt != nil {
		t.Error("new session should not be ended")
	}

	if err := sessions.End(id); err != nil {
		t.Fatalf("End: %v", err)
	}
	s, err = sessions.Get(id)
	if err != nil {
		t.Fatalf("Get after End: %v", err)
	}
	if s.EndedAt == nil || s.DurationMs == nil {
		t.Error("ended session should have an end time and duration")
	}
}

func TestSessionGetMissing(t *testing.T) {
	db := openTestDB(t)
	s, err := NewSessionRepository(db).Get("no-such-id")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil for a missing session, got %+v", s)
	}
}

func TestSessionList(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	for range 3 {
		if _, err := sessions.Create("", ""); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list, err := sessions.List(2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 sessions, got %d", len(list))
	}
}

func TestMoveRoundTrip(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create("", "")
	if err != nil {
		t.Fatalf("Create session: %v", err)
	}

	in := []cube.Move{
		{Face: cube.FaceR, Turn: cube.CW, Time: time.UnixMilli(1000)},
		{Face: cube.FaceU, Turn: cube.CCW, Time: time.UnixMilli(2000)},
		{Face: cube.FaceF, Turn: cube.Double, Time: time.UnixMilli(3000)},
	}
	if err := moves.CreateBatch(id, in, 0); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	records, err := moves.GetBySession(id)
	if err != nil {
		t.Fatalf("GetBySession: %v", err)
	}
	out := ToMoves(records)
	if cube.FormatMoves(out) != "R U' F2" {
		t.Errorf("round trip mismatch: %q", cube.FormatMoves(out))
	}
	for i, m := range out {
		if !m.Time.Equal(in[i].Time) {
			t.Errorf("move %d: expected time %v, got %v", i, in[i].Time, m.Time)
		}
	}

	count, err := moves.Count(id)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 moves, got %d", count)
	}
}

func TestSessionRecorderStreamsMoves(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create("", "")
	if err != nil {
		t.Fatalf("Create session: %v", err)
	}

	rec := NewSessionRecorder(db, id)
	rec.RecordMove(cube.Move{Face: cube.FaceR, Turn: cube.CW, Time: time.Now()})
	rec.RecordMove(cube.Move{Face: cube.FaceL, Turn: cube.CCW, Time: time.Now()})

	records, err := NewMoveRepository(db).GetBySession(id)
	if err != nil {
		t.Fatalf("GetBySession: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 recorded moves, got %d", len(records))
	}
	if records[0].MoveIndex != 0 || records[1].MoveIndex != 1 {
		t.Errorf("indices should be sequential: %d, %d", records[0].MoveIndex, records[1].MoveIndex)
	}
	if records[1].Notation != "L'" {
		t.Errorf("expected notation L', got %q", records[1].Notation)
	}
}

func TestDeleteSessionCascades(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create("", "")
	if err != nil {
		t.Fatalf("Create session: %v", err)
	}
	if _, err := moves.Create(id, 0, cube.Move{Face: cube.FaceR, Turn: cube.CW, Time: time.Now()}); err != nil {
		t.Fatalf("Create move: %v", err)
	}

	if err := sessions.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	count, err := moves.Count(id)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("moves should cascade on delete, %d left", count)
	}
}
