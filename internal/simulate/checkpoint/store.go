// Package checkpoint persists simulator progress to a local SQLite
// database, one row per run id, and can read a saved run back with
// Load. simulate.Run only saves to it: every run gets a fresh run id
// and starts from zero, never from a saved checkpoint.
package checkpoint

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charleschow/uefa-draw-sim/internal/model"
	"github.com/charleschow/uefa-draw-sim/internal/telemetry"

	_ "modernc.org/sqlite"
)

// State is the resumable progress of one simulator run.
type State struct {
	RunID       string
	Competition string
	Year        int
	Iterations  int
	Completed   int
	Retries     int
	Counts      map[model.Game]int
}

// Store is a single-writer SQLite-backed checkpoint table, opened once
// per simulator run.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open creates path's parent directory if needed and prepares the
// checkpoints table.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("checkpoint: create store dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("checkpoint: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	const schema = `CREATE TABLE IF NOT EXISTS checkpoints (
		run_id      TEXT PRIMARY KEY,
		updated_at  TEXT NOT NULL,
		competition TEXT NOT NULL,
		year        INTEGER NOT NULL,
		iterations  INTEGER NOT NULL,
		completed   INTEGER NOT NULL,
		retries     INTEGER NOT NULL,
		counts_json TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("checkpoint: init schema: %w", err)
	}

	telemetry.Infof("checkpoint store ready path=%s", path)
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Save upserts the run's current progress.
func (s *Store) Save(st State) error {
	encoded, err := json.Marshal(encodeCounts(st.Counts))
	if err != nil {
		return fmt.Errorf("checkpoint: encode counts: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec(
		`INSERT INTO checkpoints (run_id, updated_at, competition, year, iterations, completed, retries, counts_json)
		 VALUES (?,?,?,?,?,?,?,?)
		 ON CONFLICT(run_id) DO UPDATE SET
			updated_at=excluded.updated_at,
			iterations=excluded.iterations,
			completed=excluded.completed,
			retries=excluded.retries,
			counts_json=excluded.counts_json`,
		st.RunID, time.Now().UTC().Format(time.RFC3339), st.Competition, st.Year,
		st.Iterations, st.Completed, st.Retries, string(encoded),
	)
	if err != nil {
		return fmt.Errorf("checkpoint: save: %w", err)
	}
	return nil
}

// Load reads a prior run's saved progress, if any.
func (s *Store) Load(runID string) (State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(
		`SELECT competition, year, iterations, completed, retries, counts_json
		 FROM checkpoints WHERE run_id = ?`, runID)

	var st State
	var countsJSON string
	st.RunID = runID
	if err := row.Scan(&st.Competition, &st.Year, &st.Iterations, &st.Completed, &st.Retries, &countsJSON); err != nil {
		if err == sql.ErrNoRows {
			return State{}, false, nil
		}
		return State{}, false, fmt.Errorf("checkpoint: load: %w", err)
	}

	var flat []flatCount
	if err := json.Unmarshal([]byte(countsJSON), &flat); err != nil {
		return State{}, false, fmt.Errorf("checkpoint: decode counts: %w", err)
	}
	st.Counts = decodeCounts(flat)
	return st, true, nil
}

type flatCount struct {
	Home, Away, N int
}

func encodeCounts(counts map[model.Game]int) []flatCount {
	out := make([]flatCount, 0, len(counts))
	for g, n := range counts {
		out = append(out, flatCount{g.Home, g.Away, n})
	}
	return out
}

func decodeCounts(flat []flatCount) map[model.Game]int {
	out := make(map[model.Game]int, len(flat))
	for _, f := range flat {
		out[model.Game{Home: f.Home, Away: f.Away}] = f.N
	}
	return out
}
