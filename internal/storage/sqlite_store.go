package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/finsim/wealth-simulator/internal/domain"
)

// ErrRunNotFound is returned when a stored run id does not exist.
var ErrRunNotFound = errors.New("simulation run not found")

// Store persists simulation runs in a local SQLite database. The config and
// result payloads are stored as JSON blobs; metadata columns carry what the
// list view needs without decoding them.
type Store struct {
	db *sql.DB
}

// RunSummary is the metadata row for one stored run.
type RunSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	NumPaths  int       `json:"n_simulations"`
	Years     int       `json:"years"`
}

// StoredRun is a fully decoded run.
type StoredRun struct {
	RunSummary
	Config *domain.SimulationConfig `json:"config"`
	Result *domain.SimulationResult `json:"result"`
}

const schema = `
CREATE TABLE IF NOT EXISTS simulation_runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL,
	n_paths     INTEGER NOT NULL,
	years       INTEGER NOT NULL,
	config_json TEXT NOT NULL,
	result_json TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_simulation_runs_created_at ON simulation_runs(created_at);
`

// Open opens (creating if needed) the run store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening run store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing run store schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores a run under the given display name and returns its id.
func (s *Store) SaveRun(ctx context.Context, name string, cfg *domain.SimulationConfig, result *domain.SimulationResult) (int64, error) {
	cfgJSON, err := jsonMarshal(cfg)
	if err != nil {
		return 0, fmt.Errorf("encoding run config: %w", err)
	}
	resultJSON, err := jsonMarshal(result)
	if err != nil {
		return 0, fmt.Errorf("encoding run result: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO simulation_runs (name, created_at, n_paths, years, config_json, result_json)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		name, time.Now().UTC(), result.NumPaths, result.Years, string(cfgJSON), string(resultJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}
	return id, nil
}

// LoadRun fetches and decodes a stored run by id.
func (s *Store) LoadRun(ctx context.Context, id int64) (*StoredRun, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, n_paths, years, config_json, result_json
		 FROM simulation_runs WHERE id = ?`, id)

	var run StoredRun
	var cfgJSON, resultJSON string
	err := row.Scan(&run.ID, &run.Name, &run.CreatedAt, &run.NumPaths, &run.Years, &cfgJSON, &resultJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading run %d: %w", id, err)
	}

	run.Config = &domain.SimulationConfig{}
	if err := jsonUnmarshal([]byte(cfgJSON), run.Config); err != nil {
		return nil, fmt.Errorf("decoding run %d config: %w", id, err)
	}
	run.Result = &domain.SimulationResult{}
	if err := jsonUnmarshal([]byte(resultJSON), run.Result); err != nil {
		return nil, fmt.Errorf("decoding run %d result: %w", id, err)
	}
	return &run, nil
}

// ListRuns returns summaries of all stored runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at, n_paths, years
		 FROM simulation_runs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var summaries []RunSummary
	for rows.Next() {
		var summary RunSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.CreatedAt, &summary.NumPaths, &summary.Years); err != nil {
			return nil, fmt.Errorf("scanning run summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run summaries: %w", err)
	}
	return summaries, nil
}

// DeleteRun removes a stored run by id.
func (s *Store) DeleteRun(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM simulation_runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting run %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting run %d: %w", id, err)
	}
	if affected == 0 {
		return ErrRunNotFound
	}
	return nil
}
