package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/chainworks/molecules/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id         TEXT PRIMARY KEY,
		label      TEXT,
		input_file TEXT,
		set_count  INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

	CREATE TABLE IF NOT EXISTS results (
		run_id TEXT NOT NULL REFERENCES runs(id),
		seq    INTEGER NOT NULL,
		chains TEXT NOT NULL,
		area   INTEGER NOT NULL,
		PRIMARY KEY (run_id, seq)
	);
	CREATE INDEX IF NOT EXISTS idx_results_area ON results(area);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) SaveRun(ctx context.Context, p SaveParams) (*model.Run, error) {
	if len(p.Sets) != len(p.Areas) {
		return nil, fmt.Errorf("save run: %d sets but %d areas", len(p.Sets), len(p.Areas))
	}

	now := time.Now().UTC()
	id := s.newID()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var label, input *string
	if p.Label != "" {
		label = &p.Label
	}
	if p.InputFile != "" {
		input = &p.InputFile
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, label, input_file, set_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, label, input, len(p.Sets), now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	run := &model.Run{
		ID:        id,
		Label:     p.Label,
		InputFile: p.InputFile,
		SetCount:  len(p.Sets),
		CreatedAt: now,
	}
	for i, set := range p.Sets {
		chains, _ := json.Marshal(set.Strings())
		_, err = tx.ExecContext(ctx,
			`INSERT INTO results (run_id, seq, chains, area) VALUES (?, ?, ?, ?)`,
			id, i, string(chains), p.Areas[i])
		if err != nil {
			return nil, fmt.Errorf("insert result: %w", err)
		}
		run.Results = append(run.Results, model.Result{Seq: i, Chains: set.Strings(), Area: p.Areas[i]})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return run, nil
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*model.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, label, input_file, set_count, created_at FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("run not found: %s", id)
		}
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, chains, area FROM results WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r model.Result
		var chainsJSON string
		if err := rows.Scan(&r.Seq, &chainsJSON, &r.Area); err != nil {
			return nil, err
		}
		json.Unmarshal([]byte(chainsJSON), &r.Chains)
		run.Results = append(run.Results, r)
	}

	return &run, rows.Err()
}

func (s *SQLiteStore) ListRuns(ctx context.Context, p ListParams) ([]model.Run, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, label, input_file, set_count, created_at
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner) (model.Run, error) {
	var run model.Run
	var label, input sql.NullString
	var createdAt string

	err := row.Scan(&run.ID, &label, &input, &run.SetCount, &createdAt)
	if err != nil {
		return run, err
	}

	run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if label.Valid {
		run.Label = label.String
	}
	if input.Valid {
		run.InputFile = input.String
	}

	return run, nil
}
