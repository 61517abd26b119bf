package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string `json:"db_path"`
	DBSizeBytes int64  `json:"db_size_bytes"`
	Runs        int    `json:"runs"`
	ChainSets   int    `json:"chain_sets"`
	Assembled   int    `json:"assembled"`
	Unsolvable  int    `json:"unsolvable"`
	MaxArea     int    `json:"max_area"`
}

// Stats returns database statistics. Unsolvable counts results with area 0
// (no valid molecule existed for the set).
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&st.Runs)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM results`).Scan(&st.ChainSets)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM results WHERE area > 0`).Scan(&st.Assembled)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM results WHERE area = 0`).Scan(&st.Unsolvable)
	s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(area), 0) FROM results`).Scan(&st.MaxArea)

	return st, nil
}
