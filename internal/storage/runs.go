package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunRecord is one persisted simulation run.
type RunRecord struct {
	ID         int64
	RunID      string // uuid; generated by SaveRun when empty
	GameID     string
	Strategy   string
	Ticks      int
	Bounces    int
	FinalAngle float64
	Speed      float64
	SpeedDrift float64
	CreatedAt  time.Time
}

// SaveRun records a run and returns its run ID.
func (s *Store) SaveRun(r RunRecord) (string, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, game_id, strategy, ticks, bounces, final_angle, speed, speed_drift)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID,
		r.GameID,
		r.Strategy,
		r.Ticks,
		r.Bounces,
		r.FinalAngle,
		r.Speed,
		r.SpeedDrift,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.RunID, nil
}

// RecentRuns retrieves the latest runs for a demo, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, strategy, ticks, bounces,
		        final_angle, speed, speed_drift, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.RunID,
			&r.GameID,
			&r.Strategy,
			&r.Ticks,
			&r.Bounces,
			&r.FinalAngle,
			&r.Speed,
			&r.SpeedDrift,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
