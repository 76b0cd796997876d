package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"heating_controller/internal/models"
)

const (
	insertSnapshotSQL = `INSERT INTO heating_snapshots (state, taken_at) VALUES (?, ?)`

	selectLatestSnapshotsSQL = `
		SELECT id, state, taken_at
		FROM heating_snapshots
		ORDER BY id DESC
		LIMIT ?
	`

	maxSnapshotLimit = 500
)

var errInvalidLimit = errors.New("limit must be positive")

// SnapshotSQLite appends one row per recorded controller state.
type SnapshotSQLite struct {
	db *sql.DB
}

func NewSnapshotSQLite(db *sql.DB) *SnapshotSQLite {
	return &SnapshotSQLite{db: db}
}

// Save appends a snapshot. A zero UpdatedAt is replaced with the current time;
// the stored time is always UTC.
func (r *SnapshotSQLite) Save(ctx context.Context, state models.HeatingState) error {
	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = time.Now().UTC()
	} else {
		state.UpdatedAt = state.UpdatedAt.UTC()
	}
	state.ID = 0

	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = r.db.ExecContext(ctx, insertSnapshotSQL, string(b), state.UpdatedAt.Format(sqliteTimeLayout))
	return err
}

// Latest returns up to limit snapshots, newest first. limit is capped at 500.
func (r *SnapshotSQLite) Latest(ctx context.Context, limit int) ([]models.HeatingState, error) {
	if limit <= 0 {
		return nil, errInvalidLimit
	}
	if limit > maxSnapshotLimit {
		limit = maxSnapshotLimit
	}

	rows, err := r.db.QueryContext(ctx, selectLatestSnapshotsSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.HeatingState, 0, limit)
	for rows.Next() {
		var (
			id      int64
			raw     string
			takenAt time.Time
		)
		if err := rows.Scan(&id, &raw, &takenAt); err != nil {
			return nil, err
		}
		var st models.HeatingState
		if err := json.Unmarshal([]byte(raw), &st); err != nil {
			return nil, fmt.Errorf("decode snapshot %d: %w", id, err)
		}
		st.ID = id
		st.UpdatedAt = takenAt.UTC()
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
