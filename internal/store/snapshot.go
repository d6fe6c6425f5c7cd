package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// snapshotRepo implements SnapshotRepo over the snapshots table.
type snapshotRepo struct {
	db *sql.DB
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	ts := snap.Timestamp
	if ts.IsZero() {
		ts = now()
	}

	query, args := builder.Insert(tableSnapshots).
		Columns("sequence", "timestamp", "data").
		Values(snap.Sequence, ts.UTC(), string(data)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	query, args := builder.Select("id", "sequence", "timestamp", "data").
		From(entsql.Table(tableSnapshots)).
		OrderBy(entsql.Desc("timestamp"), entsql.Desc("id")).
		Limit(1).
		Query()

	var (
		s   Snapshot
		raw []byte
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Sequence, &s.Timestamp, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	if err := json.Unmarshal(raw, &s.Data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &s, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Find the newest snapshot that falls outside the keep window.
	query, args := builder.Select("id").
		From(entsql.Table(tableSnapshots)).
		OrderBy(entsql.Desc("timestamp"), entsql.Desc("id")).
		Limit(1).
		Offset(keep).
		Query()

	var threshold int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&threshold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil // fewer than keep snapshots exist
	}
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}

	// Keep the rows ranked above the threshold, delete everything else.
	keepQuery, keepArgs := builder.Select("id").
		From(entsql.Table(tableSnapshots)).
		OrderBy(entsql.Desc("timestamp"), entsql.Desc("id")).
		Limit(keep).
		Query()
	rows, err := r.db.QueryContext(ctx, keepQuery, keepArgs...)
	if err != nil {
		return fmt.Errorf("query snapshots to keep: %w", err)
	}
	var kept []any
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scan snapshot id: %w", err)
		}
		kept = append(kept, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate snapshots: %w", err)
	}

	del := builder.Delete(tableSnapshots)
	if len(kept) > 0 {
		del = del.Where(entsql.NotIn("id", kept...))
	}
	delQuery, delArgs := del.Query()
	if _, err := r.db.ExecContext(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
