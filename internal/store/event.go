package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// builder renders SQL for the SQLite dialect.
var builder = entsql.Dialect(dialect.SQLite)

// sequenceCounter hands out one increasing sequence across all event tables
// so events of different kinds can be ordered against each other. It lives
// outside the migrated tables because the increment must be atomic in the
// database; the mutex serializes callers within the process.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next returns the next sequence number and advances the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo with ent's SQL builder over database/sql.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

// insert appends a row to table with a fresh sequence number and timestamp.
func (r *eventRepo) insert(ctx context.Context, table string, columns []string, values []any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder.Insert(table).
		Columns(append([]string{"sequence", "timestamp"}, columns...)...).
		Values(append([]any{seqNum, now()}, values...)...).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// selectEvents builds a newest-first query over table honoring opts.
func selectEvents(table string, opts QueryOpts, columns ...string) *entsql.Selector {
	s := builder.Select(columns...).From(entsql.Table(table))
	if opts.After > 0 {
		s.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		s.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		s.Where(entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		s.Where(entsql.LTE("timestamp", opts.To.UTC()))
	}
	s.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		s.Limit(opts.Limit)
	}
	return s
}

// queryRows runs s and calls scan once per row.
func queryRows(ctx context.Context, db *sql.DB, s *entsql.Selector, scan func(*sql.Rows) error) error {
	query, args := s.Query()
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
