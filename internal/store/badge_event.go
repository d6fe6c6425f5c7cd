package store

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendBadgeEvent(ctx context.Context, data BadgeEventData) error {
	return r.insert(ctx, tableBadgeEvents,
		[]string{"badge_type", "rarity", "category", "session_id", "reason"},
		[]any{data.BadgeType, data.Rarity, data.Category, data.SessionID, data.Reason},
	)
}

func (r *eventRepo) QueryBadgeEvents(ctx context.Context, opts QueryOpts) ([]BadgeEventRecord, error) {
	s := selectEvents(tableBadgeEvents, opts,
		"sequence", "timestamp", "badge_type", "rarity", "category", "session_id", "reason")

	var records []BadgeEventRecord
	err := queryRows(ctx, r.db, s, func(rows *sql.Rows) error {
		var (
			e        BadgeEventRecord
			category sql.NullString
		)
		if err := rows.Scan(&e.Sequence, &e.Timestamp, &e.BadgeType, &e.Rarity, &category, &e.SessionID, &e.Reason); err != nil {
			return err
		}
		if category.Valid {
			e.Category = &category.String
		}
		records = append(records, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query badge events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) BadgeCounts(ctx context.Context) (map[string]int, int, error) {
	s := builder.Select("badge_type", entsql.As(entsql.Count("*"), "n")).
		From(entsql.Table(tableBadgeEvents)).
		GroupBy("badge_type")

	byType := make(map[string]int)
	total := 0
	err := queryRows(ctx, r.db, s, func(rows *sql.Rows) error {
		var (
			badgeType string
			n         int
		)
		if err := rows.Scan(&badgeType, &n); err != nil {
			return err
		}
		byType[badgeType] = n
		total += n
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query badge counts: %w", err)
	}
	return byType, total, nil
}
