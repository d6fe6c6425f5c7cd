package store

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	return r.insert(ctx, tableAnswerEvents,
		[]string{"session_id", "mode", "question_id", "category", "difficulty", "selected", "correct_answer", "correct", "time_ms"},
		[]any{data.SessionID, data.Mode, data.QuestionID, data.Category, data.Difficulty, data.Selected, data.CorrectAnswer, data.Correct, data.TimeMs},
	)
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error) {
	s := selectEvents(tableAnswerEvents, opts,
		"sequence", "timestamp", "session_id", "mode", "question_id", "category",
		"difficulty", "selected", "correct_answer", "correct", "time_ms")

	var records []AnswerEventRecord
	err := queryRows(ctx, r.db, s, func(rows *sql.Rows) error {
		var e AnswerEventRecord
		if err := rows.Scan(&e.Sequence, &e.Timestamp, &e.SessionID, &e.Mode, &e.QuestionID, &e.Category,
			&e.Difficulty, &e.Selected, &e.CorrectAnswer, &e.Correct, &e.TimeMs); err != nil {
			return err
		}
		records = append(records, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) QuestionStats(ctx context.Context, questionIDs []string) (map[string]QuestionStat, error) {
	stats := make(map[string]QuestionStat)
	if len(questionIDs) == 0 {
		return stats, nil
	}

	ids := make([]any, len(questionIDs))
	for i, id := range questionIDs {
		ids[i] = id
	}
	s := builder.Select(
		"question_id",
		entsql.As(entsql.Count("*"), "attempts"),
		entsql.As(entsql.Sum("correct"), "correct"),
		entsql.As(entsql.Avg("time_ms"), "avg_time_ms"),
	).
		From(entsql.Table(tableAnswerEvents)).
		Where(entsql.In("question_id", ids...)).
		GroupBy("question_id")

	err := queryRows(ctx, r.db, s, func(rows *sql.Rows) error {
		var st QuestionStat
		if err := rows.Scan(&st.QuestionID, &st.Attempts, &st.Correct, &st.AvgTimeMs); err != nil {
			return err
		}
		stats[st.QuestionID] = st
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query question stats: %w", err)
	}
	return stats, nil
}
