package store

import (
	"context"
	"database/sql"
	"fmt"
)

func (r *eventRepo) AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error {
	return r.insert(ctx, tableAssessmentEvents,
		[]string{"session_id", "tier", "action", "questions", "correct_answers", "percentage", "passed", "points", "skill_level", "duration_secs"},
		[]any{data.SessionID, data.Tier, data.Action, data.Questions, data.CorrectAnswers, data.Percentage, data.Passed, data.Points, data.SkillLevel, data.DurationSecs},
	)
}

func (r *eventRepo) QueryAssessmentEvents(ctx context.Context, opts QueryOpts) ([]AssessmentEventRecord, error) {
	s := selectEvents(tableAssessmentEvents, opts,
		"sequence", "timestamp", "session_id", "tier", "action", "questions",
		"correct_answers", "percentage", "passed", "points", "skill_level", "duration_secs")

	var records []AssessmentEventRecord
	err := queryRows(ctx, r.db, s, func(rows *sql.Rows) error {
		var e AssessmentEventRecord
		if err := rows.Scan(&e.Sequence, &e.Timestamp, &e.SessionID, &e.Tier, &e.Action, &e.Questions,
			&e.CorrectAnswers, &e.Percentage, &e.Passed, &e.Points, &e.SkillLevel, &e.DurationSecs); err != nil {
			return err
		}
		records = append(records, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query assessment events: %w", err)
	}
	return records, nil
}

// CompletedAssessments returns completion events, newest first.
func CompletedAssessments(ctx context.Context, repo EventRepo, limit int) ([]AssessmentEventRecord, error) {
	all, err := repo.QueryAssessmentEvents(ctx, QueryOpts{})
	if err != nil {
		return nil, err
	}
	var out []AssessmentEventRecord
	for _, e := range all {
		if e.Action != ActionComplete {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
