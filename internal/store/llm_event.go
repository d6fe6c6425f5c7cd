package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var llmColumns = []string{
	"id", "sequence", "timestamp", "provider", "model", "purpose", "input_tokens", "output_tokens",
	"latency_ms", "success", "error_message", "request_body", "response_body",
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	return r.insert(ctx, tableLLMEvents,
		[]string{"provider", "model", "purpose", "input_tokens", "output_tokens", "latency_ms",
			"success", "error_message", "request_body", "response_body"},
		[]any{data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens, data.LatencyMs,
			data.Success, data.ErrorMessage, data.RequestBody, data.ResponseBody},
	)
}

func scanLLMEvent(row interface{ Scan(...any) error }) (LLMEventRecord, error) {
	var e LLMEventRecord
	err := row.Scan(&e.ID, &e.Sequence, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success, &e.ErrorMessage,
		&e.RequestBody, &e.ResponseBody)
	return e, err
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	s := selectEvents(tableLLMEvents, opts, llmColumns...)

	var records []LLMEventRecord
	err := queryRows(ctx, r.db, s, func(rows *sql.Rows) error {
		e, err := scanLLMEvent(rows)
		if err != nil {
			return err
		}
		records = append(records, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	query, args := builder.Select(llmColumns...).
		From(entsql.Table(tableLLMEvents)).
		Where(entsql.EQ("id", id)).
		Query()

	e, err := scanLLMEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	return &e, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	s := builder.Select(
		"purpose",
		entsql.As(entsql.Count("*"), "calls"),
		entsql.As(entsql.Sum("input_tokens"), "input_tokens"),
		entsql.As(entsql.Sum("output_tokens"), "output_tokens"),
		entsql.As(entsql.Avg("latency_ms"), "avg_latency_ms"),
	).
		From(entsql.Table(tableLLMEvents)).
		GroupBy("purpose").
		OrderBy("purpose")

	var out []PurposeUsage
	err := queryRows(ctx, r.db, s, func(rows *sql.Rows) error {
		var (
			u   PurposeUsage
			avg float64
		)
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return err
		}
		u.AvgLatencyMs = int64(avg)
		out = append(out, u)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	s := builder.Select(
		"model",
		entsql.As(entsql.Count("*"), "calls"),
		entsql.As(entsql.Sum("input_tokens"), "input_tokens"),
		entsql.As(entsql.Sum("output_tokens"), "output_tokens"),
	).
		From(entsql.Table(tableLLMEvents)).
		Where(entsql.EQ("success", true)).
		GroupBy("model").
		OrderBy("model")

	var out []ModelUsage
	err := queryRows(ctx, r.db, s, func(rows *sql.Rows) error {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return err
		}
		out = append(out, u)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	return out, nil
}
