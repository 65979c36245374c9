package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// statsRepo implements StatsRepo on SQLite.
type statsRepo struct {
	drv *entsql.Driver
}

func coalesceZero(expr string) string {
	return "COALESCE(" + expr + ", 0)"
}

func (r *statsRepo) ByOperation(ctx context.Context) ([]OperationStats, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(
		"operation",
		entsql.Count("*"),
		coalesceZero(entsql.Sum("answered")),
		coalesceZero(entsql.Sum("correct")),
		coalesceZero(entsql.Sum("level_ups")),
		coalesceZero(entsql.Max("end_level")),
		entsql.Min("mastery_ms"),
	).
		From(b.Table(quizSessionsTable)).
		GroupBy("operation").
		OrderBy("operation").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query operation stats: %w", err)
	}
	defer rows.Close()

	var out []OperationStats
	for rows.Next() {
		var st OperationStats
		var best entsql.NullInt64
		if err := rows.Scan(&st.Operation, &st.Sessions, &st.Answered, &st.Correct,
			&st.LevelUps, &st.HighestLevel, &best); err != nil {
			return nil, fmt.Errorf("scan operation stats: %w", err)
		}
		st.BestMastery = millis(best)
		out = append(out, st)
	}
	return out, rows.Err()
}

func (r *statsRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(
		"id", "operation", "mode", "start_level", "end_level",
		"answered", "correct", "started_at", "mastery_ms",
	).
		From(b.Table(quizSessionsTable)).
		OrderBy(entsql.Desc("started_at")).
		Limit(limit).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var startedMs int64
		var mastery entsql.NullInt64
		if err := rows.Scan(&rec.SessionID, &rec.Operation, &rec.Mode, &rec.StartLevel,
			&rec.EndLevel, &rec.Answered, &rec.Correct, &startedMs, &mastery); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.StartedAt = time.UnixMilli(startedMs)
		rec.MasteryTime = millis(mastery)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func millis(v entsql.NullInt64) *time.Duration {
	if !v.Valid {
		return nil
	}
	d := time.Duration(v.Int64) * time.Millisecond
	return &d
}
