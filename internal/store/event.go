package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo on SQLite.
type eventRepo struct {
	drv *entsql.Driver
}

func (r *eventRepo) AppendSessionStart(ctx context.Context, data SessionStartData) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(quizSessionsTable).
		Columns("id", "operation", "mode", "start_level", "end_level", "started_at").
		Values(data.SessionID, data.Operation, data.Mode, data.Level, data.Level, data.StartedAt.UnixMilli()).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save session start: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEnd(ctx context.Context, data SessionEndData) error {
	update := entsql.Dialect(dialect.SQLite).
		Update(quizSessionsTable).
		Set("end_level", data.EndLevel).
		Set("answered", data.Answered).
		Set("correct", data.Correct).
		Set("level_ups", data.LevelUps).
		Set("best_streak", data.BestStreak).
		Set("ended_at", data.EndedAt.UnixMilli())
	if data.MasteryTime != nil {
		update.Set("mastery_ms", data.MasteryTime.Milliseconds())
	} else {
		update.SetNull("mastery_ms")
	}
	query, args := update.Where(entsql.EQ("id", data.SessionID)).Query()

	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save session end: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save session end: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("save session end: unknown session %q", data.SessionID)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(answerEventsTable).
		Columns("session_id", "operation", "level", "a", "b", "answer", "given", "correct", "created_at").
		Values(data.SessionID, data.Operation, data.Level, data.A, data.B, data.Answer, data.Given,
			data.Correct, data.At.UnixMilli()).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}
