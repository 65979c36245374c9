package store

import (
	"context"
	"time"
)

// SessionStartData is recorded when a quiz begins.
type SessionStartData struct {
	SessionID string
	Operation string
	Mode      string
	Level     int
	StartedAt time.Time
}

// SessionEndData is recorded when the learner leaves a quiz.
type SessionEndData struct {
	SessionID  string
	EndLevel   int
	Answered   int
	Correct    int
	LevelUps   int
	BestStreak int
	EndedAt    time.Time

	// MasteryTime is the stopped mastery stopwatch, nil if never stopped.
	MasteryTime *time.Duration
}

// AnswerEventData captures a single valid answer.
type AnswerEventData struct {
	SessionID string
	Operation string
	Level     int
	A         int
	B         int
	Answer    int
	Given     int
	Correct   bool
	At        time.Time
}

// EventRepo provides append access to quiz history.
type EventRepo interface {
	AppendSessionStart(ctx context.Context, data SessionStartData) error
	AppendSessionEnd(ctx context.Context, data SessionEndData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
}

// OperationStats aggregates history for one operation.
type OperationStats struct {
	Operation    string
	Sessions     int
	Answered     int
	Correct      int
	LevelUps     int
	HighestLevel int

	// BestMastery is the fastest stopped mastery run, nil if none.
	BestMastery *time.Duration
}

// Accuracy returns Correct / Answered, or 0 with no answers.
func (o OperationStats) Accuracy() float64 {
	if o.Answered == 0 {
		return 0
	}
	return float64(o.Correct) / float64(o.Answered)
}

// SessionRecord is one stored quiz.
type SessionRecord struct {
	SessionID   string
	Operation   string
	Mode        string
	StartLevel  int
	EndLevel    int
	Answered    int
	Correct     int
	StartedAt   time.Time
	MasteryTime *time.Duration
}

// StatsRepo answers read-side queries over quiz history.
type StatsRepo interface {
	// ByOperation returns one row per operation that has history.
	ByOperation(ctx context.Context) ([]OperationStats, error)

	// RecentSessions returns the newest sessions first.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)
}
