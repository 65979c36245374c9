package session

import "time"

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	Settings      Settings
	Duration      time.Duration
	TotalAnswered int
	TotalCorrect  int
	Accuracy      float64
	StartLevel    int
	EndLevel      int
	LevelUps      int
	BestStreak    int

	// MasteryTime is set when the mastery stopwatch was stopped.
	MasteryTime *time.Duration
}

// BuildSummary creates a SessionSummary from the current quiz state.
func BuildSummary(state *SessionState) *SessionSummary {
	var accuracy float64
	if state.TotalAnswered > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalAnswered)
	}

	sum := &SessionSummary{
		Settings:      state.Settings,
		Duration:      Elapsed(state),
		TotalAnswered: state.TotalAnswered,
		TotalCorrect:  state.TotalCorrect,
		Accuracy:      accuracy,
		StartLevel:    state.Settings.Level,
		EndLevel:      state.Level,
		LevelUps:      state.LevelUps,
		BestStreak:    state.BestStreak,
	}
	if state.Stopped() {
		d := Elapsed(state)
		sum.MasteryTime = &d
	}
	return sum
}
