package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"

	"github.com/google/uuid"
)

var (
	// ErrAwaitingNext is returned when an answer is submitted while the
	// feedback for the previous one is still showing.
	ErrAwaitingNext = errors.New("waiting for next problem")

	ErrNotMastery     = errors.New("stopwatch only runs in mastery mode")
	ErrAlreadyStopped = errors.New("stopwatch already stopped")
)

// NewSessionState starts a quiz and generates its first problem.
// A nil clock defaults to time.Now.
func NewSessionState(gen problemgen.Generator, settings Settings, cfg Config, clock func() time.Time) (*SessionState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if clock == nil {
		clock = time.Now
	}
	if settings.Mode == "" {
		settings.Mode = ModePractice
	}
	if settings.Mode == ModeMastery && settings.Level == 0 {
		settings.Level = cfg.MasteryLevel
	}
	if _, _, err := problemgen.Bounds(settings.Level); err != nil {
		return nil, err
	}

	state := &SessionState{
		SessionID: uuid.New().String(),
		Settings:  settings,
		Level:     settings.Level,
		StartTime: clock(),
		generator: gen,
		cfg:       cfg,
		now:       clock,
	}
	if err := NextProblem(state); err != nil {
		return nil, err
	}
	return state, nil
}

// NextProblem replaces the current problem with a fresh one at the current
// level and returns the quiz to the question phase.
func NextProblem(state *SessionState) error {
	p, err := state.generator.Generate(state.Settings.Operation, state.Level)
	if err != nil {
		return fmt.Errorf("generate problem: %w", err)
	}
	state.Current = p
	state.Phase = PhaseQuestion
	state.LastResult = nil
	state.ValidationMsg = ""
	return nil
}

// HandleAnswer processes a learner's typed answer.
//
// Non-numeric input yields OutcomeInvalid and leaves the streak, counters
// and current problem untouched. Otherwise the streak is updated, a level-up
// is applied in practice mode, and the quiz moves to PhaseFeedback until
// NextProblem is called.
func HandleAnswer(state *SessionState, input string) (AnswerResult, error) {
	if state.Phase == PhaseFeedback {
		return AnswerResult{}, ErrAwaitingNext
	}

	correct, err := problemgen.CheckAnswer(input, state.Current)
	if err != nil {
		state.ValidationMsg = InvalidNumberMessage
		return AnswerResult{Outcome: OutcomeInvalid, Answer: state.Current.Answer, Level: state.Level}, nil
	}
	given, _ := problemgen.ParseAnswer(input)

	res := AnswerResult{
		Given:  given,
		Answer: state.Current.Answer,
	}

	state.TotalAnswered++
	if correct {
		res.Outcome = OutcomeCorrect
		state.TotalCorrect++
		state.Streak++
		if state.Streak > state.BestStreak {
			state.BestStreak = state.Streak
		}
	} else {
		res.Outcome = OutcomeWrong
		state.Streak = 0
	}

	if !state.Mastery() && state.Streak >= state.cfg.StreakToLevelUp {
		res.LevelUp = true
		state.LevelUps++
		state.Streak = 0
		if state.Level < problemgen.MaxLevel {
			state.Level++
		}
	}
	res.Level = state.Level

	state.ValidationMsg = ""
	state.LastResult = &res
	state.Phase = PhaseFeedback
	return res, nil
}

// Elapsed returns the time since the quiz started, frozen once the
// mastery stopwatch is stopped.
func Elapsed(state *SessionState) time.Duration {
	if state.Stopped() {
		return state.StoppedAt.Sub(state.StartTime)
	}
	return state.now().Sub(state.StartTime)
}

// StopMastery stops the mastery stopwatch and returns the final time.
// The quiz itself keeps going.
func StopMastery(state *SessionState) (time.Duration, error) {
	if !state.Mastery() {
		return 0, ErrNotMastery
	}
	if state.Stopped() {
		return 0, ErrAlreadyStopped
	}
	state.StoppedAt = state.now()
	return Elapsed(state), nil
}
