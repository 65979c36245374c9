package session

import (
	"strconv"
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

// Mode selects how a quiz progresses.
type Mode string

const (
	// ModePractice raises the level after a streak of correct answers.
	ModePractice Mode = "practice"

	// ModeMastery stays on one level and times the learner instead.
	ModeMastery Mode = "mastery"
)

// Phase represents the current phase of the quiz.
type Phase int

const (
	PhaseQuestion Phase = iota // Waiting for an answer
	PhaseFeedback              // Showing feedback before the next problem
)

// Outcome classifies a submitted answer.
type Outcome int

const (
	OutcomeInvalid Outcome = iota // Input was not a number; nothing changed
	OutcomeCorrect
	OutcomeWrong
)

// InvalidNumberMessage is shown when the learner submits a non-numeric answer.
const InvalidNumberMessage = "Please enter a valid number."

// Settings are the choices made on the menu and difficulty screens.
type Settings struct {
	Operation problemgen.Operation
	Level     int
	Mode      Mode
}

// AnswerResult describes the effect of one submitted answer.
type AnswerResult struct {
	Outcome Outcome

	// Given is the parsed learner answer (zero for OutcomeInvalid).
	Given int

	// Answer is the correct answer to the problem that was answered.
	Answer int

	// LevelUp is true when this answer completed a level-up streak.
	LevelUp bool

	// Level is the level after this answer.
	Level int
}

// Message returns the feedback line for the result.
func (r AnswerResult) Message() string {
	switch {
	case r.Outcome == OutcomeInvalid:
		return InvalidNumberMessage
	case r.LevelUp:
		return "Level up!"
	case r.Outcome == OutcomeCorrect:
		return "Correct!"
	default:
		return "Wrong! Answer: " + strconv.Itoa(r.Answer)
	}
}

// SessionState tracks the runtime state of an active quiz.
type SessionState struct {
	// SessionID is the UUID for this quiz.
	SessionID string

	// Settings are the choices the quiz was started with.
	Settings Settings

	// Level is the current digit-width level.
	Level int

	// Streak is the count of consecutive correct answers.
	Streak int

	// BestStreak is the longest streak seen in this quiz.
	BestStreak int

	// Current is the problem on screen.
	Current problemgen.Problem

	// Phase is the current quiz phase.
	Phase Phase

	// LastResult is the result of the most recent valid answer (nil while
	// a fresh question is up).
	LastResult *AnswerResult

	// ValidationMsg is set after a non-numeric submission.
	ValidationMsg string

	TotalAnswered int
	TotalCorrect  int
	LevelUps      int

	// StartTime is when the quiz began.
	StartTime time.Time

	// StoppedAt is set once the mastery stopwatch is stopped.
	StoppedAt time.Time

	generator problemgen.Generator
	cfg       Config
	now       func() time.Time
}

// Mastery reports whether the quiz runs in mastery mode.
func (s *SessionState) Mastery() bool {
	return s.Settings.Mode == ModeMastery
}

// Stopped reports whether the mastery stopwatch has been stopped.
func (s *SessionState) Stopped() bool {
	return !s.StoppedAt.IsZero()
}

// Config returns the configuration the quiz runs with.
func (s *SessionState) Config() Config {
	return s.cfg
}
