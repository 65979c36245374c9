package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/feedback"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/schedule"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/summary"
	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// SessionScreen implements screen.Screen for an active quiz.
type SessionScreen struct {
	deps     Deps
	settings sess.Settings
	state    *sess.SessionState
	input    components.TextInput
	sched    *schedule.Scheduler
	flash    feedback.Flash
	message  string
	outcome  sess.Outcome
	levelUp  bool
	finished string
	errMsg   string
	closed   bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.Closer = (*SessionScreen)(nil)
var _ screen.BackNavigator = (*SessionScreen)(nil)
var _ screen.HeaderStats = (*SessionScreen)(nil)

// New creates a quiz screen for the chosen operation, level and mode and
// generates its first problem.
func New(deps Deps, settings sess.Settings) *SessionScreen {
	deps = deps.withDefaults()
	s := &SessionScreen{
		deps:     deps,
		settings: settings,
		input:    newInput(),
		sched:    schedule.New(),
	}

	state, err := sess.NewSessionState(deps.Generator, settings, deps.Config, deps.Clock)
	if err != nil {
		s.errMsg = err.Error()
		deps.Logger.Error("start quiz", "error", err, "operation", settings.Operation, "level", settings.Level)
		return s
	}
	s.state = state
	return s
}

func newInput() components.TextInput {
	return components.NewTextInput("Type your answer...", 20)
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.state == nil {
		return nil
	}

	s.deps.Logger.Info("quiz started",
		"session", s.state.SessionID,
		"operation", s.state.Settings.Operation,
		"level", s.state.Level,
		"mode", s.state.Settings.Mode,
	)
	if s.deps.EventRepo != nil {
		err := s.deps.EventRepo.AppendSessionStart(context.Background(), store.SessionStartData{
			SessionID: s.state.SessionID,
			Operation: string(s.state.Settings.Operation),
			Mode:      string(s.state.Settings.Mode),
			Level:     s.state.Level,
			StartedAt: s.state.StartTime,
		})
		if err != nil {
			s.deps.Logger.Warn("record quiz start", "error", err)
		}
	}

	cmds := []tea.Cmd{s.input.Init()}
	if s.state.Mastery() {
		cmd := s.sched.After(time.Second, tagClock)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (s *SessionScreen) Title() string {
	if s.settings.Mode == sess.ModeMastery {
		return "Mastery Mode"
	}
	return "Practice"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.state == nil {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
	if s.state.Mastery() && !s.state.Stopped() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Stop Mastery"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Menu"})
}

func (s *SessionScreen) HeaderStats() (level, streak int) {
	if s.state == nil {
		return 0, 0
	}
	return s.state.Level, s.state.Streak
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case schedule.FiredMsg:
		return s.handleFired(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Cursor blink and other input housekeeping.
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionScreen) handleFired(msg schedule.FiredMsg) (screen.Screen, tea.Cmd) {
	tag, ok := s.sched.Accept(msg)
	if !ok || s.state == nil {
		return s, nil
	}

	switch tag {
	case tagAdvance:
		if err := sess.NextProblem(s.state); err != nil {
			s.errMsg = err.Error()
			s.deps.Logger.Error("next problem", "error", err)
			return s, nil
		}
		s.input.Reset()
		s.message = ""

	case tagFlash:
		if s.flash.Step() {
			cmd := s.sched.After(s.deps.Config.FlashDuration, tagFlash)
			return s, cmd
		}

	case tagClock:
		if s.state.Mastery() && !s.state.Stopped() {
			cmd := s.sched.After(time.Second, tagClock)
			return s, cmd
		}
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, s.Back()
	}

	switch msg.String() {
	case "enter":
		return s.submitAnswer()
	case "ctrl+s":
		return s.stopMastery()
	}

	if s.state.Phase != sess.PhaseQuestion {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer checks the typed answer and schedules feedback and the
// next problem.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	input := s.input.Value()
	problem := s.state.Current
	level := s.state.Level

	res, err := sess.HandleAnswer(s.state, input)
	if errors.Is(err, sess.ErrAwaitingNext) {
		return s, nil
	}
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.message = res.Message()
	s.outcome = res.Outcome
	s.levelUp = res.LevelUp

	if res.Outcome == sess.OutcomeInvalid {
		s.deps.Logger.Debug("invalid answer", "session", s.state.SessionID, "input", input)
		return s, nil
	}

	s.recordAnswer(problem, level, res)

	cue := feedback.CueCorrect
	switch {
	case res.LevelUp:
		cue = feedback.CueLevelUp
		s.deps.Logger.Info("level up", "session", s.state.SessionID, "level", res.Level)
	case res.Outcome == sess.OutcomeWrong:
		cue = feedback.CueWrong
	}
	s.flash.Start(cue)

	s.sched.CancelTag(tagFlash)
	flashCmd := s.sched.After(s.deps.Config.FlashDuration, tagFlash)
	advanceCmd := s.sched.After(s.deps.Config.AdvanceDelay, tagAdvance)

	return s, tea.Batch(s.playCmd(cue), flashCmd, advanceCmd)
}

func (s *SessionScreen) recordAnswer(p problemgen.Problem, level int, res sess.AnswerResult) {
	if s.deps.EventRepo == nil {
		return
	}
	err := s.deps.EventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		SessionID: s.state.SessionID,
		Operation: string(p.Op),
		Level:     level,
		A:         p.A,
		B:         p.B,
		Answer:    p.Answer,
		Given:     res.Given,
		Correct:   res.Outcome == sess.OutcomeCorrect,
		At:        s.deps.Clock(),
	})
	if err != nil {
		s.deps.Logger.Warn("record answer", "error", err)
	}
}

func (s *SessionScreen) playCmd(cue feedback.Cue) tea.Cmd {
	player := s.deps.Player
	logger := s.deps.Logger
	return func() tea.Msg {
		if err := player.Play(cue); err != nil {
			logger.Warn("play cue", "cue", cue, "error", err)
		}
		return nil
	}
}

// stopMastery freezes the stopwatch; the quiz itself continues.
func (s *SessionScreen) stopMastery() (screen.Screen, tea.Cmd) {
	d, err := sess.StopMastery(s.state)
	if err != nil {
		return s, nil
	}
	s.sched.CancelTag(tagClock)
	s.finished = sess.FormatFinished(d)
	s.deps.Logger.Info("mastery stopped",
		"session", s.state.SessionID,
		"elapsed", d,
		"answered", s.state.TotalAnswered,
	)
	return s, nil
}

// Back leaves the quiz: to the summary if anything was answered, otherwise
// straight to the menu.
func (s *SessionScreen) Back() tea.Cmd {
	if s.state == nil || s.state.TotalAnswered == 0 {
		return func() tea.Msg { return router.PopToRootMsg{} }
	}
	sum := sess.BuildSummary(s.state)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

// Close cancels pending tasks and records the end of the quiz. It runs
// once, when the router drops the screen.
func (s *SessionScreen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.sched.CancelAll()

	if s.state == nil {
		return
	}
	sum := sess.BuildSummary(s.state)
	s.deps.Logger.Info("quiz ended",
		slog.String("session", s.state.SessionID),
		slog.Int("answered", sum.TotalAnswered),
		slog.Int("correct", sum.TotalCorrect),
		slog.Int("level", sum.EndLevel),
	)
	if s.deps.EventRepo == nil {
		return
	}
	err := s.deps.EventRepo.AppendSessionEnd(context.Background(), store.SessionEndData{
		SessionID:   s.state.SessionID,
		EndLevel:    sum.EndLevel,
		Answered:    sum.TotalAnswered,
		Correct:     sum.TotalCorrect,
		LevelUps:    sum.LevelUps,
		BestStreak:  sum.BestStreak,
		EndedAt:     s.deps.Clock(),
		MasteryTime: sum.MasteryTime,
	})
	if err != nil {
		s.deps.Logger.Warn("record quiz end", "error", err)
	}
}
