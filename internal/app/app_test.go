package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screens/difficulty"
	"github.com/abhisek/mathdrill/internal/screens/home"
	sessionscreen "github.com/abhisek/mathdrill/internal/screens/session"
	"github.com/abhisek/mathdrill/internal/screens/summary"
	"github.com/abhisek/mathdrill/internal/store"
)

type fixedGenerator struct{}

func (fixedGenerator) Generate(op problemgen.Operation, _ int) (problemgen.Problem, error) {
	return problemgen.Problem{Op: op, A: 5, B: 3, Answer: 2}, nil
}

type countingRepo struct {
	ends int
}

func (r *countingRepo) AppendSessionStart(context.Context, store.SessionStartData) error {
	return nil
}
func (r *countingRepo) AppendSessionEnd(context.Context, store.SessionEndData) error {
	r.ends++
	return nil
}
func (r *countingRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDeps(repo store.EventRepo) sessionscreen.Deps {
	return sessionscreen.Deps{Generator: fixedGenerator{}, EventRepo: repo}
}

// update feeds msg to the model and then any navigation message its
// command produces.
func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch nav := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, router.PopToRootMsg:
		next, _ = m.Update(nav)
		m = next.(AppModel)
	}
	return m
}

func TestNewAppModel_StartsOnHome(t *testing.T) {
	m := newAppModel(Options{Deps: testDeps(nil)})
	assert.Equal(t, 1, m.router.Depth())
	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
}

func TestNewAppModel_StartOp(t *testing.T) {
	m := newAppModel(Options{Deps: testDeps(nil), StartOp: problemgen.OpSubtract})
	assert.Equal(t, 2, m.router.Depth())
	_, ok := m.router.Active().(*difficulty.DifficultyScreen)
	assert.True(t, ok)
}

func TestNewAppModel_StartQuiz(t *testing.T) {
	m := newAppModel(Options{Deps: testDeps(nil), StartOp: problemgen.OpSubtract, StartLevel: 2})
	assert.Equal(t, 3, m.router.Depth())
	s, ok := m.router.Active().(*sessionscreen.SessionScreen)
	require.True(t, ok)
	assert.Equal(t, "Practice", s.Title())

	m = newAppModel(Options{Deps: testDeps(nil), StartOp: problemgen.OpAdd, Mastery: true})
	assert.Equal(t, "Mastery Mode", m.router.Active().Title())
}

func TestAppModel_MenuToQuiz(t *testing.T) {
	m := newAppModel(Options{Deps: testDeps(nil)})
	m = update(t, m, keyPress('2'))
	assert.Equal(t, "- Practice", m.router.Active().Title())

	m = update(t, m, keyPress('1'))
	assert.Equal(t, 3, m.router.Depth())
	assert.Equal(t, "Practice", m.router.Active().Title())
}

func TestAppModel_EscWithoutAnswersReturnsToMenu(t *testing.T) {
	repo := &countingRepo{}
	m := newAppModel(Options{Deps: testDeps(repo), StartOp: problemgen.OpAdd, StartLevel: 1})

	m = update(t, m, specialKey(tea.KeyEscape))

	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, 1, repo.ends)
}

func TestAppModel_EscAfterAnswerShowsSummary(t *testing.T) {
	repo := &countingRepo{}
	m := newAppModel(Options{Deps: testDeps(repo), StartOp: problemgen.OpSubtract, StartLevel: 1})

	m = update(t, m, keyPress('2'))
	m = update(t, m, specialKey(tea.KeyEnter))
	m = update(t, m, specialKey(tea.KeyEscape))

	_, ok := m.router.Active().(*summary.SummaryScreen)
	require.True(t, ok)
	assert.Equal(t, 1, repo.ends)

	m = update(t, m, specialKey(tea.KeyEnter))
	assert.Equal(t, 1, m.router.Depth())
}

func TestAppModel_EscOnHomeIsNoop(t *testing.T) {
	m := newAppModel(Options{Deps: testDeps(nil)})
	_, cmd := m.Update(specialKey(tea.KeyEscape))
	assert.Nil(t, cmd)
}

func TestAppModel_CtrlCClosesQuiz(t *testing.T) {
	repo := &countingRepo{}
	m := newAppModel(Options{Deps: testDeps(repo), StartOp: problemgen.OpAdd, StartLevel: 1})

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Equal(t, 1, repo.ends)
	assert.Equal(t, 1, m.router.Depth())
}

func TestAppModel_View(t *testing.T) {
	m := newAppModel(Options{Deps: testDeps(nil), StartOp: problemgen.OpSubtract, StartLevel: 3})
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	content := m.render()
	assert.Contains(t, content, "5 - 3 = ?")
	assert.Contains(t, content, "Lv 3")
	assert.Contains(t, content, "Submit")
}

func TestAppModel_ViewTooSmall(t *testing.T) {
	m := newAppModel(Options{Deps: testDeps(nil)})
	m = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.False(t, strings.Contains(m.render(), "Practice"))
}
