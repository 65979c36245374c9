package difficulty

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	sessionscreen "github.com/abhisek/mathdrill/internal/screens/session"
)

type fixedGenerator struct{}

func (fixedGenerator) Generate(op problemgen.Operation, level int) (problemgen.Problem, error) {
	return problemgen.Problem{Op: op, A: 2, B: 2, Answer: 4}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func pushed(t *testing.T, cmd tea.Cmd) *sessionscreen.SessionScreen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	s, ok := push.Screen.(*sessionscreen.SessionScreen)
	if !ok {
		t.Fatalf("expected quiz screen, got %T", push.Screen)
	}
	return s
}

func TestDifficultyScreen_View(t *testing.T) {
	d := New(sessionscreen.Deps{Generator: fixedGenerator{}}, problemgen.OpAdd)
	view := d.View(80, 20)
	for _, label := range []string{"1-digit", "2-digit", "3-digit", "Mastery Mode", "Back to Menu"} {
		if !strings.Contains(view, label) {
			t.Errorf("view missing %q", label)
		}
	}
	if d.Title() != "+ Practice" {
		t.Errorf("Title = %q, want %q", d.Title(), "+ Practice")
	}
}

func TestDifficultyScreen_StartsPractice(t *testing.T) {
	d := New(sessionscreen.Deps{Generator: fixedGenerator{}}, problemgen.OpMultiply)
	_, cmd := d.Update(keyPress('2'))
	s := pushed(t, cmd)

	if s.Title() != "Practice" {
		t.Errorf("Title = %q, want Practice", s.Title())
	}
	if level, _ := s.HeaderStats(); level != 2 {
		t.Errorf("level = %d, want 2", level)
	}
	if !strings.Contains(s.View(80, 20), "2 × 2 = ?") {
		t.Error("expected a multiplication problem")
	}
}

func TestDifficultyScreen_StartsMastery(t *testing.T) {
	d := New(sessionscreen.Deps{Generator: fixedGenerator{}}, problemgen.OpAdd)
	_, cmd := d.Update(keyPress('4'))
	s := pushed(t, cmd)

	if s.Title() != "Mastery Mode" {
		t.Errorf("Title = %q, want Mastery Mode", s.Title())
	}
	if level, _ := s.HeaderStats(); level != 1 {
		t.Errorf("level = %d, want 1", level)
	}
}

func TestDifficultyScreen_Back(t *testing.T) {
	d := New(sessionscreen.Deps{}, problemgen.OpAdd)
	_, cmd := d.Update(keyPress('5'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
