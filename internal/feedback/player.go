// Package feedback provides the sound cues and color flash played after
// each answer.
package feedback

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Cue is a feedback event.
type Cue string

const (
	CueCorrect Cue = "correct"
	CueWrong   Cue = "wrong"
	CueLevelUp Cue = "level-up"
)

// Player plays audio cues.
type Player interface {
	Play(cue Cue) error
}

// BellPlayer rings the terminal bell. Wrong answers ring twice and
// level-ups three times so the cues are distinguishable by ear.
type BellPlayer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellPlayer creates a BellPlayer writing to w (usually the TTY).
func NewBellPlayer(w io.Writer) *BellPlayer {
	return &BellPlayer{w: w}
}

func (b *BellPlayer) Play(cue Cue) error {
	n := 1
	switch cue {
	case CueWrong:
		n = 2
	case CueLevelUp:
		n = 3
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := io.WriteString(b.w, strings.Repeat("\a", n)); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}

// Mute discards every cue.
type Mute struct{}

func (Mute) Play(Cue) error { return nil }

// Recorder records cues instead of playing them.
type Recorder struct {
	mu   sync.Mutex
	cues []Cue
}

func (r *Recorder) Play(cue Cue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, cue)
	return nil
}

// Cues returns a copy of the recorded cues.
func (r *Recorder) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Cue(nil), r.cues...)
}
