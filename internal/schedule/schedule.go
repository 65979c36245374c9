// Package schedule provides cancellable delayed tasks on top of Bubble Tea
// ticks. A screen owns a Scheduler, asks it for delayed commands, and only
// acts on fired messages the scheduler still considers pending.
package schedule

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"
)

// Tag identifies what a task is for.
type Tag string

// FiredMsg is delivered when a task's delay elapses.
type FiredMsg struct {
	Owner string
	ID    uint64
	Tag   Tag
	At    time.Time
}

// Scheduler tracks pending tasks for a single owner (usually one screen).
// It is not safe for concurrent use; Bubble Tea calls Update serially.
type Scheduler struct {
	owner   string
	nextID  uint64
	pending map[uint64]Tag
}

// New creates a Scheduler with a unique owner id, so tasks from a
// discarded scheduler are never mistaken for this one's.
func New() *Scheduler {
	return &Scheduler{
		owner:   uuid.New().String(),
		pending: make(map[uint64]Tag),
	}
}

// After registers a task and returns the command that fires it after d.
// Tasks are cancelled by tag, so callers never see the task id.
func (s *Scheduler) After(d time.Duration, tag Tag) tea.Cmd {
	s.nextID++
	id := s.nextID
	s.pending[id] = tag
	owner := s.owner
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FiredMsg{Owner: owner, ID: id, Tag: tag, At: t}
	})
}

// Accept consumes a fired task. It returns false for tasks owned by another
// scheduler, already cancelled, or already accepted.
func (s *Scheduler) Accept(msg FiredMsg) (Tag, bool) {
	if msg.Owner != s.owner {
		return "", false
	}
	tag, ok := s.pending[msg.ID]
	if !ok {
		return "", false
	}
	delete(s.pending, msg.ID)
	return tag, true
}

// CancelTag drops every pending task with the given tag. Their ticks still
// fire but are ignored.
func (s *Scheduler) CancelTag(tag Tag) {
	for id, t := range s.pending {
		if t == tag {
			delete(s.pending, id)
		}
	}
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() {
	clear(s.pending)
}
