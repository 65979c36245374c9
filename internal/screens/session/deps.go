package session

import (
	"log/slog"
	"time"

	"github.com/abhisek/mathdrill/internal/feedback"
	"github.com/abhisek/mathdrill/internal/problemgen"
	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
)

// Deps are the collaborators a quiz screen needs. Menu screens carry them
// through to the quiz they open.
type Deps struct {
	Generator problemgen.Generator
	Player    feedback.Player
	EventRepo store.EventRepo // nil disables history
	Config    sess.Config
	Logger    *slog.Logger
	Clock     func() time.Time
}

// withDefaults fills unset optional fields.
func (d Deps) withDefaults() Deps {
	if d.Player == nil {
		d.Player = feedback.Mute{}
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.Config == (sess.Config{}) {
		d.Config = sess.DefaultConfig()
	}
	return d
}
