package session

import (
	"fmt"
	"time"
)

// Config controls quiz pacing and progression.
type Config struct {
	// StreakToLevelUp is the number of consecutive correct answers that
	// raises the level in practice mode.
	StreakToLevelUp int

	// AdvanceDelay is how long feedback stays up before the next problem.
	AdvanceDelay time.Duration

	// FlashDuration is the length of each half of the feedback color flash.
	FlashDuration time.Duration

	// MasteryLevel is the level mastery mode runs at.
	MasteryLevel int
}

// DefaultConfig returns the standard pacing: level up after 10 in a row,
// advance after one second.
func DefaultConfig() Config {
	return Config{
		StreakToLevelUp: 10,
		AdvanceDelay:    time.Second,
		FlashDuration:   300 * time.Millisecond,
		MasteryLevel:    1,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.StreakToLevelUp <= 0 {
		return fmt.Errorf("streak to level up must be > 0, got %d", c.StreakToLevelUp)
	}
	if c.AdvanceDelay < 0 {
		return fmt.Errorf("advance delay must not be negative, got %s", c.AdvanceDelay)
	}
	if c.FlashDuration < 0 {
		return fmt.Errorf("flash duration must not be negative, got %s", c.FlashDuration)
	}
	return nil
}
