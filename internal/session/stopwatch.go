package session

import (
	"fmt"
	"time"
)

// SplitElapsed returns whole minutes and the remaining whole seconds of d.
func SplitElapsed(d time.Duration) (minutes, seconds int) {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return total / 60, total % 60
}

// FormatClock renders d as "M:SS" for the running stopwatch.
func FormatClock(d time.Duration) string {
	m, s := SplitElapsed(d)
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatFinished renders the final mastery time.
func FormatFinished(d time.Duration) string {
	m, s := SplitElapsed(d)
	return fmt.Sprintf("Finished in %d min %d sec", m, s)
}
