package session

import "github.com/abhisek/mathdrill/internal/schedule"

// Scheduled task tags.
const (
	tagAdvance schedule.Tag = "advance" // Move to the next problem
	tagFlash   schedule.Tag = "flash"   // Step the feedback color flash
	tagClock   schedule.Tag = "clock"   // Refresh the mastery stopwatch
)
