package problemgen

import "fmt"

const (
	// MinLevel is the smallest supported digit width.
	MinLevel = 1

	// MaxLevel is the largest digit width whose products still fit in int64.
	MaxLevel = 9
)

// Bounds returns the inclusive operand range for a level: exactly
// level-digit numbers, [10^(level-1), 10^level - 1].
func Bounds(level int) (lo, hi int, err error) {
	if level < MinLevel || level > MaxLevel {
		return 0, 0, fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidLevel, level, MinLevel, MaxLevel)
	}
	lo = 1
	for i := 1; i < level; i++ {
		lo *= 10
	}
	return lo, lo*10 - 1, nil
}
