package problemgen

import (
	"strconv"
	"strings"
)

// ParseAnswer parses the learner's typed answer as an integer.
//
// Normalization rules:
// - Whitespace is trimmed
// - Leading zeros and a leading "+" are accepted (e.g., "007" is 7)
//
// Anything else returns ErrInvalidNumber.
func ParseAnswer(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, ErrInvalidNumber
	}
	n, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return int(n), nil
}

// CheckAnswer compares the learner's input against the problem's answer.
// Returns ErrInvalidNumber if input is not an integer.
func CheckAnswer(input string, p Problem) (bool, error) {
	n, err := ParseAnswer(input)
	if err != nil {
		return false, err
	}
	return n == p.Answer, nil
}
