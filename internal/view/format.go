// Package view turns session, result and leaderboard data into the
// JSON-ready models the client renders. Nothing here mutates state.
package view

import (
	"fmt"
	"strings"

	"trivia-quiz-service/internal/domain"
)

// FormatClock renders seconds as h:mm:ss from one hour up, m:ss below.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}

func optionLetter(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("%d", i+1)
}

func capitalise(d domain.Difficulty) string {
	s := string(d)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
