package view

import (
	"strconv"

	"trivia-quiz-service/internal/quiz"
)

// TimerView is the countdown panel. Progress is the elapsed share of the
// initial time, 0..100.
type TimerView struct {
	Remaining int    `json:"remaining"`
	Formatted string `json:"formatted"`
	Running   bool   `json:"running"`
	Warning   bool   `json:"warning"`
	Expired   bool   `json:"expired"`
	Progress  int    `json:"progress"`
	Badge     string `json:"badge,omitempty"`
	Message   string `json:"message,omitempty"`
}

// NewTimerView builds the panel from raw countdown values.
func NewTimerView(remaining, initial, warningThreshold int, running, autoSubmit bool) TimerView {
	if warningThreshold <= 0 {
		warningThreshold = quiz.DefaultWarningThreshold
	}
	v := TimerView{
		Remaining: remaining,
		Formatted: FormatClock(remaining),
		Running:   running,
		Warning:   remaining > 0 && remaining <= warningThreshold,
		Expired:   remaining <= 0,
		Progress:  100,
	}
	if initial > 0 {
		v.Progress = quiz.Percentage(initial-remaining, initial)
	}

	switch {
	case v.Expired:
		v.Badge = "Time's Up!"
		if autoSubmit {
			v.Message = "Quiz auto-submitted"
		} else {
			v.Message = "Time expired - please submit your quiz"
		}
	case v.Warning:
		v.Badge = "Hurry Up!"
		v.Message = warningMessage(warningThreshold)
	}
	return v
}

func warningMessage(threshold int) string {
	minutes := (threshold + 59) / 60
	unit := " minute"
	if threshold > 60 {
		unit = " minutes"
	}
	return "Less than " + strconv.Itoa(minutes) + unit + " remaining!"
}
