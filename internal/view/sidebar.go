package view

import (
	"strconv"

	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/quiz"
)

// lowTimeSeconds turns the sidebar clock red.
const lowTimeSeconds = 60

type SidebarCell struct {
	Index  int                   `json:"index"`
	Number int                   `json:"number"`
	Status domain.QuestionStatus `json:"status"`
	Active bool                  `json:"active"`
}

// Sidebar is the progress panel next to the question card.
type Sidebar struct {
	Cells     []SidebarCell     `json:"cells"`
	Counts    quiz.StatusCounts `json:"counts"`
	Progress  int               `json:"progress"`
	TimeLeft  string            `json:"timeLeft"`
	LowTime   bool              `json:"lowTime"`
	Position  string            `json:"position"`
	CanSubmit bool              `json:"canSubmit"`
}

func NewSidebar(snap domain.SessionSnapshot) Sidebar {
	sb := Sidebar{
		Cells:     make([]SidebarCell, len(snap.Statuses)),
		TimeLeft:  FormatClock(snap.Remaining),
		LowTime:   snap.Remaining < lowTimeSeconds,
		Position:  itoa(snap.Current+1) + "/" + itoa(len(snap.Statuses)),
		CanSubmit: !snap.Submitted,
	}
	for i, status := range snap.Statuses {
		sb.Cells[i] = SidebarCell{
			Index:  i,
			Number: i + 1,
			Status: status,
			Active: i == snap.Current,
		}
		switch status {
		case domain.StatusAnswered:
			sb.Counts.Answered++
		case domain.StatusVisited:
			sb.Counts.Visited++
		default:
			sb.Counts.Unvisited++
		}
	}
	sb.Progress = quiz.Percentage(sb.Counts.Answered+sb.Counts.Visited, len(snap.Statuses))
	return sb
}

func itoa(n int) string { return strconv.Itoa(n) }
