package view

import (
	"time"

	"trivia-quiz-service/internal/domain"
)

// Option highlights in the review.
const (
	HighlightCorrect = "correct"
	HighlightChosen  = "chosen"
)

type ReviewOption struct {
	ID        domain.OptionID `json:"id"`
	Letter    string          `json:"letter"`
	Text      string          `json:"text"`
	Highlight string          `json:"highlight,omitempty"`
}

type ReviewItem struct {
	Number           int             `json:"number"`
	QuestionID       string          `json:"questionId"`
	Prompt           string          `json:"prompt"`
	Options          []ReviewOption  `json:"options"`
	CorrectOptionID  domain.OptionID `json:"correctOptionId"`
	SelectedOptionID domain.OptionID `json:"selectedOptionId,omitempty"`
	Answered         bool            `json:"answered"`
	Correct          bool            `json:"correct"`
	Explanation      string          `json:"explanation,omitempty"`
}

type Links struct {
	Leaderboard       string `json:"leaderboard"`
	GlobalLeaderboard string `json:"globalLeaderboard"`
	Dashboard         string `json:"dashboard"`
}

// Review is the post-submit page.
type Review struct {
	ResultID    string       `json:"resultId"`
	QuizID      string       `json:"quizId"`
	QuizTitle   string       `json:"quizTitle"`
	Category    string       `json:"category,omitempty"`
	Correct     int          `json:"correct"`
	Total       int          `json:"total"`
	Incorrect   int          `json:"incorrect"`
	Percentage  int          `json:"percentage"`
	TimeSpent   string       `json:"timeSpent"`
	TimedOut    bool         `json:"timedOut"`
	Message     string       `json:"message"`
	CompletedAt time.Time    `json:"completedAt"`
	Items       []ReviewItem `json:"items"`
	Links       Links        `json:"links"`
}

// NewReview renders a result. Correctness comes precomputed on each outcome.
func NewReview(result domain.Result) Review {
	r := Review{
		ResultID:    result.ID,
		QuizID:      result.QuizID,
		QuizTitle:   result.QuizTitle,
		Category:    result.Category,
		Correct:     result.CorrectCount,
		Total:       result.TotalCount,
		Incorrect:   result.TotalCount - result.CorrectCount,
		Percentage:  result.Percentage,
		TimeSpent:   FormatClock(result.TimeSpentSeconds),
		TimedOut:    result.TimedOut,
		Message:     PerformanceMessage(result.Percentage),
		CompletedAt: result.CompletedAt,
		Items:       make([]ReviewItem, len(result.Outcomes)),
		Links:       LinksFor(result.QuizID),
	}
	for i, o := range result.Outcomes {
		item := ReviewItem{
			Number:           i + 1,
			QuestionID:       o.Question.ID,
			Prompt:           o.Question.Prompt,
			Options:          make([]ReviewOption, len(o.Question.Options)),
			CorrectOptionID:  o.Question.CorrectOptionID,
			SelectedOptionID: o.SelectedOptionID,
			Answered:         o.Answered,
			Correct:          o.Correct,
			Explanation:      o.Question.Explanation,
		}
		for j, opt := range o.Question.Options {
			ro := ReviewOption{ID: opt.ID, Letter: optionLetter(j), Text: opt.Text}
			switch {
			case opt.ID == o.Question.CorrectOptionID:
				ro.Highlight = HighlightCorrect
			case o.Answered && opt.ID == o.SelectedOptionID:
				ro.Highlight = HighlightChosen
			}
			item.Options[j] = ro
		}
		r.Items[i] = item
	}
	return r
}

// LinksFor points at the follow-up pages of a quiz.
func LinksFor(quizID string) Links {
	return Links{
		Leaderboard:       "/api/quizzes/" + quizID + "/leaderboard",
		GlobalLeaderboard: "/api/leaderboard",
		Dashboard:         "/dashboard",
	}
}

func PerformanceMessage(percentage int) string {
	switch {
	case percentage >= 90:
		return "Outstanding!"
	case percentage >= 80:
		return "Excellent!"
	case percentage >= 70:
		return "Good Job!"
	case percentage >= 60:
		return "Not Bad!"
	default:
		return "Keep Practicing!"
	}
}
