package quiz

import "trivia-quiz-service/internal/domain"

// Score is the outcome of grading an answer map.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Percentage rounds half up.
func (s Score) Percentage() int {
	return Percentage(s.Correct, s.Total)
}

// Percentage returns round(100*part/whole) with halves rounded up, or 0 when whole is 0.
func Percentage(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return (200*part + whole) / (2 * whole)
}

// ScoreAnswers grades answers against the question bank. Missing answers
// count as incorrect; indexes outside the bank are ignored.
func ScoreAnswers(questions []domain.Question, answers map[int]domain.OptionID) Score {
	score := Score{Total: len(questions)}
	for i, q := range questions {
		if selected, ok := answers[i]; ok && selected == q.CorrectOptionID {
			score.Correct++
		}
	}
	return score
}

// Outcomes pairs every question with the recorded answer and its correctness.
func Outcomes(questions []domain.Question, answers map[int]domain.OptionID) []domain.QuestionOutcome {
	out := make([]domain.QuestionOutcome, len(questions))
	for i, q := range questions {
		selected, ok := answers[i]
		out[i] = domain.QuestionOutcome{
			Question:         q,
			SelectedOptionID: selected,
			Answered:         ok,
			Correct:          ok && selected == q.CorrectOptionID,
		}
	}
	return out
}
