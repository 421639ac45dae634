package view

import "trivia-quiz-service/internal/domain"

type CardOption struct {
	ID       domain.OptionID `json:"id"`
	Letter   string          `json:"letter"`
	Text     string          `json:"text"`
	Selected bool            `json:"selected"`
}

// QuestionCard is the live question. It never carries the correct option.
type QuestionCard struct {
	Number     int          `json:"number"`
	Total      int          `json:"total"`
	Label      string       `json:"label"`
	QuestionID string       `json:"questionId"`
	Prompt     string       `json:"prompt"`
	Category   string       `json:"category,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
	Options    []CardOption `json:"options"`
	Selected   string       `json:"selected,omitempty"`
	StatusLine string       `json:"statusLine"`
}

func NewQuestionCard(snap domain.SessionSnapshot) QuestionCard {
	q := snap.Question
	total := len(snap.Statuses)
	card := QuestionCard{
		Number:     snap.Current + 1,
		Total:      total,
		Label:      questionLabel(snap.Current+1, total),
		QuestionID: q.ID,
		Prompt:     q.Prompt,
		Category:   q.Category,
		Difficulty: capitalise(q.Difficulty),
		Options:    make([]CardOption, len(q.Options)),
		Selected:   string(snap.Selected),
		StatusLine: "Select an answer to continue",
	}
	for i, opt := range q.Options {
		card.Options[i] = CardOption{
			ID:       opt.ID,
			Letter:   optionLetter(i),
			Text:     opt.Text,
			Selected: snap.Selected != "" && opt.ID == snap.Selected,
		}
	}
	if snap.Selected != "" {
		card.StatusLine = "Answer selected"
	}
	return card
}

func questionLabel(n, total int) string {
	return "Question " + itoa(n) + " of " + itoa(total)
}
