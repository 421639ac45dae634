package domain

import (
	"errors"
	"testing"
)

func validQuiz() Quiz {
	return Quiz{
		ID:    "quiz-1",
		Title: "Basics",
		Questions: []Question{
			{ID: "q1", Prompt: "2 + 2?", Options: []Option{{ID: "a", Text: "3"}, {ID: "b", Text: "4"}}, CorrectOptionID: "b"},
			{ID: "q2", Prompt: "3 + 3?", Options: []Option{{ID: "a", Text: "6"}, {ID: "b", Text: "7"}}, CorrectOptionID: "a"},
		},
	}
}

func TestQuizValidate(t *testing.T) {
	if err := validQuiz().Validate(); err != nil {
		t.Fatalf("expected valid quiz, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(q *Quiz)
		want   error
	}{
		{"empty", func(q *Quiz) { q.Questions = nil }, ErrEmptyQuiz},
		{"duplicate question", func(q *Quiz) { q.Questions[1].ID = "q1" }, ErrInvalidQuiz},
		{"no options", func(q *Quiz) { q.Questions[0].Options = nil }, ErrInvalidQuiz},
		{"duplicate option", func(q *Quiz) { q.Questions[0].Options[1].ID = "a" }, ErrInvalidQuiz},
		{"undeclared correct option", func(q *Quiz) { q.Questions[1].CorrectOptionID = "z" }, ErrInvalidQuiz},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuiz()
			tt.mutate(&q)
			if err := q.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestQuizSummaryHidesQuestions(t *testing.T) {
	s := validQuiz().Summary()
	if s.QuestionCount != 2 || s.ID != "quiz-1" || s.Title != "Basics" {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestQuestionHasOption(t *testing.T) {
	q := validQuiz().Questions[0]
	if !q.HasOption("a") || q.HasOption("z") {
		t.Fatalf("HasOption mismatch")
	}
}
