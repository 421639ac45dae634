package domain

import (
	"fmt"
	"time"
)

// OptionID identifies an option within a single question.
type OptionID string

// Difficulty tags a question, quiz or category.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyMixed  Difficulty = "mixed"
)

// Option represents a possible answer for a question.
type Option struct {
	ID   OptionID `json:"id"`
	Text string   `json:"text"`
}

// Question models an MCQ question with exactly one correct option.
type Question struct {
	ID              string     `json:"id"`
	Prompt          string     `json:"prompt"`
	Options         []Option   `json:"options"`
	CorrectOptionID OptionID   `json:"correctOptionId"`
	Explanation     string     `json:"explanation,omitempty"`
	Category        string     `json:"category,omitempty"`
	Difficulty      Difficulty `json:"difficulty,omitempty"`
}

// HasOption reports whether id is one of the question's declared options.
func (q Question) HasOption(id OptionID) bool {
	for _, opt := range q.Options {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// Quiz is an ordered question bank plus the metadata shown around it.
type Quiz struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	// TimeLimitSeconds is the countdown length; zero means the configured default.
	TimeLimitSeconds int        `json:"timeLimitSeconds"`
	Questions        []Question `json:"questions"`
}

// Validate checks the invariants a session relies on.
func (q Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return ErrEmptyQuiz
	}
	seen := make(map[string]struct{}, len(q.Questions))
	for i, question := range q.Questions {
		if _, dup := seen[question.ID]; dup {
			return fmt.Errorf("%w: duplicate question id %q", ErrInvalidQuiz, question.ID)
		}
		seen[question.ID] = struct{}{}

		if len(question.Options) == 0 {
			return fmt.Errorf("%w: question %d has no options", ErrInvalidQuiz, i)
		}
		options := make(map[OptionID]struct{}, len(question.Options))
		for _, opt := range question.Options {
			if _, dup := options[opt.ID]; dup {
				return fmt.Errorf("%w: question %q repeats option %q", ErrInvalidQuiz, question.ID, opt.ID)
			}
			options[opt.ID] = struct{}{}
		}
		if _, ok := options[question.CorrectOptionID]; !ok {
			return fmt.Errorf("%w: question %q correct option %q not declared", ErrInvalidQuiz, question.ID, question.CorrectOptionID)
		}
	}
	return nil
}

// Summary strips answers so the quiz can be shown before a session starts.
func (q Quiz) Summary() QuizSummary {
	return QuizSummary{
		ID:               q.ID,
		Title:            q.Title,
		Category:         q.Category,
		Difficulty:       q.Difficulty,
		TimeLimitSeconds: q.TimeLimitSeconds,
		QuestionCount:    len(q.Questions),
	}
}

// QuizSummary is the answer-free view of a quiz.
type QuizSummary struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Category         string     `json:"category"`
	Difficulty       Difficulty `json:"difficulty"`
	TimeLimitSeconds int        `json:"timeLimitSeconds"`
	QuestionCount    int        `json:"questionCount"`
}

// QuestionStatus is the per-question lifecycle tag tracked by the navigator.
type QuestionStatus string

const (
	StatusUnvisited QuestionStatus = "unvisited"
	StatusVisited   QuestionStatus = "visited"
	StatusAnswered  QuestionStatus = "answered"
)

// SessionSnapshot is a consistent read of a running session.
type SessionSnapshot struct {
	SessionID        string           `json:"sessionId"`
	QuizID           string           `json:"quizId"`
	QuizTitle        string           `json:"quizTitle"`
	Current          int              `json:"current"`
	Question         Question         `json:"-"`
	Selected         OptionID         `json:"selected,omitempty"`
	Statuses         []QuestionStatus `json:"statuses"`
	Remaining        int              `json:"remaining"`
	InitialTime      int              `json:"initialTime"`
	WarningThreshold int              `json:"warningThreshold"`
	Running          bool             `json:"running"`
	AutoSubmit       bool             `json:"autoSubmit"`
	Submitted        bool             `json:"submitted"`
	ResultID         string           `json:"resultId,omitempty"`
}

// QuestionOutcome combines a question with what the user recorded for it.
type QuestionOutcome struct {
	Question         Question `json:"question"`
	SelectedOptionID OptionID `json:"selectedOptionId,omitempty"`
	Answered         bool     `json:"answered"`
	Correct          bool     `json:"correct"`
}

// Result is the fixed record produced when a session is submitted.
type Result struct {
	ID               string            `json:"id"`
	QuizID           string            `json:"quizId"`
	QuizTitle        string            `json:"quizTitle"`
	Category         string            `json:"category"`
	UserID           string            `json:"userId"`
	CorrectCount     int               `json:"correctCount"`
	TotalCount       int               `json:"totalCount"`
	Percentage       int               `json:"percentage"`
	TimeSpentSeconds int               `json:"timeSpentSeconds"`
	TimedOut         bool              `json:"timedOut"`
	CompletedAt      time.Time         `json:"completedAt"`
	Outcomes         []QuestionOutcome `json:"outcomes"`
}

// Category is a dashboard entry; its ID doubles as the quiz ID.
type Category struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	QuestionCount int        `json:"questionCount"`
	Participants  int        `json:"participants"`
	Difficulty    Difficulty `json:"difficulty"`
}

// LeaderboardPlayer is one pre-ranked row of a leaderboard dataset.
type LeaderboardPlayer struct {
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Score    int    `json:"score"`
	Quizzes  int    `json:"quizzes"`
	Accuracy int    `json:"accuracy"`
	Streak   int    `json:"streak,omitempty"`
	Country  string `json:"country"`
	Category string `json:"category,omitempty"`
}

// UserRank is the signed-in user's own standing on a quiz leaderboard.
type UserRank struct {
	Position         int       `json:"position"`
	Score            int       `json:"score"`
	Accuracy         int       `json:"accuracy"`
	TimeSpentSeconds int       `json:"timeSpentSeconds"`
	CompletedAt      time.Time `json:"completedAt"`
}

// QuizLeaderboard is the per-quiz dataset. Player lists are already ranked.
type QuizLeaderboard struct {
	QuizID         string              `json:"quizId"`
	QuizTitle      string              `json:"quizTitle"`
	Category       string              `json:"category"`
	Difficulty     Difficulty          `json:"difficulty"`
	TotalAttempts  int                 `json:"totalAttempts"`
	AverageScore   int                 `json:"averageScore"`
	AverageSeconds int                 `json:"averageSeconds"`
	TopPlayers     []LeaderboardPlayer `json:"topPlayers"`
	RecentPlayers  []LeaderboardPlayer `json:"recentPlayers"`
	UserRank       *UserRank           `json:"userRank,omitempty"`
}

// GlobalLeaderboard is the site-wide dataset. Player lists are already ranked.
type GlobalLeaderboard struct {
	AllTime    []LeaderboardPlayer `json:"allTime"`
	Weekly     []LeaderboardPlayer `json:"weekly"`
	ByCategory []LeaderboardPlayer `json:"byCategory"`
}
