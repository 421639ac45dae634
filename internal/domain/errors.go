package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a quiz session has not been started or was already closed.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrSessionSubmitted is returned when a submitted session receives another mutation.
	ErrSessionSubmitted = errors.New("quiz session already submitted")
	// ErrQuizNotFound indicates the quiz content could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrEmptyQuiz indicates a quiz without questions.
	ErrEmptyQuiz = errors.New("quiz has no questions")
	// ErrInvalidQuiz indicates inconsistent quiz content (duplicate IDs, unknown correct option).
	ErrInvalidQuiz = errors.New("invalid quiz")
	// ErrQuestionIndexOutOfRange indicates navigation to a question outside the quiz.
	ErrQuestionIndexOutOfRange = errors.New("question index out of range")
	// ErrOptionNotFound indicates a selected option ID is not declared by the current question.
	ErrOptionNotFound = errors.New("option not found")
	// ErrResultNotFound indicates an unknown or expired result ID.
	ErrResultNotFound = errors.New("result not found")
	// ErrLeaderboardNotFound indicates no leaderboard dataset exists for the quiz.
	ErrLeaderboardNotFound = errors.New("leaderboard not found")
)
