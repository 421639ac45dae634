package memory

import (
	"context"

	"trivia-quiz-service/internal/domain"
)

// StaticCatalog serves an injected category list.
type StaticCatalog struct {
	categories []domain.Category
}

func NewStaticCatalog(categories []domain.Category) *StaticCatalog {
	return &StaticCatalog{categories: categories}
}

func (c *StaticCatalog) Categories(context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out, nil
}

// StaticLeaderboards serves injected, already ranked leaderboard datasets.
type StaticLeaderboards struct {
	quizzes map[string]domain.QuizLeaderboard
	global  domain.GlobalLeaderboard
}

func NewStaticLeaderboards(quizzes map[string]domain.QuizLeaderboard, global domain.GlobalLeaderboard) *StaticLeaderboards {
	return &StaticLeaderboards{quizzes: quizzes, global: global}
}

func (l *StaticLeaderboards) QuizLeaderboard(_ context.Context, quizID string) (domain.QuizLeaderboard, error) {
	board, ok := l.quizzes[quizID]
	if !ok {
		return domain.QuizLeaderboard{}, domain.ErrLeaderboardNotFound
	}
	return board, nil
}

func (l *StaticLeaderboards) GlobalLeaderboard(context.Context) (domain.GlobalLeaderboard, error) {
	return l.global, nil
}
