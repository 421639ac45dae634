package app

import (
	"context"

	"trivia-quiz-service/internal/domain"
)

// CatalogRepository lists the dashboard categories.
type CatalogRepository interface {
	Categories(ctx context.Context) ([]domain.Category, error)
}

// LeaderboardRepository serves pre-ranked leaderboard datasets.
type LeaderboardRepository interface {
	QuizLeaderboard(ctx context.Context, quizID string) (domain.QuizLeaderboard, error)
	GlobalLeaderboard(ctx context.Context) (domain.GlobalLeaderboard, error)
}

// CatalogService backs the dashboard and leaderboard pages. It passes
// datasets through unchanged; ranking is the data source's concern.
type CatalogService struct {
	catalog      CatalogRepository
	leaderboards LeaderboardRepository
}

func NewCatalogService(catalog CatalogRepository, leaderboards LeaderboardRepository) *CatalogService {
	return &CatalogService{catalog: catalog, leaderboards: leaderboards}
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.catalog.Categories(ctx)
}

func (s *CatalogService) QuizLeaderboard(ctx context.Context, quizID string) (domain.QuizLeaderboard, error) {
	return s.leaderboards.QuizLeaderboard(ctx, quizID)
}

func (s *CatalogService) GlobalLeaderboard(ctx context.Context) (domain.GlobalLeaderboard, error) {
	return s.leaderboards.GlobalLeaderboard(ctx)
}
