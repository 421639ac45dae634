package memory

import (
	"context"
	"errors"
	"testing"

	"trivia-quiz-service/internal/domain"
)

func TestStaticLeaderboardsKeepOrder(t *testing.T) {
	players := []domain.LeaderboardPlayer{
		{Rank: 1, Name: "Low score first", Score: 10},
		{Rank: 2, Name: "High score second", Score: 99},
	}
	boards := NewStaticLeaderboards(map[string]domain.QuizLeaderboard{
		"1": {QuizID: "1", TopPlayers: players},
	}, domain.GlobalLeaderboard{AllTime: players})

	board, err := boards.QuizLeaderboard(context.Background(), "1")
	if err != nil {
		t.Fatalf("quiz leaderboard: %v", err)
	}
	if board.TopPlayers[0].Name != "Low score first" {
		t.Fatalf("leaderboard must not be re-sorted, got %+v", board.TopPlayers)
	}
	if _, err := boards.QuizLeaderboard(context.Background(), "missing"); !errors.Is(err, domain.ErrLeaderboardNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStaticCatalogReturnsCopy(t *testing.T) {
	catalog := NewStaticCatalog([]domain.Category{{ID: "1", Title: "Science"}})
	first, _ := catalog.Categories(context.Background())
	first[0].Title = "changed"
	second, _ := catalog.Categories(context.Background())
	if second[0].Title != "Science" {
		t.Fatalf("catalog leaked mutation")
	}
}
