package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"trivia-quiz-service/internal/domain"
)

// globalLeaderboardID is the leaderboards row holding the site-wide board.
const globalLeaderboardID = "global"

// CatalogLoader reads dashboard categories and leaderboards stored as JSONB.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) Categories(ctx context.Context) ([]domain.Category, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM categories ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		var c domain.Category
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("unmarshal category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (l *CatalogLoader) QuizLeaderboard(ctx context.Context, quizID string) (domain.QuizLeaderboard, error) {
	var board domain.QuizLeaderboard
	if err := l.loadBoard(ctx, quizID, &board); err != nil {
		return domain.QuizLeaderboard{}, err
	}
	return board, nil
}

func (l *CatalogLoader) GlobalLeaderboard(ctx context.Context) (domain.GlobalLeaderboard, error) {
	var board domain.GlobalLeaderboard
	if err := l.loadBoard(ctx, globalLeaderboardID, &board); err != nil {
		return domain.GlobalLeaderboard{}, err
	}
	return board, nil
}

func (l *CatalogLoader) loadBoard(ctx context.Context, id string, dst interface{}) error {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM leaderboards WHERE id=$1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("leaderboard %s: %w", id, domain.ErrLeaderboardNotFound)
	}
	if err != nil {
		return fmt.Errorf("load leaderboard: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("unmarshal leaderboard: %w", err)
	}
	return nil
}
