package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/uptrace/bun"

	"trivia-quiz-service/internal/domain"
)

type quizRow struct {
	bun.BaseModel `bun:"table:quizzes"`

	ID   string `bun:"id,pk"`
	Data string `bun:"data,type:jsonb"`
}

type leaderboardRow struct {
	bun.BaseModel `bun:"table:leaderboards"`

	ID   string `bun:"id,pk"`
	Data string `bun:"data,type:jsonb"`
}

type categoryRow struct {
	bun.BaseModel `bun:"table:categories"`

	ID       string `bun:"id,pk"`
	Position int    `bun:"position"`
	Data     string `bun:"data,type:jsonb"`
}

// Dataset is everything the seed command writes.
type Dataset struct {
	Quizzes      []domain.Quiz
	Categories   []domain.Category
	Leaderboards []domain.QuizLeaderboard
	Global       *domain.GlobalLeaderboard
}

// Seeder upserts quiz content through bun. Re-running it overwrites rows in place.
type Seeder struct {
	db *bun.DB
}

func NewSeeder(db *bun.DB) *Seeder {
	return &Seeder{db: db}
}

func (s *Seeder) Seed(ctx context.Context, data Dataset) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, q := range data.Quizzes {
			if err := q.Validate(); err != nil {
				return fmt.Errorf("quiz %s: %w", q.ID, err)
			}
			raw, err := json.Marshal(q)
			if err != nil {
				return fmt.Errorf("marshal quiz: %w", err)
			}
			if err := upsert(ctx, tx, &quizRow{ID: q.ID, Data: string(raw)}); err != nil {
				return fmt.Errorf("upsert quiz %s: %w", q.ID, err)
			}
		}
		for i, c := range data.Categories {
			raw, err := json.Marshal(c)
			if err != nil {
				return fmt.Errorf("marshal category: %w", err)
			}
			row := &categoryRow{ID: c.ID, Position: i, Data: string(raw)}
			if _, err := tx.NewInsert().Model(row).
				On("CONFLICT (id) DO UPDATE").
				Set("data = EXCLUDED.data").
				Set("position = EXCLUDED.position").
				Exec(ctx); err != nil {
				return fmt.Errorf("upsert category %s: %w", c.ID, err)
			}
		}
		for _, b := range data.Leaderboards {
			raw, err := json.Marshal(b)
			if err != nil {
				return fmt.Errorf("marshal leaderboard: %w", err)
			}
			if err := upsert(ctx, tx, &leaderboardRow{ID: b.QuizID, Data: string(raw)}); err != nil {
				return fmt.Errorf("upsert leaderboard %s: %w", b.QuizID, err)
			}
		}
		if data.Global != nil {
			raw, err := json.Marshal(data.Global)
			if err != nil {
				return fmt.Errorf("marshal global leaderboard: %w", err)
			}
			if err := upsert(ctx, tx, &leaderboardRow{ID: globalLeaderboardID, Data: string(raw)}); err != nil {
				return fmt.Errorf("upsert global leaderboard: %w", err)
			}
		}
		return nil
	})
}

func upsert(ctx context.Context, tx bun.Tx, model interface{}) error {
	_, err := tx.NewInsert().Model(model).
		On("CONFLICT (id) DO UPDATE").
		Set("data = EXCLUDED.data").
		Exec(ctx)
	return err
}
