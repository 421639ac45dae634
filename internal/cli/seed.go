package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"trivia-quiz-service/internal/config"
	"trivia-quiz-service/internal/infra/postgres"
	"trivia-quiz-service/internal/logging"
	"trivia-quiz-service/internal/sample"
)

// NewSeedCmd migrates Postgres and upserts the demo quizzes, categories and leaderboards.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample quiz dataset into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runSeed(cmd.Context(), cfg)
		},
	}
}

func runSeed(ctx context.Context, cfg config.Config) error {
	db, err := openBun(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrateDB(ctx, db); err != nil {
		return err
	}

	data := sampleDataset()
	if err := postgres.NewSeeder(db).Seed(ctx, data); err != nil {
		return err
	}
	logging.FromContext(ctx).WithFields(logrus.Fields{
		"quizzes":      len(data.Quizzes),
		"categories":   len(data.Categories),
		"leaderboards": len(data.Leaderboards),
	}).Info("sample data seeded")
	return nil
}

func sampleDataset() postgres.Dataset {
	quizzes := sample.Quizzes()
	boards := sample.QuizLeaderboards()
	global := sample.GlobalLeaderboard()

	data := postgres.Dataset{
		Categories: sample.Categories(),
		Global:     &global,
	}
	// follow category order so reseeding is deterministic
	for _, c := range data.Categories {
		if q, ok := quizzes[c.ID]; ok {
			data.Quizzes = append(data.Quizzes, q)
		}
		if b, ok := boards[c.ID]; ok {
			data.Leaderboards = append(data.Leaderboards, b)
		}
	}
	return data
}

