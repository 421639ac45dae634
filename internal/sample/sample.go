// Package sample holds the demo datasets the server falls back to when no
// Postgres is configured. Every accessor returns a fresh copy.
package sample

import (
	"time"

	"trivia-quiz-service/internal/domain"
)

const defaultTimeLimit = 1800

type quizSpec struct {
	category   domain.Category
	categories []string // question categories drawn from the bank; empty means all
}

var quizSpecs = []quizSpec{
	{
		category: domain.Category{
			ID:           "1",
			Title:        "Science & Technology",
			Description:  "Test your knowledge of physics, chemistry, biology, and tech",
			Participants: 12500,
			Difficulty:   domain.DifficultyMixed,
		},
		categories: []string{"Science", "Chemistry", "Biology", "Technology"},
	},
	{
		category: domain.Category{
			ID:           "2",
			Title:        "History & Geography",
			Description:  "Explore world history, cultures, and geographical wonders",
			Participants: 8300,
			Difficulty:   domain.DifficultyMedium,
		},
		categories: []string{"History", "Geography"},
	},
	{
		category: domain.Category{
			ID:           "3",
			Title:        "Sports & Entertainment",
			Description:  "Movies, music, sports, and pop culture trivia",
			Participants: 15200,
			Difficulty:   domain.DifficultyEasy,
		},
		categories: []string{"Sports", "Art"},
	},
	{
		category: domain.Category{
			ID:           "4",
			Title:        "Mathematics",
			Description:  "From basic arithmetic to advanced calculus",
			Participants: 6800,
			Difficulty:   domain.DifficultyHard,
		},
		categories: []string{"Mathematics"},
	},
	{
		category: domain.Category{
			ID:           "5",
			Title:        "Literature & Arts",
			Description:  "Classic literature, poetry, and fine arts",
			Participants: 4900,
			Difficulty:   domain.DifficultyMedium,
		},
		categories: []string{"Literature", "Art"},
	},
	{
		category: domain.Category{
			ID:           "6",
			Title:        "General Knowledge",
			Description:  "A mix of everything - perfect for testing broad knowledge",
			Participants: 22100,
			Difficulty:   domain.DifficultyMixed,
		},
	},
}

// Quizzes returns one quiz per category, keyed by quiz ID.
func Quizzes() map[string]domain.Quiz {
	out := make(map[string]domain.Quiz, len(quizSpecs))
	for _, spec := range quizSpecs {
		out[spec.category.ID] = domain.Quiz{
			ID:               spec.category.ID,
			Title:            spec.category.Title,
			Category:         spec.category.Title,
			Difficulty:       spec.category.Difficulty,
			TimeLimitSeconds: defaultTimeLimit,
			Questions:        questionsIn(spec.categories),
		}
	}
	return out
}

// Categories returns the dashboard entries in display order.
func Categories() []domain.Category {
	out := make([]domain.Category, 0, len(quizSpecs))
	for _, spec := range quizSpecs {
		c := spec.category
		c.QuestionCount = len(questionsIn(spec.categories))
		out = append(out, c)
	}
	return out
}

func questionsIn(categories []string) []domain.Question {
	var out []domain.Question
	for _, q := range questionBank {
		if len(categories) == 0 || contains(categories, q.Category) {
			q.Options = append([]domain.Option(nil), q.Options...)
			out = append(out, q)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// QuizLeaderboards returns the per-quiz leaderboard datasets.
func QuizLeaderboards() map[string]domain.QuizLeaderboard {
	completedAt := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	out := make(map[string]domain.QuizLeaderboard, len(quizSpecs))
	for _, spec := range quizSpecs {
		out[spec.category.ID] = domain.QuizLeaderboard{
			QuizID:         spec.category.ID,
			QuizTitle:      spec.category.Title,
			Category:       spec.category.Title,
			Difficulty:     spec.category.Difficulty,
			TotalAttempts:  1247,
			AverageScore:   73,
			AverageSeconds: 285,
			TopPlayers: []domain.LeaderboardPlayer{
				{Rank: 1, Name: "Alex Chen", Avatar: "AC", Score: 2847, Quizzes: 1, Accuracy: 100, Country: "US"},
				{Rank: 2, Name: "Sarah Johnson", Avatar: "SJ", Score: 2756, Quizzes: 1, Accuracy: 95, Country: "GB"},
				{Rank: 3, Name: "Miguel Rodriguez", Avatar: "MR", Score: 2698, Quizzes: 1, Accuracy: 92, Country: "ES"},
				{Rank: 4, Name: "Emma Wilson", Avatar: "EW", Score: 2634, Quizzes: 1, Accuracy: 88, Country: "CA"},
				{Rank: 5, Name: "Yuki Tanaka", Avatar: "YT", Score: 2587, Quizzes: 1, Accuracy: 85, Country: "JP"},
			},
			RecentPlayers: []domain.LeaderboardPlayer{
				{Rank: 1, Name: "David Kim", Avatar: "DK", Score: 487, Quizzes: 1, Accuracy: 96, Country: "KR"},
				{Rank: 2, Name: "Lisa Anderson", Avatar: "LA", Score: 456, Quizzes: 1, Accuracy: 93, Country: "SE"},
				{Rank: 3, Name: "Marco Silva", Avatar: "MS", Score: 423, Quizzes: 1, Accuracy: 91, Country: "BR"},
			},
			UserRank: &domain.UserRank{
				Position:         23,
				Score:            85,
				Accuracy:         85,
				TimeSpentSeconds: 245,
				CompletedAt:      completedAt,
			},
		}
	}
	return out
}

// GlobalLeaderboard returns the site-wide dataset.
func GlobalLeaderboard() domain.GlobalLeaderboard {
	return domain.GlobalLeaderboard{
		AllTime: []domain.LeaderboardPlayer{
			{Rank: 1, Name: "Alex Chen", Avatar: "AC", Score: 2847, Quizzes: 156, Accuracy: 94, Streak: 28, Country: "US"},
			{Rank: 2, Name: "Sarah Johnson", Avatar: "SJ", Score: 2756, Quizzes: 142, Accuracy: 91, Streak: 22, Country: "GB"},
			{Rank: 3, Name: "Miguel Rodriguez", Avatar: "MR", Score: 2698, Quizzes: 138, Accuracy: 89, Streak: 19, Country: "ES"},
			{Rank: 4, Name: "Emma Wilson", Avatar: "EW", Score: 2634, Quizzes: 134, Accuracy: 92, Streak: 15, Country: "CA"},
			{Rank: 5, Name: "Yuki Tanaka", Avatar: "YT", Score: 2587, Quizzes: 129, Accuracy: 88, Streak: 31, Country: "JP"},
		},
		Weekly: []domain.LeaderboardPlayer{
			{Rank: 1, Name: "David Kim", Avatar: "DK", Score: 487, Quizzes: 23, Accuracy: 96, Country: "KR"},
			{Rank: 2, Name: "Lisa Anderson", Avatar: "LA", Score: 456, Quizzes: 21, Accuracy: 93, Country: "SE"},
			{Rank: 3, Name: "Marco Silva", Avatar: "MS", Score: 423, Quizzes: 19, Accuracy: 91, Country: "BR"},
		},
		ByCategory: []domain.LeaderboardPlayer{
			{Rank: 1, Name: "Dr. Physics", Avatar: "DP", Score: 1247, Quizzes: 45, Accuracy: 97, Country: "DE", Category: "Science"},
			{Rank: 2, Name: "History Buff", Avatar: "HB", Score: 1189, Quizzes: 52, Accuracy: 94, Country: "FR", Category: "History"},
			{Rank: 3, Name: "Math Wizard", Avatar: "MW", Score: 1156, Quizzes: 38, Accuracy: 95, Country: "IN", Category: "Mathematics"},
		},
	}
}
