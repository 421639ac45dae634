package view

import (
	"time"

	"trivia-quiz-service/internal/domain"
)

// Rank icons for the podium.
const (
	IconCrown  = "crown"
	IconTrophy = "trophy"
	IconMedal  = "medal"
)

type PlayerRow struct {
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Score    int    `json:"score"`
	Quizzes  int    `json:"quizzes"`
	Accuracy int    `json:"accuracy"`
	Streak   int    `json:"streak,omitempty"`
	Country  string `json:"country,omitempty"`
	Category string `json:"category,omitempty"`
	RankIcon string `json:"rankIcon,omitempty"`
	TopThree bool   `json:"topThree"`
}

type UserRankCard struct {
	Position    int       `json:"position"`
	Score       int       `json:"score"`
	Accuracy    int       `json:"accuracy"`
	TimeSpent   string    `json:"timeSpent"`
	CompletedAt time.Time `json:"completedAt"`
}

type QuizLeaderboardView struct {
	QuizID        string        `json:"quizId"`
	QuizTitle     string        `json:"quizTitle"`
	Category      string        `json:"category"`
	Difficulty    string        `json:"difficulty"`
	TotalAttempts int           `json:"totalAttempts"`
	AverageScore  int           `json:"averageScore"`
	AverageTime   string        `json:"averageTime"`
	TopPlayers    []PlayerRow   `json:"topPlayers"`
	RecentPlayers []PlayerRow   `json:"recentPlayers"`
	UserRank      *UserRankCard `json:"userRank,omitempty"`
}

type GlobalLeaderboardView struct {
	AllTime    []PlayerRow `json:"allTime"`
	Weekly     []PlayerRow `json:"weekly"`
	ByCategory []PlayerRow `json:"byCategory"`
}

// RankIcon returns the podium icon for ranks 1 to 3.
func RankIcon(rank int) string {
	switch rank {
	case 1:
		return IconCrown
	case 2:
		return IconTrophy
	case 3:
		return IconMedal
	default:
		return ""
	}
}

// PlayerRows keeps the input order; rankings arrive precomputed.
func PlayerRows(players []domain.LeaderboardPlayer) []PlayerRow {
	rows := make([]PlayerRow, len(players))
	for i, p := range players {
		rows[i] = PlayerRow{
			Rank:     p.Rank,
			Name:     p.Name,
			Avatar:   p.Avatar,
			Score:    p.Score,
			Quizzes:  p.Quizzes,
			Accuracy: p.Accuracy,
			Streak:   p.Streak,
			Country:  p.Country,
			Category: p.Category,
			RankIcon: RankIcon(p.Rank),
			TopThree: p.Rank >= 1 && p.Rank <= 3,
		}
	}
	return rows
}

func NewQuizLeaderboardView(b domain.QuizLeaderboard) QuizLeaderboardView {
	v := QuizLeaderboardView{
		QuizID:        b.QuizID,
		QuizTitle:     b.QuizTitle,
		Category:      b.Category,
		Difficulty:    capitalise(b.Difficulty),
		TotalAttempts: b.TotalAttempts,
		AverageScore:  b.AverageScore,
		AverageTime:   FormatClock(b.AverageSeconds),
		TopPlayers:    PlayerRows(b.TopPlayers),
		RecentPlayers: PlayerRows(b.RecentPlayers),
	}
	if b.UserRank != nil {
		v.UserRank = &UserRankCard{
			Position:    b.UserRank.Position,
			Score:       b.UserRank.Score,
			Accuracy:    b.UserRank.Accuracy,
			TimeSpent:   FormatClock(b.UserRank.TimeSpentSeconds),
			CompletedAt: b.UserRank.CompletedAt,
		}
	}
	return v
}

func NewGlobalLeaderboardView(b domain.GlobalLeaderboard) GlobalLeaderboardView {
	return GlobalLeaderboardView{
		AllTime:    PlayerRows(b.AllTime),
		Weekly:     PlayerRows(b.Weekly),
		ByCategory: PlayerRows(b.ByCategory),
	}
}
