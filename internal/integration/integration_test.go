package integration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
	pgloader "trivia-quiz-service/internal/infra/postgres"
	pgmigrations "trivia-quiz-service/internal/infra/postgres/migrations"
	infraredis "trivia-quiz-service/internal/infra/redis"
)

func TestQuizSessionEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seed(t, ctx, pgURL, pgloader.Dataset{
		Quizzes:    []domain.Quiz{sampleQuiz()},
		Categories: []domain.Category{{ID: "quiz-1", Title: "Basics", QuestionCount: 2}},
		Leaderboards: []domain.QuizLeaderboard{{
			QuizID:     "quiz-1",
			TopPlayers: []domain.LeaderboardPlayer{{Rank: 1, Name: "Alex"}, {Rank: 2, Name: "Sam"}},
		}},
	})

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	loader := pgloader.NewQuizLoader(pool)
	catalog := pgloader.NewCatalogLoader(pool)

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	quizRepo := infraredis.NewQuizRepository(redisClient, loader, 5*time.Minute)
	sessionStore := infraredis.NewSessionStore(redisClient, 5*time.Minute)
	results := infraredis.NewResultStore(redisClient, time.Hour)
	service := app.NewQuizService(sessionStore, quizRepo, results, app.SessionOptions{TimeLimit: 60, AutoSubmit: true})

	session, err := service.StartSession(ctx, "quiz-1", "u1")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	defer service.EndSession(session.ID())

	if err := session.SelectAnswer("o2"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := session.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := session.SelectAnswer("o2"); err != nil {
		t.Fatalf("select: %v", err)
	}
	result, err := session.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.CorrectCount != 1 || result.TotalCount != 2 || result.Percentage != 50 {
		t.Fatalf("unexpected result: %+v", result)
	}

	stored, err := service.Result(ctx, result.ID)
	if err != nil {
		t.Fatalf("load stored result: %v", err)
	}
	if stored.Percentage != 50 {
		t.Fatalf("stored result mismatch: %+v", stored)
	}

	if _, err := service.StartSession(ctx, "missing", "u1"); !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}

	board, err := catalog.QuizLeaderboard(ctx, "quiz-1")
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(board.TopPlayers) != 2 || board.TopPlayers[0].Name != "Alex" {
		t.Fatalf("leaderboard order changed: %+v", board.TopPlayers)
	}
	if _, err := catalog.GlobalLeaderboard(ctx); !errors.Is(err, domain.ErrLeaderboardNotFound) {
		t.Fatalf("expected missing global leaderboard, got %v", err)
	}
	categories, err := catalog.Categories(ctx)
	if err != nil || len(categories) != 1 {
		t.Fatalf("categories: %v %+v", err, categories)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "quiz", "POSTGRES_PASSWORD": "quizpass", "POSTGRES_DB": "quizdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://quiz:quizpass@%s:%s/quizdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func seed(t *testing.T, ctx context.Context, dsn string, data pgloader.Dataset) {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := pgloader.NewSeeder(db).Seed(ctx, data); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func sampleQuiz() domain.Quiz {
	return domain.Quiz{
		ID:    "quiz-1",
		Title: "Basics",
		Questions: []domain.Question{
			{
				ID:     "q1",
				Prompt: "What is 2 + 2?",
				Options: []domain.Option{
					{ID: "o1", Text: "3"},
					{ID: "o2", Text: "4"},
					{ID: "o3", Text: "5"},
				},
				CorrectOptionID: "o2",
			},
			{
				ID:     "q2",
				Prompt: "What is 3 + 3?",
				Options: []domain.Option{
					{ID: "o1", Text: "6"},
					{ID: "o2", Text: "9"},
				},
				CorrectOptionID: "o1",
			},
		},
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
