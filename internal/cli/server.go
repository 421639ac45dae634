package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/config"
	"trivia-quiz-service/internal/infra/memory"
	pgloader "trivia-quiz-service/internal/infra/postgres"
	infraredis "trivia-quiz-service/internal/infra/redis"
	"trivia-quiz-service/internal/logging"
	"trivia-quiz-service/internal/quiz"
	"trivia-quiz-service/internal/sample"
	transport "trivia-quiz-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logging.Base()

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	deps, cleanup, err := buildDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	handler, err := buildRouter(cfg, deps)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + finalPort,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("port", finalPort).Info("starting quiz service")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

type deps struct {
	quizzes *app.QuizService
	catalog *app.CatalogService
}

// buildDeps picks Postgres or the sample data as the content source and Redis
// or memory for caches, sessions and results.
func buildDeps(ctx context.Context, cfg config.Config) (deps, func(), error) {
	log := logging.Base()
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			_ = redisClient.Close()
			return deps{}, func() {}, fmt.Errorf("connect redis: %w", err)
		}
		closers = append(closers, func() { _ = redisClient.Close() })
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		var err error
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			cleanup()
			return deps{}, func() {}, fmt.Errorf("connect postgres: %w", err)
		}
		closers = append(closers, pool.Close)
	}

	var loader memory.QuizLoader = memory.NewStaticQuizLoader(sample.Quizzes())
	var catalogRepo app.CatalogRepository = memory.NewStaticCatalog(sample.Categories())
	var boards app.LeaderboardRepository = memory.NewStaticLeaderboards(sample.QuizLeaderboards(), sample.GlobalLeaderboard())
	if pool != nil {
		loader = pgloader.NewQuizLoader(pool)
		catalogLoader := pgloader.NewCatalogLoader(pool)
		catalogRepo = catalogLoader
		boards = catalogLoader
	}

	quizTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	resultTTL := config.TTLDuration(cfg.Results.TTL, 24*time.Hour)

	var (
		quizRepo app.QuizRepository
		store    app.SessionRepository
		results  app.ResultRepository
	)
	if redisClient != nil {
		quizRepo = infraredis.NewQuizRepository(redisClient, loader, quizTTL)
		store = infraredis.NewSessionStore(redisClient, config.TTLDuration(cfg.Redis.TTL, 10*time.Minute))
		results = infraredis.NewResultStore(redisClient, resultTTL)
	} else {
		quizRepo = memory.NewQuizRepository(loader, quizTTL)
		store = memory.NewSessionStore()
		results = memory.NewResultStore(resultTTL)
	}

	opts := app.SessionOptions{
		TimeLimit:        config.Seconds(cfg.Quiz.TimeLimit, 30*60),
		WarningThreshold: config.Seconds(cfg.Quiz.WarningThreshold, quiz.DefaultWarningThreshold),
		AutoSubmit:       cfg.AutoSubmitEnabled(),
		TickInterval:     config.TTLDuration(cfg.Quiz.TickInterval, time.Second),
	}
	log.WithFields(logrus.Fields{
		"redis":       redisClient != nil,
		"postgres":    pool != nil,
		"time_limit":  opts.TimeLimit,
		"auto_submit": opts.AutoSubmit,
	}).Info("quiz service configured")

	return deps{
		quizzes: app.NewQuizService(store, quizRepo, results, opts),
		catalog: app.NewCatalogService(catalogRepo, boards),
	}, cleanup, nil
}

func buildRouter(cfg config.Config, d deps) (http.Handler, error) {
	if cfg.Auth.Enabled && cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth enabled but no jwt secret configured")
	}
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.Auth.ClientID,
		ClientSecret: cfg.Auth.ClientSecret,
		RedirectURL:  cfg.Auth.RedirectURL,
		Scopes:       cfg.Auth.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.Auth.AuthURL,
			TokenURL: cfg.Auth.TokenURL,
		},
	}

	return transport.NewRouter(transport.RouterConfig{
		API:  transport.NewAPIHandler(d.quizzes, d.catalog),
		WS:   transport.NewWSHandler(d.quizzes),
		Auth: auth.NewHandler(oauthCfg, verifier, cfg.Auth.CookieName, cfg.Auth.Enabled),
		Gate: auth.NewMiddleware(verifier, cfg.Auth.CookieName, cfg.Auth.Enabled),
	}), nil
}
