package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/logging"
	"trivia-quiz-service/internal/respond"
)

type RouterConfig struct {
	API  *APIHandler
	WS   *WSHandler
	Auth *auth.Handler
	Gate *auth.Middleware
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(cfg.Gate.Authenticate)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusNotFound, "not found")
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", landing)
	r.Get("/sign-in", cfg.Auth.SignIn)
	r.Get("/sso-callback", cfg.Auth.Callback)
	r.Post("/sign-out", cfg.Auth.SignOut)

	r.Group(func(r chi.Router) {
		r.Use(cfg.Gate.RequireSignedIn)

		r.Get("/dashboard", cfg.API.Dashboard)
		r.Get("/ws/quiz/{quizID}", cfg.WS.ServeWS)

		r.Route("/api", func(r chi.Router) {
			r.Get("/categories", cfg.API.Categories)
			r.Get("/quizzes/{quizID}", cfg.API.Quiz)
			r.Get("/quizzes/{quizID}/leaderboard", cfg.API.QuizLeaderboard)
			r.Get("/results/{resultID}", cfg.API.Result)
			r.Get("/leaderboard", cfg.API.GlobalLeaderboard)
		})
	})
	return r
}

func landing(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.FromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/sign-in", http.StatusFound)
}
