package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/logging"
	"trivia-quiz-service/internal/respond"
	"trivia-quiz-service/internal/view"
)

// APIHandler serves the JSON pages around the quiz session.
type APIHandler struct {
	quizzes *app.QuizService
	catalog *app.CatalogService
}

func NewAPIHandler(quizzes *app.QuizService, catalog *app.CatalogService) *APIHandler {
	return &APIHandler{quizzes: quizzes, catalog: catalog}
}

type dashboardResponse struct {
	User       auth.Identity     `json:"user"`
	Categories []domain.Category `json:"categories"`
}

func (h *APIHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, _ := auth.FromContext(r.Context())
	respond.JSON(w, http.StatusOK, dashboardResponse{User: id, Categories: categories})
}

func (h *APIHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, categories)
}

func (h *APIHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	summary, err := h.quizzes.QuizSummary(r.Context(), chi.URLParam(r, "quizID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, summary)
}

func (h *APIHandler) Result(w http.ResponseWriter, r *http.Request) {
	result, err := h.quizzes.Result(r.Context(), chi.URLParam(r, "resultID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, view.NewReview(result))
}

func (h *APIHandler) QuizLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.catalog.QuizLeaderboard(r.Context(), chi.URLParam(r, "quizID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, view.NewQuizLeaderboardView(board))
}

func (h *APIHandler) GlobalLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.catalog.GlobalLeaderboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, view.NewGlobalLeaderboardView(board))
}

var notFound = []error{
	domain.ErrQuizNotFound,
	domain.ErrResultNotFound,
	domain.ErrLeaderboardNotFound,
	domain.ErrSessionNotFound,
}

// writeError maps not-found sentinels to 404 and logs everything else as a 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, target := range notFound {
		if errors.Is(err, target) {
			respond.Error(w, http.StatusNotFound, target.Error())
			return
		}
	}
	logging.FromContext(r.Context()).WithError(err).Error("request failed")
	respond.Error(w, http.StatusInternalServerError, "internal server error")
}
