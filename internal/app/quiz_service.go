package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/logging"
)

// SessionRepository abstracts where live sessions are tracked (in-memory, Redis, etc).
type SessionRepository interface {
	Save(session *Session)
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}

// QuizRepository loads quiz content (from cache/backing store).
type QuizRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// ResultRepository keeps submitted results long enough for the review view.
type ResultRepository interface {
	SaveResult(ctx context.Context, result domain.Result) error
	GetResult(ctx context.Context, resultID string) (domain.Result, error)
}

// QuizService contains the quiz-taking use cases.
type QuizService struct {
	sessions SessionRepository
	quizzes  QuizRepository
	results  ResultRepository
	opts     SessionOptions
	newID    func() string
}

func NewQuizService(sessions SessionRepository, quizzes QuizRepository, results ResultRepository, opts SessionOptions) *QuizService {
	return &QuizService{
		sessions: sessions,
		quizzes:  quizzes,
		results:  results,
		opts:     opts,
		newID:    uuid.NewString,
	}
}

// QuizSummary returns the answer-free description of a quiz.
func (s *QuizService) QuizSummary(ctx context.Context, quizID string) (domain.QuizSummary, error) {
	q, err := s.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return domain.QuizSummary{}, err
	}
	summary := q.Summary()
	if summary.TimeLimitSeconds <= 0 {
		summary.TimeLimitSeconds = s.opts.TimeLimit
	}
	return summary, nil
}

// StartSession creates a fresh session for quizID and registers it. The
// caller starts the countdown and must call EndSession when leaving.
func (s *QuizService) StartSession(ctx context.Context, quizID, userID string) (*Session, error) {
	q, err := s.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	session, err := NewSession(s.newID(), userID, q, s.opts)
	if err != nil {
		return nil, err
	}
	session.onSubmit = s.storeResult

	s.sessions.Save(session)
	logging.FromContext(ctx).WithFields(logrus.Fields{
		"session_id": session.ID(),
		"quiz_id":    quizID,
		"user_id":    userID,
	}).Info("quiz session started")
	return session, nil
}

// Session looks up a live session.
func (s *QuizService) Session(sessionID string) (*Session, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// EndSession stops the session's countdown and forgets it.
func (s *QuizService) EndSession(sessionID string) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return
	}
	session.Close()
	s.sessions.Delete(sessionID)
}

// Result returns a stored result for the review view.
func (s *QuizService) Result(ctx context.Context, resultID string) (domain.Result, error) {
	return s.results.GetResult(ctx, resultID)
}

func (s *QuizService) storeResult(result domain.Result) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log := logging.Base().WithFields(logrus.Fields{
		"result_id": result.ID,
		"quiz_id":   result.QuizID,
		"user_id":   result.UserID,
	})
	if err := s.results.SaveResult(ctx, result); err != nil {
		log.WithError(err).Error("failed to store quiz result")
		return
	}
	log.WithFields(logrus.Fields{
		"correct":    result.CorrectCount,
		"total":      result.TotalCount,
		"percentage": result.Percentage,
		"timed_out":  result.TimedOut,
	}).Info("quiz submitted")
}
