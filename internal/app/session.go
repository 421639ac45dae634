package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/quiz"
)

// EventType tags what changed in a session.
type EventType string

const (
	EventState     EventType = "state"
	EventTick      EventType = "tick"
	EventSubmitted EventType = "submitted"
)

// Event is pushed to session subscribers after every change.
type Event struct {
	Type      EventType
	Remaining int
	Result    *domain.Result
}

// SessionOptions configures the countdown of new sessions.
type SessionOptions struct {
	// TimeLimit applies to quizzes without their own limit, in seconds.
	TimeLimit        int
	WarningThreshold int
	AutoSubmit       bool
	TickInterval     time.Duration
}

// Session is one run-through of a quiz. It owns the navigator and the single
// countdown; user intents and timer ticks are serialised by mu.
type Session struct {
	id        string
	userID    string
	quiz      domain.Quiz
	startedAt time.Time
	now       func() time.Time
	newID     func() string

	mu          sync.RWMutex
	nav         *quiz.Navigator
	timer       *quiz.Timer
	result      *domain.Result
	closed      bool
	subscribers map[chan Event]struct{}

	// onSubmit receives the result exactly once, outside mu.
	onSubmit func(domain.Result)
}

// NewSession builds a session for quiz. The countdown is created running but
// only advances once Start is called.
func NewSession(id, userID string, q domain.Quiz, opts SessionOptions) (*Session, error) {
	return newSessionWithClock(id, userID, q, opts, time.Now, uuid.NewString)
}

// NewSessionWithClock is test-only for deterministic timestamps and result IDs.
func NewSessionWithClock(id, userID string, q domain.Quiz, opts SessionOptions, now func() time.Time, newID func() string) (*Session, error) {
	return newSessionWithClock(id, userID, q, opts, now, newID)
}

func newSessionWithClock(id, userID string, q domain.Quiz, opts SessionOptions, now func() time.Time, newID func() string) (*Session, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	nav, err := quiz.NewNavigator(q.Questions)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:          id,
		userID:      userID,
		quiz:        q,
		startedAt:   now(),
		now:         now,
		newID:       newID,
		nav:         nav,
		subscribers: make(map[chan Event]struct{}),
	}

	limit := q.TimeLimitSeconds
	if limit <= 0 {
		limit = opts.TimeLimit
	}
	s.timer = quiz.NewTimer(quiz.TimerConfig{
		InitialTime:      limit,
		WarningThreshold: opts.WarningThreshold,
		AutoSubmit:       opts.AutoSubmit,
		Interval:         opts.TickInterval,
		OnTimeUpdate:     s.onTick,
		OnTimeUp:         s.onTimeUp,
	})
	return s, nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) QuizID() string { return s.quiz.ID }

func (s *Session) UserID() string { return s.userID }

// Timer exposes the countdown so tests can drive ticks deterministically.
func (s *Session) Timer() *quiz.Timer { return s.timer }

// Start begins the countdown. Ticks stop when ctx is done or the session is closed.
func (s *Session) Start(ctx context.Context) {
	s.timer.Start(ctx)
}

func (s *Session) SelectAnswer(optionID domain.OptionID) error {
	return s.mutate(func(nav *quiz.Navigator) error { return nav.SelectAnswer(optionID) })
}

func (s *Session) GoTo(index int) error {
	return s.mutate(func(nav *quiz.Navigator) error { return nav.GoTo(index) })
}

func (s *Session) Next() error {
	return s.mutate(func(nav *quiz.Navigator) error { return nav.Next() })
}

func (s *Session) Previous() error {
	return s.mutate(func(nav *quiz.Navigator) error { return nav.Previous() })
}

func (s *Session) Pause() error {
	return s.mutate(func(*quiz.Navigator) error {
		s.timer.Pause()
		return nil
	})
}

func (s *Session) Resume() error {
	return s.mutate(func(*quiz.Navigator) error {
		s.timer.Resume()
		return nil
	})
}

func (s *Session) mutate(fn func(nav *quiz.Navigator) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrSessionNotFound
	}
	if s.nav.Submitted() {
		return domain.ErrSessionSubmitted
	}
	if err := fn(s.nav); err != nil {
		return err
	}
	s.broadcastLocked(Event{Type: EventState, Remaining: s.timer.Remaining()})
	return nil
}

// Submit freezes the session and returns its result. Submitting twice returns
// the first result.
func (s *Session) Submit() (domain.Result, error) {
	return s.submit(false)
}

func (s *Session) onTimeUp() {
	_, _ = s.submit(true)
}

func (s *Session) submit(timedOut bool) (domain.Result, error) {
	s.mu.Lock()
	if s.result != nil {
		result := *s.result
		s.mu.Unlock()
		return result, nil
	}
	if s.closed {
		s.mu.Unlock()
		return domain.Result{}, domain.ErrSessionNotFound
	}

	s.nav.Submit()
	s.timer.Stop()

	answers := s.nav.Answers()
	score := quiz.ScoreAnswers(s.quiz.Questions, answers)
	result := domain.Result{
		ID:               s.newID(),
		QuizID:           s.quiz.ID,
		QuizTitle:        s.quiz.Title,
		Category:         s.quiz.Category,
		UserID:           s.userID,
		CorrectCount:     score.Correct,
		TotalCount:       score.Total,
		Percentage:       score.Percentage(),
		TimeSpentSeconds: s.timer.Elapsed(),
		TimedOut:         timedOut,
		CompletedAt:      s.now(),
		Outcomes:         quiz.Outcomes(s.quiz.Questions, answers),
	}
	s.result = &result
	s.broadcastLocked(Event{Type: EventSubmitted, Remaining: s.timer.Remaining(), Result: &result})
	hook := s.onSubmit
	s.mu.Unlock()

	if hook != nil {
		hook(result)
	}
	return result, nil
}

func (s *Session) onTick(remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.result != nil {
		return
	}
	s.broadcastLocked(Event{Type: EventTick, Remaining: remaining})
}

// Result returns the submitted result, if any.
func (s *Session) Result() (domain.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return domain.Result{}, false
	}
	return *s.result, true
}

// Snapshot returns a consistent view of the session for rendering.
func (s *Session) Snapshot() domain.SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.nav.Current()
	selected, _ := s.nav.Answer(current)
	snap := domain.SessionSnapshot{
		SessionID:        s.id,
		QuizID:           s.quiz.ID,
		QuizTitle:        s.quiz.Title,
		Current:          current,
		Question:         s.nav.CurrentQuestion(),
		Selected:         selected,
		Statuses:         s.nav.Statuses(),
		Remaining:        s.timer.Remaining(),
		InitialTime:      s.timer.Initial(),
		WarningThreshold: s.timer.WarningThreshold(),
		Running:          s.timer.Running(),
		AutoSubmit:       s.timer.AutoSubmit(),
		Submitted:        s.nav.Submitted(),
	}
	if s.result != nil {
		snap.ResultID = s.result.ID
	}
	return snap
}

// Close stops the countdown and releases subscribers. It is safe to call repeatedly.
func (s *Session) Close() {
	s.timer.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
}

// Subscribe returns a channel of session events, seeded with the current
// state. The caller must invoke cancel to avoid leaks.
func (s *Session) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 8)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	s.subscribers[ch] = struct{}{}
	ch <- Event{Type: EventState, Remaining: s.timer.Remaining()}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Session) broadcastLocked(ev Event) {
	for ch := range s.subscribers {
		select {
		case ch <- ev:
		default:
			// Drop the oldest queued event so a slow reader never stalls the countdown.
			select {
			case <-ch:
			default:
			}
			ch <- ev
		}
	}
}
