package quiz

import "trivia-quiz-service/internal/domain"

// Navigator tracks the current position, per-question status and recorded
// answers across a fixed question sequence. It is not safe for concurrent
// use; the owning session serialises access.
type Navigator struct {
	questions []domain.Question
	current   int
	statuses  []domain.QuestionStatus
	answers   map[int]domain.OptionID
	submitted bool
}

// StatusCounts tallies statuses for the progress sidebar.
type StatusCounts struct {
	Answered  int `json:"answered"`
	Visited   int `json:"visited"`
	Unvisited int `json:"unvisited"`
}

// NewNavigator starts on the first question, which is marked visited.
func NewNavigator(questions []domain.Question) (*Navigator, error) {
	if len(questions) == 0 {
		return nil, domain.ErrEmptyQuiz
	}
	statuses := make([]domain.QuestionStatus, len(questions))
	for i := range statuses {
		statuses[i] = domain.StatusUnvisited
	}
	statuses[0] = domain.StatusVisited
	return &Navigator{
		questions: questions,
		statuses:  statuses,
		answers:   make(map[int]domain.OptionID),
	}, nil
}

func (n *Navigator) Len() int { return len(n.questions) }

func (n *Navigator) Current() int { return n.current }

func (n *Navigator) CurrentQuestion() domain.Question { return n.questions[n.current] }

func (n *Navigator) Submitted() bool { return n.submitted }

// Status returns the status of question i, or unvisited when i is out of range.
func (n *Navigator) Status(i int) domain.QuestionStatus {
	if i < 0 || i >= len(n.statuses) {
		return domain.StatusUnvisited
	}
	return n.statuses[i]
}

// Statuses returns a copy of the status array.
func (n *Navigator) Statuses() []domain.QuestionStatus {
	out := make([]domain.QuestionStatus, len(n.statuses))
	copy(out, n.statuses)
	return out
}

// Answer returns the recorded option for question i.
func (n *Navigator) Answer(i int) (domain.OptionID, bool) {
	id, ok := n.answers[i]
	return id, ok
}

// Answers returns a copy of the answer map.
func (n *Navigator) Answers() map[int]domain.OptionID {
	out := make(map[int]domain.OptionID, len(n.answers))
	for k, v := range n.answers {
		out[k] = v
	}
	return out
}

func (n *Navigator) Counts() StatusCounts {
	var c StatusCounts
	for _, s := range n.statuses {
		switch s {
		case domain.StatusAnswered:
			c.Answered++
		case domain.StatusVisited:
			c.Visited++
		default:
			c.Unvisited++
		}
	}
	return c
}

// SelectAnswer records optionID for the current question. Reselecting
// overwrites the previous choice.
func (n *Navigator) SelectAnswer(optionID domain.OptionID) error {
	if n.submitted {
		return domain.ErrSessionSubmitted
	}
	if !n.questions[n.current].HasOption(optionID) {
		return domain.ErrOptionNotFound
	}
	n.answers[n.current] = optionID
	n.statuses[n.current] = domain.StatusAnswered
	return nil
}

// GoTo moves to index. The question being left is marked visited unless it
// has an answer; the destination is promoted from unvisited to visited.
func (n *Navigator) GoTo(index int) error {
	if n.submitted {
		return domain.ErrSessionSubmitted
	}
	if index < 0 || index >= len(n.questions) {
		return domain.ErrQuestionIndexOutOfRange
	}
	if _, answered := n.answers[n.current]; !answered {
		n.statuses[n.current] = domain.StatusVisited
	}
	if n.statuses[index] == domain.StatusUnvisited {
		n.statuses[index] = domain.StatusVisited
	}
	n.current = index
	return nil
}

// Next is a no-op on the last question.
func (n *Navigator) Next() error {
	if n.submitted {
		return domain.ErrSessionSubmitted
	}
	if n.current == len(n.questions)-1 {
		return nil
	}
	return n.GoTo(n.current + 1)
}

// Previous is a no-op on the first question.
func (n *Navigator) Previous() error {
	if n.submitted {
		return domain.ErrSessionSubmitted
	}
	if n.current == 0 {
		return nil
	}
	return n.GoTo(n.current - 1)
}

// Submit freezes the navigator. It reports false if it was already submitted.
func (n *Navigator) Submit() bool {
	if n.submitted {
		return false
	}
	n.submitted = true
	return true
}
