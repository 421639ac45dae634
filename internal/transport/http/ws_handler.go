package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/logging"
	"trivia-quiz-service/internal/view"
)

const maxInboundBytes = 4096

type WSHandler struct {
	service  *app.QuizService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type selectPayload struct {
	OptionID domain.OptionID `json:"optionId"`
}

type gotoPayload struct {
	Index *int `json:"index"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type statePayload struct {
	SessionID string            `json:"sessionId"`
	QuizID    string            `json:"quizId"`
	QuizTitle string            `json:"quizTitle"`
	Question  view.QuestionCard `json:"question"`
	Sidebar   view.Sidebar      `json:"sidebar"`
	Timer     view.TimerView    `json:"timer"`
	Submitted bool              `json:"submitted"`
}

type submittedPayload struct {
	ResultID   string     `json:"resultId"`
	Correct    int        `json:"correct"`
	Total      int        `json:"total"`
	Percentage int        `json:"percentage"`
	TimedOut   bool       `json:"timedOut"`
	Links      resultLink `json:"links"`
}

type resultLink struct {
	Result      string `json:"result"`
	Leaderboard string `json:"leaderboard"`
}

// ServeWS starts a quiz session for the signed-in user and drives it over a websocket.
// Closing the socket ends the session.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	quizID := chi.URLParam(r, "quizID")
	userID := auth.GuestUserID
	if id, ok := auth.FromContext(r.Context()); ok {
		userID = id.UserID
	}
	log := logging.FromContext(r.Context()).WithFields(logrus.Fields{"quiz_id": quizID, "user_id": userID})

	session, err := h.service.StartSession(r.Context(), quizID, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer h.service.EndSession(session.ID())
	log = log.WithField("session_id", session.ID())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("ws upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxInboundBytes)

	events, cancel := session.Subscribe()
	defer cancel()
	session.Start(r.Context())

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	eventsDone := make(chan struct{})

	// The writer goroutine is the only one touching conn for writes.
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.WithError(err).Debug("ws write error")
				// unblock the reader
				_ = conn.Close()
				return
			}
		}
	}()

	enqueue := func(msg outboundMessage[any]) bool {
		select {
		case send <- msg:
			return true
		case <-writerDone:
			return false
		case <-closeSignals:
			return false
		}
	}

	go func() {
		defer close(eventsDone)
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				if !enqueue(eventMessage(session, ev)) {
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		if err := dispatch(session, inbound); err != nil {
			log.WithError(err).WithField("type", inbound.Type).Debug("rejected session intent")
			if !enqueue(outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}) {
				break
			}
		}
	}

	close(closeSignals)
	<-eventsDone
	close(send)
	<-writerDone
	log.Info("quiz session closed")
}

var errUnsupportedMessage = errors.New("unsupported message type")

func dispatch(session *app.Session, in inboundMessage) error {
	switch in.Type {
	case "select":
		var p selectPayload
		if err := json.Unmarshal(in.Payload, &p); err != nil || p.OptionID == "" {
			return errors.New("invalid select payload")
		}
		return session.SelectAnswer(p.OptionID)
	case "goto":
		var p gotoPayload
		if err := json.Unmarshal(in.Payload, &p); err != nil || p.Index == nil {
			return errors.New("invalid goto payload")
		}
		return session.GoTo(*p.Index)
	case "next":
		return session.Next()
	case "previous":
		return session.Previous()
	case "submit":
		_, err := session.Submit()
		return err
	case "pause":
		return session.Pause()
	case "resume":
		return session.Resume()
	default:
		return errUnsupportedMessage
	}
}

func eventMessage(session *app.Session, ev app.Event) outboundMessage[any] {
	switch ev.Type {
	case app.EventSubmitted:
		r := ev.Result
		return outboundMessage[any]{Type: "submitted", Payload: submittedPayload{
			ResultID:   r.ID,
			Correct:    r.CorrectCount,
			Total:      r.TotalCount,
			Percentage: r.Percentage,
			TimedOut:   r.TimedOut,
			Links: resultLink{
				Result:      "/api/results/" + r.ID,
				Leaderboard: view.LinksFor(r.QuizID).Leaderboard,
			},
		}}
	case app.EventTick:
		snap := session.Snapshot()
		return outboundMessage[any]{Type: "tick", Payload: timerView(snap, ev.Remaining)}
	default:
		snap := session.Snapshot()
		return outboundMessage[any]{Type: "state", Payload: statePayload{
			SessionID: snap.SessionID,
			QuizID:    snap.QuizID,
			QuizTitle: snap.QuizTitle,
			Question:  view.NewQuestionCard(snap),
			Sidebar:   view.NewSidebar(snap),
			Timer:     timerView(snap, snap.Remaining),
			Submitted: snap.Submitted,
		}}
	}
}

func timerView(snap domain.SessionSnapshot, remaining int) view.TimerView {
	return view.NewTimerView(remaining, snap.InitialTime, snap.WarningThreshold, snap.Running, snap.AutoSubmit)
}
