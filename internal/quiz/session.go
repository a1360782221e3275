package quiz

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// State is the lifecycle phase of a Session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateInProgress:
		return "in-progress"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ErrNoQuestions is returned by Start when given an empty question list.
var ErrNoQuestions = errors.New("quiz: cannot start a session with no questions")

// noSelection marks the absence of a pending option selection.
const noSelection = -1

// Session is the per-quiz-attempt state machine. It owns its question
// and answer lists exclusively; the only thing it shares is the Result
// snapshot handed to the ResultStore on completion.
//
// A Session is not safe for concurrent use. The surrounding UI serializes
// all calls onto one goroutine.
type Session struct {
	id        string
	results   *ResultStore
	questions []Question
	current   int
	pending   int
	feedback  bool
	answers   []Answer
	state     State
	result    *Result
}

// NewSession creates an idle session. The result store may be nil, in
// which case completed results are simply not published anywhere.
func NewSession(results *ResultStore) *Session {
	return &Session{
		results: results,
		pending: noSelection,
		state:   StateNotStarted,
	}
}

// ID is the unique identifier of the current attempt. Empty before the
// first Start.
func (s *Session) ID() string { return s.id }

// Start begins a new attempt over the given questions, discarding any
// prior progress. The shared result store is cleared so a stale result
// cannot be shown for the new attempt.
func (s *Session) Start(questions []Question) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	if s.results != nil {
		s.results.Clear()
	}

	s.id = uuid.NewString()
	s.questions = questions
	s.current = 0
	s.pending = noSelection
	s.feedback = false
	s.answers = nil
	s.result = nil
	s.state = StateInProgress
	return nil
}

// SelectOption records index as the pending choice for the current
// question and turns on the feedback reveal. Re-selecting before Advance
// overwrites the pending choice. Out-of-range indices and calls outside
// InProgress are precondition violations and are rejected with an error.
func (s *Session) SelectOption(index int) error {
	q := s.CurrentQuestion()
	if q == nil {
		return fmt.Errorf("quiz: no current question in state %s", s.state)
	}
	if index < 0 || index >= len(q.Options) {
		return fmt.Errorf("quiz: option index %d out of range [0,%d)", index, len(q.Options))
	}
	s.pending = index
	s.feedback = true
	return nil
}

// Advance commits the pending selection as an Answer and moves to the
// next question, or completes the session when the last question was
// answered. Without a pending selection it is a documented no-op: the
// UI only offers "Next" after a selection, but a stray call must not
// corrupt state.
func (s *Session) Advance() {
	if s.state != StateInProgress || s.pending == noSelection {
		return
	}

	q := s.questions[s.current]
	s.answers = append(s.answers, Answer{
		QuestionID:  q.ID,
		ChosenIndex: s.pending,
		Correct:     s.pending == q.CorrectIndex,
	})
	s.pending = noSelection
	s.feedback = false
	s.current++

	if s.current == len(s.questions) {
		s.state = StateCompleted
		s.result = NewResult(len(s.questions), s.answers)
		if s.results != nil {
			s.results.Save(s.result)
		}
	}
}

// CurrentQuestion returns the question awaiting an answer, or nil when
// the session is not in progress.
func (s *Session) CurrentQuestion() *Question {
	if s.state != StateInProgress || s.current >= len(s.questions) {
		return nil
	}
	return &s.questions[s.current]
}

// State returns the session's lifecycle phase.
func (s *Session) State() State { return s.state }

// Completed reports whether every question has been answered.
func (s *Session) Completed() bool { return s.state == StateCompleted }

// PendingSelection returns the uncommitted option choice for the current
// question, if any.
func (s *Session) PendingSelection() (int, bool) {
	if s.pending == noSelection {
		return 0, false
	}
	return s.pending, true
}

// ShowingFeedback reports whether the correct/incorrect reveal should be
// displayed for the current question.
func (s *Session) ShowingFeedback() bool { return s.feedback }

// Questions returns the session's question list.
func (s *Session) Questions() []Question { return s.questions }

// CurrentIndex returns the zero-based position of the current question.
// Equal to len(Questions()) once the session is completed.
func (s *Session) CurrentIndex() int { return s.current }

// Answers returns the answers recorded so far, in arrival order.
func (s *Session) Answers() []Answer { return s.answers }

// Result returns the scored summary, or nil before completion.
func (s *Session) Result() *Result { return s.result }

// Progress reports completion as a fraction in [0, 1].
func (s *Session) Progress() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	return float64(s.current) / float64(len(s.questions))
}
