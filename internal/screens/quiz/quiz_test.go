package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	quizcore "github.com/abrar/astrolearn/internal/quiz"
	"github.com/abrar/astrolearn/internal/router"
	"github.com/abrar/astrolearn/internal/screens/results"
)

func testQuestions() []quizcore.Question {
	return []quizcore.Question{
		{
			ID:           1,
			Prompt:       "Which planet is known as the Red Planet?",
			Options:      []string{"Venus", "Mars", "Jupiter", "Mercury"},
			CorrectIndex: 1,
			Rationale:    "Iron oxide gives Mars its color.",
		},
		{
			ID:           2,
			Prompt:       "True or False: The Sun is a star.",
			Options:      []string{"True", "False"},
			CorrectIndex: 0,
			Rationale:    "The Sun is a main-sequence star.",
		},
	}
}

func special(code rune) tea.Msg {
	return tea.KeyPressMsg{Code: code}
}

func keyPress(r rune) tea.Msg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestScreen() (*QuizScreen, *quizcore.ResultStore) {
	store := quizcore.NewResultStore()
	s := New(store, "Test Quiz", testQuestions)
	return s, store
}

func TestNewStartsSession(t *testing.T) {
	s, _ := newTestScreen()
	if s.startErr != nil {
		t.Fatalf("unexpected start error: %v", s.startErr)
	}
	if s.choice.Question == "" {
		t.Fatal("expected first question loaded")
	}
}

func TestAnswerShowsFeedback(t *testing.T) {
	s, _ := newTestScreen()

	// Move to option B (Mars) and submit.
	s.Update(keyPress('j'))
	s.Update(special(tea.KeyEnter))

	if !s.choice.Submitted {
		t.Fatal("expected submitted choice")
	}
	if !s.choice.IsCorrect() {
		t.Fatal("expected correct answer")
	}
	if sel, ok := s.session.PendingSelection(); !ok || sel != 1 {
		t.Fatalf("expected pending selection 1, got %d (ok=%v)", sel, ok)
	}

	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
}

func TestChangeAnswerBeforeAdvancing(t *testing.T) {
	s, _ := newTestScreen()

	// Submit A (wrong), then reconsider.
	s.Update(special(tea.KeyEnter))
	if s.choice.IsCorrect() {
		t.Fatal("expected wrong answer")
	}

	s.Update(keyPress('j'))
	if s.choice.Submitted {
		t.Fatal("expected choice reopened after arrow key")
	}

	s.Update(special(tea.KeyEnter))
	if !s.choice.IsCorrect() {
		t.Fatal("expected corrected answer")
	}
	if sel, _ := s.session.PendingSelection(); sel != 1 {
		t.Fatalf("expected re-selection recorded, got %d", sel)
	}
}

func TestCompletionReplacesWithResults(t *testing.T) {
	s, store := newTestScreen()

	// Q1: answer Mars (correct).
	s.Update(keyPress('j'))
	s.Update(special(tea.KeyEnter))
	s.Update(special(tea.KeyEnter))

	// Q2: answer True (correct).
	s.Update(special(tea.KeyEnter))
	_, cmd := s.Update(special(tea.KeyEnter))

	if cmd == nil {
		t.Fatal("expected navigation command after final question")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replace.Screen.(*results.ResultsScreen); !ok {
		t.Fatalf("expected results screen, got %T", replace.Screen)
	}

	result := store.Last()
	if result == nil {
		t.Fatal("expected result published to store")
	}
	if result.ScorePercent != 100 {
		t.Fatalf("expected 100%%, got %d%%", result.ScorePercent)
	}
}

func TestRetryFactoryRegistered(t *testing.T) {
	if results.RetryScreenFactory == nil {
		t.Fatal("expected retry factory registered")
	}
	store := quizcore.NewResultStore()
	s := results.RetryScreenFactory(store, "Test Quiz", testQuestions)
	if _, ok := s.(*QuizScreen); !ok {
		t.Fatalf("expected quiz screen, got %T", s)
	}
}
