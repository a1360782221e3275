// Package quiz is the interactive quiz screen: one question at a time
// with instant feedback and a running progress bar.
package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	quizcore "github.com/abrar/astrolearn/internal/quiz"
	"github.com/abrar/astrolearn/internal/router"
	"github.com/abrar/astrolearn/internal/screen"
	"github.com/abrar/astrolearn/internal/screens/results"
	"github.com/abrar/astrolearn/internal/ui/components"
	"github.com/abrar/astrolearn/internal/ui/layout"
	"github.com/abrar/astrolearn/internal/ui/theme"
)

// QuizScreen runs a quiz attempt over a fixed question list.
type QuizScreen struct {
	title       string
	session     *quizcore.Session
	questionsFn func() []quizcore.Question
	store       *quizcore.ResultStore
	choice      components.MultiChoice
	startErr    error
}

var _ screen.Screen = (*QuizScreen)(nil)

// The results screen replaces itself with a fresh quiz on "play again".
// Registered here to avoid an import cycle between the two packages.
func init() {
	results.RetryScreenFactory = func(store *quizcore.ResultStore, title string, questionsFn func() []quizcore.Question) screen.Screen {
		return New(store, title, questionsFn)
	}
}

// New creates a quiz screen. questionsFn supplies a fresh question list
// for each attempt so "play again" reshuffles rather than repeats.
func New(store *quizcore.ResultStore, title string, questionsFn func() []quizcore.Question) *QuizScreen {
	s := &QuizScreen{
		title:       title,
		session:     quizcore.NewSession(store),
		questionsFn: questionsFn,
		store:       store,
	}
	s.startErr = s.session.Start(questionsFn())
	if s.startErr == nil {
		s.loadCurrent()
	}
	return s
}

func (q *QuizScreen) loadCurrent() {
	cur := q.session.CurrentQuestion()
	if cur == nil {
		return
	}
	q.choice = components.NewMultiChoice(cur.Prompt, cur.Options, cur.CorrectIndex)
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if q.startErr != nil {
		return q, nil
	}

	if q.choice.Submitted {
		kmsg, ok := msg.(tea.KeyMsg)
		if !ok {
			return q, nil
		}
		switch kmsg.String() {
		case "enter", " ":
			q.session.Advance()
			if q.session.Completed() {
				next := results.New(q.store, q.title, q.questionsFn)
				return q, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: next}
				}
			}
			q.loadCurrent()
		case "up", "k", "down", "j":
			// Re-open the question so the learner can change their
			// pick. The next Enter re-submits it.
			q.choice.Submitted = false
			q.choice.ChosenIndex = -1
			q.choice, _ = q.choice.Update(kmsg)
		}
		return q, nil
	}

	var cmd tea.Cmd
	q.choice, cmd = q.choice.Update(msg)
	if q.choice.Submitted {
		if err := q.session.SelectOption(q.choice.ChosenIndex); err != nil {
			q.choice.Submitted = false
			q.choice.ChosenIndex = -1
		}
	}
	return q, cmd
}

func (q *QuizScreen) View(width, height int) string {
	if q.startErr != nil {
		return theme.Incorrect.Render("  " + q.startErr.Error())
	}

	total := len(q.session.Questions())
	idx := q.session.CurrentIndex()
	if idx >= total {
		idx = total - 1
	}

	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", idx+1, total),
		q.session.Progress(),
		false,
		min(width-8, 60),
	)

	var b strings.Builder
	b.WriteString("\n  " + bar.View() + "\n\n")

	choiceView := lipgloss.NewStyle().
		PaddingLeft(2).
		Width(width - 4).
		Render(q.choice.View())
	b.WriteString(choiceView + "\n")

	if q.choice.Submitted {
		cur := q.session.CurrentQuestion()
		if cur != nil {
			var verdict string
			if q.choice.IsCorrect() {
				verdict = theme.Correct.Render("  ✓ Correct!")
			} else {
				verdict = theme.Incorrect.Render("  ✗ Not quite.")
			}
			b.WriteString("\n" + verdict + "\n")
			if cur.Rationale != "" {
				rationale := lipgloss.NewStyle().
					Foreground(theme.TextDim).
					PaddingLeft(2).
					Width(width - 4).
					Render(cur.Rationale)
				b.WriteString(rationale + "\n")
			}
			b.WriteString("\n" + theme.Hint.Render("  Press Enter to continue") + "\n")
		}
	}

	return b.String()
}

func (q *QuizScreen) Title() string {
	return q.title
}

// KeyHints provides footer hints for the quiz screen.
func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.choice.Submitted {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "↑↓", Description: "Change answer"},
			{Key: "Esc", Description: "Quit quiz"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit quiz"},
	}
}
