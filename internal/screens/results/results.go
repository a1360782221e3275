// Package results shows the score summary after a completed quiz.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	quizcore "github.com/abrar/astrolearn/internal/quiz"
	"github.com/abrar/astrolearn/internal/router"
	"github.com/abrar/astrolearn/internal/screen"
	"github.com/abrar/astrolearn/internal/ui/components"
	"github.com/abrar/astrolearn/internal/ui/layout"
	"github.com/abrar/astrolearn/internal/ui/theme"
)

// ResultsScreen displays the last quiz result from the shared store.
type ResultsScreen struct {
	store       *quizcore.ResultStore
	quizTitle   string
	questionsFn func() []quizcore.Question
}

var _ screen.Screen = (*ResultsScreen)(nil)

// RetryScreenFactory builds the replacement quiz screen when the learner
// chooses to play again. Set by the quiz screen package at init time.
var RetryScreenFactory func(store *quizcore.ResultStore, title string, questionsFn func() []quizcore.Question) screen.Screen

// New creates a results screen reading from the shared result store.
func New(store *quizcore.ResultStore, quizTitle string, questionsFn func() []quizcore.Question) *ResultsScreen {
	return &ResultsScreen{
		store:       store,
		quizTitle:   quizTitle,
		questionsFn: questionsFn,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "r":
		if RetryScreenFactory != nil && r.questionsFn != nil {
			next := RetryScreenFactory(r.store, r.quizTitle, r.questionsFn)
			return r, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: next}
			}
		}
	case "enter":
		return r, func() tea.Msg {
			return router.PopScreenMsg{}
		}
	}

	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	result := r.store.Last()
	if result == nil {
		return theme.Hint.Render("  No quiz result yet. Take a quiz first!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Quiz Complete!") + "\n\n")

	score := fmt.Sprintf("You scored %d%%", result.ScorePercent)
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(score) + "\n\n")

	detail := fmt.Sprintf("%d of %d correct", result.CorrectCount, result.TotalQuestions)
	b.WriteString(theme.Subtitle.Width(width).Render(detail) + "\n\n")

	barWidth := 40
	if barWidth > width-8 {
		barWidth = width - 8
	}
	bar := components.NewProgressBar("", float64(result.ScorePercent)/100, true, barWidth)
	b.WriteString(lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width).
		Render(bar.View()) + "\n\n")

	b.WriteString(theme.Subtitle.Width(width).Render(verdict(result.ScorePercent)) + "\n\n")

	buttons := components.NewButton("R  Play Again", true, nil).View() +
		"  " +
		components.NewButton("Enter  Done", false, nil).View()
	b.WriteString(lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width).
		Render(buttons) + "\n")

	return b.String()
}

func verdict(score int) string {
	switch {
	case score == 100:
		return "Stellar! A perfect orbit."
	case score >= 80:
		return "Great work, space cadet!"
	case score >= 50:
		return "Not bad. Another pass through the topic will help."
	default:
		return "Keep exploring. The universe rewards curiosity."
	}
}

func (r *ResultsScreen) Title() string {
	return r.quizTitle + " Results"
}

// KeyHints provides footer hints for the results screen.
func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Play again"},
		{Key: "Enter", Description: "Done"},
		{Key: "Esc", Description: "Back"},
	}
}
