// Package ask lets the learner pose a freeform astronomy question.
package ask

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abrar/astrolearn/internal/explain"
	"github.com/abrar/astrolearn/internal/screen"
	"github.com/abrar/astrolearn/internal/ui/components"
	"github.com/abrar/astrolearn/internal/ui/layout"
	"github.com/abrar/astrolearn/internal/ui/theme"
)

type answerMsg struct {
	text string
	err  error
}

type phase int

const (
	phaseInput phase = iota
	phaseWaiting
	phaseAnswered
	phaseError
)

// AskScreen is a question box with the fetched answer below it.
type AskScreen struct {
	svc      *explain.Service
	input    components.TextInput
	phase    phase
	question string
	answer   string
	fetchErr error
}

var _ screen.Screen = (*AskScreen)(nil)

// New creates the ask screen.
func New(svc *explain.Service) *AskScreen {
	return &AskScreen{
		svc:   svc,
		input: components.NewTextInput("e.g. Why is Mars red?", 200),
	}
}

func (a *AskScreen) Init() tea.Cmd {
	return a.input.Init()
}

func (a *AskScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		if msg.err != nil {
			a.phase = phaseError
			a.fetchErr = msg.err
		} else {
			a.phase = phaseAnswered
			a.answer = msg.text
		}
		return a, nil

	case tea.KeyMsg:
		switch a.phase {
		case phaseInput:
			if msg.String() == "enter" {
				q := strings.TrimSpace(a.input.Value())
				if q == "" {
					return a, nil
				}
				a.question = q
				a.phase = phaseWaiting
				svc := a.svc
				return a, func() tea.Msg {
					ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
					defer cancel()
					text, err := svc.Ask(ctx, q)
					return answerMsg{text: text, err: err}
				}
			}
			var cmd tea.Cmd
			a.input, cmd = a.input.Update(msg)
			return a, cmd

		case phaseAnswered, phaseError:
			if msg.String() == "n" {
				a.phase = phaseInput
				a.answer = ""
				a.fetchErr = nil
				a.input.Reset()
				return a, a.input.Focus()
			}
		}
	}

	return a, nil
}

func (a *AskScreen) View(width, height int) string {
	body := lipgloss.NewStyle().Padding(1, 3).Width(width)

	switch a.phase {
	case phaseInput:
		return body.Render(
			theme.Body.Render("What do you want to know about space?") +
				"\n\n" + a.input.View())

	case phaseWaiting:
		return body.Render(
			theme.Subtitle.Render(a.question) + "\n\n" +
				theme.Hint.Render("✦ Asking the cosmos..."))

	case phaseError:
		return body.Render(
			theme.Incorrect.Render("Could not get an answer.") + "\n\n" +
				theme.Hint.Render(a.fetchErr.Error()) + "\n\n" +
				theme.Body.Render("Press N to try another question."))
	}

	question := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Width(width - 6).
		Render(a.question)
	answer := theme.Body.Width(width - 6).Render(a.answer)
	return body.Render(question + "\n\n" + answer)
}

func (a *AskScreen) Title() string {
	return "Ask the Cosmos"
}

// KeyHints provides footer hints for the ask screen.
func (a *AskScreen) KeyHints() []layout.KeyHint {
	switch a.phase {
	case phaseAnswered, phaseError:
		return []layout.KeyHint{
			{Key: "N", Description: "New question"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Ask"},
			{Key: "Esc", Description: "Back"},
		}
	}
}
