// Package topic shows a topic explanation with a typewriter reveal,
// and lets the learner save it or quiz themselves on it.
package topic

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abrar/astrolearn/internal/explain"
	"github.com/abrar/astrolearn/internal/favorites"
	quizcore "github.com/abrar/astrolearn/internal/quiz"
	"github.com/abrar/astrolearn/internal/router"
	"github.com/abrar/astrolearn/internal/screen"
	quizscreen "github.com/abrar/astrolearn/internal/screens/quiz"
	"github.com/abrar/astrolearn/internal/ui/layout"
	"github.com/abrar/astrolearn/internal/ui/theme"
)

const (
	tickInterval  = 25 * time.Millisecond
	charsPerTick  = 4
	fetchTimeout  = 90 * time.Second
	statusTimeout = 3 * time.Second
)

type phase int

const (
	phaseLoading phase = iota
	phaseRevealing
	phaseDone
	phaseError
)

type explanationMsg struct {
	text string
	err  error
}

type tickMsg time.Time

type savedMsg struct {
	added bool
	count int
	err   error
}

type clearStatusMsg struct{}

// TopicScreen displays one topic's explanation.
type TopicScreen struct {
	name     string
	explain  *explain.Service
	favs     *favorites.Service
	results  *quizcore.ResultStore
	phase    phase
	text     string
	runes    []rune
	revealed int
	loadErr  error
	status   string
	spinner  int
}

var _ screen.Screen = (*TopicScreen)(nil)

// New creates a topic screen that fetches the explanation on Init.
func New(svc *explain.Service, favs *favorites.Service, results *quizcore.ResultStore, name string) *TopicScreen {
	return &TopicScreen{
		name:    name,
		explain: svc,
		favs:    favs,
		results: results,
		phase:   phaseLoading,
	}
}

// NewWithExplanation creates a topic screen over an already-known
// explanation (a saved favorite). No fetch happens; the text shows
// immediately.
func NewWithExplanation(favs *favorites.Service, results *quizcore.ResultStore, name, explanation string) *TopicScreen {
	return &TopicScreen{
		name:     name,
		favs:     favs,
		results:  results,
		phase:    phaseDone,
		text:     explanation,
		runes:    []rune(explanation),
		revealed: len([]rune(explanation)),
	}
}

func (t *TopicScreen) Init() tea.Cmd {
	if t.phase != phaseLoading {
		return nil
	}
	return tea.Batch(t.fetchCmd(), tick())
}

func (t *TopicScreen) fetchCmd() tea.Cmd {
	svc, name := t.explain, t.name
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		text, err := svc.ExplainTopic(ctx, name)
		return explanationMsg{text: text, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(tm time.Time) tea.Msg {
		return tickMsg(tm)
	})
}

func (t *TopicScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explanationMsg:
		if msg.err != nil {
			t.phase = phaseError
			t.loadErr = msg.err
			return t, nil
		}
		t.text = msg.text
		t.runes = []rune(msg.text)
		t.revealed = 0
		t.phase = phaseRevealing
		return t, tick()

	case tickMsg:
		switch t.phase {
		case phaseLoading:
			t.spinner++
			return t, tick()
		case phaseRevealing:
			t.revealed += charsPerTick
			if t.revealed >= len(t.runes) {
				t.revealed = len(t.runes)
				t.phase = phaseDone
				return t, nil
			}
			return t, tick()
		}
		return t, nil

	case savedMsg:
		switch {
		case msg.err != nil:
			t.status = "Could not save: " + msg.err.Error()
		case msg.added:
			t.status = "Saved to favorites ★"
		default:
			t.status = "Already in favorites"
		}
		clear := tea.Tick(statusTimeout, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})
		if msg.err == nil && msg.added {
			count := msg.count
			return t, tea.Batch(clear, func() tea.Msg {
				return favorites.ChangedMsg{Count: count}
			})
		}
		return t, clear

	case clearStatusMsg:
		t.status = ""
		return t, nil

	case tea.KeyMsg:
		return t.handleKey(msg)
	}

	return t, nil
}

func (t *TopicScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		// Skip the typewriter animation.
		if t.phase == phaseRevealing {
			t.revealed = len(t.runes)
			t.phase = phaseDone
		}
		return t, nil

	case "f":
		if t.phase != phaseDone || t.favs == nil {
			return t, nil
		}
		favs, name, text := t.favs, t.name, t.text
		return t, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			added, err := favs.Add(ctx, name, text)
			count := 0
			if err == nil {
				count, _ = favs.Count(ctx)
			}
			return savedMsg{added: added, count: count, err: err}
		}

	case "t":
		if t.phase != phaseDone || t.text == "" {
			return t, nil
		}
		name, text := t.name, t.text
		questionsFn := func() []quizcore.Question {
			synth := quizcore.NewSynthesizer(nil)
			return synth.Generate(name, text, quizcore.DefaultCustomCount)
		}
		next := quizscreen.New(t.results, name+" Quiz", questionsFn)
		return t, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}

	case "r":
		if t.phase != phaseError || t.explain == nil {
			return t, nil
		}
		t.phase = phaseLoading
		t.loadErr = nil
		return t, tea.Batch(t.fetchCmd(), tick())
	}

	return t, nil
}

var spinnerFrames = []string{"⋅", "✦", "✧", "★", "✧", "✦"}

func (t *TopicScreen) View(width, height int) string {
	body := lipgloss.NewStyle().
		Padding(1, 3).
		Width(width)

	switch t.phase {
	case phaseLoading:
		frame := spinnerFrames[t.spinner%len(spinnerFrames)]
		return body.Render(
			theme.Hint.Render(frame + " Contacting mission control..."))

	case phaseError:
		msg := theme.Incorrect.Render("Could not fetch explanation.") + "\n\n" +
			theme.Hint.Render(t.loadErr.Error()) + "\n\n" +
			theme.Body.Render("Press R to retry.")
		return body.Render(msg)
	}

	text := theme.Body.Width(width - 6).Render(string(t.runes[:t.revealed]))
	out := text
	if t.phase == phaseDone {
		if t.status != "" {
			out += "\n\n" + theme.Correct.Render(t.status)
		}
	} else {
		out += theme.Hint.Render("▌")
	}
	return body.Render(out)
}

func (t *TopicScreen) Title() string {
	return t.name
}

// KeyHints provides footer hints for the topic screen.
func (t *TopicScreen) KeyHints() []layout.KeyHint {
	switch t.phase {
	case phaseDone:
		return []layout.KeyHint{
			{Key: "F", Description: "Save favorite"},
			{Key: "T", Description: "Take quiz"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseError:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Skip animation"},
			{Key: "Esc", Description: "Back"},
		}
	}
}
