// Package home is the main menu of the application.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abrar/astrolearn/internal/explain"
	"github.com/abrar/astrolearn/internal/favorites"
	quizcore "github.com/abrar/astrolearn/internal/quiz"
	"github.com/abrar/astrolearn/internal/router"
	"github.com/abrar/astrolearn/internal/screen"
	askscreen "github.com/abrar/astrolearn/internal/screens/ask"
	favscreen "github.com/abrar/astrolearn/internal/screens/favorites"
	quizscreen "github.com/abrar/astrolearn/internal/screens/quiz"
	"github.com/abrar/astrolearn/internal/screens/topiclist"
	"github.com/abrar/astrolearn/internal/ui/components"
	"github.com/abrar/astrolearn/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu    components.Menu
	results *quizcore.ResultStore
	hasLLM  bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. explainSvc may be nil when no LLM
// provider is configured; topic exploration is disabled in that case
// but the built-in quiz and saved favorites still work.
func New(explainSvc *explain.Service, favSvc *favorites.Service, results *quizcore.ResultStore) *HomeScreen {
	hasLLM := explainSvc != nil

	items := []components.MenuItem{
		{
			Label:       "Explore Topics",
			Description: "Learn about black holes, galaxies and more",
			Disabled:    !hasLLM,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: topiclist.New(explainSvc, favSvc, results),
					}
				}
			},
		},
		{
			Label:       "Astronomy Quiz",
			Description: "Ten questions from the question bank",
			Action: func() tea.Cmd {
				questionsFn := func() []quizcore.Question {
					return quizcore.StandardQuestions(nil, quizcore.DefaultStandardCount)
				}
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizscreen.New(results, "Astronomy Quiz", questionsFn),
					}
				}
			},
		},
		{
			Label:       "My Favorites",
			Description: "Topics you saved for later",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: favscreen.New(favSvc, results),
					}
				}
			},
		},
		{
			Label:       "Ask the Cosmos",
			Description: "Pose any space question",
			Disabled:    !hasLLM,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: askscreen.New(explainSvc),
					}
				}
			},
		},
		{
			Label: "Exit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		results: results,
		hasLLM:  hasLLM,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

var banner = strings.Join([]string{
	`    ✦       ·        ✧      ·    ✦`,
	`  · ▄▀█ █▀ ▀█▀ █▀█ █▀█   ✧`,
	`    █▀█ ▄█  █  █▀▄ █▄█ LEARN  ·`,
	`  ✧     ·      ✦        ·      ✧`,
}, "\n")

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(banner))

	sections = append(sections, theme.Subtitle.Width(width).
		Render("your terminal guide to the universe"))

	if !h.hasLLM {
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).
			Render("No LLM provider configured — topic exploration disabled. See astrolearn --help."))
	}

	if last := h.results.Last(); last != nil {
		sections = append(sections, theme.Subtitle.Width(width).Render(
			fmt.Sprintf("Last quiz: %d%% (%d/%d)",
				last.ScorePercent, last.CorrectCount, last.TotalQuestions)))
	}

	menu := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width).
		Render(h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
