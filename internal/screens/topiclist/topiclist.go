// Package topiclist presents the built-in topic catalog.
package topiclist

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abrar/astrolearn/internal/explain"
	"github.com/abrar/astrolearn/internal/favorites"
	quizcore "github.com/abrar/astrolearn/internal/quiz"
	"github.com/abrar/astrolearn/internal/router"
	"github.com/abrar/astrolearn/internal/screen"
	topicscreen "github.com/abrar/astrolearn/internal/screens/topic"
	"github.com/abrar/astrolearn/internal/topics"
	"github.com/abrar/astrolearn/internal/ui/components"
	"github.com/abrar/astrolearn/internal/ui/theme"
)

// ListScreen is a navigable menu over the topic catalog.
type ListScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*ListScreen)(nil)

// New creates the topic list screen.
func New(svc *explain.Service, favs *favorites.Service, results *quizcore.ResultStore) *ListScreen {
	catalog := topics.Catalog()
	items := make([]components.MenuItem, 0, len(catalog))
	for _, t := range catalog {
		name := t.Name
		items = append(items, components.MenuItem{
			Label:       name,
			Description: t.Description,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: topicscreen.New(svc, favs, results, name),
					}
				}
			},
		})
	}

	return &ListScreen{menu: components.NewMenu(items)}
}

func (l *ListScreen) Init() tea.Cmd {
	return nil
}

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *ListScreen) View(width, height int) string {
	header := theme.Subtitle.Width(width).Render("Pick a topic to explore") + "\n\n"
	return "\n" + header + lipgloss.NewStyle().PaddingLeft(2).Render(l.menu.View())
}

func (l *ListScreen) Title() string {
	return "Explore Topics"
}
