// Package favorites is the saved-topics browser: search, sort, delete
// with undo, and jump back into a topic or quiz.
package favorites

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	favsvc "github.com/abrar/astrolearn/internal/favorites"
	quizcore "github.com/abrar/astrolearn/internal/quiz"
	"github.com/abrar/astrolearn/internal/router"
	"github.com/abrar/astrolearn/internal/screen"
	quizscreen "github.com/abrar/astrolearn/internal/screens/quiz"
	topicscreen "github.com/abrar/astrolearn/internal/screens/topic"
	"github.com/abrar/astrolearn/internal/store"
	"github.com/abrar/astrolearn/internal/ui/components"
	"github.com/abrar/astrolearn/internal/ui/layout"
	"github.com/abrar/astrolearn/internal/ui/theme"
)

const opTimeout = 5 * time.Second

type listMsg struct {
	items []store.Favorite
	err   error
}

type mutationMsg struct {
	status string
	count  int
	err    error
}

type clearStatusMsg struct{}

// FavoritesScreen lists saved topics.
type FavoritesScreen struct {
	svc     *favsvc.Service
	results *quizcore.ResultStore

	items    []store.Favorite
	selected int
	sort     store.Sort
	search   components.TextInput
	filterOn bool
	status   string
	loadErr  error
}

var _ screen.Screen = (*FavoritesScreen)(nil)

// New creates the favorites screen.
func New(svc *favsvc.Service, results *quizcore.ResultStore) *FavoritesScreen {
	f := &FavoritesScreen{
		svc:     svc,
		results: results,
		sort:    store.SortDateDesc,
		search:  components.NewTextInput("type to filter...", 64),
	}
	f.search.Blur()
	return f
}

func (f *FavoritesScreen) Init() tea.Cmd {
	return f.reload()
}

func (f *FavoritesScreen) reload() tea.Cmd {
	svc, query, sort := f.svc, f.search.Value(), f.sort
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		items, err := svc.List(ctx, query, sort)
		return listMsg{items: items, err: err}
	}
}

func (f *FavoritesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listMsg:
		f.loadErr = msg.err
		if msg.err == nil {
			f.items = msg.items
			if f.selected >= len(f.items) {
				f.selected = len(f.items) - 1
			}
			if f.selected < 0 {
				f.selected = 0
			}
		}
		return f, nil

	case mutationMsg:
		if msg.err != nil {
			f.status = "Error: " + msg.err.Error()
		} else {
			f.status = msg.status
		}
		cmds := []tea.Cmd{
			f.reload(),
			tea.Tick(3*time.Second, func(time.Time) tea.Msg {
				return clearStatusMsg{}
			}),
		}
		if msg.err == nil {
			count := msg.count
			cmds = append(cmds, func() tea.Msg {
				return favsvc.ChangedMsg{Count: count}
			})
		}
		return f, tea.Batch(cmds...)

	case clearStatusMsg:
		f.status = ""
		return f, nil

	case tea.KeyMsg:
		return f.handleKey(msg)
	}

	return f, nil
}

func (f *FavoritesScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if f.filterOn {
		switch msg.String() {
		case "enter", "esc":
			f.filterOn = false
			f.search.Blur()
			return f, f.reload()
		}
		var cmd tea.Cmd
		f.search, cmd = f.search.Update(msg)
		return f, tea.Batch(cmd, f.reload())
	}

	switch msg.String() {
	case "up", "k":
		if f.selected > 0 {
			f.selected--
		}
	case "down", "j":
		if f.selected < len(f.items)-1 {
			f.selected++
		}

	case "/":
		f.filterOn = true
		return f, f.search.Focus()

	case "s":
		f.sort = nextSort(f.sort)
		return f, f.reload()

	case "d":
		if len(f.items) == 0 {
			return f, nil
		}
		fav := f.items[f.selected]
		svc := f.svc
		return f, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
			defer cancel()
			if err := svc.Remove(ctx, fav); err != nil {
				return mutationMsg{err: err}
			}
			count, _ := svc.Count(ctx)
			return mutationMsg{
				status: fmt.Sprintf("Removed %q (U to undo)", fav.Name),
				count:  count,
			}
		}

	case "u":
		svc := f.svc
		return f, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
			defer cancel()
			restored, err := svc.Undo(ctx)
			if err != nil {
				return mutationMsg{err: err}
			}
			if restored == nil {
				return mutationMsg{status: "Nothing to undo"}
			}
			count, _ := svc.Count(ctx)
			return mutationMsg{
				status: fmt.Sprintf("Restored %q", restored.Name),
				count:  count,
			}
		}

	case "enter":
		if len(f.items) == 0 {
			return f, nil
		}
		fav := f.items[f.selected]
		next := topicscreen.NewWithExplanation(f.svc, f.results, fav.Name, fav.Explanation)
		return f, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}

	case "t":
		if len(f.items) == 0 {
			return f, nil
		}
		fav := f.items[f.selected]
		questionsFn := func() []quizcore.Question {
			synth := quizcore.NewSynthesizer(nil)
			return synth.Generate(fav.Name, fav.Explanation, quizcore.DefaultCustomCount)
		}
		next := quizscreen.New(f.results, fav.Name+" Quiz", questionsFn)
		return f, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	}

	return f, nil
}

func nextSort(s store.Sort) store.Sort {
	switch s {
	case store.SortDateDesc:
		return store.SortDateAsc
	case store.SortDateAsc:
		return store.SortNameAsc
	case store.SortNameAsc:
		return store.SortNameDesc
	default:
		return store.SortDateDesc
	}
}

func (f *FavoritesScreen) View(width, height int) string {
	var out string

	searchLine := theme.Hint.Render("  Filter: ") + f.search.View()
	sortLine := theme.Hint.Render(fmt.Sprintf("  Sort: %s", f.sort))
	out += "\n" + searchLine + "\n" + sortLine + "\n\n"

	if f.loadErr != nil {
		return out + theme.Incorrect.Render("  "+f.loadErr.Error())
	}

	if len(f.items) == 0 {
		empty := "No favorites yet. Explore a topic and press F to save it."
		if f.search.Value() != "" {
			empty = "No favorites match your filter."
		}
		return out + theme.Hint.Render("  "+empty)
	}

	for i, fav := range f.items {
		date := fav.DateAdded.Format("Jan 2, 2006")
		line := fmt.Sprintf("%s  %s", fav.Name, theme.Hint.Render(date))
		if i == f.selected && !f.filterOn {
			out += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+fav.Name) +
				"  " + theme.Hint.Render(date) + "\n"
		} else {
			out += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+line) + "\n"
		}
	}

	if f.status != "" {
		out += "\n" + theme.Correct.Render("  "+f.status)
	}

	return out
}

func (f *FavoritesScreen) Title() string {
	return "My Favorites"
}

// WantsEscape keeps Esc local while the filter input is focused.
func (f *FavoritesScreen) WantsEscape() bool {
	return f.filterOn
}

// KeyHints provides footer hints for the favorites screen.
func (f *FavoritesScreen) KeyHints() []layout.KeyHint {
	if f.filterOn {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply filter"},
			{Key: "Esc", Description: "Close filter"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "T", Description: "Quiz"},
		{Key: "/", Description: "Filter"},
		{Key: "S", Description: "Sort"},
		{Key: "D", Description: "Delete"},
		{Key: "U", Description: "Undo"},
	}
}
