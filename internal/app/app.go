package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abrar/astrolearn/internal/explain"
	"github.com/abrar/astrolearn/internal/favorites"
	quizcore "github.com/abrar/astrolearn/internal/quiz"
	"github.com/abrar/astrolearn/internal/router"
	"github.com/abrar/astrolearn/internal/screen"
	"github.com/abrar/astrolearn/internal/screens/home"
	"github.com/abrar/astrolearn/internal/ui/layout"
)

// Options carries the wired services the UI runs on.
type Options struct {
	// Explain may be nil when no LLM provider is configured.
	Explain *explain.Service

	Favorites *favorites.Service
	Results   *quizcore.ResultStore

	// SavedCount seeds the header favorite counter.
	SavedCount int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	width      int
	height     int
	savedCount int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Explain, opts.Favorites, opts.Results)
	return AppModel{
		router:     router.New(homeScreen),
		savedCount: opts.SavedCount,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case favorites.ChangedMsg:
		m.savedCount = msg.Count
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 && !wantsEscape(m.router.Active()) {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// EscapeHandler is implemented by screens that consume Esc themselves
// (a focused text input, for example) instead of navigating back.
type EscapeHandler interface {
	WantsEscape() bool
}

func wantsEscape(s screen.Screen) bool {
	if h, ok := s.(EscapeHandler); ok {
		return h.WantsEscape()
	}
	return false
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.savedCount, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		return provider.KeyHints()
	}

	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
