package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/replayz/internal/audio"
	"github.com/abhisek/replayz/internal/lessons"
	"github.com/abhisek/replayz/internal/router"
	"github.com/abhisek/replayz/internal/screen"
	"github.com/abhisek/replayz/internal/screens/player"
	"github.com/abhisek/replayz/internal/screens/sessions"
	"github.com/abhisek/replayz/internal/store"
	"github.com/abhisek/replayz/internal/ui/layout"
)

// Options carries the dependencies the TUI needs. AudioClient may be nil;
// replay then runs without audio.
type Options struct {
	SessionRepo   store.SessionRepo
	LessonService *lessons.Service
	AudioClient   *audio.Client

	// SessionID, when set, opens the player directly instead of the
	// session list.
	SessionID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model with the initial screen.
func newAppModel(opts Options) AppModel {
	var initial screen.Screen
	if opts.SessionID != "" {
		initial = player.New(opts.SessionRepo, opts.LessonService, opts.AudioClient, opts.SessionID)
	} else {
		initial = sessions.New(opts.SessionRepo, opts.LessonService, opts.AudioClient)
	}
	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Screens handle esc themselves so they can release resources
		// before being popped.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
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
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}

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
