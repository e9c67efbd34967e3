package sessions

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/replayz/internal/audio"
	"github.com/abhisek/replayz/internal/lessons"
	"github.com/abhisek/replayz/internal/router"
	"github.com/abhisek/replayz/internal/screen"
	"github.com/abhisek/replayz/internal/screens/player"
	"github.com/abhisek/replayz/internal/store"
	"github.com/abhisek/replayz/internal/ui/components"
	"github.com/abhisek/replayz/internal/ui/layout"
	"github.com/abhisek/replayz/internal/ui/theme"
)

type sessionsLoadedMsg struct {
	Sessions []store.SessionSummary
	Err      error
}

// SessionsScreen lists recorded sessions to pick one for replay.
type SessionsScreen struct {
	sessionRepo store.SessionRepo
	lessonSvc   *lessons.Service
	audioClient *audio.Client
	sessions    []store.SessionSummary
	selected    int
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*SessionsScreen)(nil)
var _ screen.KeyHintProvider = (*SessionsScreen)(nil)

// New creates a new SessionsScreen.
func New(sessionRepo store.SessionRepo, lessonSvc *lessons.Service, audioClient *audio.Client) *SessionsScreen {
	return &SessionsScreen{
		sessionRepo: sessionRepo,
		lessonSvc:   lessonSvc,
		audioClient: audioClient,
	}
}

func (s *SessionsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		summaries, err := s.sessionRepo.List(context.Background())
		return sessionsLoadedMsg{Sessions: summaries, Err: err}
	}
}

func (s *SessionsScreen) Title() string {
	return "Sessions"
}

func (s *SessionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Replay"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SessionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.sessions) {
				picked := s.sessions[s.selected]
				p := player.New(s.sessionRepo, s.lessonSvc, s.audioClient, picked.SessionID)
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: p} }
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *SessionsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading sessions...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Import one with: replayz import <bundle.json>")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s  %d events  %s",
			prefix,
			shortID(sess.SessionID),
			sess.LessonID,
			components.FormatOffset(sess.DurationMs),
			sess.EventCount,
			sess.Status,
		)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
