package sessions

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/replayz/internal/replay"
	"github.com/abhisek/replayz/internal/router"
	"github.com/abhisek/replayz/internal/store"
)

// mockSessionRepo implements store.SessionRepo for testing.
type mockSessionRepo struct {
	summaries []store.SessionSummary
	err       error
}

func (m *mockSessionRepo) List(_ context.Context) ([]store.SessionSummary, error) {
	return m.summaries, m.err
}
func (m *mockSessionRepo) Load(_ context.Context, _ string) (*replay.SessionData, error) {
	return nil, store.ErrSessionNotFound
}
func (m *mockSessionRepo) ImportSession(_ context.Context, _ *replay.SessionData) (string, error) {
	return "", nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func twoSessions() []store.SessionSummary {
	return []store.SessionSummary{
		{SessionID: "sess-1", LessonID: "lesson-1", Status: "completed", DurationMs: 60000, EventCount: 12},
		{SessionID: "sess-2", LessonID: "lesson-1", Status: "completed", DurationMs: 30000, EventCount: 4},
	}
}

func TestSessions_LoadAndNavigate(t *testing.T) {
	s := New(&mockSessionRepo{summaries: twoSessions()}, nil, nil)

	scr, _ := s.Update(sessionsLoadedMsg{Sessions: twoSessions()})
	ss := scr.(*SessionsScreen)
	if !ss.loaded || len(ss.sessions) != 2 {
		t.Fatalf("loaded=%v sessions=%d", ss.loaded, len(ss.sessions))
	}

	scr, _ = ss.Update(specialKey(tea.KeyDown))
	ss = scr.(*SessionsScreen)
	if ss.selected != 1 {
		t.Errorf("selected = %d after down, want 1", ss.selected)
	}

	// Clamped at the end.
	scr, _ = ss.Update(specialKey(tea.KeyDown))
	ss = scr.(*SessionsScreen)
	if ss.selected != 1 {
		t.Errorf("selected = %d at end, want 1", ss.selected)
	}

	scr, _ = ss.Update(specialKey(tea.KeyUp))
	ss = scr.(*SessionsScreen)
	if ss.selected != 0 {
		t.Errorf("selected = %d after up, want 0", ss.selected)
	}
}

func TestSessions_EnterPushesPlayer(t *testing.T) {
	s := New(&mockSessionRepo{summaries: twoSessions()}, nil, nil)
	scr, _ := s.Update(sessionsLoadedMsg{Sessions: twoSessions()})

	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command after enter")
	}
	msg := cmd()
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", msg)
	}
}

func TestSessions_LoadError(t *testing.T) {
	s := New(&mockSessionRepo{}, nil, nil)
	scr, _ := s.Update(sessionsLoadedMsg{Err: errors.New("boom")})
	ss := scr.(*SessionsScreen)

	if ss.errMsg == "" {
		t.Error("expected error message")
	}
	if view := ss.View(80, 24); view == "" {
		t.Error("expected non-empty error view")
	}
}

func TestSessions_EmptyView(t *testing.T) {
	s := New(&mockSessionRepo{}, nil, nil)
	scr, _ := s.Update(sessionsLoadedMsg{})
	ss := scr.(*SessionsScreen)

	if view := ss.View(80, 24); view == "" {
		t.Error("expected non-empty empty-state view")
	}
}
