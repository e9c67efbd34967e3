package player

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/replayz/internal/replay"
	"github.com/abhisek/replayz/internal/screen"
	"github.com/abhisek/replayz/internal/store"
)

// mockSessionRepo implements store.SessionRepo for testing.
type mockSessionRepo struct {
	data *replay.SessionData
	err  error
}

func (m *mockSessionRepo) List(_ context.Context) ([]store.SessionSummary, error) {
	return nil, nil
}
func (m *mockSessionRepo) Load(_ context.Context, _ string) (*replay.SessionData, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}
func (m *mockSessionRepo) ImportSession(_ context.Context, _ *replay.SessionData) (string, error) {
	return "", nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testData() *replay.SessionData {
	return &replay.SessionData{
		Session: replay.Session{
			ID:         "sess-1",
			LessonID:   "lesson-1",
			StartedAt:  "2025-01-01T00:00:00Z",
			DurationMs: 60000,
		},
		CodeSnapshots: []replay.CodeSnapshot{
			{Timestamp: "2025-01-01T00:00:02Z", TaskIndex: 0, Code: "x = 1"},
		},
		Messages: []replay.Message{
			{Timestamp: "2025-01-01T00:00:03Z", Role: replay.RoleAssistant, Content: "Hello"},
		},
	}
}

func loadedPlayer(t *testing.T) *PlayerScreen {
	t.Helper()
	s := New(&mockSessionRepo{data: testData()}, nil, nil, "sess-1")
	scr, _ := s.Update(loadedMsg{Data: testData()})
	return scr.(*PlayerScreen)
}

func TestPlayer_LoadError(t *testing.T) {
	s := New(&mockSessionRepo{err: errors.New("boom")}, nil, nil, "sess-1")
	scr, _ := s.Update(loadedMsg{Err: errors.New("boom")})
	ps := scr.(*PlayerScreen)

	if ps.errMsg == "" {
		t.Error("expected error message after failed load")
	}
	if view := ps.View(80, 24); view == "" {
		t.Error("expected non-empty error view")
	}
}

func TestPlayer_LoadBuildsEngine(t *testing.T) {
	s := loadedPlayer(t)
	if s.engine == nil {
		t.Fatal("expected engine after load")
	}
	if s.engine.Cursor().Playing() {
		t.Error("expected playback to start paused")
	}
	if s.snap.TimeMs != 0 {
		t.Errorf("initial snapshot at %d, want 0", s.snap.TimeMs)
	}
}

func TestPlayer_SpaceTogglesPlayback(t *testing.T) {
	s := loadedPlayer(t)

	scr, cmd := s.Update(keyPress(' '))
	ps := scr.(*PlayerScreen)
	if !ps.engine.Cursor().Playing() {
		t.Error("expected playing after space")
	}
	if cmd == nil {
		t.Error("expected a tick command when playback starts")
	}

	scr, _ = ps.Update(keyPress(' '))
	ps = scr.(*PlayerScreen)
	if ps.engine.Cursor().Playing() {
		t.Error("expected paused after second space")
	}
}

func TestPlayer_TickAdvancesWhilePlaying(t *testing.T) {
	s := loadedPlayer(t)
	s.engine.Play()

	scr, cmd := s.Update(playbackTickMsg{})
	ps := scr.(*PlayerScreen)
	if ps.engine.Cursor().TimeMs() != 100 {
		t.Errorf("cursor at %d after one tick, want 100", ps.engine.Cursor().TimeMs())
	}
	if cmd == nil {
		t.Error("expected the tick loop to continue")
	}
	if ps.snap.TimeMs != 100 {
		t.Errorf("snapshot at %d, want 100", ps.snap.TimeMs)
	}
}

func TestPlayer_TickIgnoredWhilePaused(t *testing.T) {
	s := loadedPlayer(t)

	scr, _ := s.Update(playbackTickMsg{})
	ps := scr.(*PlayerScreen)
	if got := ps.engine.Cursor().TimeMs(); got != 0 {
		t.Errorf("cursor moved to %d while paused", got)
	}
}

func TestPlayer_SkipKeys(t *testing.T) {
	s := loadedPlayer(t)

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	ps := scr.(*PlayerScreen)
	if got := ps.engine.Cursor().TimeMs(); got != 5000 {
		t.Errorf("cursor at %d after skip forward, want 5000", got)
	}

	scr, _ = ps.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	ps = scr.(*PlayerScreen)
	if got := ps.engine.Cursor().TimeMs(); got != 0 {
		t.Errorf("cursor at %d after skip back, want 0", got)
	}
}

func TestPlayer_RateKeys(t *testing.T) {
	s := loadedPlayer(t)

	scr, _ := s.Update(keyPress(']'))
	ps := scr.(*PlayerScreen)
	if got := ps.engine.Cursor().Rate(); got != 1.5 {
		t.Errorf("rate = %v after ], want 1.5", got)
	}

	scr, _ = ps.Update(keyPress('['))
	scr, _ = scr.(*PlayerScreen).Update(keyPress('['))
	ps = scr.(*PlayerScreen)
	if got := ps.engine.Cursor().Rate(); got != 0.5 {
		t.Errorf("rate = %v after [[, want 0.5", got)
	}
}

func TestPlayer_ScrubSuspendsTicks(t *testing.T) {
	s := loadedPlayer(t)
	s.engine.Play()

	scr, _ := s.Update(keyPress('s'))
	ps := scr.(*PlayerScreen)
	if !ps.engine.Cursor().Scrubbing() {
		t.Fatal("expected scrubbing after s")
	}

	scr, _ = ps.Update(playbackTickMsg{})
	ps = scr.(*PlayerScreen)
	if got := ps.engine.Cursor().TimeMs(); got != 0 {
		t.Errorf("cursor moved to %d during scrub", got)
	}
	if !ps.engine.Cursor().Playing() {
		t.Error("expected play state preserved during scrub")
	}

	scr, _ = ps.Update(keyPress('s'))
	ps = scr.(*PlayerScreen)
	if ps.engine.Cursor().Scrubbing() {
		t.Error("expected scrub to end after second s")
	}
}

func TestPlayer_RestartFromEnd(t *testing.T) {
	s := loadedPlayer(t)
	s.engine.Seek(60000)

	scr, cmd := s.Update(keyPress(' '))
	ps := scr.(*PlayerScreen)
	if got := ps.engine.Cursor().TimeMs(); got != 0 {
		t.Errorf("cursor at %d after play from end, want 0", got)
	}
	if !ps.engine.Cursor().Playing() {
		t.Error("expected playing after restart")
	}
	if cmd == nil {
		t.Error("expected a tick command")
	}
}

func TestPlayer_ViewStates(t *testing.T) {
	s := New(&mockSessionRepo{data: testData()}, nil, nil, "sess-1")
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty loading view")
	}

	ps := loadedPlayer(t)
	ps.engine.Seek(5000)
	ps.snap = ps.engine.Snapshot()
	if view := ps.View(80, 24); view == "" {
		t.Error("expected non-empty playback view")
	}
}

func TestPlayer_InfoLineShowsTestProgress(t *testing.T) {
	data := testData()
	data.TaskProgress = []replay.TaskProgressEntry{
		{Timestamp: "2025-01-01T00:00:04Z", TaskIndex: 0, Attempts: 2, TestCasesPassed: 1, TotalTestCases: 3},
	}
	s := New(&mockSessionRepo{data: data}, nil, nil, "sess-1")
	scr, _ := s.Update(loadedMsg{Data: data})
	ps := scr.(*PlayerScreen)
	ps.engine.Seek(5000)
	ps.snap = ps.engine.Snapshot()

	view := ps.View(80, 24)
	if !strings.Contains(view, "tests 1/3") {
		t.Error("expected test progress in the info line")
	}
	if !strings.Contains(view, "attempts 2") {
		t.Error("expected attempt count in the info line")
	}
}

func TestPlayer_KeyHints(t *testing.T) {
	s := loadedPlayer(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}

	s.engine.BeginScrub()
	hints := s.KeyHints()
	if len(hints) == 0 {
		t.Error("expected scrub key hints")
	}
}

func TestPlayer_Status(t *testing.T) {
	s := loadedPlayer(t)
	if s.Status() == "" {
		t.Error("expected non-empty status")
	}

	var bare screen.Screen = New(&mockSessionRepo{}, nil, nil, "x")
	if sp, ok := bare.(screen.StatusProvider); !ok || sp.Status() != "" {
		t.Error("expected empty status before load")
	}
}
