package player

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/replayz/internal/audio"
	"github.com/abhisek/replayz/internal/lessons"
	"github.com/abhisek/replayz/internal/replay"
	"github.com/abhisek/replayz/internal/router"
	"github.com/abhisek/replayz/internal/screen"
	"github.com/abhisek/replayz/internal/store"
	"github.com/abhisek/replayz/internal/ui/components"
	"github.com/abhisek/replayz/internal/ui/layout"
)

// playbackRates are the selectable speed multipliers, in order.
var playbackRates = []float64{0.25, 0.5, 1.0, 1.5, 2.0, 4.0}

// PlayerScreen replays one recorded session: it advances the timeline
// clock, derives the workspace state at the cursor, and keeps conversation
// audio in sync.
type PlayerScreen struct {
	sessionRepo store.SessionRepo
	lessonSvc   *lessons.Service
	audioClient *audio.Client
	sessionID   string

	engine   *replay.Engine
	audioCtl *replay.AudioController
	lesson   *lessons.Structure
	snap     replay.Snapshot
	spin     components.Spinner
	rateIdx  int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*PlayerScreen)(nil)
var _ screen.KeyHintProvider = (*PlayerScreen)(nil)
var _ screen.StatusProvider = (*PlayerScreen)(nil)

// New creates a player for the given session. audioClient may be nil;
// playback then runs without audio.
func New(sessionRepo store.SessionRepo, lessonSvc *lessons.Service, audioClient *audio.Client, sessionID string) *PlayerScreen {
	return &PlayerScreen{
		sessionRepo: sessionRepo,
		lessonSvc:   lessonSvc,
		audioClient: audioClient,
		sessionID:   sessionID,
		spin:        components.NewSpinner(),
		rateIdx:     2, // 1.0x
	}
}

func (s *PlayerScreen) Init() tea.Cmd {
	return tea.Batch(s.spin.Init(), s.load())
}

func (s *PlayerScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		data, err := s.sessionRepo.Load(ctx, s.sessionID)
		if err != nil {
			return loadedMsg{Err: err}
		}

		// Lesson structure is optional context; replay works without it.
		var lesson *lessons.Structure
		if s.lessonSvc != nil {
			if st, err := s.lessonSvc.Structure(ctx, data.Session.LessonID); err == nil {
				lesson = st
			}
		}

		return loadedMsg{Data: data, Lesson: lesson}
	}
}

func (s *PlayerScreen) Title() string {
	return "Replay " + shortID(s.sessionID)
}

func (s *PlayerScreen) Status() string {
	if s.engine == nil {
		return ""
	}
	cur := s.engine.Cursor()
	state := "⏸"
	if cur.Playing() {
		state = "▶"
	}
	if cur.Scrubbing() {
		state = "⇄"
	}
	return fmt.Sprintf("%s %s / %s  %.2gx",
		state,
		components.FormatOffset(cur.TimeMs()),
		components.FormatOffset(cur.DurationMs()),
		cur.Rate(),
	)
}

func (s *PlayerScreen) KeyHints() []layout.KeyHint {
	if s.engine != nil && s.engine.Cursor().Scrubbing() {
		return []layout.KeyHint{
			{Key: "←→", Description: "Scrub ±5s"},
			{Key: "S", Description: "Done"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Play/Pause"},
		{Key: "←→", Description: "±5s"},
		{Key: "[]", Description: "Speed"},
		{Key: "S", Description: "Scrub"},
		{Key: "R", Description: "Restart"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PlayerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return s.handleLoaded(msg)

	case playbackTickMsg:
		return s.handleTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Remaining messages drive the spinner animation.
	var cmd tea.Cmd
	s.spin, cmd = s.spin.Update(msg)
	return s, cmd
}

func (s *PlayerScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		s.loaded = true
		return s, nil
	}

	s.engine = replay.NewEngine(msg.Data)
	s.lesson = msg.Lesson
	s.snap = s.engine.Snapshot()
	s.loaded = true

	if s.audioClient != nil {
		s.audioCtl = replay.NewAudioController(s.audioClient, func(data []byte, spanSec float64) (replay.AudioResource, error) {
			// Audio bytes are fetched for availability; the clock resource
			// keeps positional sync without a terminal audio device.
			_ = data
			return audio.NewClockResource(spanSec), nil
		})
	}

	return s, nil
}

func (s *PlayerScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.engine == nil || !s.engine.Cursor().Playing() {
		return s, nil
	}

	advanced := s.engine.Tick()
	s.snap = s.engine.Snapshot()
	s.syncAudio()

	if !advanced && !s.engine.Cursor().Playing() {
		// Reached the end of the session.
		return s, nil
	}
	return s, tickCmd()
}

func (s *PlayerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.engine == nil {
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	cur := s.engine.Cursor()
	switch msg.String() {
	case "esc":
		s.shutdown()
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case " ", "space":
		wasPlaying := cur.Playing()
		s.engine.Toggle()
		s.snap = s.engine.Snapshot()
		s.syncAudio()
		if !wasPlaying && s.engine.Cursor().Playing() {
			return s, tickCmd()
		}
		return s, nil

	case "left", "h":
		s.engine.SkipBack()
		s.snap = s.engine.Snapshot()
		s.syncAudio()
		return s, nil

	case "right", "l":
		s.engine.SkipForward()
		s.snap = s.engine.Snapshot()
		s.syncAudio()
		return s, nil

	case "[":
		if s.rateIdx > 0 {
			s.rateIdx--
			s.engine.SetRate(playbackRates[s.rateIdx])
		}
		return s, nil

	case "]":
		if s.rateIdx < len(playbackRates)-1 {
			s.rateIdx++
			s.engine.SetRate(playbackRates[s.rateIdx])
		}
		return s, nil

	case "s":
		if cur.Scrubbing() {
			s.engine.EndScrub()
		} else {
			s.engine.BeginScrub()
		}
		s.snap = s.engine.Snapshot()
		s.syncAudio()
		return s, nil

	case "r":
		wasPlaying := cur.Playing()
		s.engine.Seek(0)
		s.engine.Play()
		s.snap = s.engine.Snapshot()
		s.syncAudio()
		if !wasPlaying {
			return s, tickCmd()
		}
		return s, nil
	}
	return s, nil
}

// syncAudio pushes the current conversation and cursor position to the
// audio controller. Playback is considered running only when the clock
// actually advances, so scrubbing holds audio paused.
func (s *PlayerScreen) syncAudio() {
	if s.audioCtl == nil {
		return
	}
	cur := s.engine.Cursor()
	playing := cur.Playing() && !cur.Scrubbing()
	s.audioCtl.Update(context.Background(), s.snap.TutorPanel.Conversation, cur.TimeMs(), playing)
}

// shutdown releases audio before the screen is popped.
func (s *PlayerScreen) shutdown() {
	if s.audioCtl != nil {
		s.audioCtl.Stop()
	}
}

// tickCmd returns the playback clock command.
func tickCmd() tea.Cmd {
	return tea.Tick(replay.TickInterval, func(t time.Time) tea.Msg {
		return playbackTickMsg(t)
	})
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
