package replay

import "testing"

func TestCursor_InitialState(t *testing.T) {
	c := NewCursor(10000)
	if c.TimeMs() != 0 {
		t.Errorf("TimeMs = %d, want 0", c.TimeMs())
	}
	if c.Playing() {
		t.Error("cursor should start paused")
	}
	if c.Rate() != 1.0 {
		t.Errorf("Rate = %f, want 1.0", c.Rate())
	}
}

func TestCursor_TickAdvancesAndClamps(t *testing.T) {
	c := NewCursor(250)
	c.Play()

	if !c.Tick() {
		t.Fatal("tick while playing should move")
	}
	if c.TimeMs() != 100 {
		t.Errorf("TimeMs = %d, want 100", c.TimeMs())
	}

	c.Tick() // 200
	c.Tick() // would be 300 -> clamps to 250 and stops
	if c.TimeMs() != 250 {
		t.Errorf("TimeMs = %d, want 250 (clamped)", c.TimeMs())
	}
	if c.Playing() {
		t.Error("cursor should stop at the end")
	}
	if c.Tick() {
		t.Error("tick while stopped should not move")
	}
}

func TestCursor_TickRespectsRate(t *testing.T) {
	c := NewCursor(10000)
	c.SetRate(2.0)
	c.Play()
	c.Tick()
	if c.TimeMs() != 200 {
		t.Errorf("TimeMs = %d, want 200 at 2x", c.TimeMs())
	}

	c.SetRate(0) // ignored
	if c.Rate() != 2.0 {
		t.Errorf("Rate = %f, want 2.0 (non-positive ignored)", c.Rate())
	}
}

func TestCursor_ScrubSuspendsTick(t *testing.T) {
	c := NewCursor(10000)
	c.Play()
	c.BeginScrub()

	if c.Tick() {
		t.Error("tick during scrub should not move")
	}
	c.Seek(5000)
	if c.TimeMs() != 5000 {
		t.Errorf("TimeMs = %d, want 5000", c.TimeMs())
	}

	c.EndScrub()
	if !c.Playing() {
		t.Error("playback should survive a scrub")
	}
	if !c.Tick() {
		t.Error("tick should resume after scrub ends")
	}
	if c.TimeMs() != 5100 {
		t.Errorf("TimeMs = %d, want 5100", c.TimeMs())
	}
}

func TestCursor_PlayFromEndRestarts(t *testing.T) {
	c := NewCursor(1000)
	c.Seek(1000)
	c.Play()
	if c.TimeMs() != 0 {
		t.Errorf("TimeMs = %d, want 0 (restart from end)", c.TimeMs())
	}
	if !c.Playing() {
		t.Error("should be playing after restart")
	}
}

func TestCursor_SeekClamped(t *testing.T) {
	c := NewCursor(10000)

	c.Seek(-500)
	if c.TimeMs() != 0 {
		t.Errorf("TimeMs = %d, want 0 (negative clamped)", c.TimeMs())
	}

	c.Seek(99999)
	if c.TimeMs() != 10000 {
		t.Errorf("TimeMs = %d, want 10000 (overshoot clamped)", c.TimeMs())
	}
}

func TestCursor_SkipClamped(t *testing.T) {
	c := NewCursor(10000)

	c.SkipBack()
	if c.TimeMs() != 0 {
		t.Errorf("TimeMs = %d, want 0", c.TimeMs())
	}

	c.SkipForward()
	if c.TimeMs() != 5000 {
		t.Errorf("TimeMs = %d, want 5000", c.TimeMs())
	}

	c.SkipForward()
	c.SkipForward()
	if c.TimeMs() != 10000 {
		t.Errorf("TimeMs = %d, want 10000 (clamped)", c.TimeMs())
	}
}

func TestCursor_PauseKeepsPosition(t *testing.T) {
	c := NewCursor(10000)
	c.Play()
	c.Tick()
	c.Pause()
	if c.TimeMs() != 100 {
		t.Errorf("TimeMs = %d, want 100", c.TimeMs())
	}
	if c.Playing() {
		t.Error("should be paused")
	}
}

func TestEngine_NotifiesSubscribers(t *testing.T) {
	data := testSessionData()
	data.CodeSnapshots = []CodeSnapshot{{Timestamp: ts(0), Code: "A"}}
	e := NewEngine(data)

	var got []int64
	e.Subscribe(func(s Snapshot) { got = append(got, s.TimeMs) })

	e.Seek(3000)
	e.Play()
	e.Tick()
	e.Pause()

	want := []int64{3000, 3000, 3100, 3100}
	if len(got) != len(want) {
		t.Fatalf("notifications = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d at %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEngine_SnapshotBestEffort(t *testing.T) {
	// Even with every stream empty or malformed, Snapshot returns defaults.
	data := testSessionData()
	data.Messages = []Message{{Timestamp: "garbage", Role: RoleUser, Content: "x"}}
	e := NewEngine(data)

	snap := e.Snapshot()
	if snap.HasCode || snap.ActiveTask != 0 || len(snap.Messages) != 0 {
		t.Errorf("expected default snapshot, got %+v", snap)
	}
}
