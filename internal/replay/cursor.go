package replay

import "time"

// Playback constants. The tick period matches the recording granularity the
// platform uses for smooth replay.
const (
	TickInterval = 100 * time.Millisecond
	tickStepMs   = 100
	skipDeltaMs  = 5000
)

// Cursor is the single source of truth for the current replay time and play
// state. It does not schedule its own ticks; the presentation layer calls
// Tick at TickInterval while playing. All time inputs are clamped to
// [0, duration], never rejected.
type Cursor struct {
	timeMs     int64
	durationMs int64
	playing    bool
	scrubbing  bool
	rate       float64
}

// NewCursor creates a paused cursor at time zero.
func NewCursor(durationMs int64) *Cursor {
	if durationMs < 0 {
		durationMs = 0
	}
	return &Cursor{durationMs: durationMs, rate: 1.0}
}

// TimeMs returns the current cursor position.
func (c *Cursor) TimeMs() int64 { return c.timeMs }

// DurationMs returns the session duration the cursor is bounded by.
func (c *Cursor) DurationMs() int64 { return c.durationMs }

// Playing reports whether autonomous playback is on.
func (c *Cursor) Playing() bool { return c.playing }

// Scrubbing reports whether a scrub interaction is in progress.
func (c *Cursor) Scrubbing() bool { return c.scrubbing }

// Rate returns the playback rate multiplier.
func (c *Cursor) Rate() float64 { return c.rate }

// Play starts playback. Playing from the end restarts at zero.
func (c *Cursor) Play() {
	if c.timeMs >= c.durationMs {
		c.timeMs = 0
	}
	c.playing = true
}

// Pause stops playback without moving the cursor.
func (c *Cursor) Pause() {
	c.playing = false
}

// Toggle flips between playing and paused.
func (c *Cursor) Toggle() {
	if c.playing {
		c.Pause()
	} else {
		c.Play()
	}
}

// Seek jumps the cursor to t, clamped to the session bounds.
func (c *Cursor) Seek(t int64) {
	c.timeMs = c.clamp(t)
}

// SkipForward jumps the cursor ahead by the fixed skip delta.
func (c *Cursor) SkipForward() {
	c.Seek(c.timeMs + skipDeltaMs)
}

// SkipBack jumps the cursor back by the fixed skip delta.
func (c *Cursor) SkipBack() {
	c.Seek(c.timeMs - skipDeltaMs)
}

// SetRate sets the playback rate multiplier. Non-positive rates are ignored.
func (c *Cursor) SetRate(rate float64) {
	if rate > 0 {
		c.rate = rate
	}
}

// BeginScrub suspends the autonomous tick while the user drags the timeline.
func (c *Cursor) BeginScrub() {
	c.scrubbing = true
}

// EndScrub resumes normal operation; the tick picks up again if still playing.
func (c *Cursor) EndScrub() {
	c.scrubbing = false
}

// Tick advances the cursor by one tick worth of playback. It reports whether
// the cursor moved. Reaching the end clamps to the duration and stops
// playback. Ticks are ignored while paused or scrubbing.
func (c *Cursor) Tick() bool {
	if !c.playing || c.scrubbing {
		return false
	}
	next := c.timeMs + int64(tickStepMs*c.rate)
	if next >= c.durationMs {
		c.timeMs = c.durationMs
		c.playing = false
		return true
	}
	c.timeMs = next
	return true
}

func (c *Cursor) clamp(t int64) int64 {
	if t < 0 {
		return 0
	}
	if t > c.durationMs {
		return c.durationMs
	}
	return t
}
