package audio

import (
	"sync"
	"time"
)

// ClockResource is a headless playback resource: it tracks a playback
// position against the wall clock instead of decoding media. The terminal
// player has no audio device, but the sync controller still needs positions,
// durations, and end-of-audio signals to mirror what a real backend would do.
// The duration comes from the conversation interval.
type ClockResource struct {
	mu       sync.Mutex
	dur      float64
	pos      float64 // position at the last state change
	playedAt time.Time
	playing  bool
	ended    bool
	released bool
	onEnded  func()
	now      func() time.Time
}

// NewClockResource creates a paused resource of the given duration (seconds).
func NewClockResource(durSec float64) *ClockResource {
	if durSec < 0 {
		durSec = 0
	}
	return &ClockResource{dur: durSec, now: time.Now}
}

// Play starts the playback clock. A clip that has reached its end stays
// stopped until a Seek moves the position back.
func (r *ClockResource) Play() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released || r.ended || r.playing {
		return nil
	}
	r.playing = true
	r.playedAt = r.now()
	return nil
}

// Pause freezes the playback clock at the current position.
func (r *ClockResource) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.playing {
		return
	}
	r.pos = r.positionLocked()
	r.playing = false
}

// Seek moves the playback position.
func (r *ClockResource) Seek(posSec float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if posSec < 0 {
		posSec = 0
	}
	r.pos = posSec
	r.playedAt = r.now()
	r.ended = false
}

// Position returns the current playback position in seconds. Crossing the
// duration while playing stops the clock and fires the ended callback once,
// on its own goroutine: the sync controller calls Position under its lock
// and takes that same lock again inside the callback, so running the
// callback on the caller's stack would deadlock it.
func (r *ClockResource) Position() float64 {
	r.mu.Lock()
	pos := r.positionLocked()
	var ended func()
	if r.playing && pos >= r.dur {
		r.pos = r.dur
		r.playing = false
		r.ended = true
		ended = r.onEnded
	}
	r.mu.Unlock()

	if ended != nil {
		go ended()
	}
	if pos > r.dur {
		return r.dur
	}
	return pos
}

// Duration returns the resource length in seconds.
func (r *ClockResource) Duration() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dur
}

// Paused reports whether the clock is stopped.
func (r *ClockResource) Paused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.playing
}

// OnEnded registers the natural-end callback. It runs on its own goroutine.
func (r *ClockResource) OnEnded(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onEnded = fn
}

// Release stops the clock. A released resource never plays again.
func (r *ClockResource) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.playing = false
	r.released = true
}

func (r *ClockResource) positionLocked() float64 {
	if !r.playing {
		return r.pos
	}
	return r.pos + r.now().Sub(r.playedAt).Seconds()
}
