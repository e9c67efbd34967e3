package replay

// Engine ties the immutable event streams to a timeline cursor and exposes
// point-in-time snapshots to the presentation layer. Subscribers are notified
// after every cursor mutation so reactive front-ends can re-render without
// polling.
//
// The engine follows the platform's single event-loop model: all methods must
// be called from one goroutine (the Bubble Tea update loop in the terminal
// player). The streams themselves are immutable, so snapshots taken at the
// same time are always identical.
type Engine struct {
	streams *Streams
	cursor  *Cursor
	subs    []func(Snapshot)
}

// NewEngine builds an engine for one loaded session.
func NewEngine(data *SessionData) *Engine {
	streams := NewStreams(data)
	return &Engine{
		streams: streams,
		cursor:  NewCursor(streams.DurationMs()),
	}
}

// Streams returns the engine's event store.
func (e *Engine) Streams() *Streams { return e.streams }

// Cursor returns the engine's timeline cursor. Mutating the cursor directly
// bypasses change notifications; prefer the engine's mutators.
func (e *Engine) Cursor() *Cursor { return e.cursor }

// Snapshot derives the full session state at the current cursor position.
func (e *Engine) Snapshot() Snapshot {
	return Derive(e.streams, e.cursor.TimeMs())
}

// SnapshotAt derives the session state at an arbitrary time without moving
// the cursor.
func (e *Engine) SnapshotAt(t int64) Snapshot {
	return Derive(e.streams, t)
}

// Subscribe registers fn to be called with a fresh snapshot after every
// cursor change.
func (e *Engine) Subscribe(fn func(Snapshot)) {
	e.subs = append(e.subs, fn)
}

// Play starts playback and notifies subscribers.
func (e *Engine) Play() { e.cursor.Play(); e.notify() }

// Pause stops playback and notifies subscribers.
func (e *Engine) Pause() { e.cursor.Pause(); e.notify() }

// Toggle flips play/pause and notifies subscribers.
func (e *Engine) Toggle() { e.cursor.Toggle(); e.notify() }

// Seek jumps to t (clamped) and notifies subscribers.
func (e *Engine) Seek(t int64) { e.cursor.Seek(t); e.notify() }

// SkipForward jumps ahead by the fixed delta and notifies subscribers.
func (e *Engine) SkipForward() { e.cursor.SkipForward(); e.notify() }

// SkipBack jumps back by the fixed delta and notifies subscribers.
func (e *Engine) SkipBack() { e.cursor.SkipBack(); e.notify() }

// SetRate changes the playback rate.
func (e *Engine) SetRate(rate float64) { e.cursor.SetRate(rate) }

// BeginScrub suspends the tick during a drag interaction.
func (e *Engine) BeginScrub() { e.cursor.BeginScrub() }

// EndScrub resumes the tick after a drag interaction.
func (e *Engine) EndScrub() { e.cursor.EndScrub() }

// Tick advances playback by one tick and notifies subscribers when the
// cursor moved. Returns whether it moved.
func (e *Engine) Tick() bool {
	moved := e.cursor.Tick()
	if moved {
		e.notify()
	}
	return moved
}

func (e *Engine) notify() {
	if len(e.subs) == 0 {
		return
	}
	snap := e.Snapshot()
	for _, fn := range e.subs {
		fn(snap)
	}
}
