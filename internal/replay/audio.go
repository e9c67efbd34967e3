package replay

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// driftToleranceSec is how far the audio clock may drift from the timeline
// before the controller re-seeks. Re-seeking on every tick would fight the
// audio clock during normal forward playback.
const driftToleranceSec = 0.5

// AudioResource is the minimal playback capability the controller needs.
// Implementations wrap whatever media backend is available; tests use a
// scriptable fake. Positions and durations are in seconds.
type AudioResource interface {
	Play() error
	Pause()
	Seek(posSec float64)
	Position() float64
	Duration() float64
	Paused() bool
	// OnEnded registers fn to run when playback reaches the end of the
	// audio. Implementations call fn from their own goroutine, never from
	// inside another resource method: the controller takes its lock in the
	// callback.
	OnEnded(fn func())
	Release()
}

// AudioFetcher retrieves the recorded audio bytes for a conversation.
type AudioFetcher interface {
	FetchConversationAudio(ctx context.Context, conversationID string) ([]byte, error)
}

// ResourceOpener turns fetched audio bytes into a playable resource.
// spanSec is the conversation interval length, for backends that cannot
// decode a duration from the bytes themselves.
type ResourceOpener func(data []byte, spanSec float64) (AudioResource, error)

// AudioController keeps a single audio resource aligned with the timeline
// cursor for whichever conversation is currently active. It exclusively owns
// the resource: no other component starts, stops, or seeks it.
//
// Fetches run on their own goroutine; everything else happens on the event
// loop. The mutex covers the handoff between the two.
type AudioController struct {
	fetcher AudioFetcher
	open    ResourceOpener
	logf    func(format string, args ...any)

	mu       sync.Mutex
	loadedID string
	silentID string // conversation whose audio failed or finished; no re-fetch while it stays active
	span     ConversationSpan
	res      AudioResource
	fetching bool
	gen      int // bumped on every conversation change; stale fetches are discarded
}

// NewAudioController creates a controller with no audio loaded.
func NewAudioController(fetcher AudioFetcher, open ResourceOpener) *AudioController {
	return &AudioController{
		fetcher: fetcher,
		open:    open,
		logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}
}

// SetLogf replaces the diagnostic log function (stderr by default).
func (c *AudioController) SetLogf(logf func(format string, args ...any)) {
	c.logf = logf
}

// LoadedConversation returns the id of the conversation whose audio is
// currently loaded, or "" when none is.
func (c *AudioController) LoadedConversation() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadedID
}

// Fetching reports whether an audio fetch is in flight.
func (c *AudioController) Fetching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetching
}

// Update reconciles the audio state against the current snapshot: the active
// conversation (nil when inactive), the cursor position, and the play state.
// Call it on every cursor change. It never blocks on I/O. A conversation
// whose audio failed or finished stays silent until the active conversation
// changes; the fetch is attempted once, not once per tick.
func (c *AudioController) Update(ctx context.Context, conv *ConversationSpan, cursorMs int64, playing bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if conv == nil {
		c.releaseLocked()
		return
	}

	if conv.ConversationID == c.loadedID && c.res != nil {
		c.syncLocked(cursorMs, playing)
		return
	}

	if c.fetching && conv.ConversationID == c.loadedID {
		// Fetch for this conversation already in flight.
		return
	}

	if conv.ConversationID == c.silentID {
		// No audio for this conversation.
		return
	}

	// New conversation: drop whatever was loaded and fetch its audio.
	c.releaseLocked()
	c.loadedID = conv.ConversationID
	c.span = *conv
	c.fetching = true
	c.gen++
	gen := c.gen

	go c.fetch(ctx, *conv, gen, cursorMs, playing)
}

// fetch retrieves and opens audio off the event loop, then applies the
// result if the conversation is still the active one.
func (c *AudioController) fetch(ctx context.Context, conv ConversationSpan, gen int, cursorMs int64, playing bool) {
	data, err := c.fetcher.FetchConversationAudio(ctx, conv.ConversationID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// The active conversation changed while we were fetching.
		return
	}
	c.fetching = false

	if err != nil {
		c.logf("warning: audio fetch for %s failed: %v", conv.ConversationID, err)
		c.loadedID = ""
		c.silentID = conv.ConversationID
		return
	}

	spanSec := float64(conv.EndMs-conv.StartMs) / 1000
	res, err := c.open(data, spanSec)
	if err != nil {
		c.logf("warning: audio for %s unplayable: %v", conv.ConversationID, err)
		c.loadedID = ""
		c.silentID = conv.ConversationID
		return
	}

	target := targetOffsetSec(cursorMs, conv.StartMs)
	if target >= res.Duration() {
		// Timeline already scrubbed past the end of the recording.
		res.Release()
		c.loadedID = ""
		c.silentID = conv.ConversationID
		return
	}

	res.OnEnded(func() { c.handleEnded(gen) })
	res.Seek(target)
	c.res = res

	if playing {
		if err := res.Play(); err != nil {
			c.logf("warning: audio playback for %s failed: %v", conv.ConversationID, err)
			c.releaseLocked()
			c.silentID = conv.ConversationID
		}
	}
}

// SyncTime reconciles the audio position with the cursor while the loaded
// conversation stays active. Seeks only when drift exceeds the tolerance.
func (c *AudioController) SyncTime(cursorMs int64, playing bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.syncLocked(cursorMs, playing)
}

func (c *AudioController) syncLocked(cursorMs int64, playing bool) {
	if c.res == nil {
		return
	}

	target := targetOffsetSec(cursorMs, c.span.StartMs)
	if target >= c.res.Duration() {
		id := c.loadedID
		c.releaseLocked()
		c.silentID = id
		return
	}

	if diff := c.res.Position() - target; diff > driftToleranceSec || diff < -driftToleranceSec {
		c.res.Seek(target)
	}
	c.reconcileRunStateLocked(playing)
}

// SetPlaying propagates a play/pause toggle to the loaded audio. It never
// moves the position, only the run state.
func (c *AudioController) SetPlaying(playing bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reconcileRunStateLocked(playing)
}

func (c *AudioController) reconcileRunStateLocked(playing bool) {
	if c.res == nil {
		return
	}
	if playing && c.res.Paused() {
		if err := c.res.Play(); err != nil {
			c.logf("warning: audio resume failed: %v", err)
		}
	} else if !playing && !c.res.Paused() {
		c.res.Pause()
	}
}

// handleEnded clears the loaded audio when the resource reports natural end
// and keeps the conversation silent until the active one changes. It never
// touches the timeline cursor; the playback tick is independent.
func (c *AudioController) handleEnded(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	id := c.loadedID
	c.releaseLocked()
	c.silentID = id
}

// Stop releases any loaded audio and forgets the active conversation.
func (c *AudioController) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.releaseLocked()
}

func (c *AudioController) releaseLocked() {
	if c.res != nil {
		c.res.Pause()
		c.res.Release()
		c.res = nil
	}
	c.loadedID = ""
	c.silentID = ""
	c.fetching = false
	c.gen++
}

// targetOffsetSec converts a cursor position into a position within the
// conversation's audio, never negative.
func targetOffsetSec(cursorMs, convStartMs int64) float64 {
	off := float64(cursorMs-convStartMs) / 1000
	if off < 0 {
		return 0
	}
	return off
}
