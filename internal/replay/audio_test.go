package replay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeResource is a scriptable AudioResource for controller tests.
type fakeResource struct {
	mu       sync.Mutex
	pos      float64
	dur      float64
	paused   bool
	released bool
	seeks    int
	plays    int
	playErr  error
	onEnded  func()
}

func newFakeResource(dur float64) *fakeResource {
	return &fakeResource{dur: dur, paused: true}
}

func (f *fakeResource) Play() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.playErr != nil {
		return f.playErr
	}
	f.paused = false
	f.plays++
	return nil
}

func (f *fakeResource) Pause() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paused = true
}

func (f *fakeResource) Seek(posSec float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pos = posSec
	f.seeks++
}

func (f *fakeResource) Position() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pos
}

func (f *fakeResource) Duration() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dur
}

func (f *fakeResource) Paused() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paused
}

func (f *fakeResource) OnEnded(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onEnded = fn
}

func (f *fakeResource) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released = true
}

func (f *fakeResource) seekCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seeks
}

func (f *fakeResource) setPos(p float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pos = p
}

// fakeFetcher serves canned audio bytes per conversation id.
type fakeFetcher struct {
	mu    sync.Mutex
	err   error
	gate  chan struct{} // when non-nil, fetches block until closed
	calls []string
}

func (f *fakeFetcher) FetchConversationAudio(_ context.Context, id string) ([]byte, error) {
	f.mu.Lock()
	gate := f.gate
	f.calls = append(f.calls, id)
	err := f.err
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return []byte(id), nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// testController wires a controller whose opener records every resource it
// hands out, keyed by the audio bytes (the conversation id in these tests).
func testController(fetcher AudioFetcher, dur float64) (*AudioController, *sync.Map) {
	var opened sync.Map
	c := NewAudioController(fetcher, func(data []byte, _ float64) (AudioResource, error) {
		r := newFakeResource(dur)
		opened.Store(string(data), r)
		return r, nil
	})
	c.SetLogf(func(string, ...any) {})
	return c, &opened
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func span(id string, startMs, endMs int64) *ConversationSpan {
	return &ConversationSpan{ConversationID: id, StartMs: startMs, EndMs: endMs}
}

func loadedResource(t *testing.T, opened *sync.Map, id string) *fakeResource {
	t.Helper()
	v, ok := opened.Load(id)
	require.True(t, ok, "resource for %s not opened", id)
	return v.(*fakeResource)
}

func TestAudioController_LoadsAndSeeksNewConversation(t *testing.T) {
	fetcher := &fakeFetcher{}
	c, opened := testController(fetcher, 30)

	// Conversation started at 2s; cursor is at 5s; timeline is playing.
	c.Update(context.Background(), span("conv-1", 2000, 32000), 5000, true)
	waitFor(t, func() bool { return !c.Fetching() })

	require.Equal(t, "conv-1", c.LoadedConversation())
	res := loadedResource(t, opened, "conv-1")
	require.InDelta(t, 3.0, res.Position(), 0.001, "should seek to cursor-start offset")
	require.False(t, res.Paused(), "should play when timeline is playing")
}

func TestAudioController_PausedTimelineLoadsWithoutPlaying(t *testing.T) {
	fetcher := &fakeFetcher{}
	c, opened := testController(fetcher, 30)

	c.Update(context.Background(), span("conv-1", 0, 30000), 1000, false)
	waitFor(t, func() bool { return !c.Fetching() })

	res := loadedResource(t, opened, "conv-1")
	require.True(t, res.Paused(), "must stay paused at the sought position")
	require.InDelta(t, 1.0, res.Position(), 0.001)
}

func TestAudioController_CursorPastAudioEndDoesNotPlay(t *testing.T) {
	fetcher := &fakeFetcher{}
	c, opened := testController(fetcher, 10) // 10s of audio

	// Cursor 15s into a conversation with only 10s of recorded audio.
	c.Update(context.Background(), span("conv-1", 0, 60000), 15000, true)
	waitFor(t, func() bool { return !c.Fetching() })

	require.Equal(t, "", c.LoadedConversation())
	res := loadedResource(t, opened, "conv-1")
	require.True(t, res.released, "resource must be released when past its end")

	c.Update(context.Background(), span("conv-1", 0, 60000), 16000, true)
	require.Equal(t, 1, fetcher.callCount(), "no re-fetch while the conversation stays active")
}

func TestAudioController_Hysteresis(t *testing.T) {
	fetcher := &fakeFetcher{}
	c, opened := testController(fetcher, 60)

	c.Update(context.Background(), span("conv-1", 0, 60000), 0, true)
	waitFor(t, func() bool { return !c.Fetching() })
	res := loadedResource(t, opened, "conv-1")
	seeksAfterLoad := res.seekCount()

	// Simulate playback: the audio clock tracks the cursor closely, so the
	// 100ms ticks must not trigger any re-seek.
	for ms := int64(100); ms <= 3000; ms += 100 {
		res.setPos(float64(ms)/1000 - 0.05) // 50ms of natural drift
		c.SyncTime(ms, true)
	}
	require.Equal(t, seeksAfterLoad, res.seekCount(), "no re-seek within the drift tolerance")

	// A real jump must re-seek.
	c.SyncTime(10000, true)
	require.Equal(t, seeksAfterLoad+1, res.seekCount())
	require.InDelta(t, 10.0, res.Position(), 0.001)
}

func TestAudioController_ScrubPastEndReleases(t *testing.T) {
	fetcher := &fakeFetcher{}
	c, opened := testController(fetcher, 10)

	c.Update(context.Background(), span("conv-1", 0, 60000), 0, true)
	waitFor(t, func() bool { return !c.Fetching() })
	res := loadedResource(t, opened, "conv-1")

	c.SyncTime(20000, true) // past the 10s of audio
	require.True(t, res.released)
	require.Equal(t, "", c.LoadedConversation())

	// Still inside the conversation: the released audio is not re-fetched.
	c.Update(context.Background(), span("conv-1", 0, 60000), 21000, true)
	require.Equal(t, 1, fetcher.callCount())
}

func TestAudioController_PlayPauseTogglePreservesPosition(t *testing.T) {
	fetcher := &fakeFetcher{}
	c, opened := testController(fetcher, 60)

	c.Update(context.Background(), span("conv-1", 0, 60000), 4000, true)
	waitFor(t, func() bool { return !c.Fetching() })
	res := loadedResource(t, opened, "conv-1")
	posBefore := res.Position()

	c.SetPlaying(false)
	require.True(t, res.Paused())
	c.SetPlaying(true)
	require.False(t, res.Paused())
	require.Equal(t, posBefore, res.Position(), "toggle must not move the position")
}

func TestAudioController_ConversationChangeReleasesOld(t *testing.T) {
	fetcher := &fakeFetcher{}
	c, opened := testController(fetcher, 60)

	c.Update(context.Background(), span("conv-1", 0, 30000), 1000, true)
	waitFor(t, func() bool { return !c.Fetching() })
	old := loadedResource(t, opened, "conv-1")

	c.Update(context.Background(), span("conv-2", 30000, 60000), 31000, true)
	waitFor(t, func() bool { return !c.Fetching() })

	require.True(t, old.released, "previous resource must be released")
	require.Equal(t, "conv-2", c.LoadedConversation())
}

func TestAudioController_InactiveConversationStops(t *testing.T) {
	fetcher := &fakeFetcher{}
	c, opened := testController(fetcher, 60)

	c.Update(context.Background(), span("conv-1", 0, 30000), 1000, true)
	waitFor(t, func() bool { return !c.Fetching() })
	res := loadedResource(t, opened, "conv-1")

	c.Update(context.Background(), nil, 31000, true)
	require.True(t, res.released)
	require.Equal(t, "", c.LoadedConversation())
}

func TestAudioController_StaleFetchDiscarded(t *testing.T) {
	gate := make(chan struct{})
	fetcher := &fakeFetcher{gate: gate}
	c, opened := testController(fetcher, 60)

	// Start fetching conv-1, then switch to conv-2 before it resolves.
	c.Update(context.Background(), span("conv-1", 0, 30000), 1000, true)
	c.Update(context.Background(), span("conv-2", 30000, 60000), 31000, true)
	close(gate)

	waitFor(t, func() bool { return !c.Fetching() })
	waitFor(t, func() bool { return fetcher.callCount() == 2 })

	require.Equal(t, "conv-2", c.LoadedConversation())
	// The stale response must be discarded before a resource is built.
	_, ok := opened.Load("conv-1")
	require.False(t, ok, "stale fetch must not open a resource")
}

func TestAudioController_FetchFailureDegradesSilently(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("status 502")}
	c, _ := testController(fetcher, 60)

	var logged []string
	c.SetLogf(func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	})

	c.Update(context.Background(), span("conv-1", 0, 30000), 1000, true)
	waitFor(t, func() bool { return !c.Fetching() })

	require.Equal(t, "", c.LoadedConversation(), "no audio for this conversation")
	require.NotEmpty(t, logged, "failure must be logged for diagnostics")
}

func TestAudioController_FetchFailureDoesNotRetry(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("status 502")}
	c, _ := testController(fetcher, 60)

	c.Update(context.Background(), span("conv-1", 0, 30000), 1000, true)
	waitFor(t, func() bool { return !c.Fetching() })
	require.Equal(t, 1, fetcher.callCount())

	// The player reconciles on every 100ms tick. A failed conversation must
	// stay silent, not be fetched again tick after tick.
	for ms := int64(1100); ms <= 2000; ms += 100 {
		c.Update(context.Background(), span("conv-1", 0, 30000), ms, true)
	}
	require.Equal(t, 1, fetcher.callCount(), "one attempt per conversation")

	// A conversation change starts over.
	fetcher.mu.Lock()
	fetcher.err = nil
	fetcher.mu.Unlock()
	c.Update(context.Background(), span("conv-2", 30000, 60000), 31000, true)
	waitFor(t, func() bool { return !c.Fetching() })
	require.Equal(t, 2, fetcher.callCount())
	require.Equal(t, "conv-2", c.LoadedConversation())
}

func TestAudioController_OpenFailureDegradesSilently(t *testing.T) {
	fetcher := &fakeFetcher{}
	c := NewAudioController(fetcher, func([]byte, float64) (AudioResource, error) {
		return nil, errors.New("bad codec")
	})
	c.SetLogf(func(string, ...any) {})

	c.Update(context.Background(), span("conv-1", 0, 30000), 1000, true)
	waitFor(t, func() bool { return !c.Fetching() })

	require.Equal(t, "", c.LoadedConversation())
}

func TestAudioController_EndedClearsState(t *testing.T) {
	fetcher := &fakeFetcher{}
	c, opened := testController(fetcher, 60)

	c.Update(context.Background(), span("conv-1", 0, 60000), 0, true)
	waitFor(t, func() bool { return !c.Fetching() })
	res := loadedResource(t, opened, "conv-1")

	res.mu.Lock()
	ended := res.onEnded
	res.mu.Unlock()
	require.NotNil(t, ended)
	ended()

	require.Equal(t, "", c.LoadedConversation())
	require.True(t, res.released)

	// The ended conversation stays silent while it remains active.
	c.Update(context.Background(), span("conv-1", 0, 60000), 59000, true)
	require.Equal(t, 1, fetcher.callCount())

	// Leaving the conversation and scrubbing back in fetches fresh audio.
	c.Update(context.Background(), nil, 61000, true)
	c.Update(context.Background(), span("conv-1", 0, 60000), 500, true)
	waitFor(t, func() bool { return fetcher.callCount() == 2 && !c.Fetching() })
	require.Equal(t, "conv-1", c.LoadedConversation())
}
