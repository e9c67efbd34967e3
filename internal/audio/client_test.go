package audio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/replayz/internal/replay"
)

func TestClient_FetchConversationAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/conversation-audio/conv-1" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte("audio-bytes"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	data, err := c.FetchConversationAudio(context.Background(), "conv-1")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(data) != "audio-bytes" {
		t.Errorf("data = %q", data)
	}
}

func TestClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.FetchConversationAudio(context.Background(), "conv-1"); err == nil {
		t.Fatal("expected error for 502")
	}
}

func TestClient_TrailingSlashBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/conversation-audio/x" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/")
	if _, err := c.FetchConversationAudio(context.Background(), "x"); err != nil {
		t.Fatalf("fetch: %v", err)
	}
}

func TestClockResource_PlayAdvancesPosition(t *testing.T) {
	r := NewClockResource(10)
	fake := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fake }

	if err := r.Play(); err != nil {
		t.Fatalf("play: %v", err)
	}
	fake = fake.Add(2 * time.Second)
	if got := r.Position(); got != 2 {
		t.Errorf("Position = %f, want 2", got)
	}

	r.Pause()
	fake = fake.Add(5 * time.Second)
	if got := r.Position(); got != 2 {
		t.Errorf("Position = %f after pause, want 2", got)
	}
}

func TestClockResource_SeekWhilePlaying(t *testing.T) {
	r := NewClockResource(10)
	fake := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fake }

	r.Play()
	r.Seek(5)
	fake = fake.Add(1 * time.Second)
	if got := r.Position(); got != 6 {
		t.Errorf("Position = %f, want 6", got)
	}
}

func TestClockResource_EndFiresOnce(t *testing.T) {
	r := NewClockResource(3)
	fake := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fake }

	var mu sync.Mutex
	ended := 0
	r.OnEnded(func() {
		mu.Lock()
		ended++
		mu.Unlock()
	})

	r.Play()
	fake = fake.Add(5 * time.Second)
	if got := r.Position(); got != 3 {
		t.Errorf("Position = %f, want clamped to 3", got)
	}
	r.Position()

	// The callback runs on its own goroutine.
	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := ended
		mu.Unlock()
		if n >= 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("ended callback never ran")
		}
		time.Sleep(time.Millisecond)
	}
	time.Sleep(10 * time.Millisecond)
	mu.Lock()
	n := ended
	mu.Unlock()
	if n != 1 {
		t.Errorf("ended fired %d times, want 1", n)
	}
	if !r.Paused() {
		t.Error("resource should stop at its end")
	}
	if err := r.Play(); err != nil {
		t.Fatalf("play after end: %v", err)
	}
	if !r.Paused() {
		t.Error("ended resource must not restart without a seek")
	}
}

func TestClockResource_EndSignalDoesNotBlockCaller(t *testing.T) {
	r := NewClockResource(3)
	fake := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fake }

	// The sync controller reads Position while holding its own lock and
	// takes that lock again inside the ended callback. The callback must
	// therefore never run on the caller's stack.
	var ctlMu sync.Mutex
	done := make(chan struct{})
	r.OnEnded(func() {
		ctlMu.Lock()
		ctlMu.Unlock()
		close(done)
	})

	r.Play()
	fake = fake.Add(5 * time.Second)

	returned := make(chan float64, 1)
	go func() {
		ctlMu.Lock()
		defer ctlMu.Unlock()
		returned <- r.Position()
	}()

	select {
	case pos := <-returned:
		if pos != 3 {
			t.Errorf("Position = %f, want 3", pos)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Position blocked while the caller held its lock")
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ended callback never ran")
	}
}

type stubFetcher struct{}

func (stubFetcher) FetchConversationAudio(context.Context, string) ([]byte, error) {
	return []byte("audio"), nil
}

// The audio clock can run ahead of a slowed-down timeline and cross the clip
// end while the cursor is still within the drift tolerance. The controller's
// sync must come back from that state, not hang the event loop.
func TestClockResource_ControllerSyncAtClipEnd(t *testing.T) {
	fake := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var clockMu sync.Mutex
	now := func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		return fake
	}
	advance := func(d time.Duration) {
		clockMu.Lock()
		fake = fake.Add(d)
		clockMu.Unlock()
	}

	c := replay.NewAudioController(stubFetcher{}, func(_ []byte, spanSec float64) (replay.AudioResource, error) {
		r := NewClockResource(spanSec)
		r.now = now
		return r, nil
	})
	c.SetLogf(func(string, ...any) {})

	// 10s conversation, cursor near its end, timeline playing at 0.25x.
	conv := &replay.ConversationSpan{ConversationID: "conv-1", StartMs: 0, EndMs: 10000}
	c.Update(context.Background(), conv, 9500, true)
	deadline := time.Now().Add(2 * time.Second)
	for c.Fetching() {
		if time.Now().After(deadline) {
			t.Fatal("fetch never finished")
		}
		time.Sleep(time.Millisecond)
	}

	advance(700 * time.Millisecond) // clock at 10.2s, cursor target at 9.8s

	synced := make(chan struct{})
	go func() {
		c.SyncTime(9800, true)
		close(synced)
	}()
	select {
	case <-synced:
	case <-time.After(2 * time.Second):
		t.Fatal("sync at the clip end never returned")
	}
}

func TestClockResource_ReleasedNeverPlays(t *testing.T) {
	r := NewClockResource(10)
	r.Release()
	r.Play()
	if !r.Paused() {
		t.Error("released resource must not play")
	}
}
