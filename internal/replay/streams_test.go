package replay

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

const testStart = "2025-01-01T00:00:00Z"

// ts returns a timestamp string offsetMs milliseconds after testStart.
func ts(offsetMs int64) string {
	sec := offsetMs / 1000
	ms := offsetMs % 1000
	return fmt.Sprintf("2025-01-01T00:00:%02d.%03dZ", sec, ms)
}

func testSessionData() *SessionData {
	return &SessionData{
		Session: Session{
			ID:         "s1",
			StartedAt:  testStart,
			DurationMs: 10000,
		},
	}
}

func TestNewStreams_DropsMalformedTimestamps(t *testing.T) {
	data := testSessionData()
	data.Messages = []Message{
		{Timestamp: ts(1000), Role: RoleUser, Content: "first"},
		{Timestamp: "garbage", Role: RoleUser, Content: "dropped"},
		{Timestamp: ts(2000), Role: RoleAssistant, Content: "second"},
	}

	s := NewStreams(data)
	got := upTo(s.messages, 10000)
	if len(got) != 2 {
		t.Fatalf("messages = %d, want 2 (malformed excluded)", len(got))
	}
	if got[0].Value.Content != "first" || got[1].Value.Content != "second" {
		t.Errorf("unexpected messages after exclusion: %+v", got)
	}
}

func TestNewStreams_SortsAscending(t *testing.T) {
	data := testSessionData()
	data.CodeSnapshots = []CodeSnapshot{
		{Timestamp: ts(5000), Code: "C"},
		{Timestamp: ts(0), Code: "A"},
		{Timestamp: ts(2000), Code: "B"},
	}

	s := NewStreams(data)
	for i := 1; i < len(s.code); i++ {
		if s.code[i-1].OffsetMs > s.code[i].OffsetMs {
			t.Fatalf("stream not sorted at %d: %d > %d", i, s.code[i-1].OffsetMs, s.code[i].OffsetMs)
		}
	}
}

func TestUpTo_Boundaries(t *testing.T) {
	data := testSessionData()
	data.CodeSnapshots = []CodeSnapshot{
		{Timestamp: ts(0), Code: "A"},
		{Timestamp: ts(2000), Code: "B"},
		{Timestamp: ts(5000), Code: "C"},
	}
	s := NewStreams(data)

	tests := []struct {
		t    int64
		want int
	}{
		{-1, 0},
		{0, 1}, // inclusive at the boundary
		{1999, 1},
		{2000, 2},
		{3000, 2},
		{5000, 3},
		{99999, 3},
	}
	for _, tt := range tests {
		if got := len(upTo(s.code, tt.t)); got != tt.want {
			t.Errorf("upTo(%d) = %d entries, want %d", tt.t, got, tt.want)
		}
	}
}

// Monotonic inclusion: for T1 < T2 the active set at T1 is a prefix of the
// active set at T2.
func TestUpTo_MonotonicInclusion(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 40).Draw(rt, "n")
		data := testSessionData()
		for i := 0; i < n; i++ {
			off := rapid.Int64Range(0, 9999).Draw(rt, "off")
			data.Messages = append(data.Messages, Message{
				Timestamp: ts(off),
				Role:      RoleUser,
				Content:   fmt.Sprintf("m%d", i),
			})
		}
		s := NewStreams(data)

		t1 := rapid.Int64Range(-1000, 11000).Draw(rt, "t1")
		t2 := rapid.Int64Range(t1, 11000).Draw(rt, "t2")

		a := upTo(s.messages, t1)
		b := upTo(s.messages, t2)
		if len(a) > len(b) {
			rt.Fatalf("active set shrank: |upTo(%d)|=%d > |upTo(%d)|=%d", t1, len(a), t2, len(b))
		}
		for i := range a {
			if a[i].Value.Content != b[i].Value.Content {
				rt.Fatalf("not a prefix at index %d", i)
			}
		}
	})
}

func TestActiveConversation_IntervalBounds(t *testing.T) {
	data := testSessionData()
	data.Conversations = []Conversation{
		{ConversationID: "conv-1", StartTime: ts(1000), EndTime: ts(5000)},
	}
	s := NewStreams(data)

	tests := []struct {
		t      int64
		active bool
	}{
		{500, false},
		{1000, true}, // start-inclusive
		{3000, true},
		{4999, true},
		{5000, true}, // end-inclusive
		{5001, false},
	}
	for _, tt := range tests {
		_, active := s.ActiveConversation(tt.t)
		if active != tt.active {
			t.Errorf("ActiveConversation(%d) = %v, want %v", tt.t, active, tt.active)
		}
	}
}

func TestActiveConversation_OpenEnded(t *testing.T) {
	// No end time: the conversation lasts until the end of the session.
	data := testSessionData()
	data.Conversations = []Conversation{
		{ConversationID: "conv-1", StartTime: ts(1000)},
	}
	s := NewStreams(data)

	if _, active := s.ActiveConversation(9999); !active {
		t.Error("expected active at 9999")
	}
	if _, active := s.ActiveConversation(10000); !active {
		t.Error("expected boundary-inclusive active at session end")
	}
	if _, active := s.ActiveConversation(10001); active {
		t.Error("expected inactive past session end")
	}
}

func TestActiveConversation_MostRecentlyStartedWins(t *testing.T) {
	data := testSessionData()
	data.Conversations = []Conversation{
		{ConversationID: "early", StartTime: ts(1000), EndTime: ts(8000)},
		{ConversationID: "late", StartTime: ts(3000), EndTime: ts(6000)},
	}
	s := NewStreams(data)

	conv, active := s.ActiveConversation(4000)
	if !active || conv.ConversationID != "late" {
		t.Errorf("at 4000: got %q active=%v, want \"late\"", conv.ConversationID, active)
	}

	// After "late" ends, "early" is active again.
	conv, active = s.ActiveConversation(7000)
	if !active || conv.ConversationID != "early" {
		t.Errorf("at 7000: got %q active=%v, want \"early\"", conv.ConversationID, active)
	}
}

func TestActiveConversation_MalformedStartExcluded(t *testing.T) {
	data := testSessionData()
	data.Conversations = []Conversation{
		{ConversationID: "bad", StartTime: "garbage", EndTime: ts(5000)},
		{ConversationID: "good", StartTime: ts(1000), EndTime: ts(5000)},
	}
	s := NewStreams(data)

	conv, active := s.ActiveConversation(2000)
	if !active || conv.ConversationID != "good" {
		t.Errorf("got %q active=%v, want \"good\"", conv.ConversationID, active)
	}
}
