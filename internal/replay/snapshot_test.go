package replay

import (
	"fmt"
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

func TestDerive_MostRecentWriteWins(t *testing.T) {
	data := testSessionData()
	data.CodeSnapshots = []CodeSnapshot{
		{Timestamp: ts(0), Code: "A"},
		{Timestamp: ts(2000), Code: "B"},
		{Timestamp: ts(5000), Code: "C"},
	}
	s := NewStreams(data)

	tests := []struct {
		t    int64
		want string
	}{
		{0, "A"},
		{3000, "B"},
		{6000, "C"},
	}
	for _, tt := range tests {
		snap := Derive(s, tt.t)
		if !snap.HasCode || snap.Code != tt.want {
			t.Errorf("Derive(%d).Code = %q (has=%v), want %q", tt.t, snap.Code, snap.HasCode, tt.want)
		}
	}
}

func TestDerive_Defaults(t *testing.T) {
	s := NewStreams(testSessionData())
	snap := Derive(s, 5000)

	if snap.HasCode {
		t.Error("expected no code before the first snapshot")
	}
	if snap.ActiveTask != 0 {
		t.Errorf("ActiveTask = %d, want 0 default", snap.ActiveTask)
	}
	if snap.TutorPanel.Open {
		t.Error("panel should be closed before any interaction")
	}
	if snap.TutorPanel.Speaking != SpeakingInactive {
		t.Errorf("Speaking = %q, want inactive", snap.TutorPanel.Speaking)
	}
	if len(snap.Strokes) != 0 || len(snap.Messages) != 0 || len(snap.TestResults) != 0 {
		t.Error("expected empty point-event facets")
	}
}

func TestDerive_NavigationIsAuthoritativeForActiveTask(t *testing.T) {
	data := testSessionData()
	data.NavigationEvents = []NavigationEvent{
		{Timestamp: ts(1000), FromTask: 0, ToTask: 2, Direction: "forward"},
	}
	// A later code snapshot claims a different task; its task_index is
	// descriptive metadata and must not drive the facet.
	data.CodeSnapshots = []CodeSnapshot{
		{Timestamp: ts(2000), TaskIndex: 5, Code: "x"},
	}
	s := NewStreams(data)

	snap := Derive(s, 3000)
	if snap.ActiveTask != 2 {
		t.Errorf("ActiveTask = %d, want 2 (navigation wins)", snap.ActiveTask)
	}
}

func TestDerive_PanelOpenClose(t *testing.T) {
	data := testSessionData()
	data.PanelInteractions = []PanelInteraction{
		{Timestamp: ts(1000), Action: PanelOpen},
		{Timestamp: ts(4000), Action: PanelClose},
	}
	s := NewStreams(data)

	tests := []struct {
		t    int64
		open bool
	}{
		{500, false},
		{1000, true},
		{3999, true},
		{4000, false},
		{9000, false},
	}
	for _, tt := range tests {
		if got := Derive(s, tt.t).TutorPanel.Open; got != tt.open {
			t.Errorf("Derive(%d).TutorPanel.Open = %v, want %v", tt.t, got, tt.open)
		}
	}
}

// The §8-style scenario: session 12000ms, one conversation [2000,8000],
// assistant message at 2500, user message at 6000.
func TestDerive_SpeakingStateScenario(t *testing.T) {
	data := testSessionData()
	data.Session.DurationMs = 12000
	data.Conversations = []Conversation{
		{ConversationID: "conv-1", StartTime: ts(2000), EndTime: ts(8000)},
	}
	data.Messages = []Message{
		{Timestamp: ts(2500), Role: RoleAssistant, Content: "hello"},
		{Timestamp: ts(6000), Role: RoleUser, Content: "hi"},
	}
	s := NewStreams(data)

	tests := []struct {
		t    int64
		want SpeakingState
	}{
		{1000, SpeakingInactive},  // before the conversation
		{3000, SpeakingSpeaking},  // 500ms after assistant message
		{4500, SpeakingSpeaking},  // exactly at the window edge
		{5000, SpeakingListening}, // window expired
		{6500, SpeakingListening}, // latest message is from the user
		{9000, SpeakingInactive},  // conversation over
	}
	for _, tt := range tests {
		got := Derive(s, tt.t).TutorPanel.Speaking
		if got != tt.want {
			t.Errorf("Derive(%d).Speaking = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestDerive_ActiveConversationExposed(t *testing.T) {
	data := testSessionData()
	data.Conversations = []Conversation{
		{ConversationID: "conv-1", StartTime: ts(1000), EndTime: ts(5000)},
	}
	s := NewStreams(data)

	snap := Derive(s, 2000)
	if snap.TutorPanel.Conversation == nil {
		t.Fatal("expected active conversation")
	}
	if snap.TutorPanel.Conversation.ConversationID != "conv-1" {
		t.Errorf("conversation id = %q", snap.TutorPanel.Conversation.ConversationID)
	}
	if snap.TutorPanel.Conversation.StartMs != 1000 {
		t.Errorf("StartMs = %d, want 1000", snap.TutorPanel.Conversation.StartMs)
	}

	if Derive(s, 6000).TutorPanel.Conversation != nil {
		t.Error("expected no conversation after its end")
	}
}

// Idempotence: deriving twice at the same time over the same streams yields
// identical snapshots.
func TestDerive_Idempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		data := testSessionData()
		n := rapid.IntRange(0, 20).Draw(rt, "n")
		for i := 0; i < n; i++ {
			off := rapid.Int64Range(0, 9999).Draw(rt, "off")
			switch rapid.IntRange(0, 3).Draw(rt, "kind") {
			case 0:
				data.CodeSnapshots = append(data.CodeSnapshots, CodeSnapshot{
					Timestamp: ts(off), Code: fmt.Sprintf("code-%d", i),
				})
			case 1:
				data.Messages = append(data.Messages, Message{
					Timestamp: ts(off), Role: RoleAssistant, Content: fmt.Sprintf("m-%d", i),
				})
			case 2:
				data.NavigationEvents = append(data.NavigationEvents, NavigationEvent{
					Timestamp: ts(off), ToTask: i,
				})
			case 3:
				data.PanelInteractions = append(data.PanelInteractions, PanelInteraction{
					Timestamp: ts(off), Action: PanelOpen,
				})
			}
		}
		s := NewStreams(data)

		at := rapid.Int64Range(0, 10000).Draw(rt, "at")
		a := Derive(s, at)
		b := Derive(s, at)
		if !reflect.DeepEqual(a, b) {
			rt.Fatalf("Derive(%d) not idempotent:\n%+v\n%+v", at, a, b)
		}
	})
}
