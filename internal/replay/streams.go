package replay

import (
	"sort"
)

// Timed pairs a stream payload with its normalized offset from session start.
type Timed[T any] struct {
	OffsetMs int64
	Value    T
}

// ConversationSpan is a conversation interval in normalized offsets. An
// open-ended conversation (no recorded end time) spans to the session end.
type ConversationSpan struct {
	ConversationID string
	StartMs        int64
	EndMs          int64
}

// Streams is the in-memory event store for one session: every recorded stream
// with offsets precomputed, sorted ascending, and malformed entries dropped.
// It is immutable after construction, so derivation can read it from any
// point on the event loop without coordination.
type Streams struct {
	durationMs int64

	code          []Timed[CodeSnapshot]
	navigation    []Timed[NavigationEvent]
	strokes       []Timed[Stroke]
	testResults   []Timed[TestResult]
	codeErrors    []Timed[CodeError]
	taskProgress  []Timed[TaskProgressEntry]
	panelEvents   []Timed[PanelInteraction]
	conversations []ConversationSpan
	tutorHL       []Timed[TutorHighlight]
	userHL        []Timed[UserHighlight]
	messages      []Timed[Message]
}

// NewStreams normalizes all of a session's raw streams against the session
// start timestamp. Events whose timestamp cannot be parsed are excluded from
// their stream; they never fail the whole load.
func NewStreams(data *SessionData) *Streams {
	start := data.Session.StartedAt
	s := &Streams{durationMs: data.Session.DurationMs}

	s.code = normalize(data.CodeSnapshots, start, func(e CodeSnapshot) string { return e.Timestamp })
	s.navigation = normalize(data.NavigationEvents, start, func(e NavigationEvent) string { return e.Timestamp })
	s.strokes = normalize(data.Strokes, start, func(e Stroke) string { return e.Timestamp })
	s.testResults = normalize(data.TestResults, start, func(e TestResult) string { return e.Timestamp })
	s.codeErrors = normalize(data.CodeErrors, start, func(e CodeError) string { return e.Timestamp })
	s.taskProgress = normalize(data.TaskProgress, start, func(e TaskProgressEntry) string { return e.Timestamp })
	s.panelEvents = normalize(data.PanelInteractions, start, func(e PanelInteraction) string { return e.Timestamp })
	s.tutorHL = normalize(data.TutorHighlights, start, func(e TutorHighlight) string { return e.Timestamp })
	s.userHL = normalize(data.UserHighlights, start, func(e UserHighlight) string { return e.Timestamp })
	s.messages = normalize(data.Messages, start, func(e Message) string { return e.Timestamp })

	for _, c := range data.Conversations {
		startMs, err := OffsetMs(c.StartTime, start)
		if err != nil {
			continue
		}
		endMs := s.durationMs
		if c.EndTime != "" {
			if e, err := OffsetMs(c.EndTime, start); err == nil {
				endMs = e
			}
		}
		s.conversations = append(s.conversations, ConversationSpan{
			ConversationID: c.ConversationID,
			StartMs:        startMs,
			EndMs:          endMs,
		})
	}
	sort.SliceStable(s.conversations, func(i, j int) bool {
		return s.conversations[i].StartMs < s.conversations[j].StartMs
	})

	return s
}

// DurationMs returns the session duration the streams were normalized against.
func (s *Streams) DurationMs() int64 {
	return s.durationMs
}

// Conversations returns all conversation spans ordered by start. The returned
// slice shares backing memory with the stream and must not be mutated.
func (s *Streams) Conversations() []ConversationSpan {
	return s.conversations
}

// normalize computes offsets for one raw stream, drops events with
// unparseable timestamps, and sorts the rest ascending. The sort is stable so
// same-millisecond events keep their recorded order.
func normalize[T any](events []T, sessionStart string, ts func(T) string) []Timed[T] {
	out := make([]Timed[T], 0, len(events))
	for _, e := range events {
		off, err := OffsetMs(ts(e), sessionStart)
		if err != nil {
			continue
		}
		out = append(out, Timed[T]{OffsetMs: off, Value: e})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OffsetMs < out[j].OffsetMs })
	return out
}

// upTo returns the prefix of events with offset <= t. Because the slice is
// sorted ascending, the active set at T1 is always a prefix of the active set
// at T2 for T1 < T2. The returned slice shares backing memory with the
// stream and must not be mutated.
func upTo[T any](events []Timed[T], t int64) []Timed[T] {
	n := sort.Search(len(events), func(i int) bool { return events[i].OffsetMs > t })
	return events[:n]
}

// latest returns the last event at or before t, or false when none exists.
func latest[T any](events []Timed[T], t int64) (Timed[T], bool) {
	active := upTo(events, t)
	if len(active) == 0 {
		var zero Timed[T]
		return zero, false
	}
	return active[len(active)-1], true
}

// ActiveConversation returns the conversation whose interval contains t, or
// false when none does. When intervals overlap, the most recently started one
// wins; ties go to the latest in recorded order.
func (s *Streams) ActiveConversation(t int64) (ConversationSpan, bool) {
	for i := len(s.conversations) - 1; i >= 0; i-- {
		c := s.conversations[i]
		if c.StartMs <= t && t <= c.EndMs {
			return c, true
		}
	}
	return ConversationSpan{}, false
}
