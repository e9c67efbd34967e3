package replay

// SpeakingState describes what the tutor voice is doing at a point in time.
type SpeakingState string

const (
	SpeakingInactive  SpeakingState = "inactive"
	SpeakingListening SpeakingState = "listening"
	SpeakingSpeaking  SpeakingState = "speaking"
)

// speakingWindowMs is how long the tutor is considered to be speaking after
// an assistant message appears.
const speakingWindowMs = 2000

// PanelState is the derived tutor panel state at a point in time.
type PanelState struct {
	Open         bool
	Conversation *ConversationSpan // nil when no conversation is active
	Speaking     SpeakingState
	Highlights   []Timed[TutorHighlight]
}

// Snapshot is the full observable session state at one cursor position.
// Every facet is derived independently from its stream; facets with no
// applicable events hold their documented defaults.
type Snapshot struct {
	TimeMs int64

	Code       string // latest editor contents; empty until the first snapshot
	HasCode    bool
	ActiveTask int // latest navigation target; 0 before any navigation

	Strokes        []Timed[Stroke]
	Messages       []Timed[Message]
	TutorPanel     PanelState
	TestResults    []Timed[TestResult]
	CodeErrors     []Timed[CodeError]
	TaskProgress   []Timed[TaskProgressEntry]
	UserHighlights []Timed[UserHighlight]
}

// Derive computes the snapshot at time t. It is a pure function of
// (streams, t): calling it twice with the same inputs yields identical
// results, and it never fails — facets degrade to defaults instead.
func Derive(s *Streams, t int64) Snapshot {
	snap := Snapshot{TimeMs: t}

	if c, ok := latest(s.code, t); ok {
		snap.Code = c.Value.Code
		snap.HasCode = true
	}

	// Navigation is the authoritative source for the active task. The
	// task_index fields carried by other streams are descriptive only.
	if nav, ok := latest(s.navigation, t); ok {
		snap.ActiveTask = nav.Value.ToTask
	}

	snap.Strokes = upTo(s.strokes, t)
	snap.Messages = upTo(s.messages, t)
	snap.TestResults = upTo(s.testResults, t)
	snap.CodeErrors = upTo(s.codeErrors, t)
	snap.TaskProgress = upTo(s.taskProgress, t)
	snap.UserHighlights = upTo(s.userHL, t)
	snap.TutorPanel = derivePanel(s, t, snap.Messages)

	return snap
}

// derivePanel computes the tutor panel facet: open flag from the latest
// panel interaction, the active conversation interval, the speaking state,
// and highlights shown so far.
func derivePanel(s *Streams, t int64, messages []Timed[Message]) PanelState {
	p := PanelState{
		Speaking:   SpeakingInactive,
		Highlights: upTo(s.tutorHL, t),
	}

	if ev, ok := latest(s.panelEvents, t); ok {
		p.Open = ev.Value.Action == PanelOpen
	}

	conv, active := s.ActiveConversation(t)
	if !active {
		return p
	}
	p.Conversation = &conv

	// Speaking while within the window after the latest assistant message,
	// listening otherwise.
	p.Speaking = SpeakingListening
	if len(messages) > 0 {
		last := messages[len(messages)-1]
		if last.Value.Role == RoleAssistant && t-last.OffsetMs <= speakingWindowMs {
			p.Speaking = SpeakingSpeaking
		}
	}
	return p
}
