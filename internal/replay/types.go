package replay

// Session is the metadata of one replayable tutoring session.
//
// Timestamps are kept as the verbatim ISO-8601-like strings recorded by the
// platform. They may or may not carry a timezone suffix; OffsetMs handles
// both forms.
type Session struct {
	ID          string
	LessonID    string
	Status      string
	StartedAt   string
	CompletedAt string // empty for an ongoing session
	DurationMs  int64  // frozen at load time; stale for ongoing sessions
}

// CodeSnapshot is the full editor contents at one moment.
type CodeSnapshot struct {
	Timestamp string
	TaskIndex int
	MethodID  string
	Code      string
}

// NavigationEvent records the learner moving between tasks. The
// ToTask field of the latest applicable event is the authoritative
// source for the active task index.
type NavigationEvent struct {
	Timestamp string
	FromTask  int
	ToTask    int
	Direction string
}

// Point is one sample of a freehand stroke.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke is one completed freehand drawing stroke.
type Stroke struct {
	Timestamp    string
	Task         string
	Zone         string
	StrokeNumber int
	Points       []Point
}

// TestResult is the outcome of running one test case.
type TestResult struct {
	Timestamp    string
	TaskIndex    int
	MethodID     string
	TestCase     int
	Passed       bool
	ErrorMessage string
}

// CodeError is a compile or runtime error surfaced to the learner.
type CodeError struct {
	Timestamp string
	TaskIndex int
	Message   string
}

// PanelAction is the kind of a tutor panel interaction.
type PanelAction string

const (
	PanelOpen  PanelAction = "open"
	PanelClose PanelAction = "close"
)

// PanelInteraction records the tutor panel being opened or closed.
type PanelInteraction struct {
	Timestamp string
	TaskIndex int
	Action    PanelAction
}

// Conversation is an interval event: one voice conversation with the tutor.
// EndTime may be empty, meaning the conversation was still open when the
// session ended.
type Conversation struct {
	ConversationID string
	StartTime      string
	EndTime        string
}

// TutorHighlight is a code line highlighted by the tutor.
type TutorHighlight struct {
	Timestamp  string
	LineNumber int
}

// UserHighlight is text highlighted by the learner.
type UserHighlight struct {
	Timestamp string
	Text      string
}

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat message between learner and tutor.
type Message struct {
	Timestamp string
	Role      Role
	Content   string
}

// SessionData is everything loaded for one replay: session metadata plus all
// recorded event streams, each ordered ascending by timestamp. It is read
// once per replay view and never mutated afterwards.
type SessionData struct {
	Session           Session
	CodeSnapshots     []CodeSnapshot
	NavigationEvents  []NavigationEvent
	Strokes           []Stroke
	TestResults       []TestResult
	CodeErrors        []CodeError
	TaskProgress      []TaskProgressEntry
	PanelInteractions []PanelInteraction
	Conversations     []Conversation
	TutorHighlights   []TutorHighlight
	UserHighlights    []UserHighlight
	Messages          []Message
}

// TaskProgressEntry is a point-in-time progress report for one task.
type TaskProgressEntry struct {
	Timestamp       string
	TaskIndex       int
	Completed       bool
	Attempts        int
	TestCasesPassed int
	TotalTestCases  int
}
