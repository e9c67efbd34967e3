// Package export parses session bundles: the JSON files exported by the
// tutoring platform, one per recorded session. A bundle carries the session
// metadata, every event stream with the platform's original field names, and
// optionally the static lesson structure.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/replayz/internal/lessons"
	"github.com/abhisek/replayz/internal/replay"
)

// Bundle is the wire form of one exported session. Field names follow the
// platform's export format; timestamps are verbatim strings.
type Bundle struct {
	Session          bundleSession        `json:"session"`
	CodeSnapshots    []bundleSnapshot     `json:"code_snapshots,omitempty"`
	NavigationEvents []bundleNav          `json:"navigation_events,omitempty"`
	Strokes          []bundleStroke       `json:"strokes,omitempty"`
	TestResults      []bundleTestResult   `json:"test_results,omitempty"`
	CodeErrors       []bundleCodeError    `json:"code_errors,omitempty"`
	TaskProgress     []bundleTaskProgress `json:"task_progress,omitempty"`
	PanelEvents      []bundlePanelEvent   `json:"panel_events,omitempty"`
	Conversations    []bundleConversation `json:"conversations,omitempty"`
	TutorHighlights  []bundleTutorHL      `json:"tutor_highlights,omitempty"`
	UserHighlights   []bundleUserHL       `json:"user_highlights,omitempty"`
	Messages         []bundleMessage      `json:"messages,omitempty"`
	Lesson           *bundleLesson        `json:"lesson,omitempty"`
}

type bundleSession struct {
	SessionID   string `json:"session_id"`
	LessonID    string `json:"lesson_id"`
	Status      string `json:"status,omitempty"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at,omitempty"`
	DurationMs  int64  `json:"duration_ms,omitempty"`
}

type bundleSnapshot struct {
	CreatedAt   string `json:"created_at"`
	TaskIndex   int    `json:"task_index"`
	MethodID    string `json:"method_id,omitempty"`
	CodeContent string `json:"code_content"`
}

type bundleNav struct {
	CreatedAt           string `json:"created_at"`
	FromTaskIndex       int    `json:"from_task_index"`
	ToTaskIndex         int    `json:"to_task_index"`
	NavigationDirection string `json:"navigation_direction,omitempty"`
}

type bundlePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type bundleStroke struct {
	CreatedAt    string        `json:"created_at"`
	Task         string        `json:"task,omitempty"`
	Zone         string        `json:"zone,omitempty"`
	StrokeNumber int           `json:"stroke_number,omitempty"`
	Points       []bundlePoint `json:"points,omitempty"`
}

type bundleTestResult struct {
	CreatedAt     string `json:"created_at"`
	TaskIndex     int    `json:"task_index"`
	MethodID      string `json:"method_id,omitempty"`
	TestCaseIndex int    `json:"test_case_index"`
	Passed        bool   `json:"passed"`
	ErrorMessage  string `json:"error_message,omitempty"`
}

type bundleCodeError struct {
	CreatedAt    string `json:"created_at"`
	TaskIndex    int    `json:"task_index"`
	ErrorMessage string `json:"error_message"`
}

type bundleTaskProgress struct {
	CreatedAt       string `json:"created_at"`
	TaskIndex       int    `json:"task_index"`
	Completed       bool   `json:"completed"`
	Attempts        int    `json:"attempts,omitempty"`
	TestCasesPassed int    `json:"test_cases_passed,omitempty"`
	TotalTestCases  int    `json:"total_test_cases,omitempty"`
}

type bundlePanelEvent struct {
	CreatedAt        string `json:"created_at"`
	CurrentTaskIndex int    `json:"current_task_index"`
	InteractionType  string `json:"interaction_type"`
}

type bundleConversation struct {
	ConversationID string `json:"conversation_id"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time,omitempty"`
}

type bundleTutorHL struct {
	HighlightedAt string `json:"highlighted_at"`
	LineNumber    int    `json:"line_number"`
}

type bundleUserHL struct {
	HighlightedAt   string `json:"highlighted_at"`
	HighlightedText string `json:"highlighted_text"`
}

type bundleMessage struct {
	CreatedAt string `json:"created_at"`
	Role      string `json:"role"`
	Content   string `json:"content"`
}

type bundleLesson struct {
	LessonID string       `json:"lesson_id"`
	Tasks    []bundleTask `json:"tasks"`
}

type bundleTask struct {
	Title       string          `json:"title"`
	Difficulty  string          `json:"difficulty,omitempty"`
	Description string          `json:"description,omitempty"`
	MethodName  string          `json:"method_name,omitempty"`
	StarterCode string          `json:"starter_code,omitempty"`
	Examples    []bundleExample `json:"examples,omitempty"`
}

type bundleExample struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func bundleSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("parse bundle schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://session-bundle.json", parsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://session-bundle.json")
	})
	return compiledSchema, compileErr
}

// ParseBundle validates and decodes one exported session. The returned
// lesson structure is nil when the bundle does not carry one.
func ParseBundle(raw []byte) (*replay.SessionData, *lessons.Structure, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, nil, fmt.Errorf("invalid bundle JSON: %w", err)
	}

	schema, err := bundleSchema()
	if err != nil {
		return nil, nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, nil, fmt.Errorf("bundle validation failed: %w", err)
	}

	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, nil, fmt.Errorf("decode bundle: %w", err)
	}

	return b.sessionData(), b.lessonStructure(), nil
}

func (b *Bundle) sessionData() *replay.SessionData {
	data := &replay.SessionData{
		Session: replay.Session{
			ID:          b.Session.SessionID,
			LessonID:    b.Session.LessonID,
			Status:      b.Session.Status,
			StartedAt:   b.Session.StartedAt,
			CompletedAt: b.Session.CompletedAt,
			DurationMs:  b.Session.DurationMs,
		},
	}

	for _, e := range b.CodeSnapshots {
		data.CodeSnapshots = append(data.CodeSnapshots, replay.CodeSnapshot{
			Timestamp: e.CreatedAt,
			TaskIndex: e.TaskIndex,
			MethodID:  e.MethodID,
			Code:      e.CodeContent,
		})
	}
	for _, e := range b.NavigationEvents {
		data.NavigationEvents = append(data.NavigationEvents, replay.NavigationEvent{
			Timestamp: e.CreatedAt,
			FromTask:  e.FromTaskIndex,
			ToTask:    e.ToTaskIndex,
			Direction: e.NavigationDirection,
		})
	}
	for _, e := range b.Strokes {
		points := make([]replay.Point, 0, len(e.Points))
		for _, p := range e.Points {
			points = append(points, replay.Point{X: p.X, Y: p.Y})
		}
		data.Strokes = append(data.Strokes, replay.Stroke{
			Timestamp:    e.CreatedAt,
			Task:         e.Task,
			Zone:         e.Zone,
			StrokeNumber: e.StrokeNumber,
			Points:       points,
		})
	}
	for _, e := range b.TestResults {
		data.TestResults = append(data.TestResults, replay.TestResult{
			Timestamp:    e.CreatedAt,
			TaskIndex:    e.TaskIndex,
			MethodID:     e.MethodID,
			TestCase:     e.TestCaseIndex,
			Passed:       e.Passed,
			ErrorMessage: e.ErrorMessage,
		})
	}
	for _, e := range b.CodeErrors {
		data.CodeErrors = append(data.CodeErrors, replay.CodeError{
			Timestamp: e.CreatedAt,
			TaskIndex: e.TaskIndex,
			Message:   e.ErrorMessage,
		})
	}
	for _, e := range b.TaskProgress {
		data.TaskProgress = append(data.TaskProgress, replay.TaskProgressEntry{
			Timestamp:       e.CreatedAt,
			TaskIndex:       e.TaskIndex,
			Completed:       e.Completed,
			Attempts:        e.Attempts,
			TestCasesPassed: e.TestCasesPassed,
			TotalTestCases:  e.TotalTestCases,
		})
	}
	for _, e := range b.PanelEvents {
		data.PanelInteractions = append(data.PanelInteractions, replay.PanelInteraction{
			Timestamp: e.CreatedAt,
			TaskIndex: e.CurrentTaskIndex,
			Action:    replay.PanelAction(e.InteractionType),
		})
	}
	for _, e := range b.Conversations {
		data.Conversations = append(data.Conversations, replay.Conversation{
			ConversationID: e.ConversationID,
			StartTime:      e.StartTime,
			EndTime:        e.EndTime,
		})
	}
	for _, e := range b.TutorHighlights {
		data.TutorHighlights = append(data.TutorHighlights, replay.TutorHighlight{
			Timestamp:  e.HighlightedAt,
			LineNumber: e.LineNumber,
		})
	}
	for _, e := range b.UserHighlights {
		data.UserHighlights = append(data.UserHighlights, replay.UserHighlight{
			Timestamp: e.HighlightedAt,
			Text:      e.HighlightedText,
		})
	}
	for _, e := range b.Messages {
		data.Messages = append(data.Messages, replay.Message{
			Timestamp: e.CreatedAt,
			Role:      replay.Role(e.Role),
			Content:   e.Content,
		})
	}
	return data
}

func (b *Bundle) lessonStructure() *lessons.Structure {
	if b.Lesson == nil {
		return nil
	}
	st := &lessons.Structure{
		LessonID:        b.Lesson.LessonID,
		MethodTemplates: make(map[string]string),
	}
	for _, t := range b.Lesson.Tasks {
		examples := make([]lessons.Example, 0, len(t.Examples))
		for _, ex := range t.Examples {
			examples = append(examples, lessons.Example{Input: ex.Input, Output: ex.Output})
		}
		st.Tasks = append(st.Tasks, lessons.Task{
			Title:       t.Title,
			Difficulty:  t.Difficulty,
			Description: t.Description,
			MethodName:  t.MethodName,
			Examples:    examples,
		})
		if t.MethodName != "" && t.StarterCode != "" {
			st.MethodTemplates[t.MethodName] = t.StarterCode
		}
	}
	return st
}
