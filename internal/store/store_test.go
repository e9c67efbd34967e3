package store

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/replayz/internal/lessons"
	"github.com/abhisek/replayz/internal/replay"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testSessionData() *replay.SessionData {
	return &replay.SessionData{
		Session: replay.Session{
			ID:          "sess-1",
			LessonID:    "lesson-1",
			Status:      "completed",
			StartedAt:   "2025-01-01T00:00:00+00:00",
			CompletedAt: "2025-01-01T00:00:10+00:00",
		},
		CodeSnapshots: []replay.CodeSnapshot{
			{Timestamp: "2025-01-01T00:00:01+00:00", TaskIndex: 0, Code: "x = 1"},
			{Timestamp: "2025-01-01T00:00:05+00:00", TaskIndex: 0, Code: "x = 2"},
		},
		NavigationEvents: []replay.NavigationEvent{
			{Timestamp: "2025-01-01T00:00:03+00:00", FromTask: 0, ToTask: 1, Direction: "forward"},
		},
		Strokes: []replay.Stroke{
			{
				Timestamp:    "2025-01-01T00:00:04+00:00",
				Zone:         "scratch",
				StrokeNumber: 1,
				Points:       []replay.Point{{X: 1, Y: 2}, {X: 3, Y: 4}},
			},
		},
		TestResults: []replay.TestResult{
			{Timestamp: "2025-01-01T00:00:06+00:00", TaskIndex: 0, TestCase: 0, Passed: true},
		},
		CodeErrors: []replay.CodeError{
			{Timestamp: "2025-01-01T00:00:02+00:00", TaskIndex: 0, Message: "SyntaxError"},
		},
		TaskProgress: []replay.TaskProgressEntry{
			{Timestamp: "2025-01-01T00:00:07+00:00", TaskIndex: 0, Completed: true, TestCasesPassed: 3, TotalTestCases: 3},
		},
		PanelInteractions: []replay.PanelInteraction{
			{Timestamp: "2025-01-01T00:00:02+00:00", TaskIndex: 0, Action: replay.PanelOpen},
		},
		Conversations: []replay.Conversation{
			{ConversationID: "conv-1", StartTime: "2025-01-01T00:00:02+00:00", EndTime: "2025-01-01T00:00:08+00:00"},
			{ConversationID: "conv-2", StartTime: "2025-01-01T00:00:09+00:00"},
		},
		TutorHighlights: []replay.TutorHighlight{
			{Timestamp: "2025-01-01T00:00:03+00:00", LineNumber: 2},
		},
		UserHighlights: []replay.UserHighlight{
			{Timestamp: "2025-01-01T00:00:04+00:00", Text: "target"},
		},
		Messages: []replay.Message{
			{Timestamp: "2025-01-01T00:00:02.500+00:00", Role: replay.RoleAssistant, Content: "Look at line 2."},
			{Timestamp: "2025-01-01T00:00:06+00:00", Role: replay.RoleUser, Content: "Got it."},
		},
	}
}

func TestImportAndLoadSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	id, err := repo.ImportSession(ctx, testSessionData())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if id != "sess-1" {
		t.Errorf("imported id = %q, want sess-1", id)
	}

	data, err := repo.Load(ctx, "sess-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if data.Session.LessonID != "lesson-1" {
		t.Errorf("lesson id = %q", data.Session.LessonID)
	}
	if data.Session.DurationMs != 10000 {
		t.Errorf("duration = %d, want 10000", data.Session.DurationMs)
	}
	if len(data.CodeSnapshots) != 2 {
		t.Fatalf("code snapshots = %d, want 2", len(data.CodeSnapshots))
	}
	if data.CodeSnapshots[1].Code != "x = 2" {
		t.Errorf("second snapshot code = %q", data.CodeSnapshots[1].Code)
	}
	if len(data.Strokes) != 1 || len(data.Strokes[0].Points) != 2 {
		t.Errorf("strokes round-trip lost points: %+v", data.Strokes)
	}
	if len(data.Conversations) != 2 {
		t.Fatalf("conversations = %d, want 2", len(data.Conversations))
	}
	if data.Conversations[1].EndTime != "" {
		t.Errorf("open conversation end time = %q, want empty", data.Conversations[1].EndTime)
	}
	if len(data.Messages) != 2 || data.Messages[0].Role != replay.RoleAssistant {
		t.Errorf("messages round-trip: %+v", data.Messages)
	}

	// Timestamps come back verbatim.
	if got := data.PanelInteractions[0].Timestamp; got != "2025-01-01T00:00:02+00:00" {
		t.Errorf("panel timestamp = %q, not preserved verbatim", got)
	}
}

func TestImportDuplicateSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if _, err := repo.ImportSession(ctx, testSessionData()); err != nil {
		t.Fatalf("first import: %v", err)
	}
	if _, err := repo.ImportSession(ctx, testSessionData()); err == nil {
		t.Fatal("expected duplicate import to fail")
	}
}

func TestImportAssignsID(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	data := testSessionData()
	data.Session.ID = ""
	id, err := repo.ImportSession(ctx, data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated session id")
	}
	if _, err := repo.Load(ctx, id); err != nil {
		t.Fatalf("load generated id: %v", err)
	}
}

func TestLoadMissingSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	_, err := repo.Load(context.Background(), "nope")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestListSessions(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	first := testSessionData()
	second := testSessionData()
	second.Session.ID = "sess-2"
	second.Session.StartedAt = "2025-01-02T00:00:00+00:00"
	second.Session.CompletedAt = "2025-01-02T00:00:05+00:00"

	if _, err := repo.ImportSession(ctx, first); err != nil {
		t.Fatalf("import first: %v", err)
	}
	if _, err := repo.ImportSession(ctx, second); err != nil {
		t.Fatalf("import second: %v", err)
	}

	summaries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summaries = %d, want 2", len(summaries))
	}
	// Most recent first.
	if summaries[0].SessionID != "sess-2" {
		t.Errorf("first summary = %q, want sess-2", summaries[0].SessionID)
	}
	if summaries[1].EventCount == 0 {
		t.Error("expected a non-zero event count")
	}
}

func TestLessonRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	st := &lessons.Structure{
		LessonID: "lesson-1",
		Tasks: []lessons.Task{
			{
				Title:       "Two Sum",
				Difficulty:  "easy",
				Description: "Find two numbers that add to target.",
				MethodName:  "twoSum",
				Examples:    []lessons.Example{{Input: "[2,7], 9", Output: "[0,1]"}},
			},
			{Title: "Reverse List", MethodName: "reverseList"},
		},
		MethodTemplates: map[string]string{
			"twoSum": "def two_sum(nums, target):\n    pass\n",
		},
	}

	if err := repo.ImportLesson(ctx, st); err != nil {
		t.Fatalf("import lesson: %v", err)
	}

	got, err := repo.LoadLessonStructure(ctx, "lesson-1")
	if err != nil {
		t.Fatalf("load lesson: %v", err)
	}
	if len(got.Tasks) != 2 {
		t.Fatalf("tasks = %d, want 2", len(got.Tasks))
	}
	if got.Tasks[0].Title != "Two Sum" || len(got.Tasks[0].Examples) != 1 {
		t.Errorf("first task round-trip: %+v", got.Tasks[0])
	}
	if got.TemplateFor(0) == "" {
		t.Error("expected starter template for task 0")
	}

	// Re-import replaces the previous definition.
	st.Tasks = st.Tasks[:1]
	if err := repo.ImportLesson(ctx, st); err != nil {
		t.Fatalf("re-import lesson: %v", err)
	}
	got, err = repo.LoadLessonStructure(ctx, "lesson-1")
	if err != nil {
		t.Fatalf("reload lesson: %v", err)
	}
	if len(got.Tasks) != 1 {
		t.Errorf("tasks after re-import = %d, want 1", len(got.Tasks))
	}
}
