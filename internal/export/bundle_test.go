package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/replayz/internal/replay"
)

const validBundle = `{
  "session": {
    "session_id": "sess-1",
    "lesson_id": "lesson-1",
    "status": "completed",
    "started_at": "2025-01-01 00:00:00",
    "completed_at": "2025-01-01 00:10:00"
  },
  "code_snapshots": [
    {"created_at": "2025-01-01 00:00:05", "task_index": 0, "code_content": "x = 1"}
  ],
  "navigation_events": [
    {"created_at": "2025-01-01 00:01:00", "from_task_index": 0, "to_task_index": 1, "navigation_direction": "forward"}
  ],
  "strokes": [
    {"created_at": "2025-01-01 00:02:00", "zone": "scratch", "stroke_number": 1,
     "points": [{"x": 1.5, "y": 2.5}]}
  ],
  "panel_events": [
    {"created_at": "2025-01-01 00:03:00", "current_task_index": 1, "interaction_type": "open"}
  ],
  "conversations": [
    {"conversation_id": "conv-1", "start_time": "2025-01-01 00:03:01"}
  ],
  "user_highlights": [
    {"highlighted_at": "2025-01-01 00:04:00", "highlighted_text": "target"}
  ],
  "messages": [
    {"created_at": "2025-01-01 00:03:05", "role": "assistant", "content": "Hi there."}
  ],
  "lesson": {
    "lesson_id": "lesson-1",
    "tasks": [
      {"title": "Two Sum", "method_name": "twoSum", "starter_code": "def two_sum():\n    pass\n",
       "examples": [{"input": "[2,7], 9", "output": "[0,1]"}]}
    ]
  }
}`

func TestParseBundle(t *testing.T) {
	data, lesson, err := ParseBundle([]byte(validBundle))
	require.NoError(t, err)

	assert.Equal(t, "sess-1", data.Session.ID)
	assert.Equal(t, "lesson-1", data.Session.LessonID)
	assert.Equal(t, "2025-01-01 00:00:00", data.Session.StartedAt)

	require.Len(t, data.CodeSnapshots, 1)
	assert.Equal(t, "x = 1", data.CodeSnapshots[0].Code)

	require.Len(t, data.NavigationEvents, 1)
	assert.Equal(t, 1, data.NavigationEvents[0].ToTask)

	require.Len(t, data.Strokes, 1)
	require.Len(t, data.Strokes[0].Points, 1)
	assert.Equal(t, 1.5, data.Strokes[0].Points[0].X)

	require.Len(t, data.PanelInteractions, 1)
	assert.Equal(t, replay.PanelOpen, data.PanelInteractions[0].Action)

	require.Len(t, data.Conversations, 1)
	assert.Empty(t, data.Conversations[0].EndTime)

	require.Len(t, data.Messages, 1)
	assert.Equal(t, replay.RoleAssistant, data.Messages[0].Role)

	require.NotNil(t, lesson)
	require.Len(t, lesson.Tasks, 1)
	assert.Equal(t, "Two Sum", lesson.Tasks[0].Title)
	assert.NotEmpty(t, lesson.TemplateFor(0))
}

func TestParseBundle_NoLesson(t *testing.T) {
	_, lesson, err := ParseBundle([]byte(`{
	  "session": {"session_id": "s", "lesson_id": "l", "started_at": "2025-01-01 00:00:00"}
	}`))
	require.NoError(t, err)
	assert.Nil(t, lesson)
}

func TestParseBundle_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing session", `{"messages": []}`},
		{"missing session id", `{"session": {"lesson_id": "l", "started_at": "t"}}`},
		{"bad role", `{
		  "session": {"session_id": "s", "lesson_id": "l", "started_at": "t"},
		  "messages": [{"created_at": "t", "role": "system", "content": "x"}]
		}`},
		{"bad interaction type", `{
		  "session": {"session_id": "s", "lesson_id": "l", "started_at": "t"},
		  "panel_events": [{"created_at": "t", "current_task_index": 0, "interaction_type": "toggle"}]
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseBundle([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}
