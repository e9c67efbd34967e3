// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_session_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[1]},
			},
			{
				Name:    "chatmessage_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[1], ChatMessagesColumns[2]},
			},
		},
	}
	// CodeErrorEventsColumns holds the columns for the "code_error_events" table.
	CodeErrorEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "task_index", Type: field.TypeInt},
		{Name: "error_message", Type: field.TypeString, Size: 2147483647},
	}
	// CodeErrorEventsTable holds the schema information for the "code_error_events" table.
	CodeErrorEventsTable = &schema.Table{
		Name:       "code_error_events",
		Columns:    CodeErrorEventsColumns,
		PrimaryKey: []*schema.Column{CodeErrorEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "codeerrorevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{CodeErrorEventsColumns[1]},
			},
			{
				Name:    "codeerrorevent_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CodeErrorEventsColumns[1], CodeErrorEventsColumns[2]},
			},
		},
	}
	// CodeSnapshotsColumns holds the columns for the "code_snapshots" table.
	CodeSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "task_index", Type: field.TypeInt},
		{Name: "method_id", Type: field.TypeString, Nullable: true},
		{Name: "code_content", Type: field.TypeString, Size: 2147483647},
	}
	// CodeSnapshotsTable holds the schema information for the "code_snapshots" table.
	CodeSnapshotsTable = &schema.Table{
		Name:       "code_snapshots",
		Columns:    CodeSnapshotsColumns,
		PrimaryKey: []*schema.Column{CodeSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "codesnapshot_session_id",
				Unique:  false,
				Columns: []*schema.Column{CodeSnapshotsColumns[1]},
			},
			{
				Name:    "codesnapshot_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CodeSnapshotsColumns[1], CodeSnapshotsColumns[2]},
			},
		},
	}
	// CodingTasksColumns holds the columns for the "coding_tasks" table.
	CodingTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "task_order", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "method_name", Type: field.TypeString, Nullable: true},
		{Name: "starter_code", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "examples", Type: field.TypeJSON, Nullable: true},
	}
	// CodingTasksTable holds the schema information for the "coding_tasks" table.
	CodingTasksTable = &schema.Table{
		Name:       "coding_tasks",
		Columns:    CodingTasksColumns,
		PrimaryKey: []*schema.Column{CodingTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "codingtask_lesson_id_task_order",
				Unique:  false,
				Columns: []*schema.Column{CodingTasksColumns[1], CodingTasksColumns[2]},
			},
		},
	}
	// LearningSessionsColumns holds the columns for the "learning_sessions" table.
	LearningSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "completed"},
		{Name: "started_at", Type: field.TypeString},
		{Name: "completed_at", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// LearningSessionsTable holds the schema information for the "learning_sessions" table.
	LearningSessionsTable = &schema.Table{
		Name:       "learning_sessions",
		Columns:    LearningSessionsColumns,
		PrimaryKey: []*schema.Column{LearningSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningsession_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LearningSessionsColumns[2]},
			},
		},
	}
	// NavEventsColumns holds the columns for the "nav_events" table.
	NavEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "from_task_index", Type: field.TypeInt},
		{Name: "to_task_index", Type: field.TypeInt},
		{Name: "navigation_direction", Type: field.TypeString, Nullable: true},
	}
	// NavEventsTable holds the schema information for the "nav_events" table.
	NavEventsTable = &schema.Table{
		Name:       "nav_events",
		Columns:    NavEventsColumns,
		PrimaryKey: []*schema.Column{NavEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "navevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{NavEventsColumns[1]},
			},
			{
				Name:    "navevent_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{NavEventsColumns[1], NavEventsColumns[2]},
			},
		},
	}
	// PanelEventsColumns holds the columns for the "panel_events" table.
	PanelEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "current_task_index", Type: field.TypeInt, Default: 0},
		{Name: "interaction_type", Type: field.TypeString},
	}
	// PanelEventsTable holds the schema information for the "panel_events" table.
	PanelEventsTable = &schema.Table{
		Name:       "panel_events",
		Columns:    PanelEventsColumns,
		PrimaryKey: []*schema.Column{PanelEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "panelevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{PanelEventsColumns[1]},
			},
			{
				Name:    "panelevent_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PanelEventsColumns[1], PanelEventsColumns[2]},
			},
		},
	}
	// StrokeEventsColumns holds the columns for the "stroke_events" table.
	StrokeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "task", Type: field.TypeString, Nullable: true},
		{Name: "zone", Type: field.TypeString, Nullable: true},
		{Name: "stroke_number", Type: field.TypeInt, Default: 0},
		{Name: "points", Type: field.TypeJSON, Nullable: true},
	}
	// StrokeEventsTable holds the schema information for the "stroke_events" table.
	StrokeEventsTable = &schema.Table{
		Name:       "stroke_events",
		Columns:    StrokeEventsColumns,
		PrimaryKey: []*schema.Column{StrokeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "strokeevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{StrokeEventsColumns[1]},
			},
			{
				Name:    "strokeevent_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StrokeEventsColumns[1], StrokeEventsColumns[2]},
			},
		},
	}
	// TaskProgressEventsColumns holds the columns for the "task_progress_events" table.
	TaskProgressEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "task_index", Type: field.TypeInt},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "test_cases_passed", Type: field.TypeInt, Default: 0},
		{Name: "total_test_cases", Type: field.TypeInt, Default: 0},
	}
	// TaskProgressEventsTable holds the schema information for the "task_progress_events" table.
	TaskProgressEventsTable = &schema.Table{
		Name:       "task_progress_events",
		Columns:    TaskProgressEventsColumns,
		PrimaryKey: []*schema.Column{TaskProgressEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taskprogressevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TaskProgressEventsColumns[1]},
			},
			{
				Name:    "taskprogressevent_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TaskProgressEventsColumns[1], TaskProgressEventsColumns[2]},
			},
		},
	}
	// TestCaseResultsColumns holds the columns for the "test_case_results" table.
	TestCaseResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "task_index", Type: field.TypeInt},
		{Name: "method_id", Type: field.TypeString, Nullable: true},
		{Name: "test_case_index", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// TestCaseResultsTable holds the schema information for the "test_case_results" table.
	TestCaseResultsTable = &schema.Table{
		Name:       "test_case_results",
		Columns:    TestCaseResultsColumns,
		PrimaryKey: []*schema.Column{TestCaseResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testcaseresult_session_id",
				Unique:  false,
				Columns: []*schema.Column{TestCaseResultsColumns[1]},
			},
			{
				Name:    "testcaseresult_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TestCaseResultsColumns[1], TestCaseResultsColumns[2]},
			},
		},
	}
	// TutorConversationsColumns holds the columns for the "tutor_conversations" table.
	TutorConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "start_time", Type: field.TypeString},
		{Name: "end_time", Type: field.TypeString, Nullable: true},
	}
	// TutorConversationsTable holds the schema information for the "tutor_conversations" table.
	TutorConversationsTable = &schema.Table{
		Name:       "tutor_conversations",
		Columns:    TutorConversationsColumns,
		PrimaryKey: []*schema.Column{TutorConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutorconversation_session_id",
				Unique:  false,
				Columns: []*schema.Column{TutorConversationsColumns[1]},
			},
			{
				Name:    "tutorconversation_session_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{TutorConversationsColumns[1], TutorConversationsColumns[3]},
			},
		},
	}
	// TutorHighlightsColumns holds the columns for the "tutor_highlights" table.
	TutorHighlightsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "line_number", Type: field.TypeInt},
	}
	// TutorHighlightsTable holds the schema information for the "tutor_highlights" table.
	TutorHighlightsTable = &schema.Table{
		Name:       "tutor_highlights",
		Columns:    TutorHighlightsColumns,
		PrimaryKey: []*schema.Column{TutorHighlightsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutorhighlight_session_id",
				Unique:  false,
				Columns: []*schema.Column{TutorHighlightsColumns[1]},
			},
			{
				Name:    "tutorhighlight_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TutorHighlightsColumns[1], TutorHighlightsColumns[2]},
			},
		},
	}
	// UserHighlightsColumns holds the columns for the "user_highlights" table.
	UserHighlightsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeString},
		{Name: "highlighted_text", Type: field.TypeString, Size: 2147483647},
	}
	// UserHighlightsTable holds the schema information for the "user_highlights" table.
	UserHighlightsTable = &schema.Table{
		Name:       "user_highlights",
		Columns:    UserHighlightsColumns,
		PrimaryKey: []*schema.Column{UserHighlightsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userhighlight_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserHighlightsColumns[1]},
			},
			{
				Name:    "userhighlight_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{UserHighlightsColumns[1], UserHighlightsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		CodeErrorEventsTable,
		CodeSnapshotsTable,
		CodingTasksTable,
		LearningSessionsTable,
		NavEventsTable,
		PanelEventsTable,
		StrokeEventsTable,
		TaskProgressEventsTable,
		TestCaseResultsTable,
		TutorConversationsTable,
		TutorHighlightsTable,
		UserHighlightsTable,
	}
)

func init() {
}
