package store

import (
	"context"
	"errors"

	"github.com/abhisek/replayz/internal/lessons"
	"github.com/abhisek/replayz/internal/replay"
)

// ErrSessionNotFound is returned when a session id has no recording.
var ErrSessionNotFound = errors.New("session not found")

// SessionSummary is the listing view of a recorded session: enough to pick
// one to replay without loading its event streams.
type SessionSummary struct {
	SessionID  string
	LessonID   string
	Status     string
	StartedAt  string
	DurationMs int64
	EventCount int
}

// SessionRepo provides read access to recorded sessions and their event
// streams, plus import of new recordings.
type SessionRepo interface {
	// List returns summaries of all recorded sessions, most recent first.
	List(ctx context.Context) ([]SessionSummary, error)

	// Load reads the full recording of one session: metadata plus every
	// event stream, each ordered ascending by timestamp. Returns
	// ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*replay.SessionData, error)

	// ImportSession stores a complete recording. The session id is taken
	// from the data; if empty a fresh UUID is assigned. Importing an id
	// that already exists is an error.
	ImportSession(ctx context.Context, data *replay.SessionData) (string, error)
}

// LessonRepo provides access to static lesson structure.
type LessonRepo interface {
	lessons.Loader

	// ImportLesson stores the task definitions for one lesson, replacing
	// any previous definition of the same lesson.
	ImportLesson(ctx context.Context, st *lessons.Structure) error
}
