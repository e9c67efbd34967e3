package player

import (
	"time"

	"github.com/abhisek/replayz/internal/lessons"
	"github.com/abhisek/replayz/internal/replay"
)

// loadedMsg is sent when the session recording and lesson structure have
// been read from the store.
type loadedMsg struct {
	Data   *replay.SessionData
	Lesson *lessons.Structure
	Err    error
}

// playbackTickMsg drives the playback clock while playing.
type playbackTickMsg time.Time
