package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/replayz/ent"
	"github.com/abhisek/replayz/ent/chatmessage"
	"github.com/abhisek/replayz/ent/codeerrorevent"
	"github.com/abhisek/replayz/ent/codesnapshot"
	"github.com/abhisek/replayz/ent/learningsession"
	"github.com/abhisek/replayz/ent/navevent"
	"github.com/abhisek/replayz/ent/panelevent"
	entschema "github.com/abhisek/replayz/ent/schema"
	"github.com/abhisek/replayz/ent/strokeevent"
	"github.com/abhisek/replayz/ent/taskprogressevent"
	"github.com/abhisek/replayz/ent/testcaseresult"
	"github.com/abhisek/replayz/ent/tutorconversation"
	"github.com/abhisek/replayz/ent/tutorhighlight"
	"github.com/abhisek/replayz/ent/userhighlight"
	"github.com/abhisek/replayz/internal/replay"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) List(ctx context.Context) ([]SessionSummary, error) {
	sessions, err := r.client.LearningSession.Query().
		Order(ent.Desc(learningsession.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	summaries := make([]SessionSummary, 0, len(sessions))
	for _, ls := range sessions {
		count, err := r.eventCount(ctx, ls.SessionID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, SessionSummary{
			SessionID:  ls.SessionID,
			LessonID:   ls.LessonID,
			Status:     ls.Status,
			StartedAt:  ls.StartedAt,
			DurationMs: sessionDuration(ls),
			EventCount: count,
		})
	}
	return summaries, nil
}

// eventCount totals the point events of one session across all streams.
// Conversations are intervals, not points, and are not counted.
func (r *sessionRepo) eventCount(ctx context.Context, sessionID string) (int, error) {
	total := 0
	counts := []func(context.Context) (int, error){
		r.client.CodeSnapshot.Query().Where(codesnapshot.SessionID(sessionID)).Count,
		r.client.NavEvent.Query().Where(navevent.SessionID(sessionID)).Count,
		r.client.StrokeEvent.Query().Where(strokeevent.SessionID(sessionID)).Count,
		r.client.TestCaseResult.Query().Where(testcaseresult.SessionID(sessionID)).Count,
		r.client.CodeErrorEvent.Query().Where(codeerrorevent.SessionID(sessionID)).Count,
		r.client.TaskProgressEvent.Query().Where(taskprogressevent.SessionID(sessionID)).Count,
		r.client.PanelEvent.Query().Where(panelevent.SessionID(sessionID)).Count,
		r.client.TutorHighlight.Query().Where(tutorhighlight.SessionID(sessionID)).Count,
		r.client.UserHighlight.Query().Where(userhighlight.SessionID(sessionID)).Count,
		r.client.ChatMessage.Query().Where(chatmessage.SessionID(sessionID)).Count,
	}
	for _, count := range counts {
		n, err := count(ctx)
		if err != nil {
			return 0, fmt.Errorf("count events: %w", err)
		}
		total += n
	}
	return total, nil
}

func (r *sessionRepo) Load(ctx context.Context, sessionID string) (*replay.SessionData, error) {
	ls, err := r.client.LearningSession.Query().
		Where(learningsession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("query session %s: %w", sessionID, err)
	}

	data := &replay.SessionData{
		Session: replay.Session{
			ID:          ls.SessionID,
			LessonID:    ls.LessonID,
			Status:      ls.Status,
			StartedAt:   ls.StartedAt,
			CompletedAt: ls.CompletedAt,
			DurationMs:  sessionDuration(ls),
		},
	}

	if err := r.loadStreams(ctx, sessionID, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (r *sessionRepo) loadStreams(ctx context.Context, sessionID string, data *replay.SessionData) error {
	snaps, err := r.client.CodeSnapshot.Query().
		Where(codesnapshot.SessionID(sessionID)).
		Order(ent.Asc(codesnapshot.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query code snapshots: %w", err)
	}
	for _, e := range snaps {
		data.CodeSnapshots = append(data.CodeSnapshots, replay.CodeSnapshot{
			Timestamp: e.Timestamp,
			TaskIndex: e.TaskIndex,
			MethodID:  e.MethodID,
			Code:      e.CodeContent,
		})
	}

	navs, err := r.client.NavEvent.Query().
		Where(navevent.SessionID(sessionID)).
		Order(ent.Asc(navevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query navigation events: %w", err)
	}
	for _, e := range navs {
		data.NavigationEvents = append(data.NavigationEvents, replay.NavigationEvent{
			Timestamp: e.Timestamp,
			FromTask:  e.FromTaskIndex,
			ToTask:    e.ToTaskIndex,
			Direction: e.NavigationDirection,
		})
	}

	strokes, err := r.client.StrokeEvent.Query().
		Where(strokeevent.SessionID(sessionID)).
		Order(ent.Asc(strokeevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query strokes: %w", err)
	}
	for _, e := range strokes {
		points := make([]replay.Point, 0, len(e.Points))
		for _, p := range e.Points {
			points = append(points, replay.Point{X: p.X, Y: p.Y})
		}
		data.Strokes = append(data.Strokes, replay.Stroke{
			Timestamp:    e.Timestamp,
			Task:         e.Task,
			Zone:         e.Zone,
			StrokeNumber: e.StrokeNumber,
			Points:       points,
		})
	}

	results, err := r.client.TestCaseResult.Query().
		Where(testcaseresult.SessionID(sessionID)).
		Order(ent.Asc(testcaseresult.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query test results: %w", err)
	}
	for _, e := range results {
		data.TestResults = append(data.TestResults, replay.TestResult{
			Timestamp:    e.Timestamp,
			TaskIndex:    e.TaskIndex,
			MethodID:     e.MethodID,
			TestCase:     e.TestCaseIndex,
			Passed:       e.Passed,
			ErrorMessage: e.ErrorMessage,
		})
	}

	cerrs, err := r.client.CodeErrorEvent.Query().
		Where(codeerrorevent.SessionID(sessionID)).
		Order(ent.Asc(codeerrorevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query code errors: %w", err)
	}
	for _, e := range cerrs {
		data.CodeErrors = append(data.CodeErrors, replay.CodeError{
			Timestamp: e.Timestamp,
			TaskIndex: e.TaskIndex,
			Message:   e.ErrorMessage,
		})
	}

	progress, err := r.client.TaskProgressEvent.Query().
		Where(taskprogressevent.SessionID(sessionID)).
		Order(ent.Asc(taskprogressevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query task progress: %w", err)
	}
	for _, e := range progress {
		data.TaskProgress = append(data.TaskProgress, replay.TaskProgressEntry{
			Timestamp:       e.Timestamp,
			TaskIndex:       e.TaskIndex,
			Completed:       e.Completed,
			Attempts:        e.Attempts,
			TestCasesPassed: e.TestCasesPassed,
			TotalTestCases:  e.TotalTestCases,
		})
	}

	panels, err := r.client.PanelEvent.Query().
		Where(panelevent.SessionID(sessionID)).
		Order(ent.Asc(panelevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query panel events: %w", err)
	}
	for _, e := range panels {
		data.PanelInteractions = append(data.PanelInteractions, replay.PanelInteraction{
			Timestamp: e.Timestamp,
			TaskIndex: e.CurrentTaskIndex,
			Action:    replay.PanelAction(e.InteractionType),
		})
	}

	convs, err := r.client.TutorConversation.Query().
		Where(tutorconversation.SessionID(sessionID)).
		Order(ent.Asc(tutorconversation.FieldStartTime)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query conversations: %w", err)
	}
	for _, e := range convs {
		data.Conversations = append(data.Conversations, replay.Conversation{
			ConversationID: e.ConversationID,
			StartTime:      e.StartTime,
			EndTime:        e.EndTime,
		})
	}

	thls, err := r.client.TutorHighlight.Query().
		Where(tutorhighlight.SessionID(sessionID)).
		Order(ent.Asc(tutorhighlight.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query tutor highlights: %w", err)
	}
	for _, e := range thls {
		data.TutorHighlights = append(data.TutorHighlights, replay.TutorHighlight{
			Timestamp:  e.Timestamp,
			LineNumber: e.LineNumber,
		})
	}

	uhls, err := r.client.UserHighlight.Query().
		Where(userhighlight.SessionID(sessionID)).
		Order(ent.Asc(userhighlight.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query user highlights: %w", err)
	}
	for _, e := range uhls {
		data.UserHighlights = append(data.UserHighlights, replay.UserHighlight{
			Timestamp: e.Timestamp,
			Text:      e.HighlightedText,
		})
	}

	msgs, err := r.client.ChatMessage.Query().
		Where(chatmessage.SessionID(sessionID)).
		Order(ent.Asc(chatmessage.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query chat messages: %w", err)
	}
	for _, e := range msgs {
		data.Messages = append(data.Messages, replay.Message{
			Timestamp: e.Timestamp,
			Role:      replay.Role(e.Role),
			Content:   e.Content,
		})
	}

	return nil
}

func (r *sessionRepo) ImportSession(ctx context.Context, data *replay.SessionData) (string, error) {
	sessionID := data.Session.ID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	exists, err := r.client.LearningSession.Query().
		Where(learningsession.SessionID(sessionID)).
		Exist(ctx)
	if err != nil {
		return "", fmt.Errorf("check session %s: %w", sessionID, err)
	}
	if exists {
		return "", fmt.Errorf("session %s already imported", sessionID)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("begin import: %w", err)
	}

	if err := importSessionTx(ctx, tx, sessionID, data); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return "", fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit import: %w", err)
	}
	return sessionID, nil
}

func importSessionTx(ctx context.Context, tx *ent.Tx, sessionID string, data *replay.SessionData) error {
	builder := tx.LearningSession.Create().
		SetSessionID(sessionID).
		SetLessonID(data.Session.LessonID).
		SetStartedAt(data.Session.StartedAt).
		SetDurationMs(data.Session.DurationMs)
	if data.Session.Status != "" {
		builder = builder.SetStatus(data.Session.Status)
	}
	if data.Session.CompletedAt != "" {
		builder = builder.SetCompletedAt(data.Session.CompletedAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	for _, e := range data.CodeSnapshots {
		_, err := tx.CodeSnapshot.Create().
			SetSessionID(sessionID).
			SetTimestamp(e.Timestamp).
			SetTaskIndex(e.TaskIndex).
			SetMethodID(e.MethodID).
			SetCodeContent(e.Code).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save code snapshot: %w", err)
		}
	}

	for _, e := range data.NavigationEvents {
		_, err := tx.NavEvent.Create().
			SetSessionID(sessionID).
			SetTimestamp(e.Timestamp).
			SetFromTaskIndex(e.FromTask).
			SetToTaskIndex(e.ToTask).
			SetNavigationDirection(e.Direction).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save navigation event: %w", err)
		}
	}

	for _, e := range data.Strokes {
		points := make([]entschema.StrokePoint, 0, len(e.Points))
		for _, p := range e.Points {
			points = append(points, entschema.StrokePoint{X: p.X, Y: p.Y})
		}
		_, err := tx.StrokeEvent.Create().
			SetSessionID(sessionID).
			SetTimestamp(e.Timestamp).
			SetTask(e.Task).
			SetZone(e.Zone).
			SetStrokeNumber(e.StrokeNumber).
			SetPoints(points).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save stroke: %w", err)
		}
	}

	for _, e := range data.TestResults {
		_, err := tx.TestCaseResult.Create().
			SetSessionID(sessionID).
			SetTimestamp(e.Timestamp).
			SetTaskIndex(e.TaskIndex).
			SetMethodID(e.MethodID).
			SetTestCaseIndex(e.TestCase).
			SetPassed(e.Passed).
			SetErrorMessage(e.ErrorMessage).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save test result: %w", err)
		}
	}

	for _, e := range data.CodeErrors {
		_, err := tx.CodeErrorEvent.Create().
			SetSessionID(sessionID).
			SetTimestamp(e.Timestamp).
			SetTaskIndex(e.TaskIndex).
			SetErrorMessage(e.Message).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save code error: %w", err)
		}
	}

	for _, e := range data.TaskProgress {
		_, err := tx.TaskProgressEvent.Create().
			SetSessionID(sessionID).
			SetTimestamp(e.Timestamp).
			SetTaskIndex(e.TaskIndex).
			SetCompleted(e.Completed).
			SetAttempts(e.Attempts).
			SetTestCasesPassed(e.TestCasesPassed).
			SetTotalTestCases(e.TotalTestCases).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save task progress: %w", err)
		}
	}

	for _, e := range data.PanelInteractions {
		_, err := tx.PanelEvent.Create().
			SetSessionID(sessionID).
			SetTimestamp(e.Timestamp).
			SetCurrentTaskIndex(e.TaskIndex).
			SetInteractionType(string(e.Action)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save panel event: %w", err)
		}
	}

	for _, e := range data.Conversations {
		builder := tx.TutorConversation.Create().
			SetSessionID(sessionID).
			SetConversationID(e.ConversationID).
			SetStartTime(e.StartTime)
		if e.EndTime != "" {
			builder = builder.SetEndTime(e.EndTime)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("save conversation: %w", err)
		}
	}

	for _, e := range data.TutorHighlights {
		_, err := tx.TutorHighlight.Create().
			SetSessionID(sessionID).
			SetTimestamp(e.Timestamp).
			SetLineNumber(e.LineNumber).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save tutor highlight: %w", err)
		}
	}

	for _, e := range data.UserHighlights {
		_, err := tx.UserHighlight.Create().
			SetSessionID(sessionID).
			SetTimestamp(e.Timestamp).
			SetHighlightedText(e.Text).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save user highlight: %w", err)
		}
	}

	for _, e := range data.Messages {
		_, err := tx.ChatMessage.Create().
			SetSessionID(sessionID).
			SetTimestamp(e.Timestamp).
			SetRole(string(e.Role)).
			SetContent(e.Content).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save chat message: %w", err)
		}
	}

	return nil
}

// sessionDuration freezes the session duration at read time. Completed
// sessions use the recorded end timestamp; ongoing ones measure against the
// wall clock, so a later load yields a longer replay window.
func sessionDuration(ls *ent.LearningSession) int64 {
	if ls.CompletedAt != "" {
		d, err := replay.OffsetMs(ls.CompletedAt, ls.StartedAt)
		if err == nil && d >= 0 {
			return d
		}
		return ls.DurationMs
	}

	start, err := replay.ParseTimestamp(ls.StartedAt)
	if err != nil {
		return ls.DurationMs
	}
	d := time.Since(start).Milliseconds()
	if d < 0 {
		return 0
	}
	return d
}
