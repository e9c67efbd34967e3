// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/abhisek/replayz/ent/chatmessage"
	"github.com/abhisek/replayz/ent/codeerrorevent"
	"github.com/abhisek/replayz/ent/codesnapshot"
	"github.com/abhisek/replayz/ent/codingtask"
	"github.com/abhisek/replayz/ent/learningsession"
	"github.com/abhisek/replayz/ent/navevent"
	"github.com/abhisek/replayz/ent/panelevent"
	"github.com/abhisek/replayz/ent/schema"
	"github.com/abhisek/replayz/ent/strokeevent"
	"github.com/abhisek/replayz/ent/taskprogressevent"
	"github.com/abhisek/replayz/ent/testcaseresult"
	"github.com/abhisek/replayz/ent/tutorconversation"
	"github.com/abhisek/replayz/ent/tutorhighlight"
	"github.com/abhisek/replayz/ent/userhighlight"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageMixin := schema.ChatMessage{}.Mixin()
	chatmessageMixinFields0 := chatmessageMixin[0].Fields()
	_ = chatmessageMixinFields0
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescSessionID is the schema descriptor for session_id field.
	chatmessageDescSessionID := chatmessageMixinFields0[0].Descriptor()
	// chatmessage.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	chatmessage.SessionIDValidator = chatmessageDescSessionID.Validators[0].(func(string) error)
	// chatmessageDescTimestamp is the schema descriptor for timestamp field.
	chatmessageDescTimestamp := chatmessageMixinFields0[1].Descriptor()
	// chatmessage.TimestampValidator is a validator for the "timestamp" field. It is called by the builders before save.
	chatmessage.TimestampValidator = chatmessageDescTimestamp.Validators[0].(func(string) error)
	// chatmessageDescRole is the schema descriptor for role field.
	chatmessageDescRole := chatmessageFields[0].Descriptor()
	// chatmessage.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	chatmessage.RoleValidator = chatmessageDescRole.Validators[0].(func(string) error)
	codeerroreventMixin := schema.CodeErrorEvent{}.Mixin()
	codeerroreventMixinFields0 := codeerroreventMixin[0].Fields()
	_ = codeerroreventMixinFields0
	codeerroreventFields := schema.CodeErrorEvent{}.Fields()
	_ = codeerroreventFields
	// codeerroreventDescSessionID is the schema descriptor for session_id field.
	codeerroreventDescSessionID := codeerroreventMixinFields0[0].Descriptor()
	// codeerrorevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	codeerrorevent.SessionIDValidator = codeerroreventDescSessionID.Validators[0].(func(string) error)
	// codeerroreventDescTimestamp is the schema descriptor for timestamp field.
	codeerroreventDescTimestamp := codeerroreventMixinFields0[1].Descriptor()
	// codeerrorevent.TimestampValidator is a validator for the "timestamp" field. It is called by the builders before save.
	codeerrorevent.TimestampValidator = codeerroreventDescTimestamp.Validators[0].(func(string) error)
	codesnapshotMixin := schema.CodeSnapshot{}.Mixin()
	codesnapshotMixinFields0 := codesnapshotMixin[0].Fields()
	_ = codesnapshotMixinFields0
	codesnapshotFields := schema.CodeSnapshot{}.Fields()
	_ = codesnapshotFields
	// codesnapshotDescSessionID is the schema descriptor for session_id field.
	codesnapshotDescSessionID := codesnapshotMixinFields0[0].Descriptor()
	// codesnapshot.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	codesnapshot.SessionIDValidator = codesnapshotDescSessionID.Validators[0].(func(string) error)
	// codesnapshotDescTimestamp is the schema descriptor for timestamp field.
	codesnapshotDescTimestamp := codesnapshotMixinFields0[1].Descriptor()
	// codesnapshot.TimestampValidator is a validator for the "timestamp" field. It is called by the builders before save.
	codesnapshot.TimestampValidator = codesnapshotDescTimestamp.Validators[0].(func(string) error)
	codingtaskFields := schema.CodingTask{}.Fields()
	_ = codingtaskFields
	// codingtaskDescLessonID is the schema descriptor for lesson_id field.
	codingtaskDescLessonID := codingtaskFields[0].Descriptor()
	// codingtask.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	codingtask.LessonIDValidator = codingtaskDescLessonID.Validators[0].(func(string) error)
	// codingtaskDescTitle is the schema descriptor for title field.
	codingtaskDescTitle := codingtaskFields[2].Descriptor()
	// codingtask.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	codingtask.TitleValidator = codingtaskDescTitle.Validators[0].(func(string) error)
	learningsessionFields := schema.LearningSession{}.Fields()
	_ = learningsessionFields
	// learningsessionDescSessionID is the schema descriptor for session_id field.
	learningsessionDescSessionID := learningsessionFields[0].Descriptor()
	// learningsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	learningsession.SessionIDValidator = learningsessionDescSessionID.Validators[0].(func(string) error)
	// learningsessionDescLessonID is the schema descriptor for lesson_id field.
	learningsessionDescLessonID := learningsessionFields[1].Descriptor()
	// learningsession.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	learningsession.LessonIDValidator = learningsessionDescLessonID.Validators[0].(func(string) error)
	// learningsessionDescStatus is the schema descriptor for status field.
	learningsessionDescStatus := learningsessionFields[2].Descriptor()
	// learningsession.DefaultStatus holds the default value on creation for the status field.
	learningsession.DefaultStatus = learningsessionDescStatus.Default.(string)
	// learningsessionDescStartedAt is the schema descriptor for started_at field.
	learningsessionDescStartedAt := learningsessionFields[3].Descriptor()
	// learningsession.StartedAtValidator is a validator for the "started_at" field. It is called by the builders before save.
	learningsession.StartedAtValidator = learningsessionDescStartedAt.Validators[0].(func(string) error)
	// learningsessionDescDurationMs is the schema descriptor for duration_ms field.
	learningsessionDescDurationMs := learningsessionFields[5].Descriptor()
	// learningsession.DefaultDurationMs holds the default value on creation for the duration_ms field.
	learningsession.DefaultDurationMs = learningsessionDescDurationMs.Default.(int64)
	naveventMixin := schema.NavEvent{}.Mixin()
	naveventMixinFields0 := naveventMixin[0].Fields()
	_ = naveventMixinFields0
	naveventFields := schema.NavEvent{}.Fields()
	_ = naveventFields
	// naveventDescSessionID is the schema descriptor for session_id field.
	naveventDescSessionID := naveventMixinFields0[0].Descriptor()
	// navevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	navevent.SessionIDValidator = naveventDescSessionID.Validators[0].(func(string) error)
	// naveventDescTimestamp is the schema descriptor for timestamp field.
	naveventDescTimestamp := naveventMixinFields0[1].Descriptor()
	// navevent.TimestampValidator is a validator for the "timestamp" field. It is called by the builders before save.
	navevent.TimestampValidator = naveventDescTimestamp.Validators[0].(func(string) error)
	paneleventMixin := schema.PanelEvent{}.Mixin()
	paneleventMixinFields0 := paneleventMixin[0].Fields()
	_ = paneleventMixinFields0
	paneleventFields := schema.PanelEvent{}.Fields()
	_ = paneleventFields
	// paneleventDescSessionID is the schema descriptor for session_id field.
	paneleventDescSessionID := paneleventMixinFields0[0].Descriptor()
	// panelevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	panelevent.SessionIDValidator = paneleventDescSessionID.Validators[0].(func(string) error)
	// paneleventDescTimestamp is the schema descriptor for timestamp field.
	paneleventDescTimestamp := paneleventMixinFields0[1].Descriptor()
	// panelevent.TimestampValidator is a validator for the "timestamp" field. It is called by the builders before save.
	panelevent.TimestampValidator = paneleventDescTimestamp.Validators[0].(func(string) error)
	// paneleventDescCurrentTaskIndex is the schema descriptor for current_task_index field.
	paneleventDescCurrentTaskIndex := paneleventFields[0].Descriptor()
	// panelevent.DefaultCurrentTaskIndex holds the default value on creation for the current_task_index field.
	panelevent.DefaultCurrentTaskIndex = paneleventDescCurrentTaskIndex.Default.(int)
	// paneleventDescInteractionType is the schema descriptor for interaction_type field.
	paneleventDescInteractionType := paneleventFields[1].Descriptor()
	// panelevent.InteractionTypeValidator is a validator for the "interaction_type" field. It is called by the builders before save.
	panelevent.InteractionTypeValidator = paneleventDescInteractionType.Validators[0].(func(string) error)
	strokeeventMixin := schema.StrokeEvent{}.Mixin()
	strokeeventMixinFields0 := strokeeventMixin[0].Fields()
	_ = strokeeventMixinFields0
	strokeeventFields := schema.StrokeEvent{}.Fields()
	_ = strokeeventFields
	// strokeeventDescSessionID is the schema descriptor for session_id field.
	strokeeventDescSessionID := strokeeventMixinFields0[0].Descriptor()
	// strokeevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	strokeevent.SessionIDValidator = strokeeventDescSessionID.Validators[0].(func(string) error)
	// strokeeventDescTimestamp is the schema descriptor for timestamp field.
	strokeeventDescTimestamp := strokeeventMixinFields0[1].Descriptor()
	// strokeevent.TimestampValidator is a validator for the "timestamp" field. It is called by the builders before save.
	strokeevent.TimestampValidator = strokeeventDescTimestamp.Validators[0].(func(string) error)
	// strokeeventDescStrokeNumber is the schema descriptor for stroke_number field.
	strokeeventDescStrokeNumber := strokeeventFields[2].Descriptor()
	// strokeevent.DefaultStrokeNumber holds the default value on creation for the stroke_number field.
	strokeevent.DefaultStrokeNumber = strokeeventDescStrokeNumber.Default.(int)
	taskprogresseventMixin := schema.TaskProgressEvent{}.Mixin()
	taskprogresseventMixinFields0 := taskprogresseventMixin[0].Fields()
	_ = taskprogresseventMixinFields0
	taskprogresseventFields := schema.TaskProgressEvent{}.Fields()
	_ = taskprogresseventFields
	// taskprogresseventDescSessionID is the schema descriptor for session_id field.
	taskprogresseventDescSessionID := taskprogresseventMixinFields0[0].Descriptor()
	// taskprogressevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	taskprogressevent.SessionIDValidator = taskprogresseventDescSessionID.Validators[0].(func(string) error)
	// taskprogresseventDescTimestamp is the schema descriptor for timestamp field.
	taskprogresseventDescTimestamp := taskprogresseventMixinFields0[1].Descriptor()
	// taskprogressevent.TimestampValidator is a validator for the "timestamp" field. It is called by the builders before save.
	taskprogressevent.TimestampValidator = taskprogresseventDescTimestamp.Validators[0].(func(string) error)
	// taskprogresseventDescCompleted is the schema descriptor for completed field.
	taskprogresseventDescCompleted := taskprogresseventFields[1].Descriptor()
	// taskprogressevent.DefaultCompleted holds the default value on creation for the completed field.
	taskprogressevent.DefaultCompleted = taskprogresseventDescCompleted.Default.(bool)
	// taskprogresseventDescAttempts is the schema descriptor for attempts field.
	taskprogresseventDescAttempts := taskprogresseventFields[2].Descriptor()
	// taskprogressevent.DefaultAttempts holds the default value on creation for the attempts field.
	taskprogressevent.DefaultAttempts = taskprogresseventDescAttempts.Default.(int)
	// taskprogresseventDescTestCasesPassed is the schema descriptor for test_cases_passed field.
	taskprogresseventDescTestCasesPassed := taskprogresseventFields[3].Descriptor()
	// taskprogressevent.DefaultTestCasesPassed holds the default value on creation for the test_cases_passed field.
	taskprogressevent.DefaultTestCasesPassed = taskprogresseventDescTestCasesPassed.Default.(int)
	// taskprogresseventDescTotalTestCases is the schema descriptor for total_test_cases field.
	taskprogresseventDescTotalTestCases := taskprogresseventFields[4].Descriptor()
	// taskprogressevent.DefaultTotalTestCases holds the default value on creation for the total_test_cases field.
	taskprogressevent.DefaultTotalTestCases = taskprogresseventDescTotalTestCases.Default.(int)
	testcaseresultMixin := schema.TestCaseResult{}.Mixin()
	testcaseresultMixinFields0 := testcaseresultMixin[0].Fields()
	_ = testcaseresultMixinFields0
	testcaseresultFields := schema.TestCaseResult{}.Fields()
	_ = testcaseresultFields
	// testcaseresultDescSessionID is the schema descriptor for session_id field.
	testcaseresultDescSessionID := testcaseresultMixinFields0[0].Descriptor()
	// testcaseresult.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	testcaseresult.SessionIDValidator = testcaseresultDescSessionID.Validators[0].(func(string) error)
	// testcaseresultDescTimestamp is the schema descriptor for timestamp field.
	testcaseresultDescTimestamp := testcaseresultMixinFields0[1].Descriptor()
	// testcaseresult.TimestampValidator is a validator for the "timestamp" field. It is called by the builders before save.
	testcaseresult.TimestampValidator = testcaseresultDescTimestamp.Validators[0].(func(string) error)
	tutorconversationFields := schema.TutorConversation{}.Fields()
	_ = tutorconversationFields
	// tutorconversationDescSessionID is the schema descriptor for session_id field.
	tutorconversationDescSessionID := tutorconversationFields[0].Descriptor()
	// tutorconversation.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	tutorconversation.SessionIDValidator = tutorconversationDescSessionID.Validators[0].(func(string) error)
	// tutorconversationDescConversationID is the schema descriptor for conversation_id field.
	tutorconversationDescConversationID := tutorconversationFields[1].Descriptor()
	// tutorconversation.ConversationIDValidator is a validator for the "conversation_id" field. It is called by the builders before save.
	tutorconversation.ConversationIDValidator = tutorconversationDescConversationID.Validators[0].(func(string) error)
	// tutorconversationDescStartTime is the schema descriptor for start_time field.
	tutorconversationDescStartTime := tutorconversationFields[2].Descriptor()
	// tutorconversation.StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	tutorconversation.StartTimeValidator = tutorconversationDescStartTime.Validators[0].(func(string) error)
	tutorhighlightMixin := schema.TutorHighlight{}.Mixin()
	tutorhighlightMixinFields0 := tutorhighlightMixin[0].Fields()
	_ = tutorhighlightMixinFields0
	tutorhighlightFields := schema.TutorHighlight{}.Fields()
	_ = tutorhighlightFields
	// tutorhighlightDescSessionID is the schema descriptor for session_id field.
	tutorhighlightDescSessionID := tutorhighlightMixinFields0[0].Descriptor()
	// tutorhighlight.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	tutorhighlight.SessionIDValidator = tutorhighlightDescSessionID.Validators[0].(func(string) error)
	// tutorhighlightDescTimestamp is the schema descriptor for timestamp field.
	tutorhighlightDescTimestamp := tutorhighlightMixinFields0[1].Descriptor()
	// tutorhighlight.TimestampValidator is a validator for the "timestamp" field. It is called by the builders before save.
	tutorhighlight.TimestampValidator = tutorhighlightDescTimestamp.Validators[0].(func(string) error)
	userhighlightMixin := schema.UserHighlight{}.Mixin()
	userhighlightMixinFields0 := userhighlightMixin[0].Fields()
	_ = userhighlightMixinFields0
	userhighlightFields := schema.UserHighlight{}.Fields()
	_ = userhighlightFields
	// userhighlightDescSessionID is the schema descriptor for session_id field.
	userhighlightDescSessionID := userhighlightMixinFields0[0].Descriptor()
	// userhighlight.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	userhighlight.SessionIDValidator = userhighlightDescSessionID.Validators[0].(func(string) error)
	// userhighlightDescTimestamp is the schema descriptor for timestamp field.
	userhighlightDescTimestamp := userhighlightMixinFields0[1].Descriptor()
	// userhighlight.TimestampValidator is a validator for the "timestamp" field. It is called by the builders before save.
	userhighlight.TimestampValidator = userhighlightDescTimestamp.Validators[0].(func(string) error)
}
