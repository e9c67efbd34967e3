// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// CodeErrorEvent is the predicate function for codeerrorevent builders.
type CodeErrorEvent func(*sql.Selector)

// CodeSnapshot is the predicate function for codesnapshot builders.
type CodeSnapshot func(*sql.Selector)

// CodingTask is the predicate function for codingtask builders.
type CodingTask func(*sql.Selector)

// LearningSession is the predicate function for learningsession builders.
type LearningSession func(*sql.Selector)

// NavEvent is the predicate function for navevent builders.
type NavEvent func(*sql.Selector)

// PanelEvent is the predicate function for panelevent builders.
type PanelEvent func(*sql.Selector)

// StrokeEvent is the predicate function for strokeevent builders.
type StrokeEvent func(*sql.Selector)

// TaskProgressEvent is the predicate function for taskprogressevent builders.
type TaskProgressEvent func(*sql.Selector)

// TestCaseResult is the predicate function for testcaseresult builders.
type TestCaseResult func(*sql.Selector)

// TutorConversation is the predicate function for tutorconversation builders.
type TutorConversation func(*sql.Selector)

// TutorHighlight is the predicate function for tutorhighlight builders.
type TutorHighlight func(*sql.Selector)

// UserHighlight is the predicate function for userhighlight builders.
type UserHighlight func(*sql.Selector)
