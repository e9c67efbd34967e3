// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/chatmessage"
	"github.com/abhisek/replayz/ent/codeerrorevent"
	"github.com/abhisek/replayz/ent/codesnapshot"
	"github.com/abhisek/replayz/ent/codingtask"
	"github.com/abhisek/replayz/ent/learningsession"
	"github.com/abhisek/replayz/ent/navevent"
	"github.com/abhisek/replayz/ent/panelevent"
	"github.com/abhisek/replayz/ent/predicate"
	"github.com/abhisek/replayz/ent/schema"
	"github.com/abhisek/replayz/ent/strokeevent"
	"github.com/abhisek/replayz/ent/taskprogressevent"
	"github.com/abhisek/replayz/ent/testcaseresult"
	"github.com/abhisek/replayz/ent/tutorconversation"
	"github.com/abhisek/replayz/ent/tutorhighlight"
	"github.com/abhisek/replayz/ent/userhighlight"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChatMessage       = "ChatMessage"
	TypeCodeErrorEvent    = "CodeErrorEvent"
	TypeCodeSnapshot      = "CodeSnapshot"
	TypeCodingTask        = "CodingTask"
	TypeLearningSession   = "LearningSession"
	TypeNavEvent          = "NavEvent"
	TypePanelEvent        = "PanelEvent"
	TypeStrokeEvent       = "StrokeEvent"
	TypeTaskProgressEvent = "TaskProgressEvent"
	TypeTestCaseResult    = "TestCaseResult"
	TypeTutorConversation = "TutorConversation"
	TypeTutorHighlight    = "TutorHighlight"
	TypeUserHighlight     = "UserHighlight"
)

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	timestamp     *string
	role          *string
	content       *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ChatMessage, error)
	predicates    []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id int) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ChatMessageMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChatMessageMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ChatMessageMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ChatMessageMutation) SetTimestamp(s string) {
	m.timestamp = &s
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ChatMessageMutation) Timestamp() (r string, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ChatMessageMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetRole sets the "role" field.
func (m *ChatMessageMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatMessageMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session_id != nil {
		fields = append(fields, chatmessage.FieldSessionID)
	}
	if m.timestamp != nil {
		fields = append(fields, chatmessage.FieldTimestamp)
	}
	if m.role != nil {
		fields = append(fields, chatmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldSessionID:
		return m.SessionID()
	case chatmessage.FieldTimestamp:
		return m.Timestamp()
	case chatmessage.FieldRole:
		return m.Role()
	case chatmessage.FieldContent:
		return m.Content()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case chatmessage.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case chatmessage.FieldRole:
		return m.OldRole(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case chatmessage.FieldTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case chatmessage.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case chatmessage.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case chatmessage.FieldRole:
		m.ResetRole()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// CodeErrorEventMutation represents an operation that mutates the CodeErrorEvent nodes in the graph.
type CodeErrorEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	timestamp     *string
	task_index    *int
	addtask_index *int
	error_message *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CodeErrorEvent, error)
	predicates    []predicate.CodeErrorEvent
}

var _ ent.Mutation = (*CodeErrorEventMutation)(nil)

// codeerroreventOption allows management of the mutation configuration using functional options.
type codeerroreventOption func(*CodeErrorEventMutation)

// newCodeErrorEventMutation creates new mutation for the CodeErrorEvent entity.
func newCodeErrorEventMutation(c config, op Op, opts ...codeerroreventOption) *CodeErrorEventMutation {
	m := &CodeErrorEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCodeErrorEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCodeErrorEventID sets the ID field of the mutation.
func withCodeErrorEventID(id int) codeerroreventOption {
	return func(m *CodeErrorEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CodeErrorEvent
		)
		m.oldValue = func(ctx context.Context) (*CodeErrorEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CodeErrorEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCodeErrorEvent sets the old CodeErrorEvent of the mutation.
func withCodeErrorEvent(node *CodeErrorEvent) codeerroreventOption {
	return func(m *CodeErrorEventMutation) {
		m.oldValue = func(context.Context) (*CodeErrorEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CodeErrorEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CodeErrorEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CodeErrorEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CodeErrorEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CodeErrorEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *CodeErrorEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *CodeErrorEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the CodeErrorEvent entity.
// If the CodeErrorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeErrorEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *CodeErrorEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *CodeErrorEventMutation) SetTimestamp(s string) {
	m.timestamp = &s
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *CodeErrorEventMutation) Timestamp() (r string, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the CodeErrorEvent entity.
// If the CodeErrorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeErrorEventMutation) OldTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *CodeErrorEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetTaskIndex sets the "task_index" field.
func (m *CodeErrorEventMutation) SetTaskIndex(i int) {
	m.task_index = &i
	m.addtask_index = nil
}

// TaskIndex returns the value of the "task_index" field in the mutation.
func (m *CodeErrorEventMutation) TaskIndex() (r int, exists bool) {
	v := m.task_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskIndex returns the old "task_index" field's value of the CodeErrorEvent entity.
// If the CodeErrorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeErrorEventMutation) OldTaskIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskIndex: %w", err)
	}
	return oldValue.TaskIndex, nil
}

// AddTaskIndex adds i to the "task_index" field.
func (m *CodeErrorEventMutation) AddTaskIndex(i int) {
	if m.addtask_index != nil {
		*m.addtask_index += i
	} else {
		m.addtask_index = &i
	}
}

// AddedTaskIndex returns the value that was added to the "task_index" field in this mutation.
func (m *CodeErrorEventMutation) AddedTaskIndex() (r int, exists bool) {
	v := m.addtask_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskIndex resets all changes to the "task_index" field.
func (m *CodeErrorEventMutation) ResetTaskIndex() {
	m.task_index = nil
	m.addtask_index = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *CodeErrorEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CodeErrorEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the CodeErrorEvent entity.
// If the CodeErrorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeErrorEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CodeErrorEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the CodeErrorEventMutation builder.
func (m *CodeErrorEventMutation) Where(ps ...predicate.CodeErrorEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CodeErrorEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CodeErrorEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CodeErrorEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CodeErrorEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CodeErrorEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CodeErrorEvent).
func (m *CodeErrorEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CodeErrorEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session_id != nil {
		fields = append(fields, codeerrorevent.FieldSessionID)
	}
	if m.timestamp != nil {
		fields = append(fields, codeerrorevent.FieldTimestamp)
	}
	if m.task_index != nil {
		fields = append(fields, codeerrorevent.FieldTaskIndex)
	}
	if m.error_message != nil {
		fields = append(fields, codeerrorevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CodeErrorEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case codeerrorevent.FieldSessionID:
		return m.SessionID()
	case codeerrorevent.FieldTimestamp:
		return m.Timestamp()
	case codeerrorevent.FieldTaskIndex:
		return m.TaskIndex()
	case codeerrorevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CodeErrorEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case codeerrorevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case codeerrorevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case codeerrorevent.FieldTaskIndex:
		return m.OldTaskIndex(ctx)
	case codeerrorevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown CodeErrorEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodeErrorEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case codeerrorevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case codeerrorevent.FieldTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case codeerrorevent.FieldTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskIndex(v)
		return nil
	case codeerrorevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown CodeErrorEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CodeErrorEventMutation) AddedFields() []string {
	var fields []string
	if m.addtask_index != nil {
		fields = append(fields, codeerrorevent.FieldTaskIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CodeErrorEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case codeerrorevent.FieldTaskIndex:
		return m.AddedTaskIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodeErrorEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case codeerrorevent.FieldTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskIndex(v)
		return nil
	}
	return fmt.Errorf("unknown CodeErrorEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CodeErrorEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CodeErrorEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CodeErrorEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CodeErrorEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CodeErrorEventMutation) ResetField(name string) error {
	switch name {
	case codeerrorevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case codeerrorevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case codeerrorevent.FieldTaskIndex:
		m.ResetTaskIndex()
		return nil
	case codeerrorevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown CodeErrorEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CodeErrorEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CodeErrorEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CodeErrorEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CodeErrorEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CodeErrorEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CodeErrorEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CodeErrorEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CodeErrorEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CodeErrorEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CodeErrorEvent edge %s", name)
}

// CodeSnapshotMutation represents an operation that mutates the CodeSnapshot nodes in the graph.
type CodeSnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	timestamp     *string
	task_index    *int
	addtask_index *int
	method_id     *string
	code_content  *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CodeSnapshot, error)
	predicates    []predicate.CodeSnapshot
}

var _ ent.Mutation = (*CodeSnapshotMutation)(nil)

// codesnapshotOption allows management of the mutation configuration using functional options.
type codesnapshotOption func(*CodeSnapshotMutation)

// newCodeSnapshotMutation creates new mutation for the CodeSnapshot entity.
func newCodeSnapshotMutation(c config, op Op, opts ...codesnapshotOption) *CodeSnapshotMutation {
	m := &CodeSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeCodeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCodeSnapshotID sets the ID field of the mutation.
func withCodeSnapshotID(id int) codesnapshotOption {
	return func(m *CodeSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *CodeSnapshot
		)
		m.oldValue = func(ctx context.Context) (*CodeSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CodeSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCodeSnapshot sets the old CodeSnapshot of the mutation.
func withCodeSnapshot(node *CodeSnapshot) codesnapshotOption {
	return func(m *CodeSnapshotMutation) {
		m.oldValue = func(context.Context) (*CodeSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CodeSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CodeSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CodeSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CodeSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CodeSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *CodeSnapshotMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *CodeSnapshotMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the CodeSnapshot entity.
// If the CodeSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeSnapshotMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *CodeSnapshotMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *CodeSnapshotMutation) SetTimestamp(s string) {
	m.timestamp = &s
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *CodeSnapshotMutation) Timestamp() (r string, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the CodeSnapshot entity.
// If the CodeSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeSnapshotMutation) OldTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *CodeSnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetTaskIndex sets the "task_index" field.
func (m *CodeSnapshotMutation) SetTaskIndex(i int) {
	m.task_index = &i
	m.addtask_index = nil
}

// TaskIndex returns the value of the "task_index" field in the mutation.
func (m *CodeSnapshotMutation) TaskIndex() (r int, exists bool) {
	v := m.task_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskIndex returns the old "task_index" field's value of the CodeSnapshot entity.
// If the CodeSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeSnapshotMutation) OldTaskIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskIndex: %w", err)
	}
	return oldValue.TaskIndex, nil
}

// AddTaskIndex adds i to the "task_index" field.
func (m *CodeSnapshotMutation) AddTaskIndex(i int) {
	if m.addtask_index != nil {
		*m.addtask_index += i
	} else {
		m.addtask_index = &i
	}
}

// AddedTaskIndex returns the value that was added to the "task_index" field in this mutation.
func (m *CodeSnapshotMutation) AddedTaskIndex() (r int, exists bool) {
	v := m.addtask_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskIndex resets all changes to the "task_index" field.
func (m *CodeSnapshotMutation) ResetTaskIndex() {
	m.task_index = nil
	m.addtask_index = nil
}

// SetMethodID sets the "method_id" field.
func (m *CodeSnapshotMutation) SetMethodID(s string) {
	m.method_id = &s
}

// MethodID returns the value of the "method_id" field in the mutation.
func (m *CodeSnapshotMutation) MethodID() (r string, exists bool) {
	v := m.method_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMethodID returns the old "method_id" field's value of the CodeSnapshot entity.
// If the CodeSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeSnapshotMutation) OldMethodID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethodID: %w", err)
	}
	return oldValue.MethodID, nil
}

// ClearMethodID clears the value of the "method_id" field.
func (m *CodeSnapshotMutation) ClearMethodID() {
	m.method_id = nil
	m.clearedFields[codesnapshot.FieldMethodID] = struct{}{}
}

// MethodIDCleared returns if the "method_id" field was cleared in this mutation.
func (m *CodeSnapshotMutation) MethodIDCleared() bool {
	_, ok := m.clearedFields[codesnapshot.FieldMethodID]
	return ok
}

// ResetMethodID resets all changes to the "method_id" field.
func (m *CodeSnapshotMutation) ResetMethodID() {
	m.method_id = nil
	delete(m.clearedFields, codesnapshot.FieldMethodID)
}

// SetCodeContent sets the "code_content" field.
func (m *CodeSnapshotMutation) SetCodeContent(s string) {
	m.code_content = &s
}

// CodeContent returns the value of the "code_content" field in the mutation.
func (m *CodeSnapshotMutation) CodeContent() (r string, exists bool) {
	v := m.code_content
	if v == nil {
		return
	}
	return *v, true
}

// OldCodeContent returns the old "code_content" field's value of the CodeSnapshot entity.
// If the CodeSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeSnapshotMutation) OldCodeContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodeContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodeContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodeContent: %w", err)
	}
	return oldValue.CodeContent, nil
}

// ResetCodeContent resets all changes to the "code_content" field.
func (m *CodeSnapshotMutation) ResetCodeContent() {
	m.code_content = nil
}

// Where appends a list predicates to the CodeSnapshotMutation builder.
func (m *CodeSnapshotMutation) Where(ps ...predicate.CodeSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CodeSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CodeSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CodeSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CodeSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CodeSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CodeSnapshot).
func (m *CodeSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CodeSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session_id != nil {
		fields = append(fields, codesnapshot.FieldSessionID)
	}
	if m.timestamp != nil {
		fields = append(fields, codesnapshot.FieldTimestamp)
	}
	if m.task_index != nil {
		fields = append(fields, codesnapshot.FieldTaskIndex)
	}
	if m.method_id != nil {
		fields = append(fields, codesnapshot.FieldMethodID)
	}
	if m.code_content != nil {
		fields = append(fields, codesnapshot.FieldCodeContent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CodeSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case codesnapshot.FieldSessionID:
		return m.SessionID()
	case codesnapshot.FieldTimestamp:
		return m.Timestamp()
	case codesnapshot.FieldTaskIndex:
		return m.TaskIndex()
	case codesnapshot.FieldMethodID:
		return m.MethodID()
	case codesnapshot.FieldCodeContent:
		return m.CodeContent()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CodeSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case codesnapshot.FieldSessionID:
		return m.OldSessionID(ctx)
	case codesnapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case codesnapshot.FieldTaskIndex:
		return m.OldTaskIndex(ctx)
	case codesnapshot.FieldMethodID:
		return m.OldMethodID(ctx)
	case codesnapshot.FieldCodeContent:
		return m.OldCodeContent(ctx)
	}
	return nil, fmt.Errorf("unknown CodeSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodeSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case codesnapshot.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case codesnapshot.FieldTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case codesnapshot.FieldTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskIndex(v)
		return nil
	case codesnapshot.FieldMethodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethodID(v)
		return nil
	case codesnapshot.FieldCodeContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodeContent(v)
		return nil
	}
	return fmt.Errorf("unknown CodeSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CodeSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addtask_index != nil {
		fields = append(fields, codesnapshot.FieldTaskIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CodeSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case codesnapshot.FieldTaskIndex:
		return m.AddedTaskIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodeSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case codesnapshot.FieldTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskIndex(v)
		return nil
	}
	return fmt.Errorf("unknown CodeSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CodeSnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(codesnapshot.FieldMethodID) {
		fields = append(fields, codesnapshot.FieldMethodID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CodeSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CodeSnapshotMutation) ClearField(name string) error {
	switch name {
	case codesnapshot.FieldMethodID:
		m.ClearMethodID()
		return nil
	}
	return fmt.Errorf("unknown CodeSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CodeSnapshotMutation) ResetField(name string) error {
	switch name {
	case codesnapshot.FieldSessionID:
		m.ResetSessionID()
		return nil
	case codesnapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case codesnapshot.FieldTaskIndex:
		m.ResetTaskIndex()
		return nil
	case codesnapshot.FieldMethodID:
		m.ResetMethodID()
		return nil
	case codesnapshot.FieldCodeContent:
		m.ResetCodeContent()
		return nil
	}
	return fmt.Errorf("unknown CodeSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CodeSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CodeSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CodeSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CodeSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CodeSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CodeSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CodeSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CodeSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CodeSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CodeSnapshot edge %s", name)
}

// CodingTaskMutation represents an operation that mutates the CodingTask nodes in the graph.
type CodingTaskMutation struct {
	config
	op             Op
	typ            string
	id             *int
	lesson_id      *string
	task_order     *int
	addtask_order  *int
	title          *string
	difficulty     *string
	description    *string
	method_name    *string
	starter_code   *string
	examples       *[]schema.TaskExample
	appendexamples []schema.TaskExample
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*CodingTask, error)
	predicates     []predicate.CodingTask
}

var _ ent.Mutation = (*CodingTaskMutation)(nil)

// codingtaskOption allows management of the mutation configuration using functional options.
type codingtaskOption func(*CodingTaskMutation)

// newCodingTaskMutation creates new mutation for the CodingTask entity.
func newCodingTaskMutation(c config, op Op, opts ...codingtaskOption) *CodingTaskMutation {
	m := &CodingTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeCodingTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCodingTaskID sets the ID field of the mutation.
func withCodingTaskID(id int) codingtaskOption {
	return func(m *CodingTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *CodingTask
		)
		m.oldValue = func(ctx context.Context) (*CodingTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CodingTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCodingTask sets the old CodingTask of the mutation.
func withCodingTask(node *CodingTask) codingtaskOption {
	return func(m *CodingTaskMutation) {
		m.oldValue = func(context.Context) (*CodingTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CodingTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CodingTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CodingTaskMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CodingTaskMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CodingTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLessonID sets the "lesson_id" field.
func (m *CodingTaskMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *CodingTaskMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *CodingTaskMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetTaskOrder sets the "task_order" field.
func (m *CodingTaskMutation) SetTaskOrder(i int) {
	m.task_order = &i
	m.addtask_order = nil
}

// TaskOrder returns the value of the "task_order" field in the mutation.
func (m *CodingTaskMutation) TaskOrder() (r int, exists bool) {
	v := m.task_order
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskOrder returns the old "task_order" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldTaskOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskOrder: %w", err)
	}
	return oldValue.TaskOrder, nil
}

// AddTaskOrder adds i to the "task_order" field.
func (m *CodingTaskMutation) AddTaskOrder(i int) {
	if m.addtask_order != nil {
		*m.addtask_order += i
	} else {
		m.addtask_order = &i
	}
}

// AddedTaskOrder returns the value that was added to the "task_order" field in this mutation.
func (m *CodingTaskMutation) AddedTaskOrder() (r int, exists bool) {
	v := m.addtask_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskOrder resets all changes to the "task_order" field.
func (m *CodingTaskMutation) ResetTaskOrder() {
	m.task_order = nil
	m.addtask_order = nil
}

// SetTitle sets the "title" field.
func (m *CodingTaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CodingTaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CodingTaskMutation) ResetTitle() {
	m.title = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *CodingTaskMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *CodingTaskMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ClearDifficulty clears the value of the "difficulty" field.
func (m *CodingTaskMutation) ClearDifficulty() {
	m.difficulty = nil
	m.clearedFields[codingtask.FieldDifficulty] = struct{}{}
}

// DifficultyCleared returns if the "difficulty" field was cleared in this mutation.
func (m *CodingTaskMutation) DifficultyCleared() bool {
	_, ok := m.clearedFields[codingtask.FieldDifficulty]
	return ok
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *CodingTaskMutation) ResetDifficulty() {
	m.difficulty = nil
	delete(m.clearedFields, codingtask.FieldDifficulty)
}

// SetDescription sets the "description" field.
func (m *CodingTaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CodingTaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CodingTaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[codingtask.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CodingTaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[codingtask.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CodingTaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, codingtask.FieldDescription)
}

// SetMethodName sets the "method_name" field.
func (m *CodingTaskMutation) SetMethodName(s string) {
	m.method_name = &s
}

// MethodName returns the value of the "method_name" field in the mutation.
func (m *CodingTaskMutation) MethodName() (r string, exists bool) {
	v := m.method_name
	if v == nil {
		return
	}
	return *v, true
}

// OldMethodName returns the old "method_name" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldMethodName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethodName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethodName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethodName: %w", err)
	}
	return oldValue.MethodName, nil
}

// ClearMethodName clears the value of the "method_name" field.
func (m *CodingTaskMutation) ClearMethodName() {
	m.method_name = nil
	m.clearedFields[codingtask.FieldMethodName] = struct{}{}
}

// MethodNameCleared returns if the "method_name" field was cleared in this mutation.
func (m *CodingTaskMutation) MethodNameCleared() bool {
	_, ok := m.clearedFields[codingtask.FieldMethodName]
	return ok
}

// ResetMethodName resets all changes to the "method_name" field.
func (m *CodingTaskMutation) ResetMethodName() {
	m.method_name = nil
	delete(m.clearedFields, codingtask.FieldMethodName)
}

// SetStarterCode sets the "starter_code" field.
func (m *CodingTaskMutation) SetStarterCode(s string) {
	m.starter_code = &s
}

// StarterCode returns the value of the "starter_code" field in the mutation.
func (m *CodingTaskMutation) StarterCode() (r string, exists bool) {
	v := m.starter_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStarterCode returns the old "starter_code" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldStarterCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStarterCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStarterCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStarterCode: %w", err)
	}
	return oldValue.StarterCode, nil
}

// ClearStarterCode clears the value of the "starter_code" field.
func (m *CodingTaskMutation) ClearStarterCode() {
	m.starter_code = nil
	m.clearedFields[codingtask.FieldStarterCode] = struct{}{}
}

// StarterCodeCleared returns if the "starter_code" field was cleared in this mutation.
func (m *CodingTaskMutation) StarterCodeCleared() bool {
	_, ok := m.clearedFields[codingtask.FieldStarterCode]
	return ok
}

// ResetStarterCode resets all changes to the "starter_code" field.
func (m *CodingTaskMutation) ResetStarterCode() {
	m.starter_code = nil
	delete(m.clearedFields, codingtask.FieldStarterCode)
}

// SetExamples sets the "examples" field.
func (m *CodingTaskMutation) SetExamples(se []schema.TaskExample) {
	m.examples = &se
	m.appendexamples = nil
}

// Examples returns the value of the "examples" field in the mutation.
func (m *CodingTaskMutation) Examples() (r []schema.TaskExample, exists bool) {
	v := m.examples
	if v == nil {
		return
	}
	return *v, true
}

// OldExamples returns the old "examples" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldExamples(ctx context.Context) (v []schema.TaskExample, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamples is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamples requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamples: %w", err)
	}
	return oldValue.Examples, nil
}

// AppendExamples adds se to the "examples" field.
func (m *CodingTaskMutation) AppendExamples(se []schema.TaskExample) {
	m.appendexamples = append(m.appendexamples, se...)
}

// AppendedExamples returns the list of values that were appended to the "examples" field in this mutation.
func (m *CodingTaskMutation) AppendedExamples() ([]schema.TaskExample, bool) {
	if len(m.appendexamples) == 0 {
		return nil, false
	}
	return m.appendexamples, true
}

// ClearExamples clears the value of the "examples" field.
func (m *CodingTaskMutation) ClearExamples() {
	m.examples = nil
	m.appendexamples = nil
	m.clearedFields[codingtask.FieldExamples] = struct{}{}
}

// ExamplesCleared returns if the "examples" field was cleared in this mutation.
func (m *CodingTaskMutation) ExamplesCleared() bool {
	_, ok := m.clearedFields[codingtask.FieldExamples]
	return ok
}

// ResetExamples resets all changes to the "examples" field.
func (m *CodingTaskMutation) ResetExamples() {
	m.examples = nil
	m.appendexamples = nil
	delete(m.clearedFields, codingtask.FieldExamples)
}

// Where appends a list predicates to the CodingTaskMutation builder.
func (m *CodingTaskMutation) Where(ps ...predicate.CodingTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CodingTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CodingTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CodingTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CodingTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CodingTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CodingTask).
func (m *CodingTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CodingTaskMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.lesson_id != nil {
		fields = append(fields, codingtask.FieldLessonID)
	}
	if m.task_order != nil {
		fields = append(fields, codingtask.FieldTaskOrder)
	}
	if m.title != nil {
		fields = append(fields, codingtask.FieldTitle)
	}
	if m.difficulty != nil {
		fields = append(fields, codingtask.FieldDifficulty)
	}
	if m.description != nil {
		fields = append(fields, codingtask.FieldDescription)
	}
	if m.method_name != nil {
		fields = append(fields, codingtask.FieldMethodName)
	}
	if m.starter_code != nil {
		fields = append(fields, codingtask.FieldStarterCode)
	}
	if m.examples != nil {
		fields = append(fields, codingtask.FieldExamples)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CodingTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case codingtask.FieldLessonID:
		return m.LessonID()
	case codingtask.FieldTaskOrder:
		return m.TaskOrder()
	case codingtask.FieldTitle:
		return m.Title()
	case codingtask.FieldDifficulty:
		return m.Difficulty()
	case codingtask.FieldDescription:
		return m.Description()
	case codingtask.FieldMethodName:
		return m.MethodName()
	case codingtask.FieldStarterCode:
		return m.StarterCode()
	case codingtask.FieldExamples:
		return m.Examples()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CodingTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case codingtask.FieldLessonID:
		return m.OldLessonID(ctx)
	case codingtask.FieldTaskOrder:
		return m.OldTaskOrder(ctx)
	case codingtask.FieldTitle:
		return m.OldTitle(ctx)
	case codingtask.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case codingtask.FieldDescription:
		return m.OldDescription(ctx)
	case codingtask.FieldMethodName:
		return m.OldMethodName(ctx)
	case codingtask.FieldStarterCode:
		return m.OldStarterCode(ctx)
	case codingtask.FieldExamples:
		return m.OldExamples(ctx)
	}
	return nil, fmt.Errorf("unknown CodingTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodingTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case codingtask.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case codingtask.FieldTaskOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskOrder(v)
		return nil
	case codingtask.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case codingtask.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case codingtask.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case codingtask.FieldMethodName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethodName(v)
		return nil
	case codingtask.FieldStarterCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStarterCode(v)
		return nil
	case codingtask.FieldExamples:
		v, ok := value.([]schema.TaskExample)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamples(v)
		return nil
	}
	return fmt.Errorf("unknown CodingTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CodingTaskMutation) AddedFields() []string {
	var fields []string
	if m.addtask_order != nil {
		fields = append(fields, codingtask.FieldTaskOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CodingTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case codingtask.FieldTaskOrder:
		return m.AddedTaskOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodingTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case codingtask.FieldTaskOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskOrder(v)
		return nil
	}
	return fmt.Errorf("unknown CodingTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CodingTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(codingtask.FieldDifficulty) {
		fields = append(fields, codingtask.FieldDifficulty)
	}
	if m.FieldCleared(codingtask.FieldDescription) {
		fields = append(fields, codingtask.FieldDescription)
	}
	if m.FieldCleared(codingtask.FieldMethodName) {
		fields = append(fields, codingtask.FieldMethodName)
	}
	if m.FieldCleared(codingtask.FieldStarterCode) {
		fields = append(fields, codingtask.FieldStarterCode)
	}
	if m.FieldCleared(codingtask.FieldExamples) {
		fields = append(fields, codingtask.FieldExamples)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CodingTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CodingTaskMutation) ClearField(name string) error {
	switch name {
	case codingtask.FieldDifficulty:
		m.ClearDifficulty()
		return nil
	case codingtask.FieldDescription:
		m.ClearDescription()
		return nil
	case codingtask.FieldMethodName:
		m.ClearMethodName()
		return nil
	case codingtask.FieldStarterCode:
		m.ClearStarterCode()
		return nil
	case codingtask.FieldExamples:
		m.ClearExamples()
		return nil
	}
	return fmt.Errorf("unknown CodingTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CodingTaskMutation) ResetField(name string) error {
	switch name {
	case codingtask.FieldLessonID:
		m.ResetLessonID()
		return nil
	case codingtask.FieldTaskOrder:
		m.ResetTaskOrder()
		return nil
	case codingtask.FieldTitle:
		m.ResetTitle()
		return nil
	case codingtask.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case codingtask.FieldDescription:
		m.ResetDescription()
		return nil
	case codingtask.FieldMethodName:
		m.ResetMethodName()
		return nil
	case codingtask.FieldStarterCode:
		m.ResetStarterCode()
		return nil
	case codingtask.FieldExamples:
		m.ResetExamples()
		return nil
	}
	return fmt.Errorf("unknown CodingTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CodingTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CodingTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CodingTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CodingTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CodingTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CodingTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CodingTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CodingTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CodingTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CodingTask edge %s", name)
}

// LearningSessionMutation represents an operation that mutates the LearningSession nodes in the graph.
type LearningSessionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	session_id     *string
	lesson_id      *string
	status         *string
	started_at     *string
	completed_at   *string
	duration_ms    *int64
	addduration_ms *int64
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*LearningSession, error)
	predicates     []predicate.LearningSession
}

var _ ent.Mutation = (*LearningSessionMutation)(nil)

// learningsessionOption allows management of the mutation configuration using functional options.
type learningsessionOption func(*LearningSessionMutation)

// newLearningSessionMutation creates new mutation for the LearningSession entity.
func newLearningSessionMutation(c config, op Op, opts ...learningsessionOption) *LearningSessionMutation {
	m := &LearningSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningSessionID sets the ID field of the mutation.
func withLearningSessionID(id int) learningsessionOption {
	return func(m *LearningSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningSession
		)
		m.oldValue = func(ctx context.Context) (*LearningSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningSession sets the old LearningSession of the mutation.
func withLearningSession(node *LearningSession) learningsessionOption {
	return func(m *LearningSessionMutation) {
		m.oldValue = func(context.Context) (*LearningSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *LearningSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LearningSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *LearningSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *LearningSessionMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *LearningSessionMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *LearningSessionMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetStatus sets the "status" field.
func (m *LearningSessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *LearningSessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LearningSessionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *LearningSessionMutation) SetStartedAt(s string) {
	m.started_at = &s
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *LearningSessionMutation) StartedAt() (r string, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldStartedAt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *LearningSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *LearningSessionMutation) SetCompletedAt(s string) {
	m.completed_at = &s
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *LearningSessionMutation) CompletedAt() (r string, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldCompletedAt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *LearningSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[learningsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *LearningSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[learningsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *LearningSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, learningsession.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *LearningSessionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *LearningSessionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the LearningSession entity.
// If the LearningSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningSessionMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *LearningSessionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *LearningSessionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *LearningSessionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// Where appends a list predicates to the LearningSessionMutation builder.
func (m *LearningSessionMutation) Where(ps ...predicate.LearningSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningSession).
func (m *LearningSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningSessionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session_id != nil {
		fields = append(fields, learningsession.FieldSessionID)
	}
	if m.lesson_id != nil {
		fields = append(fields, learningsession.FieldLessonID)
	}
	if m.status != nil {
		fields = append(fields, learningsession.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, learningsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, learningsession.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, learningsession.FieldDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningsession.FieldSessionID:
		return m.SessionID()
	case learningsession.FieldLessonID:
		return m.LessonID()
	case learningsession.FieldStatus:
		return m.Status()
	case learningsession.FieldStartedAt:
		return m.StartedAt()
	case learningsession.FieldCompletedAt:
		return m.CompletedAt()
	case learningsession.FieldDurationMs:
		return m.DurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningsession.FieldSessionID:
		return m.OldSessionID(ctx)
	case learningsession.FieldLessonID:
		return m.OldLessonID(ctx)
	case learningsession.FieldStatus:
		return m.OldStatus(ctx)
	case learningsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case learningsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case learningsession.FieldDurationMs:
		return m.OldDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown LearningSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningsession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case learningsession.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case learningsession.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case learningsession.FieldStartedAt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case learningsession.FieldCompletedAt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case learningsession.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown LearningSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningSessionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, learningsession.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learningsession.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learningsession.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown LearningSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learningsession.FieldCompletedAt) {
		fields = append(fields, learningsession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningSessionMutation) ClearField(name string) error {
	switch name {
	case learningsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown LearningSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningSessionMutation) ResetField(name string) error {
	switch name {
	case learningsession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case learningsession.FieldLessonID:
		m.ResetLessonID()
		return nil
	case learningsession.FieldStatus:
		m.ResetStatus()
		return nil
	case learningsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case learningsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case learningsession.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	}
	return fmt.Errorf("unknown LearningSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearningSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearningSession edge %s", name)
}

// NavEventMutation represents an operation that mutates the NavEvent nodes in the graph.
type NavEventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	session_id           *string
	timestamp            *string
	from_task_index      *int
	addfrom_task_index   *int
	to_task_index        *int
	addto_task_index     *int
	navigation_direction *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*NavEvent, error)
	predicates           []predicate.NavEvent
}

var _ ent.Mutation = (*NavEventMutation)(nil)

// naveventOption allows management of the mutation configuration using functional options.
type naveventOption func(*NavEventMutation)

// newNavEventMutation creates new mutation for the NavEvent entity.
func newNavEventMutation(c config, op Op, opts ...naveventOption) *NavEventMutation {
	m := &NavEventMutation{
		config:        c,
		op:            op,
		typ:           TypeNavEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNavEventID sets the ID field of the mutation.
func withNavEventID(id int) naveventOption {
	return func(m *NavEventMutation) {
		var (
			err   error
			once  sync.Once
			value *NavEvent
		)
		m.oldValue = func(ctx context.Context) (*NavEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NavEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNavEvent sets the old NavEvent of the mutation.
func withNavEvent(node *NavEvent) naveventOption {
	return func(m *NavEventMutation) {
		m.oldValue = func(context.Context) (*NavEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NavEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NavEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NavEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NavEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NavEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *NavEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *NavEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the NavEvent entity.
// If the NavEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NavEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *NavEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *NavEventMutation) SetTimestamp(s string) {
	m.timestamp = &s
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *NavEventMutation) Timestamp() (r string, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the NavEvent entity.
// If the NavEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NavEventMutation) OldTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *NavEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetFromTaskIndex sets the "from_task_index" field.
func (m *NavEventMutation) SetFromTaskIndex(i int) {
	m.from_task_index = &i
	m.addfrom_task_index = nil
}

// FromTaskIndex returns the value of the "from_task_index" field in the mutation.
func (m *NavEventMutation) FromTaskIndex() (r int, exists bool) {
	v := m.from_task_index
	if v == nil {
		return
	}
	return *v, true
}

// OldFromTaskIndex returns the old "from_task_index" field's value of the NavEvent entity.
// If the NavEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NavEventMutation) OldFromTaskIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromTaskIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromTaskIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromTaskIndex: %w", err)
	}
	return oldValue.FromTaskIndex, nil
}

// AddFromTaskIndex adds i to the "from_task_index" field.
func (m *NavEventMutation) AddFromTaskIndex(i int) {
	if m.addfrom_task_index != nil {
		*m.addfrom_task_index += i
	} else {
		m.addfrom_task_index = &i
	}
}

// AddedFromTaskIndex returns the value that was added to the "from_task_index" field in this mutation.
func (m *NavEventMutation) AddedFromTaskIndex() (r int, exists bool) {
	v := m.addfrom_task_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetFromTaskIndex resets all changes to the "from_task_index" field.
func (m *NavEventMutation) ResetFromTaskIndex() {
	m.from_task_index = nil
	m.addfrom_task_index = nil
}

// SetToTaskIndex sets the "to_task_index" field.
func (m *NavEventMutation) SetToTaskIndex(i int) {
	m.to_task_index = &i
	m.addto_task_index = nil
}

// ToTaskIndex returns the value of the "to_task_index" field in the mutation.
func (m *NavEventMutation) ToTaskIndex() (r int, exists bool) {
	v := m.to_task_index
	if v == nil {
		return
	}
	return *v, true
}

// OldToTaskIndex returns the old "to_task_index" field's value of the NavEvent entity.
// If the NavEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NavEventMutation) OldToTaskIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToTaskIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToTaskIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToTaskIndex: %w", err)
	}
	return oldValue.ToTaskIndex, nil
}

// AddToTaskIndex adds i to the "to_task_index" field.
func (m *NavEventMutation) AddToTaskIndex(i int) {
	if m.addto_task_index != nil {
		*m.addto_task_index += i
	} else {
		m.addto_task_index = &i
	}
}

// AddedToTaskIndex returns the value that was added to the "to_task_index" field in this mutation.
func (m *NavEventMutation) AddedToTaskIndex() (r int, exists bool) {
	v := m.addto_task_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetToTaskIndex resets all changes to the "to_task_index" field.
func (m *NavEventMutation) ResetToTaskIndex() {
	m.to_task_index = nil
	m.addto_task_index = nil
}

// SetNavigationDirection sets the "navigation_direction" field.
func (m *NavEventMutation) SetNavigationDirection(s string) {
	m.navigation_direction = &s
}

// NavigationDirection returns the value of the "navigation_direction" field in the mutation.
func (m *NavEventMutation) NavigationDirection() (r string, exists bool) {
	v := m.navigation_direction
	if v == nil {
		return
	}
	return *v, true
}

// OldNavigationDirection returns the old "navigation_direction" field's value of the NavEvent entity.
// If the NavEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NavEventMutation) OldNavigationDirection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNavigationDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNavigationDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNavigationDirection: %w", err)
	}
	return oldValue.NavigationDirection, nil
}

// ClearNavigationDirection clears the value of the "navigation_direction" field.
func (m *NavEventMutation) ClearNavigationDirection() {
	m.navigation_direction = nil
	m.clearedFields[navevent.FieldNavigationDirection] = struct{}{}
}

// NavigationDirectionCleared returns if the "navigation_direction" field was cleared in this mutation.
func (m *NavEventMutation) NavigationDirectionCleared() bool {
	_, ok := m.clearedFields[navevent.FieldNavigationDirection]
	return ok
}

// ResetNavigationDirection resets all changes to the "navigation_direction" field.
func (m *NavEventMutation) ResetNavigationDirection() {
	m.navigation_direction = nil
	delete(m.clearedFields, navevent.FieldNavigationDirection)
}

// Where appends a list predicates to the NavEventMutation builder.
func (m *NavEventMutation) Where(ps ...predicate.NavEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NavEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NavEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NavEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NavEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NavEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NavEvent).
func (m *NavEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NavEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session_id != nil {
		fields = append(fields, navevent.FieldSessionID)
	}
	if m.timestamp != nil {
		fields = append(fields, navevent.FieldTimestamp)
	}
	if m.from_task_index != nil {
		fields = append(fields, navevent.FieldFromTaskIndex)
	}
	if m.to_task_index != nil {
		fields = append(fields, navevent.FieldToTaskIndex)
	}
	if m.navigation_direction != nil {
		fields = append(fields, navevent.FieldNavigationDirection)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NavEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case navevent.FieldSessionID:
		return m.SessionID()
	case navevent.FieldTimestamp:
		return m.Timestamp()
	case navevent.FieldFromTaskIndex:
		return m.FromTaskIndex()
	case navevent.FieldToTaskIndex:
		return m.ToTaskIndex()
	case navevent.FieldNavigationDirection:
		return m.NavigationDirection()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NavEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case navevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case navevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case navevent.FieldFromTaskIndex:
		return m.OldFromTaskIndex(ctx)
	case navevent.FieldToTaskIndex:
		return m.OldToTaskIndex(ctx)
	case navevent.FieldNavigationDirection:
		return m.OldNavigationDirection(ctx)
	}
	return nil, fmt.Errorf("unknown NavEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NavEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case navevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case navevent.FieldTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case navevent.FieldFromTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromTaskIndex(v)
		return nil
	case navevent.FieldToTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToTaskIndex(v)
		return nil
	case navevent.FieldNavigationDirection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNavigationDirection(v)
		return nil
	}
	return fmt.Errorf("unknown NavEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NavEventMutation) AddedFields() []string {
	var fields []string
	if m.addfrom_task_index != nil {
		fields = append(fields, navevent.FieldFromTaskIndex)
	}
	if m.addto_task_index != nil {
		fields = append(fields, navevent.FieldToTaskIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NavEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case navevent.FieldFromTaskIndex:
		return m.AddedFromTaskIndex()
	case navevent.FieldToTaskIndex:
		return m.AddedToTaskIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NavEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case navevent.FieldFromTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFromTaskIndex(v)
		return nil
	case navevent.FieldToTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToTaskIndex(v)
		return nil
	}
	return fmt.Errorf("unknown NavEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NavEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(navevent.FieldNavigationDirection) {
		fields = append(fields, navevent.FieldNavigationDirection)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NavEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NavEventMutation) ClearField(name string) error {
	switch name {
	case navevent.FieldNavigationDirection:
		m.ClearNavigationDirection()
		return nil
	}
	return fmt.Errorf("unknown NavEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NavEventMutation) ResetField(name string) error {
	switch name {
	case navevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case navevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case navevent.FieldFromTaskIndex:
		m.ResetFromTaskIndex()
		return nil
	case navevent.FieldToTaskIndex:
		m.ResetToTaskIndex()
		return nil
	case navevent.FieldNavigationDirection:
		m.ResetNavigationDirection()
		return nil
	}
	return fmt.Errorf("unknown NavEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NavEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NavEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NavEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NavEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NavEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NavEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NavEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NavEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NavEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NavEvent edge %s", name)
}

// PanelEventMutation represents an operation that mutates the PanelEvent nodes in the graph.
type PanelEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	session_id            *string
	timestamp             *string
	current_task_index    *int
	addcurrent_task_index *int
	interaction_type      *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*PanelEvent, error)
	predicates            []predicate.PanelEvent
}

var _ ent.Mutation = (*PanelEventMutation)(nil)

// paneleventOption allows management of the mutation configuration using functional options.
type paneleventOption func(*PanelEventMutation)

// newPanelEventMutation creates new mutation for the PanelEvent entity.
func newPanelEventMutation(c config, op Op, opts ...paneleventOption) *PanelEventMutation {
	m := &PanelEventMutation{
		config:        c,
		op:            op,
		typ:           TypePanelEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPanelEventID sets the ID field of the mutation.
func withPanelEventID(id int) paneleventOption {
	return func(m *PanelEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PanelEvent
		)
		m.oldValue = func(ctx context.Context) (*PanelEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PanelEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPanelEvent sets the old PanelEvent of the mutation.
func withPanelEvent(node *PanelEvent) paneleventOption {
	return func(m *PanelEventMutation) {
		m.oldValue = func(context.Context) (*PanelEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PanelEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PanelEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PanelEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PanelEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PanelEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *PanelEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PanelEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PanelEvent entity.
// If the PanelEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PanelEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PanelEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PanelEventMutation) SetTimestamp(s string) {
	m.timestamp = &s
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PanelEventMutation) Timestamp() (r string, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PanelEvent entity.
// If the PanelEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PanelEventMutation) OldTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PanelEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetCurrentTaskIndex sets the "current_task_index" field.
func (m *PanelEventMutation) SetCurrentTaskIndex(i int) {
	m.current_task_index = &i
	m.addcurrent_task_index = nil
}

// CurrentTaskIndex returns the value of the "current_task_index" field in the mutation.
func (m *PanelEventMutation) CurrentTaskIndex() (r int, exists bool) {
	v := m.current_task_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentTaskIndex returns the old "current_task_index" field's value of the PanelEvent entity.
// If the PanelEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PanelEventMutation) OldCurrentTaskIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentTaskIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentTaskIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentTaskIndex: %w", err)
	}
	return oldValue.CurrentTaskIndex, nil
}

// AddCurrentTaskIndex adds i to the "current_task_index" field.
func (m *PanelEventMutation) AddCurrentTaskIndex(i int) {
	if m.addcurrent_task_index != nil {
		*m.addcurrent_task_index += i
	} else {
		m.addcurrent_task_index = &i
	}
}

// AddedCurrentTaskIndex returns the value that was added to the "current_task_index" field in this mutation.
func (m *PanelEventMutation) AddedCurrentTaskIndex() (r int, exists bool) {
	v := m.addcurrent_task_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentTaskIndex resets all changes to the "current_task_index" field.
func (m *PanelEventMutation) ResetCurrentTaskIndex() {
	m.current_task_index = nil
	m.addcurrent_task_index = nil
}

// SetInteractionType sets the "interaction_type" field.
func (m *PanelEventMutation) SetInteractionType(s string) {
	m.interaction_type = &s
}

// InteractionType returns the value of the "interaction_type" field in the mutation.
func (m *PanelEventMutation) InteractionType() (r string, exists bool) {
	v := m.interaction_type
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractionType returns the old "interaction_type" field's value of the PanelEvent entity.
// If the PanelEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PanelEventMutation) OldInteractionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractionType: %w", err)
	}
	return oldValue.InteractionType, nil
}

// ResetInteractionType resets all changes to the "interaction_type" field.
func (m *PanelEventMutation) ResetInteractionType() {
	m.interaction_type = nil
}

// Where appends a list predicates to the PanelEventMutation builder.
func (m *PanelEventMutation) Where(ps ...predicate.PanelEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PanelEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PanelEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PanelEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PanelEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PanelEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PanelEvent).
func (m *PanelEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PanelEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session_id != nil {
		fields = append(fields, panelevent.FieldSessionID)
	}
	if m.timestamp != nil {
		fields = append(fields, panelevent.FieldTimestamp)
	}
	if m.current_task_index != nil {
		fields = append(fields, panelevent.FieldCurrentTaskIndex)
	}
	if m.interaction_type != nil {
		fields = append(fields, panelevent.FieldInteractionType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PanelEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case panelevent.FieldSessionID:
		return m.SessionID()
	case panelevent.FieldTimestamp:
		return m.Timestamp()
	case panelevent.FieldCurrentTaskIndex:
		return m.CurrentTaskIndex()
	case panelevent.FieldInteractionType:
		return m.InteractionType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PanelEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case panelevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case panelevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case panelevent.FieldCurrentTaskIndex:
		return m.OldCurrentTaskIndex(ctx)
	case panelevent.FieldInteractionType:
		return m.OldInteractionType(ctx)
	}
	return nil, fmt.Errorf("unknown PanelEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PanelEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case panelevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case panelevent.FieldTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case panelevent.FieldCurrentTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentTaskIndex(v)
		return nil
	case panelevent.FieldInteractionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractionType(v)
		return nil
	}
	return fmt.Errorf("unknown PanelEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PanelEventMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_task_index != nil {
		fields = append(fields, panelevent.FieldCurrentTaskIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PanelEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case panelevent.FieldCurrentTaskIndex:
		return m.AddedCurrentTaskIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PanelEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case panelevent.FieldCurrentTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentTaskIndex(v)
		return nil
	}
	return fmt.Errorf("unknown PanelEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PanelEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PanelEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PanelEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PanelEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PanelEventMutation) ResetField(name string) error {
	switch name {
	case panelevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case panelevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case panelevent.FieldCurrentTaskIndex:
		m.ResetCurrentTaskIndex()
		return nil
	case panelevent.FieldInteractionType:
		m.ResetInteractionType()
		return nil
	}
	return fmt.Errorf("unknown PanelEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PanelEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PanelEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PanelEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PanelEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PanelEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PanelEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PanelEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PanelEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PanelEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PanelEvent edge %s", name)
}

// StrokeEventMutation represents an operation that mutates the StrokeEvent nodes in the graph.
type StrokeEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	session_id       *string
	timestamp        *string
	task             *string
	zone             *string
	stroke_number    *int
	addstroke_number *int
	points           *[]schema.StrokePoint
	appendpoints     []schema.StrokePoint
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*StrokeEvent, error)
	predicates       []predicate.StrokeEvent
}

var _ ent.Mutation = (*StrokeEventMutation)(nil)

// strokeeventOption allows management of the mutation configuration using functional options.
type strokeeventOption func(*StrokeEventMutation)

// newStrokeEventMutation creates new mutation for the StrokeEvent entity.
func newStrokeEventMutation(c config, op Op, opts ...strokeeventOption) *StrokeEventMutation {
	m := &StrokeEventMutation{
		config:        c,
		op:            op,
		typ:           TypeStrokeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStrokeEventID sets the ID field of the mutation.
func withStrokeEventID(id int) strokeeventOption {
	return func(m *StrokeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *StrokeEvent
		)
		m.oldValue = func(ctx context.Context) (*StrokeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StrokeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStrokeEvent sets the old StrokeEvent of the mutation.
func withStrokeEvent(node *StrokeEvent) strokeeventOption {
	return func(m *StrokeEventMutation) {
		m.oldValue = func(context.Context) (*StrokeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StrokeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StrokeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StrokeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StrokeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StrokeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *StrokeEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *StrokeEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the StrokeEvent entity.
// If the StrokeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrokeEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *StrokeEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *StrokeEventMutation) SetTimestamp(s string) {
	m.timestamp = &s
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *StrokeEventMutation) Timestamp() (r string, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the StrokeEvent entity.
// If the StrokeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrokeEventMutation) OldTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *StrokeEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetTask sets the "task" field.
func (m *StrokeEventMutation) SetTask(s string) {
	m.task = &s
}

// Task returns the value of the "task" field in the mutation.
func (m *StrokeEventMutation) Task() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTask returns the old "task" field's value of the StrokeEvent entity.
// If the StrokeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrokeEventMutation) OldTask(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTask: %w", err)
	}
	return oldValue.Task, nil
}

// ClearTask clears the value of the "task" field.
func (m *StrokeEventMutation) ClearTask() {
	m.task = nil
	m.clearedFields[strokeevent.FieldTask] = struct{}{}
}

// TaskCleared returns if the "task" field was cleared in this mutation.
func (m *StrokeEventMutation) TaskCleared() bool {
	_, ok := m.clearedFields[strokeevent.FieldTask]
	return ok
}

// ResetTask resets all changes to the "task" field.
func (m *StrokeEventMutation) ResetTask() {
	m.task = nil
	delete(m.clearedFields, strokeevent.FieldTask)
}

// SetZone sets the "zone" field.
func (m *StrokeEventMutation) SetZone(s string) {
	m.zone = &s
}

// Zone returns the value of the "zone" field in the mutation.
func (m *StrokeEventMutation) Zone() (r string, exists bool) {
	v := m.zone
	if v == nil {
		return
	}
	return *v, true
}

// OldZone returns the old "zone" field's value of the StrokeEvent entity.
// If the StrokeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrokeEventMutation) OldZone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZone: %w", err)
	}
	return oldValue.Zone, nil
}

// ClearZone clears the value of the "zone" field.
func (m *StrokeEventMutation) ClearZone() {
	m.zone = nil
	m.clearedFields[strokeevent.FieldZone] = struct{}{}
}

// ZoneCleared returns if the "zone" field was cleared in this mutation.
func (m *StrokeEventMutation) ZoneCleared() bool {
	_, ok := m.clearedFields[strokeevent.FieldZone]
	return ok
}

// ResetZone resets all changes to the "zone" field.
func (m *StrokeEventMutation) ResetZone() {
	m.zone = nil
	delete(m.clearedFields, strokeevent.FieldZone)
}

// SetStrokeNumber sets the "stroke_number" field.
func (m *StrokeEventMutation) SetStrokeNumber(i int) {
	m.stroke_number = &i
	m.addstroke_number = nil
}

// StrokeNumber returns the value of the "stroke_number" field in the mutation.
func (m *StrokeEventMutation) StrokeNumber() (r int, exists bool) {
	v := m.stroke_number
	if v == nil {
		return
	}
	return *v, true
}

// OldStrokeNumber returns the old "stroke_number" field's value of the StrokeEvent entity.
// If the StrokeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrokeEventMutation) OldStrokeNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrokeNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrokeNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrokeNumber: %w", err)
	}
	return oldValue.StrokeNumber, nil
}

// AddStrokeNumber adds i to the "stroke_number" field.
func (m *StrokeEventMutation) AddStrokeNumber(i int) {
	if m.addstroke_number != nil {
		*m.addstroke_number += i
	} else {
		m.addstroke_number = &i
	}
}

// AddedStrokeNumber returns the value that was added to the "stroke_number" field in this mutation.
func (m *StrokeEventMutation) AddedStrokeNumber() (r int, exists bool) {
	v := m.addstroke_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetStrokeNumber resets all changes to the "stroke_number" field.
func (m *StrokeEventMutation) ResetStrokeNumber() {
	m.stroke_number = nil
	m.addstroke_number = nil
}

// SetPoints sets the "points" field.
func (m *StrokeEventMutation) SetPoints(sp []schema.StrokePoint) {
	m.points = &sp
	m.appendpoints = nil
}

// Points returns the value of the "points" field in the mutation.
func (m *StrokeEventMutation) Points() (r []schema.StrokePoint, exists bool) {
	v := m.points
	if v == nil {
		return
	}
	return *v, true
}

// OldPoints returns the old "points" field's value of the StrokeEvent entity.
// If the StrokeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrokeEventMutation) OldPoints(ctx context.Context) (v []schema.StrokePoint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoints: %w", err)
	}
	return oldValue.Points, nil
}

// AppendPoints adds sp to the "points" field.
func (m *StrokeEventMutation) AppendPoints(sp []schema.StrokePoint) {
	m.appendpoints = append(m.appendpoints, sp...)
}

// AppendedPoints returns the list of values that were appended to the "points" field in this mutation.
func (m *StrokeEventMutation) AppendedPoints() ([]schema.StrokePoint, bool) {
	if len(m.appendpoints) == 0 {
		return nil, false
	}
	return m.appendpoints, true
}

// ClearPoints clears the value of the "points" field.
func (m *StrokeEventMutation) ClearPoints() {
	m.points = nil
	m.appendpoints = nil
	m.clearedFields[strokeevent.FieldPoints] = struct{}{}
}

// PointsCleared returns if the "points" field was cleared in this mutation.
func (m *StrokeEventMutation) PointsCleared() bool {
	_, ok := m.clearedFields[strokeevent.FieldPoints]
	return ok
}

// ResetPoints resets all changes to the "points" field.
func (m *StrokeEventMutation) ResetPoints() {
	m.points = nil
	m.appendpoints = nil
	delete(m.clearedFields, strokeevent.FieldPoints)
}

// Where appends a list predicates to the StrokeEventMutation builder.
func (m *StrokeEventMutation) Where(ps ...predicate.StrokeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StrokeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StrokeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StrokeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StrokeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StrokeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StrokeEvent).
func (m *StrokeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StrokeEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session_id != nil {
		fields = append(fields, strokeevent.FieldSessionID)
	}
	if m.timestamp != nil {
		fields = append(fields, strokeevent.FieldTimestamp)
	}
	if m.task != nil {
		fields = append(fields, strokeevent.FieldTask)
	}
	if m.zone != nil {
		fields = append(fields, strokeevent.FieldZone)
	}
	if m.stroke_number != nil {
		fields = append(fields, strokeevent.FieldStrokeNumber)
	}
	if m.points != nil {
		fields = append(fields, strokeevent.FieldPoints)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StrokeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case strokeevent.FieldSessionID:
		return m.SessionID()
	case strokeevent.FieldTimestamp:
		return m.Timestamp()
	case strokeevent.FieldTask:
		return m.Task()
	case strokeevent.FieldZone:
		return m.Zone()
	case strokeevent.FieldStrokeNumber:
		return m.StrokeNumber()
	case strokeevent.FieldPoints:
		return m.Points()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StrokeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case strokeevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case strokeevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case strokeevent.FieldTask:
		return m.OldTask(ctx)
	case strokeevent.FieldZone:
		return m.OldZone(ctx)
	case strokeevent.FieldStrokeNumber:
		return m.OldStrokeNumber(ctx)
	case strokeevent.FieldPoints:
		return m.OldPoints(ctx)
	}
	return nil, fmt.Errorf("unknown StrokeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StrokeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case strokeevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case strokeevent.FieldTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case strokeevent.FieldTask:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTask(v)
		return nil
	case strokeevent.FieldZone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZone(v)
		return nil
	case strokeevent.FieldStrokeNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrokeNumber(v)
		return nil
	case strokeevent.FieldPoints:
		v, ok := value.([]schema.StrokePoint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoints(v)
		return nil
	}
	return fmt.Errorf("unknown StrokeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StrokeEventMutation) AddedFields() []string {
	var fields []string
	if m.addstroke_number != nil {
		fields = append(fields, strokeevent.FieldStrokeNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StrokeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case strokeevent.FieldStrokeNumber:
		return m.AddedStrokeNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StrokeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case strokeevent.FieldStrokeNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStrokeNumber(v)
		return nil
	}
	return fmt.Errorf("unknown StrokeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StrokeEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(strokeevent.FieldTask) {
		fields = append(fields, strokeevent.FieldTask)
	}
	if m.FieldCleared(strokeevent.FieldZone) {
		fields = append(fields, strokeevent.FieldZone)
	}
	if m.FieldCleared(strokeevent.FieldPoints) {
		fields = append(fields, strokeevent.FieldPoints)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StrokeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StrokeEventMutation) ClearField(name string) error {
	switch name {
	case strokeevent.FieldTask:
		m.ClearTask()
		return nil
	case strokeevent.FieldZone:
		m.ClearZone()
		return nil
	case strokeevent.FieldPoints:
		m.ClearPoints()
		return nil
	}
	return fmt.Errorf("unknown StrokeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StrokeEventMutation) ResetField(name string) error {
	switch name {
	case strokeevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case strokeevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case strokeevent.FieldTask:
		m.ResetTask()
		return nil
	case strokeevent.FieldZone:
		m.ResetZone()
		return nil
	case strokeevent.FieldStrokeNumber:
		m.ResetStrokeNumber()
		return nil
	case strokeevent.FieldPoints:
		m.ResetPoints()
		return nil
	}
	return fmt.Errorf("unknown StrokeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StrokeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StrokeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StrokeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StrokeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StrokeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StrokeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StrokeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StrokeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StrokeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StrokeEvent edge %s", name)
}

// TaskProgressEventMutation represents an operation that mutates the TaskProgressEvent nodes in the graph.
type TaskProgressEventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	session_id           *string
	timestamp            *string
	task_index           *int
	addtask_index        *int
	completed            *bool
	attempts             *int
	addattempts          *int
	test_cases_passed    *int
	addtest_cases_passed *int
	total_test_cases     *int
	addtotal_test_cases  *int
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*TaskProgressEvent, error)
	predicates           []predicate.TaskProgressEvent
}

var _ ent.Mutation = (*TaskProgressEventMutation)(nil)

// taskprogresseventOption allows management of the mutation configuration using functional options.
type taskprogresseventOption func(*TaskProgressEventMutation)

// newTaskProgressEventMutation creates new mutation for the TaskProgressEvent entity.
func newTaskProgressEventMutation(c config, op Op, opts ...taskprogresseventOption) *TaskProgressEventMutation {
	m := &TaskProgressEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskProgressEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskProgressEventID sets the ID field of the mutation.
func withTaskProgressEventID(id int) taskprogresseventOption {
	return func(m *TaskProgressEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskProgressEvent
		)
		m.oldValue = func(ctx context.Context) (*TaskProgressEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskProgressEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskProgressEvent sets the old TaskProgressEvent of the mutation.
func withTaskProgressEvent(node *TaskProgressEvent) taskprogresseventOption {
	return func(m *TaskProgressEventMutation) {
		m.oldValue = func(context.Context) (*TaskProgressEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskProgressEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskProgressEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskProgressEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskProgressEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskProgressEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *TaskProgressEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TaskProgressEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TaskProgressEvent entity.
// If the TaskProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskProgressEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TaskProgressEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TaskProgressEventMutation) SetTimestamp(s string) {
	m.timestamp = &s
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TaskProgressEventMutation) Timestamp() (r string, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TaskProgressEvent entity.
// If the TaskProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskProgressEventMutation) OldTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TaskProgressEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetTaskIndex sets the "task_index" field.
func (m *TaskProgressEventMutation) SetTaskIndex(i int) {
	m.task_index = &i
	m.addtask_index = nil
}

// TaskIndex returns the value of the "task_index" field in the mutation.
func (m *TaskProgressEventMutation) TaskIndex() (r int, exists bool) {
	v := m.task_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskIndex returns the old "task_index" field's value of the TaskProgressEvent entity.
// If the TaskProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskProgressEventMutation) OldTaskIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskIndex: %w", err)
	}
	return oldValue.TaskIndex, nil
}

// AddTaskIndex adds i to the "task_index" field.
func (m *TaskProgressEventMutation) AddTaskIndex(i int) {
	if m.addtask_index != nil {
		*m.addtask_index += i
	} else {
		m.addtask_index = &i
	}
}

// AddedTaskIndex returns the value that was added to the "task_index" field in this mutation.
func (m *TaskProgressEventMutation) AddedTaskIndex() (r int, exists bool) {
	v := m.addtask_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskIndex resets all changes to the "task_index" field.
func (m *TaskProgressEventMutation) ResetTaskIndex() {
	m.task_index = nil
	m.addtask_index = nil
}

// SetCompleted sets the "completed" field.
func (m *TaskProgressEventMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *TaskProgressEventMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the TaskProgressEvent entity.
// If the TaskProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskProgressEventMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *TaskProgressEventMutation) ResetCompleted() {
	m.completed = nil
}

// SetAttempts sets the "attempts" field.
func (m *TaskProgressEventMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TaskProgressEventMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the TaskProgressEvent entity.
// If the TaskProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskProgressEventMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TaskProgressEventMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TaskProgressEventMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TaskProgressEventMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetTestCasesPassed sets the "test_cases_passed" field.
func (m *TaskProgressEventMutation) SetTestCasesPassed(i int) {
	m.test_cases_passed = &i
	m.addtest_cases_passed = nil
}

// TestCasesPassed returns the value of the "test_cases_passed" field in the mutation.
func (m *TaskProgressEventMutation) TestCasesPassed() (r int, exists bool) {
	v := m.test_cases_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldTestCasesPassed returns the old "test_cases_passed" field's value of the TaskProgressEvent entity.
// If the TaskProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskProgressEventMutation) OldTestCasesPassed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestCasesPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestCasesPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestCasesPassed: %w", err)
	}
	return oldValue.TestCasesPassed, nil
}

// AddTestCasesPassed adds i to the "test_cases_passed" field.
func (m *TaskProgressEventMutation) AddTestCasesPassed(i int) {
	if m.addtest_cases_passed != nil {
		*m.addtest_cases_passed += i
	} else {
		m.addtest_cases_passed = &i
	}
}

// AddedTestCasesPassed returns the value that was added to the "test_cases_passed" field in this mutation.
func (m *TaskProgressEventMutation) AddedTestCasesPassed() (r int, exists bool) {
	v := m.addtest_cases_passed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTestCasesPassed resets all changes to the "test_cases_passed" field.
func (m *TaskProgressEventMutation) ResetTestCasesPassed() {
	m.test_cases_passed = nil
	m.addtest_cases_passed = nil
}

// SetTotalTestCases sets the "total_test_cases" field.
func (m *TaskProgressEventMutation) SetTotalTestCases(i int) {
	m.total_test_cases = &i
	m.addtotal_test_cases = nil
}

// TotalTestCases returns the value of the "total_test_cases" field in the mutation.
func (m *TaskProgressEventMutation) TotalTestCases() (r int, exists bool) {
	v := m.total_test_cases
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTestCases returns the old "total_test_cases" field's value of the TaskProgressEvent entity.
// If the TaskProgressEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskProgressEventMutation) OldTotalTestCases(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTestCases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTestCases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTestCases: %w", err)
	}
	return oldValue.TotalTestCases, nil
}

// AddTotalTestCases adds i to the "total_test_cases" field.
func (m *TaskProgressEventMutation) AddTotalTestCases(i int) {
	if m.addtotal_test_cases != nil {
		*m.addtotal_test_cases += i
	} else {
		m.addtotal_test_cases = &i
	}
}

// AddedTotalTestCases returns the value that was added to the "total_test_cases" field in this mutation.
func (m *TaskProgressEventMutation) AddedTotalTestCases() (r int, exists bool) {
	v := m.addtotal_test_cases
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTestCases resets all changes to the "total_test_cases" field.
func (m *TaskProgressEventMutation) ResetTotalTestCases() {
	m.total_test_cases = nil
	m.addtotal_test_cases = nil
}

// Where appends a list predicates to the TaskProgressEventMutation builder.
func (m *TaskProgressEventMutation) Where(ps ...predicate.TaskProgressEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskProgressEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskProgressEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskProgressEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskProgressEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskProgressEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskProgressEvent).
func (m *TaskProgressEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskProgressEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session_id != nil {
		fields = append(fields, taskprogressevent.FieldSessionID)
	}
	if m.timestamp != nil {
		fields = append(fields, taskprogressevent.FieldTimestamp)
	}
	if m.task_index != nil {
		fields = append(fields, taskprogressevent.FieldTaskIndex)
	}
	if m.completed != nil {
		fields = append(fields, taskprogressevent.FieldCompleted)
	}
	if m.attempts != nil {
		fields = append(fields, taskprogressevent.FieldAttempts)
	}
	if m.test_cases_passed != nil {
		fields = append(fields, taskprogressevent.FieldTestCasesPassed)
	}
	if m.total_test_cases != nil {
		fields = append(fields, taskprogressevent.FieldTotalTestCases)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskProgressEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskprogressevent.FieldSessionID:
		return m.SessionID()
	case taskprogressevent.FieldTimestamp:
		return m.Timestamp()
	case taskprogressevent.FieldTaskIndex:
		return m.TaskIndex()
	case taskprogressevent.FieldCompleted:
		return m.Completed()
	case taskprogressevent.FieldAttempts:
		return m.Attempts()
	case taskprogressevent.FieldTestCasesPassed:
		return m.TestCasesPassed()
	case taskprogressevent.FieldTotalTestCases:
		return m.TotalTestCases()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskProgressEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskprogressevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case taskprogressevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case taskprogressevent.FieldTaskIndex:
		return m.OldTaskIndex(ctx)
	case taskprogressevent.FieldCompleted:
		return m.OldCompleted(ctx)
	case taskprogressevent.FieldAttempts:
		return m.OldAttempts(ctx)
	case taskprogressevent.FieldTestCasesPassed:
		return m.OldTestCasesPassed(ctx)
	case taskprogressevent.FieldTotalTestCases:
		return m.OldTotalTestCases(ctx)
	}
	return nil, fmt.Errorf("unknown TaskProgressEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskProgressEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskprogressevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case taskprogressevent.FieldTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case taskprogressevent.FieldTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskIndex(v)
		return nil
	case taskprogressevent.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case taskprogressevent.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case taskprogressevent.FieldTestCasesPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestCasesPassed(v)
		return nil
	case taskprogressevent.FieldTotalTestCases:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTestCases(v)
		return nil
	}
	return fmt.Errorf("unknown TaskProgressEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskProgressEventMutation) AddedFields() []string {
	var fields []string
	if m.addtask_index != nil {
		fields = append(fields, taskprogressevent.FieldTaskIndex)
	}
	if m.addattempts != nil {
		fields = append(fields, taskprogressevent.FieldAttempts)
	}
	if m.addtest_cases_passed != nil {
		fields = append(fields, taskprogressevent.FieldTestCasesPassed)
	}
	if m.addtotal_test_cases != nil {
		fields = append(fields, taskprogressevent.FieldTotalTestCases)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskProgressEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskprogressevent.FieldTaskIndex:
		return m.AddedTaskIndex()
	case taskprogressevent.FieldAttempts:
		return m.AddedAttempts()
	case taskprogressevent.FieldTestCasesPassed:
		return m.AddedTestCasesPassed()
	case taskprogressevent.FieldTotalTestCases:
		return m.AddedTotalTestCases()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskProgressEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskprogressevent.FieldTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskIndex(v)
		return nil
	case taskprogressevent.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case taskprogressevent.FieldTestCasesPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTestCasesPassed(v)
		return nil
	case taskprogressevent.FieldTotalTestCases:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTestCases(v)
		return nil
	}
	return fmt.Errorf("unknown TaskProgressEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskProgressEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskProgressEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskProgressEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TaskProgressEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskProgressEventMutation) ResetField(name string) error {
	switch name {
	case taskprogressevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case taskprogressevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case taskprogressevent.FieldTaskIndex:
		m.ResetTaskIndex()
		return nil
	case taskprogressevent.FieldCompleted:
		m.ResetCompleted()
		return nil
	case taskprogressevent.FieldAttempts:
		m.ResetAttempts()
		return nil
	case taskprogressevent.FieldTestCasesPassed:
		m.ResetTestCasesPassed()
		return nil
	case taskprogressevent.FieldTotalTestCases:
		m.ResetTotalTestCases()
		return nil
	}
	return fmt.Errorf("unknown TaskProgressEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskProgressEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskProgressEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskProgressEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskProgressEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskProgressEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskProgressEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskProgressEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskProgressEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskProgressEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskProgressEvent edge %s", name)
}

// TestCaseResultMutation represents an operation that mutates the TestCaseResult nodes in the graph.
type TestCaseResultMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	session_id         *string
	timestamp          *string
	task_index         *int
	addtask_index      *int
	method_id          *string
	test_case_index    *int
	addtest_case_index *int
	passed             *bool
	error_message      *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*TestCaseResult, error)
	predicates         []predicate.TestCaseResult
}

var _ ent.Mutation = (*TestCaseResultMutation)(nil)

// testcaseresultOption allows management of the mutation configuration using functional options.
type testcaseresultOption func(*TestCaseResultMutation)

// newTestCaseResultMutation creates new mutation for the TestCaseResult entity.
func newTestCaseResultMutation(c config, op Op, opts ...testcaseresultOption) *TestCaseResultMutation {
	m := &TestCaseResultMutation{
		config:        c,
		op:            op,
		typ:           TypeTestCaseResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestCaseResultID sets the ID field of the mutation.
func withTestCaseResultID(id int) testcaseresultOption {
	return func(m *TestCaseResultMutation) {
		var (
			err   error
			once  sync.Once
			value *TestCaseResult
		)
		m.oldValue = func(ctx context.Context) (*TestCaseResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestCaseResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestCaseResult sets the old TestCaseResult of the mutation.
func withTestCaseResult(node *TestCaseResult) testcaseresultOption {
	return func(m *TestCaseResultMutation) {
		m.oldValue = func(context.Context) (*TestCaseResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestCaseResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestCaseResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestCaseResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestCaseResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestCaseResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *TestCaseResultMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TestCaseResultMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TestCaseResult entity.
// If the TestCaseResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseResultMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TestCaseResultMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TestCaseResultMutation) SetTimestamp(s string) {
	m.timestamp = &s
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TestCaseResultMutation) Timestamp() (r string, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TestCaseResult entity.
// If the TestCaseResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseResultMutation) OldTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TestCaseResultMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetTaskIndex sets the "task_index" field.
func (m *TestCaseResultMutation) SetTaskIndex(i int) {
	m.task_index = &i
	m.addtask_index = nil
}

// TaskIndex returns the value of the "task_index" field in the mutation.
func (m *TestCaseResultMutation) TaskIndex() (r int, exists bool) {
	v := m.task_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskIndex returns the old "task_index" field's value of the TestCaseResult entity.
// If the TestCaseResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseResultMutation) OldTaskIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskIndex: %w", err)
	}
	return oldValue.TaskIndex, nil
}

// AddTaskIndex adds i to the "task_index" field.
func (m *TestCaseResultMutation) AddTaskIndex(i int) {
	if m.addtask_index != nil {
		*m.addtask_index += i
	} else {
		m.addtask_index = &i
	}
}

// AddedTaskIndex returns the value that was added to the "task_index" field in this mutation.
func (m *TestCaseResultMutation) AddedTaskIndex() (r int, exists bool) {
	v := m.addtask_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskIndex resets all changes to the "task_index" field.
func (m *TestCaseResultMutation) ResetTaskIndex() {
	m.task_index = nil
	m.addtask_index = nil
}

// SetMethodID sets the "method_id" field.
func (m *TestCaseResultMutation) SetMethodID(s string) {
	m.method_id = &s
}

// MethodID returns the value of the "method_id" field in the mutation.
func (m *TestCaseResultMutation) MethodID() (r string, exists bool) {
	v := m.method_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMethodID returns the old "method_id" field's value of the TestCaseResult entity.
// If the TestCaseResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseResultMutation) OldMethodID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethodID: %w", err)
	}
	return oldValue.MethodID, nil
}

// ClearMethodID clears the value of the "method_id" field.
func (m *TestCaseResultMutation) ClearMethodID() {
	m.method_id = nil
	m.clearedFields[testcaseresult.FieldMethodID] = struct{}{}
}

// MethodIDCleared returns if the "method_id" field was cleared in this mutation.
func (m *TestCaseResultMutation) MethodIDCleared() bool {
	_, ok := m.clearedFields[testcaseresult.FieldMethodID]
	return ok
}

// ResetMethodID resets all changes to the "method_id" field.
func (m *TestCaseResultMutation) ResetMethodID() {
	m.method_id = nil
	delete(m.clearedFields, testcaseresult.FieldMethodID)
}

// SetTestCaseIndex sets the "test_case_index" field.
func (m *TestCaseResultMutation) SetTestCaseIndex(i int) {
	m.test_case_index = &i
	m.addtest_case_index = nil
}

// TestCaseIndex returns the value of the "test_case_index" field in the mutation.
func (m *TestCaseResultMutation) TestCaseIndex() (r int, exists bool) {
	v := m.test_case_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTestCaseIndex returns the old "test_case_index" field's value of the TestCaseResult entity.
// If the TestCaseResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseResultMutation) OldTestCaseIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestCaseIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestCaseIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestCaseIndex: %w", err)
	}
	return oldValue.TestCaseIndex, nil
}

// AddTestCaseIndex adds i to the "test_case_index" field.
func (m *TestCaseResultMutation) AddTestCaseIndex(i int) {
	if m.addtest_case_index != nil {
		*m.addtest_case_index += i
	} else {
		m.addtest_case_index = &i
	}
}

// AddedTestCaseIndex returns the value that was added to the "test_case_index" field in this mutation.
func (m *TestCaseResultMutation) AddedTestCaseIndex() (r int, exists bool) {
	v := m.addtest_case_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTestCaseIndex resets all changes to the "test_case_index" field.
func (m *TestCaseResultMutation) ResetTestCaseIndex() {
	m.test_case_index = nil
	m.addtest_case_index = nil
}

// SetPassed sets the "passed" field.
func (m *TestCaseResultMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *TestCaseResultMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the TestCaseResult entity.
// If the TestCaseResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseResultMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *TestCaseResultMutation) ResetPassed() {
	m.passed = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *TestCaseResultMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TestCaseResultMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TestCaseResult entity.
// If the TestCaseResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseResultMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TestCaseResultMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[testcaseresult.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TestCaseResultMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[testcaseresult.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TestCaseResultMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, testcaseresult.FieldErrorMessage)
}

// Where appends a list predicates to the TestCaseResultMutation builder.
func (m *TestCaseResultMutation) Where(ps ...predicate.TestCaseResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestCaseResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestCaseResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestCaseResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestCaseResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestCaseResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestCaseResult).
func (m *TestCaseResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestCaseResultMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session_id != nil {
		fields = append(fields, testcaseresult.FieldSessionID)
	}
	if m.timestamp != nil {
		fields = append(fields, testcaseresult.FieldTimestamp)
	}
	if m.task_index != nil {
		fields = append(fields, testcaseresult.FieldTaskIndex)
	}
	if m.method_id != nil {
		fields = append(fields, testcaseresult.FieldMethodID)
	}
	if m.test_case_index != nil {
		fields = append(fields, testcaseresult.FieldTestCaseIndex)
	}
	if m.passed != nil {
		fields = append(fields, testcaseresult.FieldPassed)
	}
	if m.error_message != nil {
		fields = append(fields, testcaseresult.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestCaseResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testcaseresult.FieldSessionID:
		return m.SessionID()
	case testcaseresult.FieldTimestamp:
		return m.Timestamp()
	case testcaseresult.FieldTaskIndex:
		return m.TaskIndex()
	case testcaseresult.FieldMethodID:
		return m.MethodID()
	case testcaseresult.FieldTestCaseIndex:
		return m.TestCaseIndex()
	case testcaseresult.FieldPassed:
		return m.Passed()
	case testcaseresult.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestCaseResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testcaseresult.FieldSessionID:
		return m.OldSessionID(ctx)
	case testcaseresult.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case testcaseresult.FieldTaskIndex:
		return m.OldTaskIndex(ctx)
	case testcaseresult.FieldMethodID:
		return m.OldMethodID(ctx)
	case testcaseresult.FieldTestCaseIndex:
		return m.OldTestCaseIndex(ctx)
	case testcaseresult.FieldPassed:
		return m.OldPassed(ctx)
	case testcaseresult.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown TestCaseResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestCaseResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testcaseresult.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case testcaseresult.FieldTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case testcaseresult.FieldTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskIndex(v)
		return nil
	case testcaseresult.FieldMethodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethodID(v)
		return nil
	case testcaseresult.FieldTestCaseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestCaseIndex(v)
		return nil
	case testcaseresult.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case testcaseresult.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown TestCaseResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestCaseResultMutation) AddedFields() []string {
	var fields []string
	if m.addtask_index != nil {
		fields = append(fields, testcaseresult.FieldTaskIndex)
	}
	if m.addtest_case_index != nil {
		fields = append(fields, testcaseresult.FieldTestCaseIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestCaseResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case testcaseresult.FieldTaskIndex:
		return m.AddedTaskIndex()
	case testcaseresult.FieldTestCaseIndex:
		return m.AddedTestCaseIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestCaseResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case testcaseresult.FieldTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskIndex(v)
		return nil
	case testcaseresult.FieldTestCaseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTestCaseIndex(v)
		return nil
	}
	return fmt.Errorf("unknown TestCaseResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestCaseResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(testcaseresult.FieldMethodID) {
		fields = append(fields, testcaseresult.FieldMethodID)
	}
	if m.FieldCleared(testcaseresult.FieldErrorMessage) {
		fields = append(fields, testcaseresult.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestCaseResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestCaseResultMutation) ClearField(name string) error {
	switch name {
	case testcaseresult.FieldMethodID:
		m.ClearMethodID()
		return nil
	case testcaseresult.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown TestCaseResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestCaseResultMutation) ResetField(name string) error {
	switch name {
	case testcaseresult.FieldSessionID:
		m.ResetSessionID()
		return nil
	case testcaseresult.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case testcaseresult.FieldTaskIndex:
		m.ResetTaskIndex()
		return nil
	case testcaseresult.FieldMethodID:
		m.ResetMethodID()
		return nil
	case testcaseresult.FieldTestCaseIndex:
		m.ResetTestCaseIndex()
		return nil
	case testcaseresult.FieldPassed:
		m.ResetPassed()
		return nil
	case testcaseresult.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown TestCaseResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestCaseResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestCaseResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestCaseResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestCaseResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestCaseResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestCaseResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestCaseResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TestCaseResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestCaseResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TestCaseResult edge %s", name)
}

// TutorConversationMutation represents an operation that mutates the TutorConversation nodes in the graph.
type TutorConversationMutation struct {
	config
	op              Op
	typ             string
	id              *int
	session_id      *string
	conversation_id *string
	start_time      *string
	end_time        *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*TutorConversation, error)
	predicates      []predicate.TutorConversation
}

var _ ent.Mutation = (*TutorConversationMutation)(nil)

// tutorconversationOption allows management of the mutation configuration using functional options.
type tutorconversationOption func(*TutorConversationMutation)

// newTutorConversationMutation creates new mutation for the TutorConversation entity.
func newTutorConversationMutation(c config, op Op, opts ...tutorconversationOption) *TutorConversationMutation {
	m := &TutorConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeTutorConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTutorConversationID sets the ID field of the mutation.
func withTutorConversationID(id int) tutorconversationOption {
	return func(m *TutorConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *TutorConversation
		)
		m.oldValue = func(ctx context.Context) (*TutorConversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TutorConversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTutorConversation sets the old TutorConversation of the mutation.
func withTutorConversation(node *TutorConversation) tutorconversationOption {
	return func(m *TutorConversationMutation) {
		m.oldValue = func(context.Context) (*TutorConversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TutorConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TutorConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TutorConversationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TutorConversationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TutorConversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *TutorConversationMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TutorConversationMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TutorConversation entity.
// If the TutorConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorConversationMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TutorConversationMutation) ResetSessionID() {
	m.session_id = nil
}

// SetConversationID sets the "conversation_id" field.
func (m *TutorConversationMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *TutorConversationMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the TutorConversation entity.
// If the TutorConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorConversationMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *TutorConversationMutation) ResetConversationID() {
	m.conversation_id = nil
}

// SetStartTime sets the "start_time" field.
func (m *TutorConversationMutation) SetStartTime(s string) {
	m.start_time = &s
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *TutorConversationMutation) StartTime() (r string, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the TutorConversation entity.
// If the TutorConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorConversationMutation) OldStartTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *TutorConversationMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *TutorConversationMutation) SetEndTime(s string) {
	m.end_time = &s
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *TutorConversationMutation) EndTime() (r string, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the TutorConversation entity.
// If the TutorConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorConversationMutation) OldEndTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *TutorConversationMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[tutorconversation.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *TutorConversationMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[tutorconversation.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *TutorConversationMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, tutorconversation.FieldEndTime)
}

// Where appends a list predicates to the TutorConversationMutation builder.
func (m *TutorConversationMutation) Where(ps ...predicate.TutorConversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TutorConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TutorConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TutorConversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TutorConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TutorConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TutorConversation).
func (m *TutorConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TutorConversationMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session_id != nil {
		fields = append(fields, tutorconversation.FieldSessionID)
	}
	if m.conversation_id != nil {
		fields = append(fields, tutorconversation.FieldConversationID)
	}
	if m.start_time != nil {
		fields = append(fields, tutorconversation.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, tutorconversation.FieldEndTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TutorConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tutorconversation.FieldSessionID:
		return m.SessionID()
	case tutorconversation.FieldConversationID:
		return m.ConversationID()
	case tutorconversation.FieldStartTime:
		return m.StartTime()
	case tutorconversation.FieldEndTime:
		return m.EndTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TutorConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tutorconversation.FieldSessionID:
		return m.OldSessionID(ctx)
	case tutorconversation.FieldConversationID:
		return m.OldConversationID(ctx)
	case tutorconversation.FieldStartTime:
		return m.OldStartTime(ctx)
	case tutorconversation.FieldEndTime:
		return m.OldEndTime(ctx)
	}
	return nil, fmt.Errorf("unknown TutorConversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TutorConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tutorconversation.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case tutorconversation.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case tutorconversation.FieldStartTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case tutorconversation.FieldEndTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	}
	return fmt.Errorf("unknown TutorConversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TutorConversationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TutorConversationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TutorConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TutorConversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TutorConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tutorconversation.FieldEndTime) {
		fields = append(fields, tutorconversation.FieldEndTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TutorConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TutorConversationMutation) ClearField(name string) error {
	switch name {
	case tutorconversation.FieldEndTime:
		m.ClearEndTime()
		return nil
	}
	return fmt.Errorf("unknown TutorConversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TutorConversationMutation) ResetField(name string) error {
	switch name {
	case tutorconversation.FieldSessionID:
		m.ResetSessionID()
		return nil
	case tutorconversation.FieldConversationID:
		m.ResetConversationID()
		return nil
	case tutorconversation.FieldStartTime:
		m.ResetStartTime()
		return nil
	case tutorconversation.FieldEndTime:
		m.ResetEndTime()
		return nil
	}
	return fmt.Errorf("unknown TutorConversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TutorConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TutorConversationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TutorConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TutorConversationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TutorConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TutorConversationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TutorConversationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TutorConversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TutorConversationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TutorConversation edge %s", name)
}

// TutorHighlightMutation represents an operation that mutates the TutorHighlight nodes in the graph.
type TutorHighlightMutation struct {
	config
	op             Op
	typ            string
	id             *int
	session_id     *string
	timestamp      *string
	line_number    *int
	addline_number *int
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*TutorHighlight, error)
	predicates     []predicate.TutorHighlight
}

var _ ent.Mutation = (*TutorHighlightMutation)(nil)

// tutorhighlightOption allows management of the mutation configuration using functional options.
type tutorhighlightOption func(*TutorHighlightMutation)

// newTutorHighlightMutation creates new mutation for the TutorHighlight entity.
func newTutorHighlightMutation(c config, op Op, opts ...tutorhighlightOption) *TutorHighlightMutation {
	m := &TutorHighlightMutation{
		config:        c,
		op:            op,
		typ:           TypeTutorHighlight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTutorHighlightID sets the ID field of the mutation.
func withTutorHighlightID(id int) tutorhighlightOption {
	return func(m *TutorHighlightMutation) {
		var (
			err   error
			once  sync.Once
			value *TutorHighlight
		)
		m.oldValue = func(ctx context.Context) (*TutorHighlight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TutorHighlight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTutorHighlight sets the old TutorHighlight of the mutation.
func withTutorHighlight(node *TutorHighlight) tutorhighlightOption {
	return func(m *TutorHighlightMutation) {
		m.oldValue = func(context.Context) (*TutorHighlight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TutorHighlightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TutorHighlightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TutorHighlightMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TutorHighlightMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TutorHighlight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *TutorHighlightMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TutorHighlightMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TutorHighlight entity.
// If the TutorHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorHighlightMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TutorHighlightMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TutorHighlightMutation) SetTimestamp(s string) {
	m.timestamp = &s
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TutorHighlightMutation) Timestamp() (r string, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TutorHighlight entity.
// If the TutorHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorHighlightMutation) OldTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TutorHighlightMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetLineNumber sets the "line_number" field.
func (m *TutorHighlightMutation) SetLineNumber(i int) {
	m.line_number = &i
	m.addline_number = nil
}

// LineNumber returns the value of the "line_number" field in the mutation.
func (m *TutorHighlightMutation) LineNumber() (r int, exists bool) {
	v := m.line_number
	if v == nil {
		return
	}
	return *v, true
}

// OldLineNumber returns the old "line_number" field's value of the TutorHighlight entity.
// If the TutorHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorHighlightMutation) OldLineNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineNumber: %w", err)
	}
	return oldValue.LineNumber, nil
}

// AddLineNumber adds i to the "line_number" field.
func (m *TutorHighlightMutation) AddLineNumber(i int) {
	if m.addline_number != nil {
		*m.addline_number += i
	} else {
		m.addline_number = &i
	}
}

// AddedLineNumber returns the value that was added to the "line_number" field in this mutation.
func (m *TutorHighlightMutation) AddedLineNumber() (r int, exists bool) {
	v := m.addline_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetLineNumber resets all changes to the "line_number" field.
func (m *TutorHighlightMutation) ResetLineNumber() {
	m.line_number = nil
	m.addline_number = nil
}

// Where appends a list predicates to the TutorHighlightMutation builder.
func (m *TutorHighlightMutation) Where(ps ...predicate.TutorHighlight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TutorHighlightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TutorHighlightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TutorHighlight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TutorHighlightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TutorHighlightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TutorHighlight).
func (m *TutorHighlightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TutorHighlightMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.session_id != nil {
		fields = append(fields, tutorhighlight.FieldSessionID)
	}
	if m.timestamp != nil {
		fields = append(fields, tutorhighlight.FieldTimestamp)
	}
	if m.line_number != nil {
		fields = append(fields, tutorhighlight.FieldLineNumber)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TutorHighlightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tutorhighlight.FieldSessionID:
		return m.SessionID()
	case tutorhighlight.FieldTimestamp:
		return m.Timestamp()
	case tutorhighlight.FieldLineNumber:
		return m.LineNumber()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TutorHighlightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tutorhighlight.FieldSessionID:
		return m.OldSessionID(ctx)
	case tutorhighlight.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case tutorhighlight.FieldLineNumber:
		return m.OldLineNumber(ctx)
	}
	return nil, fmt.Errorf("unknown TutorHighlight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TutorHighlightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tutorhighlight.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case tutorhighlight.FieldTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case tutorhighlight.FieldLineNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineNumber(v)
		return nil
	}
	return fmt.Errorf("unknown TutorHighlight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TutorHighlightMutation) AddedFields() []string {
	var fields []string
	if m.addline_number != nil {
		fields = append(fields, tutorhighlight.FieldLineNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TutorHighlightMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tutorhighlight.FieldLineNumber:
		return m.AddedLineNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TutorHighlightMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tutorhighlight.FieldLineNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLineNumber(v)
		return nil
	}
	return fmt.Errorf("unknown TutorHighlight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TutorHighlightMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TutorHighlightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TutorHighlightMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TutorHighlight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TutorHighlightMutation) ResetField(name string) error {
	switch name {
	case tutorhighlight.FieldSessionID:
		m.ResetSessionID()
		return nil
	case tutorhighlight.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case tutorhighlight.FieldLineNumber:
		m.ResetLineNumber()
		return nil
	}
	return fmt.Errorf("unknown TutorHighlight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TutorHighlightMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TutorHighlightMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TutorHighlightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TutorHighlightMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TutorHighlightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TutorHighlightMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TutorHighlightMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TutorHighlight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TutorHighlightMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TutorHighlight edge %s", name)
}

// UserHighlightMutation represents an operation that mutates the UserHighlight nodes in the graph.
type UserHighlightMutation struct {
	config
	op               Op
	typ              string
	id               *int
	session_id       *string
	timestamp        *string
	highlighted_text *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*UserHighlight, error)
	predicates       []predicate.UserHighlight
}

var _ ent.Mutation = (*UserHighlightMutation)(nil)

// userhighlightOption allows management of the mutation configuration using functional options.
type userhighlightOption func(*UserHighlightMutation)

// newUserHighlightMutation creates new mutation for the UserHighlight entity.
func newUserHighlightMutation(c config, op Op, opts ...userhighlightOption) *UserHighlightMutation {
	m := &UserHighlightMutation{
		config:        c,
		op:            op,
		typ:           TypeUserHighlight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserHighlightID sets the ID field of the mutation.
func withUserHighlightID(id int) userhighlightOption {
	return func(m *UserHighlightMutation) {
		var (
			err   error
			once  sync.Once
			value *UserHighlight
		)
		m.oldValue = func(ctx context.Context) (*UserHighlight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserHighlight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserHighlight sets the old UserHighlight of the mutation.
func withUserHighlight(node *UserHighlight) userhighlightOption {
	return func(m *UserHighlightMutation) {
		m.oldValue = func(context.Context) (*UserHighlight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserHighlightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserHighlightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserHighlightMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserHighlightMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserHighlight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *UserHighlightMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *UserHighlightMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the UserHighlight entity.
// If the UserHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserHighlightMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *UserHighlightMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *UserHighlightMutation) SetTimestamp(s string) {
	m.timestamp = &s
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *UserHighlightMutation) Timestamp() (r string, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the UserHighlight entity.
// If the UserHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserHighlightMutation) OldTimestamp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *UserHighlightMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetHighlightedText sets the "highlighted_text" field.
func (m *UserHighlightMutation) SetHighlightedText(s string) {
	m.highlighted_text = &s
}

// HighlightedText returns the value of the "highlighted_text" field in the mutation.
func (m *UserHighlightMutation) HighlightedText() (r string, exists bool) {
	v := m.highlighted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldHighlightedText returns the old "highlighted_text" field's value of the UserHighlight entity.
// If the UserHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserHighlightMutation) OldHighlightedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHighlightedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHighlightedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHighlightedText: %w", err)
	}
	return oldValue.HighlightedText, nil
}

// ResetHighlightedText resets all changes to the "highlighted_text" field.
func (m *UserHighlightMutation) ResetHighlightedText() {
	m.highlighted_text = nil
}

// Where appends a list predicates to the UserHighlightMutation builder.
func (m *UserHighlightMutation) Where(ps ...predicate.UserHighlight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserHighlightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserHighlightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserHighlight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserHighlightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserHighlightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserHighlight).
func (m *UserHighlightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserHighlightMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.session_id != nil {
		fields = append(fields, userhighlight.FieldSessionID)
	}
	if m.timestamp != nil {
		fields = append(fields, userhighlight.FieldTimestamp)
	}
	if m.highlighted_text != nil {
		fields = append(fields, userhighlight.FieldHighlightedText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserHighlightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userhighlight.FieldSessionID:
		return m.SessionID()
	case userhighlight.FieldTimestamp:
		return m.Timestamp()
	case userhighlight.FieldHighlightedText:
		return m.HighlightedText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserHighlightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userhighlight.FieldSessionID:
		return m.OldSessionID(ctx)
	case userhighlight.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case userhighlight.FieldHighlightedText:
		return m.OldHighlightedText(ctx)
	}
	return nil, fmt.Errorf("unknown UserHighlight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserHighlightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userhighlight.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case userhighlight.FieldTimestamp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case userhighlight.FieldHighlightedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHighlightedText(v)
		return nil
	}
	return fmt.Errorf("unknown UserHighlight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserHighlightMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserHighlightMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserHighlightMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserHighlight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserHighlightMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserHighlightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserHighlightMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserHighlight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserHighlightMutation) ResetField(name string) error {
	switch name {
	case userhighlight.FieldSessionID:
		m.ResetSessionID()
		return nil
	case userhighlight.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case userhighlight.FieldHighlightedText:
		m.ResetHighlightedText()
		return nil
	}
	return fmt.Errorf("unknown UserHighlight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserHighlightMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserHighlightMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserHighlightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserHighlightMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserHighlightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserHighlightMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserHighlightMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserHighlight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserHighlightMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserHighlight edge %s", name)
}
