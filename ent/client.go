// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/replayz/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/replayz/ent/chatmessage"
	"github.com/abhisek/replayz/ent/codeerrorevent"
	"github.com/abhisek/replayz/ent/codesnapshot"
	"github.com/abhisek/replayz/ent/codingtask"
	"github.com/abhisek/replayz/ent/learningsession"
	"github.com/abhisek/replayz/ent/navevent"
	"github.com/abhisek/replayz/ent/panelevent"
	"github.com/abhisek/replayz/ent/strokeevent"
	"github.com/abhisek/replayz/ent/taskprogressevent"
	"github.com/abhisek/replayz/ent/testcaseresult"
	"github.com/abhisek/replayz/ent/tutorconversation"
	"github.com/abhisek/replayz/ent/tutorhighlight"
	"github.com/abhisek/replayz/ent/userhighlight"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChatMessage is the client for interacting with the ChatMessage builders.
	ChatMessage *ChatMessageClient
	// CodeErrorEvent is the client for interacting with the CodeErrorEvent builders.
	CodeErrorEvent *CodeErrorEventClient
	// CodeSnapshot is the client for interacting with the CodeSnapshot builders.
	CodeSnapshot *CodeSnapshotClient
	// CodingTask is the client for interacting with the CodingTask builders.
	CodingTask *CodingTaskClient
	// LearningSession is the client for interacting with the LearningSession builders.
	LearningSession *LearningSessionClient
	// NavEvent is the client for interacting with the NavEvent builders.
	NavEvent *NavEventClient
	// PanelEvent is the client for interacting with the PanelEvent builders.
	PanelEvent *PanelEventClient
	// StrokeEvent is the client for interacting with the StrokeEvent builders.
	StrokeEvent *StrokeEventClient
	// TaskProgressEvent is the client for interacting with the TaskProgressEvent builders.
	TaskProgressEvent *TaskProgressEventClient
	// TestCaseResult is the client for interacting with the TestCaseResult builders.
	TestCaseResult *TestCaseResultClient
	// TutorConversation is the client for interacting with the TutorConversation builders.
	TutorConversation *TutorConversationClient
	// TutorHighlight is the client for interacting with the TutorHighlight builders.
	TutorHighlight *TutorHighlightClient
	// UserHighlight is the client for interacting with the UserHighlight builders.
	UserHighlight *UserHighlightClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChatMessage = NewChatMessageClient(c.config)
	c.CodeErrorEvent = NewCodeErrorEventClient(c.config)
	c.CodeSnapshot = NewCodeSnapshotClient(c.config)
	c.CodingTask = NewCodingTaskClient(c.config)
	c.LearningSession = NewLearningSessionClient(c.config)
	c.NavEvent = NewNavEventClient(c.config)
	c.PanelEvent = NewPanelEventClient(c.config)
	c.StrokeEvent = NewStrokeEventClient(c.config)
	c.TaskProgressEvent = NewTaskProgressEventClient(c.config)
	c.TestCaseResult = NewTestCaseResultClient(c.config)
	c.TutorConversation = NewTutorConversationClient(c.config)
	c.TutorHighlight = NewTutorHighlightClient(c.config)
	c.UserHighlight = NewUserHighlightClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		ChatMessage:       NewChatMessageClient(cfg),
		CodeErrorEvent:    NewCodeErrorEventClient(cfg),
		CodeSnapshot:      NewCodeSnapshotClient(cfg),
		CodingTask:        NewCodingTaskClient(cfg),
		LearningSession:   NewLearningSessionClient(cfg),
		NavEvent:          NewNavEventClient(cfg),
		PanelEvent:        NewPanelEventClient(cfg),
		StrokeEvent:       NewStrokeEventClient(cfg),
		TaskProgressEvent: NewTaskProgressEventClient(cfg),
		TestCaseResult:    NewTestCaseResultClient(cfg),
		TutorConversation: NewTutorConversationClient(cfg),
		TutorHighlight:    NewTutorHighlightClient(cfg),
		UserHighlight:     NewUserHighlightClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		ChatMessage:       NewChatMessageClient(cfg),
		CodeErrorEvent:    NewCodeErrorEventClient(cfg),
		CodeSnapshot:      NewCodeSnapshotClient(cfg),
		CodingTask:        NewCodingTaskClient(cfg),
		LearningSession:   NewLearningSessionClient(cfg),
		NavEvent:          NewNavEventClient(cfg),
		PanelEvent:        NewPanelEventClient(cfg),
		StrokeEvent:       NewStrokeEventClient(cfg),
		TaskProgressEvent: NewTaskProgressEventClient(cfg),
		TestCaseResult:    NewTestCaseResultClient(cfg),
		TutorConversation: NewTutorConversationClient(cfg),
		TutorHighlight:    NewTutorHighlightClient(cfg),
		UserHighlight:     NewUserHighlightClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChatMessage.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ChatMessage, c.CodeErrorEvent, c.CodeSnapshot, c.CodingTask,
		c.LearningSession, c.NavEvent, c.PanelEvent, c.StrokeEvent,
		c.TaskProgressEvent, c.TestCaseResult, c.TutorConversation, c.TutorHighlight,
		c.UserHighlight,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ChatMessage, c.CodeErrorEvent, c.CodeSnapshot, c.CodingTask,
		c.LearningSession, c.NavEvent, c.PanelEvent, c.StrokeEvent,
		c.TaskProgressEvent, c.TestCaseResult, c.TutorConversation, c.TutorHighlight,
		c.UserHighlight,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChatMessageMutation:
		return c.ChatMessage.mutate(ctx, m)
	case *CodeErrorEventMutation:
		return c.CodeErrorEvent.mutate(ctx, m)
	case *CodeSnapshotMutation:
		return c.CodeSnapshot.mutate(ctx, m)
	case *CodingTaskMutation:
		return c.CodingTask.mutate(ctx, m)
	case *LearningSessionMutation:
		return c.LearningSession.mutate(ctx, m)
	case *NavEventMutation:
		return c.NavEvent.mutate(ctx, m)
	case *PanelEventMutation:
		return c.PanelEvent.mutate(ctx, m)
	case *StrokeEventMutation:
		return c.StrokeEvent.mutate(ctx, m)
	case *TaskProgressEventMutation:
		return c.TaskProgressEvent.mutate(ctx, m)
	case *TestCaseResultMutation:
		return c.TestCaseResult.mutate(ctx, m)
	case *TutorConversationMutation:
		return c.TutorConversation.mutate(ctx, m)
	case *TutorHighlightMutation:
		return c.TutorHighlight.mutate(ctx, m)
	case *UserHighlightMutation:
		return c.UserHighlight.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChatMessageClient is a client for the ChatMessage schema.
type ChatMessageClient struct {
	config
}

// NewChatMessageClient returns a client for the ChatMessage from the given config.
func NewChatMessageClient(c config) *ChatMessageClient {
	return &ChatMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatmessage.Hooks(f(g(h())))`.
func (c *ChatMessageClient) Use(hooks ...Hook) {
	c.hooks.ChatMessage = append(c.hooks.ChatMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatmessage.Intercept(f(g(h())))`.
func (c *ChatMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatMessage = append(c.inters.ChatMessage, interceptors...)
}

// Create returns a builder for creating a ChatMessage entity.
func (c *ChatMessageClient) Create() *ChatMessageCreate {
	mutation := newChatMessageMutation(c.config, OpCreate)
	return &ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatMessage entities.
func (c *ChatMessageClient) CreateBulk(builders ...*ChatMessageCreate) *ChatMessageCreateBulk {
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatMessageClient) MapCreateBulk(slice any, setFunc func(*ChatMessageCreate, int)) *ChatMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatMessageCreateBulk{err: fmt.Errorf("calling to ChatMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatMessage.
func (c *ChatMessageClient) Update() *ChatMessageUpdate {
	mutation := newChatMessageMutation(c.config, OpUpdate)
	return &ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatMessageClient) UpdateOne(_m *ChatMessage) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessage(_m))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatMessageClient) UpdateOneID(id int) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessageID(id))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatMessage.
func (c *ChatMessageClient) Delete() *ChatMessageDelete {
	mutation := newChatMessageMutation(c.config, OpDelete)
	return &ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatMessageClient) DeleteOne(_m *ChatMessage) *ChatMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatMessageClient) DeleteOneID(id int) *ChatMessageDeleteOne {
	builder := c.Delete().Where(chatmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatMessageDeleteOne{builder}
}

// Query returns a query builder for ChatMessage.
func (c *ChatMessageClient) Query() *ChatMessageQuery {
	return &ChatMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatMessage entity by its id.
func (c *ChatMessageClient) Get(ctx context.Context, id int) (*ChatMessage, error) {
	return c.Query().Where(chatmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatMessageClient) GetX(ctx context.Context, id int) *ChatMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChatMessageClient) Hooks() []Hook {
	return c.hooks.ChatMessage
}

// Interceptors returns the client interceptors.
func (c *ChatMessageClient) Interceptors() []Interceptor {
	return c.inters.ChatMessage
}

func (c *ChatMessageClient) mutate(ctx context.Context, m *ChatMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatMessage mutation op: %q", m.Op())
	}
}

// CodeErrorEventClient is a client for the CodeErrorEvent schema.
type CodeErrorEventClient struct {
	config
}

// NewCodeErrorEventClient returns a client for the CodeErrorEvent from the given config.
func NewCodeErrorEventClient(c config) *CodeErrorEventClient {
	return &CodeErrorEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `codeerrorevent.Hooks(f(g(h())))`.
func (c *CodeErrorEventClient) Use(hooks ...Hook) {
	c.hooks.CodeErrorEvent = append(c.hooks.CodeErrorEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `codeerrorevent.Intercept(f(g(h())))`.
func (c *CodeErrorEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CodeErrorEvent = append(c.inters.CodeErrorEvent, interceptors...)
}

// Create returns a builder for creating a CodeErrorEvent entity.
func (c *CodeErrorEventClient) Create() *CodeErrorEventCreate {
	mutation := newCodeErrorEventMutation(c.config, OpCreate)
	return &CodeErrorEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CodeErrorEvent entities.
func (c *CodeErrorEventClient) CreateBulk(builders ...*CodeErrorEventCreate) *CodeErrorEventCreateBulk {
	return &CodeErrorEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CodeErrorEventClient) MapCreateBulk(slice any, setFunc func(*CodeErrorEventCreate, int)) *CodeErrorEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CodeErrorEventCreateBulk{err: fmt.Errorf("calling to CodeErrorEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CodeErrorEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CodeErrorEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CodeErrorEvent.
func (c *CodeErrorEventClient) Update() *CodeErrorEventUpdate {
	mutation := newCodeErrorEventMutation(c.config, OpUpdate)
	return &CodeErrorEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CodeErrorEventClient) UpdateOne(_m *CodeErrorEvent) *CodeErrorEventUpdateOne {
	mutation := newCodeErrorEventMutation(c.config, OpUpdateOne, withCodeErrorEvent(_m))
	return &CodeErrorEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CodeErrorEventClient) UpdateOneID(id int) *CodeErrorEventUpdateOne {
	mutation := newCodeErrorEventMutation(c.config, OpUpdateOne, withCodeErrorEventID(id))
	return &CodeErrorEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CodeErrorEvent.
func (c *CodeErrorEventClient) Delete() *CodeErrorEventDelete {
	mutation := newCodeErrorEventMutation(c.config, OpDelete)
	return &CodeErrorEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CodeErrorEventClient) DeleteOne(_m *CodeErrorEvent) *CodeErrorEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CodeErrorEventClient) DeleteOneID(id int) *CodeErrorEventDeleteOne {
	builder := c.Delete().Where(codeerrorevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CodeErrorEventDeleteOne{builder}
}

// Query returns a query builder for CodeErrorEvent.
func (c *CodeErrorEventClient) Query() *CodeErrorEventQuery {
	return &CodeErrorEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCodeErrorEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CodeErrorEvent entity by its id.
func (c *CodeErrorEventClient) Get(ctx context.Context, id int) (*CodeErrorEvent, error) {
	return c.Query().Where(codeerrorevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CodeErrorEventClient) GetX(ctx context.Context, id int) *CodeErrorEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CodeErrorEventClient) Hooks() []Hook {
	return c.hooks.CodeErrorEvent
}

// Interceptors returns the client interceptors.
func (c *CodeErrorEventClient) Interceptors() []Interceptor {
	return c.inters.CodeErrorEvent
}

func (c *CodeErrorEventClient) mutate(ctx context.Context, m *CodeErrorEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CodeErrorEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CodeErrorEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CodeErrorEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CodeErrorEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CodeErrorEvent mutation op: %q", m.Op())
	}
}

// CodeSnapshotClient is a client for the CodeSnapshot schema.
type CodeSnapshotClient struct {
	config
}

// NewCodeSnapshotClient returns a client for the CodeSnapshot from the given config.
func NewCodeSnapshotClient(c config) *CodeSnapshotClient {
	return &CodeSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `codesnapshot.Hooks(f(g(h())))`.
func (c *CodeSnapshotClient) Use(hooks ...Hook) {
	c.hooks.CodeSnapshot = append(c.hooks.CodeSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `codesnapshot.Intercept(f(g(h())))`.
func (c *CodeSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.CodeSnapshot = append(c.inters.CodeSnapshot, interceptors...)
}

// Create returns a builder for creating a CodeSnapshot entity.
func (c *CodeSnapshotClient) Create() *CodeSnapshotCreate {
	mutation := newCodeSnapshotMutation(c.config, OpCreate)
	return &CodeSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CodeSnapshot entities.
func (c *CodeSnapshotClient) CreateBulk(builders ...*CodeSnapshotCreate) *CodeSnapshotCreateBulk {
	return &CodeSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CodeSnapshotClient) MapCreateBulk(slice any, setFunc func(*CodeSnapshotCreate, int)) *CodeSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CodeSnapshotCreateBulk{err: fmt.Errorf("calling to CodeSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CodeSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CodeSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CodeSnapshot.
func (c *CodeSnapshotClient) Update() *CodeSnapshotUpdate {
	mutation := newCodeSnapshotMutation(c.config, OpUpdate)
	return &CodeSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CodeSnapshotClient) UpdateOne(_m *CodeSnapshot) *CodeSnapshotUpdateOne {
	mutation := newCodeSnapshotMutation(c.config, OpUpdateOne, withCodeSnapshot(_m))
	return &CodeSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CodeSnapshotClient) UpdateOneID(id int) *CodeSnapshotUpdateOne {
	mutation := newCodeSnapshotMutation(c.config, OpUpdateOne, withCodeSnapshotID(id))
	return &CodeSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CodeSnapshot.
func (c *CodeSnapshotClient) Delete() *CodeSnapshotDelete {
	mutation := newCodeSnapshotMutation(c.config, OpDelete)
	return &CodeSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CodeSnapshotClient) DeleteOne(_m *CodeSnapshot) *CodeSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CodeSnapshotClient) DeleteOneID(id int) *CodeSnapshotDeleteOne {
	builder := c.Delete().Where(codesnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CodeSnapshotDeleteOne{builder}
}

// Query returns a query builder for CodeSnapshot.
func (c *CodeSnapshotClient) Query() *CodeSnapshotQuery {
	return &CodeSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCodeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a CodeSnapshot entity by its id.
func (c *CodeSnapshotClient) Get(ctx context.Context, id int) (*CodeSnapshot, error) {
	return c.Query().Where(codesnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CodeSnapshotClient) GetX(ctx context.Context, id int) *CodeSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CodeSnapshotClient) Hooks() []Hook {
	return c.hooks.CodeSnapshot
}

// Interceptors returns the client interceptors.
func (c *CodeSnapshotClient) Interceptors() []Interceptor {
	return c.inters.CodeSnapshot
}

func (c *CodeSnapshotClient) mutate(ctx context.Context, m *CodeSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CodeSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CodeSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CodeSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CodeSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CodeSnapshot mutation op: %q", m.Op())
	}
}

// CodingTaskClient is a client for the CodingTask schema.
type CodingTaskClient struct {
	config
}

// NewCodingTaskClient returns a client for the CodingTask from the given config.
func NewCodingTaskClient(c config) *CodingTaskClient {
	return &CodingTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `codingtask.Hooks(f(g(h())))`.
func (c *CodingTaskClient) Use(hooks ...Hook) {
	c.hooks.CodingTask = append(c.hooks.CodingTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `codingtask.Intercept(f(g(h())))`.
func (c *CodingTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.CodingTask = append(c.inters.CodingTask, interceptors...)
}

// Create returns a builder for creating a CodingTask entity.
func (c *CodingTaskClient) Create() *CodingTaskCreate {
	mutation := newCodingTaskMutation(c.config, OpCreate)
	return &CodingTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CodingTask entities.
func (c *CodingTaskClient) CreateBulk(builders ...*CodingTaskCreate) *CodingTaskCreateBulk {
	return &CodingTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CodingTaskClient) MapCreateBulk(slice any, setFunc func(*CodingTaskCreate, int)) *CodingTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CodingTaskCreateBulk{err: fmt.Errorf("calling to CodingTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CodingTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CodingTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CodingTask.
func (c *CodingTaskClient) Update() *CodingTaskUpdate {
	mutation := newCodingTaskMutation(c.config, OpUpdate)
	return &CodingTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CodingTaskClient) UpdateOne(_m *CodingTask) *CodingTaskUpdateOne {
	mutation := newCodingTaskMutation(c.config, OpUpdateOne, withCodingTask(_m))
	return &CodingTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CodingTaskClient) UpdateOneID(id int) *CodingTaskUpdateOne {
	mutation := newCodingTaskMutation(c.config, OpUpdateOne, withCodingTaskID(id))
	return &CodingTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CodingTask.
func (c *CodingTaskClient) Delete() *CodingTaskDelete {
	mutation := newCodingTaskMutation(c.config, OpDelete)
	return &CodingTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CodingTaskClient) DeleteOne(_m *CodingTask) *CodingTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CodingTaskClient) DeleteOneID(id int) *CodingTaskDeleteOne {
	builder := c.Delete().Where(codingtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CodingTaskDeleteOne{builder}
}

// Query returns a query builder for CodingTask.
func (c *CodingTaskClient) Query() *CodingTaskQuery {
	return &CodingTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCodingTask},
		inters: c.Interceptors(),
	}
}

// Get returns a CodingTask entity by its id.
func (c *CodingTaskClient) Get(ctx context.Context, id int) (*CodingTask, error) {
	return c.Query().Where(codingtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CodingTaskClient) GetX(ctx context.Context, id int) *CodingTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CodingTaskClient) Hooks() []Hook {
	return c.hooks.CodingTask
}

// Interceptors returns the client interceptors.
func (c *CodingTaskClient) Interceptors() []Interceptor {
	return c.inters.CodingTask
}

func (c *CodingTaskClient) mutate(ctx context.Context, m *CodingTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CodingTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CodingTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CodingTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CodingTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CodingTask mutation op: %q", m.Op())
	}
}

// LearningSessionClient is a client for the LearningSession schema.
type LearningSessionClient struct {
	config
}

// NewLearningSessionClient returns a client for the LearningSession from the given config.
func NewLearningSessionClient(c config) *LearningSessionClient {
	return &LearningSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningsession.Hooks(f(g(h())))`.
func (c *LearningSessionClient) Use(hooks ...Hook) {
	c.hooks.LearningSession = append(c.hooks.LearningSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningsession.Intercept(f(g(h())))`.
func (c *LearningSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningSession = append(c.inters.LearningSession, interceptors...)
}

// Create returns a builder for creating a LearningSession entity.
func (c *LearningSessionClient) Create() *LearningSessionCreate {
	mutation := newLearningSessionMutation(c.config, OpCreate)
	return &LearningSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningSession entities.
func (c *LearningSessionClient) CreateBulk(builders ...*LearningSessionCreate) *LearningSessionCreateBulk {
	return &LearningSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningSessionClient) MapCreateBulk(slice any, setFunc func(*LearningSessionCreate, int)) *LearningSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningSessionCreateBulk{err: fmt.Errorf("calling to LearningSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningSession.
func (c *LearningSessionClient) Update() *LearningSessionUpdate {
	mutation := newLearningSessionMutation(c.config, OpUpdate)
	return &LearningSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningSessionClient) UpdateOne(_m *LearningSession) *LearningSessionUpdateOne {
	mutation := newLearningSessionMutation(c.config, OpUpdateOne, withLearningSession(_m))
	return &LearningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningSessionClient) UpdateOneID(id int) *LearningSessionUpdateOne {
	mutation := newLearningSessionMutation(c.config, OpUpdateOne, withLearningSessionID(id))
	return &LearningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningSession.
func (c *LearningSessionClient) Delete() *LearningSessionDelete {
	mutation := newLearningSessionMutation(c.config, OpDelete)
	return &LearningSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningSessionClient) DeleteOne(_m *LearningSession) *LearningSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningSessionClient) DeleteOneID(id int) *LearningSessionDeleteOne {
	builder := c.Delete().Where(learningsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningSessionDeleteOne{builder}
}

// Query returns a query builder for LearningSession.
func (c *LearningSessionClient) Query() *LearningSessionQuery {
	return &LearningSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningSession},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningSession entity by its id.
func (c *LearningSessionClient) Get(ctx context.Context, id int) (*LearningSession, error) {
	return c.Query().Where(learningsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningSessionClient) GetX(ctx context.Context, id int) *LearningSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningSessionClient) Hooks() []Hook {
	return c.hooks.LearningSession
}

// Interceptors returns the client interceptors.
func (c *LearningSessionClient) Interceptors() []Interceptor {
	return c.inters.LearningSession
}

func (c *LearningSessionClient) mutate(ctx context.Context, m *LearningSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningSession mutation op: %q", m.Op())
	}
}

// NavEventClient is a client for the NavEvent schema.
type NavEventClient struct {
	config
}

// NewNavEventClient returns a client for the NavEvent from the given config.
func NewNavEventClient(c config) *NavEventClient {
	return &NavEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `navevent.Hooks(f(g(h())))`.
func (c *NavEventClient) Use(hooks ...Hook) {
	c.hooks.NavEvent = append(c.hooks.NavEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `navevent.Intercept(f(g(h())))`.
func (c *NavEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.NavEvent = append(c.inters.NavEvent, interceptors...)
}

// Create returns a builder for creating a NavEvent entity.
func (c *NavEventClient) Create() *NavEventCreate {
	mutation := newNavEventMutation(c.config, OpCreate)
	return &NavEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NavEvent entities.
func (c *NavEventClient) CreateBulk(builders ...*NavEventCreate) *NavEventCreateBulk {
	return &NavEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NavEventClient) MapCreateBulk(slice any, setFunc func(*NavEventCreate, int)) *NavEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NavEventCreateBulk{err: fmt.Errorf("calling to NavEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NavEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NavEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NavEvent.
func (c *NavEventClient) Update() *NavEventUpdate {
	mutation := newNavEventMutation(c.config, OpUpdate)
	return &NavEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NavEventClient) UpdateOne(_m *NavEvent) *NavEventUpdateOne {
	mutation := newNavEventMutation(c.config, OpUpdateOne, withNavEvent(_m))
	return &NavEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NavEventClient) UpdateOneID(id int) *NavEventUpdateOne {
	mutation := newNavEventMutation(c.config, OpUpdateOne, withNavEventID(id))
	return &NavEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NavEvent.
func (c *NavEventClient) Delete() *NavEventDelete {
	mutation := newNavEventMutation(c.config, OpDelete)
	return &NavEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NavEventClient) DeleteOne(_m *NavEvent) *NavEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NavEventClient) DeleteOneID(id int) *NavEventDeleteOne {
	builder := c.Delete().Where(navevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NavEventDeleteOne{builder}
}

// Query returns a query builder for NavEvent.
func (c *NavEventClient) Query() *NavEventQuery {
	return &NavEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNavEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a NavEvent entity by its id.
func (c *NavEventClient) Get(ctx context.Context, id int) (*NavEvent, error) {
	return c.Query().Where(navevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NavEventClient) GetX(ctx context.Context, id int) *NavEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NavEventClient) Hooks() []Hook {
	return c.hooks.NavEvent
}

// Interceptors returns the client interceptors.
func (c *NavEventClient) Interceptors() []Interceptor {
	return c.inters.NavEvent
}

func (c *NavEventClient) mutate(ctx context.Context, m *NavEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NavEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NavEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NavEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NavEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NavEvent mutation op: %q", m.Op())
	}
}

// PanelEventClient is a client for the PanelEvent schema.
type PanelEventClient struct {
	config
}

// NewPanelEventClient returns a client for the PanelEvent from the given config.
func NewPanelEventClient(c config) *PanelEventClient {
	return &PanelEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `panelevent.Hooks(f(g(h())))`.
func (c *PanelEventClient) Use(hooks ...Hook) {
	c.hooks.PanelEvent = append(c.hooks.PanelEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `panelevent.Intercept(f(g(h())))`.
func (c *PanelEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PanelEvent = append(c.inters.PanelEvent, interceptors...)
}

// Create returns a builder for creating a PanelEvent entity.
func (c *PanelEventClient) Create() *PanelEventCreate {
	mutation := newPanelEventMutation(c.config, OpCreate)
	return &PanelEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PanelEvent entities.
func (c *PanelEventClient) CreateBulk(builders ...*PanelEventCreate) *PanelEventCreateBulk {
	return &PanelEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PanelEventClient) MapCreateBulk(slice any, setFunc func(*PanelEventCreate, int)) *PanelEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PanelEventCreateBulk{err: fmt.Errorf("calling to PanelEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PanelEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PanelEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PanelEvent.
func (c *PanelEventClient) Update() *PanelEventUpdate {
	mutation := newPanelEventMutation(c.config, OpUpdate)
	return &PanelEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PanelEventClient) UpdateOne(_m *PanelEvent) *PanelEventUpdateOne {
	mutation := newPanelEventMutation(c.config, OpUpdateOne, withPanelEvent(_m))
	return &PanelEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PanelEventClient) UpdateOneID(id int) *PanelEventUpdateOne {
	mutation := newPanelEventMutation(c.config, OpUpdateOne, withPanelEventID(id))
	return &PanelEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PanelEvent.
func (c *PanelEventClient) Delete() *PanelEventDelete {
	mutation := newPanelEventMutation(c.config, OpDelete)
	return &PanelEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PanelEventClient) DeleteOne(_m *PanelEvent) *PanelEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PanelEventClient) DeleteOneID(id int) *PanelEventDeleteOne {
	builder := c.Delete().Where(panelevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PanelEventDeleteOne{builder}
}

// Query returns a query builder for PanelEvent.
func (c *PanelEventClient) Query() *PanelEventQuery {
	return &PanelEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePanelEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PanelEvent entity by its id.
func (c *PanelEventClient) Get(ctx context.Context, id int) (*PanelEvent, error) {
	return c.Query().Where(panelevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PanelEventClient) GetX(ctx context.Context, id int) *PanelEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PanelEventClient) Hooks() []Hook {
	return c.hooks.PanelEvent
}

// Interceptors returns the client interceptors.
func (c *PanelEventClient) Interceptors() []Interceptor {
	return c.inters.PanelEvent
}

func (c *PanelEventClient) mutate(ctx context.Context, m *PanelEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PanelEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PanelEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PanelEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PanelEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PanelEvent mutation op: %q", m.Op())
	}
}

// StrokeEventClient is a client for the StrokeEvent schema.
type StrokeEventClient struct {
	config
}

// NewStrokeEventClient returns a client for the StrokeEvent from the given config.
func NewStrokeEventClient(c config) *StrokeEventClient {
	return &StrokeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `strokeevent.Hooks(f(g(h())))`.
func (c *StrokeEventClient) Use(hooks ...Hook) {
	c.hooks.StrokeEvent = append(c.hooks.StrokeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `strokeevent.Intercept(f(g(h())))`.
func (c *StrokeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.StrokeEvent = append(c.inters.StrokeEvent, interceptors...)
}

// Create returns a builder for creating a StrokeEvent entity.
func (c *StrokeEventClient) Create() *StrokeEventCreate {
	mutation := newStrokeEventMutation(c.config, OpCreate)
	return &StrokeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StrokeEvent entities.
func (c *StrokeEventClient) CreateBulk(builders ...*StrokeEventCreate) *StrokeEventCreateBulk {
	return &StrokeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StrokeEventClient) MapCreateBulk(slice any, setFunc func(*StrokeEventCreate, int)) *StrokeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StrokeEventCreateBulk{err: fmt.Errorf("calling to StrokeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StrokeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StrokeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StrokeEvent.
func (c *StrokeEventClient) Update() *StrokeEventUpdate {
	mutation := newStrokeEventMutation(c.config, OpUpdate)
	return &StrokeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StrokeEventClient) UpdateOne(_m *StrokeEvent) *StrokeEventUpdateOne {
	mutation := newStrokeEventMutation(c.config, OpUpdateOne, withStrokeEvent(_m))
	return &StrokeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StrokeEventClient) UpdateOneID(id int) *StrokeEventUpdateOne {
	mutation := newStrokeEventMutation(c.config, OpUpdateOne, withStrokeEventID(id))
	return &StrokeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StrokeEvent.
func (c *StrokeEventClient) Delete() *StrokeEventDelete {
	mutation := newStrokeEventMutation(c.config, OpDelete)
	return &StrokeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StrokeEventClient) DeleteOne(_m *StrokeEvent) *StrokeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StrokeEventClient) DeleteOneID(id int) *StrokeEventDeleteOne {
	builder := c.Delete().Where(strokeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StrokeEventDeleteOne{builder}
}

// Query returns a query builder for StrokeEvent.
func (c *StrokeEventClient) Query() *StrokeEventQuery {
	return &StrokeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStrokeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a StrokeEvent entity by its id.
func (c *StrokeEventClient) Get(ctx context.Context, id int) (*StrokeEvent, error) {
	return c.Query().Where(strokeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StrokeEventClient) GetX(ctx context.Context, id int) *StrokeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StrokeEventClient) Hooks() []Hook {
	return c.hooks.StrokeEvent
}

// Interceptors returns the client interceptors.
func (c *StrokeEventClient) Interceptors() []Interceptor {
	return c.inters.StrokeEvent
}

func (c *StrokeEventClient) mutate(ctx context.Context, m *StrokeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StrokeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StrokeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StrokeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StrokeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StrokeEvent mutation op: %q", m.Op())
	}
}

// TaskProgressEventClient is a client for the TaskProgressEvent schema.
type TaskProgressEventClient struct {
	config
}

// NewTaskProgressEventClient returns a client for the TaskProgressEvent from the given config.
func NewTaskProgressEventClient(c config) *TaskProgressEventClient {
	return &TaskProgressEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskprogressevent.Hooks(f(g(h())))`.
func (c *TaskProgressEventClient) Use(hooks ...Hook) {
	c.hooks.TaskProgressEvent = append(c.hooks.TaskProgressEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskprogressevent.Intercept(f(g(h())))`.
func (c *TaskProgressEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskProgressEvent = append(c.inters.TaskProgressEvent, interceptors...)
}

// Create returns a builder for creating a TaskProgressEvent entity.
func (c *TaskProgressEventClient) Create() *TaskProgressEventCreate {
	mutation := newTaskProgressEventMutation(c.config, OpCreate)
	return &TaskProgressEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskProgressEvent entities.
func (c *TaskProgressEventClient) CreateBulk(builders ...*TaskProgressEventCreate) *TaskProgressEventCreateBulk {
	return &TaskProgressEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskProgressEventClient) MapCreateBulk(slice any, setFunc func(*TaskProgressEventCreate, int)) *TaskProgressEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskProgressEventCreateBulk{err: fmt.Errorf("calling to TaskProgressEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskProgressEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskProgressEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskProgressEvent.
func (c *TaskProgressEventClient) Update() *TaskProgressEventUpdate {
	mutation := newTaskProgressEventMutation(c.config, OpUpdate)
	return &TaskProgressEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskProgressEventClient) UpdateOne(_m *TaskProgressEvent) *TaskProgressEventUpdateOne {
	mutation := newTaskProgressEventMutation(c.config, OpUpdateOne, withTaskProgressEvent(_m))
	return &TaskProgressEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskProgressEventClient) UpdateOneID(id int) *TaskProgressEventUpdateOne {
	mutation := newTaskProgressEventMutation(c.config, OpUpdateOne, withTaskProgressEventID(id))
	return &TaskProgressEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskProgressEvent.
func (c *TaskProgressEventClient) Delete() *TaskProgressEventDelete {
	mutation := newTaskProgressEventMutation(c.config, OpDelete)
	return &TaskProgressEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskProgressEventClient) DeleteOne(_m *TaskProgressEvent) *TaskProgressEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskProgressEventClient) DeleteOneID(id int) *TaskProgressEventDeleteOne {
	builder := c.Delete().Where(taskprogressevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskProgressEventDeleteOne{builder}
}

// Query returns a query builder for TaskProgressEvent.
func (c *TaskProgressEventClient) Query() *TaskProgressEventQuery {
	return &TaskProgressEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskProgressEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskProgressEvent entity by its id.
func (c *TaskProgressEventClient) Get(ctx context.Context, id int) (*TaskProgressEvent, error) {
	return c.Query().Where(taskprogressevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskProgressEventClient) GetX(ctx context.Context, id int) *TaskProgressEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskProgressEventClient) Hooks() []Hook {
	return c.hooks.TaskProgressEvent
}

// Interceptors returns the client interceptors.
func (c *TaskProgressEventClient) Interceptors() []Interceptor {
	return c.inters.TaskProgressEvent
}

func (c *TaskProgressEventClient) mutate(ctx context.Context, m *TaskProgressEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskProgressEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskProgressEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskProgressEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskProgressEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskProgressEvent mutation op: %q", m.Op())
	}
}

// TestCaseResultClient is a client for the TestCaseResult schema.
type TestCaseResultClient struct {
	config
}

// NewTestCaseResultClient returns a client for the TestCaseResult from the given config.
func NewTestCaseResultClient(c config) *TestCaseResultClient {
	return &TestCaseResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `testcaseresult.Hooks(f(g(h())))`.
func (c *TestCaseResultClient) Use(hooks ...Hook) {
	c.hooks.TestCaseResult = append(c.hooks.TestCaseResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `testcaseresult.Intercept(f(g(h())))`.
func (c *TestCaseResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.TestCaseResult = append(c.inters.TestCaseResult, interceptors...)
}

// Create returns a builder for creating a TestCaseResult entity.
func (c *TestCaseResultClient) Create() *TestCaseResultCreate {
	mutation := newTestCaseResultMutation(c.config, OpCreate)
	return &TestCaseResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TestCaseResult entities.
func (c *TestCaseResultClient) CreateBulk(builders ...*TestCaseResultCreate) *TestCaseResultCreateBulk {
	return &TestCaseResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TestCaseResultClient) MapCreateBulk(slice any, setFunc func(*TestCaseResultCreate, int)) *TestCaseResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TestCaseResultCreateBulk{err: fmt.Errorf("calling to TestCaseResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TestCaseResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TestCaseResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TestCaseResult.
func (c *TestCaseResultClient) Update() *TestCaseResultUpdate {
	mutation := newTestCaseResultMutation(c.config, OpUpdate)
	return &TestCaseResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TestCaseResultClient) UpdateOne(_m *TestCaseResult) *TestCaseResultUpdateOne {
	mutation := newTestCaseResultMutation(c.config, OpUpdateOne, withTestCaseResult(_m))
	return &TestCaseResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TestCaseResultClient) UpdateOneID(id int) *TestCaseResultUpdateOne {
	mutation := newTestCaseResultMutation(c.config, OpUpdateOne, withTestCaseResultID(id))
	return &TestCaseResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TestCaseResult.
func (c *TestCaseResultClient) Delete() *TestCaseResultDelete {
	mutation := newTestCaseResultMutation(c.config, OpDelete)
	return &TestCaseResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TestCaseResultClient) DeleteOne(_m *TestCaseResult) *TestCaseResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TestCaseResultClient) DeleteOneID(id int) *TestCaseResultDeleteOne {
	builder := c.Delete().Where(testcaseresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TestCaseResultDeleteOne{builder}
}

// Query returns a query builder for TestCaseResult.
func (c *TestCaseResultClient) Query() *TestCaseResultQuery {
	return &TestCaseResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTestCaseResult},
		inters: c.Interceptors(),
	}
}

// Get returns a TestCaseResult entity by its id.
func (c *TestCaseResultClient) Get(ctx context.Context, id int) (*TestCaseResult, error) {
	return c.Query().Where(testcaseresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TestCaseResultClient) GetX(ctx context.Context, id int) *TestCaseResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TestCaseResultClient) Hooks() []Hook {
	return c.hooks.TestCaseResult
}

// Interceptors returns the client interceptors.
func (c *TestCaseResultClient) Interceptors() []Interceptor {
	return c.inters.TestCaseResult
}

func (c *TestCaseResultClient) mutate(ctx context.Context, m *TestCaseResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TestCaseResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TestCaseResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TestCaseResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TestCaseResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TestCaseResult mutation op: %q", m.Op())
	}
}

// TutorConversationClient is a client for the TutorConversation schema.
type TutorConversationClient struct {
	config
}

// NewTutorConversationClient returns a client for the TutorConversation from the given config.
func NewTutorConversationClient(c config) *TutorConversationClient {
	return &TutorConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tutorconversation.Hooks(f(g(h())))`.
func (c *TutorConversationClient) Use(hooks ...Hook) {
	c.hooks.TutorConversation = append(c.hooks.TutorConversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tutorconversation.Intercept(f(g(h())))`.
func (c *TutorConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.TutorConversation = append(c.inters.TutorConversation, interceptors...)
}

// Create returns a builder for creating a TutorConversation entity.
func (c *TutorConversationClient) Create() *TutorConversationCreate {
	mutation := newTutorConversationMutation(c.config, OpCreate)
	return &TutorConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TutorConversation entities.
func (c *TutorConversationClient) CreateBulk(builders ...*TutorConversationCreate) *TutorConversationCreateBulk {
	return &TutorConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TutorConversationClient) MapCreateBulk(slice any, setFunc func(*TutorConversationCreate, int)) *TutorConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TutorConversationCreateBulk{err: fmt.Errorf("calling to TutorConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TutorConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TutorConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TutorConversation.
func (c *TutorConversationClient) Update() *TutorConversationUpdate {
	mutation := newTutorConversationMutation(c.config, OpUpdate)
	return &TutorConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TutorConversationClient) UpdateOne(_m *TutorConversation) *TutorConversationUpdateOne {
	mutation := newTutorConversationMutation(c.config, OpUpdateOne, withTutorConversation(_m))
	return &TutorConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TutorConversationClient) UpdateOneID(id int) *TutorConversationUpdateOne {
	mutation := newTutorConversationMutation(c.config, OpUpdateOne, withTutorConversationID(id))
	return &TutorConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TutorConversation.
func (c *TutorConversationClient) Delete() *TutorConversationDelete {
	mutation := newTutorConversationMutation(c.config, OpDelete)
	return &TutorConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TutorConversationClient) DeleteOne(_m *TutorConversation) *TutorConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TutorConversationClient) DeleteOneID(id int) *TutorConversationDeleteOne {
	builder := c.Delete().Where(tutorconversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TutorConversationDeleteOne{builder}
}

// Query returns a query builder for TutorConversation.
func (c *TutorConversationClient) Query() *TutorConversationQuery {
	return &TutorConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTutorConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a TutorConversation entity by its id.
func (c *TutorConversationClient) Get(ctx context.Context, id int) (*TutorConversation, error) {
	return c.Query().Where(tutorconversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TutorConversationClient) GetX(ctx context.Context, id int) *TutorConversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TutorConversationClient) Hooks() []Hook {
	return c.hooks.TutorConversation
}

// Interceptors returns the client interceptors.
func (c *TutorConversationClient) Interceptors() []Interceptor {
	return c.inters.TutorConversation
}

func (c *TutorConversationClient) mutate(ctx context.Context, m *TutorConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TutorConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TutorConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TutorConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TutorConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TutorConversation mutation op: %q", m.Op())
	}
}

// TutorHighlightClient is a client for the TutorHighlight schema.
type TutorHighlightClient struct {
	config
}

// NewTutorHighlightClient returns a client for the TutorHighlight from the given config.
func NewTutorHighlightClient(c config) *TutorHighlightClient {
	return &TutorHighlightClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tutorhighlight.Hooks(f(g(h())))`.
func (c *TutorHighlightClient) Use(hooks ...Hook) {
	c.hooks.TutorHighlight = append(c.hooks.TutorHighlight, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tutorhighlight.Intercept(f(g(h())))`.
func (c *TutorHighlightClient) Intercept(interceptors ...Interceptor) {
	c.inters.TutorHighlight = append(c.inters.TutorHighlight, interceptors...)
}

// Create returns a builder for creating a TutorHighlight entity.
func (c *TutorHighlightClient) Create() *TutorHighlightCreate {
	mutation := newTutorHighlightMutation(c.config, OpCreate)
	return &TutorHighlightCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TutorHighlight entities.
func (c *TutorHighlightClient) CreateBulk(builders ...*TutorHighlightCreate) *TutorHighlightCreateBulk {
	return &TutorHighlightCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TutorHighlightClient) MapCreateBulk(slice any, setFunc func(*TutorHighlightCreate, int)) *TutorHighlightCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TutorHighlightCreateBulk{err: fmt.Errorf("calling to TutorHighlightClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TutorHighlightCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TutorHighlightCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TutorHighlight.
func (c *TutorHighlightClient) Update() *TutorHighlightUpdate {
	mutation := newTutorHighlightMutation(c.config, OpUpdate)
	return &TutorHighlightUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TutorHighlightClient) UpdateOne(_m *TutorHighlight) *TutorHighlightUpdateOne {
	mutation := newTutorHighlightMutation(c.config, OpUpdateOne, withTutorHighlight(_m))
	return &TutorHighlightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TutorHighlightClient) UpdateOneID(id int) *TutorHighlightUpdateOne {
	mutation := newTutorHighlightMutation(c.config, OpUpdateOne, withTutorHighlightID(id))
	return &TutorHighlightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TutorHighlight.
func (c *TutorHighlightClient) Delete() *TutorHighlightDelete {
	mutation := newTutorHighlightMutation(c.config, OpDelete)
	return &TutorHighlightDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TutorHighlightClient) DeleteOne(_m *TutorHighlight) *TutorHighlightDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TutorHighlightClient) DeleteOneID(id int) *TutorHighlightDeleteOne {
	builder := c.Delete().Where(tutorhighlight.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TutorHighlightDeleteOne{builder}
}

// Query returns a query builder for TutorHighlight.
func (c *TutorHighlightClient) Query() *TutorHighlightQuery {
	return &TutorHighlightQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTutorHighlight},
		inters: c.Interceptors(),
	}
}

// Get returns a TutorHighlight entity by its id.
func (c *TutorHighlightClient) Get(ctx context.Context, id int) (*TutorHighlight, error) {
	return c.Query().Where(tutorhighlight.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TutorHighlightClient) GetX(ctx context.Context, id int) *TutorHighlight {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TutorHighlightClient) Hooks() []Hook {
	return c.hooks.TutorHighlight
}

// Interceptors returns the client interceptors.
func (c *TutorHighlightClient) Interceptors() []Interceptor {
	return c.inters.TutorHighlight
}

func (c *TutorHighlightClient) mutate(ctx context.Context, m *TutorHighlightMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TutorHighlightCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TutorHighlightUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TutorHighlightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TutorHighlightDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TutorHighlight mutation op: %q", m.Op())
	}
}

// UserHighlightClient is a client for the UserHighlight schema.
type UserHighlightClient struct {
	config
}

// NewUserHighlightClient returns a client for the UserHighlight from the given config.
func NewUserHighlightClient(c config) *UserHighlightClient {
	return &UserHighlightClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userhighlight.Hooks(f(g(h())))`.
func (c *UserHighlightClient) Use(hooks ...Hook) {
	c.hooks.UserHighlight = append(c.hooks.UserHighlight, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userhighlight.Intercept(f(g(h())))`.
func (c *UserHighlightClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserHighlight = append(c.inters.UserHighlight, interceptors...)
}

// Create returns a builder for creating a UserHighlight entity.
func (c *UserHighlightClient) Create() *UserHighlightCreate {
	mutation := newUserHighlightMutation(c.config, OpCreate)
	return &UserHighlightCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserHighlight entities.
func (c *UserHighlightClient) CreateBulk(builders ...*UserHighlightCreate) *UserHighlightCreateBulk {
	return &UserHighlightCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserHighlightClient) MapCreateBulk(slice any, setFunc func(*UserHighlightCreate, int)) *UserHighlightCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserHighlightCreateBulk{err: fmt.Errorf("calling to UserHighlightClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserHighlightCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserHighlightCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserHighlight.
func (c *UserHighlightClient) Update() *UserHighlightUpdate {
	mutation := newUserHighlightMutation(c.config, OpUpdate)
	return &UserHighlightUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserHighlightClient) UpdateOne(_m *UserHighlight) *UserHighlightUpdateOne {
	mutation := newUserHighlightMutation(c.config, OpUpdateOne, withUserHighlight(_m))
	return &UserHighlightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserHighlightClient) UpdateOneID(id int) *UserHighlightUpdateOne {
	mutation := newUserHighlightMutation(c.config, OpUpdateOne, withUserHighlightID(id))
	return &UserHighlightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserHighlight.
func (c *UserHighlightClient) Delete() *UserHighlightDelete {
	mutation := newUserHighlightMutation(c.config, OpDelete)
	return &UserHighlightDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserHighlightClient) DeleteOne(_m *UserHighlight) *UserHighlightDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserHighlightClient) DeleteOneID(id int) *UserHighlightDeleteOne {
	builder := c.Delete().Where(userhighlight.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserHighlightDeleteOne{builder}
}

// Query returns a query builder for UserHighlight.
func (c *UserHighlightClient) Query() *UserHighlightQuery {
	return &UserHighlightQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserHighlight},
		inters: c.Interceptors(),
	}
}

// Get returns a UserHighlight entity by its id.
func (c *UserHighlightClient) Get(ctx context.Context, id int) (*UserHighlight, error) {
	return c.Query().Where(userhighlight.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserHighlightClient) GetX(ctx context.Context, id int) *UserHighlight {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserHighlightClient) Hooks() []Hook {
	return c.hooks.UserHighlight
}

// Interceptors returns the client interceptors.
func (c *UserHighlightClient) Interceptors() []Interceptor {
	return c.inters.UserHighlight
}

func (c *UserHighlightClient) mutate(ctx context.Context, m *UserHighlightMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserHighlightCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserHighlightUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserHighlightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserHighlightDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserHighlight mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChatMessage, CodeErrorEvent, CodeSnapshot, CodingTask, LearningSession,
		NavEvent, PanelEvent, StrokeEvent, TaskProgressEvent, TestCaseResult,
		TutorConversation, TutorHighlight, UserHighlight []ent.Hook
	}
	inters struct {
		ChatMessage, CodeErrorEvent, CodeSnapshot, CodingTask, LearningSession,
		NavEvent, PanelEvent, StrokeEvent, TaskProgressEvent, TestCaseResult,
		TutorConversation, TutorHighlight, UserHighlight []ent.Interceptor
	}
)
