// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/dmorante/repaso/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/dmorante/repaso/ent/lessonrecord"
	"github.com/dmorante/repaso/ent/progressrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LessonRecord is the client for interacting with the LessonRecord builders.
	LessonRecord *LessonRecordClient
	// ProgressRecord is the client for interacting with the ProgressRecord builders.
	ProgressRecord *ProgressRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LessonRecord = NewLessonRecordClient(c.config)
	c.ProgressRecord = NewProgressRecordClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		LessonRecord:   NewLessonRecordClient(cfg),
		ProgressRecord: NewProgressRecordClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		LessonRecord:   NewLessonRecordClient(cfg),
		ProgressRecord: NewProgressRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LessonRecord.
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
	c.LessonRecord.Use(hooks...)
	c.ProgressRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LessonRecord.Intercept(interceptors...)
	c.ProgressRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LessonRecordMutation:
		return c.LessonRecord.mutate(ctx, m)
	case *ProgressRecordMutation:
		return c.ProgressRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LessonRecordClient is a client for the LessonRecord schema.
type LessonRecordClient struct {
	config
}

// NewLessonRecordClient returns a client for the LessonRecord from the given config.
func NewLessonRecordClient(c config) *LessonRecordClient {
	return &LessonRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonrecord.Hooks(f(g(h())))`.
func (c *LessonRecordClient) Use(hooks ...Hook) {
	c.hooks.LessonRecord = append(c.hooks.LessonRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonrecord.Intercept(f(g(h())))`.
func (c *LessonRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonRecord = append(c.inters.LessonRecord, interceptors...)
}

// Create returns a builder for creating a LessonRecord entity.
func (c *LessonRecordClient) Create() *LessonRecordCreate {
	mutation := newLessonRecordMutation(c.config, OpCreate)
	return &LessonRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonRecord entities.
func (c *LessonRecordClient) CreateBulk(builders ...*LessonRecordCreate) *LessonRecordCreateBulk {
	return &LessonRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonRecordClient) MapCreateBulk(slice any, setFunc func(*LessonRecordCreate, int)) *LessonRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonRecordCreateBulk{err: fmt.Errorf("calling to LessonRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonRecord.
func (c *LessonRecordClient) Update() *LessonRecordUpdate {
	mutation := newLessonRecordMutation(c.config, OpUpdate)
	return &LessonRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonRecordClient) UpdateOne(_m *LessonRecord) *LessonRecordUpdateOne {
	mutation := newLessonRecordMutation(c.config, OpUpdateOne, withLessonRecord(_m))
	return &LessonRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonRecordClient) UpdateOneID(id int64) *LessonRecordUpdateOne {
	mutation := newLessonRecordMutation(c.config, OpUpdateOne, withLessonRecordID(id))
	return &LessonRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonRecord.
func (c *LessonRecordClient) Delete() *LessonRecordDelete {
	mutation := newLessonRecordMutation(c.config, OpDelete)
	return &LessonRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonRecordClient) DeleteOne(_m *LessonRecord) *LessonRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonRecordClient) DeleteOneID(id int64) *LessonRecordDeleteOne {
	builder := c.Delete().Where(lessonrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonRecordDeleteOne{builder}
}

// Query returns a query builder for LessonRecord.
func (c *LessonRecordClient) Query() *LessonRecordQuery {
	return &LessonRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonRecord entity by its id.
func (c *LessonRecordClient) Get(ctx context.Context, id int64) (*LessonRecord, error) {
	return c.Query().Where(lessonrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonRecordClient) GetX(ctx context.Context, id int64) *LessonRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonRecordClient) Hooks() []Hook {
	return c.hooks.LessonRecord
}

// Interceptors returns the client interceptors.
func (c *LessonRecordClient) Interceptors() []Interceptor {
	return c.inters.LessonRecord
}

func (c *LessonRecordClient) mutate(ctx context.Context, m *LessonRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonRecord mutation op: %q", m.Op())
	}
}

// ProgressRecordClient is a client for the ProgressRecord schema.
type ProgressRecordClient struct {
	config
}

// NewProgressRecordClient returns a client for the ProgressRecord from the given config.
func NewProgressRecordClient(c config) *ProgressRecordClient {
	return &ProgressRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `progressrecord.Hooks(f(g(h())))`.
func (c *ProgressRecordClient) Use(hooks ...Hook) {
	c.hooks.ProgressRecord = append(c.hooks.ProgressRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `progressrecord.Intercept(f(g(h())))`.
func (c *ProgressRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProgressRecord = append(c.inters.ProgressRecord, interceptors...)
}

// Create returns a builder for creating a ProgressRecord entity.
func (c *ProgressRecordClient) Create() *ProgressRecordCreate {
	mutation := newProgressRecordMutation(c.config, OpCreate)
	return &ProgressRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProgressRecord entities.
func (c *ProgressRecordClient) CreateBulk(builders ...*ProgressRecordCreate) *ProgressRecordCreateBulk {
	return &ProgressRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProgressRecordClient) MapCreateBulk(slice any, setFunc func(*ProgressRecordCreate, int)) *ProgressRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProgressRecordCreateBulk{err: fmt.Errorf("calling to ProgressRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProgressRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProgressRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProgressRecord.
func (c *ProgressRecordClient) Update() *ProgressRecordUpdate {
	mutation := newProgressRecordMutation(c.config, OpUpdate)
	return &ProgressRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProgressRecordClient) UpdateOne(_m *ProgressRecord) *ProgressRecordUpdateOne {
	mutation := newProgressRecordMutation(c.config, OpUpdateOne, withProgressRecord(_m))
	return &ProgressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProgressRecordClient) UpdateOneID(id int64) *ProgressRecordUpdateOne {
	mutation := newProgressRecordMutation(c.config, OpUpdateOne, withProgressRecordID(id))
	return &ProgressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProgressRecord.
func (c *ProgressRecordClient) Delete() *ProgressRecordDelete {
	mutation := newProgressRecordMutation(c.config, OpDelete)
	return &ProgressRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProgressRecordClient) DeleteOne(_m *ProgressRecord) *ProgressRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProgressRecordClient) DeleteOneID(id int64) *ProgressRecordDeleteOne {
	builder := c.Delete().Where(progressrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProgressRecordDeleteOne{builder}
}

// Query returns a query builder for ProgressRecord.
func (c *ProgressRecordClient) Query() *ProgressRecordQuery {
	return &ProgressRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProgressRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ProgressRecord entity by its id.
func (c *ProgressRecordClient) Get(ctx context.Context, id int64) (*ProgressRecord, error) {
	return c.Query().Where(progressrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProgressRecordClient) GetX(ctx context.Context, id int64) *ProgressRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProgressRecordClient) Hooks() []Hook {
	return c.hooks.ProgressRecord
}

// Interceptors returns the client interceptors.
func (c *ProgressRecordClient) Interceptors() []Interceptor {
	return c.inters.ProgressRecord
}

func (c *ProgressRecordClient) mutate(ctx context.Context, m *ProgressRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProgressRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProgressRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProgressRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProgressRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProgressRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LessonRecord, ProgressRecord []ent.Hook
	}
	inters struct {
		LessonRecord, ProgressRecord []ent.Interceptor
	}
)
