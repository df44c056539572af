// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/papervault/papervault/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/papervault/papervault/gen/ent/analysisrecord"
	"github.com/papervault/papervault/gen/ent/entity"
	"github.com/papervault/papervault/gen/ent/entityitem"
	"github.com/papervault/papervault/gen/ent/uploadedfile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisRecord is the client for interacting with the AnalysisRecord builders.
	AnalysisRecord *AnalysisRecordClient
	// Entity is the client for interacting with the Entity builders.
	Entity *EntityClient
	// EntityItem is the client for interacting with the EntityItem builders.
	EntityItem *EntityItemClient
	// UploadedFile is the client for interacting with the UploadedFile builders.
	UploadedFile *UploadedFileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisRecord = NewAnalysisRecordClient(c.config)
	c.Entity = NewEntityClient(c.config)
	c.EntityItem = NewEntityItemClient(c.config)
	c.UploadedFile = NewUploadedFileClient(c.config)
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
		AnalysisRecord: NewAnalysisRecordClient(cfg),
		Entity:         NewEntityClient(cfg),
		EntityItem:     NewEntityItemClient(cfg),
		UploadedFile:   NewUploadedFileClient(cfg),
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
		AnalysisRecord: NewAnalysisRecordClient(cfg),
		Entity:         NewEntityClient(cfg),
		EntityItem:     NewEntityItemClient(cfg),
		UploadedFile:   NewUploadedFileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisRecord.
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
	c.AnalysisRecord.Use(hooks...)
	c.Entity.Use(hooks...)
	c.EntityItem.Use(hooks...)
	c.UploadedFile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnalysisRecord.Intercept(interceptors...)
	c.Entity.Intercept(interceptors...)
	c.EntityItem.Intercept(interceptors...)
	c.UploadedFile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisRecordMutation:
		return c.AnalysisRecord.mutate(ctx, m)
	case *EntityMutation:
		return c.Entity.mutate(ctx, m)
	case *EntityItemMutation:
		return c.EntityItem.mutate(ctx, m)
	case *UploadedFileMutation:
		return c.UploadedFile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisRecordClient is a client for the AnalysisRecord schema.
type AnalysisRecordClient struct {
	config
}

// NewAnalysisRecordClient returns a client for the AnalysisRecord from the given config.
func NewAnalysisRecordClient(c config) *AnalysisRecordClient {
	return &AnalysisRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisrecord.Hooks(f(g(h())))`.
func (c *AnalysisRecordClient) Use(hooks ...Hook) {
	c.hooks.AnalysisRecord = append(c.hooks.AnalysisRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisrecord.Intercept(f(g(h())))`.
func (c *AnalysisRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisRecord = append(c.inters.AnalysisRecord, interceptors...)
}

// Create returns a builder for creating a AnalysisRecord entity.
func (c *AnalysisRecordClient) Create() *AnalysisRecordCreate {
	mutation := newAnalysisRecordMutation(c.config, OpCreate)
	return &AnalysisRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisRecord entities.
func (c *AnalysisRecordClient) CreateBulk(builders ...*AnalysisRecordCreate) *AnalysisRecordCreateBulk {
	return &AnalysisRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisRecordClient) MapCreateBulk(slice any, setFunc func(*AnalysisRecordCreate, int)) *AnalysisRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisRecordCreateBulk{err: fmt.Errorf("calling to AnalysisRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisRecord.
func (c *AnalysisRecordClient) Update() *AnalysisRecordUpdate {
	mutation := newAnalysisRecordMutation(c.config, OpUpdate)
	return &AnalysisRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisRecordClient) UpdateOne(_m *AnalysisRecord) *AnalysisRecordUpdateOne {
	mutation := newAnalysisRecordMutation(c.config, OpUpdateOne, withAnalysisRecord(_m))
	return &AnalysisRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisRecordClient) UpdateOneID(id uuid.UUID) *AnalysisRecordUpdateOne {
	mutation := newAnalysisRecordMutation(c.config, OpUpdateOne, withAnalysisRecordID(id))
	return &AnalysisRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisRecord.
func (c *AnalysisRecordClient) Delete() *AnalysisRecordDelete {
	mutation := newAnalysisRecordMutation(c.config, OpDelete)
	return &AnalysisRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisRecordClient) DeleteOne(_m *AnalysisRecord) *AnalysisRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisRecordClient) DeleteOneID(id uuid.UUID) *AnalysisRecordDeleteOne {
	builder := c.Delete().Where(analysisrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisRecordDeleteOne{builder}
}

// Query returns a query builder for AnalysisRecord.
func (c *AnalysisRecordClient) Query() *AnalysisRecordQuery {
	return &AnalysisRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisRecord entity by its id.
func (c *AnalysisRecordClient) Get(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	return c.Query().Where(analysisrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisRecordClient) GetX(ctx context.Context, id uuid.UUID) *AnalysisRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a AnalysisRecord.
func (c *AnalysisRecordClient) QueryFile(_m *AnalysisRecord) *UploadedFileQuery {
	query := (&UploadedFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisrecord.Table, analysisrecord.FieldID, id),
			sqlgraph.To(uploadedfile.Table, uploadedfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analysisrecord.FileTable, analysisrecord.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisRecordClient) Hooks() []Hook {
	return c.hooks.AnalysisRecord
}

// Interceptors returns the client interceptors.
func (c *AnalysisRecordClient) Interceptors() []Interceptor {
	return c.inters.AnalysisRecord
}

func (c *AnalysisRecordClient) mutate(ctx context.Context, m *AnalysisRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisRecord mutation op: %q", m.Op())
	}
}

// EntityClient is a client for the Entity schema.
type EntityClient struct {
	config
}

// NewEntityClient returns a client for the Entity from the given config.
func NewEntityClient(c config) *EntityClient {
	return &EntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entity.Hooks(f(g(h())))`.
func (c *EntityClient) Use(hooks ...Hook) {
	c.hooks.Entity = append(c.hooks.Entity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entity.Intercept(f(g(h())))`.
func (c *EntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Entity = append(c.inters.Entity, interceptors...)
}

// Create returns a builder for creating a Entity entity.
func (c *EntityClient) Create() *EntityCreate {
	mutation := newEntityMutation(c.config, OpCreate)
	return &EntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Entity entities.
func (c *EntityClient) CreateBulk(builders ...*EntityCreate) *EntityCreateBulk {
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityClient) MapCreateBulk(slice any, setFunc func(*EntityCreate, int)) *EntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityCreateBulk{err: fmt.Errorf("calling to EntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Entity.
func (c *EntityClient) Update() *EntityUpdate {
	mutation := newEntityMutation(c.config, OpUpdate)
	return &EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityClient) UpdateOne(_m *Entity) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntity(_m))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityClient) UpdateOneID(id uuid.UUID) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntityID(id))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Entity.
func (c *EntityClient) Delete() *EntityDelete {
	mutation := newEntityMutation(c.config, OpDelete)
	return &EntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityClient) DeleteOne(_m *Entity) *EntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityClient) DeleteOneID(id uuid.UUID) *EntityDeleteOne {
	builder := c.Delete().Where(entity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityDeleteOne{builder}
}

// Query returns a query builder for Entity.
func (c *EntityClient) Query() *EntityQuery {
	return &EntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a Entity entity by its id.
func (c *EntityClient) Get(ctx context.Context, id uuid.UUID) (*Entity, error) {
	return c.Query().Where(entity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityClient) GetX(ctx context.Context, id uuid.UUID) *Entity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a Entity.
func (c *EntityClient) QueryFile(_m *Entity) *UploadedFileQuery {
	query := (&UploadedFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entity.Table, entity.FieldID, id),
			sqlgraph.To(uploadedfile.Table, uploadedfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entity.FileTable, entity.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a Entity.
func (c *EntityClient) QueryItems(_m *Entity) *EntityItemQuery {
	query := (&EntityItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entity.Table, entity.FieldID, id),
			sqlgraph.To(entityitem.Table, entityitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, entity.ItemsTable, entity.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityClient) Hooks() []Hook {
	return c.hooks.Entity
}

// Interceptors returns the client interceptors.
func (c *EntityClient) Interceptors() []Interceptor {
	return c.inters.Entity
}

func (c *EntityClient) mutate(ctx context.Context, m *EntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Entity mutation op: %q", m.Op())
	}
}

// EntityItemClient is a client for the EntityItem schema.
type EntityItemClient struct {
	config
}

// NewEntityItemClient returns a client for the EntityItem from the given config.
func NewEntityItemClient(c config) *EntityItemClient {
	return &EntityItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entityitem.Hooks(f(g(h())))`.
func (c *EntityItemClient) Use(hooks ...Hook) {
	c.hooks.EntityItem = append(c.hooks.EntityItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entityitem.Intercept(f(g(h())))`.
func (c *EntityItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityItem = append(c.inters.EntityItem, interceptors...)
}

// Create returns a builder for creating a EntityItem entity.
func (c *EntityItemClient) Create() *EntityItemCreate {
	mutation := newEntityItemMutation(c.config, OpCreate)
	return &EntityItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityItem entities.
func (c *EntityItemClient) CreateBulk(builders ...*EntityItemCreate) *EntityItemCreateBulk {
	return &EntityItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityItemClient) MapCreateBulk(slice any, setFunc func(*EntityItemCreate, int)) *EntityItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityItemCreateBulk{err: fmt.Errorf("calling to EntityItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityItem.
func (c *EntityItemClient) Update() *EntityItemUpdate {
	mutation := newEntityItemMutation(c.config, OpUpdate)
	return &EntityItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityItemClient) UpdateOne(_m *EntityItem) *EntityItemUpdateOne {
	mutation := newEntityItemMutation(c.config, OpUpdateOne, withEntityItem(_m))
	return &EntityItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityItemClient) UpdateOneID(id uuid.UUID) *EntityItemUpdateOne {
	mutation := newEntityItemMutation(c.config, OpUpdateOne, withEntityItemID(id))
	return &EntityItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityItem.
func (c *EntityItemClient) Delete() *EntityItemDelete {
	mutation := newEntityItemMutation(c.config, OpDelete)
	return &EntityItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityItemClient) DeleteOne(_m *EntityItem) *EntityItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityItemClient) DeleteOneID(id uuid.UUID) *EntityItemDeleteOne {
	builder := c.Delete().Where(entityitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityItemDeleteOne{builder}
}

// Query returns a query builder for EntityItem.
func (c *EntityItemClient) Query() *EntityItemQuery {
	return &EntityItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityItem},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityItem entity by its id.
func (c *EntityItemClient) Get(ctx context.Context, id uuid.UUID) (*EntityItem, error) {
	return c.Query().Where(entityitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityItemClient) GetX(ctx context.Context, id uuid.UUID) *EntityItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEntity queries the entity edge of a EntityItem.
func (c *EntityItemClient) QueryEntity(_m *EntityItem) *EntityQuery {
	query := (&EntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entityitem.Table, entityitem.FieldID, id),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entityitem.EntityTable, entityitem.EntityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityItemClient) Hooks() []Hook {
	return c.hooks.EntityItem
}

// Interceptors returns the client interceptors.
func (c *EntityItemClient) Interceptors() []Interceptor {
	return c.inters.EntityItem
}

func (c *EntityItemClient) mutate(ctx context.Context, m *EntityItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityItem mutation op: %q", m.Op())
	}
}

// UploadedFileClient is a client for the UploadedFile schema.
type UploadedFileClient struct {
	config
}

// NewUploadedFileClient returns a client for the UploadedFile from the given config.
func NewUploadedFileClient(c config) *UploadedFileClient {
	return &UploadedFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `uploadedfile.Hooks(f(g(h())))`.
func (c *UploadedFileClient) Use(hooks ...Hook) {
	c.hooks.UploadedFile = append(c.hooks.UploadedFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `uploadedfile.Intercept(f(g(h())))`.
func (c *UploadedFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.UploadedFile = append(c.inters.UploadedFile, interceptors...)
}

// Create returns a builder for creating a UploadedFile entity.
func (c *UploadedFileClient) Create() *UploadedFileCreate {
	mutation := newUploadedFileMutation(c.config, OpCreate)
	return &UploadedFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UploadedFile entities.
func (c *UploadedFileClient) CreateBulk(builders ...*UploadedFileCreate) *UploadedFileCreateBulk {
	return &UploadedFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UploadedFileClient) MapCreateBulk(slice any, setFunc func(*UploadedFileCreate, int)) *UploadedFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UploadedFileCreateBulk{err: fmt.Errorf("calling to UploadedFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UploadedFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UploadedFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UploadedFile.
func (c *UploadedFileClient) Update() *UploadedFileUpdate {
	mutation := newUploadedFileMutation(c.config, OpUpdate)
	return &UploadedFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UploadedFileClient) UpdateOne(_m *UploadedFile) *UploadedFileUpdateOne {
	mutation := newUploadedFileMutation(c.config, OpUpdateOne, withUploadedFile(_m))
	return &UploadedFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UploadedFileClient) UpdateOneID(id uuid.UUID) *UploadedFileUpdateOne {
	mutation := newUploadedFileMutation(c.config, OpUpdateOne, withUploadedFileID(id))
	return &UploadedFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UploadedFile.
func (c *UploadedFileClient) Delete() *UploadedFileDelete {
	mutation := newUploadedFileMutation(c.config, OpDelete)
	return &UploadedFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UploadedFileClient) DeleteOne(_m *UploadedFile) *UploadedFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UploadedFileClient) DeleteOneID(id uuid.UUID) *UploadedFileDeleteOne {
	builder := c.Delete().Where(uploadedfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UploadedFileDeleteOne{builder}
}

// Query returns a query builder for UploadedFile.
func (c *UploadedFileClient) Query() *UploadedFileQuery {
	return &UploadedFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUploadedFile},
		inters: c.Interceptors(),
	}
}

// Get returns a UploadedFile entity by its id.
func (c *UploadedFileClient) Get(ctx context.Context, id uuid.UUID) (*UploadedFile, error) {
	return c.Query().Where(uploadedfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UploadedFileClient) GetX(ctx context.Context, id uuid.UUID) *UploadedFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEntity queries the entity edge of a UploadedFile.
func (c *UploadedFileClient) QueryEntity(_m *UploadedFile) *EntityQuery {
	query := (&EntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadedfile.Table, uploadedfile.FieldID, id),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, uploadedfile.EntityTable, uploadedfile.EntityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnalyses queries the analyses edge of a UploadedFile.
func (c *UploadedFileClient) QueryAnalyses(_m *UploadedFile) *AnalysisRecordQuery {
	query := (&AnalysisRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadedfile.Table, uploadedfile.FieldID, id),
			sqlgraph.To(analysisrecord.Table, analysisrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, uploadedfile.AnalysesTable, uploadedfile.AnalysesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UploadedFileClient) Hooks() []Hook {
	return c.hooks.UploadedFile
}

// Interceptors returns the client interceptors.
func (c *UploadedFileClient) Interceptors() []Interceptor {
	return c.inters.UploadedFile
}

func (c *UploadedFileClient) mutate(ctx context.Context, m *UploadedFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UploadedFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UploadedFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UploadedFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UploadedFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UploadedFile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisRecord, Entity, EntityItem, UploadedFile []ent.Hook
	}
	inters struct {
		AnalysisRecord, Entity, EntityItem, UploadedFile []ent.Interceptor
	}
)
