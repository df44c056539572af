// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/papervault/papervault/gen/ent/analysisrecord"
	"github.com/papervault/papervault/gen/ent/entity"
	"github.com/papervault/papervault/gen/ent/predicate"
	"github.com/papervault/papervault/gen/ent/uploadedfile"
)

// UploadedFileQuery is the builder for querying UploadedFile entities.
type UploadedFileQuery struct {
	config
	ctx          *QueryContext
	order        []uploadedfile.OrderOption
	inters       []Interceptor
	predicates   []predicate.UploadedFile
	withEntity   *EntityQuery
	withAnalyses *AnalysisRecordQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UploadedFileQuery builder.
func (_q *UploadedFileQuery) Where(ps ...predicate.UploadedFile) *UploadedFileQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *UploadedFileQuery) Limit(limit int) *UploadedFileQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *UploadedFileQuery) Offset(offset int) *UploadedFileQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *UploadedFileQuery) Unique(unique bool) *UploadedFileQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *UploadedFileQuery) Order(o ...uploadedfile.OrderOption) *UploadedFileQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryEntity chains the current query on the "entity" edge.
func (_q *UploadedFileQuery) QueryEntity() *EntityQuery {
	query := (&EntityClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadedfile.Table, uploadedfile.FieldID, selector),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, uploadedfile.EntityTable, uploadedfile.EntityColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAnalyses chains the current query on the "analyses" edge.
func (_q *UploadedFileQuery) QueryAnalyses() *AnalysisRecordQuery {
	query := (&AnalysisRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadedfile.Table, uploadedfile.FieldID, selector),
			sqlgraph.To(analysisrecord.Table, analysisrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, uploadedfile.AnalysesTable, uploadedfile.AnalysesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first UploadedFile entity from the query.
// Returns a *NotFoundError when no UploadedFile was found.
func (_q *UploadedFileQuery) First(ctx context.Context) (*UploadedFile, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{uploadedfile.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *UploadedFileQuery) FirstX(ctx context.Context) *UploadedFile {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UploadedFile ID from the query.
// Returns a *NotFoundError when no UploadedFile ID was found.
func (_q *UploadedFileQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{uploadedfile.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *UploadedFileQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UploadedFile entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UploadedFile entity is found.
// Returns a *NotFoundError when no UploadedFile entities are found.
func (_q *UploadedFileQuery) Only(ctx context.Context) (*UploadedFile, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{uploadedfile.Label}
	default:
		return nil, &NotSingularError{uploadedfile.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *UploadedFileQuery) OnlyX(ctx context.Context) *UploadedFile {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UploadedFile ID in the query.
// Returns a *NotSingularError when more than one UploadedFile ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *UploadedFileQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{uploadedfile.Label}
	default:
		err = &NotSingularError{uploadedfile.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *UploadedFileQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UploadedFiles.
func (_q *UploadedFileQuery) All(ctx context.Context) ([]*UploadedFile, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UploadedFile, *UploadedFileQuery]()
	return withInterceptors[[]*UploadedFile](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *UploadedFileQuery) AllX(ctx context.Context) []*UploadedFile {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UploadedFile IDs.
func (_q *UploadedFileQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(uploadedfile.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *UploadedFileQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *UploadedFileQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*UploadedFileQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *UploadedFileQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *UploadedFileQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *UploadedFileQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UploadedFileQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *UploadedFileQuery) Clone() *UploadedFileQuery {
	if _q == nil {
		return nil
	}
	return &UploadedFileQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]uploadedfile.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.UploadedFile{}, _q.predicates...),
		withEntity:   _q.withEntity.Clone(),
		withAnalyses: _q.withAnalyses.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithEntity tells the query-builder to eager-load the nodes that are connected to
// the "entity" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UploadedFileQuery) WithEntity(opts ...func(*EntityQuery)) *UploadedFileQuery {
	query := (&EntityClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEntity = query
	return _q
}

// WithAnalyses tells the query-builder to eager-load the nodes that are connected to
// the "analyses" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *UploadedFileQuery) WithAnalyses(opts ...func(*AnalysisRecordQuery)) *UploadedFileQuery {
	query := (&AnalysisRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnalyses = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		OwnerID uuid.UUID `json:"owner_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.UploadedFile.Query().
//		GroupBy(uploadedfile.FieldOwnerID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *UploadedFileQuery) GroupBy(field string, fields ...string) *UploadedFileGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UploadedFileGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = uploadedfile.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		OwnerID uuid.UUID `json:"owner_id,omitempty"`
//	}
//
//	client.UploadedFile.Query().
//		Select(uploadedfile.FieldOwnerID).
//		Scan(ctx, &v)
func (_q *UploadedFileQuery) Select(fields ...string) *UploadedFileSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &UploadedFileSelect{UploadedFileQuery: _q}
	sbuild.label = uploadedfile.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UploadedFileSelect configured with the given aggregations.
func (_q *UploadedFileQuery) Aggregate(fns ...AggregateFunc) *UploadedFileSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *UploadedFileQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !uploadedfile.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *UploadedFileQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UploadedFile, error) {
	var (
		nodes       = []*UploadedFile{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withEntity != nil,
			_q.withAnalyses != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UploadedFile).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UploadedFile{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withEntity; query != nil {
		if err := _q.loadEntity(ctx, query, nodes,
			func(n *UploadedFile) { n.Edges.Entity = []*Entity{} },
			func(n *UploadedFile, e *Entity) { n.Edges.Entity = append(n.Edges.Entity, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAnalyses; query != nil {
		if err := _q.loadAnalyses(ctx, query, nodes,
			func(n *UploadedFile) { n.Edges.Analyses = []*AnalysisRecord{} },
			func(n *UploadedFile, e *AnalysisRecord) { n.Edges.Analyses = append(n.Edges.Analyses, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *UploadedFileQuery) loadEntity(ctx context.Context, query *EntityQuery, nodes []*UploadedFile, init func(*UploadedFile), assign func(*UploadedFile, *Entity)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*UploadedFile)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(entity.FieldFileID)
	}
	query.Where(predicate.Entity(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(uploadedfile.EntityColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FileID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "file_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *UploadedFileQuery) loadAnalyses(ctx context.Context, query *AnalysisRecordQuery, nodes []*UploadedFile, init func(*UploadedFile), assign func(*UploadedFile, *AnalysisRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*UploadedFile)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(analysisrecord.FieldFileID)
	}
	query.Where(predicate.AnalysisRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(uploadedfile.AnalysesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FileID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "file_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *UploadedFileQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *UploadedFileQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(uploadedfile.Table, uploadedfile.Columns, sqlgraph.NewFieldSpec(uploadedfile.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadedfile.FieldID)
		for i := range fields {
			if fields[i] != uploadedfile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *UploadedFileQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(uploadedfile.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = uploadedfile.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// UploadedFileGroupBy is the group-by builder for UploadedFile entities.
type UploadedFileGroupBy struct {
	selector
	build *UploadedFileQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *UploadedFileGroupBy) Aggregate(fns ...AggregateFunc) *UploadedFileGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *UploadedFileGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UploadedFileQuery, *UploadedFileGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *UploadedFileGroupBy) sqlScan(ctx context.Context, root *UploadedFileQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UploadedFileSelect is the builder for selecting fields of UploadedFile entities.
type UploadedFileSelect struct {
	*UploadedFileQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *UploadedFileSelect) Aggregate(fns ...AggregateFunc) *UploadedFileSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *UploadedFileSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UploadedFileQuery, *UploadedFileSelect](ctx, _s.UploadedFileQuery, _s, _s.inters, v)
}

func (_s *UploadedFileSelect) sqlScan(ctx context.Context, root *UploadedFileQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
