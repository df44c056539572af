// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/papervault/papervault/gen/ent/analysisrecord"
	"github.com/papervault/papervault/gen/ent/predicate"
	"github.com/papervault/papervault/gen/ent/uploadedfile"
)

// AnalysisRecordUpdate is the builder for updating AnalysisRecord entities.
type AnalysisRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisRecordMutation
}

// Where appends a list predicates to the AnalysisRecordUpdate builder.
func (_u *AnalysisRecordUpdate) Where(ps ...predicate.AnalysisRecord) *AnalysisRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *AnalysisRecordUpdate) SetFileID(v uuid.UUID) *AnalysisRecordUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *AnalysisRecordUpdate) SetNillableFileID(v *uuid.UUID) *AnalysisRecordUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetChainID sets the "chain_id" field.
func (_u *AnalysisRecordUpdate) SetChainID(v string) *AnalysisRecordUpdate {
	_u.mutation.SetChainID(v)
	return _u
}

// SetNillableChainID sets the "chain_id" field if the given value is not nil.
func (_u *AnalysisRecordUpdate) SetNillableChainID(v *string) *AnalysisRecordUpdate {
	if v != nil {
		_u.SetChainID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *AnalysisRecordUpdate) SetStage(v string) *AnalysisRecordUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *AnalysisRecordUpdate) SetNillableStage(v *string) *AnalysisRecordUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *AnalysisRecordUpdate) SetDocType(v string) *AnalysisRecordUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *AnalysisRecordUpdate) SetNillableDocType(v *string) *AnalysisRecordUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// ClearDocType clears the value of the "doc_type" field.
func (_u *AnalysisRecordUpdate) ClearDocType() *AnalysisRecordUpdate {
	_u.mutation.ClearDocType()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnalysisRecordUpdate) SetConfidence(v float32) *AnalysisRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnalysisRecordUpdate) SetNillableConfidence(v *float32) *AnalysisRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnalysisRecordUpdate) AddConfidence(v float32) *AnalysisRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *AnalysisRecordUpdate) ClearConfidence() *AnalysisRecordUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AnalysisRecordUpdate) SetOutcome(v string) *AnalysisRecordUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AnalysisRecordUpdate) SetNillableOutcome(v *string) *AnalysisRecordUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *AnalysisRecordUpdate) SetDetail(v string) *AnalysisRecordUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *AnalysisRecordUpdate) SetNillableDetail(v *string) *AnalysisRecordUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *AnalysisRecordUpdate) ClearDetail() *AnalysisRecordUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalysisRecordUpdate) SetCreatedAt(v time.Time) *AnalysisRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalysisRecordUpdate) SetNillableCreatedAt(v *time.Time) *AnalysisRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the UploadedFile entity.
func (_u *AnalysisRecordUpdate) SetFile(v *UploadedFile) *AnalysisRecordUpdate {
	return _u.SetFileID(v.ID)
}

// Mutation returns the AnalysisRecordMutation object of the builder.
func (_u *AnalysisRecordUpdate) Mutation() *AnalysisRecordMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the UploadedFile entity.
func (_u *AnalysisRecordUpdate) ClearFile() *AnalysisRecordUpdate {
	_u.mutation.ClearFile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisRecordUpdate) check() error {
	if v, ok := _u.mutation.ChainID(); ok {
		if err := analysisrecord.ChainIDValidator(v); err != nil {
			return &ValidationError{Name: "chain_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisRecord.chain_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := analysisrecord.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "AnalysisRecord.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := analysisrecord.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AnalysisRecord.outcome": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisRecord.file"`)
	}
	return nil
}

func (_u *AnalysisRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisrecord.Table, analysisrecord.Columns, sqlgraph.NewFieldSpec(analysisrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChainID(); ok {
		_spec.SetField(analysisrecord.FieldChainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(analysisrecord.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(analysisrecord.FieldDocType, field.TypeString, value)
	}
	if _u.mutation.DocTypeCleared() {
		_spec.ClearField(analysisrecord.FieldDocType, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(analysisrecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(analysisrecord.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(analysisrecord.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(analysisrecord.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(analysisrecord.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(analysisrecord.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analysisrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisrecord.FileTable,
			Columns: []string{analysisrecord.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadedfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisrecord.FileTable,
			Columns: []string{analysisrecord.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadedfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisRecordUpdateOne is the builder for updating a single AnalysisRecord entity.
type AnalysisRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisRecordMutation
}

// SetFileID sets the "file_id" field.
func (_u *AnalysisRecordUpdateOne) SetFileID(v uuid.UUID) *AnalysisRecordUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *AnalysisRecordUpdateOne) SetNillableFileID(v *uuid.UUID) *AnalysisRecordUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetChainID sets the "chain_id" field.
func (_u *AnalysisRecordUpdateOne) SetChainID(v string) *AnalysisRecordUpdateOne {
	_u.mutation.SetChainID(v)
	return _u
}

// SetNillableChainID sets the "chain_id" field if the given value is not nil.
func (_u *AnalysisRecordUpdateOne) SetNillableChainID(v *string) *AnalysisRecordUpdateOne {
	if v != nil {
		_u.SetChainID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *AnalysisRecordUpdateOne) SetStage(v string) *AnalysisRecordUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *AnalysisRecordUpdateOne) SetNillableStage(v *string) *AnalysisRecordUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *AnalysisRecordUpdateOne) SetDocType(v string) *AnalysisRecordUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *AnalysisRecordUpdateOne) SetNillableDocType(v *string) *AnalysisRecordUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// ClearDocType clears the value of the "doc_type" field.
func (_u *AnalysisRecordUpdateOne) ClearDocType() *AnalysisRecordUpdateOne {
	_u.mutation.ClearDocType()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnalysisRecordUpdateOne) SetConfidence(v float32) *AnalysisRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnalysisRecordUpdateOne) SetNillableConfidence(v *float32) *AnalysisRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnalysisRecordUpdateOne) AddConfidence(v float32) *AnalysisRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *AnalysisRecordUpdateOne) ClearConfidence() *AnalysisRecordUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AnalysisRecordUpdateOne) SetOutcome(v string) *AnalysisRecordUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AnalysisRecordUpdateOne) SetNillableOutcome(v *string) *AnalysisRecordUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *AnalysisRecordUpdateOne) SetDetail(v string) *AnalysisRecordUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *AnalysisRecordUpdateOne) SetNillableDetail(v *string) *AnalysisRecordUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *AnalysisRecordUpdateOne) ClearDetail() *AnalysisRecordUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalysisRecordUpdateOne) SetCreatedAt(v time.Time) *AnalysisRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalysisRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *AnalysisRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the UploadedFile entity.
func (_u *AnalysisRecordUpdateOne) SetFile(v *UploadedFile) *AnalysisRecordUpdateOne {
	return _u.SetFileID(v.ID)
}

// Mutation returns the AnalysisRecordMutation object of the builder.
func (_u *AnalysisRecordUpdateOne) Mutation() *AnalysisRecordMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the UploadedFile entity.
func (_u *AnalysisRecordUpdateOne) ClearFile() *AnalysisRecordUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// Where appends a list predicates to the AnalysisRecordUpdate builder.
func (_u *AnalysisRecordUpdateOne) Where(ps ...predicate.AnalysisRecord) *AnalysisRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisRecordUpdateOne) Select(field string, fields ...string) *AnalysisRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisRecord entity.
func (_u *AnalysisRecordUpdateOne) Save(ctx context.Context) (*AnalysisRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisRecordUpdateOne) SaveX(ctx context.Context) *AnalysisRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisRecordUpdateOne) check() error {
	if v, ok := _u.mutation.ChainID(); ok {
		if err := analysisrecord.ChainIDValidator(v); err != nil {
			return &ValidationError{Name: "chain_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisRecord.chain_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := analysisrecord.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "AnalysisRecord.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := analysisrecord.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AnalysisRecord.outcome": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisRecord.file"`)
	}
	return nil
}

func (_u *AnalysisRecordUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisrecord.Table, analysisrecord.Columns, sqlgraph.NewFieldSpec(analysisrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisrecord.FieldID)
		for _, f := range fields {
			if !analysisrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChainID(); ok {
		_spec.SetField(analysisrecord.FieldChainID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(analysisrecord.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(analysisrecord.FieldDocType, field.TypeString, value)
	}
	if _u.mutation.DocTypeCleared() {
		_spec.ClearField(analysisrecord.FieldDocType, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(analysisrecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(analysisrecord.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(analysisrecord.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(analysisrecord.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(analysisrecord.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(analysisrecord.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analysisrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisrecord.FileTable,
			Columns: []string{analysisrecord.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadedfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisrecord.FileTable,
			Columns: []string{analysisrecord.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(uploadedfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalysisRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
