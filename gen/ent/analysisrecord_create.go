// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/papervault/papervault/gen/ent/analysisrecord"
	"github.com/papervault/papervault/gen/ent/uploadedfile"
)

// AnalysisRecordCreate is the builder for creating a AnalysisRecord entity.
type AnalysisRecordCreate struct {
	config
	mutation *AnalysisRecordMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *AnalysisRecordCreate) SetFileID(v uuid.UUID) *AnalysisRecordCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetChainID sets the "chain_id" field.
func (_c *AnalysisRecordCreate) SetChainID(v string) *AnalysisRecordCreate {
	_c.mutation.SetChainID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *AnalysisRecordCreate) SetStage(v string) *AnalysisRecordCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetDocType sets the "doc_type" field.
func (_c *AnalysisRecordCreate) SetDocType(v string) *AnalysisRecordCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_c *AnalysisRecordCreate) SetNillableDocType(v *string) *AnalysisRecordCreate {
	if v != nil {
		_c.SetDocType(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AnalysisRecordCreate) SetConfidence(v float32) *AnalysisRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *AnalysisRecordCreate) SetNillableConfidence(v *float32) *AnalysisRecordCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *AnalysisRecordCreate) SetOutcome(v string) *AnalysisRecordCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *AnalysisRecordCreate) SetDetail(v string) *AnalysisRecordCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *AnalysisRecordCreate) SetNillableDetail(v *string) *AnalysisRecordCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisRecordCreate) SetCreatedAt(v time.Time) *AnalysisRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisRecordCreate) SetNillableCreatedAt(v *time.Time) *AnalysisRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisRecordCreate) SetID(v uuid.UUID) *AnalysisRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnalysisRecordCreate) SetNillableID(v *uuid.UUID) *AnalysisRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the UploadedFile entity.
func (_c *AnalysisRecordCreate) SetFile(v *UploadedFile) *AnalysisRecordCreate {
	return _c.SetFileID(v.ID)
}

// Mutation returns the AnalysisRecordMutation object of the builder.
func (_c *AnalysisRecordCreate) Mutation() *AnalysisRecordMutation {
	return _c.mutation
}

// Save creates the AnalysisRecord in the database.
func (_c *AnalysisRecordCreate) Save(ctx context.Context) (*AnalysisRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisRecordCreate) SaveX(ctx context.Context) *AnalysisRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := analysisrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisRecordCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "AnalysisRecord.file_id"`)}
	}
	if _, ok := _c.mutation.ChainID(); !ok {
		return &ValidationError{Name: "chain_id", err: errors.New(`ent: missing required field "AnalysisRecord.chain_id"`)}
	}
	if v, ok := _c.mutation.ChainID(); ok {
		if err := analysisrecord.ChainIDValidator(v); err != nil {
			return &ValidationError{Name: "chain_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisRecord.chain_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "AnalysisRecord.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := analysisrecord.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "AnalysisRecord.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "AnalysisRecord.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := analysisrecord.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AnalysisRecord.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisRecord.created_at"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "AnalysisRecord.file"`)}
	}
	return nil
}

func (_c *AnalysisRecordCreate) sqlSave(ctx context.Context) (*AnalysisRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisRecordCreate) createSpec() (*AnalysisRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisrecord.Table, sqlgraph.NewFieldSpec(analysisrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ChainID(); ok {
		_spec.SetField(analysisrecord.FieldChainID, field.TypeString, value)
		_node.ChainID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(analysisrecord.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(analysisrecord.FieldDocType, field.TypeString, value)
		_node.DocType = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(analysisrecord.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(analysisrecord.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(analysisrecord.FieldDetail, field.TypeString, value)
		_node.Detail = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
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
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisRecordCreateBulk is the builder for creating many AnalysisRecord entities in bulk.
type AnalysisRecordCreateBulk struct {
	config
	err      error
	builders []*AnalysisRecordCreate
}

// Save creates the AnalysisRecord entities in the database.
func (_c *AnalysisRecordCreateBulk) Save(ctx context.Context) ([]*AnalysisRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisRecordCreateBulk) SaveX(ctx context.Context) []*AnalysisRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
