// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/papervault/papervault/gen/ent/entity"
	"github.com/papervault/papervault/gen/ent/entityitem"
	"github.com/papervault/papervault/gen/ent/uploadedfile"
)

// EntityCreate is the builder for creating a Entity entity.
type EntityCreate struct {
	config
	mutation *EntityMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *EntityCreate) SetOwnerID(v uuid.UUID) *EntityCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetFileID sets the "file_id" field.
func (_c *EntityCreate) SetFileID(v uuid.UUID) *EntityCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetDocType sets the "doc_type" field.
func (_c *EntityCreate) SetDocType(v string) *EntityCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *EntityCreate) SetTitle(v string) *EntityCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDocDate sets the "doc_date" field.
func (_c *EntityCreate) SetDocDate(v time.Time) *EntityCreate {
	_c.mutation.SetDocDate(v)
	return _c
}

// SetFallbackDateUsed sets the "fallback_date_used" field.
func (_c *EntityCreate) SetFallbackDateUsed(v bool) *EntityCreate {
	_c.mutation.SetFallbackDateUsed(v)
	return _c
}

// SetNillableFallbackDateUsed sets the "fallback_date_used" field if the given value is not nil.
func (_c *EntityCreate) SetNillableFallbackDateUsed(v *bool) *EntityCreate {
	if v != nil {
		_c.SetFallbackDateUsed(*v)
	}
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *EntityCreate) SetCurrencyCode(v string) *EntityCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_c *EntityCreate) SetNillableCurrencyCode(v *string) *EntityCreate {
	if v != nil {
		_c.SetCurrencyCode(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *EntityCreate) SetTotalAmount(v float64) *EntityCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *EntityCreate) SetNillableTotalAmount(v *float64) *EntityCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *EntityCreate) SetConfidence(v float32) *EntityCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *EntityCreate) SetPayload(v json.RawMessage) *EntityCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *EntityCreate) SetWarnings(v []string) *EntityCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntityCreate) SetCreatedAt(v time.Time) *EntityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntityCreate) SetNillableCreatedAt(v *time.Time) *EntityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EntityCreate) SetUpdatedAt(v time.Time) *EntityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EntityCreate) SetNillableUpdatedAt(v *time.Time) *EntityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityCreate) SetID(v uuid.UUID) *EntityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EntityCreate) SetNillableID(v *uuid.UUID) *EntityCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the UploadedFile entity.
func (_c *EntityCreate) SetFile(v *UploadedFile) *EntityCreate {
	return _c.SetFileID(v.ID)
}

// AddItemIDs adds the "items" edge to the EntityItem entity by IDs.
func (_c *EntityCreate) AddItemIDs(ids ...uuid.UUID) *EntityCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the EntityItem entity.
func (_c *EntityCreate) AddItems(v ...*EntityItem) *EntityCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the EntityMutation object of the builder.
func (_c *EntityCreate) Mutation() *EntityMutation {
	return _c.mutation
}

// Save creates the Entity in the database.
func (_c *EntityCreate) Save(ctx context.Context) (*Entity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityCreate) SaveX(ctx context.Context) *Entity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityCreate) defaults() {
	if _, ok := _c.mutation.FallbackDateUsed(); !ok {
		v := entity.DefaultFallbackDateUsed
		_c.mutation.SetFallbackDateUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := entity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := entity.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Entity.owner_id"`)}
	}
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "Entity.file_id"`)}
	}
	if _, ok := _c.mutation.DocType(); !ok {
		return &ValidationError{Name: "doc_type", err: errors.New(`ent: missing required field "Entity.doc_type"`)}
	}
	if v, ok := _c.mutation.DocType(); ok {
		if err := entity.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Entity.doc_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Entity.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := entity.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Entity.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocDate(); !ok {
		return &ValidationError{Name: "doc_date", err: errors.New(`ent: missing required field "Entity.doc_date"`)}
	}
	if _, ok := _c.mutation.FallbackDateUsed(); !ok {
		return &ValidationError{Name: "fallback_date_used", err: errors.New(`ent: missing required field "Entity.fallback_date_used"`)}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := entity.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Entity.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Entity.confidence"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "Entity.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Entity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Entity.updated_at"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "Entity.file"`)}
	}
	return nil
}

func (_c *EntityCreate) sqlSave(ctx context.Context) (*Entity, error) {
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

func (_c *EntityCreate) createSpec() (*Entity, *sqlgraph.CreateSpec) {
	var (
		_node = &Entity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entity.Table, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(entity.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(entity.FieldDocType, field.TypeString, value)
		_node.DocType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(entity.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.DocDate(); ok {
		_spec.SetField(entity.FieldDocDate, field.TypeTime, value)
		_node.DocDate = value
	}
	if value, ok := _c.mutation.FallbackDateUsed(); ok {
		_spec.SetField(entity.FieldFallbackDateUsed, field.TypeBool, value)
		_node.FallbackDateUsed = value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(entity.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = &value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(entity.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(entity.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(entity.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(entity.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(entity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entity.FileTable,
			Columns: []string{entity.FileColumn},
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
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entity.ItemsTable,
			Columns: []string{entity.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entityitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EntityCreateBulk is the builder for creating many Entity entities in bulk.
type EntityCreateBulk struct {
	config
	err      error
	builders []*EntityCreate
}

// Save creates the Entity entities in the database.
func (_c *EntityCreateBulk) Save(ctx context.Context) ([]*Entity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Entity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityMutation)
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
func (_c *EntityCreateBulk) SaveX(ctx context.Context) []*Entity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
