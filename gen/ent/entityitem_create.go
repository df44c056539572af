// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/papervault/papervault/gen/ent/entity"
	"github.com/papervault/papervault/gen/ent/entityitem"
)

// EntityItemCreate is the builder for creating a EntityItem entity.
type EntityItemCreate struct {
	config
	mutation *EntityItemMutation
	hooks    []Hook
}

// SetEntityID sets the "entity_id" field.
func (_c *EntityItemCreate) SetEntityID(v uuid.UUID) *EntityItemCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *EntityItemCreate) SetPosition(v int) *EntityItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *EntityItemCreate) SetNillablePosition(v *int) *EntityItemCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *EntityItemCreate) SetDescription(v string) *EntityItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *EntityItemCreate) SetQuantity(v float64) *EntityItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *EntityItemCreate) SetNillableQuantity(v *float64) *EntityItemCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *EntityItemCreate) SetUnitPrice(v float64) *EntityItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_c *EntityItemCreate) SetNillableUnitPrice(v *float64) *EntityItemCreate {
	if v != nil {
		_c.SetUnitPrice(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *EntityItemCreate) SetAmount(v float64) *EntityItemCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *EntityItemCreate) SetNillableAmount(v *float64) *EntityItemCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityItemCreate) SetID(v uuid.UUID) *EntityItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EntityItemCreate) SetNillableID(v *uuid.UUID) *EntityItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEntity sets the "entity" edge to the Entity entity.
func (_c *EntityItemCreate) SetEntity(v *Entity) *EntityItemCreate {
	return _c.SetEntityID(v.ID)
}

// Mutation returns the EntityItemMutation object of the builder.
func (_c *EntityItemCreate) Mutation() *EntityItemMutation {
	return _c.mutation
}

// Save creates the EntityItem in the database.
func (_c *EntityItemCreate) Save(ctx context.Context) (*EntityItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityItemCreate) SaveX(ctx context.Context) *EntityItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityItemCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := entityitem.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		v := entityitem.DefaultQuantity
		_c.mutation.SetQuantity(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := entityitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityItemCreate) check() error {
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "EntityItem.entity_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "EntityItem.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := entityitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "EntityItem.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "EntityItem.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := entityitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "EntityItem.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "EntityItem.quantity"`)}
	}
	if len(_c.mutation.EntityIDs()) == 0 {
		return &ValidationError{Name: "entity", err: errors.New(`ent: missing required edge "EntityItem.entity"`)}
	}
	return nil
}

func (_c *EntityItemCreate) sqlSave(ctx context.Context) (*EntityItem, error) {
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

func (_c *EntityItemCreate) createSpec() (*EntityItem, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entityitem.Table, sqlgraph.NewFieldSpec(entityitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(entityitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(entityitem.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(entityitem.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(entityitem.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = &value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(entityitem.FieldAmount, field.TypeFloat64, value)
		_node.Amount = &value
	}
	if nodes := _c.mutation.EntityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entityitem.EntityTable,
			Columns: []string{entityitem.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EntityID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EntityItemCreateBulk is the builder for creating many EntityItem entities in bulk.
type EntityItemCreateBulk struct {
	config
	err      error
	builders []*EntityItemCreate
}

// Save creates the EntityItem entities in the database.
func (_c *EntityItemCreateBulk) Save(ctx context.Context) ([]*EntityItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityItemMutation)
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
func (_c *EntityItemCreateBulk) SaveX(ctx context.Context) []*EntityItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
