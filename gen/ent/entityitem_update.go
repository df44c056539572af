// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/papervault/papervault/gen/ent/entity"
	"github.com/papervault/papervault/gen/ent/entityitem"
	"github.com/papervault/papervault/gen/ent/predicate"
)

// EntityItemUpdate is the builder for updating EntityItem entities.
type EntityItemUpdate struct {
	config
	hooks    []Hook
	mutation *EntityItemMutation
}

// Where appends a list predicates to the EntityItemUpdate builder.
func (_u *EntityItemUpdate) Where(ps ...predicate.EntityItem) *EntityItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *EntityItemUpdate) SetEntityID(v uuid.UUID) *EntityItemUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EntityItemUpdate) SetNillableEntityID(v *uuid.UUID) *EntityItemUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *EntityItemUpdate) SetPosition(v int) *EntityItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *EntityItemUpdate) SetNillablePosition(v *int) *EntityItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *EntityItemUpdate) AddPosition(v int) *EntityItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *EntityItemUpdate) SetDescription(v string) *EntityItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EntityItemUpdate) SetNillableDescription(v *string) *EntityItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *EntityItemUpdate) SetQuantity(v float64) *EntityItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *EntityItemUpdate) SetNillableQuantity(v *float64) *EntityItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *EntityItemUpdate) AddQuantity(v float64) *EntityItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *EntityItemUpdate) SetUnitPrice(v float64) *EntityItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *EntityItemUpdate) SetNillableUnitPrice(v *float64) *EntityItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *EntityItemUpdate) AddUnitPrice(v float64) *EntityItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (_u *EntityItemUpdate) ClearUnitPrice() *EntityItemUpdate {
	_u.mutation.ClearUnitPrice()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *EntityItemUpdate) SetAmount(v float64) *EntityItemUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *EntityItemUpdate) SetNillableAmount(v *float64) *EntityItemUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *EntityItemUpdate) AddAmount(v float64) *EntityItemUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *EntityItemUpdate) ClearAmount() *EntityItemUpdate {
	_u.mutation.ClearAmount()
	return _u
}

// SetEntity sets the "entity" edge to the Entity entity.
func (_u *EntityItemUpdate) SetEntity(v *Entity) *EntityItemUpdate {
	return _u.SetEntityID(v.ID)
}

// Mutation returns the EntityItemMutation object of the builder.
func (_u *EntityItemUpdate) Mutation() *EntityItemMutation {
	return _u.mutation
}

// ClearEntity clears the "entity" edge to the Entity entity.
func (_u *EntityItemUpdate) ClearEntity() *EntityItemUpdate {
	_u.mutation.ClearEntity()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityItemUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := entityitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "EntityItem.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := entityitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "EntityItem.description": %w`, err)}
		}
	}
	if _u.mutation.EntityCleared() && len(_u.mutation.EntityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityItem.entity"`)
	}
	return nil
}

func (_u *EntityItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityitem.Table, entityitem.Columns, sqlgraph.NewFieldSpec(entityitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(entityitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(entityitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(entityitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(entityitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(entityitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(entityitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(entityitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if _u.mutation.UnitPriceCleared() {
		_spec.ClearField(entityitem.FieldUnitPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(entityitem.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(entityitem.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(entityitem.FieldAmount, field.TypeFloat64)
	}
	if _u.mutation.EntityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityItemUpdateOne is the builder for updating a single EntityItem entity.
type EntityItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityItemMutation
}

// SetEntityID sets the "entity_id" field.
func (_u *EntityItemUpdateOne) SetEntityID(v uuid.UUID) *EntityItemUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EntityItemUpdateOne) SetNillableEntityID(v *uuid.UUID) *EntityItemUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *EntityItemUpdateOne) SetPosition(v int) *EntityItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *EntityItemUpdateOne) SetNillablePosition(v *int) *EntityItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *EntityItemUpdateOne) AddPosition(v int) *EntityItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *EntityItemUpdateOne) SetDescription(v string) *EntityItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EntityItemUpdateOne) SetNillableDescription(v *string) *EntityItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *EntityItemUpdateOne) SetQuantity(v float64) *EntityItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *EntityItemUpdateOne) SetNillableQuantity(v *float64) *EntityItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *EntityItemUpdateOne) AddQuantity(v float64) *EntityItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *EntityItemUpdateOne) SetUnitPrice(v float64) *EntityItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *EntityItemUpdateOne) SetNillableUnitPrice(v *float64) *EntityItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *EntityItemUpdateOne) AddUnitPrice(v float64) *EntityItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (_u *EntityItemUpdateOne) ClearUnitPrice() *EntityItemUpdateOne {
	_u.mutation.ClearUnitPrice()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *EntityItemUpdateOne) SetAmount(v float64) *EntityItemUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *EntityItemUpdateOne) SetNillableAmount(v *float64) *EntityItemUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *EntityItemUpdateOne) AddAmount(v float64) *EntityItemUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// ClearAmount clears the value of the "amount" field.
func (_u *EntityItemUpdateOne) ClearAmount() *EntityItemUpdateOne {
	_u.mutation.ClearAmount()
	return _u
}

// SetEntity sets the "entity" edge to the Entity entity.
func (_u *EntityItemUpdateOne) SetEntity(v *Entity) *EntityItemUpdateOne {
	return _u.SetEntityID(v.ID)
}

// Mutation returns the EntityItemMutation object of the builder.
func (_u *EntityItemUpdateOne) Mutation() *EntityItemMutation {
	return _u.mutation
}

// ClearEntity clears the "entity" edge to the Entity entity.
func (_u *EntityItemUpdateOne) ClearEntity() *EntityItemUpdateOne {
	_u.mutation.ClearEntity()
	return _u
}

// Where appends a list predicates to the EntityItemUpdate builder.
func (_u *EntityItemUpdateOne) Where(ps ...predicate.EntityItem) *EntityItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityItemUpdateOne) Select(field string, fields ...string) *EntityItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntityItem entity.
func (_u *EntityItemUpdateOne) Save(ctx context.Context) (*EntityItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityItemUpdateOne) SaveX(ctx context.Context) *EntityItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityItemUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := entityitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "EntityItem.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := entityitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "EntityItem.description": %w`, err)}
		}
	}
	if _u.mutation.EntityCleared() && len(_u.mutation.EntityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityItem.entity"`)
	}
	return nil
}

func (_u *EntityItemUpdateOne) sqlSave(ctx context.Context) (_node *EntityItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entityitem.Table, entityitem.Columns, sqlgraph.NewFieldSpec(entityitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntityItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entityitem.FieldID)
		for _, f := range fields {
			if !entityitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entityitem.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(entityitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(entityitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(entityitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(entityitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(entityitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(entityitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(entityitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if _u.mutation.UnitPriceCleared() {
		_spec.ClearField(entityitem.FieldUnitPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(entityitem.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(entityitem.FieldAmount, field.TypeFloat64, value)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(entityitem.FieldAmount, field.TypeFloat64)
	}
	if _u.mutation.EntityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EntityItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entityitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
