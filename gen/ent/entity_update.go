// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/papervault/papervault/gen/ent/entity"
	"github.com/papervault/papervault/gen/ent/entityitem"
	"github.com/papervault/papervault/gen/ent/predicate"
	"github.com/papervault/papervault/gen/ent/uploadedfile"
)

// EntityUpdate is the builder for updating Entity entities.
type EntityUpdate struct {
	config
	hooks    []Hook
	mutation *EntityMutation
}

// Where appends a list predicates to the EntityUpdate builder.
func (_u *EntityUpdate) Where(ps ...predicate.Entity) *EntityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *EntityUpdate) SetOwnerID(v uuid.UUID) *EntityUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableOwnerID(v *uuid.UUID) *EntityUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *EntityUpdate) SetFileID(v uuid.UUID) *EntityUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableFileID(v *uuid.UUID) *EntityUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *EntityUpdate) SetDocType(v string) *EntityUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableDocType(v *string) *EntityUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *EntityUpdate) SetTitle(v string) *EntityUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableTitle(v *string) *EntityUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDocDate sets the "doc_date" field.
func (_u *EntityUpdate) SetDocDate(v time.Time) *EntityUpdate {
	_u.mutation.SetDocDate(v)
	return _u
}

// SetNillableDocDate sets the "doc_date" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableDocDate(v *time.Time) *EntityUpdate {
	if v != nil {
		_u.SetDocDate(*v)
	}
	return _u
}

// SetFallbackDateUsed sets the "fallback_date_used" field.
func (_u *EntityUpdate) SetFallbackDateUsed(v bool) *EntityUpdate {
	_u.mutation.SetFallbackDateUsed(v)
	return _u
}

// SetNillableFallbackDateUsed sets the "fallback_date_used" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableFallbackDateUsed(v *bool) *EntityUpdate {
	if v != nil {
		_u.SetFallbackDateUsed(*v)
	}
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *EntityUpdate) SetCurrencyCode(v string) *EntityUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableCurrencyCode(v *string) *EntityUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *EntityUpdate) ClearCurrencyCode() *EntityUpdate {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *EntityUpdate) SetTotalAmount(v float64) *EntityUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableTotalAmount(v *float64) *EntityUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *EntityUpdate) AddTotalAmount(v float64) *EntityUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *EntityUpdate) ClearTotalAmount() *EntityUpdate {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EntityUpdate) SetConfidence(v float32) *EntityUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableConfidence(v *float32) *EntityUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EntityUpdate) AddConfidence(v float32) *EntityUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *EntityUpdate) SetPayload(v json.RawMessage) *EntityUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *EntityUpdate) AppendPayload(v json.RawMessage) *EntityUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *EntityUpdate) SetWarnings(v []string) *EntityUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *EntityUpdate) AppendWarnings(v []string) *EntityUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *EntityUpdate) ClearWarnings() *EntityUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EntityUpdate) SetCreatedAt(v time.Time) *EntityUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableCreatedAt(v *time.Time) *EntityUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityUpdate) SetUpdatedAt(v time.Time) *EntityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFile sets the "file" edge to the UploadedFile entity.
func (_u *EntityUpdate) SetFile(v *UploadedFile) *EntityUpdate {
	return _u.SetFileID(v.ID)
}

// AddItemIDs adds the "items" edge to the EntityItem entity by IDs.
func (_u *EntityUpdate) AddItemIDs(ids ...uuid.UUID) *EntityUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the EntityItem entity.
func (_u *EntityUpdate) AddItems(v ...*EntityItem) *EntityUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the EntityMutation object of the builder.
func (_u *EntityUpdate) Mutation() *EntityMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the UploadedFile entity.
func (_u *EntityUpdate) ClearFile() *EntityUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearItems clears all "items" edges to the EntityItem entity.
func (_u *EntityUpdate) ClearItems() *EntityUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to EntityItem entities by IDs.
func (_u *EntityUpdate) RemoveItemIDs(ids ...uuid.UUID) *EntityUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to EntityItem entities.
func (_u *EntityUpdate) RemoveItems(v ...*EntityItem) *EntityUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityUpdate) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := entity.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Entity.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := entity.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Entity.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := entity.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Entity.currency_code": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Entity.file"`)
	}
	return nil
}

func (_u *EntityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entity.Table, entity.Columns, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(entity.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(entity.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(entity.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocDate(); ok {
		_spec.SetField(entity.FieldDocDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FallbackDateUsed(); ok {
		_spec.SetField(entity.FieldFallbackDateUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(entity.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(entity.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(entity.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(entity.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(entity.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entity.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entity.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(entity.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, entity.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(entity.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, entity.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(entity.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(entity.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityUpdateOne is the builder for updating a single Entity entity.
type EntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *EntityUpdateOne) SetOwnerID(v uuid.UUID) *EntityUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableOwnerID(v *uuid.UUID) *EntityUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *EntityUpdateOne) SetFileID(v uuid.UUID) *EntityUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableFileID(v *uuid.UUID) *EntityUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *EntityUpdateOne) SetDocType(v string) *EntityUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableDocType(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *EntityUpdateOne) SetTitle(v string) *EntityUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableTitle(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDocDate sets the "doc_date" field.
func (_u *EntityUpdateOne) SetDocDate(v time.Time) *EntityUpdateOne {
	_u.mutation.SetDocDate(v)
	return _u
}

// SetNillableDocDate sets the "doc_date" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableDocDate(v *time.Time) *EntityUpdateOne {
	if v != nil {
		_u.SetDocDate(*v)
	}
	return _u
}

// SetFallbackDateUsed sets the "fallback_date_used" field.
func (_u *EntityUpdateOne) SetFallbackDateUsed(v bool) *EntityUpdateOne {
	_u.mutation.SetFallbackDateUsed(v)
	return _u
}

// SetNillableFallbackDateUsed sets the "fallback_date_used" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableFallbackDateUsed(v *bool) *EntityUpdateOne {
	if v != nil {
		_u.SetFallbackDateUsed(*v)
	}
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *EntityUpdateOne) SetCurrencyCode(v string) *EntityUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableCurrencyCode(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *EntityUpdateOne) ClearCurrencyCode() *EntityUpdateOne {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *EntityUpdateOne) SetTotalAmount(v float64) *EntityUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableTotalAmount(v *float64) *EntityUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *EntityUpdateOne) AddTotalAmount(v float64) *EntityUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *EntityUpdateOne) ClearTotalAmount() *EntityUpdateOne {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EntityUpdateOne) SetConfidence(v float32) *EntityUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableConfidence(v *float32) *EntityUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EntityUpdateOne) AddConfidence(v float32) *EntityUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *EntityUpdateOne) SetPayload(v json.RawMessage) *EntityUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *EntityUpdateOne) AppendPayload(v json.RawMessage) *EntityUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *EntityUpdateOne) SetWarnings(v []string) *EntityUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *EntityUpdateOne) AppendWarnings(v []string) *EntityUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *EntityUpdateOne) ClearWarnings() *EntityUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EntityUpdateOne) SetCreatedAt(v time.Time) *EntityUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableCreatedAt(v *time.Time) *EntityUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityUpdateOne) SetUpdatedAt(v time.Time) *EntityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFile sets the "file" edge to the UploadedFile entity.
func (_u *EntityUpdateOne) SetFile(v *UploadedFile) *EntityUpdateOne {
	return _u.SetFileID(v.ID)
}

// AddItemIDs adds the "items" edge to the EntityItem entity by IDs.
func (_u *EntityUpdateOne) AddItemIDs(ids ...uuid.UUID) *EntityUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the EntityItem entity.
func (_u *EntityUpdateOne) AddItems(v ...*EntityItem) *EntityUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the EntityMutation object of the builder.
func (_u *EntityUpdateOne) Mutation() *EntityMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the UploadedFile entity.
func (_u *EntityUpdateOne) ClearFile() *EntityUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearItems clears all "items" edges to the EntityItem entity.
func (_u *EntityUpdateOne) ClearItems() *EntityUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to EntityItem entities by IDs.
func (_u *EntityUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *EntityUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to EntityItem entities.
func (_u *EntityUpdateOne) RemoveItems(v ...*EntityItem) *EntityUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the EntityUpdate builder.
func (_u *EntityUpdateOne) Where(ps ...predicate.Entity) *EntityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityUpdateOne) Select(field string, fields ...string) *EntityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Entity entity.
func (_u *EntityUpdateOne) Save(ctx context.Context) (*Entity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityUpdateOne) SaveX(ctx context.Context) *Entity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityUpdateOne) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := entity.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Entity.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := entity.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Entity.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := entity.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Entity.currency_code": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Entity.file"`)
	}
	return nil
}

func (_u *EntityUpdateOne) sqlSave(ctx context.Context) (_node *Entity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entity.Table, entity.Columns, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Entity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entity.FieldID)
		for _, f := range fields {
			if !entity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entity.FieldID {
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
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(entity.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(entity.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(entity.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocDate(); ok {
		_spec.SetField(entity.FieldDocDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FallbackDateUsed(); ok {
		_spec.SetField(entity.FieldFallbackDateUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(entity.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(entity.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(entity.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(entity.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(entity.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(entity.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(entity.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(entity.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, entity.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(entity.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, entity.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(entity.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(entity.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Entity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
