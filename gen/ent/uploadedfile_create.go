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
	"github.com/papervault/papervault/gen/ent/entity"
	"github.com/papervault/papervault/gen/ent/uploadedfile"
)

// UploadedFileCreate is the builder for creating a UploadedFile entity.
type UploadedFileCreate struct {
	config
	mutation *UploadedFileMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *UploadedFileCreate) SetOwnerID(v uuid.UUID) *UploadedFileCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *UploadedFileCreate) SetContentHash(v []byte) *UploadedFileCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *UploadedFileCreate) SetStoragePath(v string) *UploadedFileCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetArchivePath sets the "archive_path" field.
func (_c *UploadedFileCreate) SetArchivePath(v string) *UploadedFileCreate {
	_c.mutation.SetArchivePath(v)
	return _c
}

// SetNillableArchivePath sets the "archive_path" field if the given value is not nil.
func (_c *UploadedFileCreate) SetNillableArchivePath(v *string) *UploadedFileCreate {
	if v != nil {
		_c.SetArchivePath(*v)
	}
	return _c
}

// SetFilename sets the "filename" field.
func (_c *UploadedFileCreate) SetFilename(v string) *UploadedFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *UploadedFileCreate) SetFileExt(v string) *UploadedFileCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *UploadedFileCreate) SetFileSize(v int) *UploadedFileCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *UploadedFileCreate) SetStatus(v string) *UploadedFileCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UploadedFileCreate) SetNillableStatus(v *string) *UploadedFileCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *UploadedFileCreate) SetCategory(v string) *UploadedFileCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *UploadedFileCreate) SetNillableCategory(v *string) *UploadedFileCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *UploadedFileCreate) SetErrorMessage(v string) *UploadedFileCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *UploadedFileCreate) SetNillableErrorMessage(v *string) *UploadedFileCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *UploadedFileCreate) SetUploadedAt(v time.Time) *UploadedFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *UploadedFileCreate) SetNillableUploadedAt(v *time.Time) *UploadedFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UploadedFileCreate) SetID(v uuid.UUID) *UploadedFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UploadedFileCreate) SetNillableID(v *uuid.UUID) *UploadedFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddEntityIDs adds the "entity" edge to the Entity entity by IDs.
func (_c *UploadedFileCreate) AddEntityIDs(ids ...uuid.UUID) *UploadedFileCreate {
	_c.mutation.AddEntityIDs(ids...)
	return _c
}

// AddEntity adds the "entity" edges to the Entity entity.
func (_c *UploadedFileCreate) AddEntity(v ...*Entity) *UploadedFileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEntityIDs(ids...)
}

// AddAnalysisIDs adds the "analyses" edge to the AnalysisRecord entity by IDs.
func (_c *UploadedFileCreate) AddAnalysisIDs(ids ...uuid.UUID) *UploadedFileCreate {
	_c.mutation.AddAnalysisIDs(ids...)
	return _c
}

// AddAnalyses adds the "analyses" edges to the AnalysisRecord entity.
func (_c *UploadedFileCreate) AddAnalyses(v ...*AnalysisRecord) *UploadedFileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnalysisIDs(ids...)
}

// Mutation returns the UploadedFileMutation object of the builder.
func (_c *UploadedFileCreate) Mutation() *UploadedFileMutation {
	return _c.mutation
}

// Save creates the UploadedFile in the database.
func (_c *UploadedFileCreate) Save(ctx context.Context) (*UploadedFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UploadedFileCreate) SaveX(ctx context.Context) *UploadedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadedFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadedFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UploadedFileCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := uploadedfile.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := uploadedfile.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := uploadedfile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := uploadedfile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UploadedFileCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "UploadedFile.owner_id"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "UploadedFile.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := uploadedfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "UploadedFile.storage_path"`)}
	}
	if v, ok := _c.mutation.StoragePath(); ok {
		if err := uploadedfile.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.storage_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "UploadedFile.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := uploadedfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "UploadedFile.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := uploadedfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "UploadedFile.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := uploadedfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UploadedFile.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := uploadedfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "UploadedFile.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := uploadedfile.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "UploadedFile.uploaded_at"`)}
	}
	return nil
}

func (_c *UploadedFileCreate) sqlSave(ctx context.Context) (*UploadedFile, error) {
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

func (_c *UploadedFileCreate) createSpec() (*UploadedFile, *sqlgraph.CreateSpec) {
	var (
		_node = &UploadedFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(uploadedfile.Table, sqlgraph.NewFieldSpec(uploadedfile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(uploadedfile.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(uploadedfile.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(uploadedfile.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.ArchivePath(); ok {
		_spec.SetField(uploadedfile.FieldArchivePath, field.TypeString, value)
		_node.ArchivePath = &value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(uploadedfile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(uploadedfile.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(uploadedfile.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(uploadedfile.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(uploadedfile.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(uploadedfile.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(uploadedfile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.EntityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   uploadedfile.EntityTable,
			Columns: []string{uploadedfile.EntityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entity.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   uploadedfile.AnalysesTable,
			Columns: []string{uploadedfile.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UploadedFileCreateBulk is the builder for creating many UploadedFile entities in bulk.
type UploadedFileCreateBulk struct {
	config
	err      error
	builders []*UploadedFileCreate
}

// Save creates the UploadedFile entities in the database.
func (_c *UploadedFileCreateBulk) Save(ctx context.Context) ([]*UploadedFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UploadedFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadedFileMutation)
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
func (_c *UploadedFileCreateBulk) SaveX(ctx context.Context) []*UploadedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadedFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadedFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
