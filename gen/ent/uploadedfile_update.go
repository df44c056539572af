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
	"github.com/papervault/papervault/gen/ent/entity"
	"github.com/papervault/papervault/gen/ent/predicate"
	"github.com/papervault/papervault/gen/ent/uploadedfile"
)

// UploadedFileUpdate is the builder for updating UploadedFile entities.
type UploadedFileUpdate struct {
	config
	hooks    []Hook
	mutation *UploadedFileMutation
}

// Where appends a list predicates to the UploadedFileUpdate builder.
func (_u *UploadedFileUpdate) Where(ps ...predicate.UploadedFile) *UploadedFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *UploadedFileUpdate) SetOwnerID(v uuid.UUID) *UploadedFileUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableOwnerID(v *uuid.UUID) *UploadedFileUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *UploadedFileUpdate) SetContentHash(v []byte) *UploadedFileUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *UploadedFileUpdate) SetStoragePath(v string) *UploadedFileUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableStoragePath(v *string) *UploadedFileUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetArchivePath sets the "archive_path" field.
func (_u *UploadedFileUpdate) SetArchivePath(v string) *UploadedFileUpdate {
	_u.mutation.SetArchivePath(v)
	return _u
}

// SetNillableArchivePath sets the "archive_path" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableArchivePath(v *string) *UploadedFileUpdate {
	if v != nil {
		_u.SetArchivePath(*v)
	}
	return _u
}

// ClearArchivePath clears the value of the "archive_path" field.
func (_u *UploadedFileUpdate) ClearArchivePath() *UploadedFileUpdate {
	_u.mutation.ClearArchivePath()
	return _u
}

// SetFilename sets the "filename" field.
func (_u *UploadedFileUpdate) SetFilename(v string) *UploadedFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableFilename(v *string) *UploadedFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *UploadedFileUpdate) SetFileExt(v string) *UploadedFileUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableFileExt(v *string) *UploadedFileUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *UploadedFileUpdate) SetFileSize(v int) *UploadedFileUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableFileSize(v *int) *UploadedFileUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *UploadedFileUpdate) AddFileSize(v int) *UploadedFileUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *UploadedFileUpdate) SetStatus(v string) *UploadedFileUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableStatus(v *string) *UploadedFileUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *UploadedFileUpdate) SetCategory(v string) *UploadedFileUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableCategory(v *string) *UploadedFileUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *UploadedFileUpdate) SetErrorMessage(v string) *UploadedFileUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableErrorMessage(v *string) *UploadedFileUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *UploadedFileUpdate) ClearErrorMessage() *UploadedFileUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *UploadedFileUpdate) SetUploadedAt(v time.Time) *UploadedFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *UploadedFileUpdate) SetNillableUploadedAt(v *time.Time) *UploadedFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddEntityIDs adds the "entity" edge to the Entity entity by IDs.
func (_u *UploadedFileUpdate) AddEntityIDs(ids ...uuid.UUID) *UploadedFileUpdate {
	_u.mutation.AddEntityIDs(ids...)
	return _u
}

// AddEntity adds the "entity" edges to the Entity entity.
func (_u *UploadedFileUpdate) AddEntity(v ...*Entity) *UploadedFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntityIDs(ids...)
}

// AddAnalysisIDs adds the "analyses" edge to the AnalysisRecord entity by IDs.
func (_u *UploadedFileUpdate) AddAnalysisIDs(ids ...uuid.UUID) *UploadedFileUpdate {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the AnalysisRecord entity.
func (_u *UploadedFileUpdate) AddAnalyses(v ...*AnalysisRecord) *UploadedFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// Mutation returns the UploadedFileMutation object of the builder.
func (_u *UploadedFileUpdate) Mutation() *UploadedFileMutation {
	return _u.mutation
}

// ClearEntity clears all "entity" edges to the Entity entity.
func (_u *UploadedFileUpdate) ClearEntity() *UploadedFileUpdate {
	_u.mutation.ClearEntity()
	return _u
}

// RemoveEntityIDs removes the "entity" edge to Entity entities by IDs.
func (_u *UploadedFileUpdate) RemoveEntityIDs(ids ...uuid.UUID) *UploadedFileUpdate {
	_u.mutation.RemoveEntityIDs(ids...)
	return _u
}

// RemoveEntity removes "entity" edges to Entity entities.
func (_u *UploadedFileUpdate) RemoveEntity(v ...*Entity) *UploadedFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntityIDs(ids...)
}

// ClearAnalyses clears all "analyses" edges to the AnalysisRecord entity.
func (_u *UploadedFileUpdate) ClearAnalyses() *UploadedFileUpdate {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to AnalysisRecord entities by IDs.
func (_u *UploadedFileUpdate) RemoveAnalysisIDs(ids ...uuid.UUID) *UploadedFileUpdate {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to AnalysisRecord entities.
func (_u *UploadedFileUpdate) RemoveAnalyses(v ...*AnalysisRecord) *UploadedFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UploadedFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadedFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UploadedFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadedFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadedFileUpdate) check() error {
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := uploadedfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := uploadedfile.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := uploadedfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := uploadedfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := uploadedfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := uploadedfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := uploadedfile.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.category": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadedFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadedfile.Table, uploadedfile.Columns, sqlgraph.NewFieldSpec(uploadedfile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(uploadedfile.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(uploadedfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(uploadedfile.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArchivePath(); ok {
		_spec.SetField(uploadedfile.FieldArchivePath, field.TypeString, value)
	}
	if _u.mutation.ArchivePathCleared() {
		_spec.ClearField(uploadedfile.FieldArchivePath, field.TypeString)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(uploadedfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(uploadedfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(uploadedfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(uploadedfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(uploadedfile.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(uploadedfile.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(uploadedfile.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(uploadedfile.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(uploadedfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.EntityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntityIDs(); len(nodes) > 0 && !_u.mutation.EntityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UploadedFileUpdateOne is the builder for updating a single UploadedFile entity.
type UploadedFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadedFileMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *UploadedFileUpdateOne) SetOwnerID(v uuid.UUID) *UploadedFileUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableOwnerID(v *uuid.UUID) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *UploadedFileUpdateOne) SetContentHash(v []byte) *UploadedFileUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *UploadedFileUpdateOne) SetStoragePath(v string) *UploadedFileUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableStoragePath(v *string) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetArchivePath sets the "archive_path" field.
func (_u *UploadedFileUpdateOne) SetArchivePath(v string) *UploadedFileUpdateOne {
	_u.mutation.SetArchivePath(v)
	return _u
}

// SetNillableArchivePath sets the "archive_path" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableArchivePath(v *string) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetArchivePath(*v)
	}
	return _u
}

// ClearArchivePath clears the value of the "archive_path" field.
func (_u *UploadedFileUpdateOne) ClearArchivePath() *UploadedFileUpdateOne {
	_u.mutation.ClearArchivePath()
	return _u
}

// SetFilename sets the "filename" field.
func (_u *UploadedFileUpdateOne) SetFilename(v string) *UploadedFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableFilename(v *string) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *UploadedFileUpdateOne) SetFileExt(v string) *UploadedFileUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableFileExt(v *string) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *UploadedFileUpdateOne) SetFileSize(v int) *UploadedFileUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableFileSize(v *int) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *UploadedFileUpdateOne) AddFileSize(v int) *UploadedFileUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *UploadedFileUpdateOne) SetStatus(v string) *UploadedFileUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableStatus(v *string) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *UploadedFileUpdateOne) SetCategory(v string) *UploadedFileUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableCategory(v *string) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *UploadedFileUpdateOne) SetErrorMessage(v string) *UploadedFileUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableErrorMessage(v *string) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *UploadedFileUpdateOne) ClearErrorMessage() *UploadedFileUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *UploadedFileUpdateOne) SetUploadedAt(v time.Time) *UploadedFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *UploadedFileUpdateOne) SetNillableUploadedAt(v *time.Time) *UploadedFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddEntityIDs adds the "entity" edge to the Entity entity by IDs.
func (_u *UploadedFileUpdateOne) AddEntityIDs(ids ...uuid.UUID) *UploadedFileUpdateOne {
	_u.mutation.AddEntityIDs(ids...)
	return _u
}

// AddEntity adds the "entity" edges to the Entity entity.
func (_u *UploadedFileUpdateOne) AddEntity(v ...*Entity) *UploadedFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntityIDs(ids...)
}

// AddAnalysisIDs adds the "analyses" edge to the AnalysisRecord entity by IDs.
func (_u *UploadedFileUpdateOne) AddAnalysisIDs(ids ...uuid.UUID) *UploadedFileUpdateOne {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the AnalysisRecord entity.
func (_u *UploadedFileUpdateOne) AddAnalyses(v ...*AnalysisRecord) *UploadedFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// Mutation returns the UploadedFileMutation object of the builder.
func (_u *UploadedFileUpdateOne) Mutation() *UploadedFileMutation {
	return _u.mutation
}

// ClearEntity clears all "entity" edges to the Entity entity.
func (_u *UploadedFileUpdateOne) ClearEntity() *UploadedFileUpdateOne {
	_u.mutation.ClearEntity()
	return _u
}

// RemoveEntityIDs removes the "entity" edge to Entity entities by IDs.
func (_u *UploadedFileUpdateOne) RemoveEntityIDs(ids ...uuid.UUID) *UploadedFileUpdateOne {
	_u.mutation.RemoveEntityIDs(ids...)
	return _u
}

// RemoveEntity removes "entity" edges to Entity entities.
func (_u *UploadedFileUpdateOne) RemoveEntity(v ...*Entity) *UploadedFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntityIDs(ids...)
}

// ClearAnalyses clears all "analyses" edges to the AnalysisRecord entity.
func (_u *UploadedFileUpdateOne) ClearAnalyses() *UploadedFileUpdateOne {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to AnalysisRecord entities by IDs.
func (_u *UploadedFileUpdateOne) RemoveAnalysisIDs(ids ...uuid.UUID) *UploadedFileUpdateOne {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to AnalysisRecord entities.
func (_u *UploadedFileUpdateOne) RemoveAnalyses(v ...*AnalysisRecord) *UploadedFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// Where appends a list predicates to the UploadedFileUpdate builder.
func (_u *UploadedFileUpdateOne) Where(ps ...predicate.UploadedFile) *UploadedFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UploadedFileUpdateOne) Select(field string, fields ...string) *UploadedFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UploadedFile entity.
func (_u *UploadedFileUpdateOne) Save(ctx context.Context) (*UploadedFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadedFileUpdateOne) SaveX(ctx context.Context) *UploadedFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UploadedFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadedFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadedFileUpdateOne) check() error {
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := uploadedfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := uploadedfile.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := uploadedfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := uploadedfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := uploadedfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := uploadedfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := uploadedfile.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "UploadedFile.category": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadedFileUpdateOne) sqlSave(ctx context.Context) (_node *UploadedFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadedfile.Table, uploadedfile.Columns, sqlgraph.NewFieldSpec(uploadedfile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UploadedFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadedfile.FieldID)
		for _, f := range fields {
			if !uploadedfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != uploadedfile.FieldID {
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
		_spec.SetField(uploadedfile.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(uploadedfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(uploadedfile.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArchivePath(); ok {
		_spec.SetField(uploadedfile.FieldArchivePath, field.TypeString, value)
	}
	if _u.mutation.ArchivePathCleared() {
		_spec.ClearField(uploadedfile.FieldArchivePath, field.TypeString)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(uploadedfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(uploadedfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(uploadedfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(uploadedfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(uploadedfile.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(uploadedfile.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(uploadedfile.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(uploadedfile.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(uploadedfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.EntityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntityIDs(); len(nodes) > 0 && !_u.mutation.EntityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &UploadedFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
