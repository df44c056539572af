// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/papervault/papervault/gen/ent/analysisrecord"
	"github.com/papervault/papervault/gen/ent/entity"
	"github.com/papervault/papervault/gen/ent/entityitem"
	"github.com/papervault/papervault/gen/ent/predicate"
	"github.com/papervault/papervault/gen/ent/uploadedfile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisRecord = "AnalysisRecord"
	TypeEntity         = "Entity"
	TypeEntityItem     = "EntityItem"
	TypeUploadedFile   = "UploadedFile"
)

// AnalysisRecordMutation represents an operation that mutates the AnalysisRecord nodes in the graph.
type AnalysisRecordMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	chain_id      *string
	stage         *string
	doc_type      *string
	confidence    *float32
	addconfidence *float32
	outcome       *string
	detail        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	file          *uuid.UUID
	clearedfile   bool
	done          bool
	oldValue      func(context.Context) (*AnalysisRecord, error)
	predicates    []predicate.AnalysisRecord
}

var _ ent.Mutation = (*AnalysisRecordMutation)(nil)

// analysisrecordOption allows management of the mutation configuration using functional options.
type analysisrecordOption func(*AnalysisRecordMutation)

// newAnalysisRecordMutation creates new mutation for the AnalysisRecord entity.
func newAnalysisRecordMutation(c config, op Op, opts ...analysisrecordOption) *AnalysisRecordMutation {
	m := &AnalysisRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisRecordID sets the ID field of the mutation.
func withAnalysisRecordID(id uuid.UUID) analysisrecordOption {
	return func(m *AnalysisRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisRecord
		)
		m.oldValue = func(ctx context.Context) (*AnalysisRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisRecord sets the old AnalysisRecord of the mutation.
func withAnalysisRecord(node *AnalysisRecord) analysisrecordOption {
	return func(m *AnalysisRecordMutation) {
		m.oldValue = func(context.Context) (*AnalysisRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisRecord entities.
func (m *AnalysisRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *AnalysisRecordMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *AnalysisRecordMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *AnalysisRecordMutation) ResetFileID() {
	m.file = nil
}

// SetChainID sets the "chain_id" field.
func (m *AnalysisRecordMutation) SetChainID(s string) {
	m.chain_id = &s
}

// ChainID returns the value of the "chain_id" field in the mutation.
func (m *AnalysisRecordMutation) ChainID() (r string, exists bool) {
	v := m.chain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChainID returns the old "chain_id" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldChainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChainID: %w", err)
	}
	return oldValue.ChainID, nil
}

// ResetChainID resets all changes to the "chain_id" field.
func (m *AnalysisRecordMutation) ResetChainID() {
	m.chain_id = nil
}

// SetStage sets the "stage" field.
func (m *AnalysisRecordMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *AnalysisRecordMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *AnalysisRecordMutation) ResetStage() {
	m.stage = nil
}

// SetDocType sets the "doc_type" field.
func (m *AnalysisRecordMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *AnalysisRecordMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ClearDocType clears the value of the "doc_type" field.
func (m *AnalysisRecordMutation) ClearDocType() {
	m.doc_type = nil
	m.clearedFields[analysisrecord.FieldDocType] = struct{}{}
}

// DocTypeCleared returns if the "doc_type" field was cleared in this mutation.
func (m *AnalysisRecordMutation) DocTypeCleared() bool {
	_, ok := m.clearedFields[analysisrecord.FieldDocType]
	return ok
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *AnalysisRecordMutation) ResetDocType() {
	m.doc_type = nil
	delete(m.clearedFields, analysisrecord.FieldDocType)
}

// SetConfidence sets the "confidence" field.
func (m *AnalysisRecordMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AnalysisRecordMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AnalysisRecordMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AnalysisRecordMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *AnalysisRecordMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[analysisrecord.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *AnalysisRecordMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[analysisrecord.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AnalysisRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, analysisrecord.FieldConfidence)
}

// SetOutcome sets the "outcome" field.
func (m *AnalysisRecordMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *AnalysisRecordMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *AnalysisRecordMutation) ResetOutcome() {
	m.outcome = nil
}

// SetDetail sets the "detail" field.
func (m *AnalysisRecordMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *AnalysisRecordMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldDetail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *AnalysisRecordMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[analysisrecord.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *AnalysisRecordMutation) DetailCleared() bool {
	_, ok := m.clearedFields[analysisrecord.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *AnalysisRecordMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, analysisrecord.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearFile clears the "file" edge to the UploadedFile entity.
func (m *AnalysisRecordMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[analysisrecord.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the UploadedFile entity was cleared.
func (m *AnalysisRecordMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *AnalysisRecordMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *AnalysisRecordMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the AnalysisRecordMutation builder.
func (m *AnalysisRecordMutation) Where(ps ...predicate.AnalysisRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisRecord).
func (m *AnalysisRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.file != nil {
		fields = append(fields, analysisrecord.FieldFileID)
	}
	if m.chain_id != nil {
		fields = append(fields, analysisrecord.FieldChainID)
	}
	if m.stage != nil {
		fields = append(fields, analysisrecord.FieldStage)
	}
	if m.doc_type != nil {
		fields = append(fields, analysisrecord.FieldDocType)
	}
	if m.confidence != nil {
		fields = append(fields, analysisrecord.FieldConfidence)
	}
	if m.outcome != nil {
		fields = append(fields, analysisrecord.FieldOutcome)
	}
	if m.detail != nil {
		fields = append(fields, analysisrecord.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, analysisrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisrecord.FieldFileID:
		return m.FileID()
	case analysisrecord.FieldChainID:
		return m.ChainID()
	case analysisrecord.FieldStage:
		return m.Stage()
	case analysisrecord.FieldDocType:
		return m.DocType()
	case analysisrecord.FieldConfidence:
		return m.Confidence()
	case analysisrecord.FieldOutcome:
		return m.Outcome()
	case analysisrecord.FieldDetail:
		return m.Detail()
	case analysisrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisrecord.FieldFileID:
		return m.OldFileID(ctx)
	case analysisrecord.FieldChainID:
		return m.OldChainID(ctx)
	case analysisrecord.FieldStage:
		return m.OldStage(ctx)
	case analysisrecord.FieldDocType:
		return m.OldDocType(ctx)
	case analysisrecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case analysisrecord.FieldOutcome:
		return m.OldOutcome(ctx)
	case analysisrecord.FieldDetail:
		return m.OldDetail(ctx)
	case analysisrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisrecord.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case analysisrecord.FieldChainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChainID(v)
		return nil
	case analysisrecord.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case analysisrecord.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case analysisrecord.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case analysisrecord.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case analysisrecord.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case analysisrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisRecordMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, analysisrecord.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisrecord.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisrecord.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisrecord.FieldDocType) {
		fields = append(fields, analysisrecord.FieldDocType)
	}
	if m.FieldCleared(analysisrecord.FieldConfidence) {
		fields = append(fields, analysisrecord.FieldConfidence)
	}
	if m.FieldCleared(analysisrecord.FieldDetail) {
		fields = append(fields, analysisrecord.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisRecordMutation) ClearField(name string) error {
	switch name {
	case analysisrecord.FieldDocType:
		m.ClearDocType()
		return nil
	case analysisrecord.FieldConfidence:
		m.ClearConfidence()
		return nil
	case analysisrecord.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisRecordMutation) ResetField(name string) error {
	switch name {
	case analysisrecord.FieldFileID:
		m.ResetFileID()
		return nil
	case analysisrecord.FieldChainID:
		m.ResetChainID()
		return nil
	case analysisrecord.FieldStage:
		m.ResetStage()
		return nil
	case analysisrecord.FieldDocType:
		m.ResetDocType()
		return nil
	case analysisrecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case analysisrecord.FieldOutcome:
		m.ResetOutcome()
		return nil
	case analysisrecord.FieldDetail:
		m.ResetDetail()
		return nil
	case analysisrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.file != nil {
		edges = append(edges, analysisrecord.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysisrecord.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfile {
		edges = append(edges, analysisrecord.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case analysisrecord.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisRecordMutation) ClearEdge(name string) error {
	switch name {
	case analysisrecord.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisRecordMutation) ResetEdge(name string) error {
	switch name {
	case analysisrecord.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRecord edge %s", name)
}

// EntityMutation represents an operation that mutates the Entity nodes in the graph.
type EntityMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	owner_id           *uuid.UUID
	doc_type           *string
	title              *string
	doc_date           *time.Time
	fallback_date_used *bool
	currency_code      *string
	total_amount       *float64
	addtotal_amount    *float64
	confidence         *float32
	addconfidence      *float32
	payload            *json.RawMessage
	appendpayload      json.RawMessage
	warnings           *[]string
	appendwarnings     []string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	file               *uuid.UUID
	clearedfile        bool
	items              map[uuid.UUID]struct{}
	removeditems       map[uuid.UUID]struct{}
	cleareditems       bool
	done               bool
	oldValue           func(context.Context) (*Entity, error)
	predicates         []predicate.Entity
}

var _ ent.Mutation = (*EntityMutation)(nil)

// entityOption allows management of the mutation configuration using functional options.
type entityOption func(*EntityMutation)

// newEntityMutation creates new mutation for the Entity entity.
func newEntityMutation(c config, op Op, opts ...entityOption) *EntityMutation {
	m := &EntityMutation{
		config:        c,
		op:            op,
		typ:           TypeEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityID sets the ID field of the mutation.
func withEntityID(id uuid.UUID) entityOption {
	return func(m *EntityMutation) {
		var (
			err   error
			once  sync.Once
			value *Entity
		)
		m.oldValue = func(ctx context.Context) (*Entity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Entity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntity sets the old Entity of the mutation.
func withEntity(node *Entity) entityOption {
	return func(m *EntityMutation) {
		m.oldValue = func(context.Context) (*Entity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Entity entities.
func (m *EntityMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Entity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *EntityMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *EntityMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *EntityMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetFileID sets the "file_id" field.
func (m *EntityMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *EntityMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *EntityMutation) ResetFileID() {
	m.file = nil
}

// SetDocType sets the "doc_type" field.
func (m *EntityMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *EntityMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *EntityMutation) ResetDocType() {
	m.doc_type = nil
}

// SetTitle sets the "title" field.
func (m *EntityMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *EntityMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *EntityMutation) ResetTitle() {
	m.title = nil
}

// SetDocDate sets the "doc_date" field.
func (m *EntityMutation) SetDocDate(t time.Time) {
	m.doc_date = &t
}

// DocDate returns the value of the "doc_date" field in the mutation.
func (m *EntityMutation) DocDate() (r time.Time, exists bool) {
	v := m.doc_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDocDate returns the old "doc_date" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldDocDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocDate: %w", err)
	}
	return oldValue.DocDate, nil
}

// ResetDocDate resets all changes to the "doc_date" field.
func (m *EntityMutation) ResetDocDate() {
	m.doc_date = nil
}

// SetFallbackDateUsed sets the "fallback_date_used" field.
func (m *EntityMutation) SetFallbackDateUsed(b bool) {
	m.fallback_date_used = &b
}

// FallbackDateUsed returns the value of the "fallback_date_used" field in the mutation.
func (m *EntityMutation) FallbackDateUsed() (r bool, exists bool) {
	v := m.fallback_date_used
	if v == nil {
		return
	}
	return *v, true
}

// OldFallbackDateUsed returns the old "fallback_date_used" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldFallbackDateUsed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFallbackDateUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFallbackDateUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFallbackDateUsed: %w", err)
	}
	return oldValue.FallbackDateUsed, nil
}

// ResetFallbackDateUsed resets all changes to the "fallback_date_used" field.
func (m *EntityMutation) ResetFallbackDateUsed() {
	m.fallback_date_used = nil
}

// SetCurrencyCode sets the "currency_code" field.
func (m *EntityMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *EntityMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldCurrencyCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (m *EntityMutation) ClearCurrencyCode() {
	m.currency_code = nil
	m.clearedFields[entity.FieldCurrencyCode] = struct{}{}
}

// CurrencyCodeCleared returns if the "currency_code" field was cleared in this mutation.
func (m *EntityMutation) CurrencyCodeCleared() bool {
	_, ok := m.clearedFields[entity.FieldCurrencyCode]
	return ok
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *EntityMutation) ResetCurrencyCode() {
	m.currency_code = nil
	delete(m.clearedFields, entity.FieldCurrencyCode)
}

// SetTotalAmount sets the "total_amount" field.
func (m *EntityMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *EntityMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldTotalAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *EntityMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *EntityMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (m *EntityMutation) ClearTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	m.clearedFields[entity.FieldTotalAmount] = struct{}{}
}

// TotalAmountCleared returns if the "total_amount" field was cleared in this mutation.
func (m *EntityMutation) TotalAmountCleared() bool {
	_, ok := m.clearedFields[entity.FieldTotalAmount]
	return ok
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *EntityMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	delete(m.clearedFields, entity.FieldTotalAmount)
}

// SetConfidence sets the "confidence" field.
func (m *EntityMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EntityMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EntityMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EntityMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EntityMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetPayload sets the "payload" field.
func (m *EntityMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EntityMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *EntityMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *EntityMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ResetPayload resets all changes to the "payload" field.
func (m *EntityMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
}

// SetWarnings sets the "warnings" field.
func (m *EntityMutation) SetWarnings(s []string) {
	m.warnings = &s
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *EntityMutation) Warnings() (r []string, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldWarnings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds s to the "warnings" field.
func (m *EntityMutation) AppendWarnings(s []string) {
	m.appendwarnings = append(m.appendwarnings, s...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *EntityMutation) AppendedWarnings() ([]string, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *EntityMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[entity.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *EntityMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[entity.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *EntityMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, entity.FieldWarnings)
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EntityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EntityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EntityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearFile clears the "file" edge to the UploadedFile entity.
func (m *EntityMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[entity.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the UploadedFile entity was cleared.
func (m *EntityMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *EntityMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *EntityMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// AddItemIDs adds the "items" edge to the EntityItem entity by ids.
func (m *EntityMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the EntityItem entity.
func (m *EntityMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the EntityItem entity was cleared.
func (m *EntityMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the EntityItem entity by IDs.
func (m *EntityMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the EntityItem entity.
func (m *EntityMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *EntityMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *EntityMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the EntityMutation builder.
func (m *EntityMutation) Where(ps ...predicate.Entity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Entity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Entity).
func (m *EntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.owner_id != nil {
		fields = append(fields, entity.FieldOwnerID)
	}
	if m.file != nil {
		fields = append(fields, entity.FieldFileID)
	}
	if m.doc_type != nil {
		fields = append(fields, entity.FieldDocType)
	}
	if m.title != nil {
		fields = append(fields, entity.FieldTitle)
	}
	if m.doc_date != nil {
		fields = append(fields, entity.FieldDocDate)
	}
	if m.fallback_date_used != nil {
		fields = append(fields, entity.FieldFallbackDateUsed)
	}
	if m.currency_code != nil {
		fields = append(fields, entity.FieldCurrencyCode)
	}
	if m.total_amount != nil {
		fields = append(fields, entity.FieldTotalAmount)
	}
	if m.confidence != nil {
		fields = append(fields, entity.FieldConfidence)
	}
	if m.payload != nil {
		fields = append(fields, entity.FieldPayload)
	}
	if m.warnings != nil {
		fields = append(fields, entity.FieldWarnings)
	}
	if m.created_at != nil {
		fields = append(fields, entity.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, entity.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldOwnerID:
		return m.OwnerID()
	case entity.FieldFileID:
		return m.FileID()
	case entity.FieldDocType:
		return m.DocType()
	case entity.FieldTitle:
		return m.Title()
	case entity.FieldDocDate:
		return m.DocDate()
	case entity.FieldFallbackDateUsed:
		return m.FallbackDateUsed()
	case entity.FieldCurrencyCode:
		return m.CurrencyCode()
	case entity.FieldTotalAmount:
		return m.TotalAmount()
	case entity.FieldConfidence:
		return m.Confidence()
	case entity.FieldPayload:
		return m.Payload()
	case entity.FieldWarnings:
		return m.Warnings()
	case entity.FieldCreatedAt:
		return m.CreatedAt()
	case entity.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entity.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case entity.FieldFileID:
		return m.OldFileID(ctx)
	case entity.FieldDocType:
		return m.OldDocType(ctx)
	case entity.FieldTitle:
		return m.OldTitle(ctx)
	case entity.FieldDocDate:
		return m.OldDocDate(ctx)
	case entity.FieldFallbackDateUsed:
		return m.OldFallbackDateUsed(ctx)
	case entity.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case entity.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case entity.FieldConfidence:
		return m.OldConfidence(ctx)
	case entity.FieldPayload:
		return m.OldPayload(ctx)
	case entity.FieldWarnings:
		return m.OldWarnings(ctx)
	case entity.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case entity.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Entity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entity.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case entity.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case entity.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case entity.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case entity.FieldDocDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocDate(v)
		return nil
	case entity.FieldFallbackDateUsed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFallbackDateUsed(v)
		return nil
	case entity.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case entity.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case entity.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case entity.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case entity.FieldWarnings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	case entity.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case entity.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, entity.FieldTotalAmount)
	}
	if m.addconfidence != nil {
		fields = append(fields, entity.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldTotalAmount:
		return m.AddedTotalAmount()
	case entity.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entity.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case entity.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Entity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entity.FieldCurrencyCode) {
		fields = append(fields, entity.FieldCurrencyCode)
	}
	if m.FieldCleared(entity.FieldTotalAmount) {
		fields = append(fields, entity.FieldTotalAmount)
	}
	if m.FieldCleared(entity.FieldWarnings) {
		fields = append(fields, entity.FieldWarnings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityMutation) ClearField(name string) error {
	switch name {
	case entity.FieldCurrencyCode:
		m.ClearCurrencyCode()
		return nil
	case entity.FieldTotalAmount:
		m.ClearTotalAmount()
		return nil
	case entity.FieldWarnings:
		m.ClearWarnings()
		return nil
	}
	return fmt.Errorf("unknown Entity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityMutation) ResetField(name string) error {
	switch name {
	case entity.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case entity.FieldFileID:
		m.ResetFileID()
		return nil
	case entity.FieldDocType:
		m.ResetDocType()
		return nil
	case entity.FieldTitle:
		m.ResetTitle()
		return nil
	case entity.FieldDocDate:
		m.ResetDocDate()
		return nil
	case entity.FieldFallbackDateUsed:
		m.ResetFallbackDateUsed()
		return nil
	case entity.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case entity.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case entity.FieldConfidence:
		m.ResetConfidence()
		return nil
	case entity.FieldPayload:
		m.ResetPayload()
		return nil
	case entity.FieldWarnings:
		m.ResetWarnings()
		return nil
	case entity.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case entity.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.file != nil {
		edges = append(edges, entity.EdgeFile)
	}
	if m.items != nil {
		edges = append(edges, entity.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entity.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case entity.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeditems != nil {
		edges = append(edges, entity.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case entity.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfile {
		edges = append(edges, entity.EdgeFile)
	}
	if m.cleareditems {
		edges = append(edges, entity.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityMutation) EdgeCleared(name string) bool {
	switch name {
	case entity.EdgeFile:
		return m.clearedfile
	case entity.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityMutation) ClearEdge(name string) error {
	switch name {
	case entity.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown Entity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityMutation) ResetEdge(name string) error {
	switch name {
	case entity.EdgeFile:
		m.ResetFile()
		return nil
	case entity.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown Entity edge %s", name)
}

// EntityItemMutation represents an operation that mutates the EntityItem nodes in the graph.
type EntityItemMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	position      *int
	addposition   *int
	description   *string
	quantity      *float64
	addquantity   *float64
	unit_price    *float64
	addunit_price *float64
	amount        *float64
	addamount     *float64
	clearedFields map[string]struct{}
	entity        *uuid.UUID
	clearedentity bool
	done          bool
	oldValue      func(context.Context) (*EntityItem, error)
	predicates    []predicate.EntityItem
}

var _ ent.Mutation = (*EntityItemMutation)(nil)

// entityitemOption allows management of the mutation configuration using functional options.
type entityitemOption func(*EntityItemMutation)

// newEntityItemMutation creates new mutation for the EntityItem entity.
func newEntityItemMutation(c config, op Op, opts ...entityitemOption) *EntityItemMutation {
	m := &EntityItemMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityItemID sets the ID field of the mutation.
func withEntityItemID(id uuid.UUID) entityitemOption {
	return func(m *EntityItemMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityItem
		)
		m.oldValue = func(ctx context.Context) (*EntityItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityItem sets the old EntityItem of the mutation.
func withEntityItem(node *EntityItem) entityitemOption {
	return func(m *EntityItemMutation) {
		m.oldValue = func(context.Context) (*EntityItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntityItem entities.
func (m *EntityItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityID sets the "entity_id" field.
func (m *EntityItemMutation) SetEntityID(u uuid.UUID) {
	m.entity = &u
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *EntityItemMutation) EntityID() (r uuid.UUID, exists bool) {
	v := m.entity
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the EntityItem entity.
// If the EntityItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityItemMutation) OldEntityID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *EntityItemMutation) ResetEntityID() {
	m.entity = nil
}

// SetPosition sets the "position" field.
func (m *EntityItemMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *EntityItemMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the EntityItem entity.
// If the EntityItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityItemMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *EntityItemMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *EntityItemMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *EntityItemMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetDescription sets the "description" field.
func (m *EntityItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *EntityItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the EntityItem entity.
// If the EntityItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityItemMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *EntityItemMutation) ResetDescription() {
	m.description = nil
}

// SetQuantity sets the "quantity" field.
func (m *EntityItemMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *EntityItemMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the EntityItem entity.
// If the EntityItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityItemMutation) OldQuantity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *EntityItemMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *EntityItemMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *EntityItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *EntityItemMutation) SetUnitPrice(f float64) {
	m.unit_price = &f
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *EntityItemMutation) UnitPrice() (r float64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the EntityItem entity.
// If the EntityItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityItemMutation) OldUnitPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds f to the "unit_price" field.
func (m *EntityItemMutation) AddUnitPrice(f float64) {
	if m.addunit_price != nil {
		*m.addunit_price += f
	} else {
		m.addunit_price = &f
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *EntityItemMutation) AddedUnitPrice() (r float64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (m *EntityItemMutation) ClearUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
	m.clearedFields[entityitem.FieldUnitPrice] = struct{}{}
}

// UnitPriceCleared returns if the "unit_price" field was cleared in this mutation.
func (m *EntityItemMutation) UnitPriceCleared() bool {
	_, ok := m.clearedFields[entityitem.FieldUnitPrice]
	return ok
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *EntityItemMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
	delete(m.clearedFields, entityitem.FieldUnitPrice)
}

// SetAmount sets the "amount" field.
func (m *EntityItemMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *EntityItemMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the EntityItem entity.
// If the EntityItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityItemMutation) OldAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *EntityItemMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *EntityItemMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmount clears the value of the "amount" field.
func (m *EntityItemMutation) ClearAmount() {
	m.amount = nil
	m.addamount = nil
	m.clearedFields[entityitem.FieldAmount] = struct{}{}
}

// AmountCleared returns if the "amount" field was cleared in this mutation.
func (m *EntityItemMutation) AmountCleared() bool {
	_, ok := m.clearedFields[entityitem.FieldAmount]
	return ok
}

// ResetAmount resets all changes to the "amount" field.
func (m *EntityItemMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
	delete(m.clearedFields, entityitem.FieldAmount)
}

// ClearEntity clears the "entity" edge to the Entity entity.
func (m *EntityItemMutation) ClearEntity() {
	m.clearedentity = true
	m.clearedFields[entityitem.FieldEntityID] = struct{}{}
}

// EntityCleared reports if the "entity" edge to the Entity entity was cleared.
func (m *EntityItemMutation) EntityCleared() bool {
	return m.clearedentity
}

// EntityIDs returns the "entity" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EntityID instead. It exists only for internal usage by the builders.
func (m *EntityItemMutation) EntityIDs() (ids []uuid.UUID) {
	if id := m.entity; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEntity resets all changes to the "entity" edge.
func (m *EntityItemMutation) ResetEntity() {
	m.entity = nil
	m.clearedentity = false
}

// Where appends a list predicates to the EntityItemMutation builder.
func (m *EntityItemMutation) Where(ps ...predicate.EntityItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityItem).
func (m *EntityItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityItemMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.entity != nil {
		fields = append(fields, entityitem.FieldEntityID)
	}
	if m.position != nil {
		fields = append(fields, entityitem.FieldPosition)
	}
	if m.description != nil {
		fields = append(fields, entityitem.FieldDescription)
	}
	if m.quantity != nil {
		fields = append(fields, entityitem.FieldQuantity)
	}
	if m.unit_price != nil {
		fields = append(fields, entityitem.FieldUnitPrice)
	}
	if m.amount != nil {
		fields = append(fields, entityitem.FieldAmount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entityitem.FieldEntityID:
		return m.EntityID()
	case entityitem.FieldPosition:
		return m.Position()
	case entityitem.FieldDescription:
		return m.Description()
	case entityitem.FieldQuantity:
		return m.Quantity()
	case entityitem.FieldUnitPrice:
		return m.UnitPrice()
	case entityitem.FieldAmount:
		return m.Amount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entityitem.FieldEntityID:
		return m.OldEntityID(ctx)
	case entityitem.FieldPosition:
		return m.OldPosition(ctx)
	case entityitem.FieldDescription:
		return m.OldDescription(ctx)
	case entityitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case entityitem.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case entityitem.FieldAmount:
		return m.OldAmount(ctx)
	}
	return nil, fmt.Errorf("unknown EntityItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entityitem.FieldEntityID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case entityitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case entityitem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case entityitem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case entityitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case entityitem.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	}
	return fmt.Errorf("unknown EntityItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityItemMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, entityitem.FieldPosition)
	}
	if m.addquantity != nil {
		fields = append(fields, entityitem.FieldQuantity)
	}
	if m.addunit_price != nil {
		fields = append(fields, entityitem.FieldUnitPrice)
	}
	if m.addamount != nil {
		fields = append(fields, entityitem.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entityitem.FieldPosition:
		return m.AddedPosition()
	case entityitem.FieldQuantity:
		return m.AddedQuantity()
	case entityitem.FieldUnitPrice:
		return m.AddedUnitPrice()
	case entityitem.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entityitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case entityitem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case entityitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case entityitem.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown EntityItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entityitem.FieldUnitPrice) {
		fields = append(fields, entityitem.FieldUnitPrice)
	}
	if m.FieldCleared(entityitem.FieldAmount) {
		fields = append(fields, entityitem.FieldAmount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityItemMutation) ClearField(name string) error {
	switch name {
	case entityitem.FieldUnitPrice:
		m.ClearUnitPrice()
		return nil
	case entityitem.FieldAmount:
		m.ClearAmount()
		return nil
	}
	return fmt.Errorf("unknown EntityItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityItemMutation) ResetField(name string) error {
	switch name {
	case entityitem.FieldEntityID:
		m.ResetEntityID()
		return nil
	case entityitem.FieldPosition:
		m.ResetPosition()
		return nil
	case entityitem.FieldDescription:
		m.ResetDescription()
		return nil
	case entityitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case entityitem.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case entityitem.FieldAmount:
		m.ResetAmount()
		return nil
	}
	return fmt.Errorf("unknown EntityItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.entity != nil {
		edges = append(edges, entityitem.EdgeEntity)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entityitem.EdgeEntity:
		if id := m.entity; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedentity {
		edges = append(edges, entityitem.EdgeEntity)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityItemMutation) EdgeCleared(name string) bool {
	switch name {
	case entityitem.EdgeEntity:
		return m.clearedentity
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityItemMutation) ClearEdge(name string) error {
	switch name {
	case entityitem.EdgeEntity:
		m.ClearEntity()
		return nil
	}
	return fmt.Errorf("unknown EntityItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityItemMutation) ResetEdge(name string) error {
	switch name {
	case entityitem.EdgeEntity:
		m.ResetEntity()
		return nil
	}
	return fmt.Errorf("unknown EntityItem edge %s", name)
}

// UploadedFileMutation represents an operation that mutates the UploadedFile nodes in the graph.
type UploadedFileMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	owner_id        *uuid.UUID
	content_hash    *[]byte
	storage_path    *string
	archive_path    *string
	filename        *string
	file_ext        *string
	file_size       *int
	addfile_size    *int
	status          *string
	category        *string
	error_message   *string
	uploaded_at     *time.Time
	clearedFields   map[string]struct{}
	entity          map[uuid.UUID]struct{}
	removedentity   map[uuid.UUID]struct{}
	clearedentity   bool
	analyses        map[uuid.UUID]struct{}
	removedanalyses map[uuid.UUID]struct{}
	clearedanalyses bool
	done            bool
	oldValue        func(context.Context) (*UploadedFile, error)
	predicates      []predicate.UploadedFile
}

var _ ent.Mutation = (*UploadedFileMutation)(nil)

// uploadedfileOption allows management of the mutation configuration using functional options.
type uploadedfileOption func(*UploadedFileMutation)

// newUploadedFileMutation creates new mutation for the UploadedFile entity.
func newUploadedFileMutation(c config, op Op, opts ...uploadedfileOption) *UploadedFileMutation {
	m := &UploadedFileMutation{
		config:        c,
		op:            op,
		typ:           TypeUploadedFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUploadedFileID sets the ID field of the mutation.
func withUploadedFileID(id uuid.UUID) uploadedfileOption {
	return func(m *UploadedFileMutation) {
		var (
			err   error
			once  sync.Once
			value *UploadedFile
		)
		m.oldValue = func(ctx context.Context) (*UploadedFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UploadedFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUploadedFile sets the old UploadedFile of the mutation.
func withUploadedFile(node *UploadedFile) uploadedfileOption {
	return func(m *UploadedFileMutation) {
		m.oldValue = func(context.Context) (*UploadedFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UploadedFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UploadedFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UploadedFile entities.
func (m *UploadedFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UploadedFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UploadedFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UploadedFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *UploadedFileMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *UploadedFileMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *UploadedFileMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetContentHash sets the "content_hash" field.
func (m *UploadedFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *UploadedFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *UploadedFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *UploadedFileMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *UploadedFileMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *UploadedFileMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetArchivePath sets the "archive_path" field.
func (m *UploadedFileMutation) SetArchivePath(s string) {
	m.archive_path = &s
}

// ArchivePath returns the value of the "archive_path" field in the mutation.
func (m *UploadedFileMutation) ArchivePath() (r string, exists bool) {
	v := m.archive_path
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivePath returns the old "archive_path" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldArchivePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivePath: %w", err)
	}
	return oldValue.ArchivePath, nil
}

// ClearArchivePath clears the value of the "archive_path" field.
func (m *UploadedFileMutation) ClearArchivePath() {
	m.archive_path = nil
	m.clearedFields[uploadedfile.FieldArchivePath] = struct{}{}
}

// ArchivePathCleared returns if the "archive_path" field was cleared in this mutation.
func (m *UploadedFileMutation) ArchivePathCleared() bool {
	_, ok := m.clearedFields[uploadedfile.FieldArchivePath]
	return ok
}

// ResetArchivePath resets all changes to the "archive_path" field.
func (m *UploadedFileMutation) ResetArchivePath() {
	m.archive_path = nil
	delete(m.clearedFields, uploadedfile.FieldArchivePath)
}

// SetFilename sets the "filename" field.
func (m *UploadedFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *UploadedFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *UploadedFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *UploadedFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *UploadedFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *UploadedFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *UploadedFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *UploadedFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *UploadedFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *UploadedFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *UploadedFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetStatus sets the "status" field.
func (m *UploadedFileMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *UploadedFileMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UploadedFileMutation) ResetStatus() {
	m.status = nil
}

// SetCategory sets the "category" field.
func (m *UploadedFileMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *UploadedFileMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *UploadedFileMutation) ResetCategory() {
	m.category = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *UploadedFileMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *UploadedFileMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *UploadedFileMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[uploadedfile.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *UploadedFileMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[uploadedfile.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *UploadedFileMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, uploadedfile.FieldErrorMessage)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *UploadedFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *UploadedFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the UploadedFile entity.
// If the UploadedFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadedFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *UploadedFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddEntityIDs adds the "entity" edge to the Entity entity by ids.
func (m *UploadedFileMutation) AddEntityIDs(ids ...uuid.UUID) {
	if m.entity == nil {
		m.entity = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.entity[ids[i]] = struct{}{}
	}
}

// ClearEntity clears the "entity" edge to the Entity entity.
func (m *UploadedFileMutation) ClearEntity() {
	m.clearedentity = true
}

// EntityCleared reports if the "entity" edge to the Entity entity was cleared.
func (m *UploadedFileMutation) EntityCleared() bool {
	return m.clearedentity
}

// RemoveEntityIDs removes the "entity" edge to the Entity entity by IDs.
func (m *UploadedFileMutation) RemoveEntityIDs(ids ...uuid.UUID) {
	if m.removedentity == nil {
		m.removedentity = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.entity, ids[i])
		m.removedentity[ids[i]] = struct{}{}
	}
}

// RemovedEntity returns the removed IDs of the "entity" edge to the Entity entity.
func (m *UploadedFileMutation) RemovedEntityIDs() (ids []uuid.UUID) {
	for id := range m.removedentity {
		ids = append(ids, id)
	}
	return
}

// EntityIDs returns the "entity" edge IDs in the mutation.
func (m *UploadedFileMutation) EntityIDs() (ids []uuid.UUID) {
	for id := range m.entity {
		ids = append(ids, id)
	}
	return
}

// ResetEntity resets all changes to the "entity" edge.
func (m *UploadedFileMutation) ResetEntity() {
	m.entity = nil
	m.clearedentity = false
	m.removedentity = nil
}

// AddAnalysisIDs adds the "analyses" edge to the AnalysisRecord entity by ids.
func (m *UploadedFileMutation) AddAnalysisIDs(ids ...uuid.UUID) {
	if m.analyses == nil {
		m.analyses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.analyses[ids[i]] = struct{}{}
	}
}

// ClearAnalyses clears the "analyses" edge to the AnalysisRecord entity.
func (m *UploadedFileMutation) ClearAnalyses() {
	m.clearedanalyses = true
}

// AnalysesCleared reports if the "analyses" edge to the AnalysisRecord entity was cleared.
func (m *UploadedFileMutation) AnalysesCleared() bool {
	return m.clearedanalyses
}

// RemoveAnalysisIDs removes the "analyses" edge to the AnalysisRecord entity by IDs.
func (m *UploadedFileMutation) RemoveAnalysisIDs(ids ...uuid.UUID) {
	if m.removedanalyses == nil {
		m.removedanalyses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.analyses, ids[i])
		m.removedanalyses[ids[i]] = struct{}{}
	}
}

// RemovedAnalyses returns the removed IDs of the "analyses" edge to the AnalysisRecord entity.
func (m *UploadedFileMutation) RemovedAnalysesIDs() (ids []uuid.UUID) {
	for id := range m.removedanalyses {
		ids = append(ids, id)
	}
	return
}

// AnalysesIDs returns the "analyses" edge IDs in the mutation.
func (m *UploadedFileMutation) AnalysesIDs() (ids []uuid.UUID) {
	for id := range m.analyses {
		ids = append(ids, id)
	}
	return
}

// ResetAnalyses resets all changes to the "analyses" edge.
func (m *UploadedFileMutation) ResetAnalyses() {
	m.analyses = nil
	m.clearedanalyses = false
	m.removedanalyses = nil
}

// Where appends a list predicates to the UploadedFileMutation builder.
func (m *UploadedFileMutation) Where(ps ...predicate.UploadedFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UploadedFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UploadedFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UploadedFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UploadedFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UploadedFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UploadedFile).
func (m *UploadedFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UploadedFileMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.owner_id != nil {
		fields = append(fields, uploadedfile.FieldOwnerID)
	}
	if m.content_hash != nil {
		fields = append(fields, uploadedfile.FieldContentHash)
	}
	if m.storage_path != nil {
		fields = append(fields, uploadedfile.FieldStoragePath)
	}
	if m.archive_path != nil {
		fields = append(fields, uploadedfile.FieldArchivePath)
	}
	if m.filename != nil {
		fields = append(fields, uploadedfile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, uploadedfile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, uploadedfile.FieldFileSize)
	}
	if m.status != nil {
		fields = append(fields, uploadedfile.FieldStatus)
	}
	if m.category != nil {
		fields = append(fields, uploadedfile.FieldCategory)
	}
	if m.error_message != nil {
		fields = append(fields, uploadedfile.FieldErrorMessage)
	}
	if m.uploaded_at != nil {
		fields = append(fields, uploadedfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UploadedFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case uploadedfile.FieldOwnerID:
		return m.OwnerID()
	case uploadedfile.FieldContentHash:
		return m.ContentHash()
	case uploadedfile.FieldStoragePath:
		return m.StoragePath()
	case uploadedfile.FieldArchivePath:
		return m.ArchivePath()
	case uploadedfile.FieldFilename:
		return m.Filename()
	case uploadedfile.FieldFileExt:
		return m.FileExt()
	case uploadedfile.FieldFileSize:
		return m.FileSize()
	case uploadedfile.FieldStatus:
		return m.Status()
	case uploadedfile.FieldCategory:
		return m.Category()
	case uploadedfile.FieldErrorMessage:
		return m.ErrorMessage()
	case uploadedfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UploadedFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case uploadedfile.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case uploadedfile.FieldContentHash:
		return m.OldContentHash(ctx)
	case uploadedfile.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case uploadedfile.FieldArchivePath:
		return m.OldArchivePath(ctx)
	case uploadedfile.FieldFilename:
		return m.OldFilename(ctx)
	case uploadedfile.FieldFileExt:
		return m.OldFileExt(ctx)
	case uploadedfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case uploadedfile.FieldStatus:
		return m.OldStatus(ctx)
	case uploadedfile.FieldCategory:
		return m.OldCategory(ctx)
	case uploadedfile.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case uploadedfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UploadedFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadedFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case uploadedfile.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case uploadedfile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case uploadedfile.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case uploadedfile.FieldArchivePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivePath(v)
		return nil
	case uploadedfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case uploadedfile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case uploadedfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case uploadedfile.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case uploadedfile.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case uploadedfile.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case uploadedfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UploadedFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UploadedFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, uploadedfile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UploadedFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case uploadedfile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadedFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case uploadedfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown UploadedFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UploadedFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(uploadedfile.FieldArchivePath) {
		fields = append(fields, uploadedfile.FieldArchivePath)
	}
	if m.FieldCleared(uploadedfile.FieldErrorMessage) {
		fields = append(fields, uploadedfile.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UploadedFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UploadedFileMutation) ClearField(name string) error {
	switch name {
	case uploadedfile.FieldArchivePath:
		m.ClearArchivePath()
		return nil
	case uploadedfile.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown UploadedFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UploadedFileMutation) ResetField(name string) error {
	switch name {
	case uploadedfile.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case uploadedfile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case uploadedfile.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case uploadedfile.FieldArchivePath:
		m.ResetArchivePath()
		return nil
	case uploadedfile.FieldFilename:
		m.ResetFilename()
		return nil
	case uploadedfile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case uploadedfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case uploadedfile.FieldStatus:
		m.ResetStatus()
		return nil
	case uploadedfile.FieldCategory:
		m.ResetCategory()
		return nil
	case uploadedfile.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case uploadedfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown UploadedFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UploadedFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.entity != nil {
		edges = append(edges, uploadedfile.EdgeEntity)
	}
	if m.analyses != nil {
		edges = append(edges, uploadedfile.EdgeAnalyses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UploadedFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case uploadedfile.EdgeEntity:
		ids := make([]ent.Value, 0, len(m.entity))
		for id := range m.entity {
			ids = append(ids, id)
		}
		return ids
	case uploadedfile.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.analyses))
		for id := range m.analyses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UploadedFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedentity != nil {
		edges = append(edges, uploadedfile.EdgeEntity)
	}
	if m.removedanalyses != nil {
		edges = append(edges, uploadedfile.EdgeAnalyses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UploadedFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case uploadedfile.EdgeEntity:
		ids := make([]ent.Value, 0, len(m.removedentity))
		for id := range m.removedentity {
			ids = append(ids, id)
		}
		return ids
	case uploadedfile.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.removedanalyses))
		for id := range m.removedanalyses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UploadedFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedentity {
		edges = append(edges, uploadedfile.EdgeEntity)
	}
	if m.clearedanalyses {
		edges = append(edges, uploadedfile.EdgeAnalyses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UploadedFileMutation) EdgeCleared(name string) bool {
	switch name {
	case uploadedfile.EdgeEntity:
		return m.clearedentity
	case uploadedfile.EdgeAnalyses:
		return m.clearedanalyses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UploadedFileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown UploadedFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UploadedFileMutation) ResetEdge(name string) error {
	switch name {
	case uploadedfile.EdgeEntity:
		m.ResetEntity()
		return nil
	case uploadedfile.EdgeAnalyses:
		m.ResetAnalyses()
		return nil
	}
	return fmt.Errorf("unknown UploadedFile edge %s", name)
}
