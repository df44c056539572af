// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/papervault/papervault/gen/ent/analysisrecord"
	"github.com/papervault/papervault/gen/ent/uploadedfile"
)

// AnalysisRecord is the model entity for the AnalysisRecord schema.
type AnalysisRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// ChainID holds the value of the "chain_id" field.
	ChainID string `json:"chain_id,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage string `json:"stage,omitempty"`
	// DocType holds the value of the "doc_type" field.
	DocType string `json:"doc_type,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome string `json:"outcome,omitempty"`
	// Detail holds the value of the "detail" field.
	Detail *string `json:"detail,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisRecordQuery when eager-loading is set.
	Edges        AnalysisRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisRecordEdges holds the relations/edges for other nodes in the graph.
type AnalysisRecordEdges struct {
	// File holds the value of the file edge.
	File *UploadedFile `json:"file,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisRecordEdges) FileOrErr() (*UploadedFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: uploadedfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisrecord.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case analysisrecord.FieldChainID, analysisrecord.FieldStage, analysisrecord.FieldDocType, analysisrecord.FieldOutcome, analysisrecord.FieldDetail:
			values[i] = new(sql.NullString)
		case analysisrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case analysisrecord.FieldID, analysisrecord.FieldFileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisRecord fields.
func (_m *AnalysisRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case analysisrecord.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case analysisrecord.FieldChainID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chain_id", values[i])
			} else if value.Valid {
				_m.ChainID = value.String
			}
		case analysisrecord.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case analysisrecord.FieldDocType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_type", values[i])
			} else if value.Valid {
				_m.DocType = value.String
			}
		case analysisrecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = float32(value.Float64)
			}
		case analysisrecord.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case analysisrecord.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = new(string)
				*_m.Detail = value.String
			}
		case analysisrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the AnalysisRecord entity.
func (_m *AnalysisRecord) QueryFile() *UploadedFileQuery {
	return NewAnalysisRecordClient(_m.config).QueryFile(_m)
}

// Update returns a builder for updating this AnalysisRecord.
// Note that you need to call AnalysisRecord.Unwrap() before calling this method if this AnalysisRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisRecord) Update() *AnalysisRecordUpdateOne {
	return NewAnalysisRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisRecord) Unwrap() *AnalysisRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	builder.WriteString("chain_id=")
	builder.WriteString(_m.ChainID)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	builder.WriteString("doc_type=")
	builder.WriteString(_m.DocType)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	if v := _m.Detail; v != nil {
		builder.WriteString("detail=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisRecords is a parsable slice of AnalysisRecord.
type AnalysisRecords []*AnalysisRecord
