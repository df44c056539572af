// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/papervault/papervault/gen/ent/uploadedfile"
)

// UploadedFile is the model entity for the UploadedFile schema.
type UploadedFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// StoragePath holds the value of the "storage_path" field.
	StoragePath string `json:"storage_path,omitempty"`
	// ArchivePath holds the value of the "archive_path" field.
	ArchivePath *string `json:"archive_path,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UploadedFileQuery when eager-loading is set.
	Edges        UploadedFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UploadedFileEdges holds the relations/edges for other nodes in the graph.
type UploadedFileEdges struct {
	// Entity holds the value of the entity edge.
	Entity []*Entity `json:"entity,omitempty"`
	// Analyses holds the value of the analyses edge.
	Analyses []*AnalysisRecord `json:"analyses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EntityOrErr returns the Entity value or an error if the edge
// was not loaded in eager-loading.
func (e UploadedFileEdges) EntityOrErr() ([]*Entity, error) {
	if e.loadedTypes[0] {
		return e.Entity, nil
	}
	return nil, &NotLoadedError{edge: "entity"}
}

// AnalysesOrErr returns the Analyses value or an error if the edge
// was not loaded in eager-loading.
func (e UploadedFileEdges) AnalysesOrErr() ([]*AnalysisRecord, error) {
	if e.loadedTypes[1] {
		return e.Analyses, nil
	}
	return nil, &NotLoadedError{edge: "analyses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UploadedFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case uploadedfile.FieldContentHash:
			values[i] = new([]byte)
		case uploadedfile.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case uploadedfile.FieldStoragePath, uploadedfile.FieldArchivePath, uploadedfile.FieldFilename, uploadedfile.FieldFileExt, uploadedfile.FieldStatus, uploadedfile.FieldCategory, uploadedfile.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case uploadedfile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case uploadedfile.FieldID, uploadedfile.FieldOwnerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UploadedFile fields.
func (_m *UploadedFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case uploadedfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case uploadedfile.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case uploadedfile.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case uploadedfile.FieldStoragePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_path", values[i])
			} else if value.Valid {
				_m.StoragePath = value.String
			}
		case uploadedfile.FieldArchivePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field archive_path", values[i])
			} else if value.Valid {
				_m.ArchivePath = new(string)
				*_m.ArchivePath = value.String
			}
		case uploadedfile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case uploadedfile.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case uploadedfile.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case uploadedfile.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case uploadedfile.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case uploadedfile.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case uploadedfile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UploadedFile.
// This includes values selected through modifiers, order, etc.
func (_m *UploadedFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEntity queries the "entity" edge of the UploadedFile entity.
func (_m *UploadedFile) QueryEntity() *EntityQuery {
	return NewUploadedFileClient(_m.config).QueryEntity(_m)
}

// QueryAnalyses queries the "analyses" edge of the UploadedFile entity.
func (_m *UploadedFile) QueryAnalyses() *AnalysisRecordQuery {
	return NewUploadedFileClient(_m.config).QueryAnalyses(_m)
}

// Update returns a builder for updating this UploadedFile.
// Note that you need to call UploadedFile.Unwrap() before calling this method if this UploadedFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UploadedFile) Update() *UploadedFileUpdateOne {
	return NewUploadedFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UploadedFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UploadedFile) Unwrap() *UploadedFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UploadedFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UploadedFile) String() string {
	var builder strings.Builder
	builder.WriteString("UploadedFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("storage_path=")
	builder.WriteString(_m.StoragePath)
	builder.WriteString(", ")
	if v := _m.ArchivePath; v != nil {
		builder.WriteString("archive_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UploadedFiles is a parsable slice of UploadedFile.
type UploadedFiles []*UploadedFile
