// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisRecord is the predicate function for analysisrecord builders.
type AnalysisRecord func(*sql.Selector)

// Entity is the predicate function for entity builders.
type Entity func(*sql.Selector)

// EntityItem is the predicate function for entityitem builders.
type EntityItem func(*sql.Selector)

// UploadedFile is the predicate function for uploadedfile builders.
type UploadedFile func(*sql.Selector)
