// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisRecordsColumns holds the columns for the "analysis_records" table.
	AnalysisRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "chain_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "doc_type", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "outcome", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// AnalysisRecordsTable holds the schema information for the "analysis_records" table.
	AnalysisRecordsTable = &schema.Table{
		Name:       "analysis_records",
		Columns:    AnalysisRecordsColumns,
		PrimaryKey: []*schema.Column{AnalysisRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analysis_records_uploaded_files_analyses",
				Columns:    []*schema.Column{AnalysisRecordsColumns[8]},
				RefColumns: []*schema.Column{UploadedFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysisrecord_stage_outcome",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRecordsColumns[2], AnalysisRecordsColumns[5]},
			},
			{
				Name:    "analysisrecord_doc_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRecordsColumns[3], AnalysisRecordsColumns[7]},
			},
		},
	}
	// EntitiesColumns holds the columns for the "entities" table.
	EntitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "doc_type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "doc_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "fallback_date_used", Type: field.TypeBool, Default: false},
		{Name: "currency_code", Type: field.TypeString, Nullable: true, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "confidence", Type: field.TypeFloat32},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// EntitiesTable holds the schema information for the "entities" table.
	EntitiesTable = &schema.Table{
		Name:       "entities",
		Columns:    EntitiesColumns,
		PrimaryKey: []*schema.Column{EntitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entities_uploaded_files_entity",
				Columns:    []*schema.Column{EntitiesColumns[13]},
				RefColumns: []*schema.Column{UploadedFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entity_file_id",
				Unique:  true,
				Columns: []*schema.Column{EntitiesColumns[13]},
			},
			{
				Name:    "entity_owner_id_doc_type",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[1], EntitiesColumns[2]},
			},
		},
	}
	// EntityItemsColumns holds the columns for the "entity_items" table.
	EntityItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "description", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeFloat64, Default: 1, SchemaType: map[string]string{"postgres": "numeric(10,3)"}},
		{Name: "unit_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "entity_id", Type: field.TypeUUID},
	}
	// EntityItemsTable holds the schema information for the "entity_items" table.
	EntityItemsTable = &schema.Table{
		Name:       "entity_items",
		Columns:    EntityItemsColumns,
		PrimaryKey: []*schema.Column{EntityItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entity_items_entities_items",
				Columns:    []*schema.Column{EntityItemsColumns[6]},
				RefColumns: []*schema.Column{EntitiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// UploadedFilesColumns holds the columns for the "uploaded_files" table.
	UploadedFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "archive_path", Type: field.TypeString, Nullable: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "category", Type: field.TypeString, Default: "document"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// UploadedFilesTable holds the schema information for the "uploaded_files" table.
	UploadedFilesTable = &schema.Table{
		Name:       "uploaded_files",
		Columns:    UploadedFilesColumns,
		PrimaryKey: []*schema.Column{UploadedFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "uploadedfile_owner_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{UploadedFilesColumns[1], UploadedFilesColumns[2]},
			},
			{
				Name:    "uploadedfile_owner_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{UploadedFilesColumns[1], UploadedFilesColumns[11]},
			},
			{
				Name:    "uploadedfile_status",
				Unique:  false,
				Columns: []*schema.Column{UploadedFilesColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisRecordsTable,
		EntitiesTable,
		EntityItemsTable,
		UploadedFilesTable,
	}
)

func init() {
	AnalysisRecordsTable.ForeignKeys[0].RefTable = UploadedFilesTable
	AnalysisRecordsTable.Annotation = &entsql.Annotation{
		Table: "analysis_records",
	}
	EntitiesTable.ForeignKeys[0].RefTable = UploadedFilesTable
	EntitiesTable.Annotation = &entsql.Annotation{
		Table: "entities",
	}
	EntityItemsTable.ForeignKeys[0].RefTable = EntitiesTable
	EntityItemsTable.Annotation = &entsql.Annotation{
		Table: "entity_items",
	}
	UploadedFilesTable.Annotation = &entsql.Annotation{
		Table: "uploaded_files",
	}
}
