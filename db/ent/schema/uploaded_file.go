package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/db/ent/schema/utils"
)

type UploadedFile struct {
	ent.Schema
}

func (UploadedFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "uploaded_files"},
	}
}

func (UploadedFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_id", uuid.UUID{}),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		// remote original in object storage; the authoritative copy
		field.String("storage_path").NotEmpty(),
		field.String("archive_path").Optional().Nillable(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.String("status").
			Default(string(constants.FileStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.FileStatusPending),
				string(constants.FileStatusProcessing),
				string(constants.FileStatusCompleted),
				string(constants.FileStatusFailed),
			)),
		field.String("category").
			Default(string(constants.CategoryDocument)).
			Validate(utils.EnumValidator(
				string(constants.CategoryReceipt),
				string(constants.CategoryDocument),
			)),
		field.String("error_message").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (UploadedFile) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE file -> AT MOST ONE entity (uniqueness enforced on the
		// entity's file_id index)
		edge.To("entity", Entity.Type),
		// ONE file -> MANY analysis records
		edge.To("analyses", AnalysisRecord.Type),
	}
}

func (UploadedFile) Indexes() []ent.Index {
	return []ent.Index{
		// final race guard for upload dedup: same bytes, same owner
		index.Fields("owner_id", "content_hash").Unique(),
		index.Fields("owner_id", "uploaded_at"),
		index.Fields("status"),
	}
}
