package schema

import (
	"encoding/json"
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

// Entity is the durable output of extraction: one canonical record per
// uploaded file, typed by the classified document type.
type Entity struct{ ent.Schema }

func (Entity) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "entities"},
	}
}

func (Entity) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_id", uuid.UUID{}),
		// explicit FK so the unique index below can reference it
		field.UUID("file_id", uuid.UUID{}),
		field.String("doc_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypeStrings()...)),
		// merchant, counterparty or document title depending on type
		field.String("title").NotEmpty(),
		field.Time("doc_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Bool("fallback_date_used").Default(false),
		field.String("currency_code").Optional().Nillable().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Float("total_amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float32("confidence"),
		// normalized nested payload as produced by the type's extractor
		field.JSON("payload", json.RawMessage{}),
		field.Strings("warnings").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Entity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", UploadedFile.Type).
			Ref("entity").
			Field("file_id").
			Required().
			Unique(),
		// ONE entity -> MANY line items
		edge.To("items", EntityItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Entity) Indexes() []ent.Index {
	return []ent.Index{
		// at most one canonical entity per uploaded file
		index.Fields("file_id").Unique(),
		index.Fields("owner_id", "doc_type"),
	}
}
