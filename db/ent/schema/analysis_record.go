package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/papervault/papervault/constants"
	"github.com/papervault/papervault/db/ent/schema/utils"
)

// AnalysisRecord keeps the outcome of every classify/extract pass so the
// analytics surface can query unknown-type frequency, low-confidence rate
// and per-type validation failures without touching the write path.
type AnalysisRecord struct{ ent.Schema }

func (AnalysisRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "analysis_records"},
	}
}

func (AnalysisRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("file_id", uuid.UUID{}),
		field.String("chain_id").NotEmpty(),
		field.String("stage").NotEmpty().
			Validate(utils.EnumValidator(constants.StageClassify, constants.StageExtract)),
		field.String("doc_type").Optional(),
		field.Float32("confidence").Optional(),
		field.String("outcome").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.OutcomeOK),
				string(constants.OutcomeUnknownType),
				string(constants.OutcomeLowConfidence),
				string(constants.OutcomeValidationFailed),
				string(constants.OutcomeUnsupportedType),
				string(constants.OutcomeProviderError),
			)),
		field.String("detail").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (AnalysisRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", UploadedFile.Type).
			Ref("analyses").
			Field("file_id").
			Required().
			Unique(),
	}
}

func (AnalysisRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stage", "outcome"),
		index.Fields("doc_type", "created_at"),
	}
}
