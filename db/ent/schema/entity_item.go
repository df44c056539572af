package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// EntityItem is a line item owned by an Entity (receipt/invoice positions,
// statement transactions). Items live and die with their parent.
type EntityItem struct{ ent.Schema }

func (EntityItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "entity_items"},
	}
}

func (EntityItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("entity_id", uuid.UUID{}),
		field.Int("position").NonNegative().Default(0),
		field.String("description").NotEmpty(),
		field.Float("quantity").Default(1).
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,3)"}),
		field.Float("unit_price").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
	}
}

func (EntityItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("entity", Entity.Type).
			Ref("items").
			Field("entity_id").
			Required().
			Unique(),
	}
}
