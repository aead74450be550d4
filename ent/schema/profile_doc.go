package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProfileDoc stores the entire study profile for one account as a
// single JSON document. Writes replace the whole document and bump
// the version; last write wins.
type ProfileDoc struct {
	ent.Schema
}

func (ProfileDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("account_id").
			Unique().
			NotEmpty(),
		field.Int64("version").
			Default(0).
			Comment("Incremented on every Put"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.JSON("data", map[string]any{}).
			Comment("Full profile document as JSON"),
	}
}

func (ProfileDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id"),
	}
}
