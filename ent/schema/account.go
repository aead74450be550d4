package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Account is a locally registered study account. One profile document
// hangs off each account.
type Account struct {
	ent.Schema
}

func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Immutable().
			NotEmpty().
			Comment("UUID account identifier"),
		field.String("email").
			Unique().
			NotEmpty(),
		field.String("display_name").
			Default(""),
		field.Bool("email_verified").
			Default(false),
		field.String("photo_url").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen_at").
			Default(time.Now).
			Comment("Updated on every app launch"),
	}
}

func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}
