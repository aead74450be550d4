package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySessionEvent records every committed timer session. The profile
// document carries the derived totals; this log is the audit trail
// behind them.
type StudySessionEvent struct {
	ent.Schema
}

func (StudySessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StudySessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("account_id").
			NotEmpty(),
		field.String("subject").
			NotEmpty().
			Comment("Catalog subject the session was logged against"),
		field.Int("seconds").
			Default(0).
			Comment("Raw elapsed seconds"),
		field.Float("minutes").
			Default(0).
			Comment("Minutes credited to the day history, 2 decimal places"),
		field.String("mode").
			Default("stopwatch").
			Comment("stopwatch or countdown"),
		field.Int("xp_gained").
			Default(0),
	}
}

func (StudySessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id"),
		index.Fields("subject"),
	}
}
