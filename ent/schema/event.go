package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event is an upcoming academic event shown on the dashboard.
type Event struct {
	ent.Schema
}

func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Positive().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("date").
			Match(dateRe).
			Comment("Calendar date, YYYY-MM-DD"),
		field.Enum("category").
			Values("test", "assignment", "fee", "other").
			Default("other"),
	}
}

func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date"),
	}
}
