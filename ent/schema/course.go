package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Course holds the class counts for one course. Percentages and
// missable-class counts are derived and never stored.
type Course struct {
	ent.Schema
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Positive().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Int("total_classes").
			NonNegative().
			Default(0).
			Comment("Classes held so far"),
		field.Int("attended_classes").
			NonNegative().
			Default(0).
			Comment("Classes attended; never exceeds total_classes"),
	}
}
