package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot holds the serialized state of an interrupted quiz session so a
// later launch can offer to resume it. One row per slot; the app uses a
// single slot today.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("slot").
			Unique().
			NotEmpty().
			Comment("Resume slot key"),
		field.Int("version").
			Comment("Snapshot layout version; mismatches are discarded"),
		field.String("quiz").
			Comment("Title of the quiz being resumed"),
		field.JSON("data", map[string]any{}).
			Comment("Full session state as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the snapshot was last written"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
