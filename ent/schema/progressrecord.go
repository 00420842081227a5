package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProgressRecord is one finished quiz session's result. No schema is
// enforced beyond the unique id; the data payload is free-form JSON so
// older exports keep importing as the shape evolves.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			DefaultFunc(func() int64 { return time.Now().UnixMilli() }),
		field.JSON("data", map[string]any{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
