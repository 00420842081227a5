package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonRecord is a saved lesson: context paragraphs plus questions,
// stored as the JSON document the user pasted or generated.
type LessonRecord struct {
	ent.Schema
}

func (LessonRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			DefaultFunc(func() int64 { return time.Now().UnixMilli() }).
			Comment("Creation-timestamp id (milliseconds since epoch)"),
		field.String("filename").
			NotEmpty().
			Comment("Display name, usually the original .json filename"),
		field.JSON("data", map[string]any{}).
			Comment("Raw lesson document: context + questions"),
		field.String("source").
			Default("db"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LessonRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("filename"),
	}
}
