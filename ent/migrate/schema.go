// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LessonRecordsColumns holds the columns for the "lesson_records" table.
	LessonRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "source", Type: field.TypeString, Default: "db"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LessonRecordsTable holds the schema information for the "lesson_records" table.
	LessonRecordsTable = &schema.Table{
		Name:       "lesson_records",
		Columns:    LessonRecordsColumns,
		PrimaryKey: []*schema.Column{LessonRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonrecord_filename",
				Unique:  false,
				Columns: []*schema.Column{LessonRecordsColumns[1]},
			},
		},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LessonRecordsTable,
		ProgressRecordsTable,
	}
)

func init() {
}
