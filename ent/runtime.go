// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dmorante/repaso/ent/lessonrecord"
	"github.com/dmorante/repaso/ent/progressrecord"
	"github.com/dmorante/repaso/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	lessonrecordFields := schema.LessonRecord{}.Fields()
	_ = lessonrecordFields
	// lessonrecordDescFilename is the schema descriptor for filename field.
	lessonrecordDescFilename := lessonrecordFields[1].Descriptor()
	// lessonrecord.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	lessonrecord.FilenameValidator = lessonrecordDescFilename.Validators[0].(func(string) error)
	// lessonrecordDescSource is the schema descriptor for source field.
	lessonrecordDescSource := lessonrecordFields[3].Descriptor()
	// lessonrecord.DefaultSource holds the default value on creation for the source field.
	lessonrecord.DefaultSource = lessonrecordDescSource.Default.(string)
	// lessonrecordDescCreatedAt is the schema descriptor for created_at field.
	lessonrecordDescCreatedAt := lessonrecordFields[4].Descriptor()
	// lessonrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	lessonrecord.DefaultCreatedAt = lessonrecordDescCreatedAt.Default.(func() time.Time)
	// lessonrecordDescID is the schema descriptor for id field.
	lessonrecordDescID := lessonrecordFields[0].Descriptor()
	// lessonrecord.DefaultID holds the default value on creation for the id field.
	lessonrecord.DefaultID = lessonrecordDescID.Default.(func() int64)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescCreatedAt is the schema descriptor for created_at field.
	progressrecordDescCreatedAt := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	progressrecord.DefaultCreatedAt = progressrecordDescCreatedAt.Default.(func() time.Time)
	// progressrecordDescID is the schema descriptor for id field.
	progressrecordDescID := progressrecordFields[0].Descriptor()
	// progressrecord.DefaultID holds the default value on creation for the id field.
	progressrecord.DefaultID = progressrecordDescID.Default.(func() int64)
}
