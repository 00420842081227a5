// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LessonRecord is the predicate function for lessonrecord builders.
type LessonRecord func(*sql.Selector)

// ProgressRecord is the predicate function for progressrecord builders.
type ProgressRecord func(*sql.Selector)
