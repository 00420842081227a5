// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dmorante/repaso/ent/lessonrecord"
	"github.com/dmorante/repaso/ent/predicate"
)

// LessonRecordUpdate is the builder for updating LessonRecord entities.
type LessonRecordUpdate struct {
	config
	hooks    []Hook
	mutation *LessonRecordMutation
}

// Where appends a list predicates to the LessonRecordUpdate builder.
func (_u *LessonRecordUpdate) Where(ps ...predicate.LessonRecord) *LessonRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *LessonRecordUpdate) SetFilename(v string) *LessonRecordUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *LessonRecordUpdate) SetNillableFilename(v *string) *LessonRecordUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *LessonRecordUpdate) SetData(v map[string]interface{}) *LessonRecordUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *LessonRecordUpdate) SetSource(v string) *LessonRecordUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LessonRecordUpdate) SetNillableSource(v *string) *LessonRecordUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the LessonRecordMutation object of the builder.
func (_u *LessonRecordUpdate) Mutation() *LessonRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonRecordUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := lessonrecord.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "LessonRecord.filename": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonrecord.Table, lessonrecord.Columns, sqlgraph.NewFieldSpec(lessonrecord.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(lessonrecord.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(lessonrecord.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lessonrecord.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonRecordUpdateOne is the builder for updating a single LessonRecord entity.
type LessonRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonRecordMutation
}

// SetFilename sets the "filename" field.
func (_u *LessonRecordUpdateOne) SetFilename(v string) *LessonRecordUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *LessonRecordUpdateOne) SetNillableFilename(v *string) *LessonRecordUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *LessonRecordUpdateOne) SetData(v map[string]interface{}) *LessonRecordUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *LessonRecordUpdateOne) SetSource(v string) *LessonRecordUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LessonRecordUpdateOne) SetNillableSource(v *string) *LessonRecordUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the LessonRecordMutation object of the builder.
func (_u *LessonRecordUpdateOne) Mutation() *LessonRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonRecordUpdate builder.
func (_u *LessonRecordUpdateOne) Where(ps ...predicate.LessonRecord) *LessonRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonRecordUpdateOne) Select(field string, fields ...string) *LessonRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonRecord entity.
func (_u *LessonRecordUpdateOne) Save(ctx context.Context) (*LessonRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonRecordUpdateOne) SaveX(ctx context.Context) *LessonRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := lessonrecord.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "LessonRecord.filename": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonRecordUpdateOne) sqlSave(ctx context.Context) (_node *LessonRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonrecord.Table, lessonrecord.Columns, sqlgraph.NewFieldSpec(lessonrecord.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonrecord.FieldID)
		for _, f := range fields {
			if !lessonrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(lessonrecord.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(lessonrecord.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lessonrecord.FieldSource, field.TypeString, value)
	}
	_node = &LessonRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
