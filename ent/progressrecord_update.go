// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dmorante/repaso/ent/predicate"
	"github.com/dmorante/repaso/ent/progressrecord"
)

// ProgressRecordUpdate is the builder for updating ProgressRecord entities.
type ProgressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdate) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetData sets the "data" field.
func (_u *ProgressRecordUpdate) SetData(v map[string]interface{}) *ProgressRecordUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdate) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProgressRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(progressrecord.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressRecordUpdateOne is the builder for updating a single ProgressRecord entity.
type ProgressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// SetData sets the "data" field.
func (_u *ProgressRecordUpdateOne) SetData(v map[string]interface{}) *ProgressRecordUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdateOne) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdateOne) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressRecordUpdateOne) Select(field string, fields ...string) *ProgressRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressRecord entity.
func (_u *ProgressRecordUpdateOne) Save(ctx context.Context) (*ProgressRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) SaveX(ctx context.Context) *ProgressRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProgressRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProgressRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressrecord.FieldID)
		for _, f := range fields {
			if !progressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressrecord.FieldID {
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
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(progressrecord.FieldData, field.TypeJSON, value)
	}
	_node = &ProgressRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
