// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lingobee/lingobee/ent/practicestat"
	"github.com/lingobee/lingobee/ent/predicate"
)

// PracticeStatUpdate is the builder for updating PracticeStat entities.
type PracticeStatUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeStatMutation
}

// Where appends a list predicates to the PracticeStatUpdate builder.
func (_u *PracticeStatUpdate) Where(ps ...predicate.PracticeStat) *PracticeStatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PracticeStatUpdate) SetUserID(v string) *PracticeStatUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeStatUpdate) SetNillableUserID(v *string) *PracticeStatUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTotalNodesCompleted sets the "total_nodes_completed" field.
func (_u *PracticeStatUpdate) SetTotalNodesCompleted(v int) *PracticeStatUpdate {
	_u.mutation.ResetTotalNodesCompleted()
	_u.mutation.SetTotalNodesCompleted(v)
	return _u
}

// SetNillableTotalNodesCompleted sets the "total_nodes_completed" field if the given value is not nil.
func (_u *PracticeStatUpdate) SetNillableTotalNodesCompleted(v *int) *PracticeStatUpdate {
	if v != nil {
		_u.SetTotalNodesCompleted(*v)
	}
	return _u
}

// AddTotalNodesCompleted adds value to the "total_nodes_completed" field.
func (_u *PracticeStatUpdate) AddTotalNodesCompleted(v int) *PracticeStatUpdate {
	_u.mutation.AddTotalNodesCompleted(v)
	return _u
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (_u *PracticeStatUpdate) SetTotalXpEarned(v int) *PracticeStatUpdate {
	_u.mutation.ResetTotalXpEarned()
	_u.mutation.SetTotalXpEarned(v)
	return _u
}

// SetNillableTotalXpEarned sets the "total_xp_earned" field if the given value is not nil.
func (_u *PracticeStatUpdate) SetNillableTotalXpEarned(v *int) *PracticeStatUpdate {
	if v != nil {
		_u.SetTotalXpEarned(*v)
	}
	return _u
}

// AddTotalXpEarned adds value to the "total_xp_earned" field.
func (_u *PracticeStatUpdate) AddTotalXpEarned(v int) *PracticeStatUpdate {
	_u.mutation.AddTotalXpEarned(v)
	return _u
}

// SetLastPracticeDate sets the "last_practice_date" field.
func (_u *PracticeStatUpdate) SetLastPracticeDate(v string) *PracticeStatUpdate {
	_u.mutation.SetLastPracticeDate(v)
	return _u
}

// SetNillableLastPracticeDate sets the "last_practice_date" field if the given value is not nil.
func (_u *PracticeStatUpdate) SetNillableLastPracticeDate(v *string) *PracticeStatUpdate {
	if v != nil {
		_u.SetLastPracticeDate(*v)
	}
	return _u
}

// ClearLastPracticeDate clears the value of the "last_practice_date" field.
func (_u *PracticeStatUpdate) ClearLastPracticeDate() *PracticeStatUpdate {
	_u.mutation.ClearLastPracticeDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PracticeStatUpdate) SetUpdatedAt(v time.Time) *PracticeStatUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PracticeStatMutation object of the builder.
func (_u *PracticeStatUpdate) Mutation() *PracticeStatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeStatUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeStatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeStatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeStatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PracticeStatUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := practicestat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeStatUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := practicestat.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PracticeStat.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalNodesCompleted(); ok {
		if err := practicestat.TotalNodesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "total_nodes_completed", err: fmt.Errorf(`ent: validator failed for field "PracticeStat.total_nodes_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalXpEarned(); ok {
		if err := practicestat.TotalXpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "total_xp_earned", err: fmt.Errorf(`ent: validator failed for field "PracticeStat.total_xp_earned": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeStatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicestat.Table, practicestat.Columns, sqlgraph.NewFieldSpec(practicestat.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(practicestat.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalNodesCompleted(); ok {
		_spec.SetField(practicestat.FieldTotalNodesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalNodesCompleted(); ok {
		_spec.AddField(practicestat.FieldTotalNodesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalXpEarned(); ok {
		_spec.SetField(practicestat.FieldTotalXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXpEarned(); ok {
		_spec.AddField(practicestat.FieldTotalXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticeDate(); ok {
		_spec.SetField(practicestat.FieldLastPracticeDate, field.TypeString, value)
	}
	if _u.mutation.LastPracticeDateCleared() {
		_spec.ClearField(practicestat.FieldLastPracticeDate, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(practicestat.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicestat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeStatUpdateOne is the builder for updating a single PracticeStat entity.
type PracticeStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeStatMutation
}

// SetUserID sets the "user_id" field.
func (_u *PracticeStatUpdateOne) SetUserID(v string) *PracticeStatUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PracticeStatUpdateOne) SetNillableUserID(v *string) *PracticeStatUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTotalNodesCompleted sets the "total_nodes_completed" field.
func (_u *PracticeStatUpdateOne) SetTotalNodesCompleted(v int) *PracticeStatUpdateOne {
	_u.mutation.ResetTotalNodesCompleted()
	_u.mutation.SetTotalNodesCompleted(v)
	return _u
}

// SetNillableTotalNodesCompleted sets the "total_nodes_completed" field if the given value is not nil.
func (_u *PracticeStatUpdateOne) SetNillableTotalNodesCompleted(v *int) *PracticeStatUpdateOne {
	if v != nil {
		_u.SetTotalNodesCompleted(*v)
	}
	return _u
}

// AddTotalNodesCompleted adds value to the "total_nodes_completed" field.
func (_u *PracticeStatUpdateOne) AddTotalNodesCompleted(v int) *PracticeStatUpdateOne {
	_u.mutation.AddTotalNodesCompleted(v)
	return _u
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (_u *PracticeStatUpdateOne) SetTotalXpEarned(v int) *PracticeStatUpdateOne {
	_u.mutation.ResetTotalXpEarned()
	_u.mutation.SetTotalXpEarned(v)
	return _u
}

// SetNillableTotalXpEarned sets the "total_xp_earned" field if the given value is not nil.
func (_u *PracticeStatUpdateOne) SetNillableTotalXpEarned(v *int) *PracticeStatUpdateOne {
	if v != nil {
		_u.SetTotalXpEarned(*v)
	}
	return _u
}

// AddTotalXpEarned adds value to the "total_xp_earned" field.
func (_u *PracticeStatUpdateOne) AddTotalXpEarned(v int) *PracticeStatUpdateOne {
	_u.mutation.AddTotalXpEarned(v)
	return _u
}

// SetLastPracticeDate sets the "last_practice_date" field.
func (_u *PracticeStatUpdateOne) SetLastPracticeDate(v string) *PracticeStatUpdateOne {
	_u.mutation.SetLastPracticeDate(v)
	return _u
}

// SetNillableLastPracticeDate sets the "last_practice_date" field if the given value is not nil.
func (_u *PracticeStatUpdateOne) SetNillableLastPracticeDate(v *string) *PracticeStatUpdateOne {
	if v != nil {
		_u.SetLastPracticeDate(*v)
	}
	return _u
}

// ClearLastPracticeDate clears the value of the "last_practice_date" field.
func (_u *PracticeStatUpdateOne) ClearLastPracticeDate() *PracticeStatUpdateOne {
	_u.mutation.ClearLastPracticeDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PracticeStatUpdateOne) SetUpdatedAt(v time.Time) *PracticeStatUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PracticeStatMutation object of the builder.
func (_u *PracticeStatUpdateOne) Mutation() *PracticeStatMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeStatUpdate builder.
func (_u *PracticeStatUpdateOne) Where(ps ...predicate.PracticeStat) *PracticeStatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeStatUpdateOne) Select(field string, fields ...string) *PracticeStatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeStat entity.
func (_u *PracticeStatUpdateOne) Save(ctx context.Context) (*PracticeStat, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeStatUpdateOne) SaveX(ctx context.Context) *PracticeStat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeStatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeStatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PracticeStatUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := practicestat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeStatUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := practicestat.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PracticeStat.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalNodesCompleted(); ok {
		if err := practicestat.TotalNodesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "total_nodes_completed", err: fmt.Errorf(`ent: validator failed for field "PracticeStat.total_nodes_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalXpEarned(); ok {
		if err := practicestat.TotalXpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "total_xp_earned", err: fmt.Errorf(`ent: validator failed for field "PracticeStat.total_xp_earned": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeStatUpdateOne) sqlSave(ctx context.Context) (_node *PracticeStat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicestat.Table, practicestat.Columns, sqlgraph.NewFieldSpec(practicestat.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicestat.FieldID)
		for _, f := range fields {
			if !practicestat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicestat.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(practicestat.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalNodesCompleted(); ok {
		_spec.SetField(practicestat.FieldTotalNodesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalNodesCompleted(); ok {
		_spec.AddField(practicestat.FieldTotalNodesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalXpEarned(); ok {
		_spec.SetField(practicestat.FieldTotalXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXpEarned(); ok {
		_spec.AddField(practicestat.FieldTotalXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPracticeDate(); ok {
		_spec.SetField(practicestat.FieldLastPracticeDate, field.TypeString, value)
	}
	if _u.mutation.LastPracticeDateCleared() {
		_spec.ClearField(practicestat.FieldLastPracticeDate, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(practicestat.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PracticeStat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicestat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
