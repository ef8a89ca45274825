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
	"github.com/lingobee/lingobee/ent/completion"
	"github.com/lingobee/lingobee/ent/predicate"
)

// CompletionUpdate is the builder for updating Completion entities.
type CompletionUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionMutation
}

// Where appends a list predicates to the CompletionUpdate builder.
func (_u *CompletionUpdate) Where(ps ...predicate.Completion) *CompletionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CompletionUpdate) SetUserID(v string) *CompletionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableUserID(v *string) *CompletionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSectionID sets the "section_id" field.
func (_u *CompletionUpdate) SetSectionID(v string) *CompletionUpdate {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableSectionID(v *string) *CompletionUpdate {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *CompletionUpdate) SetNodeID(v string) *CompletionUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableNodeID(v *string) *CompletionUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *CompletionUpdate) SetScore(v int) *CompletionUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableScore(v *int) *CompletionUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CompletionUpdate) AddScore(v int) *CompletionUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *CompletionUpdate) SetXpEarned(v int) *CompletionUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableXpEarned(v *int) *CompletionUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *CompletionUpdate) AddXpEarned(v int) *CompletionUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CompletionUpdate) SetCompletedAt(v time.Time) *CompletionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CompletionUpdate) SetNillableCompletedAt(v *time.Time) *CompletionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the CompletionMutation object of the builder.
func (_u *CompletionUpdate) Mutation() *CompletionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompletionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompletionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := completion.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Completion.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SectionID(); ok {
		if err := completion.SectionIDValidator(v); err != nil {
			return &ValidationError{Name: "section_id", err: fmt.Errorf(`ent: validator failed for field "Completion.section_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := completion.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "Completion.node_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := completion.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Completion.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpEarned(); ok {
		if err := completion.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "Completion.xp_earned": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completion.Table, completion.Columns, sqlgraph.NewFieldSpec(completion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(completion.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionID(); ok {
		_spec.SetField(completion.FieldSectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(completion.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(completion.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(completion.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(completion.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(completion.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(completion.FieldCompletedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompletionUpdateOne is the builder for updating a single Completion entity.
type CompletionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionMutation
}

// SetUserID sets the "user_id" field.
func (_u *CompletionUpdateOne) SetUserID(v string) *CompletionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableUserID(v *string) *CompletionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSectionID sets the "section_id" field.
func (_u *CompletionUpdateOne) SetSectionID(v string) *CompletionUpdateOne {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableSectionID(v *string) *CompletionUpdateOne {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *CompletionUpdateOne) SetNodeID(v string) *CompletionUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableNodeID(v *string) *CompletionUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *CompletionUpdateOne) SetScore(v int) *CompletionUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableScore(v *int) *CompletionUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CompletionUpdateOne) AddScore(v int) *CompletionUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *CompletionUpdateOne) SetXpEarned(v int) *CompletionUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableXpEarned(v *int) *CompletionUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *CompletionUpdateOne) AddXpEarned(v int) *CompletionUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CompletionUpdateOne) SetCompletedAt(v time.Time) *CompletionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CompletionUpdateOne) SetNillableCompletedAt(v *time.Time) *CompletionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// Mutation returns the CompletionMutation object of the builder.
func (_u *CompletionUpdateOne) Mutation() *CompletionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompletionUpdate builder.
func (_u *CompletionUpdateOne) Where(ps ...predicate.Completion) *CompletionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompletionUpdateOne) Select(field string, fields ...string) *CompletionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Completion entity.
func (_u *CompletionUpdateOne) Save(ctx context.Context) (*Completion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionUpdateOne) SaveX(ctx context.Context) *Completion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompletionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := completion.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Completion.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SectionID(); ok {
		if err := completion.SectionIDValidator(v); err != nil {
			return &ValidationError{Name: "section_id", err: fmt.Errorf(`ent: validator failed for field "Completion.section_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := completion.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "Completion.node_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := completion.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Completion.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpEarned(); ok {
		if err := completion.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "Completion.xp_earned": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionUpdateOne) sqlSave(ctx context.Context) (_node *Completion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completion.Table, completion.Columns, sqlgraph.NewFieldSpec(completion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Completion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completion.FieldID)
		for _, f := range fields {
			if !completion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completion.FieldID {
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
		_spec.SetField(completion.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionID(); ok {
		_spec.SetField(completion.FieldSectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(completion.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(completion.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(completion.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(completion.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(completion.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(completion.FieldCompletedAt, field.TypeTime, value)
	}
	_node = &Completion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
