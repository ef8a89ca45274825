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
)

// PracticeStatCreate is the builder for creating a PracticeStat entity.
type PracticeStatCreate struct {
	config
	mutation *PracticeStatMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *PracticeStatCreate) SetUserID(v string) *PracticeStatCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTotalNodesCompleted sets the "total_nodes_completed" field.
func (_c *PracticeStatCreate) SetTotalNodesCompleted(v int) *PracticeStatCreate {
	_c.mutation.SetTotalNodesCompleted(v)
	return _c
}

// SetNillableTotalNodesCompleted sets the "total_nodes_completed" field if the given value is not nil.
func (_c *PracticeStatCreate) SetNillableTotalNodesCompleted(v *int) *PracticeStatCreate {
	if v != nil {
		_c.SetTotalNodesCompleted(*v)
	}
	return _c
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (_c *PracticeStatCreate) SetTotalXpEarned(v int) *PracticeStatCreate {
	_c.mutation.SetTotalXpEarned(v)
	return _c
}

// SetNillableTotalXpEarned sets the "total_xp_earned" field if the given value is not nil.
func (_c *PracticeStatCreate) SetNillableTotalXpEarned(v *int) *PracticeStatCreate {
	if v != nil {
		_c.SetTotalXpEarned(*v)
	}
	return _c
}

// SetLastPracticeDate sets the "last_practice_date" field.
func (_c *PracticeStatCreate) SetLastPracticeDate(v string) *PracticeStatCreate {
	_c.mutation.SetLastPracticeDate(v)
	return _c
}

// SetNillableLastPracticeDate sets the "last_practice_date" field if the given value is not nil.
func (_c *PracticeStatCreate) SetNillableLastPracticeDate(v *string) *PracticeStatCreate {
	if v != nil {
		_c.SetLastPracticeDate(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PracticeStatCreate) SetUpdatedAt(v time.Time) *PracticeStatCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PracticeStatCreate) SetNillableUpdatedAt(v *time.Time) *PracticeStatCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PracticeStatMutation object of the builder.
func (_c *PracticeStatCreate) Mutation() *PracticeStatMutation {
	return _c.mutation
}

// Save creates the PracticeStat in the database.
func (_c *PracticeStatCreate) Save(ctx context.Context) (*PracticeStat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeStatCreate) SaveX(ctx context.Context) *PracticeStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeStatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeStatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeStatCreate) defaults() {
	if _, ok := _c.mutation.TotalNodesCompleted(); !ok {
		v := practicestat.DefaultTotalNodesCompleted
		_c.mutation.SetTotalNodesCompleted(v)
	}
	if _, ok := _c.mutation.TotalXpEarned(); !ok {
		v := practicestat.DefaultTotalXpEarned
		_c.mutation.SetTotalXpEarned(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := practicestat.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeStatCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PracticeStat.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := practicestat.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PracticeStat.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalNodesCompleted(); !ok {
		return &ValidationError{Name: "total_nodes_completed", err: errors.New(`ent: missing required field "PracticeStat.total_nodes_completed"`)}
	}
	if v, ok := _c.mutation.TotalNodesCompleted(); ok {
		if err := practicestat.TotalNodesCompletedValidator(v); err != nil {
			return &ValidationError{Name: "total_nodes_completed", err: fmt.Errorf(`ent: validator failed for field "PracticeStat.total_nodes_completed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalXpEarned(); !ok {
		return &ValidationError{Name: "total_xp_earned", err: errors.New(`ent: missing required field "PracticeStat.total_xp_earned"`)}
	}
	if v, ok := _c.mutation.TotalXpEarned(); ok {
		if err := practicestat.TotalXpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "total_xp_earned", err: fmt.Errorf(`ent: validator failed for field "PracticeStat.total_xp_earned": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PracticeStat.updated_at"`)}
	}
	return nil
}

func (_c *PracticeStatCreate) sqlSave(ctx context.Context) (*PracticeStat, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PracticeStatCreate) createSpec() (*PracticeStat, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeStat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practicestat.Table, sqlgraph.NewFieldSpec(practicestat.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(practicestat.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TotalNodesCompleted(); ok {
		_spec.SetField(practicestat.FieldTotalNodesCompleted, field.TypeInt, value)
		_node.TotalNodesCompleted = value
	}
	if value, ok := _c.mutation.TotalXpEarned(); ok {
		_spec.SetField(practicestat.FieldTotalXpEarned, field.TypeInt, value)
		_node.TotalXpEarned = value
	}
	if value, ok := _c.mutation.LastPracticeDate(); ok {
		_spec.SetField(practicestat.FieldLastPracticeDate, field.TypeString, value)
		_node.LastPracticeDate = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(practicestat.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PracticeStat.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PracticeStatUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PracticeStatCreate) OnConflict(opts ...sql.ConflictOption) *PracticeStatUpsertOne {
	_c.conflict = opts
	return &PracticeStatUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PracticeStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PracticeStatCreate) OnConflictColumns(columns ...string) *PracticeStatUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PracticeStatUpsertOne{
		create: _c,
	}
}

type (
	// PracticeStatUpsertOne is the builder for "upsert"-ing
	//  one PracticeStat node.
	PracticeStatUpsertOne struct {
		create *PracticeStatCreate
	}

	// PracticeStatUpsert is the "OnConflict" setter.
	PracticeStatUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *PracticeStatUpsert) SetUserID(v string) *PracticeStatUpsert {
	u.Set(practicestat.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PracticeStatUpsert) UpdateUserID() *PracticeStatUpsert {
	u.SetExcluded(practicestat.FieldUserID)
	return u
}

// SetTotalNodesCompleted sets the "total_nodes_completed" field.
func (u *PracticeStatUpsert) SetTotalNodesCompleted(v int) *PracticeStatUpsert {
	u.Set(practicestat.FieldTotalNodesCompleted, v)
	return u
}

// UpdateTotalNodesCompleted sets the "total_nodes_completed" field to the value that was provided on create.
func (u *PracticeStatUpsert) UpdateTotalNodesCompleted() *PracticeStatUpsert {
	u.SetExcluded(practicestat.FieldTotalNodesCompleted)
	return u
}

// AddTotalNodesCompleted adds v to the "total_nodes_completed" field.
func (u *PracticeStatUpsert) AddTotalNodesCompleted(v int) *PracticeStatUpsert {
	u.Add(practicestat.FieldTotalNodesCompleted, v)
	return u
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (u *PracticeStatUpsert) SetTotalXpEarned(v int) *PracticeStatUpsert {
	u.Set(practicestat.FieldTotalXpEarned, v)
	return u
}

// UpdateTotalXpEarned sets the "total_xp_earned" field to the value that was provided on create.
func (u *PracticeStatUpsert) UpdateTotalXpEarned() *PracticeStatUpsert {
	u.SetExcluded(practicestat.FieldTotalXpEarned)
	return u
}

// AddTotalXpEarned adds v to the "total_xp_earned" field.
func (u *PracticeStatUpsert) AddTotalXpEarned(v int) *PracticeStatUpsert {
	u.Add(practicestat.FieldTotalXpEarned, v)
	return u
}

// SetLastPracticeDate sets the "last_practice_date" field.
func (u *PracticeStatUpsert) SetLastPracticeDate(v string) *PracticeStatUpsert {
	u.Set(practicestat.FieldLastPracticeDate, v)
	return u
}

// UpdateLastPracticeDate sets the "last_practice_date" field to the value that was provided on create.
func (u *PracticeStatUpsert) UpdateLastPracticeDate() *PracticeStatUpsert {
	u.SetExcluded(practicestat.FieldLastPracticeDate)
	return u
}

// ClearLastPracticeDate clears the value of the "last_practice_date" field.
func (u *PracticeStatUpsert) ClearLastPracticeDate() *PracticeStatUpsert {
	u.SetNull(practicestat.FieldLastPracticeDate)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PracticeStatUpsert) SetUpdatedAt(v time.Time) *PracticeStatUpsert {
	u.Set(practicestat.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PracticeStatUpsert) UpdateUpdatedAt() *PracticeStatUpsert {
	u.SetExcluded(practicestat.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PracticeStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PracticeStatUpsertOne) UpdateNewValues() *PracticeStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PracticeStat.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PracticeStatUpsertOne) Ignore() *PracticeStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PracticeStatUpsertOne) DoNothing() *PracticeStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PracticeStatCreate.OnConflict
// documentation for more info.
func (u *PracticeStatUpsertOne) Update(set func(*PracticeStatUpsert)) *PracticeStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PracticeStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PracticeStatUpsertOne) SetUserID(v string) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PracticeStatUpsertOne) UpdateUserID() *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateUserID()
	})
}

// SetTotalNodesCompleted sets the "total_nodes_completed" field.
func (u *PracticeStatUpsertOne) SetTotalNodesCompleted(v int) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetTotalNodesCompleted(v)
	})
}

// AddTotalNodesCompleted adds v to the "total_nodes_completed" field.
func (u *PracticeStatUpsertOne) AddTotalNodesCompleted(v int) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.AddTotalNodesCompleted(v)
	})
}

// UpdateTotalNodesCompleted sets the "total_nodes_completed" field to the value that was provided on create.
func (u *PracticeStatUpsertOne) UpdateTotalNodesCompleted() *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateTotalNodesCompleted()
	})
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (u *PracticeStatUpsertOne) SetTotalXpEarned(v int) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetTotalXpEarned(v)
	})
}

// AddTotalXpEarned adds v to the "total_xp_earned" field.
func (u *PracticeStatUpsertOne) AddTotalXpEarned(v int) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.AddTotalXpEarned(v)
	})
}

// UpdateTotalXpEarned sets the "total_xp_earned" field to the value that was provided on create.
func (u *PracticeStatUpsertOne) UpdateTotalXpEarned() *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateTotalXpEarned()
	})
}

// SetLastPracticeDate sets the "last_practice_date" field.
func (u *PracticeStatUpsertOne) SetLastPracticeDate(v string) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetLastPracticeDate(v)
	})
}

// UpdateLastPracticeDate sets the "last_practice_date" field to the value that was provided on create.
func (u *PracticeStatUpsertOne) UpdateLastPracticeDate() *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateLastPracticeDate()
	})
}

// ClearLastPracticeDate clears the value of the "last_practice_date" field.
func (u *PracticeStatUpsertOne) ClearLastPracticeDate() *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.ClearLastPracticeDate()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PracticeStatUpsertOne) SetUpdatedAt(v time.Time) *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PracticeStatUpsertOne) UpdateUpdatedAt() *PracticeStatUpsertOne {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PracticeStatUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PracticeStatCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PracticeStatUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PracticeStatUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PracticeStatUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PracticeStatCreateBulk is the builder for creating many PracticeStat entities in bulk.
type PracticeStatCreateBulk struct {
	config
	err      error
	builders []*PracticeStatCreate
	conflict []sql.ConflictOption
}

// Save creates the PracticeStat entities in the database.
func (_c *PracticeStatCreateBulk) Save(ctx context.Context) ([]*PracticeStat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeStat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeStatMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PracticeStatCreateBulk) SaveX(ctx context.Context) []*PracticeStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeStatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeStatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PracticeStat.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PracticeStatUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PracticeStatCreateBulk) OnConflict(opts ...sql.ConflictOption) *PracticeStatUpsertBulk {
	_c.conflict = opts
	return &PracticeStatUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PracticeStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PracticeStatCreateBulk) OnConflictColumns(columns ...string) *PracticeStatUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PracticeStatUpsertBulk{
		create: _c,
	}
}

// PracticeStatUpsertBulk is the builder for "upsert"-ing
// a bulk of PracticeStat nodes.
type PracticeStatUpsertBulk struct {
	create *PracticeStatCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PracticeStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PracticeStatUpsertBulk) UpdateNewValues() *PracticeStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PracticeStat.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PracticeStatUpsertBulk) Ignore() *PracticeStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PracticeStatUpsertBulk) DoNothing() *PracticeStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PracticeStatCreateBulk.OnConflict
// documentation for more info.
func (u *PracticeStatUpsertBulk) Update(set func(*PracticeStatUpsert)) *PracticeStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PracticeStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PracticeStatUpsertBulk) SetUserID(v string) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PracticeStatUpsertBulk) UpdateUserID() *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateUserID()
	})
}

// SetTotalNodesCompleted sets the "total_nodes_completed" field.
func (u *PracticeStatUpsertBulk) SetTotalNodesCompleted(v int) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetTotalNodesCompleted(v)
	})
}

// AddTotalNodesCompleted adds v to the "total_nodes_completed" field.
func (u *PracticeStatUpsertBulk) AddTotalNodesCompleted(v int) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.AddTotalNodesCompleted(v)
	})
}

// UpdateTotalNodesCompleted sets the "total_nodes_completed" field to the value that was provided on create.
func (u *PracticeStatUpsertBulk) UpdateTotalNodesCompleted() *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateTotalNodesCompleted()
	})
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (u *PracticeStatUpsertBulk) SetTotalXpEarned(v int) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetTotalXpEarned(v)
	})
}

// AddTotalXpEarned adds v to the "total_xp_earned" field.
func (u *PracticeStatUpsertBulk) AddTotalXpEarned(v int) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.AddTotalXpEarned(v)
	})
}

// UpdateTotalXpEarned sets the "total_xp_earned" field to the value that was provided on create.
func (u *PracticeStatUpsertBulk) UpdateTotalXpEarned() *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateTotalXpEarned()
	})
}

// SetLastPracticeDate sets the "last_practice_date" field.
func (u *PracticeStatUpsertBulk) SetLastPracticeDate(v string) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetLastPracticeDate(v)
	})
}

// UpdateLastPracticeDate sets the "last_practice_date" field to the value that was provided on create.
func (u *PracticeStatUpsertBulk) UpdateLastPracticeDate() *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateLastPracticeDate()
	})
}

// ClearLastPracticeDate clears the value of the "last_practice_date" field.
func (u *PracticeStatUpsertBulk) ClearLastPracticeDate() *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.ClearLastPracticeDate()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PracticeStatUpsertBulk) SetUpdatedAt(v time.Time) *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PracticeStatUpsertBulk) UpdateUpdatedAt() *PracticeStatUpsertBulk {
	return u.Update(func(s *PracticeStatUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PracticeStatUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PracticeStatCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PracticeStatCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PracticeStatUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
