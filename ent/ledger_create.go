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
	"github.com/lingobee/lingobee/ent/ledger"
)

// LedgerCreate is the builder for creating a Ledger entity.
type LedgerCreate struct {
	config
	mutation *LedgerMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *LedgerCreate) SetUserID(v string) *LedgerCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetXp sets the "xp" field.
func (_c *LedgerCreate) SetXp(v int) *LedgerCreate {
	_c.mutation.SetXp(v)
	return _c
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_c *LedgerCreate) SetNillableXp(v *int) *LedgerCreate {
	if v != nil {
		_c.SetXp(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *LedgerCreate) SetLevel(v int) *LedgerCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *LedgerCreate) SetNillableLevel(v *int) *LedgerCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetStreakDays sets the "streak_days" field.
func (_c *LedgerCreate) SetStreakDays(v int) *LedgerCreate {
	_c.mutation.SetStreakDays(v)
	return _c
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_c *LedgerCreate) SetNillableStreakDays(v *int) *LedgerCreate {
	if v != nil {
		_c.SetStreakDays(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LedgerCreate) SetUpdatedAt(v time.Time) *LedgerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LedgerCreate) SetNillableUpdatedAt(v *time.Time) *LedgerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LedgerMutation object of the builder.
func (_c *LedgerCreate) Mutation() *LedgerMutation {
	return _c.mutation
}

// Save creates the Ledger in the database.
func (_c *LedgerCreate) Save(ctx context.Context) (*Ledger, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LedgerCreate) SaveX(ctx context.Context) *Ledger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LedgerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LedgerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LedgerCreate) defaults() {
	if _, ok := _c.mutation.Xp(); !ok {
		v := ledger.DefaultXp
		_c.mutation.SetXp(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := ledger.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.StreakDays(); !ok {
		v := ledger.DefaultStreakDays
		_c.mutation.SetStreakDays(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ledger.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LedgerCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Ledger.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := ledger.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Ledger.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`ent: missing required field "Ledger.xp"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Ledger.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := ledger.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Ledger.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreakDays(); !ok {
		return &ValidationError{Name: "streak_days", err: errors.New(`ent: missing required field "Ledger.streak_days"`)}
	}
	if v, ok := _c.mutation.StreakDays(); ok {
		if err := ledger.StreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "streak_days", err: fmt.Errorf(`ent: validator failed for field "Ledger.streak_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Ledger.updated_at"`)}
	}
	return nil
}

func (_c *LedgerCreate) sqlSave(ctx context.Context) (*Ledger, error) {
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

func (_c *LedgerCreate) createSpec() (*Ledger, *sqlgraph.CreateSpec) {
	var (
		_node = &Ledger{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ledger.Table, sqlgraph.NewFieldSpec(ledger.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(ledger.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Xp(); ok {
		_spec.SetField(ledger.FieldXp, field.TypeInt, value)
		_node.Xp = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(ledger.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.StreakDays(); ok {
		_spec.SetField(ledger.FieldStreakDays, field.TypeInt, value)
		_node.StreakDays = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ledger.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Ledger.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LedgerUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *LedgerCreate) OnConflict(opts ...sql.ConflictOption) *LedgerUpsertOne {
	_c.conflict = opts
	return &LedgerUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Ledger.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LedgerCreate) OnConflictColumns(columns ...string) *LedgerUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LedgerUpsertOne{
		create: _c,
	}
}

type (
	// LedgerUpsertOne is the builder for "upsert"-ing
	//  one Ledger node.
	LedgerUpsertOne struct {
		create *LedgerCreate
	}

	// LedgerUpsert is the "OnConflict" setter.
	LedgerUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *LedgerUpsert) SetUserID(v string) *LedgerUpsert {
	u.Set(ledger.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LedgerUpsert) UpdateUserID() *LedgerUpsert {
	u.SetExcluded(ledger.FieldUserID)
	return u
}

// SetXp sets the "xp" field.
func (u *LedgerUpsert) SetXp(v int) *LedgerUpsert {
	u.Set(ledger.FieldXp, v)
	return u
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *LedgerUpsert) UpdateXp() *LedgerUpsert {
	u.SetExcluded(ledger.FieldXp)
	return u
}

// AddXp adds v to the "xp" field.
func (u *LedgerUpsert) AddXp(v int) *LedgerUpsert {
	u.Add(ledger.FieldXp, v)
	return u
}

// SetLevel sets the "level" field.
func (u *LedgerUpsert) SetLevel(v int) *LedgerUpsert {
	u.Set(ledger.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *LedgerUpsert) UpdateLevel() *LedgerUpsert {
	u.SetExcluded(ledger.FieldLevel)
	return u
}

// AddLevel adds v to the "level" field.
func (u *LedgerUpsert) AddLevel(v int) *LedgerUpsert {
	u.Add(ledger.FieldLevel, v)
	return u
}

// SetStreakDays sets the "streak_days" field.
func (u *LedgerUpsert) SetStreakDays(v int) *LedgerUpsert {
	u.Set(ledger.FieldStreakDays, v)
	return u
}

// UpdateStreakDays sets the "streak_days" field to the value that was provided on create.
func (u *LedgerUpsert) UpdateStreakDays() *LedgerUpsert {
	u.SetExcluded(ledger.FieldStreakDays)
	return u
}

// AddStreakDays adds v to the "streak_days" field.
func (u *LedgerUpsert) AddStreakDays(v int) *LedgerUpsert {
	u.Add(ledger.FieldStreakDays, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LedgerUpsert) SetUpdatedAt(v time.Time) *LedgerUpsert {
	u.Set(ledger.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LedgerUpsert) UpdateUpdatedAt() *LedgerUpsert {
	u.SetExcluded(ledger.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Ledger.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LedgerUpsertOne) UpdateNewValues() *LedgerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Ledger.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LedgerUpsertOne) Ignore() *LedgerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LedgerUpsertOne) DoNothing() *LedgerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LedgerCreate.OnConflict
// documentation for more info.
func (u *LedgerUpsertOne) Update(set func(*LedgerUpsert)) *LedgerUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LedgerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *LedgerUpsertOne) SetUserID(v string) *LedgerUpsertOne {
	return u.Update(func(s *LedgerUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LedgerUpsertOne) UpdateUserID() *LedgerUpsertOne {
	return u.Update(func(s *LedgerUpsert) {
		s.UpdateUserID()
	})
}

// SetXp sets the "xp" field.
func (u *LedgerUpsertOne) SetXp(v int) *LedgerUpsertOne {
	return u.Update(func(s *LedgerUpsert) {
		s.SetXp(v)
	})
}

// AddXp adds v to the "xp" field.
func (u *LedgerUpsertOne) AddXp(v int) *LedgerUpsertOne {
	return u.Update(func(s *LedgerUpsert) {
		s.AddXp(v)
	})
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *LedgerUpsertOne) UpdateXp() *LedgerUpsertOne {
	return u.Update(func(s *LedgerUpsert) {
		s.UpdateXp()
	})
}

// SetLevel sets the "level" field.
func (u *LedgerUpsertOne) SetLevel(v int) *LedgerUpsertOne {
	return u.Update(func(s *LedgerUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *LedgerUpsertOne) AddLevel(v int) *LedgerUpsertOne {
	return u.Update(func(s *LedgerUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *LedgerUpsertOne) UpdateLevel() *LedgerUpsertOne {
	return u.Update(func(s *LedgerUpsert) {
		s.UpdateLevel()
	})
}

// SetStreakDays sets the "streak_days" field.
func (u *LedgerUpsertOne) SetStreakDays(v int) *LedgerUpsertOne {
	return u.Update(func(s *LedgerUpsert) {
		s.SetStreakDays(v)
	})
}

// AddStreakDays adds v to the "streak_days" field.
func (u *LedgerUpsertOne) AddStreakDays(v int) *LedgerUpsertOne {
	return u.Update(func(s *LedgerUpsert) {
		s.AddStreakDays(v)
	})
}

// UpdateStreakDays sets the "streak_days" field to the value that was provided on create.
func (u *LedgerUpsertOne) UpdateStreakDays() *LedgerUpsertOne {
	return u.Update(func(s *LedgerUpsert) {
		s.UpdateStreakDays()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LedgerUpsertOne) SetUpdatedAt(v time.Time) *LedgerUpsertOne {
	return u.Update(func(s *LedgerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LedgerUpsertOne) UpdateUpdatedAt() *LedgerUpsertOne {
	return u.Update(func(s *LedgerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LedgerUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LedgerCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LedgerUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LedgerUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LedgerUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LedgerCreateBulk is the builder for creating many Ledger entities in bulk.
type LedgerCreateBulk struct {
	config
	err      error
	builders []*LedgerCreate
	conflict []sql.ConflictOption
}

// Save creates the Ledger entities in the database.
func (_c *LedgerCreateBulk) Save(ctx context.Context) ([]*Ledger, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Ledger, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LedgerMutation)
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
func (_c *LedgerCreateBulk) SaveX(ctx context.Context) []*Ledger {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LedgerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LedgerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Ledger.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LedgerUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *LedgerCreateBulk) OnConflict(opts ...sql.ConflictOption) *LedgerUpsertBulk {
	_c.conflict = opts
	return &LedgerUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Ledger.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LedgerCreateBulk) OnConflictColumns(columns ...string) *LedgerUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LedgerUpsertBulk{
		create: _c,
	}
}

// LedgerUpsertBulk is the builder for "upsert"-ing
// a bulk of Ledger nodes.
type LedgerUpsertBulk struct {
	create *LedgerCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Ledger.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LedgerUpsertBulk) UpdateNewValues() *LedgerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Ledger.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LedgerUpsertBulk) Ignore() *LedgerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LedgerUpsertBulk) DoNothing() *LedgerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LedgerCreateBulk.OnConflict
// documentation for more info.
func (u *LedgerUpsertBulk) Update(set func(*LedgerUpsert)) *LedgerUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LedgerUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *LedgerUpsertBulk) SetUserID(v string) *LedgerUpsertBulk {
	return u.Update(func(s *LedgerUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *LedgerUpsertBulk) UpdateUserID() *LedgerUpsertBulk {
	return u.Update(func(s *LedgerUpsert) {
		s.UpdateUserID()
	})
}

// SetXp sets the "xp" field.
func (u *LedgerUpsertBulk) SetXp(v int) *LedgerUpsertBulk {
	return u.Update(func(s *LedgerUpsert) {
		s.SetXp(v)
	})
}

// AddXp adds v to the "xp" field.
func (u *LedgerUpsertBulk) AddXp(v int) *LedgerUpsertBulk {
	return u.Update(func(s *LedgerUpsert) {
		s.AddXp(v)
	})
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *LedgerUpsertBulk) UpdateXp() *LedgerUpsertBulk {
	return u.Update(func(s *LedgerUpsert) {
		s.UpdateXp()
	})
}

// SetLevel sets the "level" field.
func (u *LedgerUpsertBulk) SetLevel(v int) *LedgerUpsertBulk {
	return u.Update(func(s *LedgerUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *LedgerUpsertBulk) AddLevel(v int) *LedgerUpsertBulk {
	return u.Update(func(s *LedgerUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *LedgerUpsertBulk) UpdateLevel() *LedgerUpsertBulk {
	return u.Update(func(s *LedgerUpsert) {
		s.UpdateLevel()
	})
}

// SetStreakDays sets the "streak_days" field.
func (u *LedgerUpsertBulk) SetStreakDays(v int) *LedgerUpsertBulk {
	return u.Update(func(s *LedgerUpsert) {
		s.SetStreakDays(v)
	})
}

// AddStreakDays adds v to the "streak_days" field.
func (u *LedgerUpsertBulk) AddStreakDays(v int) *LedgerUpsertBulk {
	return u.Update(func(s *LedgerUpsert) {
		s.AddStreakDays(v)
	})
}

// UpdateStreakDays sets the "streak_days" field to the value that was provided on create.
func (u *LedgerUpsertBulk) UpdateStreakDays() *LedgerUpsertBulk {
	return u.Update(func(s *LedgerUpsert) {
		s.UpdateStreakDays()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LedgerUpsertBulk) SetUpdatedAt(v time.Time) *LedgerUpsertBulk {
	return u.Update(func(s *LedgerUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LedgerUpsertBulk) UpdateUpdatedAt() *LedgerUpsertBulk {
	return u.Update(func(s *LedgerUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LedgerUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LedgerCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LedgerCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LedgerUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
