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
)

// CompletionCreate is the builder for creating a Completion entity.
type CompletionCreate struct {
	config
	mutation *CompletionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *CompletionCreate) SetUserID(v string) *CompletionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSectionID sets the "section_id" field.
func (_c *CompletionCreate) SetSectionID(v string) *CompletionCreate {
	_c.mutation.SetSectionID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *CompletionCreate) SetNodeID(v string) *CompletionCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *CompletionCreate) SetScore(v int) *CompletionCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *CompletionCreate) SetXpEarned(v int) *CompletionCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CompletionCreate) SetCompletedAt(v time.Time) *CompletionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CompletionCreate) SetNillableCompletedAt(v *time.Time) *CompletionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the CompletionMutation object of the builder.
func (_c *CompletionCreate) Mutation() *CompletionMutation {
	return _c.mutation
}

// Save creates the Completion in the database.
func (_c *CompletionCreate) Save(ctx context.Context) (*Completion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompletionCreate) SaveX(ctx context.Context) *Completion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompletionCreate) defaults() {
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := completion.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompletionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Completion.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := completion.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Completion.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`ent: missing required field "Completion.section_id"`)}
	}
	if v, ok := _c.mutation.SectionID(); ok {
		if err := completion.SectionIDValidator(v); err != nil {
			return &ValidationError{Name: "section_id", err: fmt.Errorf(`ent: validator failed for field "Completion.section_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "Completion.node_id"`)}
	}
	if v, ok := _c.mutation.NodeID(); ok {
		if err := completion.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "Completion.node_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Completion.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := completion.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Completion.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "Completion.xp_earned"`)}
	}
	if v, ok := _c.mutation.XpEarned(); ok {
		if err := completion.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "Completion.xp_earned": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "Completion.completed_at"`)}
	}
	return nil
}

func (_c *CompletionCreate) sqlSave(ctx context.Context) (*Completion, error) {
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

func (_c *CompletionCreate) createSpec() (*Completion, *sqlgraph.CreateSpec) {
	var (
		_node = &Completion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(completion.Table, sqlgraph.NewFieldSpec(completion.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(completion.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SectionID(); ok {
		_spec.SetField(completion.FieldSectionID, field.TypeString, value)
		_node.SectionID = value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(completion.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(completion.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(completion.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(completion.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Completion.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompletionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CompletionCreate) OnConflict(opts ...sql.ConflictOption) *CompletionUpsertOne {
	_c.conflict = opts
	return &CompletionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Completion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompletionCreate) OnConflictColumns(columns ...string) *CompletionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompletionUpsertOne{
		create: _c,
	}
}

type (
	// CompletionUpsertOne is the builder for "upsert"-ing
	//  one Completion node.
	CompletionUpsertOne struct {
		create *CompletionCreate
	}

	// CompletionUpsert is the "OnConflict" setter.
	CompletionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *CompletionUpsert) SetUserID(v string) *CompletionUpsert {
	u.Set(completion.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CompletionUpsert) UpdateUserID() *CompletionUpsert {
	u.SetExcluded(completion.FieldUserID)
	return u
}

// SetSectionID sets the "section_id" field.
func (u *CompletionUpsert) SetSectionID(v string) *CompletionUpsert {
	u.Set(completion.FieldSectionID, v)
	return u
}

// UpdateSectionID sets the "section_id" field to the value that was provided on create.
func (u *CompletionUpsert) UpdateSectionID() *CompletionUpsert {
	u.SetExcluded(completion.FieldSectionID)
	return u
}

// SetNodeID sets the "node_id" field.
func (u *CompletionUpsert) SetNodeID(v string) *CompletionUpsert {
	u.Set(completion.FieldNodeID, v)
	return u
}

// UpdateNodeID sets the "node_id" field to the value that was provided on create.
func (u *CompletionUpsert) UpdateNodeID() *CompletionUpsert {
	u.SetExcluded(completion.FieldNodeID)
	return u
}

// SetScore sets the "score" field.
func (u *CompletionUpsert) SetScore(v int) *CompletionUpsert {
	u.Set(completion.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *CompletionUpsert) UpdateScore() *CompletionUpsert {
	u.SetExcluded(completion.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *CompletionUpsert) AddScore(v int) *CompletionUpsert {
	u.Add(completion.FieldScore, v)
	return u
}

// SetXpEarned sets the "xp_earned" field.
func (u *CompletionUpsert) SetXpEarned(v int) *CompletionUpsert {
	u.Set(completion.FieldXpEarned, v)
	return u
}

// UpdateXpEarned sets the "xp_earned" field to the value that was provided on create.
func (u *CompletionUpsert) UpdateXpEarned() *CompletionUpsert {
	u.SetExcluded(completion.FieldXpEarned)
	return u
}

// AddXpEarned adds v to the "xp_earned" field.
func (u *CompletionUpsert) AddXpEarned(v int) *CompletionUpsert {
	u.Add(completion.FieldXpEarned, v)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *CompletionUpsert) SetCompletedAt(v time.Time) *CompletionUpsert {
	u.Set(completion.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CompletionUpsert) UpdateCompletedAt() *CompletionUpsert {
	u.SetExcluded(completion.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Completion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CompletionUpsertOne) UpdateNewValues() *CompletionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Completion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CompletionUpsertOne) Ignore() *CompletionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompletionUpsertOne) DoNothing() *CompletionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompletionCreate.OnConflict
// documentation for more info.
func (u *CompletionUpsertOne) Update(set func(*CompletionUpsert)) *CompletionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompletionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *CompletionUpsertOne) SetUserID(v string) *CompletionUpsertOne {
	return u.Update(func(s *CompletionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CompletionUpsertOne) UpdateUserID() *CompletionUpsertOne {
	return u.Update(func(s *CompletionUpsert) {
		s.UpdateUserID()
	})
}

// SetSectionID sets the "section_id" field.
func (u *CompletionUpsertOne) SetSectionID(v string) *CompletionUpsertOne {
	return u.Update(func(s *CompletionUpsert) {
		s.SetSectionID(v)
	})
}

// UpdateSectionID sets the "section_id" field to the value that was provided on create.
func (u *CompletionUpsertOne) UpdateSectionID() *CompletionUpsertOne {
	return u.Update(func(s *CompletionUpsert) {
		s.UpdateSectionID()
	})
}

// SetNodeID sets the "node_id" field.
func (u *CompletionUpsertOne) SetNodeID(v string) *CompletionUpsertOne {
	return u.Update(func(s *CompletionUpsert) {
		s.SetNodeID(v)
	})
}

// UpdateNodeID sets the "node_id" field to the value that was provided on create.
func (u *CompletionUpsertOne) UpdateNodeID() *CompletionUpsertOne {
	return u.Update(func(s *CompletionUpsert) {
		s.UpdateNodeID()
	})
}

// SetScore sets the "score" field.
func (u *CompletionUpsertOne) SetScore(v int) *CompletionUpsertOne {
	return u.Update(func(s *CompletionUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *CompletionUpsertOne) AddScore(v int) *CompletionUpsertOne {
	return u.Update(func(s *CompletionUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *CompletionUpsertOne) UpdateScore() *CompletionUpsertOne {
	return u.Update(func(s *CompletionUpsert) {
		s.UpdateScore()
	})
}

// SetXpEarned sets the "xp_earned" field.
func (u *CompletionUpsertOne) SetXpEarned(v int) *CompletionUpsertOne {
	return u.Update(func(s *CompletionUpsert) {
		s.SetXpEarned(v)
	})
}

// AddXpEarned adds v to the "xp_earned" field.
func (u *CompletionUpsertOne) AddXpEarned(v int) *CompletionUpsertOne {
	return u.Update(func(s *CompletionUpsert) {
		s.AddXpEarned(v)
	})
}

// UpdateXpEarned sets the "xp_earned" field to the value that was provided on create.
func (u *CompletionUpsertOne) UpdateXpEarned() *CompletionUpsertOne {
	return u.Update(func(s *CompletionUpsert) {
		s.UpdateXpEarned()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CompletionUpsertOne) SetCompletedAt(v time.Time) *CompletionUpsertOne {
	return u.Update(func(s *CompletionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CompletionUpsertOne) UpdateCompletedAt() *CompletionUpsertOne {
	return u.Update(func(s *CompletionUpsert) {
		s.UpdateCompletedAt()
	})
}

// Exec executes the query.
func (u *CompletionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CompletionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompletionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CompletionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CompletionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CompletionCreateBulk is the builder for creating many Completion entities in bulk.
type CompletionCreateBulk struct {
	config
	err      error
	builders []*CompletionCreate
	conflict []sql.ConflictOption
}

// Save creates the Completion entities in the database.
func (_c *CompletionCreateBulk) Save(ctx context.Context) ([]*Completion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Completion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompletionMutation)
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
func (_c *CompletionCreateBulk) SaveX(ctx context.Context) []*Completion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompletionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompletionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Completion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompletionUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CompletionCreateBulk) OnConflict(opts ...sql.ConflictOption) *CompletionUpsertBulk {
	_c.conflict = opts
	return &CompletionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Completion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompletionCreateBulk) OnConflictColumns(columns ...string) *CompletionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompletionUpsertBulk{
		create: _c,
	}
}

// CompletionUpsertBulk is the builder for "upsert"-ing
// a bulk of Completion nodes.
type CompletionUpsertBulk struct {
	create *CompletionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Completion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CompletionUpsertBulk) UpdateNewValues() *CompletionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Completion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CompletionUpsertBulk) Ignore() *CompletionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompletionUpsertBulk) DoNothing() *CompletionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompletionCreateBulk.OnConflict
// documentation for more info.
func (u *CompletionUpsertBulk) Update(set func(*CompletionUpsert)) *CompletionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompletionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *CompletionUpsertBulk) SetUserID(v string) *CompletionUpsertBulk {
	return u.Update(func(s *CompletionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CompletionUpsertBulk) UpdateUserID() *CompletionUpsertBulk {
	return u.Update(func(s *CompletionUpsert) {
		s.UpdateUserID()
	})
}

// SetSectionID sets the "section_id" field.
func (u *CompletionUpsertBulk) SetSectionID(v string) *CompletionUpsertBulk {
	return u.Update(func(s *CompletionUpsert) {
		s.SetSectionID(v)
	})
}

// UpdateSectionID sets the "section_id" field to the value that was provided on create.
func (u *CompletionUpsertBulk) UpdateSectionID() *CompletionUpsertBulk {
	return u.Update(func(s *CompletionUpsert) {
		s.UpdateSectionID()
	})
}

// SetNodeID sets the "node_id" field.
func (u *CompletionUpsertBulk) SetNodeID(v string) *CompletionUpsertBulk {
	return u.Update(func(s *CompletionUpsert) {
		s.SetNodeID(v)
	})
}

// UpdateNodeID sets the "node_id" field to the value that was provided on create.
func (u *CompletionUpsertBulk) UpdateNodeID() *CompletionUpsertBulk {
	return u.Update(func(s *CompletionUpsert) {
		s.UpdateNodeID()
	})
}

// SetScore sets the "score" field.
func (u *CompletionUpsertBulk) SetScore(v int) *CompletionUpsertBulk {
	return u.Update(func(s *CompletionUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *CompletionUpsertBulk) AddScore(v int) *CompletionUpsertBulk {
	return u.Update(func(s *CompletionUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *CompletionUpsertBulk) UpdateScore() *CompletionUpsertBulk {
	return u.Update(func(s *CompletionUpsert) {
		s.UpdateScore()
	})
}

// SetXpEarned sets the "xp_earned" field.
func (u *CompletionUpsertBulk) SetXpEarned(v int) *CompletionUpsertBulk {
	return u.Update(func(s *CompletionUpsert) {
		s.SetXpEarned(v)
	})
}

// AddXpEarned adds v to the "xp_earned" field.
func (u *CompletionUpsertBulk) AddXpEarned(v int) *CompletionUpsertBulk {
	return u.Update(func(s *CompletionUpsert) {
		s.AddXpEarned(v)
	})
}

// UpdateXpEarned sets the "xp_earned" field to the value that was provided on create.
func (u *CompletionUpsertBulk) UpdateXpEarned() *CompletionUpsertBulk {
	return u.Update(func(s *CompletionUpsert) {
		s.UpdateXpEarned()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CompletionUpsertBulk) SetCompletedAt(v time.Time) *CompletionUpsertBulk {
	return u.Update(func(s *CompletionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CompletionUpsertBulk) UpdateCompletedAt() *CompletionUpsertBulk {
	return u.Update(func(s *CompletionUpsert) {
		s.UpdateCompletedAt()
	})
}

// Exec executes the query.
func (u *CompletionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CompletionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CompletionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompletionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
