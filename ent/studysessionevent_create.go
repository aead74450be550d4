// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ritankar/lakshya/ent/studysessionevent"
)

// StudySessionEventCreate is the builder for creating a StudySessionEvent entity.
type StudySessionEventCreate struct {
	config
	mutation *StudySessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *StudySessionEventCreate) SetSequence(v int64) *StudySessionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *StudySessionEventCreate) SetTimestamp(v time.Time) *StudySessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *StudySessionEventCreate) SetNillableTimestamp(v *time.Time) *StudySessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *StudySessionEventCreate) SetAccountID(v string) *StudySessionEventCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *StudySessionEventCreate) SetSubject(v string) *StudySessionEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetSeconds sets the "seconds" field.
func (_c *StudySessionEventCreate) SetSeconds(v int) *StudySessionEventCreate {
	_c.mutation.SetSeconds(v)
	return _c
}

// SetNillableSeconds sets the "seconds" field if the given value is not nil.
func (_c *StudySessionEventCreate) SetNillableSeconds(v *int) *StudySessionEventCreate {
	if v != nil {
		_c.SetSeconds(*v)
	}
	return _c
}

// SetMinutes sets the "minutes" field.
func (_c *StudySessionEventCreate) SetMinutes(v float64) *StudySessionEventCreate {
	_c.mutation.SetMinutes(v)
	return _c
}

// SetNillableMinutes sets the "minutes" field if the given value is not nil.
func (_c *StudySessionEventCreate) SetNillableMinutes(v *float64) *StudySessionEventCreate {
	if v != nil {
		_c.SetMinutes(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *StudySessionEventCreate) SetMode(v string) *StudySessionEventCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *StudySessionEventCreate) SetNillableMode(v *string) *StudySessionEventCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetXpGained sets the "xp_gained" field.
func (_c *StudySessionEventCreate) SetXpGained(v int) *StudySessionEventCreate {
	_c.mutation.SetXpGained(v)
	return _c
}

// SetNillableXpGained sets the "xp_gained" field if the given value is not nil.
func (_c *StudySessionEventCreate) SetNillableXpGained(v *int) *StudySessionEventCreate {
	if v != nil {
		_c.SetXpGained(*v)
	}
	return _c
}

// Mutation returns the StudySessionEventMutation object of the builder.
func (_c *StudySessionEventCreate) Mutation() *StudySessionEventMutation {
	return _c.mutation
}

// Save creates the StudySessionEvent in the database.
func (_c *StudySessionEventCreate) Save(ctx context.Context) (*StudySessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudySessionEventCreate) SaveX(ctx context.Context) *StudySessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudySessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := studysessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Seconds(); !ok {
		v := studysessionevent.DefaultSeconds
		_c.mutation.SetSeconds(v)
	}
	if _, ok := _c.mutation.Minutes(); !ok {
		v := studysessionevent.DefaultMinutes
		_c.mutation.SetMinutes(v)
	}
	if _, ok := _c.mutation.Mode(); !ok {
		v := studysessionevent.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.XpGained(); !ok {
		v := studysessionevent.DefaultXpGained
		_c.mutation.SetXpGained(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudySessionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StudySessionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "StudySessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "StudySessionEvent.account_id"`)}
	}
	if v, ok := _c.mutation.AccountID(); ok {
		if err := studysessionevent.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "StudySessionEvent.account_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "StudySessionEvent.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := studysessionevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "StudySessionEvent.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Seconds(); !ok {
		return &ValidationError{Name: "seconds", err: errors.New(`ent: missing required field "StudySessionEvent.seconds"`)}
	}
	if _, ok := _c.mutation.Minutes(); !ok {
		return &ValidationError{Name: "minutes", err: errors.New(`ent: missing required field "StudySessionEvent.minutes"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "StudySessionEvent.mode"`)}
	}
	if _, ok := _c.mutation.XpGained(); !ok {
		return &ValidationError{Name: "xp_gained", err: errors.New(`ent: missing required field "StudySessionEvent.xp_gained"`)}
	}
	return nil
}

func (_c *StudySessionEventCreate) sqlSave(ctx context.Context) (*StudySessionEvent, error) {
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

func (_c *StudySessionEventCreate) createSpec() (*StudySessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StudySessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studysessionevent.Table, sqlgraph.NewFieldSpec(studysessionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(studysessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(studysessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(studysessionevent.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(studysessionevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Seconds(); ok {
		_spec.SetField(studysessionevent.FieldSeconds, field.TypeInt, value)
		_node.Seconds = value
	}
	if value, ok := _c.mutation.Minutes(); ok {
		_spec.SetField(studysessionevent.FieldMinutes, field.TypeFloat64, value)
		_node.Minutes = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(studysessionevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.XpGained(); ok {
		_spec.SetField(studysessionevent.FieldXpGained, field.TypeInt, value)
		_node.XpGained = value
	}
	return _node, _spec
}

// StudySessionEventCreateBulk is the builder for creating many StudySessionEvent entities in bulk.
type StudySessionEventCreateBulk struct {
	config
	err      error
	builders []*StudySessionEventCreate
}

// Save creates the StudySessionEvent entities in the database.
func (_c *StudySessionEventCreateBulk) Save(ctx context.Context) ([]*StudySessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudySessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudySessionEventMutation)
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
func (_c *StudySessionEventCreateBulk) SaveX(ctx context.Context) []*StudySessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
