// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ritankar/lakshya/ent/predicate"
	"github.com/ritankar/lakshya/ent/studysessionevent"
)

// StudySessionEventUpdate is the builder for updating StudySessionEvent entities.
type StudySessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *StudySessionEventMutation
}

// Where appends a list predicates to the StudySessionEventUpdate builder.
func (_u *StudySessionEventUpdate) Where(ps ...predicate.StudySessionEvent) *StudySessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *StudySessionEventUpdate) SetAccountID(v string) *StudySessionEventUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableAccountID(v *string) *StudySessionEventUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *StudySessionEventUpdate) SetSubject(v string) *StudySessionEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableSubject(v *string) *StudySessionEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetSeconds sets the "seconds" field.
func (_u *StudySessionEventUpdate) SetSeconds(v int) *StudySessionEventUpdate {
	_u.mutation.ResetSeconds()
	_u.mutation.SetSeconds(v)
	return _u
}

// SetNillableSeconds sets the "seconds" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableSeconds(v *int) *StudySessionEventUpdate {
	if v != nil {
		_u.SetSeconds(*v)
	}
	return _u
}

// AddSeconds adds value to the "seconds" field.
func (_u *StudySessionEventUpdate) AddSeconds(v int) *StudySessionEventUpdate {
	_u.mutation.AddSeconds(v)
	return _u
}

// SetMinutes sets the "minutes" field.
func (_u *StudySessionEventUpdate) SetMinutes(v float64) *StudySessionEventUpdate {
	_u.mutation.ResetMinutes()
	_u.mutation.SetMinutes(v)
	return _u
}

// SetNillableMinutes sets the "minutes" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableMinutes(v *float64) *StudySessionEventUpdate {
	if v != nil {
		_u.SetMinutes(*v)
	}
	return _u
}

// AddMinutes adds value to the "minutes" field.
func (_u *StudySessionEventUpdate) AddMinutes(v float64) *StudySessionEventUpdate {
	_u.mutation.AddMinutes(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *StudySessionEventUpdate) SetMode(v string) *StudySessionEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableMode(v *string) *StudySessionEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetXpGained sets the "xp_gained" field.
func (_u *StudySessionEventUpdate) SetXpGained(v int) *StudySessionEventUpdate {
	_u.mutation.ResetXpGained()
	_u.mutation.SetXpGained(v)
	return _u
}

// SetNillableXpGained sets the "xp_gained" field if the given value is not nil.
func (_u *StudySessionEventUpdate) SetNillableXpGained(v *int) *StudySessionEventUpdate {
	if v != nil {
		_u.SetXpGained(*v)
	}
	return _u
}

// AddXpGained adds value to the "xp_gained" field.
func (_u *StudySessionEventUpdate) AddXpGained(v int) *StudySessionEventUpdate {
	_u.mutation.AddXpGained(v)
	return _u
}

// Mutation returns the StudySessionEventMutation object of the builder.
func (_u *StudySessionEventUpdate) Mutation() *StudySessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudySessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudySessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionEventUpdate) check() error {
	if v, ok := _u.mutation.AccountID(); ok {
		if err := studysessionevent.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "StudySessionEvent.account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := studysessionevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "StudySessionEvent.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysessionevent.Table, studysessionevent.Columns, sqlgraph.NewFieldSpec(studysessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(studysessionevent.FieldAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(studysessionevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seconds(); ok {
		_spec.SetField(studysessionevent.FieldSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeconds(); ok {
		_spec.AddField(studysessionevent.FieldSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Minutes(); ok {
		_spec.SetField(studysessionevent.FieldMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinutes(); ok {
		_spec.AddField(studysessionevent.FieldMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(studysessionevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpGained(); ok {
		_spec.SetField(studysessionevent.FieldXpGained, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpGained(); ok {
		_spec.AddField(studysessionevent.FieldXpGained, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudySessionEventUpdateOne is the builder for updating a single StudySessionEvent entity.
type StudySessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudySessionEventMutation
}

// SetAccountID sets the "account_id" field.
func (_u *StudySessionEventUpdateOne) SetAccountID(v string) *StudySessionEventUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableAccountID(v *string) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *StudySessionEventUpdateOne) SetSubject(v string) *StudySessionEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableSubject(v *string) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetSeconds sets the "seconds" field.
func (_u *StudySessionEventUpdateOne) SetSeconds(v int) *StudySessionEventUpdateOne {
	_u.mutation.ResetSeconds()
	_u.mutation.SetSeconds(v)
	return _u
}

// SetNillableSeconds sets the "seconds" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableSeconds(v *int) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetSeconds(*v)
	}
	return _u
}

// AddSeconds adds value to the "seconds" field.
func (_u *StudySessionEventUpdateOne) AddSeconds(v int) *StudySessionEventUpdateOne {
	_u.mutation.AddSeconds(v)
	return _u
}

// SetMinutes sets the "minutes" field.
func (_u *StudySessionEventUpdateOne) SetMinutes(v float64) *StudySessionEventUpdateOne {
	_u.mutation.ResetMinutes()
	_u.mutation.SetMinutes(v)
	return _u
}

// SetNillableMinutes sets the "minutes" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableMinutes(v *float64) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetMinutes(*v)
	}
	return _u
}

// AddMinutes adds value to the "minutes" field.
func (_u *StudySessionEventUpdateOne) AddMinutes(v float64) *StudySessionEventUpdateOne {
	_u.mutation.AddMinutes(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *StudySessionEventUpdateOne) SetMode(v string) *StudySessionEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableMode(v *string) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetXpGained sets the "xp_gained" field.
func (_u *StudySessionEventUpdateOne) SetXpGained(v int) *StudySessionEventUpdateOne {
	_u.mutation.ResetXpGained()
	_u.mutation.SetXpGained(v)
	return _u
}

// SetNillableXpGained sets the "xp_gained" field if the given value is not nil.
func (_u *StudySessionEventUpdateOne) SetNillableXpGained(v *int) *StudySessionEventUpdateOne {
	if v != nil {
		_u.SetXpGained(*v)
	}
	return _u
}

// AddXpGained adds value to the "xp_gained" field.
func (_u *StudySessionEventUpdateOne) AddXpGained(v int) *StudySessionEventUpdateOne {
	_u.mutation.AddXpGained(v)
	return _u
}

// Mutation returns the StudySessionEventMutation object of the builder.
func (_u *StudySessionEventUpdateOne) Mutation() *StudySessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudySessionEventUpdate builder.
func (_u *StudySessionEventUpdateOne) Where(ps ...predicate.StudySessionEvent) *StudySessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudySessionEventUpdateOne) Select(field string, fields ...string) *StudySessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudySessionEvent entity.
func (_u *StudySessionEventUpdateOne) Save(ctx context.Context) (*StudySessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionEventUpdateOne) SaveX(ctx context.Context) *StudySessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudySessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.AccountID(); ok {
		if err := studysessionevent.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "StudySessionEvent.account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := studysessionevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "StudySessionEvent.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionEventUpdateOne) sqlSave(ctx context.Context) (_node *StudySessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysessionevent.Table, studysessionevent.Columns, sqlgraph.NewFieldSpec(studysessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudySessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studysessionevent.FieldID)
		for _, f := range fields {
			if !studysessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studysessionevent.FieldID {
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
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(studysessionevent.FieldAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(studysessionevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seconds(); ok {
		_spec.SetField(studysessionevent.FieldSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeconds(); ok {
		_spec.AddField(studysessionevent.FieldSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Minutes(); ok {
		_spec.SetField(studysessionevent.FieldMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinutes(); ok {
		_spec.AddField(studysessionevent.FieldMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(studysessionevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpGained(); ok {
		_spec.SetField(studysessionevent.FieldXpGained, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpGained(); ok {
		_spec.AddField(studysessionevent.FieldXpGained, field.TypeInt, value)
	}
	_node = &StudySessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
