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
	"github.com/ritankar/lakshya/ent/predicate"
	"github.com/ritankar/lakshya/ent/profiledoc"
)

// ProfileDocUpdate is the builder for updating ProfileDoc entities.
type ProfileDocUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileDocMutation
}

// Where appends a list predicates to the ProfileDocUpdate builder.
func (_u *ProfileDocUpdate) Where(ps ...predicate.ProfileDoc) *ProfileDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *ProfileDocUpdate) SetAccountID(v string) *ProfileDocUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *ProfileDocUpdate) SetNillableAccountID(v *string) *ProfileDocUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProfileDocUpdate) SetVersion(v int64) *ProfileDocUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProfileDocUpdate) SetNillableVersion(v *int64) *ProfileDocUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProfileDocUpdate) AddVersion(v int64) *ProfileDocUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileDocUpdate) SetUpdatedAt(v time.Time) *ProfileDocUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetData sets the "data" field.
func (_u *ProfileDocUpdate) SetData(v map[string]interface{}) *ProfileDocUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the ProfileDocMutation object of the builder.
func (_u *ProfileDocUpdate) Mutation() *ProfileDocMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileDocUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileDocUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profiledoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileDocUpdate) check() error {
	if v, ok := _u.mutation.AccountID(); ok {
		if err := profiledoc.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "ProfileDoc.account_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profiledoc.Table, profiledoc.Columns, sqlgraph.NewFieldSpec(profiledoc.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(profiledoc.FieldAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(profiledoc.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(profiledoc.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profiledoc.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(profiledoc.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profiledoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileDocUpdateOne is the builder for updating a single ProfileDoc entity.
type ProfileDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileDocMutation
}

// SetAccountID sets the "account_id" field.
func (_u *ProfileDocUpdateOne) SetAccountID(v string) *ProfileDocUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *ProfileDocUpdateOne) SetNillableAccountID(v *string) *ProfileDocUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProfileDocUpdateOne) SetVersion(v int64) *ProfileDocUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProfileDocUpdateOne) SetNillableVersion(v *int64) *ProfileDocUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProfileDocUpdateOne) AddVersion(v int64) *ProfileDocUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileDocUpdateOne) SetUpdatedAt(v time.Time) *ProfileDocUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetData sets the "data" field.
func (_u *ProfileDocUpdateOne) SetData(v map[string]interface{}) *ProfileDocUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the ProfileDocMutation object of the builder.
func (_u *ProfileDocUpdateOne) Mutation() *ProfileDocMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileDocUpdate builder.
func (_u *ProfileDocUpdateOne) Where(ps ...predicate.ProfileDoc) *ProfileDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileDocUpdateOne) Select(field string, fields ...string) *ProfileDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProfileDoc entity.
func (_u *ProfileDocUpdateOne) Save(ctx context.Context) (*ProfileDoc, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileDocUpdateOne) SaveX(ctx context.Context) *ProfileDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileDocUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profiledoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileDocUpdateOne) check() error {
	if v, ok := _u.mutation.AccountID(); ok {
		if err := profiledoc.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "ProfileDoc.account_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileDocUpdateOne) sqlSave(ctx context.Context) (_node *ProfileDoc, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profiledoc.Table, profiledoc.Columns, sqlgraph.NewFieldSpec(profiledoc.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProfileDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profiledoc.FieldID)
		for _, f := range fields {
			if !profiledoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profiledoc.FieldID {
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
		_spec.SetField(profiledoc.FieldAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(profiledoc.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(profiledoc.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profiledoc.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(profiledoc.FieldData, field.TypeJSON, value)
	}
	_node = &ProfileDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profiledoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
