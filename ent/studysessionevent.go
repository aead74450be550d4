// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ritankar/lakshya/ent/studysessionevent"
)

// StudySessionEvent is the model entity for the StudySessionEvent schema.
type StudySessionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// Catalog subject the session was logged against
	Subject string `json:"subject,omitempty"`
	// Raw elapsed seconds
	Seconds int `json:"seconds,omitempty"`
	// Minutes credited to the day history, 2 decimal places
	Minutes float64 `json:"minutes,omitempty"`
	// stopwatch or countdown
	Mode string `json:"mode,omitempty"`
	// XpGained holds the value of the "xp_gained" field.
	XpGained     int `json:"xp_gained,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudySessionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studysessionevent.FieldMinutes:
			values[i] = new(sql.NullFloat64)
		case studysessionevent.FieldID, studysessionevent.FieldSequence, studysessionevent.FieldSeconds, studysessionevent.FieldXpGained:
			values[i] = new(sql.NullInt64)
		case studysessionevent.FieldAccountID, studysessionevent.FieldSubject, studysessionevent.FieldMode:
			values[i] = new(sql.NullString)
		case studysessionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudySessionEvent fields.
func (_m *StudySessionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studysessionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case studysessionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case studysessionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case studysessionevent.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case studysessionevent.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case studysessionevent.FieldSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seconds", values[i])
			} else if value.Valid {
				_m.Seconds = int(value.Int64)
			}
		case studysessionevent.FieldMinutes:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field minutes", values[i])
			} else if value.Valid {
				_m.Minutes = value.Float64
			}
		case studysessionevent.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case studysessionevent.FieldXpGained:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_gained", values[i])
			} else if value.Valid {
				_m.XpGained = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudySessionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StudySessionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudySessionEvent.
// Note that you need to call StudySessionEvent.Unwrap() before calling this method if this StudySessionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudySessionEvent) Update() *StudySessionEventUpdateOne {
	return NewStudySessionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudySessionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudySessionEvent) Unwrap() *StudySessionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudySessionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudySessionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StudySessionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seconds))
	builder.WriteString(", ")
	builder.WriteString("minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Minutes))
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(_m.Mode)
	builder.WriteString(", ")
	builder.WriteString("xp_gained=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpGained))
	builder.WriteByte(')')
	return builder.String()
}

// StudySessionEvents is a parsable slice of StudySessionEvent.
type StudySessionEvents []*StudySessionEvent
