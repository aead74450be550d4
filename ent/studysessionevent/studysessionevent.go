// Code generated by ent, DO NOT EDIT.

package studysessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the studysessionevent type in the database.
	Label = "study_session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldSeconds holds the string denoting the seconds field in the database.
	FieldSeconds = "seconds"
	// FieldMinutes holds the string denoting the minutes field in the database.
	FieldMinutes = "minutes"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldXpGained holds the string denoting the xp_gained field in the database.
	FieldXpGained = "xp_gained"
	// Table holds the table name of the studysessionevent in the database.
	Table = "study_session_events"
)

// Columns holds all SQL columns for studysessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAccountID,
	FieldSubject,
	FieldSeconds,
	FieldMinutes,
	FieldMode,
	FieldXpGained,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	AccountIDValidator func(string) error
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// DefaultSeconds holds the default value on creation for the "seconds" field.
	DefaultSeconds int
	// DefaultMinutes holds the default value on creation for the "minutes" field.
	DefaultMinutes float64
	// DefaultMode holds the default value on creation for the "mode" field.
	DefaultMode string
	// DefaultXpGained holds the default value on creation for the "xp_gained" field.
	DefaultXpGained int
)

// OrderOption defines the ordering options for the StudySessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// BySeconds orders the results by the seconds field.
func BySeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeconds, opts...).ToFunc()
}

// ByMinutes orders the results by the minutes field.
func ByMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinutes, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByXpGained orders the results by the xp_gained field.
func ByXpGained(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpGained, opts...).ToFunc()
}
