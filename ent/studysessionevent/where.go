// Code generated by ent, DO NOT EDIT.

package studysessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ritankar/lakshya/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldAccountID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldSubject, v))
}

// Seconds applies equality check predicate on the "seconds" field. It's identical to SecondsEQ.
func Seconds(v int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldSeconds, v))
}

// Minutes applies equality check predicate on the "minutes" field. It's identical to MinutesEQ.
func Minutes(v float64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldMinutes, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldMode, v))
}

// XpGained applies equality check predicate on the "xp_gained" field. It's identical to XpGainedEQ.
func XpGained(v int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldXpGained, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldContainsFold(FieldAccountID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldContainsFold(FieldSubject, v))
}

// SecondsEQ applies the EQ predicate on the "seconds" field.
func SecondsEQ(v int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldSeconds, v))
}

// SecondsNEQ applies the NEQ predicate on the "seconds" field.
func SecondsNEQ(v int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNEQ(FieldSeconds, v))
}

// SecondsIn applies the In predicate on the "seconds" field.
func SecondsIn(vs ...int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldIn(FieldSeconds, vs...))
}

// SecondsNotIn applies the NotIn predicate on the "seconds" field.
func SecondsNotIn(vs ...int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNotIn(FieldSeconds, vs...))
}

// SecondsGT applies the GT predicate on the "seconds" field.
func SecondsGT(v int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGT(FieldSeconds, v))
}

// SecondsGTE applies the GTE predicate on the "seconds" field.
func SecondsGTE(v int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGTE(FieldSeconds, v))
}

// SecondsLT applies the LT predicate on the "seconds" field.
func SecondsLT(v int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLT(FieldSeconds, v))
}

// SecondsLTE applies the LTE predicate on the "seconds" field.
func SecondsLTE(v int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLTE(FieldSeconds, v))
}

// MinutesEQ applies the EQ predicate on the "minutes" field.
func MinutesEQ(v float64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldMinutes, v))
}

// MinutesNEQ applies the NEQ predicate on the "minutes" field.
func MinutesNEQ(v float64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNEQ(FieldMinutes, v))
}

// MinutesIn applies the In predicate on the "minutes" field.
func MinutesIn(vs ...float64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldIn(FieldMinutes, vs...))
}

// MinutesNotIn applies the NotIn predicate on the "minutes" field.
func MinutesNotIn(vs ...float64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNotIn(FieldMinutes, vs...))
}

// MinutesGT applies the GT predicate on the "minutes" field.
func MinutesGT(v float64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGT(FieldMinutes, v))
}

// MinutesGTE applies the GTE predicate on the "minutes" field.
func MinutesGTE(v float64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGTE(FieldMinutes, v))
}

// MinutesLT applies the LT predicate on the "minutes" field.
func MinutesLT(v float64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLT(FieldMinutes, v))
}

// MinutesLTE applies the LTE predicate on the "minutes" field.
func MinutesLTE(v float64) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLTE(FieldMinutes, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldContainsFold(FieldMode, v))
}

// XpGainedEQ applies the EQ predicate on the "xp_gained" field.
func XpGainedEQ(v int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldEQ(FieldXpGained, v))
}

// XpGainedNEQ applies the NEQ predicate on the "xp_gained" field.
func XpGainedNEQ(v int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNEQ(FieldXpGained, v))
}

// XpGainedIn applies the In predicate on the "xp_gained" field.
func XpGainedIn(vs ...int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldIn(FieldXpGained, vs...))
}

// XpGainedNotIn applies the NotIn predicate on the "xp_gained" field.
func XpGainedNotIn(vs ...int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldNotIn(FieldXpGained, vs...))
}

// XpGainedGT applies the GT predicate on the "xp_gained" field.
func XpGainedGT(v int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGT(FieldXpGained, v))
}

// XpGainedGTE applies the GTE predicate on the "xp_gained" field.
func XpGainedGTE(v int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldGTE(FieldXpGained, v))
}

// XpGainedLT applies the LT predicate on the "xp_gained" field.
func XpGainedLT(v int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLT(FieldXpGained, v))
}

// XpGainedLTE applies the LTE predicate on the "xp_gained" field.
func XpGainedLTE(v int) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.FieldLTE(FieldXpGained, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudySessionEvent) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudySessionEvent) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudySessionEvent) predicate.StudySessionEvent {
	return predicate.StudySessionEvent(sql.NotPredicates(p))
}
