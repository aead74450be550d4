// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ritankar/lakshya/ent/account"
	"github.com/ritankar/lakshya/ent/llmrequestevent"
	"github.com/ritankar/lakshya/ent/profiledoc"
	"github.com/ritankar/lakshya/ent/schema"
	"github.com/ritankar/lakshya/ent/studysessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescEmail is the schema descriptor for email field.
	accountDescEmail := accountFields[1].Descriptor()
	// account.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	account.EmailValidator = accountDescEmail.Validators[0].(func(string) error)
	// accountDescDisplayName is the schema descriptor for display_name field.
	accountDescDisplayName := accountFields[2].Descriptor()
	// account.DefaultDisplayName holds the default value on creation for the display_name field.
	account.DefaultDisplayName = accountDescDisplayName.Default.(string)
	// accountDescEmailVerified is the schema descriptor for email_verified field.
	accountDescEmailVerified := accountFields[3].Descriptor()
	// account.DefaultEmailVerified holds the default value on creation for the email_verified field.
	account.DefaultEmailVerified = accountDescEmailVerified.Default.(bool)
	// accountDescPhotoURL is the schema descriptor for photo_url field.
	accountDescPhotoURL := accountFields[4].Descriptor()
	// account.DefaultPhotoURL holds the default value on creation for the photo_url field.
	account.DefaultPhotoURL = accountDescPhotoURL.Default.(string)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[5].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescLastSeenAt is the schema descriptor for last_seen_at field.
	accountDescLastSeenAt := accountFields[6].Descriptor()
	// account.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	account.DefaultLastSeenAt = accountDescLastSeenAt.Default.(func() time.Time)
	// accountDescID is the schema descriptor for id field.
	accountDescID := accountFields[0].Descriptor()
	// account.DefaultID holds the default value on creation for the id field.
	account.DefaultID = accountDescID.Default.(func() string)
	// account.IDValidator is a validator for the "id" field. It is called by the builders before save.
	account.IDValidator = accountDescID.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	profiledocFields := schema.ProfileDoc{}.Fields()
	_ = profiledocFields
	// profiledocDescAccountID is the schema descriptor for account_id field.
	profiledocDescAccountID := profiledocFields[0].Descriptor()
	// profiledoc.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	profiledoc.AccountIDValidator = profiledocDescAccountID.Validators[0].(func(string) error)
	// profiledocDescVersion is the schema descriptor for version field.
	profiledocDescVersion := profiledocFields[1].Descriptor()
	// profiledoc.DefaultVersion holds the default value on creation for the version field.
	profiledoc.DefaultVersion = profiledocDescVersion.Default.(int64)
	// profiledocDescUpdatedAt is the schema descriptor for updated_at field.
	profiledocDescUpdatedAt := profiledocFields[2].Descriptor()
	// profiledoc.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profiledoc.DefaultUpdatedAt = profiledocDescUpdatedAt.Default.(func() time.Time)
	// profiledoc.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profiledoc.UpdateDefaultUpdatedAt = profiledocDescUpdatedAt.UpdateDefault.(func() time.Time)
	studysessioneventMixin := schema.StudySessionEvent{}.Mixin()
	studysessioneventMixinFields0 := studysessioneventMixin[0].Fields()
	_ = studysessioneventMixinFields0
	studysessioneventFields := schema.StudySessionEvent{}.Fields()
	_ = studysessioneventFields
	// studysessioneventDescTimestamp is the schema descriptor for timestamp field.
	studysessioneventDescTimestamp := studysessioneventMixinFields0[1].Descriptor()
	// studysessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	studysessionevent.DefaultTimestamp = studysessioneventDescTimestamp.Default.(func() time.Time)
	// studysessioneventDescAccountID is the schema descriptor for account_id field.
	studysessioneventDescAccountID := studysessioneventFields[0].Descriptor()
	// studysessionevent.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	studysessionevent.AccountIDValidator = studysessioneventDescAccountID.Validators[0].(func(string) error)
	// studysessioneventDescSubject is the schema descriptor for subject field.
	studysessioneventDescSubject := studysessioneventFields[1].Descriptor()
	// studysessionevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	studysessionevent.SubjectValidator = studysessioneventDescSubject.Validators[0].(func(string) error)
	// studysessioneventDescSeconds is the schema descriptor for seconds field.
	studysessioneventDescSeconds := studysessioneventFields[2].Descriptor()
	// studysessionevent.DefaultSeconds holds the default value on creation for the seconds field.
	studysessionevent.DefaultSeconds = studysessioneventDescSeconds.Default.(int)
	// studysessioneventDescMinutes is the schema descriptor for minutes field.
	studysessioneventDescMinutes := studysessioneventFields[3].Descriptor()
	// studysessionevent.DefaultMinutes holds the default value on creation for the minutes field.
	studysessionevent.DefaultMinutes = studysessioneventDescMinutes.Default.(float64)
	// studysessioneventDescMode is the schema descriptor for mode field.
	studysessioneventDescMode := studysessioneventFields[4].Descriptor()
	// studysessionevent.DefaultMode holds the default value on creation for the mode field.
	studysessionevent.DefaultMode = studysessioneventDescMode.Default.(string)
	// studysessioneventDescXpGained is the schema descriptor for xp_gained field.
	studysessioneventDescXpGained := studysessioneventFields[5].Descriptor()
	// studysessionevent.DefaultXpGained holds the default value on creation for the xp_gained field.
	studysessionevent.DefaultXpGained = studysessioneventDescXpGained.Default.(int)
}
