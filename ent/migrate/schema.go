// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString, Default: ""},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "photo_url", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "account_email",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ProfileDocsColumns holds the columns for the "profile_docs" table.
	ProfileDocsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "account_id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeInt64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// ProfileDocsTable holds the schema information for the "profile_docs" table.
	ProfileDocsTable = &schema.Table{
		Name:       "profile_docs",
		Columns:    ProfileDocsColumns,
		PrimaryKey: []*schema.Column{ProfileDocsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profiledoc_account_id",
				Unique:  false,
				Columns: []*schema.Column{ProfileDocsColumns[1]},
			},
		},
	}
	// StudySessionEventsColumns holds the columns for the "study_session_events" table.
	StudySessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "seconds", Type: field.TypeInt, Default: 0},
		{Name: "minutes", Type: field.TypeFloat64, Default: 0},
		{Name: "mode", Type: field.TypeString, Default: "stopwatch"},
		{Name: "xp_gained", Type: field.TypeInt, Default: 0},
	}
	// StudySessionEventsTable holds the schema information for the "study_session_events" table.
	StudySessionEventsTable = &schema.Table{
		Name:       "study_session_events",
		Columns:    StudySessionEventsColumns,
		PrimaryKey: []*schema.Column{StudySessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studysessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{StudySessionEventsColumns[1]},
			},
			{
				Name:    "studysessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StudySessionEventsColumns[2]},
			},
			{
				Name:    "studysessionevent_account_id",
				Unique:  false,
				Columns: []*schema.Column{StudySessionEventsColumns[3]},
			},
			{
				Name:    "studysessionevent_subject",
				Unique:  false,
				Columns: []*schema.Column{StudySessionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		LlmRequestEventsTable,
		ProfileDocsTable,
		StudySessionEventsTable,
	}
)

func init() {
}
