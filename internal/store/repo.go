package store

import (
	"context"
	"time"

	"github.com/ritankar/lakshya/internal/profile"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Account is a locally registered study account.
type Account struct {
	ID            string
	Email         string
	DisplayName   string
	EmailVerified bool
	PhotoURL      string
	CreatedAt     time.Time
	LastSeenAt    time.Time
}

// AccountRepo manages the local account registry.
type AccountRepo interface {
	// GetByEmail returns the account for email, or nil if none exists.
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// Create registers a new account. The email must be unused.
	Create(ctx context.Context, email, displayName string) (*Account, error)

	// MarkVerified flips the email_verified flag for the account.
	MarkVerified(ctx context.Context, id string) error

	// Touch updates the account's last-seen time.
	Touch(ctx context.Context, id string) error
}

// ProfileRecord is a versioned profile document read from the store.
type ProfileRecord struct {
	AccountID string
	Version   int64
	UpdatedAt time.Time
	Profile   profile.Profile
}

// ProfileRepo stores one profile document per account. Put replaces
// the whole document; there is no partial update.
type ProfileRepo interface {
	// Get returns the account's profile record, or nil if none exists.
	Get(ctx context.Context, accountID string) (*ProfileRecord, error)

	// Put replaces the account's document and increments its version,
	// creating the record on first write.
	Put(ctx context.Context, accountID string, p profile.Profile) error

	// Delete removes the account's profile document.
	Delete(ctx context.Context, accountID string) error
}

// StudySessionEventData captures one committed timer session.
type StudySessionEventData struct {
	AccountID string
	Subject   string
	Seconds   int
	Minutes   float64
	Mode      string
	XPGained  int
}

// StudySessionEvent is a stored session event with its log position.
type StudySessionEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	StudySessionEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event with its log position.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendStudySession records a committed timer session.
	AppendStudySession(ctx context.Context, data StudySessionEventData) error

	// QueryStudySessions returns session events for an account,
	// newest first.
	QueryStudySessions(ctx context.Context, accountID string, opts QueryOpts) ([]StudySessionEvent, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
