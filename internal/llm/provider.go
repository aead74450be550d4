// Package llm abstracts the text-completion service behind a single
// Provider interface with interchangeable backends. Every call is
// single-turn: the caller re-sends whatever context it wants the model
// to see, and no conversation state lives on the provider side.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the text-completion abstraction the rest of the app
// programs against.
type Provider interface {
	// Generate sends one prompt and returns the completion. When the
	// request carries a Schema, the response Content is JSON validated
	// against it; otherwise Content is the raw reply text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID identifies the configured model.
	ModelID() string
}

// Request describes one completion call.
type Request struct {
	// System sets the assistant's role and constraints.
	System string

	// Messages is the conversation sent with this call. Chat re-sends
	// only the latest user turn together with a state snapshot.
	Messages []Message

	// Schema, when set, requests structured JSON output conforming to
	// the definition, using the backend's native mechanism.
	Schema *Schema

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature in 0..1; zero means deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is a message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the completion must satisfy.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the completion result.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw
	// reply text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
