// Package providers defines the hosted-model interface used by the
// extraction pipeline, plus the concrete client implementations.
package providers

import (
	"context"
	"time"
)

// DocumentRef is an opaque reference to a document registered with a
// provider, usable in later generation calls.
type DocumentRef struct {
	ID   string // provider-assigned identifier
	Name string // display name (usually the PDF's base filename)
}

// GenerateResult is the outcome of a single generation call. An empty
// Text with a nil error means the model returned nothing usable for the
// request; callers treat that as "nothing to write" rather than a fault.
type GenerateResult struct {
	Text string

	// Token counts (zero when the provider omits usage)
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int

	// Request tracking
	RequestID     string
	ModelUsed     string
	ExecutionTime time.Duration
}

// Conversation is an ordered multi-turn exchange about one document.
// Implementations are not safe for concurrent use: the owner must issue
// Send calls strictly one at a time, in order, or the server-side context
// the conversation depends on becomes invalid.
type Conversation interface {
	// Send delivers the next turn and returns the model's reply.
	Send(ctx context.Context, prompt string) (*GenerateResult, error)
}

// DocumentModel is a hosted generative model that can accept an uploaded
// document and answer prompts about it.
type DocumentModel interface {
	// Name returns the provider identifier (e.g. "openai").
	Name() string

	// UploadDocument registers a local file with the provider and
	// returns the reference to use in generation calls.
	UploadDocument(ctx context.Context, path, displayName string) (DocumentRef, error)

	// Generate runs a single-turn request against the document.
	Generate(ctx context.Context, ref DocumentRef, prompt string) (*GenerateResult, error)

	// StartConversation opens a multi-turn exchange about the document.
	StartConversation(ref DocumentRef) Conversation
}
