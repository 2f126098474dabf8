package providers

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const MockModelName = "mock"

// MockResponse scripts one generation call of a MockModel.
type MockResponse struct {
	Text string
	Err  error
}

// MockModel is a DocumentModel for testing. Generation calls consume the
// scripted Responses in order; calls past the end of the script return
// ResponseText.
type MockModel struct {
	// Configurable behavior
	UploadErr    error
	Responses    []MockResponse
	ResponseText string
	Latency      time.Duration

	// State
	mu        sync.Mutex
	calls     int
	Uploads   []string // display names passed to UploadDocument
	Prompts   []string // prompts in the order they were dispatched
	ConvCount int      // number of conversations started
}

// NewMockModel creates a mock with sensible defaults.
func NewMockModel() *MockModel {
	return &MockModel{
		ResponseText: "mock transcript",
	}
}

// Name returns the provider identifier.
func (m *MockModel) Name() string {
	return MockModelName
}

// UploadDocument records the upload and returns a synthetic reference.
func (m *MockModel) UploadDocument(ctx context.Context, path, displayName string) (DocumentRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UploadErr != nil {
		return DocumentRef{}, m.UploadErr
	}
	m.Uploads = append(m.Uploads, displayName)
	return DocumentRef{ID: fmt.Sprintf("mock-file-%d", len(m.Uploads)), Name: displayName}, nil
}

// Generate consumes the next scripted response.
func (m *MockModel) Generate(ctx context.Context, ref DocumentRef, prompt string) (*GenerateResult, error) {
	return m.next(ctx, prompt)
}

// StartConversation returns a conversation backed by the same script.
func (m *MockModel) StartConversation(ref DocumentRef) Conversation {
	m.mu.Lock()
	m.ConvCount++
	m.mu.Unlock()
	return &mockConversation{model: m}
}

func (m *MockModel) next(ctx context.Context, prompt string) (*GenerateResult, error) {
	if m.Latency > 0 {
		select {
		case <-time.After(m.Latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)
	call := m.calls
	m.calls++

	if call < len(m.Responses) {
		r := m.Responses[call]
		if r.Err != nil {
			return nil, r.Err
		}
		return &GenerateResult{
			Text:      r.Text,
			RequestID: fmt.Sprintf("mock-%d", call+1),
			ModelUsed: MockModelName,
		}, nil
	}

	return &GenerateResult{
		Text:      m.ResponseText,
		RequestID: fmt.Sprintf("mock-%d", call+1),
		ModelUsed: MockModelName,
	}, nil
}

type mockConversation struct {
	model *MockModel
}

func (c *mockConversation) Send(ctx context.Context, prompt string) (*GenerateResult, error) {
	return c.model.next(ctx, prompt)
}

// Verify interfaces
var (
	_ DocumentModel = (*MockModel)(nil)
	_ Conversation  = (*mockConversation)(nil)
)
