package providers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	OpenAIName         = "openai"
	openAIDefaultModel = "gpt-4o"
)

// OpenAIConfig holds configuration for the OpenAI document model.
type OpenAIConfig struct {
	APIKey        string
	Model         string        // chat model (default: gpt-4o)
	BaseURL       string        // optional (tests)
	Timeout       time.Duration // HTTP timeout (default: 10m, generation calls are slow)
	UploadRetries uint          // attempts for the file upload (default: 3)
	HTTPClient    *http.Client  // optional (tests)
}

// OpenAIModel implements DocumentModel using the official OpenAI SDK.
// PDFs are registered through the Files API and attached to chat
// completion requests by file ID.
type OpenAIModel struct {
	model         string
	uploadRetries uint
	client        openai.Client
}

// NewOpenAIModel creates a new OpenAI document model.
func NewOpenAIModel(cfg OpenAIConfig) *OpenAIModel {
	if cfg.Model == "" {
		cfg.Model = openAIDefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Minute
	}
	if cfg.UploadRetries == 0 {
		cfg.UploadRetries = 3
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIModel{
		model:         cfg.Model,
		uploadRetries: cfg.UploadRetries,
		client:        openai.NewClient(opts...),
	}
}

// Name returns the provider identifier.
func (m *OpenAIModel) Name() string {
	return OpenAIName
}

// UploadDocument uploads the PDF through the Files API. Transient upload
// failures are retried a bounded number of times; generation calls are
// never retried.
func (m *OpenAIModel) UploadDocument(ctx context.Context, path, displayName string) (DocumentRef, error) {
	var fileID string

	err := retry.Do(
		func() error {
			f, err := os.Open(path)
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("failed to open %s: %w", path, err))
			}
			defer f.Close()

			uploaded, err := m.client.Files.New(ctx, openai.FileNewParams{
				File:    openai.File(f, displayName, "application/pdf"),
				Purpose: openai.FilePurposeUserData,
			})
			if err != nil {
				return fmt.Errorf("file upload failed: %w", err)
			}
			fileID = uploaded.ID
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(m.uploadRetries),
		retry.Delay(time.Second),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return DocumentRef{}, fmt.Errorf("failed to upload %s: %w", displayName, err)
	}

	return DocumentRef{ID: fileID, Name: displayName}, nil
}

// Generate runs a single-turn request with the document attached.
func (m *OpenAIModel) Generate(ctx context.Context, ref DocumentRef, prompt string) (*GenerateResult, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		userTurn(ref, prompt),
	}
	return m.complete(ctx, messages)
}

// StartConversation opens a multi-turn exchange. The history is held
// client-side and grows with each turn.
func (m *OpenAIModel) StartConversation(ref DocumentRef) Conversation {
	return &openAIConversation{model: m, ref: ref}
}

func (m *OpenAIModel) complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (*GenerateResult, error) {
	start := time.Now()
	requestID := uuid.New().String()

	resp, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(m.model),
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}

	result := &GenerateResult{
		RequestID:     requestID,
		ModelUsed:     resp.Model,
		ExecutionTime: time.Since(start),
	}
	result.PromptTokens = int(resp.Usage.PromptTokens)
	result.CompletionTokens = int(resp.Usage.CompletionTokens)
	result.TotalTokens = int(resp.Usage.TotalTokens)

	// A response without usable text is not a transport error: the
	// caller decides whether an empty chunk is worth recording.
	if len(resp.Choices) > 0 {
		result.Text = resp.Choices[0].Message.Content
	}

	return result, nil
}

// userTurn builds a user message carrying the prompt plus the document,
// attached by file ID. The document rides along on every turn, matching
// how a user would re-share the file in a chat session.
func userTurn(ref DocumentRef, prompt string) openai.ChatCompletionMessageParamUnion {
	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.FileContentPart(openai.ChatCompletionContentPartFileFileParam{
			FileID: openai.String(ref.ID),
		}),
		openai.TextContentPart(prompt),
	}
	return openai.UserMessage(parts)
}

// openAIConversation accumulates the exchange history for one document.
// Not safe for concurrent use; Send must be called strictly in order.
type openAIConversation struct {
	model   *OpenAIModel
	ref     DocumentRef
	history []openai.ChatCompletionMessageParamUnion
}

// Send delivers the next turn and appends both sides to the history.
func (c *openAIConversation) Send(ctx context.Context, prompt string) (*GenerateResult, error) {
	c.history = append(c.history, userTurn(c.ref, prompt))

	result, err := c.model.complete(ctx, c.history)
	if err != nil {
		// Drop the failed turn so a later Send does not replay it.
		c.history = c.history[:len(c.history)-1]
		return nil, err
	}

	c.history = append(c.history, openai.AssistantMessage(result.Text))
	return result, nil
}

// Verify interfaces
var (
	_ DocumentModel = (*OpenAIModel)(nil)
	_ Conversation  = (*openAIConversation)(nil)
)
