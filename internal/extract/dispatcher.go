package extract

import (
	"context"
	"fmt"

	"github.com/jackzampolin/scribe/internal/planner"
	"github.com/jackzampolin/scribe/internal/prompts/transcribe"
	"github.com/jackzampolin/scribe/internal/providers"
)

// Chunk pairs a page range with its position in the dispatch sequence.
type Chunk struct {
	Ordinal int // 0-based position
	Total   int // number of chunks for the document
	Range   planner.PageRange
}

// Label returns the human-readable chunk identifier used in logs and
// transcript delimiters, e.g. "chunk 2/5".
func (c Chunk) Label() string {
	return fmt.Sprintf("chunk %d/%d", c.Ordinal+1, c.Total)
}

// ChunkDispatcher is the per-chunk request strategy. The two
// implementations differ only in request independence: chat mode keeps
// one conversation per document so the model carries state across
// chunks, batch mode issues a fresh single-turn request every time.
type ChunkDispatcher interface {
	// Name identifies the strategy ("chat" or "batch").
	Name() string

	// Dispatch sends the chunk's prompt to the model and returns the
	// result. Must be called strictly in chunk order.
	Dispatch(ctx context.Context, c Chunk) (*providers.GenerateResult, error)

	// Section formats a successful chunk's transcript section,
	// including its labeled delimiter.
	Section(c Chunk, text string) string

	// ErrorSection formats an inline failure marker for the
	// transcript. ok is false when the strategy records failures in
	// logs only.
	ErrorSection(c Chunk, err error) (section string, ok bool)
}

// chatDispatcher holds one conversation for the whole document. The
// first chunk carries the full rulebook; later chunks send a short
// continuation that relies on the established context.
type chatDispatcher struct {
	conv providers.Conversation
}

// NewChatDispatcher opens a conversation about the document and returns
// the multi-turn strategy.
func NewChatDispatcher(model providers.DocumentModel, ref providers.DocumentRef) ChunkDispatcher {
	return &chatDispatcher{conv: model.StartConversation(ref)}
}

func (d *chatDispatcher) Name() string { return "chat" }

func (d *chatDispatcher) Dispatch(ctx context.Context, c Chunk) (*providers.GenerateResult, error) {
	var prompt string
	if c.Ordinal == 0 {
		prompt = transcribe.Opening(c.Range)
	} else {
		prompt = transcribe.Continuation(c.Range)
	}
	return d.conv.Send(ctx, prompt)
}

func (d *chatDispatcher) Section(c Chunk, text string) string {
	return fmt.Sprintf("--- [%s] pages %s ---\n\n%s", c.Label(), c.Range, text)
}

// ErrorSection reports nothing to write: in chat mode a failed chunk is
// visible only in the logs and as a gap in the transcript.
func (d *chatDispatcher) ErrorSection(c Chunk, err error) (string, bool) {
	return "", false
}

// batchDispatcher issues an independent single-turn request per chunk.
// Each prompt repeats the full rulebook and pins the model to the
// chunk's page range.
type batchDispatcher struct {
	model        providers.DocumentModel
	ref          providers.DocumentRef
	documentName string
}

// NewBatchDispatcher returns the independent-request strategy.
func NewBatchDispatcher(model providers.DocumentModel, ref providers.DocumentRef, documentName string) ChunkDispatcher {
	return &batchDispatcher{model: model, ref: ref, documentName: documentName}
}

func (d *batchDispatcher) Name() string { return "batch" }

func (d *batchDispatcher) Dispatch(ctx context.Context, c Chunk) (*providers.GenerateResult, error) {
	return d.model.Generate(ctx, d.ref, transcribe.Independent(c.Range))
}

func (d *batchDispatcher) Section(c Chunk, text string) string {
	return fmt.Sprintf("===== %s | pages %s =====\n\n%s", d.documentName, c.Range, text)
}

// ErrorSection leaves an inline marker so the failure is visible in the
// transcript itself, not just the logs.
func (d *batchDispatcher) ErrorSection(c Chunk, err error) (string, bool) {
	return fmt.Sprintf("ERROR [chunk %d] pages %s: %v", c.Ordinal+1, c.Range, err), true
}

// Verify interfaces
var (
	_ ChunkDispatcher = (*chatDispatcher)(nil)
	_ ChunkDispatcher = (*batchDispatcher)(nil)
)
