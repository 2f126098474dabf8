package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jackzampolin/scribe/internal/config"
	"github.com/jackzampolin/scribe/internal/planner"
	"github.com/jackzampolin/scribe/internal/providers"
	"github.com/jackzampolin/scribe/internal/scan"
)

// Runner orchestrates the batch: scan a directory, then for each PDF
// plan its chunks and dispatch them sequentially. One document at a
// time, one chunk at a time.
type Runner struct {
	model  providers.DocumentModel
	cfg    *config.Config
	logger *slog.Logger

	// pause blocks between requests; swapped in tests.
	pause func(ctx context.Context, d time.Duration) error

	mu     sync.RWMutex
	wait   time.Duration
	settle time.Duration
}

// NewRunner creates a runner. A nil logger falls back to slog.Default.
func NewRunner(model providers.DocumentModel, cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		model:  model,
		cfg:    cfg,
		logger: logger,
		pause:  wait,
		wait:   cfg.Wait(),
		settle: cfg.UploadSettle(),
	}
}

// SetPauses updates the inter-chunk and post-upload pauses. Safe to
// call while a run is in progress: new values apply from the next
// pause, so a config reload takes effect without restarting the run.
func (r *Runner) SetPauses(wait, settle time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wait = wait
	r.settle = settle
}

func (r *Runner) waitDuration() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.wait
}

func (r *Runner) settleDuration() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settle
}

// Run processes every PDF in dir. A missing directory or a directory
// with no PDFs is fatal; per-document failures are logged and the batch
// continues. Context cancellation stops the batch.
func (r *Runner) Run(ctx context.Context, dir string) error {
	paths, err := scan.List(dir)
	if err != nil {
		return err
	}

	r.logger.Info("starting batch",
		"dir", dir,
		"documents", len(paths),
		"mode", r.cfg.Mode,
		"chunk_size", r.cfg.ChunkSize)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		if scan.Completed(path) {
			r.logger.Info("skipping document, transcript already exists",
				"pdf", path,
				"transcript", scan.OutputPath(path))
			continue
		}

		doc, err := scan.Load(path)
		if err != nil {
			r.logger.Error("skipping unreadable document", "pdf", path, "error", err)
			continue
		}

		if err := r.ProcessDocument(ctx, doc); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.Error("document failed", "pdf", path, "error", err)
			continue
		}
	}

	r.logger.Info("batch complete", "dir", dir)
	return nil
}

// ProcessDocument runs the full pipeline for one PDF: plan the page
// ranges, initialize the transcript, upload the document, then dispatch
// each chunk in order. A chunk failure never aborts the document; an
// upload failure does.
func (r *Runner) ProcessDocument(ctx context.Context, doc *scan.Document) error {
	ranges, err := planner.Plan(doc.PageCount, r.cfg.ChunkSize)
	if err != nil {
		return fmt.Errorf("failed to plan %s: %w", doc.Name, err)
	}

	r.logger.Info("processing document",
		"name", doc.Name,
		"pages", doc.PageCount,
		"chunks", len(ranges))

	writer := NewWriter(scan.OutputPath(doc.Path))
	if err := writer.Init(doc.Name); err != nil {
		return err
	}

	ref, err := r.model.UploadDocument(ctx, doc.Path, doc.Name)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", doc.Name, err)
	}
	r.logger.Debug("document uploaded", "name", doc.Name, "ref", ref.ID)

	// Give the provider a moment to finish indexing the upload.
	if err := r.pause(ctx, r.settleDuration()); err != nil {
		return err
	}

	var dispatcher ChunkDispatcher
	switch r.cfg.Mode {
	case config.ModeBatch:
		dispatcher = NewBatchDispatcher(r.model, ref, doc.Name)
	default:
		dispatcher = NewChatDispatcher(r.model, ref)
	}

	for i, pr := range ranges {
		chunk := Chunk{Ordinal: i, Total: len(ranges), Range: pr}

		if err := r.processChunk(ctx, dispatcher, writer, chunk); err != nil {
			return err
		}

		// Rate-limiting courtesy between requests, skipped after the
		// last chunk.
		if i < len(ranges)-1 {
			if err := r.pause(ctx, r.waitDuration()); err != nil {
				return err
			}
		}
	}

	r.logger.Info("document complete", "name", doc.Name, "transcript", writer.Path())
	return nil
}

// processChunk dispatches one chunk and records the outcome. Only
// cancellation and transcript write failures propagate; a model error
// or an empty response is logged and the loop moves on.
func (r *Runner) processChunk(ctx context.Context, dispatcher ChunkDispatcher, writer *Writer, chunk Chunk) error {
	log := r.logger.With("chunk", chunk.Label(), "pages", chunk.Range.String())

	result, err := dispatcher.Dispatch(ctx, chunk)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Error("chunk failed", "error", err)
		if section, ok := dispatcher.ErrorSection(chunk, err); ok {
			if werr := writer.Append(section); werr != nil {
				return werr
			}
		}
		return nil
	}

	if strings.TrimSpace(result.Text) == "" {
		log.Warn("model returned no text, skipping chunk")
		return nil
	}

	if err := writer.Append(dispatcher.Section(chunk, result.Text)); err != nil {
		return err
	}

	log.Info("chunk written",
		"progress", fmt.Sprintf("%.1f%%", float64(chunk.Ordinal+1)*100/float64(chunk.Total)),
		"chars", len(result.Text),
		"tokens", result.TotalTokens,
		"duration", result.ExecutionTime.Round(time.Millisecond))
	return nil
}

// wait blocks for d or until the context is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
