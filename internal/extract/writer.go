// Package extract drives the per-document transcription pipeline: plan
// page ranges, dispatch them to the model in order, and append results
// to the transcript file.
package extract

import (
	"fmt"
	"os"
	"strings"
)

const separatorWidth = 80

func separator() string {
	return strings.Repeat("=", separatorWidth)
}

// Writer owns one append-only transcript file. Every append is flushed
// to stable storage before returning, so a crash leaves a valid prefix
// of complete sections.
type Writer struct {
	path string
}

// NewWriter creates a writer for the transcript at path. Nothing is
// written until Init.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the transcript path.
func (w *Writer) Path() string {
	return w.path
}

// Init creates (or truncates) the transcript and writes its header.
func (w *Writer) Init(documentName string) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create transcript %s: %w", w.path, err)
	}

	header := fmt.Sprintf("Text extracted from PDF %q\n%s\n\n", documentName, separator())
	if _, err := f.WriteString(header); err != nil {
		f.Close()
		return fmt.Errorf("failed to write transcript header: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync transcript: %w", err)
	}
	return f.Close()
}

// Append adds one section followed by a separator line, then syncs the
// file. Each call is a durability checkpoint.
func (w *Writer) Append(section string) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open transcript %s: %w", w.path, err)
	}

	body := fmt.Sprintf("%s\n\n%s\n\n", strings.TrimRight(section, "\n"), separator())
	if _, err := f.WriteString(body); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to transcript: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync transcript: %w", err)
	}
	return f.Close()
}
