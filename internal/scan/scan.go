// Package scan discovers input PDFs and derives their transcript paths.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// OutputSuffix replaces the input extension to form the transcript filename.
const OutputSuffix = "_extracted.txt"

// Document is one input PDF with its resolved page count.
type Document struct {
	Path      string // absolute or caller-relative path to the PDF
	Name      string // base filename including extension
	PageCount int
}

// List returns the PDF files in dir, sorted by name. The match on the
// .pdf extension is case-insensitive. It is an error for the directory
// to be missing or to contain no PDFs.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s", dir)
	}

	sort.Strings(paths)
	return paths, nil
}

// Load reads the page count of the PDF at path. A PDF that cannot be
// parsed or has no pages is an error; callers skip the document.
func Load(path string) (*Document, error) {
	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF %s: %w", path, err)
	}
	if pageCount <= 0 {
		return nil, fmt.Errorf("PDF %s has no pages", path)
	}

	return &Document{
		Path:      path,
		Name:      filepath.Base(path),
		PageCount: pageCount,
	}, nil
}

// OutputPath returns the transcript path for a PDF: the input's extension
// replaced with OutputSuffix, in the same directory.
func OutputPath(pdfPath string) string {
	base := strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath))
	return base + OutputSuffix
}

// Completed reports whether a transcript already exists for the PDF.
// Existence alone marks the document done; partial transcripts from an
// interrupted run are indistinguishable from complete ones.
func Completed(pdfPath string) bool {
	_, err := os.Stat(OutputPath(pdfPath))
	return err == nil
}
