// Package planner splits a document's pages into contiguous chunks.
package planner

import "fmt"

// PageRange is a 1-indexed, inclusive range of pages within a document.
type PageRange struct {
	Start int
	End   int
}

// Pages returns the number of pages covered by the range.
func (r PageRange) Pages() int {
	return r.End - r.Start + 1
}

// String formats the range for prompts and transcript labels.
func (r PageRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Plan divides totalPages into ordered, contiguous ranges of at most
// chunkSize pages each. The ranges cover [1, totalPages] exactly once;
// only the last range may be shorter than chunkSize.
func Plan(totalPages, chunkSize int) ([]PageRange, error) {
	if totalPages <= 0 {
		return nil, fmt.Errorf("total pages must be positive, got %d", totalPages)
	}
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}

	numChunks := (totalPages + chunkSize - 1) / chunkSize
	ranges := make([]PageRange, 0, numChunks)
	for i := 0; i < numChunks; i++ {
		start := i*chunkSize + 1
		end := (i + 1) * chunkSize
		if end > totalPages {
			end = totalPages
		}
		ranges = append(ranges, PageRange{Start: start, End: end})
	}
	return ranges, nil
}
