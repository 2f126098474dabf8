package transcribe

import (
	"strings"
	"testing"

	"github.com/jackzampolin/scribe/internal/planner"
)

func TestOpening(t *testing.T) {
	p := Opening(planner.PageRange{Start: 1, End: 50})

	if !strings.Contains(p, "pages 1-50") {
		t.Error("opening prompt should name the page range")
	}
	if !strings.Contains(p, "Document Analysis and Transcription Rules") {
		t.Error("opening prompt should carry the full rulebook")
	}
	if !strings.Contains(p, "(End of Section X)") {
		t.Error("opening prompt should describe the section end marker")
	}
}

func TestContinuation(t *testing.T) {
	p := Continuation(planner.PageRange{Start: 51, End: 100})

	if !strings.Contains(p, "pages 51-100") {
		t.Error("continuation prompt should name the page range")
	}
	if !strings.Contains(p, "Continue the section numbering") {
		t.Error("continuation prompt should ask for a continued section counter")
	}
	if strings.Contains(p, "#### Role") {
		t.Error("continuation prompt should not repeat the rulebook")
	}
}

func TestIndependent(t *testing.T) {
	p := Independent(planner.PageRange{Start: 31, End: 60})

	if !strings.Contains(p, "pages 31-60") {
		t.Error("independent prompt should name the page range")
	}
	if !strings.Contains(p, "ONLY the content inside this page range") {
		t.Error("independent prompt should pin the model to the range")
	}
	if !strings.Contains(p, "Document Analysis and Transcription Rules") {
		t.Error("independent prompt should repeat the full rulebook")
	}
}

func TestPromptsFullyRendered(t *testing.T) {
	r := planner.PageRange{Start: 1, End: 50}
	for name, p := range map[string]string{
		"opening":      Opening(r),
		"continuation": Continuation(r),
		"independent":  Independent(r),
	} {
		if strings.Contains(p, "{{") || strings.Contains(p, "}}") {
			t.Errorf("%s prompt contains unrendered placeholders", name)
		}
	}
}

func TestPromptsDifferPerRange(t *testing.T) {
	a := Independent(planner.PageRange{Start: 1, End: 30})
	b := Independent(planner.PageRange{Start: 31, End: 60})
	if a == b {
		t.Error("prompts for different ranges should differ")
	}
}
