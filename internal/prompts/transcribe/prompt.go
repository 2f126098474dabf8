// Package transcribe builds the model instructions for each page chunk.
package transcribe

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/jackzampolin/scribe/internal/planner"
)

//go:embed rules.tmpl
var rulesText string

//go:embed opening.tmpl
var openingTmpl string

//go:embed continuation.tmpl
var continuationTmpl string

//go:embed independent.tmpl
var independentTmpl string

var (
	openingTemplate      = template.Must(template.New("opening").Parse(openingTmpl))
	continuationTemplate = template.Must(template.New("continuation").Parse(continuationTmpl))
	independentTemplate  = template.Must(template.New("independent").Parse(independentTmpl))
)

type promptData struct {
	Start int
	End   int
	Rules string
}

// render executes tmpl with the page range. The templates are parsed at
// init and promptData is fixed, so an execute error is a programming
// bug, not a runtime condition.
func render(tmpl *template.Template, r planner.PageRange) string {
	var buf bytes.Buffer
	data := promptData{Start: r.Start, End: r.End, Rules: rulesText}
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("prompt template %s: %v", tmpl.Name(), err))
	}
	return buf.String()
}

// Opening returns the first-chunk prompt for a conversation. It carries
// the full transcription rulebook; later turns refer back to it.
func Opening(r planner.PageRange) string {
	return render(openingTemplate, r)
}

// Continuation returns the prompt for subsequent turns of an ongoing
// conversation. It instructs the model to keep the section counter
// established by earlier turns.
func Continuation(r planner.PageRange) string {
	return render(continuationTemplate, r)
}

// Independent returns the self-contained prompt used when every chunk is
// a fresh single-turn request. Each call repeats the full rulebook and
// pins the model strictly to the chunk's page range.
func Independent(r planner.PageRange) string {
	return render(independentTemplate, r)
}
