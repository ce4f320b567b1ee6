package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/width"

	"github.com/wyrelang/wyre/diag"
)

// Renderer writes diagnostics as caret-annotated source snippets:
//
//	src/main.wy:1:11: error: expected ';' -- found 'return'
//	    let x = 1 return x;
//	              ^^^^^^
type Renderer struct {
	// MaxErrors caps the number of rendered diagnostics. Zero means no cap.
	MaxErrors int
}

// Render writes every diagnostic for one file. src must be the text the
// file was parsed from.
func (r *Renderer) Render(w io.Writer, filename, src string, diagnostics []*diag.ParseError) {
	lines := strings.Split(src, "\n")

	limit := len(diagnostics)
	if r.MaxErrors > 0 && limit > r.MaxErrors {
		limit = r.MaxErrors
	}

	for _, d := range diagnostics[:limit] {
		r.renderOne(w, filename, lines, d)
	}

	if rest := len(diagnostics) - limit; rest > 0 {
		fmt.Fprintf(w, "... and %d more errors\n", rest)
	}
}

func (r *Renderer) renderOne(w io.Writer, filename string, lines []string, d *diag.ParseError) {
	label := color.New(color.FgRed, color.Bold).Sprint("error")

	// Diagnostics with no position, e.g. on empty input.
	if d.Span.IsZero() {
		fmt.Fprintf(w, "%s: %s: %s\n", filename, label, d.Message)
		return
	}

	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", filename, d.Span.Start.Line, d.Span.Start.Column, label, d.Message)

	line := d.Span.Start.Line
	if line < 1 || line > len(lines) {
		return
	}

	text := lines[line-1]
	runes := []rune(text)

	// Columns are 1-based rune offsets; the end column is exclusive.
	start := d.Span.Start.Column - 1
	if start < 0 {
		start = 0
	}

	if start > len(runes) {
		start = len(runes)
	}

	end := len(runes)
	if d.Span.End.Line == line && d.Span.End.Column-1 < end {
		end = d.Span.End.Column - 1
	}

	if end < start {
		end = start
	}

	padding := displayWidth(string(runes[:start]))

	carets := displayWidth(string(runes[start:end]))
	if carets < 1 {
		carets = 1
	}

	fmt.Fprintf(w, "    %s\n", text)
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", padding), color.RedString(strings.Repeat("^", carets)))
}

// RenderError renders err through the renderer when it carries positioned
// diagnostics, falling back to a plain line otherwise.
func (r *Renderer) RenderError(w io.Writer, filename, src string, err error) {
	var list *diag.ErrorList
	if errors.As(err, &list) {
		r.Render(w, filename, src, list.Errors)
		return
	}

	var parseErr *diag.ParseError
	if errors.As(err, &parseErr) {
		r.Render(w, filename, src, []*diag.ParseError{parseErr})
		return
	}

	fmt.Fprintf(w, "%s: %s: %v\n", filename, color.New(color.FgRed, color.Bold).Sprint("error"), err)
}

// displayWidth is the terminal cell count of s. East Asian wide and
// fullwidth runes occupy two cells, everything else one, so the caret
// line stays aligned under sources with wide characters.
func displayWidth(s string) int {
	total := 0

	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			total += 2
		default:
			total++
		}
	}

	return total
}
