package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"calc/internal/diag"
	"calc/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgRed)
)

// Pretty renders diagnostics in human-readable form. It walks bag.Items()
// (call bag.Sort() beforehand) and prints for each:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the offending source line with a ^~~~ underline over the span.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		file := fs.Get(d.Primary.File)

		sev := d.Severity.String()
		if opts.Color {
			sev = severityColor(d.Severity).Sprint(sev)
		}
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			file.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

		if opts.Context > 0 {
			writeExcerpt(w, file, d.Primary, start, opts)
		}

		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
				file.Path, noteStart.Line, noteStart.Col, note.Msg)
		}
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// writeExcerpt prints the faulting line and a caret underline. Expression
// sources are usually one line, so the excerpt stays minimal.
func writeExcerpt(w io.Writer, file *source.File, span source.Span, start source.LineCol, opts PrettyOpts) {
	line := file.GetLine(start.Line)
	if line == "" && span.Start >= uint32(len(file.Content)) {
		// fault at end of input: still show the line so the caret lands
		// one past its last character
		line = file.GetLine(start.Line - 1)
	}
	fmt.Fprintf(w, "  %s\n", line)

	underlineLen := int(span.Len())
	if underlineLen < 1 {
		underlineLen = 1
	}
	underline := "^" + strings.Repeat("~", underlineLen-1)
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", int(start.Col)-1), underline)
}
