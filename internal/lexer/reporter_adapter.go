package lexer

import (
	"calc/internal/diag"
	"calc/internal/source"
)

// ReporterAdapter bridges the lexer's thin Reporter to a diag.Bag.
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Reporter returns a Reporter that records lexer faults as diagnostics.
func (r *ReporterAdapter) Reporter() Reporter {
	return bagBackedReporter{bag: r.Bag}
}

type bagBackedReporter struct {
	bag *diag.Bag
}

func (r bagBackedReporter) Report(kind string, span source.Span, msg string) {
	if r.bag == nil {
		return
	}
	code := diag.LexInfo
	if kind == "InvalidChar" {
		code = diag.LexInvalidChar
	}
	r.bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}
