package lsp

import (
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"umjunsik/internal/errors"
)

const diagnosticSource = "umjunsik"

// ConvertDiagnostics turns compiler diagnostics into LSP diagnostics.
// Columns are counted in runes; every character of the language is in the
// Basic Multilingual Plane, so they match UTF-16 offsets.
func ConvertDiagnostics(errs []errors.CompilerError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(errs))

	for _, err := range errs {
		line := uint32(max(err.Position.Line-1, 0))
		start := uint32(max(err.Position.Column-1, 0))

		severity := protocol.DiagnosticSeverityError
		if err.IsWarning() {
			severity = protocol.DiagnosticSeverityWarning
		}

		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: start},
				End:   protocol.Position{Line: line, Character: start + uint32(max(err.Length, 1))},
			},
			Severity: &severity,
			Source:   ptrString(diagnosticSource),
			Message:  err.Message,
		}
		if err.Code != "" {
			diagnostic.Code = &protocol.IntegerOrString{Value: err.Code}
		}

		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// endOf returns the position just past the last character of text
func endOf(text string) protocol.Position {
	var line, char uint32
	for _, r := range text {
		if r == '\n' {
			line++
			char = 0
			continue
		}
		char += uint32(utf16Len(r))
	}
	return protocol.Position{Line: line, Character: char}
}

func utf16Len(r rune) int {
	if r >= 0x10000 && utf8.ValidRune(r) {
		return 2
	}
	return 1
}

func ptrString(s string) *string {
	return &s
}
