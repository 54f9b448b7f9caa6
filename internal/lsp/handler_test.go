package lsp_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"umjunsik/internal/lsp"
)

const testURI = "file:///tmp/test.umm"

// recorder captures published diagnostics
type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last(t *testing.T) *protocol.PublishDiagnosticsParams {
	require.NotEmpty(t, r.published, "no diagnostics published")
	return r.published[len(r.published)-1]
}

func open(t *testing.T, handler *lsp.UmjunsikHandler, ctx *glsp.Context, text string) {
	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: testURI, LanguageID: "umjunsik", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewUmjunsikHandler()

	absPath, err := filepath.Abs(filepath.Join("../../examples", "countdown.umm"))
	require.NoError(t, err, "Failed to get absolute path")

	uri := "file://" + filepath.ToSlash(absPath)

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: uri,
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 16)

	assertToken(t, &decoded[0], 1, 1, 3, "keyword", nil)
	assertToken(t, &decoded[1], 2, 1, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[2], 2, 2, 3, "number", nil)
	assertToken(t, &decoded[3], 3, 1, 1, "keyword", nil)
	assertToken(t, &decoded[4], 3, 2, 1, "variable", nil)
	assertToken(t, &decoded[5], 3, 3, 1, "operator", nil)
	assertToken(t, &decoded[6], 4, 1, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[7], 4, 2, 1, "variable", nil)
	assertToken(t, &decoded[8], 4, 3, 1, "number", nil)
	assertToken(t, &decoded[9], 5, 1, 2, "keyword", nil)
	assertToken(t, &decoded[10], 5, 3, 1, "variable", nil)
	assertToken(t, &decoded[11], 5, 4, 1, "operator", nil)
	assertToken(t, &decoded[12], 5, 5, 1, "keyword", nil)
	assertToken(t, &decoded[13], 5, 6, 2, "number", nil)
	assertToken(t, &decoded[14], 6, 1, 3, "keyword", nil)
	assertToken(t, &decoded[15], 7, 1, 10, "keyword", nil)
}

func TestDiagnosticsForBrokenDocument(t *testing.T) {
	handler := lsp.NewUmjunsikHandler()
	rec := &recorder{}

	open(t, handler, rec.context(), "어떻게\n식어\n이 사람이름이냐")

	params := rec.last(t)
	assert.Equal(t, testURI, params.URI)
	require.NotEmpty(t, params.Diagnostics)

	diag := params.Diagnostics[0]
	assert.Equal(t, protocol.DiagnosticSeverityError, *diag.Severity)
	assert.Equal(t, uint32(1), diag.Range.Start.Line)
	assert.Equal(t, "umjunsik", *diag.Source)
	assert.Equal(t, "E0203", diag.Code.Value)
}

func TestWarningsArePublished(t *testing.T) {
	handler := lsp.NewUmjunsikHandler()
	rec := &recorder{}

	open(t, handler, rec.context(), "어떻게\n식어!\n이 사람이름이냐")

	params := rec.last(t)
	require.Len(t, params.Diagnostics, 1)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *params.Diagnostics[0].Severity)
	assert.Equal(t, "W0003", params.Diagnostics[0].Code.Value)
}

func TestDidChangeAndClose(t *testing.T) {
	handler := lsp.NewUmjunsikHandler()
	rec := &recorder{}
	ctx := rec.context()

	open(t, handler, ctx, "어떻게\n식어\n이 사람이름이냐")
	require.NotEmpty(t, rec.last(t).Diagnostics)

	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "어떻게\n엄.\n식어!\n이 사람이름이냐"},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, rec.last(t).Diagnostics)

	err = handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)
	assert.Empty(t, rec.last(t).Diagnostics)
}

func TestFormatting(t *testing.T) {
	handler := lsp.NewUmjunsikHandler()
	rec := &recorder{}

	open(t, handler, rec.context(), "어떻게\n엄...   ..~식어!\n이 사람이름이냐")

	edits, err := handler.TextDocumentFormatting(rec.context(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)
	require.Len(t, edits, 1)

	assert.Equal(t, "어떻게\n엄... ..\n식어!\n이 사람이름이냐\n", edits[0].NewText)
	assert.Equal(t, protocol.Position{Line: 0, Character: 0}, edits[0].Range.Start)
	assert.Equal(t, protocol.Position{Line: 2, Character: 8}, edits[0].Range.End)
}

func TestHoverShowsSlot(t *testing.T) {
	handler := lsp.NewUmjunsikHandler()
	rec := &recorder{}

	open(t, handler, rec.context(), "어떻게\n어엄.\n식어어!\n이 사람이름이냐")

	hover, err := handler.TextDocumentHover(rec.context(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 2, Character: 2},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)

	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Contains(t, content.Value, "`v1`")
	assert.Contains(t, content.Value, "`%v0`")
	assert.Equal(t, protocol.Position{Line: 2, Character: 1}, hover.Range.Start)
	assert.Equal(t, protocol.Position{Line: 2, Character: 3}, hover.Range.End)

	hover, err = handler.TextDocumentHover(rec.context(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 2, Character: 0},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)
	assert.Contains(t, hover.Contents.(protocol.MarkupContent).Value, "console output")
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
