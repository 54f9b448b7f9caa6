package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"umjunsik/grammar"
	"umjunsik/internal/compiler"
	"umjunsik/internal/errors"
)

var log = commonlog.GetLogger("umjunsik.lsp")

// Number of distinct document texts whose compile results are kept
const cacheSize = 64

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"number",
	"operator",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
}

// analysis is a cached compilation of one document text
type analysis struct {
	result      *compiler.Result
	diagnostics []errors.CompilerError
}

// UmjunsikHandler implements the LSP server handlers for Umjunsik sources
type UmjunsikHandler struct {
	mu      sync.RWMutex
	content map[string]string // by document URI
	cache   *lru.Cache        // document text -> *analysis
}

// NewUmjunsikHandler creates and returns a new UmjunsikHandler instance
func NewUmjunsikHandler() *UmjunsikHandler {
	cache, _ := lru.New(cacheSize)
	return &UmjunsikHandler{
		content: make(map[string]string),
		cache:   cache,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *UmjunsikHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
			DocumentFormattingProvider: true,
			HoverProvider:              true,
		},
	}, nil
}

func (h *UmjunsikHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *UmjunsikHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *UmjunsikHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen stores the opened text and publishes its diagnostics
func (h *UmjunsikHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("opened %s", uri)

	h.setContent(uri, params.TextDocument.Text)
	h.publish(ctx, uri, h.analyze(uri, params.TextDocument.Text))
	return nil
}

// TextDocumentDidChange handles full-text change notifications
func (h *UmjunsikHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s", uri)

	text, ok := h.getContent(uri)
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			// only full sync is advertised, but accept a whole-document event
			if c.Range == nil {
				text, ok = c.Text, true
			}
		}
	}
	if !ok {
		return fmt.Errorf("no content for %s", uri)
	}

	h.setContent(uri, text)
	h.publish(ctx, uri, h.analyze(uri, text))
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *UmjunsikHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("closed %s", uri)

	h.mu.Lock()
	delete(h.content, uri)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *UmjunsikHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	uri := params.TextDocument.URI

	text, err := h.document(uri)
	if err != nil {
		return nil, err
	}
	a := h.analyze(uri, text)

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(a.result.Tokens)),
	}, nil
}

// TextDocumentFormatting replaces the whole document with its canonical
// layout. A document the formatter cannot parse yields no edits.
func (h *UmjunsikHandler) TextDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	uri := params.TextDocument.URI

	text, err := h.document(uri)
	if err != nil {
		return nil, err
	}

	formatted, err := grammar.Format(uri, text)
	if err != nil {
		log.Debugf("format %s: %s", uri, err)
		return nil, nil
	}
	if formatted == text {
		return []protocol.TextEdit{}, nil
	}

	return []protocol.TextEdit{{
		Range:   protocol.Range{Start: protocol.Position{}, End: endOf(text)},
		NewText: formatted,
	}}, nil
}

// TextDocumentHover describes the token under the cursor
func (h *UmjunsikHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := params.TextDocument.URI

	text, err := h.document(uri)
	if err != nil {
		return nil, err
	}
	a := h.analyze(uri, text)

	tok, ok := tokenAt(a.result.Tokens, params.Position)
	if !ok {
		return nil, nil
	}

	contents := describeToken(tok, a.result.Slots)
	if contents == "" {
		return nil, nil
	}
	rng := tokenRange(tok)

	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: contents},
		Range:    &rng,
	}, nil
}

// analyze compiles text, reusing the cached result for identical text
func (h *UmjunsikHandler) analyze(uri, text string) *analysis {
	if cached, ok := h.cache.Get(text); ok {
		return cached.(*analysis)
	}

	result, err := compiler.Compile(uri, text)
	a := &analysis{result: result}
	if cerr, ok := err.(*compiler.Error); ok {
		a.diagnostics = append(a.diagnostics, cerr.Diagnostics...)
	}
	a.diagnostics = append(a.diagnostics, result.Warnings...)

	h.cache.Add(text, a)
	return a
}

func (h *UmjunsikHandler) publish(ctx *glsp.Context, uri string, a *analysis) {
	sendDiagnosticNotification(ctx, uri, ConvertDiagnostics(a.diagnostics))
}

// document returns the open text for uri, falling back to the file on disk
func (h *UmjunsikHandler) document(uri string) (string, error) {
	if text, ok := h.getContent(uri); ok {
		return text, nil
	}

	path, err := uriToPath(uri)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

func (h *UmjunsikHandler) getContent(uri string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	text, ok := h.content[uri]
	return text, ok
}

func (h *UmjunsikHandler) setContent(uri, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.content[uri] = text
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	log.Debugf("sending %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
