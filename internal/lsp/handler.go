package lsp

import (
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"seedheader/internal/header"
	"seedheader/internal/parser"
)

var log = commonlog.GetLogger("headerc.lsp")

// document is the server's view of one open editor buffer.
type document struct {
	text     string
	index    *parser.LineIndex
	contents []header.HeaderContent
	errs     parser.ParseErrorCollection
}

// HeaderHandler implements the LSP server handlers for header files
type HeaderHandler struct {
	mu        sync.RWMutex
	documents map[protocol.DocumentUri]*document
}

// NewHeaderHandler creates and returns a new HeaderHandler instance
func NewHeaderHandler() *HeaderHandler {
	return &HeaderHandler{
		documents: make(map[protocol.DocumentUri]*document),
	}
}

// Initialize advertises the server's capabilities
func (h *HeaderHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider:   ptrBool(false),
				TriggerCharacters: []string{"|", "!", ":", "="},
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *HeaderHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *HeaderHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

func (h *HeaderHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen parses the opened buffer and publishes its diagnostics
func (h *HeaderHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened %s", params.TextDocument.URI)
	doc := h.update(params.TextDocument.URI, params.TextDocument.Text)
	publishDiagnostics(ctx, params.TextDocument.URI, doc)
	return nil
}

// TextDocumentDidChange reparses the buffer. Only full-text changes are
// advertised, so the last whole-document event wins.
func (h *HeaderHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed %s", params.TextDocument.URI)

	text, ok := "", false
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		}
	}
	if !ok {
		log.Warningf("ignoring incremental change to %s", params.TextDocument.URI)
		return nil
	}

	doc := h.update(params.TextDocument.URI, text)
	publishDiagnostics(ctx, params.TextDocument.URI, doc)
	return nil
}

// TextDocumentDidClose forgets the buffer and clears its diagnostics
func (h *HeaderHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debugf("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.documents, params.TextDocument.URI)
	h.mu.Unlock()

	publishDiagnostics(ctx, params.TextDocument.URI, nil)
	return nil
}

// TextDocumentCompletion offers the candidates of the error under the
// cursor. A clean line has nothing to complete.
func (h *HeaderHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	list := &protocol.CompletionList{Items: []protocol.CompletionItem{}}

	doc := h.get(params.TextDocument.URI)
	if doc == nil {
		return list, nil
	}

	offset := doc.index.Offset(int(params.Position.Line), byteColumn(doc.index.Line(int(params.Position.Line)+1), params.Position.Character))
	perr := errorAt(doc, offset)
	if perr == nil {
		return list, nil
	}

	for _, completion := range header.Completions(perr.Suggestion) {
		item := protocol.CompletionItem{Label: completion.Label}
		if completion.Detail != "" {
			item.Detail = ptrString(completion.Detail)
			item.Kind = ptrCompletionKind(protocol.CompletionItemKindEnumMember)
		} else {
			item.Kind = ptrCompletionKind(protocol.CompletionItemKindKeyword)
		}
		list.Items = append(list.Items, item)
	}
	return list, nil
}

// TextDocumentSemanticTokensFull classifies every token of the buffer
func (h *HeaderHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := h.get(params.TextDocument.URI)
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}

	tokens := collectSemanticTokens(doc.text, doc.index)

	data := []uint32{}
	var prevLine, prevStart uint32

	// Delta-line, delta-start encoding
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{Data: data}, nil
}

func (h *HeaderHandler) update(uri protocol.DocumentUri, text string) *document {
	doc := &document{text: text, index: parser.NewLineIndex(text)}
	contents, err := header.Parse(text)
	if errs, ok := err.(parser.ParseErrorCollection); ok {
		doc.errs = errs
	} else if err != nil {
		log.Errorf("parsing %s: %s", uri, err)
	}
	doc.contents = contents

	h.mu.Lock()
	h.documents[uri] = doc
	h.mu.Unlock()

	log.Debugf("parsed %s: %d statements, %d errors", uri, len(doc.contents), len(doc.errs))
	return doc
}

func (h *HeaderHandler) get(uri protocol.DocumentUri) *document {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.documents[uri]
}

// errorAt picks the last error that starts on the cursor's line at or
// before the cursor.
func errorAt(doc *document, offset int) *parser.ParseError {
	line := doc.index.Position(offset).Line
	var found *parser.ParseError
	for _, perr := range doc.errs {
		if perr.Range.Start > offset || doc.index.Position(perr.Range.Start).Line != line {
			continue
		}
		found = perr
	}
	return found
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, doc *document) {
	diagnostics := []protocol.Diagnostic{}
	if doc != nil {
		diagnostics = ConvertParseErrors(doc.index, doc.errs)
	}

	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrString(s string) *string {
	return &s
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrCompletionKind(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}
