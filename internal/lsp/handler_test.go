package lsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"seedheader/internal/errors"
	"seedheader/internal/lsp"
)

const testURI = "file:///headers/speedrun.wotwrh"

const validHeader = `/// Speed run header
!!include base // shared
Setup.Timer|1|2|3|4
#hide
5|9=$Param(count)|2|-5
3|7|6|"héllo"
`

type notification struct {
	method string
	params any
}

func newContext(sent *[]notification) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			*sent = append(*sent, notification{method: method, params: params})
		},
	}
}

func openDocument(t *testing.T, handler *lsp.HeaderHandler, ctx *glsp.Context, text string) {
	t.Helper()
	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: testURI, LanguageID: "wotwrh", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func lastDiagnostics(t *testing.T, sent []notification) []protocol.Diagnostic {
	t.Helper()
	require.NotEmpty(t, sent)
	last := sent[len(sent)-1]
	require.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, last.method)
	params, ok := last.params.(*protocol.PublishDiagnosticsParams)
	require.True(t, ok)
	assert.Equal(t, protocol.DocumentUri(testURI), params.URI)
	return params.Diagnostics
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	var sent []notification
	ctx := newContext(&sent)
	handler := lsp.NewHeaderHandler()

	openDocument(t, handler, ctx, validHeader)
	assert.Empty(t, lastDiagnostics(t, sent))

	openDocument(t, handler, ctx, "#hide\n0|1|1|9\n#\n")
	diagnostics := lastDiagnostics(t, sent)
	require.Len(t, diagnostics, 2)

	first := diagnostics[0]
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 6},
		End:   protocol.Position{Line: 1, Character: 7},
	}, first.Range)
	require.NotNil(t, first.Source)
	assert.Equal(t, "headerc", *first.Source)
	require.NotNil(t, first.Code)
	assert.Equal(t, errors.ErrorInvalidValue, first.Code.Value)
	assert.Contains(t, first.Message, "(expected resource)")

	assert.Equal(t, uint32(2), diagnostics[1].Range.Start.Line)
}

func TestDidChangeReplacesText(t *testing.T) {
	var sent []notification
	ctx := newContext(&sent)
	handler := lsp.NewHeaderHandler()

	openDocument(t, handler, ctx, "0|1|1|9\n")
	require.Len(t, lastDiagnostics(t, sent), 1)

	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "0|1|1|3\n"}},
	})
	require.NoError(t, err)
	assert.Empty(t, lastDiagnostics(t, sent))
}

func TestDidCloseClearsDiagnostics(t *testing.T) {
	var sent []notification
	ctx := newContext(&sent)
	handler := lsp.NewHeaderHandler()

	openDocument(t, handler, ctx, "0|1|1|9\n")
	require.NoError(t, handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	}))
	assert.Empty(t, lastDiagnostics(t, sent))

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)
	assert.Empty(t, tokens.Data)
}

func completionLabels(t *testing.T, handler *lsp.HeaderHandler, line, character uint32) []protocol.CompletionItem {
	t.Helper()
	result, err := handler.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: line, Character: character},
		},
	})
	require.NoError(t, err)
	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)
	return list.Items
}

func TestCompletionFollowsErrorSuggestion(t *testing.T) {
	var sent []notification
	handler := lsp.NewHeaderHandler()
	openDocument(t, handler, newContext(&sent), "#hide\n0|1|1|9\n!!bogus\n")

	items := completionLabels(t, handler, 1, 7)
	require.Len(t, items, 5)
	assert.Equal(t, "0", items[0].Label)
	require.NotNil(t, items[0].Detail)
	assert.Equal(t, "HealthFragment", *items[0].Detail)
	require.NotNil(t, items[0].Kind)
	assert.Equal(t, protocol.CompletionItemKindEnumMember, *items[0].Kind)

	items = completionLabels(t, handler, 2, 7)
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	assert.Equal(t, []string{"include", "exclude", "add", "remove", "set", "parameter"}, labels)
	assert.Equal(t, protocol.CompletionItemKindKeyword, *items[0].Kind)

	// Before the error on its line, and on clean lines, nothing is offered.
	assert.Empty(t, completionLabels(t, handler, 1, 2))
	assert.Empty(t, completionLabels(t, handler, 0, 3))
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	var sent []notification
	handler := lsp.NewHeaderHandler()
	openDocument(t, handler, newContext(&sent), validHeader)

	tokens, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 39)

	at := func(line, char uint32) *DecodedToken {
		for i := range decoded {
			if decoded[i].Line == line && decoded[i].Char == char {
				return &decoded[i]
			}
		}
		t.Fatalf("no token at %d:%d", line, char)
		return nil
	}

	assertToken(t, at(1, 1), 1, 1, 20, "comment", []string{"documentation"})
	assertToken(t, at(2, 1), 2, 1, 1, "operator", nil)
	assertToken(t, at(2, 3), 2, 3, 7, "keyword", nil)
	assertToken(t, at(2, 11), 2, 11, 4, "enumMember", nil)
	assertToken(t, at(2, 16), 2, 16, 9, "comment", nil)
	assertToken(t, at(3, 1), 3, 1, 5, "keyword", nil)
	assertToken(t, at(3, 6), 3, 6, 1, "operator", nil)
	assertToken(t, at(3, 7), 3, 7, 5, "keyword", nil)
	assertToken(t, at(3, 13), 3, 13, 1, "number", nil)
	assertToken(t, at(4, 2), 4, 2, 4, "modifier", nil)
	assertToken(t, at(5, 6), 5, 6, 5, "function", nil)
	assertToken(t, at(5, 12), 5, 12, 5, "parameter", nil)
	assertToken(t, at(5, 21), 5, 21, 2, "number", nil)
	// Lengths and columns count UTF-16 code units, not bytes.
	assertToken(t, at(6, 7), 6, 7, 7, "string", nil)
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

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if raw[i+4]&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1,
			Char:      char + 1,
			Length:    raw[i+2],
			Type:      lsp.SemanticTokenTypes[raw[i+3]],
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
