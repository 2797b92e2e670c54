package lsp

import (
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"seedheader/internal/errors"
	"seedheader/internal/parser"
)

const diagnosticSource = "headerc"

// ConvertParseErrors transforms parse errors into LSP diagnostics. An empty
// range is widened to one character so editors still show a marker.
func ConvertParseErrors(index *parser.LineIndex, errs parser.ParseErrorCollection) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	for _, perr := range errs {
		start := toProtocolPosition(index, perr.Range.Start)
		end := toProtocolPosition(index, perr.Range.End)
		if perr.Range.Len() == 0 || end.Line != start.Line {
			end = protocol.Position{Line: start.Line, Character: start.Character + 1}
		}

		message := perr.Message
		if perr.Suggestion != parser.NoSuggestion {
			message += " (expected " + perr.Suggestion.String() + ")"
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    protocol.Range{Start: start, End: end},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Code:     &protocol.IntegerOrString{Value: errors.CodeFor(perr.Kind)},
			Source:   ptrString(diagnosticSource),
			Message:  message,
		})
	}

	return diagnostics
}

// toProtocolPosition converts a byte offset to a 0-based line and UTF-16
// character position.
func toProtocolPosition(index *parser.LineIndex, offset int) protocol.Position {
	pos := index.Position(offset)
	line := index.Line(pos.Line)
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: utf16Column(line, pos.Column-1),
	}
}

// utf16Column counts the UTF-16 code units in the first byteColumn bytes
// of line.
func utf16Column(line string, byteColumn int) uint32 {
	byteColumn = min(byteColumn, len(line))
	var units uint32
	for _, r := range line[:byteColumn] {
		units += uint32(utf16.RuneLen(r))
	}
	return units
}

// byteColumn is the inverse of utf16Column.
func byteColumn(line string, character uint32) int {
	var units uint32
	for i, r := range line {
		if units >= character {
			return i
		}
		units += uint32(utf16.RuneLen(r))
	}
	return len(line)
}
