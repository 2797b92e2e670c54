package parser

import "sort"

// LineIndex maps byte offsets to line/column positions.
type LineIndex struct {
	source     string
	lineStarts []int
}

func NewLineIndex(source string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{source: source, lineStarts: starts}
}

// Position converts an offset. Columns count bytes, starting at 1.
func (li *LineIndex) Position(offset int) Position {
	offset = max(0, min(offset, len(li.source)))
	line := sort.Search(len(li.lineStarts), func(i int) bool { return li.lineStarts[i] > offset }) - 1
	return Position{
		Line:   line + 1,
		Column: offset - li.lineStarts[line] + 1,
		Offset: offset,
	}
}

// Offset is the inverse of Position for 0-based line and column values, as
// editors send them. Out-of-range values are clamped.
func (li *LineIndex) Offset(line, column int) int {
	if line < 0 {
		return 0
	}
	if line >= len(li.lineStarts) {
		return len(li.source)
	}
	end := len(li.source)
	if line+1 < len(li.lineStarts) {
		end = li.lineStarts[line+1] - 1
	}
	return min(li.lineStarts[line]+max(0, column), end)
}

// Line returns the text of a 1-based line without its terminator.
func (li *LineIndex) Line(line int) string {
	if line < 1 || line > len(li.lineStarts) {
		return ""
	}
	start := li.lineStarts[line-1]
	end := len(li.source)
	if line < len(li.lineStarts) {
		end = li.lineStarts[line] - 1
	}
	return li.source[start:end]
}

func (li *LineIndex) LineCount() int {
	return len(li.lineStarts)
}
