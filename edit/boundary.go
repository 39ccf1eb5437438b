package edit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Boundary navigation: pure queries over a string. Offsets are byte offsets
// and are clamped into [0, len(s)] before use; no function here panics.

func clampOffset(s string, offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(s) {
		return len(s)
	}
	return offset
}

// PreviousBoundary returns the nearest grapheme-cluster start strictly
// before offset, or 0 if there is none.
func PreviousBoundary(s string, offset int) int {
	offset = clampOffset(s, offset)
	prev, pos := 0, 0
	state := -1
	rest := s
	for len(rest) > 0 && pos < offset {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		prev = pos
		pos += len(cluster)
	}
	return prev
}

// NextBoundary returns the nearest grapheme-cluster start strictly after
// offset, or len(s) if there is none.
func NextBoundary(s string, offset int) int {
	offset = clampOffset(s, offset)
	pos := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		pos += len(cluster)
		if pos > offset {
			return pos
		}
	}
	return len(s)
}

// LineStart returns the offset just after the nearest '\n' before offset,
// or 0 on the first line.
func LineStart(s string, offset int) int {
	offset = clampOffset(s, offset)
	if i := strings.LastIndexByte(s[:offset], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// LineEnd returns the offset of the nearest '\n' at or after offset, or
// len(s) on the last line.
func LineEnd(s string, offset int) int {
	offset = clampOffset(s, offset)
	if i := strings.IndexByte(s[offset:], '\n'); i >= 0 {
		return offset + i
	}
	return len(s)
}

// LineUp returns the offset at the same column on the previous line,
// clamping the column to the previous line's length. On the first line the
// caret moves to offset 0.
func LineUp(s string, offset int) int {
	offset = clampOffset(s, offset)
	lineStart := LineStart(s, offset)
	if lineStart == 0 {
		return 0
	}
	prevEnd := lineStart - 1
	prevStart := LineStart(s, prevEnd)
	column := offset - lineStart
	if prevLen := prevEnd - prevStart; column > prevLen {
		column = prevLen
	}
	return prevStart + column
}

// LineDown returns the offset at the same column on the next line, clamping
// the column to the next line's length. On the last line the caret moves to
// len(s).
func LineDown(s string, offset int) int {
	offset = clampOffset(s, offset)
	lineStart := LineStart(s, offset)
	lineEnd := LineEnd(s, offset)
	if lineEnd >= len(s) {
		return len(s)
	}
	nextStart := lineEnd + 1
	nextEnd := LineEnd(s, nextStart)
	column := offset - lineStart
	if nextLen := nextEnd - nextStart; column > nextLen {
		column = nextLen
	}
	return nextStart + column
}

// PreviousWordBoundary returns the start of the word before offset,
// skipping any whitespace in between.
func PreviousWordBoundary(s string, offset int) int {
	offset = clampOffset(s, offset)
	for offset > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:offset])
		if !unicode.IsSpace(r) {
			break
		}
		offset -= size
	}
	for offset > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:offset])
		if unicode.IsSpace(r) {
			break
		}
		offset -= size
	}
	return offset
}

// NextWordBoundary returns the end of the word after offset, skipping any
// whitespace in between.
func NextWordBoundary(s string, offset int) int {
	offset = clampOffset(s, offset)
	for offset < len(s) {
		r, size := utf8.DecodeRuneInString(s[offset:])
		if !unicode.IsSpace(r) {
			break
		}
		offset += size
	}
	for offset < len(s) {
		r, size := utf8.DecodeRuneInString(s[offset:])
		if unicode.IsSpace(r) {
			break
		}
		offset += size
	}
	return offset
}

// Editor conveniences over the package-level queries.

// PreviousBoundary returns the grapheme boundary before offset in the buffer.
func (e *Editor) PreviousBoundary(offset int) int { return PreviousBoundary(e.content, offset) }

// NextBoundary returns the grapheme boundary after offset in the buffer.
func (e *Editor) NextBoundary(offset int) int { return NextBoundary(e.content, offset) }

// LineStart returns the start of the line containing offset.
func (e *Editor) LineStart(offset int) int { return LineStart(e.content, offset) }

// LineEnd returns the end of the line containing offset.
func (e *Editor) LineEnd(offset int) int { return LineEnd(e.content, offset) }

// LineUp returns the column-preserving offset one line up.
func (e *Editor) LineUp(offset int) int { return LineUp(e.content, offset) }

// LineDown returns the column-preserving offset one line down.
func (e *Editor) LineDown(offset int) int { return LineDown(e.content, offset) }
