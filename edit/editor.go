package edit

import "strings"

// Range is a half-open byte-offset interval [Start, End) into an Editor's
// content. A collapsed range (Start == End) is a caret.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// IsEmpty reports whether the range is collapsed.
func (r Range) IsEmpty() bool { return r.Start == r.End }

// clamp orders the range's ends and limits them to [0, max].
func (r Range) clamp(max int) Range {
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End > max {
		r.End = max
	}
	if r.Start > max {
		r.Start = max
	}
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}

// Clipboard is the system clipboard at the boundary the engine needs.
// Read failures surface as an empty string; writes are fire-and-forget.
type Clipboard interface {
	ReadText() string
	WriteText(text string)
}

// Editor is the text-editing engine. It owns the buffer and the
// selection/marked state; the widget that embeds it owns the Editor.
type Editor struct {
	content  string
	selected Range
	reversed bool

	// IME composition span. Cleared by any non-composition edit.
	marked    Range
	hasMarked bool

	multiline bool
	readOnly  bool

	clip   Clipboard
	layout func() (TextLayout, bool)

	onChange func(content string)
}

// NewEditor returns an empty single-line editor with the caret at offset 0.
func NewEditor() *Editor {
	return &Editor{}
}

// SetMultiline enables or disables newline input. Single-line editors strip
// newlines from inserted text and ignore the Newline command.
func (e *Editor) SetMultiline(multiline bool) { e.multiline = multiline }

// Multiline reports whether newline input is enabled.
func (e *Editor) Multiline() bool { return e.multiline }

// SetReadOnly enables or disables read-only mode. Read-only editors still
// support cursor motion, selection, and copy; edits are silent no-ops.
// Programmatic SetText and Clear are unaffected.
func (e *Editor) SetReadOnly(readOnly bool) { e.readOnly = readOnly }

// ReadOnly reports whether read-only mode is enabled.
func (e *Editor) ReadOnly() bool { return e.readOnly }

// SetClipboard sets the clipboard service used by the Copy, Cut, and Paste
// commands. A nil clipboard makes those commands no-ops.
func (e *Editor) SetClipboard(clip Clipboard) { e.clip = clip }

// SetLayoutSource registers the callback used to fetch the current shaped
// geometry. The engine holds no layout itself; the owning widget re-shapes
// after every change event and answers this query with current geometry.
func (e *Editor) SetLayoutSource(fn func() (TextLayout, bool)) { e.layout = fn }

// OnChange registers the change callback. It receives the buffer content
// after every mutation.
func (e *Editor) OnChange(fn func(content string)) { e.onChange = fn }

// Text returns the buffer content.
func (e *Editor) Text() string { return e.content }

// Len returns the buffer length in bytes.
func (e *Editor) Len() int { return len(e.content) }

// SetText replaces the buffer content, clamping the selection and dropping
// any composition state. The change callback fires only if the content
// actually changed.
func (e *Editor) SetText(text string) {
	if e.content == text {
		return
	}
	e.content = text
	e.selected = e.selected.clamp(len(text))
	e.hasMarked = false
	e.notify()
}

// Clear empties the buffer.
func (e *Editor) Clear() { e.SetText("") }

// Selection returns the current selection range. Invariant:
// 0 <= Start <= End <= Len().
func (e *Editor) Selection() Range { return e.selected }

// SelectionReversed reports which end of the selection is the moving end:
// when true the anchor is End and the cursor is Start.
func (e *Editor) SelectionReversed() bool { return e.reversed }

// CursorOffset returns the selection end the user is actively moving.
func (e *Editor) CursorOffset() int {
	if e.reversed {
		return e.selected.Start
	}
	return e.selected.End
}

// SelectedText returns the substring covered by the selection.
func (e *Editor) SelectedText() string {
	return e.content[e.selected.Start:e.selected.End]
}

// MoveTo collapses the selection to a caret at offset.
func (e *Editor) MoveTo(offset int) {
	offset = clampOffset(e.content, offset)
	e.selected = Range{Start: offset, End: offset}
	e.reversed = false
}

// SelectTo extends the moving end of the selection to offset. Dragging past
// the anchor swaps the ends and flips the reversed flag, so the anchor stays
// fixed while the cursor crosses it.
func (e *Editor) SelectTo(offset int) {
	offset = clampOffset(e.content, offset)
	if e.reversed {
		e.selected.Start = offset
	} else {
		e.selected.End = offset
	}
	if e.selected.End < e.selected.Start {
		e.reversed = !e.reversed
		e.selected.Start, e.selected.End = e.selected.End, e.selected.Start
	}
}

// SelectAll selects the whole buffer.
func (e *Editor) SelectAll() {
	e.MoveTo(0)
	e.SelectTo(len(e.content))
}

// MarkedRange returns the IME composition span, if any.
func (e *Editor) MarkedRange() (Range, bool) {
	return e.marked, e.hasMarked
}

// Unmark drops the composition span without touching its text.
func (e *Editor) Unmark() { e.hasMarked = false }

// targetRange resolves the range an edit applies to, in priority order:
// explicit argument, then active marked range, then the selection.
func (e *Editor) targetRange(r *Range) Range {
	switch {
	case r != nil:
		return r.clamp(len(e.content))
	case e.hasMarked:
		return e.marked.clamp(len(e.content))
	default:
		return e.selected
	}
}

// ReplaceRange splices text over the resolved target range, collapses the
// selection after the inserted text, and clears any composition state.
// Replacing an empty range with empty text is a no-op and fires no event.
func (e *Editor) ReplaceRange(r *Range, text string) {
	if e.readOnly {
		return
	}
	if !e.multiline {
		text = stripNewlines(text)
	}
	target := e.targetRange(r)
	if target.IsEmpty() && text == "" {
		return
	}
	e.content = e.content[:target.Start] + text + e.content[target.End:]
	caret := target.Start + len(text)
	e.selected = Range{Start: caret, End: caret}
	e.reversed = false
	e.hasMarked = false
	e.notify()
}

// ReplaceAndMark is the IME composition variant of ReplaceRange: the same
// splice, but the inserted span becomes the marked range and the new
// selection is placed at inner's offsets relative to the inserted text.
// A nil inner collapses the selection after the insertion.
func (e *Editor) ReplaceAndMark(r *Range, text string, inner *Range) {
	if e.readOnly {
		return
	}
	if !e.multiline {
		text = stripNewlines(text)
	}
	target := e.targetRange(r)
	e.content = e.content[:target.Start] + text + e.content[target.End:]
	e.marked = Range{Start: target.Start, End: target.Start + len(text)}
	e.hasMarked = true
	if inner != nil {
		sel := inner.clamp(len(text))
		e.selected = Range{Start: e.marked.Start + sel.Start, End: e.marked.Start + sel.End}
	} else {
		e.selected = Range{Start: e.marked.End, End: e.marked.End}
	}
	e.selected = e.selected.clamp(len(e.content))
	e.reversed = false
	e.notify()
}

func (e *Editor) notify() {
	if e.onChange != nil {
		e.onChange(e.content)
	}
}

func stripNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", "")
}
