package edit

// UTF16Selection reports the selection to the host text-input system in
// UTF-16 code units, with the direction flag it needs to place the caret.
type UTF16Selection struct {
	Range    Range
	Reversed bool
}

// InputHandler is the capability set a host platform's native text-input/
// IME system requires to drive a custom text field. All offsets and ranges
// cross this boundary in UTF-16 code units. *Editor implements it once;
// widgets that embed an Editor inherit the implementation instead of each
// carrying its own copy.
type InputHandler interface {
	TextForRange(r Range) (text string, actual Range)
	SelectedTextRange() UTF16Selection
	MarkedTextRange() (Range, bool)
	UnmarkText()
	ReplaceTextInRange(r *Range, text string)
	ReplaceAndMarkTextInRange(r *Range, text string, selection *Range)
	BoundsForRange(r Range) (Bounds, bool)
	CharacterIndexForPoint(p Point) int
}

var _ InputHandler = (*Editor)(nil)

// TextForRange returns the text covered by a UTF-16 range, along with the
// UTF-16 range actually resolved after clamping.
func (e *Editor) TextForRange(r Range) (string, Range) {
	byteRange := RangeFromUTF16(e.content, r).clamp(len(e.content))
	return e.content[byteRange.Start:byteRange.End], RangeToUTF16(e.content, byteRange)
}

// SelectedTextRange reports the selection in UTF-16 code units.
func (e *Editor) SelectedTextRange() UTF16Selection {
	return UTF16Selection{
		Range:    RangeToUTF16(e.content, e.selected),
		Reversed: e.reversed,
	}
}

// MarkedTextRange reports the composition span in UTF-16 code units.
func (e *Editor) MarkedTextRange() (Range, bool) {
	if !e.hasMarked {
		return Range{}, false
	}
	return RangeToUTF16(e.content, e.marked), true
}

// UnmarkText commits the composition span as ordinary text.
func (e *Editor) UnmarkText() { e.Unmark() }

// ReplaceTextInRange is ReplaceRange with the range in UTF-16 code units.
func (e *Editor) ReplaceTextInRange(r *Range, text string) {
	e.ReplaceRange(e.rangeArgFromUTF16(r), text)
}

// ReplaceAndMarkTextInRange is ReplaceAndMark with the outer range in
// UTF-16 code units and the inner selection in UTF-16 units relative to the
// inserted text.
func (e *Editor) ReplaceAndMarkTextInRange(r *Range, text string, selection *Range) {
	var inner *Range
	if selection != nil {
		converted := RangeFromUTF16(text, *selection)
		inner = &converted
	}
	e.ReplaceAndMark(e.rangeArgFromUTF16(r), text, inner)
}

// BoundsForRange returns the pixel bounds of a UTF-16 range for IME
// candidate-window placement. It needs current shaped geometry; without a
// layout source it reports no bounds.
func (e *Editor) BoundsForRange(r Range) (Bounds, bool) {
	if e.layout == nil {
		return Bounds{}, false
	}
	layout, ok := e.layout()
	if !ok || len(layout.Lines) == 0 {
		return Bounds{}, false
	}
	byteRange := RangeFromUTF16(e.content, r).clamp(len(e.content))
	startLine, startCol := layout.lineForOffset(byteRange.Start)
	endLine, endCol := layout.lineForOffset(byteRange.End)

	height := layout.lineHeight()
	left := layout.Bounds.Left() + layout.Lines[startLine].XForIndex(startCol)
	top := layout.Bounds.Top() + height*float32(startLine)
	right := layout.Bounds.Left() + layout.Lines[endLine].XForIndex(endCol)
	if endLine != startLine {
		// Multi-line range: report the first line's remainder.
		right = layout.Bounds.Left() + layout.Lines[startLine].XForIndex(layout.Lines[startLine].Length())
	}
	return Bounds{
		Origin: Point{X: left, Y: top},
		Size:   Size{Width: right - left, Height: height},
	}, true
}

// CharacterIndexForPoint hit-tests a pixel position and reports the result
// in UTF-16 code units. Without geometry, or for an empty buffer, it
// reports 0.
func (e *Editor) CharacterIndexForPoint(p Point) int {
	if e.content == "" || e.layout == nil {
		return 0
	}
	layout, ok := e.layout()
	if !ok {
		return 0
	}
	return OffsetToUTF16(e.content, layout.OffsetForPoint(p))
}

// OffsetForPoint hit-tests a pixel position against current geometry and
// returns a byte offset, for mouse selection inside the widget. Without a
// layout source it returns 0.
func (e *Editor) OffsetForPoint(p Point) int {
	if e.layout == nil {
		return 0
	}
	layout, ok := e.layout()
	if !ok {
		return 0
	}
	return layout.OffsetForPoint(p)
}

func (e *Editor) rangeArgFromUTF16(r *Range) *Range {
	if r == nil {
		return nil
	}
	converted := RangeFromUTF16(e.content, *r)
	return &converted
}
