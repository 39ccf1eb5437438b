package edit

// Point is a position in the widget's pixel coordinate space.
type Point struct {
	X float32
	Y float32
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float32
	Height float32
}

// Bounds is an axis-aligned pixel rectangle.
type Bounds struct {
	Origin Point
	Size   Size
}

func (b Bounds) Left() float32   { return b.Origin.X }
func (b Bounds) Top() float32    { return b.Origin.Y }
func (b Bounds) Right() float32  { return b.Origin.X + b.Size.Width }
func (b Bounds) Bottom() float32 { return b.Origin.Y + b.Size.Height }

// ShapedLine is one laid-out content line as produced by the rendering
// collaborator's text shaper. The engine only queries it; shaping itself
// happens outside.
type ShapedLine interface {
	// Length is the byte length of the line's text, excluding the newline.
	Length() int
	// XForIndex returns the x pixel offset of the given byte index.
	XForIndex(index int) float32
	// IndexForX returns the closest byte index for the given x pixel offset.
	IndexForX(x float32) int
}

// TextLayout is the shaped geometry for the current buffer content: one
// ShapedLine per '\n'-delimited content line, drawn at Bounds with a uniform
// per-line height. The owning widget rebuilds it after every change event.
type TextLayout struct {
	Lines      []ShapedLine
	Bounds     Bounds
	LineHeight float32
}

// contentLength is the byte length of the content the layout was shaped
// from: the line lengths plus one newline between adjacent lines.
func (l TextLayout) contentLength() int {
	total := 0
	for i, line := range l.Lines {
		if i > 0 {
			total++
		}
		total += line.Length()
	}
	return total
}

// lineHeight falls back to dividing the bounds evenly when no explicit
// height was supplied.
func (l TextLayout) lineHeight() float32 {
	if l.LineHeight > 0 {
		return l.LineHeight
	}
	if len(l.Lines) == 0 {
		return 0
	}
	return l.Bounds.Size.Height / float32(len(l.Lines))
}

// OffsetForPoint maps a pixel position to a byte offset. Points above the
// first line map to 0, points below the last line map to the content
// length; otherwise the point's line is found by uniform line height and the
// line's shaped geometry answers the horizontal query.
func (l TextLayout) OffsetForPoint(p Point) int {
	if len(l.Lines) == 0 {
		return 0
	}
	if p.Y < l.Bounds.Top() {
		return 0
	}
	if p.Y > l.Bounds.Bottom() {
		return l.contentLength()
	}
	lineIndex := 0
	if h := l.lineHeight(); h > 0 {
		lineIndex = int((p.Y - l.Bounds.Top()) / h)
	}
	if lineIndex < 0 {
		lineIndex = 0
	}
	if lineIndex >= len(l.Lines) {
		lineIndex = len(l.Lines) - 1
	}
	offset := 0
	for i := 0; i < lineIndex; i++ {
		offset += l.Lines[i].Length() + 1
	}
	return offset + l.Lines[lineIndex].IndexForX(p.X-l.Bounds.Left())
}

// lineForOffset returns the line index holding offset and the offset's
// position within that line.
func (l TextLayout) lineForOffset(offset int) (line, column int) {
	pos := 0
	for i, shaped := range l.Lines {
		lineLen := shaped.Length()
		if offset <= pos+lineLen {
			return i, offset - pos
		}
		pos += lineLen + 1
	}
	if len(l.Lines) == 0 {
		return 0, 0
	}
	last := len(l.Lines) - 1
	return last, l.Lines[last].Length()
}
