package edit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeLine is an ASCII line shaped at a fixed 10px per byte.
type fakeLine struct {
	text string
}

func (f fakeLine) Length() int { return len(f.text) }

func (f fakeLine) XForIndex(index int) float32 { return float32(index) * 10 }

func (f fakeLine) IndexForX(x float32) int {
	index := int((x + 5) / 10)
	if index < 0 {
		return 0
	}
	if index > len(f.text) {
		return len(f.text)
	}
	return index
}

func fakeLayout(content string, bounds Bounds, lineHeight float32) TextLayout {
	var lines []ShapedLine
	for _, line := range strings.Split(content, "\n") {
		lines = append(lines, fakeLine{text: line})
	}
	return TextLayout{Lines: lines, Bounds: bounds, LineHeight: lineHeight}
}

func TestOffsetForPoint(t *testing.T) {
	const content = "Line 1\nLine 2\nLine 3"
	bounds := Bounds{Origin: Point{X: 100, Y: 50}, Size: Size{Width: 200, Height: 48}}
	layout := fakeLayout(content, bounds, 16)

	tests := []struct {
		name string
		p    Point
		want int
	}{
		{"above maps to start", Point{X: 150, Y: 10}, 0},
		{"below maps to end", Point{X: 150, Y: 200}, len(content)},
		{"first line start", Point{X: 100, Y: 55}, 0},
		{"first line third column", Point{X: 130, Y: 55}, 3},
		{"second line start", Point{X: 100, Y: 70}, 7},
		{"second line third column", Point{X: 130, Y: 70}, 10},
		{"third line end of text", Point{X: 160, Y: 95}, 20},
		{"left of line clamps to column 0", Point{X: 0, Y: 70}, 7},
		{"right of line clamps to line end", Point{X: 500, Y: 70}, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.OffsetForPoint(tt.p))
		})
	}
}

func TestOffsetForPointEmptyLayout(t *testing.T) {
	assert.Equal(t, 0, TextLayout{}.OffsetForPoint(Point{X: 10, Y: 10}))
}

func TestOffsetForPointFallbackLineHeight(t *testing.T) {
	bounds := Bounds{Origin: Point{}, Size: Size{Width: 100, Height: 30}}
	layout := fakeLayout("ab\ncd\nef", bounds, 0)

	// 3 lines over 30px: 10px each.
	assert.Equal(t, 0, layout.OffsetForPoint(Point{X: 0, Y: 5}))
	assert.Equal(t, 3, layout.OffsetForPoint(Point{X: 0, Y: 15}))
	assert.Equal(t, 6, layout.OffsetForPoint(Point{X: 0, Y: 25}))
}

func TestLineForOffset(t *testing.T) {
	layout := fakeLayout("ab\ncde\nf", Bounds{}, 16)

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{6, 1, 3},
		{7, 2, 0},
		{8, 2, 1},
		{100, 2, 1},
	}
	for _, tt := range tests {
		line, col := layout.lineForOffset(tt.offset)
		assert.Equal(t, tt.wantLine, line, "offset %d", tt.offset)
		assert.Equal(t, tt.wantCol, col, "offset %d", tt.offset)
	}
}

func TestContentLength(t *testing.T) {
	assert.Equal(t, 20, fakeLayout("Line 1\nLine 2\nLine 3", Bounds{}, 16).contentLength())
	assert.Equal(t, 0, fakeLayout("", Bounds{}, 16).contentLength())
}
