package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agiangrant/relay/edit"
)

func TestMonoLineXForIndex(t *testing.T) {
	l := monoLine{text: "ab世c", charWidth: 10}

	assert.Equal(t, float32(0), l.XForIndex(0))
	assert.Equal(t, float32(20), l.XForIndex(2))
	// The CJK character is two cells wide.
	assert.Equal(t, float32(40), l.XForIndex(5))
	assert.Equal(t, float32(50), l.XForIndex(6))
	// Out-of-range indexes clamp.
	assert.Equal(t, float32(0), l.XForIndex(-3))
	assert.Equal(t, float32(50), l.XForIndex(99))
}

func TestMonoLineIndexForX(t *testing.T) {
	l := monoLine{text: "ab世c", charWidth: 10}

	tests := []struct {
		name string
		x    float32
		want int
	}{
		{"left edge", -5, 0},
		{"first cell", 3, 0},
		{"past midpoint of first cell", 7, 1},
		{"second cell", 14, 1},
		{"wide cell keeps whole cluster", 25, 2},
		{"past midpoint of wide cell", 35, 5},
		{"beyond line end", 500, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.IndexForX(tt.x))
		})
	}
}

func TestMonoLayoutDefaults(t *testing.T) {
	bounds := edit.Bounds{Size: edit.Size{Width: 400, Height: 300}}
	layout := MonoLayout("line one\nline two", bounds, 0, 0)

	assert.Len(t, layout.Lines, 2)
	assert.Equal(t, float32(approxLineHeight), layout.LineHeight)
	assert.Equal(t, float32(approxCharWidth), layout.Lines[0].XForIndex(1))
}

func TestMonoLayoutRoundTrip(t *testing.T) {
	bounds := edit.Bounds{Size: edit.Size{Width: 400, Height: 100}}
	layout := MonoLayout("GET /users\n200 OK", bounds, 8, 20)

	for _, offset := range []int{0, 4, 10, 11, 15} {
		line, col := 0, offset
		if offset > 10 {
			line, col = 1, offset-11
		}
		x := layout.Lines[line].XForIndex(col)
		y := float32(line)*20 + 10
		assert.Equal(t, offset, layout.OffsetForPoint(edit.Point{X: x, Y: y}), "offset %d", offset)
	}
}
