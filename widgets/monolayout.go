package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/agiangrant/relay/edit"
)

// Approximate metrics for a 12px monospace font, used by the response
// viewer when no shaped geometry is available from the host.
const (
	approxCharWidth  = 7.2
	approxLineHeight = 16.0
)

// monoLine approximates a shaped line for monospace content: every
// terminal-style cell is charWidth pixels wide, with CJK and emoji counting
// as two cells via go-runewidth.
type monoLine struct {
	text      string
	charWidth float32
}

var _ edit.ShapedLine = monoLine{}

func (l monoLine) Length() int { return len(l.text) }

func (l monoLine) XForIndex(index int) float32 {
	if index < 0 {
		index = 0
	}
	if index > len(l.text) {
		index = len(l.text)
	}
	return float32(runewidth.StringWidth(l.text[:index])) * l.charWidth
}

func (l monoLine) IndexForX(x float32) int {
	if x <= 0 {
		return 0
	}
	pos := 0
	state := -1
	rest := l.text
	var left float32
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		width := float32(runewidth.StringWidth(cluster)) * l.charWidth
		if x < left+width/2 {
			return pos
		}
		pos += len(cluster)
		left += width
	}
	return len(l.text)
}

// MonoLayout builds an approximate TextLayout for monospace content drawn
// at bounds: one line per '\n', uniform line height. Zero metrics fall back
// to the 12px approximations the viewer renders with.
func MonoLayout(content string, bounds edit.Bounds, charWidth, lineHeight float32) edit.TextLayout {
	if charWidth <= 0 {
		charWidth = approxCharWidth
	}
	if lineHeight <= 0 {
		lineHeight = approxLineHeight
	}
	raw := strings.Split(content, "\n")
	lines := make([]edit.ShapedLine, len(raw))
	for i, text := range raw {
		lines[i] = monoLine{text: text, charWidth: charWidth}
	}
	return edit.TextLayout{Lines: lines, Bounds: bounds, LineHeight: lineHeight}
}
