// Package clipboard provides the system clipboard behind the small
// read/write contract the edit engine consumes. Failures never propagate:
// an unreadable clipboard reads as empty and writes are fire-and-forget.
package clipboard

import (
	atotto "github.com/atotto/clipboard"

	"github.com/agiangrant/relay/edit"
)

// System is the OS clipboard.
type System struct{}

var _ edit.Clipboard = System{}

// ReadText returns the clipboard text, or "" when the clipboard is empty or
// unavailable.
func (System) ReadText() string {
	text, err := atotto.ReadAll()
	if err != nil {
		return ""
	}
	return text
}

// WriteText stores text on the clipboard, ignoring failures.
func (System) WriteText(text string) {
	_ = atotto.WriteAll(text)
}

// Memory is an in-process clipboard for tests and headless use.
type Memory struct {
	text string
}

var _ edit.Clipboard = (*Memory)(nil)

func (m *Memory) ReadText() string { return m.text }

func (m *Memory) WriteText(text string) { m.text = text }
