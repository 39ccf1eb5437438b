package edit

// Command is one of the closed set of discrete editing actions a host maps
// key events onto. Modifier interpretation (shift-for-select, word motion
// keys) is the host's job; the engine only sees the resolved command.
type Command int

const (
	CommandMoveLeft Command = iota
	CommandMoveRight
	CommandMoveUp
	CommandMoveDown
	CommandSelectLeft
	CommandSelectRight
	CommandSelectUp
	CommandSelectDown
	CommandLineStart
	CommandLineEnd
	CommandSelectAll
	CommandBackspace
	CommandDelete
	CommandDeleteWordBackward
	CommandDeleteWordForward
	CommandCopy
	CommandCut
	CommandPaste
	CommandNewline
)

// Perform dispatches a command onto the engine's primitives. Unknown
// commands and impossible requests are no-ops.
func (e *Editor) Perform(cmd Command) {
	switch cmd {
	case CommandMoveLeft:
		if e.selected.IsEmpty() {
			e.MoveTo(e.PreviousBoundary(e.CursorOffset()))
		} else {
			e.MoveTo(e.selected.Start)
		}
	case CommandMoveRight:
		if e.selected.IsEmpty() {
			e.MoveTo(e.NextBoundary(e.selected.End))
		} else {
			e.MoveTo(e.selected.End)
		}
	case CommandMoveUp:
		e.MoveTo(e.LineUp(e.CursorOffset()))
	case CommandMoveDown:
		e.MoveTo(e.LineDown(e.CursorOffset()))
	case CommandSelectLeft:
		e.SelectTo(e.PreviousBoundary(e.CursorOffset()))
	case CommandSelectRight:
		e.SelectTo(e.NextBoundary(e.CursorOffset()))
	case CommandSelectUp:
		e.SelectTo(e.LineUp(e.CursorOffset()))
	case CommandSelectDown:
		e.SelectTo(e.LineDown(e.CursorOffset()))
	case CommandLineStart:
		e.MoveTo(e.LineStart(e.CursorOffset()))
	case CommandLineEnd:
		e.MoveTo(e.LineEnd(e.CursorOffset()))
	case CommandSelectAll:
		e.SelectAll()
	case CommandBackspace:
		if e.readOnly {
			return
		}
		if e.selected.IsEmpty() {
			e.SelectTo(e.PreviousBoundary(e.CursorOffset()))
		}
		e.ReplaceRange(nil, "")
	case CommandDelete:
		if e.readOnly {
			return
		}
		if e.selected.IsEmpty() {
			e.SelectTo(e.NextBoundary(e.CursorOffset()))
		}
		e.ReplaceRange(nil, "")
	case CommandDeleteWordBackward:
		if e.readOnly {
			return
		}
		if e.selected.IsEmpty() {
			e.SelectTo(PreviousWordBoundary(e.content, e.CursorOffset()))
		}
		e.ReplaceRange(nil, "")
	case CommandDeleteWordForward:
		if e.readOnly {
			return
		}
		if e.selected.IsEmpty() {
			e.SelectTo(NextWordBoundary(e.content, e.CursorOffset()))
		}
		e.ReplaceRange(nil, "")
	case CommandCopy:
		if !e.selected.IsEmpty() && e.clip != nil {
			e.clip.WriteText(e.SelectedText())
		}
	case CommandCut:
		if !e.selected.IsEmpty() && e.clip != nil {
			e.clip.WriteText(e.SelectedText())
			e.ReplaceRange(nil, "")
		}
	case CommandPaste:
		if e.clip == nil {
			return
		}
		if text := e.clip.ReadText(); text != "" {
			e.ReplaceRange(nil, text)
		}
	case CommandNewline:
		if e.multiline {
			e.ReplaceRange(nil, "\n")
		}
	}
}

// Insert splices text at the selection, the common path for plain
// keystrokes.
func (e *Editor) Insert(text string) {
	e.ReplaceRange(nil, text)
}
