// Package edit implements the text-editing engine shared by every editable
// widget in relay: the URL field, the multi-line body editor, and the
// read-only response viewer.
//
// The engine owns a text buffer and a cursor/selection state, navigates by
// grapheme-cluster and line boundaries, converts between byte offsets (the
// buffer's native unit) and UTF-16 code units (the host text-input system's
// unit), and hit-tests pointer positions against externally shaped line
// geometry. It performs no rendering and no text shaping of its own; those
// stay behind the ShapedLine and Clipboard interfaces.
//
// All operations are total: offsets and ranges are clamped into the buffer
// before use, and impossible requests (Backspace at offset 0, hit-testing an
// empty buffer) degrade to no-ops. The engine is single-threaded and meant
// to be driven from the UI event-dispatch goroutine.
package edit
