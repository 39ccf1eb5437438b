package widgets

import "github.com/agiangrant/relay/edit"

// ResponseState is the lifecycle of the response pane.
type ResponseState int

const (
	ResponseNotSent ResponseState = iota
	ResponseLoading
	ResponseSuccess
	ResponseError
)

// ResponseView is the read-only selectable viewer for response bodies and
// error messages. Its embedded engine supports selection, copy and
// select-all; edits are no-ops. Hit testing runs against an approximate
// monospace layout rebuilt from the current content on every query.
type ResponseView struct {
	*edit.Editor

	state  ResponseState
	status int
	bounds edit.Bounds
}

// NewResponseView returns a viewer in the NotSent state.
func NewResponseView(clip edit.Clipboard) *ResponseView {
	v := &ResponseView{Editor: edit.NewEditor()}
	v.SetMultiline(true)
	v.SetReadOnly(true)
	v.SetClipboard(clip)
	v.SetLayoutSource(func() (edit.TextLayout, bool) {
		if v.Text() == "" {
			return edit.TextLayout{}, false
		}
		return MonoLayout(v.Text(), v.bounds, 0, 0), true
	})
	return v
}

// SetBounds records the pixel rectangle the viewer is drawn in, used for
// hit testing.
func (v *ResponseView) SetBounds(b edit.Bounds) { v.bounds = b }

// State returns the current lifecycle state.
func (v *ResponseView) State() ResponseState { return v.state }

// Status returns the HTTP status of the last successful response.
func (v *ResponseView) Status() int { return v.status }

// SetLoading marks a request in flight and empties the viewer.
func (v *ResponseView) SetLoading() {
	v.state = ResponseLoading
	v.status = 0
	v.SetText("")
}

// SetSuccess shows a response body. The selection resets to offset 0.
func (v *ResponseView) SetSuccess(status int, body string) {
	v.state = ResponseSuccess
	v.status = status
	v.SetText(body)
	v.MoveTo(0)
}

// SetError shows a failure message in place of a body.
func (v *ResponseView) SetError(message string) {
	v.state = ResponseError
	v.status = 0
	v.SetText(message)
	v.MoveTo(0)
}

// Reset returns the viewer to the NotSent state.
func (v *ResponseView) Reset() {
	v.state = ResponseNotSent
	v.status = 0
	v.SetText("")
}
