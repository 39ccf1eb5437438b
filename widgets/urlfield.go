// Package widgets contains the editable widgets of the request composer.
// Each owns its edit.Editor and exposes change notifications to the
// application; rendering, shaping and event plumbing stay with the host
// toolkit.
package widgets

import "github.com/agiangrant/relay/edit"

// URLField is the single-line request URL input. Newlines in inserted or
// pasted text are stripped; Enter submits instead of inserting.
type URLField struct {
	*edit.Editor

	placeholder string
	onChange    func(url string)
	onSubmit    func(url string)
}

// NewURLField returns an empty URL field wired to the given clipboard.
func NewURLField(clip edit.Clipboard) *URLField {
	f := &URLField{
		Editor:      edit.NewEditor(),
		placeholder: "Enter request URL",
	}
	f.SetClipboard(clip)
	f.Editor.OnChange(func(content string) {
		if f.onChange != nil {
			f.onChange(content)
		}
	})
	return f
}

// URL returns the current URL text.
func (f *URLField) URL() string { return f.Text() }

// SetURL replaces the field content; the change callback fires only when
// the URL actually changed.
func (f *URLField) SetURL(url string) { f.SetText(url) }

// Placeholder returns the text shown while the field is empty.
func (f *URLField) Placeholder() string { return f.placeholder }

// SetPlaceholder sets the text shown while the field is empty.
func (f *URLField) SetPlaceholder(placeholder string) { f.placeholder = placeholder }

// OnChange registers the URL change callback.
func (f *URLField) OnChange(fn func(url string)) { f.onChange = fn }

// OnSubmit registers the submit callback, fired by Submit (Enter).
func (f *URLField) OnSubmit(fn func(url string)) { f.onSubmit = fn }

// Submit fires the submit callback with the current URL.
func (f *URLField) Submit() {
	if f.onSubmit != nil {
		f.onSubmit(f.Text())
	}
}
