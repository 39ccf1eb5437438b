package widgets

import (
	"strings"

	"github.com/agiangrant/relay/edit"
)

// BodyMode selects how the request body is edited.
type BodyMode int

const (
	// BodyJSON edits a free-text JSON document.
	BodyJSON BodyMode = iota
	// BodyRaw edits an arbitrary free-text payload.
	BodyRaw
	// BodyForm edits an ordered list of key/value entries serialized as
	// key=value&key=value over the enabled entries.
	BodyForm
)

// FormEntry is one key/value row of the form-data mode.
type FormEntry struct {
	Key     string
	Value   string
	Enabled bool
}

// FormField identifies which field of an entry is being edited.
type FormField int

const (
	FieldKey FormField = iota
	FieldValue
)

// formState is the structured alternative to a text buffer: no byte-offset
// selection; editing tracks which field of which entry is active, with a
// scratch string holding the uncommitted value.
type formState struct {
	entries     []FormEntry
	activeEntry int
	activeField FormField
	editing     bool
	scratch     string
}

func newFormState() *formState {
	return &formState{entries: []FormEntry{{Enabled: true}}, activeEntry: -1}
}

// BodyEditor is the request body widget: a tagged union of two free-text
// editors (JSON and raw) and the structured form mode. Exactly one mode is
// active; switching modes recomputes the effective content and notifies.
type BodyEditor struct {
	mode BodyMode
	json *edit.Editor
	raw  *edit.Editor
	form *formState

	onChange func(content string)
}

// NewBodyEditor returns a body editor in JSON mode wired to the clipboard.
func NewBodyEditor(clip edit.Clipboard) *BodyEditor {
	b := &BodyEditor{
		json: edit.NewEditor(),
		raw:  edit.NewEditor(),
		form: newFormState(),
	}
	for _, ed := range []*edit.Editor{b.json, b.raw} {
		ed.SetMultiline(true)
		ed.SetClipboard(clip)
		ed.OnChange(func(content string) { b.emit(content) })
	}
	return b
}

// Mode returns the active body mode.
func (b *BodyEditor) Mode() BodyMode { return b.mode }

// SetMode switches the active mode, recomputes the effective content, and
// notifies. Switching to the current mode is a no-op.
func (b *BodyEditor) SetMode(mode BodyMode) {
	if b.mode == mode {
		return
	}
	b.cancelFieldEdit()
	b.mode = mode
	b.emit(b.EffectiveContent())
}

// Editor returns the active free-text engine, or nil in form mode — the
// selection/offset contract has no meaning over structured entries.
func (b *BodyEditor) Editor() *edit.Editor {
	switch b.mode {
	case BodyJSON:
		return b.json
	case BodyRaw:
		return b.raw
	default:
		return nil
	}
}

// EffectiveContent returns the serialized body for the active mode.
func (b *BodyEditor) EffectiveContent() string {
	switch b.mode {
	case BodyJSON:
		return b.json.Text()
	case BodyRaw:
		return b.raw.Text()
	default:
		return b.serializeForm()
	}
}

// IsEmpty reports whether the active mode holds no content.
func (b *BodyEditor) IsEmpty() bool {
	switch b.mode {
	case BodyJSON:
		return b.json.Text() == ""
	case BodyRaw:
		return b.raw.Text() == ""
	default:
		for _, entry := range b.form.entries {
			if entry.Key != "" || entry.Value != "" {
				return false
			}
		}
		return true
	}
}

// SetContent replaces the active free-text buffer. Form mode does not
// support direct content assignment; the call is a no-op there.
func (b *BodyEditor) SetContent(content string) {
	if ed := b.Editor(); ed != nil {
		ed.SetText(content)
	}
}

// Clear resets the active mode to its empty state and notifies.
func (b *BodyEditor) Clear() {
	switch b.mode {
	case BodyJSON:
		b.json.Clear()
	case BodyRaw:
		b.raw.Clear()
	default:
		b.form = newFormState()
		b.emit("")
	}
}

// OnChange registers the effective-content change callback.
func (b *BodyEditor) OnChange(fn func(content string)) { b.onChange = fn }

func (b *BodyEditor) emit(content string) {
	if b.onChange != nil {
		b.onChange(content)
	}
}

// Form mode operations.

// Entries returns a copy of the form entries.
func (b *BodyEditor) Entries() []FormEntry {
	entries := make([]FormEntry, len(b.form.entries))
	copy(entries, b.form.entries)
	return entries
}

// AddEntry appends a fresh enabled entry.
func (b *BodyEditor) AddEntry() {
	b.form.entries = append(b.form.entries, FormEntry{Enabled: true})
}

// RemoveEntry deletes the entry at index. Removing the last remaining entry
// re-inserts a fresh empty one: form mode never reaches a zero-entry state.
func (b *BodyEditor) RemoveEntry(index int) {
	if index < 0 || index >= len(b.form.entries) {
		return
	}
	if b.form.editing {
		switch {
		case b.form.activeEntry == index:
			b.cancelFieldEdit()
		case b.form.activeEntry > index:
			// Keep the in-progress edit pointed at the same entry.
			b.form.activeEntry--
		}
	}
	b.form.entries = append(b.form.entries[:index], b.form.entries[index+1:]...)
	if len(b.form.entries) == 0 {
		b.form.entries = []FormEntry{{Enabled: true}}
	}
	b.emit(b.serializeForm())
}

// ToggleEntry flips an entry's enabled flag and notifies, since the
// serialized body changes with it.
func (b *BodyEditor) ToggleEntry(index int) {
	if index < 0 || index >= len(b.form.entries) {
		return
	}
	b.form.entries[index].Enabled = !b.form.entries[index].Enabled
	b.emit(b.serializeForm())
}

// EditField begins editing one field of one entry, committing any edit
// already in progress. The field's current value becomes the scratch text.
func (b *BodyEditor) EditField(index int, field FormField) {
	if index < 0 || index >= len(b.form.entries) {
		return
	}
	if b.form.editing {
		b.CommitFieldEdit()
	}
	b.form.editing = true
	b.form.activeEntry = index
	b.form.activeField = field
	if field == FieldKey {
		b.form.scratch = b.form.entries[index].Key
	} else {
		b.form.scratch = b.form.entries[index].Value
	}
}

// ActiveField reports which field is being edited, if any.
func (b *BodyEditor) ActiveField() (index int, field FormField, editing bool) {
	return b.form.activeEntry, b.form.activeField, b.form.editing
}

// Scratch returns the uncommitted text of the field being edited.
func (b *BodyEditor) Scratch() string { return b.form.scratch }

// SetScratch replaces the uncommitted field text.
func (b *BodyEditor) SetScratch(text string) {
	if b.form.editing {
		b.form.scratch = text
	}
}

// InsertScratch appends typed text to the uncommitted field text.
func (b *BodyEditor) InsertScratch(text string) {
	if b.form.editing {
		b.form.scratch += text
	}
}

// BackspaceScratch removes the last byte run of the uncommitted field text.
func (b *BodyEditor) BackspaceScratch() {
	if !b.form.editing || b.form.scratch == "" {
		return
	}
	b.form.scratch = b.form.scratch[:edit.PreviousBoundary(b.form.scratch, len(b.form.scratch))]
}

// CommitFieldEdit stores the scratch text into the active field and
// notifies with the recomputed serialization.
func (b *BodyEditor) CommitFieldEdit() {
	if !b.form.editing {
		return
	}
	b.commitFieldEdit()
	b.emit(b.serializeForm())
}

// CancelFieldEdit abandons the scratch text, leaving the entry unchanged.
func (b *BodyEditor) CancelFieldEdit() { b.cancelFieldEdit() }

// NextField advances Tab-style: key → value → next entry's key, appending a
// new entry past the end.
func (b *BodyEditor) NextField() {
	if !b.form.editing {
		return
	}
	index, field := b.form.activeEntry, b.form.activeField
	b.commitFieldEdit()
	b.emit(b.serializeForm())
	if field == FieldKey {
		b.EditField(index, FieldValue)
		return
	}
	if index+1 < len(b.form.entries) {
		b.EditField(index+1, FieldKey)
		return
	}
	b.AddEntry()
	b.EditField(len(b.form.entries)-1, FieldKey)
}

// PreviousField moves Shift+Tab-style: value → key → previous entry's value.
func (b *BodyEditor) PreviousField() {
	if !b.form.editing {
		return
	}
	index, field := b.form.activeEntry, b.form.activeField
	b.commitFieldEdit()
	b.emit(b.serializeForm())
	if field == FieldValue {
		b.EditField(index, FieldKey)
		return
	}
	if index > 0 {
		b.EditField(index-1, FieldValue)
	}
}

func (b *BodyEditor) commitFieldEdit() {
	if !b.form.editing {
		return
	}
	if b.form.activeEntry < 0 || b.form.activeEntry >= len(b.form.entries) {
		b.cancelFieldEdit()
		return
	}
	entry := &b.form.entries[b.form.activeEntry]
	if b.form.activeField == FieldKey {
		entry.Key = b.form.scratch
	} else {
		entry.Value = b.form.scratch
	}
	b.cancelFieldEdit()
}

func (b *BodyEditor) cancelFieldEdit() {
	b.form.editing = false
	b.form.activeEntry = -1
	b.form.scratch = ""
}

// serializeForm joins the enabled entries with non-empty keys as
// key=value&key=value, in entry order.
func (b *BodyEditor) serializeForm() string {
	var pairs []string
	for _, entry := range b.form.entries {
		if entry.Enabled && entry.Key != "" {
			pairs = append(pairs, entry.Key+"="+entry.Value)
		}
	}
	return strings.Join(pairs, "&")
}
