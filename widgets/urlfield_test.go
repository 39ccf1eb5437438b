package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agiangrant/relay/edit"
	"github.com/agiangrant/relay/internal/clipboard"
)

func TestURLFieldStripsNewlines(t *testing.T) {
	f := NewURLField(nil)
	f.Insert("https://example.com\n/api")
	assert.Equal(t, "https://example.com/api", f.URL())

	// Pasted multi-line text flattens too.
	clip := &clipboard.Memory{}
	clip.WriteText("https://example.com\r\n/v2")
	f2 := NewURLField(clip)
	f2.Perform(edit.CommandPaste)
	assert.Equal(t, "https://example.com/v2", f2.URL())
}

func TestURLFieldChangeAndSubmit(t *testing.T) {
	f := NewURLField(nil)

	var changed []string
	f.OnChange(func(url string) { changed = append(changed, url) })

	var submitted string
	f.OnSubmit(func(url string) { submitted = url })

	f.SetURL("https://example.com")
	assert.Equal(t, []string{"https://example.com"}, changed)

	// Assigning the same URL again fires nothing.
	f.SetURL("https://example.com")
	assert.Len(t, changed, 1)

	f.Submit()
	assert.Equal(t, "https://example.com", submitted)
}

func TestURLFieldPlaceholder(t *testing.T) {
	f := NewURLField(nil)
	assert.Equal(t, "Enter request URL", f.Placeholder())
	f.SetPlaceholder("URL")
	assert.Equal(t, "URL", f.Placeholder())
}
