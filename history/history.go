// Package history keeps a bounded, newest-first log of sent requests with
// TOML persistence.
package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/relay/httpx"
)

// DefaultMaxEntries bounds the log when the configuration does not.
const DefaultMaxEntries = 50

// Entry is one recorded request.
type Entry struct {
	Name      string        `toml:"name"`
	Timestamp time.Time     `toml:"timestamp"`
	Request   httpx.Request `toml:"request"`
}

// DisplayName is the label shown in the history list.
func (e Entry) DisplayName() string {
	return e.Request.Method + " " + e.Name
}

// FormattedTime renders the timestamp for the history list.
func (e Entry) FormattedTime() string {
	return e.Timestamp.Format("15:04:05")
}

// Log is the request history, newest first.
type Log struct {
	entries []Entry
	max     int
}

// New returns an empty log holding at most max entries; a non-positive max
// uses DefaultMaxEntries.
func New(max int) *Log {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Log{max: max}
}

// Add records a request at the front of the log, trimming the oldest
// entries past the bound.
func (l *Log) Add(req httpx.Request, name string) {
	entry := Entry{Name: name, Timestamp: time.Now().UTC(), Request: req}
	l.entries = append([]Entry{entry}, l.entries...)
	if len(l.entries) > l.max {
		l.entries = l.entries[:l.max]
	}
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []Entry {
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Get returns the entry at index.
func (l *Log) Get(index int) (Entry, bool) {
	if index < 0 || index >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[index], true
}

// Len returns the number of recorded entries.
func (l *Log) Len() int { return len(l.entries) }

// Clear drops every entry.
func (l *Log) Clear() { l.entries = nil }

// fileFormat is the on-disk TOML shape.
type fileFormat struct {
	Entries []Entry `toml:"entry"`
}

// Save writes the log to path as TOML.
func (l *Log) Save(path string) error {
	data, err := toml.Marshal(fileFormat{Entries: l.entries})
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Load reads a log from path. A missing file yields an empty log.
func Load(path string, max int) (*Log, error) {
	l := New(max)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	var file fileFormat
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	l.entries = file.Entries
	if len(l.entries) > l.max {
		l.entries = l.entries[:l.max]
	}
	return l, nil
}
