// Package httpx executes composed requests. The editing core never imports
// it; the composer reads the widgets' content as plain strings and hands a
// Request here.
package httpx

import (
	"errors"
	"strings"
)

// ErrEmptyURL rejects a request before any network work happens.
var ErrEmptyURL = errors.New("request URL is empty")

// Header is one ordered request or response header.
type Header struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// Request is the composed HTTP request: what the widgets' effective
// contents describe.
type Request struct {
	Method  string   `toml:"method"`
	URL     string   `toml:"url"`
	Headers []Header `toml:"headers,omitempty"`
	Body    string   `toml:"body,omitempty"`
}

// NewRequest returns a request with no headers and no body.
func NewRequest(method, url string) Request {
	return Request{Method: method, URL: url}
}

// AddHeader appends a header, preserving insertion order.
func (r *Request) AddHeader(key, value string) {
	r.Headers = append(r.Headers, Header{Key: key, Value: value})
}

// SetBody sets the request body.
func (r *Request) SetBody(body string) {
	r.Body = body
}

// Validate reports whether the request can be sent.
func (r Request) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return ErrEmptyURL
	}
	return nil
}
