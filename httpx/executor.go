package httpx

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"
)

// DefaultTimeout bounds a request when the configuration does not.
const DefaultTimeout = 30 * time.Second

// Result is the outcome of an executed request, with the body already
// formatted for display.
type Result struct {
	Status  int
	Headers []Header
	Body    string
}

// Executor runs composed requests synchronously. A zero-value Executor is
// not usable; construct with NewExecutor.
type Executor struct {
	client *http.Client
}

// NewExecutor returns an executor with the given total request timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewExecutor(timeout time.Duration) *Executor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Executor{client: &http.Client{Timeout: timeout}}
}

// Do validates and executes the request, returning the response with a
// display-formatted body. JSON response bodies come back pretty-printed.
func (e *Executor) Do(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	for _, h := range req.Headers {
		httpReq.Header.Set(h.Key, h.Value)
	}

	log.Printf("httpx: %s %s (%d headers, %d body bytes)",
		req.Method, req.URL, len(req.Headers), len(req.Body))

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response body: %w", err)
	}

	headers := make([]Header, 0, len(resp.Header))
	for _, key := range sortedHeaderKeys(resp.Header) {
		for _, value := range resp.Header[key] {
			headers = append(headers, Header{Key: key, Value: value})
		}
	}

	log.Printf("httpx: %s %s -> %d (%d bytes)", req.Method, req.URL, resp.StatusCode, len(raw))
	return Result{
		Status:  resp.StatusCode,
		Headers: headers,
		Body:    FormatBody(string(raw)),
	}, nil
}

func sortedHeaderKeys(h http.Header) []string {
	keys := make([]string, 0, len(h))
	for key := range h {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
