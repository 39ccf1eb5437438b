// Package relay wires the request-composer widgets to the HTTP executor and
// the persisted history log.
package relay

import (
	"context"
	"time"

	"github.com/agiangrant/relay/edit"
	"github.com/agiangrant/relay/history"
	"github.com/agiangrant/relay/httpx"
	"github.com/agiangrant/relay/widgets"
)

// Methods lists the supported HTTP methods in display order.
var Methods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}

// Composer is the root of the request-composer screen: the URL field, the
// body editor, the response viewer, and the surrounding request state.
type Composer struct {
	URL      *widgets.URLField
	Body     *widgets.BodyEditor
	Response *widgets.ResponseView

	Method  string
	Headers []httpx.Header
	History *history.Log

	executor    *httpx.Executor
	historyPath string
}

// NewComposer builds a composer from the configuration, sharing one
// clipboard across the widgets. Previously saved history is loaded from the
// configured path; an unreadable file starts an empty log. Submitting the
// URL field sends the request.
func NewComposer(cfg Config, clip edit.Clipboard) *Composer {
	log, err := history.Load(cfg.HistoryPath, cfg.MaxHistory)
	if err != nil {
		log = history.New(cfg.MaxHistory)
	}
	c := &Composer{
		URL:         widgets.NewURLField(clip),
		Body:        widgets.NewBodyEditor(clip),
		Response:    widgets.NewResponseView(clip),
		Method:      "GET",
		History:     log,
		executor:    httpx.NewExecutor(time.Duration(cfg.TimeoutSeconds) * time.Second),
		historyPath: cfg.HistoryPath,
	}
	c.URL.OnSubmit(func(string) {
		c.Send(context.Background())
	})
	return c
}

// SaveHistory persists the request history to the configured path.
func (c *Composer) SaveHistory() error {
	return c.History.Save(c.historyPath)
}

// BuildRequest assembles the request from the current widget contents. A
// Content-Type header is added for the JSON and form body modes when the
// body is non-empty, unless one is already set explicitly.
func (c *Composer) BuildRequest() httpx.Request {
	req := httpx.NewRequest(c.Method, c.URL.URL())
	req.Headers = append(req.Headers, c.Headers...)

	body := c.Body.EffectiveContent()
	if body == "" {
		return req
	}
	req.SetBody(body)
	if !hasHeader(req.Headers, "Content-Type") {
		switch c.Body.Mode() {
		case widgets.BodyJSON:
			req.AddHeader("Content-Type", "application/json")
		case widgets.BodyForm:
			req.AddHeader("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	return req
}

// Send executes the composed request and routes the outcome into the
// response viewer. Successful sends are recorded in the history log.
func (c *Composer) Send(ctx context.Context) {
	req := c.BuildRequest()
	if err := req.Validate(); err != nil {
		c.Response.SetError(err.Error())
		return
	}

	c.Response.SetLoading()
	result, err := c.executor.Do(ctx, req)
	if err != nil {
		c.Response.SetError(err.Error())
		return
	}
	c.Response.SetSuccess(result.Status, result.Body)
	c.History.Add(req, req.URL)
}

// Restore loads a history entry back into the composer. The body lands in
// raw mode, since the recorded body is an already-serialized string.
func (c *Composer) Restore(entry history.Entry) {
	c.Method = entry.Request.Method
	c.Headers = append([]httpx.Header(nil), entry.Request.Headers...)
	c.URL.SetURL(entry.Request.URL)
	c.Body.SetMode(widgets.BodyRaw)
	c.Body.SetContent(entry.Request.Body)
}

func hasHeader(headers []httpx.Header, key string) bool {
	for _, h := range headers {
		if h.Key == key {
			return true
		}
	}
	return false
}
