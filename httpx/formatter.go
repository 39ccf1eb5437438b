package httpx

import (
	"bytes"
	"encoding/json"
)

// FormatBody pretty-prints body when it is valid JSON; anything else comes
// back unchanged.
func FormatBody(body string) string {
	raw := []byte(body)
	if !json.Valid(raw) {
		return body
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return body
	}
	return buf.String()
}
