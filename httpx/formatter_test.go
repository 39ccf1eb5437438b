package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBody(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"object", `{"a":1,"b":"x"}`, "{\n  \"a\": 1,\n  \"b\": \"x\"\n}"},
		{"array", `[1,2]`, "[\n  1,\n  2\n]"},
		{"nested", `{"a":{"b":[]}}`, "{\n  \"a\": {\n    \"b\": []\n  }\n}"},
		{"bare literal", `true`, `true`},
		{"already formatted", "{\n  \"a\": 1\n}", "{\n  \"a\": 1\n}"},
		{"not json", "<html></html>", "<html></html>"},
		{"truncated json", `{"a":`, `{"a":`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBody(tt.in))
		})
	}
}
