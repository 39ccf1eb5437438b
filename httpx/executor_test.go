package httpx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutorGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"users":[1,2]}`)
	}))
	defer srv.Close()

	result, err := NewExecutor(0).Do(context.Background(), NewRequest(http.MethodGet, srv.URL))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, "{\n  \"users\": [\n    1,\n    2\n  ]\n}", result.Body)

	var contentType string
	for _, h := range result.Headers {
		if h.Key == "Content-Type" {
			contentType = h.Value
		}
	}
	assert.Equal(t, "application/json", contentType)
}

func TestExecutorPostBodyAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"name":"alice"}`, string(body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	req := NewRequest(http.MethodPost, srv.URL)
	req.AddHeader("Content-Type", "application/json")
	req.SetBody(`{"name":"alice"}`)

	result, err := NewExecutor(0).Do(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, result.Status)
}

func TestExecutorEmptyURL(t *testing.T) {
	_, err := NewExecutor(0).Do(context.Background(), NewRequest(http.MethodGet, "   "))
	assert.ErrorIs(t, err, ErrEmptyURL)
}

func TestExecutorConnectionError(t *testing.T) {
	_, err := NewExecutor(0).Do(context.Background(), NewRequest(http.MethodGet, "http://127.0.0.1:1"))
	assert.Error(t, err)
}

func TestExecutorContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := NewExecutor(time.Minute).Do(ctx, NewRequest(http.MethodGet, srv.URL))
	assert.Error(t, err)
}

func TestExecutorSortsResponseHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Zebra", "z")
		w.Header().Set("Alpha", "a")
	}))
	defer srv.Close()

	result, err := NewExecutor(0).Do(context.Background(), NewRequest(http.MethodGet, srv.URL))
	require.NoError(t, err)

	var keys []string
	for _, h := range result.Headers {
		keys = append(keys, h.Key)
	}
	assert.IsNonDecreasing(t, keys)
	assert.Contains(t, keys, "Alpha")
	assert.Contains(t, keys, "Zebra")
}

func TestRequestValidate(t *testing.T) {
	assert.NoError(t, NewRequest(http.MethodGet, "https://example.com").Validate())
	assert.ErrorIs(t, NewRequest(http.MethodGet, "").Validate(), ErrEmptyURL)
	assert.ErrorIs(t, NewRequest(http.MethodGet, "  \t ").Validate(), ErrEmptyURL)
}
