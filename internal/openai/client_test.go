package openai

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/scribe/internal/logger"
)

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("https://api.openai.com/v1", "", nil, logger.NewWithWriter(io.Discard, "debug"))
	assert.Error(t, err)
}

func TestPost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/echo", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		w.Write(body)
	}))
	defer server.Close()

	c, err := NewClient(server.URL+"/v1/", "sk-test", nil, logger.NewWithWriter(io.Discard, "debug"))
	require.NoError(t, err)

	data, err := c.Post(context.Background(), "/echo", "text/plain", strings.NewReader("ping"))
	require.NoError(t, err)
	assert.Equal(t, "ping", string(data))
}

func TestPostStatusErrorWithServiceMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	var logs strings.Builder
	c, err := NewClient(server.URL, "sk-bad", nil, logger.NewWithWriter(&logs, "debug"))
	require.NoError(t, err)

	_, err = c.Post(context.Background(), "/chat/completions", "application/json", strings.NewReader("{}"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStatus))

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "Incorrect API key provided", statusErr.Message)
	assert.Contains(t, logs.String(), "Incorrect API key provided")
}

func TestPostStatusErrorWithUnparseableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>" + strings.Repeat("x", 1000) + "</html>"))
	}))
	defer server.Close()

	c, err := NewClient(server.URL, "sk-test", nil, logger.NewWithWriter(io.Discard, "debug"))
	require.NoError(t, err)

	_, err = c.Post(context.Background(), "/audio/transcriptions", "text/plain", strings.NewReader(""))
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Empty(t, statusErr.Message)
	assert.True(t, strings.HasPrefix(statusErr.Body, "<html>"))
	assert.LessOrEqual(t, len(statusErr.Body), maxErrorBody+3)
}

func TestPostConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c, err := NewClient(url, "sk-test", nil, logger.NewWithWriter(io.Discard, "debug"))
	require.NoError(t, err)

	_, err = c.Post(context.Background(), "/audio/transcriptions", "text/plain", strings.NewReader(""))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrStatus))
}
