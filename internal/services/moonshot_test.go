package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatCompletionServer(t *testing.T, status int, body string, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func completionBody(t *testing.T, content string) string {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"id":     "cmpl-1",
		"object": "chat.completion",
		"model":  "moonshot-v1-8k",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			},
		},
	})
	require.NoError(t, err)

	return string(body)
}

func TestGenerateTextReturnsFirstChoiceVerbatim(t *testing.T) {
	// Leading/trailing whitespace must survive: no post-processing.
	srv := chatCompletionServer(t, http.StatusOK, completionBody(t, "  OPTIMIZED CV \n"), nil)

	svc := NewMoonshotService("test-key", srv.URL+"/chat/completions", "moonshot-v1-8k")
	text, err := svc.GenerateText(context.Background(), "prompt", 4000)

	require.NoError(t, err)
	assert.Equal(t, "  OPTIMIZED CV \n", text)
}

func TestGenerateTextNoAPIKeyNeverCallsNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := chatCompletionServer(t, http.StatusOK, completionBody(t, "unused"), &hits)

	svc := NewMoonshotService("", srv.URL+"/chat/completions", "moonshot-v1-8k")
	_, err := svc.GenerateText(context.Background(), "prompt", 4000)

	assert.ErrorIs(t, err, ErrNoAPIKey)
	assert.Equal(t, int32(0), hits.Load())
}

func TestGenerateTextUpstreamStatusError(t *testing.T) {
	srv := chatCompletionServer(t, http.StatusServiceUnavailable,
		`{"error":{"message":"service overloaded","type":"server_error"}}`, nil)

	svc := NewMoonshotService("test-key", srv.URL+"/chat/completions", "moonshot-v1-8k")
	_, err := svc.GenerateText(context.Background(), "prompt", 4000)

	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusServiceUnavailable, upstreamErr.Status)
	assert.Contains(t, upstreamErr.Body, "service overloaded")
}

func TestGenerateTextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","choices":[]}`))
	}))
	t.Cleanup(srv.Close)

	svc := NewMoonshotService("test-key", srv.URL+"/chat/completions", "moonshot-v1-8k").(*moonshotService)
	svc.timeout = 50 * time.Millisecond

	_, err := svc.GenerateText(context.Background(), "prompt", 4000)

	assert.ErrorIs(t, err, ErrUpstreamTimeout)
}

func TestGenerateTextMalformedResponse(t *testing.T) {
	srv := chatCompletionServer(t, http.StatusOK, `{"id":"cmpl-1","object":"chat.completion","choices":[]}`, nil)

	svc := NewMoonshotService("test-key", srv.URL+"/chat/completions", "moonshot-v1-8k")
	_, err := svc.GenerateText(context.Background(), "prompt", 4000)

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGenerateTextWithRetryRecovers(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody(t, "second attempt content")))
	}))
	t.Cleanup(srv.Close)

	svc := NewMoonshotService("test-key", srv.URL+"/chat/completions", "moonshot-v1-8k")
	text, err := svc.GenerateTextWithRetry(context.Background(), "prompt", 4000, 3)

	require.NoError(t, err)
	assert.Equal(t, "second attempt content", text)
	assert.Equal(t, int32(2), hits.Load())
}

func TestVerifyCredentialWithoutKey(t *testing.T) {
	svc := NewMoonshotService("", "https://api.moonshot.cn/v1/chat/completions", "moonshot-v1-8k")

	assert.ErrorIs(t, svc.VerifyCredential(context.Background()), ErrNoAPIKey)
}

func TestVerifyCredentialProbe(t *testing.T) {
	srv := chatCompletionServer(t, http.StatusOK, `{"object":"list","data":[{"id":"moonshot-v1-8k","object":"model"}]}`, nil)

	svc := NewMoonshotService("test-key", srv.URL+"/chat/completions", "moonshot-v1-8k")

	assert.NoError(t, svc.VerifyCredential(context.Background()))
}

func TestBaseURLTrimsCompletionsSuffix(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{endpoint: "https://api.moonshot.cn/v1/chat/completions", want: "https://api.moonshot.cn/v1"},
		{endpoint: "https://api.moonshot.cn/v1/chat/completions/", want: "https://api.moonshot.cn/v1"},
		{endpoint: "https://api.moonshot.cn/v1", want: "https://api.moonshot.cn/v1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, baseURL(tt.endpoint))
	}
}
