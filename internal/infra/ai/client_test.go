package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vita/config"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/service"
)

func clientConfig(baseURL string) *config.Config {
	return &config.Config{
		AI: &config.AIConfig{
			BaseURL:     baseURL,
			APIKey:      "test-key",
			Model:       "test-model",
			MaxAttempts: 3,
		},
	}
}

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts:       3,
		BackoffBase:       time.Millisecond,
		BackoffMultiplier: 1.0,
		MaxBackoff:        5 * time.Millisecond,
	}
}

const completionBody = `{
	"model": "test-model",
	"choices": [{"message": {"role": "assistant", "content": "eat more greens"}, "finish_reason": "stop"}]
}`

func TestClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody))
	}))
	defer srv.Close()

	client, err := NewClient(clientConfig(srv.URL), WithRetryConfig(fastRetry()))
	require.NoError(t, err)

	resp, err := client.Complete(context.Background(), service.ChatRequest{
		Messages: []service.ChatMessage{{Role: "user", Content: "suggest a meal"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "eat more greens", resp.Content)
	assert.Equal(t, "test-model", resp.Model)
	assert.Equal(t, "stop", resp.FinishReason)
}

func TestClient_RetriesTransientThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(completionBody))
	}))
	defer srv.Close()

	client, err := NewClient(clientConfig(srv.URL), WithRetryConfig(fastRetry()))
	require.NoError(t, err)

	resp, err := client.Complete(context.Background(), service.ChatRequest{
		Messages: []service.ChatMessage{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "eat more greens", resp.Content)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_TransientExhaustion(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := NewClient(clientConfig(srv.URL), WithRetryConfig(fastRetry()))
	require.NoError(t, err)

	resp, err := client.Complete(context.Background(), service.ChatRequest{
		Messages: []service.ChatMessage{{Role: "user", Content: "hi"}},
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_FatalErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client, err := NewClient(clientConfig(srv.URL), WithRetryConfig(fastRetry()))
	require.NoError(t, err)

	resp, err := client.Complete(context.Background(), service.ChatRequest{
		Messages: []service.ChatMessage{{Role: "user", Content: "hi"}},
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamRejected)
	assert.Equal(t, int32(1), calls.Load(), "fatal errors must not be retried")
}

func TestClient_RateLimitIsTransient(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(completionBody))
	}))
	defer srv.Close()

	client, err := NewClient(clientConfig(srv.URL), WithRetryConfig(fastRetry()))
	require.NoError(t, err)

	resp, err := client.Complete(context.Background(), service.ChatRequest{
		Messages: []service.ChatMessage{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.NotNil(t, resp)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(completionBody))
	}))
	defer srv.Close()

	retry := fastRetry()
	retry.MaxAttempts = 1
	client, err := NewClient(clientConfig(srv.URL),
		WithRetryConfig(retry),
		WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))
	require.NoError(t, err)

	resp, err := client.Complete(context.Background(), service.ChatRequest{
		Messages: []service.ChatMessage{{Role: "user", Content: "hi"}},
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamTimeout)
}

func TestClient_EmptyMessagesRejected(t *testing.T) {
	client, err := NewClient(clientConfig("http://localhost:0"))
	require.NoError(t, err)

	resp, err := client.Complete(context.Background(), service.ChatRequest{})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNewClient_RequiresEndpoint(t *testing.T) {
	client, err := NewClient(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, client)
}
