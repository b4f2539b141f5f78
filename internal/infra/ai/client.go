// Package ai implements the chat-completion domain service against an
// OpenAI-compatible HTTP endpoint, with bounded retries and error
// classification.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"vita/config"
	domainerrors "vita/internal/domain/errors"
	"vita/internal/domain/service"
)

// maxResponseSize limits the upstream response body to prevent memory exhaustion.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

const defaultRequestTimeout = 60 * time.Second

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	httpClient  *http.Client
	retryConfig RetryConfig
	logger      *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithRetryConfig sets the retry configuration.
func WithRetryConfig(cfg RetryConfig) ClientOption {
	return func(client *Client) {
		client.retryConfig = cfg
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(client *Client) {
		client.logger = logger
	}
}

// NewClient creates a completion client from configuration.
func NewClient(cfg *config.Config, opts ...ClientOption) (service.ChatCompletionService, error) {
	if cfg.AI == nil || cfg.AI.BaseURL == "" {
		return nil, fmt.Errorf("ai endpoint configuration is required")
	}

	timeout := cfg.AI.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	retryConfig := DefaultRetryConfig()
	if cfg.AI.MaxAttempts > 0 {
		retryConfig.MaxAttempts = cfg.AI.MaxAttempts
	}

	c := &Client{
		baseURL:     strings.TrimRight(cfg.AI.BaseURL, "/"),
		apiKey:      cfg.AI.APIKey,
		model:       cfg.AI.Model,
		retryConfig: retryConfig,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// chatCompletionRequest is the wire format of the upstream request.
type chatCompletionRequest struct {
	Model       string                `json:"model"`
	Messages    []service.ChatMessage `json:"messages"`
	MaxTokens   int                   `json:"max_tokens,omitempty"`
	Temperature float64               `json:"temperature,omitempty"`
}

// chatCompletionResponse is the wire format of the upstream response.
type chatCompletionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message      service.ChatMessage `json:"message"`
		FinishReason string              `json:"finish_reason"`
	} `json:"choices"`
}

// Complete sends a completion request with retry, mapping upstream
// failures into the domain error taxonomy.
func (c *Client) Complete(ctx context.Context, req service.ChatRequest) (*service.ChatResponse, error) {
	if len(req.Messages) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one message is required")
	}

	var lastErr error

	for attempt := 1; attempt <= c.retryConfig.MaxAttempts; attempt++ {
		resp, err := c.doRequest(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if IsFatal(err) {
			return nil, c.toDomainError(err)
		}

		if attempt < c.retryConfig.MaxAttempts {
			backoff := c.calculateBackoff(attempt)
			c.logger.Debug("completion request failed, retrying",
				"attempt", attempt,
				"max_attempts", c.retryConfig.MaxAttempts,
				"backoff", backoff,
				"error", err)

			select {
			case <-ctx.Done():
				return nil, c.toDomainError(NewTransientError(ctx.Err()))
			case <-time.After(backoff):
			}
		}
	}

	return nil, c.toDomainError(lastErr)
}

// calculateBackoff computes exponential backoff duration with jitter.
// Jitter prevents thundering herd when multiple clients retry simultaneously.
func (c *Client) calculateBackoff(attempt int) time.Duration {
	multiplier := 1.0
	for i := 1; i < attempt; i++ {
		multiplier *= c.retryConfig.BackoffMultiplier
	}

	backoff := time.Duration(float64(c.retryConfig.BackoffBase) * multiplier)
	if backoff > c.retryConfig.MaxBackoff {
		backoff = c.retryConfig.MaxBackoff
	}

	// Add jitter: +/- 25% to prevent synchronized retries
	jitter := float64(backoff) * 0.25 * (rand.Float64()*2 - 1)
	return backoff + time.Duration(jitter)
}

// doRequest executes a single HTTP request to the completions endpoint.
func (c *Client) doRequest(ctx context.Context, req service.ChatRequest) (*service.ChatResponse, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model:       c.model,
		Messages:    req.Messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, NewFatalError(fmt.Errorf("build request body: %w", err))
	}

	url := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, NewFatalError(fmt.Errorf("create HTTP request: %w", err))
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Network errors and client timeouts are transient
		return nil, NewTransientError(fmt.Errorf("HTTP request failed: %w", err))
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseSize))
	if err != nil {
		return nil, NewTransientError(fmt.Errorf("read response body: %w", err))
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, classifyHTTPError(httpResp.StatusCode, respBody)
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, NewTransientError(fmt.Errorf("parse response body: %w", err))
	}
	if len(parsed.Choices) == 0 {
		return nil, NewTransientError(fmt.Errorf("response contained no choices"))
	}

	return &service.ChatResponse{
		Content:      parsed.Choices[0].Message.Content,
		Model:        parsed.Model,
		FinishReason: parsed.Choices[0].FinishReason,
	}, nil
}

// toDomainError maps a classified transport error onto the domain taxonomy,
// so the use case layer never sees raw HTTP details.
func (c *Client) toDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case isTimeout(err):
		return domainerrors.ErrUpstreamTimeout
	case IsTransient(err):
		return domainerrors.ErrUpstreamUnavailable
	default:
		return domainerrors.ErrUpstreamRejected
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// classifyHTTPError determines if an HTTP error is transient or fatal.
func classifyHTTPError(statusCode int, body []byte) error {
	bodyStr := string(body)
	if len(bodyStr) > 200 {
		bodyStr = bodyStr[:200] + "..."
	}

	err := fmt.Errorf("completion API error (status %d): %s", statusCode, bodyStr)

	switch {
	case statusCode == http.StatusTooManyRequests:
		// Rate limiting is transient
		return NewTransientError(err)
	case statusCode >= 500:
		// Server errors are transient
		return NewTransientError(err)
	case statusCode == http.StatusUnauthorized,
		statusCode == http.StatusForbidden:
		// Auth errors are fatal
		return NewFatalError(err)
	case statusCode == http.StatusBadRequest:
		// Bad requests are fatal
		return NewFatalError(err)
	default:
		// Unknown errors default to fatal
		return NewFatalError(err)
	}
}
