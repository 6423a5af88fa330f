// Package openai implements llm.Completer against an OpenAI-compatible chat-completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/prompt"
	"github.com/preston-bernstein/nba-stats-service/internal/llm"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-stats-service/internal/providers"
)

const (
	providerName       = "openai"
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultModel       = "gpt-4"
	defaultHTTPTimeout = 60 * time.Second
	// Completion envelopes are small; anything larger is not a chat response.
	maxResponseBytes = 1 << 20
)

// Config controls how the client reaches the completions API.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client sends prompts to /chat/completions behind a circuit breaker.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient httpDoer
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
	recorder   *metrics.Recorder
}

// NewClient constructs a completions client.
func NewClient(cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Client {
	c := &Client{
		apiKey:     cfg.APIKey,
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		model:      cfg.Model,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     logger,
		recorder:   recorder,
	}
	if c.model == "" {
		c.model = defaultModel
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        providerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			// Caller cancellations say nothing about backend health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn(logger, "completion circuit breaker state changed",
				logging.FieldProvider, name, "from_state", from.String(), "to_state", to.String())
		},
	})
	return c
}

// Model returns the model name requests are sent to.
func (c *Client) Model() string {
	return c.model
}

// Complete sends the prompt and returns the model's answer text verbatim.
func (c *Client) Complete(ctx context.Context, payload prompt.Payload) (string, error) {
	if c.apiKey == "" {
		return "", llm.ErrNotConfigured
	}

	start := time.Now()
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.send(ctx, payload)
	})
	c.recorder.RecordCompletion(c.model, time.Since(start), err)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", llm.ErrUnavailable, err)
		}
		logging.Warn(logging.FromContext(ctx, c.logger), "completion failed", logging.FieldModel, c.model, "err", err)
		return "", err
	}
	return result.(string), nil
}

func (c *Client) send(ctx context.Context, payload prompt.Payload) (string, error) {
	body, err := json.Marshal(payload.ChatRequest(c.model))
	if err != nil {
		return "", fmt.Errorf("%s: encode request: %w", providerName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: request: %w", providerName, err)
	}
	defer resp.Body.Close()

	envelope, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%s: read response: %w", providerName, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfterSeconds(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("x-ratelimit-remaining-requests"),
			Message:    upstreamMessage(envelope),
		}
	case resp.StatusCode != http.StatusOK:
		return "", &llm.UpstreamError{StatusCode: resp.StatusCode, Message: upstreamMessage(envelope)}
	}

	return prompt.ExtractAnswer(envelope)
}
