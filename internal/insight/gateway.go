// Package insight is the boundary to the external text-generation service
// that produces the motivational message shown under the stats. The gateway
// absorbs every failure mode: transport errors, bad status codes and
// malformed replies all resolve to a fixed fallback insight, so callers
// never see an error from this package.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dowk233/steelMaster/internal/model"
	"github.com/dowk233/steelMaster/internal/stats"
)

// maxResponseSize bounds the response body read.
const maxResponseSize = 1 * 1024 * 1024

// Fallback is returned whenever the service cannot produce a usable
// insight.
var Fallback = model.AIInsight{
	Message:   "Consistency is key. Keep pushing forward every single day!",
	Sentiment: model.SentimentEncouraging,
}

// Config locates the OpenAI-compatible chat-completions endpoint.
type Config struct {
	BaseURL string
	Model   string
	APIKey  string
}

// RetryConfig holds retry behavior for insight requests.
type RetryConfig struct {
	MaxAttempts       int
	BackoffBase       time.Duration
	BackoffMultiplier float64
	MaxBackoff        time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:       3,
		BackoffBase:       2 * time.Second,
		BackoffMultiplier: 2.0,
		MaxBackoff:        30 * time.Second,
	}
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	retry      RetryConfig
	logger     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) { client.httpClient = c }
}

func WithRetryConfig(cfg RetryConfig) Option {
	return func(client *Client) { client.retry = cfg }
}

func WithLogger(logger *slog.Logger) Option {
	return func(client *Client) { client.logger = logger }
}

func NewClient(cfg Config, opts ...Option) *Client {
	client := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		retry:      DefaultRetryConfig(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// chat wire types, OpenAI chat-completions shape.

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *formatSpec   `json:"response_format,omitempty"`
}

type formatSpec struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type insightPayload struct {
	Message   string `json:"message"`
	Sentiment string `json:"sentiment"`
}

// RequestInsight asks the service for a short motivational message based on
// the year's aggregate progress. It always returns a usable insight.
func (c *Client) RequestInsight(ctx context.Context, days []model.Day, goal string) model.AIInsight {
	prompt := buildPrompt(goal, stats.CompletedCount(days), stats.LongestStreak(days))

	backoff := c.retry.BackoffBase
	attempts := c.retry.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := c.complete(ctx, prompt)
		if err == nil {
			return result
		}
		c.logger.Warn("insight request failed",
			"attempt", attempt, "max_attempts", attempts, "error", err)

		if attempt == attempts || ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			return Fallback
		case <-time.After(backoff):
		}
		backoff = time.Duration(float64(backoff) * c.retry.BackoffMultiplier)
		if c.retry.MaxBackoff > 0 && backoff > c.retry.MaxBackoff {
			backoff = c.retry.MaxBackoff
		}
	}
	return Fallback
}

func (c *Client) complete(ctx context.Context, prompt string) (model.AIInsight, error) {
	body, err := json.Marshal(chatRequest{
		Model:          c.cfg.Model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: &formatSpec{Type: "json_object"},
	})
	if err != nil {
		return model.AIInsight{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL(c.cfg.BaseURL), bytes.NewReader(body))
	if err != nil {
		return model.AIInsight{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.AIInsight{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return model.AIInsight{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.AIInsight{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(raw, &chat); err != nil {
		return model.AIInsight{}, fmt.Errorf("decode response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return model.AIInsight{}, fmt.Errorf("empty choices")
	}

	// The reply content itself is untrusted input; anything off-shape is an
	// error so the caller falls back.
	var payload insightPayload
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &payload); err != nil {
		return model.AIInsight{}, fmt.Errorf("decode insight payload: %w", err)
	}
	if strings.TrimSpace(payload.Message) == "" {
		return model.AIInsight{}, fmt.Errorf("empty insight message")
	}
	sentiment := model.Sentiment(payload.Sentiment)
	if !sentiment.IsValid() {
		return model.AIInsight{}, fmt.Errorf("unknown sentiment %q", payload.Sentiment)
	}
	return model.AIInsight{Message: payload.Message, Sentiment: sentiment}, nil
}

func buildPrompt(goal string, completed, streak int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this %d-day progress for the goal: %q.\n", model.TotalDays, goal)
	fmt.Fprintf(&b, "Completed: %d/%d days.\n", completed, model.TotalDays)
	fmt.Fprintf(&b, "Current/Max Streak: %d days.\n", streak)
	b.WriteString("Provide a short, 2-sentence motivational insight or tip to help them stay consistent. ")
	b.WriteString("Keep it minimal and encouraging. ")
	b.WriteString(`Reply with a JSON object {"message": string, "sentiment": "positive"|"encouraging"|"neutral"} and nothing else.`)
	return b.String()
}

func endpointURL(baseURL string) string {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if strings.HasSuffix(baseURL, "/chat/completions") {
		return baseURL
	}
	return baseURL + "/chat/completions"
}
