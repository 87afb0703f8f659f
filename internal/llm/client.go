package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sizing-assistant/internal/contextutil"
	"sizing-assistant/internal/metrics"
	"sizing-assistant/internal/settings"
)

// DefaultURL is the text-completion endpoint used when none is configured.
const DefaultURL = "https://api.openai.com/v1/completions"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// truncatedMarker is appended to an error body cut at maxBodyBytes.
const truncatedMarker = " ...[truncated]"

// Client is a client for a text-completion API.
// It holds no per-request state; credentials and model come from the
// settings passed to Submit.
type Client struct {
	URL     string
	Timeout time.Duration
	client  *http.Client
}

// NewClient creates a new completion client. A zero timeout disables the
// per-request deadline.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		URL:     url,
		Timeout: timeout,
		client:  http.DefaultClient,
	}
}

// Submit sends prompt to the completion endpoint and maps the result to an
// Outcome. It makes exactly one HTTP call and never retries.
func (c *Client) Submit(ctx context.Context, prompt string, s settings.Settings) Outcome {
	logger := contextutil.LoggerFromContext(ctx)
	start := time.Now()

	outcome := c.submit(ctx, prompt, s)

	label := "success"
	if !outcome.OK() {
		label = string(outcome.Err.Kind)
		logger.WarnContext(ctx, "completion request failed", "kind", outcome.Err.Kind, "model", s.Model, "duration", time.Since(start))
	} else {
		logger.InfoContext(ctx, "completion request succeeded", "model", s.Model, "reply_length", len(outcome.Text), "duration", time.Since(start))
	}
	metrics.CompletionRequestsTotal.WithLabelValues(label).Inc()
	metrics.CompletionDuration.Observe(time.Since(start).Seconds())

	return outcome
}

func (c *Client) submit(ctx context.Context, prompt string, s settings.Settings) Outcome {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	payload := CompletionRequest{
		Model:     s.Model,
		Prompt:    prompt,
		MaxTokens: s.MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Failure(FailureTransport, fmt.Sprintf("failed to marshal request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBuffer(body))
	if err != nil {
		return Failure(FailureTransport, fmt.Sprintf("failed to create request: %v", err))
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.APIKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Failure(FailureTransport, fmt.Sprintf("failed to send request: %v", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return Failure(FailureTransport, fmt.Sprintf("failed to read response: %v", err))
	}
	truncated := len(raw) > maxBodyBytes
	if truncated {
		raw = raw[:maxBodyBytes]
	}

	if resp.StatusCode != http.StatusOK {
		detail := fmt.Sprintf("%d - %s", resp.StatusCode, string(raw))
		if truncated {
			detail += truncatedMarker
		}
		return Failure(FailureAPI, detail)
	}

	return parseCompletion(raw)
}

// parseCompletion decodes a 200 response body and extracts the first choice.
func parseCompletion(raw []byte) Outcome {
	var completion CompletionResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return Failure(FailureParse, fmt.Sprintf("failed to decode response: %v", err))
	}
	if len(completion.Choices) == 0 {
		return Failure(FailureParse, "no choices returned")
	}
	text := completion.Choices[0].Text
	if text == nil {
		return Failure(FailureParse, "first choice has no text")
	}
	return Success(strings.TrimSpace(*text))
}
