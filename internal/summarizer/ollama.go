package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/utafrali/reviewhub/pkg/httpclient"
)

// OllamaClient generates review summaries by calling an Ollama chat endpoint.
type OllamaClient struct {
	http    *httpclient.Client
	baseURL string
	model   string
	logger  *slog.Logger
}

// Config holds Ollama client configuration.
type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewOllamaClient creates a client for the Ollama chat API. Generation is
// attempted exactly once; a failed call surfaces to the caller rather than
// being retried, since a retry would multiply an already slow inference.
func NewOllamaClient(cfg Config, logger *slog.Logger) *OllamaClient {
	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = cfg.Timeout
	httpCfg.MaxRetries = 0

	return &OllamaClient{
		http:    httpclient.New(httpCfg),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		logger:  logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}

// BuildPrompt renders the summarization prompt from review texts, one
// bullet per review.
func BuildPrompt(reviewTexts []string) string {
	var b strings.Builder
	b.WriteString("Summarize the following product reviews into a short, clear, and honest summary:\n\n")
	for _, text := range reviewTexts {
		b.WriteString("- ")
		b.WriteString(text)
		b.WriteString("\n")
	}
	b.WriteString("\nReturn a concise and useful summary.")
	return b.String()
}

// noReviewsText is returned for an empty input instead of calling the model.
const noReviewsText = "No reviews available."

// Summarize sends the review texts to the model and returns the generated
// summary. An empty model response is an error, never a valid summary.
func (c *OllamaClient) Summarize(ctx context.Context, reviewTexts []string) (string, error) {
	if len(reviewTexts) == 0 {
		return noReviewsText, nil
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: BuildPrompt(reviewTexts)},
		},
		Stream: false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Post(ctx, c.baseURL+"/api/chat", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("call ollama: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", httpclient.ParseResponseError(resp, "ollama")
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}

	summary := strings.TrimSpace(chatResp.Message.Content)
	if summary == "" {
		return "", fmt.Errorf("ollama returned an empty summary for model %q", c.model)
	}

	c.logger.DebugContext(ctx, "summary generated",
		slog.String("model", c.model),
		slog.Int("reviews", len(reviewTexts)),
		slog.Duration("duration", time.Since(start)),
	)

	return summary, nil
}

// Ping checks that the Ollama endpoint is reachable. Used as a non-critical
// health check.
func (c *OllamaClient) Ping(ctx context.Context) error {
	resp, err := c.http.Get(ctx, c.baseURL+"/api/tags")
	if err != nil {
		return fmt.Errorf("ping ollama: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != 200 {
		return fmt.Errorf("ping ollama: unexpected status %d", resp.StatusCode)
	}
	return nil
}
