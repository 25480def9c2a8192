package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicDefaultModel is used when no model is configured.
const AnthropicDefaultModel = "claude-3-5-sonnet-20241022"

func init() {
	Register("anthropic", newAnthropicClient)
}

type anthropicClient struct {
	client anthropic.Client
	model  string
}

func newAnthropicClient(cfg Config) (Client, error) {
	model := cfg.Model
	if model == "" {
		model = AnthropicDefaultModel
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}

	return &anthropicClient{
		client: anthropic.NewClient(opts...),
		model:  model,
	}, nil
}

// Generate sends one message and concatenates the text blocks of the
// reply.
func (c *anthropicClient) Generate(ctx context.Context, req Request) (*Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	start := time.Now()
	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, c.wrapError(err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		switch content := block.AsAny().(type) {
		case anthropic.TextBlock:
			text.WriteString(content.Text)
		}
	}
	if text.Len() == 0 {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Text:      text.String(),
		Provider:  "anthropic",
		Model:     c.model,
		TokensIn:  tokenCount(int(message.Usage.InputTokens), req.Prompt),
		TokensOut: tokenCount(int(message.Usage.OutputTokens), text.String()),
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}

func (c *anthropicClient) wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return classifyContext("anthropic", err)
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return classifyHTTP("anthropic", apiErr.StatusCode, "request rejected", err)
	}

	return &ProviderError{Provider: "anthropic", Kind: KindUnknown, Message: "request failed", Err: err}
}
