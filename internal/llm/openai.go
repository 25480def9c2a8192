package llm

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIDefaultModel is the model the change-plan prompt was tuned on.
const OpenAIDefaultModel = "gpt-4.1-mini"

func init() {
	Register("openai", newOpenAIClient)
}

type openAIClient struct {
	client *openai.Client
	model  string
}

func newOpenAIClient(cfg Config) (Client, error) {
	model := cfg.Model
	if model == "" {
		model = OpenAIDefaultModel
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &openAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}, nil
}

// Generate sends one chat completion and returns the first choice.
func (c *openAIClient) Generate(ctx context.Context, req Request) (*Response, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}
	if req.Temperature > 0 {
		chatReq.Temperature = float32(req.Temperature)
	}
	if req.MaxTokens > 0 {
		chatReq.MaxTokens = req.MaxTokens
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, c.wrapError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}
	text := resp.Choices[0].Message.Content
	if text == "" {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Text:      text,
		Provider:  "openai",
		Model:     c.model,
		TokensIn:  tokenCount(resp.Usage.PromptTokens, req.Prompt),
		TokensOut: tokenCount(resp.Usage.CompletionTokens, text),
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}

func (c *openAIClient) wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return classifyContext("openai", err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = "request failed"
		}
		return classifyHTTP("openai", apiErr.HTTPStatusCode, message, err)
	}

	return &ProviderError{Provider: "openai", Kind: KindUnknown, Message: "request failed", Err: err}
}
