package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// GeminiDefaultModel is used when no model is configured.
const GeminiDefaultModel = "gemini-2.0-flash-exp"

func init() {
	Register("gemini", newGeminiClient)
}

type geminiClient struct {
	client *genai.Client
	model  string
}

func newGeminiClient(cfg Config) (Client, error) {
	model := cfg.Model
	if model == "" {
		model = GeminiDefaultModel
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{client: client, model: model}, nil
}

// Generate sends one content-generation request. Gemini has no separate
// system role on this path, so the system prompt is prepended to the
// user prompt.
func (c *geminiClient) Generate(ctx context.Context, req Request) (*Response, error) {
	prompt := req.Prompt
	if req.System != "" {
		prompt = fmt.Sprintf("System: %s\n\nUser: %s", req.System, req.Prompt)
	}

	config := &genai.GenerateContentConfig{}
	if req.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, config)
	if err != nil {
		return nil, c.wrapError(err)
	}

	text := resp.Text()
	if text == "" {
		return nil, ErrEmptyResponse
	}

	tokensIn, tokensOut := 0, 0
	if resp.UsageMetadata != nil {
		tokensIn = int(resp.UsageMetadata.PromptTokenCount)
		tokensOut = int(resp.UsageMetadata.CandidatesTokenCount)
	}

	return &Response{
		Text:      text,
		Provider:  "gemini",
		Model:     c.model,
		TokensIn:  tokenCount(tokensIn, prompt),
		TokensOut: tokenCount(tokensOut, text),
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}

func (c *geminiClient) wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return classifyContext("gemini", err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" && len(apiErr.Errors) > 0 {
			message = apiErr.Errors[0].Message
		}
		return classifyHTTP("gemini", apiErr.Code, message, err)
	}

	return &ProviderError{Provider: "gemini", Kind: KindUnknown, Message: "request failed", Err: err}
}
