// Package llm provides the language-model clients behind the change plan
// generator: a provider registry with OpenAI, Anthropic and Gemini
// implementations, plus middleware for rate limiting and metrics.
package llm

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultMaxTokens caps generation output for providers that require an
// explicit limit.
const DefaultMaxTokens = 2048

// Config selects and configures one provider.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// Request is one text-generation call. System and Prompt map onto the
// provider's system and user messages.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response carries the generated text and the call metadata surfaced to
// the API.
type Response struct {
	Text      string
	Provider  string
	Model     string
	TokensIn  int
	TokensOut int
	LatencyMs int64
}

// Client generates free text from a prompt. Implementations must be safe
// for concurrent use.
type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// Factory builds a provider client from configuration.
type Factory func(cfg Config) (Client, error)

var factories = make(map[string]Factory)

// Register makes a provider available to New. Providers register
// themselves from init; a duplicate name is a programming error.
func Register(name string, factory Factory) {
	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("llm: provider %q already registered", name))
	}
	factories[name] = factory
}

// New builds the client selected by cfg.Provider. A missing API key is
// reported as ErrNotConfigured before any provider code runs.
func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	factory, ok := factories[strings.ToLower(cfg.Provider)]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)",
			ErrUnknownProvider, cfg.Provider, strings.Join(Providers(), ", "))
	}
	return factory(cfg)
}

// Providers lists the registered provider names in sorted order.
func Providers() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EstimateTokens approximates the token count of text for providers that
// do not report usage.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return (len(text) + 3) / 4
}

// tokenCount prefers the provider-reported count, estimating from text
// when the report is missing.
func tokenCount(reported int, text string) int {
	if reported > 0 {
		return reported
	}
	return EstimateTokens(text)
}
