package llm

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors shared across providers.
var (
	// ErrNotConfigured marks a missing provider credential. The plan
	// feature stays disabled until one is set.
	ErrNotConfigured = errors.New("llm provider is not configured: missing API key")
	// ErrUnknownProvider marks a provider name with no registered factory.
	ErrUnknownProvider = errors.New("unknown llm provider")
	// ErrEmptyResponse marks a provider reply with no usable text.
	ErrEmptyResponse = errors.New("empty response from llm provider")
	// ErrRateLimited marks a generation rejected by the local rate
	// limiter before reaching the provider.
	ErrRateLimited = errors.New("plan generation rate limit exceeded")
)

// ErrorKind buckets provider failures for transport mapping.
type ErrorKind string

const (
	KindAuth       ErrorKind = "auth"
	KindRateLimit  ErrorKind = "rate_limit"
	KindBadRequest ErrorKind = "bad_request"
	KindServer     ErrorKind = "server"
	KindTimeout    ErrorKind = "timeout"
	KindCanceled   ErrorKind = "canceled"
	KindUnknown    ErrorKind = "unknown"
)

// ProviderError wraps a provider failure with its classification.
type ProviderError struct {
	Provider   string
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s provider error (%s, status %d): %s", e.Provider, e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s provider error (%s): %s", e.Provider, e.Kind, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// classifyHTTP maps a provider API status code onto an ErrorKind.
func classifyHTTP(provider string, status int, message string, err error) *ProviderError {
	kind := KindUnknown
	switch {
	case status == 401 || status == 403:
		kind = KindAuth
	case status == 429:
		kind = KindRateLimit
	case status >= 400 && status < 500:
		kind = KindBadRequest
	case status >= 500:
		kind = KindServer
	}
	return &ProviderError{Provider: provider, Kind: kind, StatusCode: status, Message: message, Err: err}
}

// classifyContext maps context cancellation and deadline errors onto a
// ProviderError.
func classifyContext(provider string, err error) *ProviderError {
	kind := KindCanceled
	message := "request canceled"
	if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
		message = "request timed out"
	}
	return &ProviderError{Provider: provider, Kind: kind, Message: message, Err: err}
}
