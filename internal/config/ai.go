package config

import (
	"os"
	"time"
)

// AIConfig holds all AI-related configuration
type AIConfig struct {
	Provider  string `json:"provider"`
	APIKey    string `json:"-"` // Never serialize
	Model     string `json:"model"`
	BaseURL   string `json:"baseUrl"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		Provider:  getEnvOrDefault("IMPACT_AI_PROVIDER", "openai"),
		APIKey:    os.Getenv("IMPACT_AI_API_KEY"),
		Model:     os.Getenv("IMPACT_AI_MODEL"),
		BaseURL:   os.Getenv("IMPACT_AI_BASE_URL"),
		TimeoutMS: getEnvIntOrDefault("IMPACT_AI_TIMEOUT_MS", 30000),
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// Timeout returns the request timeout as a duration
func (c *AIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
