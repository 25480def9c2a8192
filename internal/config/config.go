package config

import (
	"os"
	"strconv"
)

// Config holds server configuration loaded from the environment
type Config struct {
	Port      string
	PlanRPS   float64
	PlanBurst int
}

// Load reads server configuration from environment variables
func Load() *Config {
	return &Config{
		Port:      getEnvOrDefault("PORT", "8080"),
		PlanRPS:   getEnvFloatOrDefault("IMPACT_PLAN_RPS", 1),
		PlanBurst: getEnvIntOrDefault("IMPACT_PLAN_BURST", 3),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
