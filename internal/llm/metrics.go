package llm

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "impactindex_plan_generations_total",
		Help: "Plan generation calls by provider and outcome.",
	}, []string{"provider", "outcome"})

	generationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "impactindex_plan_generation_duration_seconds",
		Help:    "Plan generation latency by provider.",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})

	generationTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "impactindex_plan_tokens_total",
		Help: "Tokens exchanged with the provider by direction.",
	}, []string{"provider", "direction"})
)

type metricsClient struct {
	next     Client
	provider string
}

// Metrics records call counts, latency and token usage for each
// generation under the given provider label.
func Metrics(provider string) Middleware {
	return func(next Client) Client {
		return &metricsClient{next: next, provider: provider}
	}
}

func (c *metricsClient) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := c.next.Generate(ctx, req)
	generationDuration.WithLabelValues(c.provider).Observe(time.Since(start).Seconds())

	if err != nil {
		generationsTotal.WithLabelValues(c.provider, "error").Inc()
		return nil, err
	}

	generationsTotal.WithLabelValues(c.provider, "success").Inc()
	generationTokens.WithLabelValues(c.provider, "in").Add(float64(resp.TokensIn))
	generationTokens.WithLabelValues(c.provider, "out").Add(float64(resp.TokensOut))
	return resp, nil
}
