package llm

import (
	"context"

	"golang.org/x/time/rate"
)

// Middleware wraps a Client with a cross-cutting concern.
type Middleware func(Client) Client

// Chain applies middlewares so the first listed is outermost.
func Chain(client Client, middlewares ...Middleware) Client {
	for i := len(middlewares) - 1; i >= 0; i-- {
		client = middlewares[i](client)
	}
	return client
}

type rateLimitedClient struct {
	next    Client
	limiter *rate.Limiter
}

// RateLimit rejects generations beyond rps requests per second with the
// given burst. Rejected calls fail fast with ErrRateLimited instead of
// queueing.
func RateLimit(rps float64, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next Client) Client {
		return &rateLimitedClient{next: next, limiter: limiter}
	}
}

func (c *rateLimitedClient) Generate(ctx context.Context, req Request) (*Response, error) {
	if !c.limiter.Allow() {
		return nil, ErrRateLimited
	}
	return c.next.Generate(ctx, req)
}
