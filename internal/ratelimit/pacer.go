package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer spaces successive provider calls. It is a pacing control honoring informal
// provider rate limits, not a retry or backoff mechanism.
//
//go:generate mockgen -source=pacer.go -destination=../mocks/pacer.go -package=mocks -mock_names=Pacer=MockPacer
type Pacer interface {
	// Wait blocks until the next call is allowed or the context is canceled
	Wait(ctx context.Context) error
}

// tokenBucketPacer implements Pacer with a token bucket
type tokenBucketPacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a token-bucket pacer refilling at requestsPerSecond.
// Burst is fixed at 1 so calls are evenly spaced.
func NewPacer(requestsPerSecond float64) Pacer {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 10
	}
	return &tokenBucketPacer{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

func (p *tokenBucketPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// NopPacer returns a pacer that never waits. Used in tests so pacing stays
// observable without sleeping.
func NopPacer() Pacer {
	return &nopPacer{}
}

type nopPacer struct{}

func (p *nopPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}
