package codegen

import (
	"context"
	"math/rand"
	"time"

	"github.com/mlehtin/storykit/internal/errors"
)

// retryPolicy is the backoff policy for management API fetches, kept as an
// explicit state machine so delay growth and terminal decisions are testable
// without a network.
type retryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration

	// jitter returns a value in [0,1); overridable in tests.
	jitter func() float64
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{
		MaxAttempts: 5,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    30 * time.Second,
		jitter:      rand.Float64,
	}
}

// decision is the state machine's verdict after a failed attempt.
type decision int

const (
	decisionRetry decision = iota
	decisionFatal
	decisionExhausted
)

// Decide classifies a failed attempt. attempt is 1-based.
func (p retryPolicy) Decide(attempt int, err error) decision {
	if !errors.IsRetryable(err) {
		return decisionFatal
	}
	if attempt >= p.MaxAttempts {
		return decisionExhausted
	}
	return decisionRetry
}

// Delay computes the sleep before the attempt following attempt (1-based):
// exponential growth from BaseDelay, capped at MaxDelay, plus up to 25% jitter.
func (p retryPolicy) Delay(attempt int) time.Duration {
	d := p.BaseDelay << (attempt - 1)
	if d > p.MaxDelay || d <= 0 {
		d = p.MaxDelay
	}
	j := p.jitter
	if j == nil {
		j = rand.Float64
	}
	return d + time.Duration(j()*0.25*float64(d))
}

// Run executes op under the policy. The sleep between attempts honors ctx
// cancellation. The returned error is the last attempt's error.
func (p retryPolicy) Run(ctx context.Context, op func(ctx context.Context) error) error {
	for attempt := 1; ; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		switch p.Decide(attempt, err) {
		case decisionFatal:
			logger.Error("Management API request failed with a non-retryable error",
				"attempt", attempt, "error", err)
			return err
		case decisionExhausted:
			logger.Error("Management API request failed, retries exhausted",
				"attempts", attempt, "error", err)
			return err
		}

		delay := p.Delay(attempt)
		logger.Warn("Management API request failed, retrying",
			"attempt", attempt, "max_attempts", p.MaxAttempts,
			"delay", delay, "error", err)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
