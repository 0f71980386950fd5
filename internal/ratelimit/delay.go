package ratelimit

import (
	"context"
	"time"
)

// Delay is a constant pause between crawl batches. It does not adapt to
// throttling responses.
type Delay time.Duration

// Wait sleeps for the configured delay or until ctx is done.
func (d Delay) Wait(ctx context.Context) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(time.Duration(d))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Duration returns the delay as a time.Duration.
func (d Delay) Duration() time.Duration {
	return time.Duration(d)
}
