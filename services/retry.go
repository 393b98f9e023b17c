// services/retry.go - Bounded retry with fixed backoff
package services

import (
	"context"
	"fmt"
	"log"
	"time"
)

// RetryPolicy retries an operation a bounded number of times with a fixed
// delay between attempts. Tests inject a zero Backoff.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultRetryPolicy matches the profile-creation path: a freshly signed-up
// auth user may not be visible to the data store yet.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 3, Backoff: time.Second}

// Do runs fn until it succeeds, the attempt budget is exhausted, or the
// context is cancelled. The last error is returned.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if attempt < attempts {
			log.Printf("retry %d/%d failed: %v", attempt, attempts, lastErr)
			if p.Backoff > 0 {
				select {
				case <-time.After(p.Backoff):
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	}

	return fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
