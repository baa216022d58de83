package retry

import (
	"context"
	"time"

	"adsgateway-service/internal/pkg/apierror"
)

// SleepFunc waits for d or until ctx is done. Injected so tests run
// without real sleeps.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Policy bounds retries around upstream calls. Only errors marked
// retryable by the taxonomy are retried; everything else propagates on
// the first failure. Delay doubles after every failed attempt.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Sleep       SleepFunc
}

// Default mirrors the gateway's configured baseline: 3 attempts, 500ms
// base delay.
func Default() Policy {
	return Policy{MaxAttempts: 3, BaseDelay: 500 * time.Millisecond}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Do runs fn up to MaxAttempts times. It returns the last error when all
// attempts fail, or immediately on a non-retryable error or cancelled
// context.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var err error
	delay := p.BaseDelay
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if !apierror.IsRetryable(err) || attempt == attempts {
			return err
		}
		if serr := sleep(ctx, delay); serr != nil {
			return apierror.Wrap(apierror.KindUnavailable, "retry interrupted", serr)
		}
		delay *= 2
	}
	return err
}
