package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/translatable"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure RetryFetcher implements translatable.Fetcher at compile time.
var _ translatable.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries failed fetches of the wrapped Fetcher, waiting
// delays[i] before attempt i+2. Invalid input and context errors are
// returned immediately.
type RetryFetcher struct {
	next   translatable.Fetcher
	delays []time.Duration
	logger *slog.Logger
}

// NewRetryFetcher wraps next. A nil logger disables retry logging.
func NewRetryFetcher(next translatable.Fetcher, delays []time.Duration, logger *slog.Logger) *RetryFetcher {
	return &RetryFetcher{next: next, delays: delays, logger: logger}
}

// Fetch returns the first successful result or the last error.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := len(f.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if translatable.ErrorCode(err) == translatable.EINVALID || ctx.Err() != nil {
			return "", err
		}
		if attempt >= maxAttempts-1 {
			break
		}

		if f.logger != nil {
			f.logger.WarnContext(ctx, "retry fetch",
				"url", url,
				"attempt", attempt+2,
				"err", err,
			)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}

	return "", lastErr
}

// Close delegates to the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
