package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultMaxRetries = 5
	DefaultRetryDelay = 2 * time.Second
)

// CallWithRetry invokes operation up to maxRetries times with a fixed delay
// between attempts. It is used both around single LLM calls and around whole
// call-then-validate sequences, so a schema failure also triggers a fresh
// generation. After exhausting the budget the last error is wrapped in a
// message citing the attempt count.
func CallWithRetry[T any](operation func() (T, error), maxRetries int, retryDelay time.Duration) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		result, err := operation()
		if err == nil {
			return result, nil
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Int("maxRetries", maxRetries).Msg("API call attempt failed")

		if attempt < maxRetries {
			time.Sleep(retryDelay)
		}
	}

	log.Error().Int("maxRetries", maxRetries).Err(lastErr).Msg("All retry attempts failed")
	return zero, fmt.Errorf("failed to process after %d attempts: %w", maxRetries, lastErr)
}
