package logger

import (
	"context"
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
)

const defaultFlushTimeout = 2 * time.Second

// ErrFlushTimeout is returned when buffered Sentry events were not delivered in time.
var ErrFlushTimeout = errors.New("logger: sentry flush timed out")

// Flush waits for buffered Sentry events until ctx is done, or two seconds
// without a deadline. It is a no-op when Sentry is not initialized, so it can
// be registered as a shutdown hook unconditionally.
func Flush(ctx context.Context) error {
	if sentry.CurrentHub().Client() == nil {
		return nil
	}

	timeout := defaultFlushTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if !sentry.Flush(timeout) {
		return ErrFlushTimeout
	}
	return nil
}
