package internal

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/cookiepack/pkg/logger"
)

// exchangeKey is the context key for the request's Exchange.
type exchangeKey struct{}

// ExchangeFromContext returns the Exchange of the current request, if the
// request went through Packer.Handler.
func ExchangeFromContext(ctx context.Context) (*Exchange, bool) {
	ex, ok := ctx.Value(exchangeKey{}).(*Exchange)
	return ex, ok && ex != nil
}

// JarFromContext returns a copy of the cookies unpacked for the current request.
func JarFromContext(ctx context.Context) (Jar, bool) {
	ex, ok := ExchangeFromContext(ctx)
	if !ok {
		return nil, false
	}
	return ex.Jar(), true
}

// JarSizeExtractor returns a ContextExtractor that adds "cookie_jar_size"
// to log entries of packed requests. It is safe to log from any goroutine.
func JarSizeExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		ex, ok := ExchangeFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.Int("cookie_jar_size", ex.JarLen()), true
	}
}
