package cookiepack

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/cookiepack/internal"
	"github.com/dmitrymomot/cookiepack/pkg/cookie"
	"github.com/dmitrymomot/cookiepack/pkg/logger"
)

// Type aliases - public API
type (
	// Packer packs all cookies of the wrapped handler into one aggregate cookie.
	// It is immutable after creation and safe for concurrent use.
	Packer = internal.Packer

	// Exchange is the response-phase state of one request/response cycle.
	Exchange = internal.Exchange

	// Jar maps cookie names to values for one exchange.
	Jar = internal.Jar

	// Option configures a Packer.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// RedirectPageFunc builds the page served in place of a cookie-setting redirect.
	RedirectPageFunc = internal.RedirectPageFunc

	// ResponseWriter routes a response through an Exchange.
	ResponseWriter = internal.ResponseWriter

	// CodecError reports a failure to encode or decode an aggregate cookie token.
	CodecError = internal.CodecError

	// CookieOption configures the attributes of the aggregate cookie.
	CookieOption = cookie.Option

	// ContextExtractor extracts a slog attribute from context.
	ContextExtractor = logger.ContextExtractor
)

// DefaultCookieName is the name of the aggregate cookie.
const DefaultCookieName = internal.DefaultCookieName

// MaxTokenLength is the longest aggregate token Decode accepts.
const MaxTokenLength = internal.MaxTokenLength

// Codec errors.
var (
	ErrEmptyToken     = internal.ErrEmptyToken
	ErrInvalidToken   = internal.ErrInvalidToken
	ErrInvalidPayload = internal.ErrInvalidPayload
)

// Constructors

// New creates a Packer with the given options.
//
// Example:
//
//	packer := cookiepack.New(
//	    cookiepack.WithLogger(log),
//	    cookiepack.WithCookieOptions(cookie.WithSecure(true)),
//	)
//
//	http.ListenAndServe(":8080", packer.Handler(app))
func New(opts ...Option) *Packer {
	return internal.New(opts...)
}

// Middleware returns a Packer as a func(http.Handler) http.Handler, ready for
// chi's Use or any compatible router.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(cookiepack.Middleware())
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	return internal.New(opts...).Handler
}

// Run serves handler and blocks until SIGINT/SIGTERM, then shuts down gracefully.
func Run(handler http.Handler, opts ...RunOption) error {
	return internal.Run(handler, opts...)
}

// Codec

// Encode packs the jar into an aggregate cookie token.
func Encode(j Jar) string {
	return internal.Encode(j)
}

// Decode unpacks an aggregate cookie token. Failures are *CodecError.
func Decode(token string) (Jar, error) {
	return internal.Decode(token)
}

// IsCodecError returns true if the error is a CodecError.
func IsCodecError(err error) bool {
	return internal.IsCodecError(err)
}

// AsCodecError extracts the CodecError from an error if present.
func AsCodecError(err error) (*CodecError, bool) {
	return internal.AsCodecError(err)
}

// RedirectPage is the default page served in place of a cookie-setting redirect.
func RedirectPage(location string) templ.Component {
	return internal.RedirectPage(location)
}

// Context helpers

// JarFromContext returns a copy of the cookies unpacked for the current request.
func JarFromContext(ctx context.Context) (Jar, bool) {
	return internal.JarFromContext(ctx)
}

// ExchangeFromContext returns the Exchange of the current request.
func ExchangeFromContext(ctx context.Context) (*Exchange, bool) {
	return internal.ExchangeFromContext(ctx)
}

// JarSizeExtractor returns a ContextExtractor adding "cookie_jar_size" to logs.
func JarSizeExtractor() ContextExtractor {
	return internal.JarSizeExtractor()
}

// Packer options

// WithCookieName sets the aggregate cookie name. Defaults to "zappa".
func WithCookieName(name string) Option {
	return internal.WithCookieName(name)
}

// WithCookieOptions sets the attributes of the aggregate cookie.
func WithCookieOptions(opts ...CookieOption) Option {
	return internal.WithCookieOptions(opts...)
}

// WithLogger sets the logger. If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithSkip sets a predicate for requests that bypass packing.
func WithSkip(fn func(r *http.Request) bool) Option {
	return internal.WithSkip(fn)
}

// WithExpiredCookieEviction drops cookies the application expires from the jar.
func WithExpiredCookieEviction() Option {
	return internal.WithExpiredCookieEviction()
}

// WithRedirectPage replaces the page served for cookie-setting redirects.
func WithRedirectPage(fn RedirectPageFunc) Option {
	return internal.WithRedirectPage(fn)
}

// Run options

// Address sets the HTTP server address. Defaults to ":8080".
func Address(addr string) RunOption {
	return internal.Address(addr)
}

// Logger sets the server logger. If nil, logging is disabled.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the timeout for graceful shutdown. Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// ShutdownHook registers a cleanup function to run after the server stops.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets a custom base context for signal handling.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}
