package internal

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cookiepack/pkg/cookie"
)

// DefaultCookieName is the name of the aggregate cookie.
const DefaultCookieName = "zappa"

// Option configures a Packer.
type Option func(*Packer)

// WithCookieName sets the aggregate cookie name.
// Empty names are ignored.
func WithCookieName(name string) Option {
	return func(p *Packer) {
		if name != "" {
			p.name = name
		}
	}
}

// WithCookieOptions sets the attributes of the aggregate cookie.
//
// Example:
//
//	cookiepack.New(
//	    cookiepack.WithCookieOptions(
//	        cookie.WithSecure(true),
//	        cookie.WithMaxAge(86400),
//	    ),
//	)
func WithCookieOptions(opts ...cookie.Option) Option {
	return func(p *Packer) {
		p.cookieOpts = append(p.cookieOpts, opts...)
	}
}

// WithLogger sets the logger used for codec and Set-Cookie parse failures.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(p *Packer) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithSkip sets a predicate for requests that bypass packing entirely,
// such as health checks.
func WithSkip(fn func(r *http.Request) bool) Option {
	return func(p *Packer) {
		p.skip = fn
	}
}

// WithExpiredCookieEviction removes a cookie from the jar when the application
// expires it (Max-Age <= 0 or an Expires date in the past) instead of storing
// the expiring value.
func WithExpiredCookieEviction() Option {
	return func(p *Packer) {
		p.evictExpired = true
	}
}

// WithRedirectPage replaces the page served for cookie-setting redirects.
func WithRedirectPage(fn RedirectPageFunc) Option {
	return func(p *Packer) {
		if fn != nil {
			p.redirectPage = fn
		}
	}
}
