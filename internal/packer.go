package internal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/cookiepack/pkg/cookie"
	"github.com/dmitrymomot/cookiepack/pkg/logger"
)

// Packer packs all cookies of the wrapped application into one aggregate
// cookie and unpacks it again on the next request.
// It holds configuration only and is safe for concurrent use; per-request
// state lives in an Exchange.
type Packer struct {
	logger       *slog.Logger
	cookies      *cookie.Manager
	skip         func(r *http.Request) bool
	redirectPage RedirectPageFunc
	now          func() time.Time
	name         string
	cookieOpts   []cookie.Option
	evictExpired bool
}

// New creates a Packer with the given options.
func New(opts ...Option) *Packer {
	p := &Packer{
		name:         DefaultCookieName,
		logger:       logger.NewNope(),
		redirectPage: RedirectPage,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := cookie.Check(p.name, ""); err != nil {
		p.logger.Warn("invalid aggregate cookie name, using default",
			slog.String("cookie", p.name),
			slog.String("default", DefaultCookieName),
			slog.Any("error", err),
		)
		p.name = DefaultCookieName
	}
	p.cookies = cookie.New(p.cookieOpts...)
	return p
}

// CookieName returns the aggregate cookie name.
func (p *Packer) CookieName() string {
	return p.name
}

// InterceptRequest unpacks the aggregate cookie of r.
// When the aggregate is present, the returned request is a clone whose Cookie
// header carries the individual cookies instead of the aggregate. An
// undecodable aggregate is dropped and yields an empty jar. Without an
// aggregate, r is returned as is.
// Jar entries that a Cookie header cannot carry unchanged stay in the jar but
// are not added to the request.
func (p *Packer) InterceptRequest(r *http.Request) (*http.Request, Jar) {
	token, err := p.cookies.Get(r, p.name)
	if err != nil {
		if !errors.Is(err, cookie.ErrNotFound) {
			p.logger.WarnContext(r.Context(), "failed to read aggregate cookie",
				slog.String("cookie", p.name),
				slog.Any("error", err),
			)
		}
		return r, Jar{}
	}

	jar, err := Decode(token)
	if err != nil {
		p.logger.WarnContext(r.Context(), "aggregate cookie rejected",
			slog.String("cookie", p.name),
			slog.Any("error", err),
		)
		r = r.Clone(r.Context())
		p.cookies.Strip(r, p.name)
		return r, Jar{}
	}

	r = r.Clone(r.Context())
	r.Header.Del("Cookie")
	for _, name := range jar.Names() {
		if err := cookie.Check(name, jar[name]); err != nil {
			p.logger.WarnContext(r.Context(), "skipping packed cookie the request cannot carry",
				slog.String("name", name),
				slog.Any("error", err),
			)
			continue
		}
		r.AddCookie(&http.Cookie{Name: name, Value: jar[name]})
	}

	return r, jar
}

// NewExchange starts the response phase for one request seeded with a copy
// of jar.
func (p *Packer) NewExchange(ctx context.Context, jar Jar) *Exchange {
	seed := Jar{}
	seed.Merge(jar)

	ex := &Exchange{packer: p, ctx: ctx}
	ex.setJar(seed)
	return ex
}

// Handler wraps next so it sees individual cookies while the client only
// ever receives the aggregate cookie.
func (p *Packer) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p.skip != nil && p.skip(r) {
			next.ServeHTTP(w, r)
			return
		}

		r, jar := p.InterceptRequest(r)
		ex := p.NewExchange(r.Context(), jar)
		ctx := context.WithValue(r.Context(), exchangeKey{}, ex)
		ex.ctx = ctx

		rw := NewResponseWriter(w, ex)
		next.ServeHTTP(rw, r.WithContext(ctx))

		if err := rw.finish(); err != nil {
			p.logger.ErrorContext(ctx, "failed to complete packed response", slog.Any("error", err))
			return
		}

		p.logger.DebugContext(ctx, "packed response",
			slog.Int("status", rw.Status()),
			slog.Int64("size", rw.Size()),
			slog.Bool("redirect_page", ex.Redirecting()),
			slog.Int("cookies", ex.JarLen()),
		)
	})
}
