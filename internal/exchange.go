package internal

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/cookiepack/pkg/cookie"
)

// Exchange is the response-phase state of a single request/response cycle.
// BeginResponse rewrites the outgoing headers once; Write then enforces the
// redirect substitution for every body chunk. An Exchange must not be shared
// between requests.
//
// BeginResponse, Write and Finish belong to the goroutine writing the
// response. Jar and JarLen may be called from any goroutine.
type Exchange struct {
	packer   *Packer
	ctx      context.Context
	jar      Jar    // replaced, never mutated in place, once the exchange is created
	redirect []byte // substitute body; nil unless a Location header was found
	mu       sync.Mutex
	jarLen   atomic.Int64
	begun    bool
	flushed  bool
}

// Jar returns a copy of the exchange's current cookies.
func (ex *Exchange) Jar() Jar {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	return ex.jar.Clone()
}

// JarLen returns the number of cookies in the exchange's jar.
func (ex *Exchange) JarLen() int {
	return int(ex.jarLen.Load())
}

func (ex *Exchange) setJar(j Jar) {
	ex.mu.Lock()
	ex.jar = j
	ex.mu.Unlock()
	ex.jarLen.Store(int64(len(j)))
}

// Redirecting reports whether the response body is being replaced by the
// redirect page.
func (ex *Exchange) Redirecting() bool {
	return ex.redirect != nil
}

// BeginResponse merges the application's Set-Cookie headers into the jar,
// replaces them with the single aggregate cookie and applies the redirect
// rule. It edits h in place and returns the status to send.
// Only the first call has an effect; later calls return status unchanged.
func (ex *Exchange) BeginResponse(status int, h http.Header) int {
	if ex.begun {
		return status
	}
	ex.begun = true

	p := ex.packer
	// Only this goroutine replaces ex.jar, so reading it here needs no lock.
	jar := ex.jar.Clone()
	for _, line := range h.Values("Set-Cookie") {
		c, err := http.ParseSetCookie(line)
		if err != nil {
			p.logger.WarnContext(ex.ctx, "skipping malformed Set-Cookie header",
				slog.String("header", line),
				slog.Any("error", err),
			)
			continue
		}
		if p.evictExpired && ex.expired(c) {
			jar.Delete(c.Name)
			continue
		}
		jar.Set(c.Name, c.Value)
	}
	h.Del("Set-Cookie")
	ex.setJar(jar)

	token := Encode(jar)
	if !p.cookies.Set(h, p.name, token) {
		p.logger.ErrorContext(ex.ctx, "aggregate cookie could not be serialized",
			slog.String("cookie", p.name),
		)
	} else if size := len(h.Get("Set-Cookie")); size > cookie.MaxSize {
		p.logger.WarnContext(ex.ctx, "aggregate cookie exceeds browser size limit",
			slog.String("cookie", p.name),
			slog.Int("size", size),
			slog.Int("cookies", jar.Len()),
		)
	}

	if status == http.StatusOK {
		return status
	}
	location := h.Get("Location")
	if location == "" {
		return status
	}

	body, err := renderRedirect(ex.ctx, p.redirectPage, location)
	if err != nil {
		p.logger.ErrorContext(ex.ctx, "failed to render redirect page",
			slog.String("location", location),
			slog.Any("error", err),
		)
		return status
	}

	p.logger.DebugContext(ex.ctx, "replacing cookie-setting redirect with client-side redirect",
		slog.Int("status", status),
		slog.String("location", location),
	)

	ex.redirect = body
	h.Del("Content-Encoding")
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	return http.StatusOK
}

// Write writes p to w, or under a redirect substitution writes the redirect
// page on the first call only. Suppressed chunks are reported as fully
// written so the application keeps going.
func (ex *Exchange) Write(w io.Writer, p []byte) (int, error) {
	if ex.redirect == nil {
		return w.Write(p)
	}
	if !ex.flushed {
		ex.flushed = true
		if _, err := w.Write(ex.redirect); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// Finish writes the redirect page if the application never wrote a body.
func (ex *Exchange) Finish(w io.Writer) error {
	if ex.redirect == nil || ex.flushed {
		return nil
	}
	ex.flushed = true
	_, err := w.Write(ex.redirect)
	return err
}

func (ex *Exchange) expired(c *http.Cookie) bool {
	if c.MaxAge < 0 {
		return true
	}
	return !c.Expires.IsZero() && c.Expires.Before(ex.packer.now())
}
