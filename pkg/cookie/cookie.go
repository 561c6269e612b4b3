package cookie

import (
	"errors"
	"net/http"
	"strings"
)

// MaxSize is the per-cookie size most browsers accept (name, value and attributes).
const MaxSize = 4096

// ErrNotFound is returned when the request carries no cookie with the given name.
var ErrNotFound = errors.New("cookie: not found")

// Manager builds cookies with a shared set of attributes.
type Manager struct {
	domain   string
	path     string
	maxAge   int
	secure   bool
	httpOnly bool
	sameSite http.SameSite
}

// Option configures the Manager.
type Option func(*Manager)

// New creates a cookie Manager with the given options.
func New(opts ...Option) *Manager {
	m := &Manager{
		path:     "/",
		httpOnly: true,
		sameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithDomain sets the cookie domain.
func WithDomain(domain string) Option {
	return func(m *Manager) {
		m.domain = domain
	}
}

// WithPath sets the cookie path.
func WithPath(path string) Option {
	return func(m *Manager) {
		if path != "" {
			m.path = path
		}
	}
}

// WithMaxAge sets the Max-Age attribute in seconds.
// Zero (the default) produces a session cookie.
func WithMaxAge(seconds int) Option {
	return func(m *Manager) {
		m.maxAge = seconds
	}
}

// WithSecure sets the Secure flag.
func WithSecure(secure bool) Option {
	return func(m *Manager) {
		m.secure = secure
	}
}

// WithHTTPOnly sets the HttpOnly flag.
func WithHTTPOnly(httpOnly bool) Option {
	return func(m *Manager) {
		m.httpOnly = httpOnly
	}
}

// WithSameSite sets the SameSite attribute.
func WithSameSite(ss http.SameSite) Option {
	return func(m *Manager) {
		m.sameSite = ss
	}
}

// ParseSameSite converts "lax", "strict", "none" or "default" (case-insensitive)
// to an http.SameSite. Unknown values map to http.SameSiteDefaultMode.
func ParseSameSite(s string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteDefaultMode
	}
}

// Check reports an error when name or value would be altered or dropped on
// the way through a Cookie or Set-Cookie header.
func Check(name, value string) error {
	return (&http.Cookie{Name: name, Value: value}).Valid()
}

// Get returns a plain cookie value.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Cookie creates a cookie with the manager's attributes.
// SameSite=None without Secure is rejected by browsers, so Secure is forced on.
func (m *Manager) Cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     m.path,
		Domain:   m.domain,
		MaxAge:   m.maxAge,
		Secure:   m.secure || m.sameSite == http.SameSiteNoneMode,
		HttpOnly: m.httpOnly,
		SameSite: m.sameSite,
	}
}

// Header returns the Set-Cookie header value for name and value.
// It is empty when name is not a valid cookie name.
func (m *Manager) Header(name, value string) string {
	return m.Cookie(name, value).String()
}

// Set adds a Set-Cookie header to the response header set.
// It reports false when the cookie could not be serialized.
func (m *Manager) Set(h http.Header, name, value string) bool {
	v := m.Header(name, value)
	if v == "" {
		return false
	}
	h.Add("Set-Cookie", v)
	return true
}

// Strip removes the named cookie from the request's Cookie header, keeping the rest.
func (m *Manager) Strip(r *http.Request, name string) {
	cookies := r.Cookies()
	r.Header.Del("Cookie")
	for _, c := range cookies {
		if c.Name == name {
			continue
		}
		r.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value, Quoted: c.Quoted})
	}
}
