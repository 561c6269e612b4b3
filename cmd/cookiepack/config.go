package main

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrymomot/cookiepack"
	"github.com/dmitrymomot/cookiepack/pkg/cookie"
	"github.com/dmitrymomot/cookiepack/pkg/logger"
)

// Config is the serve command configuration. Values are layered: defaults,
// then the YAML file, then environment variables.
type Config struct {
	Address         string        `env:"COOKIEPACK_ADDRESS" yaml:"address"`
	Upstream        string        `env:"UPSTREAM_URL" yaml:"upstream"`
	ShutdownTimeout time.Duration `env:"COOKIEPACK_SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout"`
	Cookie          CookieConfig  `yaml:"cookie"`
	Log             logger.Config `yaml:"log"`
}

// CookieConfig describes the aggregate cookie.
type CookieConfig struct {
	Name         string `env:"COOKIEPACK_COOKIE_NAME" yaml:"name"`
	Domain       string `env:"COOKIEPACK_COOKIE_DOMAIN" yaml:"domain"`
	Path         string `env:"COOKIEPACK_COOKIE_PATH" yaml:"path"`
	SameSite     string `env:"COOKIEPACK_COOKIE_SAMESITE" yaml:"same_site"`
	MaxAge       int    `env:"COOKIEPACK_COOKIE_MAX_AGE" yaml:"max_age"`
	Secure       bool   `env:"COOKIEPACK_COOKIE_SECURE" yaml:"secure"`
	HTTPOnly     bool   `env:"COOKIEPACK_COOKIE_HTTP_ONLY" yaml:"http_only"`
	EvictExpired bool   `env:"COOKIEPACK_EVICT_EXPIRED" yaml:"evict_expired"`
}

var errNoUpstream = errors.New("upstream URL is required (UPSTREAM_URL or upstream in the config file)")

func defaultConfig() Config {
	return Config{
		Address:         ":8080",
		ShutdownTimeout: 30 * time.Second,
		Cookie: CookieConfig{
			Name:     cookiepack.DefaultCookieName,
			Path:     "/",
			SameSite: "lax",
			HTTPOnly: true,
		},
		Log: logger.Config{
			Level:  "info",
			Format: "json",
		},
	}
}

// upstreamURL validates and parses the upstream address.
func (c Config) upstreamURL() (*url.URL, error) {
	if c.Upstream == "" {
		return nil, errNoUpstream
	}
	u, err := url.Parse(c.Upstream)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid upstream URL %q: want http(s)://host", c.Upstream)
	}
	return u, nil
}

// packerOptions maps the cookie section onto Packer options.
func (c Config) packerOptions() []cookiepack.Option {
	opts := []cookiepack.Option{
		cookiepack.WithCookieName(c.Cookie.Name),
		cookiepack.WithCookieOptions(
			cookie.WithDomain(c.Cookie.Domain),
			cookie.WithPath(c.Cookie.Path),
			cookie.WithMaxAge(c.Cookie.MaxAge),
			cookie.WithSecure(c.Cookie.Secure),
			cookie.WithHTTPOnly(c.Cookie.HTTPOnly),
			cookie.WithSameSite(cookie.ParseSameSite(c.Cookie.SameSite)),
		),
	}
	if c.Cookie.EvictExpired {
		opts = append(opts, cookiepack.WithExpiredCookieEviction())
	}
	return opts
}
