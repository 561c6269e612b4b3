package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiepack/pkg/cookie"
)

func TestManager_Cookie(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		c := cookie.New().Cookie("zappa", "token")

		assert.Equal(t, "zappa", c.Name)
		assert.Equal(t, "token", c.Value)
		assert.Equal(t, "/", c.Path)
		assert.Empty(t, c.Domain)
		assert.Zero(t, c.MaxAge)
		assert.True(t, c.HttpOnly)
		assert.False(t, c.Secure)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("options", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(
			cookie.WithDomain("example.com"),
			cookie.WithPath("/app"),
			cookie.WithMaxAge(60),
			cookie.WithSecure(true),
			cookie.WithHTTPOnly(false),
			cookie.WithSameSite(http.SameSiteStrictMode),
		)
		c := m.Cookie("a", "1")

		assert.Equal(t, "example.com", c.Domain)
		assert.Equal(t, "/app", c.Path)
		assert.Equal(t, 60, c.MaxAge)
		assert.True(t, c.Secure)
		assert.False(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	})

	t.Run("empty path keeps root", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "/", cookie.New(cookie.WithPath("")).Cookie("a", "1").Path)
	})

	t.Run("samesite none forces secure", func(t *testing.T) {
		t.Parallel()

		c := cookie.New(cookie.WithSameSite(http.SameSiteNoneMode)).Cookie("a", "1")
		assert.True(t, c.Secure)
	})
}

func TestManager_Header(t *testing.T) {
	t.Parallel()

	t.Run("serializes attributes", func(t *testing.T) {
		t.Parallel()

		v := cookie.New(cookie.WithMaxAge(10)).Header("zappa", "abc")

		assert.True(t, strings.HasPrefix(v, "zappa=abc"))
		assert.Contains(t, v, "Path=/")
		assert.Contains(t, v, "Max-Age=10")
		assert.Contains(t, v, "HttpOnly")
		assert.Contains(t, v, "SameSite=Lax")
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, cookie.New().Header("bad name", "x"))
	})
}

func TestManager_Set(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	h := http.Header{}

	require.True(t, m.Set(h, "a", "1"))
	require.False(t, m.Set(h, "bad;name", "2"))

	cookies := (&http.Response{Header: h}).Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "a", cookies[0].Name)
	assert.Equal(t, "1", cookies[0].Value)
}

func TestManager_Get(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := m.Get(r, "missing")
		assert.ErrorIs(t, err, cookie.ErrNotFound)
	})

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "a", Value: "1"})

		v, err := m.Get(r, "a")
		require.NoError(t, err)
		assert.Equal(t, "1", v)
	})
}

func TestManager_Strip(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "a", Value: "1"})
	r.AddCookie(&http.Cookie{Name: "zappa", Value: "token"})
	r.AddCookie(&http.Cookie{Name: "b", Value: "2"})

	cookie.New().Strip(r, "zappa")

	assert.Equal(t, "a=1; b=2", r.Header.Get("Cookie"))
}

func TestParseSameSite(t *testing.T) {
	t.Parallel()

	tests := map[string]http.SameSite{
		"lax":     http.SameSiteLaxMode,
		"Strict":  http.SameSiteStrictMode,
		" NONE ":  http.SameSiteNoneMode,
		"default": http.SameSiteDefaultMode,
		"bogus":   http.SameSiteDefaultMode,
		"":        http.SameSiteDefaultMode,
	}
	for in, want := range tests {
		assert.Equal(t, want, cookie.ParseSameSite(in), "input %q", in)
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"zappa", "", true},
		{"session", "abc123", true},
		{"session", "a b", true},
		{"bad name", "x", false},
		{"a;b", "x", false},
		{"", "x", false},
		{"q", `a"b`, false},
		{"semi", "a;b", false},
		{"uni", "привет", false},
	}
	for _, tt := range tests {
		err := cookie.Check(tt.name, tt.value)
		assert.Equal(t, tt.ok, err == nil, "Check(%q, %q) = %v", tt.name, tt.value, err)
	}
}
