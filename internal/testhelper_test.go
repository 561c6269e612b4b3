package internal_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiepack/internal"
)

// newRequest builds a GET request, carrying the jar as an aggregate cookie when non-nil.
func newRequest(jar internal.Jar, extra ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if jar != nil {
		req.AddCookie(&http.Cookie{Name: internal.DefaultCookieName, Value: internal.Encode(jar)})
	}
	for _, c := range extra {
		req.AddCookie(c)
	}
	return req
}

// serve runs the request through a default Packer wrapping fn.
func serve(t *testing.T, req *http.Request, fn http.HandlerFunc, opts ...internal.Option) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	internal.New(opts...).Handler(fn).ServeHTTP(rec, req)
	return rec
}

// aggregateJar asserts the response carries exactly one Set-Cookie, the
// aggregate, and returns its decoded jar.
func aggregateJar(t *testing.T, h http.Header) internal.Jar {
	t.Helper()
	return namedAggregateJar(t, h, internal.DefaultCookieName)
}

func namedAggregateJar(t *testing.T, h http.Header, name string) internal.Jar {
	t.Helper()

	require.Len(t, h.Values("Set-Cookie"), 1, "want exactly one Set-Cookie header")

	cookies := (&http.Response{Header: h}).Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, name, cookies[0].Name)

	jar, err := internal.Decode(cookies[0].Value)
	require.NoError(t, err)
	return jar
}

func renderPage(t *testing.T, location string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, internal.RedirectPage(location).Render(context.Background(), &buf))
	return buf.String()
}
