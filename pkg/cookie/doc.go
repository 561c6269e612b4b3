// Package cookie builds HTTP cookies from a shared attribute set.
//
// The Manager carries Path, Domain, Max-Age, Secure, HttpOnly and SameSite
// defaults and turns a name/value pair into an *http.Cookie or a ready-made
// Set-Cookie header line. It also reads and strips cookies on the request side.
//
// # Basic Usage
//
//	m := cookie.New(
//		cookie.WithSecure(true),
//		cookie.WithSameSite(http.SameSiteStrictMode),
//	)
//
//	value, err := m.Get(r, "zappa")
//	if errors.Is(err, cookie.ErrNotFound) {
//		// no cookie
//	}
//
//	m.Set(w.Header(), "zappa", token)
//
// # Configuration
//
//   - [WithDomain]: Set the cookie domain
//   - [WithPath]: Set the cookie path (default: "/")
//   - [WithMaxAge]: Set Max-Age in seconds (default: session cookie)
//   - [WithSecure]: Set the Secure flag (forced on for SameSite=None)
//   - [WithHTTPOnly]: Set the HttpOnly flag (default: true)
//   - [WithSameSite]: Set the SameSite attribute (default: Lax)
//
// Browsers cap a cookie at roughly [MaxSize] bytes.
package cookie
