// Package cookiepack is HTTP middleware for applications that sit behind an
// intermediary passing only a single cookie per request and response, such
// as some API gateways.
//
// Every cookie the application sets is packed into one aggregate cookie
// (named "zappa" by default). On the next request the aggregate is unpacked
// and the application sees its individual cookies in the Cookie header again,
// so it can use ordinary multi-cookie code.
//
// # Quick Start
//
//	packer := cookiepack.New(
//	    cookiepack.WithLogger(log),
//	)
//
//	http.ListenAndServe(":8080", packer.Handler(app))
//
// Or with chi:
//
//	r := chi.NewRouter()
//	r.Use(cookiepack.Middleware())
//
// # Merge semantics
//
// The jar for a response starts with the cookies unpacked from the request.
// Each Set-Cookie the application emits overwrites or adds its name; when
// several name the same cookie, the last one wins. Individual Set-Cookie
// headers never reach the client: exactly one aggregate Set-Cookie is sent,
// even when the jar is empty.
//
// An aggregate cookie that cannot be decoded is treated as no cookies at all.
//
// # Redirects
//
// Browsers following a redirect do not always keep the Set-Cookie headers of
// the 3xx response where the application layer can persist them. When a
// response has a status other than 200 and a Location header, the status is
// changed to 200 and the body is replaced by a small page that redirects on
// the client side (meta refresh, script and a fallback link). The
// application's own body is discarded no matter how many chunks it writes.
//
//	cookiepack.New(
//	    cookiepack.WithRedirectPage(func(location string) templ.Component {
//	        return views.Redirect(location)
//	    }),
//	)
//
// # Wire format
//
// The aggregate value is the base58 encoding of a UTF-8 JSON object mapping
// cookie names to values:
//
//	token := cookiepack.Encode(cookiepack.Jar{"session": "abc"})
//	jar, err := cookiepack.Decode(token)
//
// # Accessing the jar
//
// Handlers can read the unpacked cookies from the request context:
//
//	jar, ok := cookiepack.JarFromContext(r.Context())
//
// Use JarSizeExtractor with pkg/logger to add the jar size to request logs.
//
// # Concurrency
//
// A Packer holds configuration only. All per-request state lives in an
// Exchange created for each request, so one Packer serves concurrent
// requests safely.
package cookiepack
