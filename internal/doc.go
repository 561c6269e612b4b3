// Package internal provides the core types and implementation for cookiepack.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/cookiepack" instead, which re-exports the public API.
//
// # Request cycle
//
// Packer.Handler drives one exchange per request:
//
//   - InterceptRequest decodes the aggregate cookie into a Jar and rewrites
//     the Cookie header so the application sees individual cookies.
//   - An Exchange seeded with the jar is stored in the request context and
//     wrapped around the http.ResponseWriter.
//   - On the first header write, Exchange.BeginResponse merges every
//     Set-Cookie the application emitted into the jar, replaces them with one
//     aggregate cookie and, for a non-200 response with a Location header,
//     switches to a 200 carrying a client-side redirect page.
//   - Exchange.Write passes body chunks through, or writes the redirect page
//     once and drops the application's chunks.
//
// # Wire format
//
// The aggregate cookie value is the base58 (Bitcoin alphabet) encoding of a
// UTF-8 JSON object mapping cookie names to values. See Encode and Decode.
package internal
