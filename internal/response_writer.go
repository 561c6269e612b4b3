package internal

import (
	"bufio"
	"net"
	"net/http"
)

// ResponseWriter wraps http.ResponseWriter to route the response through an
// Exchange. The first WriteHeader, Write or Flush rewrites the headers and
// status; body bytes then pass through Exchange.Write.
type ResponseWriter struct {
	http.ResponseWriter
	ex          *Exchange
	status      int
	size        int64
	wroteHeader bool
}

// NewResponseWriter creates a new ResponseWriter.
func NewResponseWriter(w http.ResponseWriter, ex *Exchange) *ResponseWriter {
	return &ResponseWriter{
		ResponseWriter: w,
		ex:             ex,
		status:         http.StatusOK,
	}
}

// WriteHeader sends the response header with the status chosen by the Exchange.
// Informational 1xx codes other than 101 are forwarded untouched.
func (w *ResponseWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	if code >= 100 && code <= 199 && code != http.StatusSwitchingProtocols {
		w.ResponseWriter.WriteHeader(code)
		return
	}

	w.wroteHeader = true
	w.status = code
	w.ResponseWriter.WriteHeader(w.ex.BeginResponse(code, w.ResponseWriter.Header()))
}

// Write writes the data to the connection as part of an HTTP reply.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ex.Write(w.ResponseWriter, b)
	w.size += int64(n)
	return n, err
}

// Status returns the status code the application asked for.
func (w *ResponseWriter) Status() int {
	return w.status
}

// Size returns the number of body bytes accepted from the application.
func (w *ResponseWriter) Size() int64 {
	return w.size
}

// Written returns true if the response header has been written.
func (w *ResponseWriter) Written() bool {
	return w.wroteHeader
}

// Flush implements the http.Flusher interface.
func (w *ResponseWriter) Flush() {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack implements the http.Hijacker interface.
// A hijacked connection bypasses cookie packing.
func (w *ResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		conn, rw, err := hijacker.Hijack()
		if err == nil {
			w.wroteHeader = true
		}
		return conn, rw, err
	}
	return nil, nil, http.ErrNotSupported
}

// Unwrap returns the underlying ResponseWriter.
// This allows http.ResponseController to reach the original writer.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// finish completes a response the application left untouched and writes any
// pending redirect page.
func (w *ResponseWriter) finish() error {
	if !w.Written() {
		w.WriteHeader(http.StatusOK)
	}
	return w.ex.Finish(w.ResponseWriter)
}
