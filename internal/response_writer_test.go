package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestWriter(w http.ResponseWriter) *ResponseWriter {
	return NewResponseWriter(w, New().NewExchange(context.Background(), nil))
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	rw := newTestWriter(w)

	rw.WriteHeader(http.StatusNotFound)

	if rw.Status() != http.StatusNotFound {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusNotFound)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !rw.Written() {
		t.Error("Written() = false, want true")
	}
	if got := len(w.Header().Values("Set-Cookie")); got != 1 {
		t.Errorf("Set-Cookie count = %d, want 1", got)
	}
}

func TestResponseWriter_WriteHeader_Redirect(t *testing.T) {
	tests := []struct {
		name         string
		location     string
		inputCode    int
		expectedCode int
	}{
		{"200 stays 200", "/next", http.StatusOK, http.StatusOK},
		{"302 with location becomes 200", "/next", http.StatusFound, http.StatusOK},
		{"301 with location becomes 200", "/next", http.StatusMovedPermanently, http.StatusOK},
		{"303 with location becomes 200", "/next", http.StatusSeeOther, http.StatusOK},
		{"201 with location becomes 200", "/items/1", http.StatusCreated, http.StatusOK},
		{"302 without location stays 302", "", http.StatusFound, http.StatusFound},
		{"404 without location stays 404", "", http.StatusNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			rw := newTestWriter(w)
			if tt.location != "" {
				rw.Header().Set("Location", tt.location)
			}

			rw.WriteHeader(tt.inputCode)

			// Status() returns the application's code
			if rw.Status() != tt.inputCode {
				t.Errorf("Status() = %d, want %d", rw.Status(), tt.inputCode)
			}
			if w.Code != tt.expectedCode {
				t.Errorf("underlying status = %d, want %d", w.Code, tt.expectedCode)
			}
		})
	}
}

func TestResponseWriter_WriteHeader_OnlyOnce(t *testing.T) {
	w := httptest.NewRecorder()
	rw := newTestWriter(w)

	rw.WriteHeader(http.StatusOK)
	rw.WriteHeader(http.StatusNotFound) // Should be ignored

	if rw.Status() != http.StatusOK {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusOK)
	}
	if w.Code != http.StatusOK {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := len(w.Header().Values("Set-Cookie")); got != 1 {
		t.Errorf("Set-Cookie count = %d, want 1", got)
	}
}

func TestResponseWriter_Write(t *testing.T) {
	w := httptest.NewRecorder()
	rw := newTestWriter(w)

	data := []byte("hello world")
	n, err := rw.Write(data)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if n != len(data) {
		t.Errorf("Write() = %d, want %d", n, len(data))
	}
	if rw.Size() != int64(len(data)) {
		t.Errorf("Size() = %d, want %d", rw.Size(), len(data))
	}
	if w.Code != http.StatusOK {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "hello world" {
		t.Errorf("body = %q, want %q", w.Body.String(), "hello world")
	}
	if got := len(w.Header().Values("Set-Cookie")); got != 1 {
		t.Errorf("Set-Cookie count = %d, want 1", got)
	}
}

func TestResponseWriter_Flush(t *testing.T) {
	w := httptest.NewRecorder()
	rw := newTestWriter(w)

	rw.Flush()

	if !w.Flushed {
		t.Error("underlying writer not flushed")
	}
	if !rw.Written() {
		t.Error("Written() = false after Flush, want true")
	}
	if got := len(w.Header().Values("Set-Cookie")); got != 1 {
		t.Errorf("Set-Cookie count = %d, want 1", got)
	}
}

func TestResponseWriter_Finish(t *testing.T) {
	t.Run("untouched response gets headers", func(t *testing.T) {
		w := httptest.NewRecorder()
		rw := newTestWriter(w)

		if err := rw.finish(); err != nil {
			t.Fatalf("finish() error: %v", err)
		}
		if w.Code != http.StatusOK {
			t.Errorf("underlying status = %d, want %d", w.Code, http.StatusOK)
		}
		if got := len(w.Header().Values("Set-Cookie")); got != 1 {
			t.Errorf("Set-Cookie count = %d, want 1", got)
		}
	})

	t.Run("redirect without body gets the page", func(t *testing.T) {
		w := httptest.NewRecorder()
		rw := newTestWriter(w)
		rw.Header().Set("Location", "/next")
		rw.WriteHeader(http.StatusFound)

		if err := rw.finish(); err != nil {
			t.Fatalf("finish() error: %v", err)
		}
		if w.Body.Len() == 0 {
			t.Error("body is empty, want redirect page")
		}
	})
}

func TestResponseWriter_Hijack_NotSupported(t *testing.T) {
	w := httptest.NewRecorder()
	rw := newTestWriter(w)

	_, _, err := rw.Hijack()
	if err != http.ErrNotSupported {
		t.Errorf("Hijack() error = %v, want %v", err, http.ErrNotSupported)
	}
	if rw.Written() {
		t.Error("Written() = true after failed Hijack, want false")
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	w := httptest.NewRecorder()
	rw := newTestWriter(w)

	if rw.Unwrap() != w {
		t.Error("Unwrap() did not return underlying writer")
	}
}
