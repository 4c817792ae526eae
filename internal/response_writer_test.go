package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name       string
		htmx       bool
		code       int
		wantWire   int
		wantStatus int
	}{
		{"plain 422", false, http.StatusUnprocessableEntity, http.StatusUnprocessableEntity, http.StatusUnprocessableEntity},
		{"htmx 200", true, http.StatusOK, http.StatusOK, http.StatusOK},
		{"htmx 422 sent as 200", true, http.StatusUnprocessableEntity, http.StatusOK, http.StatusUnprocessableEntity},
		{"htmx 500 sent as 200", true, http.StatusInternalServerError, http.StatusOK, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rw := NewResponseWriter(rec, tt.htmx)

			rw.WriteHeader(tt.code)

			if rec.Code != tt.wantWire {
				t.Errorf("wire status = %d, want %d", rec.Code, tt.wantWire)
			}
			if rw.Status() != tt.wantStatus {
				t.Errorf("Status() = %d, want %d", rw.Status(), tt.wantStatus)
			}
			if !rw.Written() {
				t.Error("Written() = false, want true")
			}
		})
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec, false)

	rw.WriteHeader(http.StatusTooManyRequests)
	rw.WriteHeader(http.StatusOK)

	if rw.Status() != http.StatusTooManyRequests {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusTooManyRequests)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("wire status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
}

func TestResponseWriter_WriteImplicitHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec, false)

	if rw.Written() {
		t.Fatal("Written() = true before any write")
	}

	n, err := rw.Write([]byte(`{"ok":true}`))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 11 || rw.Size() != 11 {
		t.Errorf("n = %d, Size() = %d, want 11", n, rw.Size())
	}
	if rec.Code != http.StatusOK || rw.Status() != http.StatusOK {
		t.Errorf("status = %d/%d, want 200", rec.Code, rw.Status())
	}

	_, _ = rw.Write([]byte("\n"))
	if rw.Size() != 12 {
		t.Errorf("Size() = %d, want 12", rw.Size())
	}
}

func TestResponseWriter_OnBeforeWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec, false)

	var order []string
	rw.OnBeforeWrite(func() {
		order = append(order, "first")
		rw.Header().Set("X-Request-Id", "abc")
	})
	rw.OnBeforeWrite(func() { order = append(order, "second") })

	_, _ = rw.Write([]byte("body"))
	rw.WriteHeader(http.StatusInternalServerError)
	_, _ = rw.Write([]byte("more"))

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("hooks ran as %v, want [first second]", order)
	}
	if got := rec.Header().Get("X-Request-Id"); got != "abc" {
		t.Errorf("header set in hook = %q, want %q", got, "abc")
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec, false)

	if rw.Unwrap() != rec {
		t.Error("Unwrap() did not return the wrapped writer")
	}

	rw.Flush()
	if !rec.Flushed {
		t.Error("Flush() did not reach the recorder")
	}

	if _, _, err := rw.Hijack(); err != http.ErrNotSupported {
		t.Errorf("Hijack() error = %v, want ErrNotSupported", err)
	}
}
