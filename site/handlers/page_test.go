package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		contains []string
		excludes []string
	}{
		{
			name:     "default",
			target:   "/",
			contains: []string{"<title>Previz Website</title>", `data-index="0"`, `id="toast" class="toast" hidden`},
			excludes: []string{"toast-success"},
		},
		{
			name:     "after redirect",
			target:   "/?enquiry=sent",
			contains: []string{"toast toast-success", "Thank you — your enquiry was sent. Our team will call you shortly."},
		},
		{
			name:     "hero clip",
			target:   "/?clip=4",
			contains: []string{`data-index="1"`, "previz-video-source@main/2.mp4"},
		},
		{
			name:     "open clip",
			target:   "/?play=2",
			contains: []string{`<h4 id="modal-title">Showreel 3</h4>`},
		},
		{
			name:     "play out of range",
			target:   "/?play=9",
			contains: []string{`<h4 id="modal-title"></h4>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			newApp(&mockSubmitter{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			body := rec.Body.String()
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	t.Run("page", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		newApp(&mockSubmitter{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `<p class="error-code">404</p>`)
		assert.Contains(t, rec.Body.String(), "The page you&#39;re looking for doesn&#39;t exist.")
	})

	t.Run("api", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		newApp(&mockSubmitter{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"The page you're looking for doesn't exist."}`, rec.Body.String())
	})
}
