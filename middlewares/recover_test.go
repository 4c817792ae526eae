package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/previz/site/internal"
	"github.com/previz/site/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      []middlewares.RecoverOption
		wantStack bool
	}{
		{"with stack", nil, true},
		{"without stack", []middlewares.RecoverOption{middlewares.WithRecoverDisablePrintStack()}, false},
		{"small stack", []middlewares.RecoverOption{middlewares.WithRecoverStackSize(64)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &syncBuffer{}
			var captured *middlewares.PanicError
			app := internal.New(
				internal.WithCustomLogger(newLogger(buf)),
				internal.WithErrorHandler(func(c internal.Context, err error) error {
					pe, ok := middlewares.AsPanicError(err)
					require.True(t, ok)
					captured = pe
					return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
				}),
				internal.WithMiddleware(middlewares.Recover(tt.opts...)),
				internal.WithHandlers(routes(func(r internal.Router) {
					r.POST("/api/send-email", func(c internal.Context) error {
						panic("template exploded")
					})
				})),
			)

			rec := do(app, httptest.NewRequest(http.MethodPost, "/api/send-email", nil))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			require.NotNil(t, captured)
			assert.Equal(t, "template exploded", captured.Value)
			assert.Equal(t, "panic: template exploded", captured.Error())
			if tt.wantStack {
				assert.NotEmpty(t, captured.Stack)
			} else {
				assert.Nil(t, captured.Stack)
			}

			records := buf.records(t)
			require.Len(t, records, 1)
			assert.Equal(t, "panic recovered", records[0]["msg"])
			assert.Equal(t, "/api/send-email", records[0]["path"])
			_, hasStack := records[0]["stack"]
			assert.Equal(t, tt.wantStack, hasStack)
		})
	}
}

func TestRecover_NoPanic(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithMiddleware(middlewares.Recover()),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error { return c.String(http.StatusOK, "fine") })
		})),
	)

	rec := do(app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fine", rec.Body.String())
}

func TestPanicError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("nil mailer")
	var err error = &middlewares.PanicError{Value: cause}
	assert.ErrorIs(t, err, cause)

	err = &middlewares.PanicError{Value: 42}
	assert.NoError(t, errors.Unwrap(err))
}
