package routerhandlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/arbor/router"
)

func TestSecurityHeaders(t *testing.T) {
	serve := func(t *testing.T, cfg SecurityHeadersConfig) *httptest.ResponseRecorder {
		t.Helper()

		mw, err := SecurityHeaders(cfg)
		require.NoError(t, err)

		r := router.New()
		require.NoError(t, r.Use("/", mw))
		require.NoError(t, r.Get("/", func(c *router.Context, _ func()) {
			c.Writer.WriteHeader(http.StatusOK)
		}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("zero config emits the baseline set", func(t *testing.T) {
		w := serve(t, SecurityHeadersConfig{})
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
		assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
		assert.Empty(t, w.Header().Get("Content-Security-Policy"))
	})

	t.Run("same-origin framing", func(t *testing.T) {
		w := serve(t, SecurityHeadersConfig{Framing: "SAMEORIGIN"})
		assert.Equal(t, "SAMEORIGIN", w.Header().Get("X-Frame-Options"))
	})

	t.Run("content sniffing can be kept", func(t *testing.T) {
		w := serve(t, SecurityHeadersConfig{KeepContentSniffing: true})
		assert.Empty(t, w.Header().Get("X-Content-Type-Options"))
	})

	t.Run("hsts duration rounds down to whole seconds", func(t *testing.T) {
		w := serve(t, SecurityHeadersConfig{HSTS: 90*time.Minute + 500*time.Millisecond})
		assert.Equal(t, "max-age=5400", w.Header().Get("Strict-Transport-Security"))
	})

	t.Run("hsts covers subdomains on request", func(t *testing.T) {
		w := serve(t, SecurityHeadersConfig{HSTS: time.Hour, HSTSSubDomains: true})
		assert.Equal(t, "max-age=3600; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
	})

	t.Run("custom referrer policy and csp", func(t *testing.T) {
		w := serve(t, SecurityHeadersConfig{Referrer: "no-referrer", CSP: "default-src 'self'"})
		assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"))
		assert.Equal(t, "default-src 'self'", w.Header().Get("Content-Security-Policy"))
	})

	t.Run("rejects unknown framing values", func(t *testing.T) {
		_, err := SecurityHeaders(SecurityHeadersConfig{Framing: "ALLOW-ALL"})
		assert.ErrorIs(t, err, ErrBadFrameOption)
	})
}
