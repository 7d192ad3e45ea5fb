package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// newSecuredEngine mounts SecurityHeaders behind RequestID, as the API router
// does, with one article-like route and one that fails.
func newSecuredEngine(opt SecurityOptions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), SecurityHeaders(opt))
	r.GET("/api/articles/:article_id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"article": gin.H{"article_id": 1}})
	})
	r.DELETE("/api/comments/:comment_id", func(c *gin.Context) {
		abortJSON(c, http.StatusNotFound, "Couldn't find comment "+c.Param("comment_id"))
	})
	return r
}

func TestSecurityHeaders_APIDefaults(t *testing.T) {
	r := newSecuredEngine(SecurityOptions{EnablePolicy: true, HSTSMaxAge: 4320 * time.Hour})

	for _, tc := range []struct {
		method, path string
		status       int
	}{
		{http.MethodGet, "/api/articles/1", http.StatusOK},
		{http.MethodDelete, "/api/comments/999", http.StatusNotFound},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if w.Code != tc.status {
			t.Fatalf("%s %s = %d", tc.method, tc.path, w.Code)
		}

		h := w.Header()
		want := map[string]string{
			"X-Content-Type-Options":            "nosniff",
			"X-Frame-Options":                   "DENY",
			"Referrer-Policy":                   "no-referrer",
			"Permissions-Policy":                "geolocation=(), microphone=(), camera=(), payment=()",
			"X-Permitted-Cross-Domain-Policies": "none",
			"Access-Control-Expose-Headers":     "X-Request-ID",
		}
		for k, v := range want {
			if got := h.Get(k); got != v {
				t.Fatalf("%s %s: %s = %q, want %q", tc.method, tc.path, k, got, v)
			}
		}
		// JSON responses stay cacheable and HSTS is off unless configured.
		if h.Get("Cache-Control") != "" || h.Get("Strict-Transport-Security") != "" {
			t.Fatalf("%s %s: unexpected headers %#v", tc.method, tc.path, h)
		}
		if h.Get("X-Request-ID") == "" {
			t.Fatalf("%s %s: request id missing", tc.method, tc.path)
		}
	}
}

func TestSecurityHeaders_HSTSOnlyOverHTTPS(t *testing.T) {
	r := newSecuredEngine(SecurityOptions{EnableHSTS: true, HSTSMaxAge: 4320 * time.Hour, EnablePolicy: true})

	cases := []struct {
		name  string
		setup func(*http.Request)
		want  string
	}{
		{"plain http", func(*http.Request) {}, ""},
		{"tls", func(req *http.Request) { req.TLS = &tls.ConnectionState{} }, "max-age=15552000; includeSubDomains; preload"},
		{"proxy", func(req *http.Request) { req.Header.Set("X-Forwarded-Proto", "HTTPS") }, "max-age=15552000; includeSubDomains; preload"},
		{"proxy http", func(req *http.Request) { req.Header.Set("X-Forwarded-Proto", "http") }, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/articles/1", nil)
			tc.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if got := w.Header().Get("Strict-Transport-Security"); got != tc.want {
				t.Fatalf("HSTS = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSecurityHeaders_DefaultMaxAgeAndPolicyOff(t *testing.T) {
	r := newSecuredEngine(SecurityOptions{EnableHSTS: true})

	req := httptest.NewRequest(http.MethodGet, "/api/articles/1", nil)
	req.TLS = &tls.ConnectionState{}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Strict-Transport-Security"); got != "max-age=15552000; includeSubDomains; preload" {
		t.Fatalf("zero max age should fall back to 180 days, got %q", got)
	}
	if w.Header().Get("Permissions-Policy") != "" {
		t.Fatalf("policy headers sent while disabled")
	}
}

func TestSecurityHeaders_ExposeHeaderMerge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, tc := range []struct {
		existing, want string
	}{
		{"Retry-After", "Retry-After, X-Request-ID"},
		{"X-Request-ID, Retry-After", "X-Request-ID, Retry-After"},
	} {
		r := gin.New()
		r.Use(RequestID(), func(c *gin.Context) {
			c.Header("Access-Control-Expose-Headers", tc.existing)
			c.Next()
		}, SecurityHeaders(SecurityOptions{}))
		r.GET("/api/topics", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/topics", nil))
		if got := w.Header().Get("Access-Control-Expose-Headers"); got != tc.want {
			t.Fatalf("expose(%q) = %q, want %q", tc.existing, got, tc.want)
		}
	}
}

func TestIsHTTPS(t *testing.T) {
	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	if isHTTPS(plain) {
		t.Fatalf("plain HTTP reported as https")
	}
	viaTLS := httptest.NewRequest(http.MethodGet, "/", nil)
	viaTLS.TLS = &tls.ConnectionState{}
	if !isHTTPS(viaTLS) {
		t.Fatalf("TLS request should be https")
	}
}
