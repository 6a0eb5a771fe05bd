package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	detector := NewSuspiciousActivityDetector()
	middleware := AuthMiddleware(apiKey, NewTrustedProxies(nil), detector)

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, "/api/v1/pool", http.StatusOK},
		{"Invalid API Key", "wrong-key", "/api/v1/pool", http.StatusUnauthorized},
		{"Missing API Key", "", "/api/v1/pool", http.StatusUnauthorized},
		{"Key prefix is not enough", "secret", "/api/v1/pool", http.StatusUnauthorized},
		{"Public Path - Healthz", "", "/healthz", http.StatusOK},
		{"Public Path - Version", "", "/version", http.StatusOK},
		{"Public Path - Metrics", "", "/metrics", http.StatusOK},
		{"Event stream needs a key", "", "/api/v1/events", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := AuthMiddleware("k", NewTrustedProxies(nil), detector)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/v1/pool", nil)
		req.RemoteAddr = "10.1.1.1:5555"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.1.1.1"])
}

func TestTrustedProxies_ClientIP(t *testing.T) {
	proxies := NewTrustedProxies([]string{"10.0.0.1", "172.16.0.0/12", "not-an-ip", " "})

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{"direct client", "203.0.113.9:4000", "", "203.0.113.9"},
		{"untrusted peer cannot spoof", "203.0.113.9:4000", "1.2.3.4", "203.0.113.9"},
		{"trusted single proxy", "10.0.0.1:4000", "198.51.100.7", "198.51.100.7"},
		{"trusted CIDR uses rightmost hop", "172.20.3.4:4000", "1.1.1.1, 198.51.100.8", "198.51.100.8"},
		{"trusted proxy without header", "10.0.0.1:4000", "", "10.0.0.1"},
		{"unparseable remote addr", "garbage", "", "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, proxies.ClientIP(req))
		})
	}
}

func TestSuspiciousActivityDetector_WindowReset(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	detector := NewSuspiciousActivityDetector()
	detector.now = func() time.Time { return now }
	detector.lastResetTime = now

	for i := 0; i < RateLimitRequests; i++ {
		assert.True(t, detector.RecordRequest("1.2.3.4"))
	}
	assert.False(t, detector.RecordRequest("1.2.3.4"))

	now = now.Add(RateLimitWindow + time.Second)
	assert.True(t, detector.RecordRequest("1.2.3.4"), "counts reset after the window")
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/", strings.NewReader("0123456789abcdef")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/", strings.NewReader("0123")))
	assert.Equal(t, http.StatusOK, rec.Code)
}
