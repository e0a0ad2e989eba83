package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/chatbook-study-hub/internal/config"
)

func TestTokenBucketPassThrough(t *testing.T) {
	for name, cfg := range map[string]config.RateLimitConfig{
		"disabled":   {Enabled: false, Capacity: 1},
		"nil client": {Enabled: true, Capacity: 1},
	} {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			e.Use(NewTokenBucket(cfg, nil, nil))
			e.GET("/x", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
			for i := 0; i < 5; i++ {
				rec := httptest.NewRecorder()
				e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
				if rec.Code != http.StatusOK {
					t.Fatalf("request %d: status = %d", i, rec.Code)
				}
				if rec.Header().Get("X-RateLimit-Limit") != "" {
					t.Fatalf("pass-through set rate limit headers")
				}
			}
		})
	}
}

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/echo", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/echo")

	tests := map[string]string{
		"ip":       "rl:ip:10.0.0.7",
		"route":    "rl:route:POST /api/echo",
		"ip_route": "rl:ip:10.0.0.7:route:POST /api/echo",
		"unknown":  "rl:ip:10.0.0.7:route:POST /api/echo",
	}
	for strategy, want := range tests {
		cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: strategy}
		if got := buildRateKey(cfg, c); got != want {
			t.Errorf("%s: key = %q, want %q", strategy, got, want)
		}
	}
}

func TestParseLimiterResult(t *testing.T) {
	allowed, remaining, retry, ok := parseLimiterResult([]interface{}{int64(1), int64(59), int64(0)})
	if !ok || !allowed || remaining != 59 || retry != 0 {
		t.Errorf("allowed result = %v %d %d %v", allowed, remaining, retry, ok)
	}
	allowed, _, retry, ok = parseLimiterResult([]interface{}{"0", "0", "1500"})
	if !ok || allowed || retry != 1500 {
		t.Errorf("blocked result = %v %d %v", allowed, retry, ok)
	}
	if _, _, _, ok := parseLimiterResult("nope"); ok {
		t.Error("malformed result accepted")
	}
	if got := retryAfterSeconds(1500); got != 2 {
		t.Errorf("retryAfterSeconds(1500) = %d, want 2", got)
	}
	if got := retryAfterSeconds(-10); got != 0 {
		t.Errorf("retryAfterSeconds(-10) = %d, want 0", got)
	}
}
