package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (s *stubLimiter) CheckRateLimit(_ context.Context, key string, _ int, _ time.Duration) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allowed, s.err
}

func serve(r *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

// ── RequestID ──

func TestRequestID_Generated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString(requestIDKey)
		c.Status(http.StatusOK)
	})

	w := serve(r, http.MethodGet, "/", nil)
	if seen == "" {
		t.Fatal("应生成 request_id")
	}
	if w.Header().Get("X-Request-ID") != seen {
		t.Errorf("响应头应回写 request_id")
	}
}

func TestRequestID_Passthrough(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodGet, "/", map[string]string{"X-Request-ID": "abc-123"})
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("期望透传 abc-123，实际 %q", got)
	}

	w = serve(r, http.MethodGet, "/", map[string]string{"X-Request-ID": strings.Repeat("x", 100)})
	if got := w.Header().Get("X-Request-ID"); len(got) > requestIDMaxLen {
		t.Errorf("过长的 request_id 应被替换，实际长度 %d", len(got))
	}
}

// ── SecurityHeaders ──

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodGet, "/", nil)
	csp := w.Header().Get("Content-Security-Policy")
	if !strings.Contains(csp, "script-src 'self'") {
		t.Errorf("CSP 缺少 script-src: %q", csp)
	}
	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("缺少 X-Frame-Options")
	}
}

// ── CORS ──

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://letsfitgo.app/"}))
	r.GET("/api", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name       string
		method     string
		origin     string
		wantOrigin string
		wantStatus int
	}{
		{"允许的来源", http.MethodGet, "https://letsfitgo.app", "https://letsfitgo.app", http.StatusOK},
		{"未知来源", http.MethodGet, "https://evil.example", "", http.StatusOK},
		{"预检请求", http.MethodOptions, "https://letsfitgo.app", "https://letsfitgo.app", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.method, "/api", map[string]string{"Origin": tt.origin})
			if w.Code != tt.wantStatus {
				t.Errorf("状态码期望 %d，实际 %d", tt.wantStatus, w.Code)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Allow-Origin 期望 %q，实际 %q", tt.wantOrigin, got)
			}
		})
	}
}

// ── RateLimit ──

func rateLimitedEngine(limiter RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(RateLimit(limiter, 5, time.Minute, zap.NewNop()))
	r.GET("/invite/:token", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func TestRateLimit_NilLimiterAllows(t *testing.T) {
	w := serve(rateLimitedEngine(nil), http.MethodGet, "/invite/ABC123", nil)
	if w.Code != http.StatusOK {
		t.Errorf("未配置限流器时应放行，实际 %d", w.Code)
	}
}

func TestRateLimit_ErrorDegradesOpen(t *testing.T) {
	l := &stubLimiter{err: errors.New("redis down")}
	w := serve(rateLimitedEngine(l), http.MethodGet, "/invite/ABC123", nil)
	if w.Code != http.StatusOK {
		t.Errorf("限流器出错时应放行，实际 %d", w.Code)
	}
}

func TestRateLimit_KeyUsesRoutePattern(t *testing.T) {
	l := &stubLimiter{allowed: true}
	r := rateLimitedEngine(l)
	serve(r, http.MethodGet, "/invite/AAAAAA", nil)
	serve(r, http.MethodGet, "/invite/BBBBBB", nil)

	if len(l.keys) != 2 || l.keys[0] != l.keys[1] {
		t.Fatalf("不同邀请码应共享同一限流键，实际 %v", l.keys)
	}
	if !strings.HasSuffix(l.keys[0], ":/invite/:token") {
		t.Errorf("限流键应包含路由模板，实际 %q", l.keys[0])
	}
}

func TestRateLimit_Blocked(t *testing.T) {
	l := &stubLimiter{allowed: false}
	r := rateLimitedEngine(l)

	w := serve(r, http.MethodGet, "/invite/ABC123", map[string]string{"Accept": "application/json"})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("期望 429，实际 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"code":10004`) {
		t.Errorf("JSON 请求应返回统一错误结构，实际 %s", w.Body.String())
	}
	if w.Header().Get("Retry-After") != "60" {
		t.Errorf("Retry-After 期望 60，实际 %q", w.Header().Get("Retry-After"))
	}

	w = serve(r, http.MethodGet, "/invite/ABC123", map[string]string{"Accept": "text/html"})
	if w.Code != http.StatusTooManyRequests || strings.HasPrefix(w.Body.String(), "{") {
		t.Errorf("浏览器请求应返回纯文本，实际 %d %s", w.Code, w.Body.String())
	}
}

// ── Tracing ──

func TestTracing_InheritsTraceparent(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	r := gin.New()
	r.Use(Tracing())
	var got trace.SpanContext
	r.GET("/invite/:token", func(c *gin.Context) {
		got = trace.SpanContextFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	serve(r, http.MethodGet, "/invite/ABC123", map[string]string{
		"traceparent": "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
	})
	if got.TraceID().String() != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("应继承上游 trace id，实际 %s", got.TraceID())
	}
}
