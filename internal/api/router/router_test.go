package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"letsfitgo/web/config"
	"letsfitgo/web/internal/api/handler"
	"letsfitgo/web/internal/api/middleware"
	"letsfitgo/web/internal/model"
	"letsfitgo/web/internal/service"
	"letsfitgo/web/internal/web"
)

type stubClient struct{}

func (stubClient) FetchInvite(_ context.Context, _ string) *model.ChallengeInvite {
	return &model.ChallengeInvite{IsValid: true, ChallengeName: "30-Day Sprint"}
}

// denyLimiter 拒绝所有请求，并记录被检查的限流键
type denyLimiter struct {
	keys []string
}

func (d *denyLimiter) CheckRateLimit(_ context.Context, key string, _ int, _ time.Duration) (bool, error) {
	d.keys = append(d.keys, key)
	return false, nil
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return setupRouterWith(t, nil, nil)
}

func setupRouterWith(t *testing.T, limiter middleware.RateLimiter, trustedProxies []string) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		Server:    config.ServerConfig{SiteURL: "http://localhost:8080", CORS: config.CORSConfig{AllowOrigins: []string{"https://letsfitgo.app"}}},
		App:       config.AppConfig{Name: "Let's Fit Go", Scheme: "lfg", LearnMoreURL: "/"},
		RateLimit: config.RateLimitConfig{InviteLimit: 30, InviteWindow: time.Minute},
	}
	cfg.Server.TrustedProxies = trustedProxies
	tmpl, err := web.Templates()
	if err != nil {
		t.Fatalf("解析模板失败: %v", err)
	}
	h := handler.NewHandler(cfg, service.NewService(stubClient{}, zap.NewNop()), tmpl, zap.NewNop())
	return Setup(cfg, h, tmpl, limiter, zap.NewNop())
}

func get(r *gin.Engine, path string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestSetup_Routes(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/health", http.StatusOK, `"status":"ok"`},
		{"/", http.StatusOK, "How It Works"},
		{"/privacy", http.StatusOK, "Privacy Policy"},
		{"/terms", http.StatusOK, "Terms of Service"},
		{"/invite/ABC123", http.StatusOK, "30-Day Sprint"},
		{"/api/v1/invites/ABC123", http.StatusOK, `"challengeName":"30-Day Sprint"`},
		{"/static/deeplink.js", http.StatusOK, "autoOpen"},
		{"/nope", http.StatusNotFound, "Page not found"},
		{"/api/v1/nope", http.StatusNotFound, `"code":40400`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(r, tt.path, nil)
			if w.Code != tt.wantStatus {
				t.Fatalf("期望 %d，实际 %d", tt.wantStatus, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("响应缺少 %q", tt.wantBody)
			}
		})
	}
}

func TestSetup_GlobalHeaders(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/", nil)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("缺少 X-Request-ID")
	}
	if w.Header().Get("Content-Security-Policy") == "" {
		t.Error("缺少 Content-Security-Policy")
	}
}

func TestSetup_CORSOnlyOnAPI(t *testing.T) {
	r := setupRouter(t)
	origin := map[string]string{"Origin": "https://letsfitgo.app"}

	if got := get(r, "/api/v1/invites/ABC123", origin).Header().Get("Access-Control-Allow-Origin"); got != "https://letsfitgo.app" {
		t.Errorf("API 应返回 CORS 头，实际 %q", got)
	}
	if got := get(r, "/", origin).Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("页面不应返回 CORS 头，实际 %q", got)
	}
}

func TestSetup_CORSPreflight(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/invites/ABC123", nil)
	req.Header.Set("Origin", "https://letsfitgo.app")
	req.Header.Set("Access-Control-Request-Method", "GET")
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("预检期望 204，实际 %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://letsfitgo.app" {
		t.Errorf("预检应返回 Allow-Origin，实际 %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "Content-Type") {
		t.Errorf("预检应允许 Content-Type，实际 %q", got)
	}
}

func TestSetup_OpenNotRateLimited(t *testing.T) {
	limiter := &denyLimiter{}
	r := setupRouterWith(t, limiter, nil)

	if w := get(r, "/invite/ABC123", nil); w.Code != http.StatusTooManyRequests {
		t.Fatalf("邀请页应受限流，实际 %d", w.Code)
	}
	if w := get(r, "/api/v1/invites/ABC123", nil); w.Code != http.StatusTooManyRequests {
		t.Fatalf("邀请接口应受限流，实际 %d", w.Code)
	}

	for i := 0; i < 3; i++ {
		w := get(r, "/invite/ABC123/open", nil)
		if w.Code != http.StatusFound {
			t.Fatalf("第 %d 次手动打开期望 302，实际 %d", i+1, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "lfg://invite/ABC123" {
			t.Fatalf("Location 期望 lfg://invite/ABC123，实际 %q", loc)
		}
	}
	if len(limiter.keys) != 2 {
		t.Errorf("手动打开不应检查限流，实际检查 %d 次", len(limiter.keys))
	}
}

func TestSetup_ForwardedForIgnoredWithoutTrustedProxy(t *testing.T) {
	tests := []struct {
		name    string
		proxies []string
		wantKey string
	}{
		{"未配置受信代理", nil, "192.0.2.1:/invite/:token"},
		{"直连地址为受信代理", []string{"192.0.2.0/24"}, "203.0.113.9:/invite/:token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := &denyLimiter{}
			r := setupRouterWith(t, limiter, tt.proxies)

			// httptest 请求的 RemoteAddr 固定为 192.0.2.1:1234
			get(r, "/invite/ABC123", map[string]string{"X-Forwarded-For": "203.0.113.9"})

			if len(limiter.keys) != 1 || limiter.keys[0] != tt.wantKey {
				t.Errorf("限流键期望 %q，实际 %v", tt.wantKey, limiter.keys)
			}
		})
	}
}
