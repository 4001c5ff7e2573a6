package router

import (
	"html/template"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"letsfitgo/web/config"
	"letsfitgo/web/internal/api/handler"
	"letsfitgo/web/internal/api/middleware"
	"letsfitgo/web/internal/web"
	"letsfitgo/web/pkg/response"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时限流中间件降级放行
func Setup(cfg *config.Config, h *handler.Handler, tmpl *template.Template, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	// 只有受信代理的 X-Forwarded-For 参与 ClientIP 计算，限流键不可被客户端伪造
	if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		logger.Error("受信代理配置无效，忽略 X-Forwarded-For", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}

	// ── 全局中间件 ──
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("请求处理 panic", zap.Any("recovered", recovered), zap.String("request_id", handler.RequestID(c)))
		response.InternalError(c)
		c.Abort()
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.Tracing())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())

	rateLimit := middleware.RateLimit(limiter, cfg.RateLimit.InviteLimit, cfg.RateLimit.InviteWindow, logger)

	// ── 静态资源 ──
	r.StaticFS("/static", web.StaticFS())

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── 营销与法律页面 ──
	r.GET("/", h.Page.Home)
	r.GET("/privacy", h.Page.Privacy)
	r.GET("/terms", h.Page.Terms)

	// ── 邀请落地页 ──
	// 手动打开不查询邀请，每次点击都应跳转，不计入限流
	r.GET("/invite/:token", rateLimit, h.Invite.Page)
	r.GET("/invite/:token/open", h.Invite.Open)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	{
		v1.GET("/invites/:token", rateLimit, h.Invite.Resolve)
		// 预检请求需要命中路由，分组中间件才会执行；CORS 中间件直接以 204 结束
		v1.OPTIONS("/*path", func(c *gin.Context) {})
	}

	// ── 未匹配路由 ──
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			response.NotFound(c, "Not found")
			return
		}
		h.Page.NotFound(c)
	})

	return r
}
