package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"letsfitgo/web/internal/content"
	"letsfitgo/web/internal/web"
)

// PageHandler 静态营销与法律页面
type PageHandler struct {
	site web.Site
	now  func() time.Time
}

// NewPageHandler 创建 PageHandler
func NewPageHandler(site web.Site) *PageHandler {
	return &PageHandler{site: site, now: time.Now}
}

type homeBody struct {
	Hero         interface{}
	Menu         []content.NavItem
	Benefits     []content.Step
	Notification interface{}
	Features     []content.Feature
	HowItWorks   []content.Step
}

type legalBody struct {
	LastUpdated string
	Sections    []content.Section
}

// Home 首页
// GET /
func (h *PageHandler) Home(c *gin.Context) {
	body := homeBody{
		Hero:         content.Hero,
		Menu:         content.Menu,
		Benefits:     content.Benefits,
		Notification: content.Notification,
		Features:     content.Features,
		HowItWorks:   content.HowItWorks,
	}
	c.HTML(http.StatusOK, web.TemplateHome, h.site.NewPage("/", "", "", h.now(), body))
}

// Privacy 隐私政策
// GET /privacy
func (h *PageHandler) Privacy(c *gin.Context) {
	now := h.now()
	body := legalBody{
		LastUpdated: now.Format("January 2, 2006"),
		Sections:    content.Privacy(h.site.SupportEmail),
	}
	c.HTML(http.StatusOK, web.TemplatePrivacy, h.site.NewPage(
		"/privacy",
		"Privacy Policy",
		"Privacy Policy for Let's Fit Go - Learn how we collect, use, and protect your fitness data.",
		now, body,
	))
}

// Terms 服务条款
// GET /terms
func (h *PageHandler) Terms(c *gin.Context) {
	now := h.now()
	body := legalBody{
		LastUpdated: now.Format("January 2, 2006"),
		Sections:    content.Terms(h.site.SupportEmail),
	}
	c.HTML(http.StatusOK, web.TemplateTerms, h.site.NewPage(
		"/terms",
		"Terms of Service",
		"Terms of Service for Let's Fit Go.",
		now, body,
	))
}

// NotFound 未匹配路由
func (h *PageHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, web.TemplateNotFound, h.site.NewPage(
		c.Request.URL.Path, "Page not found", "", h.now(), nil,
	))
}
