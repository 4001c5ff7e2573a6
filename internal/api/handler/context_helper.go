package handler

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey 与 middleware.RequestID 写入上下文时使用的键一致
const RequestIDKey = "request_id"

// RequestID 从 Gin 上下文中提取请求 ID，未设置时返回空串
func RequestID(c *gin.Context) string {
	v, exists := c.Get(RequestIDKey)
	if !exists {
		return ""
	}
	s, _ := v.(string)
	return s
}
