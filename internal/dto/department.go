package dto

// ── 部门模块 DTO ──

// CreateDepartmentRequest 创建部门请求
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"omitempty,max=100"`
}

// DepartmentResponse 部门响应
type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
