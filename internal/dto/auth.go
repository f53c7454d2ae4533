package dto

// ── 认证与开户模块 DTO ──

// SetupAdminRequest 开户时的首个管理员
type SetupAdminRequest struct {
	Name     string `json:"name"     binding:"omitempty,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

// SetupCompanyRequest 创建公司（含首个管理员）请求
type SetupCompanyRequest struct {
	Name  string            `json:"name"  binding:"required,min=1,max=100"`
	Admin SetupAdminRequest `json:"admin" binding:"required"`
}

// LoginRequest 管理员登录请求
// CompanyID 省略时按邮箱在全部公司中查找
type LoginRequest struct {
	CompanyID string `json:"companyId" binding:"omitempty"`
	Email     string `json:"email"     binding:"required"`
	Password  string `json:"password"  binding:"required"`
}

// TokenResponse 登录成功响应
type TokenResponse struct {
	Token     string `json:"token"`
	CompanyID string `json:"companyId"`
	AdminID   string `json:"adminId"`
}

// AdminResponse 管理员信息（不含凭证）
type AdminResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
