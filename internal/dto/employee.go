package dto

// ── 员工模块 DTO ──

// CreateEmployeeRequest 创建员工请求
// Descriptor 为识别端生成的人脸特征向量，后端不做解读
type CreateEmployeeRequest struct {
	Name       string    `json:"name"       binding:"omitempty,max=100"`
	Descriptor []float64 `json:"descriptor" binding:"omitempty"`
}

// UpdateEmployeeRequest 更新员工请求
// 指针字段为 nil 表示不修改；DepartmentID/ShiftID 传空串表示清除关联
type UpdateEmployeeRequest struct {
	Name         *string `json:"name"         binding:"omitempty,max=100"`
	DepartmentID *string `json:"departmentId"`
	ShiftID      *string `json:"shiftId"`
}

// EmployeeResponse 员工响应
type EmployeeResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Descriptor   []float64 `json:"descriptor"`
	DepartmentID string    `json:"departmentId,omitempty"`
	ShiftID      string    `json:"shiftId,omitempty"`
}
