package dto

import "github.com/elisam1/officattend/internal/model"

// ── 公司模块 DTO ──

// CompanyResponse 公司详情响应 — 管理员列表剥离凭证字段
type CompanyResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Admins      []AdminResponse          `json:"admins"`
	Employees   []EmployeeResponse       `json:"employees"`
	Attendance  []model.AttendanceRecord `json:"attendance"`
	Departments []model.Department       `json:"departments"`
	Shifts      []model.Shift            `json:"shifts"`
	Settings    model.Settings           `json:"settings"`
}

// ScheduleRequest 时刻表字段
type ScheduleRequest struct {
	CheckInEnd    string `json:"checkInEnd"    binding:"required"`
	CheckOutStart string `json:"checkOutStart" binding:"required"`
}

// UpdateSettingsRequest 更新公司设置请求（浅合并：仅覆盖给出的字段）
type UpdateSettingsRequest struct {
	Schedule *ScheduleRequest `json:"schedule" binding:"omitempty"`
}
