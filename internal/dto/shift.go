package dto

import "github.com/elisam1/officattend/internal/model"

// ── 班次模块 DTO ──

// CreateShiftRequest 创建班次请求
// Schedule 省略时使用系统默认时刻表
type CreateShiftRequest struct {
	Name     string           `json:"name"     binding:"omitempty,max=100"`
	Schedule *ScheduleRequest `json:"schedule" binding:"omitempty"`
}

// ShiftResponse 班次响应
type ShiftResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Schedule model.Schedule `json:"schedule"`
}
