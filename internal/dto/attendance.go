package dto

// ── 考勤模块 DTO ──

// RecordAttendanceRequest 记录考勤事件请求
// Ts 为毫秒时间戳，省略时取服务器当前时间
type RecordAttendanceRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Type       string `json:"type"       binding:"required,oneof=in out"`
	Ts         *int64 `json:"ts"         binding:"omitempty"`
}

// AttendanceRangeRequest 考勤记录范围查询参数
type AttendanceRangeRequest struct {
	Start string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End   string `form:"end"   binding:"omitempty,datetime=2006-01-02"`
}

// CloseDayRequest 日终结算请求
type CloseDayRequest struct {
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// CloseDayResponse 日终结算结果
type CloseDayResponse struct {
	Date          string `json:"date"`
	CreatedAbsent int    `json:"createdAbsent"` // 新建的缺勤记录数
	MarkedAbsent  int    `json:"markedAbsent"`  // 既有记录被标记缺勤数
}

// AttendanceRecordResponse 考勤记录响应
type AttendanceRecordResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	Date         string `json:"date"`
	CheckIn      *int64 `json:"checkIn"`
	CheckOut     *int64 `json:"checkOut"`
	Late         bool   `json:"late"`
	EarlyLeave   bool   `json:"earlyLeave"`
	Absent       bool   `json:"absent"`
}
