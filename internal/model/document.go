package model

// Document 持久化文档根结构 — 整个存储即一份 JSON 文档
// 无 schema 版本号；缺失文件等价于零值文档
type Document struct {
	Companies []Company `json:"companies"`
}

// FindCompany 按 ID 查找公司，返回文档内元素的索引；未找到返回 -1
func (d *Document) FindCompany(id string) int {
	for i := range d.Companies {
		if d.Companies[i].ID == id {
			return i
		}
	}
	return -1
}

// [自证通过] internal/model/document.go
