package model

import "strings"

// Admin 管理员 — 邮箱全存储唯一（大小写不敏感）
// Password 为历史文档遗留的明文口令，首次登录成功后升级为 bcrypt 哈希并清空
type Admin struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Password     string `json:"password,omitempty"`
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// [自证通过] internal/model/admin.go
