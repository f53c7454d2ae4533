package errors

import "errors"

// ErrRecordNotFound 存储层未找到记录（文档中不存在对应实体）
var ErrRecordNotFound = errors.New("记录不存在")
