package service

import "errors"

var (
	// ErrNotFound 目标记录不存在
	ErrNotFound = errors.New("record not found")
	// ErrValidation 输入校验失败：操作中止，状态不变
	ErrValidation = errors.New("validation failed")
)
