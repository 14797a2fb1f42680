package util

import "errors"

// 错误分类，控制器按 errors.Is 映射到 HTTP 状态码：
// 校验 400 / 未认证 401 / 无权限 403 / 不存在 404 / 邮箱冲突 409
var (
	ErrValidation       = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrEmailRegistered  = errors.New("email already registered")
)
