package member

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 会员领域错误定义
var (
	// ErrMemberNotFound 会员不存在
	ErrMemberNotFound = apperrors.New(apperrors.ErrCodeMemberNotFound, "会员不存在")

	// ErrEmailDuplicate 邮箱已被注册
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "邮箱已被注册")

	// ErrCodeDuplicate 会员编号冲突
	ErrCodeDuplicate = apperrors.New(apperrors.ErrCodeCodeDuplicate, "会员编号已存在")
)
