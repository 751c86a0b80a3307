package issue

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 借阅领域错误定义
var (
	// ErrIssueNotFound 借阅记录不存在
	ErrIssueNotFound = apperrors.New(apperrors.ErrCodeIssueNotFound, "借阅记录不存在")

	// ErrAlreadyReturned 借阅已归还
	ErrAlreadyReturned = apperrors.New(apperrors.ErrCodeInvalidIssueStatus, "该借阅已归还")

	// ErrInvalidStatusTransition 非法的状态转换
	ErrInvalidStatusTransition = apperrors.New(apperrors.ErrCodeInvalidIssueStatus, "借阅状态不允许此操作")
)
