package book

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrNoCopiesAvailable 没有可借副本
	ErrNoCopiesAvailable = apperrors.New(apperrors.ErrCodeNoCopiesAvailable, "没有可借的副本")
)
