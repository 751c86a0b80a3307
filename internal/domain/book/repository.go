package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 所有方法都会加入context中携带的事务
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// LockByID 悲观锁查询图书(SELECT ... FOR UPDATE)
	// 借出/归还时锁定图书行,防止并发修改副本数
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateCopies 原子更新可借副本数
	// delta为正数表示归还,负数表示借出
	// 更新后副本数会小于0时返回ErrNoCopiesAvailable
	UpdateCopies(ctx context.Context, id uint, delta int) error

	// List 按登记顺序返回全部图书
	List(ctx context.Context) ([]*Book, error)
}
