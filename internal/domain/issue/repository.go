package issue

import (
	"context"
	"time"
)

// Repository 借阅仓储接口(依赖倒置原则)
// 所有方法都会加入context中携带的事务
type Repository interface {
	// Create 创建借阅记录
	Create(ctx context.Context, issue *Issue) error

	// FindByID 根据ID查找借阅记录
	FindByID(ctx context.Context, id uint) (*Issue, error)

	// LockByID 悲观锁查询借阅记录(SELECT ... FOR UPDATE)
	LockByID(ctx context.Context, id uint) (*Issue, error)

	// MarkReturned 把Issued状态的记录标记为Returned
	// 条件更新(WHERE status = 'Issued'),记录已归还时返回ErrAlreadyReturned
	MarkReturned(ctx context.Context, id uint, at time.Time) error

	// List 按借出顺序返回全部借阅记录
	List(ctx context.Context) ([]*Issue, error)

	// CountOutstandingByBook 统计每本图书未归还的借阅数
	CountOutstandingByBook(ctx context.Context) (map[uint]int64, error)
}
