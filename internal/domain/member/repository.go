package member

import (
	"context"
)

// Repository 会员仓储接口(依赖倒置原则)
// 所有方法都会加入context中携带的事务
type Repository interface {
	// Create 创建会员
	// 邮箱重复返回ErrEmailDuplicate,编号重复返回ErrCodeDuplicate
	Create(ctx context.Context, member *Member) error

	// FindByID 根据ID查找会员
	FindByID(ctx context.Context, id uint) (*Member, error)

	// FindByCode 根据会员编号查找(精确匹配)
	FindByCode(ctx context.Context, code string) (*Member, error)

	// FindByEmail 根据邮箱查找(精确匹配)
	FindByEmail(ctx context.Context, email string) (*Member, error)

	// Latest 返回最近创建的会员(ID最大),没有会员时返回ErrMemberNotFound
	Latest(ctx context.Context) (*Member, error)

	// Count 会员总数
	Count(ctx context.Context) (int64, error)

	// List 按创建顺序返回全部会员
	List(ctx context.Context) ([]*Member, error)
}

// Sequence 命名计数器
// Next在当前事务内把计数器加一并返回新值;
// 计数器不存在时先用seed的返回值初始化
type Sequence interface {
	Next(ctx context.Context, name string, seed func(ctx context.Context) (int64, error)) (int64, error)
}
