package member

import (
	"time"
)

// Member 会员实体(聚合根)
// 设计说明:
// 1. Code是面向用户的会员编号(M001、M002...),由CodeGenerator分配,创建后不可变
// 2. Email在全库唯一(数据库UNIQUE索引保证)
// 3. 会员创建后不编辑、不删除
type Member struct {
	ID        uint
	Code      string // 会员编号(如M001)
	Name      string // 姓名
	Email     string // 邮箱(唯一)
	Phone     string // 电话
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMember 创建新会员(工厂方法)
// code必须由CodeGenerator在同一事务内分配
func NewMember(code, name, email, phone string) *Member {
	now := time.Now()
	return &Member{
		Code:      code,
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
