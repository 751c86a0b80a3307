package book

import (
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. Copies是当前可借副本数,只由借阅引擎修改,永不为负
// 2. TotalCopies是登记时的副本总数,创建后不变
// 3. 不变式:Copies + 未归还借阅数 == TotalCopies
type Book struct {
	ID          uint
	Title       string // 书名
	Author      string // 作者
	Copies      int    // 可借副本数
	TotalCopies int    // 登记副本总数
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
// copies小于1时按1处理
func NewBook(title, author string, copies int) *Book {
	copies = ClampCopies(copies)
	now := time.Now()
	return &Book{
		Title:       title,
		Author:      author,
		Copies:      copies,
		TotalCopies: copies,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Available 是否还有可借副本
func (b *Book) Available() bool {
	return b.Copies > 0
}

// OnLoan 已借出副本数(由总数推算)
func (b *Book) OnLoan() int {
	return b.TotalCopies - b.Copies
}
