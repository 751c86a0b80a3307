package issue

import (
	"strconv"
	"strings"
	"time"
)

// Status 借阅状态
// 以字符串存储("Issued"/"Returned"),与历史数据保持一致
type Status string

const (
	StatusIssued   Status = "Issued"   // 已借出
	StatusReturned Status = "Returned" // 已归还
)

// String 实现Stringer接口(方便日志输出)
func (s Status) String() string {
	return string(s)
}

// Valid 是否为已知状态
func (s Status) Valid() bool {
	return s == StatusIssued || s == StatusReturned
}

// Issue 借阅记录(聚合根)
// 设计说明:
// 1. MemberID、BookID只保存标识,不持有会员/图书对象
// 2. IssueDate创建时确定,之后不变
// 3. 状态只能Issued → Returned,Returned是终态
type Issue struct {
	ID         uint
	MemberID   uint       // 会员ID
	BookID     uint       // 图书ID
	IssueDate  time.Time  // 借出时间
	Status     Status     // 借阅状态
	ReturnedAt *time.Time // 归还时间(未归还为nil)
	UpdatedAt  time.Time
}

// NewIssue 创建借阅记录(工厂方法)
// 初始状态为Issued
func NewIssue(memberID, bookID uint, issuedAt time.Time) *Issue {
	return &Issue{
		MemberID:  memberID,
		BookID:    bookID,
		IssueDate: issuedAt,
		Status:    StatusIssued,
		UpdatedAt: issuedAt,
	}
}

// IsOutstanding 是否仍未归还
func (i *Issue) IsOutstanding() bool {
	return i.Status == StatusIssued
}

// CanTransitionTo 检查是否可以转换到目标状态
func (i *Issue) CanTransitionTo(target Status) bool {
	transitions := map[Status][]Status{
		StatusIssued:   {StatusReturned}, // 已借出→已归还
		StatusReturned: {},               // 终态
	}

	for _, allowed := range transitions[i.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo 状态转换
func (i *Issue) TransitionTo(target Status, at time.Time) error {
	if !i.CanTransitionTo(target) {
		return ErrInvalidStatusTransition
	}
	i.Status = target
	i.UpdatedAt = at
	return nil
}

// Return 归还(领域行为)
func (i *Issue) Return(at time.Time) error {
	if err := i.TransitionTo(StatusReturned, at); err != nil {
		return err
	}
	i.ReturnedAt = &at
	return nil
}

// ParseIssueID 解析用户输入的借阅记录ID
func ParseIssueID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
