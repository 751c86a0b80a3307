// Package outcome 定义写操作的结果类型
//
// 用户输入引起的拒绝（副本不足、会员不存在、重复归还等）不是错误，
// 以Declined{reason}的形式返回，由调用方决定如何展示。
// 只有基础设施故障才通过error返回。
package outcome

// Kind 结果类别
type Kind string

const (
	KindCreated   Kind = "created"   // 新记录已创建
	KindReturned  Kind = "returned"  // 借阅已归还
	KindDeclined  Kind = "declined"  // 业务规则拒绝，无任何修改
	KindDuplicate Kind = "duplicate" // 唯一约束冲突，无任何修改
)

// Reason 拒绝原因
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonMalformedBookID   Reason = "malformed_book_id"
	ReasonBookNotFound      Reason = "book_not_found"
	ReasonMemberNotFound    Reason = "member_not_found"
	ReasonNoCopiesAvailable Reason = "no_copies_available"
	ReasonIssueNotFound     Reason = "issue_not_found"
	ReasonAlreadyReturned   Reason = "already_returned"
	ReasonEmailTaken        Reason = "email_taken"
)

// Message 返回拒绝原因的提示文案
func (r Reason) Message() string {
	switch r {
	case ReasonMalformedBookID:
		return "图书ID格式不正确"
	case ReasonBookNotFound:
		return "图书不存在"
	case ReasonMemberNotFound:
		return "会员不存在"
	case ReasonNoCopiesAvailable:
		return "没有可借的副本"
	case ReasonIssueNotFound:
		return "借阅记录不存在"
	case ReasonAlreadyReturned:
		return "该借阅已归还"
	case ReasonEmailTaken:
		return "邮箱已被注册"
	default:
		return ""
	}
}

// Result 写操作结果
// 只能通过Created/Returned/Declined/Duplicate构造
type Result struct {
	Kind   Kind   `json:"outcome"`
	Reason Reason `json:"reason,omitempty"`
}

// Created 创建成功
func Created() Result {
	return Result{Kind: KindCreated}
}

// Returned 归还成功
func Returned() Result {
	return Result{Kind: KindReturned}
}

// Declined 业务拒绝
func Declined(reason Reason) Result {
	return Result{Kind: KindDeclined, Reason: reason}
}

// Duplicate 唯一约束冲突
func Duplicate(reason Reason) Result {
	return Result{Kind: KindDuplicate, Reason: reason}
}

// Applied 是否产生了状态变更
func (r Result) Applied() bool {
	return r.Kind == KindCreated || r.Kind == KindReturned
}

func (r Result) IsCreated() bool   { return r.Kind == KindCreated }
func (r Result) IsReturned() bool  { return r.Kind == KindReturned }
func (r Result) IsDeclined() bool  { return r.Kind == KindDeclined }
func (r Result) IsDuplicate() bool { return r.Kind == KindDuplicate }

// String 实现Stringer接口(方便日志输出)
func (r Result) String() string {
	if r.Reason == ReasonNone {
		return string(r.Kind)
	}
	return string(r.Kind) + ":" + string(r.Reason)
}
