// Package lending 借阅规则(纯函数)
//
// Decide函数只根据已加载的实体做判断,不访问数据库,
// 由应用层在事务内加载实体后调用,再根据结果执行写操作。
package lending

import (
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/issue"
	"github.com/xiebiao/library/internal/domain/member"
	"github.com/xiebiao/library/internal/domain/outcome"
)

// DecideIssue 判断能否借出
// b、m为nil表示对应记录不存在
// 检查顺序:图书存在 → 有可借副本 → 会员存在
func DecideIssue(m *member.Member, b *book.Book) outcome.Result {
	if b == nil {
		return outcome.Declined(outcome.ReasonBookNotFound)
	}
	if !b.Available() {
		return outcome.Declined(outcome.ReasonNoCopiesAvailable)
	}
	if m == nil {
		return outcome.Declined(outcome.ReasonMemberNotFound)
	}
	return outcome.Created()
}

// DecideReturn 判断能否归还
// i为nil表示借阅记录不存在;已归还的记录返回Declined(already_returned),重复归还不是错误
func DecideReturn(i *issue.Issue) outcome.Result {
	if i == nil {
		return outcome.Declined(outcome.ReasonIssueNotFound)
	}
	if !i.IsOutstanding() {
		return outcome.Declined(outcome.ReasonAlreadyReturned)
	}
	return outcome.Returned()
}
