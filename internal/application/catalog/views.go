package catalog

import (
	appbook "github.com/xiebiao/library/internal/application/book"
	applending "github.com/xiebiao/library/internal/application/lending"
	appmember "github.com/xiebiao/library/internal/application/member"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/issue"
	"github.com/xiebiao/library/internal/domain/member"
)

// Overview 馆藏总览(会员、图书、借阅三个列表)
type Overview struct {
	Members []*appmember.MemberDTO `json:"members"`
	Books   []*appbook.BookDTO     `json:"books"`
	Issues  []*IssueView           `json:"issues"`
}

// IssueView 带会员和图书信息的借阅记录
// 会员或图书找不到时对应字段为空
type IssueView struct {
	applending.IssueDTO
	MemberCode string `json:"member_code"`
	MemberName string `json:"member_name"`
	BookTitle  string `json:"book_title"`
	BookAuthor string `json:"book_author"`
}

func newIssueView(i *issue.Issue, m *member.Member, b *book.Book) *IssueView {
	v := &IssueView{IssueDTO: *applending.ToIssueDTO(i)}
	if m != nil {
		v.MemberCode = m.Code
		v.MemberName = m.Name
	}
	if b != nil {
		v.BookTitle = b.Title
		v.BookAuthor = b.Author
	}
	return v
}

// buildIssueViews 用已加载的会员和图书列表补全借阅记录
func buildIssueViews(issues []*issue.Issue, members []*member.Member, books []*book.Book) []*IssueView {
	memberByID := make(map[uint]*member.Member, len(members))
	for _, m := range members {
		memberByID[m.ID] = m
	}
	bookByID := make(map[uint]*book.Book, len(books))
	for _, b := range books {
		bookByID[b.ID] = b
	}

	views := make([]*IssueView, len(issues))
	for idx, i := range issues {
		views[idx] = newIssueView(i, memberByID[i.MemberID], bookByID[i.BookID])
	}
	return views
}

func memberDTOs(members []*member.Member) []*appmember.MemberDTO {
	dtos := make([]*appmember.MemberDTO, len(members))
	for i, m := range members {
		dtos[i] = appmember.ToMemberDTO(m)
	}
	return dtos
}

func bookDTOs(books []*book.Book) []*appbook.BookDTO {
	dtos := make([]*appbook.BookDTO, len(books))
	for i, b := range books {
		dtos[i] = appbook.ToBookDTO(b)
	}
	return dtos
}
