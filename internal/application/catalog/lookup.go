package catalog

import (
	"context"
	"errors"

	appbook "github.com/xiebiao/library/internal/application/book"
	appmember "github.com/xiebiao/library/internal/application/member"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/issue"
	"github.com/xiebiao/library/internal/domain/member"
)

// LookupUseCase 单集合列表和按标识查询
// 查询不存在返回ErrMemberNotFound/ErrBookNotFound/ErrIssueNotFound
type LookupUseCase struct {
	memberRepo member.Repository
	bookRepo   book.Repository
	issueRepo  issue.Repository
}

// NewLookupUseCase 创建查询用例
func NewLookupUseCase(memberRepo member.Repository, bookRepo book.Repository, issueRepo issue.Repository) *LookupUseCase {
	return &LookupUseCase{
		memberRepo: memberRepo,
		bookRepo:   bookRepo,
		issueRepo:  issueRepo,
	}
}

// Members 全部会员
func (uc *LookupUseCase) Members(ctx context.Context) ([]*appmember.MemberDTO, error) {
	members, err := uc.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return memberDTOs(members), nil
}

// Books 全部图书
func (uc *LookupUseCase) Books(ctx context.Context) ([]*appbook.BookDTO, error) {
	books, err := uc.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return bookDTOs(books), nil
}

// Issues 全部借阅记录
func (uc *LookupUseCase) Issues(ctx context.Context) ([]*IssueView, error) {
	issues, err := uc.issueRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	members, err := uc.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	books, err := uc.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return buildIssueViews(issues, members, books), nil
}

// Member 按会员编号查询
func (uc *LookupUseCase) Member(ctx context.Context, code string) (*appmember.MemberDTO, error) {
	m, err := uc.memberRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return appmember.ToMemberDTO(m), nil
}

// Book 按图书ID查询,ID格式错误同样返回ErrBookNotFound
func (uc *LookupUseCase) Book(ctx context.Context, rawID string) (*appbook.BookDTO, error) {
	id, ok := book.ParseBookID(rawID)
	if !ok {
		return nil, book.ErrBookNotFound
	}
	b, err := uc.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return appbook.ToBookDTO(b), nil
}

// Issue 按借阅ID查询
func (uc *LookupUseCase) Issue(ctx context.Context, rawID string) (*IssueView, error) {
	id, ok := issue.ParseIssueID(rawID)
	if !ok {
		return nil, issue.ErrIssueNotFound
	}
	i, err := uc.issueRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m, err := uc.memberRepo.FindByID(ctx, i.MemberID)
	if err != nil && !errors.Is(err, member.ErrMemberNotFound) {
		return nil, err
	}
	b, err := uc.bookRepo.FindByID(ctx, i.BookID)
	if err != nil && !errors.Is(err, book.ErrBookNotFound) {
		return nil, err
	}
	return newIssueView(i, m, b), nil
}
