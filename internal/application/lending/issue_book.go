package lending

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/library/internal/application/event"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/issue"
	"github.com/xiebiao/library/internal/domain/lending"
	"github.com/xiebiao/library/internal/domain/member"
	"github.com/xiebiao/library/internal/domain/outcome"
	"github.com/xiebiao/library/internal/infrastructure/persistence/gormstore"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

const tracerName = "library/lending"

// errDeclined 事务内发现需要拒绝,回滚已做的修改
var errDeclined = errors.New("lending declined")

// IssueBookUseCase 借书用例
//
// 核心问题:副本数不能被借成负数
// 场景:某书只剩1本,两个请求同时借出
//  1. SELECT FOR UPDATE锁定图书行,第二个请求在这里等待
//  2. 锁定后检查副本数
//  3. 创建借阅记录、扣减副本数(UPDATE带copies + ? >= 0条件兜底)
//  4. COMMIT释放锁,第二个请求看到的副本数已是0
type IssueBookUseCase struct {
	bookRepo   book.Repository
	memberRepo member.Repository
	issueRepo  issue.Repository
	txManager  *gormstore.TxManager
	notifier   event.Notifier
	now        func() time.Time
}

// NewIssueBookUseCase 创建借书用例
func NewIssueBookUseCase(
	bookRepo book.Repository,
	memberRepo member.Repository,
	issueRepo issue.Repository,
	txManager *gormstore.TxManager,
	notifier event.Notifier,
) *IssueBookUseCase {
	return &IssueBookUseCase{
		bookRepo:   bookRepo,
		memberRepo: memberRepo,
		issueRepo:  issueRepo,
		txManager:  txManager,
		notifier:   notifier,
		now:        time.Now,
	}
}

// IssueBookRequest 借书请求DTO
type IssueBookRequest struct {
	MemberCode string // 会员编号,如M001
	BookID     string // 原始输入的图书ID
}

// IssueBookResponse 借书响应DTO
// Issue只在Created时有值
type IssueBookResponse struct {
	outcome.Result
	Issue *IssueDTO `json:"issue,omitempty"`
}

// Execute 执行借书
// 业务拒绝通过outcome.Declined返回,error只表示基础设施故障
func (uc *IssueBookUseCase) Execute(ctx context.Context, req IssueBookRequest) (resp *IssueBookResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "IssueBook")
	defer func() { tracing.EndSpan(span, err) }()

	bookID, ok := book.ParseBookID(req.BookID)
	if !ok {
		return uc.declined(outcome.ReasonMalformedBookID), nil
	}

	var (
		result  outcome.Result
		created *issue.Issue
	)
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		b, err := uc.bookRepo.LockByID(txCtx, bookID)
		if err != nil && !errors.Is(err, book.ErrBookNotFound) {
			return err
		}

		m, err := uc.memberRepo.FindByCode(txCtx, req.MemberCode)
		if err != nil && !errors.Is(err, member.ErrMemberNotFound) {
			return err
		}

		result = lending.DecideIssue(m, b)
		if !result.Applied() {
			return nil
		}

		i := issue.NewIssue(m.ID, b.ID, uc.now())
		if err := uc.issueRepo.Create(txCtx, i); err != nil {
			return err
		}

		if err := uc.bookRepo.UpdateCopies(txCtx, b.ID, -1); err != nil {
			if errors.Is(err, book.ErrNoCopiesAvailable) {
				result = outcome.Declined(outcome.ReasonNoCopiesAvailable)
				return errDeclined
			}
			return err
		}

		created = i
		return nil
	})

	if errors.Is(err, errDeclined) {
		err = nil
	}
	if err != nil {
		return nil, err
	}

	if created == nil {
		return uc.declined(result.Reason), nil
	}

	metrics.ObserveIssue(string(outcome.KindCreated), "")
	uc.notifier.Notify(ctx, event.Event{
		Type:       event.IssueCreated,
		MemberCode: req.MemberCode,
		BookID:     created.BookID,
		IssueID:    created.ID,
		OccurredAt: created.IssueDate,
	})

	return &IssueBookResponse{
		Result: outcome.Created(),
		Issue:  ToIssueDTO(created),
	}, nil
}

func (uc *IssueBookUseCase) declined(reason outcome.Reason) *IssueBookResponse {
	metrics.ObserveIssue(string(outcome.KindDeclined), string(reason))
	return &IssueBookResponse{Result: outcome.Declined(reason)}
}
