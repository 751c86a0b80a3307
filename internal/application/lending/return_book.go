package lending

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/library/internal/application/event"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/issue"
	"github.com/xiebiao/library/internal/domain/lending"
	"github.com/xiebiao/library/internal/domain/outcome"
	"github.com/xiebiao/library/internal/infrastructure/persistence/gormstore"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

// ReturnBookUseCase 还书用例
// 同一借阅并发归还时,借阅行的锁让第二个请求看到Returned状态,副本数只加一次
type ReturnBookUseCase struct {
	issueRepo issue.Repository
	bookRepo  book.Repository
	txManager *gormstore.TxManager
	notifier  event.Notifier
	now       func() time.Time
}

// NewReturnBookUseCase 创建还书用例
func NewReturnBookUseCase(
	issueRepo issue.Repository,
	bookRepo book.Repository,
	txManager *gormstore.TxManager,
	notifier event.Notifier,
) *ReturnBookUseCase {
	return &ReturnBookUseCase{
		issueRepo: issueRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
		notifier:  notifier,
		now:       time.Now,
	}
}

// ReturnBookRequest 还书请求DTO
type ReturnBookRequest struct {
	IssueID string // 原始输入的借阅记录ID
}

// ReturnBookResponse 还书响应DTO
// 已归还的记录返回Declined(already_returned),Issue带上当前状态
type ReturnBookResponse struct {
	outcome.Result
	Issue *IssueDTO `json:"issue,omitempty"`
}

// Execute 执行还书
func (uc *ReturnBookUseCase) Execute(ctx context.Context, req ReturnBookRequest) (resp *ReturnBookResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ReturnBook")
	defer func() { tracing.EndSpan(span, err) }()

	issueID, ok := issue.ParseIssueID(req.IssueID)
	if !ok {
		return uc.declined(outcome.ReasonIssueNotFound, nil), nil
	}

	var (
		result  outcome.Result
		current *issue.Issue
	)
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		i, err := uc.issueRepo.LockByID(txCtx, issueID)
		if err != nil && !errors.Is(err, issue.ErrIssueNotFound) {
			return err
		}
		if err == nil {
			current = i
		}

		result = lending.DecideReturn(current)
		if !result.Applied() {
			return nil
		}

		if err := current.Return(uc.now()); err != nil {
			return err
		}

		if err := uc.issueRepo.MarkReturned(txCtx, current.ID, *current.ReturnedAt); err != nil {
			if errors.Is(err, issue.ErrAlreadyReturned) {
				result = outcome.Declined(outcome.ReasonAlreadyReturned)
				return errDeclined
			}
			return err
		}

		if err := uc.bookRepo.UpdateCopies(txCtx, current.BookID, 1); err != nil {
			// 图书不会被删除,这里找不到说明数据已损坏
			return apperrors.Wrapf(err, "归还借阅%d时更新图书%d失败", current.ID, current.BookID)
		}

		return nil
	})

	if errors.Is(err, errDeclined) {
		err = nil
		if reloaded, findErr := uc.issueRepo.FindByID(ctx, issueID); findErr == nil {
			current = reloaded
		}
	}
	if err != nil {
		return nil, err
	}

	if !result.Applied() {
		return uc.declined(result.Reason, current), nil
	}

	metrics.ObserveReturn(string(outcome.KindReturned), "")
	uc.notifier.Notify(ctx, event.Event{
		Type:       event.IssueReturned,
		BookID:     current.BookID,
		IssueID:    current.ID,
		OccurredAt: *current.ReturnedAt,
	})

	return &ReturnBookResponse{
		Result: outcome.Returned(),
		Issue:  ToIssueDTO(current),
	}, nil
}

func (uc *ReturnBookUseCase) declined(reason outcome.Reason, current *issue.Issue) *ReturnBookResponse {
	metrics.ObserveReturn(string(outcome.KindDeclined), string(reason))
	resp := &ReturnBookResponse{Result: outcome.Declined(reason)}
	if current != nil {
		resp.Issue = ToIssueDTO(current)
	}
	return resp
}
