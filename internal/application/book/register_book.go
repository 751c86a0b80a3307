package book

import (
	"context"
	"time"

	"github.com/xiebiao/library/internal/application/event"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/outcome"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

// RegisterBookUseCase 图书登记用例
// 副本数由用户输入解析,无效或小于1时按1处理,登记总是成功
type RegisterBookUseCase struct {
	bookRepo book.Repository
	notifier event.Notifier
}

// NewRegisterBookUseCase 创建图书登记用例
func NewRegisterBookUseCase(bookRepo book.Repository, notifier event.Notifier) *RegisterBookUseCase {
	return &RegisterBookUseCase{
		bookRepo: bookRepo,
		notifier: notifier,
	}
}

// RegisterBookRequest 登记请求DTO
type RegisterBookRequest struct {
	Title  string
	Author string
	Copies string // 原始输入,如"3"、"abc"
}

// RegisterBookResponse 登记响应DTO
type RegisterBookResponse struct {
	outcome.Result
	Book *BookDTO `json:"book,omitempty"`
}

// Execute 执行登记
func (uc *RegisterBookUseCase) Execute(ctx context.Context, req RegisterBookRequest) (resp *RegisterBookResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, "library/book", "RegisterBook")
	defer func() { tracing.EndSpan(span, err) }()

	b := book.NewBook(req.Title, req.Author, book.NormalizeCopies(req.Copies))
	if err := uc.bookRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	metrics.ObserveBookRegistration()
	uc.notifier.Notify(ctx, event.Event{
		Type:       event.BookRegistered,
		BookID:     b.ID,
		OccurredAt: time.Now(),
	})

	return &RegisterBookResponse{
		Result: outcome.Created(),
		Book:   ToBookDTO(b),
	}, nil
}
