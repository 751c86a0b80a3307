package catalog

import (
	"context"
	"log/slog"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/issue"
	"github.com/xiebiao/library/internal/domain/member"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

const tracerName = "library/catalog"

// ListAllUseCase 馆藏总览用例
// 设计说明(Cache-Aside):
// 1. 先读缓存,命中直接返回
// 2. 未命中查库,再回填缓存
// 3. 写操作提交后由notify删除缓存
// 4. 缓存故障只记日志,退化为直接查库
type ListAllUseCase struct {
	memberRepo member.Repository
	bookRepo   book.Repository
	issueRepo  issue.Repository
	cache      OverviewCache
}

// NewListAllUseCase 创建总览用例
func NewListAllUseCase(
	memberRepo member.Repository,
	bookRepo book.Repository,
	issueRepo issue.Repository,
	cache OverviewCache,
) *ListAllUseCase {
	return &ListAllUseCase{
		memberRepo: memberRepo,
		bookRepo:   bookRepo,
		issueRepo:  issueRepo,
		cache:      cache,
	}
}

// Execute 返回全部会员、图书、借阅记录(按创建顺序)
func (uc *ListAllUseCase) Execute(ctx context.Context) (overview *Overview, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListAll")
	defer func() { tracing.EndSpan(span, err) }()

	var cached Overview
	hit, err := uc.cache.Load(ctx, &cached)
	switch {
	case err != nil:
		metrics.ObserveOverviewCache("error")
		slog.WarnContext(ctx, "读取总览缓存失败", slog.Any("error", err))
	case hit:
		metrics.ObserveOverviewCache("hit")
		return &cached, nil
	default:
		metrics.ObserveOverviewCache("miss")
	}

	overview, err = uc.load(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Store(ctx, overview); err != nil {
		slog.WarnContext(ctx, "写入总览缓存失败", slog.Any("error", err))
	}
	return overview, nil
}

func (uc *ListAllUseCase) load(ctx context.Context) (*Overview, error) {
	members, err := uc.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	books, err := uc.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	issues, err := uc.issueRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Members: memberDTOs(members),
		Books:   bookDTOs(books),
		Issues:  buildIssueViews(issues, members, books),
	}, nil
}
