package member

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/library/internal/application/event"
	"github.com/xiebiao/library/internal/domain/member"
	"github.com/xiebiao/library/internal/domain/outcome"
	"github.com/xiebiao/library/internal/infrastructure/persistence/gormstore"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

const tracerName = "library/member"

// RegisterMemberUseCase 会员注册用例
// 设计说明:
// 1. 邮箱检查、编号分配、插入在同一事务内完成
// 2. 邮箱重复不是错误,返回outcome.Duplicate,不写入任何数据
// 3. 并发注册同一邮箱时,UNIQUE索引冲突同样转换为Duplicate(事务回滚,编号不被消耗)
type RegisterMemberUseCase struct {
	memberRepo member.Repository
	codes      *member.CodeGenerator
	txManager  *gormstore.TxManager
	notifier   event.Notifier
}

// NewRegisterMemberUseCase 创建会员注册用例
func NewRegisterMemberUseCase(
	memberRepo member.Repository,
	codes *member.CodeGenerator,
	txManager *gormstore.TxManager,
	notifier event.Notifier,
) *RegisterMemberUseCase {
	return &RegisterMemberUseCase{
		memberRepo: memberRepo,
		codes:      codes,
		txManager:  txManager,
		notifier:   notifier,
	}
}

// RegisterMemberRequest 注册请求DTO
type RegisterMemberRequest struct {
	Name  string
	Email string
	Phone string
}

// RegisterMemberResponse 注册响应DTO
// Member只在Created时有值
type RegisterMemberResponse struct {
	outcome.Result
	Member *MemberDTO `json:"member,omitempty"`
}

// Execute 执行注册
func (uc *RegisterMemberUseCase) Execute(ctx context.Context, req RegisterMemberRequest) (resp *RegisterMemberResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "RegisterMember")
	defer func() { tracing.EndSpan(span, err) }()

	var created *member.Member
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 邮箱已存在 → Duplicate(尚未分配编号,无需回滚)
		_, err := uc.memberRepo.FindByEmail(txCtx, req.Email)
		if err == nil {
			return nil
		}
		if !errors.Is(err, member.ErrMemberNotFound) {
			return err
		}

		// 2. 分配编号(计数器行在本事务内加锁)
		code, err := uc.codes.Next(txCtx)
		if err != nil {
			return err
		}

		// 3. 插入;UNIQUE冲突时返回错误让事务回滚
		m := member.NewMember(code, req.Name, req.Email, req.Phone)
		if err := uc.memberRepo.Create(txCtx, m); err != nil {
			return err
		}

		created = m
		return nil
	})

	if errors.Is(err, member.ErrEmailDuplicate) {
		err = nil
	}
	if err != nil {
		return nil, err
	}

	if created == nil {
		metrics.ObserveMemberRegistration(string(outcome.KindDuplicate))
		return &RegisterMemberResponse{Result: outcome.Duplicate(outcome.ReasonEmailTaken)}, nil
	}

	metrics.ObserveMemberRegistration(string(outcome.KindCreated))
	uc.notifier.Notify(ctx, event.Event{
		Type:       event.MemberRegistered,
		MemberCode: created.Code,
		OccurredAt: time.Now(),
	})

	return &RegisterMemberResponse{
		Result: outcome.Created(),
		Member: ToMemberDTO(created),
	}, nil
}
