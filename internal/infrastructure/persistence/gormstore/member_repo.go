package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/member"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// memberRepository 会员仓储实现(GORM)
// 设计说明:
// 1. 实现domain/member/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 唯一索引冲突转换为业务错误(邮箱重复/编号重复)
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建会员仓储
// 注意:返回的是domain层的接口类型(依赖倒置)
func NewMemberRepository(db *gorm.DB) member.Repository {
	return &memberRepository{db: db}
}

// Create 创建会员
// 邮箱唯一性最终由数据库UNIQUE索引保证
func (r *memberRepository) Create(ctx context.Context, m *member.Member) error {
	model := &MemberModel{
		Code:  m.Code,
		Name:  m.Name,
		Email: m.Email,
		Phone: m.Phone,
	}

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateOn(err, "email") {
			return member.ErrEmailDuplicate
		}
		if isDuplicateError(err) {
			return member.ErrCodeDuplicate
		}
		return apperrors.Wrap(err, "创建会员失败")
	}

	m.ID = model.ID
	m.CreatedAt = model.CreatedAt
	m.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找会员
func (r *memberRepository) FindByID(ctx context.Context, id uint) (*member.Member, error) {
	var model MemberModel
	err := dbFrom(ctx, r.db).First(&model, id).Error
	return r.found(&model, err)
}

// FindByCode 根据会员编号查找
func (r *memberRepository) FindByCode(ctx context.Context, code string) (*member.Member, error) {
	var model MemberModel
	err := dbFrom(ctx, r.db).Where("code = ?", code).First(&model).Error
	return r.found(&model, err)
}

// FindByEmail 根据邮箱查找
func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*member.Member, error) {
	var model MemberModel
	err := dbFrom(ctx, r.db).Where("email = ?", email).First(&model).Error
	return r.found(&model, err)
}

// Latest 查询最近创建的会员(ID最大)
func (r *memberRepository) Latest(ctx context.Context) (*member.Member, error) {
	var model MemberModel
	err := dbFrom(ctx, r.db).Order("id DESC").First(&model).Error
	return r.found(&model, err)
}

// Count 会员总数
func (r *memberRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := dbFrom(ctx, r.db).Model(&MemberModel{}).Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(err, "查询会员总数失败")
	}
	return total, nil
}

// List 按ID升序返回全部会员
func (r *memberRepository) List(ctx context.Context) ([]*member.Member, error) {
	var models []MemberModel
	if err := dbFrom(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询会员列表失败")
	}

	members := make([]*member.Member, len(models))
	for i := range models {
		members[i] = toMemberEntity(&models[i])
	}
	return members, nil
}

// found 统一处理单条查询结果
func (r *memberRepository) found(model *MemberModel, err error) (*member.Member, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "查询会员失败")
	}
	return toMemberEntity(model), nil
}

// toMemberEntity GORM模型 → 领域实体
func toMemberEntity(model *MemberModel) *member.Member {
	return &member.Member{
		ID:        model.ID,
		Code:      model.Code,
		Name:      model.Name,
		Email:     model.Email,
		Phone:     model.Phone,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
