package gormstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/issue"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// issueRepository 借阅仓储实现(GORM)
type issueRepository struct {
	db *gorm.DB
}

// NewIssueRepository 创建借阅仓储
func NewIssueRepository(db *gorm.DB) issue.Repository {
	return &issueRepository{db: db}
}

// Create 创建借阅记录
func (r *issueRepository) Create(ctx context.Context, i *issue.Issue) error {
	model := toIssueModel(i)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建借阅记录失败")
	}

	i.ID = model.ID
	i.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找借阅记录
func (r *issueRepository) FindByID(ctx context.Context, id uint) (*issue.Issue, error) {
	var model IssueModel
	err := dbFrom(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, issue.ErrIssueNotFound
		}
		return nil, apperrors.Wrap(err, "查询借阅记录失败")
	}
	return toIssueEntity(&model), nil
}

// LockByID 悲观锁查询借阅记录
// 同一借阅的两次并发归还会在这里排队,第二次看到的状态已是Returned
func (r *issueRepository) LockByID(ctx context.Context, id uint) (*issue.Issue, error) {
	var model IssueModel
	err := dbFrom(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, issue.ErrIssueNotFound
		}
		return nil, apperrors.Wrap(err, "锁定借阅记录失败")
	}
	return toIssueEntity(&model), nil
}

// MarkReturned 标记为已归还
// UPDATE issues SET status = 'Returned', returned_at = ? WHERE id = ? AND status = 'Issued'
func (r *issueRepository) MarkReturned(ctx context.Context, id uint, at time.Time) error {
	db := dbFrom(ctx, r.db)
	result := db.Model(&IssueModel{}).
		Where("id = ? AND status = ?", id, string(issue.StatusIssued)).
		Updates(map[string]interface{}{
			"status":      string(issue.StatusReturned),
			"returned_at": at,
			"updated_at":  at,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新借阅状态失败")
	}

	if result.RowsAffected == 0 {
		var model IssueModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return issue.ErrIssueNotFound
			}
			return apperrors.Wrap(err, "查询借阅记录失败")
		}
		return issue.ErrAlreadyReturned
	}

	return nil
}

// List 按ID升序返回全部借阅记录
func (r *issueRepository) List(ctx context.Context) ([]*issue.Issue, error) {
	var models []IssueModel
	if err := dbFrom(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询借阅列表失败")
	}

	issues := make([]*issue.Issue, len(models))
	for i := range models {
		issues[i] = toIssueEntity(&models[i])
	}
	return issues, nil
}

// CountOutstandingByBook 统计每本图书未归还的借阅数
// SELECT book_id, COUNT(*) FROM issues WHERE status = 'Issued' GROUP BY book_id
func (r *issueRepository) CountOutstandingByBook(ctx context.Context) (map[uint]int64, error) {
	var rows []struct {
		BookID uint
		Total  int64
	}

	err := dbFrom(ctx, r.db).Model(&IssueModel{}).
		Select("book_id, COUNT(*) AS total").
		Where("status = ?", string(issue.StatusIssued)).
		Group("book_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "统计未归还借阅失败")
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.BookID] = row.Total
	}
	return counts, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toIssueModel 领域实体 → GORM模型
func toIssueModel(i *issue.Issue) *IssueModel {
	return &IssueModel{
		ID:         i.ID,
		MemberID:   i.MemberID,
		BookID:     i.BookID,
		Status:     string(i.Status),
		IssueDate:  i.IssueDate,
		ReturnedAt: i.ReturnedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

// toIssueEntity GORM模型 → 领域实体
func toIssueEntity(model *IssueModel) *issue.Issue {
	return &issue.Issue{
		ID:         model.ID,
		MemberID:   model.MemberID,
		BookID:     model.BookID,
		IssueDate:  model.IssueDate,
		Status:     issue.Status(model.Status),
		ReturnedAt: model.ReturnedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
