package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/member"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// sequenceRepository 命名计数器(sequences表)
// 设计说明:
// 1. UPDATE ... SET value = value + 1 会锁住计数器行,并发事务在此排队
// 2. 计数器行不存在时用seed初始化(INSERT忽略冲突,并发初始化只有一个生效)
// 3. 递增和读回在同一事务内完成,读到的一定是本事务分配的值
type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository 创建计数器仓储
func NewSequenceRepository(db *gorm.DB) member.Sequence {
	return &sequenceRepository{db: db}
}

// Next 递增并返回计数器的新值
func (r *sequenceRepository) Next(ctx context.Context, name string, seed func(ctx context.Context) (int64, error)) (int64, error) {
	var next int64
	err := dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)

		affected, err := r.increment(tx, name)
		if err != nil {
			return err
		}

		if affected == 0 {
			start, err := seed(txCtx)
			if err != nil {
				return err
			}

			err = tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&SequenceModel{Name: name, Value: start}).Error
			if err != nil {
				return apperrors.Wrap(err, "初始化计数器失败")
			}

			if affected, err = r.increment(tx, name); err != nil {
				return err
			}
			if affected == 0 {
				return apperrors.Wrap(fmt.Errorf("sequence %q missing", name), "计数器不存在")
			}
		}

		var model SequenceModel
		if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
			return apperrors.Wrap(err, "读取计数器失败")
		}
		next = model.Value
		return nil
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (r *sequenceRepository) increment(tx *gorm.DB, name string) (int64, error) {
	result := tx.Model(&SequenceModel{}).
		Where("name = ?", name).
		Update("value", gorm.Expr("value + ?", 1))
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "递增计数器失败")
	}
	return result.RowsAffected, nil
}
