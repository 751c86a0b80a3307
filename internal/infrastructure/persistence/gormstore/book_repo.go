package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/book"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// bookRepository 图书仓储实现(GORM)
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		Title:       b.Title,
		Author:      b.Author,
		Copies:      b.Copies,
		TotalCopies: b.TotalCopies,
	}

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := dbFrom(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// LockByID 悲观锁查询图书
// SELECT * FROM books WHERE id = ? FOR UPDATE
// 必须在事务中调用,锁在COMMIT/ROLLBACK时释放(SQLite方言忽略锁子句,由单连接串行化)
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := dbFrom(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}
	return toBookEntity(&model), nil
}

// UpdateCopies 原子更新可借副本数
// UPDATE books SET copies = copies + ? WHERE id = ? AND copies + ? >= 0
func (r *bookRepository) UpdateCopies(ctx context.Context, id uint, delta int) error {
	db := dbFrom(ctx, r.db)
	result := db.Model(&BookModel{}).
		Where("id = ?", id).
		Where("copies + ? >= 0", delta).
		Update("copies", gorm.Expr("copies + ?", delta))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新副本数失败")
	}

	if result.RowsAffected == 0 {
		// 图书不存在,或者副本不足,再查一次确定原因
		var model BookModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
		return book.ErrNoCopiesAvailable
	}

	return nil
}

// List 按ID升序返回全部图书
func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := dbFrom(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:          model.ID,
		Title:       model.Title,
		Author:      model.Author,
		Copies:      model.Copies,
		TotalCopies: model.TotalCopies,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
