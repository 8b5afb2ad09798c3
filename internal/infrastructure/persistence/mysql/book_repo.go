package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ReallyKrishna/Book-Review-API/internal/domain/book"
	apperrors "github.com/ReallyKrishna/Book-Review-API/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如书名重复),转换为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
// 书名唯一性由数据库UNIQUE索引保证,冲突转换为ErrTitleDuplicate
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		Title:       b.Title,
		Author:      b.Author,
		Genre:       b.Genre,
		Description: b.Description,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrTitleDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID与时间戳
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// List 分页查询图书列表
// 过滤语义见domain/book/repository.go:
// - Keyword非空:书名或作者的子串匹配(OR)
// - 否则Author/Genre各自非空才过滤(AND)
// 子串匹配统一用LOWER(...) LIKE实现,不依赖列collation,保证大小写不敏感
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := r.db.WithContext(ctx).Model(&BookModel{})

	if params.Keyword != "" {
		kw := "%" + strings.ToLower(params.Keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", kw, kw)
	} else {
		if params.Author != "" {
			query = query.Where("LOWER(author) LIKE ?", "%"+strings.ToLower(params.Author)+"%")
		}
		if params.Genre != "" {
			query = query.Where("LOWER(genre) LIKE ?", "%"+strings.ToLower(params.Genre)+"%")
		}
	}

	// 总数基于过滤后的全集,与分页无关
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	// 固定ID升序,静态数据集下各页结果稳定
	err := query.Order("id ASC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:          model.ID,
		Title:       model.Title,
		Author:      model.Author,
		Genre:       model.Genre,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
