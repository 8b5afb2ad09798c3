package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ReallyKrishna/Book-Review-API/internal/domain/review"
	apperrors "github.com/ReallyKrishna/Book-Review-API/pkg/errors"
)

// reviewRepository 评论仓储实现(MySQL)
// 设计说明:
// 1. (book_id,user_id)的唯一性由复合唯一索引仲裁:Create不做预查,
//    捕获数据库的冲突信号转换为ErrReviewDuplicate
// 2. 评论删除是物理删除(ReviewModel没有DeletedAt)
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评论仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// Create 创建评论
// 并发提交同一(book,user)时数据库保证恰好一个成功,
// 失败方收到唯一索引冲突并转换为ErrReviewDuplicate
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := &ReviewModel{
		BookID:  rv.BookID,
		UserID:  rv.UserID,
		Rating:  rv.Rating,
		Comment: rv.Comment,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return review.ErrReviewDuplicate
		}
		return apperrors.Wrap(err, "创建评论失败")
	}

	rv.ID = model.ID
	rv.CreatedAt = model.CreatedAt
	rv.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找评论
func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	var model ReviewModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, apperrors.Wrap(err, "查询评论失败")
	}

	return toReviewEntity(&model), nil
}

// bookReviewRow 联表查询的扫描结构(评论+作者用户名)
type bookReviewRow struct {
	ReviewModel
	Username string
}

// FindByBook 查询某图书的评论,联表填充作者用户名
// 固定ID升序,最多limit条
func (r *reviewRepository) FindByBook(ctx context.Context, bookID uint, limit int) ([]*review.BookReview, error) {
	var rows []bookReviewRow

	err := r.db.WithContext(ctx).
		Model(&ReviewModel{}).
		Select("reviews.*, users.username AS username").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.book_id = ?", bookID).
		Order("reviews.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书评论失败")
	}

	out := make([]*review.BookReview, len(rows))
	for i := range rows {
		out[i] = &review.BookReview{
			Review:   *toReviewEntity(&rows[i].ReviewModel),
			Username: rows[i].Username,
		}
	}

	return out, nil
}

// Update 更新评论(整体覆盖rating与comment)
// Comment可能被清空,必须显式列出更新列,避免GORM忽略零值
func (r *reviewRepository) Update(ctx context.Context, rv *review.Review) error {
	result := r.db.WithContext(ctx).
		Model(&ReviewModel{}).
		Where("id = ?", rv.ID).
		Updates(map[string]interface{}{
			"rating":     rv.Rating,
			"comment":    rv.Comment,
			"updated_at": rv.UpdatedAt,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新评论失败")
	}

	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

// Delete 物理删除评论
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&ReviewModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除评论失败")
	}

	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

// toReviewEntity GORM模型 → 领域实体
func toReviewEntity(model *ReviewModel) *review.Review {
	return &review.Review{
		ID:        model.ID,
		BookID:    model.BookID,
		UserID:    model.UserID,
		Rating:    model.Rating,
		Comment:   model.Comment,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
