package review

import (
	"context"
)

// Repository 评论仓储接口(依赖倒置原则)
// 设计说明:
// 1. (book_id, user_id)的唯一性完全由存储层的复合唯一索引仲裁:
//    Create不做预查,冲突信号由实现转换为ErrReviewDuplicate,
//    因此并发提交同一(book,user)时恰好一个成功
// 2. Delete是物理删除,评论没有软删除
type Repository interface {
	// Create 创建评论
	// (book_id,user_id)冲突时返回ErrReviewDuplicate
	Create(ctx context.Context, review *Review) error

	// FindByID 根据ID查找评论
	// 不存在时返回ErrReviewNotFound
	FindByID(ctx context.Context, id uint) (*Review, error)

	// FindByBook 查询某图书的评论(按ID升序,最多limit条),附带作者用户名
	FindByBook(ctx context.Context, bookID uint, limit int) ([]*BookReview, error)

	// Update 更新评论(整体覆盖rating与comment)
	Update(ctx context.Context, review *Review) error

	// Delete 物理删除评论
	// 不存在时返回ErrReviewNotFound
	Delete(ctx context.Context, id uint) error
}
