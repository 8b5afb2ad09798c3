package review

import (
	"context"
	"log"

	"github.com/ReallyKrishna/Book-Review-API/internal/domain/review"
)

// DeleteReviewUseCase 评论删除用例
// 删除是物理删除,删除后该用户可重新评论同一本书
type DeleteReviewUseCase struct {
	reviewService review.Service
	cache         DetailInvalidator
}

// NewDeleteReviewUseCase 创建评论删除用例
func NewDeleteReviewUseCase(reviewService review.Service, cache DetailInvalidator) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviewService: reviewService,
		cache:         cache,
	}
}

// Execute 执行评论删除
// 所有权检查由领域服务完成;删除成功后失效对应图书的详情缓存
func (uc *DeleteReviewUseCase) Execute(ctx context.Context, reviewID, userID uint) error {
	r, err := uc.reviewService.DeleteReview(ctx, reviewID, userID)
	if err != nil {
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, r.BookID); err != nil {
			log.Printf("失效图书%d详情缓存失败: %v", r.BookID, err)
		}
	}

	return nil
}
