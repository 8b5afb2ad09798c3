package review

import (
	"context"
	"log"

	"github.com/ReallyKrishna/Book-Review-API/internal/domain/review"
)

// EditReviewUseCase 评论修改用例
// 所有权检查与评分校验由领域服务完成;修改成功后失效对应图书的详情缓存
type EditReviewUseCase struct {
	reviewService review.Service
	cache         DetailInvalidator
}

// NewEditReviewUseCase 创建评论修改用例
func NewEditReviewUseCase(reviewService review.Service, cache DetailInvalidator) *EditReviewUseCase {
	return &EditReviewUseCase{
		reviewService: reviewService,
		cache:         cache,
	}
}

// EditReviewRequest 修改请求DTO
// Comment整体覆盖旧值:省略即清空,不做合并
type EditReviewRequest struct {
	ReviewID uint   // 评论ID(来自路径参数)
	UserID   uint   // 请求用户ID(来自认证中间件)
	Rating   int    // 新评分(1-5)
	Comment  string // 新评论内容
}

// Execute 执行评论修改
func (uc *EditReviewUseCase) Execute(ctx context.Context, req EditReviewRequest) (*ReviewPayload, error) {
	r, err := uc.reviewService.EditReview(ctx, req.ReviewID, req.UserID, req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, r.BookID); err != nil {
			log.Printf("失效图书%d详情缓存失败: %v", r.BookID, err)
		}
	}

	payload := toReviewPayload(r)
	return &payload, nil
}
