package review

import (
	"context"
	"errors"
	"log"

	"github.com/ReallyKrishna/Book-Review-API/internal/domain/book"
	"github.com/ReallyKrishna/Book-Review-API/internal/domain/review"
	"github.com/ReallyKrishna/Book-Review-API/pkg/metrics"
)

// DetailInvalidator 详情缓存失效接口
// 评论的增删改会改变详情页的评论列表与平均分,写路径完成后必须失效对应图书的缓存
type DetailInvalidator interface {
	Invalidate(ctx context.Context, bookID uint) error
}

// SubmitReviewUseCase 评论提交用例
// 设计说明:
// 1. 图书是否存在属于跨聚合校验,由本用例在提交前协调图书服务完成
// 2. (book,user)唯一性不做预查:存储层唯一索引是唯一的仲裁者,
//    先查后插在并发下有竞态窗口,领域服务直接提交并转换冲突信号
// 3. 提交成功后失效该图书的详情缓存(失败只记录日志,不影响主流程)
type SubmitReviewUseCase struct {
	reviewService review.Service
	bookService   book.Service
	cache         DetailInvalidator
}

// NewSubmitReviewUseCase 创建评论提交用例
func NewSubmitReviewUseCase(
	reviewService review.Service,
	bookService book.Service,
	cache DetailInvalidator,
) *SubmitReviewUseCase {
	return &SubmitReviewUseCase{
		reviewService: reviewService,
		bookService:   bookService,
		cache:         cache,
	}
}

// SubmitReviewRequest 提交请求DTO
type SubmitReviewRequest struct {
	BookID  uint   // 图书ID(来自路径参数)
	UserID  uint   // 作者用户ID(来自认证中间件)
	Rating  int    // 评分(1-5)
	Comment string // 评论内容(可选)
}

// ReviewPayload 评论DTO(提交/修改响应共用)
type ReviewPayload struct {
	ID        uint   `json:"id"`
	BookID    uint   `json:"book_id"`
	UserID    uint   `json:"user_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Execute 执行评论提交
func (uc *SubmitReviewUseCase) Execute(ctx context.Context, req SubmitReviewRequest) (*ReviewPayload, error) {
	// 1. 图书必须存在(不存在返回ErrBookNotFound)
	if _, err := uc.bookService.GetBookByID(ctx, req.BookID); err != nil {
		return nil, err
	}

	// 2. 提交评论(评分校验、唯一性仲裁由领域服务/存储层负责)
	r, err := uc.reviewService.SubmitReview(ctx, req.BookID, req.UserID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, review.ErrReviewDuplicate) {
			metrics.ReviewConflictsTotal.Inc()
		}
		return nil, err
	}

	metrics.ReviewsSubmittedTotal.Inc()

	// 3. 失效详情缓存
	uc.invalidateDetail(ctx, req.BookID)

	payload := toReviewPayload(r)
	return &payload, nil
}

// invalidateDetail 失效详情缓存,失败只记录日志
func (uc *SubmitReviewUseCase) invalidateDetail(ctx context.Context, bookID uint) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, bookID); err != nil {
		log.Printf("失效图书%d详情缓存失败: %v", bookID, err)
	}
}

// toReviewPayload 领域实体 → DTO
func toReviewPayload(r *review.Review) ReviewPayload {
	return ReviewPayload{
		ID:        r.ID,
		BookID:    r.BookID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: r.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
