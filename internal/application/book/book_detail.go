package book

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ReallyKrishna/Book-Review-API/internal/domain/book"
	"github.com/ReallyKrishna/Book-Review-API/internal/domain/review"
	"github.com/ReallyKrishna/Book-Review-API/pkg/metrics"
)

// detailReviewLimit 详情页评论条数上限
// 平均评分也只基于这前N条计算(固定采样,非全集均值)
const detailReviewLimit = 10

// DetailCache 详情缓存接口
// 缓存层只负责字节载荷的存取,序列化由本用例完成
type DetailCache interface {
	// Get 获取缓存,未命中时hit=false且err=nil
	Get(ctx context.Context, bookID uint) (payload []byte, hit bool, err error)
	// Set 写入缓存
	Set(ctx context.Context, bookID uint, payload []byte) error
	// Invalidate 删除缓存
	Invalidate(ctx context.Context, bookID uint) error
}

// BookDetailUseCase 图书详情查询用例
// 设计说明:
// 1. 编排图书查询与评论查询两个领域服务
// 2. Cache-Aside:先查缓存,未命中查数据库后回填
// 3. 缓存故障(含熔断器打开)按未命中降级,不影响主流程
type BookDetailUseCase struct {
	bookService   book.Service
	reviewService review.Service
	cache         DetailCache
}

// NewBookDetailUseCase 创建详情查询用例
func NewBookDetailUseCase(
	bookService book.Service,
	reviewService review.Service,
	cache DetailCache,
) *BookDetailUseCase {
	return &BookDetailUseCase{
		bookService:   bookService,
		reviewService: reviewService,
		cache:         cache,
	}
}

// ReviewItem 详情页评论DTO(附带作者用户名)
type ReviewItem struct {
	ID        uint   `json:"id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// BookDetailResponse 详情响应DTO
type BookDetailResponse struct {
	Book          BookPayload  `json:"book"`
	AverageRating float64      `json:"averageRating"`
	Reviews       []ReviewItem `json:"reviews"`
}

// Execute 执行详情查询
func (uc *BookDetailUseCase) Execute(ctx context.Context, bookID uint) (*BookDetailResponse, error) {
	// 1. 查缓存
	if resp := uc.fromCache(ctx, bookID); resp != nil {
		return resp, nil
	}

	// 2. 查图书(不存在返回ErrBookNotFound)
	b, err := uc.bookService.GetBookByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	// 3. 查评论(最多detailReviewLimit条,附带作者用户名)
	reviews, err := uc.reviewService.ListBookReviews(ctx, bookID, detailReviewLimit)
	if err != nil {
		return nil, err
	}

	// 4. 组装响应
	items := make([]ReviewItem, len(reviews))
	for i, r := range reviews {
		items[i] = ReviewItem{
			ID:        r.ID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			Username:  r.Username,
			CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	resp := &BookDetailResponse{
		Book:          toBookPayload(b),
		AverageRating: review.AverageRating(reviews),
		Reviews:       items,
	}

	// 5. 回填缓存
	uc.toCache(ctx, bookID, resp)

	return resp, nil
}

// fromCache 读缓存,命中时反序列化返回,任何故障按未命中处理
func (uc *BookDetailUseCase) fromCache(ctx context.Context, bookID uint) *BookDetailResponse {
	if uc.cache == nil {
		return nil
	}

	payload, hit, err := uc.cache.Get(ctx, bookID)
	if err != nil {
		log.Printf("读取详情缓存失败(降级查库): %v", err)
		metrics.DetailCacheMissesTotal.Inc()
		return nil
	}
	if !hit {
		metrics.DetailCacheMissesTotal.Inc()
		return nil
	}

	var resp BookDetailResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		log.Printf("详情缓存反序列化失败(降级查库): %v", err)
		metrics.DetailCacheMissesTotal.Inc()
		return nil
	}

	metrics.DetailCacheHitsTotal.Inc()
	return &resp
}

// toCache 回填缓存,失败只记录日志
func (uc *BookDetailUseCase) toCache(ctx context.Context, bookID uint, resp *BookDetailResponse) {
	if uc.cache == nil {
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		log.Printf("详情缓存序列化失败: %v", err)
		return
	}

	if err := uc.cache.Set(ctx, bookID, payload); err != nil {
		log.Printf("写入详情缓存失败: %v", err)
	}
}
