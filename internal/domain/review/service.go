package review

import (
	"context"
	"math"
)

// Service 评论领域服务接口
// 设计说明:
// 1. 封装评分校验、所有权检查等业务规则
// 2. 图书是否存在属于跨聚合校验,由应用层在提交前协调图书服务完成
type Service interface {
	// SubmitReview 提交评论
	// 业务规则:
	// - 评分必须为1-5的整数
	// - 同一用户对同一本书只能有一条评论(由存储层唯一索引仲裁,
	//   冲突返回ErrReviewDuplicate,不做先查后插)
	SubmitReview(ctx context.Context, bookID, userID uint, rating int, comment string) (*Review, error)

	// EditReview 修改评论
	// 业务规则:只有作者本人可以修改;rating与comment整体覆盖旧值
	EditReview(ctx context.Context, reviewID, userID uint, rating int, comment string) (*Review, error)

	// DeleteReview 删除评论(物理删除)
	// 业务规则:只有作者本人可以删除
	// 返回被删除的评论,供调用方做缓存失效等后续处理
	DeleteReview(ctx context.Context, reviewID, userID uint) (*Review, error)

	// ListBookReviews 查询某图书的评论(最多limit条),附带作者用户名
	ListBookReviews(ctx context.Context, bookID uint, limit int) ([]*BookReview, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建评论领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// SubmitReview 提交评论
func (s *service) SubmitReview(ctx context.Context, bookID, userID uint, rating int, comment string) (*Review, error) {
	// 1. 评分校验
	if !isValidRating(rating) {
		return nil, ErrInvalidRating
	}

	// 2. 创建评论实体并持久化
	// 唯一性不做预查:预查与插入之间存在并发窗口,唯一索引才是正确性的来源
	r := NewReview(bookID, userID, rating, comment)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// EditReview 修改评论
func (s *service) EditReview(ctx context.Context, reviewID, userID uint, rating int, comment string) (*Review, error) {
	// 1. 查询评论
	r, err := s.repo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	// 2. 所有权检查:只有作者可以修改
	if !r.IsAuthoredBy(userID) {
		return nil, ErrNotAuthor
	}

	// 3. 评分校验
	if !isValidRating(rating) {
		return nil, ErrInvalidRating
	}

	// 4. 整体覆盖并持久化
	r.Amend(rating, comment)
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// DeleteReview 删除评论
func (s *service) DeleteReview(ctx context.Context, reviewID, userID uint) (*Review, error) {
	// 1. 查询评论
	r, err := s.repo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	// 2. 所有权检查
	if !r.IsAuthoredBy(userID) {
		return nil, ErrNotAuthor
	}

	// 3. 物理删除
	if err := s.repo.Delete(ctx, r.ID); err != nil {
		return nil, err
	}

	return r, nil
}

// ListBookReviews 查询某图书的评论
func (s *service) ListBookReviews(ctx context.Context, bookID uint, limit int) ([]*BookReview, error) {
	return s.repo.FindByBook(ctx, bookID, limit)
}

// AverageRating 计算评论集的平均评分,保留1位小数
// 空集返回0(不是NaN)
func AverageRating(reviews []*BookReview) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10
}

// isValidRating 评分取值校验(1-5的整数)
func isValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
