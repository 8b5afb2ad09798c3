package book

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ReallyKrishna/Book-Review-API/internal/domain/book"
	"github.com/ReallyKrishna/Book-Review-API/internal/domain/review"
)

// fakeReviewService 评论领域服务的测试替身
type fakeReviewService struct {
	reviews []*review.BookReview
	err     error
}

func (f *fakeReviewService) SubmitReview(ctx context.Context, bookID, userID uint, rating int, comment string) (*review.Review, error) {
	return nil, f.err
}

func (f *fakeReviewService) EditReview(ctx context.Context, reviewID, userID uint, rating int, comment string) (*review.Review, error) {
	return nil, f.err
}

func (f *fakeReviewService) DeleteReview(ctx context.Context, reviewID, userID uint) (*review.Review, error) {
	return nil, f.err
}

func (f *fakeReviewService) ListBookReviews(ctx context.Context, bookID uint, limit int) ([]*review.BookReview, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.reviews) > limit {
		return f.reviews[:limit], nil
	}
	return f.reviews, nil
}

// fakeDetailCache 内存版详情缓存
type fakeDetailCache struct {
	data    map[uint][]byte
	getErr  error
	sets    int
	deletes int
}

func newFakeDetailCache() *fakeDetailCache {
	return &fakeDetailCache{data: make(map[uint][]byte)}
}

func (f *fakeDetailCache) Get(ctx context.Context, bookID uint) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	payload, ok := f.data[bookID]
	return payload, ok, nil
}

func (f *fakeDetailCache) Set(ctx context.Context, bookID uint, payload []byte) error {
	f.sets++
	f.data[bookID] = payload
	return nil
}

func (f *fakeDetailCache) Invalidate(ctx context.Context, bookID uint) error {
	f.deletes++
	delete(f.data, bookID)
	return nil
}

func mkBookReviews(ratings ...int) []*review.BookReview {
	out := make([]*review.BookReview, len(ratings))
	for i, r := range ratings {
		out[i] = &review.BookReview{
			Review: review.Review{
				ID:        uint(i + 1),
				BookID:    1,
				UserID:    uint(i + 1),
				Rating:    r,
				CreatedAt: time.Now(),
			},
			Username: "reader",
		}
	}
	return out
}

func testBook() *book.Book {
	return &book.Book{
		ID:        1,
		Title:     "The Hobbit",
		Author:    "J.R.R. Tolkien",
		Genre:     "Fantasy",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// TestBookDetail_AverageRating 测试平均评分(5,3,4 → 4.0)
func TestBookDetail_AverageRating(t *testing.T) {
	uc := NewBookDetailUseCase(
		&fakeBookService{books: []*book.Book{testBook()}},
		&fakeReviewService{reviews: mkBookReviews(5, 3, 4)},
		newFakeDetailCache(),
	)

	resp, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("详情查询失败: %v", err)
	}

	if resp.AverageRating != 4.0 {
		t.Errorf("期望平均分4.0,实际%.1f", resp.AverageRating)
	}
	if len(resp.Reviews) != 3 {
		t.Errorf("期望3条评论,实际%d", len(resp.Reviews))
	}
	if resp.Book.Title != "The Hobbit" {
		t.Errorf("期望书名The Hobbit,实际%q", resp.Book.Title)
	}
}

// TestBookDetail_NoReviews 测试无评论时平均分为0
func TestBookDetail_NoReviews(t *testing.T) {
	uc := NewBookDetailUseCase(
		&fakeBookService{books: []*book.Book{testBook()}},
		&fakeReviewService{},
		newFakeDetailCache(),
	)

	resp, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("详情查询失败: %v", err)
	}

	if resp.AverageRating != 0 {
		t.Errorf("无评论时平均分应为0,实际%.1f", resp.AverageRating)
	}
	if len(resp.Reviews) != 0 {
		t.Errorf("期望0条评论,实际%d", len(resp.Reviews))
	}
}

// TestBookDetail_ReviewCap 测试评论条数上限(最多10条,均分只基于这10条)
func TestBookDetail_ReviewCap(t *testing.T) {
	// 前10条全是5分,第11、12条是1分
	ratings := make([]int, 12)
	for i := 0; i < 10; i++ {
		ratings[i] = 5
	}
	ratings[10], ratings[11] = 1, 1

	uc := NewBookDetailUseCase(
		&fakeBookService{books: []*book.Book{testBook()}},
		&fakeReviewService{reviews: mkBookReviews(ratings...)},
		newFakeDetailCache(),
	)

	resp, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("详情查询失败: %v", err)
	}

	if len(resp.Reviews) != 10 {
		t.Errorf("评论应被截断为10条,实际%d", len(resp.Reviews))
	}
	if resp.AverageRating != 5.0 {
		t.Errorf("均分应只基于前10条(全5分),实际%.1f", resp.AverageRating)
	}
}

// TestBookDetail_NotFound 测试图书不存在
func TestBookDetail_NotFound(t *testing.T) {
	cache := newFakeDetailCache()
	uc := NewBookDetailUseCase(
		&fakeBookService{}, // 无图书
		&fakeReviewService{},
		cache,
	)

	if _, err := uc.Execute(context.Background(), 999); err != book.ErrBookNotFound {
		t.Errorf("期望ErrBookNotFound,实际%v", err)
	}
	if cache.sets != 0 {
		t.Errorf("图书不存在时不应写缓存")
	}
}

// TestBookDetail_CacheHit 测试缓存命中(第二次查询不落库)
func TestBookDetail_CacheHit(t *testing.T) {
	bookSvc := &fakeBookService{books: []*book.Book{testBook()}}
	cache := newFakeDetailCache()
	uc := NewBookDetailUseCase(bookSvc, &fakeReviewService{reviews: mkBookReviews(4)}, cache)
	ctx := context.Background()

	// 第一次:未命中,查库并回填
	first, err := uc.Execute(ctx, 1)
	if err != nil {
		t.Fatalf("第一次查询失败: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("首次查询应回填缓存,实际写入%d次", cache.sets)
	}

	// 第二次:命中缓存,不再调用图书服务
	callsBefore := bookSvc.calls
	second, err := uc.Execute(ctx, 1)
	if err != nil {
		t.Fatalf("第二次查询失败: %v", err)
	}
	if bookSvc.calls != callsBefore {
		t.Errorf("缓存命中时不应查库")
	}
	if second.AverageRating != first.AverageRating || second.Book.ID != first.Book.ID {
		t.Errorf("缓存结果与首次查询不一致")
	}
}

// TestBookDetail_CacheFailureDegrades 测试缓存故障降级查库
func TestBookDetail_CacheFailureDegrades(t *testing.T) {
	cache := newFakeDetailCache()
	cache.getErr = errors.New("connection refused")

	uc := NewBookDetailUseCase(
		&fakeBookService{books: []*book.Book{testBook()}},
		&fakeReviewService{reviews: mkBookReviews(3)},
		cache,
	)

	resp, err := uc.Execute(context.Background(), 1)
	if err != nil {
		t.Fatalf("缓存故障不应影响详情查询: %v", err)
	}
	if resp.AverageRating != 3.0 {
		t.Errorf("期望平均分3.0,实际%.1f", resp.AverageRating)
	}
}
