package review

import (
	"context"
	"fmt"
	"testing"
)

// fakeRepo 内存版评论仓储,模拟存储层的复合唯一索引
type fakeRepo struct {
	nextID  uint
	byID    map[uint]*Review
	byPair  map[string]uint // "bookID:userID" → reviewID
	usernames map[uint]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		nextID:    1,
		byID:      make(map[uint]*Review),
		byPair:    make(map[string]uint),
		usernames: make(map[uint]string),
	}
}

func pairKey(bookID, userID uint) string {
	return fmt.Sprintf("%d:%d", bookID, userID)
}

func (f *fakeRepo) Create(ctx context.Context, r *Review) error {
	key := pairKey(r.BookID, r.UserID)
	if _, ok := f.byPair[key]; ok {
		// 模拟唯一索引冲突信号
		return ErrReviewDuplicate
	}
	r.ID = f.nextID
	f.nextID++
	cp := *r
	f.byID[r.ID] = &cp
	f.byPair[key] = r.ID
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id uint) (*Review, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, ErrReviewNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRepo) FindByBook(ctx context.Context, bookID uint, limit int) ([]*BookReview, error) {
	var out []*BookReview
	for id := uint(1); id < f.nextID; id++ {
		r, ok := f.byID[id]
		if !ok || r.BookID != bookID {
			continue
		}
		out = append(out, &BookReview{Review: *r, Username: f.usernames[r.UserID]})
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, r *Review) error {
	if _, ok := f.byID[r.ID]; !ok {
		return ErrReviewNotFound
	}
	cp := *r
	f.byID[r.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uint) error {
	r, ok := f.byID[id]
	if !ok {
		return ErrReviewNotFound
	}
	delete(f.byPair, pairKey(r.BookID, r.UserID))
	delete(f.byID, id)
	return nil
}

// TestSubmitReview_RatingBounds 测试评分边界值校验
func TestSubmitReview_RatingBounds(t *testing.T) {
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1, 100} {
		svc := NewService(newFakeRepo())
		if _, err := svc.SubmitReview(ctx, 1, 1, rating, ""); err != ErrInvalidRating {
			t.Errorf("评分%d应被拒绝,实际错误: %v", rating, err)
		}
	}

	for _, rating := range []int{1, 5} {
		svc := NewService(newFakeRepo())
		r, err := svc.SubmitReview(ctx, 1, 1, rating, "")
		if err != nil {
			t.Fatalf("评分%d应被接受,实际错误: %v", rating, err)
		}
		if r.Rating != rating {
			t.Errorf("期望评分%d,实际%d", rating, r.Rating)
		}
	}
}

// TestSubmitReview_CommentTrimmed 测试评论内容去除首尾空白
func TestSubmitReview_CommentTrimmed(t *testing.T) {
	svc := NewService(newFakeRepo())

	r, err := svc.SubmitReview(context.Background(), 1, 1, 4, "  不错的书  ")
	if err != nil {
		t.Fatalf("提交评论失败: %v", err)
	}
	if r.Comment != "不错的书" {
		t.Errorf("期望评论内容去除空白,实际%q", r.Comment)
	}
}

// TestSubmitReview_Duplicate 测试同一用户重复评论同一本书
func TestSubmitReview_Duplicate(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	if _, err := svc.SubmitReview(ctx, 1, 1, 5, "first"); err != nil {
		t.Fatalf("第一次提交应成功: %v", err)
	}

	// 同一用户对同一本书第二次提交
	if _, err := svc.SubmitReview(ctx, 1, 1, 3, "second"); err != ErrReviewDuplicate {
		t.Errorf("期望ErrReviewDuplicate,实际%v", err)
	}

	// 不同用户评论同一本书应成功
	if _, err := svc.SubmitReview(ctx, 1, 2, 4, ""); err != nil {
		t.Errorf("不同用户评论应成功: %v", err)
	}

	// 同一用户评论不同图书应成功
	if _, err := svc.SubmitReview(ctx, 2, 1, 4, ""); err != nil {
		t.Errorf("同一用户评论不同图书应成功: %v", err)
	}
}

// TestEditReview 测试评论修改(所有权与整体覆盖)
func TestEditReview(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	r, err := svc.SubmitReview(ctx, 1, 1, 5, "original comment")
	if err != nil {
		t.Fatalf("提交评论失败: %v", err)
	}

	// 非作者修改被拒绝
	if _, err := svc.EditReview(ctx, r.ID, 2, 3, "hijack"); err != ErrNotAuthor {
		t.Errorf("非作者修改期望ErrNotAuthor,实际%v", err)
	}

	// 作者修改,评分非法被拒绝
	if _, err := svc.EditReview(ctx, r.ID, 1, 0, ""); err != ErrInvalidRating {
		t.Errorf("非法评分期望ErrInvalidRating,实际%v", err)
	}

	// 作者修改成功,省略comment即清空(覆盖而非合并)
	updated, err := svc.EditReview(ctx, r.ID, 1, 3, "")
	if err != nil {
		t.Fatalf("作者修改应成功: %v", err)
	}
	if updated.Rating != 3 {
		t.Errorf("期望评分3,实际%d", updated.Rating)
	}
	if updated.Comment != "" {
		t.Errorf("期望评论被清空,实际%q", updated.Comment)
	}

	// 修改不存在的评论
	if _, err := svc.EditReview(ctx, 999, 1, 3, ""); err != ErrReviewNotFound {
		t.Errorf("期望ErrReviewNotFound,实际%v", err)
	}
}

// TestDeleteReview 测试评论删除(所有权、物理删除、删除后可重新评论)
func TestDeleteReview(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	r, err := svc.SubmitReview(ctx, 1, 1, 5, "")
	if err != nil {
		t.Fatalf("提交评论失败: %v", err)
	}

	// 非作者删除被拒绝
	if _, err := svc.DeleteReview(ctx, r.ID, 2); err != ErrNotAuthor {
		t.Errorf("非作者删除期望ErrNotAuthor,实际%v", err)
	}

	// 作者删除成功,返回被删除的评论
	deleted, err := svc.DeleteReview(ctx, r.ID, 1)
	if err != nil {
		t.Fatalf("作者删除应成功: %v", err)
	}
	if deleted.BookID != 1 {
		t.Errorf("期望返回被删除的评论,BookID应为1,实际%d", deleted.BookID)
	}
	if _, err := repo.FindByID(ctx, r.ID); err != ErrReviewNotFound {
		t.Errorf("删除后评论应不存在,实际%v", err)
	}

	// 删除后可重新评论同一本书
	if _, err := svc.SubmitReview(ctx, 1, 1, 2, ""); err != nil {
		t.Errorf("删除后重新评论应成功: %v", err)
	}

	// 删除不存在的评论
	if _, err := svc.DeleteReview(ctx, 999, 1); err != ErrReviewNotFound {
		t.Errorf("期望ErrReviewNotFound,实际%v", err)
	}
}

// TestAverageRating 测试平均评分计算
func TestAverageRating(t *testing.T) {
	mk := func(ratings ...int) []*BookReview {
		out := make([]*BookReview, len(ratings))
		for i, r := range ratings {
			out[i] = &BookReview{Review: Review{Rating: r}}
		}
		return out
	}

	cases := []struct {
		name    string
		reviews []*BookReview
		want    float64
	}{
		{"空集返回0", nil, 0},
		{"5,3,4的均分为4.0", mk(5, 3, 4), 4.0},
		{"四舍五入到1位小数", mk(4, 4, 5), 4.3}, // 13/3=4.333...
		{"单条评论", mk(2), 2.0},
		{"半分", mk(1, 2), 1.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AverageRating(tc.reviews); got != tc.want {
				t.Errorf("期望%.1f,实际%.1f", tc.want, got)
			}
		})
	}
}
