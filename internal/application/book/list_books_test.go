package book

import (
	"context"
	"testing"

	"github.com/ReallyKrishna/Book-Review-API/internal/domain/book"
)

// fakeBookService 图书领域服务的测试替身
// 记录最近一次收到的查询参数,返回预置数据
type fakeBookService struct {
	books      []*book.Book
	total      int64
	err        error
	lastParams book.ListParams
	calls      int
}

func (f *fakeBookService) CreateBook(ctx context.Context, title, author, genre, description string) (*book.Book, error) {
	return nil, f.err
}

func (f *fakeBookService) GetBookByID(ctx context.Context, id uint) (*book.Book, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.books) == 0 {
		return nil, book.ErrBookNotFound
	}
	return f.books[0], nil
}

func (f *fakeBookService) ListBooks(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	f.lastParams = params
	return f.books, f.total, f.err
}

func (f *fakeBookService) SearchBooks(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	f.lastParams = params
	if params.Keyword == "" {
		return nil, 0, book.ErrKeywordRequired
	}
	return f.books, f.total, f.err
}

// TestListBooks_PagingDefaults 测试分页参数默认值
func TestListBooks_PagingDefaults(t *testing.T) {
	svc := &fakeBookService{}
	uc := NewListBooksUseCase(svc)

	resp, err := uc.Execute(context.Background(), ListBooksRequest{})
	if err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}

	if svc.lastParams.Page != 1 || svc.lastParams.Limit != 10 {
		t.Errorf("期望默认page=1 limit=10,实际page=%d limit=%d",
			svc.lastParams.Page, svc.lastParams.Limit)
	}
	if resp.Page != 1 {
		t.Errorf("响应page应为1,实际%d", resp.Page)
	}
}

// TestListBooks_LimitCap 测试每页数量上限
func TestListBooks_LimitCap(t *testing.T) {
	svc := &fakeBookService{}
	uc := NewListBooksUseCase(svc)

	if _, err := uc.Execute(context.Background(), ListBooksRequest{Page: 1, Limit: 500}); err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}

	if svc.lastParams.Limit != 100 {
		t.Errorf("limit应被限制为100,实际%d", svc.lastParams.Limit)
	}
}

// TestListBooks_TotalPages 测试总页数计算(pages = ceil(total/limit))
func TestListBooks_TotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{25, 10, 3},
		{20, 10, 2},
		{1, 10, 1},
		{0, 10, 0},
		{10, 10, 1},
		{11, 10, 2},
	}

	for _, tc := range cases {
		svc := &fakeBookService{total: tc.total}
		uc := NewListBooksUseCase(svc)

		resp, err := uc.Execute(context.Background(), ListBooksRequest{Page: 1, Limit: tc.limit})
		if err != nil {
			t.Fatalf("列表查询失败: %v", err)
		}
		if resp.Pages != tc.want {
			t.Errorf("total=%d limit=%d: 期望pages=%d,实际%d",
				tc.total, tc.limit, tc.want, resp.Pages)
		}
		if resp.Total != tc.total {
			t.Errorf("total应为%d,实际%d", tc.total, resp.Total)
		}
	}
}

// TestListBooks_FiltersForwarded 测试作者/分类过滤参数透传
func TestListBooks_FiltersForwarded(t *testing.T) {
	svc := &fakeBookService{}
	uc := NewListBooksUseCase(svc)

	req := ListBooksRequest{Page: 2, Limit: 5, Author: "Tolkien", Genre: "Fantasy"}
	if _, err := uc.Execute(context.Background(), req); err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}

	if svc.lastParams.Author != "Tolkien" || svc.lastParams.Genre != "Fantasy" {
		t.Errorf("过滤参数未透传: %+v", svc.lastParams)
	}
	if svc.lastParams.Page != 2 || svc.lastParams.Limit != 5 {
		t.Errorf("分页参数未透传: %+v", svc.lastParams)
	}
}

// TestSearchBooks_KeywordRequired 测试搜索关键词必填
func TestSearchBooks_KeywordRequired(t *testing.T) {
	svc := &fakeBookService{}
	uc := NewSearchBooksUseCase(svc)

	if _, err := uc.Execute(context.Background(), SearchBooksRequest{}); err != book.ErrKeywordRequired {
		t.Errorf("空关键词期望ErrKeywordRequired,实际%v", err)
	}
}

// TestSearchBooks_SamePagingContract 测试搜索与列表的分页契约一致
func TestSearchBooks_SamePagingContract(t *testing.T) {
	svc := &fakeBookService{total: 25}
	uc := NewSearchBooksUseCase(svc)

	resp, err := uc.Execute(context.Background(), SearchBooksRequest{Keyword: "go"})
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}

	if svc.lastParams.Page != 1 || svc.lastParams.Limit != 10 {
		t.Errorf("期望默认page=1 limit=10,实际%+v", svc.lastParams)
	}
	if resp.Pages != 3 {
		t.Errorf("total=25 limit=10期望pages=3,实际%d", resp.Pages)
	}
}
