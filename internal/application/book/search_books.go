package book

import (
	"context"

	"github.com/ReallyKrishna/Book-Review-API/internal/domain/book"
)

// SearchBooksUseCase 图书搜索用例
// 设计说明:
// 1. 关键词匹配书名或作者(OR组合,大小写不敏感的子串匹配)
// 2. 分页契约与列表查询一致,响应复用ListBooksResponse
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建搜索用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{
		bookService: bookService,
	}
}

// SearchBooksRequest 搜索请求DTO
type SearchBooksRequest struct {
	Keyword string // 搜索关键词(必填)
	Page    int    // 页码(从1开始)
	Limit   int    // 每页数量
}

// Execute 执行搜索
// 关键词为空由领域服务拒绝(ErrKeywordRequired)
func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchBooksRequest) (*ListBooksResponse, error) {
	page, limit := normalizePaging(req.Page, req.Limit)

	params := book.ListParams{
		Page:    page,
		Limit:   limit,
		Keyword: req.Keyword,
	}

	books, total, err := uc.bookService.SearchBooks(ctx, params)
	if err != nil {
		return nil, err
	}

	return &ListBooksResponse{
		Books: toBookListItems(books),
		Total: total,
		Page:  page,
		Pages: totalPages(total, limit),
	}, nil
}
