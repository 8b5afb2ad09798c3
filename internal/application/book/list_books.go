package book

import (
	"context"

	"github.com/ReallyKrishna/Book-Review-API/internal/domain/book"
)

// 分页参数约束
const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 支持分页与作者/分类过滤(AND组合,大小写不敏感的子串匹配)
// 2. 分页默认值与上限在应用层统一处理,领域层只接收规范化后的参数
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Page   int    // 页码(从1开始)
	Limit  int    // 每页数量
	Author string // 作者过滤(可选)
	Genre  string // 分类过滤(可选)
}

// BookListItem 列表项DTO
type BookListItem struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// ListBooksResponse 列表查询响应DTO
// total/pages基于过滤后的全集计算,与当前页无关
type ListBooksResponse struct {
	Books []BookListItem `json:"books"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
}

// Execute 执行列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	page, limit := normalizePaging(req.Page, req.Limit)

	params := book.ListParams{
		Page:   page,
		Limit:  limit,
		Author: req.Author,
		Genre:  req.Genre,
	}

	books, total, err := uc.bookService.ListBooks(ctx, params)
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

// normalizePaging 分页参数默认值与上限处理
// page默认1,limit默认10,limit最大100
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// totalPages 总页数 = ceil(total/limit)
func totalPages(total int64, limit int) int {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

// toBookListItems 领域实体列表 → DTO列表
func toBookListItems(books []*book.Book) []BookListItem {
	items := make([]BookListItem, len(books))
	for i, b := range books {
		items[i] = BookListItem{
			ID:          b.ID,
			Title:       b.Title,
			Author:      b.Author,
			Genre:       b.Genre,
			Description: b.Description,
			CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return items
}
