package book

import (
	"context"

	"github.com/ReallyKrishna/Book-Review-API/internal/domain/book"
	"github.com/ReallyKrishna/Book-Review-API/pkg/metrics"
)

// CreateBookUseCase 图书创建用例
// 设计说明:
// 1. 应用层负责用例编排,业务规则校验由领域服务完成
// 2. 输入输出使用DTO,与HTTP层解耦
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建图书创建用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
	}
}

// CreateBookRequest 创建请求DTO
type CreateBookRequest struct {
	Title       string // 书名
	Author      string // 作者
	Genre       string // 分类
	Description string // 简介(可选)
}

// BookPayload 图书DTO(创建响应与详情共用)
type BookPayload struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Execute 执行图书创建
// 领域服务负责必填校验;书名重复由存储层唯一索引仲裁
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookPayload, error) {
	b, err := uc.bookService.CreateBook(ctx, req.Title, req.Author, req.Genre, req.Description)
	if err != nil {
		return nil, err
	}

	metrics.BooksCreatedTotal.Inc()

	payload := toBookPayload(b)
	return &payload, nil
}

// toBookPayload 领域实体 → DTO
func toBookPayload(b *book.Book) BookPayload {
	return BookPayload{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Genre:       b.Genre,
		Description: b.Description,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
