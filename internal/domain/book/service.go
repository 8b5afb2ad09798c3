package book

import (
	"context"
	"strings"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验,不依赖具体的Repository实现(依赖倒置)
// 2. 图书没有更新/删除路径,服务面只有创建与查询
type Service interface {
	// CreateBook 创建图书
	// 业务规则:
	// - 书名、作者、分类必填
	// - 书名不能重复(由存储层唯一索引保证,冲突返回ErrTitleDuplicate)
	CreateBook(ctx context.Context, title, author, genre, description string) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// ListBooks 分页查询图书列表
	// 公开接口,支持作者/分类过滤(AND组合,子串匹配不区分大小写)
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// SearchBooks 全文搜索
	// 业务规则:关键词必填;匹配书名或作者(OR组合,子串匹配不区分大小写)
	SearchBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, title, author, genre, description string) (*Book, error) {
	// 1. 必填字段校验
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	genre = strings.TrimSpace(genre)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if author == "" {
		return nil, ErrAuthorRequired
	}
	if genre == "" {
		return nil, ErrGenreRequired
	}

	// 2. 创建图书实体并持久化
	// 书名唯一性不做预查:唯一索引是唯一的仲裁者,冲突由Repository转换为ErrTitleDuplicate
	b := NewBook(title, author, genre, description)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	params.Keyword = "" // 列表查询只走Author/Genre过滤
	return s.repo.List(ctx, params)
}

// SearchBooks 全文搜索(书名或作者)
func (s *service) SearchBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	if strings.TrimSpace(params.Keyword) == "" {
		return nil, 0, ErrKeywordRequired
	}
	// 搜索与Author/Genre过滤互斥,以关键词为准
	params.Author = ""
	params.Genre = ""
	return s.repo.List(ctx, params)
}
