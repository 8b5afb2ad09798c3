package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 书名唯一性由存储层的唯一索引保证,Create在冲突时返回ErrTitleDuplicate
type Repository interface {
	// Create 创建图书
	// 书名冲突时返回ErrTitleDuplicate(来自存储层唯一索引冲突信号)
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	// 不存在时返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// List 分页查询图书列表
	// 返回当前页数据和过滤后(不含分页)的总记录数
	// 排序固定为ID升序,保证静态数据集下分页结果稳定
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

// ListParams 列表查询参数
// 过滤语义:
// - Keyword非空时执行搜索:书名或作者包含Keyword(子串,不区分大小写)
// - Keyword为空时,Author/Genre各自非空才参与过滤(子串,不区分大小写),两者为AND关系
type ListParams struct {
	Page    int    // 页码(从1开始)
	Limit   int    // 每页数量
	Author  string // 作者过滤(可选)
	Genre   string // 分类过滤(可选)
	Keyword string // 搜索关键词(搜索书名、作者)
}

// Offset 计算分页偏移量
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
