package book

import (
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,书名是业务唯一标识(数据库层保证唯一性)
// 2. 图书一经创建不再修改或删除,评论的均分永远在读取时计算,不落在Book上
type Book struct {
	ID          uint
	Title       string // 书名(全局唯一)
	Author      string // 作者
	Genre       string // 分类
	Description string // 图书简介(可选)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
// 字段校验由领域服务负责,此处只负责组装
func NewBook(title, author, genre, description string) *Book {
	now := time.Now()
	return &Book{
		Title:       title,
		Author:      author,
		Genre:       genre,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
