package review

import (
	"strings"
	"time"
)

// Review 评论实体(聚合根)
// DDD设计说明:
// 1. (BookID, UserID)是业务唯一标识:一个用户对一本书最多一条评论,
//    由数据库层的复合唯一索引保证
// 2. 评分取1-5的整数,评论内容可选
// 3. 评论只能被其作者修改/删除,且不能转移给其他用户或图书
type Review struct {
	ID        uint
	BookID    uint   // 所属图书ID
	UserID    uint   // 作者用户ID
	Rating    int    // 评分(1-5)
	Comment   string // 评论内容(可选)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookReview 带作者用户名的评论(用于图书详情页展示)
// Username由仓储层联表查询填充,不属于评论聚合本身
type BookReview struct {
	Review
	Username string
}

// NewReview 创建新评论(工厂方法)
// 评分校验由领域服务负责;评论内容去除首尾空白
func NewReview(bookID, userID uint, rating int, comment string) *Review {
	now := time.Now()
	return &Review{
		BookID:    bookID,
		UserID:    userID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAuthoredBy 检查评论是否由指定用户撰写
// 所有权检查:直接比较认证身份与存储的作者引用
func (r *Review) IsAuthoredBy(userID uint) bool {
	return r.UserID == userID
}

// Amend 修改评分与评论内容(领域行为)
// 新值总是整体覆盖旧值:省略comment即清空,不做合并
func (r *Review) Amend(rating int, comment string) {
	r.Rating = rating
	r.Comment = strings.TrimSpace(comment)
	r.UpdatedAt = time.Now()
}
