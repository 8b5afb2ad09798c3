package user

import (
	"time"
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. 本系统中用户只承担两个角色：认证主体（注册/登录）与评论作者
//    （详情页展示username）
// 2. 密码已加密存储（bcrypt），不暴露明文
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type User struct {
	ID        uint
	Username  string // 用户名（全局唯一，评论展示用）
	Email     string // 邮箱（全局唯一，登录凭证）
	Password  string // bcrypt哈希值
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(username, email, hashedPassword string) *User {
	now := time.Now()
	return &User{
		Username:  username,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
