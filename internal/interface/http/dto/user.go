package dto

// RegisterRequest HTTP注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50" example:"bookworm"`
	Email    string `json:"email" binding:"required,email" example:"reader@example.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"passw0rd123"`
}

// LoginRequest HTTP登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"reader@example.com"`
	Password string `json:"password" binding:"required" example:"passw0rd123"`
}
