package dto

// CreateBookRequest HTTP创建图书请求
// validator tag说明:
// - required: 必填字段
// - max: 长度上限,与数据库列宽一致
type CreateBookRequest struct {
	Title       string `json:"title" binding:"required,max=200" example:"The Hobbit"`
	Author      string `json:"author" binding:"required,max=100" example:"J.R.R. Tolkien"`
	Genre       string `json:"genre" binding:"required,max=100" example:"Fantasy"`
	Description string `json:"description" binding:"max=5000" example:"A hobbit's unexpected journey"`
}

// ListBooksQuery HTTP图书列表查询参数
// page/limit缺省时由应用层补默认值(page=1, limit=10)
type ListBooksQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1" example:"1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100" example:"10"`
	Author string `form:"author" binding:"omitempty,max=100" example:"Tolkien"`
	Genre  string `form:"genre" binding:"omitempty,max=100" example:"Fantasy"`
}

// SearchBooksQuery HTTP图书搜索查询参数
// q为空由领域层拒绝,返回参数错误
type SearchBooksQuery struct {
	Q     string `form:"q" binding:"omitempty,max=100" example:"tolkien"`
	Page  int    `form:"page" binding:"omitempty,min=1" example:"1"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100" example:"10"`
}
