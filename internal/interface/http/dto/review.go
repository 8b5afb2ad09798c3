package dto

// SubmitReviewRequest HTTP提交评论请求
// rating缺失或越界在绑定阶段拒绝,领域层会再次校验
type SubmitReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Comment string `json:"comment" binding:"omitempty,max=5000" example:"精彩的冒险故事"`
}

// EditReviewRequest HTTP修改评论请求
// comment省略即清空(整体覆盖,不做合并)
type EditReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5" example:"4"`
	Comment string `json:"comment" binding:"omitempty,max=5000" example:"重读后有新的感受"`
}

// MessageResponse 简单消息响应(删除等操作)
type MessageResponse struct {
	Message string `json:"message" example:"评论已删除"`
}
