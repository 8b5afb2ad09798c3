package handler

import (
	"github.com/gin-gonic/gin"

	appreview "github.com/ReallyKrishna/Book-Review-API/internal/application/review"
	"github.com/ReallyKrishna/Book-Review-API/internal/interface/http/dto"
	"github.com/ReallyKrishna/Book-Review-API/internal/interface/http/middleware"
	"github.com/ReallyKrishna/Book-Review-API/pkg/response"
)

// ReviewHandler 评论HTTP处理器
type ReviewHandler struct {
	submitReviewUseCase *appreview.SubmitReviewUseCase
	editReviewUseCase   *appreview.EditReviewUseCase
	deleteReviewUseCase *appreview.DeleteReviewUseCase
}

// NewReviewHandler 创建评论处理器
func NewReviewHandler(
	submitReviewUseCase *appreview.SubmitReviewUseCase,
	editReviewUseCase *appreview.EditReviewUseCase,
	deleteReviewUseCase *appreview.DeleteReviewUseCase,
) *ReviewHandler {
	return &ReviewHandler{
		submitReviewUseCase: submitReviewUseCase,
		editReviewUseCase:   editReviewUseCase,
		deleteReviewUseCase: deleteReviewUseCase,
	}
}

// SubmitReview 提交评论
// @Summary      提交评论
// @Description  登录用户评论图书,同一用户对同一本书只能评论一次
// @Tags         评论
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.SubmitReviewRequest true "评论内容"
// @Success      201 {object} response.Response{data=appreview.ReviewPayload}
// @Failure      400 {object} response.Response "参数错误或已评论过"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id}/reviews [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	bookID, err := parseIDParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "图书ID格式错误")
		return
	}

	var req dto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.submitReviewUseCase.Execute(c.Request.Context(), appreview.SubmitReviewRequest{
		BookID:  bookID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// EditReview 修改评论
// @Summary      修改评论
// @Description  作者本人修改评论,rating与comment整体覆盖旧值
// @Tags         评论
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "评论ID"
// @Param        request body dto.EditReviewRequest true "新的评论内容"
// @Success      200 {object} response.Response{data=appreview.ReviewPayload}
// @Failure      403 {object} response.Response "非评论作者"
// @Failure      404 {object} response.Response "评论不存在"
// @Router       /reviews/{id} [put]
func (h *ReviewHandler) EditReview(c *gin.Context) {
	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "评论ID格式错误")
		return
	}

	var req dto.EditReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.editReviewUseCase.Execute(c.Request.Context(), appreview.EditReviewRequest{
		ReviewID: reviewID,
		UserID:   userID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteReview 删除评论
// @Summary      删除评论
// @Description  作者本人删除评论(物理删除),删除后可重新评论同一本书
// @Tags         评论
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "评论ID"
// @Success      200 {object} response.Response{data=dto.MessageResponse}
// @Failure      403 {object} response.Response "非评论作者"
// @Failure      404 {object} response.Response "评论不存在"
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "评论ID格式错误")
		return
	}

	userID := middleware.MustGetUserID(c)

	if err := h.deleteReviewUseCase.Execute(c.Request.Context(), reviewID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.MessageResponse{Message: "评论已删除"})
}
