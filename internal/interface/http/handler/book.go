package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/ReallyKrishna/Book-Review-API/internal/application/book"
	"github.com/ReallyKrishna/Book-Review-API/internal/interface/http/dto"
	"github.com/ReallyKrishna/Book-Review-API/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createBookUseCase  *appbook.CreateBookUseCase
	listBooksUseCase   *appbook.ListBooksUseCase
	searchBooksUseCase *appbook.SearchBooksUseCase
	bookDetailUseCase  *appbook.BookDetailUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBookUseCase *appbook.CreateBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	searchBooksUseCase *appbook.SearchBooksUseCase,
	bookDetailUseCase *appbook.BookDetailUseCase,
) *BookHandler {
	return &BookHandler{
		createBookUseCase:  createBookUseCase,
		listBooksUseCase:   listBooksUseCase,
		searchBooksUseCase: searchBooksUseCase,
		bookDetailUseCase:  bookDetailUseCase,
	}
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  登录用户向书目添加新书,书名不能重复
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=appbook.BookPayload}
// @Failure      400 {object} response.Response "参数错误或书名重复"
// @Failure      401 {object} response.Response "未登录"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	// 2. 调用应用层用例
	result, err := h.createBookUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 创建成功返回201
	response.Created(c, result)
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  分页查询图书,支持作者/分类过滤(大小写不敏感的子串匹配,AND组合)
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码(默认1)"
// @Param        limit query int false "每页数量(默认10,最大100)"
// @Param        author query string false "作者过滤"
// @Param        genre query string false "分类过滤"
// @Success      200 {object} response.Response{data=appbook.ListBooksResponse}
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var query dto.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:   query.Page,
		Limit:  query.Limit,
		Author: query.Author,
		Genre:  query.Genre,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// SearchBooks 图书搜索
// @Summary      图书搜索
// @Description  按关键词搜索书名或作者(大小写不敏感的子串匹配,OR组合)
// @Tags         图书
// @Produce      json
// @Param        q query string true "搜索关键词"
// @Param        page query int false "页码(默认1)"
// @Param        limit query int false "每页数量(默认10,最大100)"
// @Success      200 {object} response.Response{data=appbook.ListBooksResponse}
// @Failure      400 {object} response.Response "关键词缺失"
// @Router       /books/search [get]
func (h *BookHandler) SearchBooks(c *gin.Context) {
	var query dto.SearchBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.searchBooksUseCase.Execute(c.Request.Context(), appbook.SearchBooksRequest{
		Keyword: query.Q,
		Page:    query.Page,
		Limit:   query.Limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBookDetail 图书详情
// @Summary      图书详情
// @Description  查询单本图书,附带前10条评论与平均评分
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookDetailResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookDetail(c *gin.Context) {
	bookID, err := parseIDParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "图书ID格式错误")
		return
	}

	result, err := h.bookDetailUseCase.Execute(c.Request.Context(), bookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// parseIDParam 解析路径中的数字ID参数
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
