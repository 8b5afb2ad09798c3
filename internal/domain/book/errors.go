package book

import (
	apperrors "github.com/ReallyKrishna/Book-Review-API/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrTitleDuplicate 书名已存在
	ErrTitleDuplicate = apperrors.New(apperrors.ErrCodeTitleDuplicate, "书名已存在")

	// ErrTitleRequired 书名不能为空
	ErrTitleRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空")

	// ErrAuthorRequired 作者不能为空
	ErrAuthorRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "作者不能为空")

	// ErrGenreRequired 分类不能为空
	ErrGenreRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "分类不能为空")

	// ErrKeywordRequired 搜索关键词不能为空
	ErrKeywordRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "搜索关键词不能为空")
)
