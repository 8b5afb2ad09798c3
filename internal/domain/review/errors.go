package review

import (
	apperrors "github.com/ReallyKrishna/Book-Review-API/pkg/errors"
)

// 评论领域错误定义
var (
	// ErrReviewNotFound 评论不存在
	ErrReviewNotFound = apperrors.New(apperrors.ErrCodeReviewNotFound, "评论不存在")

	// ErrReviewDuplicate 用户已评论过该图书
	ErrReviewDuplicate = apperrors.New(apperrors.ErrCodeReviewDuplicate, "您已经评论过这本书")

	// ErrInvalidRating 评分必须为1-5的整数
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidParams, "评分必须为1-5的整数")

	// ErrNotAuthor 只有评论作者可以修改或删除评论
	ErrNotAuthor = apperrors.New(apperrors.ErrCodeForbidden, "无权操作他人的评论")
)
