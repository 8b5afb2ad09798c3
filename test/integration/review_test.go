package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 评论模块集成测试
//
// 测试场景覆盖:
// 1. 提交评论(认证、图书存在性、评分范围、一人一书一评)
// 2. 详情页评论列表与平均评分
// 3. 修改/删除的所有权控制

// TestReviewFlow 测试评论完整流程
func TestReviewFlow(t *testing.T) {
	SkipIfServerDown(t)

	_, tokenA := RegisterTestUser(t, "reviewer_a")
	_, tokenB := RegisterTestUser(t, "reviewer_b")
	bookID := CreateTestBook(t, tokenA, GenerateTestTitle("ReviewTarget"), "Some Author", "Fiction")
	reviewURL := fmt.Sprintf("%s/books/%d/reviews", BaseURL, bookID)
	detailURL := fmt.Sprintf("%s/books/%d", BaseURL, bookID)

	t.Run("无评论时平均分为0", func(t *testing.T) {
		resp, _ := GetJSON(t, detailURL, "")
		require.Equal(t, 0, resp.Code, "详情查询应该成功: %s", resp.Message)

		var data BookDetailData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, float64(0), data.AverageRating, "无评论时平均分应为0")
		assert.Len(t, data.Reviews, 0)
	})

	t.Run("提交评论", func(t *testing.T) {
		resp, status := PostJSON(t, reviewURL, map[string]interface{}{
			"rating":  5,
			"comment": "excellent",
		}, tokenA)

		assert.Equal(t, http.StatusCreated, status, "提交成功应返回201")
		require.Equal(t, 0, resp.Code, "提交应该成功: %s", resp.Message)

		var data ReviewData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, bookID, data.BookID)
		assert.Equal(t, 5, data.Rating)
	})

	t.Run("同一用户重复评论被拒绝", func(t *testing.T) {
		resp, status := PostJSON(t, reviewURL, map[string]interface{}{
			"rating": 3,
		}, tokenA)

		assert.NotEqual(t, 0, resp.Code, "重复评论应该失败")
		assert.Equal(t, http.StatusBadRequest, status, "重复评论应返回400")
	})

	t.Run("不同用户评论同一本书成功", func(t *testing.T) {
		resp, status := PostJSON(t, reviewURL, map[string]interface{}{
			"rating":  3,
			"comment": "not bad",
		}, tokenB)

		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, 0, resp.Code, "不同用户评论应该成功: %s", resp.Message)
	})

	t.Run("详情返回评论与平均分", func(t *testing.T) {
		resp, _ := GetJSON(t, detailURL, "")
		require.Equal(t, 0, resp.Code)

		var data BookDetailData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Len(t, data.Reviews, 2, "应有2条评论")
		assert.Equal(t, 4.0, data.AverageRating, "(5+3)/2 = 4.0")
		for _, r := range data.Reviews {
			assert.NotEmpty(t, r.Username, "评论应附带作者用户名")
		}
	})

	t.Run("评分越界被拒绝", func(t *testing.T) {
		bookID2 := CreateTestBook(t, tokenA, GenerateTestTitle("RatingBounds"), "Some Author", "Fiction")
		url := fmt.Sprintf("%s/books/%d/reviews", BaseURL, bookID2)

		for _, rating := range []int{0, 6} {
			resp, status := PostJSON(t, url, map[string]interface{}{"rating": rating}, tokenA)
			assert.NotEqual(t, 0, resp.Code, "评分%d应该被拒绝", rating)
			assert.Equal(t, http.StatusBadRequest, status)
		}
	})

	t.Run("评论不存在的图书返回404", func(t *testing.T) {
		url := fmt.Sprintf("%s/books/99999999/reviews", BaseURL)
		resp, status := PostJSON(t, url, map[string]interface{}{"rating": 5}, tokenA)

		assert.NotEqual(t, 0, resp.Code)
		assert.Equal(t, http.StatusNotFound, status, "图书不存在应返回404")
	})
}

// TestReviewOwnership 测试评论修改/删除的所有权控制
func TestReviewOwnership(t *testing.T) {
	SkipIfServerDown(t)

	_, tokenA := RegisterTestUser(t, "owner_a")
	_, tokenB := RegisterTestUser(t, "owner_b")
	bookID := CreateTestBook(t, tokenA, GenerateTestTitle("OwnershipTarget"), "Some Author", "Fiction")

	// A提交评论
	resp, _ := PostJSON(t, fmt.Sprintf("%s/books/%d/reviews", BaseURL, bookID),
		map[string]interface{}{"rating": 5, "comment": "original"}, tokenA)
	require.Equal(t, 0, resp.Code, "提交评论失败: %s", resp.Message)

	var created ReviewData
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	editURL := fmt.Sprintf("%s/reviews/%d", BaseURL, created.ID)

	t.Run("非作者修改返回403", func(t *testing.T) {
		resp, status := PutJSON(t, editURL, map[string]interface{}{"rating": 1}, tokenB)
		assert.NotEqual(t, 0, resp.Code)
		assert.Equal(t, http.StatusForbidden, status, "非作者修改应返回403")
	})

	t.Run("作者修改成功且整体覆盖", func(t *testing.T) {
		// 省略comment即清空
		resp, status := PutJSON(t, editURL, map[string]interface{}{"rating": 2}, tokenA)
		assert.Equal(t, http.StatusOK, status)
		require.Equal(t, 0, resp.Code, "作者修改应该成功: %s", resp.Message)

		var updated ReviewData
		require.NoError(t, json.Unmarshal(resp.Data, &updated))
		assert.Equal(t, 2, updated.Rating)
		assert.Empty(t, updated.Comment, "省略comment应清空旧值")
	})

	t.Run("非作者删除返回403", func(t *testing.T) {
		resp, status := DeleteJSON(t, editURL, tokenB)
		assert.NotEqual(t, 0, resp.Code)
		assert.Equal(t, http.StatusForbidden, status, "非作者删除应返回403")
	})

	t.Run("作者删除成功后可重新评论", func(t *testing.T) {
		resp, status := DeleteJSON(t, editURL, tokenA)
		assert.Equal(t, http.StatusOK, status)
		require.Equal(t, 0, resp.Code, "作者删除应该成功: %s", resp.Message)

		// 删除后重新评论同一本书
		resp2, status2 := PostJSON(t, fmt.Sprintf("%s/books/%d/reviews", BaseURL, bookID),
			map[string]interface{}{"rating": 4}, tokenA)
		assert.Equal(t, http.StatusCreated, status2)
		assert.Equal(t, 0, resp2.Code, "删除后重新评论应该成功: %s", resp2.Message)
	})

	t.Run("删除不存在的评论返回404", func(t *testing.T) {
		url := fmt.Sprintf("%s/reviews/99999999", BaseURL)
		resp, status := DeleteJSON(t, url, tokenA)
		assert.NotEqual(t, 0, resp.Code)
		assert.Equal(t, http.StatusNotFound, status)
	})
}
