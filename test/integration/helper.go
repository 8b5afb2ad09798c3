package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 这些测试需要一个运行中的服务实例(以及MySQL/Redis),
// 服务不可达时整组测试跳过,不计为失败

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// BookData 图书响应数据
type BookData struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}

// BookListData 图书列表响应数据
type BookListData struct {
	Books []BookData `json:"books"`
	Total int64      `json:"total"`
	Page  int        `json:"page"`
	Pages int        `json:"pages"`
}

// ReviewData 评论响应数据
type ReviewData struct {
	ID      uint   `json:"id"`
	BookID  uint   `json:"book_id"`
	UserID  uint   `json:"user_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// BookDetailData 图书详情响应数据
type BookDetailData struct {
	Book          BookData `json:"book"`
	AverageRating float64  `json:"averageRating"`
	Reviews       []struct {
		ID       uint   `json:"id"`
		Rating   int    `json:"rating"`
		Comment  string `json:"comment"`
		Username string `json:"username"`
	} `json:"reviews"`
}

// SkipIfServerDown 服务不可达时跳过测试
func SkipIfServerDown(t *testing.T) {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(BaseURL + "/ping")
	if err != nil {
		t.Skipf("服务未启动,跳过集成测试: %v", err)
	}
	resp.Body.Close()
}

// doJSON 发送HTTP请求并解析统一响应结构
// 返回响应体与HTTP状态码(部分用例需要断言201/403/404)
func doJSON(t *testing.T, method, url string, data interface{}, token string) (*Response, int) {
	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	return &result, resp.StatusCode
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}, token string) (*Response, int) {
	return doJSON(t, http.MethodPost, url, data, token)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string, token string) (*Response, int) {
	return doJSON(t, http.MethodGet, url, nil, token)
}

// PutJSON 发送PUT请求
func PutJSON(t *testing.T, url string, data interface{}, token string) (*Response, int) {
	return doJSON(t, http.MethodPut, url, data, token)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string, token string) (*Response, int) {
	return doJSON(t, http.MethodDelete, url, nil, token)
}

// uniqueSuffix 生成唯一后缀,避免测试重复运行时数据冲突
func uniqueSuffix() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// GenerateTestEmail 生成唯一的测试邮箱
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%s@test.com", prefix, uniqueSuffix())
}

// GenerateTestTitle 生成唯一的测试书名(书名有唯一索引)
func GenerateTestTitle(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uniqueSuffix())
}

// RegisterTestUser 注册测试用户并返回Token
// 封装注册+登录的完整流程,让测试更关注业务逻辑
func RegisterTestUser(t *testing.T, username string) (email string, token string) {
	email = GenerateTestEmail(username)
	registerReq := map[string]string{
		"username": fmt.Sprintf("%s_%s", username, uniqueSuffix()[:8]),
		"email":    email,
		"password": "Test1234",
	}

	registerResp, _ := PostJSON(t, BaseURL+"/users/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	loginReq := map[string]string{
		"email":    email,
		"password": "Test1234",
	}

	loginResp, _ := PostJSON(t, BaseURL+"/users/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return email, loginData.AccessToken
}

// CreateTestBook 创建测试图书并返回图书ID
func CreateTestBook(t *testing.T, token, title, author, genre string) uint {
	bookReq := map[string]string{
		"title":       title,
		"author":      author,
		"genre":       genre,
		"description": "集成测试用图书",
	}

	resp, status := PostJSON(t, BaseURL+"/books", bookReq, token)
	require.Equal(t, 0, resp.Code, "创建图书失败: %s", resp.Message)
	require.Equal(t, http.StatusCreated, status, "创建图书应返回201")

	var data BookData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析图书响应失败")

	return data.ID
}
