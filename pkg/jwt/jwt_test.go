package jwt

import (
	"testing"
	"time"

	apperrors "github.com/ReallyKrishna/Book-Review-API/pkg/errors"
)

// TestGenerateAndParse 测试Token生成与解析的往返
func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(42, "reader")
	if err != nil {
		t.Fatalf("生成Token失败: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("Token不应为空")
	}
	if pair.ExpiresIn != int64((2 * time.Hour).Seconds()) {
		t.Errorf("期望过期时间%d秒，实际%d", int64((2*time.Hour).Seconds()), pair.ExpiresIn)
	}

	claims, err := m.ParseToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("解析Token失败: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("期望UserID=42，实际%d", claims.UserID)
	}
	if claims.Username != "reader" {
		t.Errorf("期望Username=reader，实际%s", claims.Username)
	}
}

// TestParseInvalidToken 测试非法Token被拒绝
func TestParseInvalidToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour, time.Hour)

	if _, err := m.ParseToken("not-a-token"); err != apperrors.ErrInvalidToken {
		t.Errorf("期望ErrInvalidToken，实际%v", err)
	}

	// 不同密钥签发的Token无效
	other := NewManager("other-secret", time.Hour, time.Hour)
	pair, err := other.GenerateToken(1, "u")
	if err != nil {
		t.Fatalf("生成Token失败: %v", err)
	}
	if _, err := m.ParseToken(pair.AccessToken); err != apperrors.ErrInvalidToken {
		t.Errorf("期望ErrInvalidToken，实际%v", err)
	}
}

// TestExpiredToken 测试过期Token返回ErrTokenExpired
func TestExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, time.Hour)

	pair, err := m.GenerateToken(1, "u")
	if err != nil {
		t.Fatalf("生成Token失败: %v", err)
	}
	if _, err := m.ParseToken(pair.AccessToken); err != apperrors.ErrTokenExpired {
		t.Errorf("期望ErrTokenExpired，实际%v", err)
	}
}

// TestRefreshAccessToken 测试刷新Access Token
func TestRefreshAccessToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	pair, err := m.GenerateToken(7, "reader")
	if err != nil {
		t.Fatalf("生成Token失败: %v", err)
	}

	newAccess, err := m.RefreshAccessToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("刷新Token失败: %v", err)
	}

	claims, err := m.ParseToken(newAccess)
	if err != nil {
		t.Fatalf("解析新Token失败: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("期望UserID=7，实际%d", claims.UserID)
	}
}
